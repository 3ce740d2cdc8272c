package utils

import (
	"encoding/json"

	apiError "github.com/ether/delta-go/lib/api/errors"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// BindBody decodes the JSON body into out and validates it. An empty body
// leaves out untouched before validation.
func BindBody(c *fiber.Ctx, validate *validator.Validate, out any) *apiError.Error {
	if body := c.Body(); len(body) > 0 {
		if err := json.Unmarshal(body, out); err != nil {
			if mapped, ok := apiError.FromError(err); ok {
				return &mapped
			}
			var invalid = apiError.InvalidRequestError
			invalid.Message = "Invalid request " + err.Error()
			return &invalid
		}
	}
	if err := validate.Struct(out); err != nil {
		var invalid = apiError.FromValidation(err)
		return &invalid
	}
	return nil
}

func SendError(c *fiber.Ctx, err apiError.Error) error {
	return c.Status(err.Error).JSON(err)
}

// SendDomainError writes the API error for err, logging anything unexpected.
func SendDomainError(c *fiber.Ctx, logger *zap.SugaredLogger, err error) error {
	mapped, ok := apiError.FromError(err)
	if !ok {
		logger.Errorw("request failed", "path", c.Path(), "error", err)
	}
	return SendError(c, mapped)
}
