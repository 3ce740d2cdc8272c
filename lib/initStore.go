package lib

import (
	"github.com/ether/delta-go/lib/document"
	"github.com/ether/delta-go/lib/settings"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type InitStore struct {
	C                 *fiber.App
	RetrievedSettings *settings.Settings
	DocumentManager   *document.Manager
	Validator         *validator.Validate
	Logger            *zap.SugaredLogger
}
