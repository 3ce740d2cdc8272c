package deltas

import (
	"github.com/ether/delta-go/lib"
	"github.com/ether/delta-go/lib/api/stats"
	"github.com/ether/delta-go/lib/api/utils"
	"github.com/ether/delta-go/lib/delta"
	"github.com/gofiber/fiber/v2"
)

type ComposeRequest struct {
	Delta *delta.Delta `json:"delta" validate:"required"`
	Other *delta.Delta `json:"other" validate:"required"`
}

type InvertRequest struct {
	Delta *delta.Delta `json:"delta" validate:"required"`
	Base  *delta.Delta `json:"base" validate:"required"`
}

type SliceRequest struct {
	Delta *delta.Delta `json:"delta" validate:"required"`
	Start int          `json:"start" validate:"gte=0"`
	End   *int         `json:"end" validate:"omitnil,gtefield=Start"`
}

type Response struct {
	Delta delta.Delta `json:"delta"`
}

func Init(store *lib.InitStore) {
	var group = store.C.Group("/api/delta")

	// Compose godoc
	// @Summary Compose two deltas
	// @Tags Delta
	// @Accept json
	// @Produce json
	// @Param request body ComposeRequest true "Deltas to compose"
	// @Success 200 {object} Response
	// @Failure 400 {object} errors.Error
	// @Router /api/delta/compose [post]
	group.Post("/compose", func(c *fiber.Ctx) error {
		var request ComposeRequest
		if err := utils.BindBody(c, store.Validator, &request); err != nil {
			return utils.SendError(c, *err)
		}
		stats.CountOperation("compose")
		return c.JSON(Response{Delta: request.Delta.Compose(*request.Other)})
	})

	// Invert godoc
	// @Summary Invert a delta against the document it applies to
	// @Tags Delta
	// @Accept json
	// @Produce json
	// @Param request body InvertRequest true "Delta and base document"
	// @Success 200 {object} Response
	// @Failure 400 {object} errors.Error
	// @Router /api/delta/invert [post]
	group.Post("/invert", func(c *fiber.Ctx) error {
		var request InvertRequest
		if err := utils.BindBody(c, store.Validator, &request); err != nil {
			return utils.SendError(c, *err)
		}
		stats.CountOperation("invert")
		return c.JSON(Response{Delta: request.Delta.Invert(*request.Base)})
	})

	// Slice godoc
	// @Summary Slice a delta to the range [start, end)
	// @Description Without end the slice runs to the end of the delta.
	// @Tags Delta
	// @Accept json
	// @Produce json
	// @Param request body SliceRequest true "Delta and range"
	// @Success 200 {object} Response
	// @Failure 400 {object} errors.Error
	// @Router /api/delta/slice [post]
	group.Post("/slice", func(c *fiber.Ctx) error {
		var request SliceRequest
		if err := utils.BindBody(c, store.Validator, &request); err != nil {
			return utils.SendError(c, *err)
		}
		stats.CountOperation("slice")
		if request.End == nil {
			return c.JSON(Response{Delta: request.Delta.SliceFrom(request.Start)})
		}
		return c.JSON(Response{Delta: request.Delta.Slice(request.Start, *request.End)})
	})
}
