package documents

import (
	"github.com/ether/delta-go/lib"
	"github.com/ether/delta-go/lib/api/stats"
	"github.com/ether/delta-go/lib/api/utils"
	"github.com/ether/delta-go/lib/delta"
	"github.com/ether/delta-go/lib/document"
	"github.com/ether/delta-go/lib/history"
	"github.com/gofiber/fiber/v2"
)

type CreateRequest struct {
	Content *delta.Delta `json:"content"`
}

type ChangeRequest struct {
	Change    *delta.Delta       `json:"change" validate:"required"`
	Selection *history.Selection `json:"selection" validate:"omitnil"`
}

type StepRequest struct {
	Selection *history.Selection `json:"selection" validate:"omitnil"`
}

type ListResponse struct {
	Documents []string `json:"documents"`
}

func Init(store *lib.InitStore) {
	var group = store.C.Group("/api/documents")
	var manager = store.DocumentManager

	// Create godoc
	// @Summary Create a document
	// @Description Content may only contain inserts. An empty body creates an empty document.
	// @Tags Documents
	// @Accept json
	// @Produce json
	// @Param request body CreateRequest false "Initial content"
	// @Success 201 {object} document.Snapshot
	// @Failure 400 {object} errors.Error
	// @Failure 422 {object} errors.Error
	// @Router /api/documents [post]
	group.Post("/", func(c *fiber.Ctx) error {
		var request CreateRequest
		if err := utils.BindBody(c, store.Validator, &request); err != nil {
			return utils.SendError(c, *err)
		}
		var content delta.Delta
		if request.Content != nil {
			content = *request.Content
		}
		snapshot, err := manager.Create(content)
		if err != nil {
			return utils.SendDomainError(c, store.Logger, err)
		}
		return c.Status(fiber.StatusCreated).JSON(snapshot)
	})

	// List godoc
	// @Summary List document ids
	// @Tags Documents
	// @Produce json
	// @Success 200 {object} ListResponse
	// @Router /api/documents [get]
	group.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(ListResponse{Documents: manager.List()})
	})

	// Get godoc
	// @Summary Get a document snapshot
	// @Tags Documents
	// @Produce json
	// @Param documentId path string true "Document id"
	// @Success 200 {object} document.Snapshot
	// @Failure 404 {object} errors.Error
	// @Router /api/documents/{documentId} [get]
	group.Get("/:documentId", func(c *fiber.Ctx) error {
		var documentId = c.Params("documentId")
		snapshot, err := manager.Get(documentId)
		if err != nil {
			return utils.SendDomainError(c, store.Logger, err)
		}
		return c.JSON(snapshot)
	})

	// Delete godoc
	// @Summary Delete a document
	// @Tags Documents
	// @Param documentId path string true "Document id"
	// @Success 204
	// @Failure 404 {object} errors.Error
	// @Router /api/documents/{documentId} [delete]
	group.Delete("/:documentId", func(c *fiber.Ctx) error {
		if err := manager.Remove(c.Params("documentId")); err != nil {
			return utils.SendDomainError(c, store.Logger, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	// Apply godoc
	// @Summary Apply a change to a document
	// @Description The change is composed onto the document and its inverse is recorded for undo.
	// @Tags Documents
	// @Accept json
	// @Produce json
	// @Param documentId path string true "Document id"
	// @Param request body ChangeRequest true "Change and caret before it"
	// @Success 200 {object} document.Snapshot
	// @Failure 400 {object} errors.Error
	// @Failure 404 {object} errors.Error
	// @Failure 422 {object} errors.Error
	// @Router /api/documents/{documentId}/changes [post]
	group.Post("/:documentId/changes", func(c *fiber.Ctx) error {
		var request ChangeRequest
		if err := utils.BindBody(c, store.Validator, &request); err != nil {
			return utils.SendError(c, *err)
		}
		snapshot, err := manager.Apply(c.Params("documentId"), *request.Change, request.Selection)
		if err != nil {
			return utils.SendDomainError(c, store.Logger, err)
		}
		stats.CountOperation("apply")
		return c.JSON(snapshot)
	})

	// Undo godoc
	// @Summary Undo the latest step of a document
	// @Tags Documents
	// @Accept json
	// @Produce json
	// @Param documentId path string true "Document id"
	// @Param request body StepRequest false "Caret to restore on redo"
	// @Success 200 {object} document.Snapshot
	// @Failure 404 {object} errors.Error
	// @Failure 409 {object} errors.Error
	// @Router /api/documents/{documentId}/undo [post]
	group.Post("/:documentId/undo", stepHandler(store, manager.Undo, "undo"))
	// Redo godoc
	// @Summary Redo the latest undone step of a document
	// @Tags Documents
	// @Accept json
	// @Produce json
	// @Param documentId path string true "Document id"
	// @Param request body StepRequest false "Caret to restore on undo"
	// @Success 200 {object} document.Snapshot
	// @Failure 404 {object} errors.Error
	// @Failure 409 {object} errors.Error
	// @Router /api/documents/{documentId}/redo [post]
	group.Post("/:documentId/redo", stepHandler(store, manager.Redo, "redo"))
}

func stepHandler(
	store *lib.InitStore,
	step func(string, *history.Selection) (*document.Snapshot, error),
	operation string,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var request StepRequest
		if err := utils.BindBody(c, store.Validator, &request); err != nil {
			return utils.SendError(c, *err)
		}
		snapshot, err := step(c.Params("documentId"), request.Selection)
		if err != nil {
			return utils.SendDomainError(c, store.Logger, err)
		}
		stats.CountOperation(operation)
		return c.JSON(snapshot)
	}
}
