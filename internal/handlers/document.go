package handlers

import (
	"credvia/internal/middleware"
	"credvia/internal/models"
	"credvia/internal/services/document"
	"credvia/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type DocumentHandler struct {
	documentService document.Service
}

func NewDocumentHandler(documentService document.Service) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// Attach records upload metadata for the caller.
func (h *DocumentHandler) Attach(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return utils.Unauthorized(c, "")
	}

	var input models.AttachDocumentInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	doc, err := h.documentService.Attach(c.Context(), claims, input)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, doc)
}

// List returns one page of the caller's documents.
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return utils.Unauthorized(c, "")
	}

	p, err := utils.ParsePagination(c)
	if err != nil {
		return utils.DomainError(c, err)
	}

	docs, total, err := h.documentService.ListOwn(c.Context(), claims, p.Offset, p.Limit)
	if err != nil {
		return utils.DomainError(c, err)
	}
	p.Total = total
	return utils.Success(c, utils.PaginatedData(p, docs))
}

// Review records a verification decision. Reviewer roles only.
func (h *DocumentHandler) Review(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return utils.Unauthorized(c, "")
	}
	id, err := parseID(c)
	if err != nil {
		return utils.DomainError(c, err)
	}

	var input models.ReviewDocumentInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	doc, err := h.documentService.Review(c.Context(), claims, id, input.Status)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, doc)
}
