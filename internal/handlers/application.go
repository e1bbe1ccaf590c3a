package handlers

import (
	"strconv"

	"credvia/internal/middleware"
	"credvia/internal/models"
	"credvia/internal/services/workflow"
	"credvia/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type ApplicationHandler struct {
	workflowService workflow.Service
}

func NewApplicationHandler(workflowService workflow.Service) *ApplicationHandler {
	return &ApplicationHandler{workflowService: workflowService}
}

// Create starts a new application in DRAFT.
func (h *ApplicationHandler) Create(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return utils.Unauthorized(c, "")
	}

	var input models.CreateApplicationInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	app, err := h.workflowService.CreateApplication(c.Context(), claims, input)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, app)
}

// List returns one page of the caller's applications.
func (h *ApplicationHandler) List(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return utils.Unauthorized(c, "")
	}

	p, err := utils.ParsePagination(c)
	if err != nil {
		return utils.DomainError(c, err)
	}

	apps, total, err := h.workflowService.ListOwn(c.Context(), claims, p.Offset, p.Limit)
	if err != nil {
		return utils.DomainError(c, err)
	}
	p.Total = total
	return utils.Success(c, utils.PaginatedData(p, apps))
}

// Get returns one application with nested steps, documents and payments.
func (h *ApplicationHandler) Get(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return utils.Unauthorized(c, "")
	}
	id, err := parseID(c)
	if err != nil {
		return utils.DomainError(c, err)
	}

	app, err := h.workflowService.Get(c.Context(), claims, id)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, app)
}

// Update applies a partial update to an editable application.
func (h *ApplicationHandler) Update(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return utils.Unauthorized(c, "")
	}
	id, err := parseID(c)
	if err != nil {
		return utils.DomainError(c, err)
	}

	var input models.UpdateApplicationInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	app, err := h.workflowService.Update(c.Context(), claims, id, input)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, app)
}

// UpdateStatus moves the application along the state machine.
func (h *ApplicationHandler) UpdateStatus(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return utils.Unauthorized(c, "")
	}
	id, err := parseID(c)
	if err != nil {
		return utils.DomainError(c, err)
	}

	var input models.UpdateStatusInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	app, err := h.workflowService.TransitionStatus(c.Context(), claims, id, input.Status)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, app)
}

// parseID reads the :id route parameter. Non-numeric ids map to not-found,
// matching what a lookup by an unknown id would return.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, notFoundForRoute(c)
	}
	return uint(id), nil
}
