package handlers

import (
	"strconv"

	"credvia/internal/middleware"
	"credvia/internal/models"
	"credvia/internal/services/notification"
	"credvia/internal/services/payment"
	"credvia/internal/services/user"
	"credvia/internal/services/workflow"
	"credvia/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler covers reviewer and administrator operations: user
// management, fleet-wide application listing and step advancement.
type AdminHandler struct {
	userService     user.Service
	workflowService workflow.Service
	notifService    notification.Service
	paymentService  payment.Service
}

func NewAdminHandler(userService user.Service, workflowService workflow.Service, notifService notification.Service, paymentService payment.Service) *AdminHandler {
	return &AdminHandler{
		userService:     userService,
		workflowService: workflowService,
		notifService:    notifService,
		paymentService:  paymentService,
	}
}

// ListUsers returns one page of all users.
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	p, err := utils.ParsePagination(c)
	if err != nil {
		return utils.DomainError(c, err)
	}

	users, total, err := h.userService.List(c.Context(), p.Offset, p.Limit)
	if err != nil {
		return utils.DomainError(c, err)
	}
	p.Total = total
	return utils.Success(c, utils.PaginatedData(p, users))
}

// UpdateUserStatus moves a user account's status.
func (h *AdminHandler) UpdateUserStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.DomainError(c, err)
	}

	var input models.UpdateUserStatusInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	updated, err := h.userService.UpdateStatus(c.Context(), id, input.Status)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, updated)
}

// ListApplications returns one page of all applications, optionally
// filtered by ?status=.
func (h *AdminHandler) ListApplications(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return utils.Unauthorized(c, "")
	}

	p, err := utils.ParsePagination(c)
	if err != nil {
		return utils.DomainError(c, err)
	}

	status := models.ApplicationStatus(c.Query("status"))
	apps, total, err := h.workflowService.ListAll(c.Context(), claims, status, p.Offset, p.Limit)
	if err != nil {
		return utils.DomainError(c, err)
	}
	p.Total = total
	return utils.Success(c, utils.PaginatedData(p, apps))
}

// UpdatePaymentStatus records a gateway outcome on a payment. COMPLETED
// payments are immutable; such attempts return 409.
func (h *AdminHandler) UpdatePaymentStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.DomainError(c, err)
	}

	var input models.UpdatePaymentInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	updated, err := h.paymentService.UpdateStatus(c.Context(), id, input)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, updated)
}

// Stats reports the application pipeline by status and the undelivered
// notification backlog.
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return utils.Unauthorized(c, "")
	}

	counts, err := h.workflowService.StatusCounts(c.Context(), claims)
	if err != nil {
		return utils.DomainError(c, err)
	}
	pending, err := h.notifService.PendingCount(c.Context())
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.Map{
		"applications":         counts,
		"pendingNotifications": pending,
	})
}

// AdvanceStep completes one workflow step of an application.
func (h *AdminHandler) AdvanceStep(c *fiber.Ctx) error {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		return utils.Unauthorized(c, "")
	}
	id, err := parseID(c)
	if err != nil {
		return utils.DomainError(c, err)
	}
	stepOrder, err := strconv.Atoi(c.Params("stepOrder"))
	if err != nil || stepOrder < 1 {
		return utils.ValidationError(c, "stepOrder must be a positive integer")
	}

	step, err := h.workflowService.AdvanceStep(c.Context(), claims, id, stepOrder)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, step)
}
