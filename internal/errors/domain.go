package errors

import "github.com/gofiber/fiber/v2"

var (
	ErrValidation = &DomainError{
		Code:    "VALIDATION_ERROR",
		Message: "invalid input",
		Status:  fiber.StatusBadRequest,
	}
	ErrUnauthorized = &DomainError{
		Code:    "UNAUTHORIZED",
		Message: "authentication required",
		Status:  fiber.StatusUnauthorized,
	}
	ErrForbidden = &DomainError{
		Code:    "FORBIDDEN",
		Message: "insufficient role or ownership",
		Status:  fiber.StatusForbidden,
	}
	ErrInternal = &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: "internal server error",
		Status:  fiber.StatusInternalServerError,
	}

	ErrEmailAlreadyExists = &DomainError{
		Code:    "EMAIL_ALREADY_EXISTS",
		Message: "an account with this email already exists",
		Status:  fiber.StatusBadRequest,
	}
	ErrUserNotFound = &DomainError{
		Code:    "USER_NOT_FOUND",
		Message: "user not found",
		Status:  fiber.StatusNotFound,
	}

	ErrApplicationNotFound = &DomainError{
		Code:    "APPLICATION_NOT_FOUND",
		Message: "application not found",
		Status:  fiber.StatusNotFound,
	}
	ErrInvalidTransition = &DomainError{
		Code:    "INVALID_TRANSITION",
		Message: "illegal application status transition",
		Status:  fiber.StatusConflict,
	}
	ErrStepOutOfOrder = &DomainError{
		Code:    "STEP_OUT_OF_ORDER",
		Message: "a lower-order step is not yet completed",
		Status:  fiber.StatusConflict,
	}
	ErrStepNotAssigned = &DomainError{
		Code:    "STEP_NOT_ASSIGNED",
		Message: "step is assigned to another consultant",
		Status:  fiber.StatusForbidden,
	}
	ErrStepNotFound = &DomainError{
		Code:    "STEP_NOT_FOUND",
		Message: "workflow step not found",
		Status:  fiber.StatusNotFound,
	}

	ErrDocumentNotFound = &DomainError{
		Code:    "DOCUMENT_NOT_FOUND",
		Message: "document not found",
		Status:  fiber.StatusNotFound,
	}
	ErrPaymentNotFound = &DomainError{
		Code:    "PAYMENT_NOT_FOUND",
		Message: "payment not found",
		Status:  fiber.StatusNotFound,
	}
	ErrPaymentImmutable = &DomainError{
		Code:    "PAYMENT_IMMUTABLE",
		Message: "completed payments cannot be modified",
		Status:  fiber.StatusConflict,
	}

	ErrHealthCheckFailed = &DomainError{
		Code:    "HEALTH_CHECK_FAILED",
		Message: "entity store is unreachable",
		Status:  fiber.StatusServiceUnavailable,
	}
)
