package validation

import "credvia/internal/models"

// PaymentStatus validates a payment status change.
func (v *Validator) PaymentStatus(status string) {
	v.OneOf("status", status,
		models.PaymentStatusPending,
		models.PaymentStatusCompleted,
		models.PaymentStatusFailed,
	)
}
