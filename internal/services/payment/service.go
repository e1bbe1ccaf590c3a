// Package payment records gateway outcomes against payment rows. The
// gateway itself is an external collaborator; its outcomes arrive through
// the admin reconciliation surface and must respect payment immutability.
package payment

import (
	"context"

	domainerrors "credvia/internal/errors"
	"credvia/internal/models"
	"credvia/internal/repositories"
	"credvia/internal/validation"
)

// Service is the payment reconciliation surface.
type Service interface {
	// UpdateStatus records a gateway outcome on a payment. A COMPLETED row
	// can never change again; such attempts fail closed.
	UpdateStatus(ctx context.Context, paymentID uint, input models.UpdatePaymentInput) (*models.Payment, error)
}

type service struct {
	repo repositories.PaymentRepository
}

// NewService creates a new payment service.
func NewService(repo repositories.PaymentRepository) Service {
	return &service{repo: repo}
}

func (s *service) UpdateStatus(ctx context.Context, paymentID uint, input models.UpdatePaymentInput) (*models.Payment, error) {
	v := validation.New()
	v.PaymentStatus(input.Status)
	if !v.Valid() {
		return nil, domainerrors.ErrValidation.WithMessage(v.First())
	}

	payment, err := s.repo.GetByID(ctx, paymentID)
	if err != nil {
		if err == repositories.ErrPaymentNotFound {
			return nil, domainerrors.ErrPaymentNotFound
		}
		return nil, err
	}

	payment.Status = input.Status
	if input.GatewayID != "" {
		payment.GatewayID = input.GatewayID
	}
	if input.GatewayData != nil {
		payment.GatewayData = input.GatewayData
	}

	if err := s.repo.Update(ctx, payment); err != nil {
		switch err {
		case repositories.ErrPaymentImmutable:
			return nil, domainerrors.ErrPaymentImmutable
		case repositories.ErrPaymentNotFound:
			return nil, domainerrors.ErrPaymentNotFound
		}
		return nil, err
	}
	return payment, nil
}
