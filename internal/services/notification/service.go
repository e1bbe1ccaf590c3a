// Package notification records fire-and-forget notification rows. Delivery
// is owned by an external dispatcher consuming PENDING rows; this service
// only writes them.
package notification

import (
	"context"
	"fmt"

	"credvia/internal/models"
	"credvia/internal/repositories"
)

// Service creates notification records for user-facing events.
type Service interface {
	SendWelcome(ctx context.Context, userID uint, referenceNumber string) error
	NotifyStatusChange(ctx context.Context, userID uint, referenceNumber string, status models.ApplicationStatus) error
	NotifyDocumentReviewed(ctx context.Context, userID uint, fileName, status string) error

	// PendingCount reports the undelivered backlog for the admin stats view.
	PendingCount(ctx context.Context) (int64, error)
}

type service struct {
	repo repositories.NotificationRepository
}

// NewService creates a new notification service.
func NewService(repo repositories.NotificationRepository) Service {
	return &service{repo: repo}
}

func (s *service) SendWelcome(ctx context.Context, userID uint, referenceNumber string) error {
	return s.repo.Create(ctx, &models.Notification{
		UserID:  userID,
		Channel: models.ChannelEmail,
		Subject: "Your application has been created",
		Body:    fmt.Sprintf("Application %s was created. Complete your documents to submit it.", referenceNumber),
		Status:  models.NotificationPending,
	})
}

func (s *service) NotifyStatusChange(ctx context.Context, userID uint, referenceNumber string, status models.ApplicationStatus) error {
	return s.repo.Create(ctx, &models.Notification{
		UserID:  userID,
		Channel: models.ChannelInApp,
		Subject: fmt.Sprintf("Application %s is now %s", referenceNumber, status),
		Status:  models.NotificationPending,
	})
}

func (s *service) PendingCount(ctx context.Context) (int64, error) {
	return s.repo.CountPending(ctx)
}

func (s *service) NotifyDocumentReviewed(ctx context.Context, userID uint, fileName, status string) error {
	return s.repo.Create(ctx, &models.Notification{
		UserID:  userID,
		Channel: models.ChannelInApp,
		Subject: fmt.Sprintf("Document %s was %s", fileName, status),
		Status:  models.NotificationPending,
	})
}
