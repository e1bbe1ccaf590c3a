// Package document implements document intake and review. Uploaded binaries
// live in an external object store; this service owns the metadata row and
// its verification lifecycle.
package document

import (
	"context"
	"log"
	"time"

	domainerrors "credvia/internal/errors"
	"credvia/internal/models"
	"credvia/internal/repositories"
	"credvia/internal/services/notification"
	"credvia/internal/validation"

	"github.com/google/uuid"
)

// Service is the document intake surface.
type Service interface {
	// Attach records an uploaded file for the caller, optionally scoped to
	// one of their applications, in PENDING verification status.
	Attach(ctx context.Context, actor *models.UserClaims, input models.AttachDocumentInput) (*models.Document, error)

	// ListOwn returns one page of the caller's documents.
	ListOwn(ctx context.Context, actor *models.UserClaims, offset, limit int) ([]models.Document, int64, error)

	// Review sets the verification decision. Reviewer roles only; the
	// reviewer identity and timestamp are stored atomically with the
	// status.
	Review(ctx context.Context, actor *models.UserClaims, documentID uint, status string) (*models.Document, error)
}

type service struct {
	repo     repositories.DocumentRepository
	appRepo  repositories.ApplicationRepository
	notifier notification.Service
	config   Config
}

// NewService creates a new document service. Zero-value config fields fall
// back to the built-in per-type limits.
func NewService(repo repositories.DocumentRepository, appRepo repositories.ApplicationRepository, notifier notification.Service, config Config) Service {
	if repo == nil {
		panic("document repository is required")
	}
	config.applyDefaults()
	return &service{
		repo:     repo,
		appRepo:  appRepo,
		notifier: notifier,
		config:   config,
	}
}

func (s *service) Attach(ctx context.Context, actor *models.UserClaims, input models.AttachDocumentInput) (*models.Document, error) {
	v := validation.New()
	v.Document(&input)
	if !v.Valid() {
		return nil, domainerrors.ErrValidation.WithMessage(v.First())
	}
	if err := s.config.CheckFile(input.Type, input.FileSize, input.MimeType); err != nil {
		return nil, err
	}

	if input.ApplicationID != nil {
		app, err := s.appRepo.GetByID(ctx, *input.ApplicationID)
		if err != nil || app.UserID != actor.UserID {
			return nil, domainerrors.ErrApplicationNotFound
		}
	}

	doc := &models.Document{
		UserID:             actor.UserID,
		ApplicationID:      input.ApplicationID,
		Type:               input.Type,
		FileName:           input.FileName,
		FileSize:           input.FileSize,
		MimeType:           input.MimeType,
		StorageKey:         uuid.NewString(),
		VerificationStatus: models.VerificationPending,
	}
	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *service) ListOwn(ctx context.Context, actor *models.UserClaims, offset, limit int) ([]models.Document, int64, error) {
	return s.repo.ListByUser(ctx, actor.UserID, offset, limit)
}

func (s *service) Review(ctx context.Context, actor *models.UserClaims, documentID uint, status string) (*models.Document, error) {
	if !actor.Role.IsReviewer() {
		return nil, domainerrors.ErrForbidden
	}
	v := validation.New()
	v.DocumentReview(status)
	if !v.Valid() {
		return nil, domainerrors.ErrValidation.WithMessage(v.First())
	}

	doc, err := s.repo.GetByID(ctx, documentID)
	if err != nil {
		if err == repositories.ErrDocumentNotFound {
			return nil, domainerrors.ErrDocumentNotFound
		}
		return nil, err
	}

	now := time.Now()
	reviewer := actor.UserID
	doc.VerificationStatus = status
	doc.VerifiedBy = &reviewer
	doc.VerifiedAt = &now
	if err := s.repo.UpdateVerification(ctx, doc); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyDocumentReviewed(ctx, doc.UserID, doc.FileName, status); err != nil {
			log.Printf("failed to queue review notification for document %d: %v", doc.ID, err)
		}
	}
	return doc, nil
}
