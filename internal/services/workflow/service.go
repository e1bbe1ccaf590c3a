// Package workflow owns the application lifecycle: legal status
// transitions, the ordered step pipeline, and the consistency between the
// two. All writes to Application.Status go through this package.
package workflow

import (
	"context"
	"fmt"
	"log"
	"time"

	domainerrors "credvia/internal/errors"
	"credvia/internal/models"
	"credvia/internal/repositories"
	"credvia/internal/services/notification"
	"credvia/internal/validation"

	"github.com/google/uuid"
)

// Service is the workflow engine's public surface.
type Service interface {
	// CreateApplication validates the input, creates the application in
	// DRAFT and instantiates the fixed step template for its type.
	CreateApplication(ctx context.Context, actor *models.UserClaims, input models.CreateApplicationInput) (*models.Application, error)

	// Get returns an application with nested steps, documents and
	// payments. Callers see only their own applications unless they hold
	// a reviewer role.
	Get(ctx context.Context, actor *models.UserClaims, id uint) (*models.Application, error)

	// ListOwn returns one page of the caller's applications.
	ListOwn(ctx context.Context, actor *models.UserClaims, offset, limit int) ([]models.Application, int64, error)

	// ListAll returns one page of all applications, optionally filtered
	// by status. Reviewer roles only.
	ListAll(ctx context.Context, actor *models.UserClaims, status models.ApplicationStatus, offset, limit int) ([]models.Application, int64, error)

	// Update applies a partial update to an application still editable by
	// its owner (DRAFT or REQUIRES_RESUBMISSION).
	Update(ctx context.Context, actor *models.UserClaims, id uint, input models.UpdateApplicationInput) (*models.Application, error)

	// TransitionStatus moves the application along the state machine.
	// Re-submitting the current status is a no-op success.
	TransitionStatus(ctx context.Context, actor *models.UserClaims, id uint, newStatus models.ApplicationStatus) (*models.Application, error)

	// AdvanceStep completes one workflow step in order. Completing the
	// final step of an IN_REVIEW application approves it.
	AdvanceStep(ctx context.Context, actor *models.UserClaims, applicationID uint, stepOrder int) (*models.WorkflowStep, error)

	// StatusCounts returns how many applications sit in each status.
	// Reviewer roles only.
	StatusCounts(ctx context.Context, actor *models.UserClaims) (map[models.ApplicationStatus]int64, error)
}

type service struct {
	repo     repositories.ApplicationRepository
	notifier notification.Service
}

// NewService creates a new workflow service.
func NewService(repo repositories.ApplicationRepository, notifier notification.Service) Service {
	if repo == nil {
		panic("application repository is required")
	}
	return &service{repo: repo, notifier: notifier}
}

func (s *service) CreateApplication(ctx context.Context, actor *models.UserClaims, input models.CreateApplicationInput) (*models.Application, error) {
	v := validation.New()
	v.Application(&input)
	if !v.Valid() {
		return nil, domainerrors.ErrValidation.WithMessage(v.First())
	}

	priority := input.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	app := &models.Application{
		ReferenceNumber:  newReferenceNumber(),
		UserID:           actor.UserID,
		Type:             input.Type,
		Status:           models.ApplicationStatusDraft,
		Priority:         priority,
		TargetCountry:    input.TargetCountry,
		TargetProfession: input.TargetProfession,
		PersonalInfo:     input.PersonalInfo,
		AdditionalData:   input.AdditionalData,
	}

	steps := InstantiateSteps(input.Type, nil)
	app.WorkflowState = StateSnapshot(steps)

	if err := s.repo.Create(ctx, app, steps); err != nil {
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.SendWelcome(ctx, actor.UserID, app.ReferenceNumber); err != nil {
			log.Printf("failed to queue welcome notification for application %s: %v", app.ReferenceNumber, err)
		}
	}
	return app, nil
}

func (s *service) Get(ctx context.Context, actor *models.UserClaims, id uint) (*models.Application, error) {
	app, err := s.repo.GetDetailed(ctx, id)
	if err != nil {
		if err == repositories.ErrApplicationNotFound {
			return nil, domainerrors.ErrApplicationNotFound
		}
		return nil, err
	}
	// Ownership is reported as not-found so callers cannot probe for
	// other users' application ids.
	if app.UserID != actor.UserID && !actor.Role.IsReviewer() {
		return nil, domainerrors.ErrApplicationNotFound
	}
	return app, nil
}

func (s *service) ListOwn(ctx context.Context, actor *models.UserClaims, offset, limit int) ([]models.Application, int64, error) {
	return s.repo.ListByUser(ctx, actor.UserID, offset, limit)
}

func (s *service) ListAll(ctx context.Context, actor *models.UserClaims, status models.ApplicationStatus, offset, limit int) ([]models.Application, int64, error) {
	if !actor.Role.IsReviewer() {
		return nil, 0, domainerrors.ErrForbidden
	}
	if status != "" && !status.Valid() {
		return nil, 0, domainerrors.ErrValidation.WithMessage("status: must be a valid application status")
	}
	return s.repo.List(ctx, status, offset, limit)
}

func (s *service) Update(ctx context.Context, actor *models.UserClaims, id uint, input models.UpdateApplicationInput) (*models.Application, error) {
	v := validation.New()
	v.ApplicationUpdate(&input)
	if !v.Valid() {
		return nil, domainerrors.ErrValidation.WithMessage(v.First())
	}

	return s.updateAtomic(ctx, id, func(txn *repositories.ApplicationTxn) error {
		app := txn.Application
		if app.UserID != actor.UserID && !actor.Role.IsReviewer() {
			return domainerrors.ErrApplicationNotFound
		}
		if !editable(app.Status) {
			return domainerrors.ErrInvalidTransition.WithMessage(
				"application in status %s is locked for editing", app.Status)
		}

		if input.Priority != nil {
			app.Priority = *input.Priority
		}
		if input.TargetCountry != nil {
			app.TargetCountry = *input.TargetCountry
		}
		if input.TargetProfession != nil {
			app.TargetProfession = *input.TargetProfession
		}
		if input.PersonalInfo != nil {
			app.PersonalInfo = input.PersonalInfo
		}
		if input.AdditionalData != nil {
			app.AdditionalData = input.AdditionalData
		}
		return nil
	})
}

func (s *service) TransitionStatus(ctx context.Context, actor *models.UserClaims, id uint, newStatus models.ApplicationStatus) (*models.Application, error) {
	v := validation.New()
	v.ApplicationStatus(newStatus)
	if !v.Valid() {
		return nil, domainerrors.ErrValidation.WithMessage(v.First())
	}

	var notify bool
	app, err := s.updateAtomic(ctx, id, func(txn *repositories.ApplicationTxn) error {
		app := txn.Application

		// Visibility before anything else: a stranger must not learn the id
		// exists, not even through the idempotent no-op below.
		if app.UserID != actor.UserID && !actor.Role.IsReviewer() {
			return domainerrors.ErrApplicationNotFound
		}

		// Re-submitting the current status is a no-op, not an error.
		if app.Status == newStatus {
			return nil
		}
		if err := s.authorizeTransition(actor, newStatus); err != nil {
			return err
		}
		if !CanTransition(app.Status, newStatus) {
			return domainerrors.ErrInvalidTransition.WithMessage(
				"cannot move application from %s to %s", app.Status, newStatus)
		}

		applyTransition(txn, actor.UserID, newStatus)
		notify = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if notify && s.notifier != nil {
		if err := s.notifier.NotifyStatusChange(ctx, app.UserID, app.ReferenceNumber, newStatus); err != nil {
			log.Printf("failed to queue status notification for application %s: %v", app.ReferenceNumber, err)
		}
	}
	return app, nil
}

func (s *service) AdvanceStep(ctx context.Context, actor *models.UserClaims, applicationID uint, stepOrder int) (*models.WorkflowStep, error) {
	if !actor.Role.IsReviewer() {
		return nil, domainerrors.ErrForbidden
	}

	var completed *models.WorkflowStep
	_, err := s.updateAtomic(ctx, applicationID, func(txn *repositories.ApplicationTxn) error {
		var step *models.WorkflowStep
		for i := range txn.Steps {
			if txn.Steps[i].StepOrder == stepOrder {
				step = &txn.Steps[i]
				break
			}
		}
		if step == nil {
			return domainerrors.ErrStepNotFound
		}
		if step.Status == models.StepStatusCompleted {
			completed = step
			return nil
		}

		if step.AssignedTo != nil && *step.AssignedTo != actor.UserID &&
			!actor.Role.AtLeast(models.RoleAdmin) {
			return domainerrors.ErrStepNotAssigned
		}
		for _, sibling := range txn.Steps {
			if sibling.StepOrder < stepOrder && sibling.Status != models.StepStatusCompleted {
				return domainerrors.ErrStepOutOfOrder.WithMessage(
					"step %d is %s", sibling.StepOrder, sibling.Status)
			}
		}

		now := time.Now()
		step.Status = models.StepStatusCompleted
		if step.StartedAt == nil {
			step.StartedAt = &now
		}
		step.CompletedAt = &now
		txn.AppendAudit(models.AuditEntry{
			ActorID: actor.UserID,
			Action:  models.AuditActionStepCompleted,
			Detail:  models.JSON{"stepOrder": stepOrder, "name": step.Name},
		})

		// Start the next pending step, if any.
		allDone := true
		for i := range txn.Steps {
			sibling := &txn.Steps[i]
			if sibling.Status == models.StepStatusCompleted {
				continue
			}
			allDone = false
			if sibling.Status == models.StepStatusPending {
				sibling.Status = models.StepStatusInProgress
				sibling.StartedAt = &now
			}
			break
		}

		if allDone && txn.Application.Status == models.ApplicationStatusInReview {
			applyTransition(txn, actor.UserID, models.ApplicationStatusApproved)
		} else {
			txn.Application.WorkflowState = StateSnapshot(txn.Steps)
		}

		completed = step
		return nil
	})
	if err != nil {
		return nil, err
	}
	return completed, nil
}

func (s *service) StatusCounts(ctx context.Context, actor *models.UserClaims) (map[models.ApplicationStatus]int64, error) {
	if !actor.Role.IsReviewer() {
		return nil, domainerrors.ErrForbidden
	}
	return s.repo.CountByStatus(ctx)
}

// authorizeTransition enforces the role policy on an application the actor
// may already see: the owning applicant may (re)submit; every other move
// requires a reviewer role. Visibility itself is checked before this runs.
func (s *service) authorizeTransition(actor *models.UserClaims, newStatus models.ApplicationStatus) error {
	if actor.Role.IsReviewer() {
		return nil
	}
	if newStatus == models.ApplicationStatusSubmitted {
		return nil
	}
	return domainerrors.ErrForbidden
}

// applyTransition mutates the application row, refreshes the workflowState
// cache and queues the audit entry. Callers have already checked legality.
func applyTransition(txn *repositories.ApplicationTxn, actorID uint, newStatus models.ApplicationStatus) {
	app := txn.Application
	from := app.Status
	now := time.Now()

	app.Status = newStatus
	switch {
	case newStatus == models.ApplicationStatusSubmitted && app.SubmittedAt == nil:
		app.SubmittedAt = &now
	case newStatus.Terminal():
		app.DecidedAt = &now
	}
	app.WorkflowState = StateSnapshot(txn.Steps)

	txn.AppendAudit(models.AuditEntry{
		ActorID:    actorID,
		Action:     models.AuditActionStatusChange,
		FromStatus: string(from),
		ToStatus:   string(newStatus),
	})
}

func (s *service) updateAtomic(ctx context.Context, id uint, fn func(txn *repositories.ApplicationTxn) error) (*models.Application, error) {
	app, err := s.repo.UpdateAtomic(ctx, id, fn)
	if err != nil {
		if err == repositories.ErrApplicationNotFound {
			return nil, domainerrors.ErrApplicationNotFound
		}
		return nil, err
	}
	return app, nil
}

func newReferenceNumber() string {
	return "CV-" + uuid.NewString()
}
