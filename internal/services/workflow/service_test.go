package workflow

import (
	"context"
	"testing"

	domainerrors "credvia/internal/errors"
	"credvia/internal/models"
	"credvia/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeAppRepo is an in-memory ApplicationRepository holding one
// application. UpdateAtomic mirrors the transactional contract: callbacks
// run against copies and the stored state is only replaced on success.
type fakeAppRepo struct {
	app   *models.Application
	steps []models.WorkflowStep
	audit []models.AuditEntry

	created      *models.Application
	createdSteps []models.WorkflowStep
}

func (f *fakeAppRepo) Create(_ context.Context, app *models.Application, steps []models.WorkflowStep) error {
	app.ID = 1
	f.created = app
	f.createdSteps = steps
	return nil
}

func (f *fakeAppRepo) GetByID(_ context.Context, id uint) (*models.Application, error) {
	if f.app == nil || f.app.ID != id {
		return nil, repositories.ErrApplicationNotFound
	}
	return f.app, nil
}

func (f *fakeAppRepo) GetDetailed(ctx context.Context, id uint) (*models.Application, error) {
	app, err := f.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	app.WorkflowSteps = f.steps
	return app, nil
}

func (f *fakeAppRepo) ListByUser(_ context.Context, userID uint, _, _ int) ([]models.Application, int64, error) {
	if f.app != nil && f.app.UserID == userID {
		return []models.Application{*f.app}, 1, nil
	}
	return nil, 0, nil
}

func (f *fakeAppRepo) List(_ context.Context, status models.ApplicationStatus, _, _ int) ([]models.Application, int64, error) {
	if f.app != nil && (status == "" || f.app.Status == status) {
		return []models.Application{*f.app}, 1, nil
	}
	return nil, 0, nil
}

func (f *fakeAppRepo) Update(_ context.Context, app *models.Application) error {
	f.app = app
	return nil
}

func (f *fakeAppRepo) UpdateAtomic(_ context.Context, id uint, fn func(txn *repositories.ApplicationTxn) error) (*models.Application, error) {
	if f.app == nil || f.app.ID != id {
		return nil, repositories.ErrApplicationNotFound
	}

	appCopy := *f.app
	stepsCopy := make([]models.WorkflowStep, len(f.steps))
	copy(stepsCopy, f.steps)

	txn := &repositories.ApplicationTxn{Application: &appCopy, Steps: stepsCopy}
	if err := fn(txn); err != nil {
		return nil, err
	}

	f.app = &appCopy
	f.steps = txn.Steps
	f.audit = append(f.audit, txn.Audit...)
	appCopy.WorkflowSteps = txn.Steps
	return &appCopy, nil
}

func (f *fakeAppRepo) CountByStatus(_ context.Context) (map[models.ApplicationStatus]int64, error) {
	counts := map[models.ApplicationStatus]int64{}
	if f.app != nil {
		counts[f.app.Status] = 1
	}
	return counts, nil
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) SendWelcome(ctx context.Context, userID uint, referenceNumber string) error {
	args := m.Called(ctx, userID, referenceNumber)
	return args.Error(0)
}

func (m *mockNotifier) NotifyStatusChange(ctx context.Context, userID uint, referenceNumber string, status models.ApplicationStatus) error {
	args := m.Called(ctx, userID, referenceNumber, status)
	return args.Error(0)
}

func (m *mockNotifier) NotifyDocumentReviewed(ctx context.Context, userID uint, fileName, status string) error {
	args := m.Called(ctx, userID, fileName, status)
	return args.Error(0)
}

func (m *mockNotifier) PendingCount(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func applicant(id uint) *models.UserClaims {
	return &models.UserClaims{UserID: id, Role: models.RoleApplicant}
}

func consultant(id uint) *models.UserClaims {
	return &models.UserClaims{UserID: id, Role: models.RoleConsultant}
}

func admin(id uint) *models.UserClaims {
	return &models.UserClaims{UserID: id, Role: models.RoleAdmin}
}

func seedRepo(status models.ApplicationStatus, steps ...models.WorkflowStep) *fakeAppRepo {
	for i := range steps {
		steps[i].ApplicationID = 1
	}
	return &fakeAppRepo{
		app: &models.Application{
			ReferenceNumber: "CV-test",
			UserID:          10,
			Type:            models.ApplicationTypeDataflow,
			Status:          status,
		},
		steps: steps,
	}
}

func TestWorkflowService_CreateApplication(t *testing.T) {
	validInput := models.CreateApplicationInput{
		Type:             models.ApplicationTypeDataflow,
		TargetCountry:    "Saudi Arabia",
		TargetProfession: "Registered Nurse",
		PersonalInfo:     models.JSON{"fullName": "Noor Haddad"},
	}

	t.Run("creates draft with step template", func(t *testing.T) {
		repo := &fakeAppRepo{}
		notifier := new(mockNotifier)
		notifier.On("SendWelcome", mock.Anything, uint(10), mock.Anything).Return(nil)

		svc := NewService(repo, notifier)
		app, err := svc.CreateApplication(context.Background(), applicant(10), validInput)

		require.NoError(t, err)
		assert.Equal(t, models.ApplicationStatusDraft, app.Status)
		assert.Equal(t, models.PriorityMedium, app.Priority)
		assert.NotEmpty(t, app.ReferenceNumber)
		require.Len(t, repo.createdSteps, 3)
		assert.Equal(t, models.StepStatusPending, repo.createdSteps[0].Status)
		assert.Equal(t, 3, app.WorkflowState["totalSteps"])
		notifier.AssertExpectations(t)
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		input := validInput
		input.Type = "VISA"

		svc := NewService(&fakeAppRepo{}, nil)
		_, err := svc.CreateApplication(context.Background(), applicant(10), input)

		de, ok := domainerrors.AsDomain(err)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", de.Code)
	})

	t.Run("rejects missing target country", func(t *testing.T) {
		input := validInput
		input.TargetCountry = ""

		svc := NewService(&fakeAppRepo{}, nil)
		_, err := svc.CreateApplication(context.Background(), applicant(10), input)

		de, ok := domainerrors.AsDomain(err)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", de.Code)
	})

	t.Run("rejects bad priority", func(t *testing.T) {
		input := validInput
		input.Priority = "URGENT"

		svc := NewService(&fakeAppRepo{}, nil)
		_, err := svc.CreateApplication(context.Background(), applicant(10), input)

		de, ok := domainerrors.AsDomain(err)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", de.Code)
	})
}

func TestWorkflowService_TransitionStatus(t *testing.T) {
	t.Run("owner submits draft", func(t *testing.T) {
		repo := seedRepo(models.ApplicationStatusDraft)
		repo.app.ID = 1
		notifier := new(mockNotifier)
		notifier.On("NotifyStatusChange", mock.Anything, uint(10), "CV-test", models.ApplicationStatusSubmitted).Return(nil)

		svc := NewService(repo, notifier)
		app, err := svc.TransitionStatus(context.Background(), applicant(10), 1, models.ApplicationStatusSubmitted)

		require.NoError(t, err)
		assert.Equal(t, models.ApplicationStatusSubmitted, app.Status)
		assert.NotNil(t, app.SubmittedAt)
		require.Len(t, repo.audit, 1)
		assert.Equal(t, string(models.ApplicationStatusDraft), repo.audit[0].FromStatus)
		assert.Equal(t, string(models.ApplicationStatusSubmitted), repo.audit[0].ToStatus)
		notifier.AssertExpectations(t)
	})

	t.Run("illegal move fails closed without mutation", func(t *testing.T) {
		repo := seedRepo(models.ApplicationStatusDraft)
		repo.app.ID = 1

		svc := NewService(repo, nil)
		_, err := svc.TransitionStatus(context.Background(), consultant(2), 1, models.ApplicationStatusApproved)

		de, ok := domainerrors.AsDomain(err)
		require.True(t, ok)
		assert.Equal(t, "INVALID_TRANSITION", de.Code)
		assert.Equal(t, models.ApplicationStatusDraft, repo.app.Status)
		assert.Empty(t, repo.audit)
	})

	t.Run("re-submitting current status is a no-op", func(t *testing.T) {
		repo := seedRepo(models.ApplicationStatusSubmitted)
		repo.app.ID = 1

		svc := NewService(repo, nil)
		app, err := svc.TransitionStatus(context.Background(), applicant(10), 1, models.ApplicationStatusSubmitted)

		require.NoError(t, err)
		assert.Equal(t, models.ApplicationStatusSubmitted, app.Status)
		assert.Empty(t, repo.audit, "no-op must not append an audit entry")
	})

	t.Run("applicant cannot review", func(t *testing.T) {
		repo := seedRepo(models.ApplicationStatusSubmitted)
		repo.app.ID = 1

		svc := NewService(repo, nil)
		_, err := svc.TransitionStatus(context.Background(), applicant(10), 1, models.ApplicationStatusInReview)

		de, ok := domainerrors.AsDomain(err)
		require.True(t, ok)
		assert.Equal(t, "FORBIDDEN", de.Code)
	})

	t.Run("consultant moves submitted into review", func(t *testing.T) {
		repo := seedRepo(models.ApplicationStatusSubmitted)
		repo.app.ID = 1
		notifier := new(mockNotifier)
		notifier.On("NotifyStatusChange", mock.Anything, uint(10), "CV-test", models.ApplicationStatusInReview).Return(nil)

		svc := NewService(repo, notifier)
		app, err := svc.TransitionStatus(context.Background(), consultant(2), 1, models.ApplicationStatusInReview)

		require.NoError(t, err)
		assert.Equal(t, models.ApplicationStatusInReview, app.Status)
	})

	t.Run("terminal decision records decided time", func(t *testing.T) {
		repo := seedRepo(models.ApplicationStatusInReview)
		repo.app.ID = 1
		notifier := new(mockNotifier)
		notifier.On("NotifyStatusChange", mock.Anything, uint(10), "CV-test", models.ApplicationStatusRejected).Return(nil)

		svc := NewService(repo, notifier)
		app, err := svc.TransitionStatus(context.Background(), admin(3), 1, models.ApplicationStatusRejected)

		require.NoError(t, err)
		assert.Equal(t, models.ApplicationStatusRejected, app.Status)
		assert.NotNil(t, app.DecidedAt)
	})

	t.Run("stranger cannot transition a foreign application", func(t *testing.T) {
		repo := seedRepo(models.ApplicationStatusDraft)
		repo.app.ID = 1

		svc := NewService(repo, nil)
		_, err := svc.TransitionStatus(context.Background(), applicant(99), 1, models.ApplicationStatusSubmitted)

		de, ok := domainerrors.AsDomain(err)
		require.True(t, ok)
		assert.Equal(t, "APPLICATION_NOT_FOUND", de.Code, "a foreign id must not read as forbidden")
		assert.Equal(t, models.ApplicationStatusDraft, repo.app.Status)
		assert.Empty(t, repo.audit)
	})

	t.Run("stranger cannot read through the idempotent no-op", func(t *testing.T) {
		repo := seedRepo(models.ApplicationStatusSubmitted)
		repo.app.ID = 1

		svc := NewService(repo, nil)
		app, err := svc.TransitionStatus(context.Background(), applicant(99), 1, models.ApplicationStatusSubmitted)

		de, ok := domainerrors.AsDomain(err)
		require.True(t, ok, "guessing the current status must not yield a success")
		assert.Equal(t, "APPLICATION_NOT_FOUND", de.Code)
		assert.Nil(t, app)
	})

	t.Run("unknown application", func(t *testing.T) {
		svc := NewService(&fakeAppRepo{}, nil)
		_, err := svc.TransitionStatus(context.Background(), admin(3), 42, models.ApplicationStatusSubmitted)

		de, ok := domainerrors.AsDomain(err)
		require.True(t, ok)
		assert.Equal(t, "APPLICATION_NOT_FOUND", de.Code)
	})

	t.Run("unknown status is a validation error", func(t *testing.T) {
		repo := seedRepo(models.ApplicationStatusDraft)
		repo.app.ID = 1

		svc := NewService(repo, nil)
		_, err := svc.TransitionStatus(context.Background(), admin(3), 1, "ARCHIVED")

		de, ok := domainerrors.AsDomain(err)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", de.Code)
	})
}

func TestWorkflowService_AdvanceStep(t *testing.T) {
	consultantID := uint(2)

	twoSteps := func() []models.WorkflowStep {
		return []models.WorkflowStep{
			{StepOrder: 1, Name: "Document collection", Status: models.StepStatusInProgress, AssignedTo: &consultantID},
			{StepOrder: 2, Name: "Primary source verification", Status: models.StepStatusPending, AssignedTo: &consultantID},
		}
	}

	t.Run("assignee completes step and next one starts", func(t *testing.T) {
		repo := seedRepo(models.ApplicationStatusInReview, twoSteps()...)
		repo.app.ID = 1

		svc := NewService(repo, nil)
		step, err := svc.AdvanceStep(context.Background(), consultant(2), 1, 1)

		require.NoError(t, err)
		assert.Equal(t, models.StepStatusCompleted, step.Status)
		assert.NotNil(t, step.CompletedAt)
		assert.Equal(t, models.StepStatusInProgress, repo.steps[1].Status)
		assert.NotNil(t, repo.steps[1].StartedAt)
		require.Len(t, repo.audit, 1)
		assert.Equal(t, models.AuditActionStepCompleted, repo.audit[0].Action)
	})

	t.Run("cannot complete out of order", func(t *testing.T) {
		repo := seedRepo(models.ApplicationStatusInReview, twoSteps()...)
		repo.app.ID = 1

		svc := NewService(repo, nil)
		_, err := svc.AdvanceStep(context.Background(), consultant(2), 1, 2)

		de, ok := domainerrors.AsDomain(err)
		require.True(t, ok)
		assert.Equal(t, "STEP_OUT_OF_ORDER", de.Code)
		assert.Equal(t, models.StepStatusPending, repo.steps[1].Status)
	})

	t.Run("other consultant is rejected", func(t *testing.T) {
		repo := seedRepo(models.ApplicationStatusInReview, twoSteps()...)
		repo.app.ID = 1

		svc := NewService(repo, nil)
		_, err := svc.AdvanceStep(context.Background(), consultant(9), 1, 1)

		de, ok := domainerrors.AsDomain(err)
		require.True(t, ok)
		assert.Equal(t, "STEP_NOT_ASSIGNED", de.Code)
	})

	t.Run("admin overrides assignment", func(t *testing.T) {
		repo := seedRepo(models.ApplicationStatusInReview, twoSteps()...)
		repo.app.ID = 1

		svc := NewService(repo, nil)
		step, err := svc.AdvanceStep(context.Background(), admin(3), 1, 1)

		require.NoError(t, err)
		assert.Equal(t, models.StepStatusCompleted, step.Status)
	})

	t.Run("applicant is forbidden", func(t *testing.T) {
		repo := seedRepo(models.ApplicationStatusInReview, twoSteps()...)
		repo.app.ID = 1

		svc := NewService(repo, nil)
		_, err := svc.AdvanceStep(context.Background(), applicant(10), 1, 1)

		de, ok := domainerrors.AsDomain(err)
		require.True(t, ok)
		assert.Equal(t, "FORBIDDEN", de.Code)
	})

	t.Run("completing the final step approves the application", func(t *testing.T) {
		steps := twoSteps()
		steps[0].Status = models.StepStatusCompleted
		steps[1].Status = models.StepStatusInProgress
		repo := seedRepo(models.ApplicationStatusInReview, steps...)
		repo.app.ID = 1

		svc := NewService(repo, nil)
		step, err := svc.AdvanceStep(context.Background(), consultant(2), 1, 2)

		require.NoError(t, err)
		assert.Equal(t, models.StepStatusCompleted, step.Status)
		assert.Equal(t, models.ApplicationStatusApproved, repo.app.Status)
		assert.NotNil(t, repo.app.DecidedAt)

		// One entry for the step, one for the resulting status change.
		require.Len(t, repo.audit, 2)
		assert.Equal(t, models.AuditActionStepCompleted, repo.audit[0].Action)
		assert.Equal(t, models.AuditActionStatusChange, repo.audit[1].Action)
	})

	t.Run("already completed step is a no-op", func(t *testing.T) {
		steps := twoSteps()
		steps[0].Status = models.StepStatusCompleted
		repo := seedRepo(models.ApplicationStatusInReview, steps...)
		repo.app.ID = 1

		svc := NewService(repo, nil)
		step, err := svc.AdvanceStep(context.Background(), consultant(2), 1, 1)

		require.NoError(t, err)
		assert.Equal(t, models.StepStatusCompleted, step.Status)
		assert.Empty(t, repo.audit)
	})

	t.Run("unknown step order", func(t *testing.T) {
		repo := seedRepo(models.ApplicationStatusInReview, twoSteps()...)
		repo.app.ID = 1

		svc := NewService(repo, nil)
		_, err := svc.AdvanceStep(context.Background(), consultant(2), 1, 9)

		de, ok := domainerrors.AsDomain(err)
		require.True(t, ok)
		assert.Equal(t, "STEP_NOT_FOUND", de.Code)
	})
}

func TestWorkflowService_Get(t *testing.T) {
	t.Run("owner reads own application", func(t *testing.T) {
		repo := seedRepo(models.ApplicationStatusDraft)
		repo.app.ID = 1

		svc := NewService(repo, nil)
		app, err := svc.Get(context.Background(), applicant(10), 1)

		require.NoError(t, err)
		assert.Equal(t, uint(10), app.UserID)
	})

	t.Run("stranger sees not found", func(t *testing.T) {
		repo := seedRepo(models.ApplicationStatusDraft)
		repo.app.ID = 1

		svc := NewService(repo, nil)
		_, err := svc.Get(context.Background(), applicant(99), 1)

		de, ok := domainerrors.AsDomain(err)
		require.True(t, ok)
		assert.Equal(t, "APPLICATION_NOT_FOUND", de.Code)
	})

	t.Run("reviewer reads any application", func(t *testing.T) {
		repo := seedRepo(models.ApplicationStatusDraft)
		repo.app.ID = 1

		svc := NewService(repo, nil)
		_, err := svc.Get(context.Background(), consultant(2), 1)
		require.NoError(t, err)
	})
}

func TestWorkflowService_StatusCounts(t *testing.T) {
	t.Run("reviewer reads the pipeline", func(t *testing.T) {
		repo := seedRepo(models.ApplicationStatusInReview)
		repo.app.ID = 1

		svc := NewService(repo, nil)
		counts, err := svc.StatusCounts(context.Background(), consultant(2))

		require.NoError(t, err)
		assert.Equal(t, int64(1), counts[models.ApplicationStatusInReview])
	})

	t.Run("applicant is forbidden", func(t *testing.T) {
		svc := NewService(&fakeAppRepo{}, nil)
		_, err := svc.StatusCounts(context.Background(), applicant(10))

		de, ok := domainerrors.AsDomain(err)
		require.True(t, ok)
		assert.Equal(t, "FORBIDDEN", de.Code)
	})
}

func TestWorkflowService_Update(t *testing.T) {
	t.Run("draft is editable by owner", func(t *testing.T) {
		repo := seedRepo(models.ApplicationStatusDraft)
		repo.app.ID = 1
		country := "Qatar"

		svc := NewService(repo, nil)
		app, err := svc.Update(context.Background(), applicant(10), 1, models.UpdateApplicationInput{
			TargetCountry: &country,
			PersonalInfo:  models.JSON{"fullName": "Updated Name"},
		})

		require.NoError(t, err)
		assert.Equal(t, "Qatar", app.TargetCountry)
		assert.Equal(t, "Updated Name", app.PersonalInfo["fullName"])
	})

	t.Run("submitted application is locked", func(t *testing.T) {
		repo := seedRepo(models.ApplicationStatusSubmitted)
		repo.app.ID = 1
		country := "Qatar"

		svc := NewService(repo, nil)
		_, err := svc.Update(context.Background(), applicant(10), 1, models.UpdateApplicationInput{
			TargetCountry: &country,
		})

		de, ok := domainerrors.AsDomain(err)
		require.True(t, ok)
		assert.Equal(t, "INVALID_TRANSITION", de.Code)
		assert.Empty(t, repo.app.TargetCountry, "locked application must not be mutated")
	})
}
