package document

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

type mockDocumentRepo struct {
	mock.Mock
}

func (m *mockDocumentRepo) Create(ctx context.Context, doc *models.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *mockDocumentRepo) GetByID(ctx context.Context, id uint) (*models.Document, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Document), args.Error(1)
}

func (m *mockDocumentRepo) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]models.Document, int64, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.Document), args.Get(1).(int64), args.Error(2)
}

func (m *mockDocumentRepo) UpdateVerification(ctx context.Context, doc *models.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

// stubAppRepo serves the ownership lookup during Attach. The embedded
// interface panics on everything else, which this package never calls.
type stubAppRepo struct {
	repositories.ApplicationRepository
	app *models.Application
}

func (s *stubAppRepo) GetByID(_ context.Context, id uint) (*models.Application, error) {
	if s.app == nil || s.app.ID != id {
		return nil, repositories.ErrApplicationNotFound
	}
	return s.app, nil
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

func validAttachInput() models.AttachDocumentInput {
	return models.AttachDocumentInput{
		Type:     models.DocumentTypePassport,
		FileName: "passport.pdf",
		FileSize: 512 * 1024,
		MimeType: "application/pdf",
	}
}

func TestDocumentService_Attach(t *testing.T) {
	actor := &models.UserClaims{UserID: 10, Role: models.RoleApplicant}

	t.Run("records pending document with storage key", func(t *testing.T) {
		repo := new(mockDocumentRepo)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Document")).Return(nil)

		svc := NewService(repo, &stubAppRepo{}, nil, Config{})
		doc, err := svc.Attach(context.Background(), actor, validAttachInput())

		require.NoError(t, err)
		assert.Equal(t, models.VerificationPending, doc.VerificationStatus)
		assert.Equal(t, uint(10), doc.UserID)
		assert.NotEmpty(t, doc.StorageKey)
		assert.Nil(t, doc.VerifiedBy)
		repo.AssertExpectations(t)
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		input := validAttachInput()
		input.FileSize = 11 << 20

		svc := NewService(new(mockDocumentRepo), &stubAppRepo{}, nil, Config{})
		_, err := svc.Attach(context.Background(), actor, input)

		de, ok := domainerrors.AsDomain(err)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", de.Code)
	})

	t.Run("rejects mime type not allowed for the type", func(t *testing.T) {
		input := validAttachInput()
		input.Type = models.DocumentTypePhoto
		input.FileSize = 1 << 20
		input.MimeType = "application/pdf"

		svc := NewService(new(mockDocumentRepo), &stubAppRepo{}, nil, Config{})
		_, err := svc.Attach(context.Background(), actor, input)

		de, ok := domainerrors.AsDomain(err)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", de.Code)
	})

	t.Run("rejects unknown document type", func(t *testing.T) {
		input := validAttachInput()
		input.Type = "SELFIE"

		svc := NewService(new(mockDocumentRepo), &stubAppRepo{}, nil, Config{})
		_, err := svc.Attach(context.Background(), actor, input)

		de, ok := domainerrors.AsDomain(err)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", de.Code)
	})

	t.Run("scopes to caller's own application", func(t *testing.T) {
		appID := uint(1)
		appRepo := &stubAppRepo{app: &models.Application{UserID: 10}}
		appRepo.app.ID = appID
		repo := new(mockDocumentRepo)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Document")).Return(nil)

		input := validAttachInput()
		input.ApplicationID = &appID

		svc := NewService(repo, appRepo, nil, Config{})
		doc, err := svc.Attach(context.Background(), actor, input)

		require.NoError(t, err)
		require.NotNil(t, doc.ApplicationID)
		assert.Equal(t, appID, *doc.ApplicationID)
	})

	t.Run("someone else's application reads as not found", func(t *testing.T) {
		appID := uint(1)
		appRepo := &stubAppRepo{app: &models.Application{UserID: 99}}
		appRepo.app.ID = appID

		input := validAttachInput()
		input.ApplicationID = &appID

		svc := NewService(new(mockDocumentRepo), appRepo, nil, Config{})
		_, err := svc.Attach(context.Background(), actor, input)

		de, ok := domainerrors.AsDomain(err)
		require.True(t, ok)
		assert.Equal(t, "APPLICATION_NOT_FOUND", de.Code)
	})
}

func TestDocumentService_Review(t *testing.T) {
	stored := func() *models.Document {
		doc := &models.Document{
			UserID:             10,
			Type:               models.DocumentTypePassport,
			FileName:           "passport.pdf",
			VerificationStatus: models.VerificationPending,
		}
		doc.ID = 5
		return doc
	}

	t.Run("reviewer verifies document", func(t *testing.T) {
		repo := new(mockDocumentRepo)
		repo.On("GetByID", mock.Anything, uint(5)).Return(stored(), nil)
		repo.On("UpdateVerification", mock.Anything, mock.AnythingOfType("*models.Document")).Return(nil)
		notifier := new(mockNotifier)
		notifier.On("NotifyDocumentReviewed", mock.Anything, uint(10), "passport.pdf", models.VerificationVerified).Return(nil)

		svc := NewService(repo, &stubAppRepo{}, notifier, Config{})
		doc, err := svc.Review(context.Background(), &models.UserClaims{UserID: 2, Role: models.RoleConsultant}, 5, models.VerificationVerified)

		require.NoError(t, err)
		assert.Equal(t, models.VerificationVerified, doc.VerificationStatus)
		require.NotNil(t, doc.VerifiedBy)
		assert.Equal(t, uint(2), *doc.VerifiedBy)
		assert.NotNil(t, doc.VerifiedAt)
		repo.AssertExpectations(t)
		notifier.AssertExpectations(t)
	})

	t.Run("applicant is forbidden", func(t *testing.T) {
		svc := NewService(new(mockDocumentRepo), &stubAppRepo{}, nil, Config{})
		_, err := svc.Review(context.Background(), &models.UserClaims{UserID: 10, Role: models.RoleApplicant}, 5, models.VerificationVerified)

		de, ok := domainerrors.AsDomain(err)
		require.True(t, ok)
		assert.Equal(t, "FORBIDDEN", de.Code)
	})

	t.Run("rejects a status outside the decision set", func(t *testing.T) {
		svc := NewService(new(mockDocumentRepo), &stubAppRepo{}, nil, Config{})
		_, err := svc.Review(context.Background(), &models.UserClaims{UserID: 2, Role: models.RoleConsultant}, 5, "PENDING")

		de, ok := domainerrors.AsDomain(err)
		require.True(t, ok)
		assert.Equal(t, "VALIDATION_ERROR", de.Code)
	})

	t.Run("unknown document", func(t *testing.T) {
		repo := new(mockDocumentRepo)
		repo.On("GetByID", mock.Anything, uint(404)).Return(nil, repositories.ErrDocumentNotFound)

		svc := NewService(repo, &stubAppRepo{}, nil, Config{})
		_, err := svc.Review(context.Background(), &models.UserClaims{UserID: 2, Role: models.RoleConsultant}, 404, models.VerificationRejected)

		de, ok := domainerrors.AsDomain(err)
		require.True(t, ok)
		assert.Equal(t, "DOCUMENT_NOT_FOUND", de.Code)
	})
}

func TestConfig_CheckFile(t *testing.T) {
	var cfg Config
	cfg.applyDefaults()

	tests := []struct {
		name    string
		docType models.DocumentType
		size    int64
		mime    string
		wantErr bool
	}{
		{"pdf passport within limit", models.DocumentTypePassport, 1 << 20, "application/pdf", false},
		{"jpeg transcript", models.DocumentTypeTranscript, 1 << 20, "image/jpeg", false},
		{"photo capped at 2MiB", models.DocumentTypePhoto, 3 << 20, "image/jpeg", true},
		{"photo must be an image", models.DocumentTypePhoto, 1 << 20, "application/pdf", true},
		{"experience letter is pdf only", models.DocumentTypeExperienceLetter, 1 << 20, "image/png", true},
		{"oversized pdf", models.DocumentTypeLicense, 20 << 20, "application/pdf", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cfg.CheckFile(tt.docType, tt.size, tt.mime)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
