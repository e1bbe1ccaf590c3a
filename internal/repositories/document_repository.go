package repositories

import (
	"context"
	"errors"

	"credvia/internal/models"

	"gorm.io/gorm"
)

var ErrDocumentNotFound = errors.New("document not found")

// DocumentRepository defines document persistence operations.
type DocumentRepository interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByID(ctx context.Context, id uint) (*models.Document, error)
	ListByUser(ctx context.Context, userID uint, offset, limit int) ([]models.Document, int64, error)
	// UpdateVerification sets the verification status together with the
	// reviewer fields in a single statement.
	UpdateVerification(ctx context.Context, doc *models.Document) error
}

type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, doc *models.Document) error {
	return r.db.WithContext(ctx).Create(doc).Error
}

func (r *documentRepository) GetByID(ctx context.Context, id uint) (*models.Document, error) {
	var doc models.Document
	if err := r.db.WithContext(ctx).First(&doc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]models.Document, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Document{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var docs []models.Document
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&docs).Error; err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

func (r *documentRepository) UpdateVerification(ctx context.Context, doc *models.Document) error {
	// One statement so status and reviewer fields can never drift apart.
	return r.db.WithContext(ctx).Model(doc).Updates(map[string]interface{}{
		"verification_status": doc.VerificationStatus,
		"verified_by":         doc.VerifiedBy,
		"verified_at":         doc.VerifiedAt,
	}).Error
}
