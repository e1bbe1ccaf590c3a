package repositories

import (
	"context"
	"errors"
	"log"

	"credvia/internal/models"
	"credvia/internal/repositories/cache"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type applicationRepository struct {
	db    *gorm.DB
	cache *cache.CacheService
}

// NewApplicationRepository creates a new ApplicationRepository.
func NewApplicationRepository(db *gorm.DB, cache *cache.CacheService) ApplicationRepository {
	return &applicationRepository{db: db, cache: cache}
}

func (r *applicationRepository) Create(ctx context.Context, app *models.Application, steps []models.WorkflowStep) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			return err
		}
		for i := range steps {
			steps[i].ApplicationID = app.ID
		}
		if len(steps) > 0 {
			if err := tx.Create(&steps).Error; err != nil {
				return err
			}
		}
		app.WorkflowSteps = steps
		return nil
	})
}

func (r *applicationRepository) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	if r.cache != nil {
		if app, err := r.cache.GetApplication(ctx, id); err == nil {
			return app, nil
		}
	}

	var app models.Application
	if err := r.db.WithContext(ctx).First(&app, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.CacheApplication(ctx, &app); err != nil {
			log.Printf("failed to cache application %d: %v", app.ID, err)
		}
	}
	return &app, nil
}

func (r *applicationRepository) GetDetailed(ctx context.Context, id uint) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).
		Preload("WorkflowSteps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_order ASC")
		}).
		Preload("Documents").
		Preload("Payments").
		First(&app, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) ListByUser(ctx context.Context, userID uint, offset, limit int) ([]models.Application, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Application{}).Where("user_id = ?", userID)
	return r.page(query, offset, limit)
}

func (r *applicationRepository) List(ctx context.Context, status models.ApplicationStatus, offset, limit int) ([]models.Application, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Application{})
	if status != "" {
		query = query.Where("status = ?", status)
	}
	return r.page(query, offset, limit)
}

func (r *applicationRepository) page(query *gorm.DB, offset, limit int) ([]models.Application, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var apps []models.Application
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&apps).Error; err != nil {
		return nil, 0, err
	}
	return apps, total, nil
}

func (r *applicationRepository) Update(ctx context.Context, app *models.Application) error {
	if err := r.db.WithContext(ctx).Save(app).Error; err != nil {
		return err
	}
	r.invalidate(ctx, app.ID)
	return nil
}

func (r *applicationRepository) UpdateAtomic(ctx context.Context, id uint, fn func(txn *ApplicationTxn) error) (*models.Application, error) {
	var result *models.Application
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var app models.Application
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&app, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrApplicationNotFound
			}
			return err
		}

		var steps []models.WorkflowStep
		if err := tx.Where("application_id = ?", id).
			Order("step_order ASC").
			Find(&steps).Error; err != nil {
			return err
		}

		txn := &ApplicationTxn{Application: &app, Steps: steps}
		if err := fn(txn); err != nil {
			return err
		}

		if err := tx.Save(&app).Error; err != nil {
			return err
		}
		for i := range txn.Steps {
			if err := tx.Save(&txn.Steps[i]).Error; err != nil {
				return err
			}
		}
		if len(txn.Audit) > 0 {
			if err := tx.Create(&txn.Audit).Error; err != nil {
				return err
			}
		}

		app.WorkflowSteps = txn.Steps
		result = &app
		return nil
	})
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, id)
	return result, nil
}

func (r *applicationRepository) CountByStatus(ctx context.Context) (map[models.ApplicationStatus]int64, error) {
	type row struct {
		Status models.ApplicationStatus
		Count  int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[models.ApplicationStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

func (r *applicationRepository) invalidate(ctx context.Context, id uint) {
	if r.cache == nil {
		return
	}
	if err := r.cache.InvalidateApplication(ctx, id); err != nil {
		log.Printf("failed to invalidate application cache %d: %v", id, err)
	}
}
