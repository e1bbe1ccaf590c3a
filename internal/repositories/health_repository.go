package repositories

import (
	"context"
	"time"

	"credvia/internal/models"

	"gorm.io/gorm"
)

// StoreStats are the coarse counts reported by the health endpoint.
type StoreStats struct {
	Users                int64 `json:"users"`
	Applications         int64 `json:"applications"`
	Documents            int64 `json:"documents"`
	PendingNotifications int64 `json:"pendingNotifications"`
}

// HealthRepository probes entity-store connectivity for diagnostics.
type HealthRepository interface {
	// Probe pings the store, gathers coarse counts and reports the
	// round-trip latency of the liveness query.
	Probe(ctx context.Context) (StoreStats, time.Duration, error)
}

type healthRepository struct {
	db *gorm.DB
}

// NewHealthRepository creates a new HealthRepository.
func NewHealthRepository(db *gorm.DB) HealthRepository {
	return &healthRepository{db: db}
}

func (r *healthRepository) Probe(ctx context.Context) (StoreStats, time.Duration, error) {
	start := time.Now()

	sqlDB, err := r.db.DB()
	if err != nil {
		return StoreStats{}, time.Since(start), err
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return StoreStats{}, time.Since(start), err
	}

	var stats StoreStats
	db := r.db.WithContext(ctx)
	if err := db.Model(&models.User{}).Count(&stats.Users).Error; err != nil {
		return StoreStats{}, time.Since(start), err
	}
	if err := db.Model(&models.Application{}).Count(&stats.Applications).Error; err != nil {
		return StoreStats{}, time.Since(start), err
	}
	if err := db.Model(&models.Document{}).Count(&stats.Documents).Error; err != nil {
		return StoreStats{}, time.Since(start), err
	}
	err = db.Model(&models.Notification{}).
		Where("status = ?", models.NotificationPending).
		Count(&stats.PendingNotifications).Error
	return stats, time.Since(start), err
}
