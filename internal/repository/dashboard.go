// internal/repository/dashboard.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/AbuAli85/contract-management-backend/internal/domain"
	"github.com/AbuAli85/contract-management-backend/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DashboardRepositoryIface interface {
	FindByUser(ctx context.Context, userID uuid.UUID) (*model.DashboardLayout, error)
	Save(ctx context.Context, layout *model.DashboardLayout) error
}

type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*model.DashboardLayout, error) {
	var layout model.DashboardLayout
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&layout)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLayoutNotFound
		}
		return nil, fmt.Errorf("failed to find dashboard layout: %w", result.Error)
	}
	return &layout, nil
}

// Save replaces the user's stored layout, creating the row on first save.
func (r *DashboardRepository) Save(ctx context.Context, layout *model.DashboardLayout) error {
	return inTx(ctx, r.db, func(tx *gorm.DB) error {
		var existing model.DashboardLayout
		err := tx.Where("user_id = ?", layout.UserID).First(&existing).Error
		switch {
		case err == nil:
			layout.ID = existing.ID
			if err := tx.Save(layout).Error; err != nil {
				return fmt.Errorf("updating dashboard layout: %w", err)
			}
			return nil
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(layout).Error; err != nil {
				return fmt.Errorf("creating dashboard layout: %w", err)
			}
			return nil
		default:
			return fmt.Errorf("finding dashboard layout: %w", err)
		}
	})
}
