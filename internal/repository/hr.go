// internal/repository/hr.go
package repository

import (
	"context"
	"fmt"

	"github.com/AbuAli85/contract-management-backend/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HRRepositoryIface interface {
	PendingLeavesByCompanies(ctx context.Context, companyIDs []uuid.UUID) ([]*model.LeaveRequest, error)
	PendingExpensesByCompanies(ctx context.Context, companyIDs []uuid.UUID) ([]*model.ExpenseClaim, error)
	PendingReviewsByCompanies(ctx context.Context, companyIDs []uuid.UUID) ([]*model.PerformanceReview, error)
}

type HRRepository struct {
	db *gorm.DB
}

func NewHRRepository(db *gorm.DB) *HRRepository {
	return &HRRepository{db: db}
}

func (r *HRRepository) PendingLeavesByCompanies(ctx context.Context, companyIDs []uuid.UUID) ([]*model.LeaveRequest, error) {
	if len(companyIDs) == 0 {
		return nil, nil
	}
	var leaves []*model.LeaveRequest
	result := r.db.WithContext(ctx).
		Where("company_id IN ? AND status = ?", companyIDs, "pending").
		Find(&leaves)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find leave requests: %w", result.Error)
	}
	return leaves, nil
}

// PendingExpensesByCompanies includes drafts, matching how the expense
// approval queue presents them.
func (r *HRRepository) PendingExpensesByCompanies(ctx context.Context, companyIDs []uuid.UUID) ([]*model.ExpenseClaim, error) {
	if len(companyIDs) == 0 {
		return nil, nil
	}
	var expenses []*model.ExpenseClaim
	result := r.db.WithContext(ctx).
		Where("company_id IN ? AND status IN ?", companyIDs, []string{"pending", "draft"}).
		Find(&expenses)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find expense claims: %w", result.Error)
	}
	return expenses, nil
}

func (r *HRRepository) PendingReviewsByCompanies(ctx context.Context, companyIDs []uuid.UUID) ([]*model.PerformanceReview, error) {
	if len(companyIDs) == 0 {
		return nil, nil
	}
	var reviews []*model.PerformanceReview
	result := r.db.WithContext(ctx).
		Where("company_id IN ? AND status = ?", companyIDs, "pending").
		Find(&reviews)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find performance reviews: %w", result.Error)
	}
	return reviews, nil
}
