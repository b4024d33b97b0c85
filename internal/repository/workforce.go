// internal/repository/workforce.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AbuAli85/contract-management-backend/internal/domain"
	"github.com/AbuAli85/contract-management-backend/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkforceRepositoryIface interface {
	ActiveEmployeesByCompanies(ctx context.Context, companyIDs []uuid.UUID) ([]*model.EmployerEmployee, error)
	ActivePromotersByEmployers(ctx context.Context, partyIDs []uuid.UUID) ([]*model.Promoter, error)
	AttendanceForDay(ctx context.Context, employeeIDs []uuid.UUID, day time.Time) ([]*model.EmployeeAttendance, error)
	OpenTasksByEmployees(ctx context.Context, employeeIDs []uuid.UUID) ([]*model.EmployeeTask, error)

	FindPromoterByID(ctx context.Context, id uuid.UUID) (*model.Promoter, error)
	CreatePromoter(ctx context.Context, promoter *model.Promoter) error
	UpdatePromoter(ctx context.Context, promoter *model.Promoter) error
	FindPromotersPaginated(ctx context.Context, offset, limit int) ([]*model.Promoter, int64, error)
}

type WorkforceRepository struct {
	db *gorm.DB
}

func NewWorkforceRepository(db *gorm.DB) *WorkforceRepository {
	return &WorkforceRepository{db: db}
}

func (r *WorkforceRepository) ActiveEmployeesByCompanies(ctx context.Context, companyIDs []uuid.UUID) ([]*model.EmployerEmployee, error) {
	if len(companyIDs) == 0 {
		return nil, nil
	}
	var employees []*model.EmployerEmployee
	result := r.db.WithContext(ctx).
		Where("company_id IN ? AND status = ?", companyIDs, "active").
		Find(&employees)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find employees: %w", result.Error)
	}
	return employees, nil
}

func (r *WorkforceRepository) ActivePromotersByEmployers(ctx context.Context, partyIDs []uuid.UUID) ([]*model.Promoter, error) {
	if len(partyIDs) == 0 {
		return nil, nil
	}
	var promoters []*model.Promoter
	result := r.db.WithContext(ctx).
		Where("employer_id IN ? AND status = ?", partyIDs, "active").
		Find(&promoters)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find promoters: %w", result.Error)
	}
	return promoters, nil
}

// AttendanceForDay returns attendance rows with a recorded check-in for the
// given calendar day.
func (r *WorkforceRepository) AttendanceForDay(ctx context.Context, employeeIDs []uuid.UUID, day time.Time) ([]*model.EmployeeAttendance, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	var rows []*model.EmployeeAttendance
	result := r.db.WithContext(ctx).
		Where("employee_id IN ? AND work_date = ? AND check_in_at IS NOT NULL", employeeIDs, day.Format("2006-01-02")).
		Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find attendance: %w", result.Error)
	}
	return rows, nil
}

func (r *WorkforceRepository) OpenTasksByEmployees(ctx context.Context, employeeIDs []uuid.UUID) ([]*model.EmployeeTask, error) {
	if len(employeeIDs) == 0 {
		return nil, nil
	}
	var tasks []*model.EmployeeTask
	result := r.db.WithContext(ctx).
		Where("employee_id IN ? AND status IN ?", employeeIDs, []model.TaskStatus{model.TaskStatusOpen, model.TaskStatusInProgress}).
		Find(&tasks)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find tasks: %w", result.Error)
	}
	return tasks, nil
}

func (r *WorkforceRepository) FindPromoterByID(ctx context.Context, id uuid.UUID) (*model.Promoter, error) {
	var promoter model.Promoter
	if err := r.db.WithContext(ctx).First(&promoter, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPromoterNotFound
		}
		return nil, fmt.Errorf("finding promoter: %w", err)
	}
	return &promoter, nil
}

func (r *WorkforceRepository) CreatePromoter(ctx context.Context, promoter *model.Promoter) error {
	if err := r.db.WithContext(ctx).Create(promoter).Error; err != nil {
		return fmt.Errorf("creating promoter: %w", err)
	}
	return nil
}

func (r *WorkforceRepository) UpdatePromoter(ctx context.Context, promoter *model.Promoter) error {
	if err := r.db.WithContext(ctx).Save(promoter).Error; err != nil {
		return fmt.Errorf("updating promoter: %w", err)
	}
	return nil
}

// FindPromotersPaginated returns a paginated list of promoters
func (r *WorkforceRepository) FindPromotersPaginated(ctx context.Context, offset, limit int) ([]*model.Promoter, int64, error) {
	var promoters []*model.Promoter
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.Promoter{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count promoters: %w", err)
	}

	result := r.db.WithContext(ctx).Offset(offset).Limit(limit).Order("created_at DESC").Find(&promoters)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated promoters: %w", result.Error)
	}

	return promoters, count, nil
}
