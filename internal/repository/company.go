// internal/repository/company.go
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

type CompanyRepositoryIface interface {
	FindMembershipsByUser(ctx context.Context, userID uuid.UUID) ([]*model.CompanyMember, error)
	FindActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Company, error)
	FindActiveByPartyEmail(ctx context.Context, email string) ([]*model.Company, error)
	FindActiveByPartyIDs(ctx context.Context, partyIDs []uuid.UUID) ([]*model.Company, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Company, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	Create(ctx context.Context, company *model.Company) error
	Update(ctx context.Context, company *model.Company) error
	FindAllPaginated(ctx context.Context, offset, limit int) ([]*model.Company, int64, error)
}

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// FindMembershipsByUser returns the user's active memberships with the
// company row preloaded.
func (r *CompanyRepository) FindMembershipsByUser(ctx context.Context, userID uuid.UUID) ([]*model.CompanyMember, error) {
	var members []*model.CompanyMember
	result := r.db.WithContext(ctx).
		Preload("Company").
		Where("user_id = ? AND is_active = ?", userID, true).
		Find(&members)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find memberships: %w", result.Error)
	}
	return members, nil
}

func (r *CompanyRepository) FindActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Company, error) {
	var companies []*model.Company
	result := r.db.WithContext(ctx).
		Where("owner_id = ? AND is_active = ?", ownerID, true).
		Find(&companies)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find owned companies: %w", result.Error)
	}
	return companies, nil
}

// FindActiveByPartyEmail returns active companies whose linked party's
// contact_email equals the given email, compared case-insensitively.
func (r *CompanyRepository) FindActiveByPartyEmail(ctx context.Context, email string) ([]*model.Company, error) {
	var companies []*model.Company
	result := r.db.WithContext(ctx).
		Joins("JOIN parties ON parties.id = companies.party_id").
		Where("companies.is_active = ? AND parties.contact_email ILIKE ?", true, email).
		Preload("Party").
		Find(&companies)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find companies by party email: %w", result.Error)
	}
	return companies, nil
}

func (r *CompanyRepository) FindActiveByPartyIDs(ctx context.Context, partyIDs []uuid.UUID) ([]*model.Company, error) {
	if len(partyIDs) == 0 {
		return nil, nil
	}
	var companies []*model.Company
	result := r.db.WithContext(ctx).
		Where("party_id IN ? AND is_active = ?", partyIDs, true).
		Preload("Party").
		Find(&companies)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find companies by party ids: %w", result.Error)
	}
	return companies, nil
}

func (r *CompanyRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Company, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var companies []*model.Company
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&companies)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find companies by ids: %w", result.Error)
	}
	return companies, nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	var company model.Company
	if err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("finding company: %w", err)
	}
	return &company, nil
}

func (r *CompanyRepository) Create(ctx context.Context, company *model.Company) error {
	if err := r.db.WithContext(ctx).Create(company).Error; err != nil {
		return fmt.Errorf("creating company: %w", err)
	}
	return nil
}

func (r *CompanyRepository) Update(ctx context.Context, company *model.Company) error {
	if err := r.db.WithContext(ctx).Save(company).Error; err != nil {
		return fmt.Errorf("updating company: %w", err)
	}
	return nil
}

// FindAllPaginated returns a paginated list of companies
func (r *CompanyRepository) FindAllPaginated(ctx context.Context, offset, limit int) ([]*model.Company, int64, error) {
	var companies []*model.Company
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.Company{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count companies: %w", err)
	}

	result := r.db.WithContext(ctx).Offset(offset).Limit(limit).Order("created_at DESC").Find(&companies)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated companies: %w", result.Error)
	}

	return companies, count, nil
}
