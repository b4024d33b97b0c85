// internal/repository/party.go
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

type PartyRepositoryIface interface {
	FindActiveEmployersByContactEmail(ctx context.Context, email string) ([]*model.Party, error)
	FindActiveEmployers(ctx context.Context) ([]*model.Party, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Party, error)
	Create(ctx context.Context, party *model.Party) error
	Update(ctx context.Context, party *model.Party) error
	FindAllPaginated(ctx context.Context, offset, limit int) ([]*model.Party, int64, error)
}

type PartyRepository struct {
	db *gorm.DB
}

func NewPartyRepository(db *gorm.DB) *PartyRepository {
	return &PartyRepository{db: db}
}

func (r *PartyRepository) FindActiveEmployersByContactEmail(ctx context.Context, email string) ([]*model.Party, error) {
	var parties []*model.Party
	result := r.db.WithContext(ctx).
		Where("type = ? AND status = ? AND contact_email ILIKE ?", model.PartyTypeEmployer, model.PartyStatusActive, email).
		Find(&parties)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find employer parties by email: %w", result.Error)
	}
	return parties, nil
}

func (r *PartyRepository) FindActiveEmployers(ctx context.Context) ([]*model.Party, error) {
	var parties []*model.Party
	result := r.db.WithContext(ctx).
		Where("type = ? AND status = ?", model.PartyTypeEmployer, model.PartyStatusActive).
		Find(&parties)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find employer parties: %w", result.Error)
	}
	return parties, nil
}

func (r *PartyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Party, error) {
	var party model.Party
	if err := r.db.WithContext(ctx).First(&party, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPartyNotFound
		}
		return nil, fmt.Errorf("finding party: %w", err)
	}
	return &party, nil
}

func (r *PartyRepository) Create(ctx context.Context, party *model.Party) error {
	if err := r.db.WithContext(ctx).Create(party).Error; err != nil {
		return fmt.Errorf("creating party: %w", err)
	}
	return nil
}

func (r *PartyRepository) Update(ctx context.Context, party *model.Party) error {
	if err := r.db.WithContext(ctx).Save(party).Error; err != nil {
		return fmt.Errorf("updating party: %w", err)
	}
	return nil
}

// FindAllPaginated returns a paginated list of parties
func (r *PartyRepository) FindAllPaginated(ctx context.Context, offset, limit int) ([]*model.Party, int64, error) {
	var parties []*model.Party
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.Party{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count parties: %w", err)
	}

	result := r.db.WithContext(ctx).Offset(offset).Limit(limit).Order("created_at DESC").Find(&parties)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated parties: %w", result.Error)
	}

	return parties, count, nil
}
