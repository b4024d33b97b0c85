// internal/repository/contract.go
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

type ContractRepositoryIface interface {
	ActiveByFirstParties(ctx context.Context, partyIDs []uuid.UUID) ([]*model.Contract, error)
	ActiveBySecondParties(ctx context.Context, partyIDs []uuid.UUID) ([]*model.Contract, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Contract, error)
	Create(ctx context.Context, contract *model.Contract) error
	Update(ctx context.Context, contract *model.Contract) error
	FindAllPaginated(ctx context.Context, offset, limit int) ([]*model.Contract, int64, error)
}

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) ActiveByFirstParties(ctx context.Context, partyIDs []uuid.UUID) ([]*model.Contract, error) {
	return r.activeByPartyColumn(ctx, "first_party_id", partyIDs)
}

func (r *ContractRepository) ActiveBySecondParties(ctx context.Context, partyIDs []uuid.UUID) ([]*model.Contract, error) {
	return r.activeByPartyColumn(ctx, "second_party_id", partyIDs)
}

func (r *ContractRepository) activeByPartyColumn(ctx context.Context, column string, partyIDs []uuid.UUID) ([]*model.Contract, error) {
	if len(partyIDs) == 0 {
		return nil, nil
	}
	var contracts []*model.Contract
	result := r.db.WithContext(ctx).
		Where(column+" IN ? AND status = ?", partyIDs, model.ContractStatusActive).
		Find(&contracts)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find contracts by %s: %w", column, result.Error)
	}
	return contracts, nil
}

func (r *ContractRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	var contract model.Contract
	if err := r.db.WithContext(ctx).First(&contract, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrContractNotFound
		}
		return nil, fmt.Errorf("finding contract: %w", err)
	}
	return &contract, nil
}

func (r *ContractRepository) Create(ctx context.Context, contract *model.Contract) error {
	if err := r.db.WithContext(ctx).Create(contract).Error; err != nil {
		return fmt.Errorf("creating contract: %w", err)
	}
	return nil
}

func (r *ContractRepository) Update(ctx context.Context, contract *model.Contract) error {
	if err := r.db.WithContext(ctx).Save(contract).Error; err != nil {
		return fmt.Errorf("updating contract: %w", err)
	}
	return nil
}

// FindAllPaginated returns a paginated list of contracts
func (r *ContractRepository) FindAllPaginated(ctx context.Context, offset, limit int) ([]*model.Contract, int64, error) {
	var contracts []*model.Contract
	var count int64

	if err := r.db.WithContext(ctx).Model(&model.Contract{}).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count contracts: %w", err)
	}

	result := r.db.WithContext(ctx).Offset(offset).Limit(limit).Order("created_at DESC").Find(&contracts)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to find paginated contracts: %w", result.Error)
	}

	return contracts, count, nil
}
