// internal/service/contract.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/AbuAli85/contract-management-backend/internal/domain"
	"github.com/AbuAli85/contract-management-backend/internal/model"
	"github.com/AbuAli85/contract-management-backend/internal/repository"
	"github.com/google/uuid"
)

type ContractService struct {
	contracts repository.ContractRepositoryIface
}

func NewContractService(contracts repository.ContractRepositoryIface) *ContractService {
	return &ContractService{contracts: contracts}
}

type ContractInput struct {
	Title         string     `json:"title" validate:"required,min=2,max=300"`
	FirstPartyID  uuid.UUID  `json:"first_party_id" validate:"required"`
	SecondPartyID uuid.UUID  `json:"second_party_id" validate:"required,nefield=FirstPartyID"`
	PromoterID    *uuid.UUID `json:"promoter_id"`
	Status        string     `json:"status" validate:"omitempty,oneof=draft active expired"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
}

func (s *ContractService) Create(ctx context.Context, input ContractInput) (*model.Contract, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	status := model.ContractStatusDraft
	if input.Status != "" {
		status = model.ContractStatus(input.Status)
	}
	contract := &model.Contract{
		Title:         input.Title,
		FirstPartyID:  input.FirstPartyID,
		SecondPartyID: input.SecondPartyID,
		PromoterID:    input.PromoterID,
		Status:        status,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
	}
	if err := s.contracts.Create(ctx, contract); err != nil {
		return nil, err
	}
	return contract, nil
}

func (s *ContractService) Update(ctx context.Context, id uuid.UUID, input ContractInput) (*model.Contract, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	contract, err := s.contracts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	contract.Title = input.Title
	contract.FirstPartyID = input.FirstPartyID
	contract.SecondPartyID = input.SecondPartyID
	contract.PromoterID = input.PromoterID
	if input.Status != "" {
		contract.Status = model.ContractStatus(input.Status)
	}
	contract.StartDate = input.StartDate
	contract.EndDate = input.EndDate

	if err := s.contracts.Update(ctx, contract); err != nil {
		return nil, err
	}
	return contract, nil
}

func (s *ContractService) Get(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	return s.contracts.FindByID(ctx, id)
}

func (s *ContractService) List(ctx context.Context, offset, limit int) ([]*model.Contract, int64, error) {
	return s.contracts.FindAllPaginated(ctx, offset, limit)
}
