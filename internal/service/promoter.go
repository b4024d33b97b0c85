// internal/service/promoter.go
package service

import (
	"context"
	"fmt"

	"github.com/AbuAli85/contract-management-backend/internal/domain"
	"github.com/AbuAli85/contract-management-backend/internal/model"
	"github.com/AbuAli85/contract-management-backend/internal/repository"
	"github.com/google/uuid"
)

type PromoterService struct {
	workforce repository.WorkforceRepositoryIface
	parties   repository.PartyRepositoryIface
}

func NewPromoterService(workforce repository.WorkforceRepositoryIface, parties repository.PartyRepositoryIface) *PromoterService {
	return &PromoterService{workforce: workforce, parties: parties}
}

type PromoterInput struct {
	EmployerID uuid.UUID `json:"employer_id" validate:"required"`
	FullName   string    `json:"full_name" validate:"required,min=2,max=200"`
	Email      string    `json:"email" validate:"omitempty,email"`
}

func (s *PromoterService) Create(ctx context.Context, input PromoterInput) (*model.Promoter, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	// Promoters hang off employer parties only.
	employer, err := s.parties.FindByID(ctx, input.EmployerID)
	if err != nil {
		return nil, err
	}
	if employer.Type != model.PartyTypeEmployer {
		return nil, fmt.Errorf("%w: promoter employer must be an Employer party", domain.ErrInvalidPartyType)
	}

	promoter := &model.Promoter{
		EmployerID: input.EmployerID,
		FullName:   input.FullName,
		Email:      input.Email,
		Status:     "active",
	}
	if err := s.workforce.CreatePromoter(ctx, promoter); err != nil {
		return nil, err
	}
	return promoter, nil
}

func (s *PromoterService) Update(ctx context.Context, id uuid.UUID, input PromoterInput) (*model.Promoter, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	promoter, err := s.workforce.FindPromoterByID(ctx, id)
	if err != nil {
		return nil, err
	}
	promoter.EmployerID = input.EmployerID
	promoter.FullName = input.FullName
	promoter.Email = input.Email

	if err := s.workforce.UpdatePromoter(ctx, promoter); err != nil {
		return nil, err
	}
	return promoter, nil
}

func (s *PromoterService) Get(ctx context.Context, id uuid.UUID) (*model.Promoter, error) {
	return s.workforce.FindPromoterByID(ctx, id)
}

func (s *PromoterService) List(ctx context.Context, offset, limit int) ([]*model.Promoter, int64, error) {
	return s.workforce.FindPromotersPaginated(ctx, offset, limit)
}
