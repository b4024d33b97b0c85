// internal/service/company.go
package service

import (
	"context"
	"fmt"

	"github.com/AbuAli85/contract-management-backend/internal/domain"
	"github.com/AbuAli85/contract-management-backend/internal/model"
	"github.com/AbuAli85/contract-management-backend/internal/repository"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

type CompanyService struct {
	companies repository.CompanyRepositoryIface
}

func NewCompanyService(companies repository.CompanyRepositoryIface) *CompanyService {
	return &CompanyService{companies: companies}
}

type CompanyInput struct {
	Name    string     `json:"name" validate:"required,min=2,max=200"`
	LogoURL string     `json:"logo_url" validate:"omitempty,url"`
	PartyID *uuid.UUID `json:"party_id"`
	GroupID *uuid.UUID `json:"group_id"`
}

func (s *CompanyService) Create(ctx context.Context, ownerID uuid.UUID, input CompanyInput) (*model.Company, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	company := &model.Company{
		Name:     input.Name,
		LogoURL:  input.LogoURL,
		PartyID:  input.PartyID,
		GroupID:  input.GroupID,
		OwnerID:  ownerID,
		IsActive: true,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *CompanyService) Update(ctx context.Context, id uuid.UUID, input CompanyInput) (*model.Company, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	company.Name = input.Name
	company.LogoURL = input.LogoURL
	company.PartyID = input.PartyID
	company.GroupID = input.GroupID

	if err := s.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

// Deactivate soft-deletes: the row stays for history, resolution skips it.
func (s *CompanyService) Deactivate(ctx context.Context, id uuid.UUID) error {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return err
	}
	company.IsActive = false
	return s.companies.Update(ctx, company)
}

func (s *CompanyService) Get(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	return s.companies.FindByID(ctx, id)
}

func (s *CompanyService) List(ctx context.Context, offset, limit int) ([]*model.Company, int64, error) {
	return s.companies.FindAllPaginated(ctx, offset, limit)
}
