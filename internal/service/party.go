// internal/service/party.go
package service

import (
	"context"
	"fmt"

	"github.com/AbuAli85/contract-management-backend/internal/domain"
	"github.com/AbuAli85/contract-management-backend/internal/model"
	"github.com/AbuAli85/contract-management-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PartyService struct {
	parties repository.PartyRepositoryIface
}

func NewPartyService(parties repository.PartyRepositoryIface) *PartyService {
	return &PartyService{parties: parties}
}

type PartyInput struct {
	Name          string   `json:"name" validate:"required,min=2,max=200"`
	ContactEmail  string   `json:"contact_email" validate:"omitempty,email"`
	ContactPerson string   `json:"contact_person" validate:"max=200"`
	Type          string   `json:"type" validate:"required,oneof=Employer Client Generic"`
	Role          string   `json:"role" validate:"max=100"`
	Tags          []string `json:"tags" validate:"max=20,dive,max=50"`
}

func (s *PartyService) Create(ctx context.Context, input PartyInput) (*model.Party, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	party := &model.Party{
		Name:          input.Name,
		ContactEmail:  input.ContactEmail,
		ContactPerson: input.ContactPerson,
		Type:          model.PartyType(input.Type),
		Role:          input.Role,
		Status:        model.PartyStatusActive,
		Tags:          pq.StringArray(input.Tags),
	}
	if err := s.parties.Create(ctx, party); err != nil {
		return nil, err
	}
	return party, nil
}

func (s *PartyService) Update(ctx context.Context, id uuid.UUID, input PartyInput) (*model.Party, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	party, err := s.parties.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	party.Name = input.Name
	party.ContactEmail = input.ContactEmail
	party.ContactPerson = input.ContactPerson
	party.Type = model.PartyType(input.Type)
	party.Role = input.Role
	party.Tags = pq.StringArray(input.Tags)

	if err := s.parties.Update(ctx, party); err != nil {
		return nil, err
	}
	return party, nil
}

func (s *PartyService) Get(ctx context.Context, id uuid.UUID) (*model.Party, error) {
	return s.parties.FindByID(ctx, id)
}

func (s *PartyService) List(ctx context.Context, offset, limit int) ([]*model.Party, int64, error) {
	return s.parties.FindAllPaginated(ctx, offset, limit)
}
