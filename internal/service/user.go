// internal/service/user.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/AbuAli85/contract-management-backend/internal/auth"
	"github.com/AbuAli85/contract-management-backend/internal/domain"
	"github.com/AbuAli85/contract-management-backend/internal/model"
	"github.com/AbuAli85/contract-management-backend/internal/repository"
	"github.com/google/uuid"
)

type UserService struct {
	users    repository.UserRepositoryIface
	profiles repository.ProfileRepositoryIface
	hasher   *auth.PasswordHasher
	tokens   *auth.TokenManager
}

func NewUserService(
	users repository.UserRepositoryIface,
	profiles repository.ProfileRepositoryIface,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenManager,
) *UserService {
	return &UserService{users: users, profiles: profiles, hasher: hasher, tokens: tokens}
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginOutput struct {
	User  *model.User
	Token string
}

func (s *UserService) Login(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	user, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Status != model.StatusActive {
		return nil, domain.ErrInvalidCredentials
	}

	ok, err := s.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil || !ok {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID.String(), user.Email)
	if err != nil {
		return nil, fmt.Errorf("generating session token: %w", err)
	}
	return &LoginOutput{User: user, Token: token}, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) Profile(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	return s.profiles.FindByUserID(ctx, userID)
}

type ProfileInput struct {
	Email     string `json:"email" validate:"omitempty,email"`
	FullName  string `json:"full_name" validate:"max=200"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

func (s *UserService) SaveProfile(ctx context.Context, userID uuid.UUID, input ProfileInput) (*model.Profile, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	profile := &model.Profile{
		UserID:    userID,
		Email:     input.Email,
		FullName:  input.FullName,
		AvatarURL: input.AvatarURL,
	}
	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
