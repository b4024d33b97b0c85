// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Company-related errors
	ErrCompanyNotFound    = errors.New("company not found")
	ErrCompanyInactive    = errors.New("company is inactive")
	ErrDuplicateCompany   = errors.New("company already exists")
	ErrNoCompaniesForUser = errors.New("no companies configured for user")

	// Party-related errors
	ErrPartyNotFound    = errors.New("party not found")
	ErrInvalidPartyType = errors.New("invalid party type")

	// Promoter-related errors
	ErrPromoterNotFound = errors.New("promoter not found")

	// Contract-related errors
	ErrContractNotFound = errors.New("contract not found")

	// Dashboard-related errors
	ErrLayoutNotFound = errors.New("dashboard layout not found")
)
