// internal/model/party.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type PartyType string

const (
	PartyTypeEmployer PartyType = "Employer"
	PartyTypeClient   PartyType = "Client"
	PartyTypeGeneric  PartyType = "Generic"
)

type PartyStatus string

const (
	PartyStatusActive   PartyStatus = "active"
	PartyStatusInactive PartyStatus = "inactive"
)

// Party is a counterparty record (employer, client, vendor). A Party may be
// referenced by a Company via companies.party_id, or stand alone; standalone
// employer parties can surface as pseudo-companies during resolution.
type Party struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name          string         `gorm:"type:text;not null" json:"name"`
	ContactEmail  string         `gorm:"type:citext" json:"contact_email"`
	ContactPerson string         `gorm:"type:text" json:"contact_person"`
	Type          PartyType      `gorm:"type:text;not null;default:'Generic'" json:"type"`
	Role          string         `gorm:"type:text" json:"role"`
	Status        PartyStatus    `gorm:"type:text;not null;default:'active'" json:"status"`
	Tags          pq.StringArray `gorm:"type:text[]" json:"tags"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
