// internal/model/contract.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ContractStatus string

const (
	ContractStatusDraft   ContractStatus = "draft"
	ContractStatusActive  ContractStatus = "active"
	ContractStatusExpired ContractStatus = "expired"
)

// Contract links two parties. A company's active-contract metric counts
// contracts where its party appears on either side.
type Contract struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title         string         `gorm:"type:text;not null" json:"title"`
	FirstPartyID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"first_party_id"`
	SecondPartyID uuid.UUID      `gorm:"type:uuid;not null;index" json:"second_party_id"`
	PromoterID    *uuid.UUID     `gorm:"type:uuid" json:"promoter_id,omitempty"`
	Status        ContractStatus `gorm:"type:text;not null;default:'draft'" json:"status"`
	StartDate     *time.Time     `gorm:"type:date" json:"start_date,omitempty"`
	EndDate       *time.Time     `gorm:"type:date" json:"end_date,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`

	FirstParty  Party `gorm:"foreignKey:FirstPartyID" json:"-"`
	SecondParty Party `gorm:"foreignKey:SecondPartyID" json:"-"`
}
