// internal/model/company.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Company struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string     `gorm:"type:text;not null" json:"name"`
	LogoURL   string     `gorm:"type:text" json:"logo_url"`
	GroupID   *uuid.UUID `gorm:"type:uuid" json:"group_id,omitempty"`
	PartyID   *uuid.UUID `gorm:"type:uuid" json:"party_id,omitempty"`
	OwnerID   uuid.UUID  `gorm:"type:uuid;not null" json:"owner_id"`
	IsActive  bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	Party *Party        `gorm:"foreignKey:PartyID" json:"party,omitempty"`
	Group *HoldingGroup `gorm:"foreignKey:GroupID" json:"-"`
}

// CompanyMember joins users to the companies they belong to directly.
type CompanyMember struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Role      string    `gorm:"type:text;not null;default:'member'" json:"role"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Company Company `gorm:"foreignKey:CompanyID" json:"company"`
	User    User    `gorm:"foreignKey:UserID" json:"-"`
}
