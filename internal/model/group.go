// internal/model/group.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// HoldingGroup is a reporting-level grouping of companies.
type HoldingGroup struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	NameEn    string    `gorm:"type:text" json:"name_en"`
	NameAr    string    `gorm:"type:text" json:"name_ar"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type GroupMemberType string

const (
	GroupMemberCompany GroupMemberType = "company"
	GroupMemberParty   GroupMemberType = "party"
)

// HoldingGroupMember associates a company or a party with a holding group.
// MemberID points at a company or a party depending on MemberType; callers
// go through the typed lookups on the group repository rather than branching
// on MemberType themselves.
type HoldingGroupMember struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	GroupID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"group_id"`
	MemberType GroupMemberType `gorm:"type:text;not null" json:"member_type"`
	MemberID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"member_id"`
	CreatedAt  time.Time       `json:"created_at"`
}
