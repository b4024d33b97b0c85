// internal/model/hr.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`
	EmployeeID uuid.UUID `gorm:"type:uuid" json:"employee_id"`
	Status     string    `gorm:"type:text;not null;default:'pending'" json:"status"`
	StartDate  time.Time `gorm:"type:date" json:"start_date"`
	EndDate    time.Time `gorm:"type:date" json:"end_date"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ExpenseClaim struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`
	EmployeeID  uuid.UUID `gorm:"type:uuid" json:"employee_id"`
	Status      string    `gorm:"type:text;not null;default:'draft'" json:"status"`
	AmountCents int64     `json:"amount_cents"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PerformanceReview struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`
	EmployeeID uuid.UUID `gorm:"type:uuid" json:"employee_id"`
	Status     string    `gorm:"type:text;not null;default:'pending'" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
