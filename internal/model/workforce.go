// internal/model/workforce.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// EmployerEmployee is a worker attached directly to a company.
type EmployerEmployee struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`
	FullName  string    `gorm:"type:text" json:"full_name"`
	Status    string    `gorm:"type:text;not null;default:'active'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Promoter is a worker/representative linked to an employer party rather than
// a company row. Promoters count toward the employee metric of whichever
// company resolves to that party.
type Promoter struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EmployerID uuid.UUID `gorm:"type:uuid;not null;index" json:"employer_id"`
	FullName   string    `gorm:"type:text" json:"full_name"`
	Email      string    `gorm:"type:citext" json:"email"`
	Status     string    `gorm:"type:text;not null;default:'active'" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Employer Party `gorm:"foreignKey:EmployerID" json:"-"`
}

type EmployeeAttendance struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EmployeeID uuid.UUID  `gorm:"type:uuid;not null;index" json:"employee_id"`
	WorkDate   time.Time  `gorm:"type:date;not null" json:"work_date"`
	CheckInAt  *time.Time `json:"check_in_at,omitempty"`
	CheckOutAt *time.Time `json:"check_out_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

type TaskStatus string

const (
	TaskStatusOpen       TaskStatus = "open"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

type EmployeeTask struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EmployeeID uuid.UUID  `gorm:"type:uuid;not null;index" json:"employee_id"`
	Title      string     `gorm:"type:text" json:"title"`
	Status     TaskStatus `gorm:"type:text;not null;default:'open'" json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
