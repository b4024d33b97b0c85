// internal/model/dashboard.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DashboardLayout stores one user's widget-grid arrangement as an opaque JSON
// blob; the client owns the shape, the server only round-trips it.
type DashboardLayout struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Layout    datatypes.JSON `gorm:"type:jsonb;not null" json:"layout"`
	UpdatedAt time.Time      `json:"updated_at"`
	CreatedAt time.Time      `json:"created_at"`
}
