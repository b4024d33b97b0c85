// internal/service/dashboard.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/AbuAli85/contract-management-backend/internal/domain"
	"github.com/AbuAli85/contract-management-backend/internal/model"
	"github.com/AbuAli85/contract-management-backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// defaultLayout is served until the user saves their own arrangement.
var defaultLayout = json.RawMessage(`{"widgets":[` +
	`{"id":"summary","x":0,"y":0,"w":12,"h":2},` +
	`{"id":"contracts","x":0,"y":2,"w":6,"h":4},` +
	`{"id":"attendance","x":6,"y":2,"w":6,"h":4}]}`)

type DashboardService struct {
	layouts repository.DashboardRepositoryIface
}

func NewDashboardService(layouts repository.DashboardRepositoryIface) *DashboardService {
	return &DashboardService{layouts: layouts}
}

// GetLayout returns the stored widget layout, or the default when the user
// has never saved one.
func (s *DashboardService) GetLayout(ctx context.Context, userID uuid.UUID) (json.RawMessage, error) {
	layout, err := s.layouts.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrLayoutNotFound) {
			return defaultLayout, nil
		}
		return nil, err
	}
	return json.RawMessage(layout.Layout), nil
}

// SaveLayout stores the client's layout blob as-is; the server only checks it
// is valid JSON and not unreasonably large.
func (s *DashboardService) SaveLayout(ctx context.Context, userID uuid.UUID, layout json.RawMessage) error {
	if len(layout) == 0 || !json.Valid(layout) {
		return fmt.Errorf("%w: layout must be valid JSON", domain.ErrInvalidInput)
	}
	if len(layout) > 64*1024 {
		return fmt.Errorf("%w: layout too large", domain.ErrInvalidInput)
	}

	return s.layouts.Save(ctx, &model.DashboardLayout{
		UserID: userID,
		Layout: datatypes.JSON(layout),
	})
}
