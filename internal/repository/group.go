// internal/repository/group.go
package repository

import (
	"context"
	"fmt"

	"github.com/AbuAli85/contract-management-backend/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GroupRepositoryIface exposes holding-group lookups. The polymorphic
// membership table is hidden behind the two typed lookups; callers never see
// the member_type discriminator.
type GroupRepositoryIface interface {
	DirectGroupIDs(ctx context.Context, companyIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error)
	GroupsForCompanies(ctx context.Context, companyIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error)
	GroupsForParties(ctx context.Context, partyIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error)
	FindActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.HoldingGroup, error)
}

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// DirectGroupIDs returns the companies.group_id assignments for the given
// companies, omitting companies with no direct group.
func (r *GroupRepository) DirectGroupIDs(ctx context.Context, companyIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	if len(companyIDs) == 0 {
		return map[uuid.UUID]uuid.UUID{}, nil
	}
	var rows []struct {
		ID      uuid.UUID
		GroupID uuid.UUID
	}
	result := r.db.WithContext(ctx).
		Model(&model.Company{}).
		Select("id", "group_id").
		Where("id IN ? AND group_id IS NOT NULL", companyIDs).
		Scan(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find direct group ids: %w", result.Error)
	}

	out := make(map[uuid.UUID]uuid.UUID, len(rows))
	for _, row := range rows {
		out[row.ID] = row.GroupID
	}
	return out, nil
}

func (r *GroupRepository) GroupsForCompanies(ctx context.Context, companyIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	return r.memberGroups(ctx, model.GroupMemberCompany, companyIDs)
}

func (r *GroupRepository) GroupsForParties(ctx context.Context, partyIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	return r.memberGroups(ctx, model.GroupMemberParty, partyIDs)
}

func (r *GroupRepository) memberGroups(ctx context.Context, memberType model.GroupMemberType, memberIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	if len(memberIDs) == 0 {
		return map[uuid.UUID]uuid.UUID{}, nil
	}
	var members []*model.HoldingGroupMember
	result := r.db.WithContext(ctx).
		Where("member_type = ? AND member_id IN ?", memberType, memberIDs).
		Find(&members)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find %s group members: %w", memberType, result.Error)
	}

	out := make(map[uuid.UUID]uuid.UUID, len(members))
	for _, m := range members {
		out[m.MemberID] = m.GroupID
	}
	return out, nil
}

func (r *GroupRepository) FindActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.HoldingGroup, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var groups []*model.HoldingGroup
	result := r.db.WithContext(ctx).Where("id IN ? AND is_active = ?", ids, true).Find(&groups)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find holding groups: %w", result.Error)
	}
	return groups, nil
}
