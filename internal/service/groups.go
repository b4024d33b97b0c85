// internal/service/groups.go
package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// annotateGroups attaches the holding-group display name to each candidate.
// Three sources feed the company→group mapping, applied in a fixed order so
// the precedence is visible in one place: the company row's own group_id
// first, then company-scoped group membership, then party-scoped group
// membership (which therefore wins a disagreement). Any failure here leaves
// group_name unset; the report still goes out.
func (s *ReportService) annotateGroups(ctx context.Context, candidates []CompanyCandidate) []CompanyCandidate {
	companyIDs := make([]uuid.UUID, 0, len(candidates))
	var partyIDs []uuid.UUID
	partyByCompany := make(map[uuid.UUID]uuid.UUID)

	for _, c := range candidates {
		companyIDs = append(companyIDs, c.CompanyID)
		if pid, ok := candidatePartyID(c); ok {
			partyIDs = append(partyIDs, pid)
			partyByCompany[c.CompanyID] = pid
		}
	}

	var direct, byCompany, byParty map[uuid.UUID]uuid.UUID
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if direct, err = s.groups.DirectGroupIDs(gctx, companyIDs); err != nil {
			slog.WarnContext(ctx, "direct group lookup failed", "error", err)
			direct = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if byCompany, err = s.groups.GroupsForCompanies(gctx, companyIDs); err != nil {
			slog.WarnContext(ctx, "company group membership lookup failed", "error", err)
			byCompany = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if byParty, err = s.groups.GroupsForParties(gctx, partyIDs); err != nil {
			slog.WarnContext(ctx, "party group membership lookup failed", "error", err)
			byParty = nil
		}
		return nil
	})
	_ = g.Wait()

	groupByCompany := make(map[uuid.UUID]uuid.UUID)
	for id, gid := range direct {
		groupByCompany[id] = gid
	}
	for id, gid := range byCompany {
		groupByCompany[id] = gid
	}
	for companyID, partyID := range partyByCompany {
		if gid, ok := byParty[partyID]; ok {
			groupByCompany[companyID] = gid
		}
	}
	if len(groupByCompany) == 0 {
		return candidates
	}

	names := s.groupNames(ctx, groupByCompany)

	for i := range candidates {
		if gid, ok := groupByCompany[candidates[i].CompanyID]; ok {
			if name, ok := names[gid]; ok {
				candidates[i].GroupName = &name
			}
		}
	}
	return candidates
}

// groupNames resolves the distinct group ids to display names, preferring the
// English name, then the Arabic one. Inactive groups are excluded entirely,
// so their companies stay ungrouped.
func (s *ReportService) groupNames(ctx context.Context, groupByCompany map[uuid.UUID]uuid.UUID) map[uuid.UUID]string {
	distinct := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, gid := range groupByCompany {
		if !distinct[gid] {
			distinct[gid] = true
			ids = append(ids, gid)
		}
	}

	groups, err := s.groups.FindActiveByIDs(ctx, ids)
	if err != nil {
		slog.WarnContext(ctx, "group name resolution failed", "error", err)
		return nil
	}

	names := make(map[uuid.UUID]string, len(groups))
	for _, g := range groups {
		switch {
		case g.NameEn != "":
			names[g.ID] = g.NameEn
		case g.NameAr != "":
			names[g.ID] = g.NameAr
		default:
			names[g.ID] = "Unknown Group"
		}
	}
	return names
}

// candidatePartyID returns the party backing a candidate. For direct employer
// candidates the company id doubles as the party id.
func candidatePartyID(c CompanyCandidate) (uuid.UUID, bool) {
	if c.PartyID != nil {
		return *c.PartyID, true
	}
	if c.Source == SourcePartiesEmployerDirect {
		return c.CompanyID, true
	}
	return uuid.Nil, false
}
