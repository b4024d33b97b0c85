// internal/service/resolver.go
package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/AbuAli85/contract-management-backend/internal/model"
	"github.com/google/uuid"
)

// resolveState carries what later passes need from earlier ones: the user's
// identity, the profile row (fetched once), and the company ids the user
// directly owns or belongs to.
type resolveState struct {
	userID uuid.UUID
	email  string

	profile       *model.Profile
	profileLoaded bool
	memberOrOwned map[uuid.UUID]bool
}

// resolveCompanies runs the six resolution passes in fixed order and merges
// their candidates first-write-wins by company id. The order is load-bearing:
// it decides which user_role and source win for a company found by more than
// one pass. A failing pass contributes nothing; the rest still run.
func (s *ReportService) resolveCompanies(ctx context.Context, userID uuid.UUID, email string) []CompanyCandidate {
	st := &resolveState{
		userID:        userID,
		email:         email,
		memberOrOwned: make(map[uuid.UUID]bool),
	}

	passes := []struct {
		name string
		run  func(context.Context, *resolveState) ([]CompanyCandidate, error)
	}{
		{"membership", s.membershipPass},
		{"ownership", s.ownershipPass},
		{"party_email", s.partyEmailPass},
		{"employer_party", s.employerPartyPass},
		{"profile_employer_party", s.profileEmployerPartyPass},
		{"parties_employer_direct", s.directEmployerPartyPass},
	}

	seen := make(map[uuid.UUID]bool)
	var out []CompanyCandidate
	for _, pass := range passes {
		candidates, err := pass.run(ctx, st)
		if err != nil {
			slog.WarnContext(ctx, "company resolution pass failed", "pass", pass.name, "error", err)
			continue
		}
		for _, c := range candidates {
			if seen[c.CompanyID] {
				continue
			}
			seen[c.CompanyID] = true
			out = append(out, c)
		}
	}
	return out
}

// membershipPass surfaces companies the user is an active member of. Rows
// with a missing company id or name are join leftovers and skipped.
func (s *ReportService) membershipPass(ctx context.Context, st *resolveState) ([]CompanyCandidate, error) {
	members, err := s.companies.FindMembershipsByUser(ctx, st.userID)
	if err != nil {
		return nil, err
	}

	var out []CompanyCandidate
	for _, m := range members {
		company := m.Company
		if company.ID == uuid.Nil || company.Name == "" {
			continue
		}
		if s.filter.Hidden(company.Name) {
			continue
		}
		st.memberOrOwned[company.ID] = true
		out = append(out, CompanyCandidate{
			CompanyID: company.ID,
			Name:      company.Name,
			Logo:      company.LogoURL,
			UserRole:  m.Role,
			Source:    SourceMembership,
			PartyID:   company.PartyID,
		})
	}
	return out, nil
}

func (s *ReportService) ownershipPass(ctx context.Context, st *resolveState) ([]CompanyCandidate, error) {
	companies, err := s.companies.FindActiveByOwner(ctx, st.userID)
	if err != nil {
		return nil, err
	}

	var out []CompanyCandidate
	for _, company := range companies {
		if s.filter.Hidden(company.Name) {
			continue
		}
		st.memberOrOwned[company.ID] = true
		out = append(out, CompanyCandidate{
			CompanyID: company.ID,
			Name:      company.Name,
			Logo:      company.LogoURL,
			UserRole:  "owner",
			Source:    SourceOwnership,
			PartyID:   company.PartyID,
		})
	}
	return out, nil
}

// partyEmailPass matches companies whose linked party lists the user's email
// as its contact. The party's role keyword decides the user's role.
func (s *ReportService) partyEmailPass(ctx context.Context, st *resolveState) ([]CompanyCandidate, error) {
	if st.email == "" {
		return nil, nil
	}
	companies, err := s.companies.FindActiveByPartyEmail(ctx, st.email)
	if err != nil {
		return nil, err
	}

	var out []CompanyCandidate
	for _, company := range companies {
		role := "member"
		if company.Party != nil {
			role = roleFromPartyRole(company.Party.Role)
		}
		out = append(out, CompanyCandidate{
			CompanyID: company.ID,
			Name:      company.Name,
			Logo:      company.LogoURL,
			UserRole:  role,
			Source:    SourcePartyEmail,
			PartyID:   company.PartyID,
		})
	}
	return out, nil
}

// employerPartyPass treats the user as the employer: companies linked to
// employer parties whose contact email is the user's profile email.
func (s *ReportService) employerPartyPass(ctx context.Context, st *resolveState) ([]CompanyCandidate, error) {
	email := s.profileEmail(ctx, st)
	if email == "" {
		return nil, nil
	}

	parties, err := s.parties.FindActiveEmployersByContactEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(parties) == 0 {
		return nil, nil
	}

	partyIDs := make([]uuid.UUID, 0, len(parties))
	for _, p := range parties {
		partyIDs = append(partyIDs, p.ID)
	}

	companies, err := s.companies.FindActiveByPartyIDs(ctx, partyIDs)
	if err != nil {
		return nil, err
	}

	var out []CompanyCandidate
	for _, company := range companies {
		out = append(out, CompanyCandidate{
			CompanyID: company.ID,
			Name:      company.Name,
			Logo:      company.LogoURL,
			UserRole:  "owner",
			Source:    SourceEmployerParty,
			PartyID:   company.PartyID,
		})
	}
	return out, nil
}

// profileEmployerPartyPass is the broader employer match: contact email
// equality or the party's contact person containing the user's full name.
func (s *ReportService) profileEmployerPartyPass(ctx context.Context, st *resolveState) ([]CompanyCandidate, error) {
	email := s.profileEmail(ctx, st)
	fullName := ""
	if st.profile != nil {
		fullName = strings.TrimSpace(st.profile.FullName)
	}
	if email == "" && fullName == "" {
		return nil, nil
	}

	parties, err := s.parties.FindActiveEmployers(ctx)
	if err != nil {
		return nil, err
	}

	matched := make(map[uuid.UUID]*model.Party)
	var partyIDs []uuid.UUID
	for _, p := range parties {
		if equalsFold(p.ContactEmail, email) || containsFold(p.ContactPerson, fullName) {
			matched[p.ID] = p
			partyIDs = append(partyIDs, p.ID)
		}
	}
	if len(partyIDs) == 0 {
		return nil, nil
	}

	companies, err := s.companies.FindActiveByPartyIDs(ctx, partyIDs)
	if err != nil {
		return nil, err
	}

	var out []CompanyCandidate
	for _, company := range companies {
		role := "owner"
		if company.PartyID != nil {
			if p, ok := matched[*company.PartyID]; ok && p.Role != "" {
				role = roleFromPartyRole(p.Role)
			}
		}
		out = append(out, CompanyCandidate{
			CompanyID: company.ID,
			Name:      company.Name,
			Logo:      company.LogoURL,
			UserRole:  role,
			Source:    SourceProfileEmployerParty,
			PartyID:   company.PartyID,
		})
	}
	return out, nil
}

// directEmployerPartyPass enumerates every active employer party. A party is
// associated with the user when the user owns or belongs to a linked company,
// its contact email or person matches, or it has no linked company at all
// (standalone employers are auto-associated). Standalone parties surface as
// pseudo-companies whose company id is the party id. Pinned (allow-listed)
// parties always associate with the owner role.
func (s *ReportService) directEmployerPartyPass(ctx context.Context, st *resolveState) ([]CompanyCandidate, error) {
	parties, err := s.parties.FindActiveEmployers(ctx)
	if err != nil {
		return nil, err
	}
	if len(parties) == 0 {
		return nil, nil
	}

	partyIDs := make([]uuid.UUID, 0, len(parties))
	for _, p := range parties {
		partyIDs = append(partyIDs, p.ID)
	}

	linked, err := s.companies.FindActiveByPartyIDs(ctx, partyIDs)
	if err != nil {
		return nil, err
	}
	linkedByParty := make(map[uuid.UUID][]*model.Company)
	for _, company := range linked {
		if company.PartyID == nil {
			continue
		}
		linkedByParty[*company.PartyID] = append(linkedByParty[*company.PartyID], company)
	}

	email := s.profileEmail(ctx, st)
	fullName := ""
	if st.profile != nil {
		fullName = strings.TrimSpace(st.profile.FullName)
	}

	var out []CompanyCandidate
	for _, party := range parties {
		companies := linkedByParty[party.ID]
		pinned := s.filter.Pinned(party.Name)

		associated := pinned ||
			equalsFold(party.ContactEmail, email) ||
			containsFold(party.ContactPerson, fullName) ||
			len(companies) == 0

		if !associated {
			for _, company := range companies {
				if st.memberOrOwned[company.ID] {
					associated = true
					break
				}
			}
		}
		if !associated {
			continue
		}

		role := "owner"
		if !pinned && party.Role != "" {
			role = roleFromPartyRole(party.Role)
		}

		if len(companies) == 0 {
			partyID := party.ID
			out = append(out, CompanyCandidate{
				CompanyID: party.ID,
				Name:      party.Name,
				Logo:      "",
				UserRole:  role,
				Source:    SourcePartiesEmployerDirect,
				PartyID:   &partyID,
			})
			continue
		}
		for _, company := range companies {
			out = append(out, CompanyCandidate{
				CompanyID: company.ID,
				Name:      company.Name,
				Logo:      company.LogoURL,
				UserRole:  role,
				Source:    SourcePartiesEmployerDirect,
				PartyID:   company.PartyID,
			})
		}
	}
	return out, nil
}

// profileEmail loads the profile once and prefers its email over the session
// email.
func (s *ReportService) profileEmail(ctx context.Context, st *resolveState) string {
	if !st.profileLoaded {
		st.profileLoaded = true
		profile, err := s.profiles.FindByUserID(ctx, st.userID)
		if err != nil {
			slog.DebugContext(ctx, "no profile for user", "user_id", st.userID, "error", err)
		} else {
			st.profile = profile
		}
	}
	if st.profile != nil && st.profile.Email != "" {
		return st.profile.Email
	}
	return st.email
}

// roleFromPartyRole maps free-text party role keywords onto the three user
// roles the client understands.
func roleFromPartyRole(partyRole string) string {
	role := strings.ToLower(partyRole)
	switch {
	case strings.Contains(role, "ceo"), strings.Contains(role, "chairman"), strings.Contains(role, "owner"):
		return "owner"
	case strings.Contains(role, "admin"), strings.Contains(role, "manager"):
		return "admin"
	default:
		return "member"
	}
}

func equalsFold(a, b string) bool {
	return b != "" && strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// containsFold reports whether haystack contains needle, case-insensitively.
// An empty needle never matches.
func containsFold(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
