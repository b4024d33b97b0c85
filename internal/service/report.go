// internal/service/report.go
package service

import (
	"context"
	"time"

	"github.com/AbuAli85/contract-management-backend/internal/repository"
	"github.com/google/uuid"
)

// CandidateSource tags which resolution pass discovered a company. The first
// pass to claim a company id wins, so the tag also explains the user_role.
type CandidateSource string

const (
	SourceMembership            CandidateSource = "membership"
	SourceOwnership             CandidateSource = "ownership"
	SourcePartyEmail            CandidateSource = "party_email"
	SourceEmployerParty         CandidateSource = "employer_party"
	SourceProfileEmployerParty  CandidateSource = "profile_employer_party"
	SourcePartiesEmployerDirect CandidateSource = "parties_employer_direct"
)

// CompanyCandidate is one tenant the user may see, as discovered by a
// resolution pass. For parties_employer_direct candidates the company id is
// the party id itself; no company row exists.
type CompanyCandidate struct {
	CompanyID uuid.UUID       `json:"company_id"`
	Name      string          `json:"company_name"`
	Logo      string          `json:"logo"`
	UserRole  string          `json:"user_role"`
	Source    CandidateSource `json:"source"`
	PartyID   *uuid.UUID      `json:"party_id,omitempty"`
	IsPrimary bool            `json:"is_primary"`
	GroupName *string         `json:"group_name"`
}

type CompanyStats struct {
	Employees       int `json:"employees"`
	PendingLeaves   int `json:"pending_leaves"`
	PendingExpenses int `json:"pending_expenses"`
	ActiveContracts int `json:"active_contracts"`
	TodayCheckIns   int `json:"today_check_ins"`
	OpenTasks       int `json:"open_tasks"`
	PendingReviews  int `json:"pending_reviews"`
}

type CompanyWithStats struct {
	CompanyCandidate
	Stats CompanyStats `json:"stats"`
}

type Summary struct {
	TotalCompanies       int `json:"total_companies"`
	TotalEmployees       int `json:"total_employees"`
	TotalPendingLeaves   int `json:"total_pending_leaves"`
	TotalPendingExpenses int `json:"total_pending_expenses"`
	TotalActiveContracts int `json:"total_active_contracts"`
	TotalTodayCheckIns   int `json:"total_today_check_ins"`
	TotalOpenTasks       int `json:"total_open_tasks"`
	TotalPendingReviews  int `json:"total_pending_reviews"`
}

func (s *Summary) add(stats CompanyStats) {
	s.TotalEmployees += stats.Employees
	s.TotalPendingLeaves += stats.PendingLeaves
	s.TotalPendingExpenses += stats.PendingExpenses
	s.TotalActiveContracts += stats.ActiveContracts
	s.TotalTodayCheckIns += stats.TodayCheckIns
	s.TotalOpenTasks += stats.OpenTasks
	s.TotalPendingReviews += stats.PendingReviews
}

// standaloneGroup buckets companies with no resolvable holding group.
const standaloneGroup = "Standalone"

type Report struct {
	Companies []CompanyWithStats            `json:"companies"`
	Grouped   map[string][]CompanyWithStats `json:"grouped"`
	Summary   Summary                       `json:"summary"`
	Message   string                        `json:"message,omitempty"`
}

// ReportService builds the cross-company report: resolve the user's tenants,
// annotate holding groups, fetch batched per-company metrics, aggregate.
type ReportService struct {
	companies repository.CompanyRepositoryIface
	parties   repository.PartyRepositoryIface
	groups    repository.GroupRepositoryIface
	workforce repository.WorkforceRepositoryIface
	hr        repository.HRRepositoryIface
	contracts repository.ContractRepositoryIface
	profiles  repository.ProfileRepositoryIface
	filter    *TenantFilter

	// now is injectable so the attendance day boundary is testable.
	now func() time.Time
}

func NewReportService(
	companies repository.CompanyRepositoryIface,
	parties repository.PartyRepositoryIface,
	groups repository.GroupRepositoryIface,
	workforce repository.WorkforceRepositoryIface,
	hr repository.HRRepositoryIface,
	contracts repository.ContractRepositoryIface,
	profiles repository.ProfileRepositoryIface,
	filter *TenantFilter,
) *ReportService {
	return &ReportService{
		companies: companies,
		parties:   parties,
		groups:    groups,
		workforce: workforce,
		hr:        hr,
		contracts: contracts,
		profiles:  profiles,
		filter:    filter,
		now:       time.Now,
	}
}

// BuildReport produces the full cross-company report for one user. Partial
// source failures degrade to zero contributions; only a panic escapes.
func (s *ReportService) BuildReport(ctx context.Context, userID uuid.UUID, email string) (*Report, error) {
	candidates := s.resolveCompanies(ctx, userID, email)

	// Defensive re-filter: the email/party passes trust display names from
	// rows the membership passes never saw.
	visible := candidates[:0:0]
	for _, c := range candidates {
		if !s.filter.Hidden(c.Name) {
			visible = append(visible, c)
		}
	}
	if len(visible) > 0 {
		visible[0].IsPrimary = true
	}

	if len(visible) == 0 {
		return &Report{
			Companies: []CompanyWithStats{},
			Grouped:   map[string][]CompanyWithStats{},
			Message:   "no companies configured for this user",
		}, nil
	}

	visible = s.annotateGroups(ctx, visible)
	metrics := s.fetchMetrics(ctx, visible)

	companies := make([]CompanyWithStats, 0, len(visible))
	grouped := make(map[string][]CompanyWithStats)
	var summary Summary

	for _, c := range visible {
		entry := CompanyWithStats{
			CompanyCandidate: c,
			Stats: CompanyStats{
				Employees:       metrics.employees[c.CompanyID],
				PendingLeaves:   metrics.leaves[c.CompanyID],
				PendingExpenses: metrics.expenses[c.CompanyID],
				ActiveContracts: metrics.contracts[c.CompanyID],
				TodayCheckIns:   metrics.checkIns[c.CompanyID],
				OpenTasks:       metrics.tasks[c.CompanyID],
				PendingReviews:  metrics.reviews[c.CompanyID],
			},
		}
		companies = append(companies, entry)
		summary.add(entry.Stats)

		key := standaloneGroup
		if c.GroupName != nil {
			key = *c.GroupName
		}
		grouped[key] = append(grouped[key], entry)
	}
	summary.TotalCompanies = len(companies)

	return &Report{
		Companies: companies,
		Grouped:   grouped,
		Summary:   summary,
	}, nil
}
