// internal/service/metrics.go
package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// metricSet holds one count map per metric category, keyed by company id.
// A category that failed to fetch is simply an empty map: zero for everyone.
type metricSet struct {
	employees map[uuid.UUID]int
	leaves    map[uuid.UUID]int
	expenses  map[uuid.UUID]int
	contracts map[uuid.UUID]int
	checkIns  map[uuid.UUID]int
	tasks     map[uuid.UUID]int
	reviews   map[uuid.UUID]int
}

// fetchMetrics computes the seven per-company counters with one batched query
// per category, never one query per company. The employee/promoter fetch runs
// first because attendance and task bucketing need the employee→company
// reverse index it builds; the remaining categories fan out concurrently.
func (s *ReportService) fetchMetrics(ctx context.Context, candidates []CompanyCandidate) metricSet {
	companyIDs := make([]uuid.UUID, 0, len(candidates))
	for _, c := range candidates {
		companyIDs = append(companyIDs, c.CompanyID)
	}

	partyByCompany := s.resolvePartyIDs(ctx, candidates)
	partyIDs := make([]uuid.UUID, 0, len(partyByCompany))
	companiesByParty := make(map[uuid.UUID][]uuid.UUID)
	for companyID, partyID := range partyByCompany {
		if len(companiesByParty[partyID]) == 0 {
			partyIDs = append(partyIDs, partyID)
		}
		companiesByParty[partyID] = append(companiesByParty[partyID], companyID)
	}

	metrics := metricSet{
		leaves:   map[uuid.UUID]int{},
		expenses: map[uuid.UUID]int{},
		reviews:  map[uuid.UUID]int{},
		checkIns: map[uuid.UUID]int{},
		tasks:    map[uuid.UUID]int{},
	}

	employeeIDs, companyByEmployee := metrics.fetchEmployees(ctx, s, companyIDs, partyByCompany, partyIDs)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.workforce.AttendanceForDay(gctx, employeeIDs, s.now())
		if err != nil {
			slog.WarnContext(ctx, "attendance fetch failed", "error", err)
			return nil
		}
		for _, row := range rows {
			if companyID, ok := companyByEmployee[row.EmployeeID]; ok {
				metrics.checkIns[companyID]++
			}
		}
		return nil
	})
	g.Go(func() error {
		rows, err := s.workforce.OpenTasksByEmployees(gctx, employeeIDs)
		if err != nil {
			slog.WarnContext(ctx, "task fetch failed", "error", err)
			return nil
		}
		for _, row := range rows {
			if companyID, ok := companyByEmployee[row.EmployeeID]; ok {
				metrics.tasks[companyID]++
			}
		}
		return nil
	})
	g.Go(func() error {
		rows, err := s.hr.PendingLeavesByCompanies(gctx, companyIDs)
		if err != nil {
			slog.WarnContext(ctx, "leave fetch failed", "error", err)
			return nil
		}
		for _, row := range rows {
			metrics.leaves[row.CompanyID]++
		}
		return nil
	})
	g.Go(func() error {
		rows, err := s.hr.PendingExpensesByCompanies(gctx, companyIDs)
		if err != nil {
			slog.WarnContext(ctx, "expense fetch failed", "error", err)
			return nil
		}
		for _, row := range rows {
			metrics.expenses[row.CompanyID]++
		}
		return nil
	})
	g.Go(func() error {
		rows, err := s.hr.PendingReviewsByCompanies(gctx, companyIDs)
		if err != nil {
			slog.WarnContext(ctx, "review fetch failed", "error", err)
			return nil
		}
		for _, row := range rows {
			metrics.reviews[row.CompanyID]++
		}
		return nil
	})
	g.Go(func() error {
		metrics.contracts = s.fetchContractCounts(gctx, partyIDs, companiesByParty)
		return nil
	})
	_ = g.Wait()

	return metrics
}

// resolvePartyIDs builds the company→party map. Resolution metadata already
// carries most of it; the remainder comes from one batched company fetch.
func (s *ReportService) resolvePartyIDs(ctx context.Context, candidates []CompanyCandidate) map[uuid.UUID]uuid.UUID {
	out := make(map[uuid.UUID]uuid.UUID, len(candidates))
	var missing []uuid.UUID
	for _, c := range candidates {
		if pid, ok := candidatePartyID(c); ok {
			out[c.CompanyID] = pid
			continue
		}
		missing = append(missing, c.CompanyID)
	}
	if len(missing) == 0 {
		return out
	}

	companies, err := s.companies.FindByIDs(ctx, missing)
	if err != nil {
		slog.WarnContext(ctx, "party id backfill failed", "error", err)
		return out
	}
	for _, company := range companies {
		if company.PartyID != nil {
			out[company.ID] = *company.PartyID
		}
	}
	return out
}

// fetchEmployees fills the employee counts and returns the flat employee id
// list plus the employee→company reverse index the attendance and task
// buckets consume.
func (m *metricSet) fetchEmployees(
	ctx context.Context,
	s *ReportService,
	companyIDs []uuid.UUID,
	partyByCompany map[uuid.UUID]uuid.UUID,
	partyIDs []uuid.UUID,
) ([]uuid.UUID, map[uuid.UUID]uuid.UUID) {
	m.employees = map[uuid.UUID]int{}

	var employeeIDs []uuid.UUID
	companyByEmployee := make(map[uuid.UUID]uuid.UUID)
	idsByCompany := make(map[uuid.UUID]map[uuid.UUID]bool)

	employees, err := s.workforce.ActiveEmployeesByCompanies(ctx, companyIDs)
	if err != nil {
		slog.WarnContext(ctx, "employee fetch failed", "error", err)
	} else {
		for _, e := range employees {
			if idsByCompany[e.CompanyID] == nil {
				idsByCompany[e.CompanyID] = make(map[uuid.UUID]bool)
			}
			idsByCompany[e.CompanyID][e.ID] = true
			employeeIDs = append(employeeIDs, e.ID)
			companyByEmployee[e.ID] = e.CompanyID
		}
	}

	promoters, err := s.workforce.ActivePromotersByEmployers(ctx, partyIDs)
	if err != nil {
		slog.WarnContext(ctx, "promoter fetch failed", "error", err)
	} else {
		promotersByParty := make(map[uuid.UUID][]uuid.UUID)
		for _, p := range promoters {
			promotersByParty[p.EmployerID] = append(promotersByParty[p.EmployerID], p.ID)
		}
		// The employee metric is the union, by id, of a company's direct
		// employees and its party's promoters.
		for companyID, partyID := range partyByCompany {
			for _, promoterID := range promotersByParty[partyID] {
				if idsByCompany[companyID] == nil {
					idsByCompany[companyID] = make(map[uuid.UUID]bool)
				}
				idsByCompany[companyID][promoterID] = true
			}
		}
	}

	for companyID, ids := range idsByCompany {
		m.employees[companyID] = len(ids)
	}
	return employeeIDs, companyByEmployee
}

// fetchContractCounts counts active contracts matched by party id on either
// side. A party backing more than one resolved company credits each of them;
// a contract whose two sides both resolve to a company still counts once for
// that company.
func (s *ReportService) fetchContractCounts(ctx context.Context, partyIDs []uuid.UUID, companiesByParty map[uuid.UUID][]uuid.UUID) map[uuid.UUID]int {
	counts := map[uuid.UUID]int{}
	if len(partyIDs) == 0 {
		return counts
	}

	first, err := s.contracts.ActiveByFirstParties(ctx, partyIDs)
	if err != nil {
		slog.WarnContext(ctx, "contract fetch failed", "side", "first", "error", err)
		first = nil
	}
	second, err := s.contracts.ActiveBySecondParties(ctx, partyIDs)
	if err != nil {
		slog.WarnContext(ctx, "contract fetch failed", "side", "second", "error", err)
		second = nil
	}

	seen := make(map[uuid.UUID]bool)
	for _, contract := range append(first, second...) {
		if seen[contract.ID] {
			continue
		}
		seen[contract.ID] = true

		credited := make(map[uuid.UUID]bool)
		for _, partyID := range []uuid.UUID{contract.FirstPartyID, contract.SecondPartyID} {
			for _, companyID := range companiesByParty[partyID] {
				if !credited[companyID] {
					credited[companyID] = true
					counts[companyID]++
				}
			}
		}
	}
	return counts
}
