// internal/service/report_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/AbuAli85/contract-management-backend/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportFixture struct {
	companies *fakeCompanyRepo
	parties   *fakePartyRepo
	groups    *fakeGroupRepo
	workforce *fakeWorkforceRepo
	hr        *fakeHRRepo
	contracts *fakeContractRepo
	profiles  *fakeProfileRepo
	filter    *TenantFilter
}

func newReportFixture() *reportFixture {
	return &reportFixture{
		companies: &fakeCompanyRepo{},
		parties:   &fakePartyRepo{},
		groups:    &fakeGroupRepo{},
		workforce: &fakeWorkforceRepo{},
		hr:        &fakeHRRepo{},
		contracts: &fakeContractRepo{},
		profiles:  &fakeProfileRepo{},
		filter:    NewTenantFilter(nil, nil, nil),
	}
}

func (f *reportFixture) service() *ReportService {
	svc := NewReportService(f.companies, f.parties, f.groups, f.workforce, f.hr, f.contracts, f.profiles, f.filter)
	svc.now = func() time.Time { return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC) }
	return svc
}

func membership(companyID uuid.UUID, name, role string, partyID *uuid.UUID) *model.CompanyMember {
	return &model.CompanyMember{
		CompanyID: companyID,
		UserID:    uuid.New(),
		Role:      role,
		IsActive:  true,
		Company: model.Company{
			ID:       companyID,
			Name:     name,
			PartyID:  partyID,
			IsActive: true,
		},
	}
}

func TestBuildReportZeroState(t *testing.T) {
	f := newReportFixture()
	svc := f.service()

	report, err := svc.BuildReport(context.Background(), uuid.New(), "nobody@example.com")
	require.NoError(t, err)

	assert.Empty(t, report.Companies)
	assert.Empty(t, report.Grouped)
	assert.Equal(t, "no companies configured for this user", report.Message)
	assert.Equal(t, 0, report.Summary.TotalCompanies)
	assert.NotNil(t, report.Companies, "companies must serialize as [], not null")
	assert.NotNil(t, report.Grouped)
}

func TestBuildReportFirstPassWinsDedup(t *testing.T) {
	f := newReportFixture()
	companyID := uuid.New()
	userID := uuid.New()

	f.companies.FindMembershipsByUserFn = func(ctx context.Context, uid uuid.UUID) ([]*model.CompanyMember, error) {
		return []*model.CompanyMember{membership(companyID, "Acme Trading", "member", nil)}, nil
	}
	// Ownership finds the same company with a stronger role; membership ran
	// first and must keep it.
	f.companies.FindActiveByOwnerFn = func(ctx context.Context, oid uuid.UUID) ([]*model.Company, error) {
		return []*model.Company{{ID: companyID, Name: "Acme Trading", IsActive: true}}, nil
	}

	report, err := f.service().BuildReport(context.Background(), userID, "user@example.com")
	require.NoError(t, err)

	require.Len(t, report.Companies, 1)
	got := report.Companies[0]
	assert.Equal(t, companyID, got.CompanyID)
	assert.Equal(t, SourceMembership, got.Source)
	assert.Equal(t, "member", got.UserRole)
	assert.True(t, got.IsPrimary)
	assert.Equal(t, 1, report.Summary.TotalCompanies)
}

func TestBuildReportDenyAndAllowLists(t *testing.T) {
	f := newReportFixture()
	f.filter = NewTenantFilter(
		[]string{"digital morph", "test company"},
		[]string{"falcon eye group"},
		[]string{"falcon eye modern investment"},
	)
	userID := uuid.New()

	f.companies.FindMembershipsByUserFn = func(ctx context.Context, uid uuid.UUID) ([]*model.CompanyMember, error) {
		return []*model.CompanyMember{
			membership(uuid.New(), "Digital Morph", "member", nil),
			membership(uuid.New(), "Falcon Eye Group LLC", "member", nil),
			membership(uuid.New(), "Falcon Eye Modern Investment", "admin", nil),
			membership(uuid.New(), "Acme Trading", "member", nil),
		}, nil
	}

	report, err := f.service().BuildReport(context.Background(), userID, "user@example.com")
	require.NoError(t, err)

	require.Len(t, report.Companies, 2)
	names := []string{report.Companies[0].Name, report.Companies[1].Name}
	assert.Contains(t, names, "Falcon Eye Modern Investment")
	assert.Contains(t, names, "Acme Trading")
}

func TestBuildReportMembershipRoleBeatsPartyEmail(t *testing.T) {
	f := newReportFixture()
	companyID := uuid.New()
	partyID := uuid.New()

	f.companies.FindMembershipsByUserFn = func(ctx context.Context, uid uuid.UUID) ([]*model.CompanyMember, error) {
		return []*model.CompanyMember{membership(companyID, "Acme Trading", "member", &partyID)}, nil
	}
	f.companies.FindActiveByPartyEmailFn = func(ctx context.Context, email string) ([]*model.Company, error) {
		return []*model.Company{{
			ID:      companyID,
			Name:    "Acme Trading",
			PartyID: &partyID,
			Party:   &model.Party{ID: partyID, Role: "CEO"},
		}}, nil
	}

	report, err := f.service().BuildReport(context.Background(), uuid.New(), "user@example.com")
	require.NoError(t, err)

	require.Len(t, report.Companies, 1)
	assert.Equal(t, "member", report.Companies[0].UserRole)
	assert.Equal(t, SourceMembership, report.Companies[0].Source)
}

func TestBuildReportPartyEmailRoleMapping(t *testing.T) {
	f := newReportFixture()
	companyID := uuid.New()
	partyID := uuid.New()

	f.companies.FindActiveByPartyEmailFn = func(ctx context.Context, email string) ([]*model.Company, error) {
		return []*model.Company{{
			ID:      companyID,
			Name:    "Acme Trading",
			PartyID: &partyID,
			Party:   &model.Party{ID: partyID, Role: "General Manager"},
		}}, nil
	}

	report, err := f.service().BuildReport(context.Background(), uuid.New(), "gm@example.com")
	require.NoError(t, err)

	require.Len(t, report.Companies, 1)
	assert.Equal(t, SourcePartyEmail, report.Companies[0].Source)
	assert.Equal(t, "admin", report.Companies[0].UserRole)
}

func TestBuildReportStandaloneEmployerPseudoCompany(t *testing.T) {
	f := newReportFixture()
	partyID := uuid.New()

	f.parties.FindActiveEmployersFn = func(ctx context.Context) ([]*model.Party, error) {
		return []*model.Party{{
			ID:     partyID,
			Name:   "Lone Employer Est",
			Type:   model.PartyTypeEmployer,
			Status: model.PartyStatusActive,
		}}, nil
	}
	f.workforce.ActivePromotersByEmployersFn = func(ctx context.Context, partyIDs []uuid.UUID) ([]*model.Promoter, error) {
		assert.Equal(t, []uuid.UUID{partyID}, partyIDs)
		return []*model.Promoter{
			{ID: uuid.New(), EmployerID: partyID},
			{ID: uuid.New(), EmployerID: partyID},
		}, nil
	}

	report, err := f.service().BuildReport(context.Background(), uuid.New(), "user@example.com")
	require.NoError(t, err)

	require.Len(t, report.Companies, 1)
	got := report.Companies[0]
	assert.Equal(t, partyID, got.CompanyID, "standalone employers surface under their party id")
	assert.Equal(t, SourcePartiesEmployerDirect, got.Source)
	assert.Equal(t, "owner", got.UserRole)
	require.NotNil(t, got.PartyID)
	assert.Equal(t, partyID, *got.PartyID)
	assert.Equal(t, 2, got.Stats.Employees, "promoters count as the party's workforce")
}

func TestBuildReportPinnedEmployerAlwaysResolves(t *testing.T) {
	f := newReportFixture()
	f.filter = NewTenantFilter(nil, nil, []string{"falcon eye modern investment"})
	partyID := uuid.New()
	companyID := uuid.New()

	f.parties.FindActiveEmployersFn = func(ctx context.Context) ([]*model.Party, error) {
		return []*model.Party{{
			ID:           partyID,
			Name:         "Falcon Eye Modern Investment",
			ContactEmail: "someone-else@example.com",
			Role:         "member",
			Type:         model.PartyTypeEmployer,
			Status:       model.PartyStatusActive,
		}}, nil
	}
	f.companies.FindActiveByPartyIDsFn = func(ctx context.Context, partyIDs []uuid.UUID) ([]*model.Company, error) {
		return []*model.Company{{ID: companyID, Name: "Falcon Eye Modern Investment", PartyID: &partyID, IsActive: true}}, nil
	}

	report, err := f.service().BuildReport(context.Background(), uuid.New(), "unrelated@example.com")
	require.NoError(t, err)

	// The contact email does not match and the user holds no membership, yet
	// the pinned party still resolves, with the owner role.
	require.Len(t, report.Companies, 1)
	assert.Equal(t, companyID, report.Companies[0].CompanyID)
	assert.Equal(t, "owner", report.Companies[0].UserRole)
}

func TestBuildReportGroupPrecedencePartyWins(t *testing.T) {
	f := newReportFixture()
	companyID := uuid.New()
	partyID := uuid.New()
	directGroup := uuid.New()
	companyGroup := uuid.New()
	partyGroup := uuid.New()

	f.companies.FindMembershipsByUserFn = func(ctx context.Context, uid uuid.UUID) ([]*model.CompanyMember, error) {
		return []*model.CompanyMember{membership(companyID, "Acme Trading", "member", &partyID)}, nil
	}
	f.groups.DirectGroupIDsFn = func(ctx context.Context, companyIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
		return map[uuid.UUID]uuid.UUID{companyID: directGroup}, nil
	}
	f.groups.GroupsForCompaniesFn = func(ctx context.Context, companyIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
		return map[uuid.UUID]uuid.UUID{companyID: companyGroup}, nil
	}
	f.groups.GroupsForPartiesFn = func(ctx context.Context, partyIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
		return map[uuid.UUID]uuid.UUID{partyID: partyGroup}, nil
	}
	f.groups.FindActiveByIDsFn = func(ctx context.Context, ids []uuid.UUID) ([]*model.HoldingGroup, error) {
		require.Equal(t, []uuid.UUID{partyGroup}, ids)
		return []*model.HoldingGroup{{ID: partyGroup, NameEn: "Falcon Holdings", IsActive: true}}, nil
	}

	report, err := f.service().BuildReport(context.Background(), uuid.New(), "user@example.com")
	require.NoError(t, err)

	require.Len(t, report.Companies, 1)
	require.NotNil(t, report.Companies[0].GroupName)
	assert.Equal(t, "Falcon Holdings", *report.Companies[0].GroupName)
	assert.Len(t, report.Grouped["Falcon Holdings"], 1)
	assert.Empty(t, report.Grouped[standaloneGroup])
}

func TestBuildReportArabicGroupNameFallback(t *testing.T) {
	f := newReportFixture()
	companyID := uuid.New()
	groupID := uuid.New()

	f.companies.FindMembershipsByUserFn = func(ctx context.Context, uid uuid.UUID) ([]*model.CompanyMember, error) {
		return []*model.CompanyMember{membership(companyID, "Acme Trading", "member", nil)}, nil
	}
	f.groups.DirectGroupIDsFn = func(ctx context.Context, companyIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
		return map[uuid.UUID]uuid.UUID{companyID: groupID}, nil
	}
	f.groups.FindActiveByIDsFn = func(ctx context.Context, ids []uuid.UUID) ([]*model.HoldingGroup, error) {
		return []*model.HoldingGroup{{ID: groupID, NameAr: "مجموعة الصقر", IsActive: true}}, nil
	}

	report, err := f.service().BuildReport(context.Background(), uuid.New(), "user@example.com")
	require.NoError(t, err)

	require.Len(t, report.Companies, 1)
	require.NotNil(t, report.Companies[0].GroupName)
	assert.Equal(t, "مجموعة الصقر", *report.Companies[0].GroupName)
}

func TestBuildReportInactiveGroupLeavesCompanyStandalone(t *testing.T) {
	f := newReportFixture()
	companyID := uuid.New()
	groupID := uuid.New()

	f.companies.FindMembershipsByUserFn = func(ctx context.Context, uid uuid.UUID) ([]*model.CompanyMember, error) {
		return []*model.CompanyMember{membership(companyID, "Acme Trading", "member", nil)}, nil
	}
	f.groups.DirectGroupIDsFn = func(ctx context.Context, companyIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
		return map[uuid.UUID]uuid.UUID{companyID: groupID}, nil
	}
	// FindActiveByIDs filters inactive groups out, so the lookup comes back
	// empty and the candidate keeps a nil group name.
	f.groups.FindActiveByIDsFn = func(ctx context.Context, ids []uuid.UUID) ([]*model.HoldingGroup, error) {
		return nil, nil
	}

	report, err := f.service().BuildReport(context.Background(), uuid.New(), "user@example.com")
	require.NoError(t, err)

	require.Len(t, report.Companies, 1)
	assert.Nil(t, report.Companies[0].GroupName)
	assert.Len(t, report.Grouped[standaloneGroup], 1)
}

func TestBuildReportMetricsAndSummary(t *testing.T) {
	f := newReportFixture()
	companyID := uuid.New()
	partyID := uuid.New()
	emp1 := uuid.New()
	emp2 := uuid.New()

	f.companies.FindMembershipsByUserFn = func(ctx context.Context, uid uuid.UUID) ([]*model.CompanyMember, error) {
		return []*model.CompanyMember{membership(companyID, "Acme Trading", "owner", &partyID)}, nil
	}
	f.workforce.ActiveEmployeesByCompaniesFn = func(ctx context.Context, companyIDs []uuid.UUID) ([]*model.EmployerEmployee, error) {
		return []*model.EmployerEmployee{
			{ID: emp1, CompanyID: companyID},
			{ID: emp2, CompanyID: companyID},
		}, nil
	}
	f.workforce.ActivePromotersByEmployersFn = func(ctx context.Context, partyIDs []uuid.UUID) ([]*model.Promoter, error) {
		return []*model.Promoter{{ID: uuid.New(), EmployerID: partyID}}, nil
	}
	f.workforce.AttendanceForDayFn = func(ctx context.Context, employeeIDs []uuid.UUID, day time.Time) ([]*model.EmployeeAttendance, error) {
		assert.Equal(t, time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC), day)
		return []*model.EmployeeAttendance{{ID: uuid.New(), EmployeeID: emp1}}, nil
	}
	f.workforce.OpenTasksByEmployeesFn = func(ctx context.Context, employeeIDs []uuid.UUID) ([]*model.EmployeeTask, error) {
		return []*model.EmployeeTask{
			{ID: uuid.New(), EmployeeID: emp2, Status: model.TaskStatusOpen},
			{ID: uuid.New(), EmployeeID: emp2, Status: model.TaskStatusInProgress},
		}, nil
	}
	f.hr.PendingLeavesByCompaniesFn = func(ctx context.Context, companyIDs []uuid.UUID) ([]*model.LeaveRequest, error) {
		return []*model.LeaveRequest{{ID: uuid.New(), CompanyID: companyID}}, nil
	}
	f.hr.PendingExpensesByCompaniesFn = func(ctx context.Context, companyIDs []uuid.UUID) ([]*model.ExpenseClaim, error) {
		return []*model.ExpenseClaim{
			{ID: uuid.New(), CompanyID: companyID},
			{ID: uuid.New(), CompanyID: companyID},
		}, nil
	}
	f.hr.PendingReviewsByCompaniesFn = func(ctx context.Context, companyIDs []uuid.UUID) ([]*model.PerformanceReview, error) {
		return []*model.PerformanceReview{{ID: uuid.New(), CompanyID: companyID}}, nil
	}
	f.contracts.ActiveByFirstPartiesFn = func(ctx context.Context, partyIDs []uuid.UUID) ([]*model.Contract, error) {
		return []*model.Contract{{ID: uuid.New(), FirstPartyID: partyID, SecondPartyID: uuid.New()}}, nil
	}

	report, err := f.service().BuildReport(context.Background(), uuid.New(), "user@example.com")
	require.NoError(t, err)

	require.Len(t, report.Companies, 1)
	stats := report.Companies[0].Stats
	assert.Equal(t, 3, stats.Employees, "two employees plus one promoter")
	assert.Equal(t, 1, stats.TodayCheckIns)
	assert.Equal(t, 2, stats.OpenTasks)
	assert.Equal(t, 1, stats.PendingLeaves)
	assert.Equal(t, 2, stats.PendingExpenses)
	assert.Equal(t, 1, stats.PendingReviews)
	assert.Equal(t, 1, stats.ActiveContracts)

	assert.Equal(t, Summary{
		TotalCompanies:       1,
		TotalEmployees:       3,
		TotalPendingLeaves:   1,
		TotalPendingExpenses: 2,
		TotalActiveContracts: 1,
		TotalTodayCheckIns:   1,
		TotalOpenTasks:       2,
		TotalPendingReviews:  1,
	}, report.Summary)
}

func TestBuildReportSharedPartyContractCounting(t *testing.T) {
	f := newReportFixture()
	partyID := uuid.New()
	companyA := uuid.New()
	companyB := uuid.New()

	f.companies.FindMembershipsByUserFn = func(ctx context.Context, uid uuid.UUID) ([]*model.CompanyMember, error) {
		return []*model.CompanyMember{
			membership(companyA, "Acme East", "member", &partyID),
			membership(companyB, "Acme West", "member", &partyID),
		}, nil
	}

	contract := &model.Contract{ID: uuid.New(), FirstPartyID: partyID, SecondPartyID: partyID, Status: model.ContractStatusActive}
	f.contracts.ActiveByFirstPartiesFn = func(ctx context.Context, partyIDs []uuid.UUID) ([]*model.Contract, error) {
		return []*model.Contract{contract}, nil
	}
	// The same contract also matches on the second-party side; it must still
	// count once per company.
	f.contracts.ActiveBySecondPartiesFn = func(ctx context.Context, partyIDs []uuid.UUID) ([]*model.Contract, error) {
		return []*model.Contract{contract}, nil
	}

	report, err := f.service().BuildReport(context.Background(), uuid.New(), "user@example.com")
	require.NoError(t, err)

	require.Len(t, report.Companies, 2)
	for _, c := range report.Companies {
		assert.Equal(t, 1, c.Stats.ActiveContracts, "company %s", c.Name)
	}
	// Both companies share the party, so the summary intentionally counts the
	// contract twice.
	assert.Equal(t, 2, report.Summary.TotalActiveContracts)
}

func TestBuildReportSurvivesPassAndMetricFailures(t *testing.T) {
	f := newReportFixture()
	companyID := uuid.New()

	f.companies.FindMembershipsByUserFn = func(ctx context.Context, uid uuid.UUID) ([]*model.CompanyMember, error) {
		return []*model.CompanyMember{membership(companyID, "Acme Trading", "member", nil)}, nil
	}
	f.companies.FindActiveByOwnerFn = func(ctx context.Context, oid uuid.UUID) ([]*model.Company, error) {
		return nil, errors.New("db timeout")
	}
	f.parties.FindActiveEmployersFn = func(ctx context.Context) ([]*model.Party, error) {
		return nil, errors.New("db timeout")
	}
	f.workforce.ActiveEmployeesByCompaniesFn = func(ctx context.Context, companyIDs []uuid.UUID) ([]*model.EmployerEmployee, error) {
		return nil, errors.New("db timeout")
	}
	f.hr.PendingLeavesByCompaniesFn = func(ctx context.Context, companyIDs []uuid.UUID) ([]*model.LeaveRequest, error) {
		return nil, errors.New("db timeout")
	}
	f.hr.PendingExpensesByCompaniesFn = func(ctx context.Context, companyIDs []uuid.UUID) ([]*model.ExpenseClaim, error) {
		return []*model.ExpenseClaim{{ID: uuid.New(), CompanyID: companyID}}, nil
	}

	report, err := f.service().BuildReport(context.Background(), uuid.New(), "user@example.com")
	require.NoError(t, err, "partial source failures must not fail the report")

	require.Len(t, report.Companies, 1)
	stats := report.Companies[0].Stats
	assert.Equal(t, 0, stats.Employees)
	assert.Equal(t, 0, stats.PendingLeaves)
	assert.Equal(t, 2, stats.PendingExpenses, "healthy sources still contribute")
}

func TestBuildReportProfileEmailPreferred(t *testing.T) {
	f := newReportFixture()
	userID := uuid.New()
	partyID := uuid.New()
	companyID := uuid.New()

	f.profiles.FindByUserIDFn = func(ctx context.Context, uid uuid.UUID) (*model.Profile, error) {
		return &model.Profile{UserID: uid, Email: "profile@example.com"}, nil
	}
	f.parties.FindActiveEmployersByContactEmailFn = func(ctx context.Context, email string) ([]*model.Party, error) {
		// The pass must query with the profile email, not the session email.
		assert.Equal(t, "profile@example.com", email)
		return []*model.Party{{ID: partyID, Type: model.PartyTypeEmployer}}, nil
	}
	f.companies.FindActiveByPartyIDsFn = func(ctx context.Context, partyIDs []uuid.UUID) ([]*model.Company, error) {
		return []*model.Company{{ID: companyID, Name: "Acme Trading", PartyID: &partyID, IsActive: true}}, nil
	}

	report, err := f.service().BuildReport(context.Background(), userID, "session@example.com")
	require.NoError(t, err)

	require.NotEmpty(t, report.Companies)
	assert.Equal(t, SourceEmployerParty, report.Companies[0].Source)
	assert.Equal(t, "owner", report.Companies[0].UserRole)
}

func TestBuildReportGroupingCompleteness(t *testing.T) {
	f := newReportFixture()
	companyA := uuid.New()
	companyB := uuid.New()
	groupID := uuid.New()

	f.companies.FindMembershipsByUserFn = func(ctx context.Context, uid uuid.UUID) ([]*model.CompanyMember, error) {
		return []*model.CompanyMember{
			membership(companyA, "Grouped Co", "member", nil),
			membership(companyB, "Loner Co", "member", nil),
		}, nil
	}
	f.groups.DirectGroupIDsFn = func(ctx context.Context, companyIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
		return map[uuid.UUID]uuid.UUID{companyA: groupID}, nil
	}
	f.groups.FindActiveByIDsFn = func(ctx context.Context, ids []uuid.UUID) ([]*model.HoldingGroup, error) {
		return []*model.HoldingGroup{{ID: groupID, NameEn: "Falcon Holdings", IsActive: true}}, nil
	}

	report, err := f.service().BuildReport(context.Background(), uuid.New(), "user@example.com")
	require.NoError(t, err)

	// Every company appears exactly once across the group buckets.
	total := 0
	for _, entries := range report.Grouped {
		total += len(entries)
	}
	assert.Equal(t, len(report.Companies), total)
	assert.Len(t, report.Grouped["Falcon Holdings"], 1)
	assert.Len(t, report.Grouped[standaloneGroup], 1)
}
