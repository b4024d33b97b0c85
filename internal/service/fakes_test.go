// internal/service/fakes_test.go
package service

import (
	"context"
	"time"

	"github.com/AbuAli85/contract-management-backend/internal/domain"
	"github.com/AbuAli85/contract-management-backend/internal/model"
	"github.com/google/uuid"
)

// Func-field fakes: each method delegates to the matching field when set and
// returns zero values otherwise, so a test only wires the calls it cares
// about.

type fakeCompanyRepo struct {
	FindMembershipsByUserFn  func(ctx context.Context, userID uuid.UUID) ([]*model.CompanyMember, error)
	FindActiveByOwnerFn      func(ctx context.Context, ownerID uuid.UUID) ([]*model.Company, error)
	FindActiveByPartyEmailFn func(ctx context.Context, email string) ([]*model.Company, error)
	FindActiveByPartyIDsFn   func(ctx context.Context, partyIDs []uuid.UUID) ([]*model.Company, error)
	FindByIDsFn              func(ctx context.Context, ids []uuid.UUID) ([]*model.Company, error)
}

func (f *fakeCompanyRepo) FindMembershipsByUser(ctx context.Context, userID uuid.UUID) ([]*model.CompanyMember, error) {
	if f.FindMembershipsByUserFn != nil {
		return f.FindMembershipsByUserFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeCompanyRepo) FindActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]*model.Company, error) {
	if f.FindActiveByOwnerFn != nil {
		return f.FindActiveByOwnerFn(ctx, ownerID)
	}
	return nil, nil
}

func (f *fakeCompanyRepo) FindActiveByPartyEmail(ctx context.Context, email string) ([]*model.Company, error) {
	if f.FindActiveByPartyEmailFn != nil {
		return f.FindActiveByPartyEmailFn(ctx, email)
	}
	return nil, nil
}

func (f *fakeCompanyRepo) FindActiveByPartyIDs(ctx context.Context, partyIDs []uuid.UUID) ([]*model.Company, error) {
	if f.FindActiveByPartyIDsFn != nil {
		return f.FindActiveByPartyIDsFn(ctx, partyIDs)
	}
	return nil, nil
}

func (f *fakeCompanyRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.Company, error) {
	if f.FindByIDsFn != nil {
		return f.FindByIDsFn(ctx, ids)
	}
	return nil, nil
}

func (f *fakeCompanyRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	return nil, domain.ErrCompanyNotFound
}

func (f *fakeCompanyRepo) Create(ctx context.Context, company *model.Company) error { return nil }
func (f *fakeCompanyRepo) Update(ctx context.Context, company *model.Company) error { return nil }

func (f *fakeCompanyRepo) FindAllPaginated(ctx context.Context, offset, limit int) ([]*model.Company, int64, error) {
	return nil, 0, nil
}

type fakePartyRepo struct {
	FindActiveEmployersByContactEmailFn func(ctx context.Context, email string) ([]*model.Party, error)
	FindActiveEmployersFn               func(ctx context.Context) ([]*model.Party, error)
}

func (f *fakePartyRepo) FindActiveEmployersByContactEmail(ctx context.Context, email string) ([]*model.Party, error) {
	if f.FindActiveEmployersByContactEmailFn != nil {
		return f.FindActiveEmployersByContactEmailFn(ctx, email)
	}
	return nil, nil
}

func (f *fakePartyRepo) FindActiveEmployers(ctx context.Context) ([]*model.Party, error) {
	if f.FindActiveEmployersFn != nil {
		return f.FindActiveEmployersFn(ctx)
	}
	return nil, nil
}

func (f *fakePartyRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Party, error) {
	return nil, domain.ErrPartyNotFound
}

func (f *fakePartyRepo) Create(ctx context.Context, party *model.Party) error { return nil }
func (f *fakePartyRepo) Update(ctx context.Context, party *model.Party) error { return nil }

func (f *fakePartyRepo) FindAllPaginated(ctx context.Context, offset, limit int) ([]*model.Party, int64, error) {
	return nil, 0, nil
}

type fakeGroupRepo struct {
	DirectGroupIDsFn     func(ctx context.Context, companyIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error)
	GroupsForCompaniesFn func(ctx context.Context, companyIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error)
	GroupsForPartiesFn   func(ctx context.Context, partyIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error)
	FindActiveByIDsFn    func(ctx context.Context, ids []uuid.UUID) ([]*model.HoldingGroup, error)
}

func (f *fakeGroupRepo) DirectGroupIDs(ctx context.Context, companyIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	if f.DirectGroupIDsFn != nil {
		return f.DirectGroupIDsFn(ctx, companyIDs)
	}
	return map[uuid.UUID]uuid.UUID{}, nil
}

func (f *fakeGroupRepo) GroupsForCompanies(ctx context.Context, companyIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	if f.GroupsForCompaniesFn != nil {
		return f.GroupsForCompaniesFn(ctx, companyIDs)
	}
	return map[uuid.UUID]uuid.UUID{}, nil
}

func (f *fakeGroupRepo) GroupsForParties(ctx context.Context, partyIDs []uuid.UUID) (map[uuid.UUID]uuid.UUID, error) {
	if f.GroupsForPartiesFn != nil {
		return f.GroupsForPartiesFn(ctx, partyIDs)
	}
	return map[uuid.UUID]uuid.UUID{}, nil
}

func (f *fakeGroupRepo) FindActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]*model.HoldingGroup, error) {
	if f.FindActiveByIDsFn != nil {
		return f.FindActiveByIDsFn(ctx, ids)
	}
	return nil, nil
}

type fakeWorkforceRepo struct {
	ActiveEmployeesByCompaniesFn func(ctx context.Context, companyIDs []uuid.UUID) ([]*model.EmployerEmployee, error)
	ActivePromotersByEmployersFn func(ctx context.Context, partyIDs []uuid.UUID) ([]*model.Promoter, error)
	AttendanceForDayFn           func(ctx context.Context, employeeIDs []uuid.UUID, day time.Time) ([]*model.EmployeeAttendance, error)
	OpenTasksByEmployeesFn       func(ctx context.Context, employeeIDs []uuid.UUID) ([]*model.EmployeeTask, error)
}

func (f *fakeWorkforceRepo) ActiveEmployeesByCompanies(ctx context.Context, companyIDs []uuid.UUID) ([]*model.EmployerEmployee, error) {
	if f.ActiveEmployeesByCompaniesFn != nil {
		return f.ActiveEmployeesByCompaniesFn(ctx, companyIDs)
	}
	return nil, nil
}

func (f *fakeWorkforceRepo) ActivePromotersByEmployers(ctx context.Context, partyIDs []uuid.UUID) ([]*model.Promoter, error) {
	if f.ActivePromotersByEmployersFn != nil {
		return f.ActivePromotersByEmployersFn(ctx, partyIDs)
	}
	return nil, nil
}

func (f *fakeWorkforceRepo) AttendanceForDay(ctx context.Context, employeeIDs []uuid.UUID, day time.Time) ([]*model.EmployeeAttendance, error) {
	if f.AttendanceForDayFn != nil {
		return f.AttendanceForDayFn(ctx, employeeIDs, day)
	}
	return nil, nil
}

func (f *fakeWorkforceRepo) OpenTasksByEmployees(ctx context.Context, employeeIDs []uuid.UUID) ([]*model.EmployeeTask, error) {
	if f.OpenTasksByEmployeesFn != nil {
		return f.OpenTasksByEmployeesFn(ctx, employeeIDs)
	}
	return nil, nil
}

func (f *fakeWorkforceRepo) FindPromoterByID(ctx context.Context, id uuid.UUID) (*model.Promoter, error) {
	return nil, domain.ErrPromoterNotFound
}

func (f *fakeWorkforceRepo) CreatePromoter(ctx context.Context, promoter *model.Promoter) error {
	return nil
}

func (f *fakeWorkforceRepo) UpdatePromoter(ctx context.Context, promoter *model.Promoter) error {
	return nil
}

func (f *fakeWorkforceRepo) FindPromotersPaginated(ctx context.Context, offset, limit int) ([]*model.Promoter, int64, error) {
	return nil, 0, nil
}

type fakeHRRepo struct {
	PendingLeavesByCompaniesFn   func(ctx context.Context, companyIDs []uuid.UUID) ([]*model.LeaveRequest, error)
	PendingExpensesByCompaniesFn func(ctx context.Context, companyIDs []uuid.UUID) ([]*model.ExpenseClaim, error)
	PendingReviewsByCompaniesFn  func(ctx context.Context, companyIDs []uuid.UUID) ([]*model.PerformanceReview, error)
}

func (f *fakeHRRepo) PendingLeavesByCompanies(ctx context.Context, companyIDs []uuid.UUID) ([]*model.LeaveRequest, error) {
	if f.PendingLeavesByCompaniesFn != nil {
		return f.PendingLeavesByCompaniesFn(ctx, companyIDs)
	}
	return nil, nil
}

func (f *fakeHRRepo) PendingExpensesByCompanies(ctx context.Context, companyIDs []uuid.UUID) ([]*model.ExpenseClaim, error) {
	if f.PendingExpensesByCompaniesFn != nil {
		return f.PendingExpensesByCompaniesFn(ctx, companyIDs)
	}
	return nil, nil
}

func (f *fakeHRRepo) PendingReviewsByCompanies(ctx context.Context, companyIDs []uuid.UUID) ([]*model.PerformanceReview, error) {
	if f.PendingReviewsByCompaniesFn != nil {
		return f.PendingReviewsByCompaniesFn(ctx, companyIDs)
	}
	return nil, nil
}

type fakeContractRepo struct {
	ActiveByFirstPartiesFn  func(ctx context.Context, partyIDs []uuid.UUID) ([]*model.Contract, error)
	ActiveBySecondPartiesFn func(ctx context.Context, partyIDs []uuid.UUID) ([]*model.Contract, error)
}

func (f *fakeContractRepo) ActiveByFirstParties(ctx context.Context, partyIDs []uuid.UUID) ([]*model.Contract, error) {
	if f.ActiveByFirstPartiesFn != nil {
		return f.ActiveByFirstPartiesFn(ctx, partyIDs)
	}
	return nil, nil
}

func (f *fakeContractRepo) ActiveBySecondParties(ctx context.Context, partyIDs []uuid.UUID) ([]*model.Contract, error) {
	if f.ActiveBySecondPartiesFn != nil {
		return f.ActiveBySecondPartiesFn(ctx, partyIDs)
	}
	return nil, nil
}

func (f *fakeContractRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	return nil, domain.ErrContractNotFound
}

func (f *fakeContractRepo) Create(ctx context.Context, contract *model.Contract) error { return nil }
func (f *fakeContractRepo) Update(ctx context.Context, contract *model.Contract) error { return nil }

func (f *fakeContractRepo) FindAllPaginated(ctx context.Context, offset, limit int) ([]*model.Contract, int64, error) {
	return nil, 0, nil
}

type fakeProfileRepo struct {
	FindByUserIDFn func(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
}

func (f *fakeProfileRepo) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	if f.FindByUserIDFn != nil {
		return f.FindByUserIDFn(ctx, userID)
	}
	return nil, domain.ErrNotFound
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, profile *model.Profile) error { return nil }
