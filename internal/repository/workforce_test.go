// internal/repository/workforce_test.go
package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttendanceForDayFiltersOnCheckIn(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkforceRepository(db)

	e1 := uuid.New()
	day := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "employee_attendances" WHERE employee_id IN \(\$1\) AND work_date = \$2 AND check_in_at IS NOT NULL`).
		WithArgs(e1, "2026-03-14").
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id"}).
			AddRow(uuid.New().String(), e1.String()))

	rows, err := repo.AttendanceForDay(context.Background(), []uuid.UUID{e1}, day)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpenTasksByEmployeesIncludesInProgress(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkforceRepository(db)

	e1 := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "employee_tasks" WHERE employee_id IN \(\$1\) AND status IN \(\$2,\$3\)`).
		WithArgs(e1, "open", "in_progress").
		WillReturnRows(sqlmock.NewRows([]string{"id", "employee_id", "status"}).
			AddRow(uuid.New().String(), e1.String(), "in_progress"))

	tasks, err := repo.OpenTasksByEmployees(context.Background(), []uuid.UUID{e1})
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorkforceEmptyInputsSkipQueries(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewWorkforceRepository(db)
	ctx := context.Background()

	employees, err := repo.ActiveEmployeesByCompanies(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, employees)

	promoters, err := repo.ActivePromotersByEmployers(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, promoters)

	rows, err := repo.AttendanceForDay(ctx, nil, time.Now())
	require.NoError(t, err)
	assert.Empty(t, rows)

	tasks, err := repo.OpenTasksByEmployees(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	assert.NoError(t, mock.ExpectationsWereMet())
}
