package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/escala-hq/escala/backend/internal/domain"
	"github.com/escala-hq/escala/backend/internal/repository"
)

func TestApplyIsDeterministic(t *testing.T) {
	a := repository.NewRepository()
	b := repository.NewRepository()

	Apply(a, 2024, time.March, 10, 42)
	Apply(b, 2024, time.March, 10, 42)

	require.Equal(t, a.GetMonthlySchedule(2024, time.March), b.GetMonthlySchedule(2024, time.March))
	require.Equal(t, a.GetAllEmployees(), b.GetAllEmployees())
}

func TestApplyDiffersAcrossSeeds(t *testing.T) {
	a := repository.NewRepository()
	b := repository.NewRepository()

	Apply(a, 2024, time.March, 10, 1)
	Apply(b, 2024, time.March, 10, 2)

	require.NotEqual(t, a.GetMonthlySchedule(2024, time.March), b.GetMonthlySchedule(2024, time.March))
}

func TestApplyPopulatesCatalogAndAccounts(t *testing.T) {
	r := repository.NewRepository()
	Apply(r, 2024, time.March, 10, 1)

	require.Len(t, r.GetAllShiftTypes(), len(ShiftTypes))
	require.Len(t, r.GetAllEmployees(), 10)

	admin, ok := r.GetUserByEmail("admin@example.com")
	require.True(t, ok)
	require.Equal(t, domain.RoleAdmin, admin.Role)

	joao, ok := r.GetUserByEmail("JOAO@example.com") // login matching is case-insensitive
	require.True(t, ok)
	require.Equal(t, domain.RoleEmployee, joao.Role)
}

func TestApplyAssignmentsStayInMonthWithValidShifts(t *testing.T) {
	r := repository.NewRepository()
	Apply(r, 2024, time.February, 15, 7)

	valid := make(map[string]bool)
	for _, st := range ShiftTypes {
		valid[st.ID] = true
	}

	assignments := r.GetAssignmentsByMonth(2024, time.February, "")
	require.NotEmpty(t, assignments)

	for _, assignment := range assignments {
		require.True(t, valid[assignment.ShiftTypeID], "unknown shift type %s", assignment.ShiftTypeID)

		day, err := domain.ParseDate(assignment.Date)
		require.NoError(t, err)
		require.Equal(t, time.February, day.Month())

		// Weekends only carry rest or special-leave types.
		switch day.Weekday() {
		case time.Sunday:
			require.Contains(t, []string{"shift-7", "shift-8", "shift-9", "shift-10"}, assignment.ShiftTypeID)
		case time.Saturday:
			require.Contains(t, []string{"shift-6", "shift-8", "shift-9", "shift-10"}, assignment.ShiftTypeID)
		}
	}
}
