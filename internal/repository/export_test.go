package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/escala-hq/escala/backend/internal/domain"
)

func TestGetMonthlyScheduleJoinsAllSources(t *testing.T) {
	r := NewRepository()
	r.InsertShiftType(domain.ShiftType{ID: "shift-1", Code: "M", Description: "Manhã", Color: "#4dabf7"})
	r.AddEmployee(domain.Employee{ID: "user-2", Name: "João Silva", Department: "TI", Position: "Analista"})

	mustUpsert(t, r, "user-2", "2024-03-05", "shift-1")

	records := r.GetMonthlySchedule(2024, time.March)
	require.Len(t, records, 1)
	require.Equal(t, &domain.ScheduleRecord{
		Date:             "2024-03-05",
		EmployeeName:     "João Silva",
		EmployeeID:       "user-2",
		ShiftCode:        "M",
		ShiftDescription: "Manhã",
	}, records[0])
}

func TestGetMonthlyScheduleHandlesDanglingReferences(t *testing.T) {
	r := NewRepository()
	r.InsertShiftType(domain.ShiftType{ID: "shift-1", Code: "M", Description: "Manhã", Color: "#4dabf7"})
	r.AddEmployee(domain.Employee{ID: "user-2", Name: "João Silva", Department: "TI", Position: "Analista"})

	mustUpsert(t, r, "user-2", "2024-03-05", "shift-1")
	mustUpsert(t, r, "user-99", "2024-03-06", "shift-1") // no such employee

	// Delete the shift type after assigning it: the export must render the
	// rows as unassigned, never fail.
	require.True(t, r.RemoveShiftType("shift-1"))

	records := r.GetMonthlySchedule(2024, time.March)
	require.Len(t, records, 2)

	for _, record := range records {
		require.Empty(t, record.ShiftCode)
		require.Empty(t, record.ShiftDescription)
	}

	// The dangling employee row keeps its date but joins to nothing.
	require.Equal(t, "2024-03-06", records[1].Date)
	require.Empty(t, records[1].EmployeeName)
	require.Empty(t, records[1].EmployeeID)
}

func TestGetMonthlyScheduleIsOrdered(t *testing.T) {
	r := NewRepository()
	r.AddEmployee(domain.Employee{ID: "user-2", Name: "João Silva"})
	r.AddEmployee(domain.Employee{ID: "user-3", Name: "Ana Costa"})

	mustUpsert(t, r, "user-2", "2024-03-10", "shift-1")
	mustUpsert(t, r, "user-3", "2024-03-10", "shift-2")
	mustUpsert(t, r, "user-3", "2024-03-01", "shift-1")

	records := r.GetMonthlySchedule(2024, time.March)
	require.Len(t, records, 3)
	require.Equal(t, "2024-03-01", records[0].Date)
	require.Equal(t, "Ana Costa", records[1].EmployeeName) // same date sorts by name
	require.Equal(t, "João Silva", records[2].EmployeeName)
}
