package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/escala-hq/escala/backend/internal/domain"
)

func TestUpsertShiftTypeGeneratesIDForNewEntries(t *testing.T) {
	r := NewRepository()

	created := r.UpsertShiftType(domain.ShiftType{Code: "M", Description: "Manhã", Color: "#4dabf7"})
	require.NotEmpty(t, created.ID)

	got, ok := r.GetShiftType(created.ID)
	require.True(t, ok)
	require.Equal(t, "M", got.Code)

	// An unrecognized id also creates a fresh entry under a new id.
	other := r.UpsertShiftType(domain.ShiftType{ID: "never-seen", Code: "T", Description: "Tarde", Color: "#fd7e14"})
	require.NotEqual(t, "never-seen", other.ID)
	require.NotEqual(t, created.ID, other.ID)
	require.Len(t, r.GetAllShiftTypes(), 2)
}

func TestUpsertShiftTypeReplacesInPlace(t *testing.T) {
	r := NewRepository()
	r.InsertShiftType(domain.ShiftType{ID: "shift-1", Code: "M", Description: "Manhã", Color: "#4dabf7"})
	r.InsertShiftType(domain.ShiftType{ID: "shift-2", Code: "T", Description: "Tarde", Color: "#fd7e14"})

	updated := r.UpsertShiftType(domain.ShiftType{ID: "shift-1", Code: "M2", Description: "Manhã cedo", Color: "#000000"})
	require.Equal(t, "shift-1", updated.ID)

	// Replacement keeps insertion order.
	all := r.GetAllShiftTypes()
	require.Len(t, all, 2)
	require.Equal(t, "shift-1", all[0].ID)
	require.Equal(t, "M2", all[0].Code)
	require.Equal(t, "shift-2", all[1].ID)
}

func TestRemoveShiftType(t *testing.T) {
	r := NewRepository()
	r.InsertShiftType(domain.ShiftType{ID: "shift-1", Code: "M", Description: "Manhã", Color: "#4dabf7"})

	require.True(t, r.RemoveShiftType("shift-1"))
	require.False(t, r.RemoveShiftType("shift-1"))

	_, ok := r.GetShiftType("shift-1")
	require.False(t, ok)
}

func TestRemoveShiftTypeLeavesAssignmentsDangling(t *testing.T) {
	r := NewRepository()
	r.InsertShiftType(domain.ShiftType{ID: "shift-1", Code: "M", Description: "Manhã", Color: "#4dabf7"})
	mustUpsert(t, r, "user-2", "2024-03-05", "shift-1")

	require.True(t, r.RemoveShiftType("shift-1"))

	// The assignment survives; its shift type simply no longer resolves.
	assignment, ok := r.GetAssignmentForDate("user-2", "2024-03-05")
	require.True(t, ok)
	require.Equal(t, "shift-1", assignment.ShiftTypeID)

	_, ok = r.GetShiftType(assignment.ShiftTypeID)
	require.False(t, ok)
}

func TestGetShiftTypeMissing(t *testing.T) {
	r := NewRepository()

	_, ok := r.GetShiftType("nope")
	require.False(t, ok)
}
