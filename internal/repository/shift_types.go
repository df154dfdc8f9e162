package repository

import (
	"github.com/escala-hq/escala/backend/internal/domain"
	"github.com/google/uuid"
)

// GetAllShiftTypes returns the catalog in insertion order.
func (r *Repository) GetAllShiftTypes() []*domain.ShiftType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sts := make([]*domain.ShiftType, 0, len(r.shiftTypes))
	for _, st := range r.shiftTypes {
		cp := *st
		sts = append(sts, &cp)
	}
	return sts
}

// GetShiftType reports a missing id through ok, not an error: callers treat
// an unknown shift type as "unassigned" when joining against an assignment.
func (r *Repository) GetShiftType(id string) (*domain.ShiftType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	st := r.findShiftType(id)
	if st == nil {
		return nil, false
	}
	cp := *st
	return &cp, true
}

// UpsertShiftType replaces the entry whose id matches st.ID; if the id is
// empty or unrecognized it mints a fresh one and appends. The catalog keeps
// insertion order either way.
func (r *Repository) UpsertShiftType(st domain.ShiftType) *domain.ShiftType {
	r.mu.Lock()
	defer r.mu.Unlock()

	if st.ID != "" {
		for i, existing := range r.shiftTypes {
			if existing.ID == st.ID {
				cp := st
				r.shiftTypes[i] = &cp
				out := cp
				return &out
			}
		}
	}

	st.ID = uuid.NewString()
	cp := st
	r.shiftTypes = append(r.shiftTypes, &cp)
	out := cp
	return &out
}

// InsertShiftType appends a catalog entry honoring the caller's id. It exists
// for seeding and test fixtures, which need stable ids; runtime edits go
// through UpsertShiftType.
func (r *Repository) InsertShiftType(st domain.ShiftType) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := st
	r.shiftTypes = append(r.shiftTypes, &cp)
}

// RemoveShiftType deletes a catalog entry. Assignments referencing the id are
// deliberately left untouched; the dangling reference resolves to
// "unassigned" at join time.
func (r *Repository) RemoveShiftType(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, st := range r.shiftTypes {
		if st.ID == id {
			r.shiftTypes = append(r.shiftTypes[:i], r.shiftTypes[i+1:]...)
			return true
		}
	}
	return false
}
