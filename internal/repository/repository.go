// Package repository owns all in-process state: the shift catalog, the
// employee directory, login accounts and the assignment store. There is no
// database behind it; one Repository is constructed per process (or per
// test) and passed explicitly to whoever needs it.
package repository

import (
	"sync"

	"github.com/escala-hq/escala/backend/internal/domain"
)

// assignmentKey is the composite key for the at-most-one-assignment-per-
// (employee, day) invariant. The date component is always normalized to
// YYYY-MM-DD before use, so differently padded inputs hit the same slot.
type assignmentKey struct {
	employeeID string
	date       string
}

type Repository struct {
	// A single lock guards every collection. Handlers run concurrently, and
	// upsert must be check-and-set to keep one assignment per (employee, day).
	mu sync.RWMutex

	shiftTypes  []*domain.ShiftType
	employees   []*domain.Employee
	users       []*domain.User
	assignments map[assignmentKey]*domain.Assignment
}

func NewRepository() *Repository {
	return &Repository{
		shiftTypes:  make([]*domain.ShiftType, 0),
		employees:   make([]*domain.Employee, 0),
		users:       make([]*domain.User, 0),
		assignments: make(map[assignmentKey]*domain.Assignment),
	}
}

// findShiftType and findEmployee assume r.mu is already held.
func (r *Repository) findShiftType(id string) *domain.ShiftType {
	for _, st := range r.shiftTypes {
		if st.ID == id {
			return st
		}
	}
	return nil
}

func (r *Repository) findEmployee(id string) *domain.Employee {
	for _, emp := range r.employees {
		if emp.ID == id {
			return emp
		}
	}
	return nil
}
