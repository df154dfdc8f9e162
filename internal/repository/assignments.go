package repository

import (
	"sort"
	"time"

	"github.com/escala-hq/escala/backend/internal/domain"
)

// UpsertAssignment assigns a shift type to an (employee, day) pair. If the
// pair already has an assignment its shift-type reference is overwritten in
// place; otherwise a new assignment is created. Neither the employee nor the
// shift type is checked for existence — both references may dangle and are
// resolved at join time. The only error is a malformed date string.
func (r *Repository) UpsertAssignment(employeeID, date, shiftTypeID string) (*domain.Assignment, error) {
	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := assignmentKey{employeeID: employeeID, date: day.Format(domain.DateLayout)}
	if existing, ok := r.assignments[key]; ok {
		existing.ShiftTypeID = shiftTypeID
		cp := *existing
		return &cp, nil
	}

	assignment := &domain.Assignment{
		ID:          domain.AssignmentID(employeeID, day),
		EmployeeID:  employeeID,
		Date:        key.date,
		ShiftTypeID: shiftTypeID,
	}
	r.assignments[key] = assignment

	cp := *assignment
	return &cp, nil
}

// GetAssignmentsByMonth returns every assignment whose date falls in the
// given calendar month, optionally restricted to one employee (empty id
// means all). Matching decomposes each stored date into year/month fields
// rather than comparing strings, so unpadded inputs from old callers still
// land in the right month. Results are ordered by date, then employee id.
func (r *Repository) GetAssignmentsByMonth(year int, month time.Month, employeeID string) []*domain.Assignment {
	r.mu.RLock()
	defer r.mu.RUnlock()

	assignments := make([]*domain.Assignment, 0)
	for _, assignment := range r.assignments {
		if employeeID != "" && assignment.EmployeeID != employeeID {
			continue
		}
		day, err := domain.ParseDate(assignment.Date)
		if err != nil {
			// Stored dates are normalized by UpsertAssignment, so this branch
			// is unreachable; skipping keeps the read path total anyway.
			continue
		}
		if day.Year() != year || day.Month() != month {
			continue
		}
		cp := *assignment
		assignments = append(assignments, &cp)
	}

	sort.Slice(assignments, func(i, j int) bool {
		if assignments[i].Date != assignments[j].Date {
			return assignments[i].Date < assignments[j].Date
		}
		return assignments[i].EmployeeID < assignments[j].EmployeeID
	})

	return assignments
}

// GetAssignmentForDate is the direct composite-key lookup. A date string
// that does not parse cannot correspond to anything in the store, since
// UpsertAssignment rejects malformed dates; it reports not found.
func (r *Repository) GetAssignmentForDate(employeeID, date string) (*domain.Assignment, bool) {
	day, err := domain.ParseDate(date)
	if err != nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	assignment, ok := r.assignments[assignmentKey{employeeID: employeeID, date: day.Format(domain.DateLayout)}]
	if !ok {
		return nil, false
	}
	cp := *assignment
	return &cp, true
}
