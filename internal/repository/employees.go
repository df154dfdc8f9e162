package repository

import (
	"sort"
	"strings"

	"github.com/escala-hq/escala/backend/internal/domain"
)

// AddEmployee appends a directory entry. The directory has no runtime edit
// operations; this is used by seeding only.
func (r *Repository) AddEmployee(emp domain.Employee) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := emp
	r.employees = append(r.employees, &cp)
}

func (r *Repository) GetAllEmployees() []*domain.Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emps := make([]*domain.Employee, 0, len(r.employees))
	for _, emp := range r.employees {
		cp := *emp
		emps = append(emps, &cp)
	}
	return emps
}

func (r *Repository) GetEmployee(id string) (*domain.Employee, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	emp := r.findEmployee(id)
	if emp == nil {
		return nil, false
	}
	cp := *emp
	return &cp, true
}

// FilterEmployees is a derived view: case-insensitive name substring match
// plus exact department match. Empty arguments match everything.
func (r *Repository) FilterEmployees(name, department string) []*domain.Employee {
	r.mu.RLock()
	defer r.mu.RUnlock()

	name = strings.ToLower(name)

	emps := make([]*domain.Employee, 0)
	for _, emp := range r.employees {
		if name != "" && !strings.Contains(strings.ToLower(emp.Name), name) {
			continue
		}
		if department != "" && emp.Department != department {
			continue
		}
		cp := *emp
		emps = append(emps, &cp)
	}
	return emps
}

// Departments returns the distinct department names, sorted. The admin view
// uses it to populate its filter dropdown.
func (r *Repository) Departments() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	departments := make([]string, 0)
	for _, emp := range r.employees {
		if emp.Department == "" || seen[emp.Department] {
			continue
		}
		seen[emp.Department] = true
		departments = append(departments, emp.Department)
	}
	sort.Strings(departments)
	return departments
}
