package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/escala-hq/escala/backend/internal/domain"
)

func directoryFixture() *Repository {
	r := NewRepository()
	r.AddEmployee(domain.Employee{ID: "user-2", Name: "João Silva", Department: "TI", Position: "Analista"})
	r.AddEmployee(domain.Employee{ID: "user-3", Name: "Maria Oliveira", Department: "UX/UI", Position: "Designer"})
	r.AddEmployee(domain.Employee{ID: "user-4", Name: "Carlos Santos", Department: "TI", Position: "Desenvolvedor"})
	return r
}

func TestGetEmployee(t *testing.T) {
	r := directoryFixture()

	emp, ok := r.GetEmployee("user-3")
	require.True(t, ok)
	require.Equal(t, "Maria Oliveira", emp.Name)

	_, ok = r.GetEmployee("user-99")
	require.False(t, ok)
}

func TestFilterEmployeesByNameIsCaseInsensitive(t *testing.T) {
	r := directoryFixture()

	require.Len(t, r.FilterEmployees("SILVA", ""), 1)
	require.Len(t, r.FilterEmployees("ari", ""), 1) // substring of Maria
	require.Empty(t, r.FilterEmployees("zeta", ""))
}

func TestFilterEmployeesByDepartmentIsExact(t *testing.T) {
	r := directoryFixture()

	require.Len(t, r.FilterEmployees("", "TI"), 2)
	require.Empty(t, r.FilterEmployees("", "ti"))

	both := r.FilterEmployees("carlos", "TI")
	require.Len(t, both, 1)
	require.Equal(t, "user-4", both[0].ID)
}

func TestFilterEmployeesEmptyFiltersMatchAll(t *testing.T) {
	r := directoryFixture()

	require.Len(t, r.FilterEmployees("", ""), 3)
}

func TestDepartmentsAreDistinctAndSorted(t *testing.T) {
	r := directoryFixture()

	require.Equal(t, []string{"TI", "UX/UI"}, r.Departments())
}
