// Package seed fills a fresh repository with demo data: the standard shift
// catalog, a directory of employees and one month of plausible assignments.
// Generation is driven by an explicit seed so a given (seed, month) pair
// always produces the same schedule, both at startup and in tests.
package seed

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/escala-hq/escala/backend/internal/domain"
	"github.com/escala-hq/escala/backend/internal/repository"
)

// ShiftTypes is the default catalog. Ids are stable so assignments generated
// here and fixtures in tests can reference them directly.
var ShiftTypes = []domain.ShiftType{
	{ID: "shift-1", Code: "M", Description: "Manhã", Color: "#4dabf7", StartTime: "08:00", EndTime: "14:00"},
	{ID: "shift-2", Code: "T", Description: "Tarde", Color: "#fd7e14", StartTime: "13:00", EndTime: "19:00"},
	{ID: "shift-3", Code: "N", Description: "Noite", Color: "#9775fa", StartTime: "17:00", EndTime: "23:30"},
	{ID: "shift-4", Code: "U", Description: "Turno Especial/Uniforme", Color: "#1864ab", StartTime: "17:10", EndTime: "23:30"},
	{ID: "shift-5", Code: "Fd", Description: "Feriado", Color: "#fa5252"},
	{ID: "shift-6", Code: "DO", Description: "Day Off", Color: "#dee2e6"},
	{ID: "shift-7", Code: "DSR", Description: "Descanso Semanal Remunerado", Color: "#8ce99a"},
	{ID: "shift-8", Code: "Fe", Description: "Férias", Color: "#ffd43b"},
	{ID: "shift-9", Code: "Af", Description: "Afastamento Médico", Color: "#faa2c1"},
	{ID: "shift-10", Code: "Fo", Description: "Folga Livre", Color: "#2b8a3e"},
}

// Users are the login accounts. The admin is not a directory entry; the
// employee accounts double as the first directory entries.
var Users = []domain.User{
	{ID: "user-1", Name: "Admin", Email: "admin@example.com", Role: domain.RoleAdmin, Position: "Gerente", Department: "Administração"},
	{ID: "user-2", Name: "João Silva", Email: "joao@example.com", Role: domain.RoleEmployee, Position: "Analista", Department: "TI"},
	{ID: "user-3", Name: "Maria Oliveira", Email: "maria@example.com", Role: domain.RoleEmployee, Position: "Designer", Department: "UX/UI"},
	{ID: "user-4", Name: "Carlos Santos", Email: "carlos@example.com", Role: domain.RoleEmployee, Position: "Desenvolvedor", Department: "TI"},
	{ID: "user-5", Name: "Ana Costa", Email: "ana@example.com", Role: domain.RoleEmployee, Position: "Analista", Department: "RH"},
}

var departments = []string{"TI", "RH", "Financeiro", "Marketing", "Vendas", "Suporte"}
var positions = []string{"Analista", "Especialista", "Coordenador", "Assistente", "Técnico"}

// weekday shift types eligible for a regular working day.
var weekdayShiftIDs = []string{"shift-1", "shift-2", "shift-3", "shift-4"}

// special-leave types that overwrite whatever was assigned in their window.
var specialShiftIDs = []string{"shift-8", "shift-9", "shift-10"}

// Apply seeds the repository for the given month. employeeCount is the total
// directory size; entries beyond the named accounts are generated.
func Apply(r *repository.Repository, year int, month time.Month, employeeCount int, randomSeed int64) {
	rng := rand.New(rand.NewSource(randomSeed))

	for _, st := range ShiftTypes {
		r.InsertShiftType(st)
	}

	for _, user := range Users {
		r.AddUser(user)
		if user.Role == domain.RoleEmployee {
			r.AddEmployee(domain.Employee{
				ID:         user.ID,
				Name:       user.Name,
				Email:      user.Email,
				Department: user.Department,
				Position:   user.Position,
			})
		}
	}

	for i := len(Users); i < employeeCount+1; i++ {
		n := i - len(Users) + 1
		r.AddEmployee(domain.Employee{
			ID:         fmt.Sprintf("user-%d", i+1),
			Name:       fmt.Sprintf("Funcionário %d", n),
			Email:      fmt.Sprintf("funcionario%d@example.com", n),
			Department: departments[rng.Intn(len(departments))],
			Position:   positions[rng.Intn(len(positions))],
		})
	}

	seedAssignments(r, rng, year, month)
}

func seedAssignments(r *repository.Repository, rng *rand.Rand, year int, month time.Month) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	for _, emp := range r.GetAllEmployees() {
		for day := 1; day <= daysInMonth; day++ {
			// Leave roughly one day in five unassigned.
			if rng.Float64() > 0.8 {
				continue
			}

			date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

			var shiftTypeID string
			switch date.Weekday() {
			case time.Sunday:
				shiftTypeID = "shift-7" // DSR
			case time.Saturday:
				shiftTypeID = "shift-6" // Day Off
			default:
				shiftTypeID = weekdayShiftIDs[rng.Intn(len(weekdayShiftIDs))]
			}

			upsert(r, emp.ID, date, shiftTypeID)
		}

		// One special-leave window per employee; vacations run longer than
		// medical leave. The window overwrites whatever was assigned before.
		special := specialShiftIDs[rng.Intn(len(specialShiftIDs))]
		start := rng.Intn(20) + 1
		duration := 2
		if special == "shift-8" {
			duration = 5
		}

		for i := 0; i < duration; i++ {
			date := time.Date(year, month, start+i, 0, 0, 0, 0, time.UTC)
			if date.Month() != month {
				break
			}
			upsert(r, emp.ID, date, special)
		}
	}
}

func upsert(r *repository.Repository, employeeID string, date time.Time, shiftTypeID string) {
	if _, err := r.UpsertAssignment(employeeID, date.Format(domain.DateLayout), shiftTypeID); err != nil {
		// Dates are formatted right above, so this cannot happen.
		slog.Error("seed: assignment rejected", "employee", employeeID, "error", err)
	}
}
