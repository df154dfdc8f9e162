package repository

import (
	"sort"
	"time"

	"github.com/escala-hq/escala/backend/internal/domain"
)

// GetMonthlySchedule joins the month's assignments against the directory and
// the catalog into flat export rows. Dangling references render as empty
// fields rather than failing the export. Rows are ordered by date, then
// employee name.
func (r *Repository) GetMonthlySchedule(year int, month time.Month) []*domain.ScheduleRecord {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*domain.ScheduleRecord, 0)
	for _, assignment := range r.assignments {
		day, err := domain.ParseDate(assignment.Date)
		if err != nil {
			continue
		}
		if day.Year() != year || day.Month() != month {
			continue
		}

		record := &domain.ScheduleRecord{Date: assignment.Date}
		if emp := r.findEmployee(assignment.EmployeeID); emp != nil {
			record.EmployeeName = emp.Name
			record.EmployeeID = emp.ID
		}
		if st := r.findShiftType(assignment.ShiftTypeID); st != nil {
			record.ShiftCode = st.Code
			record.ShiftDescription = st.Description
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date < records[j].Date
		}
		return records[i].EmployeeName < records[j].EmployeeName
	})

	return records
}
