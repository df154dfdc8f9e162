package domain

import (
	"fmt"
	"time"
)

// DateLayout is the canonical wire format for calendar days.
const DateLayout = "2006-01-02"

// parseDateLayout tolerates unpadded month/day components; some callers of
// the old UI produced dates like "2024-3-5".
const parseDateLayout = "2006-1-2"

// Assignment binds one shift type to one employee on one calendar day. Both
// foreign keys may dangle: lookups against the catalog or the directory must
// handle the missing case instead of failing here.
type Assignment struct {
	ID          string `json:"id"`
	EmployeeID  string `json:"employeeId"`
	Date        string `json:"date"` // YYYY-MM-DD, no time component
	ShiftTypeID string `json:"shiftTypeId"`
}

// AssignmentID derives the public identifier for an (employee, date) pair.
// It is a pure function of the pair, which is what makes upsert-as-overwrite
// work; the store itself keys assignments by the pair, not by this string.
func AssignmentID(employeeID string, date time.Time) string {
	return fmt.Sprintf("shift-%s-%s", employeeID, date.Format(DateLayout))
}

// ParseDate parses a calendar-day string into a UTC midnight time.Time.
// A malformed date is a programming error on the caller's side and fails
// loudly rather than being stored as garbage.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(parseDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid calendar date %q: %w", s, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
