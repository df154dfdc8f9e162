package domain

// ScheduleRecord is one row of the monthly export: the read-only join of an
// assignment with its directory entry and shift type. Dangling references
// leave the joined fields empty.
type ScheduleRecord struct {
	Date             string `json:"date"`
	EmployeeName     string `json:"employeeName"`
	EmployeeID       string `json:"employeeId"`
	ShiftCode        string `json:"shiftCode"`
	ShiftDescription string `json:"shiftDescription"`
}
