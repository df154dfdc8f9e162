package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type ScheduleUpdatedMailData struct {
	EmployeeName     string `json:"employeeName"`
	Date             string `json:"date"`
	ShiftCode        string `json:"shiftCode"`
	ShiftDescription string `json:"shiftDescription"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
}
