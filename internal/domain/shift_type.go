package domain

type BreakInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ShiftType is a named, colored category of work period. Codes are display
// labels and are not required to be unique; the ID is. Start/end times are
// optional (day-off style types have none) and the color is a free-form
// string handed straight to the UI.
type ShiftType struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Color       string          `json:"color"`
	StartTime   string          `json:"startTime,omitempty"`
	EndTime     string          `json:"endTime,omitempty"`
	Breaks      []BreakInterval `json:"breaks,omitempty"`
}
