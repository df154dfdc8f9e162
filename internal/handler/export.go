package handler

import (
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{"Date", "Employee", "Employee ID", "Shift", "Description"}

// ExportSchedule produces the flat month join for download. format=json
// (default) returns the rows in the usual envelope; format=xlsx streams a
// workbook.
func (h *Handler) ExportSchedule(w http.ResponseWriter, r *http.Request) {
	year, month, err := parseYearMonth(r)
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	records := h.repository.GetMonthlySchedule(year, month)

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		h.successResponse(w, r, "schedule exported", records)
	case "xlsx":
		f := excelize.NewFile()
		defer f.Close()

		sheet := f.GetSheetName(0)
		for col, header := range exportHeaders {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			_ = f.SetCellValue(sheet, cell, header)
		}

		for row, record := range records {
			values := []string{record.Date, record.EmployeeName, record.EmployeeID, record.ShiftCode, record.ShiftDescription}
			for col, value := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				_ = f.SetCellValue(sheet, cell, value)
			}
		}

		filename := fmt.Sprintf("schedule-%04d-%02d.xlsx", year, int(month))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

		if _, err := f.WriteTo(w); err != nil {
			h.logInternalServerError(r, err)
		}
	default:
		h.errorResponse(w, r, "unsupported export format")
	}
}
