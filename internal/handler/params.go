package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"
)

// parseYearMonth reads the year/month query parameters. The wire convention
// is the one the calendar UI has always used: month is a zero-based index
// (0 = January .. 11 = December). Inside the service everything speaks
// time.Month, so the conversion happens here and nowhere else.
func parseYearMonth(r *http.Request) (int, time.Month, error) {
	yearParam := r.URL.Query().Get("year")
	monthParam := r.URL.Query().Get("month")

	year, err := strconv.Atoi(yearParam)
	if err != nil {
		return 0, 0, errors.New("invalid year parameter")
	}

	monthIndex, err := strconv.Atoi(monthParam)
	if err != nil || monthIndex < 0 || monthIndex > 11 {
		return 0, 0, errors.New("invalid month parameter, expected 0-11")
	}

	return year, time.Month(monthIndex + 1), nil
}
