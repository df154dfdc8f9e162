// Package calendar lays a month out as the 7-column grid the schedule views
// render: whole weeks starting on Sunday, padded with days from the adjacent
// months so every row has exactly seven dates.
package calendar

import "time"

// A Week is seven consecutive calendar days, Sunday first.
type Week [7]time.Time

// Project returns the ordered weeks covering the given month. The first week
// starts on the Sunday on or before the 1st, the last week ends on the
// Saturday on or after the month's final day, and every day of the target
// month appears exactly once. Project is pure; recomputing it on every
// request is cheaper than caching it.
func Project(year int, month time.Month) []Week {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	lead := int(first.Weekday())
	total := lead + daysInMonth
	if rem := total % 7; rem != 0 {
		total += 7 - rem
	}

	start := first.AddDate(0, 0, -lead)
	weeks := make([]Week, total/7)
	for i := 0; i < total; i++ {
		weeks[i/7][i%7] = start.AddDate(0, 0, i)
	}

	return weeks
}

// MonthDays returns every day of the month in order, without padding.
func MonthDays(year int, month time.Month) []time.Time {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	n := first.AddDate(0, 1, -1).Day()

	days := make([]time.Time, n)
	for i := range days {
		days[i] = first.AddDate(0, 0, i)
	}
	return days
}
