package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestProjectLeapFebruary(t *testing.T) {
	weeks := Project(2024, time.February)

	// Feb 2024 starts on a Thursday and has 29 days: 4 leading January days
	// plus 29 days is 33, padded to 5 full weeks.
	require.Len(t, weeks, 5)
	require.Equal(t, time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC), weeks[0][0])
	require.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), weeks[0][4])
	require.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), weeks[4][4])
	require.Equal(t, time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC), weeks[4][6])
}

func TestProjectNonLeapFebruary(t *testing.T) {
	weeks := Project(2023, time.February)

	count := 0
	for _, week := range weeks {
		for _, day := range week {
			if day.Month() == time.February {
				count++
			}
		}
	}
	require.Equal(t, 28, count)
}

func TestProjectMonthStartingOnSunday(t *testing.T) {
	// September 2024 starts on a Sunday: no leading padding.
	weeks := Project(2024, time.September)

	require.Equal(t, time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC), weeks[0][0])
	require.Equal(t, time.Sunday, weeks[0][0].Weekday())
}

func TestProjectMonthEndingOnSaturday(t *testing.T) {
	// August 2024 ends on a Saturday: no trailing padding.
	weeks := Project(2024, time.August)

	last := weeks[len(weeks)-1][6]
	require.Equal(t, time.Date(2024, time.August, 31, 0, 0, 0, 0, time.UTC), last)
}

func TestProjectYearRollover(t *testing.T) {
	// December spills into January of the next year.
	weeks := Project(2024, time.December)
	last := weeks[len(weeks)-1][6]
	require.Equal(t, 2025, last.Year())
	require.Equal(t, time.January, last.Month())

	// January's leading days come from December of the previous year.
	weeks = Project(2025, time.January)
	first := weeks[0][0]
	require.Equal(t, 2024, first.Year())
	require.Equal(t, time.December, first.Month())
}

func TestProjectInvariants(t *testing.T) {
	for year := 2023; year <= 2026; year++ {
		for month := time.January; month <= time.December; month++ {
			weeks := Project(year, month)
			require.NotEmpty(t, weeks)

			// Strictly consecutive days across the whole grid.
			prev := weeks[0][0]
			inMonth := 0
			for i, week := range weeks {
				for j, day := range week {
					if i == 0 && j == 0 {
						require.Equal(t, time.Sunday, day.Weekday())
					} else {
						require.Equal(t, prev.AddDate(0, 0, 1), day, "gap at %d/%d of %v %d", i, j, month, year)
					}
					if day.Month() == month && day.Year() == year {
						inMonth++
					}
					prev = day
				}
			}

			require.Equal(t, len(MonthDays(year, month)), inMonth, "%v %d", month, year)
		}
	}
}

func TestProjectIsPure(t *testing.T) {
	require.Equal(t, Project(2024, time.February), Project(2024, time.February))
}
