package handler

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseYearMonth(t *testing.T) {
	r := httptest.NewRequest("GET", "/schedule?year=2024&month=1", nil)

	year, month, err := parseYearMonth(r)
	require.NoError(t, err)
	require.Equal(t, 2024, year)
	require.Equal(t, time.February, month) // month is zero-based on the wire

	r = httptest.NewRequest("GET", "/schedule?year=2024&month=0", nil)
	_, month, err = parseYearMonth(r)
	require.NoError(t, err)
	require.Equal(t, time.January, month)
}

func TestParseYearMonthRejectsBadInput(t *testing.T) {
	for _, url := range []string{
		"/schedule",
		"/schedule?year=2024",
		"/schedule?year=2024&month=12",
		"/schedule?year=2024&month=-1",
		"/schedule?year=twenty&month=3",
	} {
		r := httptest.NewRequest("GET", url, nil)
		_, _, err := parseYearMonth(r)
		require.Error(t, err, url)
	}
}
