package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockTimeToMinutes(t *testing.T) {
	t.Run("Valid Times", func(t *testing.T) {
		cases := map[string]int{
			"00:00": 0,
			"09:00": 540,
			"09:30": 570,
			"13:45": 825,
			"23:59": 1439,
		}
		for input, expected := range cases {
			minutes, err := ClockTimeToMinutes(input)
			assert.NoError(t, err)
			assert.Equal(t, expected, minutes)
		}
	})

	t.Run("Malformed Input", func(t *testing.T) {
		for _, input := range []string{"", "9", "09:60", "24:00", "-1:00", "ab:cd", "09:00:00"} {
			_, err := ClockTimeToMinutes(input)
			assert.Error(t, err, "expected %q to be rejected", input)
		}
	})
}

func TestMinutesToClockTime(t *testing.T) {
	assert.Equal(t, "00:00", MinutesToClockTime(0))
	assert.Equal(t, "09:05", MinutesToClockTime(545))
	assert.Equal(t, "13:45", MinutesToClockTime(825))
	assert.Equal(t, "23:59", MinutesToClockTime(1439))
}

func TestClockTimeRoundTrip(t *testing.T) {
	for _, clockTime := range []string{"00:00", "08:15", "12:00", "17:40", "23:59"} {
		minutes, err := ClockTimeToMinutes(clockTime)
		assert.NoError(t, err)
		assert.Equal(t, clockTime, MinutesToClockTime(minutes))
	}
}

func TestParseDateISO(t *testing.T) {
	t.Run("Valid Date", func(t *testing.T) {
		parsed, err := ParseDateISO("2026-09-07")
		assert.NoError(t, err)
		assert.Equal(t, 2026, parsed.Year())
		assert.Equal(t, time.September, parsed.Month())
		assert.Equal(t, 7, parsed.Day())
	})

	t.Run("Invalid Date", func(t *testing.T) {
		for _, input := range []string{"07-09-2026", "2026/09/07", "2026-13-01", "yesterday"} {
			_, err := ParseDateISO(input)
			assert.Error(t, err, "expected %q to be rejected", input)
		}
	})

	t.Run("Round Trip Through Format", func(t *testing.T) {
		parsed, err := ParseDateISO("2026-02-28")
		assert.NoError(t, err)
		assert.Equal(t, "2026-02-28", FormatDateISO(parsed))
	})
}

func TestTruncateToDate(t *testing.T) {
	instant := time.Date(2026, 9, 7, 15, 42, 31, 999, time.Local)
	truncated := TruncateToDate(instant)
	assert.Equal(t, time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local), truncated)
	assert.Equal(t, instant.Location(), truncated.Location())
}

func TestSameCalendarDate(t *testing.T) {
	morning := time.Date(2026, 9, 7, 8, 0, 0, 0, time.Local)
	evening := time.Date(2026, 9, 7, 22, 30, 0, 0, time.Local)
	nextDay := time.Date(2026, 9, 8, 0, 0, 0, 0, time.Local)

	assert.True(t, SameCalendarDate(morning, evening))
	assert.False(t, SameCalendarDate(evening, nextDay))
}
