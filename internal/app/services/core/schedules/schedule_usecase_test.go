package schedules

import (
	"testing"

	"clinicstack-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

func weeklyWith(timeRanges ...requests.ScheduleTimeRange) []requests.ScheduleDay {
	return []requests.ScheduleDay{
		{Day: "monday", IsWorking: true, TimeRanges: timeRanges},
		{Day: "tuesday", IsWorking: false},
		{Day: "wednesday", IsWorking: false},
		{Day: "thursday", IsWorking: false},
		{Day: "friday", IsWorking: false},
		{Day: "saturday", IsWorking: false},
		{Day: "sunday", IsWorking: false},
	}
}

func TestValidateTimeRanges(t *testing.T) {
	t.Run("Valid Ranges", func(t *testing.T) {
		weekly := weeklyWith(
			requests.ScheduleTimeRange{StartTime: "09:00", EndTime: "13:00"},
			requests.ScheduleTimeRange{StartTime: "14:00", EndTime: "18:00"},
		)
		assert.NoError(t, validateTimeRanges(weekly))
	})

	t.Run("End Before Start", func(t *testing.T) {
		weekly := weeklyWith(requests.ScheduleTimeRange{StartTime: "13:00", EndTime: "09:00"})
		assert.Error(t, validateTimeRanges(weekly))
	})

	t.Run("Zero Length Range", func(t *testing.T) {
		weekly := weeklyWith(requests.ScheduleTimeRange{StartTime: "09:00", EndTime: "09:00"})
		assert.Error(t, validateTimeRanges(weekly))
	})

	t.Run("Malformed Clock Time", func(t *testing.T) {
		weekly := weeklyWith(requests.ScheduleTimeRange{StartTime: "9am", EndTime: "17:00"})
		assert.Error(t, validateTimeRanges(weekly))
	})

	t.Run("Overlapping Ranges Are Accepted", func(t *testing.T) {
		// Overlap within a day is the doctor's own arrangement; only the
		// ordering inside each range is enforced.
		weekly := weeklyWith(
			requests.ScheduleTimeRange{StartTime: "09:00", EndTime: "13:00"},
			requests.ScheduleTimeRange{StartTime: "12:00", EndTime: "15:00"},
		)
		assert.NoError(t, validateTimeRanges(weekly))
	})

	t.Run("Non Working Day Ranges Are Still Checked", func(t *testing.T) {
		weekly := weeklyWith()
		weekly[1].TimeRanges = []requests.ScheduleTimeRange{{StartTime: "18:00", EndTime: "08:00"}}
		assert.Error(t, validateTimeRanges(weekly))
	})
}

func TestBuildWeeklySchedule(t *testing.T) {
	weekly := weeklyWith(
		requests.ScheduleTimeRange{StartTime: "09:00", EndTime: "13:00"},
		requests.ScheduleTimeRange{StartTime: "14:00", EndTime: "18:00"},
	)

	days := buildWeeklySchedule(weekly)

	assert.Len(t, days, 7)
	assert.Equal(t, "monday", days[0].Day)
	assert.True(t, days[0].IsWorking)
	assert.Len(t, days[0].TimeRanges, 2)
	assert.Equal(t, "09:00", days[0].TimeRanges[0].StartTime)
	assert.Equal(t, "18:00", days[0].TimeRanges[1].EndTime)
	assert.False(t, days[1].IsWorking)
	assert.Empty(t, days[1].TimeRanges)
}
