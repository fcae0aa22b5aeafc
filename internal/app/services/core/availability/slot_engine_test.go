package availability

import (
	"testing"
	"time"

	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/constvars"

	"github.com/stretchr/testify/assert"
)

func buildSchedule() *models.DoctorSchedule {
	weekly := []models.DaySchedule{
		{Day: "monday", IsWorking: true, TimeRanges: []models.TimeRange{
			{StartTime: "09:00", EndTime: "13:00"},
			{StartTime: "14:00", EndTime: "18:00"},
		}},
		{Day: "tuesday", IsWorking: true, TimeRanges: []models.TimeRange{
			{StartTime: "09:00", EndTime: "12:00"},
		}},
		{Day: "wednesday", IsWorking: false},
		{Day: "thursday", IsWorking: true, TimeRanges: []models.TimeRange{}},
		{Day: "friday", IsWorking: true, TimeRanges: []models.TimeRange{
			{StartTime: "09:00", EndTime: "10:00"},
		}},
		{Day: "saturday", IsWorking: false},
		{Day: "sunday", IsWorking: false},
	}
	return &models.DoctorSchedule{
		TenantID:                "tenant-1",
		DoctorID:                "doctor-1",
		WeeklySchedule:          weekly,
		SlotDurationMinutes:     30,
		BufferTimeMinutes:       0,
		MaxPatientsPerSlot:      1,
		AdvanceBookingDays:      30,
		IsAcceptingAppointments: true,
		AcceptsOnlineBooking:    true,
	}
}

// 2026-09-07 is a Monday.
var (
	monday    = time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local)
	wednesday = time.Date(2026, 9, 9, 0, 0, 0, 0, time.Local)
	thursday  = time.Date(2026, 9, 10, 0, 0, 0, 0, time.Local)
	friday    = time.Date(2026, 9, 11, 0, 0, 0, 0, time.Local)
)

func TestResolveWorkingRanges(t *testing.T) {
	schedule := buildSchedule()

	t.Run("Working Day Returns Ranges Verbatim", func(t *testing.T) {
		ranges, message := ResolveWorkingRanges(schedule, monday)
		assert.Empty(t, message)
		assert.Equal(t, []models.TimeRange{
			{StartTime: "09:00", EndTime: "13:00"},
			{StartTime: "14:00", EndTime: "18:00"},
		}, ranges)
	})

	t.Run("Non Working Weekday", func(t *testing.T) {
		ranges, message := ResolveWorkingRanges(schedule, wednesday)
		assert.Nil(t, ranges)
		assert.Equal(t, constvars.MsgDoctorNotWorking, message)
	})

	t.Run("Working Day With Empty Ranges Behaves As Not Working", func(t *testing.T) {
		ranges, message := ResolveWorkingRanges(schedule, thursday)
		assert.Nil(t, ranges)
		assert.Equal(t, constvars.MsgDoctorNotWorking, message)
	})

	t.Run("Leave Date Overrides Working Flag", func(t *testing.T) {
		onLeave := buildSchedule()
		onLeave.LeaveDates = []string{"2026-09-07"}
		ranges, message := ResolveWorkingRanges(onLeave, monday)
		assert.Nil(t, ranges)
		assert.Equal(t, constvars.MsgDoctorOnLeave, message)
	})
}

func TestGenerateCandidates(t *testing.T) {
	t.Run("Single Range No Buffer", func(t *testing.T) {
		candidates := GenerateCandidates([]models.TimeRange{{StartTime: "09:00", EndTime: "10:00"}}, 30, 0)
		// 09:30+30 == 10:00 is the boundary and still valid.
		assert.Equal(t, []string{"09:00", "09:30"}, candidates)
	})

	t.Run("Buffer Pushes Second Candidate Out Of Range", func(t *testing.T) {
		candidates := GenerateCandidates([]models.TimeRange{{StartTime: "09:00", EndTime: "10:00"}}, 30, 10)
		// Second cursor is 09:40; 09:40+30 = 10:10 > 10:00, so only one slot.
		assert.Equal(t, []string{"09:00"}, candidates)
	})

	t.Run("Ranges Concatenate In Order Without Merging", func(t *testing.T) {
		candidates := GenerateCandidates([]models.TimeRange{
			{StartTime: "14:00", EndTime: "15:00"},
			{StartTime: "09:00", EndTime: "10:00"},
		}, 30, 0)
		assert.Equal(t, []string{"14:00", "14:30", "09:00", "09:30"}, candidates)
	})

	t.Run("Overlapping Ranges Emit Duplicates", func(t *testing.T) {
		candidates := GenerateCandidates([]models.TimeRange{
			{StartTime: "09:00", EndTime: "10:00"},
			{StartTime: "09:00", EndTime: "10:00"},
		}, 60, 0)
		assert.Equal(t, []string{"09:00", "09:00"}, candidates)
	})

	t.Run("Zero Pads Hours And Minutes", func(t *testing.T) {
		candidates := GenerateCandidates([]models.TimeRange{{StartTime: "08:05", EndTime: "09:05"}}, 30, 0)
		assert.Equal(t, []string{"08:05", "08:35"}, candidates)
	})

	t.Run("Malformed Range Is Skipped", func(t *testing.T) {
		candidates := GenerateCandidates([]models.TimeRange{
			{StartTime: "9am", EndTime: "10:00"},
			{StartTime: "11:00", EndTime: "12:00"},
		}, 60, 0)
		assert.Equal(t, []string{"11:00"}, candidates)
	})
}

func TestFilterByCapacity(t *testing.T) {
	candidates := []string{"09:00", "09:30", "10:00"}

	t.Run("Booked Slot Removed At Capacity One", func(t *testing.T) {
		appointments := []models.Appointment{
			{StartTime: "09:30", Status: constvars.AppointmentStatusScheduled},
		}
		available := FilterByCapacity(candidates, appointments, 1)
		assert.Equal(t, []string{"09:00", "10:00"}, available)
	})

	t.Run("Cancelled Appointments Do Not Constrain", func(t *testing.T) {
		appointments := []models.Appointment{
			{StartTime: "09:30", Status: constvars.AppointmentStatusCancelled},
		}
		available := FilterByCapacity(candidates, appointments, 1)
		assert.Equal(t, candidates, available)
	})

	t.Run("Capacity Greater Than One", func(t *testing.T) {
		appointments := []models.Appointment{
			{StartTime: "09:00", Status: constvars.AppointmentStatusScheduled},
			{StartTime: "09:00", Status: constvars.AppointmentStatusConfirmed},
			{StartTime: "09:30", Status: constvars.AppointmentStatusScheduled},
		}
		available := FilterByCapacity(candidates, appointments, 2)
		assert.Equal(t, []string{"09:30", "10:00"}, available)
	})

	t.Run("Mid Slot Appointment Constrains Nothing", func(t *testing.T) {
		appointments := []models.Appointment{
			{StartTime: "09:15", Status: constvars.AppointmentStatusScheduled},
		}
		available := FilterByCapacity(candidates, appointments, 1)
		assert.Equal(t, candidates, available)
	})
}

func TestValidateBookingWindow(t *testing.T) {
	schedule := buildSchedule()
	today := monday

	t.Run("Past Date Rejected", func(t *testing.T) {
		message := ValidateBookingWindow(schedule, today.AddDate(0, 0, -1), today, false)
		assert.Equal(t, constvars.MsgPastDate, message)
	})

	t.Run("Today Accepted", func(t *testing.T) {
		message := ValidateBookingWindow(schedule, today, today, false)
		assert.Empty(t, message)
	})

	t.Run("Horizon Boundary Accepted", func(t *testing.T) {
		message := ValidateBookingWindow(schedule, today.AddDate(0, 0, schedule.AdvanceBookingDays), today, false)
		assert.Empty(t, message)
	})

	t.Run("Beyond Horizon Rejected", func(t *testing.T) {
		message := ValidateBookingWindow(schedule, today.AddDate(0, 0, schedule.AdvanceBookingDays+1), today, false)
		assert.Equal(t, constvars.MsgBeyondBookingWindow, message)
	})

	t.Run("Not Accepting Appointments", func(t *testing.T) {
		closed := buildSchedule()
		closed.IsAcceptingAppointments = false
		message := ValidateBookingWindow(closed, today, today, false)
		assert.Equal(t, constvars.MsgNotAcceptingAppointment, message)
	})

	t.Run("Online Booking Check Applies To Public Callers Only", func(t *testing.T) {
		offline := buildSchedule()
		offline.AcceptsOnlineBooking = false
		assert.Empty(t, ValidateBookingWindow(offline, today, today, false))
		assert.Equal(t, constvars.ErrClientOnlineBookingDisabled, ValidateBookingWindow(offline, today, today, true))
	})
}

func TestComputeAvailability(t *testing.T) {
	schedule := buildSchedule()
	today := monday

	t.Run("Full Monday Yields Sixteen Candidates", func(t *testing.T) {
		result := ComputeAvailability(schedule, nil, monday, today, false)
		assert.Empty(t, result.Message)
		assert.Len(t, result.AvailableSlots, 16)
		assert.Equal(t, "09:00", result.AvailableSlots[0])
		assert.Equal(t, "17:30", result.AvailableSlots[15])
		assert.Equal(t, 30, result.SlotDuration)
	})

	t.Run("Idempotent For Identical Inputs", func(t *testing.T) {
		first := ComputeAvailability(schedule, nil, monday, today, false)
		second := ComputeAvailability(schedule, nil, monday, today, false)
		assert.Equal(t, first, second)
	})

	t.Run("Fully Booked Is Distinct From Not Working", func(t *testing.T) {
		appointments := []models.Appointment{}
		for _, slot := range ComputeAvailability(buildSchedule(), nil, friday, today, false).AvailableSlots {
			appointments = append(appointments, models.Appointment{
				StartTime: slot,
				Status:    constvars.AppointmentStatusScheduled,
			})
		}

		booked := ComputeAvailability(buildSchedule(), appointments, friday, today, false)
		assert.Empty(t, booked.AvailableSlots)
		assert.Equal(t, constvars.MsgFullyBooked, booked.Message)

		notWorking := ComputeAvailability(buildSchedule(), nil, wednesday, today, false)
		assert.Empty(t, notWorking.AvailableSlots)
		assert.Equal(t, constvars.MsgDoctorNotWorking, notWorking.Message)
	})

	t.Run("Window Rejection Short Circuits", func(t *testing.T) {
		result := ComputeAvailability(schedule, nil, monday.AddDate(0, 0, -7), today, false)
		assert.Empty(t, result.AvailableSlots)
		assert.Equal(t, constvars.MsgPastDate, result.Message)
	})
}
