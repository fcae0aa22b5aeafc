package availability

import (
	"strings"
	"time"

	"clinicstack-service/internal/app/models"
	"clinicstack-service/internal/pkg/constvars"
	"clinicstack-service/internal/pkg/utils"
)

// The slot engine is a pure function of three inputs: the doctor's schedule,
// the set of non-cancelled appointments on the target date, and "today". It
// never writes anything; callers persist bookings separately.

// ResolveWorkingRanges maps the target date onto the weekly pattern. The
// second return value is a user-facing message when the doctor is not working
// that date, empty when ranges were found. A working day with no time ranges
// yields the not-working message, not an error.
func ResolveWorkingRanges(schedule *models.DoctorSchedule, date time.Time) ([]models.TimeRange, string) {
	weekday := strings.ToLower(date.Weekday().String())

	var daySchedule *models.DaySchedule
	for i := range schedule.WeeklySchedule {
		if strings.ToLower(schedule.WeeklySchedule[i].Day) == weekday {
			daySchedule = &schedule.WeeklySchedule[i]
			break
		}
	}
	if daySchedule == nil || !daySchedule.IsWorking {
		return nil, constvars.MsgDoctorNotWorking
	}

	dateStr := utils.FormatDateISO(date)
	for _, leaveDate := range schedule.LeaveDates {
		if leaveDate == dateStr {
			return nil, constvars.MsgDoctorOnLeave
		}
	}

	if len(daySchedule.TimeRanges) == 0 {
		return nil, constvars.MsgDoctorNotWorking
	}
	return daySchedule.TimeRanges, ""
}

// GenerateCandidates subdivides each working range into candidate start times.
// The cursor starts at the range start and advances by slotDuration+bufferTime
// minutes; a candidate is emitted only while cursor+slotDuration still fits
// within the range (start+duration == end is the last valid slot). Ranges are
// processed in the order given and never merged, so overlapping ranges emit
// duplicate candidates.
func GenerateCandidates(timeRanges []models.TimeRange, slotDurationMinutes, bufferTimeMinutes int) []string {
	if slotDurationMinutes <= 0 {
		return []string{}
	}

	candidates := []string{}
	for _, timeRange := range timeRanges {
		startMinutes, err := utils.ClockTimeToMinutes(timeRange.StartTime)
		if err != nil {
			continue
		}
		endMinutes, err := utils.ClockTimeToMinutes(timeRange.EndTime)
		if err != nil {
			continue
		}

		for cursor := startMinutes; cursor+slotDurationMinutes <= endMinutes; cursor += slotDurationMinutes + bufferTimeMinutes {
			candidates = append(candidates, utils.MinutesToClockTime(cursor))
		}
	}
	return candidates
}

// FilterByCapacity keeps candidates whose exact-start-time booking count is
// strictly below maxPatientsPerSlot. Appointments are assumed slot-aligned;
// one starting mid-slot constrains nothing.
func FilterByCapacity(candidates []string, appointments []models.Appointment, maxPatientsPerSlot int) []string {
	if maxPatientsPerSlot < 1 {
		maxPatientsPerSlot = 1
	}

	bookedCount := make(map[string]int, len(appointments))
	for _, appointment := range appointments {
		if appointment.Status == constvars.AppointmentStatusCancelled {
			continue
		}
		bookedCount[appointment.StartTime]++
	}

	available := []string{}
	for _, candidate := range candidates {
		if bookedCount[candidate] < maxPatientsPerSlot {
			available = append(available, candidate)
		}
	}
	return available
}

// ValidateBookingWindow rejects target dates outside the doctor's booking
// horizon. today must already be truncated to midnight. The boundary date
// today+advanceBookingDays is accepted. The returned message is empty when
// the date is bookable.
func ValidateBookingWindow(schedule *models.DoctorSchedule, targetDate, today time.Time, publicBooking bool) string {
	if !schedule.IsAcceptingAppointments {
		return constvars.MsgNotAcceptingAppointment
	}
	if publicBooking && !schedule.AcceptsOnlineBooking {
		return constvars.ErrClientOnlineBookingDisabled
	}

	targetDate = utils.TruncateToDate(targetDate)
	if targetDate.Before(today) {
		return constvars.MsgPastDate
	}
	horizon := today.AddDate(0, 0, schedule.AdvanceBookingDays)
	if targetDate.After(horizon) {
		return constvars.MsgBeyondBookingWindow
	}
	return ""
}

// ComputeAvailability runs the full pipeline: window validation, schedule
// resolution, candidate generation and capacity filtering. A non-empty
// Message with an empty slot list is a normal outcome, not an error.
func ComputeAvailability(
	schedule *models.DoctorSchedule,
	appointments []models.Appointment,
	targetDate, today time.Time,
	publicBooking bool,
) *AvailabilityResult {
	if message := ValidateBookingWindow(schedule, targetDate, today, publicBooking); message != "" {
		return &AvailabilityResult{
			AvailableSlots: []string{},
			SlotDuration:   schedule.SlotDurationMinutes,
			Message:        message,
		}
	}

	workingRanges, message := ResolveWorkingRanges(schedule, targetDate)
	if message != "" {
		return &AvailabilityResult{
			AvailableSlots: []string{},
			SlotDuration:   schedule.SlotDurationMinutes,
			Message:        message,
		}
	}

	candidates := GenerateCandidates(workingRanges, schedule.SlotDurationMinutes, schedule.BufferTimeMinutes)
	available := FilterByCapacity(candidates, appointments, schedule.MaxPatientsPerSlot)

	result := &AvailabilityResult{
		AvailableSlots: available,
		SlotDuration:   schedule.SlotDurationMinutes,
	}
	if len(available) == 0 {
		result.Message = constvars.MsgFullyBooked
	}
	return result
}

// AvailabilityResult mirrors the wire response but stays free of dto imports
// so the engine can be exercised on its own.
type AvailabilityResult struct {
	AvailableSlots []string
	SlotDuration   int
	Message        string
}
