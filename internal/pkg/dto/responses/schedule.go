package responses

import "clinicstack-service/internal/app/models"

type DoctorSchedule struct {
	DoctorID                string               `json:"doctorId"`
	WeeklySchedule          []models.DaySchedule `json:"weeklySchedule"`
	SlotDurationMinutes     int                  `json:"slotDurationMinutes"`
	BufferTimeMinutes       int                  `json:"bufferTimeMinutes"`
	MaxPatientsPerSlot      int                  `json:"maxPatientsPerSlot"`
	AdvanceBookingDays      int                  `json:"advanceBookingDays"`
	IsAcceptingAppointments bool                 `json:"isAcceptingAppointments"`
	AcceptsOnlineBooking    bool                 `json:"acceptsOnlineBooking"`
	LeaveDates              []string             `json:"leaveDates,omitempty"`
}
