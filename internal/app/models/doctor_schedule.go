package models

// TimeRange is a working window within a day, both ends expressed as "HH:MM"
// 24-hour clock strings.
type TimeRange struct {
	StartTime string `json:"startTime" bson:"startTime"`
	EndTime   string `json:"endTime" bson:"endTime"`
}

// DaySchedule is one entry in the weekly recurring pattern. A working day with
// an empty TimeRanges list behaves the same as a non-working day.
type DaySchedule struct {
	Day        string      `json:"day" bson:"day"`
	IsWorking  bool        `json:"isWorking" bson:"isWorking"`
	TimeRanges []TimeRange `json:"timeRanges" bson:"timeRanges"`
}

// DoctorSchedule holds the availability configuration for one doctor. There is
// exactly one document per (tenantId, doctorId), enforced by a unique compound
// index.
type DoctorSchedule struct {
	ID                      string        `bson:"_id,omitempty"`
	TenantID                string        `bson:"tenantId"`
	DoctorID                string        `bson:"doctorId"`
	WeeklySchedule          []DaySchedule `bson:"weeklySchedule"`
	SlotDurationMinutes     int           `bson:"slotDurationMinutes"`
	BufferTimeMinutes       int           `bson:"bufferTimeMinutes"`
	MaxPatientsPerSlot      int           `bson:"maxPatientsPerSlot"`
	AdvanceBookingDays      int           `bson:"advanceBookingDays"`
	IsAcceptingAppointments bool          `bson:"isAcceptingAppointments"`
	AcceptsOnlineBooking    bool          `bson:"acceptsOnlineBooking"`
	LeaveDates              []string      `bson:"leaveDates,omitempty"`
	TimeModel               `bson:",inline"`
}
