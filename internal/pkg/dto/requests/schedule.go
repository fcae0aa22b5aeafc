package requests

type ScheduleTimeRange struct {
	StartTime string `json:"startTime" validate:"required,clock_time"`
	EndTime   string `json:"endTime" validate:"required,clock_time"`
}

type ScheduleDay struct {
	Day        string              `json:"day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	IsWorking  bool                `json:"isWorking"`
	TimeRanges []ScheduleTimeRange `json:"timeRanges" validate:"dive"`
}

type UpsertDoctorSchedule struct {
	WeeklySchedule          []ScheduleDay `json:"weeklySchedule" validate:"required,len=7,dive"`
	SlotDurationMinutes     int           `json:"slotDurationMinutes" validate:"required,gte=5,lte=240"`
	BufferTimeMinutes       int           `json:"bufferTimeMinutes" validate:"gte=0,lte=120"`
	MaxPatientsPerSlot      int           `json:"maxPatientsPerSlot" validate:"required,gte=1,lte=50"`
	AdvanceBookingDays      int           `json:"advanceBookingDays" validate:"required,gte=1,lte=365"`
	IsAcceptingAppointments bool          `json:"isAcceptingAppointments"`
	AcceptsOnlineBooking    bool          `json:"acceptsOnlineBooking"`
	LeaveDates              []string      `json:"leaveDates" validate:"omitempty,dive,date_iso"`
}
