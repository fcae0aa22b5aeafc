package responses

// Availability is the slot engine's result. Message is set for the degenerate
// but expected outcomes (not working, on leave, fully booked, no schedule) and
// shown verbatim in the booking UI.
type Availability struct {
	AvailableSlots []string `json:"availableSlots"`
	SlotDuration   int      `json:"slotDuration"`
	Message        string   `json:"message,omitempty"`
}
