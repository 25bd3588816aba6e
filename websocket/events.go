package websocket

// Event types for WebSocket messages
const (
	// Booking events
	EventBookingCreated   = "booking:created"
	EventBookingCancelled = "booking:cancelled"

	// Class events
	EventClassCreated = "class:created"

	// General events
	EventScheduleRefresh = "schedule:refresh"
)

// BookingEvent represents a booking-related event
type BookingEvent struct {
	BookingID uint   `json:"booking_id"`
	Reference string `json:"reference"`
	ClassID   uint   `json:"class_id"`
	ClassName string `json:"class_name"`
	StartTime string `json:"start_time"`
	Action    string `json:"action"` // created, cancelled
}

// ClassEvent represents a class-schedule event
type ClassEvent struct {
	ClassID        uint   `json:"class_id"`
	ClassName      string `json:"class_name"`
	Date           string `json:"date"`
	StartTime      string `json:"start_time"`
	InstructorName string `json:"instructor_name"`
}

// ScheduleRefreshEvent signals that the class schedule should be reloaded
type ScheduleRefreshEvent struct {
	Reason string `json:"reason"`
}
