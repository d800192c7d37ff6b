package gcalendar

import "time"

// MirrorEventRequest is the input for mirroring a task deadline to a calendar.
// The event is a zero-length block at the deadline instant; clients render it
// as a due marker.
type MirrorEventRequest struct {
	CalendarID  string
	Title       string
	Description string
	Deadline    time.Time
}

// Event is a simplified representation of a calendar event.
type Event struct {
	ID       string
	Title    string
	HtmlLink string
	Deadline time.Time
}
