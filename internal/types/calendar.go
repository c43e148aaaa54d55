package types

import "time"

// InterviewReminder is the payload for scheduling an interview on the
// candidate's calendar. A preparation event is created three days earlier.
type InterviewReminder struct {
	JobTitle      string    `json:"jobTitle"`
	Company       string    `json:"company"`
	InterviewDate time.Time `json:"interviewDate"`
	Notes         string    `json:"notes,omitempty"`
}

// DeadlineReminder is the payload for an application deadline event.
type DeadlineReminder struct {
	JobTitle       string    `json:"jobTitle"`
	Company        string    `json:"company"`
	Deadline       time.Time `json:"deadline"`
	ApplicationURL string    `json:"applicationUrl,omitempty"`
}

// CalendarEvent is a normalized created or listed calendar entry.
type CalendarEvent struct {
	ID      string    `json:"id"`
	Summary string    `json:"summary"`
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Link    string    `json:"link,omitempty"`
}
