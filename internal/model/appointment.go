package model

import "time"

// AppointmentRequest is the parsed form of one incoming chat message.
// Empty string / zero fields mean "not extracted". It is created once per
// message and filled by the keyword parser; no stage mutates it afterwards.
type AppointmentRequest struct {
	UserInput string `json:"user_input"`
	Intent    string `json:"intent,omitempty"`
	Date      string `json:"date,omitempty"`       // YYYY-MM-DD
	TimeRange string `json:"time_range,omitempty"` // HH:MM-HH:MM
	Duration  int    `json:"duration,omitempty"`   // minutes
}

// AppointmentSlot is a candidate 30-minute interval offered for booking.
type AppointmentSlot struct {
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// ConfirmedAppointment is the booked event produced from the first candidate slot.
type ConfirmedAppointment struct {
	Summary          string    `json:"summary"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	ConfirmationLink string    `json:"confirmation_link"`
}
