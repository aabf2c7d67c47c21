package appointment

import (
	"time"

	"tailortalk/internal/model"
)

// ChatInput is the input for one conversational turn.
type ChatInput struct {
	Text string
}

// ChatOutput is the rendered assistant reply.
type ChatOutput struct {
	Response string
}

// PipelineState is the transient aggregate threaded through the pipeline for a
// single message. A fresh state is built per message; nothing is shared across
// requests.
//
// Invariants:
//   - len(AvailableSlots) <= 3
//   - ConfirmedAppointment != nil implies AvailableSlots was non-empty when the
//     confirm stage ran, and its times equal AvailableSlots[0].
type PipelineState struct {
	Request              *model.AppointmentRequest
	AvailableSlots       []model.AppointmentSlot
	ConfirmedAppointment *model.ConfirmedAppointment
}

// ListEventsInput is the input for listing booked events on one day.
type ListEventsInput struct {
	Date string // YYYY-MM-DD
}

// EventItem is one calendar event in a listing.
type EventItem struct {
	Summary   string
	StartTime time.Time
	EndTime   time.Time
	Link      string
}

// ListEventsOutput is the result of listing booked events.
type ListEventsOutput struct {
	Events []EventItem
	Count  int
}
