package appointment

import (
	"context"
	"time"
)

// UseCase defines the business logic interface for the appointment domain.
type UseCase interface {
	// Chat runs one message through the pipeline and returns the reply text.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// ListEvents returns booked calendar events for one day.
	ListEvents(ctx context.Context, input ListEventsInput) (ListEventsOutput, error)
}

// Gateway is the calendar capability injected once at startup: either the live
// Google Calendar client or the deterministic mock when no credentials are
// configured.
type Gateway interface {
	// CheckAvailability reports whether [start, end) is free on the calendar.
	CheckAvailability(ctx context.Context, start, end time.Time) (bool, error)

	// CreateEvent books the interval and returns a confirmation link.
	CreateEvent(ctx context.Context, summary string, start, end time.Time) (string, error)

	// ListEvents returns events within [start, end].
	ListEvents(ctx context.Context, start, end time.Time) ([]GatewayEvent, error)
}

// GatewayEvent is a calendar event as reported by a Gateway.
type GatewayEvent struct {
	Summary   string
	StartTime time.Time
	EndTime   time.Time
	Link      string
}
