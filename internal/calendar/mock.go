package calendar

import (
	"context"
	"fmt"
	"time"

	"tailortalk/internal/appointment"
)

// mockGateway is a deterministic stand-in used when no credentials are
// configured: a slot is available iff its start hour is odd. It has no real
// calendar semantics.
type mockGateway struct{}

var _ appointment.Gateway = (*mockGateway)(nil)

// NewMock creates the deterministic mock gateway.
func NewMock() appointment.Gateway {
	return &mockGateway{}
}

func (m *mockGateway) CheckAvailability(ctx context.Context, start, end time.Time) (bool, error) {
	return start.Hour()%2 == 1, nil
}

func (m *mockGateway) CreateEvent(ctx context.Context, summary string, start, end time.Time) (string, error) {
	return fmt.Sprintf("https://calendar.google.com/calendar/mock-event/%s", start.Format(time.RFC3339)), nil
}

func (m *mockGateway) ListEvents(ctx context.Context, start, end time.Time) ([]appointment.GatewayEvent, error) {
	return []appointment.GatewayEvent{}, nil
}
