package usecase_test

import (
	"context"
	"testing"
	"time"

	"tailortalk/internal/appointment"
	"tailortalk/internal/appointment/usecase"
	"tailortalk/pkg/keyword"
)

// mockLogger satisfies pkg/log.Logger and discards everything.
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// fakeGateway is a scriptable appointment.Gateway.
type fakeGateway struct {
	free      func(start time.Time) bool // nil = odd-hour rule, like the mock
	availErr  error
	createErr error
	link      string

	events  []appointment.GatewayEvent
	listErr error

	availabilityCalls int
	bookings          []booking
}

type booking struct {
	summary    string
	start, end time.Time
}

func (f *fakeGateway) CheckAvailability(ctx context.Context, start, end time.Time) (bool, error) {
	f.availabilityCalls++
	if f.availErr != nil {
		return false, f.availErr
	}
	if f.free == nil {
		return start.Hour()%2 == 1, nil
	}
	return f.free(start), nil
}

func (f *fakeGateway) CreateEvent(ctx context.Context, summary string, start, end time.Time) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.bookings = append(f.bookings, booking{summary: summary, start: start, end: end})
	if f.link != "" {
		return f.link, nil
	}
	return "https://calendar.google.com/fake-event", nil
}

func (f *fakeGateway) ListEvents(ctx context.Context, start, end time.Time) ([]appointment.GatewayEvent, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

// newUseCase wires a use case around the fake gateway with a fixed clock.
func newUseCase(t *testing.T, gw appointment.Gateway, now time.Time) appointment.UseCase {
	t.Helper()

	parser, err := keyword.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}

	return usecase.New(&mockLogger{}, gw, parser,
		usecase.WithNow(func() time.Time { return now }))
}
