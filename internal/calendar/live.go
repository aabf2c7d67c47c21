package calendar

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"tailortalk/internal/appointment"
	"tailortalk/pkg/gcalendar"
)

// Availability cache bounds. Slot enumeration re-queries the same half-hour
// windows on consecutive turns; results are only trusted briefly so a booking
// made elsewhere shows up quickly.
const (
	availabilityCacheSize = 64
	availabilityCacheTTL  = 30 * time.Second
)

// fallbackLink is returned when the provider omits an event's web link.
const fallbackLink = "https://calendar.google.com/calendar"

// liveGateway talks to Google Calendar through pkg/gcalendar.
type liveGateway struct {
	client     *gcalendar.Client
	calendarID string
	availCache *expirable.LRU[int64, bool]
}

var _ appointment.Gateway = (*liveGateway)(nil)

// NewLive creates a gateway backed by the given Google Calendar client.
func NewLive(client *gcalendar.Client, calendarID string) appointment.Gateway {
	if calendarID == "" {
		calendarID = "primary"
	}
	return &liveGateway{
		client:     client,
		calendarID: calendarID,
		availCache: expirable.NewLRU[int64, bool](availabilityCacheSize, nil, availabilityCacheTTL),
	}
}

func (g *liveGateway) CheckAvailability(ctx context.Context, start, end time.Time) (bool, error) {
	key := start.Unix()
	if free, ok := g.availCache.Get(key); ok {
		return free, nil
	}

	free, err := g.client.IsFree(ctx, gcalendar.FreeBusyRequest{
		CalendarID: g.calendarID,
		TimeMin:    start,
		TimeMax:    end,
	})
	if err != nil {
		return false, err
	}

	g.availCache.Add(key, free)
	return free, nil
}

func (g *liveGateway) CreateEvent(ctx context.Context, summary string, start, end time.Time) (string, error) {
	event, err := g.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID: g.calendarID,
		Summary:    summary,
		StartTime:  start,
		EndTime:    end,
		Timezone:   "UTC",
	})
	if err != nil {
		return "", err
	}

	// A booked slot is no longer free; drop any cached availability for it.
	g.availCache.Remove(start.Unix())

	if event.HtmlLink == "" {
		return fallbackLink, nil
	}
	return event.HtmlLink, nil
}

func (g *liveGateway) ListEvents(ctx context.Context, start, end time.Time) ([]appointment.GatewayEvent, error) {
	events, err := g.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: g.calendarID,
		TimeMin:    start,
		TimeMax:    end,
	})
	if err != nil {
		return nil, err
	}

	out := make([]appointment.GatewayEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, appointment.GatewayEvent{
			Summary:   ev.Summary,
			StartTime: ev.StartTime,
			EndTime:   ev.EndTime,
			Link:      ev.HtmlLink,
		})
	}
	return out, nil
}
