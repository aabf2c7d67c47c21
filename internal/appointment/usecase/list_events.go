package usecase

import (
	"context"
	"fmt"
	"time"

	"tailortalk/internal/appointment"
)

// ListEvents returns booked calendar events for one day through the gateway.
// This is a read-only side surface; it does not participate in the chat pipeline.
func (uc *implUseCase) ListEvents(ctx context.Context, input appointment.ListEventsInput) (appointment.ListEventsOutput, error) {
	date, err := time.Parse(DateFormatISO, input.Date)
	if err != nil {
		return appointment.ListEventsOutput{}, appointment.ErrInvalidDate
	}

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	events, err := uc.gateway.ListEvents(ctx, start, end)
	if err != nil {
		return appointment.ListEventsOutput{}, fmt.Errorf("%s: %w", LogPrefixListEvents, err)
	}

	items := make([]appointment.EventItem, 0, len(events))
	for _, ev := range events {
		items = append(items, appointment.EventItem{
			Summary:   ev.Summary,
			StartTime: ev.StartTime,
			EndTime:   ev.EndTime,
			Link:      ev.Link,
		})
	}

	return appointment.ListEventsOutput{Events: items, Count: len(items)}, nil
}
