package usecase

import (
	"context"
	"fmt"

	"tailortalk/internal/appointment"
	"tailortalk/internal/model"
)

// confirmBooking books exactly the first candidate slot. There is no mechanism
// for the user to pick a different one even though up to three were listed.
func (uc *implUseCase) confirmBooking(ctx context.Context, state *appointment.PipelineState) error {
	if len(state.AvailableSlots) == 0 {
		return nil
	}

	slot := state.AvailableSlots[0]

	link, err := uc.gateway.CreateEvent(ctx, EventSummary, slot.StartTime, slot.EndTime)
	if err != nil {
		return fmt.Errorf("%s: event creation failed: %w", LogPrefixConfirm, err)
	}

	state.ConfirmedAppointment = &model.ConfirmedAppointment{
		Summary:          EventSummary,
		StartTime:        slot.StartTime,
		EndTime:          slot.EndTime,
		ConfirmationLink: link,
	}

	return nil
}
