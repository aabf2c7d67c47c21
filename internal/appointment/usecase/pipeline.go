package usecase

import (
	"context"

	"tailortalk/internal/appointment"
	"tailortalk/internal/model"
)

// Chat runs one message through the fixed pipeline. A fresh state is built per
// call; the orchestrator is stateless across requests. Single pass, no cycles,
// no retries: gateway errors propagate straight up to the delivery layer.
func (uc *implUseCase) Chat(ctx context.Context, input appointment.ChatInput) (appointment.ChatOutput, error) {
	state := appointment.PipelineState{
		Request: &model.AppointmentRequest{UserInput: input.Text},
	}

	var out appointment.ChatOutput

	current := nodeParseInput
	for current != nodeDone {
		switch current {
		case nodeParseInput:
			state = uc.parseInput(state)
			current = nodeFindSlots

		case nodeFindSlots:
			if err := uc.findSlots(ctx, &state); err != nil {
				return appointment.ChatOutput{}, err
			}
			current = uc.decideAfterFindSlots(state)

		case nodeConfirmBooking:
			if err := uc.confirmBooking(ctx, &state); err != nil {
				return appointment.ChatOutput{}, err
			}
			current = nodeGenerateResponse

		case nodeGenerateResponse:
			out = appointment.ChatOutput{Response: generateResponse(state)}
			current = nodeDone
		}
	}

	uc.l.Infof(ctx, "%s: intent=%q date=%q range=%q slots=%d confirmed=%t",
		LogPrefixChat,
		state.Request.Intent, state.Request.Date, state.Request.TimeRange,
		len(state.AvailableSlots), state.ConfirmedAppointment != nil)

	return out, nil
}

// decideAfterFindSlots is the single conditional edge: confirm only when the
// search produced candidates.
func (uc *implUseCase) decideAfterFindSlots(state appointment.PipelineState) string {
	if len(state.AvailableSlots) > 0 {
		return nodeConfirmBooking
	}
	return nodeGenerateResponse
}

// parseInput fills intent, date and time range on the request from keyword rules.
// Absence of any keyword is not an error; the field just stays empty.
func (uc *implUseCase) parseInput(state appointment.PipelineState) appointment.PipelineState {
	res := uc.parser.Parse(state.Request.UserInput, uc.now())

	state.Request.Intent = res.Intent
	state.Request.Date = res.Date
	state.Request.TimeRange = res.TimeRange

	return state
}
