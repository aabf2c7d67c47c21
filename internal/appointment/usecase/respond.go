package usecase

import (
	"fmt"
	"strings"

	"tailortalk/internal/appointment"
	"tailortalk/pkg/keyword"
)

// generateResponse renders the pipeline state into a single reply string.
// Pure function of state; first matching case wins.
func generateResponse(state appointment.PipelineState) string {
	if state.Request == nil {
		return MsgNotUnderstood
	}

	if appt := state.ConfirmedAppointment; appt != nil {
		return fmt.Sprintf(msgBookedFormat,
			appt.StartTime.Format(humanTimeFormat),
			appt.EndTime.Format(clockFormat),
			appt.ConfirmationLink)
	}

	if len(state.AvailableSlots) > 0 {
		lines := make([]string, 0, len(state.AvailableSlots))
		for i, slot := range state.AvailableSlots {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, slot.StartTime.Format(humanTimeFormat)))
		}
		return msgSlotsHeader + strings.Join(lines, "\n") + msgSlotsFooter
	}

	if state.Request.Intent == keyword.IntentBookAppointment {
		if state.Request.Date == "" {
			return MsgAskDate
		}
		if state.Request.TimeRange == "" {
			return MsgAskTime
		}
	}

	return MsgFallback
}
