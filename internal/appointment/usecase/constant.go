package usecase

// Log prefixes
const (
	LogPrefixChat       = "internal.appointment.usecase.Chat"
	LogPrefixFindSlots  = "internal.appointment.usecase.findSlots"
	LogPrefixConfirm    = "internal.appointment.usecase.confirmBooking"
	LogPrefixListEvents = "internal.appointment.usecase.ListEvents"
)

// Pipeline nodes. The flow is fixed:
// parse_input → find_slots → {confirm_booking | generate_response} → generate_response
const (
	nodeParseInput       = "parse_input"
	nodeFindSlots        = "find_slots"
	nodeConfirmBooking   = "confirm_booking"
	nodeGenerateResponse = "generate_response"
	nodeDone             = ""
)

// Slot search bounds
const (
	// Business-hours fallback when no time range was extracted: 9..16 inclusive.
	businessHourStart = 9
	businessHourEnd   = 17

	slotMinutes = 30
	maxSlots    = 3
)

// EventSummary is the fixed summary for every booked event.
const EventSummary = "Meeting with User"

// Date/time formats
const (
	DateFormatISO = "2006-01-02"

	// 12-hour clock with weekday and month, e.g. "Friday, June 06 at 01:00 PM".
	humanTimeFormat = "Monday, January 02 at 03:04 PM"
	clockFormat     = "03:04 PM"
)

// Reply templates
const (
	MsgNotUnderstood = "I didn't understand that. Could you please rephrase?"
	MsgAskDate       = "When would you like to schedule the appointment?"
	MsgAskTime       = "What time of day works best for you?"
	MsgFallback      = "I'm here to help you schedule appointments. When would you like to meet?"

	msgBookedFormat = "Your appointment has been booked from %s to %s. Here's your calendar link: %s"

	msgSlotsHeader = "I found these available slots:\n"
	msgSlotsFooter = "\nPlease reply with the number of the slot you'd like to book."
)
