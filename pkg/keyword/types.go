package keyword

// Result holds whatever the keyword rules managed to extract from one message.
// Empty fields mean the keyword was absent, not an error.
type Result struct {
	Intent    string // "book_appointment" or empty
	Date      string // YYYY-MM-DD or empty
	TimeRange string // HH:MM-HH:MM or empty
}

// Intents
const (
	IntentBookAppointment = "book_appointment"
)

// Time ranges assigned by the rules.
const (
	RangeAfternoon = "13:00-17:00"
	RangeMorning   = "09:00-12:00"
	RangeThreeFive = "15:00-17:00"
)

// DateFormat is the wire format for extracted dates.
const DateFormat = "2006-01-02"
