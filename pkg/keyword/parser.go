package keyword

import (
	"fmt"
	"strings"
	"time"
)

// Parser extracts a booking intent, date and time range from free text using
// fixed substring rules. There is deliberately no NLP here.
type Parser struct {
	location *time.Location
}

// NewParser creates a keyword parser for the given IANA timezone string.
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse applies the keyword rules to input, using baseTime as "now".
// Each rule group is independent; within a group the first match wins.
func (p *Parser) Parse(input string, baseTime time.Time) Result {
	lowered := strings.ToLower(input)
	now := baseTime.In(p.location)

	var res Result

	if strings.Contains(lowered, "schedule") ||
		strings.Contains(lowered, "book") ||
		strings.Contains(lowered, "meeting") {
		res.Intent = IntentBookAppointment
	}

	if strings.Contains(lowered, "tomorrow") {
		res.Date = now.AddDate(0, 0, 1).Format(DateFormat)
	} else if strings.Contains(lowered, "friday") {
		// daysAhead is 0 when today already is Friday, so "friday" on a Friday
		// resolves to today rather than the following week.
		daysAhead := (int(time.Friday) - int(now.Weekday()) + 7) % 7
		res.Date = now.AddDate(0, 0, daysAhead).Format(DateFormat)
	}

	if strings.Contains(lowered, "afternoon") {
		res.TimeRange = RangeAfternoon
	} else if strings.Contains(lowered, "morning") {
		res.TimeRange = RangeMorning
	} else if strings.Contains(lowered, "3-5 pm") {
		res.TimeRange = RangeThreeFive
	}

	return res
}
