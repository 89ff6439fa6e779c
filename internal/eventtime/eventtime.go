// Package eventtime parses organizer-entered start times.
//
// Organizers type wall-clock times in a fixed offset (UTC+5:30 by default);
// everything downstream works in UTC.
package eventtime

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/scrimbot/internal/roster"
)

// DefaultOffset is the offset submitted times are interpreted in
const DefaultOffset = 5*time.Hour + 30*time.Minute

// ExpectedFormat is shown to users when their input is rejected
const ExpectedFormat = "YYYY-MM-DD HH:MM (IST)"

var layouts = []string{
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006/01/02 15:04",
}

// PastOrInvalidTimeError rejects a start time that does not parse or is not in the future
type PastOrInvalidTimeError struct {
	Input  string
	Reason string
}

func (e *PastOrInvalidTimeError) Error() string {
	return fmt.Sprintf("invalid start time %q: %s (expected %s)", e.Input, e.Reason, ExpectedFormat)
}

// Kind classifies the error
func (e *PastOrInvalidTimeError) Kind() roster.Kind {
	return roster.KindTimeParse
}

// Parser converts local wall-clock input into absolute UTC instants
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given UTC offset
func NewParser(offset time.Duration) *Parser {
	return &Parser{
		location: time.FixedZone(zoneName(offset), int(offset.Seconds())),
	}
}

// Parse returns the UTC instant for input, which must be strictly after now
func (p *Parser) Parse(input string, now time.Time) (time.Time, error) {
	value := strings.TrimSpace(input)
	if value == "" {
		return time.Time{}, &PastOrInvalidTimeError{Input: input, Reason: "start time is required"}
	}

	var parsed time.Time
	var err error
	for _, layout := range layouts {
		parsed, err = time.ParseInLocation(layout, value, p.location)
		if err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, &PastOrInvalidTimeError{Input: input, Reason: "could not read the date and time"}
	}

	utc := parsed.UTC()
	if !utc.After(now) {
		return time.Time{}, &PastOrInvalidTimeError{Input: input, Reason: "start time must be in the future"}
	}

	return utc, nil
}

// Format renders an instant in the parser's offset using the accepted layout
func (p *Parser) Format(t time.Time) string {
	return t.In(p.location).Format(layouts[0])
}

func zoneName(offset time.Duration) string {
	if offset == DefaultOffset {
		return "IST"
	}
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := int(offset / time.Hour)
	minutes := int((offset % time.Hour) / time.Minute)
	return fmt.Sprintf("UTC%s%02d:%02d", sign, hours, minutes)
}
