package rrule

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRule is returned for a zero-length rule value
	ErrEmptyRule = errors.New("empty recurrence rule")
	// ErrMalformedPart is returned for a rule part without '='
	ErrMalformedPart = errors.New("malformed rule part")
	// ErrMissingFrequency is returned when no FREQ part is present
	ErrMissingFrequency = errors.New("missing FREQ")
	// ErrUnsupportedFrequency is returned for an unknown FREQ keyword
	ErrUnsupportedFrequency = errors.New("unsupported frequency")
	// ErrUnsupportedWeekday is returned for an unknown two-letter weekday code
	ErrUnsupportedWeekday = errors.New("unsupported weekday")
	// ErrInvalidMonth is returned for a month outside 1..12
	ErrInvalidMonth = errors.New("invalid month")
	// ErrInvalidInteger is returned for a value that is not a usable integer
	ErrInvalidInteger = errors.New("invalid integer")
	// ErrEmptyList is returned for a list part with no elements
	ErrEmptyList = errors.New("empty list")
	// ErrMalformedByDayToken is returned for a BYDAY token that does not match [+-]N?WD
	ErrMalformedByDayToken = errors.New("malformed BYDAY token")
	// ErrInvalidDateTime is returned for a literal that is not YYYYMMDD[THHMMSS[Z]]
	ErrInvalidDateTime = errors.New("invalid date-time")
	// ErrUnrecognizedProperty is returned for an unknown part when unknown parts are rejected
	ErrUnrecognizedProperty = errors.New("unrecognized rule part")
)

// Error describes a decode failure.
// Kind is one of the Err* sentinels and is matched by errors.Is.
type Error struct {
	Kind  error
	Part  string // Part name (FREQ, BYDAY, ...), empty when the failure is not tied to one
	Value string // Offending raw text
	Err   error  // Underlying cause, if any
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Part != "" {
		msg = fmt.Sprintf("%s: %s", e.Part, msg)
	}
	if e.Value != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Value)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func newError(kind error, part, value string) *Error {
	return &Error{Kind: kind, Part: part, Value: value}
}

// withPart fills in the part name on a decoder error that was raised without one
func withPart(err error, part string) error {
	var de *Error
	if errors.As(err, &de) && de.Part == "" {
		de.Part = part
	}
	return err
}
