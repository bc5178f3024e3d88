package rrule

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DateTimeForm records which of the three iCalendar literal shapes a DateTime came from
type DateTimeForm int

const (
	// DateForm is YYYYMMDD
	DateForm DateTimeForm = iota
	// FloatingForm is YYYYMMDDTHHMMSS, a local time not bound to any zone
	FloatingForm
	// UTCForm is YYYYMMDDTHHMMSSZ
	UTCForm
)

func (f DateTimeForm) String() string {
	switch f {
	case DateForm:
		return "date"
	case FloatingForm:
		return "floating"
	case UTCForm:
		return "utc"
	}
	return "DateTimeForm(" + strconv.Itoa(int(f)) + ")"
}

// DateTime is a decoded iCalendar DATE or DATE-TIME literal.
//
// Time always carries the literal's wall-clock fields in time.UTC. For
// DateForm and FloatingForm no zone was given and Time must not be read as an
// instant; use In to anchor it.
type DateTime struct {
	Time time.Time
	Form DateTimeForm
}

// In returns the instant this value denotes in loc. UTC values are converted,
// date and floating values are interpreted as wall-clock time in loc.
func (d DateTime) In(loc *time.Location) time.Time {
	if d.Form == UTCForm {
		return d.Time.In(loc)
	}
	t := d.Time
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
}

// IsZero reports whether d holds the zero time
func (d DateTime) IsZero() bool {
	return d.Time.IsZero()
}

// String renders the iCalendar literal
func (d DateTime) String() string {
	switch d.Form {
	case DateForm:
		return d.Time.Format("20060102")
	case FloatingForm:
		return d.Time.Format("20060102T150405")
	default:
		return d.Time.Format("20060102T150405") + "Z"
	}
}

var dateTimeLiteral = regexp.MustCompile(`^([0-9]{4})([0-9]{2})([0-9]{2})(?:T([0-9]{2})([0-9]{2})([0-9]{2})(Z?))?$`)

// ParseDateTime parses YYYYMMDD, YYYYMMDDTHHMMSS or YYYYMMDDTHHMMSSZ.
// No other layout is attempted.
func ParseDateTime(value string) (DateTime, error) {
	m := dateTimeLiteral.FindStringSubmatch(value)
	if m == nil {
		return DateTime{}, newError(ErrInvalidDateTime, "", value)
	}

	// All groups are fixed-width digit runs, Atoi cannot fail on them
	field := func(i int) int {
		n, _ := strconv.Atoi(m[i])
		return n
	}

	year, month, day := field(1), field(2), field(3)
	if month < 1 || month > 12 {
		return DateTime{}, &Error{Kind: ErrInvalidDateTime, Value: value, Err: fmt.Errorf("month %d out of range", month)}
	}
	if day < 1 || day > daysIn(year, time.Month(month)) {
		return DateTime{}, &Error{Kind: ErrInvalidDateTime, Value: value, Err: fmt.Errorf("day %d out of range", day)}
	}

	if m[4] == "" {
		return DateTime{
			Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC),
			Form: DateForm,
		}, nil
	}

	hour, minute, second := field(4), field(5), field(6)
	switch {
	case hour > 23:
		return DateTime{}, &Error{Kind: ErrInvalidDateTime, Value: value, Err: fmt.Errorf("hour %d out of range", hour)}
	case minute > 59:
		return DateTime{}, &Error{Kind: ErrInvalidDateTime, Value: value, Err: fmt.Errorf("minute %d out of range", minute)}
	case second > 60:
		return DateTime{}, &Error{Kind: ErrInvalidDateTime, Value: value, Err: fmt.Errorf("second %d out of range", second)}
	}

	form := FloatingForm
	if m[7] == "Z" {
		form = UTCForm
	}

	// A leap second (60) rolls over into the next minute
	return DateTime{
		Time: time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC),
		Form: form,
	}, nil
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
