package rrule

import (
	"strconv"
	"strings"
)

var frequencyByKeyword = map[string]Frequency{
	"minutely": Minutely,
	"hourly":   Hourly,
	"daily":    Daily,
	"weekly":   Weekly,
	"monthly":  Monthly,
	"yearly":   Yearly,
}

var frequencyKeywords = map[Frequency]string{
	Minutely: "MINUTELY",
	Hourly:   "HOURLY",
	Daily:    "DAILY",
	Weekly:   "WEEKLY",
	Monthly:  "MONTHLY",
	Yearly:   "YEARLY",
}

// Weekday codes are matched exactly as they appear on the wire
var weekdayByCode = map[string]Weekday{
	"MO": Monday,
	"TU": Tuesday,
	"WE": Wednesday,
	"TH": Thursday,
	"FR": Friday,
	"SA": Saturday,
	"SU": Sunday,
}

var weekdayCodes = [...]string{"MO", "TU", "WE", "TH", "FR", "SA", "SU"}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// ParseFrequency maps a FREQ keyword to a Frequency, ignoring letter case
func ParseFrequency(keyword string) (Frequency, error) {
	f, ok := frequencyByKeyword[strings.ToLower(keyword)]
	if !ok {
		return 0, newError(ErrUnsupportedFrequency, "", keyword)
	}
	return f, nil
}

// ParseWeekday maps a two-letter weekday code (MO..SU) to a Weekday
func ParseWeekday(code string) (Weekday, error) {
	wd, ok := weekdayByCode[code]
	if !ok {
		return 0, newError(ErrUnsupportedWeekday, "", code)
	}
	return wd, nil
}

// ParseMonth maps a month numeral ("1".."12") to a Month
func ParseMonth(numeral string) (Month, error) {
	n, err := decodeInt(numeral)
	if err != nil || n < int(January) || n > int(December) {
		return 0, newError(ErrInvalidMonth, "", numeral)
	}
	return Month(n), nil
}

func (f Frequency) String() string {
	if kw, ok := frequencyKeywords[f]; ok {
		return kw
	}
	return "Frequency(" + strconv.Itoa(int(f)) + ")"
}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return "Weekday(" + strconv.Itoa(int(d)) + ")"
	}
	return weekdayCodes[d]
}

func (m Month) String() string {
	if m < January || m > December {
		return "Month(" + strconv.Itoa(int(m)) + ")"
	}
	return monthNames[m-1]
}

func (o WeekdayOccurrence) String() string {
	if o.Ordinal == 0 {
		return o.Weekday.String()
	}
	return strconv.Itoa(o.Ordinal) + o.Weekday.String()
}
