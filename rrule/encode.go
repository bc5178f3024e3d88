package rrule

import (
	"strconv"
	"strings"
)

// String renders the rule as an RRULE value in canonical part order.
// Decoding the result yields an equal Rule.
func (r *Rule) String() string {
	var parts []string
	add := func(key, value string) {
		parts = append(parts, key+"="+value)
	}

	add("FREQ", r.Frequency.String())
	if until, ok := r.Until.Get(); ok {
		add("UNTIL", until.String())
	}
	if count, ok := r.Count.Get(); ok {
		add("COUNT", strconv.Itoa(count))
	}
	if interval, ok := r.Interval.Get(); ok {
		add("INTERVAL", strconv.Itoa(interval))
	}
	if r.BySecond != nil {
		add("BYSECOND", joinInts(r.BySecond))
	}
	if r.ByMinute != nil {
		add("BYMINUTE", joinInts(r.ByMinute))
	}
	if r.ByHour != nil {
		add("BYHOUR", joinInts(r.ByHour))
	}
	if r.ByWeekday != nil {
		add("BYDAY", joinStrings(r.ByWeekday))
	}
	if r.ByMonthDay != nil {
		add("BYMONTHDAY", joinInts(r.ByMonthDay))
	}
	if r.ByYearDay != nil {
		add("BYYEARDAY", joinInts(r.ByYearDay))
	}
	if r.ByWeekNumber != nil {
		add("BYWEEKNO", joinInts(r.ByWeekNumber))
	}
	if r.ByMonth != nil {
		months := make([]int, len(r.ByMonth))
		for i, m := range r.ByMonth {
			months[i] = int(m)
		}
		add("BYMONTH", joinInts(months))
	}
	if pos, ok := r.BySetPosition.Get(); ok {
		add("BYSETPOS", strconv.Itoa(pos))
	}
	if wkst, ok := r.WeekStart.Get(); ok {
		add("WKST", wkst.String())
	}

	return strings.Join(parts, ";")
}

func joinInts(values []int) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = strconv.Itoa(v)
	}
	return strings.Join(s, ",")
}

func joinStrings[T interface{ String() string }](values []T) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = v.String()
	}
	return strings.Join(s, ",")
}
