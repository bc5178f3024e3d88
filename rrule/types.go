package rrule

import (
	"github.com/samber/mo"
)

// Frequency is the base repeat unit of a recurrence rule (FREQ)
type Frequency int

const (
	Minutely Frequency = iota + 1
	Hourly
	Daily
	Weekly
	Monthly
	Yearly
)

// Weekday is a day of the week, Monday first (ISO order)
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// Month is a calendar month, January = 1
type Month int

const (
	January Month = iota + 1
	February
	March
	April
	May
	June
	July
	August
	September
	October
	November
	December
)

// WeekdayOccurrence is a single BYDAY entry.
//
// Ordinal 0 selects every such weekday in the period, a positive N the Nth one
// from the start and a negative N the Nth one from the end. The ordinal is not
// checked against the rule's frequency.
type WeekdayOccurrence struct {
	Ordinal int
	Weekday Weekday
}

// Rule is a decoded RRULE value.
//
// Optional scalars are mo.Option values; optional lists are nil when the part
// was absent. A Rule owns all of its slices.
type Rule struct {
	Frequency Frequency
	Until     mo.Option[DateTime]
	Interval  mo.Option[int] // Consumers treat absence as 1
	Count     mo.Option[int]

	BySecond     []int
	ByMinute     []int
	ByHour       []int
	ByWeekday    []WeekdayOccurrence
	ByMonthDay   []int
	ByYearDay    []int
	ByWeekNumber []int
	ByMonth      []Month

	BySetPosition mo.Option[int]
	WeekStart     mo.Option[Weekday] // Consumers treat absence as Monday
}

// EffectiveInterval returns the interval, or 1 when the rule has none
func (r *Rule) EffectiveInterval() int {
	return r.Interval.OrElse(1)
}

// EffectiveWeekStart returns the week start, or Monday when the rule has none
func (r *Rule) EffectiveWeekStart() Weekday {
	return r.WeekStart.OrElse(Monday)
}

// Warning is a non-fatal finding collected while decoding
type Warning struct {
	Part   string // Part name as written
	Value  string // Raw value
	Reason string
}

func (w Warning) String() string {
	return w.Part + "=" + w.Value + ": " + w.Reason
}
