package rrule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// XCalNamespace is the RFC 6321 xCal namespace
const XCalNamespace = "urn:ietf:params:xml:ns:icalendar-2.0"

const tagRecur = "recur"

// ToXML renders the rule as an xCal <recur> element (RFC 6321 section 3.6.10).
// Multi-valued parts become one child element per value.
func (r *Rule) ToXML() *etree.Element {
	recur := etree.NewElement(tagRecur)
	recur.CreateAttr("xmlns", XCalNamespace)

	add := func(tag, value string) {
		recur.CreateElement(tag).SetText(value)
	}
	addInts := func(tag string, values []int) {
		for _, v := range values {
			add(tag, strconv.Itoa(v))
		}
	}

	add("freq", r.Frequency.String())
	if until, ok := r.Until.Get(); ok {
		add("until", xcalDateTime(until))
	}
	if count, ok := r.Count.Get(); ok {
		add("count", strconv.Itoa(count))
	}
	if interval, ok := r.Interval.Get(); ok {
		add("interval", strconv.Itoa(interval))
	}
	addInts("bysecond", r.BySecond)
	addInts("byminute", r.ByMinute)
	addInts("byhour", r.ByHour)
	for _, occ := range r.ByWeekday {
		add("byday", occ.String())
	}
	addInts("bymonthday", r.ByMonthDay)
	addInts("byyearday", r.ByYearDay)
	addInts("byweekno", r.ByWeekNumber)
	for _, m := range r.ByMonth {
		add("bymonth", strconv.Itoa(int(m)))
	}
	if pos, ok := r.BySetPosition.Get(); ok {
		add("bysetpos", strconv.Itoa(pos))
	}
	if wkst, ok := r.WeekStart.Get(); ok {
		add("wkst", wkst.String())
	}

	return recur
}

// xcalDateTime renders the RFC 6321 form, e.g. 1997-12-24T00:00:00Z
func xcalDateTime(d DateTime) string {
	switch d.Form {
	case DateForm:
		return d.Time.Format("2006-01-02")
	case FloatingForm:
		return d.Time.Format("2006-01-02T15:04:05")
	default:
		return d.Time.Format("2006-01-02T15:04:05") + "Z"
	}
}

var xcalDateTimeStripper = strings.NewReplacer("-", "", ":", "")

// DecodeElement decodes an xCal <recur> element. Repeated child elements are
// joined into one list value; the result follows the same rules as Decode.
func (d *Decoder) DecodeElement(elem *etree.Element) (*Rule, []Warning, error) {
	if elem == nil || elem.Tag != tagRecur {
		return nil, nil, fmt.Errorf("invalid xCal value: missing %s element", tagRecur)
	}

	children := elem.ChildElements()
	if len(children) == 0 {
		return nil, nil, newError(ErrEmptyRule, "", "")
	}

	var order []string
	values := make(map[string][]string)
	for _, child := range children {
		text := strings.TrimSpace(child.Text())
		if strings.EqualFold(child.Tag, "until") {
			text = xcalDateTimeStripper.Replace(text)
		}
		if _, seen := values[child.Tag]; !seen {
			order = append(order, child.Tag)
		}
		values[child.Tag] = append(values[child.Tag], text)
	}

	parts := make([]part, 0, len(order))
	for _, key := range order {
		parts = append(parts, part{Key: key, Value: strings.Join(values[key], ",")})
	}
	return d.assemble(parts)
}
