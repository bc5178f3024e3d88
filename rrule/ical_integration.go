package rrule

import (
	"errors"
	"fmt"
	"io"

	"github.com/emersion/go-ical"
)

// EventRules holds the decoded RRULEs of one calendar component
type EventRules struct {
	UID       string
	Component *ical.Component
	Rules     []*Rule
	Warnings  []Warning
}

// DecodeComponent decodes every RRULE property of an iCal component.
// A component without RRULE yields no rules and no error.
func (d *Decoder) DecodeComponent(comp *ical.Component) ([]*Rule, []Warning, error) {
	props := comp.Props[ical.PropRecurrenceRule]
	if len(props) == 0 {
		return nil, nil, nil
	}

	uid := componentUID(comp)
	var rules []*Rule
	var warnings []Warning
	for _, prop := range props {
		rule, w, err := d.Decode(prop.Value)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to decode RRULE of %s %q: %w", comp.Name, uid, err)
		}
		rules = append(rules, rule)
		warnings = append(warnings, w...)
	}

	d.logger.Debug("decoded component recurrence",
		"component", comp.Name,
		"uid", uid,
		"rules", len(rules))

	return rules, warnings, nil
}

// DecodeCalendar reads every VCALENDAR in r and decodes the RRULEs of its
// VEVENT and VTODO components. Components without RRULE are skipped.
func (d *Decoder) DecodeCalendar(r io.Reader) ([]EventRules, error) {
	dec := ical.NewDecoder(r)

	var result []EventRules
	for {
		cal, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse calendar: %w", err)
		}

		for _, child := range cal.Children {
			if child.Name != ical.CompEvent && child.Name != ical.CompToDo {
				continue
			}

			rules, warnings, err := d.DecodeComponent(child)
			if err != nil {
				return nil, err
			}
			if len(rules) == 0 {
				continue
			}

			result = append(result, EventRules{
				UID:       componentUID(child),
				Component: child,
				Rules:     rules,
				Warnings:  warnings,
			})
		}
	}

	return result, nil
}

func componentUID(comp *ical.Component) string {
	if prop := comp.Props.Get(ical.PropUID); prop != nil {
		return prop.Value
	}
	return ""
}
