package rrule

import (
	"log/slog"
	"strings"

	"github.com/samber/mo"
)

// Decoder turns RRULE values into Rules.
// It holds no per-call state and is safe for concurrent use.
type Decoder struct {
	unknownParts UnknownPartPolicy
	logger       *slog.Logger
}

// partDecoder decodes one part's raw value into r
type partDecoder func(r *Rule, value string) error

// partDecoders is keyed by lowercased part name
var partDecoders = map[string]partDecoder{
	"freq": func(r *Rule, value string) error {
		f, err := ParseFrequency(value)
		if err != nil {
			return err
		}
		r.Frequency = f
		return nil
	},
	"until": func(r *Rule, value string) error {
		dt, err := ParseDateTime(value)
		if err != nil {
			return err
		}
		r.Until = mo.Some(dt)
		return nil
	},
	"count": func(r *Rule, value string) error {
		n, err := decodeInt(value)
		if err != nil {
			return err
		}
		if n < 0 {
			return newError(ErrInvalidInteger, "", value)
		}
		r.Count = mo.Some(n)
		return nil
	},
	"interval": func(r *Rule, value string) error {
		n, err := decodeInt(value)
		if err != nil {
			return err
		}
		if n < 1 {
			return newError(ErrInvalidInteger, "", value)
		}
		r.Interval = mo.Some(n)
		return nil
	},
	"bysecond":   intList(func(r *Rule) *[]int { return &r.BySecond }),
	"byminute":   intList(func(r *Rule) *[]int { return &r.ByMinute }),
	"byhour":     intList(func(r *Rule) *[]int { return &r.ByHour }),
	"bymonthday": intList(func(r *Rule) *[]int { return &r.ByMonthDay }),
	"byyearday":  intList(func(r *Rule) *[]int { return &r.ByYearDay }),
	"byweekno":   intList(func(r *Rule) *[]int { return &r.ByWeekNumber }),
	"byday": func(r *Rule, value string) error {
		days, err := decodeByDay(value)
		if err != nil {
			return err
		}
		r.ByWeekday = days
		return nil
	},
	"bymonth": func(r *Rule, value string) error {
		months, err := decodeMonthList(value)
		if err != nil {
			return err
		}
		r.ByMonth = months
		return nil
	},
	"bysetpos": func(r *Rule, value string) error {
		n, err := decodeInt(value)
		if err != nil {
			return err
		}
		r.BySetPosition = mo.Some(n)
		return nil
	},
	"wkst": func(r *Rule, value string) error {
		wd, err := ParseWeekday(value)
		if err != nil {
			return err
		}
		r.WeekStart = mo.Some(wd)
		return nil
	},
}

func intList(field func(r *Rule) *[]int) partDecoder {
	return func(r *Rule, value string) error {
		list, err := decodeIntList(value)
		if err != nil {
			return err
		}
		*field(r) = list
		return nil
	}
}

var defaultDecoder = NewDecoderWithConfig(DefaultConfig)

// Decode decodes an RRULE value with DefaultConfig, discarding warnings
func Decode(value string) (*Rule, error) {
	r, _, err := defaultDecoder.Decode(value)
	return r, err
}

// MustDecode is like Decode but panics on error
func MustDecode(value string) *Rule {
	r, err := Decode(value)
	if err != nil {
		panic("rrule: MustDecode(" + value + "): " + err.Error())
	}
	return r
}

// Decode decodes an RRULE value, the text after "RRULE:" on an unfolded
// content line. On failure no Rule is returned.
func (d *Decoder) Decode(value string) (*Rule, []Warning, error) {
	parts, err := splitParts(value)
	if err != nil {
		return nil, nil, err
	}
	return d.assemble(parts)
}

// assemble folds parts into a Rule; a repeated part overwrites the earlier one
func (d *Decoder) assemble(parts []part) (*Rule, []Warning, error) {
	rule := &Rule{}
	var warnings []Warning

	for _, p := range parts {
		name := strings.ToUpper(p.Key)
		decode, ok := partDecoders[strings.ToLower(p.Key)]
		if !ok {
			if d.unknownParts == UnknownPartsReject {
				return nil, nil, newError(ErrUnrecognizedProperty, p.Key, p.Value)
			}
			d.logger.Warn("ignoring unrecognized rule part",
				"part", p.Key,
				"value", p.Value)
			warnings = append(warnings, Warning{
				Part:   p.Key,
				Value:  p.Value,
				Reason: "unrecognized rule part",
			})
			continue
		}

		if err := decode(rule, p.Value); err != nil {
			d.logger.Debug("failed to decode rule part",
				"part", name,
				"value", p.Value,
				"error", err)
			return nil, nil, withPart(err, name)
		}
		d.logger.Debug("decoded rule part",
			"part", name,
			"value", p.Value)
	}

	if rule.Frequency == 0 {
		return nil, nil, newError(ErrMissingFrequency, "", "")
	}
	return rule, warnings, nil
}
