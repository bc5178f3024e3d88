package rrule

import (
	"regexp"
	"strconv"
	"strings"
)

// byDayToken matches [sign][digits]WD; the weekday letters are checked against the lexicon separately
var byDayToken = regexp.MustCompile(`^([+-]?)([0-9]*)([A-Za-z]{2})$`)

// decodeInt parses an optionally signed base-10 integer
func decodeInt(value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &Error{Kind: ErrInvalidInteger, Value: value, Err: err}
	}
	return n, nil
}

// decodeIntList parses a comma-separated list of integers, keeping order and duplicates
func decodeIntList(value string) ([]int, error) {
	if value == "" {
		return nil, newError(ErrEmptyList, "", value)
	}

	elems := strings.Split(value, ",")
	list := make([]int, 0, len(elems))
	for _, elem := range elems {
		n, err := decodeInt(elem)
		if err != nil {
			return nil, err
		}
		list = append(list, n)
	}
	return list, nil
}

// decodeMonthList parses a comma-separated list of month numerals
func decodeMonthList(value string) ([]Month, error) {
	if value == "" {
		return nil, newError(ErrEmptyList, "", value)
	}

	elems := strings.Split(value, ",")
	months := make([]Month, 0, len(elems))
	for _, elem := range elems {
		m, err := ParseMonth(elem)
		if err != nil {
			return nil, err
		}
		months = append(months, m)
	}
	return months, nil
}

// decodeByDay parses a BYDAY value such as "MO,WE,FR" or "1SU,-1SU"
func decodeByDay(value string) ([]WeekdayOccurrence, error) {
	if value == "" {
		return nil, newError(ErrEmptyList, "", value)
	}

	tokens := strings.Split(value, ",")
	occurrences := make([]WeekdayOccurrence, 0, len(tokens))
	for _, token := range tokens {
		occ, err := decodeByDayToken(token)
		if err != nil {
			return nil, err
		}
		occurrences = append(occurrences, occ)
	}
	return occurrences, nil
}

func decodeByDayToken(token string) (WeekdayOccurrence, error) {
	m := byDayToken.FindStringSubmatch(token)
	if m == nil {
		return WeekdayOccurrence{}, newError(ErrMalformedByDayToken, "", token)
	}
	sign, digits, code := m[1], m[2], m[3]

	wd, err := ParseWeekday(code)
	if err != nil {
		return WeekdayOccurrence{}, err
	}

	ordinal := 0
	if digits != "" {
		n, err := strconv.Atoi(digits)
		if err != nil {
			// Only reachable on overflow
			return WeekdayOccurrence{}, &Error{Kind: ErrMalformedByDayToken, Value: token, Err: err}
		}
		if sign == "-" {
			n = -n
		}
		ordinal = n
	}

	return WeekdayOccurrence{Ordinal: ordinal, Weekday: wd}, nil
}
