package rrule

import (
	"strings"
)

// part is one KEY=VALUE segment of a rule, in input order
type part struct {
	Key   string
	Value string
}

// splitParts splits a rule value on ';' and every segment on its first '='
func splitParts(value string) ([]part, error) {
	if len(value) == 0 {
		return nil, newError(ErrEmptyRule, "", "")
	}

	segments := strings.Split(value, ";")
	parts := make([]part, 0, len(segments))
	for _, segment := range segments {
		segment = strings.TrimSpace(segment)
		key, val, found := strings.Cut(segment, "=")
		if !found {
			return nil, newError(ErrMalformedPart, "", segment)
		}
		parts = append(parts, part{
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(val),
		})
	}
	return parts, nil
}
