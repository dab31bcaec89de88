package glxhack

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformedAttrib is returned when an attribute is not of the form KEY=VALUE.
	ErrMalformedAttrib = errors.New("malformed attribute")
	// ErrTerminatorKey is returned when an attribute uses the reserved key 0.
	ErrTerminatorKey = errors.New("attribute key 0 is reserved for the terminator")
)

// Parse builds a List from comma separated KEY=VALUE pairs.
// Keys and values accept Go integer literal syntax ("0x2091", "3", "0b10").
// The result owns fresh storage and holds no terminator slot; use
// [Terminated] for the driver layout.
func Parse(s string) (List, error) {
	if strings.TrimSpace(s) == "" {
		return List{}, nil
	}

	parts := strings.Split(s, ",")
	l := make(List, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		keyStr, valueStr, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrMalformedAttrib, part)
		}
		key, err := parseInt32(keyStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: key: %w", ErrMalformedAttrib, part, err)
		}
		if key == Terminator {
			return nil, fmt.Errorf("%w: %q", ErrTerminatorKey, part)
		}
		value, err := parseInt32(valueStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: value: %w", ErrMalformedAttrib, part, err)
		}
		l = append(l, Attrib{Key: key, Value: value})
	}
	return l, nil
}

func parseInt32(s string) (int32, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 0, 32)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}
