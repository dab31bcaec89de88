package glxhack

import (
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedVersion is returned when a version string is not of the form MAJOR.MINOR.
var ErrMalformedVersion = errors.New("malformed profile version")

// ProfileVersion is an OpenGL context version.
//
// Versions are totally ordered by major, then minor. The layout matches the
// two unsigned ints written by glXQueryCurrentRendererIntegerMESA for the
// profile version queries.
type ProfileVersion struct {
	Major int32
	Minor int32
}

// FallbackCeiling is the compatibility ceiling assumed when the driver's own
// report cannot be trusted (its version has been overridden), or when a
// rewrite is forced without any report at all.
var FallbackCeiling = ProfileVersion{Major: 3, Minor: 0}

// Compare returns -1, 0 or +1 depending on whether v is lower than, equal
// to, or higher than w.
func (v ProfileVersion) Compare(w ProfileVersion) int {
	if c := cmp.Compare(v.Major, w.Major); c != 0 {
		return c
	}
	return cmp.Compare(v.Minor, w.Minor)
}

// Less reports whether v orders before w.
func (v ProfileVersion) Less(w ProfileVersion) bool {
	return v.Compare(w) < 0
}

// IsZero reports whether v is the zero version, which drivers return
// when the query fails.
func (v ProfileVersion) IsZero() bool {
	return v == ProfileVersion{}
}

func (v ProfileVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ParseProfileVersion parses "MAJOR.MINOR", e.g. "3.1".
func ParseProfileVersion(s string) (ProfileVersion, error) {
	majorStr, minorStr, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok {
		return ProfileVersion{}, fmt.Errorf("%w: %q", ErrMalformedVersion, s)
	}
	major, err := strconv.ParseInt(majorStr, 10, 32)
	if err != nil {
		return ProfileVersion{}, fmt.Errorf("%w: %q: %w", ErrMalformedVersion, s, err)
	}
	minor, err := strconv.ParseInt(minorStr, 10, 32)
	if err != nil {
		return ProfileVersion{}, fmt.Errorf("%w: %q: %w", ErrMalformedVersion, s, err)
	}
	return ProfileVersion{Major: int32(major), Minor: int32(minor)}, nil
}

// MarshalText encodes v as "MAJOR.MINOR".
func (v ProfileVersion) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText decodes "MAJOR.MINOR".
func (v *ProfileVersion) UnmarshalText(text []byte) error {
	parsed, err := ParseProfileVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
