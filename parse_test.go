package glxhack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	l, err := Parse("0x2091=3, 0x2092=2,0x9126=0b10")
	require.NoError(t, err)
	assert.Equal(t, List{
		{KeyContextMajorVersion, 3},
		{KeyContextMinorVersion, 2},
		{KeyContextProfileMask, ProfileCompatibilityBit},
	}, l)
	assert.Equal(t, "0x2091=3,0x2092=2,0x9126=2", l.String())
}

func TestParse_Empty(t *testing.T) {
	for _, in := range []string{"", "  ", ",,"} {
		l, err := Parse(in)
		require.NoError(t, err, "Parse(%q)", in)
		assert.Zero(t, l.Len(), "Parse(%q)", in)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"0x2091", ErrMalformedAttrib},
		{"foo=3", ErrMalformedAttrib},
		{"0x2091=bar", ErrMalformedAttrib},
		{"0x2091=99999999999", ErrMalformedAttrib},
		{"0=1", ErrTerminatorKey},
		{"0x2091=3,0x0=0", ErrTerminatorKey},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.ErrorIs(t, err, tt.want)
		})
	}
}
