package glxhack

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{
			name: "empty environment",
			env:  nil,
			want: Config{Method: HackMethodCompat},
		},
		{
			name: "core method",
			env:  map[string]string{EnvMethod: "core"},
			want: Config{Method: HackMethodCore},
		},
		{
			name: "method match is exact",
			env:  map[string]string{EnvMethod: "CORE"},
			want: Config{Method: HackMethodCompat},
		},
		{
			name: "surrounding space is not trimmed",
			env:  map[string]string{EnvMethod: " core"},
			want: Config{Method: HackMethodCompat},
		},
		{
			name: "unknown method falls back to compat",
			env:  map[string]string{EnvMethod: "vulkan"},
			want: Config{Method: HackMethodCompat},
		},
		{
			name: "bypass flag presence with empty value",
			env:  map[string]string{EnvBypass: ""},
			want: Config{Method: HackMethodCompat, Bypass: true},
		},
		{
			name: "override presence",
			env:  map[string]string{EnvVersionOverride: "3.3COMPAT", EnvMethod: "compat"},
			want: Config{Method: HackMethodCompat, Override: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LoadConfig(NewMapEnv(tt.env)))
		})
	}
}

func TestLoadConfig_WarnsOnUnknownMethod(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { SetLogger(nil) })

	LoadConfig(MapEnv{EnvMethod: "Core"})

	out := buf.String()
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "value=Core")
}

func TestHackMethodOrDefault(t *testing.T) {
	tests := []struct {
		input  string
		want   HackMethod
		wantOK bool
	}{
		{"", HackMethodCompat, true},
		{"compat", HackMethodCompat, true},
		{"core", HackMethodCore, true},
		{"Compat", HackMethodCompat, false},
		{"CORE", HackMethodCompat, false},
		{" core", HackMethodCompat, false},
		{"legacy", HackMethodCompat, false},
	}
	for _, tt := range tests {
		got, ok := HackMethodOrDefault(tt.input)
		assert.Equal(t, tt.want, got, "HackMethodOrDefault(%q)", tt.input)
		assert.Equal(t, tt.wantOK, ok, "HackMethodOrDefault(%q)", tt.input)
	}
}

func TestParseHackMethod_FoldsCase(t *testing.T) {
	m, err := ParseHackMethod("CORE")
	assert.NoError(t, err)
	assert.Equal(t, HackMethodCore, m)

	_, err = ParseHackMethod("legacy")
	assert.ErrorIs(t, err, ErrInvalidHackMethod)
}

func TestHackMethod_String(t *testing.T) {
	tests := []struct {
		value HackMethod
		want  string
	}{
		{HackMethodCompat, "compat"},
		{HackMethodCore, "core"},
		{HackMethod(9), "HackMethod(9)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.value.String())
	}
	assert.Equal(t, []string{"compat", "core"}, HackMethodNames())
}
