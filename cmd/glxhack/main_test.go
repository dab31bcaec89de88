package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/lolhack/glxhack"
	"github.com/spf13/cobra"
)

func TestParseMethod_CaseInsensitive(t *testing.T) {
	tests := []struct {
		input string
		want  glxhack.HackMethod
	}{
		{"compat", glxhack.HackMethodCompat},
		{" CORE ", glxhack.HackMethodCore},
		{"Compat", glxhack.HackMethodCompat},
	}
	for _, tt := range tests {
		got, err := parseMethod(tt.input)
		if err != nil {
			t.Fatalf("parseMethod(%q) error = %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("parseMethod(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseMethod_Unknown(t *testing.T) {
	_, err := parseMethod("legacy")
	if err == nil {
		t.Fatal("parseMethod(legacy) expected error")
	}

	msg := err.Error()
	if !strings.Contains(msg, `unknown method: "legacy"`) {
		t.Fatalf("error %q missing unknown method context", msg)
	}
	if !strings.Contains(msg, "available: compat, core") {
		t.Fatalf("error %q missing available methods", msg)
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		input string
		want  int32
	}{
		{"0x2091", glxhack.KeyContextMajorVersion},
		{"8338", glxhack.KeyContextMajorVersion},
		{" 0x9126 ", glxhack.KeyContextProfileMask},
	}
	for _, tt := range tests {
		got, err := parseKey(tt.input)
		if err != nil {
			t.Fatalf("parseKey(%q) error = %v", tt.input, err)
		}
		if got != tt.want {
			t.Fatalf("parseKey(%q) = %#x, want %#x", tt.input, got, tt.want)
		}
	}

	if _, err := parseKey("0"); !errors.Is(err, glxhack.ErrTerminatorKey) {
		t.Fatalf("parseKey(0) error = %v, want ErrTerminatorKey", err)
	}
	if _, err := parseKey("major"); err == nil {
		t.Fatal("parseKey(major) expected error")
	}
}

func TestMethodIdentifierMap(t *testing.T) {
	if len(methodIdentifierMap) != len(glxhack.HackMethodValues()) {
		t.Fatalf("methodIdentifierMap has %d entries, want %d", len(methodIdentifierMap), len(glxhack.HackMethodValues()))
	}
	for _, m := range glxhack.HackMethodValues() {
		ids := methodIdentifierMap[m]
		if len(ids) != 1 || ids[0] != m.String() {
			t.Fatalf("methodIdentifierMap[%v] = %v", m, ids)
		}
	}
}

func TestApplyOptionsConfig(t *testing.T) {
	t.Run("environment only", func(t *testing.T) {
		opts := &ApplyOptions{}
		cmd := &cobra.Command{Use: "apply"}
		if err := opts.Attach(cmd); err != nil {
			t.Fatal(err)
		}

		env := glxhack.MapEnv{glxhack.EnvMethod: "core", glxhack.EnvBypass: "1"}
		cfg := opts.config(cmd, env)
		want := glxhack.Config{Method: glxhack.HackMethodCore, Bypass: true}
		if cfg != want {
			t.Fatalf("config() = %+v, want %+v", cfg, want)
		}
	})

	t.Run("flags override environment", func(t *testing.T) {
		opts := &ApplyOptions{}
		cmd := &cobra.Command{Use: "apply"}
		if err := opts.Attach(cmd); err != nil {
			t.Fatal(err)
		}
		if err := cmd.Flags().Set("method", "compat"); err != nil {
			t.Fatal(err)
		}
		opts.Override = true

		env := glxhack.MapEnv{glxhack.EnvMethod: "core"}
		cfg := opts.config(cmd, env)
		want := glxhack.Config{Method: glxhack.HackMethodCompat, Override: true}
		if cfg != want {
			t.Fatalf("config() = %+v, want %+v", cfg, want)
		}
	})
}

func TestApplyOptionsProber(t *testing.T) {
	opts := &ApplyOptions{Ceiling: "3.1"}
	p, err := opts.prober()
	if err != nil {
		t.Fatalf("prober() error = %v", err)
	}
	r, ok := p.Load()
	if !ok {
		t.Fatal("static prober should load")
	}
	if got := r.MaxCompatibilityProfileVersion(); got != (glxhack.ProfileVersion{Major: 3, Minor: 1}) {
		t.Fatalf("ceiling = %s, want 3.1", got)
	}

	opts.Ceiling = "three"
	if _, err := opts.prober(); !errors.Is(err, glxhack.ErrMalformedVersion) {
		t.Fatalf("prober() error = %v, want ErrMalformedVersion", err)
	}
}

func TestInitHookOptionsLocator(t *testing.T) {
	opts := &InitHookOptions{Exe: `C:\LoL\League of Legends.exe`}
	env := glxhack.MapEnv{}
	changed, err := glxhack.InitHook(env, opts.locator())
	if err != nil {
		t.Fatalf("InitHook() error = %v", err)
	}
	if !changed || env[glxhack.EnvVersionOverride] != glxhack.DefaultOverrideValue {
		t.Fatalf("InitHook() = %v, env = %v", changed, env)
	}
}

func TestRootCmdSubcommands(t *testing.T) {
	root := rootCmd()
	for _, name := range []string{"apply", "get", "has-extension", "probe", "init-hook", "version"} {
		c, _, err := root.Find([]string{name})
		if err != nil || c.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}
