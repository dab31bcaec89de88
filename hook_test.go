package glxhack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exePath(p string) ExecutableLocator {
	return ExecutableFunc(func() (string, error) { return p, nil })
}

func TestInitHook(t *testing.T) {
	t.Run("windows path matches", func(t *testing.T) {
		env := MapEnv{}
		changed, err := InitHook(env, exePath(`C:\Riot Games\League of Legends\Game\League of Legends.exe`))
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, MapEnv{EnvVersionOverride: DefaultOverrideValue}, env)
	})

	t.Run("posix path matches", func(t *testing.T) {
		env := MapEnv{}
		changed, err := InitHook(env, exePath("/games/lol/League of Legends.exe"))
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("other executables are untouched", func(t *testing.T) {
		for _, p := range []string{
			`C:\Riot Games\LeagueClient.exe`,
			`C:\Games\league of legends.exe`,
			"/usr/bin/glxgears",
		} {
			env := MapEnv{"HOME": "/root"}
			changed, err := InitHook(env, exePath(p))
			require.NoError(t, err)
			assert.False(t, changed, p)
			assert.Equal(t, MapEnv{"HOME": "/root"}, env, p)
		}
	})

	t.Run("lookup failure is a no-op", func(t *testing.T) {
		env := MapEnv{}
		boom := errors.New("buffer too small")
		changed, err := InitHook(env, ExecutableFunc(func() (string, error) { return "", boom }))
		assert.False(t, changed)
		assert.ErrorIs(t, err, ErrNoExecutable)
		assert.ErrorIs(t, err, boom)
		assert.Empty(t, env)
	})

	t.Run("empty path is a no-op", func(t *testing.T) {
		env := MapEnv{}
		changed, err := InitHook(env, exePath(""))
		assert.False(t, changed)
		assert.ErrorIs(t, err, ErrNoExecutable)
		assert.Empty(t, env)
	})
}

func TestInitHook_FeedsPolicy(t *testing.T) {
	env := MapEnv{}
	_, err := InitHook(env, exePath(`C:\LoL\League of Legends.exe`))
	require.NoError(t, err)

	raw := compatRequest(3, 2)
	d := ApplyVersionHack(FromInts(raw), env, StaticRenderer{Compatibility: ProfileVersion{4, 5}})

	require.True(t, d.Rewrite)
	assert.Equal(t, compatRequest(3, 0), raw)
}

func TestExeBaseName(t *testing.T) {
	tests := map[string]string{
		`C:\a\b.exe`:        "b.exe",
		"/usr/bin/x":        "x",
		`Z:\mixed/c`:        "c",
		"plain.exe":         "plain.exe",
		`C:\dir\sp ace.exe`: "sp ace.exe",
	}
	for in, want := range tests {
		if got := exeBaseName(in); got != want {
			t.Errorf("exeBaseName(%q) = %q, want %q", in, got, want)
		}
	}
}
