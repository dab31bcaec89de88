package glxhack

import (
	"maps"
	"path"
	"strings"
)

// Environment is the process environment as seen by the policy and the init hook.
type Environment interface {
	// Lookup returns the value of key and whether it is set.
	Lookup(key string) (string, bool)
	// Set assigns value to key.
	Set(key, value string) error
}

// ExecutableLocator reports the path of the running executable.
//
// Under Wine this is the Windows path of the emulated program
// (e.g. `C:\Riot Games\League of Legends.exe`), not the loader's.
type ExecutableLocator interface {
	CurrentExe() (string, error)
}

// ExecutableFunc adapts a function to [ExecutableLocator].
type ExecutableFunc func() (string, error)

func (f ExecutableFunc) CurrentExe() (string, error) { return f() }

// MapEnv is an in-memory [Environment]. The zero value is ready to use.
type MapEnv map[string]string

// NewMapEnv returns a MapEnv holding a copy of vars.
func NewMapEnv(vars map[string]string) MapEnv {
	m := make(MapEnv, len(vars))
	maps.Copy(m, vars)
	return m
}

func (m MapEnv) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapEnv) Set(key, value string) error {
	m[key] = value
	return nil
}

// exeBaseName returns the last element of an executable path, accepting
// both Windows and POSIX separators.
func exeBaseName(p string) string {
	if i := strings.LastIndexByte(p, '\\'); i >= 0 {
		p = p[i+1:]
	}
	return path.Base(p)
}
