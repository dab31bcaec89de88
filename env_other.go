//go:build !linux

package glxhack

import "os"

// ProcessEnv is the real process environment.
type ProcessEnv struct{}

func (ProcessEnv) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (ProcessEnv) Set(key, value string) error {
	return os.Setenv(key, value)
}

// ProcExecutable resolves the running executable.
// On non-Linux platforms this defers to os.Executable.
type ProcExecutable struct{}

func (ProcExecutable) CurrentExe() (string, error) {
	return os.Executable()
}
