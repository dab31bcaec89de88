//go:build linux

package glxhack

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// ProcessEnv is the real process environment.
//
// Writes go through the C environment as well when cgo is enabled, so the
// GL driver observes them on its next getenv.
type ProcessEnv struct{}

func (ProcessEnv) Lookup(key string) (string, bool) {
	return unix.Getenv(key)
}

func (ProcessEnv) Set(key, value string) error {
	if err := unix.Setenv(key, value); err != nil {
		return fmt.Errorf("setenv %s: %w", key, err)
	}
	return nil
}

const procSelfExe = "/proc/self/exe"

// ProcExecutable resolves the running executable through /proc/self/exe.
type ProcExecutable struct{}

func (ProcExecutable) CurrentExe() (string, error) {
	buf := make([]byte, unix.PathMax)
	n, err := unix.Readlink(procSelfExe, buf)
	if err != nil {
		return "", fmt.Errorf("readlink %s: %w", procSelfExe, err)
	}
	if n == len(buf) {
		return "", fmt.Errorf("readlink %s: %w", procSelfExe, unix.ENAMETOOLONG)
	}
	return string(buf[:n]), nil
}
