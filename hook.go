package glxhack

import (
	"errors"
	"fmt"
)

// GameExecutable is the executable base name that needs the driver version override.
const GameExecutable = "League of Legends.exe"

// DefaultOverrideValue is written to [EnvVersionOverride] by [InitHook].
const DefaultOverrideValue = "3.0COMPAT"

// ErrNoExecutable is returned when the current executable cannot be determined.
var ErrNoExecutable = errors.New("current executable unknown")

// InitHook checks whether the current process is [GameExecutable] and, if
// so, sets [EnvVersionOverride] to [DefaultOverrideValue] in env.
//
// It reports whether the environment was changed. When the executable path
// cannot be resolved the environment is left alone and the wrapped
// [ErrNoExecutable] is returned; callers in the driver treat that as a no-op.
func InitHook(env Environment, exe ExecutableLocator) (bool, error) {
	path, err := exe.CurrentExe()
	if err != nil {
		Logger().Debug("init hook skipped", "error", err)
		return false, fmt.Errorf("%w: %w", ErrNoExecutable, err)
	}
	if path == "" {
		Logger().Debug("init hook skipped", "error", "empty executable path")
		return false, ErrNoExecutable
	}

	name := exeBaseName(path)
	if name != GameExecutable {
		Logger().Debug("init hook: executable not matched", "exe", path)
		return false, nil
	}

	if err := env.Set(EnvVersionOverride, DefaultOverrideValue); err != nil {
		return false, err
	}
	Logger().Info("driver version override set", "exe", path, "variable", EnvVersionOverride, "value", DefaultOverrideValue)
	return true, nil
}
