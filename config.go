package glxhack

// Environment variables consumed by glxhack.
const (
	// EnvBypass is the legacy bypass flag. Its presence, with any value,
	// forces a rewrite when the requested version or the driver ceiling is
	// unknown and no comparison can be made.
	EnvBypass = "WINE_X11DRV_OVERRIDE_LOL"
	// EnvMethod selects the [HackMethod]: "compat" (default) or "core".
	EnvMethod = "WINE_X11DRV_LOL_METHOD"
	// EnvVersionOverride is Mesa's version override. When it is set, the
	// ceiling the driver reports reflects the override rather than what the
	// hardware path can really do, so [FallbackCeiling] is used instead.
	EnvVersionOverride = "MESA_GL_VERSION_OVERRIDE"
)

// Config is the configuration for one rewrite invocation.
type Config struct {
	// Method selects how an unsatisfiable request is rewritten.
	Method HackMethod
	// Bypass is set when [EnvBypass] is present.
	Bypass bool
	// Override is set when [EnvVersionOverride] is present.
	Override bool
}

// LoadConfig reads the configuration from env.
// Unset or unrecognized values fall back to defaults; an unrecognized
// method is reported at warn level.
func LoadConfig(env Environment) Config {
	var cfg Config

	_, cfg.Bypass = env.Lookup(EnvBypass)
	_, cfg.Override = env.Lookup(EnvVersionOverride)

	name, _ := env.Lookup(EnvMethod)
	method, ok := HackMethodOrDefault(name)
	if !ok {
		Logger().Warn("unrecognized hack method, using default",
			"variable", EnvMethod, "value", name, "default", method)
	}
	cfg.Method = method

	return cfg
}
