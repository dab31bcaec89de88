package glxhack

import (
	"context"
	"fmt"
	"log/slog"
)

// PolicyInput is everything [Decide] looks at.
type PolicyInput struct {
	// Requested is the version asked for by the application. HasRequested
	// is false unless both the major and the minor attribute are present.
	Requested    ProfileVersion
	HasRequested bool

	ProfileMask    int32
	HasProfileMask bool

	// Probed is the compatibility ceiling reported by the driver.
	// HasProbed is false when the renderer query is unavailable.
	Probed    ProfileVersion
	HasProbed bool

	Config Config
}

// Decision is the outcome of [Decide].
type Decision struct {
	// Rewrite is true when the attribute list must be changed.
	Rewrite bool `json:"rewrite"`
	// Method is the configured rewrite method.
	Method HackMethod `json:"method"`
	// Ceiling is the effective compatibility ceiling. When Rewrite is true
	// and Method is [HackMethodCompat] the version attributes are set to it.
	Ceiling ProfileVersion `json:"ceiling"`
	// Reason explains the outcome, for diagnostics.
	Reason string `json:"reason"`
}

// Decide determines whether a context request must be rewritten.
//
// The effective ceiling is [FallbackCeiling] when the driver version is
// overridden, the probed ceiling otherwise. A request is rewritten when it
// asks for a compatibility profile above that ceiling. When either the
// requested version or the ceiling is unknown no comparison is possible,
// and the request is rewritten only if the bypass flag is set.
func Decide(in PolicyInput) Decision {
	d := Decision{Method: in.Config.Method}

	ceiling, haveCeiling := in.Probed, in.HasProbed
	if in.Config.Override {
		ceiling, haveCeiling = FallbackCeiling, true
	}
	if haveCeiling {
		d.Ceiling = ceiling
	}

	switch {
	case !in.HasRequested:
		if !in.Config.Bypass {
			d.Reason = "no version requested"
			return d
		}
	case !haveCeiling:
		if !in.Config.Bypass {
			d.Reason = "driver compatibility ceiling unknown"
			return d
		}
	case !ceiling.Less(in.Requested):
		d.Reason = fmt.Sprintf("driver satisfies %s with compatibility ceiling %s", in.Requested, ceiling)
		return d
	}

	if !in.HasProfileMask || in.ProfileMask&ProfileCompatibilityBit == 0 {
		d.Reason = "compatibility profile not requested"
		return d
	}

	if !haveCeiling {
		d.Ceiling = FallbackCeiling
	}
	d.Rewrite = true
	switch d.Method {
	case HackMethodCore:
		d.Reason = "forcing core profile"
	default:
		d.Reason = fmt.Sprintf("lowering requested version to %s", d.Ceiling)
	}
	return d
}

// Apply runs [Decide] over l and performs the rewrite in place.
//
// The renderer is loaded and queried at most once, and only when a version
// was requested and the driver version is not overridden. A zero ceiling
// from a failed query counts as unknown. Only existing records are
// overwritten; a record the method needs but the list lacks is skipped.
func Apply(l List, cfg Config, p Prober) Decision {
	in := PolicyInput{Config: cfg}

	major, hasMajor := l.Lookup(KeyContextMajorVersion)
	minor, hasMinor := l.Lookup(KeyContextMinorVersion)
	if hasMajor && hasMinor {
		in.Requested = ProfileVersion{Major: major, Minor: minor}
		in.HasRequested = true
	}
	in.ProfileMask, in.HasProfileMask = l.Lookup(KeyContextProfileMask)

	if in.HasRequested && !cfg.Override {
		if r, ok := p.Load(); ok {
			in.Probed = r.MaxCompatibilityProfileVersion()
			in.HasProbed = !in.Probed.IsZero()
		}
	}

	log := Logger()
	debug := log.Enabled(context.Background(), slog.LevelDebug)
	var before string
	if debug {
		before = l.String()
	}

	d := Decide(in)
	if !d.Rewrite {
		if debug {
			log.Debug("context attributes unchanged", "attribs", before, "method", d.Method, "reason", d.Reason)
		}
		return d
	}

	switch d.Method {
	case HackMethodCore:
		l.Set(KeyContextProfileMask, ProfileCoreBit)
	default:
		l.Set(KeyContextMajorVersion, d.Ceiling.Major)
		l.Set(KeyContextMinorVersion, d.Ceiling.Minor)
	}
	if debug {
		log.Debug("context attributes rewritten", "attribs", before, "result", l.String(), "method", d.Method, "reason", d.Reason)
	}
	return d
}

// ApplyVersionHack loads the configuration from env and applies the
// rewrite policy to l in place. An empty list is left untouched.
func ApplyVersionHack(l List, env Environment, p Prober) Decision {
	return Apply(l, LoadConfig(env), p)
}

// AttribListGet returns the value stored for key in l, or 0 if absent.
func AttribListGet(key int32, l List) int32 {
	return l.Value(key)
}
