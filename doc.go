// Package glxhack rewrites GLX context attribute lists so that requests for
// an OpenGL compatibility profile the driver cannot provide still succeed.
//
// Some Windows games running under Wine ask for a 3.2+ compatibility
// profile. Drivers exposing only a 3.0 compatibility profile (and a newer
// core profile) fail such requests. glxhack sits between Wine's x11 driver
// and glXCreateContextAttribsARB and edits the zero-terminated attribute
// array in place before it reaches the driver.
//
// # Attribute Lists
//
// [Attrib] has exactly the layout of two C ints, so a [List] can alias the
// driver's int array. [FromPointer] is the only function trusting a
// terminator instead of a length; everything else works over bounded
// slices and never reads past the first terminator:
//
//	l := glxhack.FromInts([]int32{0x2091, 3, 0x2092, 2, 0x9126, 2, 0})
//	l.Value(glxhack.KeyContextMajorVersion) // 3
//	l.Set(glxhack.KeyContextMinorVersion, 1)
//
// # Policy
//
// [Decide] is a pure function over a [PolicyInput]. [Apply] extracts the
// input from a list, queries the renderer through a [Prober] and performs
// the rewrite:
//
//	cfg := glxhack.LoadConfig(glxhack.ProcessEnv{})
//	d := glxhack.Apply(l, cfg, glxhack.NewProber())
//	if d.Rewrite {
//	    log.Printf("rewritten: %s (%s)", l, d.Reason)
//	}
//
// With [HackMethodCompat] (the default) the requested version is lowered to
// the driver's compatibility ceiling. With [HackMethodCore] the profile mask
// is switched to core and the version is kept.
//
// # Configuration
//
// [LoadConfig] reads [EnvMethod], [EnvBypass] and [EnvVersionOverride] once
// per call into a [Config]. [InitHook] sets [EnvVersionOverride] when the
// running program is [GameExecutable].
//
// # Diagnostics
//
// glxhack logs through [log/slog] and is silent by default; see [SetLogger].
package glxhack
