package glxhack

// Renderer answers queries about the current GLX renderer.
//
// A failed query returns the zero [ProfileVersion], which orders below
// every real version.
type Renderer interface {
	MaxCompatibilityProfileVersion() ProfileVersion
	MaxCoreProfileVersion() ProfileVersion
}

// Prober resolves a [Renderer] from the running driver.
//
// Load reports false when the driver does not expose the renderer query
// extension. That is an expected outcome, not an error: callers treat the
// driver's ceiling as unknown.
type Prober interface {
	Load() (Renderer, bool)
}

// ProberFunc adapts a function to [Prober].
type ProberFunc func() (Renderer, bool)

func (f ProberFunc) Load() (Renderer, bool) { return f() }

// Unavailable is a [Prober] for drivers without the renderer query extension.
var Unavailable Prober = ProberFunc(func() (Renderer, bool) { return nil, false })

// StaticRenderer reports fixed ceilings.
type StaticRenderer struct {
	Compatibility ProfileVersion
	Core          ProfileVersion
}

func (r StaticRenderer) MaxCompatibilityProfileVersion() ProfileVersion { return r.Compatibility }
func (r StaticRenderer) MaxCoreProfileVersion() ProfileVersion          { return r.Core }

// Load makes a StaticRenderer usable directly as a [Prober].
func (r StaticRenderer) Load() (Renderer, bool) { return r, true }

// ProbeResult is a snapshot of the renderer ceilings, for diagnostics.
type ProbeResult struct {
	// Supported is false when the renderer query extension is unavailable.
	Supported     bool           `json:"supported"`
	Compatibility ProfileVersion `json:"compatibility"`
	Core          ProfileVersion `json:"core"`
}

// Probe loads a renderer from p and queries both ceilings.
func Probe(p Prober) ProbeResult {
	r, ok := p.Load()
	if !ok {
		return ProbeResult{}
	}
	return ProbeResult{
		Supported:     true,
		Compatibility: r.MaxCompatibilityProfileVersion(),
		Core:          r.MaxCoreProfileVersion(),
	}
}
