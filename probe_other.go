//go:build !linux || !cgo

package glxhack

// NewProber returns the platform [Prober].
// Without cgo on Linux there is no way to reach the GLX driver, so the
// renderer query is always unavailable.
func NewProber() Prober {
	return Unavailable
}
