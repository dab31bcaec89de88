package glxhack

import (
	"fmt"
	"strings"
)

// String returns a human-readable summary of the renderer ceilings.
func (r ProbeResult) String() string {
	var b strings.Builder

	b.WriteString("Renderer query (GLX_MESA_query_renderer):\n")
	if !r.Supported {
		b.WriteString("  unavailable\n")
		return b.String()
	}
	writeVersion(&b, "  Compatibility profile", r.Compatibility)
	writeVersion(&b, "  Core profile", r.Core)
	return b.String()
}

// String returns a human-readable summary of the decision.
func (d Decision) String() string {
	var b strings.Builder

	status := "no"
	if d.Rewrite {
		status = "yes"
	}
	fmt.Fprintf(&b, "Rewrite: %s\n", status)
	fmt.Fprintf(&b, "Method: %s\n", d.Method)
	writeVersion(&b, "Ceiling", d.Ceiling)
	fmt.Fprintf(&b, "Reason: %s\n", d.Reason)
	return b.String()
}

func writeVersion(b *strings.Builder, name string, v ProfileVersion) {
	if v.IsZero() {
		fmt.Fprintf(b, "%s: unknown\n", name)
		return
	}
	fmt.Fprintf(b, "%s: %s\n", name, v)
}
