package glxhack

//go:generate go tool go-enum --marshal --names --values

// HackMethod selects how an unsatisfiable compatibility profile request is rewritten.
//
// HackMethodCompat lowers the requested major/minor version to the ceiling the
// driver can satisfy. HackMethodCore drops the compatibility bit from the
// profile mask and asks for a core profile instead, leaving the version alone.
//
// ENUM(compat, core)
type HackMethod int

// DefaultHackMethod is used when no method, or an unknown one, is configured.
const DefaultHackMethod = HackMethodCompat

// HackMethodOrDefault maps a configured method name to a [HackMethod].
// Only the exact names "compat" and "core" are recognized; unlike
// [ParseHackMethod] there is no case folding. Anything else yields
// [DefaultHackMethod], with a false second result when name was non-empty.
func HackMethodOrDefault(name string) (HackMethod, bool) {
	if name == "" {
		return DefaultHackMethod, true
	}
	if m, ok := _HackMethodValue[name]; ok {
		return m, true
	}
	return DefaultHackMethod, false
}
