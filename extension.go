package glxhack

import "strings"

// HasExtension reports whether name appears as a whole token in the
// whitespace separated extension string list. Matching is exact: no case
// folding and no prefix or substring matches.
func HasExtension(list, name string) bool {
	for _, ext := range strings.Fields(list) {
		if ext == name {
			return true
		}
	}
	return false
}
