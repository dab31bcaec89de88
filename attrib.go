package glxhack

import (
	"fmt"
	"iter"
	"strings"
)

// GLX_ARB_create_context attribute keys and profile bits.
// These match the values in <GL/glxext.h>.
const (
	KeyContextMajorVersion int32 = 0x2091 // GLX_CONTEXT_MAJOR_VERSION_ARB
	KeyContextMinorVersion int32 = 0x2092 // GLX_CONTEXT_MINOR_VERSION_ARB
	KeyContextProfileMask  int32 = 0x9126 // GLX_CONTEXT_PROFILE_MASK_ARB

	ProfileCoreBit          int32 = 0x1 // GLX_CONTEXT_CORE_PROFILE_BIT_ARB
	ProfileCompatibilityBit int32 = 0x2 // GLX_CONTEXT_COMPATIBILITY_PROFILE_BIT_ARB
)

// Terminator is the key that ends an attribute list.
const Terminator int32 = 0

// Attrib is a single key/value entry of a GLX attribute list.
//
// The layout is exactly two C ints with no padding, so a slice of Attrib can
// alias an int[] handed over by the driver. A slot whose Key is [Terminator]
// is the end-of-list marker rather than a live record; Attrib therefore
// doubles as its own "record or absent" slot type without a separate tag.
type Attrib struct {
	Key   int32
	Value int32
}

// IsTerminator reports whether the slot marks the end of the list.
func (a Attrib) IsTerminator() bool {
	return a.Key == Terminator
}

func (a Attrib) String() string {
	return fmt.Sprintf("%#x=%d", a.Key, a.Value)
}

// List is a borrowed view over a terminated attribute list.
//
// The backing array belongs to the caller and all writes go straight through
// to it. Iteration stops at the first terminator slot or at the end of the
// slice, whichever comes first; nothing past the terminator is ever read.
type List []Attrib

// All returns a forward-only sequence of the live records in l.
// Each yielded pointer addresses the caller's storage.
func (l List) All() iter.Seq[*Attrib] {
	return func(yield func(*Attrib) bool) {
		for i := range l {
			if l[i].IsTerminator() {
				return
			}
			if !yield(&l[i]) {
				return
			}
		}
	}
}

// Find returns the first live record satisfying pred, or nil.
func (l List) Find(pred func(Attrib) bool) *Attrib {
	for a := range l.All() {
		if pred(*a) {
			return a
		}
	}
	return nil
}

// Get returns the record with the given key, or nil if the key is absent.
func (l List) Get(key int32) *Attrib {
	return l.Find(func(a Attrib) bool { return a.Key == key })
}

// Set overwrites the value of the record with the given key in place.
// It returns false, writing nothing, when the key is absent: records are
// never inserted or shifted.
func (l List) Set(key, value int32) bool {
	a := l.Get(key)
	if a == nil {
		return false
	}
	a.Value = value
	return true
}

// Lookup returns the value for key and whether it was present.
func (l List) Lookup(key int32) (int32, bool) {
	if a := l.Get(key); a != nil {
		return a.Value, true
	}
	return 0, false
}

// Value returns the value for key, or 0 if the key is absent.
func (l List) Value(key int32) int32 {
	v, _ := l.Lookup(key)
	return v
}

// Len returns the number of live records before the terminator.
func (l List) Len() int {
	n := 0
	for range l.All() {
		n++
	}
	return n
}

// String renders the live records as comma separated key=value pairs,
// the same form accepted by [Parse].
func (l List) String() string {
	var b strings.Builder
	for a := range l.All() {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(a.String())
	}
	return b.String()
}

// Terminated returns a fresh int slice holding the live records of l
// followed by a terminator slot, in the layout the driver expects.
func Terminated(l List) []int32 {
	out := make([]int32, 0, 2*l.Len()+2)
	for a := range l.All() {
		out = append(out, a.Key, a.Value)
	}
	return append(out, Terminator, 0)
}
