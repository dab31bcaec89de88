package glxhack

import "unsafe"

// attribSize is the size of one list slot: two C ints.
const attribSize = unsafe.Sizeof(Attrib{})

// FromPointer wraps a driver-owned, zero-terminated attribute array.
//
// This is the only place that trusts the terminator instead of a length:
// the array is scanned once, reading just the key of each slot, until the
// terminator key is found. The returned List aliases the same storage and
// excludes the terminator slot, so nothing past it is ever touched again.
// A nil pointer yields an empty List.
//
// The storage must stay alive and unshared for as long as the List is used.
func FromPointer(p *int32) List {
	if p == nil {
		return nil
	}
	base := unsafe.Pointer(p)
	n := 0
	for *(*int32)(unsafe.Add(base, uintptr(n)*attribSize)) != Terminator {
		n++
	}
	if n == 0 {
		return List{}
	}
	return unsafe.Slice((*Attrib)(base), n)
}

// FromInts reinterprets a flat key/value int slice as a List sharing the
// same storage. Scanning stops at the first terminator key or at the end of
// the slice; a trailing odd element is ignored.
func FromInts(raw []int32) List {
	slots := len(raw) / 2
	if slots == 0 {
		return List{}
	}
	l := unsafe.Slice((*Attrib)(unsafe.Pointer(&raw[0])), slots)
	for i := range l {
		if l[i].IsTerminator() {
			return l[:i]
		}
	}
	return l
}
