//go:build linux && cgo

// Command glxdrvhack is the shared library loaded by Wine's x11 driver.
//
// Build it with:
//
//	go build -buildmode=c-shared -o libglxdrvhack.so ./cmd/glxdrvhack
//
// It exports the C entry points the driver calls around
// glXCreateContextAttribsARB. The driver's attribute arrays are edited in
// place; their storage is never retained after a call returns.
package main

// #include <stdlib.h>
import "C"

import (
	"log/slog"
	"unicode/utf8"
	"unsafe"

	"github.com/lolhack/glxhack"
)

func init() {
	glxhack.SetLogger(slog.New(slog.NewTextHandler(traceWriter{}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

func attribList(attribs *C.int) glxhack.List {
	return glxhack.FromPointer((*int32)(unsafe.Pointer(attribs)))
}

//export glxdrv_apply_version_hack
func glxdrv_apply_version_hack(attribs *C.int) {
	glxhack.ApplyVersionHack(attribList(attribs), glxhack.ProcessEnv{}, glxhack.NewProber())
}

//export glxdrv_attrib_list_get
func glxdrv_attrib_list_get(attrib C.int, attribs *C.int) C.int {
	return C.int(glxhack.AttribListGet(int32(attrib), attribList(attribs)))
}

//export glxdrv_has_extension
func glxdrv_has_extension(list, ext *C.char) C.int {
	if list == nil || ext == nil {
		glxhack.Logger().Warn("has_extension called with NULL string")
		return 0
	}
	l, e := C.GoString(list), C.GoString(ext)
	if !utf8.ValidString(l) || !utf8.ValidString(e) {
		glxhack.Logger().Warn("has_extension called with invalid UTF-8", "extension", e)
		return 0
	}
	if glxhack.HasExtension(l, e) {
		return 1
	}
	return 0
}

//export glxdrv_init_hook
func glxdrv_init_hook() {
	// Failures are already traced by InitHook; the hook is best effort.
	_, _ = glxhack.InitHook(glxhack.ProcessEnv{}, hostExecutable{})
}

func main() {}
