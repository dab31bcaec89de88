//go:build linux && cgo

package main

/*
#include <stddef.h>
#include <stdlib.h>

// Provided by the Wine x11 driver. Declared weak so the library still loads
// (and falls back) when the host does not export them.
extern unsigned int glxdrv_current_exe(int size, char *buffer) __attribute__((weak));
extern void glxdrv_trace(const char *s) __attribute__((weak));

static int glxdrvhack_has_current_exe(void) {
	return glxdrv_current_exe != NULL;
}

static unsigned int glxdrvhack_current_exe(int size, char *buffer) {
	return glxdrv_current_exe(size, buffer);
}

static int glxdrvhack_has_trace(void) {
	return glxdrv_trace != NULL;
}

static void glxdrvhack_trace(const char *s) {
	glxdrv_trace(s);
}
*/
import "C"

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"unsafe"

	"github.com/lolhack/glxhack"
)

const exeBufferSize = 1024

var errExeLookup = errors.New("glxdrv_current_exe failed")

// hostExecutable asks the driver for the Windows path of the running
// program, falling back to /proc/self/exe when the host does not provide it.
type hostExecutable struct{}

func (hostExecutable) CurrentExe() (string, error) {
	if C.glxdrvhack_has_current_exe() == 0 {
		return glxhack.ProcExecutable{}.CurrentExe()
	}

	var buf [exeBufferSize]C.char
	n := C.glxdrvhack_current_exe(C.int(len(buf)), &buf[0])
	// 0 is failure; a full buffer means the path was truncated.
	if n == 0 || n == exeBufferSize {
		return "", fmt.Errorf("%w: returned %d", errExeLookup, uint32(n))
	}
	return C.GoString(&buf[0]), nil
}

// traceWriter forwards log lines to the driver's trace channel, or to
// stderr when the host does not provide one.
type traceWriter struct{}

func (traceWriter) Write(p []byte) (int, error) {
	if C.glxdrvhack_has_trace() == 0 {
		return os.Stderr.Write(p)
	}
	line := C.CString(string(bytes.TrimRight(p, "\n")))
	defer C.free(unsafe.Pointer(line))
	C.glxdrvhack_trace(line)
	return len(p), nil
}
