//go:build linux && cgo

package glxhack

/*
#cgo LDFLAGS: -ldl
#define _GNU_SOURCE
#include <dlfcn.h>
#include <stddef.h>
#include <stdlib.h>

typedef void (*glxhack_proc)(void);
typedef glxhack_proc (*glxhack_get_proc_address)(const unsigned char *);
typedef int (*glxhack_query_integer)(int attribute, unsigned int *value);

static void *glxhack_find_get_proc_address(void) {
	void *sym = dlsym(RTLD_DEFAULT, "glXGetProcAddressARB");
	if (sym != NULL) {
		return sym;
	}
	void *lib = dlopen("libGL.so.1", RTLD_LAZY | RTLD_NOLOAD);
	if (lib == NULL) {
		return NULL;
	}
	return dlsym(lib, "glXGetProcAddressARB");
}

static void *glxhack_resolve(void *gpa, const char *name) {
	return (void *)((glxhack_get_proc_address)gpa)((const unsigned char *)name);
}

static int glxhack_query(void *fn, int attribute, unsigned int *value) {
	return ((glxhack_query_integer)fn)(attribute, value);
}
*/
import "C"

import "unsafe"

// GLX_MESA_query_renderer attributes.
const (
	rendererCoreProfileVersion          = 0x818a // GLX_RENDERER_OPENGL_CORE_PROFILE_VERSION_MESA
	rendererCompatibilityProfileVersion = 0x818b // GLX_RENDERER_OPENGL_COMPATIBILITY_PROFILE_VERSION_MESA
)

const queryRendererSymbol = "glXQueryCurrentRendererIntegerMESA"

// GLXProber resolves glXQueryCurrentRendererIntegerMESA from the GLX
// library already loaded in the process. Nothing is cached: every Load
// resolves the symbol again.
type GLXProber struct{}

// NewProber returns the platform [Prober].
func NewProber() Prober {
	return GLXProber{}
}

func (GLXProber) Load() (Renderer, bool) {
	gpa := C.glxhack_find_get_proc_address()
	if gpa == nil {
		Logger().Debug("glXGetProcAddressARB not found")
		return nil, false
	}

	name := C.CString(queryRendererSymbol)
	defer C.free(unsafe.Pointer(name))

	fn := C.glxhack_resolve(gpa, name)
	if fn == nil {
		Logger().Debug("renderer query not exposed by driver", "symbol", queryRendererSymbol)
		return nil, false
	}
	return glxRenderer{query: fn}, true
}

type glxRenderer struct {
	query unsafe.Pointer
}

func (r glxRenderer) MaxCompatibilityProfileVersion() ProfileVersion {
	return r.version(rendererCompatibilityProfileVersion)
}

func (r glxRenderer) MaxCoreProfileVersion() ProfileVersion {
	return r.version(rendererCoreProfileVersion)
}

// version runs a two-value profile version query. A failed query leaves
// the version zeroed.
func (r glxRenderer) version(attribute C.int) ProfileVersion {
	var out [2]C.uint
	if C.glxhack_query(r.query, attribute, &out[0]) == 0 {
		Logger().Debug("renderer query failed", "attribute", int(attribute))
		return ProfileVersion{}
	}
	return ProfileVersion{Major: int32(out[0]), Minor: int32(out[1])}
}
