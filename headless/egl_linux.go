//go:build linux && cgo

package headless

import (
	"fmt"
	"unsafe"

	"github.com/richinsley/glwindow/glinit"
	"github.com/richinsley/glwindow/graphics"
)

/*
#cgo LDFLAGS: -lEGL
#include <EGL/egl.h>
#include <EGL/eglext.h>

// Go doesn't have a great way to call function pointers from C,
// so we'll create simple wrappers for the extension functions.
static PFNEGLQUERYDEVICESEXTPROC eglQueryDevicesEXT_ptr = NULL;
static PFNEGLGETPLATFORMDISPLAYEXTPROC eglGetPlatformDisplayEXT_ptr = NULL;

static void initialize_egl_extension_pointers() {
    eglQueryDevicesEXT_ptr = (PFNEGLQUERYDEVICESEXTPROC) eglGetProcAddress("eglQueryDevicesEXT");
    eglGetPlatformDisplayEXT_ptr = (PFNEGLGETPLATFORMDISPLAYEXTPROC) eglGetProcAddress("eglGetPlatformDisplayEXT");
}

static EGLDisplay get_platform_display(EGLenum platform, void *native_display, const EGLint *attrib_list) {
    if (eglGetPlatformDisplayEXT_ptr) {
        return eglGetPlatformDisplayEXT_ptr(platform, native_display, attrib_list);
    }
    return EGL_NO_DISPLAY;
}

static EGLBoolean query_devices(EGLint max_devices, EGLDeviceEXT *devices, EGLint *num_devices) {
    if (eglQueryDevicesEXT_ptr) {
        return eglQueryDevicesEXT_ptr(max_devices, devices, num_devices);
    }
    return EGL_FALSE;
}
*/
import "C"

const eglSupported = true

// Platform implements graphics.Platform with an EGL pbuffer surface. There is
// no visible window and no input: the quit key is never pressed and no close
// is ever requested.
type Platform struct {
	display C.EGLDisplay
	hints   graphics.DisplayConfiguration
}

// Surface is the handle for an offscreen EGL surface and its context.
type Surface struct {
	surface C.EGLSurface
	context C.EGLContext
	width   int
	height  int
}

func (s *Surface) Backend() string { return backendName }

// Size returns the pbuffer size.
func (s *Surface) Size() (int, int) { return s.width, s.height }

func asSurface(h graphics.Handle) *Surface {
	s, ok := h.(*Surface)
	if !ok {
		panic(fmt.Sprintf("headless: foreign handle %T", h))
	}
	return s
}

// getEGLDisplay tries the robust device enumeration method first,
// falling back to the default display.
func getEGLDisplay() (C.EGLDisplay, error) {
	C.initialize_egl_extension_pointers()

	var numDevices C.EGLint
	if C.query_devices(0, nil, &numDevices) == C.EGL_FALSE || numDevices == 0 {
		graphics.Logger().Println("Warning: EGL_EXT_device_query not supported or no devices found. Falling back to EGL_DEFAULT_DISPLAY.")
		display := C.eglGetDisplay(C.EGLNativeDisplayType(C.EGL_DEFAULT_DISPLAY))
		if display == C.EGLDisplay(C.EGL_NO_DISPLAY) {
			return C.EGLDisplay(C.EGL_NO_DISPLAY), fmt.Errorf("fallback to eglGetDisplay(EGL_DEFAULT_DISPLAY) failed")
		}
		return display, nil
	}

	graphics.Logger().Printf("Found %d EGL device(s).", numDevices)
	devices := make([]C.EGLDeviceEXT, numDevices)
	if C.query_devices(numDevices, &devices[0], &numDevices) == C.EGL_FALSE {
		return C.EGLDisplay(C.EGL_NO_DISPLAY), fmt.Errorf("failed to query EGL devices")
	}

	// In an NVIDIA Docker container, the first usable device will be the GPU.
	for i := 0; i < int(numDevices); i++ {
		display := C.get_platform_display(C.EGL_PLATFORM_DEVICE_EXT, unsafe.Pointer(devices[i]), nil)
		if display != C.EGLDisplay(C.EGL_NO_DISPLAY) {
			graphics.Logger().Printf("Successfully got EGL display from device %d.", i)
			return display, nil
		}
	}

	return C.EGLDisplay(C.EGL_NO_DISPLAY), fmt.Errorf("could not get a valid EGL display from any available device")
}

func (p *Platform) Init() error {
	display, err := getEGLDisplay()
	if err != nil {
		return fmt.Errorf("failed to get EGL display: %w", err)
	}

	var major, minor C.EGLint
	if C.eglInitialize(display, &major, &minor) == C.EGL_FALSE {
		return fmt.Errorf("failed to initialize EGL")
	}
	p.display = display
	graphics.Logger().Printf("EGL Initialized. Version: %d.%d", major, minor)
	return nil
}

func (p *Platform) Terminate() {
	if p.display != C.EGLDisplay(C.EGL_NO_DISPLAY) {
		C.eglTerminate(p.display)
		p.display = C.EGLDisplay(C.EGL_NO_DISPLAY)
		graphics.Logger().Printf("EGL Terminated")
	}
}

func (p *Platform) ApplyHints(cfg graphics.DisplayConfiguration) {
	p.hints = cfg
}

func (p *Platform) CreateWindow(cfg graphics.DisplayConfiguration) (graphics.Handle, error) {
	if C.eglBindAPI(C.EGL_OPENGL_API) == C.EGL_FALSE {
		return nil, fmt.Errorf("desktop OpenGL API not available through EGL")
	}

	configAttribs := []C.EGLint{
		C.EGL_SURFACE_TYPE, C.EGL_PBUFFER_BIT,
		C.EGL_RED_SIZE, 8,
		C.EGL_GREEN_SIZE, 8,
		C.EGL_BLUE_SIZE, 8,
		C.EGL_ALPHA_SIZE, 8,
		C.EGL_DEPTH_SIZE, 24,
		C.EGL_RENDERABLE_TYPE, C.EGL_OPENGL_BIT,
	}
	if p.hints.Samples > 0 {
		configAttribs = append(configAttribs,
			C.EGL_SAMPLE_BUFFERS, 1,
			C.EGL_SAMPLES, C.EGLint(p.hints.Samples),
		)
	}
	configAttribs = append(configAttribs, C.EGL_NONE)

	var config C.EGLConfig
	var numConfig C.EGLint
	if C.eglChooseConfig(p.display, &configAttribs[0], &config, 1, &numConfig) == C.EGL_FALSE || numConfig == 0 {
		return nil, fmt.Errorf("failed to choose EGL config")
	}

	pbufferAttribs := []C.EGLint{
		C.EGL_WIDTH, C.EGLint(cfg.Width),
		C.EGL_HEIGHT, C.EGLint(cfg.Height),
		C.EGL_NONE,
	}
	surface := C.eglCreatePbufferSurface(p.display, config, &pbufferAttribs[0])
	if surface == C.EGLSurface(C.EGL_NO_SURFACE) {
		return nil, fmt.Errorf("failed to create Pbuffer surface")
	}

	var contextAttribs []C.EGLint
	if p.hints.HasVersion() {
		contextAttribs = append(contextAttribs,
			C.EGL_CONTEXT_MAJOR_VERSION, C.EGLint(p.hints.Major),
			C.EGL_CONTEXT_MINOR_VERSION, C.EGLint(p.hints.Minor),
		)
	}
	switch p.hints.EffectiveProfile() {
	case graphics.ProfileCore:
		contextAttribs = append(contextAttribs, C.EGL_CONTEXT_OPENGL_PROFILE_MASK, C.EGL_CONTEXT_OPENGL_CORE_PROFILE_BIT)
	case graphics.ProfileCompat:
		contextAttribs = append(contextAttribs, C.EGL_CONTEXT_OPENGL_PROFILE_MASK, C.EGL_CONTEXT_OPENGL_COMPATIBILITY_PROFILE_BIT)
	}
	contextAttribs = append(contextAttribs, C.EGL_NONE)

	context := C.eglCreateContext(p.display, config, C.EGLContext(C.EGL_NO_CONTEXT), &contextAttribs[0])
	if context == C.EGLContext(C.EGL_NO_CONTEXT) {
		C.eglDestroySurface(p.display, surface)
		return nil, fmt.Errorf("failed to create EGL context for OpenGL %s", p.hints.Version())
	}

	return &Surface{surface: surface, context: context, width: cfg.Width, height: cfg.Height}, nil
}

func (p *Platform) MakeCurrent(h graphics.Handle) {
	s := asSurface(h)
	if C.eglMakeCurrent(p.display, s.surface, s.surface, s.context) == C.EGL_FALSE {
		graphics.Logger().Printf("headless: failed to make EGL context current")
	}
}

func (p *Platform) SetSwapInterval(interval int) {
	C.eglSwapInterval(p.display, C.EGLint(interval))
}

func (p *Platform) SwapBuffers(h graphics.Handle) {
	C.eglSwapBuffers(p.display, asSurface(h).surface)
}

func (p *Platform) DestroyWindow(h graphics.Handle) {
	s := asSurface(h)
	C.eglMakeCurrent(p.display, C.EGLSurface(C.EGL_NO_SURFACE), C.EGLSurface(C.EGL_NO_SURFACE), C.EGLContext(C.EGL_NO_CONTEXT))
	if s.context != C.EGLContext(C.EGL_NO_CONTEXT) {
		C.eglDestroyContext(p.display, s.context)
		s.context = C.EGLContext(C.EGL_NO_CONTEXT)
	}
	if s.surface != C.EGLSurface(C.EGL_NO_SURFACE) {
		C.eglDestroySurface(p.display, s.surface)
		s.surface = C.EGLSurface(C.EGL_NO_SURFACE)
	}
}

func (p *Platform) LoadExtensions() error {
	return glinit.Load(backendName)
}
