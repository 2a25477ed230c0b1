//go:build glheaders

package egl

// Test files do not allow cgo, so we define cgo values to test against
// here. Building with -tags glheaders needs the Khronos headers.

// #include <EGL/egl.h>
// #include <EGL/eglext.h>
import "C"

var headerTable = []struct {
	name string
	a    uint32
	b    C.uint
}{
	{"ALPHA_MASK_SIZE", ALPHA_MASK_SIZE, C.EGL_ALPHA_MASK_SIZE},
	{"ALPHA_SIZE", ALPHA_SIZE, C.EGL_ALPHA_SIZE},
	{"BACK_BUFFER", BACK_BUFFER, C.EGL_BACK_BUFFER},
	{"BAD_ACCESS", BAD_ACCESS, C.EGL_BAD_ACCESS},
	{"BAD_ALLOC", BAD_ALLOC, C.EGL_BAD_ALLOC},
	{"BAD_ATTRIBUTE", BAD_ATTRIBUTE, C.EGL_BAD_ATTRIBUTE},
	{"BAD_CONFIG", BAD_CONFIG, C.EGL_BAD_CONFIG},
	{"BAD_CONTEXT", BAD_CONTEXT, C.EGL_BAD_CONTEXT},
	{"BAD_CURRENT_SURFACE", BAD_CURRENT_SURFACE, C.EGL_BAD_CURRENT_SURFACE},
	{"BAD_DISPLAY", BAD_DISPLAY, C.EGL_BAD_DISPLAY},
	{"BAD_MATCH", BAD_MATCH, C.EGL_BAD_MATCH},
	{"BAD_NATIVE_PIXMAP", BAD_NATIVE_PIXMAP, C.EGL_BAD_NATIVE_PIXMAP},
	{"BAD_NATIVE_WINDOW", BAD_NATIVE_WINDOW, C.EGL_BAD_NATIVE_WINDOW},
	{"BAD_PARAMETER", BAD_PARAMETER, C.EGL_BAD_PARAMETER},
	{"BAD_SURFACE", BAD_SURFACE, C.EGL_BAD_SURFACE},
	{"BIND_TO_TEXTURE_RGB", BIND_TO_TEXTURE_RGB, C.EGL_BIND_TO_TEXTURE_RGB},
	{"BIND_TO_TEXTURE_RGBA", BIND_TO_TEXTURE_RGBA, C.EGL_BIND_TO_TEXTURE_RGBA},
	{"BLUE_SIZE", BLUE_SIZE, C.EGL_BLUE_SIZE},
	{"BUFFER_DESTROYED", BUFFER_DESTROYED, C.EGL_BUFFER_DESTROYED},
	{"BUFFER_PRESERVED", BUFFER_PRESERVED, C.EGL_BUFFER_PRESERVED},
	{"BUFFER_SIZE", BUFFER_SIZE, C.EGL_BUFFER_SIZE},
	{"CLIENT_APIS", CLIENT_APIS, C.EGL_CLIENT_APIS},
	{"COLOR_BUFFER_TYPE", COLOR_BUFFER_TYPE, C.EGL_COLOR_BUFFER_TYPE},
	{"CONFIG_CAVEAT", CONFIG_CAVEAT, C.EGL_CONFIG_CAVEAT},
	{"CONFIG_ID", CONFIG_ID, C.EGL_CONFIG_ID},
	{"CONFORMANT", CONFORMANT, C.EGL_CONFORMANT},
	{"CONTEXT_CLIENT_VERSION", CONTEXT_CLIENT_VERSION, C.EGL_CONTEXT_CLIENT_VERSION},
	{"CONTEXT_LOST", CONTEXT_LOST, C.EGL_CONTEXT_LOST},
	{"CONTEXT_MAJOR_VERSION", CONTEXT_MAJOR_VERSION, C.EGL_CONTEXT_MAJOR_VERSION},
	{"CONTEXT_MINOR_VERSION", CONTEXT_MINOR_VERSION, C.EGL_CONTEXT_MINOR_VERSION},
	{"CONTEXT_OPENGL_COMPATIBILITY_PROFILE_BIT", CONTEXT_OPENGL_COMPATIBILITY_PROFILE_BIT, C.EGL_CONTEXT_OPENGL_COMPATIBILITY_PROFILE_BIT},
	{"CONTEXT_OPENGL_CORE_PROFILE_BIT", CONTEXT_OPENGL_CORE_PROFILE_BIT, C.EGL_CONTEXT_OPENGL_CORE_PROFILE_BIT},
	{"CONTEXT_OPENGL_DEBUG", CONTEXT_OPENGL_DEBUG, C.EGL_CONTEXT_OPENGL_DEBUG},
	{"CONTEXT_OPENGL_FORWARD_COMPATIBLE", CONTEXT_OPENGL_FORWARD_COMPATIBLE, C.EGL_CONTEXT_OPENGL_FORWARD_COMPATIBLE},
	{"CONTEXT_OPENGL_PROFILE_MASK", CONTEXT_OPENGL_PROFILE_MASK, C.EGL_CONTEXT_OPENGL_PROFILE_MASK},
	{"CONTEXT_OPENGL_RESET_NOTIFICATION_STRATEGY", CONTEXT_OPENGL_RESET_NOTIFICATION_STRATEGY, C.EGL_CONTEXT_OPENGL_RESET_NOTIFICATION_STRATEGY},
	{"CONTEXT_OPENGL_ROBUST_ACCESS", CONTEXT_OPENGL_ROBUST_ACCESS, C.EGL_CONTEXT_OPENGL_ROBUST_ACCESS},
	{"DEPTH_SIZE", DEPTH_SIZE, C.EGL_DEPTH_SIZE},
	{"EXTENSIONS", EXTENSIONS, C.EGL_EXTENSIONS},
	{"GL_COLORSPACE", GL_COLORSPACE, C.EGL_GL_COLORSPACE},
	{"GREEN_SIZE", GREEN_SIZE, C.EGL_GREEN_SIZE},
	{"HEIGHT", HEIGHT, C.EGL_HEIGHT},
	{"HORIZONTAL_RESOLUTION", HORIZONTAL_RESOLUTION, C.EGL_HORIZONTAL_RESOLUTION},
	{"LARGEST_PBUFFER", LARGEST_PBUFFER, C.EGL_LARGEST_PBUFFER},
	{"LEVEL", LEVEL, C.EGL_LEVEL},
	{"LUMINANCE_BUFFER", LUMINANCE_BUFFER, C.EGL_LUMINANCE_BUFFER},
	{"LUMINANCE_SIZE", LUMINANCE_SIZE, C.EGL_LUMINANCE_SIZE},
	{"MATCH_NATIVE_PIXMAP", MATCH_NATIVE_PIXMAP, C.EGL_MATCH_NATIVE_PIXMAP},
	{"MAX_PBUFFER_HEIGHT", MAX_PBUFFER_HEIGHT, C.EGL_MAX_PBUFFER_HEIGHT},
	{"MAX_PBUFFER_PIXELS", MAX_PBUFFER_PIXELS, C.EGL_MAX_PBUFFER_PIXELS},
	{"MAX_PBUFFER_WIDTH", MAX_PBUFFER_WIDTH, C.EGL_MAX_PBUFFER_WIDTH},
	{"MAX_SWAP_INTERVAL", MAX_SWAP_INTERVAL, C.EGL_MAX_SWAP_INTERVAL},
	{"MIN_SWAP_INTERVAL", MIN_SWAP_INTERVAL, C.EGL_MIN_SWAP_INTERVAL},
	{"MIPMAP_LEVEL", MIPMAP_LEVEL, C.EGL_MIPMAP_LEVEL},
	{"MIPMAP_TEXTURE", MIPMAP_TEXTURE, C.EGL_MIPMAP_TEXTURE},
	{"MULTISAMPLE_RESOLVE", MULTISAMPLE_RESOLVE, C.EGL_MULTISAMPLE_RESOLVE},
	{"MULTISAMPLE_RESOLVE_BOX_BIT", MULTISAMPLE_RESOLVE_BOX_BIT, C.EGL_MULTISAMPLE_RESOLVE_BOX_BIT},
	{"NATIVE_RENDERABLE", NATIVE_RENDERABLE, C.EGL_NATIVE_RENDERABLE},
	{"NATIVE_VISUAL_ID", NATIVE_VISUAL_ID, C.EGL_NATIVE_VISUAL_ID},
	{"NATIVE_VISUAL_TYPE", NATIVE_VISUAL_TYPE, C.EGL_NATIVE_VISUAL_TYPE},
	{"NONE", NONE, C.EGL_NONE},
	{"NON_CONFORMANT_CONFIG", NON_CONFORMANT_CONFIG, C.EGL_NON_CONFORMANT_CONFIG},
	{"NOT_INITIALIZED", NOT_INITIALIZED, C.EGL_NOT_INITIALIZED},
	{"OPENGL_API", OPENGL_API, C.EGL_OPENGL_API},
	{"OPENGL_BIT", OPENGL_BIT, C.EGL_OPENGL_BIT},
	{"OPENGL_ES2_BIT", OPENGL_ES2_BIT, C.EGL_OPENGL_ES2_BIT},
	{"OPENGL_ES3_BIT", OPENGL_ES3_BIT, C.EGL_OPENGL_ES3_BIT},
	{"OPENGL_ES_API", OPENGL_ES_API, C.EGL_OPENGL_ES_API},
	{"OPENGL_ES_BIT", OPENGL_ES_BIT, C.EGL_OPENGL_ES_BIT},
	{"OPENVG_API", OPENVG_API, C.EGL_OPENVG_API},
	{"OPENVG_BIT", OPENVG_BIT, C.EGL_OPENVG_BIT},
	{"PBUFFER_BIT", PBUFFER_BIT, C.EGL_PBUFFER_BIT},
	{"PIXEL_ASPECT_RATIO", PIXEL_ASPECT_RATIO, C.EGL_PIXEL_ASPECT_RATIO},
	{"PIXMAP_BIT", PIXMAP_BIT, C.EGL_PIXMAP_BIT},
	{"PLATFORM_ANDROID_KHR", PLATFORM_ANDROID_KHR, C.EGL_PLATFORM_ANDROID_KHR},
	{"PLATFORM_DEVICE_EXT", PLATFORM_DEVICE_EXT, C.EGL_PLATFORM_DEVICE_EXT},
	{"PLATFORM_GBM_KHR", PLATFORM_GBM_KHR, C.EGL_PLATFORM_GBM_KHR},
	{"PLATFORM_SURFACELESS_MESA", PLATFORM_SURFACELESS_MESA, C.EGL_PLATFORM_SURFACELESS_MESA},
	{"PLATFORM_WAYLAND_KHR", PLATFORM_WAYLAND_KHR, C.EGL_PLATFORM_WAYLAND_KHR},
	{"PLATFORM_X11_KHR", PLATFORM_X11_KHR, C.EGL_PLATFORM_X11_KHR},
	{"RED_SIZE", RED_SIZE, C.EGL_RED_SIZE},
	{"RENDERABLE_TYPE", RENDERABLE_TYPE, C.EGL_RENDERABLE_TYPE},
	{"RENDER_BUFFER", RENDER_BUFFER, C.EGL_RENDER_BUFFER},
	{"RGB_BUFFER", RGB_BUFFER, C.EGL_RGB_BUFFER},
	{"SAMPLES", SAMPLES, C.EGL_SAMPLES},
	{"SAMPLE_BUFFERS", SAMPLE_BUFFERS, C.EGL_SAMPLE_BUFFERS},
	{"SINGLE_BUFFER", SINGLE_BUFFER, C.EGL_SINGLE_BUFFER},
	{"SLOW_CONFIG", SLOW_CONFIG, C.EGL_SLOW_CONFIG},
	{"STENCIL_SIZE", STENCIL_SIZE, C.EGL_STENCIL_SIZE},
	{"SUCCESS", SUCCESS, C.EGL_SUCCESS},
	{"SURFACE_TYPE", SURFACE_TYPE, C.EGL_SURFACE_TYPE},
	{"SWAP_BEHAVIOR", SWAP_BEHAVIOR, C.EGL_SWAP_BEHAVIOR},
	{"SWAP_BEHAVIOR_PRESERVED_BIT", SWAP_BEHAVIOR_PRESERVED_BIT, C.EGL_SWAP_BEHAVIOR_PRESERVED_BIT},
	{"TEXTURE_FORMAT", TEXTURE_FORMAT, C.EGL_TEXTURE_FORMAT},
	{"TEXTURE_TARGET", TEXTURE_TARGET, C.EGL_TEXTURE_TARGET},
	{"TRANSPARENT_BLUE_VALUE", TRANSPARENT_BLUE_VALUE, C.EGL_TRANSPARENT_BLUE_VALUE},
	{"TRANSPARENT_GREEN_VALUE", TRANSPARENT_GREEN_VALUE, C.EGL_TRANSPARENT_GREEN_VALUE},
	{"TRANSPARENT_RED_VALUE", TRANSPARENT_RED_VALUE, C.EGL_TRANSPARENT_RED_VALUE},
	{"TRANSPARENT_TYPE", TRANSPARENT_TYPE, C.EGL_TRANSPARENT_TYPE},
	{"VENDOR", VENDOR, C.EGL_VENDOR},
	{"VERSION", VERSION, C.EGL_VERSION},
	{"VERTICAL_RESOLUTION", VERTICAL_RESOLUTION, C.EGL_VERTICAL_RESOLUTION},
	{"VG_ALPHA_FORMAT", VG_ALPHA_FORMAT, C.EGL_VG_ALPHA_FORMAT},
	{"VG_ALPHA_FORMAT_PRE_BIT", VG_ALPHA_FORMAT_PRE_BIT, C.EGL_VG_ALPHA_FORMAT_PRE_BIT},
	{"VG_COLORSPACE", VG_COLORSPACE, C.EGL_VG_COLORSPACE},
	{"VG_COLORSPACE_LINEAR_BIT", VG_COLORSPACE_LINEAR_BIT, C.EGL_VG_COLORSPACE_LINEAR_BIT},
	{"WIDTH", WIDTH, C.EGL_WIDTH},
	{"WINDOW_BIT", WINDOW_BIT, C.EGL_WINDOW_BIT},
}
