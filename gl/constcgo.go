//go:build glheaders

package gl

// Test files do not allow cgo, so we define cgo values to test against
// here. Building with -tags glheaders needs the Khronos headers.

// #include <GL/glcorearb.h>
import "C"

var headerTable = []struct {
	name string
	a    uint32
	b    C.GLenum
}{
	{"ALL_BARRIER_BITS", ALL_BARRIER_BITS, C.GL_ALL_BARRIER_BITS},
	{"ALPHA", ALPHA, C.GL_ALPHA},
	{"ALREADY_SIGNALED", ALREADY_SIGNALED, C.GL_ALREADY_SIGNALED},
	{"ALWAYS", ALWAYS, C.GL_ALWAYS},
	{"ANY_SAMPLES_PASSED", ANY_SAMPLES_PASSED, C.GL_ANY_SAMPLES_PASSED},
	{"ANY_SAMPLES_PASSED_CONSERVATIVE", ANY_SAMPLES_PASSED_CONSERVATIVE, C.GL_ANY_SAMPLES_PASSED_CONSERVATIVE},
	{"ARRAY_BUFFER", ARRAY_BUFFER, C.GL_ARRAY_BUFFER},
	{"ATOMIC_COUNTER_BARRIER_BIT", ATOMIC_COUNTER_BARRIER_BIT, C.GL_ATOMIC_COUNTER_BARRIER_BIT},
	{"ATOMIC_COUNTER_BUFFER", ATOMIC_COUNTER_BUFFER, C.GL_ATOMIC_COUNTER_BUFFER},
	{"BACK", BACK, C.GL_BACK},
	{"BACK_LEFT", BACK_LEFT, C.GL_BACK_LEFT},
	{"BACK_RIGHT", BACK_RIGHT, C.GL_BACK_RIGHT},
	{"BGR", BGR, C.GL_BGR},
	{"BGRA", BGRA, C.GL_BGRA},
	{"BGRA_INTEGER", BGRA_INTEGER, C.GL_BGRA_INTEGER},
	{"BGR_INTEGER", BGR_INTEGER, C.GL_BGR_INTEGER},
	{"BLEND", BLEND, C.GL_BLEND},
	{"BLUE", BLUE, C.GL_BLUE},
	{"BUFFER_UPDATE_BARRIER_BIT", BUFFER_UPDATE_BARRIER_BIT, C.GL_BUFFER_UPDATE_BARRIER_BIT},
	{"BYTE", BYTE, C.GL_BYTE},
	{"CCW", CCW, C.GL_CCW},
	{"CLAMP_TO_BORDER", CLAMP_TO_BORDER, C.GL_CLAMP_TO_BORDER},
	{"CLAMP_TO_EDGE", CLAMP_TO_EDGE, C.GL_CLAMP_TO_EDGE},
	{"CLIP_DISTANCE0", CLIP_DISTANCE0, C.GL_CLIP_DISTANCE0},
	{"COLOR_ATTACHMENT0", COLOR_ATTACHMENT0, C.GL_COLOR_ATTACHMENT0},
	{"COLOR_ATTACHMENT1", COLOR_ATTACHMENT1, C.GL_COLOR_ATTACHMENT1},
	{"COLOR_ATTACHMENT2", COLOR_ATTACHMENT2, C.GL_COLOR_ATTACHMENT2},
	{"COLOR_ATTACHMENT3", COLOR_ATTACHMENT3, C.GL_COLOR_ATTACHMENT3},
	{"COLOR_ATTACHMENT4", COLOR_ATTACHMENT4, C.GL_COLOR_ATTACHMENT4},
	{"COLOR_ATTACHMENT5", COLOR_ATTACHMENT5, C.GL_COLOR_ATTACHMENT5},
	{"COLOR_ATTACHMENT6", COLOR_ATTACHMENT6, C.GL_COLOR_ATTACHMENT6},
	{"COLOR_ATTACHMENT7", COLOR_ATTACHMENT7, C.GL_COLOR_ATTACHMENT7},
	{"COLOR_BUFFER_BIT", COLOR_BUFFER_BIT, C.GL_COLOR_BUFFER_BIT},
	{"COLOR_LOGIC_OP", COLOR_LOGIC_OP, C.GL_COLOR_LOGIC_OP},
	{"COMMAND_BARRIER_BIT", COMMAND_BARRIER_BIT, C.GL_COMMAND_BARRIER_BIT},
	{"COMPUTE_SHADER", COMPUTE_SHADER, C.GL_COMPUTE_SHADER},
	{"CONDITION_SATISFIED", CONDITION_SATISFIED, C.GL_CONDITION_SATISFIED},
	{"CONSTANT_ALPHA", CONSTANT_ALPHA, C.GL_CONSTANT_ALPHA},
	{"CONSTANT_COLOR", CONSTANT_COLOR, C.GL_CONSTANT_COLOR},
	{"CONTEXT_COMPATIBILITY_PROFILE_BIT", CONTEXT_COMPATIBILITY_PROFILE_BIT, C.GL_CONTEXT_COMPATIBILITY_PROFILE_BIT},
	{"CONTEXT_CORE_PROFILE_BIT", CONTEXT_CORE_PROFILE_BIT, C.GL_CONTEXT_CORE_PROFILE_BIT},
	{"CONTEXT_LOST", CONTEXT_LOST, C.GL_CONTEXT_LOST},
	{"COPY_READ_BUFFER", COPY_READ_BUFFER, C.GL_COPY_READ_BUFFER},
	{"COPY_WRITE_BUFFER", COPY_WRITE_BUFFER, C.GL_COPY_WRITE_BUFFER},
	{"CULL_FACE", CULL_FACE, C.GL_CULL_FACE},
	{"CW", CW, C.GL_CW},
	{"DEBUG_OUTPUT", DEBUG_OUTPUT, C.GL_DEBUG_OUTPUT},
	{"DEBUG_OUTPUT_SYNCHRONOUS", DEBUG_OUTPUT_SYNCHRONOUS, C.GL_DEBUG_OUTPUT_SYNCHRONOUS},
	{"DEBUG_SEVERITY_HIGH", DEBUG_SEVERITY_HIGH, C.GL_DEBUG_SEVERITY_HIGH},
	{"DEBUG_SEVERITY_LOW", DEBUG_SEVERITY_LOW, C.GL_DEBUG_SEVERITY_LOW},
	{"DEBUG_SEVERITY_MEDIUM", DEBUG_SEVERITY_MEDIUM, C.GL_DEBUG_SEVERITY_MEDIUM},
	{"DEBUG_SEVERITY_NOTIFICATION", DEBUG_SEVERITY_NOTIFICATION, C.GL_DEBUG_SEVERITY_NOTIFICATION},
	{"DEBUG_SOURCE_API", DEBUG_SOURCE_API, C.GL_DEBUG_SOURCE_API},
	{"DEBUG_SOURCE_APPLICATION", DEBUG_SOURCE_APPLICATION, C.GL_DEBUG_SOURCE_APPLICATION},
	{"DEBUG_SOURCE_OTHER", DEBUG_SOURCE_OTHER, C.GL_DEBUG_SOURCE_OTHER},
	{"DEBUG_SOURCE_SHADER_COMPILER", DEBUG_SOURCE_SHADER_COMPILER, C.GL_DEBUG_SOURCE_SHADER_COMPILER},
	{"DEBUG_SOURCE_THIRD_PARTY", DEBUG_SOURCE_THIRD_PARTY, C.GL_DEBUG_SOURCE_THIRD_PARTY},
	{"DEBUG_SOURCE_WINDOW_SYSTEM", DEBUG_SOURCE_WINDOW_SYSTEM, C.GL_DEBUG_SOURCE_WINDOW_SYSTEM},
	{"DEBUG_TYPE_DEPRECATED_BEHAVIOR", DEBUG_TYPE_DEPRECATED_BEHAVIOR, C.GL_DEBUG_TYPE_DEPRECATED_BEHAVIOR},
	{"DEBUG_TYPE_ERROR", DEBUG_TYPE_ERROR, C.GL_DEBUG_TYPE_ERROR},
	{"DEBUG_TYPE_MARKER", DEBUG_TYPE_MARKER, C.GL_DEBUG_TYPE_MARKER},
	{"DEBUG_TYPE_OTHER", DEBUG_TYPE_OTHER, C.GL_DEBUG_TYPE_OTHER},
	{"DEBUG_TYPE_PERFORMANCE", DEBUG_TYPE_PERFORMANCE, C.GL_DEBUG_TYPE_PERFORMANCE},
	{"DEBUG_TYPE_POP_GROUP", DEBUG_TYPE_POP_GROUP, C.GL_DEBUG_TYPE_POP_GROUP},
	{"DEBUG_TYPE_PORTABILITY", DEBUG_TYPE_PORTABILITY, C.GL_DEBUG_TYPE_PORTABILITY},
	{"DEBUG_TYPE_PUSH_GROUP", DEBUG_TYPE_PUSH_GROUP, C.GL_DEBUG_TYPE_PUSH_GROUP},
	{"DEBUG_TYPE_UNDEFINED_BEHAVIOR", DEBUG_TYPE_UNDEFINED_BEHAVIOR, C.GL_DEBUG_TYPE_UNDEFINED_BEHAVIOR},
	{"DECR", DECR, C.GL_DECR},
	{"DECR_WRAP", DECR_WRAP, C.GL_DECR_WRAP},
	{"DEPTH24_STENCIL8", DEPTH24_STENCIL8, C.GL_DEPTH24_STENCIL8},
	{"DEPTH32F_STENCIL8", DEPTH32F_STENCIL8, C.GL_DEPTH32F_STENCIL8},
	{"DEPTH_ATTACHMENT", DEPTH_ATTACHMENT, C.GL_DEPTH_ATTACHMENT},
	{"DEPTH_BUFFER_BIT", DEPTH_BUFFER_BIT, C.GL_DEPTH_BUFFER_BIT},
	{"DEPTH_CLAMP", DEPTH_CLAMP, C.GL_DEPTH_CLAMP},
	{"DEPTH_COMPONENT", DEPTH_COMPONENT, C.GL_DEPTH_COMPONENT},
	{"DEPTH_COMPONENT16", DEPTH_COMPONENT16, C.GL_DEPTH_COMPONENT16},
	{"DEPTH_COMPONENT24", DEPTH_COMPONENT24, C.GL_DEPTH_COMPONENT24},
	{"DEPTH_COMPONENT32", DEPTH_COMPONENT32, C.GL_DEPTH_COMPONENT32},
	{"DEPTH_COMPONENT32F", DEPTH_COMPONENT32F, C.GL_DEPTH_COMPONENT32F},
	{"DEPTH_STENCIL", DEPTH_STENCIL, C.GL_DEPTH_STENCIL},
	{"DEPTH_STENCIL_ATTACHMENT", DEPTH_STENCIL_ATTACHMENT, C.GL_DEPTH_STENCIL_ATTACHMENT},
	{"DEPTH_STENCIL_TEXTURE_MODE", DEPTH_STENCIL_TEXTURE_MODE, C.GL_DEPTH_STENCIL_TEXTURE_MODE},
	{"DEPTH_TEST", DEPTH_TEST, C.GL_DEPTH_TEST},
	{"DISPATCH_INDIRECT_BUFFER", DISPATCH_INDIRECT_BUFFER, C.GL_DISPATCH_INDIRECT_BUFFER},
	{"DITHER", DITHER, C.GL_DITHER},
	{"DONT_CARE", DONT_CARE, C.GL_DONT_CARE},
	{"DOUBLE", DOUBLE, C.GL_DOUBLE},
	{"DRAW_FRAMEBUFFER", DRAW_FRAMEBUFFER, C.GL_DRAW_FRAMEBUFFER},
	{"DRAW_INDIRECT_BUFFER", DRAW_INDIRECT_BUFFER, C.GL_DRAW_INDIRECT_BUFFER},
	{"DST_ALPHA", DST_ALPHA, C.GL_DST_ALPHA},
	{"DST_COLOR", DST_COLOR, C.GL_DST_COLOR},
	{"DYNAMIC_COPY", DYNAMIC_COPY, C.GL_DYNAMIC_COPY},
	{"DYNAMIC_DRAW", DYNAMIC_DRAW, C.GL_DYNAMIC_DRAW},
	{"DYNAMIC_READ", DYNAMIC_READ, C.GL_DYNAMIC_READ},
	{"ELEMENT_ARRAY_BARRIER_BIT", ELEMENT_ARRAY_BARRIER_BIT, C.GL_ELEMENT_ARRAY_BARRIER_BIT},
	{"ELEMENT_ARRAY_BUFFER", ELEMENT_ARRAY_BUFFER, C.GL_ELEMENT_ARRAY_BUFFER},
	{"EQUAL", EQUAL, C.GL_EQUAL},
	{"EXTENSIONS", EXTENSIONS, C.GL_EXTENSIONS},
	{"FASTEST", FASTEST, C.GL_FASTEST},
	{"FILL", FILL, C.GL_FILL},
	{"FIXED", FIXED, C.GL_FIXED},
	{"FLOAT", FLOAT, C.GL_FLOAT},
	{"FRAGMENT_SHADER", FRAGMENT_SHADER, C.GL_FRAGMENT_SHADER},
	{"FRAGMENT_SHADER_DERIVATIVE_HINT", FRAGMENT_SHADER_DERIVATIVE_HINT, C.GL_FRAGMENT_SHADER_DERIVATIVE_HINT},
	{"FRAMEBUFFER", FRAMEBUFFER, C.GL_FRAMEBUFFER},
	{"FRAMEBUFFER_BARRIER_BIT", FRAMEBUFFER_BARRIER_BIT, C.GL_FRAMEBUFFER_BARRIER_BIT},
	{"FRAMEBUFFER_COMPLETE", FRAMEBUFFER_COMPLETE, C.GL_FRAMEBUFFER_COMPLETE},
	{"FRAMEBUFFER_INCOMPLETE_ATTACHMENT", FRAMEBUFFER_INCOMPLETE_ATTACHMENT, C.GL_FRAMEBUFFER_INCOMPLETE_ATTACHMENT},
	{"FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER", FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER, C.GL_FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER},
	{"FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS", FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS, C.GL_FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS},
	{"FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT", FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT, C.GL_FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT},
	{"FRAMEBUFFER_INCOMPLETE_MULTISAMPLE", FRAMEBUFFER_INCOMPLETE_MULTISAMPLE, C.GL_FRAMEBUFFER_INCOMPLETE_MULTISAMPLE},
	{"FRAMEBUFFER_INCOMPLETE_READ_BUFFER", FRAMEBUFFER_INCOMPLETE_READ_BUFFER, C.GL_FRAMEBUFFER_INCOMPLETE_READ_BUFFER},
	{"FRAMEBUFFER_SRGB", FRAMEBUFFER_SRGB, C.GL_FRAMEBUFFER_SRGB},
	{"FRAMEBUFFER_UNDEFINED", FRAMEBUFFER_UNDEFINED, C.GL_FRAMEBUFFER_UNDEFINED},
	{"FRAMEBUFFER_UNSUPPORTED", FRAMEBUFFER_UNSUPPORTED, C.GL_FRAMEBUFFER_UNSUPPORTED},
	{"FRONT", FRONT, C.GL_FRONT},
	{"FRONT_AND_BACK", FRONT_AND_BACK, C.GL_FRONT_AND_BACK},
	{"FRONT_LEFT", FRONT_LEFT, C.GL_FRONT_LEFT},
	{"FRONT_RIGHT", FRONT_RIGHT, C.GL_FRONT_RIGHT},
	{"FUNC_ADD", FUNC_ADD, C.GL_FUNC_ADD},
	{"FUNC_REVERSE_SUBTRACT", FUNC_REVERSE_SUBTRACT, C.GL_FUNC_REVERSE_SUBTRACT},
	{"FUNC_SUBTRACT", FUNC_SUBTRACT, C.GL_FUNC_SUBTRACT},
	{"GEOMETRY_SHADER", GEOMETRY_SHADER, C.GL_GEOMETRY_SHADER},
	{"GEQUAL", GEQUAL, C.GL_GEQUAL},
	{"GREATER", GREATER, C.GL_GREATER},
	{"GREEN", GREEN, C.GL_GREEN},
	{"HALF_FLOAT", HALF_FLOAT, C.GL_HALF_FLOAT},
	{"INCR", INCR, C.GL_INCR},
	{"INCR_WRAP", INCR_WRAP, C.GL_INCR_WRAP},
	{"INT", INT, C.GL_INT},
	{"INVALID_ENUM", INVALID_ENUM, C.GL_INVALID_ENUM},
	{"INVALID_FRAMEBUFFER_OPERATION", INVALID_FRAMEBUFFER_OPERATION, C.GL_INVALID_FRAMEBUFFER_OPERATION},
	{"INVALID_OPERATION", INVALID_OPERATION, C.GL_INVALID_OPERATION},
	{"INVALID_VALUE", INVALID_VALUE, C.GL_INVALID_VALUE},
	{"INVERT", INVERT, C.GL_INVERT},
	{"KEEP", KEEP, C.GL_KEEP},
	{"LEFT", LEFT, C.GL_LEFT},
	{"LEQUAL", LEQUAL, C.GL_LEQUAL},
	{"LESS", LESS, C.GL_LESS},
	{"LINE", LINE, C.GL_LINE},
	{"LINEAR", LINEAR, C.GL_LINEAR},
	{"LINEAR_MIPMAP_LINEAR", LINEAR_MIPMAP_LINEAR, C.GL_LINEAR_MIPMAP_LINEAR},
	{"LINEAR_MIPMAP_NEAREST", LINEAR_MIPMAP_NEAREST, C.GL_LINEAR_MIPMAP_NEAREST},
	{"LINES", LINES, C.GL_LINES},
	{"LINES_ADJACENCY", LINES_ADJACENCY, C.GL_LINES_ADJACENCY},
	{"LINE_LOOP", LINE_LOOP, C.GL_LINE_LOOP},
	{"LINE_SMOOTH", LINE_SMOOTH, C.GL_LINE_SMOOTH},
	{"LINE_SMOOTH_HINT", LINE_SMOOTH_HINT, C.GL_LINE_SMOOTH_HINT},
	{"LINE_STRIP", LINE_STRIP, C.GL_LINE_STRIP},
	{"LINE_STRIP_ADJACENCY", LINE_STRIP_ADJACENCY, C.GL_LINE_STRIP_ADJACENCY},
	{"MAP_COHERENT_BIT", MAP_COHERENT_BIT, C.GL_MAP_COHERENT_BIT},
	{"MAP_FLUSH_EXPLICIT_BIT", MAP_FLUSH_EXPLICIT_BIT, C.GL_MAP_FLUSH_EXPLICIT_BIT},
	{"MAP_INVALIDATE_BUFFER_BIT", MAP_INVALIDATE_BUFFER_BIT, C.GL_MAP_INVALIDATE_BUFFER_BIT},
	{"MAP_INVALIDATE_RANGE_BIT", MAP_INVALIDATE_RANGE_BIT, C.GL_MAP_INVALIDATE_RANGE_BIT},
	{"MAP_PERSISTENT_BIT", MAP_PERSISTENT_BIT, C.GL_MAP_PERSISTENT_BIT},
	{"MAP_READ_BIT", MAP_READ_BIT, C.GL_MAP_READ_BIT},
	{"MAP_UNSYNCHRONIZED_BIT", MAP_UNSYNCHRONIZED_BIT, C.GL_MAP_UNSYNCHRONIZED_BIT},
	{"MAP_WRITE_BIT", MAP_WRITE_BIT, C.GL_MAP_WRITE_BIT},
	{"MAX", MAX, C.GL_MAX},
	{"MIN", MIN, C.GL_MIN},
	{"MIRRORED_REPEAT", MIRRORED_REPEAT, C.GL_MIRRORED_REPEAT},
	{"MIRROR_CLAMP_TO_EDGE", MIRROR_CLAMP_TO_EDGE, C.GL_MIRROR_CLAMP_TO_EDGE},
	{"MULTISAMPLE", MULTISAMPLE, C.GL_MULTISAMPLE},
	{"NEAREST", NEAREST, C.GL_NEAREST},
	{"NEAREST_MIPMAP_LINEAR", NEAREST_MIPMAP_LINEAR, C.GL_NEAREST_MIPMAP_LINEAR},
	{"NEAREST_MIPMAP_NEAREST", NEAREST_MIPMAP_NEAREST, C.GL_NEAREST_MIPMAP_NEAREST},
	{"NEVER", NEVER, C.GL_NEVER},
	{"NICEST", NICEST, C.GL_NICEST},
	{"NONE", NONE, C.GL_NONE},
	{"NOTEQUAL", NOTEQUAL, C.GL_NOTEQUAL},
	{"NO_ERROR", NO_ERROR, C.GL_NO_ERROR},
	{"ONE", ONE, C.GL_ONE},
	{"ONE_MINUS_CONSTANT_ALPHA", ONE_MINUS_CONSTANT_ALPHA, C.GL_ONE_MINUS_CONSTANT_ALPHA},
	{"ONE_MINUS_CONSTANT_COLOR", ONE_MINUS_CONSTANT_COLOR, C.GL_ONE_MINUS_CONSTANT_COLOR},
	{"ONE_MINUS_DST_ALPHA", ONE_MINUS_DST_ALPHA, C.GL_ONE_MINUS_DST_ALPHA},
	{"ONE_MINUS_DST_COLOR", ONE_MINUS_DST_COLOR, C.GL_ONE_MINUS_DST_COLOR},
	{"ONE_MINUS_SRC1_ALPHA", ONE_MINUS_SRC1_ALPHA, C.GL_ONE_MINUS_SRC1_ALPHA},
	{"ONE_MINUS_SRC1_COLOR", ONE_MINUS_SRC1_COLOR, C.GL_ONE_MINUS_SRC1_COLOR},
	{"ONE_MINUS_SRC_ALPHA", ONE_MINUS_SRC_ALPHA, C.GL_ONE_MINUS_SRC_ALPHA},
	{"ONE_MINUS_SRC_COLOR", ONE_MINUS_SRC_COLOR, C.GL_ONE_MINUS_SRC_COLOR},
	{"OUT_OF_MEMORY", OUT_OF_MEMORY, C.GL_OUT_OF_MEMORY},
	{"PATCHES", PATCHES, C.GL_PATCHES},
	{"PIXEL_BUFFER_BARRIER_BIT", PIXEL_BUFFER_BARRIER_BIT, C.GL_PIXEL_BUFFER_BARRIER_BIT},
	{"PIXEL_PACK_BUFFER", PIXEL_PACK_BUFFER, C.GL_PIXEL_PACK_BUFFER},
	{"PIXEL_UNPACK_BUFFER", PIXEL_UNPACK_BUFFER, C.GL_PIXEL_UNPACK_BUFFER},
	{"POINT", POINT, C.GL_POINT},
	{"POINTS", POINTS, C.GL_POINTS},
	{"POLYGON_OFFSET_FILL", POLYGON_OFFSET_FILL, C.GL_POLYGON_OFFSET_FILL},
	{"POLYGON_OFFSET_LINE", POLYGON_OFFSET_LINE, C.GL_POLYGON_OFFSET_LINE},
	{"POLYGON_OFFSET_POINT", POLYGON_OFFSET_POINT, C.GL_POLYGON_OFFSET_POINT},
	{"POLYGON_SMOOTH", POLYGON_SMOOTH, C.GL_POLYGON_SMOOTH},
	{"POLYGON_SMOOTH_HINT", POLYGON_SMOOTH_HINT, C.GL_POLYGON_SMOOTH_HINT},
	{"PRIMITIVES_GENERATED", PRIMITIVES_GENERATED, C.GL_PRIMITIVES_GENERATED},
	{"PRIMITIVE_RESTART", PRIMITIVE_RESTART, C.GL_PRIMITIVE_RESTART},
	{"PRIMITIVE_RESTART_FIXED_INDEX", PRIMITIVE_RESTART_FIXED_INDEX, C.GL_PRIMITIVE_RESTART_FIXED_INDEX},
	{"PROGRAM_POINT_SIZE", PROGRAM_POINT_SIZE, C.GL_PROGRAM_POINT_SIZE},
	{"QUERY_BUFFER", QUERY_BUFFER, C.GL_QUERY_BUFFER},
	{"R11F_G11F_B10F", R11F_G11F_B10F, C.GL_R11F_G11F_B10F},
	{"R16", R16, C.GL_R16},
	{"R16F", R16F, C.GL_R16F},
	{"R16I", R16I, C.GL_R16I},
	{"R16UI", R16UI, C.GL_R16UI},
	{"R32F", R32F, C.GL_R32F},
	{"R32I", R32I, C.GL_R32I},
	{"R32UI", R32UI, C.GL_R32UI},
	{"R8", R8, C.GL_R8},
	{"R8I", R8I, C.GL_R8I},
	{"R8UI", R8UI, C.GL_R8UI},
	{"RASTERIZER_DISCARD", RASTERIZER_DISCARD, C.GL_RASTERIZER_DISCARD},
	{"READ_FRAMEBUFFER", READ_FRAMEBUFFER, C.GL_READ_FRAMEBUFFER},
	{"RED", RED, C.GL_RED},
	{"RED_INTEGER", RED_INTEGER, C.GL_RED_INTEGER},
	{"RENDERER", RENDERER, C.GL_RENDERER},
	{"REPEAT", REPEAT, C.GL_REPEAT},
	{"REPLACE", REPLACE, C.GL_REPLACE},
	{"RG", RG, C.GL_RG},
	{"RG16", RG16, C.GL_RG16},
	{"RG16F", RG16F, C.GL_RG16F},
	{"RG16I", RG16I, C.GL_RG16I},
	{"RG16UI", RG16UI, C.GL_RG16UI},
	{"RG32F", RG32F, C.GL_RG32F},
	{"RG32I", RG32I, C.GL_RG32I},
	{"RG32UI", RG32UI, C.GL_RG32UI},
	{"RG8", RG8, C.GL_RG8},
	{"RG8I", RG8I, C.GL_RG8I},
	{"RG8UI", RG8UI, C.GL_RG8UI},
	{"RGB", RGB, C.GL_RGB},
	{"RGB10_A2", RGB10_A2, C.GL_RGB10_A2},
	{"RGB16F", RGB16F, C.GL_RGB16F},
	{"RGB32F", RGB32F, C.GL_RGB32F},
	{"RGB5_A1", RGB5_A1, C.GL_RGB5_A1},
	{"RGB8", RGB8, C.GL_RGB8},
	{"RGB9_E5", RGB9_E5, C.GL_RGB9_E5},
	{"RGBA", RGBA, C.GL_RGBA},
	{"RGBA16", RGBA16, C.GL_RGBA16},
	{"RGBA16F", RGBA16F, C.GL_RGBA16F},
	{"RGBA32F", RGBA32F, C.GL_RGBA32F},
	{"RGBA32I", RGBA32I, C.GL_RGBA32I},
	{"RGBA32UI", RGBA32UI, C.GL_RGBA32UI},
	{"RGBA4", RGBA4, C.GL_RGBA4},
	{"RGBA8", RGBA8, C.GL_RGBA8},
	{"RGBA8I", RGBA8I, C.GL_RGBA8I},
	{"RGBA8UI", RGBA8UI, C.GL_RGBA8UI},
	{"RGBA_INTEGER", RGBA_INTEGER, C.GL_RGBA_INTEGER},
	{"RGB_INTEGER", RGB_INTEGER, C.GL_RGB_INTEGER},
	{"RG_INTEGER", RG_INTEGER, C.GL_RG_INTEGER},
	{"RIGHT", RIGHT, C.GL_RIGHT},
	{"SAMPLES_PASSED", SAMPLES_PASSED, C.GL_SAMPLES_PASSED},
	{"SAMPLE_ALPHA_TO_COVERAGE", SAMPLE_ALPHA_TO_COVERAGE, C.GL_SAMPLE_ALPHA_TO_COVERAGE},
	{"SAMPLE_ALPHA_TO_ONE", SAMPLE_ALPHA_TO_ONE, C.GL_SAMPLE_ALPHA_TO_ONE},
	{"SAMPLE_COVERAGE", SAMPLE_COVERAGE, C.GL_SAMPLE_COVERAGE},
	{"SAMPLE_MASK", SAMPLE_MASK, C.GL_SAMPLE_MASK},
	{"SAMPLE_SHADING", SAMPLE_SHADING, C.GL_SAMPLE_SHADING},
	{"SCISSOR_TEST", SCISSOR_TEST, C.GL_SCISSOR_TEST},
	{"SHADER_IMAGE_ACCESS_BARRIER_BIT", SHADER_IMAGE_ACCESS_BARRIER_BIT, C.GL_SHADER_IMAGE_ACCESS_BARRIER_BIT},
	{"SHADER_STORAGE_BARRIER_BIT", SHADER_STORAGE_BARRIER_BIT, C.GL_SHADER_STORAGE_BARRIER_BIT},
	{"SHADER_STORAGE_BUFFER", SHADER_STORAGE_BUFFER, C.GL_SHADER_STORAGE_BUFFER},
	{"SHADING_LANGUAGE_VERSION", SHADING_LANGUAGE_VERSION, C.GL_SHADING_LANGUAGE_VERSION},
	{"SHORT", SHORT, C.GL_SHORT},
	{"SRC1_ALPHA", SRC1_ALPHA, C.GL_SRC1_ALPHA},
	{"SRC1_COLOR", SRC1_COLOR, C.GL_SRC1_COLOR},
	{"SRC_ALPHA", SRC_ALPHA, C.GL_SRC_ALPHA},
	{"SRC_ALPHA_SATURATE", SRC_ALPHA_SATURATE, C.GL_SRC_ALPHA_SATURATE},
	{"SRC_COLOR", SRC_COLOR, C.GL_SRC_COLOR},
	{"SRGB8", SRGB8, C.GL_SRGB8},
	{"SRGB8_ALPHA8", SRGB8_ALPHA8, C.GL_SRGB8_ALPHA8},
	{"STACK_OVERFLOW", STACK_OVERFLOW, C.GL_STACK_OVERFLOW},
	{"STACK_UNDERFLOW", STACK_UNDERFLOW, C.GL_STACK_UNDERFLOW},
	{"STATIC_COPY", STATIC_COPY, C.GL_STATIC_COPY},
	{"STATIC_DRAW", STATIC_DRAW, C.GL_STATIC_DRAW},
	{"STATIC_READ", STATIC_READ, C.GL_STATIC_READ},
	{"STENCIL_ATTACHMENT", STENCIL_ATTACHMENT, C.GL_STENCIL_ATTACHMENT},
	{"STENCIL_BUFFER_BIT", STENCIL_BUFFER_BIT, C.GL_STENCIL_BUFFER_BIT},
	{"STENCIL_INDEX", STENCIL_INDEX, C.GL_STENCIL_INDEX},
	{"STENCIL_INDEX8", STENCIL_INDEX8, C.GL_STENCIL_INDEX8},
	{"STENCIL_TEST", STENCIL_TEST, C.GL_STENCIL_TEST},
	{"STREAM_COPY", STREAM_COPY, C.GL_STREAM_COPY},
	{"STREAM_DRAW", STREAM_DRAW, C.GL_STREAM_DRAW},
	{"STREAM_READ", STREAM_READ, C.GL_STREAM_READ},
	{"TESS_CONTROL_SHADER", TESS_CONTROL_SHADER, C.GL_TESS_CONTROL_SHADER},
	{"TESS_EVALUATION_SHADER", TESS_EVALUATION_SHADER, C.GL_TESS_EVALUATION_SHADER},
	{"TEXTURE_1D", TEXTURE_1D, C.GL_TEXTURE_1D},
	{"TEXTURE_1D_ARRAY", TEXTURE_1D_ARRAY, C.GL_TEXTURE_1D_ARRAY},
	{"TEXTURE_2D", TEXTURE_2D, C.GL_TEXTURE_2D},
	{"TEXTURE_2D_ARRAY", TEXTURE_2D_ARRAY, C.GL_TEXTURE_2D_ARRAY},
	{"TEXTURE_2D_MULTISAMPLE", TEXTURE_2D_MULTISAMPLE, C.GL_TEXTURE_2D_MULTISAMPLE},
	{"TEXTURE_2D_MULTISAMPLE_ARRAY", TEXTURE_2D_MULTISAMPLE_ARRAY, C.GL_TEXTURE_2D_MULTISAMPLE_ARRAY},
	{"TEXTURE_3D", TEXTURE_3D, C.GL_TEXTURE_3D},
	{"TEXTURE_BASE_LEVEL", TEXTURE_BASE_LEVEL, C.GL_TEXTURE_BASE_LEVEL},
	{"TEXTURE_BORDER_COLOR", TEXTURE_BORDER_COLOR, C.GL_TEXTURE_BORDER_COLOR},
	{"TEXTURE_BUFFER", TEXTURE_BUFFER, C.GL_TEXTURE_BUFFER},
	{"TEXTURE_COMPARE_FUNC", TEXTURE_COMPARE_FUNC, C.GL_TEXTURE_COMPARE_FUNC},
	{"TEXTURE_COMPARE_MODE", TEXTURE_COMPARE_MODE, C.GL_TEXTURE_COMPARE_MODE},
	{"TEXTURE_COMPRESSION_HINT", TEXTURE_COMPRESSION_HINT, C.GL_TEXTURE_COMPRESSION_HINT},
	{"TEXTURE_CUBE_MAP", TEXTURE_CUBE_MAP, C.GL_TEXTURE_CUBE_MAP},
	{"TEXTURE_CUBE_MAP_ARRAY", TEXTURE_CUBE_MAP_ARRAY, C.GL_TEXTURE_CUBE_MAP_ARRAY},
	{"TEXTURE_CUBE_MAP_NEGATIVE_X", TEXTURE_CUBE_MAP_NEGATIVE_X, C.GL_TEXTURE_CUBE_MAP_NEGATIVE_X},
	{"TEXTURE_CUBE_MAP_NEGATIVE_Y", TEXTURE_CUBE_MAP_NEGATIVE_Y, C.GL_TEXTURE_CUBE_MAP_NEGATIVE_Y},
	{"TEXTURE_CUBE_MAP_NEGATIVE_Z", TEXTURE_CUBE_MAP_NEGATIVE_Z, C.GL_TEXTURE_CUBE_MAP_NEGATIVE_Z},
	{"TEXTURE_CUBE_MAP_POSITIVE_X", TEXTURE_CUBE_MAP_POSITIVE_X, C.GL_TEXTURE_CUBE_MAP_POSITIVE_X},
	{"TEXTURE_CUBE_MAP_POSITIVE_Y", TEXTURE_CUBE_MAP_POSITIVE_Y, C.GL_TEXTURE_CUBE_MAP_POSITIVE_Y},
	{"TEXTURE_CUBE_MAP_POSITIVE_Z", TEXTURE_CUBE_MAP_POSITIVE_Z, C.GL_TEXTURE_CUBE_MAP_POSITIVE_Z},
	{"TEXTURE_CUBE_MAP_SEAMLESS", TEXTURE_CUBE_MAP_SEAMLESS, C.GL_TEXTURE_CUBE_MAP_SEAMLESS},
	{"TEXTURE_FETCH_BARRIER_BIT", TEXTURE_FETCH_BARRIER_BIT, C.GL_TEXTURE_FETCH_BARRIER_BIT},
	{"TEXTURE_LOD_BIAS", TEXTURE_LOD_BIAS, C.GL_TEXTURE_LOD_BIAS},
	{"TEXTURE_MAG_FILTER", TEXTURE_MAG_FILTER, C.GL_TEXTURE_MAG_FILTER},
	{"TEXTURE_MAX_LEVEL", TEXTURE_MAX_LEVEL, C.GL_TEXTURE_MAX_LEVEL},
	{"TEXTURE_MAX_LOD", TEXTURE_MAX_LOD, C.GL_TEXTURE_MAX_LOD},
	{"TEXTURE_MIN_FILTER", TEXTURE_MIN_FILTER, C.GL_TEXTURE_MIN_FILTER},
	{"TEXTURE_MIN_LOD", TEXTURE_MIN_LOD, C.GL_TEXTURE_MIN_LOD},
	{"TEXTURE_RECTANGLE", TEXTURE_RECTANGLE, C.GL_TEXTURE_RECTANGLE},
	{"TEXTURE_SWIZZLE_A", TEXTURE_SWIZZLE_A, C.GL_TEXTURE_SWIZZLE_A},
	{"TEXTURE_SWIZZLE_B", TEXTURE_SWIZZLE_B, C.GL_TEXTURE_SWIZZLE_B},
	{"TEXTURE_SWIZZLE_G", TEXTURE_SWIZZLE_G, C.GL_TEXTURE_SWIZZLE_G},
	{"TEXTURE_SWIZZLE_R", TEXTURE_SWIZZLE_R, C.GL_TEXTURE_SWIZZLE_R},
	{"TEXTURE_SWIZZLE_RGBA", TEXTURE_SWIZZLE_RGBA, C.GL_TEXTURE_SWIZZLE_RGBA},
	{"TEXTURE_UPDATE_BARRIER_BIT", TEXTURE_UPDATE_BARRIER_BIT, C.GL_TEXTURE_UPDATE_BARRIER_BIT},
	{"TEXTURE_WRAP_R", TEXTURE_WRAP_R, C.GL_TEXTURE_WRAP_R},
	{"TEXTURE_WRAP_S", TEXTURE_WRAP_S, C.GL_TEXTURE_WRAP_S},
	{"TEXTURE_WRAP_T", TEXTURE_WRAP_T, C.GL_TEXTURE_WRAP_T},
	{"TIMEOUT_EXPIRED", TIMEOUT_EXPIRED, C.GL_TIMEOUT_EXPIRED},
	{"TIMESTAMP", TIMESTAMP, C.GL_TIMESTAMP},
	{"TIME_ELAPSED", TIME_ELAPSED, C.GL_TIME_ELAPSED},
	{"TRANSFORM_FEEDBACK_BARRIER_BIT", TRANSFORM_FEEDBACK_BARRIER_BIT, C.GL_TRANSFORM_FEEDBACK_BARRIER_BIT},
	{"TRANSFORM_FEEDBACK_BUFFER", TRANSFORM_FEEDBACK_BUFFER, C.GL_TRANSFORM_FEEDBACK_BUFFER},
	{"TRANSFORM_FEEDBACK_PRIMITIVES_WRITTEN", TRANSFORM_FEEDBACK_PRIMITIVES_WRITTEN, C.GL_TRANSFORM_FEEDBACK_PRIMITIVES_WRITTEN},
	{"TRIANGLES", TRIANGLES, C.GL_TRIANGLES},
	{"TRIANGLES_ADJACENCY", TRIANGLES_ADJACENCY, C.GL_TRIANGLES_ADJACENCY},
	{"TRIANGLE_FAN", TRIANGLE_FAN, C.GL_TRIANGLE_FAN},
	{"TRIANGLE_STRIP", TRIANGLE_STRIP, C.GL_TRIANGLE_STRIP},
	{"TRIANGLE_STRIP_ADJACENCY", TRIANGLE_STRIP_ADJACENCY, C.GL_TRIANGLE_STRIP_ADJACENCY},
	{"UNIFORM_BARRIER_BIT", UNIFORM_BARRIER_BIT, C.GL_UNIFORM_BARRIER_BIT},
	{"UNIFORM_BUFFER", UNIFORM_BUFFER, C.GL_UNIFORM_BUFFER},
	{"UNSIGNED_BYTE", UNSIGNED_BYTE, C.GL_UNSIGNED_BYTE},
	{"UNSIGNED_INT", UNSIGNED_INT, C.GL_UNSIGNED_INT},
	{"UNSIGNED_SHORT", UNSIGNED_SHORT, C.GL_UNSIGNED_SHORT},
	{"VENDOR", VENDOR, C.GL_VENDOR},
	{"VERSION", VERSION, C.GL_VERSION},
	{"VERTEX_ATTRIB_ARRAY_BARRIER_BIT", VERTEX_ATTRIB_ARRAY_BARRIER_BIT, C.GL_VERTEX_ATTRIB_ARRAY_BARRIER_BIT},
	{"VERTEX_SHADER", VERTEX_SHADER, C.GL_VERTEX_SHADER},
	{"WAIT_FAILED", WAIT_FAILED, C.GL_WAIT_FAILED},
	{"ZERO", ZERO, C.GL_ZERO},
}
