// SPDX-License-Identifier: Unlicense OR MIT

// Package gl defines the OpenGL enums, object handles and function table
// used by the gpu facade.
package gl

type (
	Attrib uint
	Enum   uint
)

const (
	ALWAYS                 = 0x207
	ARRAY_BUFFER           = 0x8892
	BLEND                  = 0xbe2
	BYTE                   = 0x1400
	CLAMP_TO_EDGE          = 0x812f
	COLOR_BUFFER_BIT       = 0x4000
	COMPILE_STATUS         = 0x8b81
	CULL_FACE              = 0xb44
	DEPTH_BUFFER_BIT       = 0x100
	DEPTH_TEST             = 0xb71
	DST_COLOR              = 0x306
	DYNAMIC_DRAW           = 0x88e8
	ELEMENT_ARRAY_BUFFER   = 0x8893
	FALSE                  = 0
	FLOAT                  = 0x1406
	FRAGMENT_SHADER        = 0x8b30
	INFO_LOG_LENGTH        = 0x8b84
	INT                    = 0x1404
	LINEAR                 = 0x2601
	LINEAR_MIPMAP_LINEAR   = 0x2703
	LINES                  = 0x1
	LINE_LOOP              = 0x2
	LINE_STRIP             = 0x3
	LINK_STATUS            = 0x8b82
	MAX_TEXTURE_SIZE       = 0xd33
	MULTISAMPLE            = 0x809d
	NEAREST                = 0x2600
	ONE                    = 0x1
	ONE_MINUS_SRC_ALPHA    = 0x303
	PACK_ALIGNMENT         = 0xd05
	POINTS                 = 0x0
	PROGRAM_POINT_SIZE     = 0x8642
	R8                     = 0x8229
	RED                    = 0x1903
	REPEAT                 = 0x2901
	RGB                    = 0x1907
	RGBA                   = 0x1908
	RGBA8                  = 0x8058
	SAMPLES                = 0x80a9
	SHADER_TYPE            = 0x8b4f
	SRC_ALPHA              = 0x302
	STATIC_DRAW            = 0x88e4
	STREAM_DRAW            = 0x88e0
	TEXTURE_2D             = 0xde1
	TEXTURE_MAG_FILTER     = 0x2800
	TEXTURE_MIN_FILTER     = 0x2801
	TEXTURE_WRAP_S         = 0x2802
	TEXTURE_WRAP_T         = 0x2803
	TEXTURE0               = 0x84c0
	TEXTURE1               = 0x84c1
	TRIANGLE_FAN           = 0x6
	TRIANGLE_STRIP         = 0x5
	TRIANGLES              = 0x4
	TRUE                   = 1
	UNPACK_ALIGNMENT       = 0xcf5
	UNSIGNED_BYTE          = 0x1401
	UNSIGNED_INT           = 0x1405
	UNSIGNED_SHORT         = 0x1403
	VERTEX_SHADER          = 0x8b31
	VIEWPORT               = 0xba2
	ZERO                   = 0x0
	CURRENT_PROGRAM        = 0x8b8d
	ARRAY_BUFFER_BINDING   = 0x8894
	TEXTURE_BINDING_2D     = 0x8069
	VERTEX_ARRAY_BINDING   = 0x85b5
	ACTIVE_TEXTURE         = 0x84e0
	MAX_VERTEX_ATTRIBS     = 0x8869
	MAX_TEXTURE_IMAGE_UNIT = 0x8872
)
