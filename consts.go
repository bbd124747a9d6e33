// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import "fmt"

// OpenGL registry values for the enums this package speaks, named as in the
// C API so call sites read like the GL documentation they mirror. Driver
// implementations over a real binding pass these through unchanged.
const (
	FALSE = 0
	TRUE  = 1

	// buffer targets
	ARRAY_BUFFER         = 0x8892
	ELEMENT_ARRAY_BUFFER = 0x8893
	UNIFORM_BUFFER       = 0x8A11

	// buffer usage hints
	STREAM_DRAW  = 0x88E0
	STREAM_READ  = 0x88E1
	STREAM_COPY  = 0x88E2
	STATIC_DRAW  = 0x88E4
	STATIC_READ  = 0x88E5
	STATIC_COPY  = 0x88E6
	DYNAMIC_DRAW = 0x88E8
	DYNAMIC_READ = 0x88E9
	DYNAMIC_COPY = 0x88EA

	// scalar element types
	BOOL         = 0x8B56
	INT          = 0x1404
	UNSIGNED_INT = 0x1405
	FLOAT        = 0x1406
	DOUBLE       = 0x140A

	// shader stages
	FRAGMENT_SHADER        = 0x8B30
	VERTEX_SHADER          = 0x8B31
	GEOMETRY_SHADER        = 0x8DD9
	TESS_EVALUATION_SHADER = 0x8E87
	TESS_CONTROL_SHADER    = 0x8E88
	COMPUTE_SHADER         = 0x91B9

	// shader and program parameters
	COMPILE_STATUS  = 0x8B81
	LINK_STATUS     = 0x8B82
	VALIDATE_STATUS = 0x8B83
	INFO_LOG_LENGTH = 0x8B84

	// integer state queries
	ARRAY_BUFFER_BINDING         = 0x8894
	ELEMENT_ARRAY_BUFFER_BINDING = 0x8895
	UNIFORM_BUFFER_BINDING       = 0x8A28
	VERTEX_ARRAY_BINDING         = 0x85B5
	CURRENT_PROGRAM              = 0x8B8D

	// error codes
	NO_ERROR                      = 0
	INVALID_ENUM                  = 0x0500
	INVALID_VALUE                 = 0x0501
	INVALID_OPERATION             = 0x0502
	STACK_OVERFLOW                = 0x0503
	STACK_UNDERFLOW               = 0x0504
	OUT_OF_MEMORY                 = 0x0505
	INVALID_FRAMEBUFFER_OPERATION = 0x0506
)

var errorNames = map[uint32]string{
	NO_ERROR:                      "NO_ERROR",
	INVALID_ENUM:                  "INVALID_ENUM",
	INVALID_VALUE:                 "INVALID_VALUE",
	INVALID_OPERATION:             "INVALID_OPERATION",
	STACK_OVERFLOW:                "STACK_OVERFLOW",
	STACK_UNDERFLOW:               "STACK_UNDERFLOW",
	OUT_OF_MEMORY:                 "OUT_OF_MEMORY",
	INVALID_FRAMEBUFFER_OPERATION: "INVALID_FRAMEBUFFER_OPERATION",
}

// ErrorName returns the registry name of an error code returned by
// [Driver.GetError], or its hex value if unknown.
func ErrorName(code uint32) string {
	if nm, ok := errorNames[code]; ok {
		return nm
	}
	return fmt.Sprintf("GL error 0x%04X", code)
}
