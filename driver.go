// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import "unsafe"

// Driver is the fixed set of native OpenGL entry points the package
// consumes. The gldriver package implements it over the go-gl binding;
// the nulgl package implements it in memory for testing and headless use.
//
// All enum-typed arguments (targets, usage hints, status names) take the
// registry values declared in this package, so implementations over a real
// binding pass them through unchanged. Handles are the native object names;
// 0 is never a valid object.
type Driver interface {
	// Init prepares the driver for use. For the real driver this loads
	// the OpenGL function pointers and requires a current context on the
	// calling thread. Called once, by [Init].
	Init() error

	// GenVertexArray generates one vertex array object name.
	GenVertexArray() uint32

	// BindVertexArray makes the given vertex array current; 0 clears.
	BindVertexArray(handle uint32)

	// DeleteVertexArray deletes the vertex array object.
	DeleteVertexArray(handle uint32)

	// GenBuffer generates one buffer object name.
	GenBuffer() uint32

	// BindBuffer binds the buffer to the given target; 0 clears the target.
	BindBuffer(target, handle uint32)

	// BufferData creates and fills the data store of the buffer currently
	// bound to target, reading size bytes starting at ptr, with the given
	// usage hint. The data is copied; ptr is not retained.
	BufferData(target uint32, size int, ptr unsafe.Pointer, usage uint32)

	// DeleteBuffer deletes the buffer object.
	DeleteBuffer(handle uint32)

	// VertexAttribPointer sets the layout of the given generic vertex
	// attribute, reading from the buffer currently bound to ARRAY_BUFFER,
	// and records it in the currently bound vertex array.
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)

	// EnableVertexAttribArray enables the attribute in the currently
	// bound vertex array.
	EnableVertexAttribArray(index uint32)

	// DisableVertexAttribArray disables the attribute in the currently
	// bound vertex array.
	DisableVertexAttribArray(index uint32)

	// CreateShader creates a shader object of the given stage type.
	CreateShader(xtype uint32) uint32

	// ShaderSource replaces the source code of the shader.
	ShaderSource(handle uint32, src string)

	// CompileShader compiles the shader. Success is reported only through
	// GetShaderi(handle, COMPILE_STATUS).
	CompileShader(handle uint32)

	// GetShaderi returns a shader parameter, e.g. COMPILE_STATUS.
	GetShaderi(handle, pname uint32) int32

	// GetShaderInfoLog returns the shader information log, the compiler's
	// diagnostic output.
	GetShaderInfoLog(handle uint32) string

	// DeleteShader deletes the shader object.
	DeleteShader(handle uint32)

	// CreateProgram creates an empty program object.
	CreateProgram() uint32

	// AttachShader attaches a shader object to the program.
	AttachShader(program, shader uint32)

	// LinkProgram links the program from its attached shaders. Success is
	// reported only through GetProgrami(program, LINK_STATUS).
	LinkProgram(program uint32)

	// GetProgrami returns a program parameter, e.g. LINK_STATUS.
	GetProgrami(program, pname uint32) int32

	// GetProgramInfoLog returns the program information log.
	GetProgramInfoLog(program uint32) string

	// DetachShader detaches a shader object from the program.
	DetachShader(program, shader uint32)

	// DeleteProgram deletes the program object.
	DeleteProgram(program uint32)

	// UseProgram makes the program current; 0 clears.
	UseProgram(program uint32)

	// GetUniformLocation returns the location of the named uniform in the
	// linked program, or -1 if the name is not an active uniform.
	GetUniformLocation(program uint32, name string) int32

	// UniformMatrix4fv writes one 4x4 float32 matrix, in column-major
	// order starting at value, to the location in the current program.
	UniformMatrix4fv(location int32, transpose bool, value *float32)

	// GetInteger returns an integer state value, e.g. ARRAY_BUFFER_BINDING.
	GetInteger(pname uint32) int32

	// GetError returns the oldest error code recorded since the last call,
	// NO_ERROR if the queue is clean.
	GetError() uint32
}
