// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

// Types is a list of the scalar element types that vertex and index data
// can be made of, as named by vertex attribute layouts.
// See: https://www.khronos.org/opengl/wiki/Data_Type_(GLSL)
type Types int32 //enums:enum

const (
	UndefinedType Types = iota
	Bool32
	Int32
	Uint32
	Float32
	Float64
)

// GL returns the OpenGL registry value for this type.
func (tp Types) GL() uint32 {
	return TypeToGL[tp]
}

// Bytes returns the number of bytes of one element of this type.
func (tp Types) Bytes() int {
	return TypeSizes[tp]
}

var TypeToGL = map[Types]uint32{
	Bool32:  BOOL,
	Int32:   INT,
	Uint32:  UNSIGNED_INT,
	Float32: FLOAT,
	Float64: DOUBLE,
}

var TypeSizes = map[Types]int{
	Bool32:  4,
	Int32:   4,
	Uint32:  4,
	Float32: 4,
	Float64: 8,
}

// BufferTargets are the buffer binding points a [Buffer] can be created
// for. Vertex data goes to ArrayBuffer, index data to ElementArrayBuffer.
type BufferTargets int32 //enums:enum

const (
	ArrayBuffer BufferTargets = iota
	ElementArrayBuffer
	UniformBuffer
)

// GL returns the OpenGL registry value for this target.
func (tg BufferTargets) GL() uint32 {
	return TargetToGL[tg]
}

// Binding returns the integer state query name reporting the buffer
// currently bound to this target.
func (tg BufferTargets) Binding() uint32 {
	return TargetToBinding[tg]
}

var TargetToGL = map[BufferTargets]uint32{
	ArrayBuffer:        ARRAY_BUFFER,
	ElementArrayBuffer: ELEMENT_ARRAY_BUFFER,
	UniformBuffer:      UNIFORM_BUFFER,
}

var TargetToBinding = map[BufferTargets]uint32{
	ArrayBuffer:        ARRAY_BUFFER_BINDING,
	ElementArrayBuffer: ELEMENT_ARRAY_BUFFER_BINDING,
	UniformBuffer:      UNIFORM_BUFFER_BINDING,
}

// BufferUsages are the usage hints passed to the driver when a [Buffer]
// uploads its data store, advising where to place it. Static for
// upload-once draw-many data, Dynamic for frequently respecified data,
// Stream for data used at most a few times.
type BufferUsages int32 //enums:enum

const (
	StreamDraw BufferUsages = iota
	StreamRead
	StreamCopy
	StaticDraw
	StaticRead
	StaticCopy
	DynamicDraw
	DynamicRead
	DynamicCopy
)

// GL returns the OpenGL registry value for this usage hint.
func (us BufferUsages) GL() uint32 {
	return UsageToGL[us]
}

var UsageToGL = map[BufferUsages]uint32{
	StreamDraw:  STREAM_DRAW,
	StreamRead:  STREAM_READ,
	StreamCopy:  STREAM_COPY,
	StaticDraw:  STATIC_DRAW,
	StaticRead:  STATIC_READ,
	StaticCopy:  STATIC_COPY,
	DynamicDraw: DYNAMIC_DRAW,
	DynamicRead: DYNAMIC_READ,
	DynamicCopy: DYNAMIC_COPY,
}

// ShaderTypes are the GLSL shader stage types. [Program] links a
// VertexShader and a FragmentShader; the remaining stages are named for
// completeness of the enum.
type ShaderTypes int32 //enums:enum

const (
	VertexShader ShaderTypes = iota
	FragmentShader
	ComputeShader
	GeometryShader
	TessCtrlShader
	TessEvalShader
)

// GL returns the OpenGL registry value for this stage.
func (st ShaderTypes) GL() uint32 {
	return ShaderTypeToGL[st]
}

var ShaderTypeToGL = map[ShaderTypes]uint32{
	VertexShader:   VERTEX_SHADER,
	FragmentShader: FRAGMENT_SHADER,
	ComputeShader:  COMPUTE_SHADER,
	GeometryShader: GEOMETRY_SHADER,
	TessCtrlShader: TESS_CONTROL_SHADER,
	TessEvalShader: TESS_EVALUATION_SHADER,
}
