// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import "log/slog"

// VertexAttribute is one generic vertex attribute binding: the layout of
// one input to the vertex shader, read from the buffer bound to
// ArrayBuffer. Constructing it configures the attribute immediately, in
// the vertex array currently bound, so bind the [VertexArray] and the
// source [Buffer] first. The attribute owns no object of its own: its
// state lives in the vertex array it was configured in.
type VertexAttribute struct {

	// Index is the attribute location, matching the layout location in
	// the vertex shader.
	Index uint32

	// Size is the number of components per element, 1-4.
	Size int32

	// Type is the element type in the source buffer.
	Type Types

	// Normalized maps integer data to [0,1] or [-1,1] when read as floats.
	Normalized bool

	// Stride is the byte distance between consecutive elements, 0 for
	// tightly packed.
	Stride int32

	// Offset is the byte offset of the first element in the buffer.
	Offset uintptr
}

// NewVertexAttribute configures vertex attribute index with the given
// layout, reading from the buffer currently bound to ArrayBuffer, and
// records the configuration in the currently bound vertex array.
// In Debug mode, configuring with no vertex array or no array buffer
// bound is reported. The attribute starts disabled; call [VertexAttribute.Enable].
func NewVertexAttribute(index uint32, size int32, typ Types, normalized bool, stride int32, offset uintptr) *VertexAttribute {
	if Debug {
		if bindings.vertexArray == 0 {
			slog.Error("glgpu.NewVertexAttribute: no vertex array bound, configuration will not be recorded", "index", index)
		}
		if bindings.buffers[ArrayBuffer] == 0 {
			slog.Error("glgpu.NewVertexAttribute: no array buffer bound, attribute has no data source", "index", index)
		}
	}
	TheDriver().VertexAttribPointer(index, size, typ.GL(), normalized, stride, offset)
	return &VertexAttribute{Index: index, Size: size, Type: typ, Normalized: normalized, Stride: stride, Offset: offset}
}

// Enable enables the attribute in the currently bound vertex array.
func (at *VertexAttribute) Enable() {
	TheDriver().EnableVertexAttribArray(at.Index)
}

// Disable disables the attribute in the currently bound vertex array.
func (at *VertexAttribute) Disable() {
	TheDriver().DisableVertexAttribArray(at.Index)
}
