// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import "log/slog"

// VertexArray is a vertex array object, the container that records vertex
// attribute configuration ([VertexAttribute]) and the associated buffer
// bindings. Bind it before configuring attributes and before drawing with
// them.
type VertexArray struct {
	handle uint32
}

// NewVertexArray generates a new vertex array object.
// [Init] must have been called.
func NewVertexArray() *VertexArray {
	return &VertexArray{handle: TheDriver().GenVertexArray()}
}

// Handle returns the native object name, 0 after Release.
func (va *VertexArray) Handle() uint32 {
	return va.handle
}

// Bind makes this vertex array current: subsequent attribute configuration
// is recorded in it, and draw calls read from it.
func (va *VertexArray) Bind() {
	if Debug && va.handle == 0 {
		slog.Error("glgpu.VertexArray.Bind: vertex array has been released")
		return
	}
	TheDriver().BindVertexArray(va.handle)
	bindings.vertexArray = va.handle
}

// Unbind clears the current vertex array binding to 0. The clear is
// unconditional: it applies regardless of which vertex array is bound.
func (va *VertexArray) Unbind() {
	TheDriver().BindVertexArray(0)
	bindings.vertexArray = 0
}

// Release deletes the vertex array object and zeroes the handle. If this
// vertex array is currently bound, the binding reverts to 0. Calling
// Release again after the first is a no-op.
func (va *VertexArray) Release() {
	if va.handle == 0 {
		return
	}
	TheDriver().DeleteVertexArray(va.handle)
	if bindings.vertexArray == va.handle {
		bindings.vertexArray = 0
	}
	va.handle = 0
}
