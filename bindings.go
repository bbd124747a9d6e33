// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

// bindState mirrors the handle most recently bound through this package
// for each binding point. It never queries the native side: it is updated
// by the wrapper Bind, Unbind, and Release methods, which are the only
// paths that issue native binds.
type bindState struct {
	vertexArray uint32
	program     uint32
	buffers     map[BufferTargets]uint32
}

// bindings is the tracker for the current context. Single context,
// single thread: one package-level instance.
var bindings bindState

func (bs *bindState) reset() {
	*bs = bindState{}
}

func (bs *bindState) bindBuffer(tgt BufferTargets, handle uint32) {
	if bs.buffers == nil {
		bs.buffers = make(map[BufferTargets]uint32)
	}
	bs.buffers[tgt] = handle
}

// BoundVertexArray returns the handle of the vertex array most recently
// bound through this package, 0 if none or after Unbind.
func BoundVertexArray() uint32 {
	return bindings.vertexArray
}

// BoundBuffer returns the handle of the buffer most recently bound to the
// given target through this package, 0 if none or after Unbind.
func BoundBuffer(tgt BufferTargets) uint32 {
	return bindings.buffers[tgt]
}

// BoundProgram returns the handle of the program most recently made
// current through this package, 0 if none or after Unbind.
func BoundProgram() uint32 {
	return bindings.program
}
