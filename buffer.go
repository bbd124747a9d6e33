// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"log/slog"
	"unsafe"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// Buffer is a buffer object holding vertex data, index data, or uniform
// blocks on the device, per its Target. The target and the usage hint are
// fixed at construction; the data store is (re)created on each Set call.
// The buffer must be bound when its data store is set: uploads go to
// whatever buffer is bound to the target, not to the receiver.
type Buffer struct {
	handle uint32

	// Target is the binding point this buffer was created for.
	Target BufferTargets

	// Usage is the placement hint passed to the driver on upload.
	Usage BufferUsages
}

// NewBuffer generates a new buffer object for the given binding target,
// with the given usage hint for its uploads. [Init] must have been called.
func NewBuffer(tgt BufferTargets, usage BufferUsages) *Buffer {
	return &Buffer{handle: TheDriver().GenBuffer(), Target: tgt, Usage: usage}
}

// Handle returns the native object name, 0 after Release.
func (bf *Buffer) Handle() uint32 {
	return bf.handle
}

// Bind binds this buffer to its target, making it the one that subsequent
// uploads and attribute configuration on that target read from.
func (bf *Buffer) Bind() {
	if Debug && bf.handle == 0 {
		slog.Error("glgpu.Buffer.Bind: buffer has been released", "target", bf.Target)
		return
	}
	TheDriver().BindBuffer(bf.Target.GL(), bf.handle)
	bindings.bindBuffer(bf.Target, bf.handle)
}

// Unbind clears the binding of this buffer's target to 0. The clear is
// unconditional: it applies regardless of which buffer is bound there.
func (bf *Buffer) Unbind() {
	TheDriver().BindBuffer(bf.Target.GL(), 0)
	bindings.bindBuffer(bf.Target, 0)
}

// SetFloat32 creates the buffer's data store from the given float32 data,
// copying 4*len(data) bytes to the device with the buffer's usage hint.
// The buffer must be bound; the data is not retained on the CPU side.
// A zero-length upload is a no-op.
func (bf *Buffer) SetFloat32(data math32.ArrayF32) {
	if len(data) == 0 {
		if Debug {
			slog.Error("glgpu.Buffer.SetFloat32: zero-length data", "target", bf.Target)
		}
		return
	}
	if !bf.debugBound("SetFloat32") {
		return
	}
	TheDriver().BufferData(bf.Target.GL(), 4*len(data), unsafe.Pointer(&data[0]), bf.Usage.GL())
	if Debug {
		errors.Log(CheckError("Buffer.SetFloat32"))
	}
}

// SetInt32 creates the buffer's data store from the given int32 data,
// copying 4*len(data) bytes to the device with the buffer's usage hint.
// The buffer must be bound; the data is not retained on the CPU side.
// A zero-length upload is a no-op.
func (bf *Buffer) SetInt32(data []int32) {
	if len(data) == 0 {
		if Debug {
			slog.Error("glgpu.Buffer.SetInt32: zero-length data", "target", bf.Target)
		}
		return
	}
	if !bf.debugBound("SetInt32") {
		return
	}
	TheDriver().BufferData(bf.Target.GL(), 4*len(data), unsafe.Pointer(&data[0]), bf.Usage.GL())
	if Debug {
		errors.Log(CheckError("Buffer.SetInt32"))
	}
}

// debugBound reports whether the upload may proceed. In Debug mode it
// requires this buffer to be the one bound to its target, logging the
// violation otherwise; uploading through an unbound or differently-bound
// target respecifies some other buffer's store (or none at all).
func (bf *Buffer) debugBound(op string) bool {
	if !Debug {
		return true
	}
	if bound := bindings.buffers[bf.Target]; bound != bf.handle || bf.handle == 0 {
		slog.Error("glgpu.Buffer."+op+": buffer is not bound to its target",
			"target", bf.Target, "handle", bf.handle, "bound", bound)
		return false
	}
	return true
}

// Release deletes the buffer object and zeroes the handle. If this buffer
// is currently bound to its target, the binding reverts to 0. Calling
// Release again after the first is a no-op.
func (bf *Buffer) Release() {
	if bf.handle == 0 {
		return
	}
	TheDriver().DeleteBuffer(bf.handle)
	if bindings.buffers[bf.Target] == bf.handle {
		bindings.bindBuffer(bf.Target, 0)
	}
	bf.handle = 0
}
