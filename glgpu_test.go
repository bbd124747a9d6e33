// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu_test

import (
	"testing"
	"unsafe"

	"cogentcore.org/glgpu"
	"cogentcore.org/glgpu/nulgl"
	"github.com/stretchr/testify/assert"
)

// newTestGPU registers a fresh in-memory driver, giving the test an empty
// context and a handle on the native-side state to assert against.
func newTestGPU(t *testing.T) *nulgl.Driver {
	t.Helper()
	drv := nulgl.New()
	assert.NoError(t, glgpu.Init(drv))
	return drv
}

// float32Bytes returns the raw bytes of the given values, in the machine
// byte order the upload path uses.
func float32Bytes(vals ...float32) []byte {
	b := make([]byte, 4*len(vals))
	copy(b, unsafe.Slice((*byte)(unsafe.Pointer(&vals[0])), len(b)))
	return b
}

func TestInitNilDriver(t *testing.T) {
	assert.Error(t, glgpu.Init(nil))
}

func TestCheckError(t *testing.T) {
	drv := newTestGPU(t)
	assert.NoError(t, glgpu.CheckError("clean"))

	// an upload with nothing bound only surfaces through the error queue
	var x float32 = 1
	drv.BufferData(glgpu.ARRAY_BUFFER, 4, unsafe.Pointer(&x), glgpu.STATIC_DRAW)
	err := glgpu.CheckError("upload")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_OPERATION")

	// the queue is drained
	assert.NoError(t, glgpu.CheckError("drained"))
}
