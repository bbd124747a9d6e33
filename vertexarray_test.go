// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu_test

import (
	"testing"

	"cogentcore.org/glgpu"
	"github.com/stretchr/testify/assert"
)

func TestVertexArray(t *testing.T) {
	drv := newTestGPU(t)

	va := glgpu.NewVertexArray()
	vb := glgpu.NewVertexArray()
	assert.NotZero(t, va.Handle())
	assert.NotEqual(t, va.Handle(), vb.Handle())

	va.Bind()
	assert.Equal(t, va.Handle(), glgpu.BoundVertexArray())
	assert.Equal(t, int32(va.Handle()), drv.GetInteger(glgpu.VERTEX_ARRAY_BINDING))

	vb.Bind()
	assert.Equal(t, vb.Handle(), glgpu.BoundVertexArray())

	vb.Unbind()
	assert.Equal(t, uint32(0), glgpu.BoundVertexArray())
	assert.Equal(t, int32(0), drv.GetInteger(glgpu.VERTEX_ARRAY_BINDING))

	// the clear is unconditional: it applies whichever array is bound
	va.Bind()
	vb.Unbind()
	assert.Equal(t, uint32(0), glgpu.BoundVertexArray())
	assert.Equal(t, int32(0), drv.GetInteger(glgpu.VERTEX_ARRAY_BINDING))

	va.Release()
	vb.Release()
	assert.Equal(t, uint32(0), va.Handle())
	vertexArrays, _, _, _ := drv.LiveCounts()
	assert.Equal(t, 0, vertexArrays)

	va.Release() // second release is a no-op
	vertexArrays, _, _, _ = drv.LiveCounts()
	assert.Equal(t, 0, vertexArrays)
}

func TestVertexArrayReleaseWhileBound(t *testing.T) {
	drv := newTestGPU(t)

	va := glgpu.NewVertexArray()
	va.Bind()
	va.Release()
	assert.Equal(t, uint32(0), glgpu.BoundVertexArray())
	assert.Equal(t, int32(0), drv.GetInteger(glgpu.VERTEX_ARRAY_BINDING))
}
