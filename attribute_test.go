// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu_test

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/glgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVertexAttribute(t *testing.T) {
	drv := newTestGPU(t)

	va := glgpu.NewVertexArray()
	va.Bind()
	bf := glgpu.NewBuffer(glgpu.ArrayBuffer, glgpu.StaticDraw)
	bf.Bind()
	bf.SetFloat32(math32.ArrayF32{
		-0.5, -0.5, 0, 1, 0, 0,
		0.5, -0.5, 0, 0, 1, 0,
		0, 0.5, 0, 0, 0, 1,
	})

	// interleaved position and color, 6 float32 per vertex
	pos := glgpu.NewVertexAttribute(0, 3, glgpu.Float32, false, 6*4, 0)
	clr := glgpu.NewVertexAttribute(1, 3, glgpu.Float32, false, 6*4, 3*4)

	at := drv.Attribs[0]
	require.NotNil(t, at)
	assert.Equal(t, int32(3), at.Size)
	assert.Equal(t, uint32(glgpu.FLOAT), at.Type)
	assert.False(t, at.Normalized)
	assert.Equal(t, int32(24), at.Stride)
	assert.Equal(t, uintptr(0), at.Offset)
	assert.Equal(t, bf.Handle(), at.Buffer)
	assert.Equal(t, va.Handle(), at.VertexArray)

	require.NotNil(t, drv.Attribs[1])
	assert.Equal(t, uintptr(12), drv.Attribs[1].Offset)

	assert.False(t, at.Enabled)
	pos.Enable()
	clr.Enable()
	assert.True(t, drv.Attribs[0].Enabled)
	assert.True(t, drv.Attribs[1].Enabled)

	pos.Disable()
	assert.False(t, drv.Attribs[0].Enabled)
	assert.True(t, drv.Attribs[1].Enabled)
}

func TestVertexAttributeNoVertexArray(t *testing.T) {
	drv := newTestGPU(t)

	// core profile rejects attribute configuration with no vertex array
	bf := glgpu.NewBuffer(glgpu.ArrayBuffer, glgpu.StaticDraw)
	bf.Bind()
	glgpu.NewVertexAttribute(0, 3, glgpu.Float32, false, 0, 0)
	assert.Error(t, glgpu.CheckError("attribute"))
	assert.Nil(t, drv.Attribs[0])
}
