// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu_test

import (
	"testing"

	"cogentcore.org/glgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingQueries(t *testing.T) {
	drv := newTestGPU(t)

	assert.Zero(t, glgpu.BoundVertexArray())
	assert.Zero(t, glgpu.BoundBuffer(glgpu.ArrayBuffer))
	assert.Zero(t, glgpu.BoundProgram())

	va := glgpu.NewVertexArray()
	va.Bind()
	ab := glgpu.NewBuffer(glgpu.ArrayBuffer, glgpu.StaticDraw)
	ab.Bind()
	eb := glgpu.NewBuffer(glgpu.ElementArrayBuffer, glgpu.StaticDraw)
	eb.Bind()
	pr, err := glgpu.NewProgram("tri", testVertSrc, testFragSrc)
	require.NoError(t, err)
	pr.Bind()

	// each target is tracked independently
	assert.Equal(t, va.Handle(), glgpu.BoundVertexArray())
	assert.Equal(t, ab.Handle(), glgpu.BoundBuffer(glgpu.ArrayBuffer))
	assert.Equal(t, eb.Handle(), glgpu.BoundBuffer(glgpu.ElementArrayBuffer))
	assert.Zero(t, glgpu.BoundBuffer(glgpu.UniformBuffer))
	assert.Equal(t, pr.Handle(), glgpu.BoundProgram())

	// a fresh Init starts from a clean slate
	require.NoError(t, glgpu.Init(drv))
	assert.Zero(t, glgpu.BoundVertexArray())
	assert.Zero(t, glgpu.BoundBuffer(glgpu.ArrayBuffer))
	assert.Zero(t, glgpu.BoundBuffer(glgpu.ElementArrayBuffer))
	assert.Zero(t, glgpu.BoundProgram())
}
