// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package gldriver

import (
	"runtime"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/glgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	// glfw event handling must run on the main OS thread
	runtime.LockOSThread()
}

const testVertSrc = `#version 410

uniform mat4 transform;

layout(location = 0) in vec3 position;
layout(location = 1) in vec3 color;

out vec3 fragColor;

void main() {
	gl_Position = transform * vec4(position, 1.0);
	fragColor = color;
}
`

const testFragSrc = `#version 410

in vec3 fragColor;

out vec4 outColor;

void main() {
	outColor = vec4(fragColor, 1.0);
}
`

func TestRoundTrip(t *testing.T) {
	t.Skip("Need display and GPU hardware, skipped on CI")
	_, terminate, _, err := CreateWindow(64, 64, "glgpu test")
	require.NoError(t, err)
	defer terminate()

	va := glgpu.NewVertexArray()
	va.Bind()
	assert.Equal(t, int32(va.Handle()), glgpu.TheDriver().GetInteger(glgpu.VERTEX_ARRAY_BINDING))

	bf := glgpu.NewBuffer(glgpu.ArrayBuffer, glgpu.StaticDraw)
	bf.Bind()
	bf.SetFloat32(math32.ArrayF32{
		-0.5, -0.5, 0, 1, 0, 0,
		0.5, -0.5, 0, 0, 1, 0,
		0, 0.5, 0, 0, 0, 1,
	})
	assert.Equal(t, int32(bf.Handle()), glgpu.TheDriver().GetInteger(glgpu.ARRAY_BUFFER_BINDING))

	pos := glgpu.NewVertexAttribute(0, 3, glgpu.Float32, false, 6*4, 0)
	clr := glgpu.NewVertexAttribute(1, 3, glgpu.Float32, false, 6*4, 3*4)
	pos.Enable()
	clr.Enable()
	assert.NoError(t, glgpu.CheckError("vertex setup"))

	pr, err := glgpu.NewProgram("tri", testVertSrc, testFragSrc)
	require.NoError(t, err)
	require.NoError(t, pr.AddUniform("transform"))

	pr.Bind()
	var mtx math32.Matrix4
	mtx.SetIdentity()
	assert.NoError(t, pr.SetMatrix4("transform", &mtx))
	assert.NoError(t, glgpu.CheckError("uniform write"))

	pr.Release()
	bf.Release()
	va.Release()
	assert.NoError(t, glgpu.CheckError("release"))
}
