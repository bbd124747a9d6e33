// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nulgl

import (
	"testing"
	"unsafe"

	"cogentcore.org/glgpu"
	"github.com/stretchr/testify/assert"
)

func TestCompileErrorLine(t *testing.T) {
	d := New()
	sh := d.CreateShader(glgpu.VERTEX_SHADER)
	d.ShaderSource(sh, "#version 410\n#error no tessellation\nvoid main() {}\n")
	d.CompileShader(sh)
	assert.Equal(t, int32(glgpu.FALSE), d.GetShaderi(sh, glgpu.COMPILE_STATUS))
	assert.Equal(t, "ERROR: 0:2: #error no tessellation", d.GetShaderInfoLog(sh))
}

func TestUniformDecls(t *testing.T) {
	src := `#version 410
uniform mat4 transform;
uniform vec3 lightPos; // world space
uniform float weights[4];
in vec3 position;
void main() {}
`
	want := [][2]string{{"mat4", "transform"}, {"vec3", "lightPos"}, {"float", "weights"}}
	assert.Equal(t, want, uniformDecls(src))
}

func TestLinkUniformTypeMismatch(t *testing.T) {
	d := New()
	vsh := d.CreateShader(glgpu.VERTEX_SHADER)
	d.ShaderSource(vsh, "#version 410\nuniform mat4 transform;\nvoid main() {}\n")
	d.CompileShader(vsh)
	fsh := d.CreateShader(glgpu.FRAGMENT_SHADER)
	d.ShaderSource(fsh, "#version 410\nuniform vec3 transform;\nvoid main() {}\n")
	d.CompileShader(fsh)

	pr := d.CreateProgram()
	d.AttachShader(pr, vsh)
	d.AttachShader(pr, fsh)
	d.LinkProgram(pr)
	assert.Equal(t, int32(glgpu.FALSE), d.GetProgrami(pr, glgpu.LINK_STATUS))
	assert.Contains(t, d.GetProgramInfoLog(pr), "mismatched types")
}

func TestLinkUncompiledStage(t *testing.T) {
	d := New()
	vsh := d.CreateShader(glgpu.VERTEX_SHADER)
	d.ShaderSource(vsh, "#version 410\nvoid main() {}\n")
	d.CompileShader(vsh)
	fsh := d.CreateShader(glgpu.FRAGMENT_SHADER)
	d.ShaderSource(fsh, "#version 410\nvoid main() {}\n")

	// fsh is attached without having been compiled
	pr := d.CreateProgram()
	d.AttachShader(pr, vsh)
	d.AttachShader(pr, fsh)
	d.LinkProgram(pr)
	assert.Equal(t, int32(glgpu.FALSE), d.GetProgrami(pr, glgpu.LINK_STATUS))
	assert.NotEmpty(t, d.GetProgramInfoLog(pr))
}

func TestBufferDataUnbound(t *testing.T) {
	d := New()
	var x float32 = 1
	d.BufferData(glgpu.ARRAY_BUFFER, 4, unsafe.Pointer(&x), glgpu.STATIC_DRAW)
	assert.Equal(t, uint32(glgpu.INVALID_OPERATION), d.GetError())
	assert.Equal(t, uint32(glgpu.NO_ERROR), d.GetError())
}

func TestGetUniformLocation(t *testing.T) {
	d := New()
	vsh := d.CreateShader(glgpu.VERTEX_SHADER)
	d.ShaderSource(vsh, "#version 410\nuniform mat4 transform;\nvoid main() {}\n")
	d.CompileShader(vsh)
	pr := d.CreateProgram()
	d.AttachShader(pr, vsh)
	d.LinkProgram(pr)

	assert.Equal(t, int32(glgpu.TRUE), d.GetProgrami(pr, glgpu.LINK_STATUS))
	assert.Equal(t, int32(0), d.GetUniformLocation(pr, "transform"))
	assert.Equal(t, int32(-1), d.GetUniformLocation(pr, "nosuch"))
}
