// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import "fmt"

// shader is one shader stage object, held only through compilation and
// linking: the owning [Program] deletes its stage objects once linked.
type shader struct {
	handle uint32
	name   string
	typ    ShaderTypes
	src    string
}

// Compile compiles the given source for this shader's stage.
// Source must be GLSL version 410, the supported version of OpenGL.
// The compile status is checked: on failure the stage object is deleted
// and the returned error carries the source and the driver's info log.
func (sh *shader) Compile(src string) error {
	drv := TheDriver()
	handle := drv.CreateShader(sh.typ.GL())
	sh.src = src
	drv.ShaderSource(handle, src)
	drv.CompileShader(handle)
	if drv.GetShaderi(handle, COMPILE_STATUS) == FALSE {
		msg := drv.GetShaderInfoLog(handle)
		drv.DeleteShader(handle)
		return fmt.Errorf("glgpu: failed to compile %v shader %v:\n%v\nerror: %v", sh.typ, sh.name, src, msg)
	}
	sh.handle = handle
	return nil
}

// Handle returns the native object name, 0 before Compile and after Delete.
func (sh *shader) Handle() uint32 {
	return sh.handle
}

// Delete deletes the shader stage object. No-op if never compiled.
func (sh *shader) Delete() {
	if sh.handle == 0 {
		return
	}
	TheDriver().DeleteShader(sh.handle)
	sh.handle = 0
}
