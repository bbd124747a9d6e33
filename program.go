// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
)

// Program is a linked shader program and its cache of uniform locations.
// It is built from a vertex and a fragment stage, both status-checked, and
// owns the location cache exclusively: uniforms are registered once with
// [Program.AddUniform] and written through [Program.SetMatrix4] by name.
type Program struct {
	handle   uint32
	name     string
	uniforms map[string]int32
}

// OpenProgram reads vertex and fragment shader source from the two given
// files and builds a program from them (see [NewProgram]), named after the
// vertex file. A file that cannot be read returns an error with nothing
// constructed and no native objects left behind. Callers that treat
// shaders as required at startup can wrap the call in [errors.Must1].
func OpenProgram(vertFile, fragFile string) (*Program, error) {
	vsrc, err := os.ReadFile(vertFile)
	if err != nil {
		return nil, errors.Log(fmt.Errorf("glgpu.OpenProgram: vertex shader: %w", err))
	}
	fsrc, err := os.ReadFile(fragFile)
	if err != nil {
		return nil, errors.Log(fmt.Errorf("glgpu.OpenProgram: fragment shader: %w", err))
	}
	name := strings.TrimSuffix(filepath.Base(vertFile), filepath.Ext(vertFile))
	return NewProgram(name, string(vsrc), string(fsrc))
}

// NewProgram compiles the given vertex and fragment sources and links them
// into a new program. Compile and link status are checked: on failure all
// intermediate objects are deleted and the returned error carries the
// driver's info log. After a successful link the stage objects are
// detached and deleted; only the linked program remains.
func NewProgram(name, vertSrc, fragSrc string) (*Program, error) {
	drv := TheDriver()

	vsh := &shader{name: name + "-vert", typ: VertexShader}
	if err := vsh.Compile(vertSrc); err != nil {
		return nil, errors.Log(err)
	}
	fsh := &shader{name: name + "-frag", typ: FragmentShader}
	if err := fsh.Compile(fragSrc); err != nil {
		vsh.Delete()
		return nil, errors.Log(err)
	}

	handle := drv.CreateProgram()
	drv.AttachShader(handle, vsh.handle)
	drv.AttachShader(handle, fsh.handle)
	drv.LinkProgram(handle)

	// the stage objects are no longer needed whatever the link outcome
	drv.DetachShader(handle, vsh.handle)
	drv.DetachShader(handle, fsh.handle)
	vsh.Delete()
	fsh.Delete()

	if drv.GetProgrami(handle, LINK_STATUS) == FALSE {
		msg := drv.GetProgramInfoLog(handle)
		drv.DeleteProgram(handle)
		return nil, errors.Log(fmt.Errorf("glgpu: program %s: failed to link: %v", name, msg))
	}
	return &Program{handle: handle, name: name, uniforms: make(map[string]int32)}, nil
}

// Name returns the name the program was constructed with.
func (pr *Program) Name() string {
	return pr.name
}

// Handle returns the native object name, 0 after Release.
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// Bind makes this the current program: subsequent uniform writes and draw
// calls use it.
func (pr *Program) Bind() {
	if Debug && pr.handle == 0 {
		slog.Error("glgpu.Program.Bind: program has been released", "name", pr.name)
		return
	}
	TheDriver().UseProgram(pr.handle)
	bindings.program = pr.handle
}

// Unbind clears the current program to none. The clear is unconditional:
// it applies regardless of which program is current.
func (pr *Program) Unbind() {
	TheDriver().UseProgram(0)
	bindings.program = 0
}

// AddUniform looks up the location of the named uniform in the linked
// program and caches it. The location is queried once here and never
// re-queried. A name that is not an active uniform, either never declared
// or discarded by the linker as unused, returns an error.
func (pr *Program) AddUniform(name string) error {
	if pr.handle == 0 {
		return errors.Log(fmt.Errorf("glgpu: program %s: AddUniform %s: program has been released", pr.name, name))
	}
	loc := TheDriver().GetUniformLocation(pr.handle, name)
	if loc < 0 {
		return errors.Log(fmt.Errorf("glgpu: program %s: uniform named %s not found", pr.name, name))
	}
	pr.uniforms[name] = loc
	return nil
}

// UniformByName returns the cached location of the named uniform.
// The name must have been registered with [Program.AddUniform].
func (pr *Program) UniformByName(name string) (int32, error) {
	loc, ok := pr.uniforms[name]
	if !ok {
		return -1, errors.Log(fmt.Errorf("glgpu: program %s: uniform named %s not registered", pr.name, name))
	}
	return loc, nil
}

// SetMatrix4 writes the given transform matrix to the named uniform: one
// 4x4 float32 matrix in column-major order, not transposed ([math32.Matrix4]
// is already column-major). The name must have been registered with
// [Program.AddUniform]. The write goes to the current program, so Bind
// first; in Debug mode a write while a different program is current is
// reported and skipped.
func (pr *Program) SetMatrix4(name string, mtx *math32.Matrix4) error {
	loc, err := pr.UniformByName(name)
	if err != nil {
		return err
	}
	if Debug && bindings.program != pr.handle {
		return errors.Log(fmt.Errorf("glgpu: program %s: SetMatrix4 %s: program is not current (current: %d)", pr.name, name, bindings.program))
	}
	TheDriver().UniformMatrix4fv(loc, false, &mtx[0])
	if Debug {
		errors.Log(CheckError("Program.SetMatrix4"))
	}
	return nil
}

// Release deletes the program object, zeroes the handle, and drops the
// uniform cache. If this program is current, the binding reverts to none.
// Calling Release again after the first is a no-op.
func (pr *Program) Release() {
	if pr.handle == 0 {
		return
	}
	// a deleted program that is still in use is only flagged for deletion;
	// unbind first so the release is immediate and complete
	if bindings.program == pr.handle {
		TheDriver().UseProgram(0)
		bindings.program = 0
	}
	TheDriver().DeleteProgram(pr.handle)
	pr.handle = 0
	pr.uniforms = nil
}
