// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nulgl provides an in-memory implementation of [glgpu.Driver]:
// it allocates object names, tracks bindings, stores buffer data, and
// honors the GLSL compiler's status-and-info-log contract, all without a
// native context. It lets the full glgpu surface run headless, and its
// object tables are exported so tests can assert exactly what the native
// side would hold.
//
// Compilation is faked faithfully enough for testing the failure surface:
// a source containing a #error directive fails to compile, with the
// directive echoed in the info log, exactly as the GLSL preprocessor
// mandates. Linking scans the attached sources for uniform declarations
// and assigns locations to them, so GetUniformLocation behaves as it
// would against a driver (minus the elimination of genuinely unused
// uniforms, which needs real dataflow analysis).
//
// Like the real thing, it is not safe for concurrent use.
package nulgl

import (
	"fmt"
	"strings"
	"unsafe"

	"cogentcore.org/glgpu"
)

// Driver is the in-memory driver. The zero value is not usable; call [New].
type Driver struct {

	// VertexArrays is the set of live vertex array names.
	VertexArrays map[uint32]bool

	// BoundVertexArray is the currently bound vertex array, 0 for none.
	BoundVertexArray uint32

	// Buffers holds the live buffer objects by name.
	Buffers map[uint32]*BufferObject

	// BoundBuffers is the buffer bound to each target, 0 for none.
	BoundBuffers map[uint32]uint32

	// Attribs holds the configured vertex attributes by index.
	Attribs map[uint32]*AttribState

	// Shaders holds the live shader stage objects by name.
	Shaders map[uint32]*ShaderObject

	// Programs holds the live program objects by name.
	Programs map[uint32]*ProgramObject

	// CurrentProgram is the program in use, 0 for none.
	CurrentProgram uint32

	// Matrix4Writes records every UniformMatrix4fv call, in order.
	Matrix4Writes []Matrix4Write

	errs []uint32

	nextVertexArray uint32
	nextBuffer      uint32
	nextShader      uint32
	nextProgram     uint32
}

// BufferObject is the data store and usage hint of one buffer.
type BufferObject struct {
	Data  []byte
	Usage uint32
}

// AttribState is the recorded layout and enable state of one vertex
// attribute, along with the bindings that were current when it was
// configured.
type AttribState struct {
	Size        int32
	Type        uint32
	Normalized  bool
	Stride      int32
	Offset      uintptr
	Enabled     bool
	Buffer      uint32
	VertexArray uint32
}

// ShaderObject is one shader stage object.
type ShaderObject struct {
	Type     uint32
	Source   string
	Compiled bool
	InfoLog  string
}

// ProgramObject is one program object.
type ProgramObject struct {
	Shaders  []uint32
	Linked   bool
	InfoLog  string
	Uniforms map[string]int32
}

// Matrix4Write is one recorded UniformMatrix4fv call.
type Matrix4Write struct {
	Program   uint32
	Location  int32
	Transpose bool
	Value     [16]float32
}

// New returns a ready in-memory driver.
func New() *Driver {
	return &Driver{
		VertexArrays: make(map[uint32]bool),
		Buffers:      make(map[uint32]*BufferObject),
		BoundBuffers: make(map[uint32]uint32),
		Attribs:      make(map[uint32]*AttribState),
		Shaders:      make(map[uint32]*ShaderObject),
		Programs:     make(map[uint32]*ProgramObject),
	}
}

// Init implements [glgpu.Driver]; there is nothing to load.
func (d *Driver) Init() error {
	return nil
}

func (d *Driver) recordErr(code uint32) {
	d.errs = append(d.errs, code)
}

// GetError pops the oldest recorded error code, NO_ERROR if none.
func (d *Driver) GetError() uint32 {
	if len(d.errs) == 0 {
		return glgpu.NO_ERROR
	}
	code := d.errs[0]
	d.errs = d.errs[1:]
	return code
}

// LiveCounts returns the number of live objects of each class, for
// asserting that construction failures and Release leave nothing behind.
func (d *Driver) LiveCounts() (vertexArrays, buffers, shaders, programs int) {
	return len(d.VertexArrays), len(d.Buffers), len(d.Shaders), len(d.Programs)
}

// BufferBytes returns the data store of the given buffer, nil if the
// name is not live. The returned slice is the store itself, not a copy.
func (d *Driver) BufferBytes(handle uint32) []byte {
	bo := d.Buffers[handle]
	if bo == nil {
		return nil
	}
	return bo.Data
}

func (d *Driver) GenVertexArray() uint32 {
	d.nextVertexArray++
	d.VertexArrays[d.nextVertexArray] = true
	return d.nextVertexArray
}

func (d *Driver) BindVertexArray(handle uint32) {
	if handle != 0 && !d.VertexArrays[handle] {
		d.recordErr(glgpu.INVALID_OPERATION)
		return
	}
	d.BoundVertexArray = handle
}

func (d *Driver) DeleteVertexArray(handle uint32) {
	delete(d.VertexArrays, handle)
	if d.BoundVertexArray == handle {
		d.BoundVertexArray = 0
	}
}

func (d *Driver) GenBuffer() uint32 {
	d.nextBuffer++
	d.Buffers[d.nextBuffer] = &BufferObject{}
	return d.nextBuffer
}

func (d *Driver) BindBuffer(target, handle uint32) {
	if handle != 0 && d.Buffers[handle] == nil {
		d.recordErr(glgpu.INVALID_OPERATION)
		return
	}
	d.BoundBuffers[target] = handle
}

func (d *Driver) BufferData(target uint32, size int, ptr unsafe.Pointer, usage uint32) {
	handle := d.BoundBuffers[target]
	if handle == 0 {
		d.recordErr(glgpu.INVALID_OPERATION)
		return
	}
	if size < 0 {
		d.recordErr(glgpu.INVALID_VALUE)
		return
	}
	bo := d.Buffers[handle]
	bo.Usage = usage
	bo.Data = make([]byte, size)
	if size > 0 {
		copy(bo.Data, unsafe.Slice((*byte)(ptr), size))
	}
}

func (d *Driver) DeleteBuffer(handle uint32) {
	delete(d.Buffers, handle)
	for target, bound := range d.BoundBuffers {
		if bound == handle {
			d.BoundBuffers[target] = 0
		}
	}
}

func (d *Driver) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	if d.BoundVertexArray == 0 {
		d.recordErr(glgpu.INVALID_OPERATION)
		return
	}
	d.Attribs[index] = &AttribState{
		Size: size, Type: xtype, Normalized: normalized, Stride: stride, Offset: offset,
		Buffer:      d.BoundBuffers[glgpu.ARRAY_BUFFER],
		VertexArray: d.BoundVertexArray,
	}
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	at := d.Attribs[index]
	if at == nil {
		at = &AttribState{VertexArray: d.BoundVertexArray}
		d.Attribs[index] = at
	}
	at.Enabled = true
}

func (d *Driver) DisableVertexAttribArray(index uint32) {
	if at := d.Attribs[index]; at != nil {
		at.Enabled = false
	}
}

func (d *Driver) CreateShader(xtype uint32) uint32 {
	d.nextShader++
	d.Shaders[d.nextShader] = &ShaderObject{Type: xtype}
	return d.nextShader
}

func (d *Driver) ShaderSource(handle uint32, src string) {
	if sh := d.Shaders[handle]; sh != nil {
		sh.Source = src
	}
}

// CompileShader fails iff the source contains a #error directive, echoing
// the directive line in the info log.
func (d *Driver) CompileShader(handle uint32) {
	sh := d.Shaders[handle]
	if sh == nil {
		d.recordErr(glgpu.INVALID_VALUE)
		return
	}
	sh.Compiled = true
	sh.InfoLog = ""
	for i, line := range strings.Split(sh.Source, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "#error") {
			sh.Compiled = false
			sh.InfoLog = fmt.Sprintf("ERROR: 0:%d: %s", i+1, strings.TrimSpace(line))
			break
		}
	}
}

func (d *Driver) GetShaderi(handle, pname uint32) int32 {
	sh := d.Shaders[handle]
	if sh == nil {
		d.recordErr(glgpu.INVALID_VALUE)
		return 0
	}
	switch pname {
	case glgpu.COMPILE_STATUS:
		if sh.Compiled {
			return glgpu.TRUE
		}
		return glgpu.FALSE
	case glgpu.INFO_LOG_LENGTH:
		return int32(len(sh.InfoLog))
	}
	d.recordErr(glgpu.INVALID_ENUM)
	return 0
}

func (d *Driver) GetShaderInfoLog(handle uint32) string {
	if sh := d.Shaders[handle]; sh != nil {
		return sh.InfoLog
	}
	return ""
}

func (d *Driver) DeleteShader(handle uint32) {
	delete(d.Shaders, handle)
}

func (d *Driver) CreateProgram() uint32 {
	d.nextProgram++
	d.Programs[d.nextProgram] = &ProgramObject{}
	return d.nextProgram
}

func (d *Driver) AttachShader(program, shader uint32) {
	pr := d.Programs[program]
	if pr == nil || d.Shaders[shader] == nil {
		d.recordErr(glgpu.INVALID_VALUE)
		return
	}
	pr.Shaders = append(pr.Shaders, shader)
}

// LinkProgram links from the attached stages: it fails if any attached
// stage failed to compile, or if two stages declare the same uniform with
// different types (a link error in GLSL), and otherwise assigns locations
// to the uniform variables declared in the attached sources.
func (d *Driver) LinkProgram(program uint32) {
	pr := d.Programs[program]
	if pr == nil {
		d.recordErr(glgpu.INVALID_VALUE)
		return
	}
	pr.Linked = true
	pr.InfoLog = ""
	pr.Uniforms = make(map[string]int32)
	for _, sh := range pr.Shaders {
		so := d.Shaders[sh]
		if so == nil || !so.Compiled {
			pr.Linked = false
			pr.InfoLog = "error: linking with uncompiled shader"
			return
		}
	}
	loc := int32(0)
	types := map[string]string{}
	for _, sh := range pr.Shaders {
		for _, decl := range uniformDecls(d.Shaders[sh].Source) {
			typ, name := decl[0], decl[1]
			if prev, ok := types[name]; ok {
				if prev != typ {
					pr.Linked = false
					pr.InfoLog = fmt.Sprintf("error: mismatched types for uniform %s", name)
					return
				}
				continue
			}
			types[name] = typ
			pr.Uniforms[name] = loc
			loc++
		}
	}
}

// uniformDecls scans GLSL source for "uniform <type> <name>;" declarations,
// returning type and name pairs in declaration order.
func uniformDecls(src string) [][2]string {
	var decls [][2]string
	for _, line := range strings.Split(src, "\n") {
		f := strings.Fields(strings.TrimSuffix(strings.TrimSpace(line), ";"))
		if len(f) >= 3 && f[0] == "uniform" {
			name := f[2]
			if i := strings.IndexAny(name, "[;"); i >= 0 {
				name = name[:i]
			}
			decls = append(decls, [2]string{f[1], name})
		}
	}
	return decls
}

func (d *Driver) GetProgrami(program, pname uint32) int32 {
	pr := d.Programs[program]
	if pr == nil {
		d.recordErr(glgpu.INVALID_VALUE)
		return 0
	}
	switch pname {
	case glgpu.LINK_STATUS:
		if pr.Linked {
			return glgpu.TRUE
		}
		return glgpu.FALSE
	case glgpu.VALIDATE_STATUS:
		return glgpu.TRUE
	case glgpu.INFO_LOG_LENGTH:
		return int32(len(pr.InfoLog))
	}
	d.recordErr(glgpu.INVALID_ENUM)
	return 0
}

func (d *Driver) GetProgramInfoLog(program uint32) string {
	if pr := d.Programs[program]; pr != nil {
		return pr.InfoLog
	}
	return ""
}

func (d *Driver) DetachShader(program, shader uint32) {
	pr := d.Programs[program]
	if pr == nil {
		d.recordErr(glgpu.INVALID_VALUE)
		return
	}
	for i, sh := range pr.Shaders {
		if sh == shader {
			pr.Shaders = append(pr.Shaders[:i], pr.Shaders[i+1:]...)
			return
		}
	}
}

func (d *Driver) DeleteProgram(program uint32) {
	delete(d.Programs, program)
	if d.CurrentProgram == program {
		d.CurrentProgram = 0
	}
}

func (d *Driver) UseProgram(program uint32) {
	if program != 0 && d.Programs[program] == nil {
		d.recordErr(glgpu.INVALID_OPERATION)
		return
	}
	d.CurrentProgram = program
}

func (d *Driver) GetUniformLocation(program uint32, name string) int32 {
	pr := d.Programs[program]
	if pr == nil || !pr.Linked {
		d.recordErr(glgpu.INVALID_OPERATION)
		return -1
	}
	if loc, ok := pr.Uniforms[name]; ok {
		return loc
	}
	return -1
}

func (d *Driver) UniformMatrix4fv(location int32, transpose bool, value *float32) {
	if d.CurrentProgram == 0 {
		d.recordErr(glgpu.INVALID_OPERATION)
		return
	}
	w := Matrix4Write{Program: d.CurrentProgram, Location: location, Transpose: transpose}
	copy(w.Value[:], unsafe.Slice(value, 16))
	d.Matrix4Writes = append(d.Matrix4Writes, w)
}

func (d *Driver) GetInteger(pname uint32) int32 {
	switch pname {
	case glgpu.VERTEX_ARRAY_BINDING:
		return int32(d.BoundVertexArray)
	case glgpu.ARRAY_BUFFER_BINDING:
		return int32(d.BoundBuffers[glgpu.ARRAY_BUFFER])
	case glgpu.ELEMENT_ARRAY_BUFFER_BINDING:
		return int32(d.BoundBuffers[glgpu.ELEMENT_ARRAY_BUFFER])
	case glgpu.UNIFORM_BUFFER_BINDING:
		return int32(d.BoundBuffers[glgpu.UNIFORM_BUFFER])
	case glgpu.CURRENT_PROGRAM:
		return int32(d.CurrentProgram)
	}
	d.recordErr(glgpu.INVALID_ENUM)
	return 0
}
