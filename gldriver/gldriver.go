// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gldriver implements [glgpu.Driver] over the go-gl OpenGL 4.1
// core binding, for desktop platforms. Use [CreateWindow] to get a window
// with a current context and the driver registered, or register manually:
//
//	window.MakeContextCurrent()
//	err := glgpu.Init(gldriver.New())
//
// Everything here requires the context to be current on the calling
// goroutine, locked to the main thread.
package gldriver

import (
	"strings"
	"unsafe"

	"cogentcore.org/glgpu"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Driver dispatches to the native binding one-to-one. It is stateless:
// all state lives in the OpenGL context.
type Driver struct{}

// New returns the native driver, for registration with [glgpu.Init].
func New() *Driver {
	return &Driver{}
}

// Init loads the OpenGL function pointers from the current context.
func (dr *Driver) Init() error {
	return gl.Init()
}

func (dr *Driver) GenVertexArray() uint32 {
	var handle uint32
	gl.GenVertexArrays(1, &handle)
	return handle
}

func (dr *Driver) BindVertexArray(handle uint32) {
	gl.BindVertexArray(handle)
}

func (dr *Driver) DeleteVertexArray(handle uint32) {
	gl.DeleteVertexArrays(1, &handle)
}

func (dr *Driver) GenBuffer() uint32 {
	var handle uint32
	gl.GenBuffers(1, &handle)
	return handle
}

func (dr *Driver) BindBuffer(target, handle uint32) {
	gl.BindBuffer(target, handle)
}

func (dr *Driver) BufferData(target uint32, size int, ptr unsafe.Pointer, usage uint32) {
	gl.BufferData(target, size, ptr, usage)
}

func (dr *Driver) DeleteBuffer(handle uint32) {
	gl.DeleteBuffers(1, &handle)
}

func (dr *Driver) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointerWithOffset(index, size, xtype, normalized, stride, offset)
}

func (dr *Driver) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (dr *Driver) DisableVertexAttribArray(index uint32) {
	gl.DisableVertexAttribArray(index)
}

func (dr *Driver) CreateShader(xtype uint32) uint32 {
	return gl.CreateShader(xtype)
}

func (dr *Driver) ShaderSource(handle uint32, src string) {
	csources, free := gl.Strs(cString(src))
	gl.ShaderSource(handle, 1, csources, nil)
	free()
}

func (dr *Driver) CompileShader(handle uint32) {
	gl.CompileShader(handle)
}

func (dr *Driver) GetShaderi(handle, pname uint32) int32 {
	var val int32
	gl.GetShaderiv(handle, pname, &val)
	return val
}

func (dr *Driver) GetShaderInfoLog(handle uint32) string {
	logLength := dr.GetShaderi(handle, glgpu.INFO_LOG_LENGTH)
	if logLength == 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(msg))
	return goString(msg)
}

func (dr *Driver) DeleteShader(handle uint32) {
	gl.DeleteShader(handle)
}

func (dr *Driver) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (dr *Driver) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (dr *Driver) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (dr *Driver) GetProgrami(program, pname uint32) int32 {
	var val int32
	gl.GetProgramiv(program, pname, &val)
	return val
}

func (dr *Driver) GetProgramInfoLog(program uint32) string {
	logLength := dr.GetProgrami(program, glgpu.INFO_LOG_LENGTH)
	if logLength == 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(msg))
	return goString(msg)
}

func (dr *Driver) DetachShader(program, shader uint32) {
	gl.DetachShader(program, shader)
}

func (dr *Driver) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (dr *Driver) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (dr *Driver) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(cString(name)))
}

func (dr *Driver) UniformMatrix4fv(location int32, transpose bool, value *float32) {
	gl.UniformMatrix4fv(location, 1, transpose, value)
}

func (dr *Driver) GetInteger(pname uint32) int32 {
	var val int32
	gl.GetIntegerv(pname, &val)
	return val
}

func (dr *Driver) GetError() uint32 {
	return gl.GetError()
}

// cString returns the string null terminated, as the binding requires.
func cString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// goString returns the string with any null terminators removed.
func goString(s string) string {
	return strings.TrimRight(s, "\x00")
}
