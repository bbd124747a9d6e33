// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package gldriver

import (
	"cogentcore.org/glgpu"
	"github.com/go-gl/glfw/v3.3/glfw"

	"cogentcore.org/core/base/errors"
)

// note: this file contains the glfw dependencies, for desktop platform builds.

// Init initializes glfw. Must be called before creating any windows.
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	err := glfw.Init()
	if err != nil {
		return errors.Log(err)
	}
	return nil
}

// Terminate shuts down glfw -- call as last thing before quitting.
// IMPORTANT: must be called on the main initial thread!
func Terminate() {
	glfw.Terminate()
}

// CreateWindow is a helper function intended only for use in simple
// examples and tests: it initializes glfw, makes a window with an OpenGL
// 4.1 core forward-compatible context (the maximum supported on macOS),
// makes that context current, and registers this driver with [glgpu.Init].
// IMPORTANT: must be called on the main initial thread!
func CreateWindow(width, height int, title string) (window *glfw.Window, terminate func(), pollEvents func() bool, err error) {
	if err = Init(); err != nil {
		return
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err = glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		errors.Log(err)
		Terminate()
		return
	}
	window.MakeContextCurrent()
	if err = glgpu.Init(New()); err != nil {
		window.Destroy()
		Terminate()
		return
	}
	terminate = func() {
		window.Destroy()
		Terminate()
	}
	pollEvents = func() bool {
		if window.ShouldClose() {
			return false
		}
		glfw.PollEvents()
		return true
	}
	return
}
