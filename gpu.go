// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glgpu provides a typed object layer over the OpenGL objects that
// immediate-mode rendering code manipulates constantly: vertex array
// objects ([VertexArray]), buffer objects ([Buffer]), vertex attribute
// bindings ([VertexAttribute]), and shader programs ([Program]).
//
// Each object owns exactly one native handle, obtained from the registered
// [Driver] at construction and released deterministically by its Release
// method. All native calls go through the Driver, so the same code runs
// against the real OpenGL binding (package gldriver) and the in-memory
// driver used for testing (package nulgl).
//
// OpenGL is stateful: uploads, attribute configuration, and uniform writes
// apply to whatever object is currently bound, not to the object they were
// written next to. The package mirrors the current binding of each kind and,
// when [Debug] is on, reports operations whose binding precondition does not
// hold instead of letting them corrupt some other object's state.
//
// All calls assume a current OpenGL context on the calling goroutine, which
// must be locked to the main thread (runtime.LockOSThread in the program's
// init). There is no internal synchronization.
package glgpu

import "cogentcore.org/core/base/errors"

// Debug enables checking of binding order and other preconditions that
// OpenGL leaves undefined. Violations are reported through slog and the
// offending native call is skipped. Off by default.
var Debug = false

// theDriver is the registered driver. Set by [Init].
var theDriver Driver

// Init registers the driver that provides the native entry points and
// initializes it, which for the real driver loads the OpenGL function
// pointers and therefore requires a current context.
// Must be called before constructing any objects, on the main thread.
func Init(drv Driver) error {
	if drv == nil {
		return errors.Log(errors.New("glgpu.Init: nil Driver"))
	}
	if err := drv.Init(); err != nil {
		return errors.Log(err)
	}
	theDriver = drv
	bindings.reset()
	return nil
}

// TheDriver returns the registered driver. It panics if [Init] has not
// been called: using glgpu objects without a driver is an unrecoverable
// programmer error, not a runtime condition.
func TheDriver() Driver {
	if theDriver == nil {
		panic("glgpu: Init must be called, with an OpenGL context current, before any other use")
	}
	return theDriver
}

// CheckError drains the driver error queue and returns the accumulated
// codes as one error, nil if the queue was clean. The context string
// names the operation being checked. Debug mode calls this after native
// operations whose failure OpenGL reports only through the error queue.
func CheckError(ctx string) error {
	drv := TheDriver()
	var errs []error
	for {
		code := drv.GetError()
		if code == NO_ERROR {
			break
		}
		errs = append(errs, errors.New("glgpu: "+ctx+": "+ErrorName(code)))
	}
	return errors.Join(errs...)
}
