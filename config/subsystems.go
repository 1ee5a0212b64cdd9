// Copyright 2020 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"sdlbuild/platform"
)

// A Subsystem ties a Feature to the source directories it owns and to the preprocessor
// symbol that tells the library whether it is compiled in.  The exclusion compiler, the
// flag synthesizer and the header synthesizer all read this table, so a subsystem's
// directories and its symbol can only change together.
type Subsystem struct {
	Feature Feature

	// Dirs are the path markers of every source file that belongs to the subsystem.
	Dirs []string

	// Dummy is the null backend marker.  It is carved back out of Dirs while the
	// subsystem is off and excluded while it is on.  Cross stub mode never compiles it.
	Dummy string

	// Symbol is the configuration macro.  Inverted symbols (SDL_<X>_DISABLED) hold 1
	// when the subsystem is off.
	Symbol   string
	Inverted bool

	// Marker is defined to 1 in the config header whenever the Dummy backend is compiled.
	Marker string
}

// Value returns the macro value encoding enabled.
func (s Subsystem) Value(enabled bool) string {
	if enabled != s.Inverted {
		return "1"
	}
	return "0"
}

// DisabledValue returns the macro value that means the subsystem is compiled out.
func (s Subsystem) DisabledValue() string {
	return s.Value(false)
}

// Subsystems is ordered the way the symbols are emitted.
var Subsystems = []Subsystem{
	{
		Feature:  Audio,
		Dirs:     []string{"/audio/"},
		Symbol:   "SDL_AUDIO_DISABLED",
		Inverted: true,
	},
	{
		Feature:  Video,
		Dirs:     []string{"/video/", "/render/"},
		Symbol:   "SDL_VIDEO_DISABLED",
		Inverted: true,
	},
	{
		Feature: OpenGL,
		Dirs: []string{
			"/render/opengl/",
			"/render/opengles/",
			"/render/opengles2/",
			"/video/SDL_egl.c",
		},
		Symbol: "SDL_VIDEO_OPENGL",
	},
	{
		Feature: X11,
		Dirs:    []string{"/video/x11/"},
		Symbol:  "SDL_VIDEO_DRIVER_X11",
	},
	{
		Feature: Vulkan,
		Dirs:    []string{"/video/SDL_vulkan_utils.c"},
		Symbol:  "SDL_VIDEO_VULKAN",
	},
	{
		Feature:  Joystick,
		Dirs:     []string{"/joystick/"},
		Dummy:    "/joystick/dummy/",
		Symbol:   "SDL_JOYSTICK_DISABLED",
		Inverted: true,
	},
	{
		Feature:  Haptic,
		Dirs:     []string{"/haptic/"},
		Dummy:    "/haptic/dummy/",
		Symbol:   "SDL_HAPTIC_DISABLED",
		Inverted: true,
		Marker:   "SDL_HAPTIC_DUMMY",
	},
	{
		Feature:  Sensor,
		Dirs:     []string{"/sensor/"},
		Dummy:    "/sensor/dummy/",
		Symbol:   "SDL_SENSOR_DISABLED",
		Inverted: true,
		Marker:   "SDL_SENSOR_DUMMY",
	},
	{
		Feature:  HIDAPI,
		Dirs:     []string{"/hidapi/", "/joystick/hidapi/"},
		Symbol:   "SDL_HIDAPI_DISABLED",
		Inverted: true,
	},
	{
		Feature:  Locale,
		Dirs:     []string{"/locale/"},
		Symbol:   "SDL_LOCALE_DISABLED",
		Inverted: true,
	},
	{
		Feature:  Misc,
		Dirs:     []string{"/misc/"},
		Symbol:   "SDL_MISC_DISABLED",
		Inverted: true,
	},
	{
		Feature:  Threads,
		Dirs:     []string{"/thread/"},
		Symbol:   "SDL_THREADS_DISABLED",
		Inverted: true,
	},
	{
		Feature:  Timer,
		Dirs:     []string{"/timer/"},
		Dummy:    "/timer/dummy/",
		Symbol:   "SDL_TIMERS_DISABLED",
		Inverted: true,
	},
	{
		Feature:  LoadSO,
		Dirs:     []string{"/loadso/"},
		Dummy:    "/loadso/dummy/",
		Symbol:   "SDL_LOADSO_DISABLED",
		Inverted: true,
		Marker:   "SDL_LOADSO_DUMMY",
	},
	{
		Feature:  Filesystem,
		Dirs:     []string{"/filesystem/"},
		Dummy:    "/filesystem/dummy/",
		Symbol:   "SDL_FILESYSTEM_DISABLED",
		Inverted: true,
		Marker:   "SDL_FILESYSTEM_DUMMY",
	},
	{
		Feature:  Events,
		Dirs:     []string{"/events/"},
		Symbol:   "SDL_EVENTS_DISABLED",
		Inverted: true,
	},
	{
		Feature:  Atomic,
		Dirs:     []string{"/atomic/"},
		Symbol:   "SDL_ATOMIC_DISABLED",
		Inverted: true,
	},
}

// SubsystemFor returns the table entry for f.
func SubsystemFor(f Feature) (Subsystem, bool) {
	for _, s := range Subsystems {
		if s.Feature == f {
			return s, true
		}
	}
	return Subsystem{}, false
}

// AssertLevelSymbols are defined to 2 when assertions are on.
var AssertLevelSymbols = []string{"SDL_ASSERT_LEVEL", "SDL_DEFAULT_ASSERT_LEVEL"}

// A Define is a preprocessor symbol with an optional value.
type Define struct {
	Name  string
	Value string
}

func (d Define) String() string {
	if d.Value == "" {
		return d.Name
	}
	return d.Name + "=" + d.Value
}

var libcHeaders = []Define{
	{"HAVE_LIBC", "1"},
	{"HAVE_STDARG_H", "1"},
	{"HAVE_STDDEF_H", "1"},
	{"HAVE_STDINT_H", "1"},
	{"HAVE_STDIO_H", "1"},
	{"HAVE_STDLIB_H", "1"},
	{"HAVE_STRING_H", "1"},
	{"HAVE_MATH_H", "1"},
}

var familyCapabilities = map[platform.OsFamily][]Define{
	platform.Linux: {
		{"HAVE_SIGNAL_H", "1"},
		{"HAVE_DLOPEN", "1"},
		{"SDL_THREAD_PTHREAD", "1"},
		{"SDL_THREAD_PTHREAD_RECURSIVE_MUTEX", "1"},
		{"SDL_FILESYSTEM_UNIX", "1"},
		{"SDL_TIMER_UNIX", "1"},
		{"SDL_LOADSO_DLOPEN", "1"},
	},
	platform.Windows: {
		{"WIN32_LEAN_AND_MEAN", ""},
		{"HAVE_WINDOWS_H", "1"},
		{"SDL_THREAD_WINDOWS", "1"},
		{"SDL_FILESYSTEM_WINDOWS", "1"},
		{"SDL_TIMER_WINDOWS", "1"},
		{"SDL_LOADSO_WINDOWS", "1"},
	},
	platform.MacOS: {
		{"HAVE_SIGNAL_H", "1"},
		{"HAVE_DLOPEN", "1"},
		{"SDL_THREAD_PTHREAD", "1"},
		{"SDL_THREAD_PTHREAD_RECURSIVE_MUTEX", "1"},
		{"SDL_FILESYSTEM_COCOA", "1"},
		{"SDL_TIMER_UNIX", "1"},
		{"SDL_LOADSO_DLOPEN", "1"},
	},
}

// Capabilities returns the symbols describing what the target family provides: its libc
// headers, threading primitive and filesystem, timer and loadso backends.
func Capabilities(family platform.OsFamily) []Define {
	ret := make([]Define, 0, len(libcHeaders)+len(familyCapabilities[family]))
	ret = append(ret, libcHeaders...)
	return append(ret, familyCapabilities[family]...)
}
