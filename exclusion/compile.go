// Copyright 2017 Google Inc. All rights reserved.
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

package exclusion

import (
	"sdlbuild/config"
	"sdlbuild/platform"
)

// A group is a set of rules together with the condition under which it applies.  Every
// group is evaluated the same way, in order.
type group struct {
	name  string
	when  func(cfg config.Config) bool
	rules func(cfg config.Config) []Rule
}

func always(config.Config) bool { return true }

func family(f platform.OsFamily) func(cfg config.Config) bool {
	return func(cfg config.Config) bool { return cfg.Family() == f }
}

var groups = []group{
	{"baseline", always, baselineRules},
	{"scaffolds", always, scaffoldRules},
	{"subsystems", always, subsystemRules},
	{"linux", family(platform.Linux), linuxRules},
	{"windows", family(platform.Windows), windowsRules},
	{"macos", family(platform.MacOS), macosRules},
	{"other", family(platform.Other), otherRules},
	{"cross-compile", config.Config.CrossCompile, crossRules},
}

// Compile returns the rules for cfg.  The result contains every rule of every group
// whose condition holds, in group order, with duplicate patterns removed.
func Compile(cfg config.Config) []Rule {
	var rules []Rule
	for _, g := range groups {
		if g.when(cfg) {
			rules = append(rules, g.rules(cfg)...)
		}
	}
	return dedupe(rules)
}

// Platforms and backends that are never built.
var (
	unsupportedVideo = []string{
		"/video/vivante/",
		"/video/raspberry/",
		"/video/uikit/",
		"/video/haiku/",
		"/video/n3ds/",
		"/video/ps2/",
		"/video/psp/",
		"/video/vita/",
		"/video/riscos/",
		"/video/os2/",
		"/video/qnx/",
		"/video/directfb/",
		"/video/ngage/",
	}

	unsupportedRender = []string{
		"/render/direct3d/",
		"/render/direct3d11/",
		"/render/direct3d12/",
		"/render/metal/",
		"/render/vitagxm/",
		"/render/ps2/",
		"/render/psp/",
	}

	unsupportedAudio = []string{
		"/audio/arts/",
		"/audio/esd/",
		"/audio/fusionsound/",
		"/audio/nacl/",
		"/audio/nas/",
		"/audio/netbsd/",
		"/audio/paudio/",
		"/audio/qsa/",
		"/audio/sun/",
	}

	unsupportedPlatforms = []string{
		"/haiku/",
		"/os2/",
		"/n3ds/",
		"/ps2/",
		"/psp/",
		"/vita/",
		"/riscos/",
		"/ngage/",
		"/winrt/",
		"/gdk/",
		"/qnx/",
		"/iphoneos/",
		"/ios/",
		"/coremotion/",
	}
)

func baselineRules(config.Config) []Rule {
	return because("unsupported").
		exclude(unsupportedVideo...).
		exclude(unsupportedRender...).
		exclude(unsupportedAudio...).
		exclude(unsupportedPlatforms...).
		exclude("/test/", "/dynapi/").
		build()
}

var scaffoldDirs = map[config.Feature][]string{
	config.Android: {
		"/core/android/",
		"/video/android/",
		"/audio/aaudio/",
		"/audio/openslES/",
		"/joystick/android/",
		"/haptic/android/",
		"/sensor/android/",
		"/hidapi/android/",
		"/locale/android/",
		"/misc/android/",
		"/filesystem/android/",
		"/power/android/",
	},
	config.Emscripten: {"/emscripten/"},
	config.Wayland:    {"/video/wayland/"},
	config.KMSDRM:     {"/video/kmsdrm/"},
}

func scaffoldRules(cfg config.Config) []Rule {
	var rules []Rule
	for _, f := range config.Scaffolds {
		if !cfg.Enabled(f) {
			rules = append(rules, because("scaffold:"+f.String()).exclude(scaffoldDirs[f]...).build()...)
		}
	}
	return rules
}

func subsystemRules(cfg config.Config) []Rule {
	var rules []Rule
	for _, s := range config.Subsystems {
		name := s.Feature.String()
		if !cfg.Enabled(s.Feature) {
			rules = append(rules, because("subsystem:"+name).exclude(s.Dirs...).build()...)
			// The null backend provides the entry points of a subsystem that is off.
			rules = append(rules, because("null backend:"+name).includeIf(s.Dummy != "", s.Dummy).build()...)
		} else if s.Dummy != "" {
			rules = append(rules, because("dummy:"+name).exclude(s.Dummy).build()...)
		}
	}
	return rules
}

// Directories owned by each desktop family.  Every family excludes the others'.
var (
	linuxDirs = []string{
		"/linux/",
		"/x11/",
		"/alsa/",
		"/pulseaudio/",
		"/pipewire/",
		"/jack/",
		"/sndio/",
		"/dsp/",
	}

	windowsDirs = []string{
		"/windows/",
		"/directsound/",
		"/wasapi/",
		"/winmm/",
	}

	macosDirs = []string{
		"/cocoa/",
		"/darwin/",
		"/macos/",
		"/macosx/",
		"/coreaudio/",
		"/hidapi/mac/",
	}

	// unixDirs are shared by every family except windows.
	unixDirs = []string{
		"/unix/",
		"/pthread/",
		"/dlopen/",
	}
)

func linuxRules(cfg config.Config) []Rule {
	return because("platform:linux").
		exclude(windowsDirs...).
		exclude(macosDirs...).
		exclude("/thread/generic/").
		// The x11 directory holds the shims next to toggle independent files.
		excludeIf(!cfg.Enabled(config.OpenGL),
			"/video/x11/SDL_x11opengl.c",
			"/video/x11/SDL_x11opengles.c").
		excludeIf(!cfg.Enabled(config.Vulkan),
			"/video/x11/SDL_x11vulkan.c",
			"/video/wayland/SDL_waylandvulkan.c",
			"/video/kmsdrm/SDL_kmsdrm_vulkan.c").
		build()
}

func windowsRules(cfg config.Config) []Rule {
	return because("platform:windows").
		exclude(linuxDirs...).
		exclude(macosDirs...).
		exclude(unixDirs...).
		exclude("/thread/generic/").
		// The windows thread backend builds its condition variable on the generic one.
		includeIf(cfg.Enabled(config.Threads), "/thread/generic/SDL_syscond_cv.c").
		excludeIf(!cfg.Enabled(config.OpenGL),
			"/video/windows/SDL_windowsopengl.c",
			"/video/windows/SDL_windowsopengles.c").
		excludeIf(!cfg.Enabled(config.Vulkan),
			"/video/windows/SDL_windowsvulkan.c").
		build()
}

func macosRules(cfg config.Config) []Rule {
	return because("platform:macos").
		exclude(linuxDirs...).
		exclude(windowsDirs...).
		exclude("/thread/generic/").
		excludeIf(!cfg.Enabled(config.OpenGL),
			"/video/cocoa/SDL_cocoaopengl.m",
			"/video/cocoa/SDL_cocoaopengles.m").
		excludeIf(!cfg.Enabled(config.Vulkan),
			"/video/cocoa/SDL_cocoavulkan.m").
		build()
}

func otherRules(config.Config) []Rule {
	return because("platform:other").
		exclude(linuxDirs...).
		exclude(windowsDirs...).
		exclude(macosDirs...).
		build()
}

// CrossCompileAreas are the functional areas that have no usable backend in cross stub
// mode, whatever was requested.
var CrossCompileAreas = []string{
	"/video/",
	"/events/",
	"/render/",
	"/thread/",
	"/timer/",
	"/loadso/",
	"/filesystem/",
	"/locale/",
}

// Top level entry files replaced by the cross stub.
const (
	CrossEntryFile  = "/SDL.c"
	CrossAssertFile = "/SDL_assert.c"
)

func crossRules(config.Config) []Rule {
	return because("cross-compile").
		exclude(CrossCompileAreas...).
		exclude(CrossEntryFile, CrossAssertFile).
		build()
}
