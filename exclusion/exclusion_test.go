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
	"errors"
	"iter"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"sdlbuild/config"
	"sdlbuild/platform"
)

var macHost = platform.Target{Arch: "aarch64", Os: platform.MacOS, OsName: "macos"}

// candidates returns the fixture files with an extension compiled for family.
func candidates(family platform.OsFamily) []string {
	var ret []string
	for _, p := range TestSourceTree {
		for _, ext := range family.SourceExtensions() {
			if strings.HasSuffix(p, ext) {
				ret = append(ret, p)
				break
			}
		}
	}
	return ret
}

func resolveAndFilter(cfg config.Config) Result {
	return Filter(candidates(cfg.Family()), Compile(cfg), cfg.CrossCompile())
}

func containsAny(path string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains("/"+path, p) {
			return true
		}
	}
	return false
}

func TestLinuxDefaults(t *testing.T) {
	cfg := config.TestConfig(t, "x86_64-linux-gnu", config.TestLinuxHost, config.RawOptions{})
	res := resolveAndFilter(cfg)

	for _, src := range res.Sources {
		if containsAny(src, windowsDirs) || containsAny(src, macosDirs) {
			t.Errorf("other family source %q survived", src)
		}
		if containsAny(src, unsupportedVideo) || containsAny(src, unsupportedRender) {
			t.Errorf("unsupported backend %q survived", src)
		}
	}

	for _, want := range []string{
		"SDL.c",
		"audio/alsa/SDL_alsa_audio.c",
		"video/x11/SDL_x11video.c",
		"video/x11/SDL_x11opengl.c",
		"render/opengl/SDL_render_gl.c",
		"thread/pthread/SDL_systhread.c",
	} {
		config.AssertStringListContains(t, "linux sources", res.Sources, want)
	}
	for _, unwanted := range []string{
		"video/SDL_vulkan_utils.c",
		"video/x11/SDL_x11vulkan.c",
		"video/wayland/SDL_waylandvideo.c",
		"thread/generic/SDL_sysmutex.c",
		"joystick/dummy/SDL_sysjoystick.c",
		"timer/dummy/SDL_systimer.c",
		"test/SDL_test_common.c",
		"dynapi/SDL_dynapi.c",
		"core/android/SDL_android.c",
	} {
		config.AssertStringListDoesNotContain(t, "linux sources", res.Sources, unwanted)
	}
}

func TestLinuxShimsFollowToggles(t *testing.T) {
	opts := config.TestOptions(map[config.Feature]bool{config.OpenGL: false, config.Vulkan: true})
	cfg := config.TestConfig(t, "x86_64-linux-gnu", config.TestLinuxHost, opts)
	res := resolveAndFilter(cfg)

	config.AssertStringListContains(t, "vulkan shim", res.Sources, "video/x11/SDL_x11vulkan.c")
	config.AssertStringListContains(t, "vulkan utils", res.Sources, "video/SDL_vulkan_utils.c")
	config.AssertStringListContains(t, "x11 core", res.Sources, "video/x11/SDL_x11video.c")
	config.AssertStringListDoesNotContain(t, "opengl shim", res.Sources, "video/x11/SDL_x11opengl.c")
	config.AssertStringListDoesNotContain(t, "egl", res.Sources, "video/SDL_egl.c")
	config.AssertStringListDoesNotContain(t, "gl renderer", res.Sources, "render/opengl/SDL_render_gl.c")
}

func TestWindowsCarveOut(t *testing.T) {
	cfg := config.TestConfig(t, "x86_64-windows-msvc", config.TestLinuxHost, config.RawOptions{})
	res := resolveAndFilter(cfg)

	config.AssertStringListContains(t, "carve-out", res.Sources, "thread/generic/SDL_syscond_cv.c")
	config.AssertStringListContains(t, "windows threads", res.Sources, "thread/windows/SDL_systhread.c")
	config.AssertStringListDoesNotContain(t, "generic mutex", res.Sources, "thread/generic/SDL_sysmutex.c")
	config.AssertStringListDoesNotContain(t, "pthread", res.Sources, "thread/pthread/SDL_systhread.c")
	config.AssertStringListDoesNotContain(t, "unix misc", res.Sources, "misc/unix/SDL_sysurl.c")
	config.AssertStringListDoesNotContain(t, "vulkan", res.Sources, "video/windows/SDL_windowsvulkan.c")
	config.AssertStringListContains(t, "wgl", res.Sources, "video/windows/SDL_windowsopengl.c")

	opts := config.TestOptions(map[config.Feature]bool{config.Threads: false})
	noThreads := resolveAndFilter(config.TestConfig(t, "x86_64-windows-msvc", config.TestLinuxHost, opts))
	config.AssertStringListDoesNotContain(t, "carve-out without threads", noThreads.Sources, "thread/generic/SDL_syscond_cv.c")
}

func TestWindowsGnuDropsJoystick(t *testing.T) {
	cfg := config.TestConfig(t, "x86_64-windows-gnu", config.TestLinuxHost, config.RawOptions{})
	res := resolveAndFilter(cfg)
	for _, src := range res.Sources {
		if strings.HasPrefix(src, "joystick/") && src != "joystick/dummy/SDL_sysjoystick.c" {
			t.Errorf("joystick source %q survived on windows-gnu", src)
		}
	}
	config.AssertStringListContains(t, "null joystick", res.Sources, "joystick/dummy/SDL_sysjoystick.c")
}

// nullBackendSource returns the fixture file of the null backend of s.
func nullBackendSource(t *testing.T, s config.Subsystem) string {
	t.Helper()
	for _, p := range TestSourceTree {
		if strings.Contains(anchor(p), s.Dummy) {
			return p
		}
	}
	t.Fatalf("no fixture file for %s", s.Dummy)
	return ""
}

func TestNullBackends(t *testing.T) {
	for _, s := range config.Subsystems {
		if s.Dummy == "" {
			continue
		}
		t.Run(s.Feature.String(), func(t *testing.T) {
			dummy := nullBackendSource(t, s)

			on := resolveAndFilter(config.TestConfig(t, "x86_64-linux-gnu", config.TestLinuxHost, config.RawOptions{}))
			config.AssertStringListDoesNotContain(t, "null backend while on", on.Sources, dummy)

			opts := config.TestOptions(map[config.Feature]bool{s.Feature: false})
			off := resolveAndFilter(config.TestConfig(t, "x86_64-linux-gnu", config.TestLinuxHost, opts))
			config.AssertStringListContains(t, "null backend while off", off.Sources, dummy)
			for _, src := range off.Sources {
				if src != dummy && containsAny(src, s.Dirs) {
					t.Errorf("%s is off but %q survived", s.Feature, src)
				}
			}

			cross := config.TestConfig(t, "aarch64-macos-none", config.TestLinuxHost, opts)
			config.AssertStringListDoesNotContain(t, "null backend in cross mode",
				resolveAndFilter(cross).Sources, dummy)
		})
	}
}

func TestCrossCompileAreas(t *testing.T) {
	cfg := config.TestConfig(t, "aarch64-macos-none", config.TestLinuxHost, config.RawOptions{})
	rules := Compile(cfg)
	res := Filter(candidates(cfg.Family()), rules, true)

	for _, src := range res.Sources {
		if containsAny(src, CrossCompileAreas) {
			t.Errorf("cross mode kept %q", src)
		}
	}
	config.AssertStringListDoesNotContain(t, "entry", res.Sources, "SDL.c")
	config.AssertStringListDoesNotContain(t, "assert", res.Sources, "SDL_assert.c")
	config.AssertStringListContains(t, "error", res.Sources, "SDL_error.c")
	config.AssertStringListContains(t, "stdlib", res.Sources, "stdlib/SDL_string.c")

	for _, pattern := range append(CrossCompileAreas, CrossEntryFile, CrossAssertFile) {
		if !Excludes(rules, pattern) {
			t.Errorf("missing cross rule %q", pattern)
		}
	}
}

func TestFullNativeBackendOnMac(t *testing.T) {
	cfg := config.TestConfig(t, "aarch64-macos-none", macHost, config.RawOptions{})
	res := resolveAndFilter(cfg)

	config.AssertStringListContains(t, "cocoa", res.Sources, "video/cocoa/SDL_cocoavideo.m")
	config.AssertStringListContains(t, "coreaudio", res.Sources, "audio/coreaudio/SDL_coreaudio.m")
	config.AssertStringListDoesNotContain(t, "cocoa vulkan", res.Sources, "video/cocoa/SDL_cocoavulkan.m")
	config.AssertStringListDoesNotContain(t, "metal", res.Sources, "render/metal/SDL_render_metal.m")
	config.AssertStringListDoesNotContain(t, "ios joystick", res.Sources, "joystick/iphoneos/SDL_mfijoystick.m")
}

func TestScaffolds(t *testing.T) {
	android := resolveAndFilter(config.TestConfig(t, "aarch64-linux-android", config.TestLinuxHost, config.RawOptions{}))
	config.AssertStringListContains(t, "android core", android.Sources, "core/android/SDL_android.c")
	config.AssertStringListContains(t, "aaudio", android.Sources, "audio/aaudio/SDL_aaudio.c")
	config.AssertStringListDoesNotContain(t, "x11", android.Sources, "video/x11/SDL_x11video.c")

	wasm := resolveAndFilter(config.TestConfig(t, "wasm32-emscripten", config.TestLinuxHost, config.RawOptions{}))
	config.AssertStringListContains(t, "emscripten video", wasm.Sources, "video/emscripten/SDL_emscriptenvideo.c")
	config.AssertStringListContains(t, "emscripten fs", wasm.Sources, "filesystem/emscripten/SDL_sysfilesystem.c")
	config.AssertStringListDoesNotContain(t, "alsa", wasm.Sources, "audio/alsa/SDL_alsa_audio.c")

	opts := config.TestOptions(map[config.Feature]bool{config.Wayland: true})
	wayland := resolveAndFilter(config.TestConfig(t, "x86_64-linux-gnu", config.TestLinuxHost, opts))
	config.AssertStringListContains(t, "wayland", wayland.Sources, "video/wayland/SDL_waylandvideo.c")
	config.AssertStringListDoesNotContain(t, "kmsdrm", wayland.Sources, "video/kmsdrm/SDL_kmsdrmvideo.c")
}

// Every disabled subsystem leaves no file it owns behind, and every enabled one keeps at
// least one.
func TestSubsystemFilesFollowFlags(t *testing.T) {
	testCases := []struct {
		triple string
		host   platform.Target
		opts   config.RawOptions
	}{
		{"x86_64-linux-gnu", config.TestLinuxHost, config.RawOptions{}},
		{"x86_64-linux-gnu", config.TestLinuxHost, config.TestOptions(map[config.Feature]bool{
			config.Audio: false, config.HIDAPI: false, config.Threads: false, config.Vulkan: true})},
		{"x86_64-linux-gnu", config.TestLinuxHost, config.TestOptions(map[config.Feature]bool{
			config.X11: false, config.OpenGL: false})},
		{"x86_64-linux-musl", config.TestLinuxHost, config.TestOptions(map[config.Feature]bool{config.Video: false})},
		{"x86_64-windows-msvc", config.TestLinuxHost, config.TestOptions(map[config.Feature]bool{config.Vulkan: true})},
		{"x86_64-windows-gnu", config.TestLinuxHost, config.TestOptions(map[config.Feature]bool{
			config.Sensor: false, config.Haptic: false, config.Locale: false})},
		{"aarch64-macos-none", macHost, config.RawOptions{}},
		{"aarch64-macos-none", config.TestLinuxHost, config.RawOptions{}},
		{"aarch64-linux-android", config.TestLinuxHost, config.RawOptions{}},
		{"wasm32-emscripten", config.TestLinuxHost, config.TestOptions(map[config.Feature]bool{config.Misc: false})},
	}

	for _, tc := range testCases {
		cfg := config.TestConfig(t, tc.triple, tc.host, tc.opts)
		t.Run(cfg.String(), func(t *testing.T) {
			res := resolveAndFilter(cfg)
			present := make(map[config.Feature]bool)
			for _, src := range res.Sources {
				for _, f := range Tags(src) {
					present[f] = true
				}
			}
			for _, s := range config.Subsystems {
				if cfg.Enabled(s.Feature) != present[s.Feature] {
					t.Errorf("%s: enabled=%t but tagged sources present=%t",
						s.Feature, cfg.Enabled(s.Feature), present[s.Feature])
				}
			}
		})
	}
}

func TestDuplicateRulesAreIdempotent(t *testing.T) {
	cfg := config.TestConfig(t, "x86_64-windows-msvc", config.TestLinuxHost, config.RawOptions{})
	rules := Compile(cfg)
	res := Filter(candidates(cfg.Family()), rules, false)

	doubled := append(config.CopyOf(rules), rules...)
	if diff := cmp.Diff(res.Sources, Filter(candidates(cfg.Family()), doubled, false).Sources); diff != "" {
		t.Errorf("duplicated rules changed the sources (-want +got):\n%s", diff)
	}

	audio := Rule{Pattern: "/audio/", Reason: "subsystem:audio", Kind: Exclude}
	once := Filter(candidates(cfg.Family()), append(config.CopyOf(rules), audio), false)
	twice := Filter(candidates(cfg.Family()), append(config.CopyOf(rules), audio, audio), false)
	if diff := cmp.Diff(once.Sources, twice.Sources); diff != "" {
		t.Errorf("duplicate pattern changed the sources (-want +got):\n%s", diff)
	}

	// Compile itself never returns duplicates.
	if diff := cmp.Diff(rules, dedupe(config.CopyOf(rules))); diff != "" {
		t.Errorf("Compile returned duplicates:\n%s", diff)
	}
}

func TestFilterDeterministic(t *testing.T) {
	cfg := config.TestConfig(t, "x86_64-linux-gnu", config.TestLinuxHost, config.RawOptions{})
	a := resolveAndFilter(cfg)
	b := resolveAndFilter(cfg)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("filter is not deterministic:\n%s", diff)
	}
}

func TestFilterPriority(t *testing.T) {
	rules := []Rule{
		{Pattern: "/loadso/", Reason: "dir", Kind: Exclude},
		{Pattern: "/loadso/dlopen/", Reason: "backend", Kind: Include},
		{Pattern: "/loadso/dlopen/SDL_sysloadso_dummy.c", Reason: "file", Kind: Exclude},
		{Pattern: "/tie/", Reason: "keep", Kind: Include},
		{Pattern: "/tie/", Reason: "drop", Kind: Exclude},
	}
	paths := []string{
		"loadso/SDL_loadso.c",
		"loadso/dlopen/SDL_sysloadso.c",
		"loadso/dlopen/SDL_sysloadso_dummy.c",
		"tie/a.c",
		"other.c",
	}

	res := Filter(paths, rules, false)
	if diff := cmp.Diff([]string{"loadso/dlopen/SDL_sysloadso.c", "other.c"}, res.Sources); diff != "" {
		t.Errorf("unexpected sources (-want +got):\n%s", diff)
	}
	want := []Exclusion{
		{"loadso/SDL_loadso.c", rules[0]},
		{"loadso/dlopen/SDL_sysloadso_dummy.c", rules[2]},
		{"tie/a.c", rules[4]},
	}
	if diff := cmp.Diff(want, res.Excluded); diff != "" {
		t.Errorf("unexpected exclusions (-want +got):\n%s", diff)
	}

	cross := Filter(paths, rules, true)
	if diff := cmp.Diff([]string{"other.c"}, cross.Sources); diff != "" {
		t.Errorf("cross mode honoured carve-outs (-want +got):\n%s", diff)
	}
}

func TestAnchoredMatching(t *testing.T) {
	rules := []Rule{{Pattern: "/audio/", Reason: "subsystem:audio"}}
	res := Filter([]string{"audio/SDL_audio.c", "SDL_audiocvt.c", "xaudio/foo.c"}, rules, false)
	if diff := cmp.Diff([]string{"SDL_audiocvt.c", "xaudio/foo.c"}, res.Sources); diff != "" {
		t.Errorf("unexpected sources (-want +got):\n%s", diff)
	}
}

func seqOf(paths []string, err error) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, p := range paths {
			if !yield(p, nil) {
				return
			}
		}
		if err != nil {
			yield("", err)
		}
	}
}

func TestFilterSeq(t *testing.T) {
	cfg := config.TestConfig(t, "x86_64-linux-gnu", config.TestLinuxHost, config.RawOptions{})
	rules := Compile(cfg)
	paths := candidates(cfg.Family())

	got, err := FilterSeq(seqOf(paths, nil), rules, false)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(Filter(paths, rules, false), got); diff != "" {
		t.Errorf("FilterSeq differs from Filter:\n%s", diff)
	}

	walkErr := errors.New("broken tree")
	got, err = FilterSeq(seqOf(paths, walkErr), rules, false)
	if !errors.Is(err, walkErr) {
		t.Fatalf("expected walk error, got %v", err)
	}
	if len(got.Sources) != 0 || len(got.Excluded) != 0 {
		t.Errorf("expected no partial result, got %d sources", len(got.Sources))
	}
}

func TestTags(t *testing.T) {
	if diff := cmp.Diff([]config.Feature{config.Joystick, config.HIDAPI}, Tags("joystick/hidapi/SDL_hidapijoystick.c")); diff != "" {
		t.Errorf("unexpected tags:\n%s", diff)
	}
	if diff := cmp.Diff([]config.Feature{config.Video, config.OpenGL}, Tags("video/SDL_egl.c")); diff != "" {
		t.Errorf("unexpected tags:\n%s", diff)
	}
	if tags := Tags("timer/dummy/SDL_systimer.c"); len(tags) != 0 {
		t.Errorf("null backend should carry no tags, got %v", tags)
	}
	if tags := Tags("stdlib/SDL_string.c"); len(tags) != 0 {
		t.Errorf("expected no tags, got %v", tags)
	}
}
