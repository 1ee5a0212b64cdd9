// Copyright 2016 Google Inc. All rights reserved.
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

package cc

import (
	"strings"

	"sdlbuild/config"
	"sdlbuild/exclusion"
)

// A StubModule is a generated translation unit that only gives the linker definitions
// for symbols whose real implementation was excluded.
type StubModule struct {
	Name string
	Text string

	// Replaces lists the exclusion patterns whose symbols the module defines.
	Replaces []string
}

// A stubSection defines the symbols of everything pattern matches.  It is only emitted
// when pattern is excluded in the same run, so its symbols can never collide with a
// compiled source.
type stubSection struct {
	pattern string
	body    string
}

type stubModule struct {
	name     string
	when     func(cfg config.Config) bool
	prelude  string
	sections []stubSection
}

var stubModules = []stubModule{
	{
		name: "SDL_egl_stubs.c",
		when: func(cfg config.Config) bool {
			return cfg.Profile.DesktopLinux() && !cfg.CrossCompile() &&
				cfg.Enabled(config.Video) && !cfg.Enabled(config.OpenGL)
		},
		prelude:  eglPrelude,
		sections: []stubSection{{"/video/SDL_egl.c", eglStubs}},
	},
	{
		name:    "SDL_cross_stubs.c",
		when:    config.Config.CrossCompile,
		prelude: crossPrelude,
		sections: []stubSection{
			{exclusion.CrossEntryFile, lifecycleStubs},
			{exclusion.CrossAssertFile, assertStubs},
			{"/thread/", threadStubs},
			{"/timer/", timerStubs},
			{"/atomic/", atomicStubs},
		},
	},
}

// Stubs returns the stub modules cfg needs, given the rules compiled from it.
func Stubs(cfg config.Config, rules []exclusion.Rule) []StubModule {
	var ret []StubModule
	for _, m := range stubModules {
		if !m.when(cfg) {
			continue
		}
		var replaces []string
		text := &strings.Builder{}
		text.WriteString("/* " + m.name + " generated for " + cfg.Profile.Target.String() +
			". Link-time definitions only. Do not edit. */\n")
		text.WriteString(m.prelude)
		for _, s := range m.sections {
			if !exclusion.Excludes(rules, s.pattern) {
				continue
			}
			replaces = append(replaces, s.pattern)
			text.WriteString("\n/* Replaces " + s.pattern + " */\n")
			text.WriteString(s.body)
		}
		if len(replaces) == 0 {
			continue
		}
		ret = append(ret, StubModule{Name: m.name, Text: text.String(), Replaces: replaces})
	}
	return ret
}

const eglPrelude = `
typedef void *SDL_EGL_stub_ptr;
`

const eglStubs = `int SDL_EGL_LoadLibraryOnly(void *_this, const char *path) { return -1; }
int SDL_EGL_LoadLibrary(void *_this, const char *path, SDL_EGL_stub_ptr native_display, int platform) { return -1; }
void *SDL_EGL_GetProcAddress(void *_this, const char *proc) { return 0; }
void SDL_EGL_UnloadLibrary(void *_this) { }
void SDL_EGL_SetRequiredVisualId(void *_this, int visual_id) { }
int SDL_EGL_ChooseConfig(void *_this) { return -1; }
int SDL_EGL_GetSwapInterval(void *_this) { return 0; }
int SDL_EGL_SetSwapInterval(void *_this, int interval) { return -1; }
int SDL_EGL_HasExtension(void *_this, int type, const char *ext) { return 0; }
SDL_EGL_stub_ptr SDL_EGL_CreateContext(void *_this, SDL_EGL_stub_ptr surface) { return 0; }
void SDL_EGL_DeleteContext(void *_this, SDL_EGL_stub_ptr context) { }
int SDL_EGL_MakeCurrent(void *_this, SDL_EGL_stub_ptr surface, SDL_EGL_stub_ptr context) { return -1; }
int SDL_EGL_SwapBuffers(void *_this, SDL_EGL_stub_ptr surface) { return -1; }
SDL_EGL_stub_ptr SDL_EGL_CreateSurface(void *_this, void *window, SDL_EGL_stub_ptr nw) { return 0; }
SDL_EGL_stub_ptr SDL_EGL_CreateOffscreenSurface(void *_this, int width, int height) { return 0; }
void SDL_EGL_DestroySurface(void *_this, SDL_EGL_stub_ptr surface) { }
int SDL_EGL_SetErrorEx(const char *message, const char *function, int code) { return -1; }
`

const crossPrelude = `
typedef unsigned char Uint8;
typedef unsigned int Uint32;
typedef unsigned long long Uint64;
typedef int SDL_bool;
typedef int SDL_SpinLock;
typedef struct SDL_version { Uint8 major; Uint8 minor; Uint8 patch; } SDL_version;
typedef struct SDL_atomic_t { int value; } SDL_atomic_t;
typedef struct SDL_mutex { int locked; } SDL_mutex;
typedef struct SDL_AssertData SDL_AssertData;
typedef int (*SDL_AssertionHandler)(const SDL_AssertData *data, void *userdata);
`

const lifecycleStubs = `int SDL_Init(Uint32 flags) { return 0; }
int SDL_InitSubSystem(Uint32 flags) { return 0; }
void SDL_QuitSubSystem(Uint32 flags) { }
Uint32 SDL_WasInit(Uint32 flags) { return 0; }
void SDL_Quit(void) { }
void SDL_SetMainReady(void) { }
const char *SDL_GetPlatform(void) { return "Mac OS X"; }
void SDL_GetVersion(SDL_version *ver) { if (ver) { ver->major = 2; ver->minor = 0; ver->patch = 0; } }
const char *SDL_GetRevision(void) { return ""; }
int SDL_GetRevisionNumber(void) { return 0; }
SDL_bool SDL_IsTablet(void) { return 0; }
`

const assertStubs = `int SDL_ReportAssertion(SDL_AssertData *data, const char *func, const char *file, int line) { return 0; }
void SDL_SetAssertionHandler(SDL_AssertionHandler handler, void *userdata) { }
SDL_AssertionHandler SDL_GetDefaultAssertionHandler(void) { return 0; }
SDL_AssertionHandler SDL_GetAssertionHandler(void **puserdata) { if (puserdata) { *puserdata = 0; } return 0; }
const SDL_AssertData *SDL_GetAssertionReport(void) { return 0; }
void SDL_ResetAssertionReport(void) { }
`

const threadStubs = `static char SDL_stub_errbuf[1024];
void *SDL_GetErrBuf(void) { return SDL_stub_errbuf; }
SDL_mutex *SDL_CreateMutex(void) { static SDL_mutex m; return &m; }
void SDL_DestroyMutex(SDL_mutex *mutex) { }
int SDL_LockMutex(SDL_mutex *mutex) { return 0; }
int SDL_TryLockMutex(SDL_mutex *mutex) { return 0; }
int SDL_UnlockMutex(SDL_mutex *mutex) { return 0; }
unsigned long SDL_ThreadID(void) { return 1; }
`

const timerStubs = `Uint32 SDL_GetTicks(void) { return 0; }
Uint64 SDL_GetTicks64(void) { return 0; }
Uint64 SDL_GetPerformanceCounter(void) { return 0; }
Uint64 SDL_GetPerformanceFrequency(void) { return 1000; }
void SDL_Delay(Uint32 ms) { }
`

const atomicStubs = `SDL_bool SDL_AtomicTryLock(SDL_SpinLock *lock) { if (*lock) { return 0; } *lock = 1; return 1; }
void SDL_AtomicLock(SDL_SpinLock *lock) { *lock = 1; }
void SDL_AtomicUnlock(SDL_SpinLock *lock) { *lock = 0; }
SDL_bool SDL_AtomicCAS(SDL_atomic_t *a, int oldval, int newval) { if (a->value != oldval) { return 0; } a->value = newval; return 1; }
int SDL_AtomicSet(SDL_atomic_t *a, int v) { int old = a->value; a->value = v; return old; }
int SDL_AtomicGet(SDL_atomic_t *a) { return a->value; }
int SDL_AtomicAdd(SDL_atomic_t *a, int v) { int old = a->value; a->value += v; return old; }
void SDL_MemoryBarrierReleaseFunction(void) { }
void SDL_MemoryBarrierAcquireFunction(void) { }
`

// StubSymbols returns the function names a stub module defines.
func StubSymbols(m StubModule) []string {
	var ret []string
	for _, line := range strings.Split(m.Text, "\n") {
		open := strings.Index(line, "(")
		if open < 0 || !strings.HasSuffix(strings.TrimSpace(line), "}") || strings.HasPrefix(line, "typedef") {
			continue
		}
		fields := strings.Fields(strings.NewReplacer("*", " ").Replace(line[:open]))
		if len(fields) > 0 {
			ret = append(ret, fields[len(fields)-1])
		}
	}
	return ret
}
