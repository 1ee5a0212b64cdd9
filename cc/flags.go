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

// Package cc synthesizes what accompanies the resolved sources into the compiler: the
// preprocessor flags, the shadow config header, link-only stub sources and the zig cc
// toolchain and link flags.
package cc

import (
	"strings"

	cc_config "sdlbuild/cc/config"
	"sdlbuild/config"
)

// WindowingBackendSymbol selects the offscreen video driver instead of the native
// windowing backend on families that have a choice between the two.
const WindowingBackendSymbol = "SDL_VIDEO_DRIVER_OFFSCREEN"

func define(name, value string) string {
	if value == "" {
		return "-D" + name
	}
	return "-D" + name + "=" + value
}

// CompileFlags returns the preprocessor flags for cfg, in this order: the family's
// capability symbols, one symbol per subsystem, the windowing backend choice, the
// assertion level pair and the build mode.  Every subsystem value comes from
// cfg.Enabled, so each one agrees with the exclusion rules compiled from the same
// config.
func CompileFlags(cfg config.Config) []string {
	var flags []string

	for _, d := range config.Capabilities(cfg.Family()) {
		flags = append(flags, define(d.Name, d.Value))
	}

	for _, s := range config.Subsystems {
		flags = append(flags, define(s.Symbol, s.Value(cfg.Enabled(s.Feature))))
	}

	if cfg.Profile.DesktopLinux() && cfg.Enabled(config.Video) {
		headless := "0"
		if !cfg.Enabled(config.X11) {
			headless = "1"
		}
		flags = append(flags, define(WindowingBackendSymbol, headless))
	}

	if cfg.Enabled(config.Assertions) {
		for _, sym := range config.AssertLevelSymbols {
			flags = append(flags, define(sym, "2"))
		}
	}

	if cfg.Release() {
		flags = append(flags, define("NDEBUG", ""))
	} else {
		flags = append(flags, define("DEBUG", ""))
	}

	return flags
}

// FlagValue returns the value -D<symbol> is given in flags.  A define without a value
// reads as "1", the way the preprocessor treats it.
func FlagValue(flags []string, symbol string) (string, bool) {
	for _, f := range flags {
		name, value, hasValue := strings.Cut(strings.TrimPrefix(f, "-D"), "=")
		if !strings.HasPrefix(f, "-D") || name != symbol {
			continue
		}
		if !hasValue {
			return "1", true
		}
		return value, true
	}
	return "", false
}

// FeatureEnabled decodes whether flags compile subsystem f in.
func FeatureEnabled(flags []string, f config.Feature) (enabled bool, ok bool) {
	s, ok := config.SubsystemFor(f)
	if !ok {
		return false, false
	}
	value, ok := FlagValue(flags, s.Symbol)
	if !ok {
		return false, false
	}
	return value != s.DisabledValue(), true
}

// ToolchainFlags returns the zig cc optimization and target flags followed by the
// family's own toolchain flags.
func ToolchainFlags(cfg config.Config) []string {
	opt := cc_config.Debug
	if cfg.Release() {
		opt = cc_config.ReleaseSafe
	}
	flags := []string{"-O", opt, "-target", cfg.Profile.Target.String()}
	return append(flags, cc_config.FindToolchain(cfg.Profile.Target).Cflags()...)
}

// LinkFlags returns the system libraries the compiled sources need.  Cross stub mode
// compiles nothing that calls into the system, so it links nothing.
func LinkFlags(cfg config.Config) []string {
	if cfg.CrossCompile() {
		return nil
	}
	tc := cc_config.FindToolchain(cfg.Profile.Target)
	flags := config.CopyOf(tc.SystemLibraries())
	for _, f := range config.Features() {
		if cfg.Enabled(f) {
			flags = append(flags, tc.FeatureLibraries(f)...)
		}
	}
	return dedupeLinkFlags(flags)
}

// dedupeLinkFlags removes repeated libraries, keeping the first copy.  A "-framework"
// argument and the name after it count as one library.
func dedupeLinkFlags(flags []string) []string {
	seen := make(map[string]bool, len(flags))
	ret := make([]string, 0, len(flags))
	for i := 0; i < len(flags); i++ {
		lib := flags[i : i+1]
		if flags[i] == "-framework" && i+1 < len(flags) {
			lib = flags[i : i+2]
			i++
		}
		key := strings.Join(lib, " ")
		if seen[key] {
			continue
		}
		seen[key] = true
		ret = append(ret, lib...)
	}
	return ret
}
