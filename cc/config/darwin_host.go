// Copyright 2015 Google Inc. All rights reserved.
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
	sdlconfig "sdlbuild/config"
	"sdlbuild/platform"
)

var (
	darwinSystemLibraries = append(
		addPrefix([]string{
			"m",
			"objc",
		}, "-l"),
		frameworks("CoreFoundation", "Foundation", "IOKit")...,
	)

	darwinFeatureLibraries = map[sdlconfig.Feature][]string{
		sdlconfig.Audio:    frameworks("AudioToolbox", "CoreAudio"),
		sdlconfig.Video:    frameworks("AppKit", "Carbon", "CoreVideo", "QuartzCore"),
		sdlconfig.Joystick: frameworks("ForceFeedback", "GameController"),
		sdlconfig.Haptic:   frameworks("CoreHaptics"),
		sdlconfig.OpenGL:   frameworks("OpenGL"),
	}
)

// frameworks returns the linker arguments for names.  Each framework takes two
// arguments, "-framework" and the name.
func frameworks(names ...string) []string {
	ret := make([]string, 0, 2*len(names))
	for _, n := range names {
		ret = append(ret, "-framework", n)
	}
	return ret
}

type toolchainDarwin struct {
	toolchainBase
}

func (toolchainDarwin) Name() string {
	return "darwin"
}

func (toolchainDarwin) SystemLibraries() []string {
	return darwinSystemLibraries
}

func (toolchainDarwin) FeatureLibraries(f sdlconfig.Feature) []string {
	return darwinFeatureLibraries[f]
}

var toolchainDarwinSingleton Toolchain = toolchainDarwin{}

func darwinToolchainFactory(platform.Target) Toolchain {
	return toolchainDarwinSingleton
}

func init() {
	registerToolchainFactory(platform.MacOS, darwinToolchainFactory)
}
