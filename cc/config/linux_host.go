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
	linuxCflags = []string{
		"-fPIC",
		"-D_REENTRANT",
	}

	linuxSystemLibraries = addPrefix([]string{"m"}, "-l")

	linuxFeatureLibraries = map[sdlconfig.Feature][]string{
		sdlconfig.Threads: addPrefix([]string{"pthread"}, "-l"),
		sdlconfig.LoadSO:  addPrefix([]string{"dl"}, "-l"),
		sdlconfig.Timer:   addPrefix([]string{"rt"}, "-l"),
	}

	androidFeatureLibraries = map[sdlconfig.Feature][]string{
		sdlconfig.LoadSO:  addPrefix([]string{"dl"}, "-l"),
		sdlconfig.Android: addPrefix([]string{"log", "android"}, "-l"),
		sdlconfig.OpenGL:  addPrefix([]string{"EGL", "GLESv2"}, "-l"),
	}
)

type toolchainLinux struct {
	toolchainBase
	android bool
}

func (t toolchainLinux) Name() string {
	if t.android {
		return "android"
	}
	return "linux"
}

func (toolchainLinux) Cflags() []string {
	return linuxCflags
}

func (toolchainLinux) SystemLibraries() []string {
	return linuxSystemLibraries
}

func (t toolchainLinux) FeatureLibraries(f sdlconfig.Feature) []string {
	// Bionic carries pthread and clock_gettime in libc.
	if t.android {
		return androidFeatureLibraries[f]
	}
	return linuxFeatureLibraries[f]
}

var (
	toolchainLinuxSingleton   Toolchain = toolchainLinux{}
	toolchainAndroidSingleton Toolchain = toolchainLinux{android: true}
)

func linuxToolchainFactory(target platform.Target) Toolchain {
	if target.Abi.Mobile() {
		return toolchainAndroidSingleton
	}
	return toolchainLinuxSingleton
}

func init() {
	registerToolchainFactory(platform.Linux, linuxToolchainFactory)
}
