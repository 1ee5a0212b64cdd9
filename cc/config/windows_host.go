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
	windowsCflags = []string{
		// Admit to using >= Windows 7.
		"-D_WIN32_WINNT=0x0601",
		"-DWINVER=0x0601",
	}

	windowsGnuCflags = []string{
		// Use C99-compliant printf functions (%zd).
		"-D__USE_MINGW_ANSI_STDIO=1",
	}

	windowsSystemLibraries = addPrefix([]string{
		"advapi32",
		"kernel32",
		"ntdll",
		"user32",
		"shell32",
		"gdi32",
		"imm32",
		"ole32",
		"oleaut32",
		"setupapi",
		"version",
		"winmm",
		"uuid",
	}, "-l")

	windowsFeatureLibraries = map[sdlconfig.Feature][]string{
		sdlconfig.OpenGL: addPrefix([]string{"opengl32"}, "-l"),
		sdlconfig.HIDAPI: addPrefix([]string{"hid"}, "-l"),
	}
)

type toolchainWindows struct {
	toolchainBase
	gnu bool
}

func (t toolchainWindows) Name() string {
	if t.gnu {
		return "windows-gnu"
	}
	return "windows"
}

func (t toolchainWindows) Cflags() []string {
	if t.gnu {
		return append(append([]string(nil), windowsCflags...), windowsGnuCflags...)
	}
	return windowsCflags
}

func (toolchainWindows) SystemLibraries() []string {
	return windowsSystemLibraries
}

func (toolchainWindows) FeatureLibraries(f sdlconfig.Feature) []string {
	return windowsFeatureLibraries[f]
}

func (toolchainWindows) ObjectSuffix() string {
	return ".obj"
}

func (toolchainWindows) ExecutableSuffix() string {
	return ".exe"
}

var (
	toolchainWindowsSingleton    Toolchain = toolchainWindows{}
	toolchainWindowsGnuSingleton Toolchain = toolchainWindows{gnu: true}
)

func windowsToolchainFactory(target platform.Target) Toolchain {
	if target.Abi.Base() == platform.AbiGnu {
		return toolchainWindowsGnuSingleton
	}
	return toolchainWindowsSingleton
}

func init() {
	registerToolchainFactory(platform.Windows, windowsToolchainFactory)
}
