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

// Package config holds the per family toolchain tables: system libraries, frameworks
// and output suffixes used when the resolved sources are compiled with zig cc.
package config

import (
	"fmt"

	sdlconfig "sdlbuild/config"
	"sdlbuild/platform"
)

// zig optimization modes.
const (
	Debug        = "Debug"
	ReleaseSafe  = "ReleaseSafe"
	ReleaseFast  = "ReleaseFast"
	ReleaseSmall = "ReleaseSmall"
)

type toolchainFactory func(target platform.Target) Toolchain

var toolchainFactories = make(map[platform.OsFamily]toolchainFactory)

func registerToolchainFactory(family platform.OsFamily, factory toolchainFactory) {
	if toolchainFactories[family] != nil {
		panic(fmt.Errorf("toolchain for %s registered twice", family))
	}
	toolchainFactories[family] = factory
}

// FindToolchain returns the toolchain for target.  Families without a dedicated toolchain
// get the generic one.
func FindToolchain(target platform.Target) Toolchain {
	factory := toolchainFactories[target.Os]
	if factory == nil {
		return genericToolchainFactory(target)
	}
	return factory(target)
}

type Toolchain interface {
	Name() string

	// Cflags are passed to every compilation for this family.
	Cflags() []string

	// SystemLibraries are always linked.
	SystemLibraries() []string

	// FeatureLibraries are linked when f is enabled.
	FeatureLibraries(f sdlconfig.Feature) []string

	ObjectSuffix() string
	ExecutableSuffix() string
}

type toolchainBase struct {
}

func (toolchainBase) Cflags() []string {
	return nil
}

func (toolchainBase) FeatureLibraries(sdlconfig.Feature) []string {
	return nil
}

func (toolchainBase) ObjectSuffix() string {
	return ".o"
}

func (toolchainBase) ExecutableSuffix() string {
	return ""
}

type toolchainGeneric struct {
	toolchainBase
}

func (toolchainGeneric) Name() string {
	return "generic"
}

func (toolchainGeneric) SystemLibraries() []string {
	return nil
}

var toolchainGenericSingleton Toolchain = toolchainGeneric{}

func genericToolchainFactory(platform.Target) Toolchain {
	return toolchainGenericSingleton
}

func addPrefix(list []string, prefix string) []string {
	ret := make([]string, len(list))
	for i := range list {
		ret[i] = prefix + list[i]
	}
	return ret
}
