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

	"github.com/google/blueprint/proptools"

	"sdlbuild/config"
)

// IncludeFlags converts a list of include directories to -I flags.  Order is kept, so
// the first directory shadows the later ones.
func IncludeFlags(dirs []string) []string {
	return config.PrefixWith(dirs, "-I")
}

// CommandLine renders everything zig cc needs besides the sources, in the order the
// compiler reads them: toolchain flags, include directories, compile flags and link
// flags.  Every argument is shell escaped.
func CommandLine(toolchainFlags, includeDirs, cflags, ldflags []string) string {
	var args []string
	args = append(args, toolchainFlags...)
	args = append(args, IncludeFlags(includeDirs)...)
	args = append(args, cflags...)
	args = append(args, ldflags...)
	for i, a := range args {
		args[i] = proptools.ShellEscapeIncludingSpaces(a)
	}
	return strings.Join(args, " ")
}
