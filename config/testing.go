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
	"testing"

	"sdlbuild/platform"
)

// TestLinuxHost is the host used by tests that do not care about the build machine.
var TestLinuxHost = platform.Target{Arch: "x86_64", Os: platform.Linux, OsName: "linux", Abi: platform.AbiGnu}

// TestConfig resolves opts for triple built on host, failing the test on any error.
func TestConfig(t *testing.T, triple string, host platform.Target, opts RawOptions) Config {
	t.Helper()
	target, err := platform.ParseTarget(triple, host)
	if err != nil {
		t.Fatalf("parsing %q: %s", triple, err)
	}
	cfg, err := Resolve(opts, target, host)
	if err != nil {
		t.Fatalf("resolving %q: %s", triple, err)
	}
	return cfg
}

// TestOptions builds RawOptions from explicit feature values.
func TestOptions(values map[Feature]bool) RawOptions {
	var opts RawOptions
	for f, v := range values {
		opts.Set(f, v)
	}
	return opts
}
