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

// Package config turns caller supplied feature toggles and a target description into
// the validated configuration every later stage of a resolution run reads from.
package config

import (
	"fmt"
	"strings"

	"sdlbuild/platform"
)

// A Config object represents the entire configuration of one resolution run.  It is a
// value: every stage receives its own copy and none of them can change it.
type Config struct {
	Profile platform.Profile

	// flags are the requested values after defaults and platform overrides.
	flags Flags

	// Mode is ModeDebug or ModeRelease.
	Mode string

	// Overrides lists, in order, every value the platform forced on the request.
	Overrides []AppliedOverride
}

// An AppliedOverride records a flag that Resolve changed because of the platform.
type AppliedOverride struct {
	Feature Feature
	From    bool
	To      bool
	Reason  string
}

func (o AppliedOverride) String() string {
	return fmt.Sprintf("%s forced %t (was %t): %s", o.Feature, o.To, o.From, o.Reason)
}

// CrossCompile returns true when the run is in cross stub mode.
func (c Config) CrossCompile() bool {
	return c.Profile.IsCrossCompile
}

// Family returns the target OS family.
func (c Config) Family() platform.OsFamily {
	return c.Profile.OsFamily
}

// Enabled returns the effective value of f.  Cross stub mode compiles no optional code
// at all, so every feature reads as off there regardless of what was requested.
func (c Config) Enabled(f Feature) bool {
	if c.Profile.IsCrossCompile {
		return false
	}
	return c.flags[f]
}

// Requested returns the flag values before cross stub mode is taken into account.
func (c Config) Requested() Flags {
	return c.flags
}

// Effective returns the value of Enabled for every feature.
func (c Config) Effective() Flags {
	var fl Flags
	for f := range fl {
		fl[f] = c.Enabled(Feature(f))
	}
	return fl
}

// Release returns true for optimized builds.
func (c Config) Release() bool {
	return c.Mode == ModeRelease
}

func (c Config) String() string {
	return fmt.Sprintf("%s mode=%s features=[%s]", c.Profile, c.Mode,
		strings.Join(c.Effective().Enabled(), " "))
}
