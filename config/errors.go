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
	"fmt"

	"sdlbuild/platform"
)

// ConfigurationConflictError is returned by Resolve when a requested feature depends on
// another feature that is off, on a family where nothing else can stand in for it.
type ConfigurationConflictError struct {
	Feature  Feature
	Requires Feature
	Family   platform.OsFamily
}

func (e *ConfigurationConflictError) Error() string {
	return fmt.Sprintf("incompatible option combination: %s=true requires %s=true on %s",
		e.Feature, e.Requires, e.Family)
}

// InvalidModeError is returned by Resolve for a build mode other than debug or release.
type InvalidModeError struct {
	Mode string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid build mode %q, expected %q or %q", e.Mode, ModeDebug, ModeRelease)
}
