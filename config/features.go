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
	"strings"

	"github.com/google/blueprint/proptools"

	"sdlbuild/platform"
)

// Feature is a named boolean toggle: either a subsystem of the vendored library, the
// assertions switch, or the scaffolding for a secondary platform.
type Feature int

const (
	Audio Feature = iota
	Video
	OpenGL
	X11
	Vulkan
	Joystick
	Haptic
	Sensor
	HIDAPI
	Locale
	Misc
	Threads
	Timer
	LoadSO
	Filesystem
	Events
	Atomic
	Assertions

	// Secondary platform scaffolds.
	Android
	Emscripten
	Wayland
	KMSDRM

	numFeatures
)

var featureNames = [numFeatures]string{
	Audio:      "audio",
	Video:      "video",
	OpenGL:     "opengl",
	X11:        "x11",
	Vulkan:     "vulkan",
	Joystick:   "joystick",
	Haptic:     "haptic",
	Sensor:     "sensor",
	HIDAPI:     "hidapi",
	Locale:     "locale",
	Misc:       "misc",
	Threads:    "threads",
	Timer:      "timer",
	LoadSO:     "loadso",
	Filesystem: "filesystem",
	Events:     "events",
	Atomic:     "atomic",
	Assertions: "assertions",
	Android:    "android",
	Emscripten: "emscripten",
	Wayland:    "wayland",
	KMSDRM:     "kmsdrm",
}

// Scaffolds lists the secondary platform toggles.
var Scaffolds = []Feature{Android, Emscripten, Wayland, KMSDRM}

func (f Feature) String() string {
	if f < 0 || f >= numFeatures {
		return fmt.Sprintf("Feature(%d)", int(f))
	}
	return featureNames[f]
}

// Features returns every known Feature in declaration order.
func Features() []Feature {
	ret := make([]Feature, numFeatures)
	for i := range ret {
		ret[i] = Feature(i)
	}
	return ret
}

// FeatureByName returns the Feature with the given name.
func FeatureByName(name string) (Feature, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f, n := range featureNames {
		if n == name {
			return Feature(f), nil
		}
	}
	return 0, fmt.Errorf("unknown feature %q, expected one of %q", name, featureNames[:])
}

// Flags holds one value per Feature.  It is an array so that copies never share state.
type Flags [numFeatures]bool

// Get returns the value of f.
func (fl Flags) Get(f Feature) bool {
	return fl[f]
}

// Enabled returns the names of the features that are on, in declaration order.
func (fl Flags) Enabled() []string {
	var ret []string
	for f, on := range fl {
		if on {
			ret = append(ret, Feature(f).String())
		}
	}
	return ret
}

// Build modes, matching the --mode values of the original build script.
const (
	ModeDebug   = "debug"
	ModeRelease = "release"
)

// RawOptions are the caller supplied toggles.  Every field is optional; a nil value
// means "use the documented default".
type RawOptions struct {
	Features [numFeatures]*bool

	// FullNativeBackend disables cross stub mode for macOS targets built elsewhere,
	// for hosts that carry a complete macOS SDK.
	FullNativeBackend *bool

	// Mode is ModeDebug or ModeRelease; empty means ModeDebug.
	Mode string
}

// Set records an explicit request for f.
func (o *RawOptions) Set(f Feature, v bool) {
	o.Features[f] = proptools.BoolPtr(v)
}

// Requested returns the explicit request for f, if any.
func (o RawOptions) Requested(f Feature) (value bool, ok bool) {
	if o.Features[f] == nil {
		return false, false
	}
	return *o.Features[f], true
}

// DefaultFlags returns the documented defaults for a target family.
func DefaultFlags(family platform.OsFamily) Flags {
	var fl Flags
	for _, s := range Subsystems {
		fl[s.Feature] = true
	}
	// Vulkan is the opt-in GPU path.
	fl[Vulkan] = false
	fl[X11] = family == platform.Linux
	fl[Assertions] = false
	for _, f := range Scaffolds {
		fl[f] = false
	}
	return fl
}

// applyDefaults merges the explicit requests in o over the defaults for family.
func (o RawOptions) applyDefaults(family platform.OsFamily) Flags {
	fl := DefaultFlags(family)
	for f := range fl {
		fl[f] = proptools.BoolDefault(o.Features[f], fl[f])
	}
	return fl
}

// ParseBool interprets an option value the way build config variables are read:
// "1", "y", "yes", "on" and "true" are true, "0", "n", "no", "off" and "false" are
// false, regardless of case.
func ParseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "y", "yes", "on", "true":
		return true, nil
	case "0", "n", "no", "off", "false":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean value %q", value)
}
