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
	"github.com/google/blueprint/proptools"

	"sdlbuild/platform"
)

// An override forces a set of features to a value when its condition holds.  Overrides
// are built the same way neverallow rules are:
//
//	force(false, X11).when(notLinux).because("...")
type override struct {
	features []Feature
	value    bool
	cond     func(p platform.Profile, fl Flags) bool
	reason   string
}

func force(value bool, features ...Feature) *override {
	return &override{features: features, value: value}
}

func (o *override) when(cond func(p platform.Profile, fl Flags) bool) *override {
	o.cond = cond
	return o
}

func (o *override) because(reason string) *override {
	o.reason = reason
	return o
}

func (o *override) apply(p platform.Profile, fl Flags, applied []AppliedOverride) (Flags, []AppliedOverride) {
	if !o.cond(p, fl) {
		return fl, applied
	}
	for _, f := range o.features {
		if fl[f] != o.value {
			applied = append(applied, AppliedOverride{Feature: f, From: fl[f], To: o.value, Reason: o.reason})
			fl[f] = o.value
		}
	}
	return fl, applied
}

// platformOverrides are applied in order; later entries see the result of earlier ones.
var platformOverrides = []*override{
	force(false, Joystick).
		when(func(p platform.Profile, _ Flags) bool {
			return p.OsFamily == platform.Windows && p.Abi.Base() == platform.AbiGnu
		}).
		because("the GNU windows sysroot has no Windows.Gaming.Input headers"),

	force(true, Android).
		when(func(p platform.Profile, _ Flags) bool { return p.Abi.Base() == platform.AbiAndroid }).
		because("android abi implies the android scaffold"),

	force(false, X11).
		when(func(p platform.Profile, _ Flags) bool { return p.Abi.Base() == platform.AbiAndroid }).
		because("android has no X11 windowing"),

	force(true, Emscripten).
		when(func(p platform.Profile, _ Flags) bool { return p.Abi == platform.AbiEmscripten }).
		because("emscripten abi implies the emscripten scaffold"),

	force(false, X11, Wayland, KMSDRM).
		when(func(p platform.Profile, _ Flags) bool { return p.OsFamily != platform.Linux }).
		because("unix windowing backends only exist on linux"),

	force(false, X11, OpenGL, Vulkan, Wayland, KMSDRM).
		when(func(_ platform.Profile, fl Flags) bool { return !fl[Video] }).
		because("video is off"),
}

// A dependency is a feature that cannot be built without another feature on families
// where the dependency has no alternative.
type dependency struct {
	feature  Feature
	requires Feature
	applies  func(p platform.Profile) bool
}

var dependencies = []dependency{
	{OpenGL, X11, platform.Profile.DesktopLinux},
	{Vulkan, X11, platform.Profile.DesktopLinux},
}

// Resolve applies defaults and platform overrides to opts and validates the result.  It
// never touches the filesystem, so a rejected configuration cannot leave partial output
// behind.
func Resolve(opts RawOptions, target, host platform.Target) (Config, error) {
	mode := opts.Mode
	if mode == "" {
		mode = ModeDebug
	}
	if mode != ModeDebug && mode != ModeRelease {
		return Config{}, &InvalidModeError{Mode: mode}
	}

	profile := platform.NewProfile(target, host, proptools.Bool(opts.FullNativeBackend))
	fl := opts.applyDefaults(profile.OsFamily)

	var applied []AppliedOverride
	for _, o := range platformOverrides {
		fl, applied = o.apply(profile, fl, applied)
	}

	if err := validate(profile, fl); err != nil {
		return Config{}, err
	}

	return Config{
		Profile:   profile,
		flags:     fl,
		Mode:      mode,
		Overrides: applied,
	}, nil
}

func validate(p platform.Profile, fl Flags) error {
	for _, d := range dependencies {
		if d.applies(p) && fl[d.feature] && !fl[d.requires] {
			return &ConfigurationConflictError{
				Feature:  d.feature,
				Requires: d.requires,
				Family:   p.OsFamily,
			}
		}
	}
	return nil
}
