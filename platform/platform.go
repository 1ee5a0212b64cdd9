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

// Package platform describes the machine a vendored library is being configured for.
//
// A Target is parsed from a zig style triple ("x86_64-linux-gnu", "aarch64-macos-none",
// "wasm32-emscripten"). A Profile combines the target with the build host and records
// whether the build is a cross build that has to fall back to stubs.
package platform

import (
	"encoding"
	"fmt"
	"strings"
)

// OsFamily is the coarse operating system category that selects a whole branch of
// exclusion and flag rules.
type OsFamily int

const (
	// Other is used for every target that is not one of the desktop families, for
	// example emscripten or bare metal.
	Other OsFamily = iota
	// Linux is the OS family for Linux kernels, including Android.
	Linux
	// Windows is the OS family for Windows hosts, regardless of ABI.
	Windows
	// MacOS is the OS family for Apple desktop machines.
	MacOS
)

var familyNames = map[OsFamily]string{
	Other:   "other",
	Linux:   "linux",
	Windows: "windows",
	MacOS:   "macos",
}

// osAliases maps triple OS spellings to families.  Anything missing is Other.
var osAliases = map[string]OsFamily{
	"linux":   Linux,
	"windows": Windows,
	"win32":   Windows,
	"macos":   MacOS,
	"macosx":  MacOS,
	"darwin":  MacOS,
}

// String returns the name of the OsFamily.
func (f OsFamily) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	panic(fmt.Errorf("unknown os family %d", int(f)))
}

// MarshalText allows an OsFamily to be serialized through any encoder that supports
// encoding.TextMarshaler.
func (f OsFamily) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

var _ encoding.TextMarshaler = OsFamily(0)

// UnmarshalText allows an OsFamily to be deserialized through any decoder that supports
// encoding.TextUnmarshaler.
func (f *OsFamily) UnmarshalText(text []byte) error {
	for family, name := range familyNames {
		if name == string(text) {
			*f = family
			return nil
		}
	}
	return fmt.Errorf("unknown os family %q", text)
}

var _ encoding.TextUnmarshaler = (*OsFamily)(nil)

// SourceExtensions returns the native source extensions compiled for the family.
func (f OsFamily) SourceExtensions() []string {
	if f == MacOS {
		return []string{".c", ".m"}
	}
	return []string{".c"}
}

// Abi is the environment part of a target triple.
type Abi string

const (
	NoAbi         Abi = ""
	AbiGnu        Abi = "gnu"
	AbiMusl       Abi = "musl"
	AbiMsvc       Abi = "msvc"
	AbiAndroid    Abi = "android"
	AbiEmscripten Abi = "emscripten"
	AbiNone       Abi = "none"
	AbiEabi       Abi = "eabi"
	AbiEabihf     Abi = "eabihf"
)

var knownAbis = []Abi{AbiGnu, AbiMusl, AbiMsvc, AbiAndroid, AbiEmscripten, AbiNone, AbiEabi, AbiEabihf}

// Base strips the 32-bit ARM float ABI suffix, so "gnueabihf" is a "gnu" ABI and
// "androideabi" an "android" one.  Bare "eabi" and "eabihf" are their own base.
func (a Abi) Base() Abi {
	for _, suffix := range []string{string(AbiEabihf), string(AbiEabi)} {
		if s := string(a); len(s) > len(suffix) && strings.HasSuffix(s, suffix) {
			return Abi(strings.TrimSuffix(s, suffix))
		}
	}
	return a
}

// Mobile returns true for ABIs that put a mobile platform on top of a desktop kernel.
func (a Abi) Mobile() bool {
	return a.Base() == AbiAndroid
}

func (a Abi) String() string {
	return string(a)
}

// Target specifies the machine the library is being configured for.
type Target struct {
	// Arch is the CPU part of the triple, kept verbatim ("x86_64", "aarch64").
	Arch string
	// Os is the family the triple's OS part belongs to.
	Os OsFamily
	// OsName is the OS part of the triple as written, after lowercasing.
	OsName string
	// Abi is the ABI part of the triple, or NoAbi if it was omitted.
	Abi Abi
}

// String returns the canonical triple for the target.
func (t Target) String() string {
	s := t.Arch + "-" + t.OsName
	if t.Abi != NoAbi && string(t.Abi) != t.OsName {
		s += "-" + string(t.Abi)
	}
	return s
}

// Native is the triple that means "whatever the host is".
const Native = "native"

// ParseTarget converts a triple into a Target.  The special triple "native" resolves to
// host, which the caller obtains from the machine running the build.
func ParseTarget(triple string, host Target) (Target, error) {
	triple = strings.ToLower(strings.TrimSpace(triple))
	if triple == "" || triple == Native {
		if host.Arch == "" {
			return Target{}, fmt.Errorf("target %q needs a host descriptor", Native)
		}
		return host, nil
	}

	parts := strings.Split(triple, "-")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return Target{}, fmt.Errorf("malformed target triple %q, expected arch-os[-abi]", triple)
	}
	if len(parts) > 3 {
		return Target{}, fmt.Errorf("malformed target triple %q, too many components", triple)
	}

	// A minimum OS version may follow the OS name: "aarch64-macos.13-none".
	osName, _, _ := strings.Cut(parts[1], ".")

	t := Target{
		Arch:   parts[0],
		OsName: parts[1],
		Os:     osAliases[osName],
	}

	// "wasm32-emscripten" puts the ABI where the OS usually goes.
	if Abi(osName) == AbiEmscripten {
		t.Abi = AbiEmscripten
	}

	if len(parts) == 3 {
		abi := Abi(parts[2])
		if !abiKnown(abi) {
			return Target{}, fmt.Errorf("unknown abi %q in target %q, expected one of %q", abi, triple, knownAbis)
		}
		t.Abi = abi
	}

	t.Abi = defaultAbi(t.Os, t.Abi)
	return t, nil
}

func abiKnown(abi Abi) bool {
	for _, a := range knownAbis {
		if a == abi.Base() {
			return true
		}
	}
	return false
}

// defaultAbi fills in the ABI zig picks when a triple leaves it out.  Windows
// defaults to the mingw GNU ABI.
func defaultAbi(os OsFamily, abi Abi) Abi {
	if abi == NoAbi && os == Windows {
		return AbiGnu
	}
	return abi
}

// HostTarget builds the host descriptor from Go's GOOS/GOARCH names.
func HostTarget(goos, goarch string) Target {
	arch := goarch
	switch goarch {
	case "amd64":
		arch = "x86_64"
	case "arm64":
		arch = "aarch64"
	case "386":
		arch = "x86"
	}

	osName := goos
	if goos == "darwin" {
		osName = "macos"
	}

	os := osAliases[osName]
	return Target{
		Arch:   arch,
		OsName: osName,
		Os:     os,
		Abi:    defaultAbi(os, NoAbi),
	}
}

// Profile is the immutable description of a single configuration run.
type Profile struct {
	Target Target

	// OsFamily and Abi are copied from Target for convenience.
	OsFamily OsFamily
	Abi      Abi

	// HostOsFamily is the family of the machine running the build.
	HostOsFamily OsFamily

	// IsCrossCompile is true when the target needs a native SDK the host does not have.
	// Only macOS targets built from a non-macOS host without the full native backend
	// qualify; everything else is considered buildable with the host toolchain.
	IsCrossCompile bool
}

// NewProfile derives the Profile for target built on host.  fullNativeBackend is the
// escape hatch for hosts that do carry a macOS SDK.
func NewProfile(target, host Target, fullNativeBackend bool) Profile {
	return Profile{
		Target:         target,
		OsFamily:       target.Os,
		Abi:            target.Abi,
		HostOsFamily:   host.Os,
		IsCrossCompile: target.Os == MacOS && host.Os != MacOS && !fullNativeBackend,
	}
}

// DesktopLinux returns true for Linux targets that are not a mobile platform.
func (p Profile) DesktopLinux() bool {
	return p.OsFamily == Linux && !p.Abi.Mobile()
}

func (p Profile) String() string {
	s := fmt.Sprintf("%s (%s on %s host)", p.Target, p.OsFamily, p.HostOsFamily)
	if p.IsCrossCompile {
		s += " [cross stub mode]"
	}
	return s
}
