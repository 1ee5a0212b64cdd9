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

package platform

import (
	"reflect"
	"testing"
)

var linuxHost = Target{Arch: "x86_64", Os: Linux, OsName: "linux", Abi: AbiGnu}

func TestParseTarget(t *testing.T) {
	testCases := []struct {
		name   string
		triple string
		want   Target
		err    bool
	}{
		{
			name:   "linux gnu",
			triple: "x86_64-linux-gnu",
			want:   Target{Arch: "x86_64", Os: Linux, OsName: "linux", Abi: AbiGnu},
		},
		{
			name:   "windows msvc",
			triple: "x86_64-windows-msvc",
			want:   Target{Arch: "x86_64", Os: Windows, OsName: "windows", Abi: AbiMsvc},
		},
		{
			name:   "windows defaults to gnu",
			triple: "x86_64-windows",
			want:   Target{Arch: "x86_64", Os: Windows, OsName: "windows", Abi: AbiGnu},
		},
		{
			name:   "arm hard float",
			triple: "arm-linux-gnueabihf",
			want:   Target{Arch: "arm", Os: Linux, OsName: "linux", Abi: "gnueabihf"},
		},
		{
			name:   "musl soft float",
			triple: "arm-linux-musleabi",
			want:   Target{Arch: "arm", Os: Linux, OsName: "linux", Abi: "musleabi"},
		},
		{
			name:   "bare eabihf",
			triple: "arm-freestanding-eabihf",
			want:   Target{Arch: "arm", Os: Other, OsName: "freestanding", Abi: AbiEabihf},
		},
		{
			name:   "macos minimum version",
			triple: "aarch64-macos.13-none",
			want:   Target{Arch: "aarch64", Os: MacOS, OsName: "macos.13", Abi: AbiNone},
		},
		{
			name:   "macos version range",
			triple: "x86_64-macos.11.0...13.3",
			want:   Target{Arch: "x86_64", Os: MacOS, OsName: "macos.11.0...13.3"},
		},
		{
			name:   "macos alias",
			triple: "aarch64-darwin",
			want:   Target{Arch: "aarch64", Os: MacOS, OsName: "darwin"},
		},
		{
			name:   "android",
			triple: "aarch64-linux-android",
			want:   Target{Arch: "aarch64", Os: Linux, OsName: "linux", Abi: AbiAndroid},
		},
		{
			name:   "emscripten in os position",
			triple: "wasm32-emscripten",
			want:   Target{Arch: "wasm32", Os: Other, OsName: "emscripten", Abi: AbiEmscripten},
		},
		{
			name:   "uppercase and whitespace",
			triple: " X86_64-Linux-GNU ",
			want:   Target{Arch: "x86_64", Os: Linux, OsName: "linux", Abi: AbiGnu},
		},
		{
			name:   "native",
			triple: "native",
			want:   linuxHost,
		},
		{
			name:   "missing os",
			triple: "x86_64",
			err:    true,
		},
		{
			name:   "unknown abi",
			triple: "x86_64-linux-glibc",
			err:    true,
		},
		{
			name:   "unknown float abi",
			triple: "arm-linux-glibceabihf",
			err:    true,
		},
		{
			name:   "too many parts",
			triple: "x86_64-pc-linux-gnu",
			err:    true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTarget(tc.triple, linuxHost)
			if tc.err {
				if err == nil {
					t.Fatalf("expected error for %q, got %#v", tc.triple, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("expected %#v, got %#v", tc.want, got)
			}
		})
	}
}

func TestParseTargetNativeWithoutHost(t *testing.T) {
	if _, err := ParseTarget("native", Target{}); err == nil {
		t.Error("expected an error when native has no host descriptor")
	}
}

func TestTargetString(t *testing.T) {
	for triple, want := range map[string]string{
		"x86_64-linux-gnu":      "x86_64-linux-gnu",
		"wasm32-emscripten":     "wasm32-emscripten",
		"aarch64-macos":         "aarch64-macos",
		"aarch64-macos-none":    "aarch64-macos-none",
		"x86_64-windows":        "x86_64-windows-gnu",
		"arm-linux-musleabihf":  "arm-linux-musleabihf",
		"aarch64-macos.13-none": "aarch64-macos.13-none",
	} {
		target, err := ParseTarget(triple, linuxHost)
		if err != nil {
			t.Fatal(err)
		}
		if got := target.String(); got != want {
			t.Errorf("%s: expected %q, got %q", triple, want, got)
		}
	}
}

func TestHostTarget(t *testing.T) {
	for _, tc := range []struct {
		goos, goarch string
		want         Target
	}{
		{"darwin", "arm64", Target{Arch: "aarch64", Os: MacOS, OsName: "macos"}},
		{"windows", "amd64", Target{Arch: "x86_64", Os: Windows, OsName: "windows", Abi: AbiGnu}},
	} {
		if got := HostTarget(tc.goos, tc.goarch); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s/%s: expected %#v, got %#v", tc.goos, tc.goarch, tc.want, got)
		}
	}
}

func TestAbiBase(t *testing.T) {
	for abi, want := range map[Abi]Abi{
		"gnueabihf":   AbiGnu,
		"musleabi":    AbiMusl,
		"androideabi": AbiAndroid,
		AbiEabihf:     AbiEabihf,
		AbiEabi:       AbiEabi,
		AbiMsvc:       AbiMsvc,
	} {
		if got := abi.Base(); got != want {
			t.Errorf("%s: expected base %q, got %q", abi, want, got)
		}
	}
	if !Abi("androideabi").Mobile() {
		t.Error("androideabi should be mobile")
	}
}

func TestNewProfileCrossCompile(t *testing.T) {
	macos := Target{Arch: "aarch64", Os: MacOS, OsName: "macos", Abi: AbiNone}
	macHost := Target{Arch: "aarch64", Os: MacOS, OsName: "macos"}

	testCases := []struct {
		name       string
		target     Target
		host       Target
		fullNative bool
		want       bool
	}{
		{"macos from linux", macos, linuxHost, false, true},
		{"macos from linux with native backend", macos, linuxHost, true, false},
		{"macos from macos", macos, macHost, false, false},
		{"linux from macos", linuxHost, macHost, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewProfile(tc.target, tc.host, tc.fullNative)
			if p.IsCrossCompile != tc.want {
				t.Errorf("expected IsCrossCompile=%t, got %t", tc.want, p.IsCrossCompile)
			}
			if p.OsFamily != tc.target.Os || p.HostOsFamily != tc.host.Os {
				t.Errorf("families not copied: %#v", p)
			}
		})
	}
}

func TestOsFamilyText(t *testing.T) {
	for _, family := range []OsFamily{Other, Linux, Windows, MacOS} {
		text, err := family.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got OsFamily
		if err := got.UnmarshalText(text); err != nil {
			t.Fatal(err)
		}
		if got != family {
			t.Errorf("expected %s, got %s", family, got)
		}
	}

	var f OsFamily
	if err := f.UnmarshalText([]byte("beos")); err == nil {
		t.Error("expected error for unknown family")
	}
}

func TestSourceExtensions(t *testing.T) {
	if got := MacOS.SourceExtensions(); !reflect.DeepEqual(got, []string{".c", ".m"}) {
		t.Errorf("unexpected macos extensions %q", got)
	}
	if got := Linux.SourceExtensions(); !reflect.DeepEqual(got, []string{".c"}) {
		t.Errorf("unexpected linux extensions %q", got)
	}
}
