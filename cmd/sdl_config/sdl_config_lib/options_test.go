// Copyright 2024 Google Inc. All rights reserved.
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

package sdl_config_lib

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sdlbuild/config"
)

func TestParseOptionsFile(t *testing.T) {
	testCases := []struct {
		ext  string
		data string
	}{
		{".toml", `
target = "x86_64-linux-gnu"
mode = "release"

[features]
vulkan = true
x11 = "off"
`},
		{".yaml", `
target: x86_64-linux-gnu
mode: release
features:
  vulkan: true
  x11: "off"
`},
		{".json", `{
  "target": "x86_64-linux-gnu",
  "mode": "release",
  "features": {"vulkan": true, "x11": "off"}
}`},
	}

	for _, tc := range testCases {
		t.Run(tc.ext, func(t *testing.T) {
			file, err := ParseOptionsFile(tc.ext, []byte(tc.data))
			require.NoError(t, err)
			assert.Equal(t, "x86_64-linux-gnu", file.Target)

			var opts config.RawOptions
			require.NoError(t, file.Apply(&opts))
			assert.Equal(t, config.ModeRelease, opts.Mode)

			v, ok := opts.Requested(config.Vulkan)
			assert.True(t, ok)
			assert.True(t, v)
			v, ok = opts.Requested(config.X11)
			assert.True(t, ok)
			assert.False(t, v)
			_, ok = opts.Requested(config.Audio)
			assert.False(t, ok)
		})
	}
}

func TestParseOptionsFileErrors(t *testing.T) {
	testCases := []struct {
		name string
		ext  string
		data string
	}{
		{"unknown feature", ".toml", "[features]\nteleport = true\n"},
		{"bad value", ".toml", "[features]\naudio = \"maybe\"\n"},
		{"numeric value", ".json", `{"features": {"audio": 1}}`},
		{"bad mode", ".yaml", "mode: fast\n"},
		{"unknown key", ".json", `{"colour": "blue"}`},
		{"unknown format", ".ini", "audio=1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseOptionsFile(tc.ext, []byte(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadOptionsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sdl.toml")
	require.NoError(t, os.WriteFile(path, []byte("full_native_backend = true\n"), 0644))

	file, err := LoadOptionsFile(path)
	require.NoError(t, err)
	var opts config.RawOptions
	require.NoError(t, file.Apply(&opts))
	require.NotNil(t, opts.FullNativeBackend)
	assert.True(t, *opts.FullNativeBackend)

	_, err = LoadOptionsFile(filepath.Join(t.TempDir(), "missing.toml"))
	var optionsErr *OptionsError
	require.True(t, errors.As(err, &optionsErr))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestApplyToggles(t *testing.T) {
	var opts config.RawOptions
	require.NoError(t, ApplyToggles(&opts, []string{"vulkan"}, []string{"audio", "X11"}))

	v, ok := opts.Requested(config.Vulkan)
	assert.True(t, ok && v)
	v, ok = opts.Requested(config.X11)
	assert.True(t, ok && !v)

	assert.Error(t, ApplyToggles(&opts, []string{"audio"}, []string{"audio"}))
	assert.Error(t, ApplyToggles(&opts, []string{"teleport"}, nil))
}

func TestStringList(t *testing.T) {
	var l StringList
	require.NoError(t, l.Set("audio, video"))
	require.NoError(t, l.Set("vulkan"))
	assert.Equal(t, StringList{"audio", "video", "vulkan"}, l)
}
