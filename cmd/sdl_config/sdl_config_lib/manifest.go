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
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	cc_config "sdlbuild/cc/config"
	"sdlbuild/config"
	"sdlbuild/exclusion"
)

func stringValues(list []string) []interface{} {
	ret := make([]interface{}, 0, len(list))
	for _, s := range list {
		ret = append(ret, s)
	}
	return ret
}

// NewManifest describes r for the consumer of the build inputs.  Sources are listed
// relative to the source directory, and every excluded file carries the reason of the
// rule that removed it.
func NewManifest(r *Result) (*structpb.Struct, error) {
	cfg := r.Config
	tc := cc_config.FindToolchain(cfg.Profile.Target)

	features := map[string]interface{}{}
	for _, f := range config.Features() {
		features[f.String()] = cfg.Enabled(f)
	}

	var overrides []interface{}
	for _, o := range cfg.Overrides {
		overrides = append(overrides, map[string]interface{}{
			"feature": o.Feature.String(),
			"from":    o.From,
			"to":      o.To,
			"reason":  o.Reason,
		})
	}

	var excluded []interface{}
	for _, e := range r.Excluded {
		excluded = append(excluded, map[string]interface{}{
			"path":    e.Path,
			"pattern": e.Rule.Pattern,
			"reason":  e.Rule.Reason,
		})
	}

	counts := map[string]interface{}{}
	for _, s := range config.Subsystems {
		counts[s.Feature.String()] = 0
	}
	for _, src := range r.Sources {
		for _, f := range exclusion.Tags(src) {
			counts[f.String()] = counts[f.String()].(int) + 1
		}
	}

	var stubs []interface{}
	for _, s := range r.Stubs {
		stubs = append(stubs, map[string]interface{}{
			"name":     s.Name,
			"replaces": stringValues(s.Replaces),
		})
	}

	m, err := structpb.NewStruct(map[string]interface{}{
		"target":            cfg.Profile.Target.String(),
		"family":            cfg.Family().String(),
		"mode":              cfg.Mode,
		"cross_compile":     cfg.CrossCompile(),
		"toolchain":         tc.Name(),
		"object_suffix":     tc.ObjectSuffix(),
		"executable_suffix": tc.ExecutableSuffix(),
		"features":          features,
		"overrides":         overrides,
		"source_dir":        r.SourceDir,
		"sources":           stringValues(r.Sources),
		"excluded":          excluded,
		"subsystem_sources": counts,
		"cflags":            stringValues(r.Cflags),
		"ldflags":           stringValues(r.Ldflags),
		"toolchain_flags":   stringValues(r.ToolchainFlags),
		"include_dirs":      stringValues(r.IncludeDirs),
		"header":            r.Header.Name,
		"stubs":             stubs,
	})
	if err != nil {
		return nil, fmt.Errorf("building manifest: %w", err)
	}
	return m, nil
}
