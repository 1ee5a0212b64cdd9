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
	"path/filepath"

	"github.com/google/blueprint/pathtools"

	"sdlbuild/cc"
	"sdlbuild/config"
	"sdlbuild/exclusion"
	"sdlbuild/finder"
	"sdlbuild/platform"
	"sdlbuild/ui/logger"
)

// Directory names below the output directory.
const (
	IncludeDir = "include"
	StubsDir   = "stubs"
)

// Params describe one configuration run.
type Params struct {
	// Target is a target triple, or platform.Native.
	Target string

	// Host is the machine running the build.
	Host platform.Target

	Options config.RawOptions

	// SourceRoot is the vendored SDL checkout.  Sources are discovered below
	// SourceRoot/src and the vendor headers live in SourceRoot/include.
	SourceRoot string

	// OutDir receives the generated header, stubs and manifest.
	OutDir string

	// Fs is used for discovery.  Nil means the real filesystem.
	Fs pathtools.FileSystem
}

// Result is everything a compile step needs to build the vendored library.
type Result struct {
	Config config.Config

	// Sources are relative to SourceDir, in discovery order.
	SourceDir string
	Sources   []string
	Excluded  []exclusion.Exclusion

	Rules          []exclusion.Rule
	Cflags         []string
	Ldflags        []string
	ToolchainFlags []string

	Header cc.Header
	Stubs  []cc.StubModule

	// IncludeDirs puts the generated header's directory ahead of the vendor's so that
	// the generated header shadows the vendor header of the same name.
	IncludeDirs []string

	OutDir string
}

// Run resolves the configuration and synthesizes the build inputs.  The configuration is
// validated before anything is read from the filesystem, so an invalid combination
// fails without side effects.
func Run(params Params, log logger.Logger) (*Result, error) {
	target, err := platform.ParseTarget(params.Target, params.Host)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Resolve(params.Options, target, params.Host)
	if err != nil {
		return nil, err
	}
	log.Printf("Configuring SDL for %s", cfg.Profile)
	for _, o := range cfg.Overrides {
		log.Printf("Override: %s", o)
	}

	fs := params.Fs
	if fs == nil {
		fs = pathtools.OsFs
	}

	rules := exclusion.Compile(cfg)
	srcDir := filepath.Join(params.SourceRoot, "src")
	filtered, err := exclusion.FilterSeq(
		finder.Discover(fs, srcDir, cfg.Family().SourceExtensions()),
		rules, cfg.CrossCompile())
	if err != nil {
		return nil, err
	}
	for _, e := range filtered.Excluded {
		log.Verbosef("Excluded %s: %s", e.Path, e.Rule.Reason)
	}

	header, err := cc.ConfigHeader(cfg)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Config:         cfg,
		SourceDir:      srcDir,
		Sources:        filtered.Sources,
		Excluded:       filtered.Excluded,
		Rules:          rules,
		Cflags:         cc.CompileFlags(cfg),
		Ldflags:        cc.LinkFlags(cfg),
		ToolchainFlags: cc.ToolchainFlags(cfg),
		Header:         header,
		Stubs:          cc.Stubs(cfg, rules),
		IncludeDirs: []string{
			filepath.Join(params.OutDir, IncludeDir),
			filepath.Join(params.SourceRoot, "include"),
		},
		OutDir: params.OutDir,
	}

	log.Printf("%d sources, %d excluded, %d stub modules",
		len(result.Sources), len(result.Excluded), len(result.Stubs))
	return result, nil
}

// HeaderPath returns where Write puts the config header.
func (r *Result) HeaderPath() string {
	return filepath.Join(r.OutDir, IncludeDir, r.Header.Name)
}

// StubPaths returns where Write puts the stub modules, in the order of r.Stubs.
func (r *Result) StubPaths() []string {
	var ret []string
	for _, s := range r.Stubs {
		ret = append(ret, filepath.Join(r.OutDir, StubsDir, s.Name))
	}
	return ret
}

// A SynthesisWriteError is returned when a generated artifact cannot be written.
type SynthesisWriteError struct {
	Path string
	Err  error
}

func (e *SynthesisWriteError) Error() string {
	return fmt.Sprintf("writing %s: %s", e.Path, e.Err)
}

func (e *SynthesisWriteError) Unwrap() error {
	return e.Err
}

// Write writes the header and stub modules of r below r.OutDir, followed by the
// manifest at manifestPath if it is not empty.  Files whose contents did not change are
// left untouched.
func Write(r *Result, manifestPath string, log logger.Logger) error {
	write := func(path string, data []byte) error {
		if err := mkdirAll(filepath.Dir(path)); err != nil {
			return &SynthesisWriteError{Path: path, Err: err}
		}
		if err := pathtools.WriteFileIfChanged(path, data, 0644); err != nil {
			return &SynthesisWriteError{Path: path, Err: err}
		}
		log.Printf("Wrote %s", path)
		return nil
	}

	if err := write(r.HeaderPath(), []byte(r.Header.Text)); err != nil {
		return err
	}
	for i, path := range r.StubPaths() {
		if err := write(path, []byte(r.Stubs[i].Text)); err != nil {
			return err
		}
	}

	if manifestPath == "" {
		return nil
	}
	manifest, err := NewManifest(r)
	if err != nil {
		return err
	}
	data, err := MarshalMessage(manifestPath, manifest)
	if err != nil {
		return &SynthesisWriteError{Path: manifestPath, Err: err}
	}
	return write(manifestPath, data)
}
