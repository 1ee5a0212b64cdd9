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

// sdl_config resolves a build configuration for a vendored SDL checkout and writes the
// generated config header, link stubs and a manifest of sources and flags.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/google/blueprint/proptools"

	"sdlbuild/cc"
	lib "sdlbuild/cmd/sdl_config/sdl_config_lib"
	"sdlbuild/config"
	"sdlbuild/platform"
	"sdlbuild/ui/logger"
)

func main() {
	var target, mode, optionsPath, sourceRoot, outDir, manifest string
	var fullNative, verbose, printFlags bool
	var enable, disable lib.StringList

	flag.StringVar(&target, "target", platform.Native, "target triple, arch-os[-abi]")
	flag.StringVar(&mode, "mode", "", "build mode, debug or release")
	flag.StringVar(&optionsPath, "options", "", "options file (.toml, .yaml or .json)")
	flag.StringVar(&sourceRoot, "sdl_root", "vendor/SDL", "path to the vendored SDL checkout")
	flag.StringVar(&outDir, "out_dir", "out/sdl", "directory for the generated files")
	flag.StringVar(&manifest, "manifest", "", "manifest path; the extension picks .pb, .textproto or .json")
	flag.BoolVar(&fullNative, "full_native", false, "build macOS targets with the native backend even from another host")
	flag.BoolVar(&verbose, "v", false, "log every excluded file")
	flag.BoolVar(&printFlags, "print_flags", false, "print the zig cc command line, without sources, to stdout")
	flag.Var(&enable, "enable", "features to turn on. may be repeated or comma separated")
	flag.Var(&disable, "disable", "features to turn off. may be repeated or comma separated")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags]\n\nfeatures: %s\n\n",
			os.Args[0], strings.Join(featureNames(), ", "))
		flag.PrintDefaults()
	}
	flag.Parse()

	log := logger.New(os.Stderr, verbose)
	defer log.Cleanup()

	var opts config.RawOptions
	if optionsPath != "" {
		file, err := lib.LoadOptionsFile(optionsPath)
		if err != nil {
			log.Fatalf("%s", err)
		}
		if err := file.Apply(&opts); err != nil {
			log.Fatalf("%s: %s", optionsPath, err)
		}
		if file.Target != "" && !isFlagSet("target") {
			target = file.Target
		}
	}

	// The command line wins over the options file.
	if mode != "" {
		opts.Mode = mode
	}
	if isFlagSet("full_native") {
		opts.FullNativeBackend = proptools.BoolPtr(fullNative)
	}
	if err := lib.ApplyToggles(&opts, enable, disable); err != nil {
		log.Fatalf("%s", err)
	}

	result, err := lib.Run(lib.Params{
		Target:     target,
		Host:       platform.HostTarget(runtime.GOOS, runtime.GOARCH),
		Options:    opts,
		SourceRoot: sourceRoot,
		OutDir:     outDir,
	}, log)
	if err != nil {
		log.Fatalf("%s", err)
	}

	if err := lib.Write(result, manifest, log); err != nil {
		log.Fatalf("%s", err)
	}

	if printFlags {
		fmt.Println(cc.CommandLine(result.ToolchainFlags, result.IncludeDirs, result.Cflags, result.Ldflags))
	}
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func featureNames() []string {
	var ret []string
	for _, f := range config.Features() {
		ret = append(ret, f.String())
	}
	return ret
}
