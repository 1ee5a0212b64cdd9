// Copyright 2017 Google Inc. All rights reserved.
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

// Package finder enumerates the native sources of a vendored source tree.
package finder

import (
	"fmt"
	"iter"
	"path"
	"sort"
	"strings"

	"github.com/google/blueprint/pathtools"
)

// DiscoveryIOError is yielded when a directory of the source tree cannot be read.
type DiscoveryIOError struct {
	Path string
	Err  error
}

func (e *DiscoveryIOError) Error() string {
	return fmt.Sprintf("discovering sources in %s: %s", e.Path, e.Err)
}

func (e *DiscoveryIOError) Unwrap() error {
	return e.Err
}

// Discover returns a lazy sequence of the files under root whose extension is in exts.
// Paths are slash separated and relative to root.  Directories are visited depth first
// with entries in sorted order, so every walk of the same tree yields the same sequence.
//
// Nothing is read until the sequence is ranged over, and every range walks the tree
// again.  A directory that cannot be read yields a *DiscoveryIOError and ends the walk.
func Discover(fs pathtools.FileSystem, root string, exts []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		w := walker{fs: fs, root: root, exts: exts, yield: yield}
		w.walk("")
	}
}

type walker struct {
	fs    pathtools.FileSystem
	root  string
	exts  []string
	yield func(string, error) bool
}

// walk visits the directory rel and returns false once the walk has to stop, either
// because of an error or because the consumer stopped ranging.
func (w *walker) walk(rel string) bool {
	dir := path.Join(w.root, rel)
	names, err := w.fs.ReadDirNames(dir)
	if err != nil {
		w.yield("", &DiscoveryIOError{Path: dir, Err: err})
		return false
	}
	sort.Strings(names)

	for _, name := range names {
		relPath := path.Join(rel, name)
		isDir, err := w.fs.IsDir(path.Join(w.root, relPath))
		if err != nil {
			w.yield("", &DiscoveryIOError{Path: path.Join(w.root, relPath), Err: err})
			return false
		}
		if isDir {
			if !w.walk(relPath) {
				return false
			}
			continue
		}
		if w.matches(name) && !w.yield(relPath, nil) {
			return false
		}
	}
	return true
}

func (w *walker) matches(name string) bool {
	for _, ext := range w.exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// Collect drains seq, returning the first error instead of a partial list.
func Collect(seq iter.Seq2[string, error]) ([]string, error) {
	var ret []string
	for p, err := range seq {
		if err != nil {
			return nil, err
		}
		ret = append(ret, p)
	}
	return ret, nil
}
