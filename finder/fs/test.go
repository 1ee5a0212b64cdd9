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

// Package fs provides a pathtools.FileSystem for tests that records directory reads and
// can be told to fail them.
package fs

import (
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"github.com/google/blueprint/pathtools"
)

// RecordingFs wraps a mock filesystem.  Every ReadDirNames and IsDir call is recorded,
// and reads of selected directories can be made to fail.
type RecordingFs struct {
	pathtools.FileSystem

	ReadDirCalls []string
	StatCalls    []string

	readErrs map[string]error
}

// NewRecordingFs returns a RecordingFs over pathtools.MockFs(files).
func NewRecordingFs(files map[string][]byte) *RecordingFs {
	return &RecordingFs{
		FileSystem: pathtools.MockFs(files),
		readErrs:   make(map[string]error),
	}
}

func (r *RecordingFs) ReadDirNames(name string) ([]string, error) {
	name = filepath.Clean(name)
	r.ReadDirCalls = append(r.ReadDirCalls, name)
	if err, ok := r.readErrs[name]; ok {
		return nil, err
	}
	return r.FileSystem.ReadDirNames(name)
}

func (r *RecordingFs) IsDir(name string) (bool, error) {
	r.StatCalls = append(r.StatCalls, filepath.Clean(name))
	return r.FileSystem.IsDir(name)
}

// Reads returns the number of directory reads and stats performed so far.
func (r *RecordingFs) Reads() int {
	return len(r.ReadDirCalls) + len(r.StatCalls)
}

// Reset forgets the recorded calls.
func (r *RecordingFs) Reset() {
	r.ReadDirCalls = nil
	r.StatCalls = nil
}

// Create builds a file map with a placeholder body for every path.
func Create(paths ...string) map[string][]byte {
	files := make(map[string][]byte, len(paths))
	for _, p := range paths {
		files[p] = []byte("hi")
	}
	return files
}

func SetReadErr(t *testing.T, path string, readErr error, filesystem *RecordingFs) {
	t.Helper()
	isDir, err := filesystem.FileSystem.IsDir(path)
	if err != nil {
		t.Fatal(err.Error())
	}
	if !isDir {
		t.Fatalf("%s is not a directory", path)
	}
	filesystem.readErrs[filepath.Clean(path)] = readErr
}

func AssertSameResponse(t *testing.T, actual []string, expected []string) {
	t.Helper()
	if !reflect.DeepEqual(actual, expected) {
		t.Fatalf("Expected Discover to return these %v paths:\n  %v,\ninstead returned these %v paths:  %v\n",
			len(expected), expected, len(actual), actual)
	}
}

func AssertSameReadDirCalls(t *testing.T, actual []string, expected []string) {
	t.Helper()
	actual = append([]string(nil), actual...)
	expected = append([]string(nil), expected...)
	sort.Strings(actual)
	sort.Strings(expected)

	if !reflect.DeepEqual(actual, expected) {
		t.Fatalf("Discover made incorrect ReadDir calls.\n"+
			"Actual:\n"+
			"%v\n"+
			"Expected:\n"+
			"%v\n"+
			"\n",
			actual, expected)
	}
}
