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

package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestVerbose(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		buf := &bytes.Buffer{}
		log := New(buf, verbose)
		log.Printf("configuring %s", "x86_64-linux-gnu")
		log.Verbosef("excluded %s", "video/windows/SDL_windowsvideo.c")

		out := buf.String()
		if !strings.Contains(out, "configuring x86_64-linux-gnu") {
			t.Errorf("missing info line in %q", out)
		}
		if got := strings.Contains(out, "SDL_windowsvideo.c"); got != verbose {
			t.Errorf("verbose=%t but verbose line written=%t: %q", verbose, got, out)
		}
	}
}

func TestPanic(t *testing.T) {
	if !recoverFatal(func() { New(&bytes.Buffer{}, false).Fatalf("bad %d", 1) }) {
		t.Error("Fatalf did not panic with a fatal log")
	}
	if !recoverFatal(func() { (&Recorder{}).Fatalf("bad") }) {
		t.Error("Recorder.Fatalf did not panic with a fatal log")
	}
}

func recoverFatal(f func()) (fatal bool) {
	defer func() {
		_, fatal = recover().(fatalLog)
	}()
	f()
	return false
}

func TestFatalfWritesError(t *testing.T) {
	buf := &bytes.Buffer{}
	recoverFatal(func() { New(buf, false).Fatalf("target %q needs a host", "native") })
	if !strings.Contains(buf.String(), `target "native" needs a host`) {
		t.Errorf("error not logged: %q", buf.String())
	}
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.Println("a", "b")
	r.Printf("%d", 1)
	r.Verboseln("v")
	if len(r.Lines) != 2 || r.Lines[0] != "a b" || r.Lines[1] != "1" {
		t.Errorf("unexpected lines %q", r.Lines)
	}
	if len(r.Verbose) != 1 {
		t.Errorf("unexpected verbose lines %q", r.Verbose)
	}
}
