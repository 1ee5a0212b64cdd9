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

// Package logger implements a logging package designed for command line utilities.
// It is backed by phuslu/log and writes human readable lines to a console writer.
//
// Fatal messages panic; the panic is turned into an exit code by Cleanup, which main
// must defer:
//
//	func main() {
//	    log := logger.New(os.Stderr, false)
//	    defer log.Cleanup()
//	    ...
//	}
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/phuslu/log"
)

// Logger is the interface the pipeline logs through.
type Logger interface {
	// Println and Printf log at info level.
	Println(v ...interface{})
	Printf(format string, v ...interface{})

	// Verbosef and Verboseln only log when verbose output was requested.
	Verbosef(format string, v ...interface{})
	Verboseln(v ...interface{})

	// Fatalf logs at error level and aborts.  The deferred Cleanup exits with status 1.
	Fatalf(format string, v ...interface{})

	// Cleanup closes the output and converts a Fatalf into an exit.
	Cleanup()
}

type fatalLog struct {
	error
}

type stdLogger struct {
	mu      sync.Mutex
	log     log.Logger
	out     io.Writer
	verbose bool
}

var _ Logger = (*stdLogger)(nil)

// New returns a Logger writing to out.  Debug level entries are only written when
// verbose is set.
func New(out io.Writer, verbose bool) *stdLogger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return &stdLogger{
		log: log.Logger{
			Level: level,
			Writer: &log.ConsoleWriter{
				Writer:      out,
				ColorOutput: false,
				QuoteString: true,
			},
		},
		out:     out,
		verbose: verbose,
	}
}

func (s *stdLogger) Println(v ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log.Info().Msg(sprintln(v...))
}

func (s *stdLogger) Printf(format string, v ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log.Info().Msgf(format, v...)
}

func (s *stdLogger) Verbosef(format string, v ...interface{}) {
	if !s.verbose {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log.Debug().Msgf(format, v...)
}

func (s *stdLogger) Verboseln(v ...interface{}) {
	if !s.verbose {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log.Debug().Msg(sprintln(v...))
}

func (s *stdLogger) Fatalf(format string, v ...interface{}) {
	err := fmt.Errorf(format, v...)
	s.mu.Lock()
	s.log.Error().Msg(err.Error())
	s.mu.Unlock()
	panic(fatalLog{err})
}

// Cleanup must be deferred directly by main so that it can recover the panic raised by
// Fatalf.
func (s *stdLogger) Cleanup() {
	if c, ok := s.out.(io.Closer); ok && s.out != os.Stderr && s.out != os.Stdout {
		c.Close()
	}
	if p := recover(); p != nil {
		if _, ok := p.(fatalLog); ok {
			os.Exit(1)
		}
		panic(p)
	}
}

func sprintln(v ...interface{}) string {
	s := fmt.Sprintln(v...)
	return s[:len(s)-1]
}

// Recorder is a Logger that keeps every message, for tests.
type Recorder struct {
	mu       sync.Mutex
	Lines    []string
	Verbose  []string
	Failures []string
}

var _ Logger = (*Recorder)(nil)

func (r *Recorder) Println(v ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Lines = append(r.Lines, sprintln(v...))
}

func (r *Recorder) Printf(format string, v ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Lines = append(r.Lines, fmt.Sprintf(format, v...))
}

func (r *Recorder) Verbosef(format string, v ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Verbose = append(r.Verbose, fmt.Sprintf(format, v...))
}

func (r *Recorder) Verboseln(v ...interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Verbose = append(r.Verbose, sprintln(v...))
}

func (r *Recorder) Fatalf(format string, v ...interface{}) {
	r.mu.Lock()
	r.Failures = append(r.Failures, fmt.Sprintf(format, v...))
	r.mu.Unlock()
	panic(fatalLog{fmt.Errorf(format, v...)})
}

func (r *Recorder) Cleanup() {}
