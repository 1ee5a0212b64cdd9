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
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
)

// StringList is a flag.Value that accumulates comma separated values across repeated
// uses of the flag.
type StringList []string

func (l *StringList) Set(v string) error {
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			*l = append(*l, s)
		}
	}
	return nil
}

func (l *StringList) String() string {
	return fmt.Sprintf("%v", *l)
}

// Marshal a message for the file at path.
//
// The encoding is picked from the extension: ".json", ".pb" (or ".protobuf" and
// ".binaryproto") and ".textproto".  Binary output is deterministic so that an
// unchanged manifest is never rewritten.
func MarshalMessage(path string, message proto.Message) ([]byte, error) {
	return MarshalFormattedMessage(strings.TrimPrefix(filepath.Ext(path), "."), message)
}

// Marshal a message using the given format.
func MarshalFormattedMessage(format string, message proto.Message) ([]byte, error) {
	switch format {
	case "json":
		return protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(message)
	case "pb", "binaryproto", "protobuf":
		return proto.MarshalOptions{Deterministic: true}.Marshal(message)
	case "textproto":
		return prototext.MarshalOptions{Multiline: true}.Marshal(message)
	}
	return nil, fmt.Errorf("unknown message format %q", format)
}

// Read a message from a file, decoding it based on the extension of path.
func LoadMessage(path string, message proto.Message) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch filepath.Ext(path) {
	case ".json":
		return protojson.Unmarshal(data, message)
	case ".pb", ".protobuf", ".binaryproto":
		return proto.Unmarshal(data, message)
	case ".textproto":
		return prototext.Unmarshal(data, message)
	}
	return fmt.Errorf("unknown message format for %s", path)
}

func mkdirAll(dir string) error {
	return os.MkdirAll(dir, 0775)
}
