// Copyright 2016 Google Inc. All rights reserved.
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

package cc

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"sdlbuild/config"
	"sdlbuild/platform"
)

// A Header is a config header placed in the shadow include root, ahead of the vendor's
// header with the same name.
type Header struct {
	Name string
	Text string
}

var headerNames = map[platform.OsFamily]string{
	platform.Windows: "SDL_config_windows.h",
	platform.MacOS:   "SDL_config_macosx.h",
}

// HeaderName returns the vendor header that the config header for family replaces.
func HeaderName(family platform.OsFamily) string {
	if name, ok := headerNames[family]; ok {
		return name
	}
	return "SDL_config_minimal.h"
}

var headerTemplate = template.Must(template.New("header").Parse(`/* {{.Name}} generated for {{.Target}}. Do not edit. */
#ifndef {{.Guard}}
#define {{.Guard}}

#include "SDL_platform.h"
{{range .Capabilities}}
#define {{.Name}}{{with .Value}} {{.}}{{end}}
{{- end}}
{{range .Symbols}}
#undef {{.Name}}
#define {{.Name}} {{.Value}}
{{- with .Marker}}
#define {{.}} 1
{{- end}}
{{- end}}
{{- if .Backends}}
{{range .Backends}}
#undef {{.Name}}
#define {{.Name}} {{.Value}}
{{- end}}
{{- end}}
{{- if .AssertLevel}}
{{range .AssertLevel}}
#define {{.}} 2
{{- end}}
{{- end}}

#endif /* {{.Guard}} */
`))

// The cross stub header only turns subsystems off; none of the family's backends exist.
var crossHeaderTemplate = template.Must(template.New("cross").Parse(`/* {{.Name}} generated for {{.Target}} in cross stub mode. Do not edit. */
#ifndef {{.Guard}}
#define {{.Guard}}
{{range .Symbols}}
#undef {{.Name}}
#define {{.Name}} {{.Value}}
{{- end}}

#endif /* {{.Guard}} */
`))

type headerSymbol struct {
	Name   string
	Value  string
	Marker string
}

type headerData struct {
	Name         string
	Target       string
	Guard        string
	Capabilities []config.Define
	Symbols      []headerSymbol
	Backends     []config.Define
	AssertLevel  []string
}

// windowsBackends re-asserts the renderer symbols the vendor's windows header turns on
// unconditionally.
func windowsBackends(cfg config.Config) []config.Define {
	gl := "0"
	if cfg.Enabled(config.OpenGL) {
		gl = "1"
	}
	return []config.Define{
		{Name: "SDL_VIDEO_OPENGL_WGL", Value: gl},
		{Name: "SDL_VIDEO_RENDER_OGL", Value: gl},
		{Name: "SDL_VIDEO_RENDER_OGL_ES2", Value: gl},
		{Name: "SDL_VIDEO_OPENGL_EGL", Value: gl},
		{Name: "SDL_VIDEO_RENDER_D3D", Value: "0"},
		{Name: "SDL_VIDEO_RENDER_D3D11", Value: "0"},
		{Name: "SDL_VIDEO_RENDER_D3D12", Value: "0"},
	}
}

// ConfigHeader renders the config header for cfg.  The same config always renders the
// same bytes.
func ConfigHeader(cfg config.Config) (Header, error) {
	name := HeaderName(cfg.Family())
	data := headerData{
		Name:   name,
		Target: cfg.Profile.Target.String(),
		Guard:  strings.TrimSuffix(name, ".h") + "_h_",
	}

	for _, s := range config.Subsystems {
		enabled := cfg.Enabled(s.Feature)
		sym := headerSymbol{Name: s.Symbol, Value: s.Value(enabled)}
		if !enabled && !cfg.CrossCompile() {
			sym.Marker = s.Marker
		}
		data.Symbols = append(data.Symbols, sym)
	}

	tmpl := headerTemplate
	if cfg.CrossCompile() {
		tmpl = crossHeaderTemplate
	} else {
		data.Capabilities = config.Capabilities(cfg.Family())
		if cfg.Family() == platform.Windows {
			data.Backends = windowsBackends(cfg)
		}
		if cfg.Enabled(config.Assertions) {
			data.AssertLevel = config.AssertLevelSymbols
		}
	}

	buf := &bytes.Buffer{}
	if err := tmpl.Execute(buf, data); err != nil {
		return Header{}, fmt.Errorf("rendering %s: %w", name, err)
	}
	return Header{Name: name, Text: buf.String()}, nil
}
