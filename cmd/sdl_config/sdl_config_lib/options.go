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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/google/blueprint/proptools"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"sdlbuild/config"
)

// OptionsFile is the optional file form of the command line options.  Feature values
// may be booleans or any string config.ParseBool accepts.
//
//	target = "x86_64-linux-gnu"
//	mode = "release"
//
//	[features]
//	vulkan = true
//	x11 = "off"
type OptionsFile struct {
	Target            string                 `json:"target" toml:"target" yaml:"target"`
	Mode              string                 `json:"mode" toml:"mode" yaml:"mode" validate:"omitempty,oneof=debug release"`
	FullNativeBackend *bool                  `json:"full_native_backend" toml:"full_native_backend" yaml:"full_native_backend"`
	Features          map[string]interface{} `json:"features" toml:"features" yaml:"features" validate:"dive,keys,feature,endkeys,flagvalue"`
}

// An OptionsError is returned for an options file that cannot be read or is invalid.
type OptionsError struct {
	Path string
	Err  error
}

func (e *OptionsError) Error() string {
	return fmt.Sprintf("options file %s: %s", e.Path, e.Err)
}

func (e *OptionsError) Unwrap() error {
	return e.Err
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("feature", func(fl validator.FieldLevel) bool {
		_, err := config.FeatureByName(fl.Field().String())
		return err == nil
	})
	v.RegisterValidation("flagvalue", func(fl validator.FieldLevel) bool {
		_, err := featureValue(fl.Field())
		return err == nil
	})
	return v
}

func featureValue(v reflect.Value) (bool, error) {
	switch v.Kind() {
	case reflect.Bool:
		return v.Bool(), nil
	case reflect.String:
		return config.ParseBool(v.String())
	case reflect.Interface:
		if !v.IsNil() {
			return featureValue(v.Elem())
		}
	}
	return false, fmt.Errorf("invalid feature value %v", v)
}

// LoadOptionsFile reads and validates an options file.  The format is picked from the
// extension: ".toml", ".yaml" or ".yml", and ".json".
func LoadOptionsFile(path string) (*OptionsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &OptionsError{Path: path, Err: err}
	}
	ret, err := ParseOptionsFile(filepath.Ext(path), data)
	if err != nil {
		return nil, &OptionsError{Path: path, Err: err}
	}
	return ret, nil
}

// ParseOptionsFile decodes and validates data in the format named by ext.
func ParseOptionsFile(ext string, data []byte) (*OptionsFile, error) {
	ret := &OptionsFile{}
	var err error
	switch ext {
	case ".toml":
		d := toml.NewDecoder(bytes.NewReader(data))
		d.DisallowUnknownFields()
		err = d.Decode(ret)
	case ".yaml", ".yml":
		d := yaml.NewDecoder(bytes.NewReader(data))
		d.KnownFields(true)
		err = d.Decode(ret)
	case ".json":
		d := json.NewDecoder(bytes.NewReader(data))
		d.DisallowUnknownFields()
		err = d.Decode(ret)
	default:
		return nil, fmt.Errorf("unknown options format %q", ext)
	}
	if err != nil {
		return nil, err
	}

	if err := validate.Struct(ret); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("invalid value %v for %s", verrs[0].Value(), verrs[0].Namespace())
		}
		return nil, err
	}
	return ret, nil
}

// Apply merges the file over opts.  Features are applied in name order so that the
// result does not depend on map iteration.
func (o *OptionsFile) Apply(opts *config.RawOptions) error {
	if o.Mode != "" {
		opts.Mode = o.Mode
	}
	if o.FullNativeBackend != nil {
		opts.FullNativeBackend = proptools.BoolPtr(*o.FullNativeBackend)
	}

	names := make([]string, 0, len(o.Features))
	for name := range o.Features {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		f, err := config.FeatureByName(name)
		if err != nil {
			return err
		}
		v, err := featureValue(reflect.ValueOf(o.Features[name]))
		if err != nil {
			return fmt.Errorf("feature %s: %w", name, err)
		}
		opts.Set(f, v)
	}
	return nil
}

// ApplyToggles sets every feature named in enable on and every feature named in disable
// off.  A feature named in both lists is an error.
func ApplyToggles(opts *config.RawOptions, enable, disable []string) error {
	seen := map[config.Feature]bool{}
	for _, list := range []struct {
		names []string
		value bool
	}{{enable, true}, {disable, false}} {
		for _, name := range list.names {
			f, err := config.FeatureByName(name)
			if err != nil {
				return err
			}
			if prev, ok := seen[f]; ok && prev != list.value {
				return fmt.Errorf("feature %s is both enabled and disabled", f)
			}
			seen[f] = list.value
			opts.Set(f, list.value)
		}
	}
	return nil
}
