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

// Package exclusion decides which files of the vendored source tree are compiled.
//
// Compile derives path rules from a resolved config.Config, and Filter applies them to
// the discovered sources.  A rule matches when its pattern occurs anywhere in the
// candidate path after a leading "/" has been added, so "/audio/" matches
// "audio/alsa/SDL_alsa_audio.c" but "audio" alone would also match "SDL_audiocvt.c".
// Patterns are therefore written as directory markers with both separators, or as a
// full "/dir/file.c" suffix.
//
// Most rules exclude.  A rule of kind Include carves a narrower path back out of a
// broader exclusion; when both match, the longer pattern wins and an exclusion wins a
// tie.
package exclusion

import (
	"fmt"
	"strings"
)

// Kind says whether a matching rule removes or keeps a file.
type Kind int

const (
	Exclude Kind = iota
	Include
)

func (k Kind) String() string {
	switch k {
	case Exclude:
		return "exclude"
	case Include:
		return "include"
	}
	panic(fmt.Errorf("unknown rule kind %d", int(k)))
}

// A Rule is a path marker with the reason it applies.
type Rule struct {
	Pattern string
	Reason  string
	Kind    Kind
}

func (r Rule) String() string {
	return fmt.Sprintf("%s %q (%s)", r.Kind, r.Pattern, r.Reason)
}

// Matches returns true if the pattern occurs in the anchored form of path.
func (r Rule) Matches(path string) bool {
	return strings.Contains(anchor(path), r.Pattern)
}

func anchor(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}

type ruleBuilder struct {
	reason string
	rules  []Rule
}

func because(reason string) *ruleBuilder {
	return &ruleBuilder{reason: reason}
}

func (b *ruleBuilder) exclude(patterns ...string) *ruleBuilder {
	for _, p := range patterns {
		b.rules = append(b.rules, Rule{Pattern: p, Reason: b.reason, Kind: Exclude})
	}
	return b
}

func (b *ruleBuilder) include(patterns ...string) *ruleBuilder {
	for _, p := range patterns {
		b.rules = append(b.rules, Rule{Pattern: p, Reason: b.reason, Kind: Include})
	}
	return b
}

func (b *ruleBuilder) excludeIf(cond bool, patterns ...string) *ruleBuilder {
	if cond {
		b.exclude(patterns...)
	}
	return b
}

func (b *ruleBuilder) includeIf(cond bool, patterns ...string) *ruleBuilder {
	if cond {
		b.include(patterns...)
	}
	return b
}

func (b *ruleBuilder) build() []Rule {
	return b.rules
}

// dedupe removes rules whose pattern and kind were already seen, keeping the first.
func dedupe(rules []Rule) []Rule {
	type key struct {
		pattern string
		kind    Kind
	}
	seen := make(map[key]bool, len(rules))
	ret := rules[:0]
	for _, r := range rules {
		k := key{r.Pattern, r.Kind}
		if seen[k] {
			continue
		}
		seen[k] = true
		ret = append(ret, r)
	}
	return ret
}
