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

package exclusion

import (
	"iter"
	"strings"

	"sdlbuild/config"
)

// An Exclusion is a discovered file together with the rule that removed it.
type Exclusion struct {
	Path string
	Rule Rule
}

// Result is the outcome of filtering one discovery run.  Both lists keep discovery
// order.
type Result struct {
	Sources  []string
	Excluded []Exclusion
}

type matcher struct {
	rules      []Rule
	hasInclude bool
}

func newMatcher(rules []Rule, crossCompile bool) *matcher {
	m := &matcher{}
	for _, r := range rules {
		if r.Kind == Include {
			// Carve-outs belong to real platform backends, which cross stub mode
			// never compiles.
			if crossCompile {
				continue
			}
			m.hasInclude = true
		}
		m.rules = append(m.rules, r)
	}
	return m
}

// decide returns the rule that decides path, and whether path is excluded.
func (m *matcher) decide(path string) (Rule, bool) {
	anchored := anchor(path)

	if !m.hasInclude {
		for _, r := range m.rules {
			if strings.Contains(anchored, r.Pattern) {
				return r, true
			}
		}
		return Rule{}, false
	}

	var best Rule
	found := false
	for _, r := range m.rules {
		if !strings.Contains(anchored, r.Pattern) {
			continue
		}
		if !found || len(r.Pattern) > len(best.Pattern) ||
			(len(r.Pattern) == len(best.Pattern) && r.Kind == Exclude && best.Kind == Include) {
			best = r
			found = true
		}
	}
	return best, found && best.Kind == Exclude
}

func (m *matcher) add(res *Result, path string) {
	if rule, excluded := m.decide(path); excluded {
		res.Excluded = append(res.Excluded, Exclusion{Path: path, Rule: rule})
	} else {
		res.Sources = append(res.Sources, path)
	}
}

// Filter removes every candidate excluded by rules.  In cross stub mode Include rules
// are ignored.  Filtering the same input twice gives the same Result.
func Filter(candidates []string, rules []Rule, crossCompile bool) Result {
	m := newMatcher(rules, crossCompile)
	var res Result
	for _, c := range candidates {
		m.add(&res, c)
	}
	return res
}

// FilterSeq is Filter over a lazy discovery sequence.  The first discovery error is
// returned without a partial Result.
func FilterSeq(candidates iter.Seq2[string, error], rules []Rule, crossCompile bool) (Result, error) {
	m := newMatcher(rules, crossCompile)
	var res Result
	for c, err := range candidates {
		if err != nil {
			return Result{}, err
		}
		m.add(&res, c)
	}
	return res, nil
}

// Excludes returns true if rules contain an exclusion with exactly pattern.
func Excludes(rules []Rule, pattern string) bool {
	for _, r := range rules {
		if r.Kind == Exclude && r.Pattern == pattern {
			return true
		}
	}
	return false
}

// Tags returns the subsystems that own path.  A null backend belongs to no subsystem:
// it is what gets compiled when the subsystem is off.
func Tags(path string) []config.Feature {
	anchored := anchor(path)
	var ret []config.Feature
	for _, s := range config.Subsystems {
		if s.Dummy != "" && strings.Contains(anchored, s.Dummy) {
			continue
		}
		for _, d := range s.Dirs {
			if strings.Contains(anchored, d) {
				ret = append(ret, s.Feature)
				break
			}
		}
	}
	return ret
}
