// Copyright 2015 Google Inc. All rights reserved.
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

package config

// CopyOf returns a new slice that has the same contents as s.
func CopyOf[T any](s []T) []T {
	return append([]T(nil), s...)
}

func IndexList[T comparable](s T, list []T) int {
	for i, l := range list {
		if l == s {
			return i
		}
	}

	return -1
}

func InList[T comparable](s T, list []T) bool {
	return IndexList(s, list) != -1
}

// PrefixWith returns a new slice with prefix prepended to every element of list.
func PrefixWith(list []string, prefix string) []string {
	ret := make([]string, len(list))
	for i, s := range list {
		ret[i] = prefix + s
	}
	return ret
}
