/* Copyright 2025 Dnote Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package diff provides character-level diff feature by wrapping
// a package github.com/sergi/go-diff/diffmatchpatch
package diff

import (
	"time"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	// DiffEqual represents an equal diff
	DiffEqual = diffmatchpatch.DiffEqual
	// DiffInsert represents an insert diff
	DiffInsert = diffmatchpatch.DiffInsert
	// DiffDelete represents a delete diff
	DiffDelete = diffmatchpatch.DiffDelete
)

// Do computes a character diff between two strings, cleaned up so that
// the changes fall on human readable boundaries
func Do(s1, s2 string) (diffs []diffmatchpatch.Diff) {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = time.Second

	diffs = dmp.DiffMain(s1, s2, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	return diffs
}

// Changed reports, for every rune of s1 and s2, whether the rune is absent
// from the other string. The returned slices are indexed by rune.
func Changed(s1, s2 string) (left, right []bool) {
	left = make([]bool, 0, utf8.RuneCountInString(s1))
	right = make([]bool, 0, utf8.RuneCountInString(s2))

	for _, d := range Do(s1, s2) {
		n := utf8.RuneCountInString(d.Text)

		for i := 0; i < n; i++ {
			switch d.Type {
			case DiffEqual:
				left = append(left, false)
				right = append(right, false)
			case DiffDelete:
				left = append(left, true)
			case DiffInsert:
				right = append(right, true)
			}
		}
	}

	return left, right
}
