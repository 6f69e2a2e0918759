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

// Package match classifies the line of the first document at a position
// against the lines of the second document
package match

import (
	"fmt"

	"github.com/dnote/linediff/pkg/cli/normalize"
)

// Kind is the relationship between two documents at a position
type Kind int

const (
	// Equal means both documents hold the same line at the position
	Equal Kind = iota
	// Moved means the line of the first document appears elsewhere in the second
	Moved
	// NoMatch means the line of the first document appears nowhere in the second
	NoMatch
)

func (k Kind) String() string {
	switch k {
	case Equal:
		return "equal"
	case Moved:
		return "moved"
	case NoMatch:
		return "no match"
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

// Result is the classification of a position
type Result struct {
	Kind Kind
	// Index is the position of the matching line in the second document
	// when Kind is Moved, and -1 otherwise.
	Index int
}

func (r Result) String() string {
	if r.Kind == Moved {
		return fmt.Sprintf("moved to %d", r.Index)
	}

	return r.Kind.String()
}

// MovedTo returns the result for a line found at the given index of the second document
func MovedTo(idx int) Result {
	return Result{Kind: Moved, Index: idx}
}

var (
	equalResult   = Result{Kind: Equal, Index: -1}
	noMatchResult = Result{Kind: NoMatch, Index: -1}
)

// Classify compares the line of doc1 at idx with the line of doc2 at the same
// position. Positions past the end of a document hold an empty line. If the
// lines differ, doc2 is scanned from the top and the first line equal to the
// line of doc1 wins.
func Classify(doc1, doc2 normalize.Document, idx int) Result {
	a := doc1.Line(idx)
	b := doc2.Line(idx)

	if a == b {
		return equalResult
	}

	for j := 0; j < doc2.Len(); j++ {
		if doc2.Line(j) == a {
			return MovedTo(j)
		}
	}

	return noMatchResult
}

// Length returns the number of positions compared between two documents
func Length(doc1, doc2 normalize.Document) int {
	return max(doc1.Len(), doc2.Len())
}

// Compare classifies every position of the two documents in increasing order
func Compare(doc1, doc2 normalize.Document) []Result {
	n := Length(doc1, doc2)

	ret := make([]Result, n)
	for i := 0; i < n; i++ {
		ret[i] = Classify(doc1, doc2, i)
	}

	return ret
}

// Summary counts the positions of each kind
type Summary struct {
	Equal   int
	Moved   int
	NoMatch int
}

// Identical reports whether every position is Equal
func (s Summary) Identical() bool {
	return s.Moved == 0 && s.NoMatch == 0
}

// Summarize counts the results by kind
func Summarize(results []Result) Summary {
	var ret Summary

	for _, r := range results {
		switch r.Kind {
		case Equal:
			ret.Equal++
		case Moved:
			ret.Moved++
		case NoMatch:
			ret.NoMatch++
		}
	}

	return ret
}
