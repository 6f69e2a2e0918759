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

package match

import (
	"fmt"
	"testing"

	"github.com/dnote/linediff/pkg/assert"
	"github.com/dnote/linediff/pkg/cli/document"
	"github.com/dnote/linediff/pkg/cli/normalize"
)

func compareLines(lines1, lines2 []string, opts normalize.Options) []Result {
	doc1 := normalize.New(document.New("file1", lines1), opts)
	doc2 := normalize.New(document.New("file2", lines2), opts)

	return Compare(doc1, doc2)
}

func TestCompare(t *testing.T) {
	trim := normalize.Options{Trim: true}
	drop := normalize.Options{DropTrailingSeparator: true}

	testCases := []struct {
		name     string
		lines1   []string
		lines2   []string
		opts     normalize.Options
		expected []Result
	}{
		{
			name:     "identical files",
			lines1:   []string{"a\n", "b\n"},
			lines2:   []string{"a\n", "b\n"},
			expected: []Result{equalResult, equalResult},
		},
		{
			name:     "moved line",
			lines1:   []string{"x\n"},
			lines2:   []string{"y\n", "x\n"},
			expected: []Result{MovedTo(1), noMatchResult},
		},
		{
			name:     "tail comma ignored",
			lines1:   []string{"foo,\n"},
			lines2:   []string{"foo\n"},
			opts:     drop,
			expected: []Result{equalResult},
		},
		{
			name:     "tail comma compared",
			lines1:   []string{"foo,\n"},
			lines2:   []string{"foo\n"},
			expected: []Result{noMatchResult},
		},
		{
			name:     "whitespace ignored",
			lines1:   []string{"  a  \n"},
			lines2:   []string{"a\n"},
			opts:     trim,
			expected: []Result{equalResult},
		},
		{
			name:     "whitespace compared",
			lines1:   []string{"  a  \n"},
			lines2:   []string{"a\n"},
			expected: []Result{noMatchResult},
		},
		{
			name:     "second file shorter",
			lines1:   []string{"a\n", "b\n", "c\n"},
			lines2:   []string{"a\n"},
			expected: []Result{equalResult, noMatchResult, noMatchResult},
		},
		{
			name:     "second file shorter with a blank line past its end",
			lines1:   []string{"a\n", "\n", "c\n"},
			lines2:   []string{"a\n"},
			opts:     trim,
			expected: []Result{equalResult, equalResult, noMatchResult},
		},
		{
			name:     "second file empty",
			lines1:   []string{"a\n", "\n"},
			lines2:   []string{},
			opts:     trim,
			expected: []Result{noMatchResult, equalResult},
		},
		{
			name:     "first file shorter scans for the empty line",
			lines1:   []string{"a\n"},
			lines2:   []string{"a\n", "b\n", "\n", ""},
			expected: []Result{equalResult, MovedTo(3), MovedTo(3), equalResult},
		},
		{
			name:     "empty line matches the first empty line",
			lines1:   []string{"a\n", "\n"},
			lines2:   []string{"\n", "b\n"},
			expected: []Result{noMatchResult, MovedTo(0)},
		},
		{
			name:     "lowest index wins",
			lines1:   []string{"q\n", "q\n", "z\n", "z\n"},
			lines2:   []string{"z\n", "z\n", "q\n", "q\n"},
			expected: []Result{MovedTo(2), MovedTo(2), MovedTo(0), MovedTo(0)},
		},
		{
			name:     "positional equality short-circuits the scan",
			lines1:   []string{"k\n", " k\n"},
			lines2:   []string{"k\n", "k\n"},
			opts:     trim,
			expected: []Result{equalResult, equalResult},
		},
		{
			name:     "both files empty",
			lines1:   []string{},
			lines2:   []string{},
			expected: []Result{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := compareLines(tc.lines1, tc.lines2, tc.opts)

			assert.DeepEqual(t, got, tc.expected, "results mismatch")
		})
	}
}

func TestClassifyLowestIndexIndependentOfPosition(t *testing.T) {
	lines2 := []string{"a\n", "dup\n", "b\n", "dup\n", "c\n", "dup\n"}
	doc2 := normalize.New(document.New("file2", lines2), normalize.Options{})

	for i := 0; i < 8; i++ {
		t.Run(fmt.Sprintf("position %d", i), func(t *testing.T) {
			lines1 := make([]string, i+1)
			for j := range lines1 {
				lines1[j] = "other\n"
			}
			lines1[i] = "dup\n"
			doc1 := normalize.New(document.New("file1", lines1), normalize.Options{})

			got := Classify(doc1, doc2, i)
			if lineAt(lines2, i) == "dup\n" {
				assert.Equal(t, got, equalResult, "result mismatch")
			} else {
				assert.Equal(t, got, MovedTo(1), "result mismatch")
			}
		})
	}
}

func lineAt(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}

	return ""
}

func TestLength(t *testing.T) {
	testCases := []struct {
		len1, len2 int
		expected   int
	}{
		{len1: 3, len2: 1, expected: 3},
		{len1: 1, len2: 3, expected: 3},
		{len1: 0, len2: 0, expected: 0},
		{len1: 0, len2: 2, expected: 2},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d %d", tc.len1, tc.len2), func(t *testing.T) {
			doc1 := normalize.FromLines(make([]string, tc.len1))
			doc2 := normalize.FromLines(make([]string, tc.len2))

			assert.Equal(t, Length(doc1, doc2), tc.expected, "length mismatch")
			assert.Equal(t, len(Compare(doc1, doc2)), tc.expected, "compare length mismatch")
		})
	}
}

func TestSummarize(t *testing.T) {
	results := []Result{equalResult, MovedTo(3), noMatchResult, equalResult, noMatchResult}

	got := Summarize(results)

	assert.Equal(t, got, Summary{Equal: 2, Moved: 1, NoMatch: 2}, "summary mismatch")
	assert.Equal(t, got.Identical(), false, "summary should not be identical")
	assert.Equal(t, Summarize([]Result{equalResult}).Identical(), true, "summary should be identical")
}

func TestResultString(t *testing.T) {
	assert.Equal(t, equalResult.String(), "equal", "equal mismatch")
	assert.Equal(t, MovedTo(4).String(), "moved to 4", "moved mismatch")
	assert.Equal(t, noMatchResult.String(), "no match", "no match mismatch")
}
