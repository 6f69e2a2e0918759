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

// Package normalize applies the textual transforms that decide which
// differences between two lines are ignored when they are compared
package normalize

import (
	"regexp"
	"strings"

	"github.com/dnote/linediff/pkg/cli/document"
)

// Options holds the transforms to apply. The zero value leaves lines untouched.
type Options struct {
	// Trim removes leading and trailing whitespace, line terminator included
	Trim bool
	// DropTrailingSeparator removes a trailing comma or colon and the spaces after it
	DropTrailingSeparator bool
}

// regexTailSeparator matches trailing commas or colons, each optionally
// followed by spaces
var regexTailSeparator = regexp.MustCompile(`(?:[,:] *)+$`)

func splitTerminator(s string) (string, string) {
	if strings.HasSuffix(s, "\r\n") {
		return s[:len(s)-2], "\r\n"
	}
	if strings.HasSuffix(s, "\n") {
		return s[:len(s)-1], "\n"
	}

	return s, ""
}

func dropTrailingSeparator(s string) string {
	content, terminator := splitTerminator(s)

	return regexTailSeparator.ReplaceAllString(content, "") + terminator
}

func apply(s string, opts Options) string {
	if opts.Trim {
		s = strings.TrimSpace(s)
	}
	if opts.DropTrailingSeparator {
		s = dropTrailingSeparator(s)
	}

	return s
}

// Line returns the normalized form of the given line. Transforms are repeated
// until the line stops changing, so normalizing a normalized line is a no-op.
func Line(line string, opts Options) string {
	for {
		next := apply(line, opts)
		if next == line {
			return line
		}

		line = next
	}
}

// Document is a document whose lines have been normalized. Line i corresponds
// to line i of the source document.
type Document struct {
	lines []string
}

// New normalizes every line of the given document once
func New(doc document.Document, opts Options) Document {
	lines := doc.Lines()
	for i, l := range lines {
		lines[i] = Line(l, opts)
	}

	return Document{lines: lines}
}

// FromLines returns a normalized document made of the given lines, which are
// taken to be normalized already
func FromLines(lines []string) Document {
	l := make([]string, len(lines))
	copy(l, lines)

	return Document{lines: l}
}

// Len returns the number of lines
func (d Document) Len() int {
	return len(d.lines)
}

// Line returns the line at the given index, or an empty string past the end
func (d Document) Line(idx int) string {
	if idx < 0 || idx >= len(d.lines) {
		return ""
	}

	return d.lines[idx]
}

// Lines returns a copy of the normalized lines
func (d Document) Lines() []string {
	ret := make([]string, len(d.lines))
	copy(ret, d.lines)

	return ret
}
