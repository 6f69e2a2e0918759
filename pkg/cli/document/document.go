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

// Package document loads text files as ordered sequences of raw lines
package document

import (
	"bufio"
	"io"
	"os"
	"unicode/utf8"

	"github.com/dnote/linediff/pkg/cli/utils"
	"github.com/pkg/errors"
)

var (
	// ErrNotFound is the cause of the error returned when a file does not exist
	ErrNotFound = errors.New("file not found")
	// ErrUnreadable is the cause of the error returned when a file exists but cannot be read
	ErrUnreadable = errors.New("file unreadable")
	// ErrEmpty is the cause of the error returned by LoadStrict for a file without lines
	ErrEmpty = errors.New("file is empty")
)

// Document is a loaded file. Every line keeps its terminator verbatim.
type Document struct {
	Path  string
	lines []string
}

// New returns a document made of the given lines. The lines are copied.
func New(path string, lines []string) Document {
	l := make([]string, len(lines))
	copy(l, lines)

	return Document{Path: path, lines: l}
}

// Lines returns a copy of the raw lines of the document
func (d Document) Lines() []string {
	ret := make([]string, len(d.lines))
	copy(ret, d.lines)

	return ret
}

// Line returns the line at the given index, or an empty string if the index
// is past the end of the document
func (d Document) Line(idx int) string {
	if idx < 0 || idx >= len(d.lines) {
		return ""
	}

	return d.lines[idx]
}

// LineCount returns the number of lines in the document
func (d Document) LineCount() int {
	return len(d.lines)
}

// MaxLineLength returns the length in runes of the longest line, terminator
// included. It is 0 for an empty document.
func (d Document) MaxLineLength() int {
	var ret int

	for _, l := range d.lines {
		if n := utf8.RuneCountInString(l); n > ret {
			ret = n
		}
	}

	return ret
}

// Read splits the content of r into lines, keeping the terminators
func Read(path string, r io.Reader) (Document, error) {
	var lines []string

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			lines = append(lines, line)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Document{}, errors.Wrapf(ErrUnreadable, "reading %s: %s", path, err.Error())
		}
	}

	return Document{Path: path, lines: lines}, nil
}

// Load reads the file at the given path. A file without any content loads
// as a document with no lines.
func Load(path string) (Document, error) {
	isDir, err := utils.IsDir(path)
	if err != nil {
		return Document{}, errors.Wrapf(ErrUnreadable, "checking %s: %s", path, err.Error())
	}
	if isDir {
		return Document{}, errors.Wrapf(ErrUnreadable, "%s is a directory", path)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, errors.Wrap(ErrNotFound, path)
		}

		return Document{}, errors.Wrapf(ErrUnreadable, "opening %s: %s", path, err.Error())
	}
	defer f.Close()

	return Read(path, f)
}

// LoadStrict is like Load but fails with ErrEmpty if the file has no lines
func LoadStrict(path string) (Document, error) {
	doc, err := Load(path)
	if err != nil {
		return doc, err
	}

	if doc.LineCount() == 0 {
		return Document{}, errors.Wrap(ErrEmpty, path)
	}

	return doc, nil
}

// IsNotFound reports whether the error was caused by a missing file
func IsNotFound(err error) bool {
	return errors.Cause(err) == ErrNotFound
}

// IsUnreadable reports whether the error was caused by a file that could not be read
func IsUnreadable(err error) bool {
	return errors.Cause(err) == ErrUnreadable
}

// IsEmpty reports whether the error was caused by an empty file
func IsEmpty(err error) bool {
	return errors.Cause(err) == ErrEmpty
}
