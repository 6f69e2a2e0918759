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

// Package render prints classified pairs of lines side by side
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dnote/linediff/pkg/cli/match"
	"github.com/dnote/linediff/pkg/cli/utils/diff"
	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// gap separates the columns from the marker
const gap = "  "

// DefaultWidth is the width used when the terminal width is unknown
const DefaultWidth = 80

// Style is a set of markers
type Style string

const (
	// StyleClassic marks every position that is not equal with a bar
	StyleClassic Style = "classic"
	// StyleSymbols uses a distinct marker for moved lines
	StyleSymbols Style = "symbols"
	// StyleAnnotated is StyleSymbols with the target index of a moved line
	// printed before the left text
	StyleAnnotated Style = "annotated"
)

// Styles lists the available styles
var Styles = []Style{StyleClassic, StyleSymbols, StyleAnnotated}

// ParseStyle returns the style with the given name
func ParseStyle(s string) (Style, error) {
	for _, style := range Styles {
		if string(style) == s {
			return style, nil
		}
	}

	return "", errors.Errorf("unknown style '%s'. Available styles are: classic, symbols, annotated", s)
}

func (s Style) marker(res match.Result) string {
	switch res.Kind {
	case match.Moved:
		if s == StyleClassic {
			return "|"
		}
		return "~"
	case match.NoMatch:
		return "|"
	}

	return " "
}

func (s Style) annotation(res match.Result) string {
	if s == StyleAnnotated && res.Kind == match.Moved {
		return fmt.Sprintf("[%d] ", res.Index)
	}

	return ""
}

var (
	colorIndex   = color.New(color.FgHiBlack)
	colorMoved   = color.New(color.FgYellow)
	colorNoMatch = color.New(color.FgRed)
	colorDeleted = color.New(color.FgRed)
	colorAdded   = color.New(color.FgGreen)
)

func markerColor(res match.Result) *color.Color {
	if res.Kind == match.Moved {
		return colorMoved
	}

	return colorNoMatch
}

// Options configures a Renderer
type Options struct {
	// Width is the total number of terminal columns available
	Width int
	Style Style
	// AlignIndex pads every index to the width of the largest one
	AlignIndex bool
	// Highlight colors the characters that differ between two lines
	// that are not equal
	Highlight bool
}

// Renderer writes rows to a writer
type Renderer struct {
	w          io.Writer
	opts       Options
	indexWidth int
}

// New returns a renderer for a comparison of the given number of positions
func New(w io.Writer, opts Options, positions int) *Renderer {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Style == "" {
		opts.Style = StyleAnnotated
	}

	r := &Renderer{w: w, opts: opts}
	if opts.AlignIndex && positions > 0 {
		r.indexWidth = len(strconv.Itoa(positions - 1))
	}

	return r
}

func (r *Renderer) index(idx int) string {
	return fmt.Sprintf("%*d) ", r.indexWidth, idx)
}

func (r *Renderer) columnWidth(indexLen int) int {
	ret := (r.opts.Width - indexLen - 2*len(gap) - 1) / 2
	if ret < 1 {
		return 1
	}

	return ret
}

// side is the text of one column with the characters to highlight
type side struct {
	runes   []rune
	changed []bool
	color   *color.Color
}

func (s side) format(sp span) string {
	if s.changed == nil {
		return string(s.runes[sp.start:sp.end])
	}

	var sb strings.Builder
	for i := sp.start; i < sp.end; {
		j := i
		for j < sp.end && s.changed[j] == s.changed[i] {
			j++
		}

		if s.changed[i] {
			sb.WriteString(s.color.Sprint(string(s.runes[i:j])))
		} else {
			sb.WriteString(string(s.runes[i:j]))
		}

		i = j
	}

	return sb.String()
}

func (r *Renderer) sides(line1, line2 string, res match.Result) (side, side) {
	annotation := []rune(r.opts.Style.annotation(res))
	text1 := displayText(line1)
	text2 := displayText(line2)

	left := side{runes: append(annotation, text1...), color: colorDeleted}
	right := side{runes: text2, color: colorAdded}

	if r.opts.Highlight && res.Kind != match.Equal {
		changed1, changed2 := diff.Changed(string(text1), string(text2))

		left.changed = append(make([]bool, len(annotation)), changed1...)
		right.changed = changed2
	}

	return left, right
}

// Render writes the rows of a position. Only the first row carries the index
// and the marker.
func (r *Renderer) Render(idx int, line1, line2 string, res match.Result) error {
	index := r.index(idx)
	colWidth := r.columnWidth(len(index))

	left, right := r.sides(line1, line2, res)
	rows1 := wrap(left.runes, colWidth)
	rows2 := wrap(right.runes, colWidth)

	n := max(len(rows1), len(rows2), 1)
	for i := 0; i < n; i++ {
		var sb strings.Builder

		if i == 0 {
			sb.WriteString(colorIndex.Sprint(index))
		} else {
			sb.WriteString(strings.Repeat(" ", len(index)))
		}

		var leftWidth int
		if i < len(rows1) {
			sp := rows1[i]
			sb.WriteString(left.format(sp))
			leftWidth = textWidth(left.runes[sp.start:sp.end])
		}
		if leftWidth < colWidth {
			sb.WriteString(strings.Repeat(" ", colWidth-leftWidth))
		}

		sb.WriteString(gap)
		if i == 0 && res.Kind != match.Equal {
			sb.WriteString(markerColor(res).Sprint(r.opts.Style.marker(res)))
		} else {
			sb.WriteString(" ")
		}
		sb.WriteString(gap)

		if i < len(rows2) {
			sb.WriteString(right.format(rows2[i]))
		}

		row := strings.TrimRight(sb.String(), " ")
		if _, err := fmt.Fprintln(r.w, row); err != nil {
			return errors.Wrap(err, "writing row")
		}
	}

	return nil
}

// Summary writes the number of positions of each kind
func (r *Renderer) Summary(s match.Summary) error {
	_, err := fmt.Fprintf(r.w, "\nequal: %d, moved: %d, unmatched: %d\n", s.Equal, s.Moved, s.NoMatch)
	if err != nil {
		return errors.Wrap(err, "writing summary")
	}

	return nil
}
