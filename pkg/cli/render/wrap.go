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

package render

import (
	"unicode"

	"github.com/mattn/go-runewidth"
)

const tabWidth = 8

var cond = newCondition()

func newCondition() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	c.StrictEmojiNeutral = true

	return c
}

func runeWidth(r rune) int {
	return cond.RuneWidth(r)
}

func textWidth(runes []rune) int {
	var ret int
	for _, r := range runes {
		ret += runeWidth(r)
	}

	return ret
}

// displayText prepares a raw line for the terminal: the terminator is
// removed, tabs are expanded and other control whitespace becomes a space.
func displayText(line string) []rune {
	var ret []rune
	var col int

	for _, r := range trimTerminator(line) {
		switch {
		case r == '\t':
			n := tabWidth - col%tabWidth
			for i := 0; i < n; i++ {
				ret = append(ret, ' ')
			}
			col += n
		case unicode.IsSpace(r):
			ret = append(ret, ' ')
			col++
		default:
			ret = append(ret, r)
			col += runeWidth(r)
		}
	}

	return ret
}

func trimTerminator(s string) string {
	n := len(s)
	if n > 0 && s[n-1] == '\n' {
		n--
		if n > 0 && s[n-1] == '\r' {
			n--
		}
	}

	return s[:n]
}

// span is a half-open range of rune indices
type span struct {
	start, end int
}

// wrap breaks runes into rows no wider than width columns. Whitespace at a
// row break is dropped, the indentation of the first row is kept and words
// wider than a row are split. Text made only of whitespace yields no rows.
func wrap(runes []rune, width int) []span {
	if width < 1 {
		width = 1
	}

	var ret []span

	rowStart, rowEnd, rowWidth := -1, -1, 0
	closeRow := func() {
		if rowStart != -1 && rowEnd > rowStart {
			ret = append(ret, span{rowStart, rowEnd})
		}
		rowStart, rowEnd, rowWidth = -1, -1, 0
	}

	for i := 0; i < len(runes); {
		isSpace := unicode.IsSpace(runes[i])
		j := i
		for j < len(runes) && unicode.IsSpace(runes[j]) == isSpace {
			j++
		}
		w := textWidth(runes[i:j])

		if isSpace {
			switch {
			case rowStart == -1 && len(ret) > 0:
				// leading whitespace of a continuation row
			case rowWidth+w > width:
				closeRow()
			default:
				if rowStart == -1 {
					rowStart, rowEnd = i, i
				}
				rowWidth += w
			}

			i = j
			continue
		}

		if rowWidth+w <= width {
			if rowStart == -1 {
				rowStart = i
			}
			rowEnd = j
			rowWidth += w

			i = j
			continue
		}

		if rowStart != -1 {
			closeRow()
			continue
		}

		// the word alone is wider than a row
		k := i
		pieceWidth := 0
		for k < j && pieceWidth+runeWidth(runes[k]) <= width {
			pieceWidth += runeWidth(runes[k])
			k++
		}
		if k == i {
			pieceWidth = runeWidth(runes[k])
			k++
		}

		rowStart, rowEnd, rowWidth = i, k, pieceWidth
		i = k
	}

	closeRow()

	return ret
}
