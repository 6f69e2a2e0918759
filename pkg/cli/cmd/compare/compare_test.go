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

package compare

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dnote/linediff/pkg/assert"
	"github.com/dnote/linediff/pkg/cli/context"
	"github.com/dnote/linediff/pkg/cli/document"
	"github.com/dnote/linediff/pkg/cli/log"
	"github.com/dnote/linediff/pkg/cli/normalize"
	"github.com/dnote/linediff/pkg/cli/render"
	"github.com/fatih/color"
	"github.com/pkg/errors"
)

func setup(t *testing.T) (context.Ctx, *bytes.Buffer, *bytes.Buffer) {
	noColor := color.NoColor
	color.NoColor = true

	var stdout, stderr bytes.Buffer
	log.SetOutput(&stderr)

	t.Cleanup(func() {
		color.NoColor = noColor
		log.SetOutput(color.Error)
	})

	ctx := context.Ctx{
		Version: "test",
		Render:  render.Options{Width: 30, Style: render.StyleAnnotated},
		Stdout:  &stdout,
	}

	return ctx, &stdout, &stderr
}

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()

	t.Run("identical", func(t *testing.T) {
		ctx, stdout, _ := setup(t)
		path1 := writeFile(t, dir, "a1.txt", "a\nb\n")
		path2 := writeFile(t, dir, "a2.txt", "a\nb\n")

		err := Run(ctx, path1, path2)
		assert.Equal(t, err, nil, "Run should succeed")

		expected := "0) a" + strings.Repeat(" ", 15) + "a\n" +
			"1) b" + strings.Repeat(" ", 15) + "b\n"
		assert.Equal(t, stdout.String(), expected, "output mismatch")
	})

	t.Run("moved and unmatched", func(t *testing.T) {
		ctx, stdout, _ := setup(t)
		path1 := writeFile(t, dir, "b1.txt", "x\n")
		path2 := writeFile(t, dir, "b2.txt", "y\nx\n")

		err := Run(ctx, path1, path2)
		assert.Equal(t, err, nil, "Run should succeed")

		expected := "0) [1] x" + strings.Repeat(" ", 8) + "~  y\n" +
			"1)" + strings.Repeat(" ", 14) + "|  x\n"
		assert.Equal(t, stdout.String(), expected, "output mismatch")
	})

	t.Run("normalization", func(t *testing.T) {
		ctx, stdout, _ := setup(t)
		ctx.Normalize = normalize.Options{Trim: true, DropTrailingSeparator: true}
		path1 := writeFile(t, dir, "c1.txt", "  foo,\n")
		path2 := writeFile(t, dir, "c2.txt", "foo\n")

		err := Run(ctx, path1, path2)
		assert.Equal(t, err, nil, "Run should succeed")

		expected := "0)   foo," + strings.Repeat(" ", 10) + "foo\n"
		assert.Equal(t, stdout.String(), expected, "raw lines should be rendered")
	})

	t.Run("summary", func(t *testing.T) {
		ctx, stdout, _ := setup(t)
		ctx.Summary = true
		path1 := writeFile(t, dir, "d1.txt", "a\nb\nc\n")
		path2 := writeFile(t, dir, "d2.txt", "a\nc\n")

		err := Run(ctx, path1, path2)
		assert.Equal(t, err, nil, "Run should succeed")
		assert.Equal(t, strings.HasSuffix(stdout.String(), "\nequal: 1, moved: 1, unmatched: 1\n"), true, "summary mismatch")
	})

	t.Run("exit code", func(t *testing.T) {
		ctx, _, _ := setup(t)
		ctx.ExitCode = true
		path1 := writeFile(t, dir, "e1.txt", "a\n")
		path2 := writeFile(t, dir, "e2.txt", "b\n")

		err := Run(ctx, path1, path2)
		assert.Equal(t, errors.Cause(err), ErrDifferent, "error mismatch")

		err = Run(ctx, path1, path1)
		assert.Equal(t, err, nil, "identical files should not fail")
	})

	t.Run("empty file", func(t *testing.T) {
		ctx, stdout, stderr := setup(t)
		ctx.Normalize = normalize.Options{Trim: true}
		path1 := writeFile(t, dir, "f1.txt", "a\n\n")
		path2 := writeFile(t, dir, "f2.txt", "")

		err := Run(ctx, path1, path2)
		assert.Equal(t, err, nil, "Run should succeed")

		expected := "0) a" + strings.Repeat(" ", 12) + "|\n" +
			"1)\n"
		assert.Equal(t, stdout.String(), expected, "output mismatch")
		assert.Equal(t, strings.Contains(stderr.String(), path2+" is empty"), true, "warning should be printed")
	})

	t.Run("empty file strict", func(t *testing.T) {
		ctx, stdout, _ := setup(t)
		ctx.StrictEmpty = true
		path1 := writeFile(t, dir, "g1.txt", "a\n")
		path2 := writeFile(t, dir, "g2.txt", "")

		err := Run(ctx, path1, path2)
		assert.Equal(t, document.IsEmpty(err), true, "error should be an empty file error")
		assert.Equal(t, stdout.String(), "", "nothing should be rendered")
	})

	t.Run("missing file", func(t *testing.T) {
		ctx, stdout, _ := setup(t)
		path1 := writeFile(t, dir, "h1.txt", "a\n")
		path2 := filepath.Join(dir, "missing.txt")

		err := Run(ctx, path1, path2)
		assert.Equal(t, document.IsNotFound(err), true, "error should be a not found error")
		assert.Equal(t, strings.Contains(err.Error(), path2), true, "error should name the path")
		assert.Equal(t, stdout.String(), "", "nothing should be rendered")
	})
}
