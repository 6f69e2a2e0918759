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

// Package compare implements the comparison run by the root command
package compare

import (
	"github.com/dnote/linediff/pkg/cli/cmd/root"
	"github.com/dnote/linediff/pkg/cli/context"
	"github.com/dnote/linediff/pkg/cli/document"
	"github.com/dnote/linediff/pkg/cli/infra"
	"github.com/dnote/linediff/pkg/cli/log"
	"github.com/dnote/linediff/pkg/cli/match"
	"github.com/dnote/linediff/pkg/cli/normalize"
	"github.com/dnote/linediff/pkg/cli/output"
	"github.com/dnote/linediff/pkg/cli/render"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// ErrDifferent is returned when the files differ and the context asks for a
// failing exit status in that case
var ErrDifferent = errors.New("files differ")

// NewRun returns a new run function
func NewRun(versionTag string) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		ctx, err := infra.Init(versionTag, cmd, root.GetFlags())
		if err != nil {
			return errors.Wrap(err, "initializing")
		}

		return Run(ctx, args[0], args[1])
	}
}

func load(ctx context.Ctx, path string) (document.Document, error) {
	if ctx.StrictEmpty {
		return document.LoadStrict(path)
	}

	doc, err := document.Load(path)
	if err != nil {
		return doc, err
	}

	if doc.LineCount() == 0 {
		log.Warnf("%s is empty\n", path)
	}

	return doc, nil
}

// Run compares the files at the given paths and renders the result
func Run(ctx context.Ctx, path1, path2 string) error {
	doc1, err := load(ctx, path1)
	if err != nil {
		return errors.Wrap(err, "loading the first file")
	}
	doc2, err := load(ctx, path2)
	if err != nil {
		return errors.Wrap(err, "loading the second file")
	}

	output.DocumentInfo(doc1)
	output.DocumentInfo(doc2)

	norm1 := normalize.New(doc1, ctx.Normalize)
	norm2 := normalize.New(doc2, ctx.Normalize)

	results := match.Compare(norm1, norm2)

	r := render.New(ctx.Stdout, ctx.Render, len(results))
	for i, res := range results {
		if err := r.Render(i, doc1.Line(i), doc2.Line(i), res); err != nil {
			return errors.Wrapf(err, "rendering line %d", i)
		}
	}

	summary := match.Summarize(results)
	if ctx.Summary {
		if err := r.Summary(summary); err != nil {
			return err
		}
	}

	if ctx.ExitCode && !summary.Identical() {
		return ErrDifferent
	}

	return nil
}
