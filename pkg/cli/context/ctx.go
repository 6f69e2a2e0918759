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

// Package context defines linediff context
package context

import (
	"io"

	"github.com/dnote/linediff/pkg/cli/normalize"
	"github.com/dnote/linediff/pkg/cli/render"
)

// Ctx is a context holding the information of the current run
type Ctx struct {
	Version   string
	Normalize normalize.Options
	Render    render.Options
	// Summary prints the number of positions of each kind after the rows
	Summary bool
	// StrictEmpty makes an empty input file an error
	StrictEmpty bool
	// ExitCode makes the run fail when the files differ
	ExitCode bool
	Stdout   io.Writer
}
