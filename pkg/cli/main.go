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

package main

import (
	"os"

	"github.com/dnote/linediff/pkg/cli/log"
	"github.com/pkg/errors"

	// commands
	"github.com/dnote/linediff/pkg/cli/cmd/compare"
	"github.com/dnote/linediff/pkg/cli/cmd/root"
	"github.com/dnote/linediff/pkg/cli/cmd/version"
)

// versionTag is populated during link time
var versionTag = "master"

func main() {
	root.SetRunE(compare.NewRun(versionTag))
	root.Register(version.NewCmd(versionTag))

	if err := root.Execute(); err != nil {
		if errors.Cause(err) != compare.ErrDifferent {
			log.Errorf("%s\n", err.Error())
		}
		os.Exit(1)
	}
}
