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

package root

import (
	"github.com/dnote/linediff/pkg/cli/consts"
	"github.com/dnote/linediff/pkg/cli/infra"
	"github.com/spf13/cobra"
)

var flags infra.Flags

var example = `
 * Compare two files side by side
 linediff old.txt new.txt

 * Ignore surrounding whitespace and trailing commas or colons
 linediff -t -c old.json new.json`

var root = &cobra.Command{
	Use:           "linediff <file1> <file2>",
	Short:         "linediff - compare two files line by line, side by side",
	Example:       example,
	Args:          cobra.ExactArgs(2),
	SilenceErrors: true,
	SilenceUsage:  true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func init() {
	f := root.Flags()

	f.StringVar(&flags.ConfigPath, consts.FlagConfig, "", "the path to a YAML file with default flag values")
	f.BoolVarP(&flags.IgnoreTabs, consts.FlagIgnoreTabs, "t", false, "ignore leading and trailing whitespace")
	f.BoolVarP(&flags.IgnoreTailCommas, consts.FlagIgnoreTailCommas, "c", false, "ignore a trailing comma or colon")
	f.IntVarP(&flags.Width, consts.FlagWidth, "w", 0, "the width of the output (defaults to the terminal width)")
	f.StringVar(&flags.Style, consts.FlagStyle, "annotated", "the markers to use: classic, symbols or annotated")
	f.BoolVar(&flags.AlignIndex, consts.FlagAlignIndex, false, "pad line numbers to the same width")
	f.BoolVar(&flags.NoColor, consts.FlagNoColor, false, "disable colors")
	f.BoolVar(&flags.Highlight, consts.FlagHighlight, false, "highlight the characters that differ")
	f.BoolVar(&flags.Summary, consts.FlagSummary, false, "print the number of equal, moved and unmatched lines")
	f.BoolVar(&flags.StrictEmpty, consts.FlagStrictEmpty, false, "fail if a file is empty")
	f.BoolVar(&flags.ExitCode, consts.FlagExitCode, false, "exit with status 1 if the files differ")
	f.BoolVar(&flags.Debug, consts.FlagDebug, false, "print debug information")
}

// GetRoot returns the root command
func GetRoot() *cobra.Command {
	return root
}

// GetFlags returns the values of the flags of the root command
func GetFlags() infra.Flags {
	return flags
}

// SetRunE sets the function run by the root command
func SetRunE(fn infra.RunEFunc) {
	root.RunE = fn
}

// Register adds a new command
func Register(cmd *cobra.Command) {
	root.AddCommand(cmd)
}

// Execute runs the main command
func Execute() error {
	return root.Execute()
}
