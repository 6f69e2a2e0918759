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

// Package infra builds the context of a run from the command line flags
// and the configuration file
package infra

import (
	"os"

	"github.com/dnote/linediff/pkg/cli/config"
	"github.com/dnote/linediff/pkg/cli/consts"
	"github.com/dnote/linediff/pkg/cli/context"
	"github.com/dnote/linediff/pkg/cli/log"
	"github.com/dnote/linediff/pkg/cli/normalize"
	"github.com/dnote/linediff/pkg/cli/render"
	"github.com/dnote/linediff/pkg/cli/ui"
	"github.com/dnote/linediff/pkg/cli/utils"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// RunEFunc is a function type of linediff commands
type RunEFunc func(*cobra.Command, []string) error

// Flags holds the values of the command line flags
type Flags struct {
	ConfigPath       string
	IgnoreTabs       bool
	IgnoreTailCommas bool
	Width            int
	Style            string
	AlignIndex       bool
	NoColor          bool
	Highlight        bool
	Summary          bool
	StrictEmpty      bool
	ExitCode         bool
	Debug            bool
}

// merge overrides the config with the flags that were set on the command line
func merge(cf config.Config, flags Flags, changed func(string) bool) config.Config {
	if changed(consts.FlagIgnoreTabs) {
		cf.IgnoreTabs = flags.IgnoreTabs
	}
	if changed(consts.FlagIgnoreTailCommas) {
		cf.IgnoreTailCommas = flags.IgnoreTailCommas
	}
	if changed(consts.FlagWidth) {
		cf.Width = flags.Width
	}
	if changed(consts.FlagStyle) {
		cf.Style = flags.Style
	}
	if changed(consts.FlagAlignIndex) {
		cf.AlignIndex = flags.AlignIndex
	}
	if changed(consts.FlagNoColor) {
		enabled := !flags.NoColor
		cf.Color = &enabled
	}
	if changed(consts.FlagHighlight) {
		cf.Highlight = flags.Highlight
	}
	if changed(consts.FlagSummary) {
		cf.Summary = flags.Summary
	}
	if changed(consts.FlagStrictEmpty) {
		cf.StrictEmpty = flags.StrictEmpty
	}
	if changed(consts.FlagExitCode) {
		cf.ExitCode = flags.ExitCode
	}

	return cf
}

// newCtx turns a configuration into a context. detectWidth is only called
// when the configuration does not set a width.
func newCtx(versionTag string, cf config.Config, detectWidth func() int) (context.Ctx, error) {
	style, err := render.ParseStyle(cf.Style)
	if err != nil {
		return context.Ctx{}, errors.Wrap(err, "parsing style")
	}
	if cf.Width < 0 {
		return context.Ctx{}, errors.Errorf("invalid width %d", cf.Width)
	}

	width := cf.Width
	if width == 0 {
		width = detectWidth()
	}
	if width <= 0 {
		width = render.DefaultWidth
	}

	ctx := context.Ctx{
		Version: versionTag,
		Normalize: normalize.Options{
			Trim:                  cf.IgnoreTabs,
			DropTrailingSeparator: cf.IgnoreTailCommas,
		},
		Render: render.Options{
			Width:      width,
			Style:      style,
			AlignIndex: cf.AlignIndex,
			Highlight:  cf.Highlight,
		},
		Summary:     cf.Summary,
		StrictEmpty: cf.StrictEmpty,
		ExitCode:    cf.ExitCode,
		Stdout:      color.Output,
	}

	return ctx, nil
}

// Init returns the context of a run. The configuration file, if any, provides
// the defaults and the flags set on the command line take precedence.
func Init(versionTag string, cmd *cobra.Command, flags Flags) (context.Ctx, error) {
	log.SetDebug(flags.Debug)

	cf := config.Default()
	if flags.ConfigPath != "" {
		ok, err := utils.FileExists(flags.ConfigPath)
		if err != nil {
			return context.Ctx{}, errors.Wrapf(err, "checking config file at %s", flags.ConfigPath)
		}
		if !ok {
			return context.Ctx{}, errors.Errorf("config file %s does not exist", flags.ConfigPath)
		}

		cf, err = config.Read(flags.ConfigPath)
		if err != nil {
			return context.Ctx{}, errors.Wrapf(err, "loading config from %s", flags.ConfigPath)
		}
		log.Debug("loaded config from %s\n", flags.ConfigPath)
	}

	cf = merge(cf, flags, cmd.Flags().Changed)

	if cf.Color != nil {
		color.NoColor = !*cf.Color
	}

	ctx, err := newCtx(versionTag, cf, func() int {
		return ui.TerminalWidth(os.Stdout)
	})
	if err != nil {
		return context.Ctx{}, err
	}

	log.Debug("width: %d, style: %s, normalize: %+v\n", ctx.Render.Width, ctx.Render.Style, ctx.Normalize)

	return ctx, nil
}
