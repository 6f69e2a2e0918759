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

// Package consts provides definitions of constants
package consts

var (
	// Name is the name of the program
	Name = "linediff"
)

// Flag names
const (
	FlagConfig           = "config"
	FlagIgnoreTabs       = "ignore-tabs"
	FlagIgnoreTailCommas = "ignore-tail-commas"
	FlagWidth            = "width"
	FlagStyle            = "style"
	FlagAlignIndex       = "align-index"
	FlagNoColor          = "no-color"
	FlagHighlight        = "highlight"
	FlagSummary          = "summary"
	FlagStrictEmpty      = "strict-empty"
	FlagExitCode         = "exit-code"
	FlagDebug            = "debug"
)
