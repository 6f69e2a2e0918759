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

// Package config reads the optional configuration file holding the defaults
// of the command line flags
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// Config holds linediff configuration
type Config struct {
	IgnoreTabs       bool   `yaml:"ignoreTabs"`
	IgnoreTailCommas bool   `yaml:"ignoreTailCommas"`
	Width            int    `yaml:"width"`
	Style            string `yaml:"style"`
	AlignIndex       bool   `yaml:"alignIndex"`
	// Color forces colors on or off. Colors follow the terminal if it is not set.
	Color       *bool `yaml:"color"`
	Highlight   bool  `yaml:"highlight"`
	Summary     bool  `yaml:"summary"`
	StrictEmpty bool  `yaml:"strictEmpty"`
	ExitCode    bool  `yaml:"exitCode"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		Style: "annotated",
	}
}

// Read reads the config file at the given path. Keys missing from the file
// keep their default values.
func Read(path string) (Config, error) {
	ret := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return ret, errors.Wrap(err, "reading config file")
	}

	err = yaml.UnmarshalStrict(b, &ret)
	if err != nil {
		return ret, errors.Wrap(err, "unmarshalling config")
	}

	if ret.Width < 0 {
		return ret, errors.Errorf("invalid width %d in config", ret.Width)
	}

	return ret, nil
}
