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

// Package testutils provides utilities used in tests
package testutils

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

// WriteFile writes a file with the given content and filename inside dir and
// returns its path
func WriteFile(t *testing.T, dir, filename, content string) string {
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(errors.Wrap(err, "writing the file"))
	}

	return path
}

// NewCmd returns a new linediff command and pointers to stdout and stderr
func NewCmd(binaryName string, arg ...string) (*exec.Cmd, *bytes.Buffer, *bytes.Buffer, error) {
	var stdout, stderr bytes.Buffer

	binaryPath, err := filepath.Abs(binaryName)
	if err != nil {
		return &exec.Cmd{}, &stdout, &stderr, errors.Wrap(err, "getting the absolute path to the test binary")
	}

	cmd := exec.Command(binaryPath, arg...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = []string{}

	return cmd, &stdout, &stderr, nil
}

// Result is the outcome of a linediff command
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunCmd runs a linediff command and returns its outcome. A non-zero exit
// status is not a failure.
func RunCmd(t *testing.T, binaryName string, arg ...string) Result {
	t.Logf("running: %s %s", binaryName, strings.Join(arg, " "))

	cmd, stdout, stderr, err := NewCmd(binaryName, arg...)
	if err != nil {
		t.Fatal(errors.Wrap(err, "getting command").Error())
	}

	var exitCode int
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatal(errors.Wrapf(err, "running command %s", stderr.String()))
		}

		exitCode = exitErr.ExitCode()
	}

	// Print the output if and only if test fails later
	t.Logf("\n%s\n%s", stdout, stderr)

	return Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunCmd runs a linediff command and fails the test if it exits with a
// non-zero status
func MustRunCmd(t *testing.T, binaryName string, arg ...string) string {
	res := RunCmd(t, binaryName, arg...)
	if res.ExitCode != 0 {
		t.Fatalf("command exited with status %d: %s", res.ExitCode, res.Stderr)
	}

	return res.Stdout
}
