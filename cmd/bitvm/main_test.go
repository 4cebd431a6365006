// This file is part of bitvm - https://github.com/db47h/bitvm
//
// Copyright 2026 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/db47h/bitvm/vm"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(stdin string, args ...string) (a *app, stdout, stderr string, err error) {
	a = newApp()
	cmd := a.command()
	var o, e bytes.Buffer
	if args == nil {
		// cobra falls back to os.Args
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&o)
	cmd.SetErr(&e)
	err = cmd.Execute()
	return a, o.String(), e.String(), err
}

func TestRun(t *testing.T) {
	for _, test := range []struct {
		name  string
		stdin string
		args  []string
		out   string
	}{
		{"echo", "", []string{"A"}, "A\n"},
		{"stdin", "hello, world", nil, "dlrow ,olleh\n"},
		{"empty", "", []string{""}, "\n"},
		{"bits", "", []string{"-e", ",[;,]", "-f", "bits", "\x07"}, "111\n"},
		{"hex", "", []string{"-e", "+;;;;;;;;", "--format=hex", "-n=false", ""}, "ff"},
		{"asm", "", []string{"-a", "-e", "flip write*8", "-n=false", ""}, "\xff"},
		{"asm-echo", "", []string{"--asm", "A"}, "A\n"},
		{"disasm", "", []string{"-d", "-e", "++;"}, "     0\tflip*2\n     2\twrite\n"},
	} {
		_, out, _, err := execute(test.stdin, test.args...)
		if assert.NoError(t, err, test.name) {
			assert.Equal(t, test.out, out, test.name)
		}
	}
}

func TestRun_files(t *testing.T) {
	dir := t.TempDir()
	prog := filepath.Join(dir, "copy.bt")
	input := filepath.Join(dir, "input")
	require.NoError(t, os.WriteFile(prog, []byte(",;,;,;,;,;,;,;,; copy one byte"), 0644))
	require.NoError(t, os.WriteFile(input, []byte("Zzz"), 0644))

	_, out, _, err := execute("", "-p", prog, "-i", input)
	require.NoError(t, err)
	assert.Equal(t, "Z\n", out)

	_, _, _, err = execute("", "-p", filepath.Join(dir, "missing"), "x")
	assert.True(t, os.IsNotExist(errors.Cause(err)), "got %v", err)
}

func TestRun_errors(t *testing.T) {
	_, out, _, err := execute("", "-e", "+]", "x")
	require.Error(t, err)
	assert.Empty(t, out)
	be, ok := errors.Cause(err).(*vm.BracketError)
	require.True(t, ok, "got %T", errors.Cause(err))
	assert.Equal(t, 1, be.Pos)

	for _, args := range [][]string{
		{"-f", "json", "x"},
		{"-e", "+", "-p", "prog.bt", "x"},
		{"-i", "input", "x"},
		{"x", "y"},
		{"-a", "-e", "flip jump"},
	} {
		_, _, _, err = execute("", args...)
		assert.Error(t, err, "%v", args)
	}
}

func TestRun_verbose(t *testing.T) {
	_, out, stderr, err := execute("", "-v", "--dump", "A")
	require.NoError(t, err)
	assert.Equal(t, "A\n", out)
	assert.Contains(t, stderr, "run complete")
	assert.Contains(t, stderr, "instructions=367")
	assert.Contains(t, stderr, "tape: 28 cells, pointer: 0")
}

func TestRun_version(t *testing.T) {
	_, out, _, err := execute("", "--version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "bitvm "), out)
}

func TestAtExit(t *testing.T) {
	a, _, _, err := execute("", "-e", "[", "x")
	require.Error(t, err)
	var b bytes.Buffer
	a.atExit(&b, err)
	assert.Equal(t, "bitvm: jump table: mismatched bracket at position 0\n", b.String())

	a, _, _, err = execute("", "-v", "-e", "[", "x")
	require.Error(t, err)
	b.Reset()
	a.atExit(&b, err)
	// stack trace
	assert.Contains(t, b.String(), "bitvm/vm.New")
}
