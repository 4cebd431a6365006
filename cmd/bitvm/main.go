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
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"time"

	"github.com/db47h/bitvm/asm"
	"github.com/db47h/bitvm/lang/echo"
	"github.com/db47h/bitvm/vm"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

type app struct {
	program   string
	exec      string
	asm       bool
	inputFile string
	disasm    bool
	dump      bool
	newline   bool
	verbose   bool
	version   bool
	format    outputFormat
	log       *log.Logger
}

func newApp() *app {
	return &app{format: formatRaw, log: log.New()}
}

func (a *app) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "bitvm [flags] [input]",
		Short:         "Run bit tape programs.",
		Long:          "Run a bit tape program on the given input and print its output.",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          a.run,
	}
	f := cmd.Flags()
	f.StringVarP(&a.program, "program", "p", "", "load program from file `filename`")
	f.StringVarP(&a.exec, "exec", "e", "", "program `text`")
	f.BoolVarP(&a.asm, "asm", "a", false, "the program is in assembly form")
	f.StringVarP(&a.inputFile, "input", "i", "", "read input from file `filename`")
	f.BoolVarP(&a.disasm, "disasm", "d", false, "print the program disassembly and exit")
	f.BoolVar(&a.dump, "dump", false, "dump the VM state to stderr after the run")
	f.BoolVarP(&a.newline, "newline", "n", true, "append a new line to the output")
	f.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	f.BoolVar(&a.version, "version", false, "print version and exit")
	f.VarP(&a.format, "format", "f", "output `format`: raw, hex or bits")
	cmd.MarkFlagsMutuallyExclusive("program", "exec")
	return cmd
}

func (a *app) printVersion(w io.Writer) {
	fmt.Fprint(w, "bitvm ")
	if Version != "" {
		// Built via "make"
		fmt.Fprintf(w, "%s", Version)
	} else if info, ok := debug.ReadBuildInfo(); ok {
		// Built via "go install"
		fmt.Fprintf(w, "%s", info.Main.Version)
	} else {
		// Unknown, perhaps "go run"
		fmt.Fprintf(w, "(unknown version)")
	}
	fmt.Fprintln(w)
}

func (a *app) loadProgram() (vm.Program, error) {
	var (
		name = "echo"
		src  = []byte(echo.Program)
	)
	switch {
	case a.exec != "":
		name, src = "exec", []byte(a.exec)
	case a.program != "":
		var err error
		name = a.program
		if src, err = os.ReadFile(a.program); err != nil {
			return nil, errors.Wrap(err, "load program")
		}
	case a.asm:
		src = []byte(echo.Source)
	}
	a.log.WithFields(log.Fields{"program": name, "size": len(src), "asm": a.asm}).Debug("program loaded")
	if a.asm {
		return asm.Assemble(name, bytes.NewReader(src))
	}
	return vm.Program(src), nil
}

func (a *app) loadInput(cmd *cobra.Command, args []string) ([]byte, error) {
	switch {
	case len(args) > 0:
		if a.inputFile != "" {
			return nil, errors.New("input given both as argument and with --input")
		}
		return []byte(args[0]), nil
	case a.inputFile != "":
		b, err := os.ReadFile(a.inputFile)
		return b, errors.Wrap(err, "load input")
	}
	stdin := cmd.InOrStdin()
	if isTerminal(stdin) {
		return nil, errors.New("no input\n" + cmd.UsageString())
	}
	b, err := io.ReadAll(stdin)
	return b, errors.Wrap(err, "read stdin")
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	a.log.SetOutput(cmd.ErrOrStderr())
	if a.verbose {
		a.log.SetLevel(log.DebugLevel)
	}
	if a.version {
		a.printVersion(cmd.OutOrStdout())
		return nil
	}

	p, err := a.loadProgram()
	if err != nil {
		return err
	}
	if a.disasm {
		return asm.DisassembleAll(p, cmd.OutOrStdout())
	}

	input, err := a.loadInput(cmd, args)
	if err != nil {
		return err
	}

	i, err := vm.New(p, vm.Input(input))
	if err != nil {
		return err
	}
	start := time.Now()
	if err = i.Run(); err != nil {
		return err
	}
	a.log.WithFields(log.Fields{
		"instructions": i.InstructionCount(),
		"tape":         i.Tape().Len(),
		"input":        len(input),
		"output":       len(i.OutputBits()),
		"elapsed":      time.Since(start),
	}).Debug("run complete")

	if a.dump {
		if err = i.Dump(cmd.ErrOrStderr()); err != nil {
			return err
		}
	}
	return writeOutput(cmd.OutOrStdout(), i, a.format, a.newline)
}

func (a *app) atExit(w io.Writer, err error) {
	if !a.verbose {
		fmt.Fprintf(w, "bitvm: %v\n", err)
		return
	}
	fmt.Fprintf(w, "bitvm: %+v\n", err)
}

func main() {
	a := newApp()
	cmd := a.command()
	if err := cmd.Execute(); err != nil {
		a.atExit(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}
