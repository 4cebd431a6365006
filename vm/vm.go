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

package vm

import (
	"fmt"
	"io"

	"github.com/db47h/bitvm/bits"
	"github.com/db47h/bitvm/internal/ewr"
	"github.com/pkg/errors"
)

// Instance represents a bit tape VM instance.
type Instance struct {
	PC       int // Program Counter
	prog     Program
	jumps    JumpTable
	tape     *Tape
	head     int
	in       *bits.Reader
	out      bits.Writer
	insCount int64
}

// Option interface
type Option func(*Instance) error

// Input sets the input bytes. The program reads them one bit at a time, least
// significant bit first. The default is an empty input.
func Input(b []byte) Option {
	return func(i *Instance) error {
		i.in = bits.NewReader(b)
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new VM instance for the given program.
//
// Loop brackets are matched before anything else. If they are not properly
// nested, New returns an error whose cause is a *BracketError.
//
// Options will be set by calling SetOptions.
func New(p Program, opts ...Option) (*Instance, error) {
	jumps, err := NewJumpTable(p)
	if err != nil {
		return nil, errors.Wrap(err, "jump table")
	}
	i := &Instance{
		prog:  p,
		jumps: jumps,
		tape:  NewTape(),
	}
	if err = i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.in == nil {
		i.in = bits.NewReader(nil)
	}
	return i, nil
}

// Interpret runs program p with the given input and returns its output.
//
// If the loop brackets of p are not properly nested, the program is not run at
// all and the cause of the returned error is a *BracketError.
func Interpret(p Program, input []byte) ([]byte, error) {
	i, err := New(p, Input(input))
	if err != nil {
		return nil, err
	}
	if err = i.Run(); err != nil {
		return nil, err
	}
	return i.Output(), nil
}

// Program returns the program being run. It must not be modified.
func (i *Instance) Program() Program {
	return i.prog
}

// Tape returns the VM tape.
func (i *Instance) Tape() *Tape {
	return i.tape
}

// Pointer returns the physical index on the tape of the cell under the
// pointer.
func (i *Instance) Pointer() int {
	return i.tape.Index(i.head)
}

// Head returns the position of the cell under the pointer, relative to the
// initial cell.
func (i *Instance) Head() int {
	return i.head
}

// InputPos returns the number of input bits read so far.
func (i *Instance) InputPos() int {
	return i.in.Pos()
}

// Output returns the bytes written so far.
func (i *Instance) Output() []byte {
	return i.out.Bytes()
}

// OutputBits returns the bits written so far.
func (i *Instance) OutputBits() []bool {
	return i.out.Bits()
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

func dumpBits(w *ewr.Writer, b []bool) error {
	for _, v := range b {
		if v {
			w.WriteByte('1')
		} else {
			w.WriteByte('0')
		}
	}
	return w.Err
}

// Dump dumps the program counter, tape and output of the virtual machine to
// the specified io.Writer. The cell under the pointer is enclosed in
// brackets.
func (i *Instance) Dump(w io.Writer) error {
	ew := ewr.New(w)
	tape := i.tape.Bits()
	p := i.Pointer()
	fmt.Fprintf(ew, "pc: %d/%d, instructions: %d, input: %d/%d bits\n", i.PC, len(i.prog), i.insCount, i.in.Pos(), i.in.Len())
	fmt.Fprintf(ew, "tape: %d cells, pointer: %d\n", len(tape), p)
	dumpBits(ew, tape[:p])
	ew.WriteByte('[')
	dumpBits(ew, tape[p:p+1])
	ew.WriteByte(']')
	dumpBits(ew, tape[p+1:])
	fmt.Fprintf(ew, "\noutput: %d bits\n", i.out.Len())
	dumpBits(ew, i.out.Bits())
	ew.WriteByte('\n')
	return ew.Err
}
