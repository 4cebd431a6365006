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

package asm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/bitvm/internal/ewr"
	"github.com/db47h/bitvm/vm"
)

var opcodes = [...]struct {
	op    byte
	names []string
}{
	{vm.OpFlip, []string{"flip"}},
	{vm.OpRead, []string{"read", "in"}},
	{vm.OpWrite, []string{"write", "out"}},
	{vm.OpLeft, []string{"left"}},
	{vm.OpRight, []string{"right"}},
	{vm.OpLoop, []string{"loop", "while"}},
	{vm.OpEnd, []string{"end", "repeat"}},
}

var (
	opcodeIndex = make(map[string]byte)
	mnemonics   = make(map[byte]string)
)

func init() {
	for _, o := range opcodes {
		for _, n := range o.names {
			opcodeIndex[n] = o.op
		}
		mnemonics[o.op] = o.names[0]
	}
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting program and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) (vm.Program, error) {
	p := newParser()
	if err := p.Parse(name, r); err != nil {
		return nil, err
	}
	return p.prog, nil
}

// skip returns the position of the first instruction at or after pc.
func skip(p vm.Program, pc int) int {
	for pc < len(p) && !vm.IsOp(p[pc]) {
		pc++
	}
	return pc
}

// Disassemble writes a disassembly of the instruction at position pc in the
// given program to the specified io.Writer and returns the position of the
// next instruction and any write error.
//
// Non-instruction bytes at pc are skipped. A run of identical instructions is
// written as a single mnemonic with a repeat count. If there is no instruction
// left, Disassemble writes nothing and returns len(p).
func Disassemble(p vm.Program, pc int, w io.Writer) (next int, err error) {
	ew := ewr.New(w)
	pc = skip(p, pc)
	if pc >= len(p) {
		return len(p), nil
	}
	op := p[pc]
	next = pc + 1
	for next < len(p) && p[next] == op {
		next++
	}
	io.WriteString(ew, mnemonics[op])
	if n := next - pc; n > 1 {
		ew.WriteByte('*')
		io.WriteString(ew, strconv.Itoa(n))
	}
	return next, ew.Err
}

// DisassembleAll writes a disassembly of the whole program to the specified
// io.Writer, one instruction per line, prefixed with its address. It will
// return any write error.
func DisassembleAll(p vm.Program, w io.Writer) error {
	ew := ewr.New(w)
	for pc := skip(p, 0); pc < len(p); pc = skip(p, pc) {
		fmt.Fprintf(ew, "% 6d\t", pc)
		pc, _ = Disassemble(p, pc, ew)
		ew.WriteByte('\n')
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}

// Strip returns a copy of p stripped of all non-instruction bytes.
func Strip(p vm.Program) vm.Program {
	s := make(vm.Program, 0, len(p))
	for _, c := range p {
		if vm.IsOp(c) {
			s = append(s, c)
		}
	}
	return s
}
