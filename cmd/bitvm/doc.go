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

// The bitvm command runs bit tape programs on a given input and prints their
// output. It is a showcase for the package github.com/db47h/bitvm/vm.
//
// Usage:
//
//	bitvm [flags] [input]
//
//	-a, --asm
//		  the program is in assembly form
//	-d, --disasm
//		  print the program disassembly and exit
//	    --dump
//		  dump the VM state to stderr after the run
//	-e, --exec text
//		  program text
//	-f, --format format
//		  output format: raw, hex or bits (default raw)
//	-i, --input filename
//		  read input from file filename
//	-n, --newline
//		  append a new line to the output (default true)
//	-p, --program filename
//		  load program from file filename
//	-v, --verbose
//		  enable debug logging
//	    --version
//		  print version and exit
//
// The program is either read from the file given with -p, given on the
// command line with -e, or defaults to the published block copy program (see
// package github.com/db47h/bitvm/lang/echo). With -a, the program text is
// assembled first (see package github.com/db47h/bitvm/asm).
//
// The input is taken from the first command line argument. If there is none,
// it is read from the file given with -i, or from stdin if stdin is not a
// terminal.
//
// -format: raw writes the output bytes as is. hex writes them as hexadecimal
// digits. bits writes the output bits, as 0 and 1 characters, in the order the
// program wrote them. Use bits for programs whose output is not a whole number
// of bytes.
//
// -dump: writes the program counter, instruction count, tape and output bits
// to stderr once the program terminates. The cell under the pointer is shown
// between brackets.
//
// -verbose: logs run statistics, and prints a full stack trace should an error
// occur.
//
// The exit status is 0 on success, 1 on any error, including usage errors and
// programs with unbalanced loops.
package main
