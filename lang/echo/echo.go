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

// Package echo provides the published block copy program for the bitvm
// virtual machine.
//
// The program reads its input one byte at a time, each byte being stored as a
// block of 8 cells followed by a marker cell, until it reads a zero byte or
// runs out of input. It then writes the blocks back. Blocks are written back
// starting with the last one read, so that a single byte is echoed as is, while
// longer inputs come back reversed:
//
//	"A"            -> "A"
//	"hello, world" -> "dlrow ,olleh"
package echo

import (
	"github.com/db47h/bitvm/vm"
)

// Program is the block copy program.
var Program = vm.Program(">,>,>,>,>,>,>,>,>+<<<<<<<<+[>+]<[<]>>>>>>>>>[+<<<<<<<<[>]+<[+<]>>>>>>>>>>,>,>,>,>,>,>,>,>+<<<<<<<<+[>+]<[<]>>>>>>>>>]<[+<]+<<<<<<<<+[>+]<[<]>>>>>>>>>[+<<<<<<<<[>]+<[+<]>;>;>;>;>;>;>;>;<<<<<<<<+<<<<<<<<+[>+]<[<]>>>>>>>>>]<[+<]")

// Source is the same program, in assembly form. See package
// github.com/db47h/bitvm/asm.
const Source = `( read a byte into cells 1 to 8, one bit per cell, then set the
  marker cell 9 )
>,*8 right flip left*8
( clear the marker if the byte is zero )
flip loop right flip end left loop left end right*9

( loop on blocks, shifting each new one to the right of the previous )
loop
	flip left*8 loop right end flip left loop flip left end right*9
	>,*8 right flip left*8
	flip loop right flip end left loop left end right*9
end
left loop flip left end

( write the blocks back, last read first )
flip left*8 flip loop right flip end left loop left end right*9
loop
	flip left*8 loop right end flip left loop flip left end
	>;*8 left*8 flip left*8
	flip loop right flip end left loop left end right*9
end
left loop flip left end
`

// Run runs the block copy program on the given input and returns its output.
func Run(input []byte) ([]byte, error) {
	return vm.Interpret(Program, input)
}
