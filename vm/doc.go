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

// Package vm implements a bit tape virtual machine.
//
// The machine runs programs written in a bit-level variant of the well known
// eight instruction tape language: tape cells hold a single bit, the
// increment/decrement pair is replaced by a single flip instruction, and
// input/output is done one bit at a time. The instruction set is:
//
//	symbol	name	description
//	------	----	-----------------------------------------------------------
//	+	flip	invert the bit under the pointer
//	,	read	set the bit under the pointer to the next input bit
//	;	write	append the bit under the pointer to the output
//	<	left	move the pointer left, growing the tape if needed
//	>	right	move the pointer right, growing the tape if needed
//	[	loop	if the bit under the pointer is 0, jump to the matching ]
//	]	end	if the bit under the pointer is 1, jump to the matching [
//
// Any other byte is a no-op and can be used for comments.
//
// Input bytes are converted to a bit stream, least significant bit first (see
// package github.com/db47h/bitvm/bits). Reading past the end of the input
// yields 0 bits. Output bits are packed back into bytes once the program
// terminates.
//
// Jumps land on the partner bracket itself, not on the instruction following
// it. The dispatch loop then evaluates the partner bracket, which always falls
// through since the bit under the pointer did not change. This shows in the
// instruction count, but not in the program output.
//
// Loop brackets are matched before execution starts, so a program with
// unbalanced brackets never runs. There is no bound on tape growth or on the
// number of instructions executed: a program that never terminates runs
// forever.
package vm
