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

import "strconv"

// BracketError is returned when loop brackets are not properly nested. Pos is
// the position in the program of the bracket that has no partner.
type BracketError struct {
	Pos int
}

func (e *BracketError) Error() string {
	return "mismatched bracket at position " + strconv.Itoa(e.Pos)
}

// JumpTable maps the position of each loop bracket in a program to the
// position of its partner. Other positions map to -1.
type JumpTable []int

// NewJumpTable matches the loop brackets of p.
//
// An unmatched ] is reported at its own position. If some [ are still open at
// the end of the program, the error reports the leftmost one.
func NewJumpTable(p Program) (JumpTable, error) {
	var stack []int
	t := make(JumpTable, len(p))
	for pc, op := range p {
		t[pc] = -1
		switch op {
		case OpLoop:
			stack = append(stack, pc)
		case OpEnd:
			if len(stack) == 0 {
				return nil, &BracketError{pc}
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			t[open], t[pc] = pc, open
		}
	}
	if len(stack) > 0 {
		return nil, &BracketError{stack[0]}
	}
	return t, nil
}

// Target returns the position of the partner of the bracket at pc. ok is false
// if there is no bracket at pc.
func (t JumpTable) Target(pc int) (target int, ok bool) {
	if pc < 0 || pc >= len(t) || t[pc] < 0 {
		return -1, false
	}
	return t[pc], true
}
