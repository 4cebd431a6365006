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

import "github.com/bits-and-blooms/bitset"

// Tape is a tape of bit cells that grows in both directions.
//
// Cells are addressed by a head position relative to the very first cell of
// the tape, which is at position 0. Cells added to the left of it have
// negative positions. Addressing a cell outside of the tape grows the tape
// up to that cell. New cells are always 0.
//
// The physical index of a cell, i.e. its distance from the leftmost cell, is
// given by Index.
type Tape struct {
	right bitset.BitSet // cells at positions >= 0
	left  bitset.BitSet // cell at position -n is at left[n-1]
	nr    int
	nl    int
}

// NewTape returns a new tape with a single 0 cell.
func NewTape() *Tape {
	return &Tape{nr: 1}
}

// Len returns the number of cells on the tape.
func (t *Tape) Len() int {
	return t.nl + t.nr
}

// Index returns the physical index of the cell at position head.
func (t *Tape) Index(head int) int {
	return head + t.nl
}

func (t *Tape) grow(head int) {
	if head >= t.nr {
		t.nr = head + 1
	} else if head < -t.nl {
		t.nl = -head
	}
}

// Get returns the value of the cell at position head.
func (t *Tape) Get(head int) bool {
	t.grow(head)
	if head >= 0 {
		return t.right.Test(uint(head))
	}
	return t.left.Test(uint(-head - 1))
}

// Set sets the value of the cell at position head.
func (t *Tape) Set(head int, v bool) {
	t.grow(head)
	if head >= 0 {
		t.right.SetTo(uint(head), v)
	} else {
		t.left.SetTo(uint(-head-1), v)
	}
}

// Flip inverts the value of the cell at position head and returns the new
// value.
func (t *Tape) Flip(head int) bool {
	t.grow(head)
	if head >= 0 {
		return t.right.Flip(uint(head)).Test(uint(head))
	}
	n := uint(-head - 1)
	return t.left.Flip(n).Test(n)
}

// Bits returns the cell values from the leftmost to the rightmost cell.
func (t *Tape) Bits() []bool {
	b := make([]bool, 0, t.Len())
	for n := t.nl; n > 0; n-- {
		b = append(b, t.left.Test(uint(n-1)))
	}
	for n := 0; n < t.nr; n++ {
		b = append(b, t.right.Test(uint(n)))
	}
	return b
}
