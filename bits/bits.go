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

// Package bits converts between byte strings and the bit streams consumed
// and produced by the bitvm virtual machine.
//
// Within a byte, bits are ordered from the least significant to the most
// significant one. That is, Pack([]byte{0x01}) yields
//
//	true false false false false false false false
package bits

const byteBits = 8

// Pack returns the bits of b, 8 bits per byte, least significant bit first.
func Pack(b []byte) []bool {
	bits := make([]bool, 0, len(b)*byteBits)
	for _, c := range b {
		for k := uint(0); k < byteBits; k++ {
			bits = append(bits, c>>k&1 != 0)
		}
	}
	return bits
}

// Unpack reassembles a bit sequence into bytes. Bits are grouped by 8 in
// order, bit k of a group being bit k of the resulting byte. If len(bits) is
// not a multiple of 8, the missing high order bits of the last byte are zero.
func Unpack(bits []bool) []byte {
	b := make([]byte, (len(bits)+byteBits-1)/byteBits)
	for n, bit := range bits {
		if bit {
			b[n/byteBits] |= 1 << uint(n%byteBits)
		}
	}
	return b
}

// Reader reads a bit sequence one bit at a time.
type Reader struct {
	bits []bool
	pos  int
}

// NewReader returns a Reader over the packed bits of b.
func NewReader(b []byte) *Reader {
	return &Reader{bits: Pack(b)}
}

// ReadBit returns the next bit and advances the read cursor. Once all bits
// have been read, ReadBit returns false.
func (r *Reader) ReadBit() bool {
	pos := r.pos
	if pos >= len(r.bits) {
		return false
	}
	r.pos++
	return r.bits[pos]
}

// Pos returns the position of the read cursor.
func (r *Reader) Pos() int { return r.pos }

// Len returns the total number of bits in the sequence.
func (r *Reader) Len() int { return len(r.bits) }

// Exhausted returns true if all bits have been read.
func (r *Reader) Exhausted() bool { return r.pos >= len(r.bits) }

// Writer accumulates bits.
type Writer struct {
	bits []bool
}

// WriteBit appends bit to the sequence.
func (w *Writer) WriteBit(bit bool) {
	w.bits = append(w.bits, bit)
}

// Bits returns the bits written so far. The returned slice aliases the
// writer's buffer.
func (w *Writer) Bits() []bool { return w.bits }

// Len returns the number of bits written so far.
func (w *Writer) Len() int { return len(w.bits) }

// Bytes returns the bits written so far, unpacked.
func (w *Writer) Bytes() []byte { return Unpack(w.bits) }
