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

// Program is a sequence of instruction symbols. Bytes that are not
// instruction symbols are ignored.
type Program []byte

// Instruction symbols.
const (
	OpFlip  byte = '+'
	OpRead  byte = ','
	OpWrite byte = ';'
	OpLeft  byte = '<'
	OpRight byte = '>'
	OpLoop  byte = '['
	OpEnd   byte = ']'
)

// IsOp returns true if c is an instruction symbol.
func IsOp(c byte) bool {
	switch c {
	case OpFlip, OpRead, OpWrite, OpLeft, OpRight, OpLoop, OpEnd:
		return true
	}
	return false
}
