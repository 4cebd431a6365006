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

import "github.com/pkg/errors"

func (i *Instance) jump() {
	pc, ok := i.jumps.Target(i.PC)
	if !ok {
		panic(errors.Errorf("no jump target for %q", i.prog[i.PC]))
	}
	i.PC = pc
}

// Run starts execution of the VM and returns once the program counter has
// gone past the last instruction.
//
// A jump sets the PC to the partner bracket itself, which is evaluated by the
// next iteration of the dispatch loop.
//
// If an error occurs, the PC will point to the instruction that triggered the
// error. Since jump targets are checked when the instance is created, this
// only happens if the instance has been tampered with.
func (i *Instance) Run() (err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case error:
				err = errors.Wrapf(e, "recovered error @pc=%d/%d, pointer %d/%d", i.PC, len(i.prog), i.Pointer(), i.tape.Len())
			default:
				panic(e)
			}
		}
	}()
	i.insCount = 0
	for i.PC < len(i.prog) {
		switch i.prog[i.PC] {
		case OpFlip:
			i.tape.Flip(i.head)
			i.PC++
		case OpRead:
			i.tape.Set(i.head, i.in.ReadBit())
			i.PC++
		case OpWrite:
			i.out.WriteBit(i.tape.Get(i.head))
			i.PC++
		case OpLeft:
			i.head--
			i.tape.grow(i.head)
			i.PC++
		case OpRight:
			i.head++
			i.tape.grow(i.head)
			i.PC++
		case OpLoop:
			if !i.tape.Get(i.head) {
				i.jump()
			} else {
				i.PC++
			}
		case OpEnd:
			if i.tape.Get(i.head) {
				i.jump()
			} else {
				i.PC++
			}
		default:
			i.PC++
		}
		i.insCount++
	}
	return nil
}
