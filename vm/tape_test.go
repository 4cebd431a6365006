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

package vm_test

import (
	"reflect"
	"testing"

	"github.com/db47h/bitvm/vm"
)

func TestTape(t *testing.T) {
	tp := vm.NewTape()
	if tp.Len() != 1 || tp.Get(0) {
		t.Fatalf("Expected a single 0 cell, got %v", tp.Bits())
	}

	if !tp.Flip(0) || !tp.Get(0) {
		t.Fatal("Flip(0) failed")
	}
	// grow left
	tp.Set(-3, true)
	if tp.Len() != 4 {
		t.Fatalf("Expected 4 cells, got %d", tp.Len())
	}
	if idx := tp.Index(0); idx != 3 {
		t.Fatalf("Expected cell 0 at index 3, got %d", idx)
	}
	if idx := tp.Index(-3); idx != 0 {
		t.Fatalf("Expected cell -3 at index 0, got %d", idx)
	}
	// grow right
	if tp.Get(2) {
		t.Fatal("New cell is not 0")
	}
	if tp.Len() != 6 {
		t.Fatalf("Expected 6 cells, got %d", tp.Len())
	}
	if tp.Flip(-1) != true || tp.Flip(-1) != false {
		t.Fatal("Flip(-1) failed")
	}
	tp.Set(-2, true)
	tp.Set(-2, false)
	tp.Set(1, true)

	exp := []bool{true, false, false, true, true, false}
	if b := tp.Bits(); !reflect.DeepEqual(b, exp) {
		t.Fatalf("Expected %v, got %v", exp, b)
	}
	// reading inside the tape does not grow it
	tp.Get(-3)
	tp.Get(2)
	if tp.Len() != 6 {
		t.Fatalf("Expected 6 cells, got %d", tp.Len())
	}
}

func TestTape_far(t *testing.T) {
	tp := vm.NewTape()
	tp.Flip(1000)
	tp.Flip(-1000)
	if tp.Len() != 2001 {
		t.Fatalf("Expected 2001 cells, got %d", tp.Len())
	}
	b := tp.Bits()
	if !b[0] || !b[2000] || b[1000] {
		t.Fatal("Bad cell values")
	}
}
