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

import (
	"strings"
	"testing"
)

// Run must report a corrupted jump table instead of crashing.
func TestRun_badJumpTable(t *testing.T) {
	i, err := New(Program("[+]"))
	if err != nil {
		t.Fatal(err)
	}
	i.jumps = JumpTable{-1, -1, -1}
	err = i.Run()
	if err == nil {
		t.Fatal("Expected an error")
	}
	if i.PC != 0 {
		t.Errorf("Expected PC to point to the faulty instruction, got %d", i.PC)
	}
	if !strings.Contains(err.Error(), "no jump target for '['") {
		t.Errorf("Unexpected error message: %v", err)
	}
}
