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

package asm_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/db47h/bitvm/asm"
)

func ExampleAssemble() {
	code := `
	( write a 0xff byte, then echo the first input bit )
	flip write*8
	right ,;	( raw program text )
	loop left end
`

	p, err := asm.Assemble("raw_string", strings.NewReader(code))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s\n", p)

	asm.DisassembleAll(p, os.Stdout)

	// Output:
	// +;;;;;;;;>,;[<]
	//      0	flip
	//      1	write*8
	//      9	right
	//     10	read
	//     11	write
	//     12	loop
	//     13	left
	//     14	end
}
