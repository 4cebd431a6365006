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

// Package asm provides utility functions to assemble and disassemble bitvm
// programs.
//
// Supported assembler mnemonics:
//
//	symbol	asm	aliases		description
//	------	-----	--------------	-------------------------------------------------
//	+	flip			invert the bit under the pointer
//	,	read	in		set the bit under the pointer to the next input bit
//	;	write	out		append the bit under the pointer to the output
//	<	left			move the pointer left
//	>	right			move the pointer right
//	[	loop	while		jump to the matching end if the bit under the pointer is 0
//	]	end	repeat		jump to the matching loop if the bit under the pointer is 1
//
// Input is split at white space (space, tab or new line) into tokens. Each
// token is either a mnemonic, or raw program text made only of instruction
// symbols, like "+[>]" or ";". Raw program text is compiled as is.
//
// Repeat counts:
//
// A mnemonic or raw program text can be followed by a star and a decimal
// count to repeat it:
//
//	right*8		( compiles as >>>>>>>> )
//	>,*3		( compiles as >,>,>, )
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. The body of the
// comment must be separated from the enclosing parentheses by a space. That is:
//
// Some valid comments:
//
//	( this is a valid comment )
//	( this is a
//	  rather long
//	  multiline comment )
//
// The following are invalid comments:
//
//	(this will be seen by the parser as an instruction named "(this" )
//	( comments may ( not be nested ) here, the parser will complain about
//	  "here," )
//
// The assembler does not check that loops are balanced. This is done by the
// VM when loading the program.
package asm
