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

package asm

import (
	"bytes"
	"io"
	"strconv"
	"strings"
	"text/scanner"
	"unicode"

	"github.com/db47h/bitvm/vm"
)

const (
	maxErrors = 10
	maxRepeat = 1 << 24
)

// ErrMsg is an error message at a given position in the source.
type ErrMsg struct {
	Pos scanner.Position
	Msg string
}

func (e *ErrMsg) Error() string {
	return e.Pos.String() + ": " + e.Msg
}

// ErrAsm is the error type returned by Assemble. It holds up to 10 error
// messages, one per line when formatted with Error.
type ErrAsm []ErrMsg

func (e ErrAsm) Error() string {
	var b strings.Builder
	for i := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(e[i].Error())
	}
	return b.String()
}

func isIdentRune(ch rune, i int) bool {
	return unicode.IsLetter(ch) || unicode.IsSymbol(ch) || unicode.IsPunct(ch) || unicode.IsDigit(ch)
}

type parser struct {
	prog vm.Program
	s    scanner.Scanner
	errs ErrAsm
}

func newParser() *parser {
	return &parser{prog: vm.Program{}}
}

func (p *parser) error(pos scanner.Position, msg string) {
	if len(p.errs) < maxErrors {
		p.errs = append(p.errs, ErrMsg{pos, msg})
	}
}

func scanPos(s *scanner.Scanner) scanner.Position {
	pos := s.Position
	if !pos.IsValid() {
		pos = s.Pos()
	}
	return pos
}

// compile compiles a single token.
func (p *parser) compile(tok string) {
	base, n := tok, 1
	if k := strings.LastIndexByte(tok, '*'); k >= 0 {
		c, err := strconv.Atoi(tok[k+1:])
		switch {
		case err != nil || c < 1:
			p.error(p.s.Position, "invalid repeat count: "+tok)
			return
		case c > maxRepeat:
			p.error(p.s.Position, "repeat count too large: "+tok)
			return
		}
		base, n = tok[:k], c
	}
	if op, ok := opcodeIndex[base]; ok {
		p.prog = append(p.prog, bytes.Repeat([]byte{op}, n)...)
		return
	}
	if base == "" {
		p.error(p.s.Position, "missing instruction: "+tok)
		return
	}
	for i := 0; i < len(base); i++ {
		if !vm.IsOp(base[i]) {
			p.error(p.s.Position, "unknown instruction: "+base)
			return
		}
	}
	p.prog = append(p.prog, bytes.Repeat([]byte(base), n)...)
}

// Parse does the parsing and compiling.
func (p *parser) Parse(name string, r io.Reader) error {
	p.s.Init(r)
	p.s.Error = func(s *scanner.Scanner, msg string) {
		p.error(scanPos(s), msg)
	}
	p.s.IsIdentRune = isIdentRune
	p.s.Mode = scanner.ScanIdents
	p.s.Filename = name

	for tok := p.s.Scan(); tok != scanner.EOF && len(p.errs) < maxErrors; tok = p.s.Scan() {
		if tok != scanner.Ident {
			p.error(p.s.Position, "unexpected character "+strconv.QuoteRune(tok))
			continue
		}
		s := p.s.TokenText()
		if s == "(" {
			// skip comments
			pos := p.s.Position
			for tok = p.s.Scan(); tok != scanner.EOF && (tok != scanner.Ident || p.s.TokenText() != ")"); tok = p.s.Scan() {
			}
			if tok == scanner.EOF {
				p.error(pos, "unterminated comment")
				break
			}
			continue
		}
		p.compile(s)
	}

	if len(p.errs) > 0 {
		return p.errs
	}
	return nil
}
