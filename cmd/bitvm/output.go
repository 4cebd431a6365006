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

package main

import (
	"fmt"
	"io"

	"github.com/db47h/bitvm/internal/ewr"
	"github.com/db47h/bitvm/vm"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

type outputFormat string

const (
	formatRaw  outputFormat = "raw"
	formatHex  outputFormat = "hex"
	formatBits outputFormat = "bits"
)

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }
func (f *outputFormat) Set(s string) error {
	switch v := outputFormat(s); v {
	case formatRaw, formatHex, formatBits:
		*f = v
		return nil
	default:
		return errors.Errorf("unsupported output format %q", s)
	}
}
func (f *outputFormat) Type() string { return "format" }

func writeOutput(w io.Writer, i *vm.Instance, format outputFormat, newline bool) error {
	ew := ewr.New(w)
	switch format {
	case formatHex:
		fmt.Fprintf(ew, "%x", i.Output())
	case formatBits:
		for _, b := range i.OutputBits() {
			if b {
				ew.WriteByte('1')
			} else {
				ew.WriteByte('0')
			}
		}
	default:
		ew.Write(i.Output())
	}
	if newline {
		ew.WriteByte('\n')
	}
	return ew.Err
}
