// Copyright (c) 2024 John Millikin <john@john-millikin.com>
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

// Package yalltext renders a parsed program as an indented tree, one node
// per line.
package yalltext

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yall-lang/yall/syntax"
)

func Encode(program *syntax.Program) string {
	var buf strings.Builder
	EncodeTo(program, &buf)
	return buf.String()
}

func EncodeTo(program *syntax.Program, w io.Writer) error {
	e := encoder{w: w}
	for _, expr := range program.Expressions() {
		if e.err != nil {
			break
		}
		e.visitPhrase(expr)
	}
	return e.err
}

type encoder struct {
	w      io.Writer
	indent int
	err    error
}

func (e *encoder) line(s string) {
	if e.err != nil {
		return
	}
	if indent := strings.Repeat("\t", e.indent); indent != "" {
		if _, err := io.WriteString(e.w, indent); err != nil {
			e.err = err
			return
		}
	}
	if _, err := io.WriteString(e.w, s); err != nil {
		e.err = err
		return
	}
	if _, err := io.WriteString(e.w, "\n"); err != nil {
		e.err = err
		return
	}
}

func (e *encoder) linef(format string, a ...any) {
	e.line(fmt.Sprintf(format, a...))
}

func (e *encoder) visitPhrase(phrase syntax.Phrase) {
	switch phrase := phrase.(type) {
	case *syntax.Expression:
		if phrase.Len() == 0 {
			e.linef("%s {}", phrase.Kind())
			return
		}
		e.linef("%s {", phrase.Kind())
		e.indent += 1
		for _, value := range phrase.Values() {
			e.visitPhrase(value)
		}
		e.indent -= 1
		e.line("}")
	case *syntax.Identifier:
		e.linef("Identifier %s", strconv.Quote(phrase.Get()))
	case *syntax.Text:
		e.linef("Text %s", strconv.Quote(phrase.Get()))
	case *syntax.Number:
		e.linef("Number %s", strconv.Quote(phrase.Get()))
	case *syntax.Comment:
		e.linef("Comment %s", strconv.Quote(phrase.Text()))
	case *syntax.Label:
		e.linef("Label %s", strconv.Quote(phrase.Get()))
	default:
		panic(fmt.Sprintf("yalltext: unknown phrase type %T", phrase))
	}
}
