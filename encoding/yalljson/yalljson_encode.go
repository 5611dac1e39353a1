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

// Package yalljson renders a parsed program as indented JSON. Every node is
// an object with a single key naming its type.
package yalljson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/yall-lang/yall/syntax"
)

func Encode(program *syntax.Program) []byte {
	var buf bytes.Buffer
	dumpProgram(&buf, program)
	return buf.Bytes()
}

func EncodeTo(program *syntax.Program, w io.Writer) error {
	_, err := w.Write(Encode(program))
	return err
}

func quoteJSON(s string) []byte {
	quoted, _ := json.Marshal(s)
	return quoted
}

func dumpProgram(buf *bytes.Buffer, program *syntax.Program) {
	buf.WriteString("{\"program\": [")
	for ii, expr := range program.Expressions() {
		if ii > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
		dumpPhrase(buf, expr, 1)
	}
	if program.Len() > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("]}\n")
}

func nodeName(phrase syntax.Phrase) string {
	switch phrase.(type) {
	case *syntax.Expression:
		return "expression"
	case *syntax.Identifier:
		return "identifier"
	case *syntax.Text:
		return "text"
	case *syntax.Number:
		return "number"
	case *syntax.Comment:
		return "comment"
	case *syntax.Label:
		return "label"
	default:
		panic(fmt.Sprintf("yalljson: unknown phrase type %T", phrase))
	}
}

func dumpPhrase(buf *bytes.Buffer, phrase syntax.Phrase, indent int) {
	buf.WriteString(strings.Repeat("    ", indent))
	buf.WriteString("{")
	buf.Write(quoteJSON(nodeName(phrase)))
	buf.WriteString(": {\n")
	dumpPositionJSON(buf, phrase.Pos(), indent+1)

	var value string
	switch phrase := phrase.(type) {
	case *syntax.Expression:
		buf.WriteString(",\n")
		buf.WriteString(strings.Repeat("    ", indent+1))
		buf.WriteString(`"kind": `)
		buf.Write(quoteJSON(phrase.Kind().String()))
		buf.WriteString(",\n")
		buf.WriteString(strings.Repeat("    ", indent+1))
		if phrase.Len() == 0 {
			buf.WriteString(`"values": []}}`)
			return
		}
		buf.WriteString("\"values\": [\n")
		for ii, child := range phrase.Values() {
			if ii > 0 {
				buf.WriteString(",\n")
			}
			dumpPhrase(buf, child, indent+2)
		}
		buf.WriteString("\n")
		buf.WriteString(strings.Repeat("    ", indent+1))
		buf.WriteString("]}}")
		return
	case *syntax.Identifier:
		value = phrase.Get()
	case *syntax.Text:
		value = phrase.Get()
	case *syntax.Number:
		value = phrase.Get()
	case *syntax.Comment:
		value = phrase.Text()
	case *syntax.Label:
		value = phrase.Get()
	}
	buf.WriteString(",\n")
	buf.WriteString(strings.Repeat("    ", indent+1))
	buf.WriteString(`"value": `)
	buf.Write(quoteJSON(value))
	buf.WriteString("}}")
}

func dumpPositionJSON(buf *bytes.Buffer, pos syntax.Position, indent int) {
	buf.WriteString(strings.Repeat("    ", indent))
	buf.WriteString(fmt.Sprintf(
		`"position": {"line": %d, "column": %d}`,
		pos.Line,
		pos.Column,
	))
}
