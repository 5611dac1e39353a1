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

// Package yallyaml renders a parsed program as a YAML document.
package yallyaml

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/yall-lang/yall/syntax"
)

type phraseDoc struct {
	Type     string       `yaml:"type"`
	Position string       `yaml:"position"`
	Kind     string       `yaml:"kind,omitempty"`
	Value    *string      `yaml:"value,omitempty"`
	Values   *[]phraseDoc `yaml:"values,omitempty"`
}

type programDoc struct {
	Program []phraseDoc `yaml:"program"`
}

func Encode(program *syntax.Program) (string, error) {
	var buf bytes.Buffer
	if err := EncodeTo(program, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func EncodeTo(program *syntax.Program, w io.Writer) error {
	doc := programDoc{
		Program: make([]phraseDoc, 0, program.Len()),
	}
	for _, expr := range program.Expressions() {
		doc.Program = append(doc.Program, newPhraseDoc(expr))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}

func newPhraseDoc(phrase syntax.Phrase) phraseDoc {
	doc := phraseDoc{
		Position: phrase.Pos().String(),
	}
	var value string
	switch phrase := phrase.(type) {
	case *syntax.Expression:
		doc.Type = "expression"
		doc.Kind = phrase.Kind().String()
		values := make([]phraseDoc, 0, phrase.Len())
		for _, child := range phrase.Values() {
			values = append(values, newPhraseDoc(child))
		}
		doc.Values = &values
		return doc
	case *syntax.Identifier:
		doc.Type = "identifier"
		value = phrase.Get()
	case *syntax.Text:
		doc.Type = "text"
		value = phrase.Get()
	case *syntax.Number:
		doc.Type = "number"
		value = phrase.Get()
	case *syntax.Comment:
		doc.Type = "comment"
		value = phrase.Text()
	case *syntax.Label:
		doc.Type = "label"
		value = phrase.Get()
	default:
		panic(fmt.Sprintf("yallyaml: unknown phrase type %T", phrase))
	}
	doc.Value = &value
	return doc
}
