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

package syntax

import (
	"strings"
	"unicode"
)

const operatorChars = "*+-/<>=!$|?^~"

func isOperatorChar(r rune) bool {
	return strings.ContainsRune(operatorChars, r)
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isASCIIAlpha(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isIdentChar(r rune) bool {
	return isASCIIAlpha(r) || isASCIIDigit(r) || r == '_'
}

func isLabelChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (ctx *parseCtx) space() {
	ctx.cursor.ConsumeWhile(unicode.IsSpace)
}

func (ctx *parseCtx) phrase() (Phrase, error) {
	ctx.space()

	pos := ctx.cursor.Position()
	r, ok := ctx.cursor.Peek()
	if !ok {
		return nil, errUnexpectedEndOfInput(pos, "a phrase")
	}

	var phrase Phrase
	switch {
	case r == '{' || r == '[' || r == '(':
		expr, err := ctx.expression()
		if err != nil {
			return nil, err
		}
		phrase = expr
	case r == '"':
		text, err := ctx.text()
		if err != nil {
			return nil, err
		}
		phrase = text
	case r == ';':
		phrase = ctx.comment()
	case r == ':':
		next, ok := ctx.cursor.PeekSecond()
		if !ok || !isLabelChar(next) {
			return nil, errUnexpectedCharacter(pos, r, "a phrase")
		}
		phrase = ctx.label()
	case isASCIIDigit(r):
		phrase = ctx.number()
	case isASCIIAlpha(r):
		phrase = &Identifier{
			raw:   ctx.cursor.ConsumeWhile(isIdentChar),
			start: pos,
		}
	case isOperatorChar(r):
		phrase = &Identifier{
			raw:   ctx.cursor.ConsumeWhile(isOperatorChar),
			start: pos,
		}
	default:
		return nil, errUnexpectedCharacter(pos, r, "a phrase")
	}

	if err := ctx.annotation(); err != nil {
		return nil, err
	}
	return phrase, nil
}

func (ctx *parseCtx) text() (*Text, error) {
	start := ctx.cursor.Position()
	if r, ok := ctx.cursor.Next(); !ok {
		return nil, errUnexpectedEndOfInput(start, "'\"'")
	} else if r != '"' {
		return nil, errUnexpectedCharacter(start, r, "'\"'")
	}

	contentStart := ctx.cursor.Offset()
	escaped := false
	for {
		pos := ctx.cursor.Position()
		r, ok := ctx.cursor.Peek()
		if !ok {
			return nil, errUnexpectedEndOfInput(pos, "closing '\"'")
		}
		if r == '"' && !escaped {
			break
		}
		escaped = !escaped && r == '\\'
		ctx.cursor.Next()
	}
	raw := ctx.cursor.src[contentStart:ctx.cursor.Offset()]
	ctx.cursor.Next()

	return &Text{
		raw:   raw,
		start: start,
	}, nil
}

func (ctx *parseCtx) comment() *Comment {
	start := ctx.cursor.Position()
	// ';'
	ctx.cursor.Next()
	return &Comment{
		raw:   ctx.cursor.ConsumeWhile(func(r rune) bool { return r != '\n' }),
		start: start,
	}
}

func (ctx *parseCtx) label() *Label {
	start := ctx.cursor.Position()
	// ':'
	ctx.cursor.Next()
	return &Label{
		raw:   ctx.cursor.ConsumeWhile(isLabelChar),
		start: start,
	}
}

func (ctx *parseCtx) number() *Number {
	start := ctx.cursor.Position()
	sawPoint := false
	raw := ctx.cursor.ConsumeWhile(func(r rune) bool {
		if r == '.' && !sawPoint {
			sawPoint = true
			return true
		}
		return isASCIIDigit(r)
	})
	return &Number{
		raw:   raw,
		start: start,
	}
}

// annotation consumes an optional "::Type" suffix. The type name is
// checked and then dropped.
func (ctx *parseCtx) annotation() error {
	if r, ok := ctx.cursor.Peek(); !ok || r != ':' {
		return nil
	}
	if r, ok := ctx.cursor.PeekSecond(); !ok || r != ':' {
		return nil
	}
	ctx.cursor.Next()
	ctx.cursor.Next()

	pos := ctx.cursor.Position()
	if name := ctx.cursor.ConsumeWhile(isIdentChar); name == "" {
		return errMalformedAnnotation(pos)
	}
	return nil
}
