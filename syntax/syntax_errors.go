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
	"fmt"
	"unicode/utf8"
)

type ErrorKind uint8

const (
	E_SOURCE_TOO_LONG ErrorKind = iota + 1
	E_INVALID_UTF8
	E_UNEXPECTED_END_OF_INPUT
	E_UNEXPECTED_CHARACTER
	E_UNMATCHED_TERMINATOR
	E_MALFORMED_ANNOTATION
	E_NESTING_TOO_DEEP
)

func (k ErrorKind) String() string {
	switch k {
	case E_SOURCE_TOO_LONG:
		return "SourceTooLong"
	case E_INVALID_UTF8:
		return "InvalidUtf8"
	case E_UNEXPECTED_END_OF_INPUT:
		return "UnexpectedEndOfInput"
	case E_UNEXPECTED_CHARACTER:
		return "UnexpectedCharacter"
	case E_UNMATCHED_TERMINATOR:
		return "UnmatchedTerminator"
	case E_MALFORMED_ANNOTATION:
		return "MalformedAnnotation"
	case E_NESTING_TOO_DEEP:
		return "NestingTooDeep"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

type Error struct {
	code     uint32
	kind     ErrorKind
	message  string
	pos      Position
	found    rune
	hasFound bool
	expected rune
}

var _ error = (*Error)(nil)

func (err *Error) Error() string {
	return fmt.Sprintf("E%d: %s", err.code, err.message)
}

func (err *Error) Code() uint32 {
	return err.code
}

func (err *Error) Kind() ErrorKind {
	return err.kind
}

func (err *Error) Message() string {
	return err.message
}

func (err *Error) Position() Position {
	return err.pos
}

// Found returns the offending character of an UnexpectedCharacter or
// UnmatchedTerminator error. It returns false if the input ended instead.
func (err *Error) Found() (rune, bool) {
	return err.found, err.hasFound
}

// Expected returns the terminator an UnmatchedTerminator error was
// looking for.
func (err *Error) Expected() rune {
	return err.expected
}

func quoteChar(r rune) string {
	if r < 0x20 || r == 0x7F {
		return fmt.Sprintf("U+%04X", r)
	}
	return fmt.Sprintf("'%s' (U+%04X)", string(r), r)
}

func errSourceTooLong(srcLen int) error {
	return &Error{
		code: 1000,
		kind: E_SOURCE_TOO_LONG,
		message: fmt.Sprintf(
			"Source file size (%d bytes) exceeds maximum (%d bytes)",
			srcLen, maxSrcLen,
		),
		pos: Position{1, 1},
	}
}

func errInvalidUtf8(src []byte) error {
	cursor := NewCursor(string(src))
	for {
		r, ok := cursor.Peek()
		if !ok {
			break
		}
		if r == utf8.RuneError {
			rest := src[cursor.Offset():]
			if _, size := utf8.DecodeRune(rest); size <= 1 {
				break
			}
		}
		cursor.Next()
	}
	return &Error{
		code:    1001,
		kind:    E_INVALID_UTF8,
		message: "Source file contains invalid UTF-8",
		pos:     cursor.Position(),
	}
}

func errUnexpectedEndOfInput(pos Position, expected string) error {
	return &Error{
		code:    1002,
		kind:    E_UNEXPECTED_END_OF_INPUT,
		message: fmt.Sprintf("Unexpected end of input, expected %s", expected),
		pos:     pos,
	}
}

func errUnexpectedCharacter(pos Position, r rune, expected string) error {
	return &Error{
		code:     1003,
		kind:     E_UNEXPECTED_CHARACTER,
		message:  fmt.Sprintf("Unexpected character %s, expected %s", quoteChar(r), expected),
		pos:      pos,
		found:    r,
		hasFound: true,
	}
}

func errUnmatchedTerminator(pos Position, expected rune, found rune, hasFound bool) error {
	var got string
	if hasFound {
		got = quoteChar(found)
	} else {
		got = "end of input"
	}
	return &Error{
		code:     2000,
		kind:     E_UNMATCHED_TERMINATOR,
		message:  fmt.Sprintf("Expected '%c' to terminate expression, got %s", expected, got),
		pos:      pos,
		found:    found,
		hasFound: hasFound,
		expected: expected,
	}
}

func errMalformedAnnotation(pos Position) error {
	return &Error{
		code:    2001,
		kind:    E_MALFORMED_ANNOTATION,
		message: "Expected type name after '::'",
		pos:     pos,
	}
}

func errNestingTooDeep(pos Position, maxDepth int) error {
	return &Error{
		code:    2002,
		kind:    E_NESTING_TOO_DEEP,
		message: fmt.Sprintf("Expressions nested deeper than %d levels", maxDepth),
		pos:     pos,
	}
}
