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
	"unicode/utf8"
)

// A Cursor reads characters from a source string, tracking the line and
// column of the next unread character.
type Cursor struct {
	src    string
	offset int
	pos    Position
}

func NewCursor(src string) *Cursor {
	return &Cursor{
		src: src,
		pos: Position{Line: 1, Column: 1},
	}
}

func (c *Cursor) Position() Position {
	return c.pos
}

// Offset returns the byte offset of the next unread character.
func (c *Cursor) Offset() int {
	return c.offset
}

func (c *Cursor) AtEOF() bool {
	return c.offset >= len(c.src)
}

func (c *Cursor) Peek() (rune, bool) {
	if c.offset >= len(c.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.src[c.offset:])
	return r, true
}

// PeekSecond returns the character after the one returned by Peek.
func (c *Cursor) PeekSecond() (rune, bool) {
	if c.offset >= len(c.src) {
		return 0, false
	}
	_, size := utf8.DecodeRuneInString(c.src[c.offset:])
	if c.offset+size >= len(c.src) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.src[c.offset+size:])
	return r, true
}

func (c *Cursor) Next() (rune, bool) {
	if c.offset >= len(c.src) {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(c.src[c.offset:])
	c.offset += size
	if r == '\n' {
		c.pos.Line += 1
		c.pos.Column = 1
	} else {
		c.pos.Column += 1
	}
	return r, true
}

// ConsumeWhile consumes characters until pred returns false or the input
// ends. The character that failed pred is not consumed.
func (c *Cursor) ConsumeWhile(pred func(rune) bool) string {
	start := c.offset
	for {
		r, ok := c.Peek()
		if !ok || !pred(r) {
			break
		}
		c.Next()
	}
	return c.src[start:c.offset]
}
