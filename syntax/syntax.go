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

const (
	maxSrcLen = 0x7FFFFFFF // (2**31)-1

	DefaultMaxDepth = 4096
)

type ParseOption interface {
	apply(*ParseOptions)
}

type parseOptionFunc func(*ParseOptions)

func (fn parseOptionFunc) apply(opts *ParseOptions) {
	fn(opts)
}

// MaxDepth limits how deeply expressions may nest. Values below 1 are
// ignored.
func MaxDepth(depth int) ParseOption {
	return parseOptionFunc(func(opts *ParseOptions) {
		if depth > 0 {
			opts.maxDepth = depth
		}
	})
}

func Parse(src []byte, opts ...ParseOption) (*Program, error) {
	return NewParseOptions(opts...).ParseProgram(src)
}

func ParseProgram(src string, opts ...ParseOption) (*Program, error) {
	return NewParseOptions(opts...).ParseProgram([]byte(src))
}

type ParseOptions struct {
	maxDepth int
}

func NewParseOptions(opts ...ParseOption) *ParseOptions {
	out := &ParseOptions{
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt.apply(out)
	}
	return out
}

func (opts *ParseOptions) ParseProgram(src []byte) (*Program, error) {
	ctx, err := newParseCtx(opts, src)
	if err != nil {
		return nil, err
	}
	return ctx.program()
}

// ParseExpression parses exactly one expression. Only whitespace may
// follow it.
func (opts *ParseOptions) ParseExpression(src []byte) (*Expression, error) {
	ctx, err := newParseCtx(opts, src)
	if err != nil {
		return nil, err
	}
	expr, err := ctx.expression()
	if err != nil {
		return nil, err
	}
	if err := ctx.eof(); err != nil {
		return nil, err
	}
	return expr, nil
}

// ParsePhrase parses exactly one phrase, including any type annotation.
// Only whitespace may follow it.
func (opts *ParseOptions) ParsePhrase(src []byte) (Phrase, error) {
	ctx, err := newParseCtx(opts, src)
	if err != nil {
		return nil, err
	}
	phrase, err := ctx.phrase()
	if err != nil {
		return nil, err
	}
	if err := ctx.eof(); err != nil {
		return nil, err
	}
	return phrase, nil
}

type parseCtx struct {
	cursor *Cursor
	opts   *ParseOptions
	depth  int
}

func newParseCtx(opts *ParseOptions, src []byte) (*parseCtx, error) {
	if len(src) > maxSrcLen {
		return nil, errSourceTooLong(len(src))
	}
	if !utf8.Valid(src) {
		return nil, errInvalidUtf8(src)
	}
	return &parseCtx{
		cursor: NewCursor(string(src)),
		opts:   opts,
	}, nil
}

func (ctx *parseCtx) eof() error {
	ctx.space()
	if r, ok := ctx.cursor.Peek(); ok {
		return errUnexpectedCharacter(ctx.cursor.Position(), r, "end of input")
	}
	return nil
}

func (ctx *parseCtx) program() (*Program, error) {
	program := &Program{}
	ctx.space()
	for !ctx.cursor.AtEOF() {
		expr, err := ctx.expression()
		if err != nil {
			return nil, err
		}
		program.expressions = append(program.expressions, expr)
		ctx.space()
	}
	return program, nil
}

func (ctx *parseCtx) expression() (*Expression, error) {
	ctx.space()

	start := ctx.cursor.Position()
	r, ok := ctx.cursor.Peek()
	if !ok {
		return nil, errUnexpectedEndOfInput(start, "an expression")
	}
	if r == ';' {
		return newNullExpression(ctx.comment()), nil
	}

	kind, ok := expressionKindFromInitiator(r)
	if !ok {
		return nil, errUnexpectedCharacter(start, r, "an expression")
	}
	if ctx.depth >= ctx.opts.maxDepth {
		return nil, errNestingTooDeep(start, ctx.opts.maxDepth)
	}
	ctx.cursor.Next()

	ctx.depth += 1
	defer func() { ctx.depth -= 1 }()

	expr := &Expression{
		kind:  kind,
		start: start,
	}
	for {
		ctx.space()
		if r, ok := ctx.cursor.Peek(); !ok || isCloser(r) {
			break
		}
		phrase, err := ctx.phrase()
		if err != nil {
			return nil, err
		}
		expr.values = append(expr.values, phrase)
	}

	pos := ctx.cursor.Position()
	terminator := kind.Terminator()
	found, ok := ctx.cursor.Next()
	if !ok || found != terminator {
		return nil, errUnmatchedTerminator(pos, terminator, found, ok)
	}
	return expr, nil
}

func isCloser(r rune) bool {
	return r == '}' || r == ']' || r == ')'
}
