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
	"iter"
	"slices"
)

type Position struct {
	Line   uint32
	Column uint32
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Node interface {
	Pos() Position

	ChildNodes() iter.Seq[Node]

	privChildren() []Node
}

// Phrase is one of *Expression, *Identifier, *Text, *Number, *Comment, or
// *Label. No other type implements it.
type Phrase interface {
	Node
	isPhrase()
}

func Walk(node Node, walkFn func(Node) bool) {
	if node == nil || !walkFn(node) {
		return
	}
	for _, child := range node.privChildren() {
		Walk(child, walkFn)
	}
	walkFn(nil)
}

func iterChildren(childNodes []Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for _, child := range childNodes {
			if !yield(child) {
				return
			}
		}
	}
}

type leafNode struct{}

func (*leafNode) ChildNodes() iter.Seq[Node] {
	return func(_yield func(Node) bool) {}
}

func (*leafNode) privChildren() []Node {
	return nil
}

type Program struct {
	expressions []*Expression
}

var _ Node = (*Program)(nil)

func (n *Program) Pos() Position {
	if len(n.expressions) == 0 {
		return Position{1, 1}
	}
	return n.expressions[0].start
}

func (n *Program) ChildNodes() iter.Seq[Node] {
	return iterChildren(n.privChildren())
}

func (n *Program) privChildren() []Node {
	out := make([]Node, 0, len(n.expressions))
	for _, expr := range n.expressions {
		out = append(out, expr)
	}
	return out
}

func (n *Program) Len() int {
	return len(n.expressions)
}

func (n *Program) Expression(idx int) *Expression {
	return n.expressions[idx]
}

func (n *Program) Expressions() []*Expression {
	return slices.Clone(n.expressions)
}

type ExpressionKind uint8

const (
	EXPR_BLOCK ExpressionKind = iota + 1
	EXPR_LIST
	EXPR_ITEM

	// A bare comment found where an expression was expected.
	EXPR_NULL
)

func expressionKindFromInitiator(c rune) (ExpressionKind, bool) {
	switch c {
	case '{':
		return EXPR_BLOCK, true
	case '[':
		return EXPR_LIST, true
	case '(':
		return EXPR_ITEM, true
	}
	return 0, false
}

func (k ExpressionKind) String() string {
	switch k {
	case EXPR_BLOCK:
		return "Block"
	case EXPR_LIST:
		return "List"
	case EXPR_ITEM:
		return "Item"
	case EXPR_NULL:
		return "Null"
	default:
		return fmt.Sprintf("ExpressionKind(%d)", uint8(k))
	}
}

func (k ExpressionKind) Initiator() rune {
	switch k {
	case EXPR_BLOCK:
		return '{'
	case EXPR_LIST:
		return '['
	case EXPR_ITEM:
		return '('
	default:
		panic("unreachable")
	}
}

func (k ExpressionKind) Terminator() rune {
	switch k {
	case EXPR_BLOCK:
		return '}'
	case EXPR_LIST:
		return ']'
	case EXPR_ITEM:
		return ')'
	default:
		panic("unreachable")
	}
}

type Expression struct {
	kind   ExpressionKind
	values []Phrase
	start  Position
}

var _ Phrase = (*Expression)(nil)

func newNullExpression(comment *Comment) *Expression {
	return &Expression{
		kind:   EXPR_NULL,
		values: []Phrase{comment},
		start:  comment.start,
	}
}

func (*Expression) isPhrase() {}

func (n *Expression) Pos() Position {
	return n.start
}

func (n *Expression) ChildNodes() iter.Seq[Node] {
	return iterChildren(n.privChildren())
}

func (n *Expression) privChildren() []Node {
	out := make([]Node, 0, len(n.values))
	for _, value := range n.values {
		out = append(out, value)
	}
	return out
}

func (n *Expression) Kind() ExpressionKind {
	return n.kind
}

func (n *Expression) Len() int {
	return len(n.values)
}

func (n *Expression) Value(idx int) Phrase {
	return n.values[idx]
}

func (n *Expression) Values() []Phrase {
	return slices.Clone(n.values)
}

type Identifier struct {
	leafNode
	raw   string
	start Position
}

var _ Phrase = (*Identifier)(nil)

func (*Identifier) isPhrase() {}

func (n *Identifier) Pos() Position {
	return n.start
}

func (n *Identifier) Get() string {
	return n.raw
}

// IsOperator reports whether the identifier was drawn from the operator
// character set rather than letters, digits, and underscores.
func (n *Identifier) IsOperator() bool {
	return n.raw != "" && isOperatorChar(rune(n.raw[0]))
}

type Text struct {
	leafNode
	raw   string
	start Position
}

var _ Phrase = (*Text)(nil)

func (*Text) isPhrase() {}

func (n *Text) Pos() Position {
	return n.start
}

// Get returns the content between the quotes. Escape sequences are kept
// as written.
func (n *Text) Get() string {
	return n.raw
}

type Number struct {
	leafNode
	raw   string
	start Position
}

var _ Phrase = (*Number)(nil)

func (*Number) isPhrase() {}

func (n *Number) Pos() Position {
	return n.start
}

func (n *Number) Get() string {
	return n.raw
}

type Comment struct {
	leafNode
	raw   string
	start Position
}

var _ Phrase = (*Comment)(nil)

func (*Comment) isPhrase() {}

func (n *Comment) Pos() Position {
	return n.start
}

// Text returns everything after the ';', excluding the newline.
func (n *Comment) Text() string {
	return n.raw
}

type Label struct {
	leafNode
	raw   string
	start Position
}

var _ Phrase = (*Label)(nil)

func (*Label) isPhrase() {}

func (n *Label) Pos() Position {
	return n.start
}

func (n *Label) Get() string {
	return n.raw
}
