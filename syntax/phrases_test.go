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

package syntax_test

import (
	"testing"

	"github.com/yall-lang/yall/internal/testutil"
	"github.com/yall-lang/yall/syntax"
)

func parsePhrase(t *testing.T, src string) syntax.Phrase {
	t.Helper()
	phrase, err := syntax.NewParseOptions().ParsePhrase([]byte(src))
	testutil.AssertNoError(t, err)
	return phrase
}

func parseValues(t *testing.T, src string) []string {
	t.Helper()
	program, err := syntax.ParseProgram(src)
	testutil.AssertNoError(t, err)
	testutil.ExpectEq(t, 1, program.Len())
	return describe(program.Expression(0).Values())
}

func TestPhraseKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want string
	}{
		{"foo", "Identifier foo"},
		{"foo_bar9", "Identifier foo_bar9"},
		{"<=>", "Identifier <=>"},
		{"*+-/<>=!$|?^~", "Identifier *+-/<>=!$|?^~"},
		{"42", "Number 42"},
		{"4.2", "Number 4.2"},
		{`"hi there"`, "Text hi there"},
		{"; note", "Comment  note"},
		{":exit", "Label exit"},
		{":x1", "Label x1"},
		{"[]", "Expression List"},
	}
	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			got := describe([]syntax.Phrase{parsePhrase(t, test.src)})
			testutil.ExpectSliceEq(t, []string{test.want}, got)
		})
	}
}

func TestIdentifierClassesDoNotMix(t *testing.T) {
	t.Parallel()

	testutil.ExpectSliceEq(t, []string{
		"Identifier a",
		"Identifier +",
		"Identifier b",
		"Identifier --",
		"Identifier c_1",
	}, parseValues(t, "(a+b--c_1)"))

	ident := parsePhrase(t, "+=").(*syntax.Identifier)
	testutil.ExpectTrue(t, ident.IsOperator())
	ident = parsePhrase(t, "plus").(*syntax.Identifier)
	testutil.ExpectFalse(t, ident.IsOperator())
}

func TestTextEscapesAreKept(t *testing.T) {
	t.Parallel()

	text := parsePhrase(t, `"say \"hi\" \n"`).(*syntax.Text)
	testutil.ExpectEq(t, `say \"hi\" \n`, text.Get())

	text = parsePhrase(t, `"ends in backslash\\"`).(*syntax.Text)
	testutil.ExpectEq(t, `ends in backslash\\`, text.Get())

	text = parsePhrase(t, "\"multi\nline\"").(*syntax.Text)
	testutil.ExpectEq(t, "multi\nline", text.Get())
}

func TestTextUnterminated(t *testing.T) {
	t.Parallel()

	opts := syntax.NewParseOptions()
	for _, src := range []string{`"open`, `"escaped end\"`, `"`} {
		_, err := opts.ParsePhrase([]byte(src))
		testutil.AssertSyntaxError(t, syntax.E_UNEXPECTED_END_OF_INPUT, err)
	}
}

func TestNumberSinglePoint(t *testing.T) {
	t.Parallel()

	testutil.ExpectSliceEq(t, []string{"Number 1.2"}, parseValues(t, "(1.2)"))
	testutil.ExpectSliceEq(t, []string{"Number 12.", "Identifier x"}, parseValues(t, "(12.x)"))

	_, err := syntax.ParseProgram("(1.2.3)")
	parseErr := testutil.AssertSyntaxError(t, syntax.E_UNEXPECTED_CHARACTER, err)
	found, _ := parseErr.Found()
	testutil.ExpectEq(t, '.', found)
	testutil.ExpectEq(t, syntax.Position{Line: 1, Column: 5}, parseErr.Position())
}

func TestCommentStopsAtNewline(t *testing.T) {
	t.Parallel()

	testutil.ExpectSliceEq(t, []string{
		"Identifier a",
		"Comment  rest ) of line",
		"Identifier b",
	}, parseValues(t, "(a ; rest ) of line\n b)"))
}

func TestAnnotationIsDiscarded(t *testing.T) {
	t.Parallel()

	tests := []struct {
		plain     string
		annotated string
	}{
		{"foo", "foo::Name"},
		{"++", "++::Op"},
		{"42", "42::u32"},
		{`"s"`, `"s"::Text`},
		{"(a b)", "(a b)::Pair"},
		{":top", ":top::Label_1"},
	}
	for _, test := range tests {
		t.Run(test.annotated, func(t *testing.T) {
			want := describe([]syntax.Phrase{parsePhrase(t, test.plain)})
			got := describe([]syntax.Phrase{parsePhrase(t, test.annotated)})
			testutil.ExpectSliceEq(t, want, got)
		})
	}
}

func TestLabelAndAnnotationPrecedence(t *testing.T) {
	t.Parallel()

	testutil.ExpectSliceEq(t, []string{
		"Identifier a",
		"Label b",
	}, parseValues(t, "(a:b)"))

	testutil.ExpectSliceEq(t, []string{
		"Identifier a",
	}, parseValues(t, "(a::b)"))

	testutil.ExpectSliceEq(t, []string{
		"Identifier a",
		"Identifier c",
	}, parseValues(t, "(a::b c)"))

	_, err := syntax.ParseProgram("(a:::b)")
	parseErr := testutil.AssertSyntaxError(t, syntax.E_MALFORMED_ANNOTATION, err)
	testutil.ExpectEq(t, syntax.Position{Line: 1, Column: 5}, parseErr.Position())
}

func TestAnnotationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		kind syntax.ErrorKind
	}{
		// Annotations cannot be annotated.
		{"(a::b::c)", syntax.E_UNEXPECTED_CHARACTER},
		{"(a::)", syntax.E_MALFORMED_ANNOTATION},
		{"(a:: b)", syntax.E_MALFORMED_ANNOTATION},
		{"(a::+)", syntax.E_MALFORMED_ANNOTATION},
		{"(a::", syntax.E_MALFORMED_ANNOTATION},
		{"(a:)", syntax.E_UNEXPECTED_CHARACTER},
		{"(:)", syntax.E_UNEXPECTED_CHARACTER},
		{"(:_x)", syntax.E_UNEXPECTED_CHARACTER},
	}
	for _, test := range tests {
		t.Run(test.src, func(t *testing.T) {
			_, err := syntax.ParseProgram(test.src)
			testutil.AssertSyntaxError(t, test.kind, err)
		})
	}
}

func TestPhraseAtEOF(t *testing.T) {
	t.Parallel()

	_, err := syntax.NewParseOptions().ParsePhrase([]byte("   "))
	parseErr := testutil.AssertSyntaxError(t, syntax.E_UNEXPECTED_END_OF_INPUT, err)
	testutil.ExpectEq(t, syntax.Position{Line: 1, Column: 4}, parseErr.Position())
}
