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

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/yall-lang/yall/syntax"
)

var (
	colorError = lipgloss.Color("#EF4444")
	colorMuted = lipgloss.Color("#6B7280")
)

type diagnostics struct {
	w        io.Writer
	location lipgloss.Style
	severity lipgloss.Style
	gutter   lipgloss.Style
	caret    lipgloss.Style
}

func newDiagnostics(w io.Writer, colorMode string) *diagnostics {
	renderer := lipgloss.NewRenderer(w)
	switch colorMode {
	case "always":
		renderer.SetColorProfile(termenv.ANSI256)
	case "never":
		renderer.SetColorProfile(termenv.Ascii)
	default:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			renderer.SetColorProfile(termenv.Ascii)
		}
	}
	return &diagnostics{
		w:        w,
		location: renderer.NewStyle().Bold(true),
		severity: renderer.NewStyle().Bold(true).Foreground(colorError),
		gutter:   renderer.NewStyle().Foreground(colorMuted),
		caret:    renderer.NewStyle().Bold(true).Foreground(colorError),
	}
}

// report prints err with the source line it points into:
//
//	path:1:5: error[E2000]: Expected ')' to terminate expression, got ']' (U+005D)
//	 1 | (foo]
//	   |     ^
func (d *diagnostics) report(path string, src []byte, err *syntax.Error) {
	pos := err.Position()
	fmt.Fprintf(
		d.w, "%s %s %s\n",
		d.location.Render(fmt.Sprintf("%s:%d:%d:", path, pos.Line, pos.Column)),
		d.severity.Render(fmt.Sprintf("error[E%d]:", err.Code())),
		err.Message(),
	)

	line, ok := sourceLine(src, pos.Line)
	if !ok {
		return
	}
	lineNum := strconv.Itoa(int(pos.Line))
	fmt.Fprintf(d.w, "%s %s\n", d.gutter.Render(" "+lineNum+" |"), line)
	fmt.Fprintf(
		d.w, "%s %s%s\n",
		d.gutter.Render(" "+strings.Repeat(" ", len(lineNum))+" |"),
		caretIndent(line, pos.Column),
		d.caret.Render("^"),
	)
}

func sourceLine(src []byte, line uint32) (string, bool) {
	lines := strings.Split(string(src), "\n")
	if line == 0 || int(line) > len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[line-1], "\r"), true
}

// caretIndent returns whitespace that lines up with the given 1-based
// column of line, keeping tabs so the caret renders under the right
// character.
func caretIndent(line string, column uint32) string {
	var buf strings.Builder
	var col uint32 = 1
	for _, r := range line {
		if col >= column {
			break
		}
		if r == '\t' {
			buf.WriteByte('\t')
		} else {
			buf.WriteByte(' ')
		}
		col += 1
	}
	for ; col < column; col++ {
		buf.WriteByte(' ')
	}
	return buf.String()
}
