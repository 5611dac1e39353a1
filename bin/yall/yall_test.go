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
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yall-lang/yall/internal/testutil"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func runYall(t *testing.T, stdin string, argv ...string) result {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(argv, strings.NewReader(stdin), &stdout, &stderr)
	return result{
		code:   code,
		stdout: stdout.String(),
		stderr: stderr.String(),
	}
}

func writeSource(t *testing.T, name, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	testutil.AssertNoError(t, os.WriteFile(path, []byte(src), 0o666))
	return path
}

func TestVersion(t *testing.T) {
	t.Parallel()

	for _, flag := range []string{"-v", "-V", "--version"} {
		t.Run(flag, func(t *testing.T) {
			res := runYall(t, "", flag, "does-not-exist.yall")
			testutil.ExpectEq(t, 0, res.code)
			testutil.ExpectEq(t, "yall "+version+"\n", res.stdout)
			testutil.ExpectEq(t, "", res.stderr)
		})
	}
}

func TestDebugParser(t *testing.T) {
	t.Parallel()

	path := writeSource(t, "basic.yall", "(foo 1 2.5 \"hi\")\n")
	want := `Item {
	Identifier "foo"
	Number "1"
	Number "2.5"
	Text "hi"
}
`
	for _, flag := range []string{"-p", "-debug-parser", "--debug-parser"} {
		t.Run(flag, func(t *testing.T) {
			res := runYall(t, "", flag, path)
			testutil.ExpectEq(t, 0, res.code)
			testutil.ExpectNoDiff(t, want, res.stdout)
			testutil.ExpectEq(t, "", res.stderr)
		})
	}
}

func TestFlagAfterPath(t *testing.T) {
	t.Parallel()

	path := writeSource(t, "block.yall", "{}")
	res := runYall(t, "", path, "-p")
	testutil.ExpectEq(t, 0, res.code)
	testutil.ExpectEq(t, "Block {}\n", res.stdout)
}

func TestQuietSuccess(t *testing.T) {
	t.Parallel()

	path := writeSource(t, "ok.yall", "(a) [b] {c}")
	res := runYall(t, "", path)
	testutil.ExpectEq(t, 0, res.code)
	testutil.ExpectEq(t, "", res.stdout)
	testutil.ExpectEq(t, "", res.stderr)
}

func TestUnknownFlag(t *testing.T) {
	t.Parallel()

	path := writeSource(t, "ok.yall", "()")
	res := runYall(t, "", "--nope", path)
	testutil.ExpectEq(t, 1, res.code)
	testutil.ExpectTrue(t, strings.Contains(res.stdout, "--nope"))
	testutil.ExpectEq(t, "", res.stderr)
}

func TestSyntaxError(t *testing.T) {
	t.Parallel()

	path := writeSource(t, "bad.yall", "(ok)\n(foo]\n")
	res := runYall(t, "", "-p", "--color=never", path)
	testutil.ExpectEq(t, 1, res.code)
	testutil.ExpectEq(t, "", res.stdout)

	want := fmt.Sprintf(""+
		"%s:2:5: error[E2000]: Expected ')' to terminate expression, got ']' (U+005D)\n"+
		" 2 | (foo]\n"+
		"   |     ^\n",
		path,
	)
	testutil.ExpectNoDiff(t, want, res.stderr)
}

func TestSyntaxErrorCaretKeepsTabs(t *testing.T) {
	t.Parallel()

	res := runYall(t, "(\t@)", "--color=never", "-")
	testutil.ExpectEq(t, 1, res.code)
	want := "" +
		"<stdin>:1:3: error[E1003]: Unexpected character '@' (U+0040), expected a phrase\n" +
		" 1 | (\t@)\n" +
		"   |  \t^\n"
	testutil.ExpectNoDiff(t, want, res.stderr)
}

func TestMissingFile(t *testing.T) {
	t.Parallel()

	res := runYall(t, "", filepath.Join(t.TempDir(), "missing.yall"))
	testutil.ExpectEq(t, 1, res.code)
	testutil.ExpectTrue(t, strings.HasPrefix(res.stderr, "failed to read input file: "))
}

func TestMissingPath(t *testing.T) {
	t.Parallel()

	res := runYall(t, "")
	testutil.ExpectEq(t, 1, res.code)
	testutil.ExpectTrue(t, strings.Contains(res.stderr, "Usage:"))
}

func TestStdin(t *testing.T) {
	t.Parallel()

	res := runYall(t, "; hi\n", "-p", "-")
	testutil.ExpectEq(t, 0, res.code)
	testutil.ExpectEq(t, "Null {\n\tComment \" hi\"\n}\n", res.stdout)
}

func TestFormats(t *testing.T) {
	t.Parallel()

	path := writeSource(t, "x.yall", "[x]")

	res := runYall(t, "", "-p", "--format=json", path)
	testutil.ExpectEq(t, 0, res.code)
	testutil.ExpectTrue(t, strings.HasPrefix(res.stdout, `{"program": [`))

	res = runYall(t, "", "-p", "--format", "yaml", path)
	testutil.ExpectEq(t, 0, res.code)
	testutil.ExpectTrue(t, strings.HasPrefix(res.stdout, "program:\n"))

	res = runYall(t, "", "-p", "--format=xml", path)
	testutil.ExpectEq(t, 1, res.code)
	testutil.ExpectTrue(t, strings.Contains(res.stderr, "xml"))
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "yall.toml")
	testutil.AssertNoError(t, os.WriteFile(cfgPath, []byte("debug_parser = true\nformat = \"yaml\"\n"), 0o666))
	path := writeSource(t, "x.yall", "()")

	res := runYall(t, "", "--config", cfgPath, path)
	testutil.ExpectEq(t, 0, res.code)
	testutil.ExpectTrue(t, strings.HasPrefix(res.stdout, "program:\n"))

	// Flags override the file.
	res = runYall(t, "", "--config", cfgPath, "--format=text", path)
	testutil.ExpectEq(t, 0, res.code)
	testutil.ExpectEq(t, "Item {}\n", res.stdout)

	res = runYall(t, "", "--config", filepath.Join(dir, "missing.toml"), path)
	testutil.ExpectEq(t, 1, res.code)
}

func TestMaxDepthFlag(t *testing.T) {
	t.Parallel()

	path := writeSource(t, "deep.yall", "((()))")

	res := runYall(t, "", "--max-depth=3", path)
	testutil.ExpectEq(t, 0, res.code)

	res = runYall(t, "", "--color=never", "--max-depth=2", path)
	testutil.ExpectEq(t, 1, res.code)
	testutil.ExpectTrue(t, strings.Contains(res.stderr, "error[E2002]"))
}

func TestNormalizeArgs(t *testing.T) {
	t.Parallel()

	testutil.ExpectSliceEq(t,
		[]string{"--debug-parser", "--version", "x", "--", "-V"},
		normalizeArgs([]string{"-debug-parser", "-V", "x", "--", "-V"}),
	)
}
