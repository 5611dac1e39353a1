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
	"io"
	"os"
)

// Spellings accepted on the command line that pflag cannot express.
var argAliases = map[string]string{
	"-debug-parser": "--debug-parser",
	"-V":            "--version",
}

func normalizeArgs(argv []string) []string {
	out := make([]string, 0, len(argv))
	for ii, arg := range argv {
		if arg == "--" {
			out = append(out, argv[ii:]...)
			break
		}
		if alias, ok := argAliases[arg]; ok {
			arg = alias
		}
		out = append(out, arg)
	}
	return out
}

func readSource(path string, stdin io.Reader) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

func displayPath(path string) string {
	if path == "-" {
		return "<stdin>"
	}
	return path
}
