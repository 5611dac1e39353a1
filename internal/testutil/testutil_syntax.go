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

package testutil

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"testing"

	"github.com/yall-lang/yall/syntax"
)

//go:embed testdata
var testdataFS embed.FS

func TestdataFS() (fs.FS, error) {
	return fs.Sub(testdataFS, "testdata")
}

type SyntaxError struct {
	code uint32
	kind string
}

func (err *SyntaxError) Code() uint32 {
	return err.code
}

func (err *SyntaxError) Kind() string {
	return err.kind
}

// LoadSyntaxErrors reads the error catalog, keyed by error name.
func LoadSyntaxErrors(testdata fs.FS) (map[string]*SyntaxError, error) {
	type syntaxError struct {
		Code uint32 `json:"code"`
		Kind string `json:"kind"`
	}

	jsonData, err := fs.ReadFile(testdata, "diagnostics/syntax_errors.json")
	if err != nil {
		return nil, err
	}

	var rawErrors map[string]syntaxError
	decoder := json.NewDecoder(bytes.NewReader(jsonData))
	decoder.UseNumber()
	if err := decoder.Decode(&rawErrors); err != nil {
		return nil, err
	}

	out := make(map[string]*SyntaxError, len(rawErrors))
	codes := make(map[uint32]struct{}, len(rawErrors))
	for key, raw := range rawErrors {
		if raw.Code == 0 {
			return nil, fmt.Errorf("syntax error %q has no error code", key)
		}
		if _, conflict := codes[raw.Code]; conflict {
			return nil, fmt.Errorf("duplicate syntax error code %d", raw.Code)
		}
		codes[raw.Code] = struct{}{}
		out[key] = &SyntaxError{
			code: raw.Code,
			kind: raw.Kind,
		}
	}

	return out, nil
}

func PositionOrDie(t *testing.T, value any) syntax.Position {
	t.Helper()
	raw, ok := value.(map[string]any)
	if !ok {
		t.Fatalf("invalid position %#v", value)
	}
	rawLine, lineOK := raw["line"].(json.Number)
	rawColumn, columnOK := raw["column"].(json.Number)
	if !lineOK || !columnOK {
		t.Fatalf("invalid position %#v", value)
	}
	line, lineErr := rawLine.Int64()
	column, columnErr := rawColumn.Int64()
	if lineErr != nil || columnErr != nil {
		t.Fatalf("invalid position %#v", value)
	}
	return syntax.Position{
		Line:   uint32(line),
		Column: uint32(column),
	}
}
