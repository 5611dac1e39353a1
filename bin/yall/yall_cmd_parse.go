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
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/yall-lang/yall/encoding/yalljson"
	"github.com/yall-lang/yall/encoding/yalltext"
	"github.com/yall-lang/yall/encoding/yallyaml"
	"github.com/yall-lang/yall/internal/config"
	"github.com/yall-lang/yall/syntax"
)

type cmdParse struct {
	debugParser bool
	format      string
	configPath  string
	color       string
	maxDepth    int

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (cmd *cmdParse) flags(flags *pflag.FlagSet) {
	flags.BoolVarP(&cmd.debugParser, "debug-parser", "p", false, "Print the parsed tree to stdout")
	flags.StringVar(&cmd.format, "format", "text", "Tree format for --debug-parser (text, json, yaml)")
	flags.StringVar(&cmd.configPath, "config", "", "Config file (default \"yall.toml\" if present)")
	flags.StringVar(&cmd.color, "color", "auto", "Color diagnostics (auto, always, never)")
	flags.IntVar(&cmd.maxDepth, "max-depth", syntax.DefaultMaxDepth, "Maximum expression nesting depth")
}

// settings merges the config file with flags given on the command line.
// Flags win.
func (cmd *cmdParse) settings(flags *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(cmd.configPath)
	if err != nil {
		return nil, err
	}
	if flags.Changed("debug-parser") {
		cfg.DebugParser = cmd.debugParser
	}
	if flags.Changed("format") {
		cfg.Format = cmd.format
	}
	if flags.Changed("color") {
		cfg.Color = cmd.color
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth = cmd.maxDepth
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cmd *cmdParse) run(flags *pflag.FlagSet, srcPath string) int {
	cfg, err := cmd.settings(flags)
	if err != nil {
		fmt.Fprintln(cmd.stderr, err)
		return 1
	}

	src, err := readSource(srcPath, cmd.stdin)
	if err != nil {
		fmt.Fprintf(cmd.stderr, "failed to read input file: %v\n", err)
		return 1
	}

	var opts []syntax.ParseOption
	if cfg.MaxDepth > 0 {
		opts = append(opts, syntax.MaxDepth(cfg.MaxDepth))
	}
	program, err := syntax.Parse(src, opts...)
	if err != nil {
		var syntaxErr *syntax.Error
		if errors.As(err, &syntaxErr) {
			newDiagnostics(cmd.stderr, cfg.Color).report(displayPath(srcPath), src, syntaxErr)
		} else {
			fmt.Fprintln(cmd.stderr, err)
		}
		return 1
	}

	if !cfg.DebugParser {
		return 0
	}
	switch cfg.Format {
	case "json":
		err = yalljson.EncodeTo(program, cmd.stdout)
	case "yaml":
		err = yallyaml.EncodeTo(program, cmd.stdout)
	default:
		err = yalltext.EncodeTo(program, cmd.stdout)
	}
	if err != nil {
		fmt.Fprintln(cmd.stderr, err)
		return 1
	}
	return 0
}
