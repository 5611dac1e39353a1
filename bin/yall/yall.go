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

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	parse := &cmdParse{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
	exitCode := 0

	yallCmd := &cobra.Command{
		Use:     "yall [options] FILE",
		Short:   "Parse a yall source file",
		Version: version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	yallCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			fmt.Fprint(stderr, cmd.UsageString())
			exitCode = 1
			return nil
		}
		exitCode = parse.run(cmd.Flags(), args[0])
		return nil
	}
	yallCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		fmt.Fprintln(stdout, err)
		return err
	})
	yallCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	yallCmd.SetIn(stdin)
	yallCmd.SetOut(stdout)
	yallCmd.SetErr(stderr)
	yallCmd.SetArgs(normalizeArgs(argv))
	parse.flags(yallCmd.Flags())

	if _, err := yallCmd.ExecuteC(); err != nil {
		return 1
	}
	return exitCode
}
