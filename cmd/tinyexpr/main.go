// This file is part of tinyexpr - https://github.com/Sireth/tinyexpr
//
// Copyright 2020 Sireth <sireth@users.noreply.github.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command tinyexpr evaluates an arithmetic expression given on the
// command line, or, with -i, runs an interactive read-eval-print loop.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/Sireth/tinyexpr/expr"
	"github.com/pkg/errors"
)

func main() {
	rightAssoc := flag.Bool("rpow", false, "make ^ right-associative (default: left-associative)")
	naturalLog := flag.Bool("ln", false, "make log() mean natural logarithm (default: base 10)")
	interactive := flag.Bool("i", false, "start an interactive REPL instead of evaluating an argument")
	flag.Parse()

	var opts []expr.Option
	if *rightAssoc {
		opts = append(opts, expr.RightAssociativePow())
	}
	if *naturalLog {
		opts = append(opts, expr.NaturalLog())
	}

	if *interactive {
		if err := repl(os.Stdin, os.Stdout, opts); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: tinyexpr [-rpow] [-ln] 'expression' | tinyexpr -i")
		os.Exit(2)
	}

	v, err := expr.Interp(flag.Arg(0), opts...)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "tinyexpr"))
		os.Exit(1)
	}
	fmt.Println(v)
}

// repl reads one expression per line and prints its value. When in is
// a terminal, stdin is switched to raw mode for the duration of the
// loop so that a future line-editing layer can read keystrokes one at
// a time instead of in canonical (line-buffered) mode; for now it is
// used simply to guarantee the terminal is restored to its original
// settings on exit, successful or not.
func repl(in *os.File, out *os.File, opts []expr.Option) error {
	restore, err := setRawIO()
	if err != nil {
		// not a terminal (e.g. piped input in tests/CI): fall back to
		// plain line buffering rather than failing the whole command.
		restore = func() {}
	}
	defer restore()

	r := bufio.NewReader(in)
	for {
		fmt.Fprint(out, "> ")
		line, rerr := readLine(r)
		if line == "" && rerr != nil {
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		v, cerr := expr.Interp(line, opts...)
		if cerr != nil {
			fmt.Fprintln(out, cerr)
			continue
		}
		fmt.Fprintln(out, v)
		if rerr != nil {
			return nil
		}
	}
}

// readLine reads a single line, tolerating raw mode's lack of
// canonical line editing: it stops at '\n' and strips a trailing '\r'.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}
