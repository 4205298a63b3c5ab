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

// Package expr compiles infix arithmetic expressions into a small
// evaluable tree and evaluates that tree against caller-supplied
// variable bindings and functions.
//
// The grammar is a conventional precedence ladder (list, expr, term,
// factor, power, base) augmented with a fixed table of built-in math
// functions (trigonometry, logarithms, factorial, combinatorics) and an
// extensibility mechanism that lets a caller register named variables,
// pure or impure functions of zero to seven scalar arguments, and
// context-carrying closures.
//
// A compiled *Tree is immutable once Compile returns; it may be
// evaluated as many times as needed, and concurrently from multiple
// goroutines, provided none of the tree's bound variables are mutated
// concurrently with those evaluations (see (*Tree).Eval). Building a
// tree is not reentrant on shared state, but independent calls to
// Compile may run in parallel.
//
//	t, err := expr.Compile("sqrt(16) + abs(-3)", nil)
//	if err != nil {
//		// err is a *expr.CompileError
//	}
//	defer t.Close()
//	fmt.Println(t.Eval()) // 7
//
// TODO: expose a streaming Compile variant that reads from an io.Reader
// instead of requiring the whole expression in memory; not needed by
// any current caller.
package expr
