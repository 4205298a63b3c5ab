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

package expr

import "math"

// Compile parses expression against the given bindings and returns an
// optimized, ready-to-evaluate Tree. bindings may be nil. On a parse
// failure the returned Tree is nil and err is a *CompileError whose
// Position is the 1-based character offset within expression where
// parsing got stuck.
//
// Compile itself is not reentrant on shared state, but independent
// calls (even concurrent ones, even against the same bindings slice)
// may run in parallel: nothing here mutates caller-owned state besides
// reading it.
func Compile(expression string, bindings []Binding, opts ...Option) (*Tree, error) {
	cfg := newConfig(opts)
	p := newParser(expression, bindings, cfg)
	root := p.list()

	if p.cur.kind != tokEnd {
		msg := p.cur.errMsg
		if msg == "" {
			msg = "unexpected trailing input"
		}
		return nil, compileError(p.cur.pos, msg)
	}

	optimize(root)
	return &Tree{root: root}, nil
}

// Interp is the one-shot convenience entry point: compile, evaluate,
// and discard. It returns NaN if expression fails to compile.
func Interp(expression string, opts ...Option) (float64, error) {
	t, err := Compile(expression, nil, opts...)
	if err != nil {
		return math.NaN(), err
	}
	return t.Eval(), nil
}
