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

import (
	"math"
	"testing"
)

func TestLexerNumbers(t *testing.T) {
	cases := map[string]float64{
		"3":       3,
		"3.5":     3.5,
		".5":      0.5,
		"1e3":     1000,
		"1.5e-2":  0.015,
		"2.5E+1":  25,
	}
	for in, want := range cases {
		l := newLexer(in, nil, &config{})
		tok := l.next()
		if tok.kind != tokNumber {
			t.Errorf("lex(%q): kind = %v, want tokNumber", in, tok.kind)
			continue
		}
		if tok.number != want {
			t.Errorf("lex(%q) = %v, want %v", in, tok.number, want)
		}
	}
}

func TestLexerSinVsSinh(t *testing.T) {
	l := newLexer("sinh", nil, &config{})
	tok := l.next()
	if tok.kind != tokFunction {
		t.Fatalf("lex(sinh): kind = %v, want tokFunction", tok.kind)
	}
	if tok.name != "sinh" {
		t.Errorf("lex(sinh) resolved to %q, want sinh (not a prefix match on sin)", tok.name)
	}
	if fn, ok := tok.fn.(func(float64) float64); !ok || !isSameFunc(fn, math.Sinh) {
		t.Errorf("lex(sinh) resolved to a function other than math.Sinh")
	}
}

func TestLexerUnresolvedIdentifier(t *testing.T) {
	l := newLexer("bogus", nil, &config{})
	tok := l.next()
	if tok.kind != tokError {
		t.Errorf("lex(bogus): kind = %v, want tokError", tok.kind)
	}
}

func TestLexerFirstMatchWins(t *testing.T) {
	x := 1.0
	bindings := []Binding{{Name: "pi", Kind: Variable, Var: &x}}
	l := newLexer("pi", bindings, &config{})
	tok := l.next()
	if tok.kind != tokVariable {
		t.Errorf("lex(pi) with shadowing binding: kind = %v, want tokVariable", tok.kind)
	}
	if tok.bound != &x {
		t.Errorf("lex(pi) did not resolve to the caller's binding")
	}
}

func TestBuiltinLookupArity(t *testing.T) {
	cfg := &config{}
	b, ok := lookupBuiltin("pow", cfg)
	if !ok || b.arity != 2 {
		t.Errorf("lookupBuiltin(pow) = %+v, %v, want arity 2", b, ok)
	}
	if _, ok := lookupBuiltin("nosuch", cfg); ok {
		t.Errorf("lookupBuiltin(nosuch) unexpectedly found a match")
	}
}
