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

package expr_test

import (
	"math"
	"testing"

	"github.com/Sireth/tinyexpr/expr"
)

func TestInterpScenarios(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1+2*3", 7},
		{"(1+2)*3", 9},
		{"2^3^2", 64}, // left-associative default: (2^3)^2
		{"-2^2", 4},   // (-2)^2
		{"sqrt(16) + abs(-3)", 7},
		{"pi", math.Pi},
		{"pow(2, 10)", 1024},
		{"ncr(5,2)", 10},
		{"fac(5)", 120},
		{"1,2,3", 3},
		{"1/0", math.Inf(1)},
	}

	for _, c := range cases {
		got, err := expr.Interp(c.in)
		if err != nil {
			t.Errorf("Interp(%q): unexpected error: %v", c.in, err)
			continue
		}
		if math.IsInf(c.want, 1) {
			if !math.IsInf(got, 1) {
				t.Errorf("Interp(%q) = %v, want +Inf", c.in, got)
			}
			continue
		}
		if got != c.want {
			t.Errorf("Interp(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestInterpLogNaN(t *testing.T) {
	got, err := expr.Interp("log(-1)")
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("log(-1) = %v, want NaN", got)
	}
}

func TestExponentRightAssociative(t *testing.T) {
	got, err := expr.Interp("2^3^2", expr.RightAssociativePow())
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}
	if got != 512 {
		t.Errorf("2^3^2 (right-assoc) = %v, want 512", got)
	}

	got, err = expr.Interp("-2^2", expr.RightAssociativePow())
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}
	if got != -4 {
		t.Errorf("-2^2 (right-assoc) = %v, want -4", got)
	}
}

func TestSinWithVariable(t *testing.T) {
	x := 0.0
	tr, err := expr.Compile("sin x", []expr.Binding{{Name: "x", Kind: expr.Variable, Var: &x}})
	if err != nil {
		t.Fatalf("unexpected compile error: %v", err)
	}
	defer tr.Close()
	if got := tr.Eval(); got != 0 {
		t.Errorf("sin(0) = %v, want 0", got)
	}
}

func TestCompileErrors(t *testing.T) {
	cases := []struct {
		in        string
		minErrPos int
	}{
		{"2 +", 3},
		{"foo(1)", 1},
		{"pow(1)", 1},
	}
	for _, c := range cases {
		_, err := expr.Compile(c.in, nil)
		if err == nil {
			t.Errorf("Compile(%q): expected error, got none", c.in)
			continue
		}
		ce, ok := err.(*expr.CompileError)
		if !ok {
			t.Errorf("Compile(%q): error is %T, want *expr.CompileError", c.in, err)
			continue
		}
		if ce.Position < c.minErrPos {
			t.Errorf("Compile(%q): error position %d, want >= %d", c.in, ce.Position, c.minErrPos)
		}
	}
}
