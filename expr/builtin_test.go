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

func TestFactorialDomain(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"fac(0)", 1},
		{"fac(5)", 120},
	}
	for _, c := range cases {
		got, err := expr.Interp(c.in)
		if err != nil {
			t.Fatalf("Interp(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("Interp(%q) = %v, want %v", c.in, got, c.want)
		}
	}

	got, err := expr.Interp("fac(-1)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("fac(-1) = %v, want NaN", got)
	}

	got, err = expr.Interp("fac(3.5)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("fac(3.5) = %v, want NaN", got)
	}
}

func TestNcrNprDomain(t *testing.T) {
	got, err := expr.Interp("ncr(2,5)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("ncr(2,5) (n<r) = %v, want NaN", got)
	}

	got, err = expr.Interp("npr(5,2)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 20 {
		t.Errorf("npr(5,2) = %v, want 20", got)
	}
}

func TestLogBaseOption(t *testing.T) {
	got, err := expr.Interp("log(100)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-2) > 1e-9 {
		t.Errorf("log(100) default (base 10) = %v, want 2", got)
	}

	got, err = expr.Interp("log(100)", expr.NaturalLog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-math.Log(100)) > 1e-9 {
		t.Errorf("log(100) with NaturalLog() = %v, want %v", got, math.Log(100))
	}

	got, err = expr.Interp("log10(100)", expr.NaturalLog())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got-2) > 1e-9 {
		t.Errorf("log10(100) must stay base-10 regardless of NaturalLog(): got %v", got)
	}
}
