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

// maxFacTerms caps the argument fac converts to an unsigned integer;
// anything larger saturates to +Inf straight away (its factorial would
// overflow the uint64 accumulator in any case, which happens from 21!).
const maxFacTerms = 1 << 20

// fac computes a saturating factorial: negative or non-integer inputs
// are NaN (outside the function's domain), and inputs large enough to
// overflow an unsigned accumulator saturate to +Inf rather than
// wrapping or losing precision silently.
func fac(n float64) float64 {
	if n < 0 || n != math.Trunc(n) {
		return math.NaN()
	}
	if n > maxFacTerms {
		return math.Inf(1)
	}
	var result uint64 = 1
	for i := uint64(2); i <= uint64(n); i++ {
		if result > math.MaxUint64/i {
			return math.Inf(1)
		}
		result *= i
	}
	return float64(result)
}

// ncr computes the saturating "n choose r" binomial coefficient.
// n < r, or either argument negative or non-integer, is NaN; overflow
// of the uint64 accumulator saturates to +Inf.
func ncr(n, r float64) float64 {
	if n < 0 || r < 0 || n != math.Trunc(n) || r != math.Trunc(r) || n < r {
		return math.NaN()
	}
	if n > math.MaxUint32 {
		return math.Inf(1)
	}
	un, ur := uint64(n), uint64(r)
	if ur > un-ur {
		ur = un - ur
	}
	var result uint64 = 1
	for i := uint64(1); i <= ur; i++ {
		if result > math.MaxUint64/(un-ur+i) {
			return math.Inf(1)
		}
		result = result * (un - ur + i) / i
	}
	return float64(result)
}

// npr computes the saturating "n permute r" coefficient: n! / (n-r)!,
// with the same domain and saturation rules as ncr.
func npr(n, r float64) float64 {
	if n < 0 || r < 0 || n != math.Trunc(n) || r != math.Trunc(r) || n < r {
		return math.NaN()
	}
	if n > math.MaxUint32 {
		return math.Inf(1)
	}
	un, ur := uint64(n), uint64(r)
	var result uint64 = 1
	for i := uint64(0); i < ur; i++ {
		if result > math.MaxUint64/(un-i) {
			return math.Inf(1)
		}
		result *= un - i
	}
	return float64(result)
}

func negate(a float64) float64    { return -a }
func add(a, b float64) float64    { return a + b }
func sub(a, b float64) float64    { return a - b }
func mul(a, b float64) float64    { return a * b }
func div(a, b float64) float64    { return a / b }
func fmod(a, b float64) float64   { return math.Mod(a, b) }
func comma(a, b float64) float64  { return b }
func constE() float64             { return math.E }
func constPi() float64            { return math.Pi }
func powFn(a, b float64) float64  { return math.Pow(a, b) }
func atan2Fn(a, b float64) float64 { return math.Atan2(a, b) }
