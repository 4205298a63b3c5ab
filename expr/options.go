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

// Option configures one compile-time choice — exponentiation
// associativity or log base — as an ordinary functional option, so a
// single Go program can freely mix both conventions across independent
// calls to Compile/Interp.
type Option func(*config)

type config struct {
	rightAssocPow bool
	naturalLog    bool
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, o := range opts {
		o(c)
	}
	return c
}

// RightAssociativePow makes "^" right-associative, so that
// 2^3^2 == 2^(3^2) == 512 and -2^2 == -(2^2) == -4.
//
// The default is left-associative: 2^3^2 == (2^3)^2 == 64 and
// -2^2 == (-2)^2 == 4.
func RightAssociativePow() Option {
	return func(c *config) { c.rightAssocPow = true }
}

// NaturalLog makes the builtin "log" mean natural logarithm (same as
// "ln"). The default is base-10 (same as "log10"). "ln" and "log10"
// always keep their fixed meaning regardless of this option.
func NaturalLog() Option {
	return func(c *config) { c.naturalLog = true }
}
