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

// The tinyexpr command is a small showcase for package
// github.com/Sireth/tinyexpr/expr: it evaluates one expression given on
// the command line, or, with -i, runs an interactive calculator loop.
//
// Usage:
//
//	-i
//	      start an interactive REPL instead of evaluating an argument
//	-ln
//	      make log() mean natural logarithm (default: base 10)
//	-rpow
//	      make ^ right-associative (default: left-associative)
//
//	tinyexpr 'sqrt(16) + abs(-3)'
//	tinyexpr -rpow '2^3^2'
//	tinyexpr -i
package main
