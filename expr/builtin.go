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
	"sort"
)

// builtin describes one entry of the static builtin table: a name, its
// arity (0, 1 or 2 for every name currently supported), and the
// concrete Go function value to invoke. All builtins are pure.
type builtin struct {
	name  string
	arity int
	fn    interface{}
}

// builtinTable is kept lexicographically sorted by name: a
// lexicographically-sorted slice consulted with a length-checked
// binary search so that "sin" never matches "sinh".
var builtinTable = []builtin{
	{"abs", 1, math.Abs},
	{"acos", 1, math.Acos},
	{"asin", 1, math.Asin},
	{"atan", 1, math.Atan},
	{"atan2", 2, atan2Fn},
	{"ceil", 1, math.Ceil},
	{"cos", 1, math.Cos},
	{"cosh", 1, math.Cosh},
	{"e", 0, constE},
	{"exp", 1, math.Exp},
	{"fac", 1, fac},
	{"floor", 1, math.Floor},
	{"ln", 1, math.Log},
	{"log", 1, math.Log10}, // overridden to math.Log when config.naturalLog
	{"log10", 1, math.Log10},
	{"ncr", 2, ncr},
	{"npr", 2, npr},
	{"pi", 0, constPi},
	{"pow", 2, powFn},
	{"sin", 1, math.Sin},
	{"sinh", 1, math.Sinh},
	{"sqrt", 1, math.Sqrt},
	{"tan", 1, math.Tan},
	{"tanh", 1, math.Tanh},
}

func init() {
	if !sort.SliceIsSorted(builtinTable, func(i, j int) bool {
		return builtinTable[i].name < builtinTable[j].name
	}) {
		panic("expr: builtinTable is not sorted")
	}
}

// lookupBuiltin binary-searches the builtin table for an exact name
// match. The binary search narrows on a byte-wise comparison and the
// final candidate's name length is checked explicitly, which is what
// prevents "sin" from being accepted as a match for "sinh" (strings
// compare as prefixes would otherwise tie-break incorrectly).
func lookupBuiltin(name string, cfg *config) (builtin, bool) {
	i := sort.Search(len(builtinTable), func(i int) bool {
		return builtinTable[i].name >= name
	})
	if i >= len(builtinTable) || builtinTable[i].name != name {
		return builtin{}, false
	}
	b := builtinTable[i]
	if b.name == "log" && cfg.naturalLog {
		b.fn = math.Log
	}
	return b, true
}
