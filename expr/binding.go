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

import "unsafe"

// Kind classifies a Binding: a plain variable, a function of 0-7
// scalar arguments, or a closure of 0-7 scalar arguments (a closure's
// underlying Go function additionally takes an unsafe.Pointer context
// as its first argument).
type Kind uint8

// Binding kinds. Function/Closure kinds are laid out arity-first so
// that Kind-Function0 (or Kind-Closure0) yields the arity directly.
const (
	Variable Kind = iota
	Function0
	Function1
	Function2
	Function3
	Function4
	Function5
	Function6
	Function7
	Closure0
	Closure1
	Closure2
	Closure3
	Closure4
	Closure5
	Closure6
	Closure7
)

func (k Kind) isClosure() bool { return k >= Closure0 }

// arity returns the number of scalar arguments for a Function/Closure
// kind. Only meaningful when k is not Variable.
func (k Kind) arity() int {
	if k.isClosure() {
		return int(k - Closure0)
	}
	return int(k - Function0)
}

// Binding is a single caller-registered name: either a bound variable
// (Var non-nil, Kind == Variable), or a callable. For a Function*
// Kind, Fn must hold a func(float64, ..., float64) float64 of the
// matching arity; for a Closure* Kind, Fn must hold a
// func(unsafe.Pointer, float64, ..., float64) float64, and Ctx is
// passed as that first argument on every call.
//
// Pure must be true only if the callable is deterministic and free of
// observable side effects for identical inputs; only pure nodes are
// eligible for constant folding. Built-in functions are always pure;
// callers are responsible for marking their own functions accurately.
type Binding struct {
	Name string
	Kind Kind
	Var  *float64
	Fn   interface{}
	Ctx  unsafe.Pointer
	Pure bool
}

// lookupBinding performs the caller-mandated first-match linear scan
// over bindings registered at Compile time. The first registration
// whose Name matches wins, which is the only mechanism that allows a
// caller to shadow a built-in of the same name.
func lookupBinding(bindings []Binding, name string) (Binding, bool) {
	for i := range bindings {
		if bindings[i].Name == name {
			return bindings[i], true
		}
	}
	return Binding{}, false
}
