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
	"unsafe"
)

// Eval evaluates the tree against the current values of its bound
// variables. An absent tree (nil Tree, or one already Close'd)
// evaluates to NaN. Eval performs no allocation and no locking: it is
// safe to call concurrently from multiple goroutines against the same
// Tree as long as none of the tree's bound variables (the *float64
// addresses given at Compile time) are mutated concurrently with those
// calls.
func (t *Tree) Eval() float64 {
	if t == nil || t.root == nil {
		return math.NaN()
	}
	return t.root.eval()
}

func (n *node) eval() float64 {
	if n == nil {
		return math.NaN()
	}
	switch n.kind {
	case kConstant:
		return n.value
	case kVariable:
		return *n.bound
	case kCall:
		return evalCall(n.fn, n.children)
	case kClosure:
		return evalClosure(n.fn, n.ctx, n.children)
	default:
		return math.NaN()
	}
}

// evalCall dispatches on the concrete signature stored in fn; that
// signature's arity decides how many children are read. Arguments are
// evaluated strictly left-to-right, which Go's own argument-evaluation order already
// guarantees for each call below.
func evalCall(fn interface{}, children []*node) float64 {
	switch f := fn.(type) {
	case func() float64:
		return f()
	case func(float64) float64:
		return f(children[0].eval())
	case func(float64, float64) float64:
		return f(children[0].eval(), children[1].eval())
	case func(float64, float64, float64) float64:
		return f(children[0].eval(), children[1].eval(), children[2].eval())
	case func(float64, float64, float64, float64) float64:
		return f(children[0].eval(), children[1].eval(), children[2].eval(), children[3].eval())
	case func(float64, float64, float64, float64, float64) float64:
		return f(children[0].eval(), children[1].eval(), children[2].eval(), children[3].eval(), children[4].eval())
	case func(float64, float64, float64, float64, float64, float64) float64:
		return f(children[0].eval(), children[1].eval(), children[2].eval(), children[3].eval(), children[4].eval(), children[5].eval())
	case func(float64, float64, float64, float64, float64, float64, float64) float64:
		return f(children[0].eval(), children[1].eval(), children[2].eval(), children[3].eval(), children[4].eval(), children[5].eval(), children[6].eval())
	default:
		// fn is none of the eight signatures above (arity outside 0..7,
		// or a registration whose Fn has some other type): defensive NaN.
		return math.NaN()
	}
}

// evalClosure is evalCall's mirror for closures: ctx is always passed
// as the first argument to the underlying function.
func evalClosure(fn interface{}, ctx unsafe.Pointer, children []*node) float64 {
	switch f := fn.(type) {
	case func(unsafe.Pointer) float64:
		return f(ctx)
	case func(unsafe.Pointer, float64) float64:
		return f(ctx, children[0].eval())
	case func(unsafe.Pointer, float64, float64) float64:
		return f(ctx, children[0].eval(), children[1].eval())
	case func(unsafe.Pointer, float64, float64, float64) float64:
		return f(ctx, children[0].eval(), children[1].eval(), children[2].eval())
	case func(unsafe.Pointer, float64, float64, float64, float64) float64:
		return f(ctx, children[0].eval(), children[1].eval(), children[2].eval(), children[3].eval())
	case func(unsafe.Pointer, float64, float64, float64, float64, float64) float64:
		return f(ctx, children[0].eval(), children[1].eval(), children[2].eval(), children[3].eval(), children[4].eval())
	case func(unsafe.Pointer, float64, float64, float64, float64, float64, float64) float64:
		return f(ctx, children[0].eval(), children[1].eval(), children[2].eval(), children[3].eval(), children[4].eval(), children[5].eval())
	case func(unsafe.Pointer, float64, float64, float64, float64, float64, float64, float64) float64:
		return f(ctx, children[0].eval(), children[1].eval(), children[2].eval(), children[3].eval(), children[4].eval(), children[5].eval(), children[6].eval())
	default:
		return math.NaN()
	}
}
