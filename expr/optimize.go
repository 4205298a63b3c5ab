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

// optimize performs the single post-order constant-folding pass:
// constants and variables are left alone, an impure node is left alone
// together with its entire subtree (impurity does not get "fixed" by
// folding a constant deeper down — an impure node is never even
// recursed past), and a pure node whose children are all constants
// after recursively optimizing them gets evaluated once and rewritten
// in place to a constant, discarding its children.
func optimize(n *node) {
	if n == nil {
		return
	}
	switch n.kind {
	case kConstant, kVariable:
		return
	}
	if !n.pure {
		return
	}
	known := true
	for _, c := range n.children {
		optimize(c)
		if c.kind != kConstant {
			known = false
		}
	}
	if known {
		v := n.eval()
		n.kind = kConstant
		n.value = v
		n.children = nil
		n.fn = nil
		n.ctx = nil
	}
}
