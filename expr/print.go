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
	"fmt"
	"strings"
)

// String renders a pre-order, depth-indented debug dump of the tree:
// constant nodes print their value, variable nodes print the address
// of the double they reference, and callable nodes print their arity
// followed by the addresses of their evaluated children before
// recursing. This is a debugging aid only; its output format is not
// part of any compatibility contract.
func (t *Tree) String() string {
	var b strings.Builder
	if t == nil || t.root == nil {
		b.WriteString("(absent)\n")
		return b.String()
	}
	printNode(&b, t.root, 0)
	return b.String()
}

func printNode(b *strings.Builder, n *node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch n.kind {
	case kConstant:
		fmt.Fprintf(b, "%sconstant %v\n", indent, n.value)
	case kVariable:
		fmt.Fprintf(b, "%svariable %p\n", indent, n.bound)
	case kCall:
		fmt.Fprintf(b, "%scall/%d", indent, len(n.children))
		for _, c := range n.children {
			fmt.Fprintf(b, " %p", c)
		}
		b.WriteByte('\n')
		for _, c := range n.children {
			printNode(b, c, depth+1)
		}
	case kClosure:
		fmt.Fprintf(b, "%sclosure/%d ctx=%p", indent, len(n.children), n.ctx)
		for _, c := range n.children {
			fmt.Fprintf(b, " %p", c)
		}
		b.WriteByte('\n')
		for _, c := range n.children {
			printNode(b, c, depth+1)
		}
	}
}
