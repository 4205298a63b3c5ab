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

// parser is a recursive-descent stack of routines over the precedence
// ladder list > expr > term > factor > power > base. Each routine
// builds and returns a subtree; on a grammar-level mismatch it forces
// the current token to tokError (without consuming more input) rather
// than unwinding with a separate error value, so that outer routines
// whose continuation loops only match on specific token kinds
// naturally stop and propagate the failure upward, with no explicit
// cleanup needed for the abandoned partial subtrees: Go's garbage
// collector reclaims them once the enclosing Compile call returns.
type parser struct {
	lex *lexer
	cur token
}

func newParser(input string, bindings []Binding, cfg *config) *parser {
	p := &parser{lex: newLexer(input, bindings, cfg)}
	p.advance()
	return p
}

func (p *parser) advance() { p.cur = p.lex.next() }

// fail forces the current token to tokError without scanning further,
// recording msg unless an error (lexical or otherwise) is already
// pending -- the first failure encountered wins.
func (p *parser) fail(msg string) {
	if p.cur.kind == tokError {
		return
	}
	p.cur.kind = tokError
	p.cur.errMsg = msg
}

// list = expr {"," expr}
func (p *parser) list() *node {
	ret := p.expr()
	for p.cur.kind == tokSep {
		p.advance()
		rhs := p.expr()
		ret = callNode(comma, true, []*node{ret, rhs})
	}
	return ret
}

// expr = term {("+" | "-") term}
func (p *parser) expr() *node {
	ret := p.term()
	for p.cur.kind == tokInfix && (p.cur.op == '+' || p.cur.op == '-') {
		fn := p.cur.infixFn
		p.advance()
		rhs := p.term()
		ret = callNode(fn, true, []*node{ret, rhs})
	}
	return ret
}

// term = factor {("*" | "/" | "%") factor}
func (p *parser) term() *node {
	ret := p.factor()
	for p.cur.kind == tokInfix && (p.cur.op == '*' || p.cur.op == '/' || p.cur.op == '%') {
		fn := p.cur.infixFn
		p.advance()
		rhs := p.factor()
		ret = callNode(fn, true, []*node{ret, rhs})
	}
	return ret
}

// factor = power {"^" power}, associativity controlled by cfg.
func (p *parser) factor() *node {
	if p.lex.cfg.rightAssocPow {
		return p.factorRightAssoc()
	}
	return p.factorLeftAssoc()
}

func (p *parser) factorLeftAssoc() *node {
	ret := p.power()
	for p.cur.kind == tokInfix && p.cur.op == '^' {
		p.advance()
		rhs := p.power()
		ret = callNode(powFn, true, []*node{ret, rhs})
	}
	return ret
}

// factorRightAssoc parses the same token stream as factorLeftAssoc but
// builds the "^" chain so that it associates to the right: unwrap a
// leading negation (if power() produced one), build the chain, then
// reapply the negation once around the whole chain.
func (p *parser) factorRightAssoc() *node {
	ret := p.power()
	neg := false
	if isNegateCall(ret) {
		ret = ret.children[0]
		neg = true
	}

	var insertion *node
	for p.cur.kind == tokInfix && p.cur.op == '^' {
		p.advance()
		rhs := p.power()
		if insertion != nil {
			grafted := callNode(powFn, true, []*node{insertion.children[1], rhs})
			insertion.children[1] = grafted
			insertion = grafted
		} else {
			ret = callNode(powFn, true, []*node{ret, rhs})
			insertion = ret
		}
	}

	if neg {
		ret = callNode(negate, true, []*node{ret})
	}
	return ret
}

func isNegateCall(n *node) bool {
	if n.kind != kCall || len(n.children) != 1 {
		return false
	}
	fn, ok := n.fn.(func(float64) float64)
	if !ok {
		return false
	}
	return isSameFunc(fn, negate)
}

// power = {("+" | "-")} base
func (p *parser) power() *node {
	negCount := 0
	for p.cur.kind == tokInfix && (p.cur.op == '+' || p.cur.op == '-') {
		if p.cur.op == '-' {
			negCount++
		}
		p.advance()
	}
	ret := p.base()
	if negCount%2 != 0 {
		ret = callNode(negate, true, []*node{ret})
	}
	return ret
}

// base = NUMBER | VARIABLE | FUNCTION0 ["(" ")"] | FUNCTION1 power
//      | FUNCTIONk "(" expr ("," expr){k-1} ")"  (k>=2, CLOSUREk analogous)
//      | "(" list ")"
func (p *parser) base() *node {
	switch p.cur.kind {
	case tokNumber:
		v := p.cur.number
		p.advance()
		return constNode(v)

	case tokVariable:
		bound := p.cur.bound
		p.advance()
		return variableNode(bound)

	case tokFunction, tokClosure:
		return p.callable()

	case tokOpen:
		p.advance()
		ret := p.list()
		if p.cur.kind != tokClose {
			p.fail("missing )")
		} else {
			p.advance()
		}
		return ret

	default:
		p.fail("expected a value")
		return constNode(math.NaN())
	}
}

func (p *parser) callable() *node {
	tok := p.cur
	isClosure := tok.kind == tokClosure
	arity := tok.arity
	p.advance()

	switch {
	case arity == 0:
		if p.cur.kind == tokOpen {
			p.advance()
			if p.cur.kind != tokClose {
				p.fail("expected ) after empty argument list")
			} else {
				p.advance()
			}
		}
		return makeCallable(tok, isClosure, nil)

	case arity == 1:
		arg := p.power()
		return makeCallable(tok, isClosure, []*node{arg})

	default:
		args := p.callArgs(arity)
		return makeCallable(tok, isClosure, args)
	}
}

// callArgs parses "(" expr ("," expr)* ")" and requires exactly arity
// expressions; any mismatch in count or in the surrounding parens
// raises a parse error but still returns a best-effort (possibly
// NaN-padded) argument list so the caller can keep building a tree.
func (p *parser) callArgs(arity int) []*node {
	args := make([]*node, 0, arity)
	if p.cur.kind != tokOpen {
		p.fail("expected ( before argument list")
		return padArgs(args, arity)
	}
	p.advance()

	i := 0
	for i < arity {
		args = append(args, p.expr())
		i++
		if p.cur.kind != tokSep {
			break
		}
		p.advance()
	}
	if p.cur.kind != tokClose || i != arity {
		p.fail("wrong number of arguments")
	} else {
		p.advance()
	}
	return padArgs(args, arity)
}

func padArgs(args []*node, arity int) []*node {
	for len(args) < arity {
		args = append(args, constNode(math.NaN()))
	}
	return args[:arity]
}

func makeCallable(tok token, isClosure bool, children []*node) *node {
	if isClosure {
		return closureNode(tok.fn, tok.ctx, tok.pure, children)
	}
	return callNode(tok.fn, tok.pure, children)
}
