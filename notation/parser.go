// SPDX-FileCopyrightText: © 2021 The mathml authors <https://github.com/golangee/mathml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package notation reads formulas written in a plain arithmetic notation, like
// "a^2 + 2*a*b + b^2", and builds the corresponding MathML tree.
//
// Operators map to the functions of package mathml: + and - (binary and unary),
// * (invisible times), / (slash), // (fraction), @ (dot), ^ or ** (superscript),
// = (equation), x[i, j] (subscript) and f(x, y) (function application).
// Parentheses become an mfenced element, since MathML has no implicit grouping.
// Numbers keep their digits, double quoted strings become mtext and names of greek
// letters are replaced by the letter.
package notation

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer/stateful"
	"github.com/golangee/mathml"
)

var lexer = stateful.MustSimple([]stateful.Rule{
	{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?`, Action: nil},
	{Name: "String", Pattern: `"(\\"|[^"])*"`, Action: nil},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`, Action: nil},
	{Name: "Punct", Pattern: `\*\*|//|[-+*/^@=,()\[\]]`, Action: nil},
	{Name: "whitespace", Pattern: `\s+`, Action: nil},
})

var parser = participle.MustBuild(&equation{},
	participle.Lexer(lexer),
	participle.Unquote("String"),
	participle.Elide("whitespace"),
	participle.UseLookahead(2),
)

// Parse reads a formula and returns its tree. The filename is only used in error messages.
func Parse(fname, src string) (mathml.Node, error) {
	eq := &equation{}
	if err := parser.Parse(fname, strings.NewReader(src), eq); err != nil {
		return nil, fmt.Errorf("unable to parse formula: %w", err)
	}

	n := eq.node()
	if err := mathml.Err(n); err != nil {
		return nil, fmt.Errorf("unable to build formula: %w", err)
	}

	return n, nil
}

func (e *equation) node() mathml.Node {
	if len(e.Tail) == 0 {
		return e.Head.node()
	}

	args := []interface{}{e.Head.node()}
	for _, s := range e.Tail {
		args = append(args, s.node())
	}

	return mathml.Equals.Apply(args...)
}

func (s *sum) node() mathml.Node {
	acc := s.Head.node()

	for _, t := range s.Tail {
		if t.Op == "+" {
			acc = mathml.Add(acc, t.Term.node())
		} else {
			acc = mathml.Subtract(acc, t.Term.node())
		}
	}

	return acc
}

func (p *product) node() mathml.Node {
	acc := p.Head.node()

	for _, t := range p.Tail {
		switch t.Op {
		case "*":
			acc = mathml.Multiply(acc, t.Factor.node())
		case "/":
			acc = mathml.Divide(acc, t.Factor.node())
		case "//":
			acc = mathml.FloorDivide(acc, t.Factor.node())
		case "@":
			acc = mathml.Dot(acc, t.Factor.node())
		}
	}

	return acc
}

func (u *unary) node() mathml.Node {
	switch u.Op {
	case "-":
		return mathml.Neg(u.Value.node())
	case "+":
		return mathml.Pos(u.Value.node())
	default:
		return u.Value.node()
	}
}

func (p *power) node() mathml.Node {
	if p.Exponent == nil {
		return p.Base.node()
	}

	return mathml.Power(p.Base.node(), p.Exponent.node())
}

func (p *postfix) node() mathml.Node {
	acc := p.Primary.node()

	for _, s := range p.Suffixes {
		if len(s.Index) > 0 {
			acc = mathml.Index(acc, nodes(s.Index)...)
		} else {
			acc = mathml.Call(acc, nodes(s.Call)...)
		}
	}

	return acc
}

func (p *primary) node() mathml.Node {
	switch {
	case p.Number != nil:
		return mathml.Number(*p.Number)
	case p.Text != nil:
		return mathml.Text(*p.Text)
	case p.Ident != nil:
		if letter, ok := greek[*p.Ident]; ok {
			return mathml.Identifier(letter)
		}

		return mathml.Identifier(*p.Ident)
	default:
		return mathml.Fenced(p.Group.node())
	}
}

func nodes(sums []*sum) []interface{} {
	res := make([]interface{}, 0, len(sums))
	for _, s := range sums {
		res = append(res, s.node())
	}

	return res
}

var greek = map[string]string{
	"alpha":   "α",
	"beta":    "β",
	"gamma":   "γ",
	"delta":   "δ",
	"epsilon": "ε",
	"zeta":    "ζ",
	"eta":     "η",
	"theta":   "θ",
	"iota":    "ι",
	"kappa":   "κ",
	"lambda":  "λ",
	"mu":      "μ",
	"nu":      "ν",
	"xi":      "ξ",
	"pi":      "π",
	"rho":     "ρ",
	"sigma":   "σ",
	"tau":     "τ",
	"phi":     "φ",
	"chi":     "χ",
	"psi":     "ψ",
	"omega":   "ω",
	"Gamma":   "Γ",
	"Delta":   "Δ",
	"Theta":   "Θ",
	"Lambda":  "Λ",
	"Xi":      "Ξ",
	"Pi":      "Π",
	"Sigma":   "Σ",
	"Phi":     "Φ",
	"Psi":     "Ψ",
	"Omega":   "Ω",
}
