// SPDX-FileCopyrightText: © 2021 The mathml authors <https://github.com/golangee/mathml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package mathml

import (
	"fmt"

	"github.com/golangee/mathml/util"
)

// Invisible operators and other glyphs used by the predefined operations.
const (
	// ApplyFunction is U+2061, placed between a function and its arguments.
	ApplyFunction  = "\u2061"
	// InvisibleTimes is U+2062, denoting implicit multiplication.
	InvisibleTimes = "\u2062"
	DotOperator    = "\u22c5"
	NArySummation  = "\u2211"
	NAryProduct    = "\u220f"
	IntegralSign   = "\u222b"
	BottomBrace    = "\u23df"
)

// Predefined operations.
var (
	Positive = NewUnary("Pos", "+")
	Negation = NewUnary("Neg", "-")

	Plus     = NewBinary("Plus", "+")
	Minus    = NewBinary("Minus", "-")
	Times    = NewBinary("Times", InvisibleTimes)
	Dotted   = NewBinary("Dot", DotOperator)
	Division = NewBinary("Divide", "/")
	Equals   = NewBinary("Equals", "=")

	Sum      = NewNary("Sum", NArySummation)
	Product  = NewNary("Product", NAryProduct)
	Integral = NewNary("Integral", IntegralSign)
)

// Unary describes a prefix operator: Apply renders the glyph followed by the operand.
type Unary struct {
	Name  string
	Glyph string
}

// NewUnary creates a unary operation descriptor.
func NewUnary(name, glyph string) Unary {
	return Unary{Name: name, Glyph: glyph}
}

// Apply returns <mrow><mo>glyph</mo>operand</mrow> with the attributes on the mrow.
// An operand which cannot be promoted, including an attribute, fails with a *PromotionError.
func (u Unary) Apply(operand interface{}, attrs ...util.Attribute) Node {
	n, err := Promote(operand)
	if err != nil {
		return fail(err)
	}

	return Row(withAttrs(attrs, Operator(u.Glyph), n)...)
}

func (u Unary) String() string {
	return fmt.Sprintf("%s(%s)", u.Name, u.Glyph)
}

// Binary describes an associative infix operator.
type Binary struct {
	Name  string
	Glyph string
}

// NewBinary creates a binary operation descriptor.
func NewBinary(name, glyph string) Binary {
	return Binary{Name: name, Glyph: glyph}
}

// Apply joins two or more operands with the glyph: <mrow>a<mo>glyph</mo>b<mo>glyph</mo>c</mrow>.
// Attributes (util.Attribute or util.AttributeList arguments) are set on the mrow.
// Fewer than two operands fail with an *ArityError.
func (b Binary) Apply(args ...interface{}) Node {
	operands, attrs := splitArgs(args)
	if len(operands) < 2 {
		return fail(NewArityError(b.Name, len(operands), 2, -1))
	}

	children := make([]interface{}, 0, 2*len(operands))
	for i, operand := range operands {
		if i > 0 {
			children = append(children, Operator(b.Glyph))
		}

		children = append(children, operand)
	}

	return Row(append(children, attrs)...)
}

func (b Binary) String() string {
	return fmt.Sprintf("%s(%s)", b.Name, b.Glyph)
}

// Nary describes a large operator with an optional lower and upper bound, like a sum.
type Nary struct {
	Name  string
	Glyph string
}

// NewNary creates an n-ary operation descriptor.
func NewNary(name, glyph string) Nary {
	return Nary{Name: name, Glyph: glyph}
}

// Apply renders the operator in front of the operand. A nil start or end means the bound
// is absent, and the operator is decorated depending on which bounds are present:
//
//	start and end: <mrow><munderover><mo>g</mo>start end</munderover>operand</mrow>
//	start only:    <mrow><munder><mo>g</mo>start</munder>operand</mrow>
//	end only:      <mrow><mover><mo>g</mo>end</mover>operand</mrow>
//	neither:       <mrow><mo>g</mo>operand</mrow>
//
// The attributes are always set on the outer mrow. The operand is promoted first.
func (n Nary) Apply(operand, start, end interface{}, attrs ...util.Attribute) Node {
	body, err := Promote(operand)
	if err != nil {
		return fail(err)
	}

	var op Node

	switch {
	case start != nil && end != nil:
		op = UnderOver(Operator(n.Glyph), start, end)
	case start != nil:
		op = Under(Operator(n.Glyph), start)
	case end != nil:
		op = Over(Operator(n.Glyph), end)
	default:
		op = Operator(n.Glyph)
	}

	return Row(withAttrs(attrs, op, body)...)
}

func (n Nary) String() string {
	return fmt.Sprintf("%s(%s)", n.Name, n.Glyph)
}
