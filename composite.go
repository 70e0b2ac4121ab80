// SPDX-FileCopyrightText: © 2021 The mathml authors <https://github.com/golangee/mathml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package mathml

import (
	"github.com/golangee/mathml/encoder"
	"github.com/golangee/mathml/util"
)

// Composite element names, see MathML 3 sections 3.3 to 3.5.
const (
	TagRow        = "mrow"
	TagFrac       = "mfrac"
	TagSqrt       = "msqrt"
	TagRoot       = "mroot"
	TagStyle      = "mstyle"
	TagFenced     = "mfenced"
	TagSub        = "msub"
	TagSup        = "msup"
	TagSubSup     = "msubsup"
	TagUnder      = "munder"
	TagOver       = "mover"
	TagUnderOver  = "munderover"
	TagTable      = "mtable"
	TagTableRow   = "mtr"
	TagTableEntry = "mtd"
)

// arity is the admissible number of children of an element. max is -1 if unbounded.
type arity struct {
	min, max int
}

var arities = map[string]arity{
	TagFrac:      {2, 2},
	TagSqrt:      {1, 1},
	TagRoot:      {2, 2},
	TagSub:       {2, 2},
	TagSup:       {2, 2},
	TagSubSup:    {3, 3},
	TagUnder:     {2, 2},
	TagOver:      {2, 2},
	TagUnderOver: {3, 3},
}

// Composite is an element holding an ordered sequence of child nodes.
type Composite struct {
	tag      string
	children []Node
	attrs    util.AttributeList
}

// NewComposite creates an element with the given tag. Arguments of type util.Attribute
// or util.AttributeList are taken as attributes, all other arguments are promoted to
// nodes and become the children in the given order.
//
// The number of children is checked against the element: msub, msup, munder, mover,
// mfrac and mroot take exactly 2, msubsup and munderover exactly 3, msqrt exactly 1.
// Other elements take any number. An mfenced element with more than one child gets
// its children wrapped in a single mrow.
func NewComposite(tag string, args ...interface{}) (*Composite, error) {
	values, attrs := splitArgs(args)

	if a, ok := arities[tag]; ok {
		if len(values) < a.min || (a.max >= 0 && len(values) > a.max) {
			return nil, NewArityError(tag, len(values), a.min, a.max)
		}
	}

	children := make([]Node, 0, len(values))
	for _, v := range values {
		n, err := Promote(v)
		if err != nil {
			return nil, err
		}

		children = append(children, n)
	}

	if tag == TagFenced && len(children) > 1 {
		children = []Node{&Composite{tag: TagRow, children: children}}
	}

	return &Composite{
		tag:      tag,
		children: children,
		attrs:    attrs,
	}, nil
}

// build is NewComposite for constructors which report errors through the returned node.
func build(tag string, args ...interface{}) Node {
	c, err := NewComposite(tag, args...)
	if err != nil {
		return fail(err)
	}

	return c
}

// withAttrs appends attributes to a fixed argument list.
func withAttrs(attrs []util.Attribute, args ...interface{}) []interface{} {
	for _, a := range attrs {
		args = append(args, a)
	}

	return args
}

// Row creates an <mrow> element.
func Row(args ...interface{}) Node {
	return build(TagRow, args...)
}

// Style creates an <mstyle> element.
func Style(args ...interface{}) Node {
	return build(TagStyle, args...)
}

// Fenced creates an <mfenced> element. A single child is placed directly inside the
// element, several children are wrapped in an <mrow> first.
func Fenced(args ...interface{}) Node {
	return build(TagFenced, args...)
}

// Frac creates an <mfrac> element.
func Frac(numerator, denominator interface{}, attrs ...util.Attribute) Node {
	return build(TagFrac, withAttrs(attrs, numerator, denominator)...)
}

// Sqrt creates an <msqrt> element.
func Sqrt(base interface{}, attrs ...util.Attribute) Node {
	return build(TagSqrt, withAttrs(attrs, base)...)
}

// Root creates an <mroot> element. The radicand comes first, then the index, which is
// the child order of <mroot>: Root(x, 3) is the cube root of x.
func Root(radicand, index interface{}, attrs ...util.Attribute) Node {
	return build(TagRoot, withAttrs(attrs, radicand, index)...)
}

// Sub creates an <msub> element.
func Sub(base, subscript interface{}, attrs ...util.Attribute) Node {
	return build(TagSub, withAttrs(attrs, base, subscript)...)
}

// Sup creates an <msup> element.
func Sup(base, superscript interface{}, attrs ...util.Attribute) Node {
	return build(TagSup, withAttrs(attrs, base, superscript)...)
}

// SubSup creates an <msubsup> element.
func SubSup(base, subscript, superscript interface{}, attrs ...util.Attribute) Node {
	return build(TagSubSup, withAttrs(attrs, base, subscript, superscript)...)
}

// Under creates an <munder> element.
func Under(base, underscript interface{}, attrs ...util.Attribute) Node {
	return build(TagUnder, withAttrs(attrs, base, underscript)...)
}

// Over creates an <mover> element.
func Over(base, overscript interface{}, attrs ...util.Attribute) Node {
	return build(TagOver, withAttrs(attrs, base, overscript)...)
}

// UnderOver creates an <munderover> element.
func UnderOver(base, underscript, overscript interface{}, attrs ...util.Attribute) Node {
	return build(TagUnderOver, withAttrs(attrs, base, underscript, overscript)...)
}

// Table creates an <mtable> element, usually with TableRow children.
func Table(args ...interface{}) Node {
	return build(TagTable, args...)
}

// TableRow creates an <mtr> element, usually with TableEntry children.
func TableRow(args ...interface{}) Node {
	return build(TagTableRow, args...)
}

// TableEntry creates an <mtd> element. It normally has a single child.
func TableEntry(args ...interface{}) Node {
	return build(TagTableEntry, args...)
}

func (c *Composite) Tag() string {
	return c.tag
}

// Children returns a copy of the child list.
func (c *Composite) Children() []Node {
	return append([]Node{}, c.children...)
}

func (c *Composite) Attributes() util.AttributeList {
	return c.attrs.Clone()
}

func (c *Composite) Element() (*encoder.Element, error) {
	el := encoder.NewElement(c.tag, c.attrs)

	for _, child := range c.children {
		ce, err := child.Element()
		if err != nil {
			return nil, err
		}

		el.AddChildren(ce)
	}

	return el, nil
}

func (c *Composite) failure() error {
	return nil
}
