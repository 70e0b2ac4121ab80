// SPDX-FileCopyrightText: © 2021 The mathml authors <https://github.com/golangee/mathml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package mathml

import (
	"github.com/golangee/mathml/encoder"
	"github.com/golangee/mathml/util"
)

// Node is an expression in a presentation MathML tree.
// A node is either a *Token (a leaf with text content) or a *Composite (an element
// with child nodes). Nodes are immutable after construction.
//
// Constructors never panic. A construction that fails returns a node that carries the
// error: Err reports it, every composite built from such a node inherits it and
// serializing a tree containing it returns it.
type Node interface {
	// Tag returns the element name, e.g. "mi" or "mrow".
	Tag() string
	// Attributes returns a copy of the attributes in insertion order.
	Attributes() util.AttributeList
	// Element builds the output element for this node and all of its descendants.
	Element() (*encoder.Element, error)

	failure() error
}

// A returns an attribute to be passed to a node constructor.
func A(key, value string) util.Attribute {
	return util.Attribute{Key: key, Value: value}
}

// Err returns the error of a failed construction, or nil if n is a valid node.
func Err(n Node) error {
	if n == nil {
		return nil
	}

	return n.failure()
}

// broken is the result of a failed construction.
type broken struct {
	err error
}

func fail(err error) Node {
	return &broken{err: err}
}

func (b *broken) Tag() string {
	return ""
}

func (b *broken) Attributes() util.AttributeList {
	return nil
}

func (b *broken) Element() (*encoder.Element, error) {
	return nil, b.err
}

func (b *broken) failure() error {
	return b.err
}

// splitArgs separates attributes from the other arguments of a constructor.
// Attributes keep their relative order; a later key overwrites an earlier one.
func splitArgs(args []interface{}) ([]interface{}, util.AttributeList) {
	var values []interface{}
	var attrs util.AttributeList

	for _, arg := range args {
		switch a := arg.(type) {
		case util.Attribute:
			attrs.Set(a.Key, a.Value)
		case util.AttributeList:
			attrs = attrs.Merge(a)
		default:
			values = append(values, arg)
		}
	}

	return values, attrs
}
