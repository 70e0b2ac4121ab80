// SPDX-FileCopyrightText: © 2021 The mathml authors <https://github.com/golangee/mathml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package encoder

import "github.com/golangee/mathml/util"

// Element is a node of the output tree.
// Token elements carry Text and no Children, all other elements carry Children and an empty Text.
type Element struct {
	Name       string
	Attributes util.AttributeList
	Text       string
	Children   []*Element
}

// NewElement creates an element with the given children. The attributes are copied.
func NewElement(name string, attrs util.AttributeList, children ...*Element) *Element {
	return &Element{
		Name:       name,
		Attributes: attrs.Clone(),
		Children:   children,
	}
}

// NewTextElement creates a leaf element holding text.
func NewTextElement(name string, attrs util.AttributeList, text string) *Element {
	return &Element{
		Name:       name,
		Attributes: attrs.Clone(),
		Text:       text,
	}
}

// AddChildren adds children to an element and can be used builder-style.
func (e *Element) AddChildren(children ...*Element) *Element {
	e.Children = append(e.Children, children...)

	return e
}

// AddAttribute adds an attribute to an element and can be used builder-style.
func (e *Element) AddAttribute(key, value string) *Element {
	e.Attributes.Set(key, value)

	return e
}

// IsLeaf returns true if the element has no children.
func (e *Element) IsLeaf() bool {
	return len(e.Children) == 0
}
