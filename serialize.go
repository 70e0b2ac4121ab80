// SPDX-FileCopyrightText: © 2021 The mathml authors <https://github.com/golangee/mathml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package mathml

import (
	"io"
	"strings"

	"github.com/golangee/mathml/encoder"
	"github.com/golangee/mathml/util"
	"golang.org/x/mod/semver"
)

const (
	// Namespace is the XML namespace of MathML, declared on the <math> root.
	Namespace = "http://www.w3.org/1998/Math/MathML"
	TagMath   = "math"

	DisplayBlock  = "block"
	DisplayInline = "inline"
)

// coreVersion is the first MathML version without <mfenced>.
const coreVersion = "v4"

// Option configures serialization.
type Option func(*options)

type options struct {
	display string
	target  string
	indent  string
}

// WithDisplay wraps the output in a <math> root with the given display attribute,
// which must be DisplayBlock or DisplayInline. An empty mode means no root.
func WithDisplay(mode string) Option {
	return func(o *options) {
		o.display = mode
	}
}

// WithTarget selects the MathML version the output is meant for, as a semantic version
// such as "v3" or "4.0". For v4 and later, which follow MathML Core, every <mfenced>
// is replaced by an <mrow> holding the fences and separators as <mo> elements.
// The default is MathML 3.
func WithTarget(version string) Option {
	return func(o *options) {
		o.target = version
	}
}

// WithIndent puts every element on its own line, indented by prefix per level.
// It only affects text output.
func WithIndent(prefix string) Option {
	return func(o *options) {
		o.indent = prefix
	}
}

func collect(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// lowerFences validates the display and target options and reports whether
// fences need to be lowered for the target.
func (o options) lowerFences() (bool, error) {
	switch o.display {
	case "", DisplayBlock, DisplayInline:
	default:
		return false, NewUnsupportedDisplayValueError(o.display)
	}

	if o.target == "" {
		return false, nil
	}

	v := o.target
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}

	if !semver.IsValid(v) || semver.Compare(v, "v1") < 0 || semver.Compare(semver.Major(v), coreVersion) > 0 {
		return false, NewUnsupportedTargetError(o.target)
	}

	return semver.Compare(v, coreVersion) >= 0, nil
}

// ToTree promotes v and builds its output element tree.
func ToTree(v interface{}, opts ...Option) (*encoder.Element, error) {
	o := collect(opts)

	lower, err := o.lowerFences()
	if err != nil {
		return nil, err
	}

	n, err := Promote(v)
	if err != nil {
		return nil, err
	}

	el, err := n.Element()
	if err != nil {
		return nil, err
	}

	if lower {
		el = lowerFenced(el)
	}

	if o.display != "" {
		el = encoder.NewElement(TagMath, util.NewAttributeList(A("display", o.display), A("xmlns", Namespace)), el)
	}

	return el, nil
}

// Encode writes the MathML text of v to w.
func Encode(w io.Writer, v interface{}, opts ...Option) error {
	el, err := ToTree(v, opts...)
	if err != nil {
		return err
	}

	enc := encoder.NewXMLEncoder(w)
	enc.SetIndent(collect(opts).indent)

	return enc.Encode(el)
}

// ToText returns the MathML text of v. Without WithIndent the text contains no
// whitespace between elements.
func ToText(v interface{}, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := Encode(&sb, v, opts...); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// Block returns the MathML text of v inside a <math display="block"> root.
func Block(v interface{}) (string, error) {
	return ToText(v, WithDisplay(DisplayBlock))
}

// Inline returns the MathML text of v inside a <math display="inline"> root.
func Inline(v interface{}) (string, error) {
	return ToText(v, WithDisplay(DisplayInline))
}

// lowerFenced returns a copy of the tree where every <mfenced> is replaced by an
// equivalent <mrow>, applying the mfenced defaults open="(", close=")" and separators=",".
func lowerFenced(el *encoder.Element) *encoder.Element {
	children := make([]*encoder.Element, 0, len(el.Children))
	for _, child := range el.Children {
		children = append(children, lowerFenced(child))
	}

	if el.Name != TagFenced {
		res := *el
		res.Attributes = el.Attributes.Clone()
		res.Children = children

		return &res
	}

	attrs := el.Attributes.Clone()
	open := takeAttribute(&attrs, "open", "(")
	closing := takeAttribute(&attrs, "close", ")")
	separators := []rune(strings.Join(strings.Fields(takeAttribute(&attrs, "separators", ",")), ""))

	row := encoder.NewElement(TagRow, attrs)
	if open != "" {
		row.AddChildren(encoder.NewTextElement(TagOperator, util.NewAttributeList(A("fence", "true"), A("form", "prefix")), open))
	}

	for i, child := range children {
		if i > 0 && len(separators) > 0 {
			sep := separators[len(separators)-1]
			if i-1 < len(separators) {
				sep = separators[i-1]
			}

			row.AddChildren(encoder.NewTextElement(TagOperator, util.NewAttributeList(A("separator", "true")), string(sep)))
		}

		row.AddChildren(child)
	}

	if closing != "" {
		row.AddChildren(encoder.NewTextElement(TagOperator, util.NewAttributeList(A("fence", "true"), A("form", "postfix")), closing))
	}

	return row
}

// takeAttribute removes key from attrs and returns its value, or def if it is not set.
func takeAttribute(attrs *util.AttributeList, key, def string) string {
	v, ok := attrs.Get(key)
	if !ok {
		return def
	}

	attrs.Delete(key)

	return v
}
