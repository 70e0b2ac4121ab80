// SPDX-FileCopyrightText: © 2021 The mathml authors <https://github.com/golangee/mathml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package mathml

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/golangee/mathml/encoder"
	"github.com/golangee/mathml/util"
)

// Token element names, see MathML 3 section 3.1.9.1.
const (
	TagIdentifier = "mi"
	TagNumber     = "mn"
	TagOperator   = "mo"
	TagText       = "mtext"
)

// Token is a leaf of the tree. Its content is converted to text when the token is
// serialized, not when it is created: a content value that changes after construction
// (e.g. a pointer implementing fmt.Stringer) is rendered in its state at serialization time.
//
// Supported content types are string, fmt.Stringer, error, bool and all integer and
// float kinds. Other contents fail serialization with a *StringifyError.
type Token struct {
	tag     string
	content interface{}
	attrs   util.AttributeList
}

// NewToken creates a token element with an arbitrary tag.
func NewToken(tag string, content interface{}, attrs ...util.Attribute) *Token {
	return &Token{
		tag:     tag,
		content: content,
		attrs:   util.NewAttributeList(attrs...),
	}
}

// Identifier creates an <mi> token.
func Identifier(content interface{}, attrs ...util.Attribute) *Token {
	return NewToken(TagIdentifier, content, attrs...)
}

// Number creates an <mn> token.
func Number(content interface{}, attrs ...util.Attribute) *Token {
	return NewToken(TagNumber, content, attrs...)
}

// Operator creates an <mo> token.
func Operator(content interface{}, attrs ...util.Attribute) *Token {
	return NewToken(TagOperator, content, attrs...)
}

// Text creates an <mtext> token.
func Text(content interface{}, attrs ...util.Attribute) *Token {
	return NewToken(TagText, content, attrs...)
}

// Identifiers returns one identifier per name, all sharing the same attributes.
func Identifiers(names []string, attrs ...util.Attribute) []*Token {
	res := make([]*Token, 0, len(names))
	for _, name := range names {
		res = append(res, Identifier(name, attrs...))
	}

	return res
}

func (t *Token) Tag() string {
	return t.tag
}

// Content returns the content as passed to the constructor.
func (t *Token) Content() interface{} {
	return t.content
}

func (t *Token) Attributes() util.AttributeList {
	return t.attrs.Clone()
}

func (t *Token) Element() (*encoder.Element, error) {
	text, err := stringify(t.content)
	if err != nil {
		return nil, fmt.Errorf("cannot serialize <%s>: %w", t.tag, err)
	}

	return encoder.NewTextElement(t.tag, t.attrs, text), nil
}

func (t *Token) failure() error {
	return nil
}

// stringify converts token content into text. A nil pointer, even one of a type with a
// String or Error method, is not convertible.
func stringify(v interface{}) (string, error) {
	if isNil(v) {
		return "", NewStringifyError(v)
	}

	switch c := v.(type) {
	case string:
		return c, nil
	case fmt.Stringer:
		return c.String(), nil
	case error:
		return c.Error(), nil
	case bool:
		return strconv.FormatBool(c), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	}

	return "", NewStringifyError(v)
}
