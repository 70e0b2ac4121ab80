// SPDX-FileCopyrightText: © 2021 The mathml authors <https://github.com/golangee/mathml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package mathml

import "fmt"

// ArityError is returned when a composite node or an operation receives a number of
// children that does not match what its element requires.
type ArityError struct {
	Tag string
	Got int
	Min int
	// Max is negative if there is no upper bound.
	Max int
}

// NewArityError creates a new ArityError.
func NewArityError(tag string, got, min, max int) error {
	return &ArityError{
		Tag: tag,
		Got: got,
		Min: min,
		Max: max,
	}
}

func (e *ArityError) Error() string {
	switch {
	case e.Min == e.Max:
		return fmt.Sprintf("%s requires exactly %d children, got %d", e.Tag, e.Min, e.Got)
	case e.Max < 0:
		return fmt.Sprintf("%s requires at least %d children, got %d", e.Tag, e.Min, e.Got)
	default:
		return fmt.Sprintf("%s requires %d to %d children, got %d", e.Tag, e.Min, e.Max, e.Got)
	}
}

// PromotionError is returned when a value cannot be converted into a Node.
type PromotionError struct {
	Value interface{}
}

// NewPromotionError creates a new PromotionError.
func NewPromotionError(v interface{}) error {
	return &PromotionError{Value: v}
}

func (e *PromotionError) Error() string {
	return fmt.Sprintf("unsupported type for implicit conversion to a node: %T (%#v)", e.Value, e.Value)
}

// StringifyError is returned when the content of a token cannot be rendered as text.
type StringifyError struct {
	Value interface{}
}

// NewStringifyError creates a new StringifyError.
func NewStringifyError(v interface{}) error {
	return &StringifyError{Value: v}
}

func (e *StringifyError) Error() string {
	return fmt.Sprintf("cannot convert token content of type %T to text", e.Value)
}

// UnsupportedDisplayValueError is returned when a display mode other than
// "block" or "inline" is requested.
type UnsupportedDisplayValueError struct {
	Value string
}

// NewUnsupportedDisplayValueError creates a new UnsupportedDisplayValueError.
func NewUnsupportedDisplayValueError(v string) error {
	return &UnsupportedDisplayValueError{Value: v}
}

func (e *UnsupportedDisplayValueError) Error() string {
	return fmt.Sprintf("unsupported display value %q, expected %q or %q", e.Value, DisplayBlock, DisplayInline)
}

// UnsupportedTargetError is returned for a MathML target version that is not a
// semantic version between v1 and v4.
type UnsupportedTargetError struct {
	Value string
}

// NewUnsupportedTargetError creates a new UnsupportedTargetError.
func NewUnsupportedTargetError(v string) error {
	return &UnsupportedTargetError{Value: v}
}

func (e *UnsupportedTargetError) Error() string {
	return fmt.Sprintf("unsupported MathML target version %q", e.Value)
}
