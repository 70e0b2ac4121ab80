// SPDX-FileCopyrightText: © 2021 The mathml authors <https://github.com/golangee/mathml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package mathml builds presentation MathML from Go code.
//
// A tree is made of tokens (Identifier, Number, Operator, Text) and composite elements
// (Row, Frac, Sup, ...). Arithmetic is spelled as functions:
//
//	a, b := mathml.Identifier("a"), mathml.Identifier("b")
//	e := mathml.Add(mathml.Add(mathml.Power(a, 2), mathml.Multiply(mathml.Multiply(2, a), b)), mathml.Power(b, 2))
//	s, err := mathml.Block(e)
//
// Plain strings and numbers are promoted to identifiers and numbers wherever a node is
// expected. Parentheses are never added automatically; group sub-expressions with Fenced.
//
// Attributes are given at construction, either as trailing util.Attribute arguments or
// mixed into the variadic arguments of Row, Fenced and the other open-ended elements:
//
//	mathml.Row(a, mathml.Operator("+"), b, mathml.A("mathcolor", "red"))
package mathml
