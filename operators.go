// SPDX-FileCopyrightText: © 2021 The mathml authors <https://github.com/golangee/mathml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package mathml

// The functions in this file are the arithmetic sugar for building trees. Their operands
// are promoted like children of a composite, but unlike the constructors they do not
// accept attributes: an attribute passed as operand fails with a *PromotionError.
// Use the element constructors or operation descriptors to set attributes.
//
// No parentheses are inserted automatically. Power(Add(a, b), 2) renders as a+b², use
// Fenced to group explicitly.

// Pos returns <mrow><mo>+</mo>e</mrow>.
func Pos(e interface{}) Node {
	return unary(Positive, e)
}

// Neg returns <mrow><mo>-</mo>e</mrow>.
func Neg(e interface{}) Node {
	return unary(Negation, e)
}

// Add returns <mrow>a<mo>+</mo>b</mrow>.
func Add(a, b interface{}) Node {
	return binary(Plus, a, b)
}

// Subtract returns <mrow>a<mo>-</mo>b</mrow>.
func Subtract(a, b interface{}) Node {
	return binary(Minus, a, b)
}

// Multiply returns <mrow>a<mo>&#x2062;</mo>b</mrow>, joined by an invisible times.
func Multiply(a, b interface{}) Node {
	return binary(Times, a, b)
}

// Dot returns <mrow>a<mo>⋅</mo>b</mrow>.
func Dot(a, b interface{}) Node {
	return binary(Dotted, a, b)
}

// Divide returns <mrow>a<mo>/</mo>b</mrow>.
func Divide(a, b interface{}) Node {
	return binary(Division, a, b)
}

// FloorDivide returns <mfrac>a b</mfrac>.
func FloorDivide(a, b interface{}) Node {
	return operands(func(x ...Node) Node { return Frac(x[0], x[1]) }, a, b)
}

// Power returns <msup>a b</msup>.
func Power(a, b interface{}) Node {
	return operands(func(x ...Node) Node { return Sup(x[0], x[1]) }, a, b)
}

// Index returns <msub>e key</msub>. Several keys are joined into a single subscript
// without fences, i.e. <mfenced open="" close="">.
func Index(e interface{}, keys ...interface{}) Node {
	if len(keys) == 0 {
		return fail(NewArityError(TagSub, 1, 2, 2))
	}

	return operands(func(x ...Node) Node {
		if len(x) == 2 {
			return Sub(x[0], x[1])
		}

		args := make([]interface{}, 0, len(x)+1)
		for _, k := range x[1:] {
			args = append(args, k)
		}

		return Sub(x[0], Fenced(append(args, A("open", ""), A("close", ""))...))
	}, append([]interface{}{e}, keys...)...)
}

// Call returns <mrow>f<mo>&#x2061;</mo><mfenced>args</mfenced></mrow>, the application of f
// to its arguments.
func Call(f interface{}, args ...interface{}) Node {
	return operands(func(x ...Node) Node {
		fenced := make([]interface{}, 0, len(x)-1)
		for _, arg := range x[1:] {
			fenced = append(fenced, arg)
		}

		return Row(x[0], Operator(ApplyFunction), Fenced(fenced...))
	}, append([]interface{}{f}, args...)...)
}

func unary(op Unary, e interface{}) Node {
	return operands(func(x ...Node) Node { return op.Apply(x[0]) }, e)
}

func binary(op Binary, a, b interface{}) Node {
	return operands(func(x ...Node) Node { return op.Apply(x[0], x[1]) }, a, b)
}

// operands promotes all values before handing them to fn, so that attributes are rejected.
func operands(fn func(...Node) Node, values ...interface{}) Node {
	nodes := make([]Node, 0, len(values))
	for _, v := range values {
		n, err := Promote(v)
		if err != nil {
			return fail(err)
		}

		nodes = append(nodes, n)
	}

	return fn(nodes...)
}
