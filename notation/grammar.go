// SPDX-FileCopyrightText: © 2021 The mathml authors <https://github.com/golangee/mathml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package notation

// The grammar encodes the usual precedence levels, from loosest to tightest:
// equations, sums, products, signs, powers and finally indexing and calls.

type equation struct {
	Head *sum   `@@`
	Tail []*sum `( "=" @@ )*`
}

type sum struct {
	Head *product   `@@`
	Tail []*sumTail `@@*`
}

type sumTail struct {
	Op   string   `@( "+" | "-" )`
	Term *product `@@`
}

type product struct {
	Head *unary         `@@`
	Tail []*productTail `@@*`
}

type productTail struct {
	Op     string `@( "*" | "//" | "/" | "@" )`
	Factor *unary `@@`
}

type unary struct {
	Op    string `@( "-" | "+" )?`
	Value *power `@@`
}

// power is right associative: a^b^c is a^(b^c).
type power struct {
	Base     *postfix `@@`
	Exponent *unary   `( ( "^" | "**" ) @@ )?`
}

type postfix struct {
	Primary  *primary  `@@`
	Suffixes []*suffix `@@*`
}

type suffix struct {
	Index []*sum `  "[" @@ ( "," @@ )* "]"`
	Call  []*sum `| "(" @@ ( "," @@ )* ")"`
}

type primary struct {
	Number *string   `  @Number`
	Text   *string   `| @String`
	Ident  *string   `| @Ident`
	Group  *equation `| "(" @@ ")"`
}
