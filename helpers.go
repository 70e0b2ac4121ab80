// SPDX-FileCopyrightText: © 2021 The mathml authors <https://github.com/golangee/mathml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package mathml

import "github.com/golangee/mathml/util"

// TableOf builds an <mtable> from rows of entries. Every entry is wrapped in an <mtd>,
// a nil entry gives an empty <mtd>. The attributes are set on the <mtable>.
func TableOf(rows [][]interface{}, attrs ...util.Attribute) Node {
	trs := make([]interface{}, 0, len(rows)+len(attrs))

	for _, row := range rows {
		tds := make([]interface{}, 0, len(row))
		for _, entry := range row {
			if entry == nil {
				tds = append(tds, TableEntry())
			} else {
				tds = append(tds, TableEntry(entry))
			}
		}

		trs = append(trs, TableRow(tds...))
	}

	return Table(withAttrs(attrs, trs...)...)
}

// Underbrace puts a horizontal brace under e, labeled with the given script:
// <munder>e<munder accentunder="true"><mo>⏟</mo>label</munder></munder>.
// The label is promoted, so a plain string becomes an identifier.
func Underbrace(e, label interface{}) Node {
	return Under(e, Under(Operator(BottomBrace), label, A("accentunder", "true")))
}
