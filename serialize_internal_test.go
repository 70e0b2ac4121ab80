// SPDX-FileCopyrightText: © 2021 The mathml authors <https://github.com/golangee/mathml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package mathml

import (
	"testing"

	"github.com/golangee/mathml/encoder"
	"github.com/golangee/mathml/util"
)

func TestLowerFencedSeparators(t *testing.T) {
	mi := func(s string) *encoder.Element { return encoder.NewTextElement(TagIdentifier, nil, s) }

	tests := []struct {
		name       string
		separators *string
		want       string
	}{
		{
			name: "default comma",
			want: `<mrow><mo fence="true" form="prefix">(</mo><mi>a</mi><mo separator="true">,</mo><mi>b</mi>` +
				`<mo separator="true">,</mo><mi>c</mi><mo fence="true" form="postfix">)</mo></mrow>`,
		},
		{
			name:       "last separator repeats",
			separators: strPtr("; "),
			want: `<mrow><mo fence="true" form="prefix">(</mo><mi>a</mi><mo separator="true">;</mo><mi>b</mi>` +
				`<mo separator="true">;</mo><mi>c</mi><mo fence="true" form="postfix">)</mo></mrow>`,
		},
		{
			name:       "separators in order",
			separators: strPtr(" ;  |"),
			want: `<mrow><mo fence="true" form="prefix">(</mo><mi>a</mi><mo separator="true">;</mo><mi>b</mi>` +
				`<mo separator="true">|</mo><mi>c</mi><mo fence="true" form="postfix">)</mo></mrow>`,
		},
		{
			name:       "no separators",
			separators: strPtr(""),
			want:       `<mrow><mo fence="true" form="prefix">(</mo><mi>a</mi><mi>b</mi><mi>c</mi><mo fence="true" form="postfix">)</mo></mrow>`,
		},
	}

	t.Parallel()

	for _, tt := range tests {
		test := tt

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var attrs util.AttributeList
			if test.separators != nil {
				attrs.Set("separators", *test.separators)
			}

			fenced := encoder.NewElement(TagFenced, attrs, mi("a"), mi("b"), mi("c"))
			got := lowerFenced(fenced).String()

			if got != test.want {
				t.Errorf("Test '%s' failed. Wanted '%s', got '%s'", test.name, test.want, got)
			}

			if fenced.Name != TagFenced || len(fenced.Children) != 3 {
				t.Error("lowering modified its input")
			}
		})
	}
}

func strPtr(s string) *string {
	return &s
}
