// SPDX-FileCopyrightText: © 2021 The mathml authors <https://github.com/golangee/mathml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package encoder_test

import (
	"bytes"
	"testing"

	"github.com/golangee/mathml/encoder"
	"github.com/golangee/mathml/util"
)

func TestXMLEncode(t *testing.T) {
	tests := []struct {
		name   string
		root   *encoder.Element
		indent string
		want   string
	}{
		{
			name: "empty element",
			root: encoder.NewElement("mrow", nil),
			want: "<mrow></mrow>",
		},
		{
			name: "token",
			root: encoder.NewTextElement("mi", nil, "a"),
			want: "<mi>a</mi>",
		},
		{
			name: "attributes in insertion order",
			root: encoder.NewTextElement("mi", util.NewAttributeList(
				util.Attribute{Key: "mathvariant", Value: "bold"},
				util.Attribute{Key: "mathcolor", Value: "red"},
			), "x"),
			want: `<mi mathvariant="bold" mathcolor="red">x</mi>`,
		},
		{
			name: "nested",
			root: encoder.NewElement("msup", nil,
				encoder.NewTextElement("mi", nil, "a"),
				encoder.NewTextElement("mn", nil, "2"),
			),
			want: "<msup><mi>a</mi><mn>2</mn></msup>",
		},
		{
			name: "a lot of special chars",
			root: encoder.NewTextElement("mtext", util.NewAttributeList(util.Attribute{Key: "alt", Value: `"q"`}), `<tag></tag>&"hello"`),
			want: `<mtext alt="&quot;q&quot;">&lt;tag&gt;&lt;/tag&gt;&amp;&quot;hello&quot;</mtext>`,
		},
		{
			name: "indented",
			root: encoder.NewElement("mrow", nil,
				encoder.NewTextElement("mi", nil, "a"),
				encoder.NewElement("mrow", nil, encoder.NewTextElement("mo", nil, "+")),
				encoder.NewElement("mspace", nil),
			),
			indent: "  ",
			want:   "<mrow>\n  <mi>a</mi>\n  <mrow>\n    <mo>+</mo>\n  </mrow>\n  <mspace></mspace>\n</mrow>\n",
		},
	}

	t.Parallel()

	for _, tt := range tests {
		test := tt

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			var writer bytes.Buffer
			enc := encoder.NewXMLEncoder(&writer)
			enc.SetIndent(test.indent)

			if err := enc.Encode(test.root); err != nil {
				t.Error(err)

				return
			}

			if val := writer.String(); val != test.want {
				t.Errorf("Test '%s' failed. Wanted '%s', got '%s'", test.name, test.want, val)
			}
		})
	}
}

func TestXMLEncodeNil(t *testing.T) {
	var writer bytes.Buffer
	if err := encoder.NewXMLEncoder(&writer).Encode(nil); err == nil {
		t.Error("expected an error for a nil element")
	}
}

func TestXMLEncodeInvalidNames(t *testing.T) {
	tests := []struct {
		name string
		root *encoder.Element
	}{
		{"attribute with space", encoder.NewTextElement("mi", util.NewAttributeList(util.Attribute{Key: "a b", Value: "1"}), "x")},
		{"attribute with quote", encoder.NewTextElement("mi", util.NewAttributeList(util.Attribute{Key: `a"`, Value: "1"}), "x")},
		{"empty attribute", encoder.NewTextElement("mi", util.NewAttributeList(util.Attribute{Key: "", Value: "1"}), "x")},
		{"attribute starting with digit", encoder.NewTextElement("mi", util.NewAttributeList(util.Attribute{Key: "1a", Value: "1"}), "x")},
		{"element with bracket", encoder.NewElement("m<row", nil)},
		{"nested", encoder.NewElement("mrow", nil, encoder.NewElement("", nil))},
	}

	t.Parallel()

	for _, tt := range tests {
		test := tt

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			var writer bytes.Buffer
			if err := encoder.NewXMLEncoder(&writer).Encode(test.root); err == nil {
				t.Errorf("expected an error, got '%s'", writer.String())
			}
		})
	}

	valid := encoder.NewTextElement("mi", util.NewAttributeList(
		util.Attribute{Key: "xml:lang", Value: "en"},
		util.Attribute{Key: "data-x_1.2", Value: "y"},
	), "x")

	want := `<mi xml:lang="en" data-x_1.2="y">x</mi>`
	if got := valid.String(); got != want {
		t.Errorf("wanted '%s', got '%s'", want, got)
	}
}

func TestElementString(t *testing.T) {
	el := encoder.NewElement("mfrac", nil).
		AddChildren(encoder.NewTextElement("mn", nil, "1"), encoder.NewTextElement("mn", nil, "2")).
		AddAttribute("linethickness", "0")

	want := `<mfrac linethickness="0"><mn>1</mn><mn>2</mn></mfrac>`
	if got := el.String(); got != want {
		t.Errorf("wanted '%s', got '%s'", want, got)
	}

	// The attributes passed to a constructor are copied.
	attrs := util.NewAttributeList(util.Attribute{Key: "a", Value: "1"})
	leaf := encoder.NewTextElement("mi", attrs, "x")
	attrs.Set("a", "2")

	if v, _ := leaf.Attributes.Get("a"); v != "1" {
		t.Errorf("element shares attributes with caller, got %q", v)
	}
}
