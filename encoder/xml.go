// SPDX-FileCopyrightText: © 2021 The mathml authors <https://github.com/golangee/mathml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package encoder

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// XMLEncoder writes an element tree as XML text.
// Every element is written as an open/close pair, even when it is empty.
type XMLEncoder struct {
	writer *bufio.Writer

	// indentPrefix is repeated once per nesting level. If empty, the output
	// is written without any whitespace between elements.
	indentPrefix string
	// indent is the current level of indentation for emitting XML.
	indent uint
}

func NewXMLEncoder(w io.Writer) *XMLEncoder {
	return &XMLEncoder{
		writer: bufio.NewWriter(w),
	}
}

// SetIndent makes the encoder put every element on its own line, indented by prefix
// per nesting level. Token elements stay on a single line.
func (e *XMLEncoder) SetIndent(prefix string) {
	e.indentPrefix = prefix
}

// Encode writes the element and all of its descendants and flushes the writer.
// In case of an error incomplete output may already have been emitted.
func (e *XMLEncoder) Encode(root *Element) error {
	if root == nil {
		return fmt.Errorf("cannot encode nil element")
	}

	if err := e.writeElement(root); err != nil {
		return err
	}

	if err := e.writer.Flush(); err != nil {
		return fmt.Errorf("failed to flush written XML: %w", err)
	}

	return nil
}

func (e *XMLEncoder) writeElement(el *Element) error {
	if !isName(el.Name) {
		return fmt.Errorf("invalid element name %q", el.Name)
	}

	for _, attr := range el.Attributes {
		if !isName(attr.Key) {
			return fmt.Errorf("invalid attribute name %q on <%s>", attr.Key, el.Name)
		}
	}

	// Build the opening tag with all attributes
	var tag strings.Builder

	tag.WriteString(e.indentString())
	tag.WriteString("<")
	tag.WriteString(el.Name)

	for _, attr := range el.Attributes {
		tag.WriteString(fmt.Sprintf(` %s="%s"`, attr.Key, escapeXMLSafe(attr.Value)))
	}

	tag.WriteString(">")
	tag.WriteString(escapeXMLSafe(el.Text))

	if el.IsLeaf() {
		tag.WriteString(fmt.Sprintf("</%s>", el.Name))
		tag.WriteString(e.newline())

		return e.writeString(tag.String())
	}

	tag.WriteString(e.newline())

	if err := e.writeString(tag.String()); err != nil {
		return err
	}

	e.indent++

	for _, child := range el.Children {
		if err := e.writeElement(child); err != nil {
			return err
		}
	}

	e.indent--

	return e.writeString(fmt.Sprintf("%s</%s>%s", e.indentString(), el.Name, e.newline()))
}

// writeString is a convenience method to write strings to the underlying writer.
func (e *XMLEncoder) writeString(s string) error {
	_, err := e.writer.WriteString(s)

	return err
}

func (e *XMLEncoder) newline() string {
	if e.indentPrefix == "" {
		return ""
	}

	return "\n"
}

// indentString returns the indent prefix repeated to match the
// current indentation level.
func (e *XMLEncoder) indentString() string {
	if e.indentPrefix == "" {
		return ""
	}

	return strings.Repeat(e.indentPrefix, int(e.indent))
}

// String encodes the element in compact form. For a tree with an invalid element or
// attribute name, only the output up to that element is returned.
func (e *Element) String() string {
	var sb strings.Builder
	_ = NewXMLEncoder(&sb).Encode(e)

	return sb.String()
}

// isName reports whether s is usable as an XML element or attribute name. Only the
// syntax of the name is checked, not whether MathML defines it.
func isName(s string) bool {
	if s == "" {
		return false
	}

	for i, r := range s {
		switch {
		case r == '_' || r == ':' || unicode.IsLetter(r):
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)):
		default:
			return false
		}
	}

	return true
}

var xmlReplacer = strings.NewReplacer("<", "&lt;", ">", "&gt;", "&", "&amp;", `"`, "&quot;")

// escapeXMLSafe replaces all occurrences of reserved characters in XML: <>&".
func escapeXMLSafe(s string) string {
	return xmlReplacer.Replace(s)
}
