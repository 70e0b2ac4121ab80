// SPDX-FileCopyrightText: © 2021 The mathml authors <https://github.com/golangee/mathml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package encoder

import (
	"fmt"
	"io"

	"github.com/valyala/fastjson"
)

// JSONEncoder writes an element tree as a JSON document, which is handy for inspecting
// the structure of a tree. Each element becomes an object with the keys
// "name", "attributes", "text" and "children"; empty keys are omitted.
// Attribute objects keep the insertion order of the element.
type JSONEncoder struct {
	writer io.Writer
	arena  fastjson.Arena
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{writer: w}
}

// Encode writes the JSON document for the given element, followed by a newline.
func (e *JSONEncoder) Encode(root *Element) error {
	if root == nil {
		return fmt.Errorf("cannot encode nil element")
	}

	e.arena.Reset()

	buf := e.value(root).MarshalTo(nil)
	buf = append(buf, '\n')

	if _, err := e.writer.Write(buf); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}

	return nil
}

func (e *JSONEncoder) value(el *Element) *fastjson.Value {
	obj := e.arena.NewObject()
	obj.Set("name", e.arena.NewString(el.Name))

	if len(el.Attributes) > 0 {
		attrs := e.arena.NewObject()
		for _, attr := range el.Attributes {
			attrs.Set(attr.Key, e.arena.NewString(attr.Value))
		}

		obj.Set("attributes", attrs)
	}

	if el.Text != "" {
		obj.Set("text", e.arena.NewString(el.Text))
	}

	if len(el.Children) > 0 {
		children := e.arena.NewArray()
		for i, child := range el.Children {
			children.SetArrayItem(i, e.value(child))
		}

		obj.Set("children", children)
	}

	return obj
}
