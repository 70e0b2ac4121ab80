// SPDX-FileCopyrightText: © 2021 The mathml authors <https://github.com/golangee/mathml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package util_test

import (
	"testing"

	"github.com/golangee/mathml/util"
	"github.com/r3labs/diff/v2"
)

func TestAttributeList(t *testing.T) {
	tests := []struct {
		name  string
		build func() util.AttributeList
		want  util.AttributeList
	}{
		{
			name:  "empty",
			build: func() util.AttributeList { return util.NewAttributeList() },
			want:  nil,
		},
		{
			name: "insertion order",
			build: func() util.AttributeList {
				return util.NewAttributeList(
					util.Attribute{Key: "z", Value: "1"},
					util.Attribute{Key: "a", Value: "2"},
				)
			},
			want: util.AttributeList{{Key: "z", Value: "1"}, {Key: "a", Value: "2"}},
		},
		{
			name: "overwrite keeps position",
			build: func() util.AttributeList {
				l := util.NewAttributeList(
					util.Attribute{Key: "open", Value: "("},
					util.Attribute{Key: "close", Value: ")"},
				)
				l.Set("open", "[")
				return l
			},
			want: util.AttributeList{{Key: "open", Value: "["}, {Key: "close", Value: ")"}},
		},
		{
			name: "delete",
			build: func() util.AttributeList {
				l := util.NewAttributeList(
					util.Attribute{Key: "a", Value: "1"},
					util.Attribute{Key: "b", Value: "2"},
					util.Attribute{Key: "c", Value: "3"},
				)
				l.Delete("b")
				return l
			},
			want: util.AttributeList{{Key: "a", Value: "1"}, {Key: "c", Value: "3"}},
		},
		{
			name: "merge prefers other",
			build: func() util.AttributeList {
				l := util.NewAttributeList(util.Attribute{Key: "a", Value: "1"}, util.Attribute{Key: "b", Value: "2"})
				return l.Merge(util.NewAttributeList(util.Attribute{Key: "b", Value: "3"}, util.Attribute{Key: "c", Value: "4"}))
			},
			want: util.AttributeList{{Key: "a", Value: "1"}, {Key: "b", Value: "3"}, {Key: "c", Value: "4"}},
		},
	}

	t.Parallel()

	for _, tt := range tests {
		test := tt

		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			differences, err := diff.Diff(test.want, test.build(), diff.SliceOrdering(true))
			if err != nil {
				t.Fatal(err)
			}

			for _, d := range differences {
				t.Errorf("attribute %v %s: expected '%v' but got '%v'", d.Path, d.Type, d.From, d.To)
			}
		})
	}
}

func TestAttributeListClone(t *testing.T) {
	l := util.NewAttributeList(util.Attribute{Key: "a", Value: "1"})
	c := l.Clone()
	c.Set("a", "2")

	if v, _ := l.Get("a"); v != "1" {
		t.Errorf("clone shares memory with original, got %q", v)
	}

	if _, ok := l.Get("missing"); ok {
		t.Error("expected missing key to be absent")
	}

	if util.AttributeList(nil).Clone() != nil {
		t.Error("expected clone of empty list to be nil")
	}
}
