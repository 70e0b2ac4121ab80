// SPDX-FileCopyrightText: © 2021 The mathml authors <https://github.com/golangee/mathml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package util

// Attribute represents single attribute.
type Attribute struct {
	Key   string
	Value string
}

// AttributeList is a list to hold attributes. Keys are unique and keep the position
// of their first insertion, so rendering a list is deterministic.
type AttributeList []Attribute

// NewAttributeList creates an AttributeList from the given attributes.
// Duplicate keys are merged as if Set was called for each attribute in order.
func NewAttributeList(attrs ...Attribute) AttributeList {
	var l AttributeList
	for _, a := range attrs {
		l.Set(a.Key, a.Value)
	}

	return l
}

// Set the given attribute if it already exists or create a new
// one otherwise. Returns true if an existing attribute got overwritten.
func (l *AttributeList) Set(key, val string) bool {
	for i := range *l {
		if (*l)[i].Key == key {
			(*l)[i].Value = val
			return true
		}
	}

	*l = append(*l, Attribute{Key: key, Value: val})

	return false
}

// Get returns the value for a given key and whether it exists.
func (l AttributeList) Get(key string) (string, bool) {
	for _, a := range l {
		if a.Key == key {
			return a.Value, true
		}
	}

	return "", false
}

// Delete removes the attribute with the given key. Returns true if it existed.
func (l *AttributeList) Delete(key string) bool {
	for i, a := range *l {
		if a.Key == key {
			*l = append((*l)[:i:i], (*l)[i+1:]...)
			return true
		}
	}

	return false
}

// Merge returns a new list holding the attributes of l and other. Values in other
// overwrite those of l, keys of l keep their position.
func (l AttributeList) Merge(other AttributeList) AttributeList {
	result := NewAttributeList()

	for _, a := range l {
		result.Set(a.Key, a.Value)
	}

	for _, a := range other {
		result.Set(a.Key, a.Value)
	}

	return result
}

// Clone returns a copy that does not share memory with l.
// The copy of an empty list is nil.
func (l AttributeList) Clone() AttributeList {
	if len(l) == 0 {
		return nil
	}

	return append(AttributeList(nil), l...)
}
