// SPDX-FileCopyrightText: © 2021 The mathml authors <https://github.com/golangee/mathml/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

package mathml

import (
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"sync"
)

// promoters holds the conversions registered with RegisterPromoter.
var promoters = struct {
	sync.RWMutex
	byType map[reflect.Type]func(interface{}) Node
}{
	byType: map[reflect.Type]func(interface{}) Node{},
}

// RegisterPromoter installs a conversion for values of type T, used by Promote and thus by
// every constructor taking children or operands. Registering a type twice replaces the
// earlier conversion. Registered conversions take precedence over the built-in rules,
// except for values which already are nodes.
//
// Values are matched by their dynamic type, so T must be a concrete type. Registering an
// interface type panics, as no value could ever match it.
func RegisterPromoter[T any](fn func(T) Node) {
	typ := reflect.TypeOf((*T)(nil)).Elem()
	if typ.Kind() == reflect.Interface {
		panic(fmt.Sprintf("mathml: cannot register promoter for interface type %s", typ))
	}

	promoters.Lock()
	defer promoters.Unlock()

	promoters.byType[typ] = func(v interface{}) Node {
		return fn(v.(T))
	}
}

func lookupPromoter(v interface{}) (func(interface{}) Node, bool) {
	promoters.RLock()
	defer promoters.RUnlock()

	fn, ok := promoters.byType[reflect.TypeOf(v)]

	return fn, ok
}

// Promote converts a value into a node. Nodes are returned unchanged, strings become
// identifiers (as do values of other string kinds) and numeric values (all integer and float kinds, *big.Int, *big.Float,
// *big.Rat and json.Number) become numbers. Types installed with RegisterPromoter use
// their conversion. Any other value, including nil and attributes, fails with a
// *PromotionError.
//
// A node carrying a construction error is not promoted; its error is returned instead.
func Promote(v interface{}) (Node, error) {
	if n, ok := v.(Node); ok {
		if isNil(v) {
			return nil, NewPromotionError(v)
		}

		if err := n.failure(); err != nil {
			return nil, err
		}

		return n, nil
	}

	if v == nil {
		return nil, NewPromotionError(v)
	}

	if fn, ok := lookupPromoter(v); ok {
		n := fn(v)
		if n == nil || isNil(n) {
			return nil, NewPromotionError(v)
		}

		if err := n.failure(); err != nil {
			return nil, err
		}

		return n, nil
	}

	switch c := v.(type) {
	case string:
		return Identifier(c), nil
	case json.Number, *big.Int, *big.Float, *big.Rat:
		if isNil(v) {
			return nil, NewPromotionError(v)
		}

		return Number(c), nil
	}

	switch reflect.ValueOf(v).Kind() {
	case reflect.String:
		return Identifier(v), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return Number(v), nil
	}

	return nil, NewPromotionError(v)
}

// isNil reports whether v is nil or holds a nil pointer, map, slice, func or channel.
func isNil(v interface{}) bool {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}

	return false
}
