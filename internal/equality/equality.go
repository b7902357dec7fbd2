// Package equality implements the equality used when a proxy compares its
// payload to another value. It is defined here, instead of in the proxy
// package, so that the rules can be tested on their own and reused by other
// wrapper types without importing the proxy package.
package equality

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"
)

var deepOpts = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	protocmp.Transform(),
}

// Equal reports whether a considers itself equal to b. The rules are tried
// in order:
//  1. If a has an Equal method with a single parameter that accepts b and
//     a single bool result, that method decides.
//  2. If both are proto messages, proto.Equal decides.
//  3. Two nils are equal; values of different dynamic types are not.
//  4. Comparable values are compared with ==.
//  5. Anything else (slices, maps, structs that contain them) is compared
//     structurally. Functions are only equal if both are nil.
//
// The comparison is not symmetric unless a's own notion of equality is.
func Equal(a, b any) bool {
	if eq, ok := equalMethod(a, b); ok {
		return eq
	}
	if am, ok := a.(proto.Message); ok {
		if bm, ok := b.(proto.Message); ok {
			return proto.Equal(am, bm)
		}
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Type() != bv.Type() {
		return false
	}
	if av.Comparable() && bv.Comparable() {
		return a == b
	}
	return cmp.Equal(a, b, deepOpts...)
}

// Identical reports whether a and b are the same reference. Pointers, maps,
// channels, functions and slices are identical when they point at the same
// memory (slices must also have the same length). Other comparable values
// fall back to ==, since they have no identity apart from their value.
func Identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	av, bv := reflect.ValueOf(a), reflect.ValueOf(b)
	if av.Type() != bv.Type() {
		return false
	}
	switch av.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return av.Pointer() == bv.Pointer()
	case reflect.Slice:
		return av.Pointer() == bv.Pointer() && av.Len() == bv.Len()
	}
	if av.Comparable() && bv.Comparable() {
		return a == b
	}
	return false
}

func equalMethod(a, b any) (eq, ok bool) {
	if a == nil {
		return false, false
	}
	av := reflect.ValueOf(a)
	if av.Kind() == reflect.Pointer && av.IsNil() {
		return false, false
	}
	m := av.MethodByName("Equal")
	if !m.IsValid() {
		return false, false
	}
	mt := m.Type()
	if mt.NumIn() != 1 || mt.IsVariadic() || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Bool {
		return false, false
	}
	param := mt.In(0)
	var arg reflect.Value
	if b == nil {
		if !nillable(param.Kind()) {
			return false, false
		}
		arg = reflect.Zero(param)
	} else {
		arg = reflect.ValueOf(b)
		if !arg.Type().AssignableTo(param) {
			return false, false
		}
	}
	return m.Call([]reflect.Value{arg})[0].Bool(), true
}

func nillable(k reflect.Kind) bool {
	switch k {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return true
	default:
		return false
	}
}
