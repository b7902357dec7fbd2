package proxy

import (
	"fmt"
	"reflect"
	"strconv"
)

// Invoker is implemented by values that dispatch operations by name. A
// [*Proxy] is an Invoker. Other payloads may implement it to support
// operations that are not methods, and such payloads should also implement
// [Supporter] so that support queries agree with what Invoke accepts.
type Invoker interface {
	Invoke(op string, args ...any) (Results, error)
}

// Supporter is implemented by values that can answer, on demand, whether
// they support an operation.
type Supporter interface {
	Supports(op string) bool
}

// Call invokes the operation named op on target with the given arguments.
//
// If target has an exported method named op, that method is called. Else,
// if target is an [Invoker], its Invoke method is used. Otherwise an
// [*UnsupportedOperationError] is returned.
//
// Arguments must be assignable to the method's parameters, with two
// allowances: nil may be given for any parameter whose type can be nil, and
// a number converts to another numeric type if its value survives the
// conversion. For a variadic method, the final argument may also be a slice
// that is passed as the variadic parameter, but only when it cannot be a
// single variadic element itself: for a method taking ...any, a []any or a
// nil final argument is one element, just as in a direct call. Anything
// else is reported as an
// [*ArgumentError]. Panics raised by the method are not recovered.
func Call(target any, op string, args ...any) (Results, error) {
	if m, ok := methodByName(target, op); ok {
		return callMethod(m, op, args)
	}
	if inv, ok := target.(Invoker); ok {
		return inv.Invoke(op, args...)
	}
	return nil, &UnsupportedOperationError{Type: reflect.TypeOf(target), Op: op}
}

// CallAs invokes op on target, like [Call], and returns the first result as
// a T. If the method's last result is a non-nil error, it is returned too.
func CallAs[T any](target any, op string, args ...any) (T, error) {
	var zero T
	res, err := Call(target, op, args...)
	if err != nil {
		return zero, err
	}
	if res.Len() == 0 {
		return zero, fmt.Errorf("%s returned no results", op)
	}
	v, ok := res.First().(T)
	if !ok && res.First() != nil {
		return zero, fmt.Errorf("%s returned %T, not %v", op, res.First(), reflect.TypeOf((*T)(nil)).Elem())
	}
	return v, res.Err()
}

// Supports reports whether target supports the operation named op: it has
// an exported method by that name, or it is a [Supporter] that says so.
func Supports(target any, op string) bool {
	if _, ok := methodByName(target, op); ok {
		return true
	}
	if s, ok := target.(Supporter); ok {
		return s.Supports(op)
	}
	return false
}

func methodByName(target any, op string) (reflect.Value, bool) {
	if target == nil || op == "" {
		return reflect.Value{}, false
	}
	m := reflect.ValueOf(target).MethodByName(op)
	return m, m.IsValid()
}

func callMethod(m reflect.Value, op string, args []any) (Results, error) {
	mt := m.Type()
	numIn := mt.NumIn()
	variadic := mt.IsVariadic()
	if variadic && len(args) == numIn && spreadable(args[numIn-1], mt.In(numIn-1)) {
		if in, err := convertArgs(op, mt, args, false); err == nil {
			return results(m.CallSlice(in)), nil
		}
	}
	if (!variadic && len(args) != numIn) || (variadic && len(args) < numIn-1) {
		want := strconv.Itoa(numIn)
		if variadic {
			want = "at least " + strconv.Itoa(numIn-1)
		}
		return nil, &ArgumentError{Op: op, Index: -1, Want: want, Got: strconv.Itoa(len(args))}
	}
	in, err := convertArgs(op, mt, args, variadic)
	if err != nil {
		return nil, err
	}
	return results(m.Call(in)), nil
}

// spreadable reports whether arg should be passed as the whole variadic
// slice rather than as one element of it.
func spreadable(arg any, slice reflect.Type) bool {
	if arg == nil || !reflect.TypeOf(arg).AssignableTo(slice) {
		return false
	}
	_, elem := convertArg(arg, slice.Elem())
	return !elem
}

func convertArgs(op string, mt reflect.Type, args []any, spread bool) ([]reflect.Value, error) {
	in := make([]reflect.Value, len(args))
	last := mt.NumIn() - 1
	for i, arg := range args {
		var want reflect.Type
		if spread && i >= last {
			want = mt.In(last).Elem()
		} else {
			want = mt.In(i)
		}
		v, ok := convertArg(arg, want)
		if !ok {
			return nil, &ArgumentError{Op: op, Index: i, Want: want.String(), Got: fmt.Sprintf("%T", arg)}
		}
		in[i] = v
	}
	return in, nil
}

func convertArg(arg any, want reflect.Type) (reflect.Value, bool) {
	if arg == nil {
		switch want.Kind() {
		case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
			return reflect.Zero(want), true
		default:
			return reflect.Value{}, false
		}
	}
	v := reflect.ValueOf(arg)
	if v.Type().AssignableTo(want) {
		return v, true
	}
	if numeric(v.Kind()) && numeric(want.Kind()) {
		return convertNumber(v, want)
	}
	return reflect.Value{}, false
}

// convertNumber converts v to want, failing if the value does not survive
// the round trip, changes sign, or overflows a narrower float.
func convertNumber(v reflect.Value, want reflect.Type) (reflect.Value, bool) {
	if isFloat(v.Kind()) && isFloat(want.Kind()) {
		if reflect.Zero(want).OverflowFloat(v.Float()) {
			return reflect.Value{}, false
		}
		return v.Convert(want), true
	}
	c := v.Convert(want)
	if !c.Convert(v.Type()).Equal(v) {
		return reflect.Value{}, false
	}
	switch {
	case isSigned(v.Kind()) && isUnsigned(want.Kind()) && v.Int() < 0:
		return reflect.Value{}, false
	case isUnsigned(v.Kind()) && isSigned(want.Kind()) && c.Int() < 0:
		return reflect.Value{}, false
	}
	return c, true
}

func results(out []reflect.Value) Results {
	res := make(Results, len(out))
	for i, v := range out {
		res[i] = v.Interface()
	}
	return res
}

func numeric(k reflect.Kind) bool {
	return isSigned(k) || isUnsigned(k) || isFloat(k)
}

func isSigned(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUnsigned(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uintptr
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
