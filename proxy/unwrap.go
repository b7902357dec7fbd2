package proxy

// Wrapper is implemented by values that hold exactly one other value, such
// as a [*Proxy] and its payload.
type Wrapper interface {
	Unwrap() any
}

// Unwrap peels one layer off v: the held value for a Wrapper, v itself for
// anything else.
func Unwrap(v any) any {
	if w, ok := v.(Wrapper); ok {
		return w.Unwrap()
	}
	return v
}

// UnwrapFully peels layers off v until it reaches a value that is not a
// Wrapper. A nil *Proxy in the chain unwraps to nil.
func UnwrapFully(v any) any {
	for w, ok := v.(Wrapper); ok; w, ok = v.(Wrapper) {
		v = w.Unwrap()
	}
	return v
}
