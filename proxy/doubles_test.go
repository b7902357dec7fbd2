package proxy

import (
	"errors"
	"reflect"
	"strings"
)

// buffer is a fluent payload: most of its mutators return the receiver.
type buffer struct {
	Items []string
}

func (b *buffer) Append(items ...string) *buffer {
	b.Items = append(b.Items, items...)
	return b
}

func (b *buffer) Prefix(sep string, items ...string) *buffer {
	for _, item := range items {
		b.Items = append(b.Items, sep+item)
	}
	return b
}

func (b *buffer) Len() int {
	return len(b.Items)
}

func (b *buffer) Join(sep string) string {
	return strings.Join(b.Items, sep)
}

func (b *buffer) Each(fn func(i int, item string)) {
	for i, item := range b.Items {
		fn(i, item)
	}
}

func (b *buffer) Grow(n int64) *buffer {
	for i := int64(0); i < n; i++ {
		b.Items = append(b.Items, "")
	}
	return b
}

func (b *buffer) Skip(n uint) []string {
	if n > uint(len(b.Items)) {
		return nil
	}
	return b.Items[n:]
}

var errEmpty = errors.New("buffer is empty")

func (b *buffer) Pop() (string, error) {
	if len(b.Items) == 0 {
		return "", errEmpty
	}
	last := b.Items[len(b.Items)-1]
	b.Items = b.Items[:len(b.Items)-1]
	return last, nil
}

func (b *buffer) Must() *buffer {
	if len(b.Items) == 0 {
		panic("empty buffer")
	}
	return b
}

func (b *buffer) Accept(other *buffer) bool {
	return other != nil
}

// version has no identity apart from its fields, and Copy returns a
// distinct pointer that is still equal to the receiver.
type version struct {
	major, minor int
}

func (v *version) Equal(other any) bool {
	o, ok := other.(*version)
	return ok && o != nil && o.major == v.major && o.minor == v.minor
}

func (v *version) Copy() *version {
	c := *v
	return &c
}

func (v *version) Self() *version {
	return v
}

func (v *version) Bump() *version {
	return &version{major: v.major, minor: v.minor + 1}
}

// counter is a value payload with value receivers.
type counter struct {
	n int
}

func (c counter) Add(d int) int {
	return c.n + d
}

func (c counter) Same() counter {
	return c
}

// dynamicTarget dispatches operations from a table that can change between
// calls.
type dynamicTarget struct {
	ops map[string]func(args ...any) Results
}

func newDynamicTarget() *dynamicTarget {
	return &dynamicTarget{ops: map[string]func(args ...any) Results{}}
}

func (d *dynamicTarget) Invoke(op string, args ...any) (Results, error) {
	fn, ok := d.ops[op]
	if !ok {
		return nil, &UnsupportedOperationError{Type: reflect.TypeOf(d), Op: op}
	}
	return fn(args...), nil
}

func (d *dynamicTarget) Supports(op string) bool {
	_, ok := d.ops[op]
	return ok
}

// Widget is a plain terminal value for chains.
type Widget struct {
	Name string
}

// recorder reports how many variadic arguments each call received.
type recorder struct{}

func (recorder) Log(args ...any) int {
	return len(args)
}

func (recorder) Ptrs(args ...*int) int {
	return len(args)
}

func (recorder) Scale(f float32) float32 {
	return f * 2
}
