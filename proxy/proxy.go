package proxy

import (
	"reflect"

	"github.com/dynwrap/dynwrap/internal/equality"
)

// RewriteMode selects how a proxy decides that a forwarded result is its
// payload, and should therefore be replaced by the proxy.
type RewriteMode int

const (
	// RewriteEqual treats any result that equals the payload, per the
	// payload's own equality, as the payload. This is the default.
	RewriteEqual RewriteMode = iota
	// RewriteIdentical only treats the same reference as the payload. For
	// values that have no identity, like numbers, strings, and structs,
	// this is the same as RewriteEqual.
	RewriteIdentical
)

// Option configures a Proxy.
type Option func(*Proxy)

// WithRewrite returns an option that sets how forwarded results are
// matched against the payload.
func WithRewrite(mode RewriteMode) Option {
	return func(p *Proxy) {
		p.rewrite = mode
	}
}

// Decomposer is implemented by wrappers that can list the chain of values
// they are composed of, from outermost to innermost.
type Decomposer interface {
	Decompose() []any
}

// Proxy is a transparent wrapper around a payload. Operations invoked on it
// are forwarded to the payload; see the package doc for details.
//
// A Proxy never changes after it is created, so it is as safe for concurrent
// use as its payload is.
type Proxy struct {
	payload any
	rewrite RewriteMode
}

var _ Invoker = (*Proxy)(nil)
var _ Supporter = (*Proxy)(nil)
var _ Decomposer = (*Proxy)(nil)
var _ Wrapper = (*Proxy)(nil)

// New returns a proxy that wraps the given payload. Any value is accepted,
// including nil and other proxies.
func New(payload any, opts ...Option) *Proxy {
	p := &Proxy{payload: payload}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Invoke forwards the operation named op to the payload, using [Call], and
// returns its results. Results equal to the payload are replaced with p.
// Errors from the dispatch are returned as is. A nil proxy supports no
// operations.
func (p *Proxy) Invoke(op string, args ...any) (Results, error) {
	if p == nil {
		return nil, &UnsupportedOperationError{Type: reflect.TypeOf(p), Op: op}
	}
	res, err := Call(p.payload, op, args...)
	if err != nil {
		return nil, err
	}
	out := make(Results, len(res))
	for i, v := range res {
		if p.isPayload(v) {
			out[i] = p
		} else {
			out[i] = v
		}
	}
	return out, nil
}

func (p *Proxy) isPayload(v any) bool {
	if p.rewrite == RewriteIdentical {
		return equality.Identical(v, p.payload)
	}
	return equality.Equal(v, p.payload)
}

// Supports reports whether p supports the operation named op. That is true
// for the proxy's own methods and, for anything else, whenever the payload
// supports op. The payload is consulted on every call.
func (p *Proxy) Supports(op string) bool {
	if p == nil {
		return false
	}
	if _, ok := methodByName(p, op); ok {
		return true
	}
	return Supports(p.payload, op)
}

// Equal reports whether p is equal to other. If other is also a Proxy, the
// question is turned around and other is compared to p's payload. Otherwise,
// the payload is compared to other using the payload's own equality.
func (p *Proxy) Equal(other any) bool {
	if p == nil {
		o, ok := other.(*Proxy)
		return other == nil || (ok && o == nil)
	}
	if o, ok := other.(*Proxy); ok && o != nil {
		return o.Equal(p.payload)
	}
	return equality.Equal(p.payload, other)
}

// Decompose returns p followed by the values it wraps, outermost first.
// If the payload is itself a [Decomposer], its decomposition follows p.
// Otherwise the payload is the last element. A nil proxy is a chain of one.
func (p *Proxy) Decompose() []any {
	if p == nil {
		return []any{p}
	}
	if d, ok := p.payload.(Decomposer); ok {
		return append([]any{p}, d.Decompose()...)
	}
	return []any{p, p.payload}
}

// Unwrap returns the payload, or nil for a nil proxy.
func (p *Proxy) Unwrap() any {
	if p == nil {
		return nil
	}
	return p.payload
}

// Equal reports whether a and b are equal. Unlike [Proxy.Equal], it is
// symmetric when only one side is a proxy: the proxy's Equal decides.
func Equal(a, b any) bool {
	if p, ok := a.(*Proxy); ok && p != nil {
		return p.Equal(b)
	}
	if p, ok := b.(*Proxy); ok && p != nil {
		return p.Equal(a)
	}
	return equality.Equal(a, b)
}
