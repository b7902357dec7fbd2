// Package proxy provides a transparent forwarding wrapper. A [Proxy] owns a
// single payload value and behaves like that payload for every operation it
// does not define itself.
//
// # Forwarding
//
// Go has no open-ended method interception, so operations are invoked by
// name through [Proxy.Invoke]:
//
//	p := proxy.New(buf)
//	res, err := p.Invoke("Append", "a", "b")
//
// The proxy looks the operation up on its payload when it is called, never
// ahead of time. A payload is asked first for an exported method with that
// name. If there is none and the payload implements [Invoker] (as a nested
// Proxy does), the payload's own dispatcher handles it. Otherwise the call
// fails with an [*UnsupportedOperationError]. That error, and anything else
// that goes wrong inside the payload including panics, reaches the caller
// unchanged. [Call] performs the same dispatch on any value, so invoking an
// operation through a proxy fails in exactly the way invoking it on the
// payload does.
//
// Function arguments are passed through untouched, so a callback handed to
// a forwarded operation is called by the payload just as if the payload had
// been called directly.
//
// # Identity rewrite
//
// Fluent APIs often return their receiver. Without special handling, calling
// such an operation through a proxy would hand back the raw payload and lose
// the decoration. So any result equal to the payload is replaced with the
// proxy itself, and p.Invoke("A") followed by Invoke("B") on the result stays
// decorated at every step.
//
// By default "equal" means the payload's own equality (see [Proxy.Equal]), so
// a distinct value that merely compares equal to the payload is rewritten as
// well. Use [WithRewrite] with [RewriteIdentical] to rewrite only results that
// are the very same reference as the payload.
//
// # Equality and decomposition
//
// [Proxy.Equal] delegates to the payload. When the other value is also a
// Proxy, the comparison is inverted so that nested wrappers on either side
// are peeled away until plain payloads meet. Wrapping a value any number of
// times never changes what it is equal to.
//
// [Proxy.Decompose] lists a chain of wrappers outer to inner, ending with
// the innermost payload:
//
//	top := proxy.New(proxy.New(v))
//	top.Decompose() // [top, middle, v]
//
// A proxy's payload is fixed before the proxy exists, so a chain made only of
// proxies can never loop back on itself. Payloads that implement [Decomposer]
// or [Wrapper] themselves are responsible for not forming cycles.
package proxy
