package proxy

import (
	"slices"
	"testing"

	"pgregory.net/rapid"
)

func wrapTimes(v any, depth int) *Proxy {
	p := New(v)
	for i := 1; i < depth; i++ {
		p = New(p)
	}
	return p
}

func TestProperty_EqualityThroughNesting(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Int().Draw(t, "v")
		other := rapid.Int().Draw(t, "other")
		left := wrapTimes(v, rapid.IntRange(1, 6).Draw(t, "left_depth"))
		right := wrapTimes(other, rapid.IntRange(1, 6).Draw(t, "right_depth"))

		if !left.Equal(v) {
			t.Fatalf("proxy of %d is not equal to its payload", v)
		}
		if left.Equal(other) != (v == other) {
			t.Fatalf("proxy of %d compared to %d: got %v", v, other, left.Equal(other))
		}
		if left.Equal(right) != (v == other) || right.Equal(left) != (v == other) {
			t.Fatalf("proxies of %d and %d compared unexpectedly", v, other)
		}
		if Equal(v, left) != Equal(left, v) {
			t.Fatalf("Equal is not symmetric for %d", v)
		}
	})
}

func TestProperty_Forwarding(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := counter{n: rapid.IntRange(-1000, 1000).Draw(t, "n")}
		d := rapid.IntRange(-1000, 1000).Draw(t, "d")
		p := wrapTimes(c, rapid.IntRange(1, 4).Draw(t, "depth"))

		res, err := p.Invoke("Add", d)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.First() != c.Add(d) {
			t.Fatalf("forwarded Add(%d) = %v, direct = %d", d, res.First(), c.Add(d))
		}
	})
}

func TestProperty_SelfReturningStaysDecorated(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := rapid.SliceOf(rapid.String()).Draw(t, "items")
		buf := &buffer{}
		p := wrapTimes(buf, rapid.IntRange(1, 4).Draw(t, "depth"))

		res, err := p.Invoke("Append", items)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.First() != p {
			t.Fatalf("expected the outermost proxy, got %T", res.First())
		}
		if !slices.Equal(items, buf.Items) {
			t.Fatalf("payload holds %q, want %q", buf.Items, items)
		}
	})
}

func TestProperty_Decompose(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := &Widget{Name: rapid.String().Draw(t, "name")}
		depth := rapid.IntRange(1, 8).Draw(t, "depth")
		p := wrapTimes(base, depth)

		chain := p.Decompose()
		if len(chain) != depth+1 {
			t.Fatalf("chain has %d elements, want %d", len(chain), depth+1)
		}
		var cur any = p
		for i, elem := range chain {
			if elem != cur {
				t.Fatalf("element %d is %v, want %v", i, elem, cur)
			}
			cur = Unwrap(cur)
		}
		if UnwrapFully(p) != base {
			t.Fatalf("innermost payload is not the base value")
		}
	})
}
