package treewire

import (
	"fmt"
	"sort"
)

// ListCodec encodes a slice as one list node, applying the element codec to
// each entry. Nested element codecs yield one nested list node per dimension,
// so [][]E and deeper shapes follow from composition; the dimensionality is
// fixed by the declared type, not by the runtime data.
type ListCodec[E any] struct {
	elem Codec[E]
	cons constraintSet[[]E]
}

// List returns a codec for []E with the given element codec.
func List[E any](elem Codec[E]) ListCodec[E] {
	if elem == nil {
		panic("treewire: List element codec must not be nil")
	}
	return ListCodec[E]{elem: elem}
}

func (c ListCodec[E]) withCons(k constraintKind, check func([]E) string) ListCodec[E] {
	c.cons = c.cons.with(constraint[[]E]{kind: k, check: check})
	return c
}

// MinLength requires at least n elements.
func (c ListCodec[E]) MinLength(n int) ListCodec[E] {
	return c.withCons(kindMinLength, func(v []E) string {
		if len(v) < n {
			return fmt.Sprintf("minimum length constraint violated: length %d is less than %d", len(v), n)
		}
		return ""
	})
}

// MaxLength allows at most n elements.
func (c ListCodec[E]) MaxLength(n int) ListCodec[E] {
	return c.withCons(kindMaxLength, func(v []E) string {
		if len(v) > n {
			return fmt.Sprintf("maximum length constraint violated: length %d exceeds %d", len(v), n)
		}
		return ""
	})
}

// ExactLength requires exactly n elements; it is MinLength(n) plus
// MaxLength(n).
func (c ListCodec[E]) ExactLength(n int) ListCodec[E] {
	return c.MinLength(n).MaxLength(n)
}

func (c ListCodec[E]) DecodeStart(p TypeProvider, node any) Result[[]E] {
	if r, ok := checkProvider[[]E](p); !ok {
		return r
	}
	if node == nil || p.IsNull(node) {
		return errDecodeNull[[]E]("list")
	}
	items := p.AsList(node)
	if items.IsErr() {
		return propagate[[]E](items)
	}
	out := make([]E, 0, len(items.Value()))
	for i, item := range items.Value() {
		ev := c.elem.DecodeStart(p, item)
		if ev.IsErr() {
			return Errf[[]E]("element %d: %s", i, ev.Error())
		}
		out = append(out, ev.Value())
	}
	if msg := c.cons.eval("list", out); msg != "" {
		return Err[[]E](msg)
	}
	return Ok(out)
}

func (c ListCodec[E]) EncodeStart(p TypeProvider, _ any, v []E) Result[any] {
	if r, ok := checkProvider[any](p); !ok {
		return r
	}
	items := make([]any, 0, len(v))
	for i, e := range v {
		ev := c.elem.EncodeStart(p, p.Empty(), e)
		if ev.IsErr() {
			return Errf[any]("element %d: %s", i, ev.Error())
		}
		items = append(items, ev.Value())
	}
	if msg := c.cons.eval("list", v); msg != "" {
		return Err[any](msg)
	}
	return Ok(p.NewList(items))
}

// SetCodec encodes a set as one list node with a deterministic element order
// (sorted by each element's key form). Decoding rejects duplicates.
type SetCodec[E comparable] struct {
	elem KeyableCodec[E]
	cons constraintSet[map[E]struct{}]
}

// Set returns a codec for map[E]struct{} with the given element codec. The
// element codec must be keyable so encode order is deterministic.
func Set[E comparable](elem KeyableCodec[E]) SetCodec[E] {
	if elem == nil {
		panic("treewire: Set element codec must not be nil")
	}
	return SetCodec[E]{elem: elem}
}

func (c SetCodec[E]) withCons(k constraintKind, check func(map[E]struct{}) string) SetCodec[E] {
	c.cons = c.cons.with(constraint[map[E]struct{}]{kind: k, check: check})
	return c
}

// MinSize requires at least n elements.
func (c SetCodec[E]) MinSize(n int) SetCodec[E] {
	return c.withCons(kindMinSize, func(v map[E]struct{}) string {
		if len(v) < n {
			return fmt.Sprintf("minimum size constraint violated: size %d is less than %d", len(v), n)
		}
		return ""
	})
}

// MaxSize allows at most n elements.
func (c SetCodec[E]) MaxSize(n int) SetCodec[E] {
	return c.withCons(kindMaxSize, func(v map[E]struct{}) string {
		if len(v) > n {
			return fmt.Sprintf("maximum size constraint violated: size %d exceeds %d", len(v), n)
		}
		return ""
	})
}

// ExactSize requires exactly n elements; it is MinSize(n) plus MaxSize(n).
func (c SetCodec[E]) ExactSize(n int) SetCodec[E] {
	return c.MinSize(n).MaxSize(n)
}

func (c SetCodec[E]) DecodeStart(p TypeProvider, node any) Result[map[E]struct{}] {
	if r, ok := checkProvider[map[E]struct{}](p); !ok {
		return r
	}
	if node == nil || p.IsNull(node) {
		return errDecodeNull[map[E]struct{}]("set")
	}
	items := p.AsList(node)
	if items.IsErr() {
		return propagate[map[E]struct{}](items)
	}
	out := make(map[E]struct{}, len(items.Value()))
	for i, item := range items.Value() {
		ev := c.elem.DecodeStart(p, item)
		if ev.IsErr() {
			return Errf[map[E]struct{}]("element %d: %s", i, ev.Error())
		}
		if _, dup := out[ev.Value()]; dup {
			return Errf[map[E]struct{}]("duplicate set element at index %d", i)
		}
		out[ev.Value()] = struct{}{}
	}
	if msg := c.cons.eval("set", out); msg != "" {
		return Err[map[E]struct{}](msg)
	}
	return Ok(out)
}

func (c SetCodec[E]) EncodeStart(p TypeProvider, _ any, v map[E]struct{}) Result[any] {
	if r, ok := checkProvider[any](p); !ok {
		return r
	}
	type keyed struct {
		key  string
		elem E
	}
	ordered := make([]keyed, 0, len(v))
	for e := range v {
		kr := c.elem.EncodeKey(e)
		if kr.IsErr() {
			return propagate[any](kr)
		}
		ordered = append(ordered, keyed{key: kr.Value(), elem: e})
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].key < ordered[j].key })
	items := make([]any, 0, len(ordered))
	for _, ke := range ordered {
		ev := c.elem.EncodeStart(p, p.Empty(), ke.elem)
		if ev.IsErr() {
			return propagate[any](ev)
		}
		items = append(items, ev.Value())
	}
	if msg := c.cons.eval("set", v); msg != "" {
		return Err[any](msg)
	}
	return Ok(p.NewList(items))
}
