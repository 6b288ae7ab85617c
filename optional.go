package treewire

// Optional wraps a codec so the pointer form admits absence. Encoding nil
// yields the provider's empty node, which group codecs skip instead of
// merging; decoding a missing, nil, or null node succeeds with nil.
//
// Optional differs from Nullable only on encode: an optional nil disappears
// from the output, a nullable nil becomes an explicit null node.
func Optional[T any](inner Codec[T]) Codec[*T] {
	if inner == nil {
		panic("treewire: Optional inner codec must not be nil")
	}
	return optionalCodec[T]{inner: inner}
}

type optionalCodec[T any] struct {
	inner Codec[T]
}

func (c optionalCodec[T]) DecodeStart(p TypeProvider, node any) Result[*T] {
	if r, ok := checkProvider[*T](p); !ok {
		return r
	}
	if node == nil || p.IsNull(node) || p.IsEmpty(node) {
		return Ok[*T](nil)
	}
	r := c.inner.DecodeStart(p, node)
	if r.IsErr() {
		return propagate[*T](r)
	}
	v := r.Value()
	return Ok(&v)
}

func (c optionalCodec[T]) EncodeStart(p TypeProvider, current any, v *T) Result[any] {
	if r, ok := checkProvider[any](p); !ok {
		return r
	}
	if v == nil {
		return Ok(p.Empty())
	}
	return c.inner.EncodeStart(p, current, *v)
}
