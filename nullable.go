package treewire

// Nullable wraps a codec so the pointer form admits null. Encoding nil emits
// the provider's null node without touching the inner codec; decoding a nil
// or null node succeeds with nil.
func Nullable[T any](inner Codec[T]) Codec[*T] {
	if inner == nil {
		panic("treewire: Nullable inner codec must not be nil")
	}
	return nullableCodec[T]{inner: inner}
}

type nullableCodec[T any] struct {
	inner Codec[T]
}

func (c nullableCodec[T]) DecodeStart(p TypeProvider, node any) Result[*T] {
	if r, ok := checkProvider[*T](p); !ok {
		return r
	}
	if node == nil || p.IsNull(node) {
		return Ok[*T](nil)
	}
	r := c.inner.DecodeStart(p, node)
	if r.IsErr() {
		return propagate[*T](r)
	}
	v := r.Value()
	return Ok(&v)
}

func (c nullableCodec[T]) EncodeStart(p TypeProvider, current any, v *T) Result[any] {
	if r, ok := checkProvider[any](p); !ok {
		return r
	}
	if v == nil {
		return Ok(p.Null())
	}
	return c.inner.EncodeStart(p, current, *v)
}
