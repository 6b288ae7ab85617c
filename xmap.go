package treewire

// Xmap projects a codec for A onto a domain type B through a pair of
// conversions that may fail. It is the building block for newtype codecs:
//
//	type UserID string
//	idCodec := treewire.Xmap(treewire.String(),
//		func(s string) treewire.Result[UserID] { return treewire.Ok(UserID(s)) },
//		func(id UserID) treewire.Result[string] { return treewire.Ok(string(id)) },
//		"user-id")
func Xmap[A, B any](base Codec[A], to func(A) Result[B], from func(B) Result[A], typeName string) Codec[B] {
	if base == nil || to == nil || from == nil {
		panic("treewire: Xmap requires a base codec and both conversions")
	}
	return xmapCodec[A, B]{base: base, to: to, from: from, typeName: typeName}
}

type xmapCodec[A, B any] struct {
	base     Codec[A]
	to       func(A) Result[B]
	from     func(B) Result[A]
	typeName string
}

func (c xmapCodec[A, B]) DecodeStart(p TypeProvider, node any) Result[B] {
	r := c.base.DecodeStart(p, node)
	if r.IsErr() {
		return propagate[B](r)
	}
	return c.to(r.Value())
}

func (c xmapCodec[A, B]) EncodeStart(p TypeProvider, current any, v B) Result[any] {
	if r, ok := checkProvider[any](p); !ok {
		return r
	}
	a := c.from(v)
	if a.IsErr() {
		return propagate[any](a)
	}
	return c.base.EncodeStart(p, current, a.Value())
}
