package treewire

// OneOf restricts base to an explicit finite set of admissible values. Any
// other value fails both encode and decode.
func OneOf[T comparable](base Codec[T], allowed ...T) Codec[T] {
	if base == nil {
		panic("treewire: OneOf base codec must not be nil")
	}
	if len(allowed) == 0 {
		panic("treewire: OneOf requires at least one literal")
	}
	set := make(map[T]struct{}, len(allowed))
	for _, v := range allowed {
		set[v] = struct{}{}
	}
	return literalCodec[T]{base: base, allowed: set}
}

type literalCodec[T comparable] struct {
	base    Codec[T]
	allowed map[T]struct{}
}

func (c literalCodec[T]) DecodeStart(p TypeProvider, node any) Result[T] {
	r := c.base.DecodeStart(p, node)
	if r.IsErr() {
		return r
	}
	if _, ok := c.allowed[r.Value()]; !ok {
		return Errf[T]("value %v is not a permitted literal", r.Value())
	}
	return r
}

func (c literalCodec[T]) EncodeStart(p TypeProvider, current any, v T) Result[any] {
	if _, ok := c.allowed[v]; !ok {
		return Errf[any]("value %v is not a permitted literal", v)
	}
	return c.base.EncodeStart(p, current, v)
}
