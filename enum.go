package treewire

// Enum returns a codec for an integer-backed enumeration. Encoding emits the
// value's name; decoding matches by name first and falls back to the ordinal
// index when the node is numeric.
func Enum[E ~int](typeName string, names ...string) KeyableCodec[E] {
	if len(names) == 0 {
		panic("treewire: Enum requires at least one name")
	}
	byName := make(map[string]E, len(names))
	for i, n := range names {
		byName[n] = E(i)
	}
	fromKey := func(key string) Result[E] {
		if v, ok := byName[key]; ok {
			return Ok(v)
		}
		return Errf[E]("unknown %s value %q", typeName, key)
	}
	return leafCodec[E]{
		typeName: typeName,
		dec: func(p TypeProvider, node any) Result[E] {
			if r := p.AsString(node); r.IsOk() {
				return fromKey(r.Value())
			}
			r := p.AsInt(node)
			if r.IsErr() {
				return Errf[E]("unable to decode %s: node is neither name nor ordinal", typeName)
			}
			ord := r.Value()
			if ord < 0 || ord >= int64(len(names)) {
				return Errf[E]("unknown %s ordinal %d", typeName, ord)
			}
			return Ok(E(ord))
		},
		enc: func(p TypeProvider, v E) Result[any] {
			if int(v) < 0 || int(v) >= len(names) {
				return Errf[any]("unknown %s ordinal %d", typeName, int(v))
			}
			return Ok(p.FromString(names[int(v)]))
		},
		toKey: func(v E) Result[string] {
			if int(v) < 0 || int(v) >= len(names) {
				return Errf[string]("unknown %s ordinal %d", typeName, int(v))
			}
			return Ok(names[int(v)])
		},
		fromKey: fromKey,
	}
}
