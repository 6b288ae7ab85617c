package treewire

import "strconv"

// Bool returns the boolean codec. Keys render as "true"/"false".
func Bool() KeyableCodec[bool] {
	return leafCodec[bool]{
		typeName: "bool",
		dec:      func(p TypeProvider, node any) Result[bool] { return p.AsBool(node) },
		enc:      func(p TypeProvider, v bool) Result[any] { return Ok(p.FromBool(v)) },
		toKey:    func(v bool) Result[string] { return Ok(strconv.FormatBool(v)) },
		fromKey: func(key string) Result[bool] {
			b, err := strconv.ParseBool(key)
			if err != nil {
				return Errf[bool]("invalid bool key %q", key)
			}
			return Ok(b)
		},
	}
}

// Bytes returns the byte-slice codec. Text backends carry bytes as base64;
// a nil slice does not encode.
func Bytes() Codec[[]byte] {
	return leafCodec[[]byte]{
		typeName: "bytes",
		dec:      func(p TypeProvider, node any) Result[[]byte] { return p.AsBytes(node) },
		enc: func(p TypeProvider, v []byte) Result[any] {
			if v == nil {
				return errEncodeNull[any]("bytes")
			}
			return Ok(p.FromBytes(v))
		},
	}
}
