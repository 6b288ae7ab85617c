package treewire

import (
	"fmt"

	"github.com/google/uuid"
)

// UUIDCodec carries uuid.UUID in canonical textual form on the wire.
type UUIDCodec struct {
	leafCodec[uuid.UUID]
}

// UUID returns the uuid.UUID codec.
func UUID() UUIDCodec {
	return UUIDCodec{leafCodec[uuid.UUID]{
		typeName: "uuid",
		dec: func(p TypeProvider, node any) Result[uuid.UUID] {
			r := p.AsString(node)
			if r.IsErr() {
				return propagate[uuid.UUID](r)
			}
			id, err := uuid.Parse(r.Value())
			if err != nil {
				return Errf[uuid.UUID]("invalid uuid %q: %v", r.Value(), err)
			}
			return Ok(id)
		},
		enc: func(p TypeProvider, v uuid.UUID) Result[any] { return Ok(p.FromString(v.String())) },
		toKey: func(v uuid.UUID) Result[string] { return Ok(v.String()) },
		fromKey: func(key string) Result[uuid.UUID] {
			id, err := uuid.Parse(key)
			if err != nil {
				return Errf[uuid.UUID]("invalid uuid key %q", key)
			}
			return Ok(id)
		},
	}}
}

// Version requires the UUID to be of the given version.
func (c UUIDCodec) Version(n int) UUIDCodec {
	c.leafCodec = c.leafCodec.with(kindUUIDVersion, func(v uuid.UUID) string {
		if int(v.Version()) != n {
			return fmt.Sprintf("uuid version constraint violated: %s is version %d, expected %d", v, v.Version(), n)
		}
		return ""
	})
	return c
}
