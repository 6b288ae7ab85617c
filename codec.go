package treewire

// Decoder turns a backend node into a typed value.
type Decoder[T any] interface {
	// DecodeStart decodes node through p. It requires a non-nil provider and
	// yields "Unable to decode null value as <type>" for a nil or null node.
	DecodeStart(p TypeProvider, node any) Result[T]
}

// Encoder turns a typed value into a backend node.
type Encoder[T any] interface {
	// EncodeStart encodes v through p. current is the node under
	// construction (an object being merged into, or the provider's empty
	// node); leaf codecs ignore it.
	EncodeStart(p TypeProvider, current any, v T) Result[any]
}

// Codec bundles encode and decode behavior for one type. Codecs are
// immutable and safe for unlimited concurrent use.
type Codec[T any] interface {
	Encoder[T]
	Decoder[T]
}

// KeyableCodec is a Codec whose values also render as canonical strings, so
// the type can serve as a map key.
type KeyableCodec[T any] interface {
	Codec[T]
	EncodeKey(v T) Result[string]
	DecodeKey(key string) Result[T]
}

const nilProviderMsg = "provider must not be nil"

// checkProvider guards the fast-fail nil-provider contract shared by every
// codec entry point.
func checkProvider[T any](p TypeProvider) (Result[T], bool) {
	if p == nil {
		return Err[T](nilProviderMsg), false
	}
	return Result[T]{}, true
}

// errDecodeNull is the uniform message for decoding a nil or null node
// through a non-nullable codec.
func errDecodeNull[T any](typeName string) Result[T] {
	return Errf[T]("Unable to decode null value as %s", typeName)
}

// errEncodeNull is the uniform message for encoding a nil value through a
// non-nullable codec.
func errEncodeNull[T any](typeName string) Result[T] {
	return Errf[T]("Unable to encode null as %s", typeName)
}
