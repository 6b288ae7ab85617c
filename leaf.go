package treewire

// leafCodec is the shared core of every built-in codec: a pair of backend
// adapters plus the active constraint set. The base codec always runs first;
// constraints are evaluated only on its success.
type leafCodec[T any] struct {
	typeName string
	dec      func(p TypeProvider, node any) Result[T]
	enc      func(p TypeProvider, v T) Result[any]
	toKey    func(v T) Result[string]
	fromKey  func(key string) Result[T]
	cons     constraintSet[T]
}

func (c leafCodec[T]) with(k constraintKind, check func(T) string) leafCodec[T] {
	c.cons = c.cons.with(constraint[T]{kind: k, check: check})
	return c
}

func (c leafCodec[T]) DecodeStart(p TypeProvider, node any) Result[T] {
	if r, ok := checkProvider[T](p); !ok {
		return r
	}
	if node == nil || p.IsNull(node) {
		return errDecodeNull[T](c.typeName)
	}
	res := c.runDecode(p, node)
	if res.IsErr() {
		return res
	}
	if msg := c.cons.eval(c.typeName, res.Value()); msg != "" {
		return Err[T](msg)
	}
	return res
}

func (c leafCodec[T]) EncodeStart(p TypeProvider, _ any, v T) Result[any] {
	if r, ok := checkProvider[any](p); !ok {
		return r
	}
	res := c.runEncode(p, v)
	if res.IsErr() {
		return res
	}
	if msg := c.cons.eval(c.typeName, v); msg != "" {
		return Err[any](msg)
	}
	return res
}

func (c leafCodec[T]) EncodeKey(v T) Result[string] {
	if c.toKey == nil {
		return Errf[string]("%s is not usable as a map key", c.typeName)
	}
	if msg := c.cons.eval(c.typeName, v); msg != "" {
		return Err[string](msg)
	}
	return c.toKey(v)
}

func (c leafCodec[T]) DecodeKey(key string) Result[T] {
	if c.fromKey == nil {
		return Err[T](c.typeName + " is not usable as a map key")
	}
	res := c.fromKey(key)
	if res.IsErr() {
		return res
	}
	if msg := c.cons.eval(c.typeName, res.Value()); msg != "" {
		return Err[T](msg)
	}
	return res
}

// runDecode converts unexpected backend panics into Err results so malformed
// provider nodes never escape as faults.
func (c leafCodec[T]) runDecode(p TypeProvider, node any) (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Errf[T]("Unable to decode value as %s: %v", c.typeName, r)
		}
	}()
	return c.dec(p, node)
}

func (c leafCodec[T]) runEncode(p TypeProvider, v T) (res Result[any]) {
	defer func() {
		if r := recover(); r != nil {
			res = Errf[any]("Unable to encode value as %s: %v", c.typeName, r)
		}
	}()
	return c.enc(p, v)
}
