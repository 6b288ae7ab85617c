package treewire

import (
	"fmt"
	"strings"
)

// Any returns a codec that tries each inner codec in declaration order and
// keeps the first success, on both encode and decode. Order is part of the
// contract: a value two codecs accept resolves to the earlier one.
//
// Any panics when given fewer than two codecs or a nil entry; a one-codec
// alternative is a programming error, not a runtime condition.
func Any[T any](codecs ...Codec[T]) Codec[T] {
	if len(codecs) < 2 {
		panic("treewire: Any requires at least two codecs")
	}
	for i, c := range codecs {
		if c == nil {
			panic(fmt.Sprintf("treewire: Any codec %d is nil", i))
		}
	}
	cloned := make([]Codec[T], len(codecs))
	copy(cloned, codecs)
	return anyCodec[T]{codecs: cloned}
}

type anyCodec[T any] struct {
	codecs []Codec[T]
}

func (c anyCodec[T]) DecodeStart(p TypeProvider, node any) Result[T] {
	if r, ok := checkProvider[T](p); !ok {
		return r
	}
	msgs := make([]string, 0, len(c.codecs))
	for _, inner := range c.codecs {
		r := inner.DecodeStart(p, node)
		if r.IsOk() {
			return r
		}
		msgs = append(msgs, r.Error())
	}
	return Errf[T]("All codecs failed for node %v: %s", node, strings.Join(msgs, "; "))
}

func (c anyCodec[T]) EncodeStart(p TypeProvider, current any, v T) Result[any] {
	if r, ok := checkProvider[any](p); !ok {
		return r
	}
	msgs := make([]string, 0, len(c.codecs))
	for _, inner := range c.codecs {
		r := inner.EncodeStart(p, current, v)
		if r.IsOk() {
			return r
		}
		msgs = append(msgs, r.Error())
	}
	return Errf[any]("All codecs failed for value %v: %s", v, strings.Join(msgs, "; "))
}
