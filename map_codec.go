package treewire

import (
	"fmt"
	"sort"
	"strings"
)

// MapCodec encodes a map as one object node. Keys go through a KeyableCodec
// to become child names; encode order is sorted by key form so output is
// deterministic.
type MapCodec[K comparable, V any] struct {
	key  KeyableCodec[K]
	val  Codec[V]
	cons constraintSet[map[K]V]
}

// Map returns a codec for map[K]V.
func Map[K comparable, V any](key KeyableCodec[K], val Codec[V]) MapCodec[K, V] {
	if key == nil || val == nil {
		panic("treewire: Map key and value codecs must not be nil")
	}
	return MapCodec[K, V]{key: key, val: val}
}

func (c MapCodec[K, V]) withCons(k constraintKind, check func(map[K]V) string) MapCodec[K, V] {
	c.cons = c.cons.with(constraint[map[K]V]{kind: k, check: check})
	return c
}

// MinSize requires at least n entries.
func (c MapCodec[K, V]) MinSize(n int) MapCodec[K, V] {
	return c.withCons(kindMinSize, func(v map[K]V) string {
		if len(v) < n {
			return fmt.Sprintf("minimum size constraint violated: size %d is less than %d", len(v), n)
		}
		return ""
	})
}

// MaxSize allows at most n entries.
func (c MapCodec[K, V]) MaxSize(n int) MapCodec[K, V] {
	return c.withCons(kindMaxSize, func(v map[K]V) string {
		if len(v) > n {
			return fmt.Sprintf("maximum size constraint violated: size %d exceeds %d", len(v), n)
		}
		return ""
	})
}

// ExactSize requires exactly n entries; it is MinSize(n) plus MaxSize(n).
func (c MapCodec[K, V]) ExactSize(n int) MapCodec[K, V] {
	return c.MinSize(n).MaxSize(n)
}

// Keys restricts the map to the given key set.
func (c MapCodec[K, V]) Keys(allowed ...K) MapCodec[K, V] {
	set := make(map[K]struct{}, len(allowed))
	for _, k := range allowed {
		set[k] = struct{}{}
	}
	return c.withCons(kindKeySet, func(v map[K]V) string {
		var bad []string
		for k := range v {
			if _, ok := set[k]; !ok {
				bad = append(bad, fmt.Sprintf("%v", k))
			}
		}
		if len(bad) > 0 {
			sort.Strings(bad)
			return fmt.Sprintf("key set constraint violated: keys [%s] are not permitted", strings.Join(bad, ", "))
		}
		return ""
	})
}

func (c MapCodec[K, V]) DecodeStart(p TypeProvider, node any) Result[map[K]V] {
	if r, ok := checkProvider[map[K]V](p); !ok {
		return r
	}
	if node == nil || p.IsNull(node) {
		return errDecodeNull[map[K]V]("map")
	}
	keys := p.Keys(node)
	if keys.IsErr() {
		return propagate[map[K]V](keys)
	}
	out := make(map[K]V, len(keys.Value()))
	for _, name := range keys.Value() {
		kr := c.key.DecodeKey(name)
		if kr.IsErr() {
			return Errf[map[K]V]("key %q: %s", name, kr.Error())
		}
		child := p.Get(node, name)
		if child.IsErr() {
			return propagate[map[K]V](child)
		}
		vr := c.val.DecodeStart(p, child.Value())
		if vr.IsErr() {
			return Errf[map[K]V]("key %q: %s", name, vr.Error())
		}
		out[kr.Value()] = vr.Value()
	}
	if msg := c.cons.eval("map", out); msg != "" {
		return Err[map[K]V](msg)
	}
	return Ok(out)
}

func (c MapCodec[K, V]) EncodeStart(p TypeProvider, current any, v map[K]V) Result[any] {
	if r, ok := checkProvider[any](p); !ok {
		return r
	}
	type entry struct {
		name string
		key  K
	}
	ordered := make([]entry, 0, len(v))
	for k := range v {
		kr := c.key.EncodeKey(k)
		if kr.IsErr() {
			return propagate[any](kr)
		}
		ordered = append(ordered, entry{name: kr.Value(), key: k})
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].name < ordered[j].name })
	obj := current
	if obj == nil || p.IsEmpty(obj) {
		obj = p.NewObject()
	}
	for _, e := range ordered {
		vr := c.val.EncodeStart(p, p.Empty(), v[e.key])
		if vr.IsErr() {
			return Errf[any]("key %q: %s", e.name, vr.Error())
		}
		merged := p.Set(obj, e.name, vr.Value())
		if merged.IsErr() {
			return merged
		}
		obj = merged.Value()
	}
	if msg := c.cons.eval("map", v); msg != "" {
		return Err[any](msg)
	}
	return Ok(obj)
}
