// Package value implements the TypeProvider over plain in-memory Go values.
// Nodes are nil, bool, int64, uint64, float64, string, []byte, []any, and
// map[string]any; no reflection is involved. It is the reference backend the
// other providers are tested against, and the node model the msgpack package
// serializes.
package value

import (
	"fmt"
	"sort"

	"github.com/treewire/treewire"
)

// emptyNode is the provider's "nothing to merge" sentinel, distinct from nil
// which is the null node.
type emptyNode struct{}

type provider struct{}

// Provider returns the plain-value TypeProvider.
func Provider() treewire.TypeProvider { return provider{} }

func (provider) Name() string { return "value" }

func (provider) Empty() any { return emptyNode{} }

func (provider) IsEmpty(node any) bool {
	_, ok := node.(emptyNode)
	return ok
}

func (provider) Null() any { return nil }

func (provider) IsNull(node any) bool { return node == nil }

func (provider) FromBool(v bool) any     { return v }
func (provider) FromInt(v int64) any     { return v }
func (provider) FromUint(v uint64) any   { return v }
func (provider) FromFloat(v float64) any { return v }
func (provider) FromString(v string) any { return v }

func (provider) FromBytes(v []byte) any {
	out := make([]byte, len(v))
	copy(out, v)
	return out
}

func (provider) NewList(items []any) any {
	out := make([]any, len(items))
	copy(out, items)
	return out
}

func (provider) NewObject() any { return map[string]any{} }

func (provider) Set(obj any, name string, child any) treewire.Result[any] {
	m, ok := obj.(map[string]any)
	if !ok {
		return treewire.Errf[any]("cannot merge %q: node %v is not an object", name, obj)
	}
	m[name] = child
	return treewire.Ok[any](m)
}

func (provider) AsBool(node any) treewire.Result[bool] {
	if b, ok := node.(bool); ok {
		return treewire.Ok(b)
	}
	return treewire.Errf[bool]("node %v is not a bool", node)
}

func (provider) AsInt(node any) treewire.Result[int64] {
	switch v := node.(type) {
	case int64:
		return treewire.Ok(v)
	case int:
		return treewire.Ok(int64(v))
	case int8:
		return treewire.Ok(int64(v))
	case int16:
		return treewire.Ok(int64(v))
	case int32:
		return treewire.Ok(int64(v))
	case uint64:
		if v > 1<<63-1 {
			return treewire.Errf[int64]("node %d overflows int64", v)
		}
		return treewire.Ok(int64(v))
	case uint:
		return treewire.Ok(int64(v))
	case uint8:
		return treewire.Ok(int64(v))
	case uint16:
		return treewire.Ok(int64(v))
	case uint32:
		return treewire.Ok(int64(v))
	case float64:
		if v != float64(int64(v)) {
			return treewire.Errf[int64]("node %v is not an integer", v)
		}
		return treewire.Ok(int64(v))
	}
	return treewire.Errf[int64]("node %v is not an integer", node)
}

func (p provider) AsUint(node any) treewire.Result[uint64] {
	switch v := node.(type) {
	case uint64:
		return treewire.Ok(v)
	case uint:
		return treewire.Ok(uint64(v))
	case uint8:
		return treewire.Ok(uint64(v))
	case uint16:
		return treewire.Ok(uint64(v))
	case uint32:
		return treewire.Ok(uint64(v))
	}
	r := p.AsInt(node)
	if r.IsErr() {
		return treewire.Errf[uint64]("node %v is not an unsigned integer", node)
	}
	if r.Value() < 0 {
		return treewire.Errf[uint64]("node %d is negative", r.Value())
	}
	return treewire.Ok(uint64(r.Value()))
}

func (provider) AsFloat(node any) treewire.Result[float64] {
	switch v := node.(type) {
	case float64:
		return treewire.Ok(v)
	case float32:
		return treewire.Ok(float64(v))
	case int64:
		return treewire.Ok(float64(v))
	case int:
		return treewire.Ok(float64(v))
	case uint64:
		return treewire.Ok(float64(v))
	}
	return treewire.Errf[float64]("node %v is not a number", node)
}

func (provider) AsString(node any) treewire.Result[string] {
	if s, ok := node.(string); ok {
		return treewire.Ok(s)
	}
	return treewire.Errf[string]("node %v is not a string", node)
}

func (provider) AsBytes(node any) treewire.Result[[]byte] {
	if b, ok := node.([]byte); ok {
		out := make([]byte, len(b))
		copy(out, b)
		return treewire.Ok(out)
	}
	return treewire.Errf[[]byte]("node %v is not a byte slice", node)
}

func (provider) AsList(node any) treewire.Result[[]any] {
	if l, ok := node.([]any); ok {
		return treewire.Ok(l)
	}
	return treewire.Errf[[]any]("node %v is not a list", node)
}

func (provider) Get(obj any, name string) treewire.Result[any] {
	m, ok := obj.(map[string]any)
	if !ok {
		return treewire.Errf[any]("node %v is not an object", obj)
	}
	child, present := m[name]
	if !present {
		return treewire.Ok[any](nil)
	}
	return treewire.Ok(child)
}

func (provider) Keys(obj any) treewire.Result[[]string] {
	m, ok := obj.(map[string]any)
	if !ok {
		return treewire.Errf[[]string]("node %v is not an object", obj)
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return treewire.Ok(keys)
}

var _ fmt.Stringer = emptyNode{}

func (emptyNode) String() string { return "<empty>" }
