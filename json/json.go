// Package json implements the TypeProvider over the JSON data model, with
// byte-level round-tripping through goccy/go-json. Nodes are nil (the null
// literal), bool, json.Number, int64, uint64, float64, string, []any, and
// map[string]any; bytes travel as base64 strings.
package json

import (
	"bytes"
	"encoding/base64"
	ejson "encoding/json"
	"fmt"
	"sort"
	"strconv"

	gojson "github.com/goccy/go-json"

	"github.com/treewire/treewire"
)

type emptyNode struct{}

type provider struct{}

// Provider returns the JSON TypeProvider.
func Provider() treewire.TypeProvider { return provider{} }

// UnmarshalNode parses data into a JSON node tree. Numbers are kept as
// json.Number so integer precision survives.
func UnmarshalNode(data []byte) (any, error) {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var node any
	if err := dec.Decode(&node); err != nil {
		return nil, err
	}
	return node, nil
}

// MarshalNode renders a JSON node tree to bytes.
func MarshalNode(node any) ([]byte, error) {
	if _, ok := node.(emptyNode); ok {
		return nil, fmt.Errorf("json: cannot marshal the empty node")
	}
	return gojson.Marshal(node)
}

// Marshal encodes v through c and renders the resulting node to JSON bytes.
func Marshal[T any](c treewire.Codec[T], v T) ([]byte, error) {
	p := Provider()
	r := c.EncodeStart(p, p.Empty(), v)
	if r.IsErr() {
		return nil, fmt.Errorf("json: %s", r.Error())
	}
	return MarshalNode(r.Value())
}

// Unmarshal parses data and decodes the node tree through c.
func Unmarshal[T any](c treewire.Codec[T], data []byte) (T, error) {
	node, err := UnmarshalNode(data)
	if err != nil {
		var zero T
		return zero, err
	}
	r := c.DecodeStart(Provider(), node)
	if r.IsErr() {
		var zero T
		return zero, fmt.Errorf("json: %s", r.Error())
	}
	return r.Value(), nil
}

func (provider) Name() string { return "json" }

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
	return base64.StdEncoding.EncodeToString(v)
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
	case ejson.Number:
		i, err := v.Int64()
		if err != nil {
			return treewire.Errf[int64]("node %v is not an integer", v)
		}
		return treewire.Ok(i)
	case int64:
		return treewire.Ok(v)
	case uint64:
		if v > 1<<63-1 {
			return treewire.Errf[int64]("node %d overflows int64", v)
		}
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
	case ejson.Number:
		u, err := strconv.ParseUint(v.String(), 10, 64)
		if err != nil {
			return treewire.Errf[uint64]("node %v is not an unsigned integer", v)
		}
		return treewire.Ok(u)
	case uint64:
		return treewire.Ok(v)
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
	case ejson.Number:
		f, err := v.Float64()
		if err != nil {
			return treewire.Errf[float64]("node %v is not a number", v)
		}
		return treewire.Ok(f)
	case float64:
		return treewire.Ok(v)
	case int64:
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

func (p provider) AsBytes(node any) treewire.Result[[]byte] {
	r := p.AsString(node)
	if r.IsErr() {
		return treewire.Errf[[]byte]("node %v is not a base64 string", node)
	}
	b, err := base64.StdEncoding.DecodeString(r.Value())
	if err != nil {
		return treewire.Errf[[]byte]("node %q is not valid base64: %v", r.Value(), err)
	}
	return treewire.Ok(b)
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
