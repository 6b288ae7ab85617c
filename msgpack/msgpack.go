// Package msgpack round-trips codec output as MessagePack bytes using
// vmihailenco/msgpack. The tree shape is the value provider's node model;
// this package only adds the byte boundary.
package msgpack

import (
	"fmt"

	vmsgpack "github.com/vmihailenco/msgpack/v5"

	"github.com/treewire/treewire"
	"github.com/treewire/treewire/value"
)

// Provider returns the TypeProvider backing the MessagePack byte boundary.
func Provider() treewire.TypeProvider { return value.Provider() }

// Marshal encodes v through c and renders the resulting value tree to
// MessagePack bytes.
func Marshal[T any](c treewire.Codec[T], v T) ([]byte, error) {
	p := Provider()
	r := c.EncodeStart(p, p.Empty(), v)
	if r.IsErr() {
		return nil, fmt.Errorf("msgpack: %s", r.Error())
	}
	return vmsgpack.Marshal(r.Value())
}

// Unmarshal parses MessagePack bytes and decodes the value tree through c.
func Unmarshal[T any](c treewire.Codec[T], data []byte) (T, error) {
	var raw any
	if err := vmsgpack.Unmarshal(data, &raw); err != nil {
		var zero T
		return zero, err
	}
	r := c.DecodeStart(Provider(), normalize(raw))
	if r.IsErr() {
		var zero T
		return zero, fmt.Errorf("msgpack: %s", r.Error())
	}
	return r.Value(), nil
}

// normalize folds the decoder's widened types back into the value provider's
// node model.
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, e := range t {
			t[k] = normalize(e)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, e := range t {
			out[fmt.Sprintf("%v", k)] = normalize(e)
		}
		return out
	case []any:
		for i, e := range t {
			t[i] = normalize(e)
		}
		return t
	case int:
		return int64(t)
	case int8:
		return int64(t)
	case int16:
		return int64(t)
	case int32:
		return int64(t)
	case uint:
		return uint64(t)
	case uint8:
		return uint64(t)
	case uint16:
		return uint64(t)
	case uint32:
		return uint64(t)
	case float32:
		return float64(t)
	default:
		return v
	}
}
