// Package yaml implements the TypeProvider over gopkg.in/yaml.v3 nodes. The
// node type is *yaml.Node; null is a !!null scalar, bytes travel as !!binary,
// and objects are mapping nodes with scalar keys.
package yaml

import (
	"encoding/base64"
	"fmt"
	"strconv"

	goyaml "gopkg.in/yaml.v3"

	"github.com/treewire/treewire"
)

const (
	tagBool   = "!!bool"
	tagInt    = "!!int"
	tagFloat  = "!!float"
	tagStr    = "!!str"
	tagBinary = "!!binary"
	tagNull   = "!!null"
)

type emptyNode struct{}

type provider struct{}

// Provider returns the YAML TypeProvider.
func Provider() treewire.TypeProvider { return provider{} }

func (provider) Name() string { return "yaml" }

func (provider) Empty() any { return emptyNode{} }

func (provider) IsEmpty(node any) bool {
	_, ok := node.(emptyNode)
	return ok
}

func (provider) Null() any {
	return &goyaml.Node{Kind: goyaml.ScalarNode, Tag: tagNull, Value: "null"}
}

func (provider) IsNull(node any) bool {
	n, ok := node.(*goyaml.Node)
	return ok && (n == nil || n.Tag == tagNull)
}

func scalar(tag, value string) any {
	return &goyaml.Node{Kind: goyaml.ScalarNode, Tag: tag, Value: value}
}

func (provider) FromBool(v bool) any     { return scalar(tagBool, strconv.FormatBool(v)) }
func (provider) FromInt(v int64) any     { return scalar(tagInt, strconv.FormatInt(v, 10)) }
func (provider) FromUint(v uint64) any   { return scalar(tagInt, strconv.FormatUint(v, 10)) }
func (provider) FromFloat(v float64) any { return scalar(tagFloat, strconv.FormatFloat(v, 'g', -1, 64)) }
func (provider) FromString(v string) any { return scalar(tagStr, v) }

func (provider) FromBytes(v []byte) any {
	return scalar(tagBinary, base64.StdEncoding.EncodeToString(v))
}

func (provider) NewList(items []any) any {
	out := &goyaml.Node{Kind: goyaml.SequenceNode, Tag: "!!seq"}
	for _, item := range items {
		n, ok := item.(*goyaml.Node)
		if !ok || n == nil {
			n = &goyaml.Node{Kind: goyaml.ScalarNode, Tag: tagNull, Value: "null"}
		}
		out.Content = append(out.Content, n)
	}
	return out
}

func (provider) NewObject() any {
	return &goyaml.Node{Kind: goyaml.MappingNode, Tag: "!!map"}
}

func (provider) Set(obj any, name string, child any) treewire.Result[any] {
	m, ok := obj.(*goyaml.Node)
	if !ok || m == nil || m.Kind != goyaml.MappingNode {
		return treewire.Errf[any]("cannot merge %q: node is not a mapping", name)
	}
	c, ok := child.(*goyaml.Node)
	if !ok || c == nil {
		return treewire.Errf[any]("cannot merge %q: child is not a yaml node", name)
	}
	key := &goyaml.Node{Kind: goyaml.ScalarNode, Tag: tagStr, Value: name}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == name {
			m.Content[i+1] = c
			return treewire.Ok[any](m)
		}
	}
	m.Content = append(m.Content, key, c)
	return treewire.Ok[any](m)
}

func scalarValue(node any, allowed ...string) (string, bool) {
	n, ok := node.(*goyaml.Node)
	if !ok || n == nil || n.Kind != goyaml.ScalarNode {
		return "", false
	}
	if len(allowed) == 0 {
		return n.Value, true
	}
	for _, tag := range allowed {
		if n.Tag == tag || n.Tag == "" {
			return n.Value, true
		}
	}
	return "", false
}

func (provider) AsBool(node any) treewire.Result[bool] {
	s, ok := scalarValue(node, tagBool)
	if !ok {
		return treewire.Errf[bool]("node is not a bool scalar")
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return treewire.Errf[bool]("scalar %q is not a bool", s)
	}
	return treewire.Ok(b)
}

func (provider) AsInt(node any) treewire.Result[int64] {
	s, ok := scalarValue(node, tagInt, tagFloat)
	if !ok {
		return treewire.Errf[int64]("node is not an integer scalar")
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if f, ferr := strconv.ParseFloat(s, 64); ferr == nil && f == float64(int64(f)) {
			return treewire.Ok(int64(f))
		}
		return treewire.Errf[int64]("scalar %q is not an integer", s)
	}
	return treewire.Ok(i)
}

func (provider) AsUint(node any) treewire.Result[uint64] {
	s, ok := scalarValue(node, tagInt)
	if !ok {
		return treewire.Errf[uint64]("node is not an unsigned integer scalar")
	}
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return treewire.Errf[uint64]("scalar %q is not an unsigned integer", s)
	}
	return treewire.Ok(u)
}

func (provider) AsFloat(node any) treewire.Result[float64] {
	s, ok := scalarValue(node, tagFloat, tagInt)
	if !ok {
		return treewire.Errf[float64]("node is not a number scalar")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return treewire.Errf[float64]("scalar %q is not a number", s)
	}
	return treewire.Ok(f)
}

func (provider) AsString(node any) treewire.Result[string] {
	s, ok := scalarValue(node, tagStr)
	if !ok {
		return treewire.Errf[string]("node is not a string scalar")
	}
	return treewire.Ok(s)
}

func (provider) AsBytes(node any) treewire.Result[[]byte] {
	s, ok := scalarValue(node, tagBinary, tagStr)
	if !ok {
		return treewire.Errf[[]byte]("node is not a binary scalar")
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return treewire.Errf[[]byte]("scalar %q is not valid base64: %v", s, err)
	}
	return treewire.Ok(b)
}

func (provider) AsList(node any) treewire.Result[[]any] {
	n, ok := node.(*goyaml.Node)
	if !ok || n == nil || n.Kind != goyaml.SequenceNode {
		return treewire.Errf[[]any]("node is not a sequence")
	}
	out := make([]any, 0, len(n.Content))
	for _, c := range n.Content {
		out = append(out, any(c))
	}
	return treewire.Ok(out)
}

func (provider) Get(obj any, name string) treewire.Result[any] {
	m, ok := obj.(*goyaml.Node)
	if !ok || m == nil || m.Kind != goyaml.MappingNode {
		return treewire.Errf[any]("node is not a mapping")
	}
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == name {
			return treewire.Ok[any](m.Content[i+1])
		}
	}
	return treewire.Ok[any](nil)
}

func (provider) Keys(obj any) treewire.Result[[]string] {
	m, ok := obj.(*goyaml.Node)
	if !ok || m == nil || m.Kind != goyaml.MappingNode {
		return treewire.Errf[[]string]("node is not a mapping")
	}
	keys := make([]string, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		keys = append(keys, m.Content[i].Value)
	}
	return treewire.Ok(keys)
}

// MarshalNode renders a node tree to a YAML document.
func MarshalNode(node any) ([]byte, error) {
	n, ok := node.(*goyaml.Node)
	if !ok || n == nil {
		return nil, fmt.Errorf("yaml: cannot marshal %v as a yaml node", node)
	}
	return goyaml.Marshal(n)
}

// UnmarshalNode parses a YAML document into a node tree.
func UnmarshalNode(data []byte) (any, error) {
	var doc goyaml.Node
	if err := goyaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == goyaml.DocumentNode && len(doc.Content) > 0 {
		return doc.Content[0], nil
	}
	return nil, fmt.Errorf("yaml: document is empty")
}

// Marshal encodes v through c and renders the resulting node tree to YAML.
func Marshal[T any](c treewire.Codec[T], v T) ([]byte, error) {
	p := Provider()
	r := c.EncodeStart(p, p.Empty(), v)
	if r.IsErr() {
		return nil, fmt.Errorf("yaml: %s", r.Error())
	}
	return MarshalNode(r.Value())
}

// Unmarshal parses a YAML document and decodes it through c.
func Unmarshal[T any](c treewire.Codec[T], data []byte) (T, error) {
	node, err := UnmarshalNode(data)
	if err != nil {
		var zero T
		return zero, err
	}
	r := c.DecodeStart(Provider(), node)
	if r.IsErr() {
		var zero T
		return zero, fmt.Errorf("yaml: %s", r.Error())
	}
	return r.Value(), nil
}
