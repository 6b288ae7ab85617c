// Package xml implements the TypeProvider over an XML element tree,
// marshaled with encoding/xml. The node type is *Node; primitives are
// elements with character data, lists repeat an <item> child per element, and
// null is a self-closing element flagged nil="true". Bytes travel as base64
// character data. Child names become element names, so field and map keys
// must be valid XML names.
//
// Character data in a childless element is preserved verbatim, whitespace
// included. Only an element with no character data and no children remains
// ambiguous between the empty string and an empty list; the extractors
// accept either reading there.
package xml

import (
	"bytes"
	"encoding/base64"
	exml "encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/treewire/treewire"
)

// Node is one XML element: either character data, a nil marker, or a list of
// child elements.
type Node struct {
	Name     string
	Nil      bool
	Text     string
	HasText  bool
	Children []*Node
}

const (
	defaultRoot = "node"
	listItem    = "item"
	nilAttr     = "nil"
)

type emptyNode struct{}

type provider struct{}

// Provider returns the XML TypeProvider.
func Provider() treewire.TypeProvider { return provider{} }

func (provider) Name() string { return "xml" }

func (provider) Empty() any { return emptyNode{} }

func (provider) IsEmpty(node any) bool {
	_, ok := node.(emptyNode)
	return ok
}

func (provider) Null() any { return &Node{Nil: true} }

func (provider) IsNull(node any) bool {
	n, ok := node.(*Node)
	return ok && (n == nil || n.Nil)
}

func text(s string) any { return &Node{Text: s, HasText: true} }

func (provider) FromBool(v bool) any     { return text(strconv.FormatBool(v)) }
func (provider) FromInt(v int64) any     { return text(strconv.FormatInt(v, 10)) }
func (provider) FromUint(v uint64) any   { return text(strconv.FormatUint(v, 10)) }
func (provider) FromFloat(v float64) any { return text(strconv.FormatFloat(v, 'g', -1, 64)) }
func (provider) FromString(v string) any { return text(v) }

func (provider) FromBytes(v []byte) any {
	return text(base64.StdEncoding.EncodeToString(v))
}

func (provider) NewList(items []any) any {
	out := &Node{}
	for _, item := range items {
		child, ok := item.(*Node)
		if !ok || child == nil {
			child = &Node{Nil: true}
		}
		out.Children = append(out.Children, child.renamed(listItem))
	}
	return out
}

func (provider) NewObject() any { return &Node{} }

func (provider) Set(obj any, name string, child any) treewire.Result[any] {
	n, ok := obj.(*Node)
	if !ok || n == nil || n.HasText {
		return treewire.Errf[any]("cannot merge %q: node is not an element container", name)
	}
	c, ok := child.(*Node)
	if !ok || c == nil {
		return treewire.Errf[any]("cannot merge %q: child is not an element", name)
	}
	n.Children = append(n.Children, c.renamed(name))
	return treewire.Ok[any](n)
}

func (p provider) AsBool(node any) treewire.Result[bool] {
	r := p.AsString(node)
	if r.IsErr() {
		return treewire.Errf[bool]("node is not a bool element")
	}
	b, err := strconv.ParseBool(r.Value())
	if err != nil {
		return treewire.Errf[bool]("element text %q is not a bool", r.Value())
	}
	return treewire.Ok(b)
}

func (p provider) AsInt(node any) treewire.Result[int64] {
	r := p.AsString(node)
	if r.IsErr() {
		return treewire.Errf[int64]("node is not an integer element")
	}
	i, err := strconv.ParseInt(strings.TrimSpace(r.Value()), 10, 64)
	if err != nil {
		return treewire.Errf[int64]("element text %q is not an integer", r.Value())
	}
	return treewire.Ok(i)
}

func (p provider) AsUint(node any) treewire.Result[uint64] {
	r := p.AsString(node)
	if r.IsErr() {
		return treewire.Errf[uint64]("node is not an unsigned integer element")
	}
	u, err := strconv.ParseUint(strings.TrimSpace(r.Value()), 10, 64)
	if err != nil {
		return treewire.Errf[uint64]("element text %q is not an unsigned integer", r.Value())
	}
	return treewire.Ok(u)
}

func (p provider) AsFloat(node any) treewire.Result[float64] {
	r := p.AsString(node)
	if r.IsErr() {
		return treewire.Errf[float64]("node is not a number element")
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(r.Value()), 64)
	if err != nil {
		return treewire.Errf[float64]("element text %q is not a number", r.Value())
	}
	return treewire.Ok(f)
}

func (provider) AsString(node any) treewire.Result[string] {
	n, ok := node.(*Node)
	if !ok || n == nil || n.Nil || len(n.Children) > 0 {
		return treewire.Errf[string]("node is not a text element")
	}
	return treewire.Ok(n.Text)
}

func (p provider) AsBytes(node any) treewire.Result[[]byte] {
	r := p.AsString(node)
	if r.IsErr() {
		return treewire.Errf[[]byte]("node is not a base64 element")
	}
	b, err := base64.StdEncoding.DecodeString(r.Value())
	if err != nil {
		return treewire.Errf[[]byte]("element text %q is not valid base64: %v", r.Value(), err)
	}
	return treewire.Ok(b)
}

func (provider) AsList(node any) treewire.Result[[]any] {
	n, ok := node.(*Node)
	if !ok || n == nil || n.Nil || n.HasText {
		return treewire.Errf[[]any]("node is not a list element")
	}
	out := make([]any, 0, len(n.Children))
	for _, c := range n.Children {
		out = append(out, any(c))
	}
	return treewire.Ok(out)
}

func (provider) Get(obj any, name string) treewire.Result[any] {
	n, ok := obj.(*Node)
	if !ok || n == nil || n.HasText {
		return treewire.Errf[any]("node is not an element container")
	}
	for _, c := range n.Children {
		if c.Name == name {
			return treewire.Ok[any](c)
		}
	}
	return treewire.Ok[any](nil)
}

func (provider) Keys(obj any) treewire.Result[[]string] {
	n, ok := obj.(*Node)
	if !ok || n == nil || n.HasText {
		return treewire.Errf[[]string]("node is not an element container")
	}
	keys := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		keys = append(keys, c.Name)
	}
	return treewire.Ok(keys)
}

// renamed returns a shallow copy of n carrying the given element name.
func (n *Node) renamed(name string) *Node {
	out := *n
	out.Name = name
	return &out
}

// MarshalNode renders a node tree to an XML document. An unnamed root is
// emitted as <node>.
func MarshalNode(node any) ([]byte, error) {
	n, ok := node.(*Node)
	if !ok || n == nil {
		return nil, fmt.Errorf("xml: cannot marshal %v as an element", node)
	}
	var buf bytes.Buffer
	enc := exml.NewEncoder(&buf)
	if err := writeNode(enc, n, defaultRoot); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeNode(enc *exml.Encoder, n *Node, fallback string) error {
	name := n.Name
	if name == "" {
		name = fallback
	}
	start := exml.StartElement{Name: exml.Name{Local: name}}
	if n.Nil {
		start.Attr = append(start.Attr, exml.Attr{
			Name:  exml.Name{Local: nilAttr},
			Value: "true",
		})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	switch {
	case n.Nil:
	case n.HasText:
		if err := enc.EncodeToken(exml.CharData(n.Text)); err != nil {
			return err
		}
	default:
		for _, c := range n.Children {
			if err := writeNode(enc, c, listItem); err != nil {
				return err
			}
		}
	}
	return enc.EncodeToken(start.End())
}

// UnmarshalNode parses an XML document into a node tree. The root element's
// name is preserved on the returned node.
func UnmarshalNode(data []byte) (any, error) {
	dec := exml.NewDecoder(bytes.NewReader(data))
	for {
		tok, err := dec.Token()
		if err != nil {
			if err == io.EOF {
				return nil, fmt.Errorf("xml: document has no root element")
			}
			return nil, err
		}
		if start, ok := tok.(exml.StartElement); ok {
			return readNode(dec, start)
		}
	}
}

func readNode(dec *exml.Decoder, start exml.StartElement) (*Node, error) {
	n := &Node{Name: start.Name.Local}
	for _, a := range start.Attr {
		if a.Name.Local == nilAttr && a.Value == "true" {
			n.Nil = true
		}
	}
	var textBuf strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case exml.StartElement:
			child, err := readNode(dec, t)
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
		case exml.CharData:
			textBuf.Write(t)
		case exml.EndElement:
			// Character data in a childless element is payload, whitespace
			// included: the encoder emits no indentation around text. An
			// element with no character data at all stays ambiguous between
			// "" and an empty list; HasText stays false and the extractors
			// accept either reading.
			if txt := textBuf.String(); txt != "" && len(n.Children) == 0 && !n.Nil {
				n.Text = txt
				n.HasText = true
			}
			return n, nil
		}
	}
}

// Marshal encodes v through c and renders the resulting node tree to XML.
func Marshal[T any](c treewire.Codec[T], v T) ([]byte, error) {
	p := Provider()
	r := c.EncodeStart(p, p.Empty(), v)
	if r.IsErr() {
		return nil, fmt.Errorf("xml: %s", r.Error())
	}
	return MarshalNode(r.Value())
}

// Unmarshal parses an XML document and decodes it through c.
func Unmarshal[T any](c treewire.Codec[T], data []byte) (T, error) {
	node, err := UnmarshalNode(data)
	if err != nil {
		var zero T
		return zero, err
	}
	r := c.DecodeStart(Provider(), node)
	if r.IsErr() {
		var zero T
		return zero, fmt.Errorf("xml: %s", r.Error())
	}
	return r.Value(), nil
}
