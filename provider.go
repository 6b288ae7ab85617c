package treewire

// TypeProvider adapts one tree-shaped data representation to the codec
// engine. Codecs and combinators never touch a backend directly; every node
// they create or inspect goes through a provider. The node type is `any`;
// each backend documents the concrete values it produces (the json package
// uses nil/bool/int64/float64/string/[]any/map[string]any, the xml package
// uses *xml.Node, and so on).
//
// Providers are stateless and safe for concurrent use.
type TypeProvider interface {
	// Name identifies the backend in error messages ("json", "xml", ...).
	Name() string

	// Empty returns the backend's empty node. An empty node returned by an
	// encoder means "nothing to merge"; group codecs skip it.
	Empty() any
	// IsEmpty reports whether node is the empty node.
	IsEmpty(node any) bool

	// Null returns the backend's representation-specific null node: the JSON
	// null literal, an XML element flagged nil, the Go nil value.
	Null() any
	// IsNull reports whether node is the backend's null node.
	IsNull(node any) bool

	FromBool(v bool) any
	FromInt(v int64) any
	FromUint(v uint64) any
	FromFloat(v float64) any
	FromString(v string) any
	FromBytes(v []byte) any

	// NewList builds a list node from items.
	NewList(items []any) any
	// NewObject builds an empty object node.
	NewObject() any
	// Set merges child into obj under name, returning the updated object.
	Set(obj any, name string, child any) Result[any]

	AsBool(node any) Result[bool]
	AsInt(node any) Result[int64]
	AsUint(node any) Result[uint64]
	AsFloat(node any) Result[float64]
	AsString(node any) Result[string]
	AsBytes(node any) Result[[]byte]
	AsList(node any) Result[[]any]

	// Get looks up a named child of obj. A missing child is Ok(nil) so that
	// absent fields flow through the same null handling as explicit nulls;
	// only a non-object node is an error.
	Get(obj any, name string) Result[any]
	// Keys lists the child names of obj.
	Keys(obj any) Result[[]string]
}
