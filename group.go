package treewire

import "fmt"

// MaxGroupArity is the largest number of fields a group codec supports.
const MaxGroupArity = 16

// ConfiguredCodec pairs a field codec with its name and an accessor reading
// the field out of the enclosing record.
type ConfiguredCodec[T, R any] struct {
	name  string
	codec Codec[T]
	get   func(R) T
}

// Field configures a codec as one named field of a record R.
func Field[T, R any](name string, c Codec[T], get func(R) T) ConfiguredCodec[T, R] {
	if name == "" {
		panic("treewire: Field name must not be empty")
	}
	if c == nil || get == nil {
		panic("treewire: Field requires a codec and an accessor")
	}
	return ConfiguredCodec[T, R]{name: name, codec: c, get: get}
}

// Component is the erased view of one record field: its name, boxed
// decode/encode, and an accessor that may fail. The reflection deriver builds
// these directly; ConfiguredCodec produces them for hand-written groups.
type Component[R any] struct {
	Name   string
	Decode func(p TypeProvider, node any) Result[any]
	Encode func(p TypeProvider, v any) Result[any]
	Get    func(r R) Result[any]
}

func (f ConfiguredCodec[T, R]) component() Component[R] {
	codec := f.codec
	get := f.get
	return Component[R]{
		Name: f.name,
		Decode: func(p TypeProvider, node any) Result[any] {
			r := codec.DecodeStart(p, node)
			if r.IsErr() {
				return propagate[any](r)
			}
			return Ok[any](r.Value())
		},
		Encode: func(p TypeProvider, v any) Result[any] {
			tv, ok := v.(T)
			if !ok {
				return Errf[any]("field value %v has unexpected type", v)
			}
			return codec.EncodeStart(p, p.Empty(), tv)
		},
		Get: func(r R) Result[any] { return Ok[any](get(r)) },
	}
}

// GroupComponents assembles a record codec from erased components and a
// constructing function over the boxed field values. Group1 through Group16
// and the automap deriver both bottom out here.
//
// Decoding is fail-fast: build runs only when every component decoded, and
// the first failing component's error (prefixed with the field name) is
// returned as-is. Encoding merges each field into the object under
// construction by name; a component whose encode yields the provider's empty
// node is skipped, which is how optional fields disappear from output.
func GroupComponents[R any](typeName string, build func([]any) Result[R], comps []Component[R]) Codec[R] {
	if build == nil {
		panic("treewire: group build function must not be nil")
	}
	if len(comps) == 0 || len(comps) > MaxGroupArity {
		panic(fmt.Sprintf("treewire: group arity must be between 1 and %d, got %d", MaxGroupArity, len(comps)))
	}
	seen := make(map[string]struct{}, len(comps))
	for _, c := range comps {
		if _, dup := seen[c.Name]; dup {
			panic(fmt.Sprintf("treewire: duplicate group field %q", c.Name))
		}
		seen[c.Name] = struct{}{}
	}
	cloned := make([]Component[R], len(comps))
	copy(cloned, comps)
	return groupCodec[R]{typeName: typeName, build: build, comps: cloned}
}

type groupCodec[R any] struct {
	typeName string
	build    func([]any) Result[R]
	comps    []Component[R]
}

func (g groupCodec[R]) DecodeStart(p TypeProvider, node any) Result[R] {
	if r, ok := checkProvider[R](p); !ok {
		return r
	}
	if node == nil || p.IsNull(node) {
		return errDecodeNull[R](g.typeName)
	}
	vals := make([]any, 0, len(g.comps))
	for _, c := range g.comps {
		child := p.Get(node, c.Name)
		if child.IsErr() {
			return propagate[R](child)
		}
		v := c.Decode(p, child.Value())
		if v.IsErr() {
			return Errf[R]("%s: %s", c.Name, v.Error())
		}
		vals = append(vals, v.Value())
	}
	return g.build(vals)
}

func (g groupCodec[R]) EncodeStart(p TypeProvider, current any, v R) Result[any] {
	if r, ok := checkProvider[any](p); !ok {
		return r
	}
	obj := current
	if obj == nil || p.IsEmpty(obj) {
		obj = p.NewObject()
	}
	for _, c := range g.comps {
		fv := c.Get(v)
		if fv.IsErr() {
			return Errf[any]("%s: %s", c.Name, fv.Error())
		}
		child := c.Encode(p, fv.Value())
		if child.IsErr() {
			return Errf[any]("%s: %s", c.Name, child.Error())
		}
		if p.IsEmpty(child.Value()) {
			continue
		}
		merged := p.Set(obj, c.Name, child.Value())
		if merged.IsErr() {
			return merged
		}
		obj = merged.Value()
	}
	return Ok(obj)
}
