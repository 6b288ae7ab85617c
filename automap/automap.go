// Package automap derives codecs for struct types by reflection.
//
// Field participation follows the `tree` struct tag: when any field carries a
// tag, only tagged fields are mapped; otherwise every exported field is
// mapped under its own name. `tree:"-"` always excludes a field. Per-field
// codecs come from the explicit registry, the built-in leaf codecs, and
// recursive derivation for slices, arrays, maps, pointers, and nested
// structs.
//
// Derivation problems (too many fields, interface-typed fields, recursive
// types, unsupported kinds) are construction-time errors returned by Derive;
// runtime encode/decode never panics and reports failures as Results.
package automap

import (
	"net/netip"
	"net/url"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/language"

	"github.com/treewire/treewire"
)

// anyCodec is the erased form derivation works in: boxed decode/encode plus
// optional key conversions.
type anyCodec struct {
	dec    func(p treewire.TypeProvider, node any) treewire.Result[any]
	enc    func(p treewire.TypeProvider, v any) treewire.Result[any]
	encKey func(v any) treewire.Result[string]
	decKey func(key string) treewire.Result[any]
}

func erase[T any](c treewire.Codec[T]) anyCodec {
	e := anyCodec{
		dec: func(p treewire.TypeProvider, node any) treewire.Result[any] {
			r := c.DecodeStart(p, node)
			if r.IsErr() {
				return treewire.Err[any](r.Error())
			}
			return treewire.Ok[any](r.Value())
		},
		enc: func(p treewire.TypeProvider, v any) treewire.Result[any] {
			tv, ok := v.(T)
			if !ok {
				return treewire.Errf[any]("value %v has unexpected type %T", v, v)
			}
			return c.EncodeStart(p, p.Empty(), tv)
		},
	}
	if kc, ok := c.(treewire.KeyableCodec[T]); ok {
		e.encKey = func(v any) treewire.Result[string] {
			tv, ok := v.(T)
			if !ok {
				return treewire.Errf[string]("key %v has unexpected type %T", v, v)
			}
			return kc.EncodeKey(tv)
		}
		e.decKey = func(key string) treewire.Result[any] {
			r := kc.DecodeKey(key)
			if r.IsErr() {
				return treewire.Err[any](r.Error())
			}
			return treewire.Ok[any](r.Value())
		}
	}
	return e
}

func typeOf[T any]() reflect.Type { return reflect.TypeOf((*T)(nil)).Elem() }

// registry holds explicitly registered codecs; derived caches finished
// derivations. Both are build-once read-many: concurrent first-time
// derivation may duplicate work, with one result winning via LoadOrStore.
var (
	registry sync.Map // reflect.Type -> anyCodec
	derived  sync.Map // reflect.Type -> anyCodec
)

// Register installs a codec for T, taking precedence over derivation.
// Registering the same type twice is an error.
func Register[T any](c treewire.Codec[T]) error {
	if c == nil {
		return errors.New("automap: cannot register a nil codec")
	}
	t := typeOf[T]()
	if _, loaded := registry.LoadOrStore(t, erase(c)); loaded {
		return errors.Errorf("automap: codec for %s already registered", t)
	}
	return nil
}

// MustRegister is Register, panicking on error.
func MustRegister[T any](c treewire.Codec[T]) {
	if err := Register(c); err != nil {
		panic(err)
	}
}

var builtins = map[reflect.Type]anyCodec{
	typeOf[bool]():              erase[bool](treewire.Bool()),
	typeOf[string]():            erase[string](treewire.String()),
	typeOf[int]():               erase[int](treewire.Int()),
	typeOf[int8]():              erase[int8](treewire.Int8()),
	typeOf[int16]():             erase[int16](treewire.Int16()),
	typeOf[int32]():             erase[int32](treewire.Int32()),
	typeOf[int64]():             erase[int64](treewire.Int64()),
	typeOf[uint]():              erase[uint](treewire.Uint()),
	typeOf[uint8]():             erase[uint8](treewire.Uint8()),
	typeOf[uint16]():            erase[uint16](treewire.Uint16()),
	typeOf[uint32]():            erase[uint32](treewire.Uint32()),
	typeOf[uint64]():            erase[uint64](treewire.Uint64()),
	typeOf[float32]():           erase[float32](treewire.Float32()),
	typeOf[float64]():           erase[float64](treewire.Float64()),
	typeOf[[]byte]():            erase[[]byte](treewire.Bytes()),
	typeOf[time.Time]():         erase[time.Time](treewire.Time()),
	typeOf[time.Duration]():     erase[time.Duration](treewire.Duration()),
	typeOf[uuid.UUID]():         erase[uuid.UUID](treewire.UUID()),
	typeOf[netip.Addr]():        erase[netip.Addr](treewire.Addr()),
	typeOf[netip.AddrPort]():    erase[netip.AddrPort](treewire.AddrPort()),
	typeOf[*url.URL]():          erase[*url.URL](treewire.URL()),
	typeOf[language.Tag]():      erase[language.Tag](treewire.Locale()),
	typeOf[*time.Location]():    erase[*time.Location](treewire.Zone()),
	typeOf[encoding.Encoding](): erase[encoding.Encoding](treewire.Charset()),
}

// Derive builds a codec for the struct type T. Non-struct types must be
// registered explicitly or use the built-in codecs directly.
func Derive[T any]() (treewire.Codec[T], error) {
	t := typeOf[T]()
	if e, ok := registry.Load(t); ok {
		return typed[T]{e.(anyCodec)}, nil
	}
	if e, ok := builtins[t]; ok {
		return typed[T]{e}, nil
	}
	if t.Kind() != reflect.Struct {
		return nil, errors.Errorf("automap: cannot derive codec for %s: derivation works on struct types", t)
	}
	e, err := codecForType(t, map[reflect.Type]bool{})
	if err != nil {
		return nil, err
	}
	return typed[T]{e}, nil
}

// MustDerive is Derive, panicking on error.
func MustDerive[T any]() treewire.Codec[T] {
	c, err := Derive[T]()
	if err != nil {
		panic(err)
	}
	return c
}

// typed narrows an erased codec back to its concrete type.
type typed[T any] struct {
	e anyCodec
}

func (c typed[T]) DecodeStart(p treewire.TypeProvider, node any) treewire.Result[T] {
	if p == nil {
		return treewire.Err[T]("provider must not be nil")
	}
	r := c.e.dec(p, node)
	if r.IsErr() {
		return treewire.Err[T](r.Error())
	}
	if r.Value() == nil {
		var zero T
		return treewire.Ok(zero)
	}
	v, ok := r.Value().(T)
	if !ok {
		return treewire.Errf[T]("decoded value %v has unexpected type %T", r.Value(), r.Value())
	}
	return treewire.Ok(v)
}

func (c typed[T]) EncodeStart(p treewire.TypeProvider, current any, v T) treewire.Result[any] {
	if p == nil {
		return treewire.Err[any]("provider must not be nil")
	}
	return c.e.enc(p, v)
}

// codecForType resolves the codec for one reflected type. building tracks
// in-progress struct derivations so self-referential types fail instead of
// recursing forever.
func codecForType(t reflect.Type, building map[reflect.Type]bool) (anyCodec, error) {
	if e, ok := registry.Load(t); ok {
		return e.(anyCodec), nil
	}
	if e, ok := builtins[t]; ok {
		return e, nil
	}
	if e, ok := derived.Load(t); ok {
		return e.(anyCodec), nil
	}
	switch t.Kind() {
	case reflect.Pointer:
		elem, err := codecForType(t.Elem(), building)
		if err != nil {
			return anyCodec{}, err
		}
		return ptrCodec(t.Elem(), elem), nil
	case reflect.Slice:
		elem, err := codecForType(t.Elem(), building)
		if err != nil {
			return anyCodec{}, err
		}
		return cache(t, sliceCodec(t, elem)), nil
	case reflect.Array:
		elem, err := codecForType(t.Elem(), building)
		if err != nil {
			return anyCodec{}, err
		}
		return cache(t, arrayCodec(t, elem)), nil
	case reflect.Map:
		key, err := codecForType(t.Key(), building)
		if err != nil {
			return anyCodec{}, err
		}
		if key.decKey == nil || key.encKey == nil {
			return anyCodec{}, errors.Errorf("automap: map key type %s is not usable as a key", t.Key())
		}
		val, err := codecForType(t.Elem(), building)
		if err != nil {
			return anyCodec{}, err
		}
		return cache(t, mapCodec(t, key, val)), nil
	case reflect.Struct:
		e, err := deriveStruct(t, building)
		if err != nil {
			return anyCodec{}, err
		}
		return cache(t, e), nil
	case reflect.Interface:
		return anyCodec{}, errors.Errorf("Missing generic type information: cannot derive a codec for interface %s", t)
	default:
		return anyCodec{}, errors.Errorf("automap: unsupported type %s (kind %s)", t, t.Kind())
	}
}

func cache(t reflect.Type, e anyCodec) anyCodec {
	actual, _ := derived.LoadOrStore(t, e)
	return actual.(anyCodec)
}

// component is one mapped field.
type component struct {
	name  string
	index int
	codec anyCodec
}

func deriveStruct(t reflect.Type, building map[reflect.Type]bool) (anyCodec, error) {
	if building[t] {
		return anyCodec{}, errors.Errorf("automap: recursive type %s requires explicit registration", t)
	}
	building[t] = true
	defer delete(building, t)

	fields, err := selectFields(t)
	if err != nil {
		return anyCodec{}, err
	}
	comps := make([]treewire.Component[any], 0, len(fields))
	for _, f := range fields {
		fc, err := codecForType(t.Field(f.index).Type, building)
		if err != nil {
			return anyCodec{}, errors.Wrapf(err, "field %s.%s", t.Name(), t.Field(f.index).Name)
		}
		f.codec = fc
		comps = append(comps, f.asComponent())
	}
	build := func(vals []any) treewire.Result[any] {
		rv := reflect.New(t).Elem()
		for i, f := range fields {
			if vals[i] == nil {
				continue
			}
			fv := reflect.ValueOf(vals[i])
			if !fv.Type().AssignableTo(rv.Field(f.index).Type()) {
				return treewire.Errf[any]("field %s: decoded %T is not assignable", f.name, vals[i])
			}
			rv.Field(f.index).Set(fv)
		}
		return treewire.Ok(rv.Interface())
	}
	group := treewire.GroupComponents(t.String(), build, comps)
	return anyCodec{
		dec: group.DecodeStart,
		enc: func(p treewire.TypeProvider, v any) treewire.Result[any] {
			return group.EncodeStart(p, p.Empty(), v)
		},
	}, nil
}

func (c component) asComponent() treewire.Component[any] {
	return treewire.Component[any]{
		Name: c.name,
		Decode: func(p treewire.TypeProvider, node any) treewire.Result[any] {
			return c.codec.dec(p, node)
		},
		Encode: func(p treewire.TypeProvider, v any) treewire.Result[any] {
			return c.codec.enc(p, v)
		},
		Get: func(r any) (res treewire.Result[any]) {
			defer func() {
				if p := recover(); p != nil {
					res = treewire.Errf[any]("accessor failed: %v", p)
				}
			}()
			rv := reflect.ValueOf(r)
			if rv.Kind() != reflect.Struct {
				return treewire.Errf[any]("value %v is not a struct", r)
			}
			return treewire.Ok(rv.Field(c.index).Interface())
		},
	}
}

// selectFields applies the tag rules: explicit mode when any `tree` tag is
// present, implicit mode over all exported fields otherwise.
func selectFields(t reflect.Type) ([]component, error) {
	tagged := false
	for i := 0; i < t.NumField(); i++ {
		if tag, ok := t.Field(i).Tag.Lookup("tree"); ok && tag != "-" && tag != "" {
			tagged = true
			break
		}
	}
	var fields []component
	seen := map[string]struct{}{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		tag, hasTag := f.Tag.Lookup("tree")
		if tag == "-" {
			continue
		}
		name := f.Name
		switch {
		case hasTag && tag != "":
			name = tag
		case tagged:
			continue // explicit mode: untagged fields are excluded
		}
		if _, dup := seen[name]; dup {
			return nil, errors.Errorf("automap: duplicate field name %q on %s", name, t)
		}
		seen[name] = struct{}{}
		fields = append(fields, component{name: name, index: i})
	}
	if len(fields) == 0 {
		return nil, errors.Errorf("automap: %s has no mappable fields", t)
	}
	if len(fields) > treewire.MaxGroupArity {
		return nil, errors.Errorf("automap: %s has %d components, the arity limit is %d",
			t, len(fields), treewire.MaxGroupArity)
	}
	return fields, nil
}

func ptrCodec(elemType reflect.Type, elem anyCodec) anyCodec {
	return anyCodec{
		dec: func(p treewire.TypeProvider, node any) treewire.Result[any] {
			if node == nil || p.IsNull(node) {
				return treewire.Ok[any](nil)
			}
			r := elem.dec(p, node)
			if r.IsErr() {
				return r
			}
			pv := reflect.New(elemType)
			if inner := r.Value(); inner != nil {
				pv.Elem().Set(reflect.ValueOf(inner))
			}
			return treewire.Ok[any](pv.Interface())
		},
		enc: func(p treewire.TypeProvider, v any) treewire.Result[any] {
			rv := reflect.ValueOf(v)
			if v == nil || (rv.Kind() == reflect.Pointer && rv.IsNil()) {
				return treewire.Ok(p.Null())
			}
			return elem.enc(p, rv.Elem().Interface())
		},
	}
}

func sliceCodec(t reflect.Type, elem anyCodec) anyCodec {
	return anyCodec{
		dec: func(p treewire.TypeProvider, node any) treewire.Result[any] {
			if node == nil || p.IsNull(node) {
				return treewire.Errf[any]("Unable to decode null value as %s", t)
			}
			items := p.AsList(node)
			if items.IsErr() {
				return treewire.Err[any](items.Error())
			}
			out := reflect.MakeSlice(t, 0, len(items.Value()))
			for i, item := range items.Value() {
				ev := elem.dec(p, item)
				if ev.IsErr() {
					return treewire.Errf[any]("element %d: %s", i, ev.Error())
				}
				out = reflect.Append(out, elemValue(t.Elem(), ev.Value()))
			}
			return treewire.Ok(out.Interface())
		},
		enc: func(p treewire.TypeProvider, v any) treewire.Result[any] {
			rv := reflect.ValueOf(v)
			if rv.Kind() != reflect.Slice {
				return treewire.Errf[any]("value %v is not a slice", v)
			}
			items := make([]any, 0, rv.Len())
			for i := 0; i < rv.Len(); i++ {
				ev := elem.enc(p, rv.Index(i).Interface())
				if ev.IsErr() {
					return treewire.Errf[any]("element %d: %s", i, ev.Error())
				}
				items = append(items, ev.Value())
			}
			return treewire.Ok(p.NewList(items))
		},
	}
}

func arrayCodec(t reflect.Type, elem anyCodec) anyCodec {
	n := t.Len()
	return anyCodec{
		dec: func(p treewire.TypeProvider, node any) treewire.Result[any] {
			if node == nil || p.IsNull(node) {
				return treewire.Errf[any]("Unable to decode null value as %s", t)
			}
			items := p.AsList(node)
			if items.IsErr() {
				return treewire.Err[any](items.Error())
			}
			if len(items.Value()) != n {
				return treewire.Errf[any]("array %s expects %d elements, node has %d", t, n, len(items.Value()))
			}
			out := reflect.New(t).Elem()
			for i, item := range items.Value() {
				ev := elem.dec(p, item)
				if ev.IsErr() {
					return treewire.Errf[any]("element %d: %s", i, ev.Error())
				}
				out.Index(i).Set(elemValue(t.Elem(), ev.Value()))
			}
			return treewire.Ok(out.Interface())
		},
		enc: func(p treewire.TypeProvider, v any) treewire.Result[any] {
			rv := reflect.ValueOf(v)
			if rv.Kind() != reflect.Array {
				return treewire.Errf[any]("value %v is not an array", v)
			}
			items := make([]any, 0, rv.Len())
			for i := 0; i < rv.Len(); i++ {
				ev := elem.enc(p, rv.Index(i).Interface())
				if ev.IsErr() {
					return treewire.Errf[any]("element %d: %s", i, ev.Error())
				}
				items = append(items, ev.Value())
			}
			return treewire.Ok(p.NewList(items))
		},
	}
}

func mapCodec(t reflect.Type, key, val anyCodec) anyCodec {
	return anyCodec{
		dec: func(p treewire.TypeProvider, node any) treewire.Result[any] {
			if node == nil || p.IsNull(node) {
				return treewire.Errf[any]("Unable to decode null value as %s", t)
			}
			names := p.Keys(node)
			if names.IsErr() {
				return treewire.Err[any](names.Error())
			}
			out := reflect.MakeMapWithSize(t, len(names.Value()))
			for _, name := range names.Value() {
				kr := key.decKey(name)
				if kr.IsErr() {
					return treewire.Errf[any]("key %q: %s", name, kr.Error())
				}
				child := p.Get(node, name)
				if child.IsErr() {
					return treewire.Err[any](child.Error())
				}
				vr := val.dec(p, child.Value())
				if vr.IsErr() {
					return treewire.Errf[any]("key %q: %s", name, vr.Error())
				}
				out.SetMapIndex(reflect.ValueOf(kr.Value()), elemValue(t.Elem(), vr.Value()))
			}
			return treewire.Ok(out.Interface())
		},
		enc: func(p treewire.TypeProvider, v any) treewire.Result[any] {
			rv := reflect.ValueOf(v)
			if rv.Kind() != reflect.Map {
				return treewire.Errf[any]("value %v is not a map", v)
			}
			type entry struct {
				name string
				key  reflect.Value
			}
			ordered := make([]entry, 0, rv.Len())
			iter := rv.MapRange()
			for iter.Next() {
				kr := key.encKey(iter.Key().Interface())
				if kr.IsErr() {
					return treewire.Err[any](kr.Error())
				}
				ordered = append(ordered, entry{name: kr.Value(), key: iter.Key()})
			}
			sortEntries(ordered, func(e entry) string { return e.name })
			obj := p.NewObject()
			for _, e := range ordered {
				vr := val.enc(p, rv.MapIndex(e.key).Interface())
				if vr.IsErr() {
					return treewire.Errf[any]("key %q: %s", e.name, vr.Error())
				}
				merged := p.Set(obj, e.name, vr.Value())
				if merged.IsErr() {
					return merged
				}
				obj = merged.Value()
			}
			return treewire.Ok(obj)
		},
	}
}

func sortEntries[E any](entries []E, key func(E) string) {
	sort.Slice(entries, func(i, j int) bool { return key(entries[i]) < key(entries[j]) })
}

// elemValue turns a boxed decode result into a settable value of the target
// type; a boxed nil means the typed zero value.
func elemValue(t reflect.Type, v any) reflect.Value {
	if v == nil {
		return reflect.Zero(t)
	}
	return reflect.ValueOf(v)
}
