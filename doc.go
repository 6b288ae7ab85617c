// Package treewire converts typed Go values to and from structured node
// trees, independent of any one wire format.
//
// A Codec[T] pairs a Decoder and an Encoder over an abstract TypeProvider,
// the backend that knows how to build and inspect one concrete tree shape.
// The json, xml, yaml, value, and msgpack subpackages each supply a provider
// plus the byte boundary for their format; a codec written once runs against
// all of them.
//
// Built-in codecs cover booleans, strings, the integer and float widths,
// bytes, timestamps, durations, UUIDs, network addresses, URLs, locales, and
// more. Each carries chainable validation constraints:
//
//	port := treewire.Int().Range(1, 65535)
//	name := treewire.String().NotBlank().MaxLength(64)
//
// Constraints of the same family replace each other rather than stack, and
// minimum-style bounds are checked before maximum-style bounds.
//
// Structures compose from combinators (List, Set, Map, Nullable, Optional,
// Any, OneOf, Xmap) and from the Group1..Group16 record groupers:
//
//	type Person struct {
//		Name string
//		Age  int
//	}
//	codec := treewire.Group2(
//		func(name string, age int) Person { return Person{Name: name, Age: age} },
//		treewire.Field[string, Person]("name", treewire.String(), func(p Person) string { return p.Name }),
//		treewire.Field[int, Person]("age", treewire.Int(), func(p Person) int { return p.Age }),
//	)
//	data, err := json.Marshal(codec, Person{Name: "Ada", Age: 36})
//
// The automap subpackage derives such record codecs from struct types by
// reflection.
//
// Runtime failures travel as Result values, never panics: misusing a
// constructor (a nil codec, a duplicate field name) panics at construction
// time, while malformed input during encode or decode produces an error
// Result describing the offending field.
package treewire
