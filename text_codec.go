package treewire

import (
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/language"
)

// Locale returns a codec for BCP 47 language tags ("en-US", "ja").
func Locale() KeyableCodec[language.Tag] {
	return leafCodec[language.Tag]{
		typeName: "locale",
		dec: func(p TypeProvider, node any) Result[language.Tag] {
			r := p.AsString(node)
			if r.IsErr() {
				return propagate[language.Tag](r)
			}
			tag, err := language.Parse(r.Value())
			if err != nil {
				return Errf[language.Tag]("invalid locale %q: %v", r.Value(), err)
			}
			return Ok(tag)
		},
		enc:   func(p TypeProvider, v language.Tag) Result[any] { return Ok(p.FromString(v.String())) },
		toKey: func(v language.Tag) Result[string] { return Ok(v.String()) },
		fromKey: func(key string) Result[language.Tag] {
			tag, err := language.Parse(key)
			if err != nil {
				return Errf[language.Tag]("invalid locale key %q", key)
			}
			return Ok(tag)
		},
	}
}

// Zone returns a codec for IANA time zones ("Europe/Berlin", "UTC").
func Zone() Codec[*time.Location] {
	return leafCodec[*time.Location]{
		typeName: "zone",
		dec: func(p TypeProvider, node any) Result[*time.Location] {
			r := p.AsString(node)
			if r.IsErr() {
				return propagate[*time.Location](r)
			}
			loc, err := time.LoadLocation(r.Value())
			if err != nil {
				return Errf[*time.Location]("invalid zone %q: %v", r.Value(), err)
			}
			return Ok(loc)
		},
		enc: func(p TypeProvider, v *time.Location) Result[any] {
			if v == nil {
				return errEncodeNull[any]("zone")
			}
			return Ok(p.FromString(v.String()))
		},
	}
}

// Charset returns a codec for IANA character set names ("UTF-8",
// "ISO-8859-1").
func Charset() Codec[encoding.Encoding] {
	return leafCodec[encoding.Encoding]{
		typeName: "charset",
		dec: func(p TypeProvider, node any) Result[encoding.Encoding] {
			r := p.AsString(node)
			if r.IsErr() {
				return propagate[encoding.Encoding](r)
			}
			enc, err := ianaindex.IANA.Encoding(r.Value())
			if err != nil || enc == nil {
				return Errf[encoding.Encoding]("unknown charset %q", r.Value())
			}
			return Ok(enc)
		},
		enc: func(p TypeProvider, v encoding.Encoding) Result[any] {
			if v == nil {
				return errEncodeNull[any]("charset")
			}
			name, err := ianaindex.IANA.Name(v)
			if err != nil {
				return Errf[any]("charset has no IANA name: %v", err)
			}
			return Ok(p.FromString(name))
		},
	}
}
