package treewire

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// StringCodec is the string codec together with its chaining constraint
// setters. Setters return a copy; the receiver is never mutated.
type StringCodec struct {
	leafCodec[string]
}

// String returns the string codec.
func String() StringCodec {
	return StringCodec{leafCodec[string]{
		typeName: "string",
		dec:      func(p TypeProvider, node any) Result[string] { return p.AsString(node) },
		enc:      func(p TypeProvider, v string) Result[any] { return Ok(p.FromString(v)) },
		toKey:    func(v string) Result[string] { return Ok(v) },
		fromKey:  func(key string) Result[string] { return Ok(key) },
	}}
}

// MinLength requires at least n characters.
func (c StringCodec) MinLength(n int) StringCodec {
	c.leafCodec = c.leafCodec.with(kindMinLength, func(v string) string {
		if got := len([]rune(v)); got < n {
			return fmt.Sprintf("minimum length constraint violated: length %d is less than %d", got, n)
		}
		return ""
	})
	return c
}

// MaxLength allows at most n characters.
func (c StringCodec) MaxLength(n int) StringCodec {
	c.leafCodec = c.leafCodec.with(kindMaxLength, func(v string) string {
		if got := len([]rune(v)); got > n {
			return fmt.Sprintf("maximum length constraint violated: length %d exceeds %d", got, n)
		}
		return ""
	})
	return c
}

// ExactLength requires exactly n characters. It is the simultaneous
// application of MinLength(n) and MaxLength(n).
func (c StringCodec) ExactLength(n int) StringCodec {
	return c.MinLength(n).MaxLength(n)
}

// Pattern requires the value to match re.
func (c StringCodec) Pattern(re *regexp.Regexp) StringCodec {
	c.leafCodec = c.leafCodec.with(kindPattern, func(v string) string {
		if !re.MatchString(v) {
			return fmt.Sprintf("pattern constraint violated: %q does not match %s", v, re)
		}
		return ""
	})
	return c
}

// Matches compiles expr and requires the value to match it. It panics on an
// invalid expression, mirroring regexp.MustCompile.
func (c StringCodec) Matches(expr string) StringCodec {
	return c.Pattern(regexp.MustCompile(expr))
}

// Lowercase requires the value to contain no upper-case characters.
func (c StringCodec) Lowercase() StringCodec {
	c.leafCodec = c.leafCodec.with(kindCase, func(v string) string {
		if v != strings.ToLower(v) {
			return fmt.Sprintf("lowercase constraint violated: %q contains upper-case characters", v)
		}
		return ""
	})
	return c
}

// Uppercase requires the value to contain no lower-case characters.
func (c StringCodec) Uppercase() StringCodec {
	c.leafCodec = c.leafCodec.with(kindCase, func(v string) string {
		if v != strings.ToUpper(v) {
			return fmt.Sprintf("uppercase constraint violated: %q contains lower-case characters", v)
		}
		return ""
	})
	return c
}

// NotBlank rejects empty and whitespace-only values.
func (c StringCodec) NotBlank() StringCodec {
	c.leafCodec = c.leafCodec.with(kindBlank, func(v string) string {
		if strings.TrimSpace(v) == "" {
			return "not-blank constraint violated: value is blank"
		}
		return ""
	})
	return c
}

// Contains requires sub to occur in the value.
func (c StringCodec) Contains(sub string) StringCodec {
	c.leafCodec = c.leafCodec.with(kindContains, func(v string) string {
		if !strings.Contains(v, sub) {
			return fmt.Sprintf("contains constraint violated: %q does not contain %q", v, sub)
		}
		return ""
	})
	return c
}

// StartsWith requires the value to begin with prefix.
func (c StringCodec) StartsWith(prefix string) StringCodec {
	c.leafCodec = c.leafCodec.with(kindPrefix, func(v string) string {
		if !strings.HasPrefix(v, prefix) {
			return fmt.Sprintf("prefix constraint violated: %q does not start with %q", v, prefix)
		}
		return ""
	})
	return c
}

// EndsWith requires the value to end with suffix.
func (c StringCodec) EndsWith(suffix string) StringCodec {
	c.leafCodec = c.leafCodec.with(kindSuffix, func(v string) string {
		if !strings.HasSuffix(v, suffix) {
			return fmt.Sprintf("suffix constraint violated: %q does not end with %q", v, suffix)
		}
		return ""
	})
	return c
}

// Alphabetic requires every character to be a letter.
func (c StringCodec) Alphabetic() StringCodec {
	c.leafCodec = c.leafCodec.with(kindCharClass, charClass("alphabetic", unicode.IsLetter))
	return c
}

// Alphanumeric requires every character to be a letter or digit.
func (c StringCodec) Alphanumeric() StringCodec {
	c.leafCodec = c.leafCodec.with(kindCharClass, charClass("alphanumeric", func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	}))
	return c
}

// Numeric requires every character to be a digit.
func (c StringCodec) Numeric() StringCodec {
	c.leafCodec = c.leafCodec.with(kindCharClass, charClass("numeric", unicode.IsDigit))
	return c
}

// ASCII requires every character to be 7-bit ASCII.
func (c StringCodec) ASCII() StringCodec {
	c.leafCodec = c.leafCodec.with(kindCharClass, charClass("ascii", func(r rune) bool {
		return r <= unicode.MaxASCII
	}))
	return c
}

func charClass(name string, pred func(rune) bool) func(string) string {
	return func(v string) string {
		for _, r := range v {
			if !pred(r) {
				return fmt.Sprintf("%s character class constraint violated: %q is not allowed", name, r)
			}
		}
		return ""
	}
}
