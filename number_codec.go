package treewire

import (
	"fmt"
	"strconv"
	"strings"
)

// Number covers the numeric types the engine ships codecs for.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// NumberCodec is a numeric codec together with its chaining constraint
// setters. Setters return a copy; the receiver is never mutated.
type NumberCodec[T Number] struct {
	leafCodec[T]
}

// Int returns the int codec.
func Int() NumberCodec[int] { return NumberCodec[int]{signedLeaf[int]("int", strconv.IntSize)} }

// Int8 returns the int8 codec.
func Int8() NumberCodec[int8] { return NumberCodec[int8]{signedLeaf[int8]("int8", 8)} }

// Int16 returns the int16 codec.
func Int16() NumberCodec[int16] { return NumberCodec[int16]{signedLeaf[int16]("int16", 16)} }

// Int32 returns the int32 codec.
func Int32() NumberCodec[int32] { return NumberCodec[int32]{signedLeaf[int32]("int32", 32)} }

// Int64 returns the int64 codec.
func Int64() NumberCodec[int64] { return NumberCodec[int64]{signedLeaf[int64]("int64", 64)} }

// Uint returns the uint codec.
func Uint() NumberCodec[uint] { return NumberCodec[uint]{unsignedLeaf[uint]("uint", strconv.IntSize)} }

// Uint8 returns the uint8 codec.
func Uint8() NumberCodec[uint8] { return NumberCodec[uint8]{unsignedLeaf[uint8]("uint8", 8)} }

// Uint16 returns the uint16 codec.
func Uint16() NumberCodec[uint16] { return NumberCodec[uint16]{unsignedLeaf[uint16]("uint16", 16)} }

// Uint32 returns the uint32 codec.
func Uint32() NumberCodec[uint32] { return NumberCodec[uint32]{unsignedLeaf[uint32]("uint32", 32)} }

// Uint64 returns the uint64 codec.
func Uint64() NumberCodec[uint64] { return NumberCodec[uint64]{unsignedLeaf[uint64]("uint64", 64)} }

// Float32 returns the float32 codec.
func Float32() NumberCodec[float32] { return NumberCodec[float32]{floatLeaf[float32]("float32")} }

// Float64 returns the float64 codec.
func Float64() NumberCodec[float64] { return NumberCodec[float64]{floatLeaf[float64]("float64")} }

func signedLeaf[T ~int | ~int8 | ~int16 | ~int32 | ~int64](typeName string, bits int) leafCodec[T] {
	return leafCodec[T]{
		typeName: typeName,
		dec: func(p TypeProvider, node any) Result[T] {
			r := p.AsInt(node)
			if r.IsErr() {
				return propagate[T](r)
			}
			i := r.Value()
			if bits < 64 && (i < -(int64(1)<<(bits-1)) || i > int64(1)<<(bits-1)-1) {
				return Errf[T]("%s overflow: %d", typeName, i)
			}
			return Ok(T(i))
		},
		enc: func(p TypeProvider, v T) Result[any] { return Ok(p.FromInt(int64(v))) },
		toKey: func(v T) Result[string] {
			return Ok(strconv.FormatInt(int64(v), 10))
		},
		fromKey: func(key string) Result[T] {
			i, err := strconv.ParseInt(key, 10, bits)
			if err != nil {
				return Errf[T]("invalid %s key %q", typeName, key)
			}
			return Ok(T(i))
		},
	}
}

func unsignedLeaf[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64](typeName string, bits int) leafCodec[T] {
	return leafCodec[T]{
		typeName: typeName,
		dec: func(p TypeProvider, node any) Result[T] {
			r := p.AsUint(node)
			if r.IsErr() {
				return propagate[T](r)
			}
			u := r.Value()
			if bits < 64 && u > uint64(1)<<bits-1 {
				return Errf[T]("%s overflow: %d", typeName, u)
			}
			return Ok(T(u))
		},
		enc: func(p TypeProvider, v T) Result[any] { return Ok(p.FromUint(uint64(v))) },
		toKey: func(v T) Result[string] {
			return Ok(strconv.FormatUint(uint64(v), 10))
		},
		fromKey: func(key string) Result[T] {
			u, err := strconv.ParseUint(key, 10, bits)
			if err != nil {
				return Errf[T]("invalid %s key %q", typeName, key)
			}
			return Ok(T(u))
		},
	}
}

func floatLeaf[T ~float32 | ~float64](typeName string) leafCodec[T] {
	bits := 64
	if typeName == "float32" {
		bits = 32
	}
	return leafCodec[T]{
		typeName: typeName,
		dec: func(p TypeProvider, node any) Result[T] {
			r := p.AsFloat(node)
			if r.IsErr() {
				return propagate[T](r)
			}
			return Ok(T(r.Value()))
		},
		enc: func(p TypeProvider, v T) Result[any] { return Ok(p.FromFloat(float64(v))) },
		toKey: func(v T) Result[string] {
			return Ok(strconv.FormatFloat(float64(v), 'g', -1, bits))
		},
		fromKey: func(key string) Result[T] {
			f, err := strconv.ParseFloat(key, bits)
			if err != nil {
				return Errf[T]("invalid %s key %q", typeName, key)
			}
			return Ok(T(f))
		},
	}
}

// Min requires the value to be at least lo.
func (c NumberCodec[T]) Min(lo T) NumberCodec[T] {
	c.leafCodec = c.leafCodec.with(kindMinValue, func(v T) string {
		if v < lo {
			return fmt.Sprintf("minimum value constraint violated: %v is less than %v", v, lo)
		}
		return ""
	})
	return c
}

// Max allows the value to be at most hi.
func (c NumberCodec[T]) Max(hi T) NumberCodec[T] {
	c.leafCodec = c.leafCodec.with(kindMaxValue, func(v T) string {
		if v > hi {
			return fmt.Sprintf("maximum value constraint violated: %v exceeds %v", v, hi)
		}
		return ""
	})
	return c
}

// Range bounds the value to [lo, hi]. It is the simultaneous application of
// Min(lo) and Max(hi).
func (c NumberCodec[T]) Range(lo, hi T) NumberCodec[T] { return c.Min(lo).Max(hi) }

// Positive requires the value to be greater than zero.
func (c NumberCodec[T]) Positive() NumberCodec[T] {
	c.leafCodec = c.leafCodec.with(kindSign, func(v T) string {
		if v <= 0 {
			return fmt.Sprintf("positive constraint violated: %v is not positive", v)
		}
		return ""
	})
	return c
}

// PositiveOrZero requires the value to be at least zero.
func (c NumberCodec[T]) PositiveOrZero() NumberCodec[T] {
	c.leafCodec = c.leafCodec.with(kindSign, func(v T) string {
		if v < 0 {
			return fmt.Sprintf("positive-or-zero constraint violated: %v is negative", v)
		}
		return ""
	})
	return c
}

// Negative requires the value to be less than zero.
func (c NumberCodec[T]) Negative() NumberCodec[T] {
	c.leafCodec = c.leafCodec.with(kindSign, func(v T) string {
		if v >= 0 {
			return fmt.Sprintf("negative constraint violated: %v is not negative", v)
		}
		return ""
	})
	return c
}

// NegativeOrZero requires the value to be at most zero.
func (c NumberCodec[T]) NegativeOrZero() NumberCodec[T] {
	c.leafCodec = c.leafCodec.with(kindSign, func(v T) string {
		if v > 0 {
			return fmt.Sprintf("negative-or-zero constraint violated: %v is positive", v)
		}
		return ""
	})
	return c
}

// MaxPrecision allows at most n significant decimal digits.
func (c NumberCodec[T]) MaxPrecision(n int) NumberCodec[T] {
	c.leafCodec = c.leafCodec.with(kindPrecision, func(v T) string {
		if got := decimalPrecision(float64(v)); got > n {
			return fmt.Sprintf("precision constraint violated: %v has %d significant digits, limit is %d", v, got, n)
		}
		return ""
	})
	return c
}

// MaxScale allows at most n digits after the decimal point.
func (c NumberCodec[T]) MaxScale(n int) NumberCodec[T] {
	c.leafCodec = c.leafCodec.with(kindScale, func(v T) string {
		if got := decimalScale(float64(v)); got > n {
			return fmt.Sprintf("scale constraint violated: %v has %d decimal places, limit is %d", v, got, n)
		}
		return ""
	})
	return c
}

func decimalDigits(f float64) (precision, scale int) {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	s = strings.TrimPrefix(s, "-")
	whole, frac, _ := strings.Cut(s, ".")
	whole = strings.TrimLeft(whole, "0")
	return len(whole) + len(frac), len(frac)
}

func decimalPrecision(f float64) int { p, _ := decimalDigits(f); return p }

func decimalScale(f float64) int { _, s := decimalDigits(f); return s }
