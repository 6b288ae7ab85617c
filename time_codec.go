package treewire

import (
	"fmt"
	"time"
)

// TimeCodec carries time.Time as a canonical RFC3339 string on the wire.
type TimeCodec struct {
	leafCodec[time.Time]
}

// Time returns the time.Time codec. Encoding normalizes to UTC and formats
// with RFC3339Nano (trailing zeros trimmed); decoding accepts RFC3339 with or
// without fractional seconds.
func Time() TimeCodec {
	return TimeCodec{leafCodec[time.Time]{
		typeName: "time",
		dec: func(p TypeProvider, node any) Result[time.Time] {
			r := p.AsString(node)
			if r.IsErr() {
				return propagate[time.Time](r)
			}
			t, err := parseRFC3339(r.Value())
			if err != nil {
				return Errf[time.Time]("invalid RFC3339 time %q: %v", r.Value(), err)
			}
			return Ok(t)
		},
		enc: func(p TypeProvider, v time.Time) Result[any] {
			return Ok(p.FromString(formatRFC3339Canonical(v)))
		},
		toKey: func(v time.Time) Result[string] { return Ok(formatRFC3339Canonical(v)) },
		fromKey: func(key string) Result[time.Time] {
			t, err := parseRFC3339(key)
			if err != nil {
				return Errf[time.Time]("invalid time key %q", key)
			}
			return Ok(t)
		},
	}}
}

// Before requires the value to be strictly before limit.
func (c TimeCodec) Before(limit time.Time) TimeCodec {
	c.leafCodec = c.leafCodec.with(kindBefore, func(v time.Time) string {
		if !v.Before(limit) {
			return fmt.Sprintf("before constraint violated: %s is not before %s",
				formatRFC3339Canonical(v), formatRFC3339Canonical(limit))
		}
		return ""
	})
	return c
}

// After requires the value to be strictly after limit.
func (c TimeCodec) After(limit time.Time) TimeCodec {
	c.leafCodec = c.leafCodec.with(kindAfter, func(v time.Time) string {
		if !v.After(limit) {
			return fmt.Sprintf("after constraint violated: %s is not after %s",
				formatRFC3339Canonical(v), formatRFC3339Canonical(limit))
		}
		return ""
	})
	return c
}

// Whole requires the value to be exact on the given unit, e.g. Whole(time.Second)
// rejects timestamps with sub-second precision.
func (c TimeCodec) Whole(unit time.Duration) TimeCodec {
	c.leafCodec = c.leafCodec.with(kindWholeUnit, func(v time.Time) string {
		if !v.Truncate(unit).Equal(v) {
			return fmt.Sprintf("whole-unit constraint violated: %s is not aligned to %s",
				formatRFC3339Canonical(v), unit)
		}
		return ""
	})
	return c
}

// DurationCodec carries time.Duration in Go duration syntax ("1h30m") on the
// wire, with an integer-nanosecond fallback on decode.
type DurationCodec struct {
	leafCodec[time.Duration]
}

// Duration returns the time.Duration codec.
func Duration() DurationCodec {
	return DurationCodec{leafCodec[time.Duration]{
		typeName: "duration",
		dec: func(p TypeProvider, node any) Result[time.Duration] {
			if r := p.AsString(node); r.IsOk() {
				d, err := time.ParseDuration(r.Value())
				if err != nil {
					return Errf[time.Duration]("invalid duration %q: %v", r.Value(), err)
				}
				return Ok(d)
			}
			r := p.AsInt(node)
			if r.IsErr() {
				return propagate[time.Duration](r)
			}
			return Ok(time.Duration(r.Value()))
		},
		enc: func(p TypeProvider, v time.Duration) Result[any] {
			return Ok(p.FromString(v.String()))
		},
		toKey: func(v time.Duration) Result[string] { return Ok(v.String()) },
		fromKey: func(key string) Result[time.Duration] {
			d, err := time.ParseDuration(key)
			if err != nil {
				return Errf[time.Duration]("invalid duration key %q", key)
			}
			return Ok(d)
		},
	}}
}

// Min requires the duration to be at least lo.
func (c DurationCodec) Min(lo time.Duration) DurationCodec {
	c.leafCodec = c.leafCodec.with(kindMinDuration, func(v time.Duration) string {
		if v < lo {
			return fmt.Sprintf("minimum duration constraint violated: %s is shorter than %s", v, lo)
		}
		return ""
	})
	return c
}

// Max allows the duration to be at most hi.
func (c DurationCodec) Max(hi time.Duration) DurationCodec {
	c.leafCodec = c.leafCodec.with(kindMaxDuration, func(v time.Duration) string {
		if v > hi {
			return fmt.Sprintf("maximum duration constraint violated: %s is longer than %s", v, hi)
		}
		return ""
	})
	return c
}

// Whole requires the duration to be a multiple of unit.
func (c DurationCodec) Whole(unit time.Duration) DurationCodec {
	c.leafCodec = c.leafCodec.with(kindWholeUnit, func(v time.Duration) string {
		if unit > 0 && v%unit != 0 {
			return fmt.Sprintf("whole-unit constraint violated: %s is not a multiple of %s", v, unit)
		}
		return ""
	})
	return c
}

// parseRFC3339 accepts RFC3339Nano first since trailing zeros are optional.
func parseRFC3339(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		if t2, err2 := time.Parse(time.RFC3339, s); err2 == nil {
			return t2, nil
		}
		return time.Time{}, err
	}
	return t, nil
}

// formatRFC3339Canonical normalizes to UTC; RFC3339Nano trims trailing zeros.
func formatRFC3339Canonical(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
