package treewire

// Group1 through Group16 combine configured field codecs with a constructing
// function into a record codec. Decoding invokes ctor only when every field
// decoded; otherwise the first field error is returned.

// Group1 builds a record codec from one field.
func Group1[R, T1 any](ctor func(T1) R,
	f1 ConfiguredCodec[T1, R],
) Codec[R] {
	return GroupComponents("object", func(vs []any) Result[R] {
		return Ok(ctor(vs[0].(T1)))
	}, []Component[R]{f1.component()})
}

// Group2 builds a record codec from 2 fields.
func Group2[R, T1, T2 any](ctor func(T1, T2) R,
	f1 ConfiguredCodec[T1, R],
	f2 ConfiguredCodec[T2, R],
) Codec[R] {
	return GroupComponents("object", func(vs []any) Result[R] {
		return Ok(ctor(vs[0].(T1), vs[1].(T2)))
	}, []Component[R]{f1.component(), f2.component()})
}

// Group3 builds a record codec from 3 fields.
func Group3[R, T1, T2, T3 any](ctor func(T1, T2, T3) R,
	f1 ConfiguredCodec[T1, R],
	f2 ConfiguredCodec[T2, R],
	f3 ConfiguredCodec[T3, R],
) Codec[R] {
	return GroupComponents("object", func(vs []any) Result[R] {
		return Ok(ctor(vs[0].(T1), vs[1].(T2), vs[2].(T3)))
	}, []Component[R]{f1.component(), f2.component(), f3.component()})
}

// Group4 builds a record codec from 4 fields.
func Group4[R, T1, T2, T3, T4 any](ctor func(T1, T2, T3, T4) R,
	f1 ConfiguredCodec[T1, R],
	f2 ConfiguredCodec[T2, R],
	f3 ConfiguredCodec[T3, R],
	f4 ConfiguredCodec[T4, R],
) Codec[R] {
	return GroupComponents("object", func(vs []any) Result[R] {
		return Ok(ctor(vs[0].(T1), vs[1].(T2), vs[2].(T3), vs[3].(T4)))
	}, []Component[R]{f1.component(), f2.component(), f3.component(), f4.component()})
}

// Group5 builds a record codec from 5 fields.
func Group5[R, T1, T2, T3, T4, T5 any](ctor func(T1, T2, T3, T4, T5) R,
	f1 ConfiguredCodec[T1, R],
	f2 ConfiguredCodec[T2, R],
	f3 ConfiguredCodec[T3, R],
	f4 ConfiguredCodec[T4, R],
	f5 ConfiguredCodec[T5, R],
) Codec[R] {
	return GroupComponents("object", func(vs []any) Result[R] {
		return Ok(ctor(vs[0].(T1), vs[1].(T2), vs[2].(T3), vs[3].(T4), vs[4].(T5)))
	}, []Component[R]{f1.component(), f2.component(), f3.component(), f4.component(), f5.component()})
}

// Group6 builds a record codec from 6 fields.
func Group6[R, T1, T2, T3, T4, T5, T6 any](ctor func(T1, T2, T3, T4, T5, T6) R,
	f1 ConfiguredCodec[T1, R],
	f2 ConfiguredCodec[T2, R],
	f3 ConfiguredCodec[T3, R],
	f4 ConfiguredCodec[T4, R],
	f5 ConfiguredCodec[T5, R],
	f6 ConfiguredCodec[T6, R],
) Codec[R] {
	return GroupComponents("object", func(vs []any) Result[R] {
		return Ok(ctor(vs[0].(T1), vs[1].(T2), vs[2].(T3), vs[3].(T4), vs[4].(T5), vs[5].(T6)))
	}, []Component[R]{f1.component(), f2.component(), f3.component(), f4.component(), f5.component(), f6.component()})
}

// Group7 builds a record codec from 7 fields.
func Group7[R, T1, T2, T3, T4, T5, T6, T7 any](ctor func(T1, T2, T3, T4, T5, T6, T7) R,
	f1 ConfiguredCodec[T1, R],
	f2 ConfiguredCodec[T2, R],
	f3 ConfiguredCodec[T3, R],
	f4 ConfiguredCodec[T4, R],
	f5 ConfiguredCodec[T5, R],
	f6 ConfiguredCodec[T6, R],
	f7 ConfiguredCodec[T7, R],
) Codec[R] {
	return GroupComponents("object", func(vs []any) Result[R] {
		return Ok(ctor(vs[0].(T1), vs[1].(T2), vs[2].(T3), vs[3].(T4), vs[4].(T5), vs[5].(T6), vs[6].(T7)))
	}, []Component[R]{f1.component(), f2.component(), f3.component(), f4.component(), f5.component(), f6.component(), f7.component()})
}

// Group8 builds a record codec from 8 fields.
func Group8[R, T1, T2, T3, T4, T5, T6, T7, T8 any](ctor func(T1, T2, T3, T4, T5, T6, T7, T8) R,
	f1 ConfiguredCodec[T1, R],
	f2 ConfiguredCodec[T2, R],
	f3 ConfiguredCodec[T3, R],
	f4 ConfiguredCodec[T4, R],
	f5 ConfiguredCodec[T5, R],
	f6 ConfiguredCodec[T6, R],
	f7 ConfiguredCodec[T7, R],
	f8 ConfiguredCodec[T8, R],
) Codec[R] {
	return GroupComponents("object", func(vs []any) Result[R] {
		return Ok(ctor(vs[0].(T1), vs[1].(T2), vs[2].(T3), vs[3].(T4), vs[4].(T5), vs[5].(T6), vs[6].(T7), vs[7].(T8)))
	}, []Component[R]{f1.component(), f2.component(), f3.component(), f4.component(), f5.component(), f6.component(), f7.component(), f8.component()})
}

// Group9 builds a record codec from 9 fields.
func Group9[R, T1, T2, T3, T4, T5, T6, T7, T8, T9 any](ctor func(T1, T2, T3, T4, T5, T6, T7, T8, T9) R,
	f1 ConfiguredCodec[T1, R],
	f2 ConfiguredCodec[T2, R],
	f3 ConfiguredCodec[T3, R],
	f4 ConfiguredCodec[T4, R],
	f5 ConfiguredCodec[T5, R],
	f6 ConfiguredCodec[T6, R],
	f7 ConfiguredCodec[T7, R],
	f8 ConfiguredCodec[T8, R],
	f9 ConfiguredCodec[T9, R],
) Codec[R] {
	return GroupComponents("object", func(vs []any) Result[R] {
		return Ok(ctor(vs[0].(T1), vs[1].(T2), vs[2].(T3), vs[3].(T4), vs[4].(T5), vs[5].(T6), vs[6].(T7), vs[7].(T8), vs[8].(T9)))
	}, []Component[R]{f1.component(), f2.component(), f3.component(), f4.component(), f5.component(), f6.component(), f7.component(), f8.component(), f9.component()})
}

// Group10 builds a record codec from 10 fields.
func Group10[R, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any](ctor func(T1, T2, T3, T4, T5, T6, T7, T8, T9, T10) R,
	f1 ConfiguredCodec[T1, R],
	f2 ConfiguredCodec[T2, R],
	f3 ConfiguredCodec[T3, R],
	f4 ConfiguredCodec[T4, R],
	f5 ConfiguredCodec[T5, R],
	f6 ConfiguredCodec[T6, R],
	f7 ConfiguredCodec[T7, R],
	f8 ConfiguredCodec[T8, R],
	f9 ConfiguredCodec[T9, R],
	f10 ConfiguredCodec[T10, R],
) Codec[R] {
	return GroupComponents("object", func(vs []any) Result[R] {
		return Ok(ctor(vs[0].(T1), vs[1].(T2), vs[2].(T3), vs[3].(T4), vs[4].(T5), vs[5].(T6), vs[6].(T7), vs[7].(T8), vs[8].(T9), vs[9].(T10)))
	}, []Component[R]{f1.component(), f2.component(), f3.component(), f4.component(), f5.component(), f6.component(), f7.component(), f8.component(), f9.component(), f10.component()})
}

// Group11 builds a record codec from 11 fields.
func Group11[R, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11 any](ctor func(T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11) R,
	f1 ConfiguredCodec[T1, R],
	f2 ConfiguredCodec[T2, R],
	f3 ConfiguredCodec[T3, R],
	f4 ConfiguredCodec[T4, R],
	f5 ConfiguredCodec[T5, R],
	f6 ConfiguredCodec[T6, R],
	f7 ConfiguredCodec[T7, R],
	f8 ConfiguredCodec[T8, R],
	f9 ConfiguredCodec[T9, R],
	f10 ConfiguredCodec[T10, R],
	f11 ConfiguredCodec[T11, R],
) Codec[R] {
	return GroupComponents("object", func(vs []any) Result[R] {
		return Ok(ctor(vs[0].(T1), vs[1].(T2), vs[2].(T3), vs[3].(T4), vs[4].(T5), vs[5].(T6), vs[6].(T7), vs[7].(T8), vs[8].(T9), vs[9].(T10), vs[10].(T11)))
	}, []Component[R]{f1.component(), f2.component(), f3.component(), f4.component(), f5.component(), f6.component(), f7.component(), f8.component(), f9.component(), f10.component(), f11.component()})
}

// Group12 builds a record codec from 12 fields.
func Group12[R, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12 any](ctor func(T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12) R,
	f1 ConfiguredCodec[T1, R],
	f2 ConfiguredCodec[T2, R],
	f3 ConfiguredCodec[T3, R],
	f4 ConfiguredCodec[T4, R],
	f5 ConfiguredCodec[T5, R],
	f6 ConfiguredCodec[T6, R],
	f7 ConfiguredCodec[T7, R],
	f8 ConfiguredCodec[T8, R],
	f9 ConfiguredCodec[T9, R],
	f10 ConfiguredCodec[T10, R],
	f11 ConfiguredCodec[T11, R],
	f12 ConfiguredCodec[T12, R],
) Codec[R] {
	return GroupComponents("object", func(vs []any) Result[R] {
		return Ok(ctor(vs[0].(T1), vs[1].(T2), vs[2].(T3), vs[3].(T4), vs[4].(T5), vs[5].(T6), vs[6].(T7), vs[7].(T8), vs[8].(T9), vs[9].(T10), vs[10].(T11), vs[11].(T12)))
	}, []Component[R]{f1.component(), f2.component(), f3.component(), f4.component(), f5.component(), f6.component(), f7.component(), f8.component(), f9.component(), f10.component(), f11.component(), f12.component()})
}

// Group13 builds a record codec from 13 fields.
func Group13[R, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13 any](ctor func(T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13) R,
	f1 ConfiguredCodec[T1, R],
	f2 ConfiguredCodec[T2, R],
	f3 ConfiguredCodec[T3, R],
	f4 ConfiguredCodec[T4, R],
	f5 ConfiguredCodec[T5, R],
	f6 ConfiguredCodec[T6, R],
	f7 ConfiguredCodec[T7, R],
	f8 ConfiguredCodec[T8, R],
	f9 ConfiguredCodec[T9, R],
	f10 ConfiguredCodec[T10, R],
	f11 ConfiguredCodec[T11, R],
	f12 ConfiguredCodec[T12, R],
	f13 ConfiguredCodec[T13, R],
) Codec[R] {
	return GroupComponents("object", func(vs []any) Result[R] {
		return Ok(ctor(vs[0].(T1), vs[1].(T2), vs[2].(T3), vs[3].(T4), vs[4].(T5), vs[5].(T6), vs[6].(T7), vs[7].(T8), vs[8].(T9), vs[9].(T10), vs[10].(T11), vs[11].(T12), vs[12].(T13)))
	}, []Component[R]{f1.component(), f2.component(), f3.component(), f4.component(), f5.component(), f6.component(), f7.component(), f8.component(), f9.component(), f10.component(), f11.component(), f12.component(), f13.component()})
}

// Group14 builds a record codec from 14 fields.
func Group14[R, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14 any](ctor func(T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14) R,
	f1 ConfiguredCodec[T1, R],
	f2 ConfiguredCodec[T2, R],
	f3 ConfiguredCodec[T3, R],
	f4 ConfiguredCodec[T4, R],
	f5 ConfiguredCodec[T5, R],
	f6 ConfiguredCodec[T6, R],
	f7 ConfiguredCodec[T7, R],
	f8 ConfiguredCodec[T8, R],
	f9 ConfiguredCodec[T9, R],
	f10 ConfiguredCodec[T10, R],
	f11 ConfiguredCodec[T11, R],
	f12 ConfiguredCodec[T12, R],
	f13 ConfiguredCodec[T13, R],
	f14 ConfiguredCodec[T14, R],
) Codec[R] {
	return GroupComponents("object", func(vs []any) Result[R] {
		return Ok(ctor(vs[0].(T1), vs[1].(T2), vs[2].(T3), vs[3].(T4), vs[4].(T5), vs[5].(T6), vs[6].(T7), vs[7].(T8), vs[8].(T9), vs[9].(T10), vs[10].(T11), vs[11].(T12), vs[12].(T13), vs[13].(T14)))
	}, []Component[R]{f1.component(), f2.component(), f3.component(), f4.component(), f5.component(), f6.component(), f7.component(), f8.component(), f9.component(), f10.component(), f11.component(), f12.component(), f13.component(), f14.component()})
}

// Group15 builds a record codec from 15 fields.
func Group15[R, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15 any](ctor func(T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15) R,
	f1 ConfiguredCodec[T1, R],
	f2 ConfiguredCodec[T2, R],
	f3 ConfiguredCodec[T3, R],
	f4 ConfiguredCodec[T4, R],
	f5 ConfiguredCodec[T5, R],
	f6 ConfiguredCodec[T6, R],
	f7 ConfiguredCodec[T7, R],
	f8 ConfiguredCodec[T8, R],
	f9 ConfiguredCodec[T9, R],
	f10 ConfiguredCodec[T10, R],
	f11 ConfiguredCodec[T11, R],
	f12 ConfiguredCodec[T12, R],
	f13 ConfiguredCodec[T13, R],
	f14 ConfiguredCodec[T14, R],
	f15 ConfiguredCodec[T15, R],
) Codec[R] {
	return GroupComponents("object", func(vs []any) Result[R] {
		return Ok(ctor(vs[0].(T1), vs[1].(T2), vs[2].(T3), vs[3].(T4), vs[4].(T5), vs[5].(T6), vs[6].(T7), vs[7].(T8), vs[8].(T9), vs[9].(T10), vs[10].(T11), vs[11].(T12), vs[12].(T13), vs[13].(T14), vs[14].(T15)))
	}, []Component[R]{f1.component(), f2.component(), f3.component(), f4.component(), f5.component(), f6.component(), f7.component(), f8.component(), f9.component(), f10.component(), f11.component(), f12.component(), f13.component(), f14.component(), f15.component()})
}

// Group16 builds a record codec from 16 fields.
func Group16[R, T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15, T16 any](ctor func(T1, T2, T3, T4, T5, T6, T7, T8, T9, T10, T11, T12, T13, T14, T15, T16) R,
	f1 ConfiguredCodec[T1, R],
	f2 ConfiguredCodec[T2, R],
	f3 ConfiguredCodec[T3, R],
	f4 ConfiguredCodec[T4, R],
	f5 ConfiguredCodec[T5, R],
	f6 ConfiguredCodec[T6, R],
	f7 ConfiguredCodec[T7, R],
	f8 ConfiguredCodec[T8, R],
	f9 ConfiguredCodec[T9, R],
	f10 ConfiguredCodec[T10, R],
	f11 ConfiguredCodec[T11, R],
	f12 ConfiguredCodec[T12, R],
	f13 ConfiguredCodec[T13, R],
	f14 ConfiguredCodec[T14, R],
	f15 ConfiguredCodec[T15, R],
	f16 ConfiguredCodec[T16, R],
) Codec[R] {
	return GroupComponents("object", func(vs []any) Result[R] {
		return Ok(ctor(vs[0].(T1), vs[1].(T2), vs[2].(T3), vs[3].(T4), vs[4].(T5), vs[5].(T6), vs[6].(T7), vs[7].(T8), vs[8].(T9), vs[9].(T10), vs[10].(T11), vs[11].(T12), vs[12].(T13), vs[13].(T14), vs[14].(T15), vs[15].(T16)))
	}, []Component[R]{f1.component(), f2.component(), f3.component(), f4.component(), f5.component(), f6.component(), f7.component(), f8.component(), f9.component(), f10.component(), f11.component(), f12.component(), f13.component(), f14.component(), f15.component(), f16.component()})
}
