package treewire_test

import (
	"strings"
	"testing"

	tw "github.com/treewire/treewire"
	"github.com/treewire/treewire/value"
)

func TestNullable(t *testing.T) {
	p := value.Provider()
	c := tw.Nullable[string](tw.String())

	node := c.EncodeStart(p, p.Empty(), nil)
	if node.IsErr() || !p.IsNull(node.Value()) {
		t.Fatalf("nil encode = %v, want null node", node)
	}
	back := c.DecodeStart(p, p.Null())
	if back.IsErr() || back.Value() != nil {
		t.Fatalf("null decode = %v, want nil", back)
	}

	s := "x"
	node = c.EncodeStart(p, p.Empty(), &s)
	if node.IsErr() {
		t.Fatalf("encode: %s", node.Error())
	}
	back = c.DecodeStart(p, node.Value())
	if back.IsErr() || back.Value() == nil || *back.Value() != "x" {
		t.Fatalf("decode = %v", back)
	}
}

func TestOptional(t *testing.T) {
	p := value.Provider()
	c := tw.Optional[int](tw.Int())

	// nil encodes as the provider's empty node so groups drop the field.
	node := c.EncodeStart(p, p.Empty(), nil)
	if node.IsErr() || !p.IsEmpty(node.Value()) {
		t.Fatalf("nil encode = %v, want empty node", node)
	}
	for _, absent := range []any{nil, p.Empty()} {
		if r := c.DecodeStart(p, absent); r.IsErr() || r.Value() != nil {
			t.Fatalf("decode(%v) = %v, want nil", absent, r)
		}
	}
}

func TestAnyPrefersDeclarationOrder(t *testing.T) {
	p := value.Provider()
	// Both alternatives accept "b"; the earlier one must win.
	first := tw.OneOf[string](tw.String(), "a", "b")
	second := tw.Xmap[string, string](tw.String(),
		func(s string) tw.Result[string] { return tw.Ok("second:" + s) },
		func(s string) tw.Result[string] { return tw.Ok(s) },
		"tagged")
	c := tw.Any[string](first, second)

	r := c.DecodeStart(p, "b")
	if r.IsErr() || r.Value() != "b" {
		t.Fatalf("decode = %v, want first alternative", r)
	}
	r = c.DecodeStart(p, "z")
	if r.IsErr() || r.Value() != "second:z" {
		t.Fatalf("decode = %v, want fallback alternative", r)
	}
}

func TestAnyAllFail(t *testing.T) {
	p := value.Provider()
	c := tw.Any[string](tw.String().MinLength(5), tw.String().Numeric())
	r := c.DecodeStart(p, "ab")
	if r.IsOk() {
		t.Fatalf("decode succeeded, want failure")
	}
	if !strings.Contains(r.Error(), "All codecs failed") {
		t.Fatalf("error = %q", r.Error())
	}
	// Both alternative messages are reported.
	if !strings.Contains(r.Error(), "minimum length") || !strings.Contains(r.Error(), "numeric") {
		t.Fatalf("error %q missing alternative details", r.Error())
	}
}

func TestAnyPanicsOnMisuse(t *testing.T) {
	assertPanics(t, func() { tw.Any[string](tw.String()) })
	assertPanics(t, func() { tw.Any[string](tw.String(), nil) })
}

func TestOneOf(t *testing.T) {
	p := value.Provider()
	c := tw.OneOf[string](tw.String(), "red", "green")

	if r := c.DecodeStart(p, "red"); r.IsErr() || r.Value() != "red" {
		t.Fatalf("decode = %v", r)
	}
	if r := c.DecodeStart(p, "blue"); r.IsOk() || !strings.Contains(r.Error(), "not a permitted literal") {
		t.Fatalf("decode = %v", r)
	}
	if r := c.EncodeStart(p, p.Empty(), "blue"); r.IsOk() {
		t.Fatalf("encode accepted unlisted literal")
	}
}

type suit int

const (
	hearts suit = iota
	spades
)

func suitCodec() tw.KeyableCodec[suit] {
	return tw.Enum[suit]("suit", "hearts", "spades")
}

func TestEnum(t *testing.T) {
	p := value.Provider()
	c := suitCodec()

	node := c.EncodeStart(p, p.Empty(), spades)
	if node.IsErr() {
		t.Fatalf("encode: %s", node.Error())
	}
	if s := p.AsString(node.Value()); s.IsErr() || s.Value() != "spades" {
		t.Fatalf("enum encodes as name, got %v", s)
	}

	if r := c.DecodeStart(p, "hearts"); r.IsErr() || r.Value() != hearts {
		t.Fatalf("decode by name = %v", r)
	}
	if r := c.DecodeStart(p, int64(1)); r.IsErr() || r.Value() != spades {
		t.Fatalf("decode by ordinal = %v", r)
	}
	if r := c.DecodeStart(p, "clubs"); r.IsOk() {
		t.Fatalf("decode accepted unknown name")
	}
	if r := c.DecodeStart(p, int64(9)); r.IsOk() {
		t.Fatalf("decode accepted out-of-range ordinal")
	}
	if r := c.EncodeStart(p, p.Empty(), suit(9)); r.IsOk() {
		t.Fatalf("encode accepted out-of-range value")
	}
}

type userID string

func TestXmap(t *testing.T) {
	p := value.Provider()
	c := tw.Xmap[string, userID](tw.String().NotBlank(),
		func(s string) tw.Result[userID] { return tw.Ok(userID(s)) },
		func(id userID) tw.Result[string] { return tw.Ok(string(id)) },
		"user-id")

	node := c.EncodeStart(p, p.Empty(), userID("u-1"))
	if node.IsErr() {
		t.Fatalf("encode: %s", node.Error())
	}
	back := c.DecodeStart(p, node.Value())
	if back.IsErr() || back.Value() != userID("u-1") {
		t.Fatalf("decode = %v", back)
	}
	// Base constraints still apply through the projection.
	if r := c.DecodeStart(p, "  "); r.IsOk() {
		t.Fatalf("blank accepted through Xmap")
	}
}

func assertPanics(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	fn()
}
