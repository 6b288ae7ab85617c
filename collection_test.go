package treewire_test

import (
	"reflect"
	"strings"
	"testing"

	tw "github.com/treewire/treewire"
	"github.com/treewire/treewire/value"
)

func TestListRoundTrip(t *testing.T) {
	p := value.Provider()
	c := tw.List[int](tw.Int())

	node := c.EncodeStart(p, p.Empty(), []int{1, 2, 3})
	if node.IsErr() {
		t.Fatalf("encode: %s", node.Error())
	}
	back := c.DecodeStart(p, node.Value())
	if back.IsErr() || !reflect.DeepEqual(back.Value(), []int{1, 2, 3}) {
		t.Fatalf("decode = %v", back)
	}
}

func TestListConstraintsAndElementErrors(t *testing.T) {
	p := value.Provider()
	c := tw.List[int](tw.Int().Positive()).MinLength(2).MaxLength(3)

	if r := c.DecodeStart(p, []any{int64(1)}); r.IsOk() || !strings.Contains(r.Error(), "minimum length constraint") {
		t.Fatalf("short list = %v", r)
	}
	if r := c.DecodeStart(p, []any{int64(1), int64(2), int64(3), int64(4)}); r.IsOk() || !strings.Contains(r.Error(), "maximum length constraint") {
		t.Fatalf("long list = %v", r)
	}
	r := c.DecodeStart(p, []any{int64(1), int64(-2)})
	if r.IsOk() || !strings.Contains(r.Error(), "element 1:") {
		t.Fatalf("element error = %v", r)
	}

	if r := c.DecodeStart(p, nil); !strings.Contains(r.Error(), "Unable to decode null value as list") {
		t.Fatalf("null decode = %v", r)
	}
}

func TestSetRoundTripAndDuplicates(t *testing.T) {
	p := value.Provider()
	c := tw.Set[string](tw.String())

	in := map[string]struct{}{"b": {}, "a": {}}
	node := c.EncodeStart(p, p.Empty(), in)
	if node.IsErr() {
		t.Fatalf("encode: %s", node.Error())
	}
	// Deterministic order: elements sorted by key form.
	list, _ := p.AsList(node.Value()).Get()
	if len(list) != 2 || list[0] != "a" || list[1] != "b" {
		t.Fatalf("encoded order = %v", list)
	}

	back := c.DecodeStart(p, node.Value())
	if back.IsErr() || !reflect.DeepEqual(back.Value(), in) {
		t.Fatalf("decode = %v", back)
	}

	if r := c.DecodeStart(p, []any{"a", "a"}); r.IsOk() || !strings.Contains(r.Error(), "duplicate set element") {
		t.Fatalf("duplicate = %v", r)
	}
	if r := c.MinSize(3).DecodeStart(p, []any{"a"}); r.IsOk() || !strings.Contains(r.Error(), "minimum size constraint") {
		t.Fatalf("min size = %v", r)
	}
}

func TestMapRoundTrip(t *testing.T) {
	p := value.Provider()
	c := tw.Map[int, string](tw.Int(), tw.String())

	in := map[int]string{2: "two", 10: "ten"}
	node := c.EncodeStart(p, p.Empty(), in)
	if node.IsErr() {
		t.Fatalf("encode: %s", node.Error())
	}
	// Non-string keys travel through their key form.
	ten := c.DecodeStart(p, node.Value())
	if ten.IsErr() || !reflect.DeepEqual(ten.Value(), in) {
		t.Fatalf("decode = %v", ten)
	}

	keys, _ := p.Keys(node.Value()).Get()
	if !reflect.DeepEqual(keys, []string{"10", "2"}) {
		t.Fatalf("encoded keys = %v", keys)
	}
}

func TestMapConstraints(t *testing.T) {
	p := value.Provider()
	base := tw.Map[string, int](tw.String(), tw.Int())

	node := base.EncodeStart(p, p.Empty(), map[string]int{"a": 1, "b": 2})
	if node.IsErr() {
		t.Fatalf("encode: %s", node.Error())
	}
	if r := base.MaxSize(1).DecodeStart(p, node.Value()); r.IsOk() || !strings.Contains(r.Error(), "maximum size constraint") {
		t.Fatalf("max size = %v", r)
	}
	if r := base.Keys("a").DecodeStart(p, node.Value()); r.IsOk() || !strings.Contains(r.Error(), "key set constraint") {
		t.Fatalf("key set = %v", r)
	}
	if r := base.Keys("a", "b").DecodeStart(p, node.Value()); r.IsErr() {
		t.Fatalf("allowed keys rejected: %s", r.Error())
	}
}
