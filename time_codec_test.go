package treewire_test

import (
	"strings"
	"testing"
	"time"

	tw "github.com/treewire/treewire"
	"github.com/treewire/treewire/value"
)

func TestTimeRoundTrip(t *testing.T) {
	p := value.Provider()
	c := tw.Time()
	in := time.Date(2024, 5, 17, 9, 30, 0, 123456789, time.UTC)

	node := c.EncodeStart(p, p.Empty(), in)
	if node.IsErr() {
		t.Fatalf("encode: %s", node.Error())
	}
	s, _ := p.AsString(node.Value()).Get()
	if !strings.HasPrefix(s, "2024-05-17T09:30:00.123456789") {
		t.Fatalf("wire form = %q", s)
	}
	back := c.DecodeStart(p, node.Value())
	if back.IsErr() || !back.Value().Equal(in) {
		t.Fatalf("decode = %v", back)
	}
}

func TestTimeDecodesBothPrecisions(t *testing.T) {
	p := value.Provider()
	c := tw.Time()
	tests := []string{
		"2024-05-17T09:30:00Z",
		"2024-05-17T09:30:00.5Z",
		"2024-05-17T09:30:00+02:00",
	}
	for _, in := range tests {
		if r := c.DecodeStart(p, in); r.IsErr() {
			t.Fatalf("DecodeStart(%q): %s", in, r.Error())
		}
	}
	if r := c.DecodeStart(p, "yesterday"); r.IsOk() {
		t.Fatalf("malformed timestamp accepted")
	}
}

func TestTimeWindowConstraints(t *testing.T) {
	p := value.Provider()
	cut := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	if r := tw.Time().Before(cut).DecodeStart(p, "2024-06-01T00:00:00Z"); r.IsOk() {
		t.Fatalf("Before accepted later instant")
	}
	if r := tw.Time().After(cut).DecodeStart(p, "2023-06-01T00:00:00Z"); r.IsOk() {
		t.Fatalf("After accepted earlier instant")
	}
	if r := tw.Time().After(cut).Before(cut.AddDate(1, 0, 0)).DecodeStart(p, "2024-06-01T00:00:00Z"); r.IsErr() {
		t.Fatalf("window rejected in-range instant: %s", r.Error())
	}
}

func TestTimeWhole(t *testing.T) {
	p := value.Provider()
	c := tw.Time().Whole(time.Second)
	if r := c.DecodeStart(p, "2024-05-17T09:30:00.5Z"); r.IsOk() {
		t.Fatalf("fractional second accepted by Whole(second)")
	}
	if r := c.DecodeStart(p, "2024-05-17T09:30:00Z"); r.IsErr() {
		t.Fatalf("whole second rejected: %s", r.Error())
	}
}

func TestDurationRoundTrip(t *testing.T) {
	p := value.Provider()
	c := tw.Duration()
	in := 90 * time.Minute

	node := c.EncodeStart(p, p.Empty(), in)
	if node.IsErr() {
		t.Fatalf("encode: %s", node.Error())
	}
	s, _ := p.AsString(node.Value()).Get()
	if s != "1h30m0s" {
		t.Fatalf("wire form = %q", s)
	}
	back := c.DecodeStart(p, node.Value())
	if back.IsErr() || back.Value() != in {
		t.Fatalf("decode = %v", back)
	}
	// Integer nodes decode as nanoseconds.
	if r := c.DecodeStart(p, int64(time.Second)); r.IsErr() || r.Value() != time.Second {
		t.Fatalf("nanosecond decode = %v", r)
	}
}

func TestDurationConstraints(t *testing.T) {
	p := value.Provider()
	if r := tw.Duration().Min(time.Minute).DecodeStart(p, "30s"); r.IsOk() {
		t.Fatalf("Min accepted shorter duration")
	}
	if r := tw.Duration().Max(time.Minute).DecodeStart(p, "90s"); r.IsOk() {
		t.Fatalf("Max accepted longer duration")
	}
	if r := tw.Duration().Whole(time.Second).DecodeStart(p, "1.5s"); r.IsOk() {
		t.Fatalf("Whole accepted fractional duration")
	}
}
