package treewire_test

import (
	"strings"
	"testing"

	tw "github.com/treewire/treewire"
	"github.com/treewire/treewire/value"
)

func TestStringRoundTrip(t *testing.T) {
	p := value.Provider()
	c := tw.String()

	node := c.EncodeStart(p, p.Empty(), "hello")
	if node.IsErr() {
		t.Fatalf("encode: %s", node.Error())
	}
	back := c.DecodeStart(p, node.Value())
	if back.IsErr() || back.Value() != "hello" {
		t.Fatalf("decode = %v", back)
	}
}

func TestStringLengthConstraints(t *testing.T) {
	p := value.Provider()
	tests := []struct {
		name    string
		codec   tw.StringCodec
		in      string
		wantErr string
	}{
		{"within bounds", tw.String().MinLength(2).MaxLength(5), "abc", ""},
		{"too short", tw.String().MinLength(3), "ab", "minimum length constraint violated: length 2 is less than 3"},
		{"too long", tw.String().MaxLength(2), "abc", "maximum length constraint violated: length 3 exceeds 2"},
		{"exact under", tw.String().ExactLength(4), "abc", "minimum length constraint"},
		{"exact over", tw.String().ExactLength(2), "abc", "maximum length constraint"},
		{"runes not bytes", tw.String().MaxLength(3), "日本語", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.codec.DecodeStart(p, tt.in)
			if tt.wantErr == "" {
				if r.IsErr() {
					t.Fatalf("unexpected error: %s", r.Error())
				}
				return
			}
			if r.IsOk() {
				t.Fatalf("expected error, got %v", r.Value())
			}
			if !strings.Contains(r.Error(), tt.wantErr) {
				t.Fatalf("error %q does not contain %q", r.Error(), tt.wantErr)
			}
			if !strings.Contains(r.Error(), "string does not meet constraints") {
				t.Fatalf("error %q missing constraint wrapper", r.Error())
			}
		})
	}
}

func TestStringConstraintReplacement(t *testing.T) {
	p := value.Provider()
	// A later setter of the same family replaces the earlier bound.
	c := tw.String().MinLength(10).MinLength(2)
	if r := c.DecodeStart(p, "abc"); r.IsErr() {
		t.Fatalf("replaced bound still active: %s", r.Error())
	}
}

func TestStringConstraintsOnEncode(t *testing.T) {
	p := value.Provider()
	r := tw.String().MinLength(5).EncodeStart(p, p.Empty(), "ab")
	if r.IsOk() {
		t.Fatalf("encode accepted constraint-violating value")
	}
	if !strings.Contains(r.Error(), "minimum length constraint") {
		t.Fatalf("error = %q", r.Error())
	}
}

func TestStringContentConstraints(t *testing.T) {
	p := value.Provider()
	tests := []struct {
		name  string
		codec tw.StringCodec
		in    string
		ok    bool
	}{
		{"pattern match", tw.String().Matches(`^[a-z]+$`), "abc", true},
		{"pattern mismatch", tw.String().Matches(`^[a-z]+$`), "Abc", false},
		{"lowercase ok", tw.String().Lowercase(), "abc", true},
		{"lowercase bad", tw.String().Lowercase(), "aBc", false},
		{"uppercase replaces lowercase", tw.String().Lowercase().Uppercase(), "ABC", true},
		{"not blank ok", tw.String().NotBlank(), "x", true},
		{"not blank spaces", tw.String().NotBlank(), "   ", false},
		{"contains", tw.String().Contains("oo"), "bark", false},
		{"prefix", tw.String().StartsWith("re"), "read", true},
		{"suffix", tw.String().EndsWith("ing"), "read", false},
		{"alphabetic", tw.String().Alphabetic(), "abc1", false},
		{"alphanumeric", tw.String().Alphanumeric(), "abc1", true},
		{"numeric", tw.String().Numeric(), "123", true},
		{"ascii", tw.String().ASCII(), "日本", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.codec.DecodeStart(p, tt.in)
			if r.IsOk() != tt.ok {
				t.Fatalf("DecodeStart(%q) = %v, want ok=%v", tt.in, r, tt.ok)
			}
		})
	}
}

func TestStringNullAndProvider(t *testing.T) {
	p := value.Provider()
	if r := tw.String().DecodeStart(p, nil); !strings.Contains(r.Error(), "Unable to decode null value as string") {
		t.Fatalf("null decode error = %q", r.Error())
	}
	if r := tw.String().DecodeStart(nil, "x"); r.IsOk() {
		t.Fatalf("nil provider accepted")
	}
}

func TestStringKeys(t *testing.T) {
	c := tw.String().MinLength(2)
	if r := c.EncodeKey("a"); r.IsOk() {
		t.Fatalf("key encode skipped constraints")
	}
	if r := c.DecodeKey("ab"); r.IsErr() || r.Value() != "ab" {
		t.Fatalf("DecodeKey = %v", r)
	}
}
