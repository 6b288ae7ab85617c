package treewire_test

import (
	"bytes"
	"net/netip"
	"strings"
	"testing"

	"golang.org/x/text/language"

	tw "github.com/treewire/treewire"
	"github.com/treewire/treewire/value"
)

func TestBoolRoundTrip(t *testing.T) {
	p := value.Provider()
	c := tw.Bool()
	node := c.EncodeStart(p, p.Empty(), true)
	if node.IsErr() {
		t.Fatalf("encode: %s", node.Error())
	}
	back := c.DecodeStart(p, node.Value())
	if back.IsErr() || !back.Value() {
		t.Fatalf("decode = %v", back)
	}
	if r := c.DecodeKey("true"); r.IsErr() || !r.Value() {
		t.Fatalf("DecodeKey = %v", r)
	}
}

func TestBytesRoundTrip(t *testing.T) {
	p := value.Provider()
	c := tw.Bytes()
	in := []byte{0x00, 0xff, 0x10}

	node := c.EncodeStart(p, p.Empty(), in)
	if node.IsErr() {
		t.Fatalf("encode: %s", node.Error())
	}
	back := c.DecodeStart(p, node.Value())
	if back.IsErr() || !bytes.Equal(back.Value(), in) {
		t.Fatalf("decode = %v", back)
	}
	if r := c.EncodeStart(p, p.Empty(), nil); !strings.Contains(r.Error(), "Unable to encode null as bytes") {
		t.Fatalf("nil encode = %q", r.Error())
	}
}

func TestUUIDCodec(t *testing.T) {
	p := value.Provider()
	c := tw.UUID()
	const v4 = "9b2b0f0e-3bb6-4e52-9f95-8a8d6dadfc1a"
	const v1 = "f47ac10b-58cc-11e4-8ed2-0800200c9a66"

	r := c.DecodeStart(p, v4)
	if r.IsErr() {
		t.Fatalf("decode: %s", r.Error())
	}
	node := c.EncodeStart(p, p.Empty(), r.Value())
	if node.IsErr() {
		t.Fatalf("encode: %s", node.Error())
	}
	if s, _ := p.AsString(node.Value()).Get(); s != v4 {
		t.Fatalf("wire form = %q", s)
	}
	if r := c.DecodeStart(p, "not-a-uuid"); r.IsOk() {
		t.Fatalf("malformed uuid accepted")
	}
	if r := c.Version(4).DecodeStart(p, v1); r.IsOk() {
		t.Fatalf("version constraint accepted v1")
	}
	if r := c.Version(4).DecodeStart(p, v4); r.IsErr() {
		t.Fatalf("version constraint rejected v4: %s", r.Error())
	}
}

func TestAddrCodec(t *testing.T) {
	p := value.Provider()
	tests := []struct {
		name  string
		codec tw.AddrCodec
		in    string
		ok    bool
	}{
		{"plain v4", tw.Addr(), "192.0.2.1", true},
		{"plain v6", tw.Addr(), "2001:db8::1", true},
		{"v4 only rejects v6", tw.Addr().V4(), "2001:db8::1", false},
		{"v6 only rejects v4", tw.Addr().V6(), "192.0.2.1", false},
		{"loopback", tw.Addr().Loopback(), "127.0.0.1", true},
		{"loopback rejects global", tw.Addr().Loopback(), "192.0.2.1", false},
		{"private", tw.Addr().Private(), "10.0.0.5", true},
		{"private rejects global", tw.Addr().Private(), "192.0.2.1", false},
		{"multicast", tw.Addr().Multicast(), "224.0.0.1", true},
		{"multicast rejects unicast", tw.Addr().Multicast(), "192.0.2.1", false},
		{"malformed", tw.Addr(), "not-an-addr", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.codec.DecodeStart(p, tt.in)
			if r.IsOk() != tt.ok {
				t.Fatalf("DecodeStart(%q) = %v, want ok=%v", tt.in, r, tt.ok)
			}
		})
	}

	addr := netip.MustParseAddr("192.0.2.1")
	node := tw.Addr().EncodeStart(p, p.Empty(), addr)
	if node.IsErr() {
		t.Fatalf("encode: %s", node.Error())
	}
	if s, _ := p.AsString(node.Value()).Get(); s != "192.0.2.1" {
		t.Fatalf("wire form = %q", s)
	}
}

func TestAddrPortKey(t *testing.T) {
	c := tw.AddrPort()
	k := c.EncodeKey(netip.MustParseAddrPort("192.0.2.1:8080"))
	if k.IsErr() || k.Value() != "192.0.2.1:8080" {
		t.Fatalf("EncodeKey = %v", k)
	}
	if r := c.DecodeKey("192.0.2.1:8080"); r.IsErr() {
		t.Fatalf("DecodeKey: %s", r.Error())
	}
}

func TestURLCodec(t *testing.T) {
	p := value.Provider()
	c := tw.URL().Schemes("https").WithHost()

	r := c.DecodeStart(p, "https://example.com/a?b=1")
	if r.IsErr() {
		t.Fatalf("decode: %s", r.Error())
	}
	if r.Value().Host != "example.com" {
		t.Fatalf("host = %q", r.Value().Host)
	}
	if r := c.DecodeStart(p, "ftp://example.com/a"); r.IsOk() {
		t.Fatalf("scheme constraint accepted ftp")
	}
	if r := c.DecodeStart(p, "/relative/only"); r.IsOk() {
		t.Fatalf("host constraint accepted hostless url")
	}
	if r := tw.URL().WithPort().DecodeStart(p, "https://example.com/a"); r.IsOk() {
		t.Fatalf("port constraint accepted portless url")
	}
	if r := tw.URL().WithPort().DecodeStart(p, "https://example.com:8443/a"); r.IsErr() {
		t.Fatalf("port constraint rejected explicit port: %s", r.Error())
	}
	if r := tw.URL().EncodeStart(p, p.Empty(), nil); !strings.Contains(r.Error(), "Unable to encode null as url") {
		t.Fatalf("nil encode = %q", r.Error())
	}
}

func TestPathCodec(t *testing.T) {
	p := value.Provider()
	if r := tw.Path().Absolute().DecodeStart(p, "etc/config"); r.IsOk() {
		t.Fatalf("absolute constraint accepted relative path")
	}
	if r := tw.Path().Relative().DecodeStart(p, "/etc/config"); r.IsOk() {
		t.Fatalf("relative constraint accepted absolute path")
	}
	if r := tw.Path().Extension(".json", ".yaml").DecodeStart(p, "conf.toml"); r.IsOk() {
		t.Fatalf("extension constraint accepted .toml")
	}
	if r := tw.Path().Extension(".json").DecodeStart(p, "conf.json"); r.IsErr() {
		t.Fatalf("extension constraint rejected .json: %s", r.Error())
	}
}

func TestLocaleCodec(t *testing.T) {
	p := value.Provider()
	c := tw.Locale()
	r := c.DecodeStart(p, "en-US")
	if r.IsErr() {
		t.Fatalf("decode: %s", r.Error())
	}
	if r.Value() != language.AmericanEnglish {
		t.Fatalf("tag = %v", r.Value())
	}
	node := c.EncodeStart(p, p.Empty(), language.Japanese)
	if node.IsErr() {
		t.Fatalf("encode: %s", node.Error())
	}
	if s, _ := p.AsString(node.Value()).Get(); s != "ja" {
		t.Fatalf("wire form = %q", s)
	}
	if r := c.DecodeStart(p, "zz-!!"); r.IsOk() {
		t.Fatalf("malformed tag accepted")
	}
}

func TestZoneCodec(t *testing.T) {
	p := value.Provider()
	c := tw.Zone()
	r := c.DecodeStart(p, "UTC")
	if r.IsErr() || r.Value().String() != "UTC" {
		t.Fatalf("decode = %v", r)
	}
	if r := c.DecodeStart(p, "Not/AZone"); r.IsOk() {
		t.Fatalf("unknown zone accepted")
	}
}

func TestCharsetCodec(t *testing.T) {
	p := value.Provider()
	c := tw.Charset()
	r := c.DecodeStart(p, "utf-8")
	if r.IsErr() {
		t.Fatalf("decode: %s", r.Error())
	}
	node := c.EncodeStart(p, p.Empty(), r.Value())
	if node.IsErr() {
		t.Fatalf("encode: %s", node.Error())
	}
	if r := c.DecodeStart(p, "no-such-charset"); r.IsOk() {
		t.Fatalf("unknown charset accepted")
	}
}
