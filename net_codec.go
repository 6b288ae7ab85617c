package treewire

import (
	"fmt"
	"net/netip"
	"net/url"
	"path/filepath"
	"slices"
)

// AddrCodec carries netip.Addr in canonical textual form ("192.0.2.1",
// "2001:db8::1") on the wire.
type AddrCodec struct {
	leafCodec[netip.Addr]
}

// Addr returns the IP address codec.
func Addr() AddrCodec {
	return AddrCodec{leafCodec[netip.Addr]{
		typeName: "addr",
		dec: func(p TypeProvider, node any) Result[netip.Addr] {
			r := p.AsString(node)
			if r.IsErr() {
				return propagate[netip.Addr](r)
			}
			a, err := netip.ParseAddr(r.Value())
			if err != nil {
				return Errf[netip.Addr]("invalid address %q: %v", r.Value(), err)
			}
			return Ok(a)
		},
		enc:   func(p TypeProvider, v netip.Addr) Result[any] { return Ok(p.FromString(v.String())) },
		toKey: func(v netip.Addr) Result[string] { return Ok(v.String()) },
		fromKey: func(key string) Result[netip.Addr] {
			a, err := netip.ParseAddr(key)
			if err != nil {
				return Errf[netip.Addr]("invalid address key %q", key)
			}
			return Ok(a)
		},
	}}
}

// V4 requires an IPv4 address.
func (c AddrCodec) V4() AddrCodec {
	c.leafCodec = c.leafCodec.with(kindNetwork, func(v netip.Addr) string {
		if !v.Is4() {
			return fmt.Sprintf("ipv4 constraint violated: %s is not an IPv4 address", v)
		}
		return ""
	})
	return c
}

// V6 requires an IPv6 address.
func (c AddrCodec) V6() AddrCodec {
	c.leafCodec = c.leafCodec.with(kindNetwork, func(v netip.Addr) string {
		if !v.Is6() || v.Is4In6() {
			return fmt.Sprintf("ipv6 constraint violated: %s is not an IPv6 address", v)
		}
		return ""
	})
	return c
}

// Loopback requires a loopback address.
func (c AddrCodec) Loopback() AddrCodec {
	c.leafCodec = c.leafCodec.with(kindNetwork, func(v netip.Addr) string {
		if !v.IsLoopback() {
			return fmt.Sprintf("loopback constraint violated: %s is not a loopback address", v)
		}
		return ""
	})
	return c
}

// Unicast requires a global unicast address.
func (c AddrCodec) Unicast() AddrCodec {
	c.leafCodec = c.leafCodec.with(kindNetwork, func(v netip.Addr) string {
		if !v.IsGlobalUnicast() {
			return fmt.Sprintf("unicast constraint violated: %s is not a global unicast address", v)
		}
		return ""
	})
	return c
}

// Private requires a private-range address (RFC 1918, RFC 4193).
func (c AddrCodec) Private() AddrCodec {
	c.leafCodec = c.leafCodec.with(kindNetwork, func(v netip.Addr) string {
		if !v.IsPrivate() {
			return fmt.Sprintf("private constraint violated: %s is not a private address", v)
		}
		return ""
	})
	return c
}

// Multicast requires a multicast address.
func (c AddrCodec) Multicast() AddrCodec {
	c.leafCodec = c.leafCodec.with(kindNetwork, func(v netip.Addr) string {
		if !v.IsMulticast() {
			return fmt.Sprintf("multicast constraint violated: %s is not a multicast address", v)
		}
		return ""
	})
	return c
}

// AddrPort returns the socket address codec. The wire form is "host:port";
// IPv6 hosts are bracketed ("[2001:db8::1]:443").
func AddrPort() KeyableCodec[netip.AddrPort] {
	return leafCodec[netip.AddrPort]{
		typeName: "addrport",
		dec: func(p TypeProvider, node any) Result[netip.AddrPort] {
			r := p.AsString(node)
			if r.IsErr() {
				return propagate[netip.AddrPort](r)
			}
			ap, err := netip.ParseAddrPort(r.Value())
			if err != nil {
				return Errf[netip.AddrPort]("invalid socket address %q: %v", r.Value(), err)
			}
			return Ok(ap)
		},
		enc:   func(p TypeProvider, v netip.AddrPort) Result[any] { return Ok(p.FromString(v.String())) },
		toKey: func(v netip.AddrPort) Result[string] { return Ok(v.String()) },
		fromKey: func(key string) Result[netip.AddrPort] {
			ap, err := netip.ParseAddrPort(key)
			if err != nil {
				return Errf[netip.AddrPort]("invalid socket address key %q", key)
			}
			return Ok(ap)
		},
	}
}

// URLCodec carries *url.URL as its String form on the wire.
type URLCodec struct {
	leafCodec[*url.URL]
}

// URL returns the URL codec.
func URL() URLCodec {
	return URLCodec{leafCodec[*url.URL]{
		typeName: "url",
		dec: func(p TypeProvider, node any) Result[*url.URL] {
			r := p.AsString(node)
			if r.IsErr() {
				return propagate[*url.URL](r)
			}
			u, err := url.Parse(r.Value())
			if err != nil {
				return Errf[*url.URL]("invalid url %q: %v", r.Value(), err)
			}
			return Ok(u)
		},
		enc: func(p TypeProvider, v *url.URL) Result[any] {
			if v == nil {
				return errEncodeNull[any]("url")
			}
			return Ok(p.FromString(v.String()))
		},
		toKey: func(v *url.URL) Result[string] {
			if v == nil {
				return errEncodeNull[string]("url")
			}
			return Ok(v.String())
		},
		fromKey: func(key string) Result[*url.URL] {
			u, err := url.Parse(key)
			if err != nil {
				return Errf[*url.URL]("invalid url key %q", key)
			}
			return Ok(u)
		},
	}}
}

// Schemes restricts the URL scheme to the given set.
func (c URLCodec) Schemes(schemes ...string) URLCodec {
	allowed := slices.Clone(schemes)
	c.leafCodec = c.leafCodec.with(kindScheme, func(v *url.URL) string {
		if v == nil || !slices.Contains(allowed, v.Scheme) {
			return fmt.Sprintf("scheme constraint violated: %q is not one of %v", schemeOf(v), allowed)
		}
		return ""
	})
	return c
}

// WithHost requires a non-empty host component.
func (c URLCodec) WithHost() URLCodec {
	c.leafCodec = c.leafCodec.with(kindHost, func(v *url.URL) string {
		if v == nil || v.Host == "" {
			return "host constraint violated: url has no host component"
		}
		return ""
	})
	return c
}

// WithPort requires an explicit port component.
func (c URLCodec) WithPort() URLCodec {
	c.leafCodec = c.leafCodec.with(kindPort, func(v *url.URL) string {
		if v == nil || v.Port() == "" {
			return "port constraint violated: url has no port component"
		}
		return ""
	})
	return c
}

func schemeOf(u *url.URL) string {
	if u == nil {
		return ""
	}
	return u.Scheme
}

// PathCodec carries file-system paths as strings on the wire.
type PathCodec struct {
	leafCodec[string]
}

// Path returns the file-path codec.
func Path() PathCodec {
	return PathCodec{leafCodec[string]{
		typeName: "path",
		dec:      func(p TypeProvider, node any) Result[string] { return p.AsString(node) },
		enc:      func(p TypeProvider, v string) Result[any] { return Ok(p.FromString(v)) },
		toKey:    func(v string) Result[string] { return Ok(v) },
		fromKey:  func(key string) Result[string] { return Ok(key) },
	}}
}

// Absolute requires an absolute path.
func (c PathCodec) Absolute() PathCodec {
	c.leafCodec = c.leafCodec.with(kindPathShape, func(v string) string {
		if !filepath.IsAbs(v) {
			return fmt.Sprintf("absolute path constraint violated: %q is relative", v)
		}
		return ""
	})
	return c
}

// Relative requires a relative path.
func (c PathCodec) Relative() PathCodec {
	c.leafCodec = c.leafCodec.with(kindPathShape, func(v string) string {
		if filepath.IsAbs(v) {
			return fmt.Sprintf("relative path constraint violated: %q is absolute", v)
		}
		return ""
	})
	return c
}

// Extension requires the path to carry one of the given extensions
// (including the leading dot).
func (c PathCodec) Extension(exts ...string) PathCodec {
	allowed := slices.Clone(exts)
	c.leafCodec = c.leafCodec.with(kindSuffix, func(v string) string {
		if !slices.Contains(allowed, filepath.Ext(v)) {
			return fmt.Sprintf("extension constraint violated: %q is not one of %v", filepath.Ext(v), allowed)
		}
		return ""
	})
	return c
}
