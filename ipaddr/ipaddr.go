// Package ipaddr is the 16 byte network address of a provider, in network
// byte order. Only IPv4 addresses, carried in IPv4-mapped form
// (::ffff:a.b.c.d), can be constructed from text; other IPv6 addresses are
// not supported.
package ipaddr

import (
	"encoding/json"
	"net/netip"

	"github.com/pkg/errors"
)

const Len = 16

var (
	ErrInvalid     = errors.New("invalid IPv4 address")
	ErrUnsupported = errors.New("only IPv4 addresses are supported")
)

// T is an address as it appears on the wire. The zero value is the unset
// address and renders as empty text.
type T [Len]byte

// NewFromString maps IPv4 text, dotted-decimal or in its IPv4-mapped IPv6
// form (::ffff:a.b.c.d), to its 16 byte form. The empty string gives the
// unset address.
func NewFromString(s string) (a T, err error) {
	if s == "" {
		return
	}
	var ip netip.Addr
	if ip, err = netip.ParseAddr(s); err != nil {
		err = errors.Wrapf(ErrInvalid, "%q", s)
		return
	}
	if ip.Zone() != "" {
		err = errors.Wrapf(ErrUnsupported, "%q", s)
		return
	}
	if ip = ip.Unmap(); !ip.Is4() {
		err = errors.Wrapf(ErrUnsupported, "%q", s)
		return
	}
	a = ip.As16()
	return
}

// MustParse is NewFromString for constants in tests and examples.
func MustParse(s string) (a T) {
	var err error
	if a, err = NewFromString(s); err != nil {
		panic(err)
	}
	return
}

func (a T) IsZero() bool { return a == T{} }

// IsIPv4Mapped reports whether the address is in ::ffff:a.b.c.d form.
func (a T) IsIPv4Mapped() bool { return netip.AddrFrom16(a).Is4In6() }

// Addr converts to a netip.Addr, unmapping IPv4.
func (a T) Addr() netip.Addr { return netip.AddrFrom16(a).Unmap() }

// String is dotted-decimal for mapped addresses and empty for the unset
// address. Any other address can only have come off the wire and is shown as
// an IPv6 literal.
func (a T) String() string {
	if a.IsZero() {
		return ""
	}
	return a.Addr().String()
}

func (a T) MarshalJSON() ([]byte, error) { return json.Marshal(a.String()) }

func (a *T) UnmarshalJSON(b []byte) (err error) {
	if string(b) == "null" {
		return
	}
	var s string
	if err = json.Unmarshal(b, &s); err != nil {
		return errors.Wrap(err, "address must be a string")
	}
	*a, err = NewFromString(s)
	return
}
