package domain

import (
	"net/netip"

	"go4.org/netipx"
)

// SubnetRange is the derived address layout of one IPv4 subnet.
type SubnetRange struct {
	Network     netip.Addr
	Broadcast   netip.Addr
	FirstUsable netip.Addr
	LastUsable  netip.Addr
}

// RangeOf expands p into its network, broadcast and usable-host
// bounds. /31 and /32 subnets have no distinct network or broadcast
// address, so their whole range counts as usable.
func RangeOf(p netip.Prefix) SubnetRange {
	r := netipx.RangeOfPrefix(p)
	sr := SubnetRange{
		Network:     r.From(),
		Broadcast:   r.To(),
		FirstUsable: r.From(),
		LastUsable:  r.To(),
	}
	if p.Bits() <= 30 {
		sr.FirstUsable = r.From().Next()
		sr.LastUsable = r.To().Prev()
	}
	return sr
}
