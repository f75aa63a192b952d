package domain

import (
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

const (
	minVLANID = 1
	maxVLANID = 4094
)

// ValidateCIDR reports whether s is a strict IPv4 subnet in CIDR
// notation: four decimal octets, a prefix length between 0 and 32, and
// an address equal to the canonical network address under the prefix
// mask. "10.0.0.0/24" passes, "10.0.0.5/24" does not.
func ValidateCIDR(s string) bool {
	_, err := ParseCIDR(s)
	return err == nil
}

// ParseCIDR parses s under the same rules as ValidateCIDR. Accepted
// inputs round-trip through the returned prefix's String method.
func ParseCIDR(s string) (netip.Prefix, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return netip.Prefix{}, fmt.Errorf("%w: empty subnet", ErrInvalidInput)
	}
	p, err := netip.ParsePrefix(s)
	if err != nil {
		return netip.Prefix{}, fmt.Errorf("%w: %q is not a valid CIDR", ErrInvalidInput, s)
	}
	if !p.Addr().Is4() {
		return netip.Prefix{}, fmt.Errorf("%w: %q is not an IPv4 subnet", ErrInvalidInput, s)
	}
	if p != p.Masked() {
		return netip.Prefix{}, fmt.Errorf("%w: %q is not the network address of the subnet", ErrInvalidInput, s)
	}
	return p, nil
}

// ParseIPv4 parses s as a plain IPv4 address.
func ParseIPv4(s string) (netip.Addr, error) {
	s = strings.TrimSpace(s)
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is4() {
		return netip.Addr{}, fmt.Errorf("%w: %q is not a valid IPv4 address", ErrInvalidInput, s)
	}
	return addr, nil
}

// ValidateVLANID reports whether s parses as a VLAN ID between 1 and
// 4094.
func ValidateVLANID(s string) bool {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return false
	}
	return vlanIDInRange(id)
}

func vlanIDInRange(id int) bool {
	return id >= minVLANID && id <= maxVLANID
}
