package domain

import (
	"fmt"
	"net/netip"
)

// FindContaining returns the first record whose subnet contains ip.
// Records are scanned in slice order and the first hit wins regardless
// of prefix length, so more specific subnets later in the registry are
// shadowed by broader ones before them. Records whose stored CIDR does
// not parse are skipped.
//
// A malformed ip reports ErrInvalidInput; a clean miss reports
// ErrNotFound.
func FindContaining(ip string, records []SubnetRecord) (SubnetRecord, error) {
	addr, err := ParseIPv4(ip)
	if err != nil {
		return SubnetRecord{}, err
	}
	for _, rec := range records {
		p, err := netip.ParsePrefix(rec.CIDR)
		if err != nil || !p.Addr().Is4() {
			continue
		}
		// Contains masks both sides, so a record whose stored
		// address still has host bits set matches the same way.
		if p.Contains(addr) {
			return rec, nil
		}
	}
	return SubnetRecord{}, fmt.Errorf("%w: no subnet contains %s", ErrNotFound, addr)
}
