package domain

import (
	"net/netip"

	"go4.org/netipx"
)

// OverlapPair reports two records whose subnets overlap, together with
// the address range they share.
type OverlapPair struct {
	First      SubnetRecord
	Second     SubnetRecord
	SharedFrom netip.Addr
	SharedTo   netip.Addr
}

// FindOverlaps returns every pair of records whose subnets overlap, in
// registry order. Records with unparsable CIDRs are skipped. Lookups
// still resolve overlapping subnets by first match; this is the
// diagnostic view of that state.
func FindOverlaps(records []SubnetRecord) []OverlapPair {
	type parsed struct {
		rec SubnetRecord
		p   netip.Prefix
	}
	ps := make([]parsed, 0, len(records))
	for _, rec := range records {
		p, err := netip.ParsePrefix(rec.CIDR)
		if err != nil || !p.Addr().Is4() {
			continue
		}
		ps = append(ps, parsed{rec: rec, p: p})
	}

	var pairs []OverlapPair
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			if !ps[i].p.Overlaps(ps[j].p) {
				continue
			}
			// Overlapping prefixes nest, so the shared range
			// is the range of the more specific one.
			shared := netipx.RangeOfPrefix(ps[i].p)
			if ps[j].p.Bits() > ps[i].p.Bits() {
				shared = netipx.RangeOfPrefix(ps[j].p)
			}
			pairs = append(pairs, OverlapPair{
				First:      ps[i].rec,
				Second:     ps[j].rec,
				SharedFrom: shared.From(),
				SharedTo:   shared.To(),
			})
		}
	}
	return pairs
}
