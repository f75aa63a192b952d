package domain

import (
	"errors"
	"testing"
)

func TestFindContainingReturnsFirstMatch(t *testing.T) {
	records := []SubnetRecord{
		{ID: 1, CIDR: "10.10.0.0/24", VLANID: 10, VLANName: "mgmt", SiteName: "hq"},
		{ID: 2, CIDR: "10.10.1.0/24", VLANID: 20, VLANName: "users", SiteName: "hq"},
	}

	rec, err := FindContaining("10.10.1.5", records)
	if err != nil {
		t.Fatalf("expected a match, got %v", err)
	}
	if rec.ID != 2 {
		t.Fatalf("expected record 2, got %d (%s)", rec.ID, rec.CIDR)
	}
}

func TestFindContainingBroadSubnetShadowsSpecific(t *testing.T) {
	// First match wins even when a more specific subnet follows.
	records := []SubnetRecord{
		{ID: 1, CIDR: "10.0.0.0/8", VLANID: 1, VLANName: "all", SiteName: "hq"},
		{ID: 2, CIDR: "10.10.1.0/24", VLANID: 20, VLANName: "users", SiteName: "hq"},
	}

	rec, err := FindContaining("10.10.1.5", records)
	if err != nil {
		t.Fatalf("expected a match, got %v", err)
	}
	if rec.ID != 1 {
		t.Fatalf("expected the broad subnet to win, got record %d", rec.ID)
	}
}

func TestFindContainingMalformedIP(t *testing.T) {
	records := []SubnetRecord{
		{ID: 1, CIDR: "10.0.0.0/24", VLANID: 10, VLANName: "mgmt", SiteName: "hq"},
	}

	for _, ip := range []string{"", "999.1.1.1", "10.0.0", "::1", "nonsense"} {
		_, err := FindContaining(ip, records)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("FindContaining(%q): expected ErrInvalidInput, got %v", ip, err)
		}
	}
}

func TestFindContainingNoMatch(t *testing.T) {
	records := []SubnetRecord{
		{ID: 1, CIDR: "10.0.0.0/24", VLANID: 10, VLANName: "mgmt", SiteName: "hq"},
	}

	_, err := FindContaining("192.168.1.1", records)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindContainingEmptyRegistry(t *testing.T) {
	_, err := FindContaining("10.0.0.1", nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFindContainingSkipsUnparsableRecords(t *testing.T) {
	records := []SubnetRecord{
		{ID: 1, CIDR: "garbage", VLANID: 10, VLANName: "bad", SiteName: "hq"},
		{ID: 2, CIDR: "10.0.0.0/24", VLANID: 20, VLANName: "good", SiteName: "hq"},
	}

	rec, err := FindContaining("10.0.0.9", records)
	if err != nil {
		t.Fatalf("expected the scan to survive the bad record, got %v", err)
	}
	if rec.ID != 2 {
		t.Fatalf("expected record 2, got %d", rec.ID)
	}
}

func TestFindContainingMatchesNonCanonicalStoredCIDR(t *testing.T) {
	// A hand-edited registry file can hold a subnet whose address
	// still has host bits set; containment masks both sides.
	records := []SubnetRecord{
		{ID: 1, CIDR: "10.0.0.5/24", VLANID: 10, VLANName: "mgmt", SiteName: "hq"},
	}

	rec, err := FindContaining("10.0.0.200", records)
	if err != nil {
		t.Fatalf("expected a match, got %v", err)
	}
	if rec.ID != 1 {
		t.Fatalf("expected record 1, got %d", rec.ID)
	}
}

func TestFindContainingBoundaryAddresses(t *testing.T) {
	records := []SubnetRecord{
		{ID: 1, CIDR: "10.0.0.0/24", VLANID: 10, VLANName: "mgmt", SiteName: "hq"},
	}

	for _, ip := range []string{"10.0.0.0", "10.0.0.255"} {
		rec, err := FindContaining(ip, records)
		if err != nil {
			t.Fatalf("FindContaining(%q): expected a match, got %v", ip, err)
		}
		if rec.ID != 1 {
			t.Fatalf("FindContaining(%q): expected record 1, got %d", ip, rec.ID)
		}
	}

	if _, err := FindContaining("10.0.1.0", records); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected the next network over to miss, got %v", err)
	}
}
