package domain

import (
	"fmt"
	"strings"
)

// SubnetRecord is one registered subnet. The JSON tags are the on-disk
// contract of the registry file and must not change.
type SubnetRecord struct {
	ID       int    `json:"ID"`
	CIDR     string `json:"IP_Subnet"`
	VLANID   int    `json:"VLAN_ID"`
	VLANName string `json:"VLAN_Name"`
	SiteName string `json:"Site_Name"`
}

// SiteRecord is one site in the companion site registry.
type SiteRecord struct {
	ID       int    `json:"ID"`
	Name     string `json:"Site_Name"`
	Location string `json:"Location"`
	Phone    string `json:"Phone_Number"`
}

// RawRow carries the four unvalidated string fields of one import row.
type RawRow struct {
	IPSubnet string
	VLANID   string
	VLANName string
	SiteName string
}

// ImportReport summarizes one import run. Errors holds one
// human-readable line per rejected row, in row order.
type ImportReport struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

// NewSubnetRecord builds a record from its parts. The CIDR must be a
// canonical IPv4 network address and is stored in its normalized form;
// the display names are trimmed and must be non-empty. ID is assigned
// later by the registry.
func NewSubnetRecord(cidr string, vlanID int, vlanName, siteName string) (SubnetRecord, error) {
	p, err := ParseCIDR(cidr)
	if err != nil {
		return SubnetRecord{}, err
	}
	if !vlanIDInRange(vlanID) {
		return SubnetRecord{}, fmt.Errorf("%w: vlan id %d out of range %d-%d", ErrInvalidInput, vlanID, minVLANID, maxVLANID)
	}
	vlanName = strings.TrimSpace(vlanName)
	if vlanName == "" {
		return SubnetRecord{}, fmt.Errorf("%w: vlan name is empty", ErrInvalidInput)
	}
	siteName = strings.TrimSpace(siteName)
	if siteName == "" {
		return SubnetRecord{}, fmt.Errorf("%w: site name is empty", ErrInvalidInput)
	}

	return SubnetRecord{
		CIDR:     p.String(),
		VLANID:   vlanID,
		VLANName: vlanName,
		SiteName: siteName,
	}, nil
}

// NewSiteRecord builds a site record; ID is assigned by the registry.
func NewSiteRecord(name, location, phone string) (SiteRecord, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return SiteRecord{}, fmt.Errorf("%w: site name is empty", ErrInvalidInput)
	}

	return SiteRecord{
		Name:     name,
		Location: strings.TrimSpace(location),
		Phone:    strings.TrimSpace(phone),
	}, nil
}
