package http

import (
	"net/netip"

	"github.com/MoeSaid22/subnet-registry/internal/domain"
)

// SubnetResponse is a simplified view returned to clients and used in Swagger.
type SubnetResponse struct {
	ID       int    `json:"id" example:"1"`
	CIDR     string `json:"cidr" example:"10.18.0.0/16"`
	VLANID   int    `json:"vlan_id" example:"20"`
	VLANName string `json:"vlan_name" example:"Engineering"`
	SiteName string `json:"site_name" example:"Denver DC"`
}

// CreateSubnetRequest is the payload accepted when creating a subnet.
type CreateSubnetRequest struct {
	CIDR     string `json:"cidr" example:"10.18.0.0/16" validate:"required"`
	VLANID   int    `json:"vlan_id" example:"20" validate:"required"`
	VLANName string `json:"vlan_name" example:"Engineering"`
	SiteName string `json:"site_name" example:"Denver DC"`
}

// UpdateSubnetRequest is the payload accepted when updating a subnet.
type UpdateSubnetRequest struct {
	CIDR     string `json:"cidr" example:"10.18.0.0/16" validate:"required"`
	VLANID   int    `json:"vlan_id" example:"20" validate:"required"`
	VLANName string `json:"vlan_name" example:"Engineering"`
	SiteName string `json:"site_name" example:"Denver DC"`
}

// LookupResponse is the resolved subnet for an address plus its derived
// address layout.
type LookupResponse struct {
	IP          string         `json:"ip" example:"10.18.4.9"`
	Subnet      SubnetResponse `json:"subnet"`
	Network     string         `json:"network" example:"10.18.0.0"`
	Broadcast   string         `json:"broadcast" example:"10.18.255.255"`
	FirstUsable string         `json:"first_usable" example:"10.18.0.1"`
	LastUsable  string         `json:"last_usable" example:"10.18.255.254"`
}

// OverlapResponse reports two subnets that share part of their address space.
type OverlapResponse struct {
	First      SubnetResponse `json:"first"`
	Second     SubnetResponse `json:"second"`
	SharedFrom string         `json:"shared_from" example:"10.18.0.0"`
	SharedTo   string         `json:"shared_to" example:"10.18.0.255"`
}

// ImportReportResponse summarizes one CSV import run.
type ImportReportResponse struct {
	Imported int      `json:"imported" example:"12"`
	Skipped  int      `json:"skipped" example:"2"`
	Errors   []string `json:"errors"`
}

// SiteResponse is a simplified view returned to clients and used in Swagger.
type SiteResponse struct {
	ID       int    `json:"id" example:"1"`
	Name     string `json:"name" example:"Denver DC"`
	Location string `json:"location" example:"Denver, CO"`
	Phone    string `json:"phone" example:"+1 303 555 0100"`
}

// CreateSiteRequest is the payload accepted when creating a site.
type CreateSiteRequest struct {
	Name     string `json:"name" example:"Denver DC" validate:"required"`
	Location string `json:"location" example:"Denver, CO"`
	Phone    string `json:"phone" example:"+1 303 555 0100"`
}

// ErrorResponse is a simple envelope for error messages.
type ErrorResponse struct {
	Error string `json:"error" example:"subnet not found"`
}

func subnetToResponse(rec domain.SubnetRecord) SubnetResponse {
	return SubnetResponse{
		ID:       rec.ID,
		CIDR:     rec.CIDR,
		VLANID:   rec.VLANID,
		VLANName: rec.VLANName,
		SiteName: rec.SiteName,
	}
}

func subnetsToResponse(records []domain.SubnetRecord) []SubnetResponse {
	out := make([]SubnetResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, subnetToResponse(rec))
	}
	return out
}

func lookupToResponse(ip string, rec domain.SubnetRecord) (LookupResponse, error) {
	p, err := netip.ParsePrefix(rec.CIDR)
	if err != nil {
		return LookupResponse{}, err
	}

	rng := domain.RangeOf(p)
	return LookupResponse{
		IP:          ip,
		Subnet:      subnetToResponse(rec),
		Network:     rng.Network.String(),
		Broadcast:   rng.Broadcast.String(),
		FirstUsable: rng.FirstUsable.String(),
		LastUsable:  rng.LastUsable.String(),
	}, nil
}

func overlapsToResponse(pairs []domain.OverlapPair) []OverlapResponse {
	out := make([]OverlapResponse, 0, len(pairs))
	for _, pair := range pairs {
		out = append(out, OverlapResponse{
			First:      subnetToResponse(pair.First),
			Second:     subnetToResponse(pair.Second),
			SharedFrom: pair.SharedFrom.String(),
			SharedTo:   pair.SharedTo.String(),
		})
	}
	return out
}

func reportToResponse(report domain.ImportReport) ImportReportResponse {
	return ImportReportResponse{
		Imported: report.Imported,
		Skipped:  report.Skipped,
		Errors:   report.Errors,
	}
}

func siteToResponse(rec domain.SiteRecord) SiteResponse {
	return SiteResponse{
		ID:       rec.ID,
		Name:     rec.Name,
		Location: rec.Location,
		Phone:    rec.Phone,
	}
}

func sitesToResponse(records []domain.SiteRecord) []SiteResponse {
	out := make([]SiteResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, siteToResponse(rec))
	}
	return out
}

func (r CreateSubnetRequest) toRecord() (domain.SubnetRecord, error) {
	return domain.NewSubnetRecord(r.CIDR, r.VLANID, r.VLANName, r.SiteName)
}

func (r UpdateSubnetRequest) toRecord() (domain.SubnetRecord, error) {
	return domain.NewSubnetRecord(r.CIDR, r.VLANID, r.VLANName, r.SiteName)
}

func (r CreateSiteRequest) toRecord() (domain.SiteRecord, error) {
	return domain.NewSiteRecord(r.Name, r.Location, r.Phone)
}
