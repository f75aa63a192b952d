package domain

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Importer feeds bulk rows into a subnet registry one row at a time.
// Row failures never abort the batch; each failed row contributes one
// line to the report.
type Importer struct {
	registry SubnetRegistry
	logger   *slog.Logger
}

func NewImporter(registry SubnetRegistry, logger *slog.Logger) *Importer {
	return &Importer{
		registry: registry,
		logger:   logger,
	}
}

// ImportRows validates and registers each row in order. Rows are
// numbered from 1 in the report's error lines. Duplicates inside the
// batch fail the same way duplicates of existing records do: the
// registry's Add is the single enforcement point.
func (im *Importer) ImportRows(rows []RawRow) ImportReport {
	report := ImportReport{Errors: []string{}}
	for i, row := range rows {
		if msg, ok := im.importRow(i+1, row); !ok {
			report.Skipped++
			report.Errors = append(report.Errors, msg)
			continue
		}
		report.Imported++
	}

	im.logger.Info("import finished",
		"rows", len(rows),
		"imported", report.Imported,
		"skipped", report.Skipped,
	)
	return report
}

func (im *Importer) importRow(n int, row RawRow) (string, bool) {
	subnet := strings.TrimSpace(row.IPSubnet)
	vlan := strings.TrimSpace(row.VLANID)
	vlanName := strings.TrimSpace(row.VLANName)
	siteName := strings.TrimSpace(row.SiteName)

	if subnet == "" || vlan == "" || vlanName == "" || siteName == "" {
		return fmt.Sprintf("row %d: missing required fields", n), false
	}
	if !ValidateCIDR(subnet) {
		return fmt.Sprintf("row %d: invalid subnet %q", n, subnet), false
	}
	if !ValidateVLANID(vlan) {
		return fmt.Sprintf("row %d: invalid VLAN ID %q", n, vlan), false
	}
	vlanID, _ := strconv.Atoi(vlan)

	rec, err := NewSubnetRecord(subnet, vlanID, SanitizeCell(vlanName), SanitizeCell(siteName))
	if err != nil {
		return fmt.Sprintf("row %d: %v", n, err), false
	}
	if !im.registry.Add(rec) {
		return fmt.Sprintf("row %d: duplicate subnet %s", n, rec.CIDR), false
	}
	return "", true
}
