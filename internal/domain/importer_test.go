package domain

import (
	"strings"
	"testing"
)

func newTestImporter() (*Importer, SubnetRegistry) {
	reg := NewSubnetRegistry(stubSubnetStore{}, discardLogger())
	return NewImporter(reg, discardLogger()), reg
}

func TestImportRowsRegistersValidRows(t *testing.T) {
	im, reg := newTestImporter()

	report := im.ImportRows([]RawRow{
		{IPSubnet: "10.0.0.0/24", VLANID: "10", VLANName: "mgmt", SiteName: "hq"},
		{IPSubnet: "10.0.1.0/24", VLANID: "20", VLANName: "users", SiteName: "hq"},
		{IPSubnet: "10.0.2.0/24", VLANID: "30", VLANName: "voice", SiteName: "branch"},
	})

	if report.Imported != 3 || report.Skipped != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if len(report.Errors) != 0 {
		t.Fatalf("expected no error lines, got %v", report.Errors)
	}
	if len(reg.GetAll()) != 3 {
		t.Fatalf("expected 3 registered subnets, got %d", len(reg.GetAll()))
	}
}

func TestImportRowsSkipsDuplicateOfExistingRecord(t *testing.T) {
	im, reg := newTestImporter()
	mustAdd(t, reg, "10.0.0.0/24", 10)

	report := im.ImportRows([]RawRow{
		{IPSubnet: "10.0.1.0/24", VLANID: "20", VLANName: "users", SiteName: "hq"},
		{IPSubnet: "10.0.2.0/24", VLANID: "30", VLANName: "voice", SiteName: "hq"},
		{IPSubnet: "10.0.3.0/24", VLANID: "40", VLANName: "lab", SiteName: "hq"},
		{IPSubnet: "10.0.0.0/24", VLANID: "99", VLANName: "dup", SiteName: "hq"},
	})

	if report.Imported != 3 {
		t.Fatalf("expected 3 imported, got %d", report.Imported)
	}
	if report.Skipped != 1 {
		t.Fatalf("expected 1 skipped, got %d", report.Skipped)
	}
	if len(report.Errors) != 1 {
		t.Fatalf("expected exactly one error line, got %v", report.Errors)
	}
	if report.Errors[0] != "row 4: duplicate subnet 10.0.0.0/24" {
		t.Fatalf("unexpected error line: %q", report.Errors[0])
	}
}

func TestImportRowsCatchesDuplicateInsideBatch(t *testing.T) {
	im, _ := newTestImporter()

	report := im.ImportRows([]RawRow{
		{IPSubnet: "10.0.0.0/24", VLANID: "10", VLANName: "mgmt", SiteName: "hq"},
		{IPSubnet: "10.0.0.0/24", VLANID: "20", VLANName: "again", SiteName: "hq"},
	})

	if report.Imported != 1 || report.Skipped != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.Errors[0] != "row 2: duplicate subnet 10.0.0.0/24" {
		t.Fatalf("unexpected error line: %q", report.Errors[0])
	}
}

func TestImportRowsReportsEachFailureKind(t *testing.T) {
	im, reg := newTestImporter()

	report := im.ImportRows([]RawRow{
		{IPSubnet: "", VLANID: "10", VLANName: "mgmt", SiteName: "hq"},
		{IPSubnet: "10.0.0.5/24", VLANID: "10", VLANName: "mgmt", SiteName: "hq"},
		{IPSubnet: "10.0.0.0/24", VLANID: "4095", VLANName: "mgmt", SiteName: "hq"},
		{IPSubnet: "10.0.1.0/24", VLANID: "10", VLANName: "mgmt", SiteName: "hq"},
	})

	if report.Imported != 1 || report.Skipped != 3 {
		t.Fatalf("unexpected report: %+v", report)
	}
	want := []string{
		"row 1: missing required fields",
		`row 2: invalid subnet "10.0.0.5/24"`,
		`row 3: invalid VLAN ID "4095"`,
	}
	if len(report.Errors) != len(want) {
		t.Fatalf("expected %d error lines, got %v", len(want), report.Errors)
	}
	for i, line := range want {
		if report.Errors[i] != line {
			t.Fatalf("error line %d = %q, want %q", i, report.Errors[i], line)
		}
	}
	if len(reg.GetAll()) != 1 {
		t.Fatalf("expected 1 registered subnet, got %d", len(reg.GetAll()))
	}
}

func TestImportRowsSanitizesDisplayStrings(t *testing.T) {
	im, reg := newTestImporter()

	report := im.ImportRows([]RawRow{
		{IPSubnet: "10.0.0.0/24", VLANID: "10", VLANName: "=SUM(A1:A9)", SiteName: "@HQ"},
	})
	if report.Imported != 1 {
		t.Fatalf("expected the row to import, got %+v", report)
	}

	rec := reg.GetAll()[0]
	if rec.VLANName != "'=SUM(A1:A9)" {
		t.Fatalf("expected quoted VLAN name, got %q", rec.VLANName)
	}
	if rec.SiteName != "'@HQ" {
		t.Fatalf("expected quoted site name, got %q", rec.SiteName)
	}
}

func TestImportRowsNeverSanitizesSubnetField(t *testing.T) {
	im, _ := newTestImporter()

	// A subnet that would survive only if it were quoted must simply
	// fail validation instead.
	report := im.ImportRows([]RawRow{
		{IPSubnet: "=10.0.0.0/24", VLANID: "10", VLANName: "mgmt", SiteName: "hq"},
	})
	if report.Imported != 0 || report.Skipped != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if !strings.Contains(report.Errors[0], "invalid subnet") {
		t.Fatalf("unexpected error line: %q", report.Errors[0])
	}
}

func TestImportRowsEmptyBatch(t *testing.T) {
	im, _ := newTestImporter()

	report := im.ImportRows(nil)
	if report.Imported != 0 || report.Skipped != 0 || len(report.Errors) != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestImportRowsTrimsFieldsBeforeValidation(t *testing.T) {
	im, reg := newTestImporter()

	report := im.ImportRows([]RawRow{
		{IPSubnet: " 10.0.0.0/24 ", VLANID: " 10 ", VLANName: " mgmt ", SiteName: " hq "},
	})
	if report.Imported != 1 {
		t.Fatalf("expected the row to import, got %+v", report)
	}
	rec := reg.GetAll()[0]
	if rec.CIDR != "10.0.0.0/24" || rec.VLANID != 10 || rec.VLANName != "mgmt" || rec.SiteName != "hq" {
		t.Fatalf("unexpected stored record: %+v", rec)
	}
}
