package csv

import (
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MoeSaid22/subnet-registry/internal/domain"
)

// columns is the import/export contract, in export order.
var columns = []string{"IP_Subnet", "VLAN_ID", "VLAN_Name", "Site_Name"}

// ParseSubnetRows reads one subnet CSV document. The first record must
// be a header naming the four contract columns, matched
// case-insensitively in any order; extra columns are ignored. Data
// rows shorter than the header come back padded with empty fields, so
// the importer can reject them row by row instead of the whole
// document failing.
func ParseSubnetRows(r io.Reader) ([]domain.RawRow, error) {
	cr := stdcsv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	head, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("document has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	// Spreadsheet exports often lead with a UTF-8 BOM glued to the
	// first header cell.
	head[0] = strings.TrimPrefix(head[0], "﻿")

	cols, err := locateColumns(head)
	if err != nil {
		return nil, err
	}

	var rows []domain.RawRow
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		if isBlank(record) {
			continue
		}
		rows = append(rows, domain.RawRow{
			IPSubnet: field(record, cols[0]),
			VLANID:   field(record, cols[1]),
			VLANName: field(record, cols[2]),
			SiteName: field(record, cols[3]),
		})
	}
	return rows, nil
}

// WriteSubnetRows writes records in the contract's column order,
// values exactly as stored. CRLF endings keep the export friendly to
// spreadsheet tools.
func WriteSubnetRows(w io.Writer, records []domain.SubnetRecord) error {
	cw := stdcsv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, rec := range records {
		row := []string{rec.CIDR, strconv.Itoa(rec.VLANID), rec.VLANName, rec.SiteName}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write %s: %w", rec.CIDR, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// locateColumns maps each contract column to its position in the
// header. The first occurrence wins when a column repeats.
func locateColumns(head []string) ([4]int, error) {
	cols := [4]int{-1, -1, -1, -1}
	for i, cell := range head {
		name := strings.TrimSpace(cell)
		for j, want := range columns {
			if cols[j] == -1 && strings.EqualFold(name, want) {
				cols[j] = i
			}
		}
	}

	var missing []string
	for j, idx := range cols {
		if idx == -1 {
			missing = append(missing, columns[j])
		}
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("header is missing columns: %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

func field(record []string, idx int) string {
	if idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
