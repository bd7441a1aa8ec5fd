package agreements

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/leasewatch/leasewatch/internal/normalize"
)

// exportHeaders matches the column layout of the agreement overview table.
var exportHeaders = []string{
	"Tenant Name",
	"Area (sqft)",
	"Floor",
	"Building",
	"Period of Rent (Months)",
	"Rent Amount (₹/sqft/month)",
	"Maintenance (₹/sqft/month)",
	"Rent Escalation (% per year)",
	"Agreement Start Date",
	"Agreement Expiry Date",
	"Lock In Period (Months)",
	"Lock In Period End Date",
	"Rental Period > Lock In Period",
	"Next Rent Escalation",
	"Alert Status",
}

// exportRow renders an agreement for export. Numeric fields carry their
// display units and the lock-in flag is rendered as the legacy
// "True"/"False" strings; empty values stay empty rather than picking up
// dangling units.
func exportRow(a Agreement) []string {
	return []string{
		a.TenantName,
		decorate("%s sqft", a.AreaSqft),
		a.Floor,
		a.Building,
		decorate("%s months", a.PeriodOfRent),
		decorate("Rs %s", a.RentAmount),
		decorate("Rs %s", a.MaintenanceAmount),
		a.RentEscalation,
		a.AgreementStartDate,
		a.AgreementExpiryDate,
		decorate("%s months", a.LockInPeriod),
		a.LockInPeriodEndDate,
		normalize.FormatFlag(a.RentalExceedsLockIn),
		a.NextRentEscalation,
		string(a.AlertStatus),
	}
}

func decorate(format, value string) string {
	if value == "" {
		return ""
	}
	return fmt.Sprintf(format, value)
}

// WriteCSV writes agreements to w in CSV form with a header row.
func WriteCSV(w io.Writer, items []Agreement) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(exportHeaders); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, a := range items {
		if err := cw.Write(exportRow(a)); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes agreements to w as a single-sheet workbook with a
// styled header row.
func WriteXLSX(w io.Writer, items []Agreement) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Agreements"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	for i, header := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	for rowIdx, a := range items {
		for colIdx, value := range exportRow(a) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	for i := range exportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, 18)
	}

	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
