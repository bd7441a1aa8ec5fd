package agreements

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/leasewatch/leasewatch/internal/alerts"
)

func sampleAgreement() Agreement {
	return Agreement{
		TenantName:          "Acme Corp",
		AreaSqft:            "4500",
		Floor:               "3rd Floor",
		Building:            "JP Classic",
		PeriodOfRent:        "36",
		RentAmount:          "52.50",
		MaintenanceAmount:   "13",
		RentEscalation:      "5%",
		AgreementStartDate:  "2024-01-15",
		AgreementExpiryDate: "2027-01-15",
		LockInPeriod:        "18",
		LockInPeriodEndDate: "2025-07-15",
		RentalExceedsLockIn: true,
		NextRentEscalation:  "January 2025",
		AlertStatus:         alerts.TierThreeMonths,
	}
}

func TestExportRowDecoration(t *testing.T) {
	row := exportRow(sampleAgreement())

	checks := []struct {
		column string
		index  int
		want   string
	}{
		{"Area (sqft)", 1, "4500 sqft"},
		{"Period of Rent (Months)", 4, "36 months"},
		{"Rent Amount", 5, "Rs 52.50"},
		{"Maintenance", 6, "Rs 13"},
		{"Lock In Period (Months)", 10, "18 months"},
		{"Rental Period > Lock In Period", 12, "True"},
		{"Alert Status", 14, "three_months"},
	}

	for _, c := range checks {
		if row[c.index] != c.want {
			t.Errorf("%s = %q, want %q", c.column, row[c.index], c.want)
		}
	}
}

func TestExportRowEmptyFieldsStayEmpty(t *testing.T) {
	row := exportRow(Agreement{TenantName: "Acme Corp"})

	// Units must not dangle on missing values.
	for _, index := range []int{1, 4, 5, 6, 10} {
		if row[index] != "" {
			t.Errorf("column %d = %q, want empty", index, row[index])
		}
	}

	if row[12] != "False" {
		t.Errorf("lock-in flag = %q, want %q", row[12], "False")
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, []Agreement{sampleAgreement()}); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}

	if got := strings.Join(records[0][:2], ","); got != "Tenant Name,Area (sqft)" {
		t.Errorf("header start = %q, want %q", got, "Tenant Name,Area (sqft)")
	}
	if records[0][len(records[0])-1] != "Alert Status" {
		t.Errorf("last header = %q, want %q", records[0][len(records[0])-1], "Alert Status")
	}

	if records[1][0] != "Acme Corp" {
		t.Errorf("tenant = %q, want %q", records[1][0], "Acme Corp")
	}
	if records[1][5] != "Rs 52.50" {
		t.Errorf("rent = %q, want %q", records[1][5], "Rs 52.50")
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, []Agreement{sampleAgreement()}); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	// XLSX files are zip archives.
	if buf.Len() == 0 || !bytes.HasPrefix(buf.Bytes(), []byte("PK")) {
		t.Error("output is not a zip archive")
	}
}
