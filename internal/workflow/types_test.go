package workflow

import "testing"

func TestLeaseFieldsMergeFillsGaps(t *testing.T) {
	first := LeaseFields{
		TenantName: "Acme Corp",
		AreaSqft:   "1200 sqft",
	}
	second := LeaseFields{
		TenantName:          "Wrong Name",
		AgreementExpiryDate: "2025-06-01",
		RentAmount:          "Rs 85 per sqft",
	}

	var merged LeaseFields
	merged.Merge(first)
	merged.Merge(second)

	if merged.TenantName != "Acme Corp" {
		t.Errorf("TenantName = %q, want Acme Corp (first page wins)", merged.TenantName)
	}
	if merged.AreaSqft != "1200 sqft" {
		t.Errorf("AreaSqft = %q, want 1200 sqft", merged.AreaSqft)
	}
	if merged.AgreementExpiryDate != "2025-06-01" {
		t.Errorf("AgreementExpiryDate = %q, want 2025-06-01", merged.AgreementExpiryDate)
	}
	if merged.RentAmount != "Rs 85 per sqft" {
		t.Errorf("RentAmount = %q, want Rs 85 per sqft", merged.RentAmount)
	}
}

func TestLeaseFieldsMergeEmptySource(t *testing.T) {
	base := LeaseFields{TenantName: "Acme Corp"}
	base.Merge(LeaseFields{})

	if base.TenantName != "Acme Corp" {
		t.Errorf("TenantName = %q, want Acme Corp", base.TenantName)
	}
}

func TestLeaseFieldsEmpty(t *testing.T) {
	var fields LeaseFields
	if !fields.Empty() {
		t.Error("zero value should be empty")
	}

	fields.Floor = "3rd"
	if fields.Empty() {
		t.Error("populated fields should not be empty")
	}
}
