package agreements

import (
	"testing"

	"github.com/leasewatch/leasewatch/internal/workflow"
)

func TestCanonicalize(t *testing.T) {
	raw := workflow.LeaseFields{
		TenantName:          "  Acme Corp  ",
		AreaSqft:            "approx. 4500 sq.ft.",
		Floor:               "third floor",
		Building:            "JP-Classic Tower",
		PeriodOfRent:        "3 years",
		RentAmount:          "Rs. 52.50 per sqft",
		MaintenanceAmount:   "Rs.11 per sqft + Rs. 2 for canteen",
		RentEscalation:      "5% per annum",
		AgreementStartDate:  " 2024-01-15 ",
		AgreementExpiryDate: "15/01/2027",
		LockInPeriod:        "18 months",
		LockInPeriodEndDate: "15/07/2025",
		RentalExceedsLockIn: "Yes",
		NextRentEscalation:  "January 2025",
	}

	a := Canonicalize(raw)

	checks := []struct {
		name string
		got  string
		want string
	}{
		{"TenantName", a.TenantName, "Acme Corp"},
		{"AreaSqft", a.AreaSqft, "4500"},
		{"Floor", a.Floor, "3rd Floor"},
		{"Building", a.Building, "JP Classic"},
		{"PeriodOfRent", a.PeriodOfRent, "36"},
		{"RentAmount", a.RentAmount, "52.50"},
		{"MaintenanceAmount", a.MaintenanceAmount, "13"},
		{"RentEscalation", a.RentEscalation, "5%"},
		{"AgreementStartDate", a.AgreementStartDate, "2024-01-15"},
		{"AgreementExpiryDate", a.AgreementExpiryDate, "15/01/2027"},
		{"LockInPeriod", a.LockInPeriod, "18"},
		{"LockInPeriodEndDate", a.LockInPeriodEndDate, "15/07/2025"},
		{"NextRentEscalation", a.NextRentEscalation, "January 2025"},
	}

	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s = %q, want %q", c.name, c.got, c.want)
		}
	}

	if !a.RentalExceedsLockIn {
		t.Error("RentalExceedsLockIn = false, want true")
	}
}

func TestCanonicalizeEmptyFields(t *testing.T) {
	a := Canonicalize(workflow.LeaseFields{})

	if a.TenantName != "" || a.AreaSqft != "" || a.PeriodOfRent != "" {
		t.Errorf("empty input produced non-empty canonical fields: %+v", a)
	}

	if a.RentalExceedsLockIn {
		t.Error("RentalExceedsLockIn = true, want false for empty input")
	}
}

func TestApplyNormalizesSuppliedValues(t *testing.T) {
	a := Agreement{
		TenantName:   "Acme Corp",
		PeriodOfRent: "36",
		RentAmount:   "52.50",
	}

	period := "2 years"
	flag := "yes"
	a.apply(UpdateCommand{
		PeriodOfRent:        &period,
		RentalExceedsLockIn: &flag,
	})

	if a.PeriodOfRent != "24" {
		t.Errorf("PeriodOfRent = %q, want %q", a.PeriodOfRent, "24")
	}
	if !a.RentalExceedsLockIn {
		t.Error("RentalExceedsLockIn = false, want true")
	}
	if a.TenantName != "Acme Corp" {
		t.Errorf("TenantName = %q, want untouched %q", a.TenantName, "Acme Corp")
	}
	if a.RentAmount != "52.50" {
		t.Errorf("RentAmount = %q, want untouched %q", a.RentAmount, "52.50")
	}
}

func TestApplyIdempotentOnCanonicalValues(t *testing.T) {
	// Normalization is idempotent, so resubmitting a stored canonical
	// value through an update must not change it.
	a := Agreement{PeriodOfRent: "36", RentEscalation: "5%"}

	period := a.PeriodOfRent
	escalation := a.RentEscalation
	a.apply(UpdateCommand{
		PeriodOfRent:   &period,
		RentEscalation: &escalation,
	})

	if a.PeriodOfRent != "36" {
		t.Errorf("PeriodOfRent = %q, want %q", a.PeriodOfRent, "36")
	}
	if a.RentEscalation != "5%" {
		t.Errorf("RentEscalation = %q, want %q", a.RentEscalation, "5%")
	}
}
