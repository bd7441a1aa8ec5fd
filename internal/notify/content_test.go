package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/leasewatch/leasewatch/internal/agreements"
	"github.com/leasewatch/leasewatch/internal/alerts"
)

func TestSubject(t *testing.T) {
	tests := []struct {
		name string
		tier alerts.Tier
		want string
	}{
		{"three months", alerts.TierThreeMonths, "Agreement Expiry Notice - 3 Months Remaining (Acme Corp)"},
		{"two months", alerts.TierTwoMonths, "Agreement Expiry Alert - 2 Months Remaining (Acme Corp)"},
		{"one month", alerts.TierOneMonth, "URGENT: Agreement Expiry - 1 Month Remaining (Acme Corp)"},
		{"expired", alerts.TierExpired, "CRITICAL: Agreement Expired (Acme Corp)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Subject(tt.tier, "Acme Corp"); got != tt.want {
				t.Errorf("Subject() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildEmail(t *testing.T) {
	a := agreements.Agreement{
		TenantName:          "Acme Corp",
		AreaSqft:            "4500",
		Floor:               "3rd Floor",
		Building:            "JP Classic",
		AgreementStartDate:  "2024-01-15",
		AgreementExpiryDate: "2026-11-15",
		RentAmount:          "52.50",
		LockInPeriodEndDate: "2025-07-15",
	}

	now := time.Date(2026, time.August, 29, 10, 0, 0, 0, time.UTC)
	subject, body, err := BuildEmail(a, alerts.TierTwoMonths, now)
	if err != nil {
		t.Fatalf("BuildEmail: %v", err)
	}

	if subject != "Agreement Expiry Alert - 2 Months Remaining (Acme Corp)" {
		t.Errorf("subject = %q", subject)
	}

	for _, want := range []string{
		"Acme Corp",
		"August 29, 2026",
		"alert-two_months",
		"Please begin renewal negotiations immediately.",
		"4500 sqft",
		"Rs 52.50/sqft/month",
		"2026-11-15",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestBuildEmailMissingFields(t *testing.T) {
	a := agreements.Agreement{TenantName: "Acme Corp"}

	now := time.Date(2026, time.August, 29, 10, 0, 0, 0, time.UTC)
	_, body, err := BuildEmail(a, alerts.TierExpired, now)
	if err != nil {
		t.Fatalf("BuildEmail: %v", err)
	}

	if !strings.Contains(body, "N/A sqft") {
		t.Error("missing area should render as N/A")
	}
	if !strings.Contains(body, "Agreement has expired. Please contact management immediately.") {
		t.Error("body missing expired action")
	}
}

func TestBuildEmailUnknownTier(t *testing.T) {
	if _, _, err := BuildEmail(agreements.Agreement{}, alerts.TierNone, time.Now()); err == nil {
		t.Error("expected error for empty tier")
	}
}
