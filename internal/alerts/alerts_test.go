package alerts_test

import (
	"errors"
	"testing"
	"time"

	"github.com/leasewatch/leasewatch/internal/alerts"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassifyBoundaries(t *testing.T) {
	// Expiry 2025-06-01: thresholds fall on 03-03 (T-90d), 04-02 (T-60d),
	// and 05-02 (T-30d).
	const expiry = "2025-06-01"

	tests := []struct {
		name  string
		today time.Time
		want  alerts.Tier
	}{
		{"day before 90-day window", date(2025, 3, 2), alerts.TierNone},
		{"exactly 90 days out", date(2025, 3, 3), alerts.TierThreeMonths},
		{"day before 60-day window", date(2025, 4, 1), alerts.TierThreeMonths},
		{"exactly 60 days out", date(2025, 4, 2), alerts.TierTwoMonths},
		{"day before 30-day window", date(2025, 5, 1), alerts.TierTwoMonths},
		{"exactly 30 days out", date(2025, 5, 2), alerts.TierOneMonth},
		{"day before expiry", date(2025, 5, 31), alerts.TierOneMonth},
		{"expiry day", date(2025, 6, 1), alerts.TierExpired},
		{"long expired", date(2026, 1, 1), alerts.TierExpired},
		{"far future", date(2024, 1, 1), alerts.TierNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := alerts.Classify(expiry, tt.today); got != tt.want {
				t.Errorf("Classify(%q, %s) = %q, want %q", expiry, tt.today.Format(time.DateOnly), got, tt.want)
			}
		})
	}
}

func TestClassifyFormatBreadth(t *testing.T) {
	// Every accepted spelling of 1 March 2025 must classify identically.
	spellings := []string{
		"2025-03-01",
		"01/03/2025",
		"1/3/2025",
		"01-03-2025",
		"2025/03/01",
		"01.03.2025",
		"2025.03.01",
		"March 1, 2025",
		"1 March 2025",
		"Mar 1, 2025",
		"1 Mar 2025",
	}

	today := date(2025, 1, 15)
	want := alerts.Classify("2025-03-01", today)
	if want == alerts.TierNone {
		t.Fatal("reference date should classify into an active tier")
	}

	for _, s := range spellings {
		if got := alerts.Classify(s, today); got != want {
			t.Errorf("Classify(%q) = %q, want %q", s, got, want)
		}
	}
}

func TestClassifyDegradesSilently(t *testing.T) {
	today := date(2025, 1, 1)

	t.Run("empty date", func(t *testing.T) {
		tier, err := alerts.ClassifyDate("", today)
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if tier != alerts.TierNone {
			t.Errorf("tier = %q, want none", tier)
		}
	})

	t.Run("whitespace date", func(t *testing.T) {
		tier, err := alerts.ClassifyDate("   ", today)
		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if tier != alerts.TierNone {
			t.Errorf("tier = %q, want none", tier)
		}
	})

	t.Run("unparsable date reports but does not fail", func(t *testing.T) {
		tier, err := alerts.ClassifyDate("sometime next spring", today)
		if !errors.Is(err, alerts.ErrUnparsableDate) {
			t.Errorf("error = %v, want ErrUnparsableDate", err)
		}
		if tier != alerts.TierNone {
			t.Errorf("tier = %q, want none", tier)
		}
		if got := alerts.Classify("sometime next spring", today); got != alerts.TierNone {
			t.Errorf("Classify = %q, want none", got)
		}
	})
}

// Exactly one tier applies for any (expiry, today) pair: sweeping a window
// around the expiry date must produce each tier in escalation order with no
// gaps.
func TestClassifyPartition(t *testing.T) {
	expiry := date(2025, 6, 1)

	var previous alerts.Tier
	order := map[alerts.Tier]int{
		alerts.TierNone:        0,
		alerts.TierThreeMonths: 1,
		alerts.TierTwoMonths:   2,
		alerts.TierOneMonth:    3,
		alerts.TierExpired:     4,
	}

	seen := make(map[alerts.Tier]bool)
	for offset := -120; offset <= 30; offset++ {
		today := expiry.AddDate(0, 0, offset)
		tier := alerts.ClassifyExpiry(expiry, today)
		seen[tier] = true

		if order[tier] < order[previous] {
			t.Fatalf("tier regressed from %q to %q at offset %d", previous, tier, offset)
		}
		previous = tier
	}

	for tier, idx := range order {
		if !seen[tier] {
			t.Errorf("tier %q (order %d) never produced across sweep", tier, idx)
		}
	}
}

func TestParseDate(t *testing.T) {
	t.Run("time component stripped", func(t *testing.T) {
		got, err := alerts.ParseDate("2025-06-01")
		if err != nil {
			t.Fatalf("ParseDate error: %v", err)
		}
		if !got.Equal(date(2025, 6, 1)) {
			t.Errorf("ParseDate = %v, want 2025-06-01", got)
		}
	})

	t.Run("day-first wins for ambiguous slash dates", func(t *testing.T) {
		got, err := alerts.ParseDate("05/03/2025")
		if err != nil {
			t.Fatalf("ParseDate error: %v", err)
		}
		if !got.Equal(date(2025, 3, 5)) {
			t.Errorf("ParseDate = %v, want 5 March 2025", got)
		}
	})

	t.Run("month-first accepted when day-first impossible", func(t *testing.T) {
		got, err := alerts.ParseDate("12/25/2025")
		if err != nil {
			t.Fatalf("ParseDate error: %v", err)
		}
		if !got.Equal(date(2025, 12, 25)) {
			t.Errorf("ParseDate = %v, want 25 December 2025", got)
		}
	})

	t.Run("garbage errors", func(t *testing.T) {
		if _, err := alerts.ParseDate("next tuesday"); !errors.Is(err, alerts.ErrUnparsableDate) {
			t.Errorf("error = %v, want ErrUnparsableDate", err)
		}
	})
}

func TestTiers(t *testing.T) {
	tiers := alerts.Tiers()
	if len(tiers) != 4 {
		t.Fatalf("len(Tiers) = %d, want 4", len(tiers))
	}
	if tiers[0] != alerts.TierThreeMonths || tiers[3] != alerts.TierExpired {
		t.Errorf("Tiers() = %v, want escalation order", tiers)
	}

	if alerts.TierNone.Active() {
		t.Error("TierNone should not be active")
	}
	for _, tier := range tiers {
		if !tier.Active() {
			t.Errorf("%q should be active", tier)
		}
	}
}
