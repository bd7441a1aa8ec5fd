package normalize_test

import (
	"testing"

	"github.com/leasewatch/leasewatch/internal/normalize"
)

func TestPeriodMonths(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"years convert to months", "2 years", "24"},
		{"single year", "1 year", "12"},
		{"months pass through", "6 months", "6"},
		{"quarters convert to months", "2 quarters", "6"},
		{"bare number defaults to months", "18", "18"},
		{"number with noise", "period of 36 months approx", "36"},
		{"mixed case unit", "3 Years", "36"},
		{"no digits", "two years", ""},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize.PeriodMonths(tt.input); got != tt.want {
				t.Errorf("PeriodMonths(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRentAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"integer rent", "Rs 72 per sqft per month", "72"},
		{"decimal rent", "Rs. 90.50 per square foot per month", "90.50"},
		{"bare number", "85", "85"},
		{"no number", "to be negotiated", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize.RentAmount(tt.input); got != tt.want {
				t.Errorf("RentAmount(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMaintenance(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"composite charge sums", "Rs.11 per sqft + Rs. 2 for canteen", "13"},
		{"single charge", "Rs 10 per sqft per month", "10"},
		{"decimal components", "8.25 plus 2", "10.25"},
		{"whole sum renders as integer", "7.5 + 2.5", "10"},
		{"decimal result keeps fraction", "8.5", "8.5"},
		{"no numbers", "included in rent", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize.Maintenance(tt.input); got != tt.want {
				t.Errorf("Maintenance(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRentEscalation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare number gains percent", "7", "7%"},
		{"percent with noise", "5% annually", "5%"},
		{"already canonical", "7%", "7%"},
		{"decimal escalation", "7.5 percent", "7.5%"},
		{"no number", "as per market", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize.RentEscalation(tt.input); got != tt.want {
				t.Errorf("RentEscalation(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAreaSqft(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"area with noise", "ad measuring 3200 sqft", "3200"},
		{"bare number", "1500", "1500"},
		{"integer prefix of decimal", "950.75 sqft", "950"},
		{"no digits", "entire floor", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize.AreaSqft(tt.input); got != tt.want {
				t.Errorf("AreaSqft(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFloor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"ground keyword", "Ground floor of the building", "Ground Floor"},
		{"gf abbreviation", "GF", "Ground Floor"},
		{"g.f abbreviation", "G.F.", "Ground Floor"},
		{"zero", "0", "Ground Floor"},
		{"1st", "1st floor", "1st Floor"},
		{"first word", "First", "1st Floor"},
		{"bare 1", "1", "1st Floor"},
		{"f2 code", "f2", "2nd Floor"},
		{"third word", "third floor", "3rd Floor"},
		{"fourth word", "Fourth", "4th Floor"},
		{"fifth word", "FIFTH FLOOR", "5th Floor"},
		{"unmatched passes through trimmed", "  Mezzanine  ", "Mezzanine"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize.Floor(tt.input); got != tt.want {
				t.Errorf("Floor(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBuilding(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"jp classic spaced", "1st Floor of JP Classic", "JP Classic"},
		{"jp classic hyphenated", "jp-classic", "JP Classic"},
		{"silver software", "Silver Software building", "Silver Software"},
		{"silver software hyphenated", "SILVER-SOFTWARE", "Silver Software"},
		{"unmatched passes through trimmed", " Tower B ", "Tower B"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize.Building(tt.input); got != tt.want {
				t.Errorf("Building(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFlag(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  bool
	}{
		{"native true", true, true},
		{"native false", false, false},
		{"yes", "yes", true},
		{"true string", "True", true},
		{"one", "1", true},
		{"no", "no", false},
		{"false string", "False", false},
		{"zero", "0", false},
		{"unclear defaults false", "maybe", false},
		{"empty defaults false", "", false},
		{"nil defaults false", nil, false},
		{"padded yes", "  YES  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize.Flag(tt.input); got != tt.want {
				t.Errorf("Flag(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatFlag(t *testing.T) {
	if got := normalize.FormatFlag(true); got != "True" {
		t.Errorf("FormatFlag(true) = %q, want True", got)
	}
	if got := normalize.FormatFlag(false); got != "False" {
		t.Errorf("FormatFlag(false) = %q, want False", got)
	}
}

// Re-normalizing a canonical value must always return the same value:
// stored records were historically re-normalized on every read, so any
// drift would corrupt them over time.
func TestIdempotence(t *testing.T) {
	stringFns := map[string]func(string) string{
		"PeriodMonths":   normalize.PeriodMonths,
		"RentAmount":     normalize.RentAmount,
		"Maintenance":    normalize.Maintenance,
		"RentEscalation": normalize.RentEscalation,
		"AreaSqft":       normalize.AreaSqft,
		"Floor":          normalize.Floor,
		"Building":       normalize.Building,
	}

	inputs := []string{
		"", "   ", "2 years", "6 months", "18", "Rs 72 per sqft",
		"Rs. 90.50 per sqft", "Rs.11 + Rs. 2", "7% annually", "3200 sqft",
		"Ground Floor", "1st floor", "jp classic", "Silver Software",
		"Mezzanine", "no digits here", "0", "f3",
	}

	for name, fn := range stringFns {
		t.Run(name, func(t *testing.T) {
			for _, input := range inputs {
				once := fn(input)
				twice := fn(once)
				if once != twice {
					t.Errorf("%s not idempotent for %q: first %q, second %q", name, input, once, twice)
				}
			}
		})
	}
}
