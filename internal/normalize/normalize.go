// Package normalize converts noisy, free-text lease field values into
// canonical string forms. Every function is total and idempotent: no input
// produces an error, and applying a function to its own output returns the
// same value. The empty string is the explicit "no value" sentinel, because
// the upstream extraction is unreliable and a partially populated record
// must still render.
package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	integerPattern = regexp.MustCompile(`\d+`)
	decimalPattern = regexp.MustCompile(`\d+\.?\d*`)
)

// PeriodMonths converts a rental or lock-in period to a month count.
// The first integer in the text is scaled by the unit keyword it appears
// with: "year" multiplies by 12, "quarter" by 3, and "month" or no unit at
// all is taken as months. Returns "" when the text holds no digits.
func PeriodMonths(s string) string {
	period := strings.ToLower(strings.TrimSpace(s))
	if period == "" {
		return ""
	}

	match := integerPattern.FindString(period)
	if match == "" {
		return ""
	}

	n, err := strconv.Atoi(match)
	if err != nil {
		return ""
	}

	switch {
	case strings.Contains(period, "year"):
		n *= 12
	case strings.Contains(period, "month"):
		// already months
	case strings.Contains(period, "quarter"):
		n *= 3
	}

	return strconv.Itoa(n)
}

// RentAmount extracts the first decimal number from a rent description and
// returns it verbatim, fractional part included. Returns "" when no number
// is present.
func RentAmount(s string) string {
	rent := strings.TrimSpace(s)
	if rent == "" {
		return ""
	}
	return decimalPattern.FindString(rent)
}

// Maintenance extracts every decimal number in the text and returns their
// sum, covering composite charges such as "Rs.11 per sqft + Rs. 2 for
// canteen". Whole sums render without a fractional part. Returns "" when no
// numbers are present.
func Maintenance(s string) string {
	text := strings.TrimSpace(s)
	if text == "" {
		return ""
	}

	matches := decimalPattern.FindAllString(text, -1)
	if len(matches) == 0 {
		return ""
	}

	var total float64
	for _, m := range matches {
		n, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		total += n
	}

	if total == float64(int64(total)) {
		return strconv.FormatInt(int64(total), 10)
	}
	return strconv.FormatFloat(total, 'f', -1, 64)
}

// RentEscalation extracts the first decimal number and appends a percent
// sign, whether or not the source text carried one. Returns "" when no
// number is present.
func RentEscalation(s string) string {
	escalation := strings.TrimSpace(s)
	if escalation == "" {
		return ""
	}

	match := decimalPattern.FindString(escalation)
	if match == "" {
		return ""
	}
	return match + "%"
}

// AreaSqft extracts the first integer from an area description. Area is
// always a whole number in this domain, so fractional values are not
// recognized. Returns "" when no digits are present.
func AreaSqft(s string) string {
	area := strings.TrimSpace(s)
	if area == "" {
		return ""
	}
	return integerPattern.FindString(area)
}

// floorRule maps floor synonyms to a canonical label. Substrings match
// anywhere in the input; exact values must equal the whole trimmed input.
type floorRule struct {
	label      string
	substrings []string
	exact      []string
}

// Ordered: first matching rule wins.
var floorRules = []floorRule{
	{"Ground Floor", []string{"ground", "g.f"}, []string{"gf", "0"}},
	{"1st Floor", []string{"1st", "first"}, []string{"1", "f1"}},
	{"2nd Floor", []string{"2nd", "second"}, []string{"2", "f2"}},
	{"3rd Floor", []string{"3rd", "third"}, []string{"3", "f3"}},
	{"4th Floor", []string{"4th", "fourth"}, []string{"4", "f4"}},
	{"5th Floor", []string{"5th", "fifth"}, []string{"5", "f5"}},
}

// Floor standardizes floor descriptions against a closed label set, Ground
// Floor through 5th Floor. Matching is case-insensitive. Unrecognized input
// passes through trimmed rather than defaulting to empty, preserving
// whatever the extraction produced for manual review.
func Floor(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}

	lower := strings.ToLower(trimmed)
	for _, rule := range floorRules {
		for _, sub := range rule.substrings {
			if strings.Contains(lower, sub) {
				return rule.label
			}
		}
		for _, exact := range rule.exact {
			if lower == exact {
				return rule.label
			}
		}
	}

	return trimmed
}

// Building standardizes building names against the two known buildings.
// Matching is a case-insensitive substring test accepting spaced and
// hyphenated spellings. Unrecognized input passes through trimmed.
func Building(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ""
	}

	lower := strings.ToLower(trimmed)
	switch {
	case strings.Contains(lower, "jp classic") || strings.Contains(lower, "jp-classic"):
		return "JP Classic"
	case strings.Contains(lower, "silver software") || strings.Contains(lower, "silver-software"):
		return "Silver Software"
	}

	return trimmed
}

// Flag interprets an extracted yes/no value as a boolean. The extraction
// layer may hand back a native boolean or a string; affirmative strings are
// "yes", "true", and "1", negative strings "no", "false", and "0"
// (case-insensitive, trimmed). Anything else, including absent values,
// defaults to false rather than signaling an error.
func Flag(v any) bool {
	switch value := v.(type) {
	case bool:
		return value
	case string:
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "yes", "true", "1":
			return true
		}
	}
	return false
}

// FormatFlag renders a boolean in the legacy "True"/"False" encoding used
// by stored records and spreadsheet exports.
func FormatFlag(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
