// Package alerts classifies lease agreements into expiry alert tiers.
// Classification is a pure function of the expiry date text and the
// reference date, so callers inject "today" and tests stay deterministic.
package alerts

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Tier is an expiry-proximity classification. The five tiers partition all
// of time relative to the expiry date; TierNone doubles as the result for
// missing or unparsable dates.
type Tier string

// Alert tiers, ordered by increasing urgency.
const (
	TierNone        Tier = ""
	TierThreeMonths Tier = "three_months"
	TierTwoMonths   Tier = "two_months"
	TierOneMonth    Tier = "one_month"
	TierExpired     Tier = "expired"
)

// Tiers returns the non-empty alert tiers in escalation order.
func Tiers() []Tier {
	return []Tier{TierThreeMonths, TierTwoMonths, TierOneMonth, TierExpired}
}

// Active reports whether the tier warrants a notification.
func (t Tier) Active() bool {
	return t != TierNone
}

// ErrUnparsableDate is returned when an expiry date matches none of the
// accepted formats.
var ErrUnparsableDate = errors.New("unparsable expiry date")

// dateFormats is the ordered list of accepted expiry date layouts. The
// first successful parse wins, so day-first slash and dash variants take
// precedence over their month-first counterparts. Unpadded layout elements
// accept both padded and unpadded components.
var dateFormats = []string{
	"2006-1-2",        // ISO
	"2/1/2006",        // day/month/year
	"1/2/2006",        // month/day/year
	"2-1-2006",        // day-month-year
	"2006/1/2",        // year/month/day
	"1-2-2006",        // month-day-year
	"2.1.2006",        // day.month.year
	"2006.1.2",        // year.month.day
	"January 2, 2006", // long month, comma
	"2 January 2006",  // long month, day first
	"Jan 2, 2006",     // short month, comma
	"2 Jan 2006",      // short month, day first
}

// ParseDate parses an expiry date against the accepted format table.
// Returns ErrUnparsableDate when every format fails.
func ParseDate(s string) (time.Time, error) {
	text := strings.TrimSpace(s)
	for _, layout := range dateFormats {
		if parsed, err := time.Parse(layout, text); err == nil {
			return DateOnly(parsed), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnparsableDate, s)
}

// DateOnly truncates a timestamp to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Classify buckets today against the expiry date text. Missing and
// unparsable dates yield TierNone; the parse failure is deliberately
// swallowed because a record without a readable expiry date must still
// render without an alert. Use ClassifyDate when the failure should be
// observed.
func Classify(expiryText string, today time.Time) Tier {
	tier, _ := ClassifyDate(expiryText, today)
	return tier
}

// ClassifyDate buckets today against the expiry date text, additionally
// reporting an unparsable date so the caller can log it. The returned tier
// is always valid: empty input and parse failures both produce TierNone.
//
// The five intervals are half-open, left-closed, and evaluated in order:
//
//	today <  T-90d          → TierNone
//	T-90d <= today < T-60d  → TierThreeMonths
//	T-60d <= today < T-30d  → TierTwoMonths
//	T-30d <= today < T      → TierOneMonth
//	today >= T              → TierExpired
func ClassifyDate(expiryText string, today time.Time) (Tier, error) {
	if strings.TrimSpace(expiryText) == "" {
		return TierNone, nil
	}

	expiry, err := ParseDate(expiryText)
	if err != nil {
		return TierNone, err
	}

	return ClassifyExpiry(expiry, today), nil
}

// ClassifyExpiry buckets today against an already-parsed expiry date.
// Both arguments are truncated to calendar days; thresholds are calendar
// days before expiry, not calendar months.
func ClassifyExpiry(expiry, today time.Time) Tier {
	expiry = DateOnly(expiry)
	day := DateOnly(today)

	threeMonthsBefore := expiry.AddDate(0, 0, -90)
	twoMonthsBefore := expiry.AddDate(0, 0, -60)
	oneMonthBefore := expiry.AddDate(0, 0, -30)

	switch {
	case day.Before(threeMonthsBefore):
		return TierNone
	case day.Before(twoMonthsBefore):
		return TierThreeMonths
	case day.Before(oneMonthBefore):
		return TierTwoMonths
	case day.Before(expiry):
		return TierOneMonth
	default:
		return TierExpired
	}
}
