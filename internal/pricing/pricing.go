// Package pricing looks up competitor prices for a handset. Each source
// wraps one third-party site whose markup is an undocumented, versionless
// contract; the selector constants live with the source that depends on
// them so a structural change touches exactly one file.
package pricing

import (
	"context"
	"regexp"
	"strconv"
)

// Query carries the search terms for a price lookup. Grade is set only for
// graded lookups; sources that do not price by grade ignore it.
type Query struct {
	Brand   string
	Model   string
	Storage string
	Grade   string
}

// Price is an optional amount. Found reports whether the source actually
// produced one, so a failed extraction is distinguishable from a genuine
// zero price. The wire contract still flattens absent prices to 0.
type Price struct {
	Amount float64
	Found  bool
}

// Source is a competitor price feed: given query terms, it returns an
// optional price. Implementations absorb their own failures — network
// errors, non-success statuses, missing markup and unparseable price text
// all come back as a not-found Price, logged but never raised.
type Source interface {
	Name() string
	Lookup(ctx context.Context, q Query) Price
}

var nonNumeric = regexp.MustCompile(`[^0-9.\-]`)

// ParsePrice extracts a decimal amount from scraped price text such as
// "£1,234.56". Every character outside digits, the decimal point and a
// minus sign is stripped before parsing; text with no amount left reports
// ok = false rather than an error.
func ParsePrice(text string) (amount float64, ok bool) {
	cleaned := nonNumeric.ReplaceAllString(text, "")
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
