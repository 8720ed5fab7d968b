// Package filter narrows in-memory collections of ledger records by a
// composable criteria object, without touching the store.
package filter

import (
	"strings"

	"github.com/pocketmint/pocketmint/internal/model"
	"github.com/shopspring/decimal"
)

// Criteria describes a transaction search. Every populated field narrows
// the candidate set with AND; there is no OR composition and no negation.
// The zero Criteria matches everything.
type Criteria struct {
	MinAmount  *decimal.Decimal
	MaxAmount  *decimal.Decimal
	Direction  *model.Direction
	CategoryID string // exact match
	WalletID   string // substring, case-insensitive
	Name       string // substring, case-insensitive
	DateFrom   string
	DateTo     string // a bare date is widened to the end of that day
}

// HasFilters reports whether any criterion is populated.
func (c *Criteria) HasFilters() bool {
	return c.MinAmount != nil ||
		c.MaxAmount != nil ||
		c.Direction != nil ||
		c.CategoryID != "" ||
		c.WalletID != "" ||
		c.Name != "" ||
		c.DateFrom != "" ||
		c.DateTo != ""
}

// Matches reports whether a single record satisfies every populated
// criterion.
func (c *Criteria) Matches(t *model.Transaction) bool {
	if !c.HasFilters() {
		return true
	}
	if c.MinAmount != nil && t.Amount.LessThan(*c.MinAmount) {
		return false
	}
	if c.MaxAmount != nil && t.Amount.GreaterThan(*c.MaxAmount) {
		return false
	}
	if c.Direction != nil && t.Direction != *c.Direction {
		return false
	}
	if c.CategoryID != "" && string(t.CategoryID) != c.CategoryID {
		return false
	}
	if c.WalletID != "" && !containsFold(t.WalletID, c.WalletID) {
		return false
	}
	if c.Name != "" && !containsFold(t.Name, c.Name) {
		return false
	}
	// Lexicographic comparison is valid because createTime uses the
	// fixed-width zero-padded layout.
	if c.DateFrom != "" && t.CreateTime < c.DateFrom {
		return false
	}
	if c.DateTo != "" && t.CreateTime > model.EndOfDay(c.DateTo) {
		return false
	}
	return true
}

// Apply filters a slice of records, preserving order. The result is never
// nil.
func (c *Criteria) Apply(txns []model.Transaction) []model.Transaction {
	matched := make([]model.Transaction, 0, len(txns))
	for i := range txns {
		if c.Matches(&txns[i]) {
			matched = append(matched, txns[i])
		}
	}
	return matched
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
