// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ad

import (
	"strings"

	"github.com/taibuivan/bazaar/internal/platform/database/schema"
	"github.com/taibuivan/bazaar/internal/platform/locale"
)

// Scope selects which ads a listing may see.
type Scope uint8

const (
	// ScopePublic lists published ads of every seller.
	ScopePublic Scope = iota

	// ScopeSeller lists one seller's ads regardless of publish state.
	ScopeSeller
)

// Filter holds the listing criteria. Every field is optional and they
// combine with AND.
type Filter struct {
	Scope Scope

	// SellerID narrows a public listing to one seller and is mandatory in
	// seller scope.
	SellerID *int64

	PriceMin   *int64
	PriceMax   *int64
	RegionID   *int64
	DistrictID *int64

	// CategoryIDs is a flat membership test. Children of a listed category
	// are not included.
	CategoryIDs []int64

	IsTop *bool

	// Query is a case-insensitive substring of the name in Locale, falling
	// back to Fallback when that translation is missing.
	Query    string
	Locale   locale.Code
	Fallback locale.Code

	// Status is honoured in seller scope only.
	Status *Status

	Ordering Ordering
}

// # Ordering

// Ordering is a sort key with a direction. The id is always the final
// ascending tie-break.
type Ordering struct {
	Field string
	Desc  bool
}

// DefaultOrdering is newest first.
var DefaultOrdering = Ordering{Field: schema.CoreAd.PublishedAt, Desc: true}

// orderable maps the public ordering names to columns.
var orderable = map[string]string{
	"published_at": schema.CoreAd.PublishedAt,
	"price":        schema.CoreAd.Price,
	"view_count":   schema.CoreAd.ViewCount,
}

// ParseOrdering reads "price", "-price" and the like.
//
// Unknown fields fall back to [DefaultOrdering]; it never fails.
func ParseOrdering(raw string) Ordering {
	raw = strings.TrimSpace(raw)

	desc := strings.HasPrefix(raw, "-")
	column, ok := orderable[strings.TrimPrefix(raw, "-")]
	if !ok {
		return DefaultOrdering
	}
	return Ordering{Field: column, Desc: desc}
}

// clause renders the ORDER BY list against the ad alias. A field that is not
// an orderable column is replaced by the default.
func (o Ordering) clause(alias string) string {
	if !isOrderable(o.Field) {
		o = DefaultOrdering
	}

	direction := "ASC"
	if o.Desc {
		direction = "DESC"
	}
	return alias + "." + o.Field + " " + direction + ", " + alias + "." + schema.CoreAd.ID + " ASC"
}

func isOrderable(column string) bool {
	for _, allowed := range orderable {
		if allowed == column {
			return true
		}
	}
	return false
}
