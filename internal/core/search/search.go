// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package search backs the search box and its side features.

Core Responsibility:

  - Popularity: a per-ad hit counter, bumped atomically in the database, and
    the trending list ranked by it.
  - Saved searches: criteria a user stores for later, visible and deletable
    by that user only.
  - Lookup: category name matches, sub-categories and ad name completion,
    delegated to the category and ad services.
*/
package search

import (
	"time"

	"github.com/taibuivan/bazaar/internal/core/ad"
	"github.com/taibuivan/bazaar/internal/core/category"
)

// # Popularity

// Hit is the counter of one ad after a registered search hit.
type Hit struct {
	ID          int64     `json:"id"`
	AdID        int64     `json:"ad_id"`
	CategoryID  *int64    `json:"category_id"`
	SearchCount int64     `json:"search_count"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Ranked is one entry of the popularity ranking.
type Ranked struct {
	AdID        int64 `json:"ad_id"`
	SearchCount int64 `json:"search_count"`
}

// PopularCard is a listing card with its hit count.
type PopularCard struct {
	ad.Card
	SearchCount int64 `json:"search_count"`
}

// # Lookup

// CategoryProduct is the search box dropdown: matching categories and ad names.
type CategoryProduct struct {
	Categories []category.View `json:"categories"`
	Ads        []string        `json:"ads"`
}

// # Saved Searches

// MySearch is a saved set of search criteria.
type MySearch struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"-"`
	CategoryID *int64    `json:"category_id"`
	Query      *string   `json:"query"`
	PriceMin   *int64    `json:"price_min"`
	PriceMax   *int64    `json:"price_max"`
	RegionID   *int64    `json:"region_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// MySearchInput is the body of a save request. At least one criterion is
// required.
type MySearchInput struct {
	CategoryID *int64  `json:"category_id"`
	Query      *string `json:"query"`
	PriceMin   *int64  `json:"price_min"`
	PriceMax   *int64  `json:"price_max"`
	RegionID   *int64  `json:"region_id"`
}

// # Field Identifiers

const (
	FieldAdID       = "ad_id"
	FieldLimit      = "limit"
	FieldParentID   = "parent_id"
	FieldCategoryID = "category_id"
	FieldQuery      = "query"
	FieldPriceMin   = "price_min"
	FieldPriceMax   = "price_max"
	FieldRegionID   = "region_id"
)

// MaxQueryLength bounds the saved free-text query.
const MaxQueryLength = 255
