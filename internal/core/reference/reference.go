// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package reference serves the geographic master data of the marketplace.

Regions and their districts are seeded by administrators and only read by the
API. Seller addresses and ad filters refer to them by id; clients list them to
build location pickers.

# Core Responsibility

  - Hierarchy: every [District] belongs to one [Region].
  - Localization: names are stored per locale and rendered in one.
*/
package reference

import "github.com/taibuivan/bazaar/internal/platform/locale"

// # Geography Domain

// Region is a top-level administrative area as stored.
type Region struct {
	ID        int64
	Name      locale.Text
	Districts []District
}

// District is a subdivision of a region as stored.
type District struct {
	ID       int64
	RegionID int64
	Name     locale.Text
}

// # Projections

// RegionView is a region rendered in one locale with its districts.
type RegionView struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Districts []DistrictView `json:"districts"`
}

// DistrictView is a district rendered in one locale.
type DistrictView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
