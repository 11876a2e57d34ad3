// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/taibuivan/bazaar/internal/core/search Repository

// Repository defines the data access contract for hit counters and saved
// searches.
type Repository interface {

	/*
		RegisterHit adds one hit to the ad's counter, creating it on first use.

		Description: One upsert statement; concurrent hits on the same ad are
		serialized by the row lock and none is lost.

		Returns:
		  - *Hit: The counter after the increment
		  - error: NotFound if the ad does not exist
	*/
	RegisterHit(context context.Context, adID int64) (*Hit, error)

	/*
		Popular ranks published ads by hit count.

		Description: Ties go to the most recently hit counter, then the lowest
		counter id.

		Returns:
		  - []Ranked: At most limit entries
		  - error: Database execution errors
	*/
	Popular(context context.Context, limit int) ([]Ranked, error)

	// CreateMySearch inserts search and fills its id and created_at.
	CreateMySearch(context context.Context, search *MySearch) error

	// ListMySearches pages through a user's saved searches, newest first.
	ListMySearches(context context.Context, userID int64, limit, offset int) ([]*MySearch, int, error)

	// FindMySearch returns a saved search by id, or NotFound.
	FindMySearch(context context.Context, id int64) (*MySearch, error)

	// DeleteMySearch removes a saved search, or returns NotFound.
	DeleteMySearch(context context.Context, id int64) error
}
