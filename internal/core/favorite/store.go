// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package favorite

import (
	"context"

	"github.com/taibuivan/bazaar/internal/platform/actor"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/taibuivan/bazaar/internal/core/favorite Repository

// # Favorite Data Access

// Repository defines the data access contract for favorite entries.
//
// Every method takes a validated, non-zero [actor.Actor].
type Repository interface {

	/*
		Add creates the entry for (who, adID) or returns the existing one.

		Description: A single conditional insert; when a concurrent request
		wins the race the winner's row is read back.

		Returns:
		  - *Entry: The created or existing entry
		  - bool: True when this call created it
		  - error: NotFound if the ad does not exist
	*/
	Add(context context.Context, who actor.Actor, adID int64) (*Entry, bool, error)

	/*
		Remove deletes the entry of exactly who for adID.

		Returns:
		  - error: NotFound if who has no entry for the ad
	*/
	Remove(context context.Context, who actor.Actor, adID int64) error

	/*
		List returns the ids of published ads liked by who, newest like first.

		Parameters:
		  - categoryID: *int64 (Optional, flat membership)
		  - limit, offset: int

		Returns:
		  - []int64: Ad ids of the page, in order
		  - int: Total entries matching
		  - error: Database execution errors
	*/
	List(context context.Context, who actor.Actor, categoryID *int64, limit, offset int) ([]int64, int, error)

	/*
		LikedAmong reports which of adIDs who has liked, in one query.

		Returns:
		  - map[int64]bool: True for liked ids; absent ids are not liked
		  - error: Database execution errors
	*/
	LikedAmong(context context.Context, who actor.Actor, adIDs []int64) (map[int64]bool, error)
}
