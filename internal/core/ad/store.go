// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ad

import (
	"context"

	"github.com/taibuivan/bazaar/internal/platform/actor"
	"github.com/taibuivan/bazaar/internal/platform/locale"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/taibuivan/bazaar/internal/core/ad Repository,LikeLookup

// # Ad Data Access

// Repository defines the data access contract for ads and their photos.
type Repository interface {

	/*
		List returns a filtered, ordered page of listing rows and the total count.

		Description: The scope decides the base set (published ads, or one
		seller's ads). Ordering always ends with id ascending so pages never
		overlap or skip rows.

		Parameters:
		  - context: context.Context
		  - filter: Filter
		  - limit, offset: int

		Returns:
		  - []*Summary: The page
		  - int: Total rows matching the filter
		  - error: Database execution errors
	*/
	List(context context.Context, filter Filter, limit, offset int) ([]*Summary, int, error)

	/*
		Summaries loads listing rows for the given ids in one query.

		Returns:
		  - []*Summary: Rows in no particular order; unknown ids are absent
		  - error: Database execution errors
	*/
	Summaries(context context.Context, ids []int64) ([]*Summary, error)

	/*
		FindBySlug returns an ad with its seller, address, category and photos.

		Returns:
		  - *Ad: Any publish state; callers decide visibility
		  - error: NotFound if the slug is unknown
	*/
	FindBySlug(context context.Context, slug string) (*Ad, error)

	/*
		FindByID is [Repository.FindBySlug] keyed by id.
	*/
	FindByID(context context.Context, id int64) (*Ad, error)

	/*
		Create inserts the ad and its photos in one transaction.

		Description: The ad takes the seller's current account address. ID,
		AddressID, PublishedAt and UpdatedAt are filled in on success.

		Parameters:
		  - context: context.Context
		  - ad: *Ad (Slug already derived)
		  - photos: []PhotoInput in display order

		Returns:
		  - error: DuplicateSlug, NotFound (seller or category) or storage errors
	*/
	Create(context context.Context, ad *Ad, photos []PhotoInput) error

	/*
		Update writes the mutable content fields and bumps UpdatedAt.

		The slug, seller, address and status are not written.

		Returns:
		  - error: NotFound (ad or category) or storage errors
	*/
	Update(context context.Context, ad *Ad) error

	/*
		Delete removes an ad. Photos, favorites and search counts cascade.

		Returns:
		  - error: NotFound if no row was deleted
	*/
	Delete(context context.Context, id int64) error

	/*
		ReplacePhotos swaps the whole photo set of an ad, all or nothing.

		Parameters:
		  - context: context.Context
		  - adID: int64
		  - photos: []PhotoInput in display order (may be empty)

		Returns:
		  - []Photo: The stored set in display order
		  - error: NotFound or storage errors; on error the old set is intact
	*/
	ReplacePhotos(context context.Context, adID int64, photos []PhotoInput) ([]Photo, error)

	/*
		SetStatus moves an ad to a new moderation status.

		Returns:
		  - error: NotFound if the ad does not exist
	*/
	SetStatus(context context.Context, id int64, status Status) error

	/*
		IncrementViewCount adds one view to the ad.
	*/
	IncrementViewCount(context context.Context, id int64) error

	/*
		Autocomplete returns distinct localized names of published ads
		containing query, alphabetically.
	*/
	Autocomplete(context context.Context, query string, requested, fallback locale.Code, limit int) ([]string, error)
}

// # Collaborators

// LikeLookup answers which ads an actor has favorited.
type LikeLookup interface {

	/*
		LikedAmong reports, for one page of ad ids, those favorited by who.

		Description: One round trip for the whole page. A zero actor likes
		nothing.

		Returns:
		  - map[int64]bool: Only liked ids are present
		  - error: Database execution errors
	*/
	LikedAmong(context context.Context, who actor.Actor, adIDs []int64) (map[int64]bool, error)
}
