// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"

	"github.com/taibuivan/bazaar/internal/platform/locale"
)

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/taibuivan/bazaar/internal/core/category Repository

// # Category Data Access

// Repository defines the data access contract for the category tree.
type Repository interface {

	/*
		List returns every category with its published ad count, ordered by id.

		Parameters:
		  - context: context.Context

		Returns:
		  - []*Category: All taxonomy nodes
		  - error: Database retrieval failures
	*/
	List(context context.Context) ([]*Category, error)

	/*
		FindByID returns a single category.

		Returns:
		  - *Category: The node
		  - error: NotFound if missing
	*/
	FindByID(context context.Context, id int64) (*Category, error)

	/*
		ChildrenOf returns the direct children of parentID, ordered by id.

		Parameters:
		  - context: context.Context
		  - parentID: int64

		Returns:
		  - []*Category: One level of children, empty for a leaf or unknown id
		  - error: Database retrieval failures
	*/
	ChildrenOf(context context.Context, parentID int64) ([]*Category, error)

	/*
		MatchByName returns categories whose name in the given locale (or in
		fallback, when that translation is missing) contains query,
		case-insensitively.

		Parameters:
		  - context: context.Context
		  - query: string (Raw substring, LIKE wildcards are escaped)
		  - requested, fallback: locale.Code
		  - limit: int

		Returns:
		  - []*Category: Matching nodes ordered by id
		  - error: Database retrieval failures
	*/
	MatchByName(context context.Context, query string, requested, fallback locale.Code, limit int) ([]*Category, error)

	/*
		Create persists a new category and fills its ID and CreatedAt.

		Returns:
		  - error: NotFound when the parent does not exist
	*/
	Create(context context.Context, category *Category) error
}
