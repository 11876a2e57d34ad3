// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import "context"

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks github.com/taibuivan/bazaar/internal/core/reference Repository

// Repository defines the data access contract for reference data.
type Repository interface {

	/*
		ListRegions retrieves every region with its districts nested.

		Returns:
		  - []*Region: Ordered by id, districts by id
		  - error: Database retrieval failures
	*/
	ListRegions(context context.Context) ([]*Region, error)

	/*
		FindRegion retrieves one region with its districts.

		Returns:
		  - *Region: The region
		  - error: NotFound if the id is unknown
	*/
	FindRegion(context context.Context, id int64) (*Region, error)
}
