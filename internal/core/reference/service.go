// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"
	"time"

	"github.com/taibuivan/bazaar/internal/platform/cache"
	"github.com/taibuivan/bazaar/internal/platform/constants"
	"github.com/taibuivan/bazaar/internal/platform/locale"
	"github.com/taibuivan/bazaar/internal/platform/validate"
)

// FieldRegionID is the request field naming a region.
const FieldRegionID = "id"

// # Service Layer

// Service serves reference data, rendered per locale and cached.
type Service struct {
	repo    Repository
	store   cache.Store
	ttl     time.Duration
	catalog locale.Catalog
}

// NewService constructs a new reference [Service].
func NewService(repo Repository, store cache.Store, ttl time.Duration, catalog locale.Catalog) *Service {
	return &Service{repo: repo, store: store, ttl: ttl, catalog: catalog}
}

/*
ListRegions returns every region with its districts in the requested locale.

Parameters:
  - ctx: context.Context
  - requested: locale.Code

Returns:
  - []RegionView: Cached per locale
  - error: Retrieval failures
*/
func (service *Service) ListRegions(ctx context.Context, requested locale.Code) ([]RegionView, error) {
	code := service.catalog.Normalize(requested)

	return cache.Fetch(ctx, service.store, constants.RedisPrefixRegions+code.String(), service.ttl,
		func(ctx context.Context) ([]RegionView, error) {
			regions, err := service.repo.ListRegions(ctx)
			if err != nil {
				return nil, err
			}

			views := make([]RegionView, 0, len(regions))
			for _, region := range regions {
				views = append(views, service.view(region, code))
			}
			return views, nil
		})
}

/*
GetRegion returns one region with its districts.

Returns:
  - *RegionView: The region
  - error: ValidationError or NotFound
*/
func (service *Service) GetRegion(context context.Context, id int64, requested locale.Code) (*RegionView, error) {
	if err := (&validate.Validator{}).Positive(FieldRegionID, &id).Err(); err != nil {
		return nil, err
	}

	region, err := service.repo.FindRegion(context, id)
	if err != nil {
		return nil, err
	}

	view := service.view(region, service.catalog.Normalize(requested))
	return &view, nil
}

func (service *Service) view(region *Region, code locale.Code) RegionView {
	view := RegionView{
		ID:        region.ID,
		Name:      service.catalog.Resolve(region.Name, code),
		Districts: make([]DistrictView, 0, len(region.Districts)),
	}
	for _, district := range region.Districts {
		view.Districts = append(view.Districts, DistrictView{
			ID:   district.ID,
			Name: service.catalog.Resolve(district.Name, code),
		})
	}
	return view
}
