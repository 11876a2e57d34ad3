// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/taibuivan/bazaar/internal/core/ad"
	"github.com/taibuivan/bazaar/internal/core/category"
	"github.com/taibuivan/bazaar/internal/platform/actor"
	"github.com/taibuivan/bazaar/internal/platform/apperr"
	"github.com/taibuivan/bazaar/internal/platform/cache"
	"github.com/taibuivan/bazaar/internal/platform/constants"
	"github.com/taibuivan/bazaar/internal/platform/locale"
	"github.com/taibuivan/bazaar/internal/platform/metrics"
	"github.com/taibuivan/bazaar/internal/platform/validate"
	"github.com/taibuivan/bazaar/pkg/pagination"
	"github.com/taibuivan/bazaar/pkg/pointer"
)

//go:generate mockgen -destination=mocks/mock_collaborators.go -package=mocks github.com/taibuivan/bazaar/internal/core/search Ads,Categories

// Ads is the part of [ad.Service] the search endpoints use.
type Ads interface {
	Cards(context context.Context, ids []int64, who actor.Actor, requested locale.Code) ([]ad.Card, error)
	Complete(context context.Context, search string, requested locale.Code, limit int) ([]string, error)
}

// Categories is the part of [category.Service] the search endpoints use.
type Categories interface {
	MatchByNameSubstring(context context.Context, search string, requested locale.Code) ([]category.View, error)
	ChildrenOf(context context.Context, parentID int64, requested locale.Code) ([]category.View, error)
}

// # Service Layer

// Service implements popularity ranking, saved searches and lookups.
type Service struct {
	repo       Repository
	ads        Ads
	categories Categories
	store      cache.Store
	popularTTL time.Duration
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewService constructs a new search [Service]. The popular ranking is
// cached in store for popularTTL.
func NewService(repo Repository, ads Ads, categories Categories, store cache.Store, popularTTL time.Duration, metrics *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		ads:        ads,
		categories: categories,
		store:      store,
		popularTTL: popularTTL,
		metrics:    metrics,
		logger:     logger,
	}
}

// # Popularity

/*
RegisterHit counts one search hit for an ad.

Returns:
  - *Hit: The counter after the increment
  - error: ValidationError, NotFound for an unknown ad
*/
func (service *Service) RegisterHit(context context.Context, adID int64) (*Hit, error) {
	if err := (&validate.Validator{}).Positive(FieldAdID, &adID).Err(); err != nil {
		return nil, err
	}

	hit, err := service.repo.RegisterHit(context, adID)
	if err != nil {
		return nil, err
	}

	service.metrics.SearchHit()
	service.logger.DebugContext(context, "search_hit_registered",
		slog.Int64("ad_id", adID),
		slog.Int64("search_count", hit.SearchCount),
	)
	return hit, nil
}

/*
Popular returns the most searched published ads.

Description: The ranking is cached briefly per limit; cards and is_liked are
always rendered fresh for who. Ads removed since the ranking was cached are
skipped.

Parameters:
  - ctx: context.Context
  - limit: int (Clamped to 1..pagination.MaxLimit, 0 means the default)
  - who: actor.Actor
  - requested: locale.Code

Returns:
  - []PopularCard: Highest count first
  - error: Retrieval failures
*/
func (service *Service) Popular(ctx context.Context, limit int, who actor.Actor, requested locale.Code) ([]PopularCard, error) {
	limit = clampLimit(limit)

	ranked, err := cache.Fetch(ctx, service.store, popularKey(limit), service.popularTTL,
		func(ctx context.Context) ([]Ranked, error) {
			return service.repo.Popular(ctx, limit)
		})
	if err != nil {
		return nil, err
	}
	if len(ranked) == 0 {
		return []PopularCard{}, nil
	}

	ids := make([]int64, len(ranked))
	counts := make(map[int64]int64, len(ranked))
	for i, entry := range ranked {
		ids[i] = entry.AdID
		counts[entry.AdID] = entry.SearchCount
	}

	cards, err := service.ads.Cards(ctx, ids, who, requested)
	if err != nil {
		return nil, err
	}

	popular := make([]PopularCard, 0, len(cards))
	for _, card := range cards {
		popular = append(popular, PopularCard{Card: card, SearchCount: counts[card.ID]})
	}
	return popular, nil
}

// # Lookups

// Categories matches category names in the requested locale.
func (service *Service) Categories(context context.Context, search string, requested locale.Code) ([]category.View, error) {
	return service.categories.MatchByNameSubstring(context, search, requested)
}

// SubCategories lists the direct children of parentID.
func (service *Service) SubCategories(context context.Context, parentID *int64, requested locale.Code) ([]category.View, error) {
	if parentID == nil {
		return nil, validate.RequiredError(FieldParentID, "Required")
	}
	return service.categories.ChildrenOf(context, *parentID, requested)
}

// Complete suggests ad names for the search box.
func (service *Service) Complete(context context.Context, search string, requested locale.Code) ([]string, error) {
	return service.ads.Complete(context, search, requested, constants.AutocompleteLimit)
}

/*
CategoryProduct combines category matches and ad name suggestions for one query.

Returns:
  - *CategoryProduct: Both lists empty for a blank query
  - error: Retrieval failures of either lookup
*/
func (service *Service) CategoryProduct(ctx context.Context, search string, requested locale.Code) (*CategoryProduct, error) {
	views, err := service.categories.MatchByNameSubstring(ctx, search, requested)
	if err != nil {
		return nil, err
	}

	names, err := service.ads.Complete(ctx, search, requested, constants.AutocompleteLimit)
	if err != nil {
		return nil, err
	}

	return &CategoryProduct{Categories: views, Ads: names}, nil
}

// # Saved Searches

/*
SaveSearch stores search criteria for userID.

Returns:
  - *MySearch: The stored record
  - error: ValidationError, NotFound for an unknown category or region
*/
func (service *Service) SaveSearch(context context.Context, userID int64, input MySearchInput) (*MySearch, error) {
	input.Query = pointer.TrimmedString(input.Query)

	validator := &validate.Validator{}
	validator.Positive(FieldCategoryID, input.CategoryID)
	validator.Positive(FieldRegionID, input.RegionID)
	if input.Query != nil {
		validator.MaxLen(FieldQuery, *input.Query, MaxQueryLength)
	}
	if input.PriceMin != nil {
		validator.NonNegative(FieldPriceMin, *input.PriceMin)
	}
	if input.PriceMax != nil {
		validator.NonNegative(FieldPriceMax, *input.PriceMax)
	}
	validator.Custom(FieldPriceMax,
		input.PriceMin != nil && input.PriceMax != nil && *input.PriceMax < *input.PriceMin,
		"Must not be below price_min")
	validator.Custom(FieldQuery,
		input.CategoryID == nil && input.Query == nil && input.PriceMin == nil && input.PriceMax == nil && input.RegionID == nil,
		"At least one search criterion is required")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	search := &MySearch{
		UserID:     userID,
		CategoryID: input.CategoryID,
		Query:      input.Query,
		PriceMin:   input.PriceMin,
		PriceMax:   input.PriceMax,
		RegionID:   input.RegionID,
	}
	if err := service.repo.CreateMySearch(context, search); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "search_saved", slog.Int64("id", search.ID), slog.Int64("user_id", userID))
	return search, nil
}

// ListSearches pages through the caller's own saved searches.
func (service *Service) ListSearches(context context.Context, userID int64, page pagination.Params) ([]*MySearch, int, error) {
	return service.repo.ListMySearches(context, userID, page.Limit, page.Offset())
}

/*
DeleteSearch removes a saved search owned by userID.

Returns:
  - error: NotFound, or NotOwner when the record belongs to someone else
*/
func (service *Service) DeleteSearch(context context.Context, userID, id int64) error {
	search, err := service.repo.FindMySearch(context, id)
	if err != nil {
		return err
	}
	if search.UserID != userID {
		return apperr.NotOwner("saved search")
	}

	if err := service.repo.DeleteMySearch(context, id); err != nil {
		return err
	}

	service.logger.InfoContext(context, "search_deleted", slog.Int64("id", id), slog.Int64("user_id", userID))
	return nil
}

// # Helpers

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return constants.PopularDefaultLimit
	case limit > pagination.MaxLimit:
		return pagination.MaxLimit
	}
	return limit
}

func popularKey(limit int) string {
	return constants.RedisPrefixPopular + strconv.Itoa(limit)
}
