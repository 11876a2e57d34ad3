// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ad

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/bazaar/internal/platform/actor"
	"github.com/taibuivan/bazaar/internal/platform/apperr"
	"github.com/taibuivan/bazaar/internal/platform/events"
	"github.com/taibuivan/bazaar/internal/platform/locale"
	"github.com/taibuivan/bazaar/internal/platform/metrics"
	"github.com/taibuivan/bazaar/internal/platform/validate"
	"github.com/taibuivan/bazaar/pkg/pagination"
	"github.com/taibuivan/bazaar/pkg/slice"
	"github.com/taibuivan/bazaar/pkg/slug"
)

// # Service Layer

// Service orchestrates business rules for ads.
//
// Ownership is checked here, before any write reaches the store. Events and
// metrics are emitted after the write succeeded; a failed publish is logged
// and never fails the request.
type Service struct {
	repo      Repository
	likes     LikeLookup
	publisher events.Publisher
	metrics   *metrics.Metrics
	catalog   locale.Catalog
	logger    *slog.Logger
}

// NewService constructs a new ad [Service].
func NewService(repo Repository, likes LikeLookup, publisher events.Publisher, metrics *metrics.Metrics, catalog locale.Catalog, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		likes:     likes,
		publisher: publisher,
		metrics:   metrics,
		catalog:   catalog,
		logger:    logger,
	}
}

// # Listing

/*
ListAds returns a page of published ads.

Parameters:
  - context: context.Context
  - filter: Filter (Scope is forced to public)
  - page: pagination.Params
  - who: actor.Actor (Zero for an anonymous caller without device)
  - requested: locale.Code

Returns:
  - []Card: The page, annotated with is_liked for who
  - int: Total matching ads
  - error: Retrieval failures
*/
func (service *Service) ListAds(context context.Context, filter Filter, page pagination.Params, who actor.Actor, requested locale.Code) ([]Card, int, error) {
	filter.Scope = ScopePublic
	filter.Status = nil
	return service.list(context, filter, page, who, requested, false)
}

/*
ListMyAds returns a page of one seller's ads in any publish state.

Parameters:
  - context: context.Context
  - sellerID: int64
  - filter: Filter (status is honoured)
  - page: pagination.Params
  - requested: locale.Code

Returns:
  - []Card: The page with status and view_count
  - int: Total matching ads
  - error: Retrieval failures
*/
func (service *Service) ListMyAds(context context.Context, sellerID int64, filter Filter, page pagination.Params, requested locale.Code) ([]Card, int, error) {
	filter.Scope = ScopeSeller
	filter.SellerID = &sellerID
	return service.list(context, filter, page, actor.User(sellerID), requested, true)
}

func (service *Service) list(context context.Context, filter Filter, page pagination.Params, who actor.Actor, requested locale.Code, owner bool) ([]Card, int, error) {
	code := service.catalog.Normalize(requested)
	filter.Locale, filter.Fallback = code, service.catalog.Default

	summaries, total, err := service.repo.List(context, filter, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, err
	}

	cards, err := service.render(context, summaries, who, code, owner)
	if err != nil {
		return nil, 0, err
	}
	return cards, total, nil
}

/*
Cards renders the given ads as listing cards, in the order of ids.

Description: Used by favorites and popularity to present ads they reference
by id. Ids that no longer exist are skipped. All rows are fetched in one
query and likes in one more.

Parameters:
  - context: context.Context
  - ids: []int64
  - who: actor.Actor
  - requested: locale.Code

Returns:
  - []Card: At most len(ids) cards
  - error: Retrieval failures
*/
func (service *Service) Cards(context context.Context, ids []int64, who actor.Actor, requested locale.Code) ([]Card, error) {
	summaries, err := service.repo.Summaries(context, ids)
	if err != nil {
		return nil, err
	}

	ordered := slice.Reorder(ids, summaries, func(summary *Summary) int64 { return summary.ID })
	return service.render(context, ordered, who, service.catalog.Normalize(requested), false)
}

/*
Complete suggests ad names for a search box.

Returns:
  - []string: At most limit names, empty for a blank query
  - error: Retrieval failures
*/
func (service *Service) Complete(context context.Context, search string, requested locale.Code, limit int) ([]string, error) {
	search = strings.TrimSpace(search)
	if search == "" {
		return []string{}, nil
	}
	return service.repo.Autocomplete(context, search, service.catalog.Normalize(requested), service.catalog.Default, limit)
}

// # Reading

/*
GetBySlug returns a published ad and counts the view.

Description: Unpublished ads are reported as NotFound. The view counter is
incremented after the read; a failure there is logged only.

Parameters:
  - context: context.Context
  - slug: string
  - who: actor.Actor
  - requested: locale.Code

Returns:
  - *Detail: The ad with is_liked for who
  - error: NotFound or retrieval failures
*/
func (service *Service) GetBySlug(context context.Context, slug string, who actor.Actor, requested locale.Code) (*Detail, error) {
	ad, err := service.repo.FindBySlug(context, slug)
	if err != nil {
		return nil, err
	}
	if !ad.IsPublished {
		return nil, apperr.NotFound(resource)
	}

	if err := service.repo.IncrementViewCount(context, ad.ID); err != nil {
		service.logger.WarnContext(context, "ad_view_count_failed", slog.Int64("ad_id", ad.ID), slog.Any("error", err))
	} else {
		ad.ViewCount++
	}

	liked, err := service.likedAmong(context, who, []int64{ad.ID})
	if err != nil {
		return nil, err
	}

	detail := service.detail(ad, service.catalog.Normalize(requested))
	detail.IsLiked = liked[ad.ID]
	return detail, nil
}

/*
GetMyAd returns one of the seller's own ads in any state.

Returns:
  - *Detail: With status and view_count
  - error: NotFound, NotOwner or retrieval failures
*/
func (service *Service) GetMyAd(context context.Context, sellerID, id int64, requested locale.Code) (*Detail, error) {
	ad, err := service.owned(context, sellerID, id)
	if err != nil {
		return nil, err
	}
	return service.detail(ad, service.catalog.Normalize(requested)), nil
}

// # Writing

/*
CreateAd publishes a new ad for an approved seller.

Description: The slug is derived from the default-locale name and frozen.
New ads start published with status pending. A slug that is already taken
is reported as DuplicateSlug; no suffix is appended.

Parameters:
  - context: context.Context
  - sellerID: int64
  - input: CreateInput
  - requested: locale.Code (Rendering of the response)

Returns:
  - *Detail: The stored ad
  - error: Validation, DuplicateSlug, NotFound (category) or storage errors
*/
func (service *Service) CreateAd(context context.Context, sellerID int64, input CreateInput, requested locale.Code) (*Detail, error) {
	name := input.Name.Clean()
	description := input.Description.Clean()
	photos := cleanPhotos(input.Photos)

	validator := &validate.Validator{}
	validator.Localized(FieldName, name, service.catalog.Default, service.catalog.Supported, MaxNameLength)
	validator.Translations(FieldDescription, description, service.catalog.Supported, MaxDescriptionLength)
	validator.NonNegative(FieldPrice, input.Price)
	validator.Positive(FieldCategoryID, input.CategoryID)
	validatePhotos(validator, photos)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	adSlug := deriveSlug(name[service.catalog.Default])
	if adSlug == "" {
		return nil, validate.RequiredError(FieldName+"."+service.catalog.Default.String(),
			"Must contain latin letters or digits to build the address of the ad")
	}

	ad := &Ad{
		Name:        name,
		Description: description,
		Slug:        adSlug,
		Price:       input.Price,
		CategoryID:  input.CategoryID,
		SellerID:    sellerID,
		Status:      StatusPending,
		IsPublished: true,
		IsTop:       input.IsTop,
	}
	if err := service.repo.Create(context, ad, photos); err != nil {
		return nil, err
	}

	service.metrics.AdCreated()
	service.logger.InfoContext(context, "ad_created",
		slog.Int64("ad_id", ad.ID),
		slog.Int64("seller_id", sellerID),
		slog.String("slug", ad.Slug),
	)
	service.publish(context, events.SubjectAdCreated, events.AdEvent{
		AdID: ad.ID, SellerID: sellerID, Slug: ad.Slug, Status: string(ad.Status),
	})

	stored, err := service.repo.FindByID(context, ad.ID)
	if err != nil {
		return nil, err
	}
	return service.detail(stored, service.catalog.Normalize(requested)), nil
}

/*
UpdateAd applies an owner's partial update.

Description: Translations are merged per locale and the default-locale name
must survive the merge. The slug is never re-derived.

Parameters:
  - context: context.Context
  - sellerID: int64
  - id: int64
  - patch: Patch
  - requested: locale.Code

Returns:
  - *Detail: The updated ad
  - error: Validation, NotFound, NotOwner or storage errors
*/
func (service *Service) UpdateAd(context context.Context, sellerID, id int64, patch Patch, requested locale.Code) (*Detail, error) {
	ad, err := service.owned(context, sellerID, id)
	if err != nil {
		return nil, err
	}

	ad.Name = merge(ad.Name, patch.Name)
	ad.Description = merge(ad.Description, patch.Description)
	if patch.Price != nil {
		ad.Price = *patch.Price
	}
	if patch.CategoryID != nil {
		ad.CategoryID = patch.CategoryID
	}
	if patch.IsTop != nil {
		ad.IsTop = *patch.IsTop
	}
	if patch.IsPublished != nil {
		ad.IsPublished = *patch.IsPublished
	}

	validator := &validate.Validator{}
	validator.Localized(FieldName, ad.Name, service.catalog.Default, service.catalog.Supported, MaxNameLength)
	validator.Translations(FieldDescription, ad.Description, service.catalog.Supported, MaxDescriptionLength)
	validator.NonNegative(FieldPrice, ad.Price)
	validator.Positive(FieldCategoryID, patch.CategoryID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, ad); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "ad_updated", slog.Int64("ad_id", ad.ID), slog.Int64("seller_id", sellerID))
	service.publish(context, events.SubjectAdUpdated, events.AdEvent{AdID: ad.ID, SellerID: sellerID, Slug: ad.Slug})

	stored, err := service.repo.FindByID(context, ad.ID)
	if err != nil {
		return nil, err
	}
	return service.detail(stored, service.catalog.Normalize(requested)), nil
}

/*
DeleteAd removes an owner's ad together with its photos, favorites and
search count.

Returns:
  - error: NotFound, NotOwner or storage errors
*/
func (service *Service) DeleteAd(context context.Context, sellerID, id int64) error {
	ad, err := service.owned(context, sellerID, id)
	if err != nil {
		return err
	}

	if err := service.repo.Delete(context, ad.ID); err != nil {
		return err
	}

	service.logger.InfoContext(context, "ad_deleted", slog.Int64("ad_id", ad.ID), slog.Int64("seller_id", sellerID))
	service.publish(context, events.SubjectAdDeleted, events.AdEvent{AdID: ad.ID, SellerID: sellerID, Slug: ad.Slug})
	return nil
}

/*
ReplacePhotos swaps the photo set of an owner's ad, all or nothing.

Parameters:
  - context: context.Context
  - sellerID, id: int64
  - photos: []PhotoInput in display order; empty removes every photo

Returns:
  - []Photo: The new set
  - error: Validation, NotFound, NotOwner or storage errors
*/
func (service *Service) ReplacePhotos(context context.Context, sellerID, id int64, photos []PhotoInput) ([]Photo, error) {
	photos = cleanPhotos(photos)

	validator := &validate.Validator{}
	validatePhotos(validator, photos)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	ad, err := service.owned(context, sellerID, id)
	if err != nil {
		return nil, err
	}

	stored, err := service.repo.ReplacePhotos(context, ad.ID, photos)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "ad_photos_replaced",
		slog.Int64("ad_id", ad.ID),
		slog.Int("count", len(stored)),
	)
	service.publish(context, events.SubjectAdUpdated, events.AdEvent{AdID: ad.ID, SellerID: sellerID, Slug: ad.Slug})
	return stored, nil
}

/*
SetStatus moves an ad through moderation. Administrators only.

Returns:
  - error: Validation (unknown status), NotFound or storage errors
*/
func (service *Service) SetStatus(context context.Context, id int64, status Status) error {
	validator := &validate.Validator{}
	validator.OneOf(FieldStatus, string(status), statusNames()...)
	if err := validator.Err(); err != nil {
		return err
	}

	ad, err := service.repo.FindByID(context, id)
	if err != nil {
		return err
	}
	if err := service.repo.SetStatus(context, id, status); err != nil {
		return err
	}

	service.logger.InfoContext(context, "ad_status_changed",
		slog.Int64("ad_id", id),
		slog.String("from", string(ad.Status)),
		slog.String("to", string(status)),
	)
	service.publish(context, events.SubjectAdStatusChanged, events.AdEvent{
		AdID: id, SellerID: ad.SellerID, Slug: ad.Slug, Status: string(status),
	})
	return nil
}

// # Helpers

// owned loads an ad and checks that sellerID owns it.
func (service *Service) owned(context context.Context, sellerID, id int64) (*Ad, error) {
	ad, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}
	if ad.SellerID != sellerID {
		return nil, apperr.NotOwner("ad")
	}
	return ad, nil
}

// render projects summaries into cards with one like lookup for the page.
func (service *Service) render(context context.Context, summaries []*Summary, who actor.Actor, code locale.Code, owner bool) ([]Card, error) {
	ids := make([]int64, len(summaries))
	for i, summary := range summaries {
		ids[i] = summary.ID
	}

	liked, err := service.likedAmong(context, who, ids)
	if err != nil {
		return nil, err
	}

	cards := make([]Card, 0, len(summaries))
	for _, summary := range summaries {
		card := Card{
			ID:          summary.ID,
			Name:        service.catalog.Resolve(summary.Name, code),
			Slug:        summary.Slug,
			Price:       summary.Price,
			Photo:       summary.Photo,
			PublishedAt: summary.PublishedAt,
			UpdatedTime: summary.UpdatedAt,
			Address:     summary.Address,
			Seller:      summary.Seller,
			IsLiked:     liked[summary.ID],
			IsTop:       summary.IsTop,
		}
		if owner {
			views := summary.ViewCount
			card.Status, card.ViewCount = summary.Status, &views
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// detail renders a loaded ad. IsLiked is left to the caller.
func (service *Service) detail(ad *Ad, code locale.Code) *Detail {
	views := ad.ViewCount

	detail := &Detail{
		Card: Card{
			ID:          ad.ID,
			Name:        service.catalog.Resolve(ad.Name, code),
			Slug:        ad.Slug,
			Price:       ad.Price,
			Photo:       mainPhoto(ad.Photos),
			PublishedAt: ad.PublishedAt,
			UpdatedTime: ad.UpdatedAt,
			Address:     ad.AddressName,
			Seller:      ad.Seller,
			IsTop:       ad.IsTop,
			Status:      ad.Status,
			ViewCount:   &views,
		},
		Description: service.catalog.Resolve(ad.Description, code),
		Photos:      ad.Photos,
		IsPublished: ad.IsPublished,
	}
	if detail.Photos == nil {
		detail.Photos = []Photo{}
	}
	if ad.CategoryID != nil {
		detail.Category = &CategoryRef{ID: *ad.CategoryID, Name: service.catalog.Resolve(ad.CategoryName, code)}
	}
	return detail
}

// likedAmong skips the lookup when nothing can be liked.
func (service *Service) likedAmong(context context.Context, who actor.Actor, ids []int64) (map[int64]bool, error) {
	if who.IsZero() || len(ids) == 0 {
		return map[int64]bool{}, nil
	}
	return service.likes.LikedAmong(context, who, ids)
}

func (service *Service) publish(context context.Context, subject string, payload any) {
	if err := service.publisher.Publish(context, subject, payload); err != nil {
		service.logger.WarnContext(context, "event_publish_failed",
			slog.String("subject", subject),
			slog.Any("error", err),
		)
	}
}

// mainPhoto picks the flagged photo, else the first in display order.
func mainPhoto(photos []Photo) *string {
	for _, photo := range photos {
		if photo.IsMain {
			image := photo.Image
			return &image
		}
	}
	if len(photos) > 0 {
		image := photos[0].Image
		return &image
	}
	return nil
}

// deriveSlug builds the slug from a name, bounded to MaxSlugLength.
func deriveSlug(name string) string {
	derived := slug.From(name)
	if len(derived) > MaxSlugLength {
		derived = strings.TrimRight(derived[:MaxSlugLength], "-")
	}
	return derived
}

// merge applies translation changes: blank values delete, others overwrite.
func merge(current, changes locale.Text) locale.Text {
	merged := make(locale.Text, len(current)+len(changes))
	for code, value := range current {
		merged[code] = value
	}
	for code, value := range changes {
		if value = strings.TrimSpace(value); value == "" {
			delete(merged, code)
			continue
		}
		merged[code] = value
	}
	return merged.Clean()
}

func cleanPhotos(photos []PhotoInput) []PhotoInput {
	return slice.Map(photos, func(photo PhotoInput) PhotoInput {
		photo.Image = strings.TrimSpace(photo.Image)
		return photo
	})
}

func validatePhotos(validator *validate.Validator, photos []PhotoInput) {
	validator.Custom(FieldPhotos, len(photos) > MaxPhotos, fmt.Sprintf("At most %d photos are allowed", MaxPhotos))
	for _, photo := range photos {
		validator.Required(FieldPhotos, photo.Image).MaxLen(FieldPhotos, photo.Image, MaxImageLength)
	}
}

func statusNames() []string {
	return slice.Map(Statuses, func(status Status) string { return string(status) })
}
