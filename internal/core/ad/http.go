// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ad

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/bazaar/internal/platform/constants"
	"github.com/taibuivan/bazaar/internal/platform/middleware"
	requestutil "github.com/taibuivan/bazaar/internal/platform/request"
	"github.com/taibuivan/bazaar/internal/platform/respond"
	"github.com/taibuivan/bazaar/internal/platform/sec"
	"github.com/taibuivan/bazaar/pkg/convert"
	"github.com/taibuivan/bazaar/pkg/pagination"
	"github.com/taibuivan/bazaar/pkg/query"
)

// Handler implements the HTTP layer for ads.
//
// # Access Control
//
//   - Public: listing and detail by slug.
//   - Approved seller: creation and everything under /my-ads.
//   - Admin: status moderation.
type Handler struct {
	service *Service
}

// NewHandler constructs a new ad [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /ads.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/{slug}", handler.getBySlug)
	router.With(middleware.RequireApprovedSeller).Post("/", handler.create)

	return router
}

// SellerRoutes returns the router mounted at /my-ads.
func (handler *Handler) SellerRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireApprovedSeller)

	router.Get("/", handler.listMine)
	router.Get("/{id}", handler.getMine)
	router.Patch("/{id}", handler.update)
	router.Delete("/{id}", handler.delete)
	router.Put("/{id}/photos", handler.replacePhotos)

	return router
}

// AdminRoutes returns the router mounted at /admin/ads.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireRole(sec.RoleAdmin))

	router.Patch("/{id}/status", handler.setStatus)

	return router
}

/*
GET /api/v1/ads.

Description: Public listing of published ads. Malformed filter values are
ignored rather than reported.

Request:
  - price_min | price__gte, price_max | price__lte: int64
  - seller, region_id, district_id: int64
  - category_ids: comma-separated ids (flat membership)
  - is_top: bool
  - q: string (Name substring in the request locale)
  - ordering: published_at | price | view_count, "-" prefix for descending
  - page, page_size | limit: int
  - device_id: string (For is_liked when anonymous)

Response:
  - 200: []Card: Paginated
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequestWithDefault(request, constants.AdsPageSize)

	cards, total, err := handler.service.ListAds(
		request.Context(),
		parseFilter(request.URL.Query()),
		params,
		requestutil.OptionalActor(request),
		requestutil.Locale(request),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, cards, params.Meta(total))
}

/*
GET /api/v1/ads/{slug}.

Description: Published ad detail. Counts one view.

Response:
  - 200: Detail
  - 404: ErrNotFound: Unknown or unpublished
*/
func (handler *Handler) getBySlug(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.service.GetBySlug(
		request.Context(),
		requestutil.Param(request, "slug"),
		requestutil.OptionalActor(request),
		requestutil.Locale(request),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

/*
POST /api/v1/ads.

Description: An approved seller publishes a new ad.

Request:
  - body: CreateInput

Response:
  - 201: Detail
  - 400: ErrValidation
  - 404: ErrNotFound: Category does not exist
  - 409: ErrDuplicateSlug
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {

	// Resolve seller
	sellerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Decode payload
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	detail, err := handler.service.CreateAd(request.Context(), sellerID, input, requestutil.Locale(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, detail)
}

/*
GET /api/v1/my-ads.

Description: The seller's own ads in any publish state.

Request:
  - status: pending | active | inactive | rejected
  - same filters as the public listing
  - page, page_size | limit: int (Default 10)

Response:
  - 200: []Card: Paginated, with status and view_count
*/
func (handler *Handler) listMine(writer http.ResponseWriter, request *http.Request) {
	sellerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequestWithDefault(request, constants.MyAdsPageSize)
	filter := parseFilter(request.URL.Query())
	if status := Status(strings.TrimSpace(request.URL.Query().Get("status"))); status.IsValid() {
		filter.Status = &status
	}

	cards, total, err := handler.service.ListMyAds(request.Context(), sellerID, filter, params, requestutil.Locale(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, cards, params.Meta(total))
}

/*
GET /api/v1/my-ads/{id}.

Response:
  - 200: Detail
  - 403: ErrNotOwner
  - 404: ErrNotFound
*/
func (handler *Handler) getMine(writer http.ResponseWriter, request *http.Request) {
	sellerID, id, err := sellerAndID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	detail, err := handler.service.GetMyAd(request.Context(), sellerID, id, requestutil.Locale(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

/*
PATCH /api/v1/my-ads/{id}.

Description: Partial update of an owned ad. The slug never changes.

Request:
  - body: Patch

Response:
  - 200: Detail
  - 400: ErrValidation
  - 403: ErrNotOwner
  - 404: ErrNotFound
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	sellerID, id, err := sellerAndID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	detail, err := handler.service.UpdateAd(request.Context(), sellerID, id, patch, requestutil.Locale(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

/*
DELETE /api/v1/my-ads/{id}.

Response:
  - 204: Deleted, with its photos, favorites and search count
  - 403: ErrNotOwner
  - 404: ErrNotFound
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	sellerID, id, err := sellerAndID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteAd(request.Context(), sellerID, id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

/*
PUT /api/v1/my-ads/{id}/photos.

Description: Replaces the whole photo set in the given order.

Request:
  - body: {"photos": []PhotoInput}

Response:
  - 200: []Photo
  - 400: ErrValidation
  - 403: ErrNotOwner
  - 404: ErrNotFound
*/
func (handler *Handler) replacePhotos(writer http.ResponseWriter, request *http.Request) {
	sellerID, id, err := sellerAndID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body struct {
		Photos []PhotoInput `json:"photos"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	photos, err := handler.service.ReplacePhotos(request.Context(), sellerID, id, body.Photos)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, photos)
}

/*
PATCH /api/v1/admin/ads/{id}/status.

Request:
  - body: {"status": "active"}

Response:
  - 204: Updated
  - 400: ErrValidation: Unknown status
  - 404: ErrNotFound
*/
func (handler *Handler) setStatus(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body struct {
		Status Status `json:"status"`
	}
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.SetStatus(request.Context(), id, body.Status); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Helpers

// parseFilter reads the listing filters. It never fails; bad values are dropped.
func parseFilter(values url.Values) Filter {
	return Filter{
		PriceMin:    convert.OptionalInt64(convert.FirstNonEmpty(values.Get("price_min"), values.Get("price__gte"))),
		PriceMax:    convert.OptionalInt64(convert.FirstNonEmpty(values.Get("price_max"), values.Get("price__lte"))),
		SellerID:    convert.OptionalInt64(values.Get("seller")),
		RegionID:    convert.OptionalInt64(values.Get("region_id")),
		DistrictID:  convert.OptionalInt64(values.Get("district_id")),
		CategoryIDs: query.Int64List(values.Get("category_ids")),
		IsTop:       convert.OptionalBool(values.Get("is_top")),
		Query:       strings.TrimSpace(values.Get("q")),
		Ordering:    ParseOrdering(values.Get("ordering")),
	}
}

func sellerAndID(request *http.Request) (int64, int64, error) {
	sellerID, err := requestutil.RequiredUserID(request)
	if err != nil {
		return 0, 0, err
	}
	id, err := requestutil.Int64Param(request, "id")
	if err != nil {
		return 0, 0, err
	}
	return sellerID, id, nil
}
