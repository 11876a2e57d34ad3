// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package favorite

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/bazaar/internal/platform/constants"
	requestutil "github.com/taibuivan/bazaar/internal/platform/request"
	"github.com/taibuivan/bazaar/internal/platform/respond"
	"github.com/taibuivan/bazaar/pkg/convert"
	"github.com/taibuivan/bazaar/pkg/pagination"
)

// queryCategory narrows the favorites list to one category.
const queryCategory = "category"

// Handler implements the HTTP layer for favorites.
//
// Every endpoint acts for the authenticated user when there is one, and for
// the device_id otherwise. A request with neither is rejected.
type Handler struct {
	service *Service
}

// NewHandler constructs a new favorite [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /favorites.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.add)
	router.Delete("/{adID}", handler.remove)

	return router
}

/*
POST /api/v1/favorites.

Request:
  - body: AddInput ({ad_id, device_id?}; device_id may also come from the query)

Response:
  - 201: Entry: Newly created
  - 200: Entry: Already liked, unchanged
  - 400: ErrValidation: Missing actor or ad_id
  - 404: ErrNotFound: Unknown ad
*/
func (handler *Handler) add(writer http.ResponseWriter, request *http.Request) {

	// Decode payload
	var input AddInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Resolve actor
	who, err := requestutil.Actor(request, input.DeviceID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	entry, created, err := handler.service.Add(request.Context(), who, input.AdID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if created {
		respond.Created(writer, entry)
		return
	}
	respond.OK(writer, entry)
}

/*
DELETE /api/v1/favorites/{adID}.

Request:
  - adID: int64
  - device_id: string (Query, anonymous callers)

Response:
  - 204: No Content
  - 404: ErrNotFound: The caller has no entry for this ad
*/
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	adID, err := requestutil.Int64Param(request, "adID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	who, err := requestutil.Actor(request, "")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Remove(request.Context(), who, adID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

/*
GET /api/v1/favorites.

Request:
  - device_id: string (Anonymous callers)
  - category: int64 (Optional)
  - page, page_size | limit: int

Response:
  - 200: []ad.Card: Paginated, all with is_liked=true
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	who, err := requestutil.Actor(request, "")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequestWithDefault(request, constants.FavoritesPageSize)
	categoryID := convert.OptionalInt64(request.URL.Query().Get(queryCategory))

	cards, total, err := handler.service.List(request.Context(), who, categoryID, params, requestutil.Locale(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, cards, params.Meta(total))
}
