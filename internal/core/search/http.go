// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/bazaar/internal/platform/constants"
	"github.com/taibuivan/bazaar/internal/platform/middleware"
	requestutil "github.com/taibuivan/bazaar/internal/platform/request"
	"github.com/taibuivan/bazaar/internal/platform/respond"
	"github.com/taibuivan/bazaar/pkg/convert"
	"github.com/taibuivan/bazaar/pkg/pagination"
)

// Query parameters of the lookup endpoints.
const (
	queryText     = "q"
	queryLimit    = "limit"
	queryParentID = "parent_id"
)

// Handler implements the HTTP layer for search.
//
// # Access Control
//
//   - Public: hits, popular, lookups.
//   - Authenticated: saved searches, scoped to the caller.
type Handler struct {
	service *Service
}

// NewHandler constructs a new search [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /search.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/hits/{adID}", handler.registerHit)
	router.Get("/popular", handler.popular)
	router.Get("/categories", handler.categories)
	router.Get("/sub-categories", handler.subCategories)
	router.Get("/complete", handler.complete)
	router.Get("/category-product", handler.categoryProduct)

	return router
}

// MySearchRoutes returns the router mounted at /my-searches.
func (handler *Handler) MySearchRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listSearches)
	router.Post("/", handler.saveSearch)
	router.Delete("/{id}", handler.deleteSearch)

	return router
}

/*
POST /api/v1/search/hits/{adID}.

Description: Counts one search hit for the ad.

Response:
  - 200: Hit
  - 404: ErrNotFound: Unknown ad
*/
func (handler *Handler) registerHit(writer http.ResponseWriter, request *http.Request) {
	adID, err := requestutil.Int64Param(request, "adID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	hit, err := handler.service.RegisterHit(request.Context(), adID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, hit)
}

/*
GET /api/v1/search/popular.

Request:
  - limit: int (Default 10, max 100)
  - device_id: string (For is_liked when anonymous)

Response:
  - 200: []PopularCard
*/
func (handler *Handler) popular(writer http.ResponseWriter, request *http.Request) {
	limit := convert.ToIntD(request.URL.Query().Get(queryLimit), constants.PopularDefaultLimit)

	cards, err := handler.service.Popular(request.Context(), limit, requestutil.OptionalActor(request), requestutil.Locale(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, cards)
}

/*
GET /api/v1/search/categories.

Request:
  - q: string (Substring of the name in the request locale)

Response:
  - 200: []category.View: Empty for a blank q
*/
func (handler *Handler) categories(writer http.ResponseWriter, request *http.Request) {
	views, err := handler.service.Categories(request.Context(), request.URL.Query().Get(queryText), requestutil.Locale(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, views)
}

/*
GET /api/v1/search/sub-categories.

Request:
  - parent_id: int64 (Required)

Response:
  - 200: []category.View
  - 400: ErrValidation: Missing or invalid parent_id
*/
func (handler *Handler) subCategories(writer http.ResponseWriter, request *http.Request) {
	parentID := convert.OptionalInt64(request.URL.Query().Get(queryParentID))

	views, err := handler.service.SubCategories(request.Context(), parentID, requestutil.Locale(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, views)
}

/*
GET /api/v1/search/complete.

Request:
  - q: string

Response:
  - 200: []string: Published ad names, at most 10
*/
func (handler *Handler) complete(writer http.ResponseWriter, request *http.Request) {
	names, err := handler.service.Complete(request.Context(), request.URL.Query().Get(queryText), requestutil.Locale(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, names)
}

/*
GET /api/v1/search/category-product.

Request:
  - q: string

Response:
  - 200: CategoryProduct: Category matches plus ad name suggestions
*/
func (handler *Handler) categoryProduct(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.CategoryProduct(request.Context(), request.URL.Query().Get(queryText), requestutil.Locale(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

/*
GET /api/v1/my-searches.

Response:
  - 200: []MySearch: Paginated, newest first
*/
func (handler *Handler) listSearches(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	params := pagination.FromRequestWithDefault(request, constants.MySearchPageSize)
	searches, total, err := handler.service.ListSearches(request.Context(), userID, params)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Paginated(writer, searches, params.Meta(total))
}

/*
POST /api/v1/my-searches.

Request:
  - body: MySearchInput

Response:
  - 201: MySearch
  - 400: ErrValidation
  - 404: ErrNotFound: Unknown category or region
*/
func (handler *Handler) saveSearch(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input MySearchInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	search, err := handler.service.SaveSearch(request.Context(), userID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, search)
}

/*
DELETE /api/v1/my-searches/{id}.

Response:
  - 204: No Content
  - 403: ErrNotOwner
  - 404: ErrNotFound
*/
func (handler *Handler) deleteSearch(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteSearch(request.Context(), userID, id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
