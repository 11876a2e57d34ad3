// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/bazaar/internal/platform/middleware"
	requestutil "github.com/taibuivan/bazaar/internal/platform/request"
	"github.com/taibuivan/bazaar/internal/platform/respond"
	"github.com/taibuivan/bazaar/internal/platform/sec"
)

// Handler implements the HTTP layer for the category tree.
type Handler struct {
	service *Service
}

// NewHandler constructs a new category [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] mounted at /categories.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/", handler.list)
	router.Get("/tree", handler.tree)
	router.Get("/{id}/children", handler.children)

	// Admin Only
	router.With(middleware.RequireRole(sec.RoleAdmin)).Post("/", handler.create)

	return router
}

/*
GET /api/v1/categories.

Description: Flat list of categories with the number of published ads in each.

Response:
  - 200: []View
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	views, err := handler.service.List(request.Context(), requestutil.Locale(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, views)
}

/*
GET /api/v1/categories/tree.

Description: Root categories with their children.

Response:
  - 200: []Node
*/
func (handler *Handler) tree(writer http.ResponseWriter, request *http.Request) {
	nodes, err := handler.service.Tree(request.Context(), requestutil.Locale(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, nodes)
}

/*
GET /api/v1/categories/{id}/children.

Request:
  - id: int64 (Parent category)

Response:
  - 200: []View: Direct children, empty for a leaf
  - 400: ErrValidation: Non-numeric id
*/
func (handler *Handler) children(writer http.ResponseWriter, request *http.Request) {

	// Parse parent id
	parentID, err := requestutil.Int64Param(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	views, err := handler.service.ChildrenOf(request.Context(), parentID, requestutil.Locale(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, views)
}

/*
POST /api/v1/categories.

Description: Administrator creates a category, optionally under an existing parent.

Request:
  - body: CreateInput

Response:
  - 201: View
  - 400: ErrValidation
  - 404: ErrNotFound: Parent does not exist
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {

	// Decode payload
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, view)
}
