// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/bazaar/internal/platform/cache"
	"github.com/taibuivan/bazaar/internal/platform/constants"
	"github.com/taibuivan/bazaar/internal/platform/locale"
	"github.com/taibuivan/bazaar/internal/platform/validate"
)

// # Service Layer

// Service orchestrates the category tree.
//
// Listings are cached per locale for ttl; any write invalidates every locale.
type Service struct {
	repo    Repository
	cache   cache.Store
	ttl     time.Duration
	catalog locale.Catalog
	logger  *slog.Logger
}

// NewService constructs a new category [Service].
func NewService(repo Repository, store cache.Store, ttl time.Duration, catalog locale.Catalog, logger *slog.Logger) *Service {
	return &Service{repo: repo, cache: store, ttl: ttl, catalog: catalog, logger: logger}
}

/*
LocalizedName returns the category name in requested, else in the default locale.
*/
func (service *Service) LocalizedName(category *Category, requested locale.Code) string {
	return service.catalog.Resolve(category.Name, requested)
}

/*
List returns every category rendered in one locale, with published ad counts.

Parameters:
  - ctx: context.Context
  - requested: locale.Code

Returns:
  - []View: Flat list ordered by id
  - error: Database retrieval failures
*/
func (service *Service) List(ctx context.Context, requested locale.Code) ([]View, error) {
	code := service.catalog.Normalize(requested)

	return cache.Fetch(ctx, service.cache, listKey(code), service.ttl, func(ctx context.Context) ([]View, error) {
		categories, err := service.repo.List(ctx)
		if err != nil {
			return nil, err
		}

		views := make([]View, 0, len(categories))
		for _, category := range categories {
			view := service.view(category, code)
			count := category.AdCount
			view.AdCount = &count
			views = append(views, view)
		}
		return views, nil
	})
}

/*
Tree returns root categories with their children nested.

Description: The tree is assembled in memory from the flat list. A node whose
parent is missing is promoted to a root.

Parameters:
  - ctx: context.Context
  - requested: locale.Code

Returns:
  - []Node: Roots ordered by id, children ordered by id
  - error: Database retrieval failures
*/
func (service *Service) Tree(ctx context.Context, requested locale.Code) ([]Node, error) {
	code := service.catalog.Normalize(requested)

	return cache.Fetch(ctx, service.cache, treeKey(code), service.ttl, func(ctx context.Context) ([]Node, error) {
		categories, err := service.repo.List(ctx)
		if err != nil {
			return nil, err
		}
		return service.buildTree(categories, code), nil
	})
}

/*
ChildrenOf returns the direct children of a category.

Parameters:
  - context: context.Context
  - parentID: int64
  - requested: locale.Code

Returns:
  - []View: Empty for a leaf
  - error: Validation or retrieval failures
*/
func (service *Service) ChildrenOf(context context.Context, parentID int64, requested locale.Code) ([]View, error) {
	validator := &validate.Validator{}
	validator.Positive(FieldParentID, &parentID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	children, err := service.repo.ChildrenOf(context, parentID)
	if err != nil {
		return nil, err
	}
	return service.views(children, requested), nil
}

/*
MatchByNameSubstring finds categories whose localized name contains query.

Description: Matching happens on the requested translation, falling back to
the default one for rows that lack it. A blank query matches nothing.

Parameters:
  - context: context.Context
  - search: string
  - requested: locale.Code

Returns:
  - []View: At most [MatchLimit] categories
  - error: Retrieval failures
*/
func (service *Service) MatchByNameSubstring(context context.Context, search string, requested locale.Code) ([]View, error) {
	search = strings.TrimSpace(search)
	if search == "" {
		return []View{}, nil
	}

	code := service.catalog.Normalize(requested)
	matches, err := service.repo.MatchByName(context, search, code, service.catalog.Default, MatchLimit)
	if err != nil {
		return nil, err
	}
	return service.views(matches, code), nil
}

/*
Create adds a category to the tree.

Description: The default-locale name is mandatory. When a parent is given it
must already exist, so no cycle can be formed.

Parameters:
  - context: context.Context
  - input: CreateInput

Returns:
  - *View: The created category in the default locale
  - error: Validation, NotFound (parent) or storage errors
*/
func (service *Service) Create(context context.Context, input CreateInput) (*View, error) {
	name := input.Name.Clean()

	validator := &validate.Validator{}
	validator.Localized(FieldName, name, service.catalog.Default, service.catalog.Supported, MaxNameLength)
	validator.Positive(FieldParentID, input.ParentID)
	if input.Icon != nil {
		validator.MaxLen(FieldIcon, *input.Icon, MaxNameLength)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.ParentID != nil {
		if _, err := service.repo.FindByID(context, *input.ParentID); err != nil {
			return nil, err
		}
	}

	category := &Category{ParentID: input.ParentID, Name: name, Icon: input.Icon}
	if err := service.repo.Create(context, category); err != nil {
		return nil, err
	}

	service.invalidate(context)
	service.logger.InfoContext(context, "category_created",
		slog.Int64("category_id", category.ID),
		slog.Any("parent_id", category.ParentID),
	)

	view := service.view(category, service.catalog.Default)
	return &view, nil
}

// # Helpers

func (service *Service) view(category *Category, code locale.Code) View {
	return View{
		ID:       category.ID,
		ParentID: category.ParentID,
		Name:     service.catalog.Resolve(category.Name, code),
		Icon:     category.Icon,
	}
}

func (service *Service) views(categories []*Category, requested locale.Code) []View {
	code := service.catalog.Normalize(requested)

	views := make([]View, 0, len(categories))
	for _, category := range categories {
		views = append(views, service.view(category, code))
	}
	return views
}

// buildTree nests categories under their parents. Input order is kept.
func (service *Service) buildTree(categories []*Category, code locale.Code) []Node {
	known := make(map[int64]bool, len(categories))
	for _, category := range categories {
		known[category.ID] = true
	}

	children := make(map[int64][]*Category)
	var roots []*Category
	for _, category := range categories {
		if category.ParentID != nil && known[*category.ParentID] && *category.ParentID != category.ID {
			children[*category.ParentID] = append(children[*category.ParentID], category)
			continue
		}
		roots = append(roots, category)
	}

	var build func(category *Category, depth int) Node
	build = func(category *Category, depth int) Node {
		node := Node{
			ID:       category.ID,
			Name:     service.catalog.Resolve(category.Name, code),
			Icon:     category.Icon,
			Children: []Node{},
		}
		// Depth is bounded by the row count even if stored data were cyclic.
		if depth < len(categories) {
			for _, child := range children[category.ID] {
				node.Children = append(node.Children, build(child, depth+1))
			}
		}
		return node
	}

	tree := make([]Node, 0, len(roots))
	for _, root := range roots {
		tree = append(tree, build(root, 0))
	}
	return tree
}

func (service *Service) invalidate(context context.Context) {
	keys := make([]string, 0, 2*len(service.catalog.Supported))
	for _, code := range service.catalog.Supported {
		keys = append(keys, listKey(code), treeKey(code))
	}
	cache.Invalidate(context, service.cache, keys...)
}

func listKey(code locale.Code) string {
	return constants.RedisPrefixCategories + "list:" + code.String()
}

func treeKey(code locale.Code) string {
	return constants.RedisPrefixCategories + "tree:" + code.String()
}
