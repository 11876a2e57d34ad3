// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package category manages the marketplace taxonomy.

Categories form a self-referential tree (one level of nesting in practice)
with localized names and an optional icon.

Core Responsibility:

  - Taxonomy: flat listing with published ad counts, and the root/children tree.
  - Discovery: children of a node and name substring search in a locale.
  - Integrity: parents are assigned only at creation and must already exist,
    so the parent chain stays acyclic.

Deleting a category clears the category of its ads (ON DELETE SET NULL).
*/
package category

import (
	"time"

	"github.com/taibuivan/bazaar/internal/platform/locale"
)

// # Core Entities

// Category is a taxonomy node as stored.
type Category struct {
	ID        int64
	ParentID  *int64
	Name      locale.Text
	Icon      *string
	CreatedAt time.Time

	// AdCount is the number of published ads directly in this category.
	// Only populated by listings that ask for it.
	AdCount int64
}

// # Projections

// View is a category rendered in one locale.
type View struct {
	ID       int64   `json:"id"`
	ParentID *int64  `json:"parent_id"`
	Name     string  `json:"name"`
	Icon     *string `json:"icon"`
	AdCount  *int64  `json:"ad_count,omitempty"`
}

// Node is a category with its children, for the tree endpoint.
type Node struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Icon     *string `json:"icon"`
	Children []Node  `json:"children"`
}

// CreateInput carries the fields an administrator sets on a new category.
type CreateInput struct {
	ParentID *int64      `json:"parent_id"`
	Name     locale.Text `json:"name"`
	Icon     *string     `json:"icon"`
}

// # Field Identifiers

const (
	FieldName     = "name"
	FieldParentID = "parent_id"
	FieldIcon     = "icon"
	FieldQuery    = "q"
)

// # Limits

const (
	// MaxNameLength bounds each translation of a category name.
	MaxNameLength = 255

	// MatchLimit caps name search results.
	MatchLimit = 20
)
