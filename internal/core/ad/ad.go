// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package ad owns marketplace listings: their storage, lifecycle and discovery.

Core Responsibility:

  - Ownership: sellers mutate and delete only their own ads; administrators
    drive the status lifecycle.
  - Identity: the slug is derived from the default-locale name once, at
    creation, and never changes afterwards.
  - Discovery: filtered, ordered and paginated listings over published ads
    (public scope) or over one seller's ads in any state (seller scope).
  - Projection: every ad leaves the package as a [Card] or [Detail] rendered
    in one locale and annotated with is_liked for the requesting actor.

Photos are replaced as a set, atomically.
*/
package ad

import (
	"time"

	"github.com/taibuivan/bazaar/internal/platform/locale"
)

// # Status

// Status is the moderation state of an ad.
type Status string

const (
	StatusPending  Status = "pending"
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
	StatusRejected Status = "rejected"
)

// Statuses lists every valid [Status].
var Statuses = []Status{StatusPending, StatusActive, StatusInactive, StatusRejected}

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusActive, StatusInactive, StatusRejected:
		return true
	}
	return false
}

// # Core Entities

// Ad is a listing as stored, plus the projections loaded with it.
type Ad struct {
	ID          int64
	Name        locale.Text
	Description locale.Text
	Slug        string
	Price       int64
	CategoryID  *int64
	SellerID    int64
	AddressID   *int64
	Status      Status
	IsPublished bool
	IsTop       bool
	ViewCount   int64
	PublishedAt time.Time
	UpdatedAt   time.Time

	// Read projections. Not written by the store.
	Seller       Seller
	AddressName  *string
	CategoryName locale.Text
	Photos       []Photo
}

// Photo is an image attached to an ad. Lower SortOrder comes first.
type Photo struct {
	ID        int64     `json:"id"`
	AdID      int64     `json:"-"`
	Image     string    `json:"image"`
	IsMain    bool      `json:"is_main"`
	SortOrder int       `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// Seller is the public summary of an ad's owner.
type Seller struct {
	ID       int64   `json:"id"`
	FullName string  `json:"full_name"`
	Phone    string  `json:"phone_number"`
	Photo    *string `json:"photo"`
}

// Summary is one listing row: the ad joined with its seller, address label
// and main photo.
type Summary struct {
	ID          int64
	Name        locale.Text
	Slug        string
	Price       int64
	CategoryID  *int64
	Status      Status
	IsPublished bool
	IsTop       bool
	ViewCount   int64
	PublishedAt time.Time
	UpdatedAt   time.Time
	Photo       *string
	Address     *string
	Seller      Seller
}

// # Projections

// Card is an ad as it appears in a listing.
type Card struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Price       int64     `json:"price"`
	Photo       *string   `json:"photo"`
	PublishedAt time.Time `json:"published_at"`
	UpdatedTime time.Time `json:"updated_time"`
	Address     *string   `json:"address"`
	Seller      Seller    `json:"seller"`
	IsLiked     bool      `json:"is_liked"`
	IsTop       bool      `json:"is_top"`

	// Owner-facing fields, empty on public listings.
	Status    Status `json:"status,omitempty"`
	ViewCount *int64 `json:"view_count,omitempty"`
}

// CategoryRef names the category of a [Detail].
type CategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Detail is the full rendering of one ad.
type Detail struct {
	Card
	Description string       `json:"description"`
	Photos      []Photo      `json:"photos"`
	Category    *CategoryRef `json:"category"`
	IsPublished bool         `json:"is_published"`
}

// # Inputs

// PhotoInput is an image reference supplied by the seller.
type PhotoInput struct {
	Image  string `json:"image"`
	IsMain bool   `json:"is_main"`
}

// CreateInput carries the seller-supplied fields of a new ad.
type CreateInput struct {
	Name        locale.Text  `json:"name"`
	Description locale.Text  `json:"description"`
	Price       int64        `json:"price"`
	CategoryID  *int64       `json:"category_id"`
	IsTop       bool         `json:"is_top"`
	Photos      []PhotoInput `json:"photos"`
}

// Patch is a partial update by the owner. Nil fields are left unchanged.
//
// Name and Description are merged per locale; a blank translation removes it.
// The slug is never touched.
type Patch struct {
	Name        locale.Text `json:"name"`
	Description locale.Text `json:"description"`
	Price       *int64      `json:"price"`
	CategoryID  *int64      `json:"category_id"`
	IsTop       *bool       `json:"is_top"`
	IsPublished *bool       `json:"is_published"`
}

// # Field Identifiers

const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldCategoryID  = "category_id"
	FieldPhotos      = "photos"
	FieldStatus      = "status"
	FieldSlug        = "slug"
)

// # Limits

const (
	MaxNameLength        = 255
	MaxDescriptionLength = 5000
	MaxSlugLength        = 200
	MaxImageLength       = 1024

	// MaxPhotos bounds the photo set of one ad.
	MaxPhotos = 10
)
