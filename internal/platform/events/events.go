// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package events publishes marketplace domain events.

Publishing is best effort: a lost event never fails the request that caused it.
Services call [Publisher.Publish] after the write committed and only log a
failure. With no broker configured the [Noop] publisher is used.

Subjects:

	ads.created, ads.updated, ads.deleted, ads.status_changed
	favorites.added, favorites.removed
*/
package events

import (
	"context"
	"time"

	"github.com/taibuivan/bazaar/pkg/uuid"
)

// Subjects published by the API.
const (
	SubjectAdCreated       = "ads.created"
	SubjectAdUpdated       = "ads.updated"
	SubjectAdDeleted       = "ads.deleted"
	SubjectAdStatusChanged = "ads.status_changed"
	SubjectFavoriteAdded   = "favorites.added"
	SubjectFavoriteRemoved = "favorites.removed"
)

// Publisher sends an event payload on a subject.
type Publisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

// Envelope wraps every payload on the wire.
type Envelope struct {
	ID         string    `json:"id"`
	Subject    string    `json:"subject"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// NewEnvelope stamps payload with a fresh id and the current time.
func NewEnvelope(subject string, payload any) Envelope {
	return Envelope{
		ID:         uuid.New(),
		Subject:    subject,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// Noop drops every event.
type Noop struct{}

// Publish implements [Publisher].
func (Noop) Publish(context.Context, string, any) error { return nil }

// # Payloads

// AdEvent describes a change to an ad.
type AdEvent struct {
	AdID     int64  `json:"ad_id"`
	SellerID int64  `json:"seller_id"`
	Slug     string `json:"slug,omitempty"`
	Status   string `json:"status,omitempty"`
}

// FavoriteEvent describes a favorite being added or removed.
type FavoriteEvent struct {
	AdID      int64  `json:"ad_id"`
	ActorKind string `json:"actor_kind"`
	UserID    int64  `json:"user_id,omitempty"`
}
