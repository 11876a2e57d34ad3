// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"

	"github.com/taibuivan/bazaar/internal/platform/cache"
	"github.com/taibuivan/bazaar/internal/platform/events"
)

// # Ad Count Freshness

// CountRefresher is the [events.Publisher] handed to the ad service. It drops
// the cached listings carrying per-category ad counts whenever an ad is
// created, changed, moderated or deleted, then forwards the event.
type CountRefresher struct {
	service *Service
	next    events.Publisher
}

// NewCountRefresher wraps next.
func NewCountRefresher(service *Service, next events.Publisher) *CountRefresher {
	return &CountRefresher{service: service, next: next}
}

// Publish implements [events.Publisher].
func (refresher *CountRefresher) Publish(ctx context.Context, subject string, payload any) error {
	switch subject {
	case events.SubjectAdCreated, events.SubjectAdUpdated, events.SubjectAdDeleted, events.SubjectAdStatusChanged:
		refresher.service.invalidateCounts(ctx)
	}
	return refresher.next.Publish(ctx, subject, payload)
}

// invalidateCounts drops the per-locale lists; the tree carries no counts.
func (service *Service) invalidateCounts(ctx context.Context) {
	keys := make([]string, 0, len(service.catalog.Supported))
	for _, code := range service.catalog.Supported {
		keys = append(keys, listKey(code))
	}
	cache.Invalidate(ctx, service.cache, keys...)
}
