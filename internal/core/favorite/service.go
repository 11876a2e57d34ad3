// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package favorite

import (
	"context"
	"log/slog"

	"github.com/taibuivan/bazaar/internal/core/ad"
	"github.com/taibuivan/bazaar/internal/platform/actor"
	"github.com/taibuivan/bazaar/internal/platform/events"
	"github.com/taibuivan/bazaar/internal/platform/locale"
	"github.com/taibuivan/bazaar/internal/platform/metrics"
	"github.com/taibuivan/bazaar/internal/platform/validate"
	"github.com/taibuivan/bazaar/pkg/pagination"
)

//go:generate mockgen -destination=mocks/mock_cards.go -package=mocks github.com/taibuivan/bazaar/internal/core/favorite AdCards

// AdCards renders listing cards for a set of ad ids in one batch.
// [ad.Service] satisfies it.
type AdCards interface {
	Cards(context context.Context, ids []int64, who actor.Actor, requested locale.Code) ([]ad.Card, error)
}

// # Service Layer

// Service manages favorite entries.
type Service struct {
	repo      Repository
	cards     AdCards
	publisher events.Publisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewService constructs a new favorite [Service].
func NewService(repo Repository, cards AdCards, publisher events.Publisher, metrics *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		cards:     cards,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
	}
}

/*
Add likes an ad on behalf of who. Repeating it is harmless.

Parameters:
  - context: context.Context
  - who: actor.Actor (User or Device; the zero actor is rejected)
  - adID: int64

Returns:
  - *Entry: The entry, new or existing
  - bool: True when the entry was created by this call
  - error: ValidationError, NotFound for an unknown ad
*/
func (service *Service) Add(context context.Context, who actor.Actor, adID int64) (*Entry, bool, error) {
	if err := who.Validate(); err != nil {
		return nil, false, err
	}
	if err := (&validate.Validator{}).Positive(FieldAdID, &adID).Err(); err != nil {
		return nil, false, err
	}

	entry, created, err := service.repo.Add(context, who, adID)
	if err != nil {
		return nil, false, err
	}
	if !created {
		return entry, false, nil
	}

	service.metrics.FavoriteAdded(who.Kind().String())
	service.logger.InfoContext(context, "favorite_added",
		slog.Int64("ad_id", adID),
		slog.String("actor", who.Kind().String()),
	)
	service.publish(context, events.SubjectFavoriteAdded, payload(who, adID))

	return entry, true, nil
}

/*
Remove deletes the entry of exactly who for adID.

Returns:
  - error: ValidationError, or NotFound when who never liked the ad (even if
    another actor did)
*/
func (service *Service) Remove(context context.Context, who actor.Actor, adID int64) error {
	if err := who.Validate(); err != nil {
		return err
	}

	if err := service.repo.Remove(context, who, adID); err != nil {
		return err
	}

	service.logger.InfoContext(context, "favorite_removed",
		slog.Int64("ad_id", adID),
		slog.String("actor", who.Kind().String()),
	)
	service.publish(context, events.SubjectFavoriteRemoved, payload(who, adID))
	return nil
}

/*
List returns the ads liked by who, newest like first.

Description: One query pages the ledger, a second renders every card of the
page. Every returned card is liked by definition.

Parameters:
  - context: context.Context
  - who: actor.Actor
  - categoryID: *int64 (Optional)
  - page: pagination.Params
  - requested: locale.Code

Returns:
  - []ad.Card: The page
  - int: Total liked ads
  - error: ValidationError or retrieval failures
*/
func (service *Service) List(context context.Context, who actor.Actor, categoryID *int64, page pagination.Params, requested locale.Code) ([]ad.Card, int, error) {
	if err := who.Validate(); err != nil {
		return nil, 0, err
	}

	ids, total, err := service.repo.List(context, who, categoryID, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, err
	}
	if len(ids) == 0 {
		return []ad.Card{}, total, nil
	}

	cards, err := service.cards.Cards(context, ids, actor.Actor{}, requested)
	if err != nil {
		return nil, 0, err
	}
	for i := range cards {
		cards[i].IsLiked = true
	}
	return cards, total, nil
}

// # Helpers

func (service *Service) publish(context context.Context, subject string, payload any) {
	if err := service.publisher.Publish(context, subject, payload); err != nil {
		service.logger.WarnContext(context, "event_publish_failed",
			slog.String("subject", subject),
			slog.Any("error", err),
		)
	}
}

func payload(who actor.Actor, adID int64) events.FavoriteEvent {
	event := events.FavoriteEvent{AdID: adID, ActorKind: who.Kind().String()}
	if id, ok := who.UserID(); ok {
		event.UserID = id
	}
	return event
}
