// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bazaar/internal/core/ad"
	"github.com/taibuivan/bazaar/internal/core/category"
	"github.com/taibuivan/bazaar/internal/core/search"
	"github.com/taibuivan/bazaar/internal/core/search/mocks"
	"github.com/taibuivan/bazaar/internal/platform/actor"
	"github.com/taibuivan/bazaar/internal/platform/apperr"
	"github.com/taibuivan/bazaar/internal/platform/cache"
	"github.com/taibuivan/bazaar/internal/platform/constants"
	"github.com/taibuivan/bazaar/internal/platform/locale"
	"github.com/taibuivan/bazaar/pkg/pagination"
)

// memoryStore keeps JSON like Redis would.
type memoryStore map[string][]byte

func (s memoryStore) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := s[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (s memoryStore) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	s[key] = raw
	return err
}

func (s memoryStore) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(s, key)
	}
	return nil
}

type fixture struct {
	service    *search.Service
	repo       *mocks.MockRepository
	ads        *mocks.MockAds
	categories *mocks.MockCategories
}

func newFixture(t *testing.T, store cache.Store) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	ads := mocks.NewMockAds(ctrl)
	categories := mocks.NewMockCategories(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return fixture{
		service:    search.NewService(repo, ads, categories, store, time.Minute, nil, logger),
		repo:       repo,
		ads:        ads,
		categories: categories,
	}
}

/*
TestRegisterHit validates the id and returns the counter after increment.
*/
func TestRegisterHit(t *testing.T) {
	ctx := context.Background()

	t.Run("counted", func(t *testing.T) {
		f := newFixture(t, cache.Noop{})
		f.repo.EXPECT().RegisterHit(ctx, int64(42)).Return(&search.Hit{ID: 1, AdID: 42, SearchCount: 3}, nil)

		hit, err := f.service.RegisterHit(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, int64(3), hit.SearchCount)
	})

	t.Run("invalid_id", func(t *testing.T) {
		f := newFixture(t, cache.Noop{})
		_, err := f.service.RegisterHit(ctx, 0)
		assert.True(t, apperr.Is(err, apperr.CodeValidation))
	})

	t.Run("unknown_ad", func(t *testing.T) {
		f := newFixture(t, cache.Noop{})
		f.repo.EXPECT().RegisterHit(ctx, int64(9)).Return(nil, apperr.NotFound("Ad"))

		_, err := f.service.RegisterHit(ctx, 9)
		assert.True(t, apperr.Is(err, apperr.CodeNotFound))
	})
}

/*
TestPopular keeps the ranking order, attaches counts and skips vanished ads.
*/
func TestPopular(t *testing.T) {
	ctx := context.Background()
	who := actor.Device("d1")

	t.Run("ranked_cards", func(t *testing.T) {
		f := newFixture(t, memoryStore{})
		ranked := []search.Ranked{{AdID: 5, SearchCount: 9}, {AdID: 2, SearchCount: 9}, {AdID: 7, SearchCount: 1}}

		f.repo.EXPECT().Popular(ctx, constants.PopularDefaultLimit).Return(ranked, nil).Times(1)
		f.ads.EXPECT().Cards(ctx, []int64{5, 2, 7}, who, locale.Russian).
			Return([]ad.Card{{ID: 5, IsLiked: true}, {ID: 7}}, nil).Times(2)

		for range 2 {
			cards, err := f.service.Popular(ctx, 0, who, locale.Russian)

			require.NoError(t, err)
			require.Len(t, cards, 2)
			assert.Equal(t, int64(5), cards[0].ID)
			assert.Equal(t, int64(9), cards[0].SearchCount)
			assert.True(t, cards[0].IsLiked)
			assert.Equal(t, int64(1), cards[1].SearchCount)
		}
	})

	t.Run("limit_is_clamped", func(t *testing.T) {
		f := newFixture(t, cache.Noop{})
		f.repo.EXPECT().Popular(ctx, pagination.MaxLimit).Return([]search.Ranked{}, nil)

		cards, err := f.service.Popular(ctx, 5000, who, locale.Uzbek)

		require.NoError(t, err)
		assert.Empty(t, cards)
	})
}

/*
TestLookups delegates to the category and ad services.
*/
func TestLookups(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, cache.Noop{})

	f.categories.EXPECT().MatchByNameSubstring(ctx, "tel", locale.Uzbek).Return([]category.View{{ID: 3, Name: "Telefonlar"}}, nil)
	views, err := f.service.Categories(ctx, "tel", locale.Uzbek)
	require.NoError(t, err)
	assert.Len(t, views, 1)

	parent := int64(3)
	f.categories.EXPECT().ChildrenOf(ctx, parent, locale.Uzbek).Return([]category.View{}, nil)
	_, err = f.service.SubCategories(ctx, &parent, locale.Uzbek)
	require.NoError(t, err)

	_, err = f.service.SubCategories(ctx, nil, locale.Uzbek)
	assert.True(t, apperr.Is(err, apperr.CodeValidation))

	f.ads.EXPECT().Complete(ctx, "ph", locale.Uzbek, constants.AutocompleteLimit).Return([]string{"phone"}, nil)
	names, err := f.service.Complete(ctx, "ph", locale.Uzbek)
	require.NoError(t, err)
	assert.Equal(t, []string{"phone"}, names)
}

/*
TestCategoryProduct returns both lookups of one query and stops at the first failure.
*/
func TestCategoryProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("combined", func(t *testing.T) {
		f := newFixture(t, cache.Noop{})
		f.categories.EXPECT().MatchByNameSubstring(ctx, "tel", locale.Russian).Return([]category.View{{ID: 3, Name: "Телефоны"}}, nil)
		f.ads.EXPECT().Complete(ctx, "tel", locale.Russian, constants.AutocompleteLimit).Return([]string{"Телефон Samsung"}, nil)

		result, err := f.service.CategoryProduct(ctx, "tel", locale.Russian)
		require.NoError(t, err)
		assert.Equal(t, &search.CategoryProduct{
			Categories: []category.View{{ID: 3, Name: "Телефоны"}},
			Ads:        []string{"Телефон Samsung"},
		}, result)
	})

	t.Run("category_failure", func(t *testing.T) {
		f := newFixture(t, cache.Noop{})
		f.categories.EXPECT().MatchByNameSubstring(ctx, "tel", locale.Uzbek).Return(nil, apperr.Internal(errors.New("db down")))

		_, err := f.service.CategoryProduct(ctx, "tel", locale.Uzbek)
		assert.True(t, apperr.Is(err, apperr.CodeInternal))
	})

	t.Run("ad_failure", func(t *testing.T) {
		f := newFixture(t, cache.Noop{})
		f.categories.EXPECT().MatchByNameSubstring(ctx, "tel", locale.Uzbek).Return([]category.View{}, nil)
		f.ads.EXPECT().Complete(ctx, "tel", locale.Uzbek, constants.AutocompleteLimit).Return(nil, errors.New("db down"))

		result, err := f.service.CategoryProduct(ctx, "tel", locale.Uzbek)
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

/*
TestSaveSearch validates the criteria before storing them.
*/
func TestSaveSearch(t *testing.T) {
	ctx := context.Background()
	ptr := func(v int64) *int64 { return &v }
	text := func(v string) *string { return &v }

	invalid := []struct {
		name  string
		input search.MySearchInput
		field string
	}{
		{"no_criteria", search.MySearchInput{}, search.FieldQuery},
		{"blank_query_only", search.MySearchInput{Query: text("   ")}, search.FieldQuery},
		{"negative_price", search.MySearchInput{PriceMin: ptr(-1)}, search.FieldPriceMin},
		{"inverted_range", search.MySearchInput{PriceMin: ptr(10), PriceMax: ptr(5)}, search.FieldPriceMax},
		{"bad_category", search.MySearchInput{CategoryID: ptr(0)}, search.FieldCategoryID},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, cache.Noop{})

			_, err := f.service.SaveSearch(ctx, 7, tt.input)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)
			fields := make([]string, len(ae.Details))
			for i, detail := range ae.Details {
				fields[i] = detail.Field
			}
			assert.Contains(t, fields, tt.field)
		})
	}

	t.Run("stored", func(t *testing.T) {
		f := newFixture(t, cache.Noop{})
		f.repo.EXPECT().CreateMySearch(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, saved *search.MySearch) error {
			assert.Equal(t, int64(7), saved.UserID)
			assert.Equal(t, "telefon", *saved.Query)
			saved.ID = 11
			return nil
		})

		saved, err := f.service.SaveSearch(ctx, 7, search.MySearchInput{Query: text(" telefon "), PriceMax: ptr(300)})

		require.NoError(t, err)
		assert.Equal(t, int64(11), saved.ID)
	})
}

/*
TestDeleteSearch only lets the owner delete.
*/
func TestDeleteSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("owner", func(t *testing.T) {
		f := newFixture(t, cache.Noop{})
		f.repo.EXPECT().FindMySearch(ctx, int64(11)).Return(&search.MySearch{ID: 11, UserID: 7}, nil)
		f.repo.EXPECT().DeleteMySearch(ctx, int64(11)).Return(nil)

		require.NoError(t, f.service.DeleteSearch(ctx, 7, 11))
	})

	t.Run("someone_else", func(t *testing.T) {
		f := newFixture(t, cache.Noop{})
		f.repo.EXPECT().FindMySearch(ctx, int64(11)).Return(&search.MySearch{ID: 11, UserID: 8}, nil)

		err := f.service.DeleteSearch(ctx, 7, 11)
		assert.True(t, apperr.Is(err, apperr.CodeNotOwner))
	})

	t.Run("missing", func(t *testing.T) {
		f := newFixture(t, cache.Noop{})
		f.repo.EXPECT().FindMySearch(ctx, int64(11)).Return(nil, apperr.NotFound("Saved search"))

		err := f.service.DeleteSearch(ctx, 7, 11)
		assert.True(t, apperr.Is(err, apperr.CodeNotFound))
	})
}
