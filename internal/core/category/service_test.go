// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bazaar/internal/core/category"
	"github.com/taibuivan/bazaar/internal/core/category/mocks"
	"github.com/taibuivan/bazaar/internal/platform/apperr"
	"github.com/taibuivan/bazaar/internal/platform/cache"
	"github.com/taibuivan/bazaar/internal/platform/events"
	"github.com/taibuivan/bazaar/internal/platform/locale"
)

var catalog = locale.Catalog{Default: locale.Uzbek, Supported: []locale.Code{locale.Uzbek, locale.Russian}}

func newService(t *testing.T, store cache.Store) (*category.Service, *mocks.MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return category.NewService(repo, store, time.Minute, catalog, logger), repo
}

func ptr(v int64) *int64 { return &v }

// memoryStore is a JSON round-tripping cache used to observe invalidation.
type memoryStore map[string][]byte

func (m memoryStore) Get(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := m[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (m memoryStore) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	m[key] = raw
	return err
}

func (m memoryStore) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(m, key)
	}
	return nil
}

/*
TestLocalizedName falls back to the default locale when a translation is missing.
*/
func TestLocalizedName(t *testing.T) {
	service, _ := newService(t, cache.Noop{})
	phones := &category.Category{Name: locale.Text{locale.Uzbek: "Telefonlar"}}

	assert.Equal(t, "Telefonlar", service.LocalizedName(phones, locale.Russian))

	phones.Name[locale.Russian] = "Телефоны"
	assert.Equal(t, "Телефоны", service.LocalizedName(phones, locale.Russian))
	assert.Equal(t, "Telefonlar", service.LocalizedName(phones, "en"))
}

/*
TestTree nests children under their parent and keeps id order.
*/
func TestTree(t *testing.T) {
	service, repo := newService(t, cache.Noop{})

	repo.EXPECT().List(gomock.Any()).Return([]*category.Category{
		{ID: 1, Name: locale.Text{"uz": "Elektronika"}},
		{ID: 2, ParentID: ptr(1), Name: locale.Text{"uz": "Telefonlar"}},
		{ID: 3, Name: locale.Text{"uz": "Uy"}},
		{ID: 4, ParentID: ptr(1), Name: locale.Text{"uz": "Noutbuklar", "ru": "Ноутбуки"}},
		{ID: 5, ParentID: ptr(99), Name: locale.Text{"uz": "Yetim"}},
	}, nil)

	tree, err := service.Tree(context.Background(), locale.Russian)
	require.NoError(t, err)

	require.Len(t, tree, 3)
	assert.Equal(t, []int64{1, 3, 5}, []int64{tree[0].ID, tree[1].ID, tree[2].ID})

	require.Len(t, tree[0].Children, 2)
	assert.Equal(t, "Telefonlar", tree[0].Children[0].Name)
	assert.Equal(t, "Ноутбуки", tree[0].Children[1].Name)
	assert.Empty(t, tree[1].Children)
}

/*
TestList_CachedPerLocale serves the second read from cache and drops it on create.
*/
func TestList_CachedPerLocale(t *testing.T) {
	store := memoryStore{}
	service, repo := newService(t, store)
	ctx := context.Background()

	repo.EXPECT().List(gomock.Any()).Return([]*category.Category{
		{ID: 1, Name: locale.Text{"uz": "Elektronika"}, AdCount: 3},
	}, nil).Times(2)

	first, err := service.List(ctx, locale.Uzbek)
	require.NoError(t, err)
	require.Len(t, first, 1)
	require.NotNil(t, first[0].AdCount)
	assert.Equal(t, int64(3), *first[0].AdCount)

	second, err := service.List(ctx, locale.Uzbek)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *category.Category) error {
		c.ID = 2
		return nil
	})
	_, err = service.Create(ctx, category.CreateInput{Name: locale.Text{"uz": "Uy"}})
	require.NoError(t, err)
	assert.Empty(t, store)

	_, err = service.List(ctx, locale.Uzbek)
	require.NoError(t, err)
}

/*
TestCreate validates the name and checks that the parent exists.
*/
func TestCreate(t *testing.T) {
	t.Run("missing_default_name", func(t *testing.T) {
		service, _ := newService(t, cache.Noop{})

		_, err := service.Create(context.Background(), category.CreateInput{Name: locale.Text{"ru": "Дом"}})
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.CodeValidation))
	})

	t.Run("unknown_parent", func(t *testing.T) {
		service, repo := newService(t, cache.Noop{})
		repo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(nil, apperr.NotFound("Category"))

		_, err := service.Create(context.Background(), category.CreateInput{
			ParentID: ptr(42),
			Name:     locale.Text{"uz": "Telefonlar"},
		})
		assert.True(t, apperr.Is(err, apperr.CodeNotFound))
	})

	t.Run("child_of_existing_parent", func(t *testing.T) {
		service, repo := newService(t, cache.Noop{})
		repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(&category.Category{ID: 1}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c *category.Category) error {
			assert.Equal(t, "Telefonlar", c.Name[locale.Uzbek])
			c.ID = 2
			return nil
		})

		view, err := service.Create(context.Background(), category.CreateInput{
			ParentID: ptr(1),
			Name:     locale.Text{"uz": "  Telefonlar "},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), view.ID)
		assert.Equal(t, int64(1), *view.ParentID)
	})
}

/*
TestMatchByNameSubstring passes the negotiated and default locales to storage.
*/
func TestMatchByNameSubstring(t *testing.T) {
	service, repo := newService(t, cache.Noop{})

	repo.EXPECT().MatchByName(gomock.Any(), "tel", locale.Russian, locale.Uzbek, category.MatchLimit).
		Return([]*category.Category{{ID: 2, Name: locale.Text{"uz": "Telefonlar"}}}, nil)

	views, err := service.MatchByNameSubstring(context.Background(), " tel ", locale.Russian)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Telefonlar", views[0].Name)

	empty, err := service.MatchByNameSubstring(context.Background(), "   ", locale.Russian)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

/*
TestChildrenOf rejects a non-positive parent id.
*/
func TestChildrenOf(t *testing.T) {
	service, repo := newService(t, cache.Noop{})

	_, err := service.ChildrenOf(context.Background(), 0, locale.Uzbek)
	assert.True(t, apperr.Is(err, apperr.CodeValidation))

	repo.EXPECT().ChildrenOf(gomock.Any(), int64(1)).Return([]*category.Category{}, nil)
	views, err := service.ChildrenOf(context.Background(), 1, locale.Uzbek)
	require.NoError(t, err)
	assert.Empty(t, views)
}

// recordingPublisher remembers the subjects it was asked to publish.
type recordingPublisher struct{ subjects []string }

func (p *recordingPublisher) Publish(_ context.Context, subject string, _ any) error {
	p.subjects = append(p.subjects, subject)
	return nil
}

/*
TestCountRefresher drops cached counts on ad changes and forwards every event.
*/
func TestCountRefresher(t *testing.T) {
	store := memoryStore{}
	service, repo := newService(t, store)
	ctx := context.Background()
	next := &recordingPublisher{}
	refresher := category.NewCountRefresher(service, next)

	repo.EXPECT().List(gomock.Any()).Return([]*category.Category{
		{ID: 1, Name: locale.Text{"uz": "Elektronika"}, AdCount: 3},
	}, nil).Times(3)

	for _, code := range []locale.Code{locale.Uzbek, locale.Russian} {
		_, err := service.List(ctx, code)
		require.NoError(t, err)
	}
	_, err := service.Tree(ctx, locale.Uzbek)
	require.NoError(t, err)
	require.Len(t, store, 3)

	require.NoError(t, refresher.Publish(ctx, events.SubjectFavoriteAdded, events.FavoriteEvent{AdID: 7}))
	assert.Len(t, store, 3)

	require.NoError(t, refresher.Publish(ctx, events.SubjectAdCreated, events.AdEvent{AdID: 7}))
	assert.Len(t, store, 1, "only the tree, which has no counts, stays cached")

	assert.Equal(t, []string{events.SubjectFavoriteAdded, events.SubjectAdCreated}, next.subjects)

	repo.EXPECT().List(gomock.Any()).Return([]*category.Category{
		{ID: 1, Name: locale.Text{"uz": "Elektronika"}, AdCount: 4},
	}, nil)
	fresh, err := service.List(ctx, locale.Uzbek)
	require.NoError(t, err)
	assert.Equal(t, int64(4), *fresh[0].AdCount)
}
