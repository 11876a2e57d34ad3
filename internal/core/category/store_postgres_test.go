// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bazaar/internal/core/category"
	"github.com/taibuivan/bazaar/internal/platform/apperr"
	"github.com/taibuivan/bazaar/internal/platform/locale"
	"github.com/taibuivan/bazaar/internal/platform/postgres/pgtest"
)

/*
TestRepository_Postgres exercises the category queries against real Postgres.
*/
func TestRepository_Postgres(t *testing.T) {
	pool := pgtest.Start(t)
	seed := pgtest.NewSeed(t, pool)
	repo := category.NewRepository(pool)
	ctx := context.Background()

	electronics := seed.Category(`{"uz": "Elektronika", "ru": "Электроника"}`, 0)
	phones := seed.Category(`{"uz": "Telefonlar"}`, electronics)
	laptops := seed.Category(`{"uz": "Noutbuklar", "ru": "Ноутбуки"}`, electronics)
	percent := seed.Category(`{"uz": "100% chegirma"}`, 0)

	seller := seed.Seller("Aziz", "+998900000001", 0)
	seed.Ad(seller, phones, "iphone", true)
	seed.Ad(seller, phones, "samsung", true)
	seed.Ad(seller, phones, "draft", false)

	t.Run("list_counts_published_ads", func(t *testing.T) {
		categories, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, categories, 4)

		counts := map[int64]int64{}
		for _, c := range categories {
			counts[c.ID] = c.AdCount
		}
		assert.Equal(t, int64(2), counts[phones])
		assert.Zero(t, counts[electronics])
	})

	t.Run("children_of", func(t *testing.T) {
		children, err := repo.ChildrenOf(ctx, electronics)
		require.NoError(t, err)
		require.Len(t, children, 2)
		assert.Equal(t, phones, children[0].ID)
		assert.Equal(t, laptops, children[1].ID)

		leaf, err := repo.ChildrenOf(ctx, phones)
		require.NoError(t, err)
		assert.Empty(t, leaf)
	})

	t.Run("match_by_name_uses_fallback", func(t *testing.T) {
		// "Telefonlar" has no Russian name and is matched through Uzbek.
		matches, err := repo.MatchByName(ctx, "TELEF", locale.Russian, locale.Uzbek, 10)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, phones, matches[0].ID)

		// The Russian name wins where it exists.
		matches, err = repo.MatchByName(ctx, "ноут", locale.Russian, locale.Uzbek, 10)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, laptops, matches[0].ID)
	})

	t.Run("match_escapes_wildcards", func(t *testing.T) {
		matches, err := repo.MatchByName(ctx, "%", locale.Uzbek, locale.Uzbek, 10)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, percent, matches[0].ID)
	})

	t.Run("create_requires_existing_parent", func(t *testing.T) {
		missing := int64(999999)
		err := repo.Create(ctx, &category.Category{ParentID: &missing, Name: locale.Text{"uz": "X"}})
		assert.True(t, apperr.Is(err, apperr.CodeNotFound))

		created := &category.Category{ParentID: &electronics, Name: locale.Text{"uz": "Planshetlar"}}
		require.NoError(t, repo.Create(ctx, created))
		assert.NotZero(t, created.ID)

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Planshetlar", found.Name[locale.Uzbek])
	})

	t.Run("find_missing", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 999999)
		assert.True(t, apperr.Is(err, apperr.CodeNotFound))
	})
}
