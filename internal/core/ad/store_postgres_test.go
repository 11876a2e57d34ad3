// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ad_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bazaar/internal/core/ad"
	"github.com/taibuivan/bazaar/internal/platform/apperr"
	"github.com/taibuivan/bazaar/internal/platform/locale"
	"github.com/taibuivan/bazaar/internal/platform/postgres/pgtest"
)

func createAd(t *testing.T, repo ad.Repository, sellerID int64, slug string, price int64, categoryID *int64, photos ...ad.PhotoInput) *ad.Ad {
	t.Helper()

	created := &ad.Ad{
		Name:        locale.Text{"uz": slug},
		Description: locale.Text{},
		Slug:        slug,
		Price:       price,
		CategoryID:  categoryID,
		SellerID:    sellerID,
		Status:      ad.StatusPending,
		IsPublished: true,
	}
	require.NoError(t, repo.Create(context.Background(), created, photos))
	return created
}

func ids(summaries []*ad.Summary) []int64 {
	out := make([]int64, len(summaries))
	for i, s := range summaries {
		out[i] = s.ID
	}
	return out
}

func samePublishTime(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(), `UPDATE core.ad SET published_at = '2026-01-01T00:00:00Z'`)
	require.NoError(t, err)
}

/*
TestRepository_Postgres exercises the ad store against real Postgres.
*/
func TestRepository_Postgres(t *testing.T) {
	pool := pgtest.Start(t)
	seed := pgtest.NewSeed(t, pool)
	repo := ad.NewRepository(pool)
	ctx := context.Background()

	tashkent := seed.Region(`{"uz": "Toshkent"}`)
	chilonzor := seed.District(tashkent, `{"uz": "Chilonzor"}`)
	home := seed.Address("Chilonzor 9", tashkent, chilonzor)
	seller := seed.Seller("Aziz", "+998900000001", home)
	other := seed.Seller("Bobur", "+998900000002", 0)

	parent := seed.Category(`{"uz": "Elektronika"}`, 0)
	child := seed.Category(`{"uz": "Telefonlar"}`, parent)

	t.Run("create_copies_seller_address", func(t *testing.T) {
		phone := createAd(t, repo, seller, "phone", 250, &child, ad.PhotoInput{Image: "a.jpg"}, ad.PhotoInput{Image: "b.jpg", IsMain: true})

		require.NotNil(t, phone.AddressID)
		assert.Equal(t, home, *phone.AddressID)
		require.Len(t, phone.Photos, 2)
		assert.Equal(t, 1, phone.Photos[1].SortOrder)

		found, err := repo.FindBySlug(ctx, "phone")
		require.NoError(t, err)
		assert.Equal(t, "Aziz", found.Seller.FullName)
		assert.Equal(t, "Chilonzor 9", *found.AddressName)
		assert.Equal(t, "Telefonlar", found.CategoryName[locale.Uzbek])
		assert.Equal(t, []string{"a.jpg", "b.jpg"}, []string{found.Photos[0].Image, found.Photos[1].Image})

		summaries, err := repo.Summaries(ctx, []int64{phone.ID})
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, "b.jpg", *summaries[0].Photo)
	})

	t.Run("duplicate_slug", func(t *testing.T) {
		err := repo.Create(ctx, &ad.Ad{
			Name: locale.Text{"uz": "phone"}, Description: locale.Text{}, Slug: "phone",
			SellerID: other, Status: ad.StatusPending, IsPublished: true,
		}, nil)
		assert.True(t, apperr.Is(err, apperr.CodeDuplicateSlug))
	})

	t.Run("unknown_category_or_seller", func(t *testing.T) {
		missing := int64(999999)
		err := repo.Create(ctx, &ad.Ad{
			Name: locale.Text{"uz": "x"}, Description: locale.Text{}, Slug: "x-1",
			CategoryID: &missing, SellerID: seller, Status: ad.StatusPending, IsPublished: true,
		}, nil)
		assert.True(t, apperr.Is(err, apperr.CodeNotFound))

		err = repo.Create(ctx, &ad.Ad{
			Name: locale.Text{"uz": "x"}, Description: locale.Text{}, Slug: "x-2",
			SellerID: missing, Status: ad.StatusPending, IsPublished: true,
		}, nil)
		assert.True(t, apperr.Is(err, apperr.CodeNotFound))
	})

	t.Run("update_keeps_slug", func(t *testing.T) {
		found, err := repo.FindBySlug(ctx, "phone")
		require.NoError(t, err)

		found.Name = locale.Text{"uz": "Smartfon"}
		require.NoError(t, repo.Update(ctx, found))

		again, err := repo.FindByID(ctx, found.ID)
		require.NoError(t, err)
		assert.Equal(t, "phone", again.Slug)
		assert.Equal(t, "Smartfon", again.Name[locale.Uzbek])
	})

	t.Run("replace_photos_is_atomic", func(t *testing.T) {
		found, err := repo.FindBySlug(ctx, "phone")
		require.NoError(t, err)

		// A NUL byte is rejected by Postgres on the second insert.
		_, err = repo.ReplacePhotos(ctx, found.ID, []ad.PhotoInput{{Image: "c.jpg"}, {Image: "bad\x00.jpg"}})
		require.Error(t, err)

		unchanged, err := repo.FindByID(ctx, found.ID)
		require.NoError(t, err)
		assert.Len(t, unchanged.Photos, 2)

		photos, err := repo.ReplacePhotos(ctx, found.ID, []ad.PhotoInput{{Image: "c.jpg"}})
		require.NoError(t, err)
		require.Len(t, photos, 1)

		_, err = repo.ReplacePhotos(ctx, 999999, nil)
		assert.True(t, apperr.Is(err, apperr.CodeNotFound))
	})

	t.Run("set_status_and_views", func(t *testing.T) {
		found, err := repo.FindBySlug(ctx, "phone")
		require.NoError(t, err)

		require.NoError(t, repo.SetStatus(ctx, found.ID, ad.StatusActive))
		require.NoError(t, repo.IncrementViewCount(ctx, found.ID))

		again, err := repo.FindByID(ctx, found.ID)
		require.NoError(t, err)
		assert.Equal(t, ad.StatusActive, again.Status)
		assert.Equal(t, found.ViewCount+1, again.ViewCount)

		assert.True(t, apperr.Is(repo.SetStatus(ctx, 999999, ad.StatusActive), apperr.CodeNotFound))
	})

	t.Run("delete", func(t *testing.T) {
		doomed := createAd(t, repo, other, "doomed", 1, nil, ad.PhotoInput{Image: "d.jpg"})
		require.NoError(t, repo.Delete(ctx, doomed.ID))

		_, err := repo.FindByID(ctx, doomed.ID)
		assert.True(t, apperr.Is(err, apperr.CodeNotFound))
		assert.True(t, apperr.Is(repo.Delete(ctx, doomed.ID), apperr.CodeNotFound))

		var photos int
		require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM core.ad_photo WHERE ad_id = $1`, doomed.ID).Scan(&photos))
		assert.Zero(t, photos)
	})
}

/*
TestRepository_List covers scope, flat category membership, filters and
deterministic ordering across pages.
*/
func TestRepository_List(t *testing.T) {
	pool := pgtest.Start(t)
	seed := pgtest.NewSeed(t, pool)
	repo := ad.NewRepository(pool)
	ctx := context.Background()

	region := seed.Region(`{"uz": "Samarqand"}`)
	district := seed.District(region, `{"uz": "Urgut"}`)
	seller := seed.Seller("Aziz", "+998900000001", seed.Address("Urgut 1", region, district))
	other := seed.Seller("Bobur", "+998900000002", 0)

	parent := seed.Category(`{"uz": "Elektronika"}`, 0)
	child := seed.Category(`{"uz": "Telefonlar"}`, parent)

	phone := createAd(t, repo, seller, "phone", 250, &child)
	tv := createAd(t, repo, seller, "tv", 900, &parent)
	chair := createAd(t, repo, other, "chair_100%", 50, nil)
	hidden := createAd(t, repo, seller, "hidden", 10, &child)
	hidden.IsPublished = false
	require.NoError(t, repo.Update(ctx, hidden))

	samePublishTime(t, pool)
	public := func(filter ad.Filter) ad.Filter {
		filter.Ordering = ad.DefaultOrdering
		filter.Locale, filter.Fallback = locale.Uzbek, locale.Uzbek
		return filter
	}

	t.Run("category_is_flat_membership", func(t *testing.T) {
		rows, _, err := repo.List(ctx, public(ad.Filter{CategoryIDs: []int64{parent}}), 20, 0)
		require.NoError(t, err)
		assert.Equal(t, []int64{tv.ID}, ids(rows))

		rows, _, err = repo.List(ctx, public(ad.Filter{CategoryIDs: []int64{child}}), 20, 0)
		require.NoError(t, err)
		assert.Equal(t, []int64{phone.ID}, ids(rows))

		rows, _, err = repo.List(ctx, public(ad.Filter{CategoryIDs: []int64{child, parent}}), 20, 0)
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{phone.ID, tv.ID}, ids(rows))
	})

	t.Run("ties_break_by_id_across_pages", func(t *testing.T) {
		var seen []int64
		for offset := 0; offset < 3; offset++ {
			rows, total, err := repo.List(ctx, public(ad.Filter{}), 1, offset)
			require.NoError(t, err)
			assert.Equal(t, 3, total)
			seen = append(seen, ids(rows)...)
		}
		assert.Equal(t, []int64{phone.ID, tv.ID, chair.ID}, seen)

		again, _, err := repo.List(ctx, public(ad.Filter{}), 3, 0)
		require.NoError(t, err)
		assert.Equal(t, seen, ids(again))
	})

	t.Run("filters", func(t *testing.T) {
		min, max := int64(100), int64(500)
		top := false

		tests := []struct {
			name   string
			filter ad.Filter
			want   []int64
		}{
			{"price_range", ad.Filter{PriceMin: &min, PriceMax: &max}, []int64{phone.ID}},
			{"seller", ad.Filter{SellerID: &other}, []int64{chair.ID}},
			{"region", ad.Filter{RegionID: &region}, []int64{phone.ID, tv.ID}},
			{"district", ad.Filter{DistrictID: &district}, []int64{phone.ID, tv.ID}},
			{"is_top", ad.Filter{IsTop: &top, SellerID: &other}, []int64{chair.ID}},
			{"query_case_insensitive", ad.Filter{Query: "PHO"}, []int64{phone.ID}},
			{"query_literal_percent", ad.Filter{Query: "%"}, []int64{chair.ID}},
			{"nothing_matches", ad.Filter{Query: "zzz"}, []int64{}},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				rows, _, err := repo.List(ctx, public(tt.filter), 20, 0)
				require.NoError(t, err)
				assert.Equal(t, tt.want, ids(rows))
			})
		}
	})

	t.Run("price_ordering", func(t *testing.T) {
		filter := public(ad.Filter{})
		filter.Ordering = ad.ParseOrdering("-price")

		rows, _, err := repo.List(ctx, filter, 20, 0)
		require.NoError(t, err)
		assert.Equal(t, []int64{tv.ID, phone.ID, chair.ID}, ids(rows))
	})

	t.Run("seller_scope_sees_unpublished", func(t *testing.T) {
		filter := public(ad.Filter{Scope: ad.ScopeSeller, SellerID: &seller})

		rows, total, err := repo.List(ctx, filter, 20, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Contains(t, ids(rows), hidden.ID)

		pending := ad.StatusPending
		filter.Status = &pending
		rows, _, err = repo.List(ctx, filter, 20, 0)
		require.NoError(t, err)
		assert.Len(t, rows, 3)
	})

	t.Run("autocomplete", func(t *testing.T) {
		names, err := repo.Autocomplete(ctx, "h", locale.Russian, locale.Uzbek, 10)
		require.NoError(t, err)
		assert.Equal(t, []string{"chair_100%", "phone"}, names)
	})
}
