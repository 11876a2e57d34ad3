// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ad_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bazaar/internal/core/ad"
	"github.com/taibuivan/bazaar/internal/core/ad/mocks"
	"github.com/taibuivan/bazaar/internal/platform/actor"
	"github.com/taibuivan/bazaar/internal/platform/apperr"
	"github.com/taibuivan/bazaar/internal/platform/events"
	"github.com/taibuivan/bazaar/internal/platform/locale"
	"github.com/taibuivan/bazaar/pkg/pagination"
)

var catalog = locale.Catalog{Default: locale.Uzbek, Supported: []locale.Code{locale.Uzbek, locale.Russian}}

// recorder captures published events.
type recorder struct {
	mu       sync.Mutex
	subjects []string
}

func (r *recorder) Publish(_ context.Context, subject string, _ any) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subjects = append(r.subjects, subject)
	return nil
}

type fixture struct {
	service *ad.Service
	repo    *mocks.MockRepository
	likes   *mocks.MockLikeLookup
	events  *recorder
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	likes := mocks.NewMockLikeLookup(ctrl)
	published := &recorder{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return fixture{
		service: ad.NewService(repo, likes, published, nil, catalog, logger),
		repo:    repo,
		likes:   likes,
		events:  published,
	}
}

func stored(id, sellerID int64, slug string) *ad.Ad {
	return &ad.Ad{
		ID:          id,
		Name:        locale.Text{"uz": "Telefon", "ru": "Телефон"},
		Description: locale.Text{"uz": "Yangi"},
		Slug:        slug,
		Price:       250,
		SellerID:    sellerID,
		Status:      ad.StatusPending,
		IsPublished: true,
		PublishedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Seller:      ad.Seller{ID: sellerID, FullName: "Aziz", Phone: "+998900000001"},
	}
}

/*
TestCreateAd derives the slug from the default-locale name and starts the ad
published and pending.
*/
func TestCreateAd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	category := int64(3)

	f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *ad.Ad, photos []ad.PhotoInput) error {
			assert.Equal(t, "iphone-13-pro", a.Slug)
			assert.Equal(t, ad.StatusPending, a.Status)
			assert.True(t, a.IsPublished)
			assert.Equal(t, int64(7), a.SellerID)
			assert.NotNil(t, a.Description)
			require.Len(t, photos, 1)
			assert.Equal(t, "a.jpg", photos[0].Image)
			a.ID = 42
			return nil
		})
	f.repo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(stored(42, 7, "iphone-13-pro"), nil)

	detail, err := f.service.CreateAd(ctx, 7, ad.CreateInput{
		Name:       locale.Text{"uz": "iPhone 13 Pro", "ru": "Айфон 13 Про"},
		Price:      250,
		CategoryID: &category,
		Photos:     []ad.PhotoInput{{Image: " a.jpg ", IsMain: true}},
	}, locale.Russian)

	require.NoError(t, err)
	assert.Equal(t, int64(42), detail.ID)
	assert.Equal(t, "Телефон", detail.Name)
	assert.Equal(t, []string{events.SubjectAdCreated}, f.events.subjects)
}

/*
TestCreateAd_Rejected covers input the store must never see.
*/
func TestCreateAd_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		input ad.CreateInput
	}{
		{"missing_default_name", ad.CreateInput{Name: locale.Text{"ru": "Телефон"}}},
		{"negative_price", ad.CreateInput{Name: locale.Text{"uz": "Telefon"}, Price: -1}},
		{"name_without_latin", ad.CreateInput{Name: locale.Text{"uz": "Телефон"}}},
		{"unsupported_description", ad.CreateInput{Name: locale.Text{"uz": "Telefon"}, Description: locale.Text{"en": "New"}}},
		{"too_many_photos", ad.CreateInput{Name: locale.Text{"uz": "Telefon"}, Photos: make([]ad.PhotoInput, ad.MaxPhotos+1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.service.CreateAd(context.Background(), 7, tt.input, locale.Uzbek)
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.CodeValidation))
			assert.Empty(t, f.events.subjects)
		})
	}
}

/*
TestCreateAd_DuplicateSlug surfaces the collision unchanged.
*/
func TestCreateAd_DuplicateSlug(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(apperr.DuplicateSlug("telefon"))

	_, err := f.service.CreateAd(context.Background(), 7, ad.CreateInput{Name: locale.Text{"uz": "Telefon"}}, locale.Uzbek)
	assert.True(t, apperr.Is(err, apperr.CodeDuplicateSlug))
	assert.Empty(t, f.events.subjects)
}

/*
TestUpdateAd_SlugIsFrozen renames an ad and checks the slug stays as created.
*/
func TestUpdateAd_SlugIsFrozen(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.repo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(stored(42, 7, "telefon"), nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, a *ad.Ad) error {
		assert.Equal(t, "telefon", a.Slug)
		assert.Equal(t, "Smartfon", a.Name[locale.Uzbek])
		_, hasRussian := a.Name[locale.Russian]
		assert.False(t, hasRussian)
		return nil
	})

	renamed := stored(42, 7, "telefon")
	renamed.Name = locale.Text{"uz": "Smartfon"}
	f.repo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(renamed, nil)

	detail, err := f.service.UpdateAd(ctx, 7, 42, ad.Patch{Name: locale.Text{"uz": "Smartfon", "ru": " "}}, locale.Uzbek)
	require.NoError(t, err)
	assert.Equal(t, "telefon", detail.Slug)
	assert.Equal(t, "Smartfon", detail.Name)
}

/*
TestUpdateAd_CannotDropDefaultName keeps the default-locale name mandatory.
*/
func TestUpdateAd_CannotDropDefaultName(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(stored(42, 7, "telefon"), nil)

	_, err := f.service.UpdateAd(context.Background(), 7, 42, ad.Patch{Name: locale.Text{"uz": ""}}, locale.Uzbek)
	assert.True(t, apperr.Is(err, apperr.CodeValidation))
}

/*
TestOwnership rejects every seller mutation on someone else's ad.
*/
func TestOwnership(t *testing.T) {
	ctx := context.Background()
	price := int64(1)

	mutations := map[string]func(*ad.Service) error{
		"update": func(s *ad.Service) error {
			_, err := s.UpdateAd(ctx, 8, 42, ad.Patch{Price: &price}, locale.Uzbek)
			return err
		},
		"delete": func(s *ad.Service) error {
			return s.DeleteAd(ctx, 8, 42)
		},
		"replace_photos": func(s *ad.Service) error {
			_, err := s.ReplacePhotos(ctx, 8, 42, []ad.PhotoInput{{Image: "b.jpg"}})
			return err
		},
		"get_mine": func(s *ad.Service) error {
			_, err := s.GetMyAd(ctx, 8, 42, locale.Uzbek)
			return err
		},
	}

	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(stored(42, 7, "telefon"), nil)

			err := mutate(f.service)
			assert.True(t, apperr.Is(err, apperr.CodeNotOwner))
			assert.Empty(t, f.events.subjects)
		})
	}
}

/*
TestDeleteAd removes an owned ad and announces it.
*/
func TestDeleteAd(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(stored(42, 7, "telefon"), nil)
	f.repo.EXPECT().Delete(gomock.Any(), int64(42)).Return(nil)

	require.NoError(t, f.service.DeleteAd(context.Background(), 7, 42))
	assert.Equal(t, []string{events.SubjectAdDeleted}, f.events.subjects)
}

/*
TestGetBySlug hides unpublished ads and counts a view for published ones.
*/
func TestGetBySlug(t *testing.T) {
	t.Run("unpublished", func(t *testing.T) {
		f := newFixture(t)
		hidden := stored(42, 7, "telefon")
		hidden.IsPublished = false
		f.repo.EXPECT().FindBySlug(gomock.Any(), "telefon").Return(hidden, nil)

		_, err := f.service.GetBySlug(context.Background(), "telefon", actor.Actor{}, locale.Uzbek)
		assert.True(t, apperr.Is(err, apperr.CodeNotFound))
	})

	t.Run("published_and_liked", func(t *testing.T) {
		f := newFixture(t)
		ad42 := stored(42, 7, "telefon")
		ad42.ViewCount = 4
		ad42.Photos = []ad.Photo{{Image: "a.jpg"}, {Image: "b.jpg", IsMain: true}}

		f.repo.EXPECT().FindBySlug(gomock.Any(), "telefon").Return(ad42, nil)
		f.repo.EXPECT().IncrementViewCount(gomock.Any(), int64(42)).Return(nil)
		f.likes.EXPECT().LikedAmong(gomock.Any(), actor.Device("d1"), []int64{42}).Return(map[int64]bool{42: true}, nil)

		detail, err := f.service.GetBySlug(context.Background(), "telefon", actor.Device("d1"), locale.Uzbek)
		require.NoError(t, err)
		assert.True(t, detail.IsLiked)
		assert.Equal(t, int64(5), *detail.ViewCount)
		assert.Equal(t, "b.jpg", *detail.Photo)
		assert.Equal(t, "Yangi", detail.Description)
	})
}

/*
TestListAds annotates is_liked with one lookup per page and none for an
anonymous caller.
*/
func TestListAds(t *testing.T) {
	page := pagination.Params{Page: 2, Limit: 2}
	rows := []*ad.Summary{
		{ID: 1, Name: locale.Text{"uz": "Bir"}, Slug: "bir", Status: ad.StatusActive},
		{ID: 2, Name: locale.Text{"uz": "Ikki", "ru": "Два"}, Slug: "ikki"},
	}

	t.Run("device_actor", func(t *testing.T) {
		f := newFixture(t)
		status := ad.StatusRejected

		f.repo.EXPECT().List(gomock.Any(), gomock.Any(), 2, 2).
			DoAndReturn(func(_ context.Context, filter ad.Filter, _, _ int) ([]*ad.Summary, int, error) {
				assert.Equal(t, ad.ScopePublic, filter.Scope)
				assert.Nil(t, filter.Status)
				assert.Equal(t, locale.Russian, filter.Locale)
				assert.Equal(t, locale.Uzbek, filter.Fallback)
				return rows, 5, nil
			})
		f.likes.EXPECT().LikedAmong(gomock.Any(), actor.Device("d1"), []int64{1, 2}).Return(map[int64]bool{2: true}, nil)

		cards, total, err := f.service.ListAds(context.Background(), ad.Filter{Status: &status}, page, actor.Device("d1"), locale.Russian)
		require.NoError(t, err)
		assert.Equal(t, 5, total)
		require.Len(t, cards, 2)
		assert.False(t, cards[0].IsLiked)
		assert.True(t, cards[1].IsLiked)
		assert.Equal(t, "Два", cards[1].Name)
		assert.Empty(t, cards[0].Status)
		assert.Nil(t, cards[0].ViewCount)
	})

	t.Run("anonymous", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().List(gomock.Any(), gomock.Any(), 2, 2).Return(rows, 5, nil)

		cards, _, err := f.service.ListAds(context.Background(), ad.Filter{}, page, actor.Actor{}, locale.Uzbek)
		require.NoError(t, err)
		for _, card := range cards {
			assert.False(t, card.IsLiked)
		}
	})
}

/*
TestListMyAds scopes the listing to the seller and exposes owner fields.
*/
func TestListMyAds(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().List(gomock.Any(), gomock.Any(), 10, 0).
		DoAndReturn(func(_ context.Context, filter ad.Filter, _, _ int) ([]*ad.Summary, int, error) {
			assert.Equal(t, ad.ScopeSeller, filter.Scope)
			require.NotNil(t, filter.SellerID)
			assert.Equal(t, int64(7), *filter.SellerID)
			return []*ad.Summary{{ID: 1, Status: ad.StatusInactive, ViewCount: 9}}, 1, nil
		})
	f.likes.EXPECT().LikedAmong(gomock.Any(), actor.User(7), []int64{1}).Return(map[int64]bool{}, nil)

	cards, _, err := f.service.ListMyAds(context.Background(), 7, ad.Filter{}, pagination.Params{Page: 1, Limit: 10}, locale.Uzbek)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, ad.StatusInactive, cards[0].Status)
	assert.Equal(t, int64(9), *cards[0].ViewCount)
}

/*
TestCards keeps the order of the requested ids and skips unknown ones.
*/
func TestCards(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Summaries(gomock.Any(), []int64{3, 99, 1}).Return([]*ad.Summary{
		{ID: 1, Name: locale.Text{"uz": "Bir"}},
		{ID: 3, Name: locale.Text{"uz": "Uch"}},
	}, nil)

	cards, err := f.service.Cards(context.Background(), []int64{3, 99, 1}, actor.Actor{}, locale.Uzbek)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, int64(3), cards[0].ID)
	assert.Equal(t, int64(1), cards[1].ID)
}

/*
TestSetStatus accepts only known statuses.
*/
func TestSetStatus(t *testing.T) {
	f := newFixture(t)

	err := f.service.SetStatus(context.Background(), 42, ad.Status("approved-ish"))
	assert.True(t, apperr.Is(err, apperr.CodeValidation))

	f.repo.EXPECT().FindByID(gomock.Any(), int64(42)).Return(stored(42, 7, "telefon"), nil)
	f.repo.EXPECT().SetStatus(gomock.Any(), int64(42), ad.StatusActive).Return(nil)

	require.NoError(t, f.service.SetStatus(context.Background(), 42, ad.StatusActive))
	assert.Equal(t, []string{events.SubjectAdStatusChanged}, f.events.subjects)
}

/*
TestComplete skips storage for a blank query.
*/
func TestComplete(t *testing.T) {
	f := newFixture(t)

	suggestions, err := f.service.Complete(context.Background(), "  ", locale.Uzbek, 10)
	require.NoError(t, err)
	assert.Empty(t, suggestions)

	f.repo.EXPECT().Autocomplete(gomock.Any(), "tel", locale.Russian, locale.Uzbek, 10).Return([]string{"Telefon"}, nil)
	suggestions, err = f.service.Complete(context.Background(), "tel", "ru", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"Telefon"}, suggestions)
}

/*
TestCreateAd_LongNameSlug bounds the derived slug.
*/
func TestCreateAd_LongNameSlug(t *testing.T) {
	f := newFixture(t)
	long := strings.Repeat("ab ", 80)

	f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, a *ad.Ad, _ []ad.PhotoInput) error {
			assert.LessOrEqual(t, len(a.Slug), ad.MaxSlugLength)
			assert.False(t, strings.HasSuffix(a.Slug, "-"))
			a.ID = 1
			return nil
		})
	f.repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(stored(1, 7, "ab"), nil)

	_, err := f.service.CreateAd(context.Background(), 7, ad.CreateInput{Name: locale.Text{"uz": long}}, locale.Uzbek)
	require.NoError(t, err)
}
