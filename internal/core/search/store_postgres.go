// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/bazaar/internal/platform/apperr"
	"github.com/taibuivan/bazaar/internal/platform/database/schema"
	"github.com/taibuivan/bazaar/internal/platform/dberr"
)

const (
	hitResource      = "Ad"
	mySearchResource = "Saved search"
)

// Foreign keys of core.my_search, reported as NotFound of the referenced row.
const (
	mySearchCategoryKey = "my_search_category_id_fkey"
	mySearchRegionKey   = "my_search_region_id_fkey"
)

type searchRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed search store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &searchRepository{pool: pool}
}

// # Popularity

// RegisterHit upserts the counter and reads the ad's category in one round trip.
func (repository *searchRepository) RegisterHit(context context.Context, adID int64) (*Hit, error) {
	sql := fmt.Sprintf(`
		WITH hit AS (
			INSERT INTO %[1]s AS sc (%[2]s, %[3]s)
			VALUES ($1, 1)
			ON CONFLICT (%[2]s) DO UPDATE
			SET %[3]s = sc.%[3]s + 1, %[4]s = now()
			RETURNING sc.%[5]s, sc.%[2]s, sc.%[3]s, sc.%[4]s
		)
		SELECT hit.%[5]s, hit.%[2]s, a.%[6]s, hit.%[3]s, hit.%[4]s
		FROM hit
		JOIN %[7]s a ON a.%[8]s = hit.%[2]s`,
		schema.CoreSearchCount.Table, schema.CoreSearchCount.AdID, schema.CoreSearchCount.HitCount,
		schema.CoreSearchCount.UpdatedAt, schema.CoreSearchCount.ID,
		schema.CoreAd.CategoryID, schema.CoreAd.Table, schema.CoreAd.ID,
	)

	var hit Hit
	err := repository.pool.QueryRow(context, sql, adID).
		Scan(&hit.ID, &hit.AdID, &hit.CategoryID, &hit.SearchCount, &hit.UpdatedAt)
	if dberr.IsForeignKeyViolation(err) {
		return nil, apperr.NotFound(hitResource)
	}
	if err != nil {
		return nil, dberr.Wrap(err, hitResource)
	}
	return &hit, nil
}

// Popular reads the ranking of published ads.
func (repository *searchRepository) Popular(context context.Context, limit int) ([]Ranked, error) {
	sql := fmt.Sprintf(`
		SELECT sc.%s, sc.%s
		FROM %s sc
		JOIN %s a ON a.%s = sc.%s
		WHERE a.%s
		ORDER BY sc.%s DESC, sc.%s DESC, sc.%s ASC
		LIMIT $1`,
		schema.CoreSearchCount.AdID, schema.CoreSearchCount.HitCount,
		schema.CoreSearchCount.Table,
		schema.CoreAd.Table, schema.CoreAd.ID, schema.CoreSearchCount.AdID,
		schema.CoreAd.IsPublished,
		schema.CoreSearchCount.HitCount, schema.CoreSearchCount.UpdatedAt, schema.CoreSearchCount.AdID,
	)

	rows, err := repository.pool.Query(context, sql, limit)
	if err != nil {
		return nil, dberr.Wrap(err, hitResource)
	}

	ranked, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Ranked, error) {
		var entry Ranked
		err := row.Scan(&entry.AdID, &entry.SearchCount)
		return entry, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, hitResource)
	}
	return ranked, nil
}

// # Saved Searches

var mySearchColumns = fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s",
	schema.CoreMySearch.ID, schema.CoreMySearch.UserID, schema.CoreMySearch.CategoryID, schema.CoreMySearch.Query,
	schema.CoreMySearch.PriceMin, schema.CoreMySearch.PriceMax, schema.CoreMySearch.RegionID, schema.CoreMySearch.CreatedAt,
)

func mySearchDest(search *MySearch) []any {
	return []any{
		&search.ID, &search.UserID, &search.CategoryID, &search.Query,
		&search.PriceMin, &search.PriceMax, &search.RegionID, &search.CreatedAt,
	}
}

// CreateMySearch inserts the saved search.
func (repository *searchRepository) CreateMySearch(context context.Context, search *MySearch) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING %s, %s`,
		schema.CoreMySearch.Table,
		schema.CoreMySearch.UserID, schema.CoreMySearch.CategoryID, schema.CoreMySearch.Query,
		schema.CoreMySearch.PriceMin, schema.CoreMySearch.PriceMax, schema.CoreMySearch.RegionID,
		schema.CoreMySearch.ID, schema.CoreMySearch.CreatedAt,
	)

	err := repository.pool.QueryRow(context, sql,
		search.UserID, search.CategoryID, search.Query, search.PriceMin, search.PriceMax, search.RegionID,
	).Scan(&search.ID, &search.CreatedAt)

	if dberr.IsForeignKeyViolation(err) {
		switch dberr.ConstraintName(err) {
		case mySearchCategoryKey:
			return apperr.NotFound("Category")
		case mySearchRegionKey:
			return apperr.NotFound("Region")
		}
	}
	return dberr.Wrap(err, mySearchResource)
}

// ListMySearches returns one page of the user's saved searches.
func (repository *searchRepository) ListMySearches(context context.Context, userID int64, limit, offset int) ([]*MySearch, int, error) {
	sql := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER()
		FROM %s
		WHERE %s = $1
		ORDER BY %s DESC, %s DESC
		LIMIT $2 OFFSET $3`,
		mySearchColumns,
		schema.CoreMySearch.Table,
		schema.CoreMySearch.UserID,
		schema.CoreMySearch.CreatedAt, schema.CoreMySearch.ID,
	)

	rows, err := repository.pool.Query(context, sql, userID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, mySearchResource)
	}
	defer rows.Close()

	searches := []*MySearch{}
	total := 0
	for rows.Next() {
		var search MySearch
		if err := rows.Scan(append(mySearchDest(&search), &total)...); err != nil {
			return nil, 0, dberr.Wrap(err, mySearchResource)
		}
		searches = append(searches, &search)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, mySearchResource)
	}

	return searches, total, nil
}

// FindMySearch loads one saved search.
func (repository *searchRepository) FindMySearch(context context.Context, id int64) (*MySearch, error) {
	sql := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		mySearchColumns, schema.CoreMySearch.Table, schema.CoreMySearch.ID)

	var search MySearch
	if err := repository.pool.QueryRow(context, sql, id).Scan(mySearchDest(&search)...); err != nil {
		return nil, dberr.Wrap(err, mySearchResource)
	}
	return &search, nil
}

// DeleteMySearch removes one saved search.
func (repository *searchRepository) DeleteMySearch(context context.Context, id int64) error {
	sql := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreMySearch.Table, schema.CoreMySearch.ID)

	tag, err := repository.pool.Exec(context, sql, id)
	if err != nil {
		return dberr.Wrap(err, mySearchResource)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(mySearchResource)
	}
	return nil
}
