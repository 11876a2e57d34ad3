// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ad

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/bazaar/internal/platform/database/schema"
	"github.com/taibuivan/bazaar/internal/platform/dberr"
	"github.com/taibuivan/bazaar/internal/platform/locale"
	"github.com/taibuivan/bazaar/pkg/pointer"
	"github.com/taibuivan/bazaar/pkg/query"
)

// resource is the name used in NotFound errors.
const resource = "Ad"

// # PostgreSQL Repository

// adRepository implements [Repository] using pgx.
type adRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed ad store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &adRepository{pool: pool}
}

// summarySelect is the listing projection: the ad joined with its seller and
// address, and the main photo picked by flag, then display order, then id.
var summarySelect = fmt.Sprintf(`
	SELECT
		a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s, a.%s,
		s.%s, s.%s, s.%s, s.%s,
		addr.%s,
		(
			SELECT p.%s FROM %s p
			WHERE p.%s = a.%s
			ORDER BY p.%s DESC, p.%s ASC, p.%s ASC
			LIMIT 1
		) AS photo`,
	schema.CoreAd.ID, schema.CoreAd.Name, schema.CoreAd.Slug, schema.CoreAd.Price, schema.CoreAd.CategoryID,
	schema.CoreAd.Status, schema.CoreAd.IsPublished, schema.CoreAd.IsTop, schema.CoreAd.ViewCount,
	schema.CoreAd.PublishedAt, schema.CoreAd.UpdatedAt,
	schema.UsersAccount.ID, schema.UsersAccount.FullName, schema.UsersAccount.PhoneNumber, schema.UsersAccount.ProfilePhoto,
	schema.UsersAddress.Name,
	schema.CoreAdPhoto.Image, schema.CoreAdPhoto.Table,
	schema.CoreAdPhoto.AdID, schema.CoreAd.ID,
	schema.CoreAdPhoto.IsMain, schema.CoreAdPhoto.SortOrder, schema.CoreAdPhoto.ID,
)

// summaryFrom joins the seller (always present) and the address (optional).
var summaryFrom = fmt.Sprintf(`
	FROM %s a
	JOIN %s s ON s.%s = a.%s
	LEFT JOIN %s addr ON addr.%s = a.%s`,
	schema.CoreAd.Table,
	schema.UsersAccount.Table, schema.UsersAccount.ID, schema.CoreAd.SellerID,
	schema.UsersAddress.Table, schema.UsersAddress.ID, schema.CoreAd.AddressID,
)

// summaryDest returns scan targets matching summarySelect.
func summaryDest(summary *Summary) []any {
	return []any{
		&summary.ID, &summary.Name, &summary.Slug, &summary.Price, &summary.CategoryID,
		&summary.Status, &summary.IsPublished, &summary.IsTop, &summary.ViewCount,
		&summary.PublishedAt, &summary.UpdatedAt,
		&summary.Seller.ID, &summary.Seller.FullName, &summary.Seller.Phone, &summary.Seller.Photo,
		&summary.Address,
		&summary.Photo,
	}
}

/*
List returns a filtered, ordered page of ads and the total count.

Description: Criteria are appended to a dynamic WHERE clause with positional
arguments. COUNT(*) OVER() carries the total on every row, so one query
serves both the page and the pagination metadata.
*/
func (repository *adRepository) List(context context.Context, filter Filter, limit, offset int) ([]*Summary, int, error) {

	// Query build initialization
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(summarySelect)
	queryBuilder.WriteString(", COUNT(*) OVER() AS total_count")
	queryBuilder.WriteString(summaryFrom)

	// Scope
	switch filter.Scope {
	case ScopeSeller:
		queryBuilder.WriteString(fmt.Sprintf(" WHERE a.%s = $%d", schema.CoreAd.SellerID, argID))
		args = append(args, pointer.Val(filter.SellerID))
		argID++

		if filter.Status != nil {
			queryBuilder.WriteString(fmt.Sprintf(" AND a.%s = $%d", schema.CoreAd.Status, argID))
			args = append(args, string(*filter.Status))
			argID++
		}
	default:
		queryBuilder.WriteString(fmt.Sprintf(" WHERE a.%s", schema.CoreAd.IsPublished))

		if filter.SellerID != nil {
			queryBuilder.WriteString(fmt.Sprintf(" AND a.%s = $%d", schema.CoreAd.SellerID, argID))
			args = append(args, *filter.SellerID)
			argID++
		}
	}

	// Price range
	if filter.PriceMin != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND a.%s >= $%d", schema.CoreAd.Price, argID))
		args = append(args, *filter.PriceMin)
		argID++
	}
	if filter.PriceMax != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND a.%s <= $%d", schema.CoreAd.Price, argID))
		args = append(args, *filter.PriceMax)
		argID++
	}

	// Location
	if filter.RegionID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND addr.%s = $%d", schema.UsersAddress.RegionID, argID))
		args = append(args, *filter.RegionID)
		argID++
	}
	if filter.DistrictID != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND addr.%s = $%d", schema.UsersAddress.DistrictID, argID))
		args = append(args, *filter.DistrictID)
		argID++
	}

	// Category membership (flat)
	if len(filter.CategoryIDs) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(" AND a.%s = ANY($%d)", schema.CoreAd.CategoryID, argID))
		args = append(args, filter.CategoryIDs)
		argID++
	}

	// Boosted
	if filter.IsTop != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND a.%s = $%d", schema.CoreAd.IsTop, argID))
		args = append(args, *filter.IsTop)
		argID++
	}

	// Name substring in the request locale
	if search := strings.TrimSpace(filter.Query); search != "" {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s ILIKE $%d",
			localizedName("a", argID, argID+1), argID+2))
		args = append(args, filter.Locale.String(), filter.Fallback.String(), query.Contains(search))
		argID += 3
	}

	// Ordering and pagination
	queryBuilder.WriteString(" ORDER BY " + filter.Ordering.clause("a"))
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resource)
	}
	defer rows.Close()

	var total int
	summaries := []*Summary{}
	for rows.Next() {
		summary := &Summary{}
		if err := rows.Scan(append(summaryDest(summary), &total)...); err != nil {
			return nil, 0, dberr.Wrap(err, resource)
		}
		summaries = append(summaries, summary)
	}

	return summaries, total, dberr.Wrap(rows.Err(), resource)
}

// Summaries loads listing rows for ids in a single query.
func (repository *adRepository) Summaries(context context.Context, ids []int64) ([]*Summary, error) {
	if len(ids) == 0 {
		return []*Summary{}, nil
	}

	sql := summarySelect + summaryFrom + fmt.Sprintf(" WHERE a.%s = ANY($1)", schema.CoreAd.ID)

	rows, err := repository.pool.Query(context, sql, ids)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}
	defer rows.Close()

	summaries := make([]*Summary, 0, len(ids))
	for rows.Next() {
		summary := &Summary{}
		if err := rows.Scan(summaryDest(summary)...); err != nil {
			return nil, dberr.Wrap(err, resource)
		}
		summaries = append(summaries, summary)
	}
	return summaries, dberr.Wrap(rows.Err(), resource)
}

// FindBySlug returns the ad addressed by slug.
func (repository *adRepository) FindBySlug(context context.Context, slug string) (*Ad, error) {
	return repository.find(context, schema.CoreAd.Slug, slug)
}

// FindByID returns the ad addressed by id.
func (repository *adRepository) FindByID(context context.Context, id int64) (*Ad, error) {
	return repository.find(context, schema.CoreAd.ID, id)
}

// find loads one ad by a unique column, then its photos.
func (repository *adRepository) find(context context.Context, column string, key any) (*Ad, error) {
	sql := fmt.Sprintf(`
		SELECT
			%s,
			s.%s, s.%s, s.%s, s.%s,
			addr.%s,
			c.%s
		FROM %s a
		JOIN %s s ON s.%s = a.%s
		LEFT JOIN %s addr ON addr.%s = a.%s
		LEFT JOIN %s c ON c.%s = a.%s
		WHERE a.%s = $1`,
		schema.Prefixed("a", schema.CoreAd.Columns()...),
		schema.UsersAccount.ID, schema.UsersAccount.FullName, schema.UsersAccount.PhoneNumber, schema.UsersAccount.ProfilePhoto,
		schema.UsersAddress.Name,
		schema.CoreCategory.Name,
		schema.CoreAd.Table,
		schema.UsersAccount.Table, schema.UsersAccount.ID, schema.CoreAd.SellerID,
		schema.UsersAddress.Table, schema.UsersAddress.ID, schema.CoreAd.AddressID,
		schema.CoreCategory.Table, schema.CoreCategory.ID, schema.CoreAd.CategoryID,
		column,
	)

	ad := &Ad{}
	err := repository.pool.QueryRow(context, sql, key).Scan(
		&ad.ID, &ad.Name, &ad.Description, &ad.Slug, &ad.Price, &ad.CategoryID, &ad.SellerID, &ad.AddressID,
		&ad.Status, &ad.IsPublished, &ad.IsTop, &ad.ViewCount, &ad.PublishedAt, &ad.UpdatedAt,
		&ad.Seller.ID, &ad.Seller.FullName, &ad.Seller.Phone, &ad.Seller.Photo,
		&ad.AddressName,
		&ad.CategoryName,
	)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}

	photos, err := listPhotos(context, repository.pool, ad.ID)
	if err != nil {
		return nil, err
	}
	ad.Photos = photos

	return ad, nil
}

// Autocomplete suggests published ad names containing search.
func (repository *adRepository) Autocomplete(context context.Context, search string, requested, fallback locale.Code, limit int) ([]string, error) {
	name := localizedName("a", 1, 2)
	sql := fmt.Sprintf(`
		SELECT DISTINCT %s AS suggestion
		FROM %s a
		WHERE a.%s AND %s ILIKE $3
		ORDER BY suggestion ASC
		LIMIT $4`,
		name, schema.CoreAd.Table, schema.CoreAd.IsPublished, name,
	)

	rows, err := repository.pool.Query(context, sql, requested.String(), fallback.String(), query.Contains(search), limit)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}

	suggestions, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}
	return suggestions, nil
}

// # Helpers

// queryer is satisfied by the pool and by a transaction.
type queryer interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// listPhotos returns the photos of an ad in display order.
func listPhotos(context context.Context, db queryer, adID int64) ([]Photo, error) {
	sql := fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE %s = $1
		ORDER BY %s ASC, %s ASC`,
		strings.Join(schema.CoreAdPhoto.Columns(), ", "), schema.CoreAdPhoto.Table,
		schema.CoreAdPhoto.AdID,
		schema.CoreAdPhoto.SortOrder, schema.CoreAdPhoto.ID,
	)

	rows, err := db.Query(context, sql, adID)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}
	defer rows.Close()

	photos := []Photo{}
	for rows.Next() {
		var photo Photo
		if err := rows.Scan(&photo.ID, &photo.AdID, &photo.Image, &photo.IsMain, &photo.SortOrder, &photo.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, resource)
		}
		photos = append(photos, photo)
	}
	return photos, dberr.Wrap(rows.Err(), resource)
}

// localizedName is the SQL for the name in the locale bound at $requested,
// falling back to the one at $fallback.
func localizedName(alias string, requested, fallback int) string {
	return locale.SQLResolve(alias+"."+schema.CoreAd.Name, requested, fallback)
}
