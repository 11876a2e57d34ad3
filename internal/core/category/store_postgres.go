// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/bazaar/internal/platform/apperr"
	"github.com/taibuivan/bazaar/internal/platform/database/schema"
	"github.com/taibuivan/bazaar/internal/platform/dberr"
	"github.com/taibuivan/bazaar/internal/platform/locale"
	"github.com/taibuivan/bazaar/pkg/query"
)

// resource is the name used in NotFound errors.
const resource = "Category"

// categoryRepository implements [Repository] using pgx.
type categoryRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed category store.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &categoryRepository{pool: pool}
}

// selectColumns is the column list shared by every category read.
var selectColumns = schema.Prefixed("c",
	schema.CoreCategory.ID,
	schema.CoreCategory.ParentID,
	schema.CoreCategory.Name,
	schema.CoreCategory.Icon,
	schema.CoreCategory.CreatedAt,
)

/*
List returns every category with its published ad count.

Description: The count is a correlated sub-select over the ad table so that
categories without ads still appear (with 0).
*/
func (repository *categoryRepository) List(context context.Context) ([]*Category, error) {
	sql := fmt.Sprintf(`
		SELECT %s,
			(SELECT COUNT(*) FROM %s a WHERE a.%s = c.%s AND a.%s) AS ad_count
		FROM %s c
		ORDER BY c.%s ASC`,
		selectColumns,
		schema.CoreAd.Table, schema.CoreAd.CategoryID, schema.CoreCategory.ID, schema.CoreAd.IsPublished,
		schema.CoreCategory.Table,
		schema.CoreCategory.ID,
	)

	rows, err := repository.pool.Query(context, sql)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}
	defer rows.Close()

	var categories []*Category
	for rows.Next() {
		category := &Category{}
		if err := rows.Scan(
			&category.ID, &category.ParentID, &category.Name, &category.Icon, &category.CreatedAt,
			&category.AdCount,
		); err != nil {
			return nil, dberr.Wrap(err, resource)
		}
		categories = append(categories, category)
	}

	return categories, dberr.Wrap(rows.Err(), resource)
}

// FindByID returns a single category or NotFound.
func (repository *categoryRepository) FindByID(context context.Context, id int64) (*Category, error) {
	sql := fmt.Sprintf(`SELECT %s FROM %s c WHERE c.%s = $1`,
		selectColumns, schema.CoreCategory.Table, schema.CoreCategory.ID)

	category := &Category{}
	err := repository.pool.QueryRow(context, sql, id).Scan(
		&category.ID, &category.ParentID, &category.Name, &category.Icon, &category.CreatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}
	return category, nil
}

// ChildrenOf returns the direct children of parentID.
func (repository *categoryRepository) ChildrenOf(context context.Context, parentID int64) ([]*Category, error) {
	sql := fmt.Sprintf(`SELECT %s FROM %s c WHERE c.%s = $1 ORDER BY c.%s ASC`,
		selectColumns, schema.CoreCategory.Table, schema.CoreCategory.ParentID, schema.CoreCategory.ID)

	rows, err := repository.pool.Query(context, sql, parentID)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}
	return collect(rows)
}

/*
MatchByName performs a case-insensitive substring search on the localized name.

Description: The name is resolved as [locale.Text.Resolve] does: requested,
then fallback, then any translation. User-typed '%' and '_' match literally.
*/
func (repository *categoryRepository) MatchByName(context context.Context, search string, requested, fallback locale.Code, limit int) ([]*Category, error) {
	sql := fmt.Sprintf(`
		SELECT %s FROM %s c
		WHERE %s ILIKE $3
		ORDER BY c.%s ASC
		LIMIT $4`,
		selectColumns, schema.CoreCategory.Table,
		locale.SQLResolve("c."+schema.CoreCategory.Name, 1, 2),
		schema.CoreCategory.ID,
	)

	rows, err := repository.pool.Query(context, sql, requested.String(), fallback.String(), query.Contains(search), limit)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}
	return collect(rows)
}

// Create inserts the category. A missing parent surfaces as NotFound.
func (repository *categoryRepository) Create(context context.Context, category *Category) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s, %s`,
		schema.CoreCategory.Table,
		schema.CoreCategory.ParentID, schema.CoreCategory.Name, schema.CoreCategory.Icon,
		schema.CoreCategory.ID, schema.CoreCategory.CreatedAt,
	)

	err := repository.pool.QueryRow(context, sql, category.ParentID, category.Name, category.Icon).
		Scan(&category.ID, &category.CreatedAt)
	if dberr.IsForeignKeyViolation(err) {
		return apperr.NotFound("Parent category")
	}
	return dberr.Wrap(err, resource)
}

// collect scans rows of [selectColumns].
func collect(rows pgx.Rows) ([]*Category, error) {
	defer rows.Close()

	categories := []*Category{}
	for rows.Next() {
		category := &Category{}
		if err := rows.Scan(&category.ID, &category.ParentID, &category.Name, &category.Icon, &category.CreatedAt); err != nil {
			return nil, dberr.Wrap(err, resource)
		}
		categories = append(categories, category)
	}
	return categories, dberr.Wrap(rows.Err(), resource)
}
