// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package favorite

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/bazaar/internal/platform/actor"
	"github.com/taibuivan/bazaar/internal/platform/apperr"
	"github.com/taibuivan/bazaar/internal/platform/database/schema"
	"github.com/taibuivan/bazaar/internal/platform/dberr"
)

const resource = "Favorite"

// adForeignKey is the constraint violated when the liked ad does not exist.
const adForeignKey = "favorite_ad_id_fkey"

// # PostgreSQL Repository

type favoriteRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed favorite ledger.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &favoriteRepository{pool: pool}
}

var entryColumns = fmt.Sprintf("%s, %s, %s, %s, %s",
	schema.CoreFavorite.ID, schema.CoreFavorite.AdID, schema.CoreFavorite.UserID,
	schema.CoreFavorite.DeviceID, schema.CoreFavorite.CreatedAt,
)

/*
Add inserts the entry unless the actor already liked the ad.

Description: ON CONFLICT targets the partial unique index of the actor's
column. A conflicting insert returns no row; the existing row is then read.
The read is retried once in case the winner was removed in between.
*/
func (repository *favoriteRepository) Add(context context.Context, who actor.Actor, adID int64) (*Entry, bool, error) {
	column, key, err := actorColumn(who)
	if err != nil {
		return nil, false, err
	}

	insert := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		ON CONFLICT (%s, %s) WHERE %s IS NOT NULL DO NOTHING
		RETURNING %s`,
		schema.CoreFavorite.Table, column, schema.CoreFavorite.AdID,
		column, schema.CoreFavorite.AdID, column,
		entryColumns,
	)
	existing := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2`,
		entryColumns, schema.CoreFavorite.Table, column, schema.CoreFavorite.AdID)

	for attempt := 0; attempt < 2; attempt++ {
		entry, err := scanEntry(repository.pool.QueryRow(context, insert, key, adID))
		switch {
		case err == nil:
			return entry, true, nil
		case dberr.IsForeignKeyViolation(err) && dberr.ConstraintName(err) == adForeignKey:
			return nil, false, apperr.NotFound("Ad")
		case !errors.Is(err, pgx.ErrNoRows):
			return nil, false, dberr.Wrap(err, resource)
		}

		entry, err = scanEntry(repository.pool.QueryRow(context, existing, key, adID))
		if err == nil {
			return entry, false, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, false, dberr.Wrap(err, resource)
		}
	}

	return nil, false, apperr.Internal(fmt.Errorf("favorite for %s on ad %d kept racing", who, adID))
}

// Remove deletes the actor's own entry only.
func (repository *favoriteRepository) Remove(context context.Context, who actor.Actor, adID int64) error {
	column, key, err := actorColumn(who)
	if err != nil {
		return err
	}

	sql := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1 AND %s = $2`,
		schema.CoreFavorite.Table, column, schema.CoreFavorite.AdID)

	tag, err := repository.pool.Exec(context, sql, key, adID)
	if err != nil {
		return dberr.Wrap(err, resource)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resource)
	}
	return nil
}

// List pages through the actor's liked, published ads.
func (repository *favoriteRepository) List(context context.Context, who actor.Actor, categoryID *int64, limit, offset int) ([]int64, int, error) {
	column, key, err := actorColumn(who)
	if err != nil {
		return nil, 0, err
	}

	args := []any{key}
	categoryClause := ""
	if categoryID != nil {
		categoryClause = fmt.Sprintf(" AND a.%s = $2", schema.CoreAd.CategoryID)
		args = append(args, *categoryID)
	}
	args = append(args, limit, offset)

	sql := fmt.Sprintf(`
		SELECT f.%s, COUNT(*) OVER()
		FROM %s f
		JOIN %s a ON a.%s = f.%s
		WHERE f.%s = $1 AND a.%s%s
		ORDER BY f.%s DESC, f.%s DESC
		LIMIT $%d OFFSET $%d`,
		schema.CoreFavorite.AdID,
		schema.CoreFavorite.Table,
		schema.CoreAd.Table, schema.CoreAd.ID, schema.CoreFavorite.AdID,
		column, schema.CoreAd.IsPublished, categoryClause,
		schema.CoreFavorite.CreatedAt, schema.CoreFavorite.ID,
		len(args)-1, len(args),
	)

	rows, err := repository.pool.Query(context, sql, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resource)
	}
	defer rows.Close()

	ids := []int64{}
	total := 0
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id, &total); err != nil {
			return nil, 0, dberr.Wrap(err, resource)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, resource)
	}

	return ids, total, nil
}

// LikedAmong checks a whole result page at once.
func (repository *favoriteRepository) LikedAmong(context context.Context, who actor.Actor, adIDs []int64) (map[int64]bool, error) {
	liked := make(map[int64]bool, len(adIDs))
	if who.IsZero() || len(adIDs) == 0 {
		return liked, nil
	}

	column, key, err := actorColumn(who)
	if err != nil {
		return nil, err
	}

	sql := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = ANY($2)`,
		schema.CoreFavorite.AdID, schema.CoreFavorite.Table, column, schema.CoreFavorite.AdID)

	rows, err := repository.pool.Query(context, sql, key, adIDs)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}
	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

// # Helpers

// actorColumn maps each actor variant to its column and key.
func actorColumn(who actor.Actor) (string, any, error) {
	switch who.Kind() {
	case actor.KindUser:
		id, _ := who.UserID()
		return schema.CoreFavorite.UserID, id, nil
	case actor.KindDevice:
		id, _ := who.DeviceID()
		return schema.CoreFavorite.DeviceID, id, nil
	case actor.KindNone:
		return "", nil, actor.ErrRequired()
	}
	return "", nil, actor.ErrRequired()
}

func scanEntry(row pgx.Row) (*Entry, error) {
	var entry Entry
	if err := row.Scan(&entry.ID, &entry.AdID, &entry.UserID, &entry.DeviceID, &entry.CreatedAt); err != nil {
		return nil, err
	}
	return &entry, nil
}
