// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ad

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/bazaar/internal/platform/apperr"
	"github.com/taibuivan/bazaar/internal/platform/database/schema"
	"github.com/taibuivan/bazaar/internal/platform/dberr"
	"github.com/taibuivan/bazaar/internal/platform/postgres"
)

/*
Create inserts the ad and its photos in one transaction.

Description: The INSERT selects from the seller's account row, which both
copies the account address and proves the seller exists. Photos go out in a
single pgx.Batch on the same transaction.
*/
func (repository *adRepository) Create(context context.Context, ad *Ad, photos []PhotoInput) error {
	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		SELECT $1, $2, $3, $4, $5, acc.%s, acc.%s, $6, $7, $8
		FROM %s acc
		WHERE acc.%s = $9
		RETURNING %s, %s, %s, %s`,
		schema.CoreAd.Table,
		schema.CoreAd.Name, schema.CoreAd.Description, schema.CoreAd.Slug, schema.CoreAd.Price, schema.CoreAd.CategoryID,
		schema.CoreAd.SellerID, schema.CoreAd.AddressID, schema.CoreAd.Status, schema.CoreAd.IsPublished, schema.CoreAd.IsTop,
		schema.UsersAccount.ID, schema.UsersAccount.AddressID,
		schema.UsersAccount.Table,
		schema.UsersAccount.ID,
		schema.CoreAd.ID, schema.CoreAd.AddressID, schema.CoreAd.PublishedAt, schema.CoreAd.UpdatedAt,
	)

	err := postgres.WithTx(context, repository.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(context, sql,
			ad.Name, ad.Description, ad.Slug, ad.Price, ad.CategoryID,
			string(ad.Status), ad.IsPublished, ad.IsTop,
			ad.SellerID,
		).Scan(&ad.ID, &ad.AddressID, &ad.PublishedAt, &ad.UpdatedAt)
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound("Seller")
		}
		if err != nil {
			return err
		}

		stored, err := insertPhotos(context, tx, ad.ID, photos)
		if err != nil {
			return err
		}
		ad.Photos = stored
		return nil
	})

	return classifyWrite(err, ad.Slug)
}

// Update writes the content fields of ad.
func (repository *adRepository) Update(context context.Context, ad *Ad) error {
	sql := fmt.Sprintf(`
		UPDATE %s
		SET %s = $1, %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = now()
		WHERE %s = $7
		RETURNING %s`,
		schema.CoreAd.Table,
		schema.CoreAd.Name, schema.CoreAd.Description, schema.CoreAd.Price, schema.CoreAd.CategoryID,
		schema.CoreAd.IsTop, schema.CoreAd.IsPublished, schema.CoreAd.UpdatedAt,
		schema.CoreAd.ID,
		schema.CoreAd.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, sql,
		ad.Name, ad.Description, ad.Price, ad.CategoryID, ad.IsTop, ad.IsPublished, ad.ID,
	).Scan(&ad.UpdatedAt)

	return classifyWrite(err, ad.Slug)
}

// Delete removes the ad; dependants cascade in the database.
func (repository *adRepository) Delete(context context.Context, id int64) error {
	sql := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreAd.Table, schema.CoreAd.ID)

	tag, err := repository.pool.Exec(context, sql, id)
	if err != nil {
		return dberr.Wrap(err, resource)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resource)
	}
	return nil
}

/*
ReplacePhotos swaps the photo set inside one transaction.

Description: The ad row is touched first, which locks it against a parallel
replace and reports NotFound before anything is deleted.
*/
func (repository *adRepository) ReplacePhotos(context context.Context, adID int64, photos []PhotoInput) ([]Photo, error) {
	touch := fmt.Sprintf(`UPDATE %s SET %s = now() WHERE %s = $1 RETURNING %s`,
		schema.CoreAd.Table, schema.CoreAd.UpdatedAt, schema.CoreAd.ID, schema.CoreAd.ID)
	purge := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreAdPhoto.Table, schema.CoreAdPhoto.AdID)

	var stored []Photo
	err := postgres.WithTx(context, repository.pool, func(tx pgx.Tx) error {
		var id int64
		if err := tx.QueryRow(context, touch, adID).Scan(&id); err != nil {
			return err
		}

		if _, err := tx.Exec(context, purge, adID); err != nil {
			return err
		}

		var err error
		stored, err = insertPhotos(context, tx, adID, photos)
		return err
	})
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}
	return stored, nil
}

// SetStatus changes the moderation status.
func (repository *adRepository) SetStatus(context context.Context, id int64, status Status) error {
	sql := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = now() WHERE %s = $2`,
		schema.CoreAd.Table, schema.CoreAd.Status, schema.CoreAd.UpdatedAt, schema.CoreAd.ID)

	tag, err := repository.pool.Exec(context, sql, string(status), id)
	if err != nil {
		return dberr.Wrap(err, resource)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resource)
	}
	return nil
}

// IncrementViewCount adds one view atomically.
func (repository *adRepository) IncrementViewCount(context context.Context, id int64) error {
	sql := fmt.Sprintf(`UPDATE %s SET %s = %s + 1 WHERE %s = $1`,
		schema.CoreAd.Table, schema.CoreAd.ViewCount, schema.CoreAd.ViewCount, schema.CoreAd.ID)

	_, err := repository.pool.Exec(context, sql, id)
	return dberr.Wrap(err, resource)
}

// # Helpers

// insertPhotos queues one INSERT per photo in a single batch. SortOrder is
// the input position.
func insertPhotos(context context.Context, tx pgx.Tx, adID int64, photos []PhotoInput) ([]Photo, error) {
	stored := make([]Photo, 0, len(photos))
	if len(photos) == 0 {
		return stored, nil
	}

	sql := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s, %s`,
		schema.CoreAdPhoto.Table,
		schema.CoreAdPhoto.AdID, schema.CoreAdPhoto.Image, schema.CoreAdPhoto.IsMain, schema.CoreAdPhoto.SortOrder,
		schema.CoreAdPhoto.ID, schema.CoreAdPhoto.CreatedAt,
	)

	batch := &pgx.Batch{}
	for position, input := range photos {
		batch.Queue(sql, adID, input.Image, input.IsMain, position)
	}

	results := tx.SendBatch(context, batch)
	for position, input := range photos {
		photo := Photo{AdID: adID, Image: input.Image, IsMain: input.IsMain, SortOrder: position}
		if err := results.QueryRow().Scan(&photo.ID, &photo.CreatedAt); err != nil {
			_ = results.Close()
			return nil, err
		}
		stored = append(stored, photo)
	}

	if err := results.Close(); err != nil {
		return nil, err
	}
	return stored, nil
}

// classifyWrite maps constraint failures of ad writes to domain errors.
func classifyWrite(err error, slug string) error {
	switch {
	case err == nil:
		return nil
	case dberr.IsUniqueViolation(err) && dberr.ConstraintName(err) == schema.CoreAd.SlugKey:
		return apperr.DuplicateSlug(slug)
	case dberr.IsForeignKeyViolation(err):
		// Seller and address come from an existing account row.
		return apperr.NotFound("Category")
	}
	return dberr.Wrap(err, resource)
}
