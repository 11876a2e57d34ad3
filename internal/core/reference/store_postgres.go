// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reference

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/bazaar/internal/platform/database/schema"
	"github.com/taibuivan/bazaar/internal/platform/dberr"
)

const resource = "Region"

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a new [PostgresRepository].
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

/*
ListRegions retrieves all regions and their districts.

Description: Two queries, one per table; districts are attached to their
region in memory.
*/
func (repository *PostgresRepository) ListRegions(context context.Context) ([]*Region, error) {
	regionQuery := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s`,
		schema.RefRegion.ID, schema.RefRegion.Name, schema.RefRegion.Table, schema.RefRegion.ID)

	rows, err := repository.db.Query(context, regionQuery)
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}

	regions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*Region, error) {
		region := &Region{Districts: []District{}}
		err := row.Scan(&region.ID, &region.Name)
		return region, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, resource)
	}

	byID := make(map[int64]*Region, len(regions))
	for _, region := range regions {
		byID[region.ID] = region
	}

	districts, err := repository.districts(context, "")
	if err != nil {
		return nil, err
	}
	for _, district := range districts {
		if region, ok := byID[district.RegionID]; ok {
			region.Districts = append(region.Districts, district)
		}
	}

	return regions, nil
}

// FindRegion retrieves one region and its districts.
func (repository *PostgresRepository) FindRegion(context context.Context, id int64) (*Region, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		schema.RefRegion.ID, schema.RefRegion.Name, schema.RefRegion.Table, schema.RefRegion.ID)

	region := &Region{}
	if err := repository.db.QueryRow(context, query, id).Scan(&region.ID, &region.Name); err != nil {
		return nil, dberr.Wrap(err, resource)
	}

	districts, err := repository.districts(context, fmt.Sprintf("WHERE %s = $1", schema.RefDistrict.RegionID), id)
	if err != nil {
		return nil, err
	}
	region.Districts = districts

	return region, nil
}

// districts reads districts matching where, ordered by id.
func (repository *PostgresRepository) districts(context context.Context, where string, args ...any) ([]District, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s %s ORDER BY %s`,
		schema.RefDistrict.ID, schema.RefDistrict.RegionID, schema.RefDistrict.Name,
		schema.RefDistrict.Table, where, schema.RefDistrict.ID)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "District")
	}

	districts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (District, error) {
		var district District
		err := row.Scan(&district.ID, &district.RegionID, &district.Name)
		return district, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "District")
	}
	return districts, nil
}
