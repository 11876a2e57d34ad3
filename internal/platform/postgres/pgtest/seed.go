// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pgtest

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Seed inserts the rows the marketplace reads but never writes.
type Seed struct {
	t    *testing.T
	pool *pgxpool.Pool
}

// NewSeed binds seed helpers to a migrated pool.
func NewSeed(t *testing.T, pool *pgxpool.Pool) *Seed {
	return &Seed{t: t, pool: pool}
}

func (s *Seed) insert(query string, args ...any) int64 {
	s.t.Helper()
	var id int64
	require.NoError(s.t, s.pool.QueryRow(context.Background(), query, args...).Scan(&id))
	return id
}

// Region inserts a region whose name is the given JSON object.
func (s *Seed) Region(nameJSON string) int64 {
	s.t.Helper()
	return s.insert(`INSERT INTO ref.region (name) VALUES ($1::jsonb) RETURNING id`, nameJSON)
}

// District inserts a district of regionID.
func (s *Seed) District(regionID int64, nameJSON string) int64 {
	s.t.Helper()
	return s.insert(`INSERT INTO ref.district (region_id, name) VALUES ($1, $2::jsonb) RETURNING id`, regionID, nameJSON)
}

// Address inserts an address in the given region and district.
func (s *Seed) Address(name string, regionID, districtID int64) int64 {
	s.t.Helper()
	return s.insert(
		`INSERT INTO users.address (name, region_id, district_id) VALUES ($1, $2, $3) RETURNING id`,
		name, regionID, districtID,
	)
}

// Seller inserts an approved seller living at addressID (0 for none).
func (s *Seed) Seller(fullName, phone string, addressID int64) int64 {
	s.t.Helper()
	var address *int64
	if addressID > 0 {
		address = &addressID
	}
	return s.insert(
		`INSERT INTO users.account (full_name, phone_number, role, status, address_id)
		 VALUES ($1, $2, 'seller', 'approved', $3) RETURNING id`,
		fullName, phone, address,
	)
}

// Category inserts a category under parentID (0 for a root).
func (s *Seed) Category(nameJSON string, parentID int64) int64 {
	s.t.Helper()
	var parent *int64
	if parentID > 0 {
		parent = &parentID
	}
	return s.insert(
		`INSERT INTO core.category (name, parent_id) VALUES ($1::jsonb, $2) RETURNING id`,
		nameJSON, parent,
	)
}

// Ad inserts a bare ad owned by sellerID in categoryID (0 for none).
// Tests exercising the ad store should create ads through it instead.
func (s *Seed) Ad(sellerID, categoryID int64, slug string, published bool) int64 {
	s.t.Helper()
	var category *int64
	if categoryID > 0 {
		category = &categoryID
	}
	return s.insert(
		`INSERT INTO core.ad (name, slug, seller_id, category_id, is_published)
		 VALUES (jsonb_build_object('uz', $1::text), $1, $2, $3, $4) RETURNING id`,
		slug, sellerID, category, published,
	)
}
