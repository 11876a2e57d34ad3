// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bazaar/internal/platform/migration"
)

/*
TestDatabaseURL rewrites libpq URLs to the driver scheme.
*/
func TestDatabaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://u:p@db:5432/bazaar?sslmode=disable", "pgx5://u:p@db:5432/bazaar?sslmode=disable"},
		{"postgresql://u@db/bazaar", "pgx5://u@db/bazaar"},
		{"pgx5://u@db/bazaar", "pgx5://u@db/bazaar"},
		{"host=db user=u", "host=db user=u"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, migration.DatabaseURL(tt.in))
		})
	}
}
