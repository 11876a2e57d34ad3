// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pgtest starts a disposable PostgreSQL for repository integration tests.

The container runs postgres:16-alpine through testcontainers-go and receives the
real migrations/ directory, so the constraints under test are the production
ones. Tests are skipped unless GO_TEST_INTEGRATION is set:

	GO_TEST_INTEGRATION=1 go test ./internal/core/... -count=1
*/
package pgtest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/taibuivan/bazaar/internal/platform/migration"
)

// EnvIntegration enables the container-backed tests.
const EnvIntegration = "GO_TEST_INTEGRATION"

const (
	image    = "postgres:16-alpine"
	user     = "bazaar"
	password = "bazaar"
	database = "bazaar"
)

// Start launches a migrated database and returns a pool to it. The container
// and pool are released with t.Cleanup.
func Start(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if os.Getenv(EnvIntegration) == "" {
		t.Skipf("integration tests are disabled (set %s=1)", EnvIntegration)
	}

	ctx := context.Background()
	request := tc.ContainerRequest{
		Image: image,
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": password,
			"POSTGRES_DB":       database,
		},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: request, Started: true})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port.Port(), database)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, migration.RunUp(dsn, MigrationsDir(), logger))

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

// MigrationsDir locates <repo>/migrations from this file, independent of the
// package directory the test runs in.
func MigrationsDir() string {
	// internal/platform/postgres/pgtest -> four levels up to the root.
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Clean(filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "..", "migrations"))
}
