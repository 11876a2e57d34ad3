// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cache_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/taibuivan/bazaar/internal/platform/cache"
)

// mapStore keeps values JSON-encoded like the Redis store does.
type mapStore struct {
	values  map[string][]byte
	failGet bool
}

func newMapStore() *mapStore { return &mapStore{values: map[string][]byte{}} }

func (s *mapStore) Get(_ context.Context, key string, dest any) (bool, error) {
	if s.failGet {
		return false, errors.New("connection refused")
	}
	raw, ok := s.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (s *mapStore) Set(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	s.values[key] = raw
	return err
}

func (s *mapStore) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(s.values, key)
	}
	return nil
}

/*
TestFetch loads once, then serves from the store until invalidated.
*/
func TestFetch(t *testing.T) {
	ctx := context.Background()
	store := newMapStore()

	calls := 0
	load := func(context.Context) ([]string, error) {
		calls++
		return []string{"Telefonlar", "Noutbuklar"}, nil
	}

	for range 3 {
		got, err := cache.Fetch(ctx, store, "k", time.Minute, load)
		require.NoError(t, err)
		assert.Equal(t, []string{"Telefonlar", "Noutbuklar"}, got)
	}
	assert.Equal(t, 1, calls)

	cache.Invalidate(ctx, store, "k")
	_, err := cache.Fetch(ctx, store, "k", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

/*
TestFetch_Degrades falls back to the loader when the store fails and never
caches loader errors.
*/
func TestFetch_Degrades(t *testing.T) {
	ctx := context.Background()

	broken := newMapStore()
	broken.failGet = true
	got, err := cache.Fetch(ctx, broken, "k", time.Minute, func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	store := newMapStore()
	_, err = cache.Fetch(ctx, store, "k", time.Minute, func(context.Context) (int, error) {
		return 0, errors.New("db down")
	})
	require.Error(t, err)
	assert.Empty(t, store.values)

	got, err = cache.Fetch(ctx, cache.Noop{}, "k", time.Minute, func(context.Context) (int, error) { return 9, nil })
	require.NoError(t, err)
	assert.Equal(t, 9, got)
}

/*
TestRedisStore_Integration round-trips a value through a real Redis.
*/
func TestRedisStore_Integration(t *testing.T) {
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379/tcp")
	require.NoError(t, err)

	client := goredis.NewClient(&goredis.Options{Addr: fmt.Sprintf("%s:%s", host, port.Port())})
	t.Cleanup(func() { _ = client.Close() })

	store := cache.NewRedisStore(client)

	type region struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, store.Set(ctx, "regions:uz", []region{{1, "Toshkent"}}, time.Minute))

	var got []region
	found, err := store.Get(ctx, "regions:uz", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []region{{1, "Toshkent"}}, got)

	require.NoError(t, store.Delete(ctx, "regions:uz"))
	found, err = store.Get(ctx, "regions:uz", &got)
	require.NoError(t, err)
	assert.False(t, found)
}
