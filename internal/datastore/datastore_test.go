package datastore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCockroachGetURL(t *testing.T) {
	cfg := CockroachConfig{Host: "localhost:26257", Username: "root", Password: "pw", Database: "felfel"}
	assert.Equal(t, "postgres://root:pw@localhost:26257/felfel", cfg.GetURL())
	cfg.SSLMode = "disable"
	assert.Equal(t, "postgres://root:pw@localhost:26257/felfel?sslmode=disable", cfg.GetURL())
}

func TestCockroachDisabled(t *testing.T) {
	ctx := context.Background()
	c, err := NewCockroachClient(ctx, &CockroachConfig{})
	require.NoError(t, err)

	_, err = c.Reserve(ctx, "asbe-hoshyar-1")
	assert.ErrorIs(t, err, ErrNameStoreNotEnabled)
	_, err = c.GetName(ctx, "asbe-hoshyar-1")
	assert.ErrorIs(t, err, ErrNameStoreNotEnabled)
	assert.NoError(t, c.Close(ctx))
}

func TestRedisDisabled(t *testing.T) {
	ctx := context.Background()
	r, err := NewRedisClient(&RedisConfig{})
	require.NoError(t, err)

	assert.ErrorIs(t, r.IncrStat(ctx, "id"), ErrStatsNotEnabled)
	_, err = r.GetStats(ctx, []string{"id"})
	assert.ErrorIs(t, err, ErrStatsNotEnabled)
	assert.NoError(t, r.Close())
}

func TestRedisBadURL(t *testing.T) {
	_, err := NewRedisClient(&RedisConfig{Enabled: true, URL: "not a url"})
	assert.Error(t, err)
}

func TestStatsKey(t *testing.T) {
	assert.Equal(t, "stats:simple:generated", statsKey("Simple"))
}
