package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURL)
	assert.Equal(t, "test", cfg.DatabaseName)
	assert.Equal(t, "shops", cfg.CollectionName)
	assert.Equal(t, 12, cfg.ScrollIterations)
	assert.Equal(t, 20*time.Second, cfg.ResultsWait)
	assert.Equal(t, 6*time.Second, cfg.ResultsSettle)
	assert.Equal(t, 2*time.Second, cfg.ScrollSettle)
	assert.Equal(t, 4*time.Second, cfg.DetailSettle)
	assert.True(t, cfg.Headless)
	assert.Empty(t, cfg.CSVOutputPath)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("MONGO_DATABASE", "production")
	t.Setenv("MONGO_COLLECTION", "businesses")
	t.Setenv("SCROLL_ITERATIONS", "3")
	t.Setenv("DETAIL_SETTLE_SECONDS", "1")
	t.Setenv("HEADLESS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.DatabaseName)
	assert.Equal(t, "businesses", cfg.CollectionName)
	assert.Equal(t, 3, cfg.ScrollIterations)
	assert.Equal(t, time.Second, cfg.DetailSettle)
	assert.False(t, cfg.Headless)
}

func TestLoadFailsWithoutMongoURL(t *testing.T) {
	t.Setenv("MONGO_URL", "")
	t.Setenv("SECRETS_FILE", "does-not-exist")

	_, err := Load()
	assert.Error(t, err)
}
