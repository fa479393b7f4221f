package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "images", cfg.StorageBucket)
	assert.False(t, cfg.StorageUseSSL)
	assert.Equal(t, 2*time.Hour, cfg.PresignTTL)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORAGE_BUCKET", "photos")
	t.Setenv("STORAGE_USE_SSL", "true")
	t.Setenv("PRESIGN_TTL", "30m")

	cfg := Load()

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "photos", cfg.StorageBucket)
	assert.True(t, cfg.StorageUseSSL)
	assert.Equal(t, 30*time.Minute, cfg.PresignTTL)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_InvalidTTLFallsBack(t *testing.T) {
	t.Setenv("PRESIGN_TTL", "soon")

	cfg := Load()
	assert.Equal(t, 2*time.Hour, cfg.PresignTTL)
}
