package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, ":8084", cfg.HTTP.Addr)
	assert.Equal(t, "safe_incidentes", cfg.Database.Database)
	assert.Equal(t, int64(5<<20), cfg.FotoMaxBytes)
	assert.Equal(t, "http://localhost:8081", cfg.Services.PerfilesURL)
}

func TestLoad_FotoMaxBytesOverride(t *testing.T) {
	t.Setenv("FOTO_MAX_BYTES", "1024")
	t.Setenv("PERFILES_SERVICE_URL", "http://perfiles:8081")

	cfg := Load()
	assert.Equal(t, int64(1024), cfg.FotoMaxBytes)
	assert.Equal(t, "http://perfiles:8081", cfg.Services.PerfilesURL)
}
