package config

import (
	"safe-rescue/safe-common/config"
)

// Config registros service configuration
type Config struct {
	HTTP struct {
		Addr string
	}
	Database config.DatabaseConfig
	Log      config.LogConfig
	Foto     struct {
		// StorageDir where uploaded pictures are written
		StorageDir string
		// PublicURL prefix stored in foto.url; defaults to this service's file route
		PublicURL string
		MaxBytes  int64
	}
}

func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = config.GetEnv("HTTP_ADDR", ":8082")
	cfg.Database.LoadFromEnv("DB", "safe_registros")
	cfg.Log.LoadFromEnv()
	cfg.Foto.StorageDir = config.GetEnv("FOTO_STORAGE_DIR", "./data/fotos")
	cfg.Foto.PublicURL = config.GetEnv("FOTO_PUBLIC_URL", "/api-registros/v1/fotos/archivos")
	cfg.Foto.MaxBytes = int64(config.ParseInt(config.GetEnv("FOTO_MAX_BYTES", "5242880"), 5<<20))
	return cfg
}
