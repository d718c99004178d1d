package config

import (
	"safe-rescue/safe-common/config"
)

// Config incidentes service configuration
type Config struct {
	HTTP struct {
		Addr string
	}
	Database config.DatabaseConfig
	Redis    config.RedisConfig
	Log      config.LogConfig
	Services config.ServiceEndpoints
	// FotoMaxBytes upper bound of an incident picture accepted for forwarding
	FotoMaxBytes int64
}

func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = config.GetEnv("HTTP_ADDR", ":8084")
	cfg.Database.LoadFromEnv("DB", "safe_incidentes")
	cfg.Redis.LoadFromEnv("REDIS")
	cfg.Log.LoadFromEnv()
	cfg.Services.LoadFromEnv()
	cfg.FotoMaxBytes = int64(config.ParseInt(config.GetEnv("FOTO_MAX_BYTES", "5242880"), 5<<20))
	return cfg
}
