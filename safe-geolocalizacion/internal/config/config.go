package config

import (
	"safe-rescue/safe-common/config"
)

// Config geolocation service configuration
type Config struct {
	HTTP struct {
		Addr string
	}
	Database config.DatabaseConfig
	Log      config.LogConfig
}

// Load reads HTTP_ADDR, DB_* and LOG_* from the environment
func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = config.GetEnv("HTTP_ADDR", ":8085")
	cfg.Database.LoadFromEnv("DB", "safe_geolocalizacion")
	cfg.Log.LoadFromEnv()
	return cfg
}
