package config

import (
	"safe-rescue/safe-common/config"
)

// Config comunicacion service configuration
type Config struct {
	HTTP struct {
		Addr string
	}
	Database config.DatabaseConfig
	Redis    config.RedisConfig
	MQTT     config.MQTTConfig
	Log      config.LogConfig
	Services config.ServiceEndpoints
	// Notificaciones Redis Stream that receives every new notification
	Notificaciones struct {
		Stream       string
		StreamMaxLen int64
	}
}

func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = config.GetEnv("HTTP_ADDR", ":8083")
	cfg.Database.LoadFromEnv("DB", "safe_comunicacion")
	cfg.Redis.LoadFromEnv("REDIS")
	cfg.MQTT.LoadFromEnv("MQTT", "safe-comunicacion")
	cfg.Log.LoadFromEnv()
	cfg.Services.LoadFromEnv()
	cfg.Notificaciones.Stream = config.GetEnv("NOTIFICACIONES_STREAM", "safe-rescue:notificaciones")
	cfg.Notificaciones.StreamMaxLen = int64(config.ParseInt(config.GetEnv("NOTIFICACIONES_STREAM_MAXLEN", "10000"), 10000))
	return cfg
}
