package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DatabaseConfig PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MaxIdle  int
	// Migrate applies the service's embedded schema on start-up
	Migrate bool
}

// RedisConfig Redis settings (client lookup cache + notification stream)
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
}

// MQTTConfig MQTT settings (notification push)
type MQTTConfig struct {
	Enabled  bool
	Broker   string
	ClientID string
	Username string
	Password string
	QoS      byte
}

// LogConfig logger settings
type LogConfig struct {
	Level  string
	Format string
}

// ServiceEndpoints base URLs of the sibling services
type ServiceEndpoints struct {
	PerfilesURL        string
	RegistrosURL       string
	GeolocalizacionURL string
	Timeout            time.Duration
	CacheTTL           time.Duration
}

// GetDSN builds the lib/pq connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// LoadFromEnv reads <prefix>_HOST, <prefix>_PORT ... falling back to the given database name
func (c *DatabaseConfig) LoadFromEnv(prefix, defaultDatabase string) {
	c.Host = GetEnv(prefix+"_HOST", "localhost")
	c.Port = ParseInt(GetEnv(prefix+"_PORT", "5432"), 5432)
	c.User = GetEnv(prefix+"_USER", "postgres")
	c.Password = GetEnv(prefix+"_PASSWORD", "postgres")
	c.Database = GetEnv(prefix+"_NAME", defaultDatabase)
	c.SSLMode = GetEnv(prefix+"_SSLMODE", "disable")
	c.MaxConns = ParseInt(GetEnv(prefix+"_MAX_CONNS", "20"), 20)
	c.MaxIdle = ParseInt(GetEnv(prefix+"_MAX_IDLE", "5"), 5)
	c.Migrate = GetEnv(prefix+"_MIGRATE", "false") == "true"
}

// LoadFromEnv reads REDIS_* variables
func (c *RedisConfig) LoadFromEnv(prefix string) {
	c.Enabled = GetEnv(prefix+"_ENABLED", "false") == "true"
	c.Addr = GetEnv(prefix+"_ADDR", "localhost:6379")
	c.Password = GetEnv(prefix+"_PASSWORD", "")
	c.DB = ParseInt(GetEnv(prefix+"_DB", "0"), 0)
}

// LoadFromEnv reads MQTT_* variables
func (c *MQTTConfig) LoadFromEnv(prefix, defaultClientID string) {
	c.Enabled = GetEnv(prefix+"_ENABLED", "false") == "true"
	c.Broker = GetEnv(prefix+"_BROKER", "tcp://localhost:1883")
	c.ClientID = GetEnv(prefix+"_CLIENT_ID", defaultClientID)
	c.Username = GetEnv(prefix+"_USERNAME", "")
	c.Password = GetEnv(prefix+"_PASSWORD", "")
	c.QoS = byte(ParseInt(GetEnv(prefix+"_QOS", "1"), 1))
}

// LoadFromEnv reads LOG_LEVEL / LOG_FORMAT
func (c *LogConfig) LoadFromEnv() {
	c.Level = GetEnv("LOG_LEVEL", "info")
	c.Format = GetEnv("LOG_FORMAT", "json")
}

// LoadFromEnv reads the *_SERVICE_URL variables
func (c *ServiceEndpoints) LoadFromEnv() {
	c.PerfilesURL = GetEnv("PERFILES_SERVICE_URL", "http://localhost:8081")
	c.RegistrosURL = GetEnv("REGISTROS_SERVICE_URL", "http://localhost:8082")
	c.GeolocalizacionURL = GetEnv("GEOLOCALIZACION_SERVICE_URL", "http://localhost:8085")
	c.Timeout = ParseDuration(GetEnv("CLIENT_TIMEOUT", "5s"), 5*time.Second)
	c.CacheTTL = ParseDuration(GetEnv("CLIENT_CACHE_TTL", "60s"), time.Minute)
}

// LoadDotEnv loads a .env file when present; a missing file is not an error
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	present := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}
	return godotenv.Load(present...)
}

func GetEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func ParseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func ParseDuration(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
