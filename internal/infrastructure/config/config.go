package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8000"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// UploadDir is where avatar files land; the router serves it statically.
	UploadDir     string `env:"UPLOAD_DIR, default=uploads"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`
	CORSOrigins   string `env:"CORS_ORIGINS, default=http://localhost:5173"`

	// RateLimit is the allowed requests per minute per client IP.
	RateLimit int `env:"RATE_LIMIT, default=300"`

	// PurgeInterval wipes all cities and plans periodically (demo-instance
	// behavior). Zero disables the job.
	PurgeInterval time.Duration `env:"PURGE_INTERVAL, default=2h"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://127.0.0.1:27017"`
	Database string `env:"MONGO_DB,  default=worldwise"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// AllowedOrigins splits the comma-separated CORS whitelist.
func (c *Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}

func (c *Config) IsDevelopment() bool {
	return c.Env != "production"
}
