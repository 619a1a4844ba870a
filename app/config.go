package app

import (
	"github.com/Resolvr-io/deadcat-sub000/internal/nexus"
)

type Config struct {
	AppHost string `env:"APP_HOST" env-default:"localhost"`
	AppPort string `env:"APP_PORT" env-default:"8080"`
	Env     string `env:"APP_ENV" env-default:"development"`

	// Snapshot cache backing. Memory is right for a single instance;
	// Redis lets several instances share one view of the sync feed.
	CacheBackend  string `env:"CACHE_BACKEND" env-default:"memory"`
	RedisAddr     string `env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" env-default:"0"`
}

// LoadConfig loads the application configuration from environment variables or a config file.
func LoadConfig() (*Config, error) {
	c := &Config{}
	err := nexus.NewLoader().Load(c)
	return c, err
}
