package registry

import (
	"time"

	"github.com/Resolvr-io/deadcat-sub000/models"
)

// Config represents the configuration for the registry module
type Config struct {
	SnapshotTTL time.Duration `env:"SNAPSHOT_TTL"`
}

func (c *Config) Validate() error {
	if c.SnapshotTTL < 0 {
		return models.ErrInvalidSnapshotTTL
	}
	return nil
}

// GetDefaultConfig returns the default registry configuration
func GetDefaultConfig() *Config {
	return &Config{
		// Snapshots go stale as block heights tick, keep the cache short.
		SnapshotTTL: 2 * time.Second,
	}
}
