package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Resolvr-io/deadcat-sub000/app"
	"github.com/Resolvr-io/deadcat-sub000/app/api"
	"github.com/Resolvr-io/deadcat-sub000/app/covenant"
	"github.com/Resolvr-io/deadcat-sub000/app/preview"
	"github.com/Resolvr-io/deadcat-sub000/app/registry"
	"github.com/Resolvr-io/deadcat-sub000/internal/cache"
	"github.com/Resolvr-io/deadcat-sub000/internal/logger"
	"github.com/Resolvr-io/deadcat-sub000/models"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	l := logger.NewZeroLogger(os.Stdout, logger.LevelInfo, logger.Fields{
		"service": "covenant-preview-engine",
		"env":     cfg.Env,
	})

	snapshots := newSnapshotCache(cfg)

	r := gin.Default()
	r.Use(api.CorsMiddleware(), api.RequestID())

	apiV1 := r.Group("/api/v1")
	apiV1.GET("/healthz", api.HealthCheck)

	// The registry service doubles as the market and position source for
	// the engine modules.
	registrySvc := registry.Init(apiV1, registry.Dependencies{
		Snapshots: snapshots,
		Config:    nil,
		Logger:    l,
	})

	covenant.Init(apiV1, covenant.Dependencies{
		Markets: registrySvc,
	})

	preview.Init(apiV1, preview.Dependencies{
		Markets:   registrySvc,
		Positions: registrySvc,
		Config:    nil,
		Logger:    l,
	})

	l.Info("starting covenant preview engine API", logger.Fields{
		"host": cfg.AppHost,
		"port": cfg.AppPort,
	})
	if err := r.Run(fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)); err != nil {
		l.Fatal(err, nil)
	}
}

func newSnapshotCache(cfg *app.Config) cache.Cache[models.Market] {
	if cfg.CacheBackend == cache.RedisBackend {
		return cache.NewCache[models.Market](cache.RedisBackend, &cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			PoolSize: 100,
		})
	}
	return cache.NewCache[models.Market](cache.MemoryBackend)
}
