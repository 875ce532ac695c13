// Package bootstrap wires together the runtime dependencies of the API
// process: database, cache and optional development seeding.
package bootstrap

import (
	"fmt"
	"log/slog"
	"strings"

	"agora/internal/cache"
	"agora/internal/config"
	"agora/internal/database"
	"agora/internal/models"
	"agora/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedDemoData populates an empty development database with demo
	// users, posts and comments.
	SeedDemoData bool
}

// InitRuntime connects to the database and Redis. The Redis client may be
// nil when the cache is unreachable; callers must treat it as optional.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedDemoData {
		if err := seedDemoData(cfg, db); err != nil {
			return nil, nil, fmt.Errorf("demo data seeding failed: %w", err)
		}
	}

	return db, r, nil
}

// seedDemoData runs the demo seeder once, in development only, when the
// users table is still empty. It never touches an already-populated
// database.
func seedDemoData(cfg *config.Config, db *gorm.DB) error {
	if cfg == nil || !strings.EqualFold(cfg.Env, "development") {
		return nil
	}

	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		slog.Debug("skipping demo seed, database already populated", "users", userCount)
		return nil
	}

	slog.Info("seeding demo data into empty development database")
	return seed.Run(db, seed.Options{})
}
