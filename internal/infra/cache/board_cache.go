// Package cache keeps recently computed dashboard alert boards in memory.
package cache

import (
	"log/slog"
	"time"

	"fleetalert/config"
	"fleetalert/internal/domain/constants"
	"fleetalert/internal/domain/entity"
	"fleetalert/internal/domain/service"

	"github.com/coocood/freecache"
	"github.com/goccy/go-json"
)

const keyPrefix = "alerts:board:"

type boardCache struct {
	cache  *freecache.Cache
	ttl    int
	logger *slog.Logger
}

// New creates the dashboard cache, or a no-op cache when caching is disabled.
func New(cfg *config.Config, logger *slog.Logger) service.AlertBoardCache {
	if cfg.Cache == nil || !cfg.Cache.Enabled || cfg.Cache.SizeMB <= 0 {
		logger.Info("Dashboard cache disabled")

		return &noopCache{}
	}

	ttl := max(int(cfg.Cache.TTL/time.Second), 1)

	logger.Info("Dashboard cache initialized",
		slog.Int("sizeMB", cfg.Cache.SizeMB),
		slog.Int("ttlSeconds", ttl),
	)

	return &boardCache{
		// freecache rounds sizes below 512KB up
		cache:  freecache.NewCache(cfg.Cache.SizeMB * 1024 * 1024),
		ttl:    ttl,
		logger: logger,
	}
}

func cacheKey(ref time.Time) []byte {
	return []byte(keyPrefix + ref.Format(constants.DateLayout))
}

// Get returns a copy of the board cached for ref.
func (c *boardCache) Get(ref time.Time) (*entity.AlertBoard, bool) {
	val, err := c.cache.Get(cacheKey(ref))
	if err != nil {
		return nil, false
	}

	var board entity.AlertBoard
	if err := json.Unmarshal(val, &board); err != nil {
		c.logger.Warn("Dropping undecodable dashboard cache entry", slog.Any("error", err))
		c.cache.Del(cacheKey(ref))

		return nil, false
	}

	return &board, true
}

// Set stores board for ref. Degraded boards are never cached.
func (c *boardCache) Set(ref time.Time, board *entity.AlertBoard) {
	if board == nil || board.Degraded {
		return
	}

	val, err := json.Marshal(board)
	if err != nil {
		c.logger.Warn("Failed to encode dashboard board", slog.Any("error", err))

		return
	}

	if err := c.cache.Set(cacheKey(ref), val, c.ttl); err != nil {
		c.logger.Warn("Failed to cache dashboard board", slog.Any("error", err))
	}
}

type noopCache struct{}

func (n *noopCache) Get(_ time.Time) (*entity.AlertBoard, bool) { return nil, false }
func (n *noopCache) Set(_ time.Time, _ *entity.AlertBoard)      {}
