package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-booking/internal/logging"
)

const pointsTTL = 5 * time.Minute

// PointsCache is a read-through cache for loyalty balances. The database is
// the source of truth; every credit or redemption invalidates the entry.
type PointsCache struct {
	client *redis.Client
}

func NewPointsCache(client *redis.Client) *PointsCache {
	return &PointsCache{client: client}
}

func key(userID uint) string {
	return fmt.Sprintf("loyalty:points:%d", userID)
}

// Get returns (points, true) on a hit. Redis errors degrade to a miss.
func (p *PointsCache) Get(ctx context.Context, userID uint) (int, bool) {
	val, err := p.client.Get(ctx, key(userID)).Result()
	if err != nil {
		if err != redis.Nil {
			logging.L().Warn("points cache read failed", zap.Error(err))
		}
		return 0, false
	}

	points, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return points, true
}

func (p *PointsCache) Set(ctx context.Context, userID uint, points int) {
	if err := p.client.Set(ctx, key(userID), points, pointsTTL).Err(); err != nil {
		logging.L().Warn("points cache write failed", zap.Error(err))
	}
}

func (p *PointsCache) Invalidate(ctx context.Context, userID uint) {
	if err := p.client.Del(ctx, key(userID)).Err(); err != nil {
		logging.L().Warn("points cache invalidation failed", zap.Error(err))
	}
}
