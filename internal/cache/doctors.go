package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/itabaza/hms-api/internal/config"
	"github.com/itabaza/hms-api/internal/models"
)

const (
	availableDoctorsKey = "doctors:available"
	availableDoctorsTTL = 60 * time.Second
)

// DoctorCache keeps the available-doctors listing in redis for a short TTL.
// Every failure degrades to a cache miss; the listing always has the DB as
// its source of truth.
type DoctorCache struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewDoctorCache(cfg config.RedisConfig, log *zap.Logger) *DoctorCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn("unable to reach redis, doctor cache disabled", zap.Error(err))
		return &DoctorCache{rdb: nil, log: log}
	}

	return &DoctorCache{rdb: rdb, log: log}
}

func (c *DoctorCache) GetAvailable(ctx context.Context) ([]models.Doctor, bool) {
	if c.rdb == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, availableDoctorsKey).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("doctor cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var doctors []models.Doctor
	if err := json.Unmarshal([]byte(raw), &doctors); err != nil {
		return nil, false
	}
	return doctors, true
}

func (c *DoctorCache) SetAvailable(ctx context.Context, doctors []models.Doctor) {
	if c.rdb == nil {
		return
	}

	raw, err := json.Marshal(doctors)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, availableDoctorsKey, raw, availableDoctorsTTL).Err(); err != nil {
		c.log.Warn("doctor cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached listing. Called whenever a doctor's approval
// or availability changes.
func (c *DoctorCache) Invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}

	if err := c.rdb.Del(ctx, availableDoctorsKey).Err(); err != nil {
		c.log.Warn("doctor cache invalidation failed", zap.Error(err))
	}
}
