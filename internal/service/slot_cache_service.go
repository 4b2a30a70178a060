package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mediconnect/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis key prefix for cached per-doctor day views
	slotCacheKeyPrefix = "slots"

	// Cached day views are short-lived; bookings invalidate them anyway,
	// the TTL only bounds staleness after missed invalidations.
	slotCacheTTL = 5 * time.Minute
)

// SlotCacheService caches the availability day view (all slots for one
// doctor/date) in Redis. The database stays authoritative: every write path
// invalidates the affected key, and a cache miss simply falls through.
type SlotCacheService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewSlotCacheService(redisClient *redis.Client, log *logrus.Logger) *SlotCacheService {
	return &SlotCacheService{
		redisClient: redisClient,
		log:         log,
	}
}

func slotCacheKey(doctorID uuid.UUID, date time.Time) string {
	return fmt.Sprintf("%s:%s:%s", slotCacheKeyPrefix, doctorID.String(), date.Format("2006-01-02"))
}

// Get returns the cached day view, or nil on miss or any Redis failure.
func (s *SlotCacheService) Get(ctx context.Context, doctorID uuid.UUID, date time.Time) *dto.SlotListResponse {
	raw, err := s.redisClient.Get(ctx, slotCacheKey(doctorID, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warnf("Slot cache read failed: %+v", err)
		}
		return nil
	}

	var cached dto.SlotListResponse
	if err := json.Unmarshal(raw, &cached); err != nil {
		s.log.Warnf("Slot cache entry corrupt, dropping: %+v", err)
		s.Invalidate(ctx, doctorID, date)
		return nil
	}
	return &cached
}

// Set stores the day view. Failures are logged and ignored; the cache is an
// optimization, not a source of truth.
func (s *SlotCacheService) Set(ctx context.Context, doctorID uuid.UUID, date time.Time, view *dto.SlotListResponse) {
	raw, err := json.Marshal(view)
	if err != nil {
		s.log.Warnf("Slot cache marshal failed: %+v", err)
		return
	}
	if err := s.redisClient.Set(ctx, slotCacheKey(doctorID, date), raw, slotCacheTTL).Err(); err != nil {
		s.log.Warnf("Slot cache write failed: %+v", err)
	}
}

// Invalidate drops the cached day view after any slot or booking mutation.
func (s *SlotCacheService) Invalidate(ctx context.Context, doctorID uuid.UUID, date time.Time) {
	if err := s.redisClient.Del(ctx, slotCacheKey(doctorID, date)).Err(); err != nil {
		s.log.Warnf("Slot cache invalidation failed: %+v", err)
	}
}

// InvalidateRange drops all cached day views in [from, to] inclusive, used
// after batch generation or bulk slot deletion.
func (s *SlotCacheService) InvalidateRange(ctx context.Context, doctorID uuid.UUID, from, to time.Time) {
	var keys []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		keys = append(keys, slotCacheKey(doctorID, d))
	}
	if len(keys) == 0 {
		return
	}
	if err := s.redisClient.Del(ctx, keys...).Err(); err != nil {
		s.log.Warnf("Slot cache range invalidation failed: %+v", err)
	}
}
