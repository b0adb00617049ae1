package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"

	"github.com/barberia-app/barberia-api/internal/dto"
)

// SlotCache keeps the available-slots projection per (barber, date) in
// redis for a short TTL. The projection is advisory display data; the
// booking transaction never trusts it, so a stale entry costs at worst one
// 409 for the client. A nil cache or nil client disables caching.
type SlotCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewSlotCache(rdb *redis.Client, ttl time.Duration) *SlotCache {
	if rdb == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &SlotCache{rdb: rdb, ttl: ttl}
}

func slotKey(barberID uint, date string) string {
	return fmt.Sprintf("slots:%d:%s", barberID, date)
}

func (c *SlotCache) Get(
	ctx context.Context,
	barberID uint,
	date string,
) (*dto.AvailableSlotsResponse, bool) {

	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, slotKey(barberID, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var resp dto.AvailableSlotsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, false
	}
	return &resp, true
}

func (c *SlotCache) Set(
	ctx context.Context,
	barberID uint,
	date string,
	resp *dto.AvailableSlotsResponse,
) {
	if c == nil || resp == nil {
		return
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, slotKey(barberID, date), raw, c.ttl).Err(); err != nil {
		log.Debug().Err(err).Msg("slot cache set failed")
	}
}

// Invalidate drops the cached grid after any write that changes slot
// occupancy (new booking, cancellation).
func (c *SlotCache) Invalidate(ctx context.Context, barberID uint, date string) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, slotKey(barberID, date)).Err(); err != nil {
		log.Debug().Err(err).Msg("slot cache invalidate failed")
	}
}
