package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/schedule"
)

// AvailabilityCache guarda snapshots de disponibilidade por (médico, data).
// Snapshot é best-effort: falha de cache degrada para leitura direta,
// nunca para erro.
type AvailabilityCache interface {
	GetSlots(ctx context.Context, doctorID uint, date string) ([]schedule.Slot, bool)
	SetSlots(ctx context.Context, doctorID uint, date string, slots []schedule.Slot)
	InvalidateDoctor(ctx context.Context, doctorID uint)
}

// ===============================
// Redis
// ===============================

const slotTTL = 60 * time.Second

type RedisAvailabilityCache struct {
	rdb *redis.Client
}

func NewRedisAvailabilityCache(addr, password string) *RedisAvailabilityCache {
	return &RedisAvailabilityCache{
		rdb: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
	}
}

func slotKey(doctorID uint, date string) string {
	return fmt.Sprintf("avail:%d:%s", doctorID, date)
}

func indexKey(doctorID uint) string {
	return fmt.Sprintf("avail:keys:%d", doctorID)
}

func (c *RedisAvailabilityCache) GetSlots(
	ctx context.Context,
	doctorID uint,
	date string,
) ([]schedule.Slot, bool) {

	raw, err := c.rdb.Get(ctx, slotKey(doctorID, date)).Bytes()
	if err != nil {
		return nil, false
	}

	var slots []schedule.Slot
	if err := json.Unmarshal(raw, &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *RedisAvailabilityCache) SetSlots(
	ctx context.Context,
	doctorID uint,
	date string,
	slots []schedule.Slot,
) {

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	key := slotKey(doctorID, date)

	pipe := c.rdb.TxPipeline()
	pipe.Set(ctx, key, raw, slotTTL)
	pipe.SAdd(ctx, indexKey(doctorID), key)
	pipe.Expire(ctx, indexKey(doctorID), 2*slotTTL)
	_, _ = pipe.Exec(ctx)
}

func (c *RedisAvailabilityCache) InvalidateDoctor(
	ctx context.Context,
	doctorID uint,
) {

	keys, err := c.rdb.SMembers(ctx, indexKey(doctorID)).Result()
	if err == nil && len(keys) > 0 {
		c.rdb.Del(ctx, keys...)
	}
	c.rdb.Del(ctx, indexKey(doctorID))
}

// ===============================
// No-op (sem redis configurado / testes)
// ===============================

type NoopAvailabilityCache struct{}

func NewNoopAvailabilityCache() *NoopAvailabilityCache {
	return &NoopAvailabilityCache{}
}

func (NoopAvailabilityCache) GetSlots(context.Context, uint, string) ([]schedule.Slot, bool) {
	return nil, false
}

func (NoopAvailabilityCache) SetSlots(context.Context, uint, string, []schedule.Slot) {}

func (NoopAvailabilityCache) InvalidateDoctor(context.Context, uint) {}

var (
	_ AvailabilityCache = (*RedisAvailabilityCache)(nil)
	_ AvailabilityCache = (*NoopAvailabilityCache)(nil)
)
