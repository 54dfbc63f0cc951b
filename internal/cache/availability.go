package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/config"
	"github.com/Wesley-Alves-Desenv/SalaoElianeMelo/internal/logger"
)

// AvailabilityCache guarda o resultado da disponibilidade por
// (profissional, serviço, data). Best-effort: erro de Redis nunca
// impede o cálculo, só o torna mais caro.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

type CachedAvailability struct {
	Closed bool     `json:"closed"`
	Slots  []string `json:"slots"`
}

func New(cfg *config.Config) *AvailabilityCache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Get().Warn("redis unavailable, availability cache disabled", zap.Error(err))
		return &AvailabilityCache{}
	}

	return &AvailabilityCache{
		client: client,
		ttl:    2 * time.Minute,
	}
}

func slotKey(professionalID, serviceID uint, date string) string {
	return fmt.Sprintf("availability:%d:%d:%s", professionalID, serviceID, date)
}

func dayPattern(professionalID uint, date string) string {
	return fmt.Sprintf("availability:%d:*:%s", professionalID, date)
}

func (c *AvailabilityCache) Get(ctx context.Context, professionalID, serviceID uint, date string) (*CachedAvailability, bool) {
	if c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, slotKey(professionalID, serviceID, date)).Result()
	if err != nil {
		return nil, false
	}

	var cached CachedAvailability
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		return nil, false
	}
	return &cached, true
}

func (c *AvailabilityCache) Set(ctx context.Context, professionalID, serviceID uint, date string, value CachedAvailability) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, slotKey(professionalID, serviceID, date), raw, c.ttl).Err(); err != nil {
		logger.Get().Debug("availability cache set failed", zap.Error(err))
	}
}

// InvalidateAll limpa o cache inteiro. Usado quando o horário de
// funcionamento muda, pois afeta todos os dias e profissionais.
func (c *AvailabilityCache) InvalidateAll(ctx context.Context) {
	if c.client == nil {
		return
	}

	keys, err := c.client.Keys(ctx, "availability:*").Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.Get().Debug("availability cache flush failed", zap.Error(err))
	}
}

// InvalidateDay apaga todas as entradas da profissional naquela data.
// Chamado após qualquer escrita que mude a agenda do dia.
func (c *AvailabilityCache) InvalidateDay(ctx context.Context, professionalID uint, date string) {
	if c.client == nil {
		return
	}

	keys, err := c.client.Keys(ctx, dayPattern(professionalID, date)).Result()
	if err != nil || len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.Get().Debug("availability cache invalidation failed", zap.Error(err))
	}
}
