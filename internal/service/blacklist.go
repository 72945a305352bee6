// File: internal/service/blacklist.go
package service

import (
	"context"
	"time"

	"studentdrop/internal/cache"
)

// TokenBlacklist 為令牌撤銷的擴充點
// v1 的 logout 維持無狀態，不撤銷任何令牌，預設接 NoopBlacklist；
// 之後要支援撤銷時換上 RedisBlacklist 即可，驗證流程的契約不變
type TokenBlacklist interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
	IsRevoked(ctx context.Context, token string) (bool, error)
}

// NoopBlacklist 永遠視令牌為未撤銷
type NoopBlacklist struct{}

func (NoopBlacklist) Revoke(context.Context, string, time.Duration) error { return nil }

func (NoopBlacklist) IsRevoked(context.Context, string) (bool, error) { return false, nil }

const blacklistKeyPrefix = "blacklist:"

// RedisBlacklist 以 Redis 記錄被撤銷令牌，TTL 對齊令牌剩餘效期
type RedisBlacklist struct {
	cache cache.Cache
}

func NewRedisBlacklist(c cache.Cache) *RedisBlacklist {
	return &RedisBlacklist{cache: c}
}

func (b *RedisBlacklist) Revoke(ctx context.Context, token string, ttl time.Duration) error {
	return b.cache.Set(ctx, blacklistKeyPrefix+token, "1", ttl).Err()
}

func (b *RedisBlacklist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := b.cache.Exists(ctx, blacklistKeyPrefix+token).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
