package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// redisClient 在 Cache 之上加入連線檢查所需的 Ping，測試以假實作替換。
type redisClient interface {
	Cache
	Ping(ctx context.Context) *redis.StatusCmd
}

// redisNewClient 建立底層 redis client，測試可覆寫此變數避免真實連線。
var redisNewClient = func(opt *redis.Options) redisClient {
	return redis.NewClient(opt)
}

// NewRedisClient 建立 Redis 連線，確認連得上才回傳
// *redis.Client 直接滿足 Cache；目前唯一的用途是令牌黑名單 (service.RedisBlacklist)
func NewRedisClient(addr string, password string, db int) (Cache, error) {
	client := redisNewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
