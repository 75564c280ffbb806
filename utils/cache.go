// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"evermore/config"

	"github.com/go-redis/redis/v8"
)

// AuthCacheClient is the dedicated client for revoked-token caching.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for revoked-token caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for revoked-token caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// RevokeToken records a token hash in the auth cache until the token's
// natural expiry, after which the denylist entry is reclaimed.
func RevokeToken(ctx context.Context, tokenHash string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return GetAuthCacheClient().Set(ctx, "revoked:"+tokenHash, "1", ttl).Err()
}

// IsTokenRevoked reports whether a token hash is present in the denylist.
func IsTokenRevoked(ctx context.Context, tokenHash string) (bool, error) {
	n, err := GetAuthCacheClient().Exists(ctx, "revoked:"+tokenHash).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
