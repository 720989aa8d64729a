package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Counter 对固定窗口内的请求计数
type Counter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// counterStore 是 RedisCounter 用到的 Redis 命令子集，*redis.Client 满足该接口
type counterStore interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	PExpire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RedisCounter 使用 Redis INCR + PEXPIRE 实现 Counter
type RedisCounter struct {
	store counterStore
	close func() error
}

// NewRedisCounter 解析 redis URL 并验证连通性
func NewRedisCounter(ctx context.Context, url string) (*RedisCounter, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	rdb := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisCounter{store: rdb, close: rdb.Close}, nil
}

// Incr 增加计数，窗口内第一次计数时设置过期时间。
// 过期时间设置失败时返回错误，由调用方放行本次请求。
func (r *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := r.store.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := r.store.PExpire(ctx, key, window+time.Second).Err(); err != nil {
			return 0, fmt.Errorf("set expiry for %s: %w", key, err)
		}
	}
	return count, nil
}

// Close 关闭 Redis 连接
func (r *RedisCounter) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}

// RateLimit 按客户端 IP 限制固定窗口内的请求数。
// 计数失败时放行请求，只记录日志。
func RateLimit(counter Counter, scope string, limit int64, window time.Duration, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if counter == nil || ip == "" {
			c.Next()
			return
		}

		bucket := time.Now().UnixNano() / int64(window)
		key := fmt.Sprintf("creatorpage:rate_limit:%s:%s:%d", scope, ip, bucket)

		count, err := counter.Incr(c.Request.Context(), key, window)
		if err != nil {
			log.Warn("rate limit counter unavailable", zap.String("scope", scope), zap.Error(err))
			c.Next()
			return
		}

		if count > limit {
			c.Header("Retry-After", fmt.Sprintf("%d", int(window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "提交过于频繁，请稍后再试"})
			return
		}

		c.Next()
	}
}
