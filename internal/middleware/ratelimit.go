package middleware

import (
	"context"
	"strconv"
	"time"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"go.uber.org/zap"

	"VoyaGo/config"
	"VoyaGo/pkg/logger"
	"VoyaGo/pkg/response"
	"VoyaGo/storage/redis"
)

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	// 时间窗口（秒）
	Window int
	// 时间窗口内最大请求数
	MaxRequests int
	// 限流键前缀
	KeyPrefix string
	// 是否按用户ID限流（需要认证）
	ByUserID bool
	// 阻塞时长（秒），超过限制后禁止访问的时间
	BlockDuration int
	// 错误消息
	ErrorMessage string
}

// DefaultRateLimitConfig 默认限流配置，从环境变量取阈值
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Window:        config.Cfg.RateLimitWindow,
		MaxRequests:   config.Cfg.RateLimitMax,
		KeyPrefix:     "rate:limit",
		ByUserID:      true,
		BlockDuration: config.Cfg.RateLimitBlock,
		ErrorMessage:  "Too many requests, please try again later",
	}
}

// RateLimiter 限流器
type RateLimiter struct {
	config RateLimitConfig
}

func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		config: cfg,
	}
}

// RateLimitMiddleware 固定窗口限流中间件。
// Redis 不可用时直接放行：限流是保护手段，不能成为单点。
func RateLimitMiddleware() app.HandlerFunc {
	limiter := NewRateLimiter(DefaultRateLimitConfig())
	return limiter.Middleware()
}

func (rl *RateLimiter) Middleware() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if !config.Cfg.RateLimitEnabled {
			c.Next(ctx)
			return
		}

		client := redis.Client()
		if client == nil {
			c.Next(ctx)
			return
		}

		key := rl.buildKey(ctx, c)
		blockKey := key + ":blocked"

		// 已封禁直接拒绝
		if exists, err := client.Exists(ctx, blockKey).Result(); err == nil && exists > 0 {
			rl.reject(ctx, c)
			return
		}

		count, err := client.Incr(ctx, key).Result()
		if err != nil {
			logger.Logger.Warn("Rate limit check failed, allowing request",
				zap.Error(err),
			)
			c.Next(ctx)
			return
		}

		if count == 1 {
			client.Expire(ctx, key, time.Duration(rl.config.Window)*time.Second)
		}

		if count > int64(rl.config.MaxRequests) {
			client.Set(ctx, blockKey, "1", time.Duration(rl.config.BlockDuration)*time.Second)
			logger.Logger.Warn("Rate limit exceeded",
				zap.String("key", key),
				zap.Int64("count", count),
			)
			rl.reject(ctx, c)
			return
		}

		c.Next(ctx)
	}
}

func (rl *RateLimiter) buildKey(ctx context.Context, c *app.RequestContext) string {
	parts := []string{rl.config.KeyPrefix, c.ClientIP()}

	if rl.config.ByUserID {
		if userID, ok := GetUserID(ctx, c); ok {
			parts = append(parts, userID)
		}
	}

	return redis.Key(parts...)
}

func (rl *RateLimiter) reject(ctx context.Context, c *app.RequestContext) {
	c.Header("Retry-After", strconv.Itoa(rl.config.BlockDuration))
	c.JSON(consts.StatusTooManyRequests, response.ErrorResponse{
		Error: response.ErrorDetail{
			Code:    "RATE_LIMITED",
			Message: rl.config.ErrorMessage,
		},
	})
	c.Abort()
}
