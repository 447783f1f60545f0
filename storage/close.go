package storage

import (
	"context"
	"time"

	"go.uber.org/zap"

	"VoyaGo/pkg/logger"
	"VoyaGo/storage/redis"
)

// Close 优雅关闭所有存储连接
func Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Logger.Info("Closing storage connections...")

	if err := redis.Close(ctx); err != nil {
		logger.Logger.Error("Failed to close Redis connection", zap.Error(err))
	} else {
		logger.Logger.Info("Redis connection closed successfully")
	}
}
