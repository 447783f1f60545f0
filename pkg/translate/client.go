package translate

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"VoyaGo/config"
	"VoyaGo/pkg/errors"
	"VoyaGo/pkg/logger"
)

// Client 文本翻译客户端接口
type Client interface {
	// Translate 将 text 翻译为 targetCode 指定的语言
	// targetCode: ISO 639-1 语言码，如 "es"、"fr"
	// 单次调用，不做重试；任何失败统一视为翻译失败由调用方兜底
	Translate(ctx context.Context, text, targetCode string) (string, error)

	// Close 释放底层连接
	Close() error
}

var (
	translateClient Client
	translateOnce   sync.Once
	translateErr    error
)

// Init 初始化翻译客户端
func Init(ctx context.Context) error {
	translateOnce.Do(func() {
		cfg := config.Cfg

		switch cfg.TranslateProvider {
		case "google":
			translateClient, translateErr = NewGoogleClient(ctx)
		case "mock":
			translateClient = NewMockClient()
			translateErr = nil
		default:
			translateErr = fmt.Errorf("%w: %s", errors.UnsupportedTranslateProvider, cfg.TranslateProvider)
		}

		if translateErr != nil {
			logger.Logger.Error("Failed to initialize translate client", zap.Error(translateErr))
			return
		}

		logger.Logger.Info("Translate client initialized successfully",
			zap.String("provider", cfg.TranslateProvider),
		)
	})

	return translateErr
}

func GetClient() Client {
	if translateClient == nil {
		panic("Translate client not initialized, call translate.Init() first")
	}
	return translateClient
}

// SetClient 替换全局客户端，测试用
func SetClient(c Client) {
	translateClient = c
}

func Translate(ctx context.Context, text, targetCode string) (string, error) {
	return GetClient().Translate(ctx, text, targetCode)
}

func Close() error {
	if translateClient == nil {
		return nil
	}
	return translateClient.Close()
}
