package translate

import (
	"context"
	"fmt"

	gtranslate "cloud.google.com/go/translate"
	"golang.org/x/text/language"

	"VoyaGo/pkg/logger"

	"go.uber.org/zap"
)

// GoogleClient 基于 Cloud Translation v2 的翻译客户端
type GoogleClient struct {
	client *gtranslate.Client
}

// NewGoogleClient 创建 Google 翻译客户端
// 凭据通过环境变量自动获取，需要设置 GOOGLE_APPLICATION_CREDENTIALS
// 指向服务账号的 key 文件
func NewGoogleClient(ctx context.Context) (*GoogleClient, error) {
	client, err := gtranslate.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create google translate client: %w", err)
	}

	return &GoogleClient{
		client: client,
	}, nil
}

// Translate 调用 Cloud Translation v2 翻译 text
func (c *GoogleClient) Translate(ctx context.Context, text, targetCode string) (string, error) {
	target, err := language.Parse(targetCode)
	if err != nil {
		return "", fmt.Errorf("invalid target language code %q: %w", targetCode, err)
	}

	resp, err := c.client.Translate(ctx, []string{text}, target, nil)
	if err != nil {
		logger.Logger.Error("Failed to call translation API",
			zap.String("target", targetCode),
			zap.Error(err),
		)
		return "", fmt.Errorf("failed to translate text: %w", err)
	}

	if len(resp) == 0 {
		return "", fmt.Errorf("translation API returned no result for target %q", targetCode)
	}

	return resp[0].Text, nil
}

func (c *GoogleClient) Close() error {
	return c.client.Close()
}
