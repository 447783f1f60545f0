package translate

import (
	"context"
	"errors"
	"sync"
)

type MockCall struct {
	Text       string
	TargetCode string
}

// MockClient 可配置的翻译客户端 mock，实现 Client 接口
type MockClient struct {
	mu    sync.Mutex
	Calls []MockCall

	// FailNext 置为 true 时，下一次调用返回 mock 错误并自动复位
	FailNext bool

	// Result 非空时作为下一次调用的返回值，否则返回原文加标记
	Result string
}

func NewMockClient() *MockClient {
	return &MockClient{
		Calls: make([]MockCall, 0),
	}
}

func (m *MockClient) Translate(ctx context.Context, text, targetCode string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{
		Text:       text,
		TargetCode: targetCode,
	})

	if m.FailNext {
		m.FailNext = false
		return "", errors.New("mock translation failure")
	}

	if m.Result != "" {
		return m.Result, nil
	}

	return "[" + targetCode + "] " + text, nil
}

func (m *MockClient) Close() error {
	return nil
}
