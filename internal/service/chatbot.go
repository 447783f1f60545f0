package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"VoyaGo/internal/catalog"
	"VoyaGo/internal/model"
	"VoyaGo/pkg/logger"
	"VoyaGo/pkg/metrics"
	"VoyaGo/pkg/translate"
)

// 回给对话前端的固定话术。翻译失败不向用户暴露底层错误。
const (
	HelpMessage = "I can help you with travel planning, expense tracking, and translating phrases. " +
		"I can also answer questions about using VoyaGo. What would you like help with?"

	DefaultMessage = "I'm here to help with your travel needs! " +
		"You can ask me for help or ask me to translate phrases to different languages."

	MissingParamsMessage = "Sorry, I need both text to translate and a target language."

	TranslateFailedMessage = "Sorry, I couldn't translate that right now. Please try again later."

	InternalErrorMessage = "Sorry, I encountered an error processing your request."
)

// ChatbotService Dialogflow webhook 的意图分发。
// 所有失败路径都折叠成正常的 fulfillment 文本，不向上抛错。
type ChatbotService struct{}

var (
	chatbotService *ChatbotService
	chatbotOnce    sync.Once
)

func Chatbot() *ChatbotService {
	chatbotOnce.Do(func() {
		chatbotService = &ChatbotService{}
	})

	return chatbotService
}

// Dispatch 按意图名路由并返回 fulfillment 文本。
func (s *ChatbotService) Dispatch(ctx context.Context, req *model.WebhookRequest) string {
	intent := req.QueryResult.Intent.DisplayName

	switch intent {
	case "Translate":
		return s.handleTranslate(ctx, req.QueryResult.Parameters)
	case "Help":
		return HelpMessage
	default:
		logger.Logger.Info("Unhandled intent",
			zap.String("intent", intent),
		)
		return DefaultMessage
	}
}

func (s *ChatbotService) handleTranslate(ctx context.Context, params model.IntentParameters) string {
	text := params.Text
	language := params.Language

	logger.Logger.Info("Translation request",
		zap.String("text", text),
		zap.String("language", language),
	)

	if text == "" || language == "" {
		return MissingParamsMessage
	}

	// 语言名转码，不认识的名字回落 "en"
	code := catalog.LanguageCode(language)

	start := time.Now()
	translation, err := translate.Translate(ctx, text, code)
	metrics.RecordTranslation(ctx, code, time.Since(start).Seconds(), err != nil)

	if err != nil {
		// 单次调用不重试，底层错误只记日志
		logger.Logger.Error("Translation failed",
			zap.String("target", code),
			zap.Error(err),
		)
		return TranslateFailedMessage
	}

	logger.Logger.Info("Translation result",
		zap.String("translation", translation),
	)

	return fmt.Sprintf("\"%s\" in %s is: \"%s\"", text, language, translation)
}
