package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"go.uber.org/zap"

	"VoyaGo/internal/model"
	"VoyaGo/internal/service"
	"VoyaGo/pkg/logger"
)

// DialogflowWebhook Dialogflow fulfillment 入口
// POST /webhook/dialogflow
//
// 响应形状由 Dialogflow 约定：所有被处理的路径都返回 200 +
// fulfillmentText；只有意外 panic 才落到 500，且响应体仍是同一形状，
// 保证对话前端永远拿到可展示的文本。
func DialogflowWebhook(ctx context.Context, c *app.RequestContext) {
	defer func() {
		if r := recover(); r != nil {
			logger.Logger.Error("Webhook error",
				zap.Any("panic", r),
			)
			c.JSON(consts.StatusInternalServerError, model.FulfillmentResponse{
				FulfillmentText: service.InternalErrorMessage,
			})
		}
	}()

	var req model.WebhookRequest
	if err := c.Bind(&req); err != nil {
		// 解析不了的载荷当作未识别意图处理，不报错给对话前端
		logger.Logger.Warn("Failed to parse webhook payload", zap.Error(err))
		c.JSON(consts.StatusOK, model.FulfillmentResponse{
			FulfillmentText: service.DefaultMessage,
		})
		return
	}

	logger.Logger.Info("Dialogflow webhook called",
		zap.String("intent", req.QueryResult.Intent.DisplayName),
	)

	fulfillment := service.Chatbot().Dispatch(ctx, &req)

	c.JSON(consts.StatusOK, model.FulfillmentResponse{
		FulfillmentText: fulfillment,
	})
}
