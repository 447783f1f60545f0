package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"VoyaGo/config"
	"VoyaGo/internal/handler"
	"VoyaGo/internal/middleware"
)

func Register(h *server.Hertz) {

	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.CORSMiddleware())
	h.Use(middleware.RequestIDMiddleware())
	if config.Cfg.TracingEnabled {
		h.Use(middleware.OpenTelemetryMiddleware())
	}

	// Dialogflow webhook，无鉴权，由对话平台回调
	h.POST("/webhook/dialogflow", handler.DialogflowWebhook)

	v1 := h.Group("/v1")
	v1.Use(middleware.RateLimitMiddleware())
	v1.Use(middleware.AuthMiddleware())
	{
		v1.POST("/ai/itinerary", handler.GenerateItinerary)
		v1.POST("/bookings/search", handler.SearchBookings)
	}
}
