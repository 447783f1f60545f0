package handler

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"VoyaGo/internal/middleware"
	"VoyaGo/internal/model"
	"VoyaGo/internal/service"
	"VoyaGo/pkg/errors"
	"VoyaGo/pkg/response"
)

// GenerateItinerary 根据 prompt 生成 mock 行程
// POST /v1/ai/itinerary
func GenerateItinerary(ctx context.Context, c *app.RequestContext) {
	if _, ok := middleware.GetUserID(ctx, c); !ok {
		response.Error(ctx, c, errors.Unauthenticated)
		return
	}

	var req model.GenerateItineraryRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	itinerary, err := service.Itinerary().Generate(ctx, req.Prompt)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, model.ItineraryResponse{Itinerary: itinerary})
}
