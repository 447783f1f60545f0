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

// SearchBookings 查询航班/酒店/巴士的 mock 候选
// POST /v1/bookings/search
func SearchBookings(ctx context.Context, c *app.RequestContext) {
	if _, ok := middleware.GetUserID(ctx, c); !ok {
		response.Error(ctx, c, errors.Unauthenticated)
		return
	}

	var req model.SearchBookingsRequest
	if err := c.Bind(&req); err != nil {
		response.BindError(ctx, c, err)
		return
	}

	result, err := service.Booking().Search(ctx, req.Type, req.Query)
	if err != nil {
		response.Error(ctx, c, err)
		return
	}

	response.Success(ctx, c, result)
}
