package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"VoyaGo/internal/catalog"
	"VoyaGo/internal/model"
	"VoyaGo/pkg/errors"
	"VoyaGo/pkg/logger"
	"VoyaGo/pkg/metrics"
)

// BookingService mock 预订搜索。候选目录是静态的，
// 每次请求只把目录里的相对偏移换算成以当前时刻为基准的时间戳。
type BookingService struct {
	now func() time.Time
}

var (
	bookingService *BookingService
	bookingOnce    sync.Once
)

func Booking() *BookingService {
	bookingOnce.Do(func() {
		bookingService = &BookingService{now: time.Now}
	})

	return bookingService
}

// Search 返回指定类型的候选目录。query 原样回显，不参与过滤。
func (s *BookingService) Search(ctx context.Context, bookingType, query string) (*model.SearchResponse, error) {
	if bookingType == "" || query == "" {
		return nil, errors.SearchFieldsMissing
	}

	logger.Logger.Info("Booking search request",
		zap.String("type", bookingType),
		zap.String("query", query),
	)

	bt := model.BookingType(bookingType)
	if !bt.Valid() {
		return nil, errors.BookingTypeInvalid
	}

	now := s.now()

	var (
		results interface{}
		count   int
	)

	switch bt {
	case model.BookingFlight:
		flights := flightResults(now)
		results, count = flights, len(flights)
	case model.BookingHotel:
		hotels := hotelResults(now)
		results, count = hotels, len(hotels)
	case model.BookingBus:
		buses := busResults(now)
		results, count = buses, len(buses)
	}

	logger.Logger.Info("Returning booking results",
		zap.String("type", bookingType),
		zap.Int("count", count),
	)
	metrics.RecordSearch(ctx, bookingType)

	return &model.SearchResponse{
		Results:     results,
		SearchQuery: query,
		SearchType:  bookingType,
		Timestamp:   now,
	}, nil
}

func flightResults(now time.Time) []model.FlightOption {
	results := make([]model.FlightOption, 0, len(catalog.Flights))
	for _, seed := range catalog.Flights {
		results = append(results, model.FlightOption{
			ID:            seed.ID,
			Title:         seed.Title,
			From:          seed.From,
			To:            seed.To,
			Price:         seed.Price,
			Currency:      seed.Currency,
			DepartureTime: now.Add(seed.DepartIn),
			ArrivalTime:   now.Add(seed.ArriveIn),
			Duration:      seed.Duration,
			Airline:       seed.Airline,
			Aircraft:      seed.Aircraft,
			BookingClass:  seed.BookingClass,
		})
	}
	return results
}

func hotelResults(now time.Time) []model.HotelOption {
	results := make([]model.HotelOption, 0, len(catalog.Hotels))
	for _, seed := range catalog.Hotels {
		results = append(results, model.HotelOption{
			ID:            seed.ID,
			Title:         seed.Title,
			Location:      seed.Location,
			PricePerNight: seed.PricePerNight,
			Currency:      seed.Currency,
			CheckInDate:   now.Add(seed.CheckInIn),
			CheckOutDate:  now.Add(seed.CheckOutIn),
			Rating:        seed.Rating,
			Amenities:     seed.Amenities,
			RoomType:      seed.RoomType,
			Description:   seed.Description,
		})
	}
	return results
}

func busResults(now time.Time) []model.BusOption {
	results := make([]model.BusOption, 0, len(catalog.Buses))
	for _, seed := range catalog.Buses {
		results = append(results, model.BusOption{
			ID:            seed.ID,
			Title:         seed.Title,
			From:          seed.From,
			To:            seed.To,
			Price:         seed.Price,
			Currency:      seed.Currency,
			DepartureTime: now.Add(seed.DepartIn),
			ArrivalTime:   now.Add(seed.ArriveIn),
			Duration:      seed.Duration,
			Operator:      seed.Operator,
			BusType:       seed.BusType,
			Amenities:     seed.Amenities,
		})
	}
	return results
}
