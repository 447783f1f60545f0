package model

import "time"

// BookingType 预订类型，闭集
type BookingType string

const (
	BookingFlight BookingType = "flight"
	BookingHotel  BookingType = "hotel"
	BookingBus    BookingType = "bus"
)

// Valid 判断是否为支持的预订类型
func (t BookingType) Valid() bool {
	switch t {
	case BookingFlight, BookingHotel, BookingBus:
		return true
	}
	return false
}

// FlightOption 一条候选航班。ID 仅在目录内稳定，不做全局唯一。
type FlightOption struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"`
	DepartureTime time.Time `json:"departureTime"`
	ArrivalTime   time.Time `json:"arrivalTime"`
	Duration      string    `json:"duration"`
	Airline       string    `json:"airline"`
	Aircraft      string    `json:"aircraft"`
	BookingClass  string    `json:"bookingClass"`
}

// HotelOption 一条候选酒店。
type HotelOption struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Location      string    `json:"location"`
	PricePerNight float64   `json:"pricePerNight"`
	Currency      string    `json:"currency"`
	CheckInDate   time.Time `json:"checkInDate"`
	CheckOutDate  time.Time `json:"checkOutDate"`
	Rating        float64   `json:"rating"`
	Amenities     []string  `json:"amenities"`
	RoomType      string    `json:"roomType"`
	Description   string    `json:"description"`
}

// BusOption 一条候选巴士班次。
type BusOption struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	Price         float64   `json:"price"`
	Currency      string    `json:"currency"`
	DepartureTime time.Time `json:"departureTime"`
	ArrivalTime   time.Time `json:"arrivalTime"`
	Duration      string    `json:"duration"`
	Operator      string    `json:"operator"`
	BusType       string    `json:"busType"`
	Amenities     []string  `json:"amenities"`
}

// SearchBookingsRequest 预订搜索入参。
type SearchBookingsRequest struct {
	Type  string `json:"type"`
	Query string `json:"query"`
}

// SearchResponse 预订搜索出参。
// Results 的元素类型由 SearchType 决定（航班/酒店/巴士三选一）；
// query 原样回显，不参与过滤。
type SearchResponse struct {
	Results     interface{} `json:"results"`
	SearchQuery string      `json:"searchQuery"`
	SearchType  string      `json:"searchType"`
	Timestamp   time.Time   `json:"timestamp"`
}
