package catalog

import "time"

// 预订候选目录。所有时间字段存的是相对当前时刻的偏移量而不是绝对日期，
// 保证 mock 数据在任何时候查询都落在未来。

const day = 24 * time.Hour

// FlightSeed 航班候选条目。
type FlightSeed struct {
	ID           string
	Title        string
	From         string
	To           string
	Price        float64
	Currency     string
	DepartIn     time.Duration // 距当前时刻的起飞偏移
	ArriveIn     time.Duration // 距当前时刻的落地偏移
	Duration     string
	Airline      string
	Aircraft     string
	BookingClass string
}

// HotelSeed 酒店候选条目。
type HotelSeed struct {
	ID            string
	Title         string
	Location      string
	PricePerNight float64
	Currency      string
	CheckInIn     time.Duration
	CheckOutIn    time.Duration
	Rating        float64
	Amenities     []string
	RoomType      string
	Description   string
}

// BusSeed 巴士候选条目。
type BusSeed struct {
	ID        string
	Title     string
	From      string
	To        string
	Price     float64
	Currency  string
	DepartIn  time.Duration
	ArriveIn  time.Duration
	Duration  string
	Operator  string
	BusType   string
	Amenities []string
}

var Flights = []FlightSeed{
	{
		ID:           "FL-101",
		Title:        "IndiGo 6E-204",
		From:         "Delhi (DEL)",
		To:           "Goa (GOI)",
		Price:        4500.0,
		Currency:     "INR",
		DepartIn:     2 * day,
		ArriveIn:     2*day + 2*time.Hour,
		Duration:     "2h 15m",
		Airline:      "IndiGo",
		Aircraft:     "Airbus A320",
		BookingClass: "Economy",
	},
	{
		ID:           "FL-102",
		Title:        "Vistara UK-847",
		From:         "Delhi (DEL)",
		To:           "Goa (GOI)",
		Price:        5200.0,
		Currency:     "INR",
		DepartIn:     2*day + time.Hour,
		ArriveIn:     2*day + 3*time.Hour,
		Duration:     "2h 30m",
		Airline:      "Vistara",
		Aircraft:     "Boeing 737",
		BookingClass: "Premium Economy",
	},
	{
		ID:           "FL-103",
		Title:        "SpiceJet SG-8456",
		From:         "Delhi (DEL)",
		To:           "Goa (GOI)",
		Price:        3800.0,
		Currency:     "INR",
		DepartIn:     3 * day,
		ArriveIn:     3*day + 2*time.Hour + 15*time.Minute,
		Duration:     "2h 15m",
		Airline:      "SpiceJet",
		Aircraft:     "Boeing 737",
		BookingClass: "Economy",
	},
}

var Hotels = []HotelSeed{
	{
		ID:            "HO-101",
		Title:         "Taj Exotica Resort & Spa",
		Location:      "Benaulim, Goa",
		PricePerNight: 15000.0,
		Currency:      "INR",
		CheckInIn:     2 * day,
		CheckOutIn:    5 * day,
		Rating:        4.8,
		Amenities:     []string{"Wi-Fi", "Pool", "Spa", "Beach Access", "Restaurant"},
		RoomType:      "Deluxe Sea View Room",
		Description:   "Luxury beachfront resort with world-class amenities",
	},
	{
		ID:            "HO-102",
		Title:         "Grand Hyatt Goa",
		Location:      "Bambolim, Goa",
		PricePerNight: 12000.0,
		Currency:      "INR",
		CheckInIn:     2 * day,
		CheckOutIn:    5 * day,
		Rating:        4.6,
		Amenities:     []string{"Wi-Fi", "Pool", "Gym", "Spa", "Business Center"},
		RoomType:      "King Room",
		Description:   "Modern luxury hotel with excellent facilities",
	},
	{
		ID:            "HO-103",
		Title:         "The Leela Goa",
		Location:      "Cavelossim, Goa",
		PricePerNight: 18000.0,
		Currency:      "INR",
		CheckInIn:     2 * day,
		CheckOutIn:    5 * day,
		Rating:        4.9,
		Amenities:     []string{"Wi-Fi", "Pool", "Spa", "Golf Course", "Beach Access", "Fine Dining"},
		RoomType:      "Premier Room",
		Description:   "Ultra-luxury resort with pristine beach and premium services",
	},
}

var Buses = []BusSeed{
	{
		ID:        "BU-101",
		Title:     "Volvo A/C Sleeper",
		From:      "Delhi",
		To:        "Goa",
		Price:     1200.0,
		Currency:  "INR",
		DepartIn:  day,
		ArriveIn:  day + 12*time.Hour,
		Duration:  "12h 30m",
		Operator:  "RedBus",
		BusType:   "A/C Sleeper",
		Amenities: []string{"Wi-Fi", "Charging Point", "Entertainment", "Blanket"},
	},
	{
		ID:        "BU-102",
		Title:     "Mercedes Multi-Axle",
		From:      "Delhi",
		To:        "Goa",
		Price:     1500.0,
		Currency:  "INR",
		DepartIn:  day + time.Hour,
		ArriveIn:  day + 11*time.Hour,
		Duration:  "11h 45m",
		Operator:  "Travels India",
		BusType:   "A/C Semi-Sleeper",
		Amenities: []string{"Wi-Fi", "Charging Point", "Water Bottle", "Snacks"},
	},
}
