package service

import (
	"context"
	"reflect"
	"testing"
	"time"

	"VoyaGo/internal/model"
	"VoyaGo/pkg/errors"
)

func newBookingService() *BookingService {
	return &BookingService{now: fixedClock}
}

func TestSearchValidatesInput(t *testing.T) {
	svc := newBookingService()

	tests := []struct {
		name        string
		bookingType string
		query       string
		wantErr     error
	}{
		{"missing type", "", "goa", errors.SearchFieldsMissing},
		{"missing query", "flight", "", errors.SearchFieldsMissing},
		{"missing both", "", "", errors.SearchFieldsMissing},
		{"unsupported type", "car", "delhi to goa", errors.BookingTypeInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Search(context.Background(), tt.bookingType, tt.query)
			if err != tt.wantErr {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestSearchFlights(t *testing.T) {
	svc := newBookingService()
	now := fixedClock()

	resp, err := svc.Search(context.Background(), "flight", "delhi to goa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	flights, ok := resp.Results.([]model.FlightOption)
	if !ok {
		t.Fatalf("results type = %T, want []model.FlightOption", resp.Results)
	}
	if len(flights) != 3 {
		t.Fatalf("expected 3 flights, got %d", len(flights))
	}

	for _, f := range flights {
		if f.To != "Goa (GOI)" {
			t.Fatalf("flight %s: to = %q", f.ID, f.To)
		}
		if f.Price <= 0 {
			t.Fatalf("flight %s: price = %v", f.ID, f.Price)
		}
		if !f.ArrivalTime.After(f.DepartureTime) {
			t.Fatalf("flight %s: arrival %v not after departure %v", f.ID, f.ArrivalTime, f.DepartureTime)
		}
		if !f.DepartureTime.After(now) {
			t.Fatalf("flight %s: departure %v not in the future", f.ID, f.DepartureTime)
		}
	}

	if want := now.Add(48 * time.Hour); !flights[0].DepartureTime.Equal(want) {
		t.Fatalf("FL-101 departure = %v, want %v", flights[0].DepartureTime, want)
	}
}

func TestSearchHotels(t *testing.T) {
	svc := newBookingService()
	now := fixedClock()

	resp, err := svc.Search(context.Background(), "hotel", "goa beach resort")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hotels, ok := resp.Results.([]model.HotelOption)
	if !ok {
		t.Fatalf("results type = %T, want []model.HotelOption", resp.Results)
	}
	if len(hotels) != 3 {
		t.Fatalf("expected 3 hotels, got %d", len(hotels))
	}

	checkIn := now.Add(2 * 24 * time.Hour)
	checkOut := now.Add(5 * 24 * time.Hour)
	for _, h := range hotels {
		if !h.CheckInDate.Equal(checkIn) {
			t.Fatalf("hotel %s: check-in = %v, want %v", h.ID, h.CheckInDate, checkIn)
		}
		if !h.CheckOutDate.Equal(checkOut) {
			t.Fatalf("hotel %s: check-out = %v, want %v", h.ID, h.CheckOutDate, checkOut)
		}
	}
}

func TestSearchBuses(t *testing.T) {
	svc := newBookingService()

	resp, err := svc.Search(context.Background(), "bus", "delhi to goa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	buses, ok := resp.Results.([]model.BusOption)
	if !ok {
		t.Fatalf("results type = %T, want []model.BusOption", resp.Results)
	}
	if len(buses) != 2 {
		t.Fatalf("expected 2 buses, got %d", len(buses))
	}
}

func TestSearchEchoesRequest(t *testing.T) {
	svc := newBookingService()

	resp, err := svc.Search(context.Background(), "flight", "delhi to goa next week")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.SearchQuery != "delhi to goa next week" {
		t.Fatalf("searchQuery = %q", resp.SearchQuery)
	}
	if resp.SearchType != "flight" {
		t.Fatalf("searchType = %q", resp.SearchType)
	}
	if !resp.Timestamp.Equal(fixedClock()) {
		t.Fatalf("timestamp = %v, want %v", resp.Timestamp, fixedClock())
	}
}

func TestSearchIsRepeatable(t *testing.T) {
	svc := newBookingService()

	first, err := svc.Search(context.Background(), "hotel", "goa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Search(context.Background(), "hotel", "goa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first.Results, second.Results) {
		t.Fatal("identical searches returned different results")
	}
}
