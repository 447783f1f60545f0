package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"VoyaGo/internal/catalog"
	"VoyaGo/pkg/errors"
)

func fixedClock() time.Time {
	return time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)
}

func newItineraryService() *ItineraryService {
	return &ItineraryService{now: fixedClock}
}

func TestGenerateRejectsShortPrompt(t *testing.T) {
	svc := newItineraryService()

	for _, prompt := range []string{"", "abcd", "  hi  "} {
		_, err := svc.Generate(context.Background(), prompt)
		if err != errors.PromptTooShort {
			t.Fatalf("prompt %q: err = %v, want %v", prompt, err, errors.PromptTooShort)
		}
	}
}

func TestGenerateDestinationItinerary(t *testing.T) {
	svc := newItineraryService()

	itinerary, err := svc.Generate(context.Background(), "Plan a beach trip to GOA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var route catalog.DestinationRoute
	for _, r := range catalog.DestinationRoutes {
		if r.Name == "goa" {
			route = r
		}
	}

	if len(itinerary) != len(route.Plan) {
		t.Fatalf("expected %d activities, got %d", len(route.Plan), len(itinerary))
	}
	if itinerary[0].Title != "Arrive in Goa & Check-in" {
		t.Fatalf("first activity = %q", itinerary[0].Title)
	}

	base := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	for i, act := range itinerary {
		if !act.EndTime.After(act.StartTime) {
			t.Fatalf("activity %d: end %v not after start %v", i, act.EndTime, act.StartTime)
		}
		if act.StartTime.Before(base) {
			t.Fatalf("activity %d: start %v before base date %v", i, act.StartTime, base)
		}
		if i > 0 && act.StartTime.Before(itinerary[i-1].StartTime) {
			t.Fatalf("activity %d starts before activity %d", i, i-1)
		}
	}
}

func TestGenerateDestinationPriority(t *testing.T) {
	svc := newItineraryService()

	// 多个目的地命中时按目录声明顺序取第一个
	itinerary, err := svc.Generate(context.Background(), "trip covering goa and kerala")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if itinerary[0].Title != "Arrive in Goa & Check-in" {
		t.Fatalf("expected goa plan, got first activity %q", itinerary[0].Title)
	}
}

func TestGenerateGenericItinerary(t *testing.T) {
	svc := newItineraryService()

	tests := []struct {
		prompt string
		days   int
	}{
		{"a 2 day trip somewhere new", 2},
		{"3-day adventure anywhere", 3},
		{"plan a 5 day getaway", 5},
		{"a week in the alps", 7},
		{"surprise me please", 1},
	}

	for _, tt := range tests {
		itinerary, err := svc.Generate(context.Background(), tt.prompt)
		if err != nil {
			t.Fatalf("prompt %q: unexpected error: %v", tt.prompt, err)
		}

		want := tt.days * 3
		if len(itinerary) != want {
			t.Fatalf("prompt %q: expected %d activities, got %d", tt.prompt, want, len(itinerary))
		}

		if !strings.HasPrefix(itinerary[0].Title, "Day 1: ") {
			t.Fatalf("prompt %q: first title = %q", tt.prompt, itinerary[0].Title)
		}
		last := itinerary[len(itinerary)-1]
		if wantPrefix := fmt.Sprintf("Day %d: ", tt.days); !strings.HasPrefix(last.Title, wantPrefix) {
			t.Fatalf("prompt %q: last title = %q, want prefix %q", tt.prompt, last.Title, wantPrefix)
		}
	}
}

func TestGenerateGenericSchedule(t *testing.T) {
	svc := newItineraryService()

	itinerary, err := svc.Generate(context.Background(), "a 2 day trip somewhere new")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	base := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	if !itinerary[0].StartTime.Equal(base) {
		t.Fatalf("first start = %v, want %v", itinerary[0].StartTime, base)
	}
	if !itinerary[1].StartTime.Equal(base.Add(3 * time.Hour)) {
		t.Fatalf("second start = %v, want %v", itinerary[1].StartTime, base.Add(3*time.Hour))
	}
	if !itinerary[3].StartTime.Equal(base.Add(24 * time.Hour)) {
		t.Fatalf("day 2 start = %v, want %v", itinerary[3].StartTime, base.Add(24*time.Hour))
	}
	for i, act := range itinerary {
		if got := act.EndTime.Sub(act.StartTime); got != 2*time.Hour {
			t.Fatalf("activity %d: duration = %v, want 2h", i, got)
		}
	}
}
