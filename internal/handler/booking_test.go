package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"

	"VoyaGo/internal/middleware"
)

// identityInjector 测试用：跳过 JWT 校验，直接塞入已鉴权身份。
func identityInjector(userID string) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		c.Set(middleware.IdentityKey, userID)
		c.Next(ctx)
	}
}

func newAPIEngine(authed bool) *route.Engine {
	h := server.Default()
	v1 := h.Group("/v1")
	if authed {
		v1.Use(identityInjector("test-user"))
	}
	v1.POST("/ai/itinerary", GenerateItinerary)
	v1.POST("/bookings/search", SearchBookings)
	return h.Engine
}

func postJSON(t *testing.T, e *route.Engine, path, body string) *ut.ResponseRecorder {
	t.Helper()
	return ut.PerformRequest(e, "POST", path,
		&ut.Body{Body: bytes.NewBufferString(body), Len: len(body)},
		ut.Header{Key: "Content-Type", Value: "application/json"},
	)
}

func decodeJSON(t *testing.T, w *ut.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var payload map[string]interface{}
	if err := json.Unmarshal(w.Result().Body(), &payload); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Result().Body(), err)
	}
	return payload
}

func errorCode(t *testing.T, payload map[string]interface{}) string {
	t.Helper()
	detail, ok := payload["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("response missing error object: %v", payload)
	}
	code, _ := detail["code"].(string)
	return code
}

func TestSearchBookingsRequiresIdentity(t *testing.T) {
	e := newAPIEngine(false)

	w := postJSON(t, e, "/v1/bookings/search", `{"type":"flight","query":"goa"}`)

	if w.Result().StatusCode() != 401 {
		t.Fatalf("status = %d, want 401", w.Result().StatusCode())
	}
	if code := errorCode(t, decodeJSON(t, w)); code != "UNAUTHENTICATED" {
		t.Fatalf("error code = %q, want UNAUTHENTICATED", code)
	}
}

func TestSearchBookingsSuccess(t *testing.T) {
	e := newAPIEngine(true)

	w := postJSON(t, e, "/v1/bookings/search", `{"type":"flight","query":"delhi to goa"}`)

	if w.Result().StatusCode() != 200 {
		t.Fatalf("status = %d, want 200", w.Result().StatusCode())
	}

	payload := decodeJSON(t, w)
	data, ok := payload["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("response missing data envelope: %v", payload)
	}
	results, ok := data["results"].([]interface{})
	if !ok {
		t.Fatalf("data missing results: %v", data)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 flight results, got %d", len(results))
	}
	if data["searchType"] != "flight" {
		t.Fatalf("searchType = %v", data["searchType"])
	}
	if data["searchQuery"] != "delhi to goa" {
		t.Fatalf("searchQuery = %v", data["searchQuery"])
	}
}

func TestSearchBookingsInvalidType(t *testing.T) {
	e := newAPIEngine(true)

	w := postJSON(t, e, "/v1/bookings/search", `{"type":"car","query":"goa"}`)

	if w.Result().StatusCode() != 400 {
		t.Fatalf("status = %d, want 400", w.Result().StatusCode())
	}
	if code := errorCode(t, decodeJSON(t, w)); code != "INVALID_BOOKING_TYPE" {
		t.Fatalf("error code = %q, want INVALID_BOOKING_TYPE", code)
	}
}

func TestGenerateItinerarySuccess(t *testing.T) {
	e := newAPIEngine(true)

	w := postJSON(t, e, "/v1/ai/itinerary", `{"prompt":"weekend beach trip to goa"}`)

	if w.Result().StatusCode() != 200 {
		t.Fatalf("status = %d, want 200", w.Result().StatusCode())
	}

	payload := decodeJSON(t, w)
	data, ok := payload["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("response missing data envelope: %v", payload)
	}
	itinerary, ok := data["itinerary"].([]interface{})
	if !ok {
		t.Fatalf("data missing itinerary: %v", data)
	}
	if len(itinerary) == 0 {
		t.Fatal("expected a non-empty itinerary")
	}
}

func TestGenerateItineraryShortPrompt(t *testing.T) {
	e := newAPIEngine(true)

	w := postJSON(t, e, "/v1/ai/itinerary", `{"prompt":"hi"}`)

	if w.Result().StatusCode() != 400 {
		t.Fatalf("status = %d, want 400", w.Result().StatusCode())
	}
	if code := errorCode(t, decodeJSON(t, w)); code != "INVALID_PROMPT" {
		t.Fatalf("error code = %q, want INVALID_PROMPT", code)
	}
}
