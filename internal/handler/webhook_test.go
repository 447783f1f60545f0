package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"testing"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/ut"
	"github.com/cloudwego/hertz/pkg/route"

	"VoyaGo/internal/middleware"
	"VoyaGo/internal/model"
	"VoyaGo/internal/service"
	"VoyaGo/pkg/logger"
	"VoyaGo/pkg/translate"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func newWebhookEngine() *route.Engine {
	h := server.Default()
	h.Use(middleware.CORSMiddleware())
	h.POST("/webhook/dialogflow", DialogflowWebhook)
	return h.Engine
}

func postWebhook(t *testing.T, e *route.Engine, body string) *ut.ResponseRecorder {
	t.Helper()
	return ut.PerformRequest(e, "POST", "/webhook/dialogflow",
		&ut.Body{Body: bytes.NewBufferString(body), Len: len(body)},
		ut.Header{Key: "Content-Type", Value: "application/json"},
	)
}

func decodeFulfillment(t *testing.T, w *ut.ResponseRecorder) model.FulfillmentResponse {
	t.Helper()
	var resp model.FulfillmentResponse
	if err := json.Unmarshal(w.Result().Body(), &resp); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Result().Body(), err)
	}
	return resp
}

func TestDialogflowWebhookTranslate(t *testing.T) {
	translate.SetClient(translate.NewMockClient())
	e := newWebhookEngine()

	body := `{"queryResult":{"intent":{"displayName":"Translate"},"parameters":{"text":"Hello","language":"Spanish"}}}`
	w := postWebhook(t, e, body)

	if w.Result().StatusCode() != 200 {
		t.Fatalf("status = %d, want 200", w.Result().StatusCode())
	}

	resp := decodeFulfillment(t, w)
	want := fmt.Sprintf("\"%s\" in %s is: \"%s\"", "Hello", "Spanish", "[es] Hello")
	if resp.FulfillmentText != want {
		t.Fatalf("fulfillmentText = %q, want %q", resp.FulfillmentText, want)
	}
}

func TestDialogflowWebhookHelp(t *testing.T) {
	e := newWebhookEngine()

	body := `{"queryResult":{"intent":{"displayName":"Help"},"parameters":{}}}`
	w := postWebhook(t, e, body)

	if w.Result().StatusCode() != 200 {
		t.Fatalf("status = %d, want 200", w.Result().StatusCode())
	}
	if got := decodeFulfillment(t, w).FulfillmentText; got != service.HelpMessage {
		t.Fatalf("fulfillmentText = %q, want help message", got)
	}
}

func TestDialogflowWebhookUnknownIntent(t *testing.T) {
	e := newWebhookEngine()

	body := `{"queryResult":{"intent":{"displayName":"OrderPizza"},"parameters":{}}}`
	w := postWebhook(t, e, body)

	if w.Result().StatusCode() != 200 {
		t.Fatalf("status = %d, want 200", w.Result().StatusCode())
	}
	if got := decodeFulfillment(t, w).FulfillmentText; got != service.DefaultMessage {
		t.Fatalf("fulfillmentText = %q, want default message", got)
	}
}

func TestDialogflowWebhookMalformedPayload(t *testing.T) {
	e := newWebhookEngine()

	w := postWebhook(t, e, `{"queryResult":`)

	// 解析失败也回 200，对话前端永远拿到可展示的文本
	if w.Result().StatusCode() != 200 {
		t.Fatalf("status = %d, want 200", w.Result().StatusCode())
	}
	if got := decodeFulfillment(t, w).FulfillmentText; got != service.DefaultMessage {
		t.Fatalf("fulfillmentText = %q, want default message", got)
	}
}

func TestDialogflowWebhookPreflight(t *testing.T) {
	e := newWebhookEngine()

	w := ut.PerformRequest(e, "OPTIONS", "/webhook/dialogflow", nil,
		ut.Header{Key: "Origin", Value: "https://dialogflow.cloud.google.com"},
	)

	if w.Result().StatusCode() != 204 {
		t.Fatalf("status = %d, want 204", w.Result().StatusCode())
	}
	if body := w.Result().Body(); len(body) != 0 {
		t.Fatalf("expected empty preflight body, got %q", body)
	}
	if got := string(w.Result().Header.Peek("Access-Control-Allow-Origin")); got != "*" {
		t.Fatalf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestDialogflowWebhookResponseShape(t *testing.T) {
	e := newWebhookEngine()

	body := `{"queryResult":{"intent":{"displayName":"Help"},"parameters":{}}}`
	w := postWebhook(t, e, body)

	// 裸 Dialogflow 形状，不带统一响应信封
	var raw map[string]interface{}
	if err := json.Unmarshal(w.Result().Body(), &raw); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if _, ok := raw["fulfillmentText"]; !ok {
		t.Fatal("response missing fulfillmentText field")
	}
	if _, ok := raw["code"]; ok {
		t.Fatal("webhook response must not carry the envelope code field")
	}
}
