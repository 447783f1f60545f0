package model

// Dialogflow webhook 的请求/响应结构。
// 只声明用得到的字段，其余内容忽略。

// WebhookRequest Dialogflow 发来的 fulfillment 请求体。
type WebhookRequest struct {
	QueryResult QueryResult `json:"queryResult"`
}

// QueryResult 识别结果。
type QueryResult struct {
	Intent     Intent           `json:"intent"`
	Parameters IntentParameters `json:"parameters"`
}

// Intent 命中的意图。
type Intent struct {
	DisplayName string `json:"displayName"`
}

// IntentParameters Translate 意图的槽位。
type IntentParameters struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// FulfillmentResponse 回给 Dialogflow 的响应体。
// 形状由 Dialogflow 约定，不走统一响应信封。
type FulfillmentResponse struct {
	FulfillmentText string `json:"fulfillmentText"`
}
