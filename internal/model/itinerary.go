package model

import "time"

// ActivityType 行程条目类型，闭集
type ActivityType string

const (
	ActivityTransport   ActivityType = "transport"
	ActivityDining      ActivityType = "dining"
	ActivityGeneric     ActivityType = "activity"
	ActivitySightseeing ActivityType = "sightseeing"
	ActivityBusiness    ActivityType = "business"
	ActivityShopping    ActivityType = "shopping"
)

// ScheduledActivity 生成行程中的一个可预订/可游览条目。
// 每次请求从模板重新构建，不落库，响应后即丢弃。
type ScheduledActivity struct {
	Title       string       `json:"title"`
	Type        ActivityType `json:"type"`
	Location    string       `json:"location"`
	StartTime   time.Time    `json:"startTime"`
	EndTime     time.Time    `json:"endTime"`
	Description string       `json:"description"`
	Notes       string       `json:"notes"`
}

// GenerateItineraryRequest 行程生成入参。
type GenerateItineraryRequest struct {
	Prompt string `json:"prompt"`
}

// ItineraryResponse 行程生成出参。
type ItineraryResponse struct {
	Itinerary []ScheduledActivity `json:"itinerary"`
}
