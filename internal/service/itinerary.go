package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"VoyaGo/internal/catalog"
	"VoyaGo/internal/model"
	"VoyaGo/pkg/errors"
	"VoyaGo/pkg/logger"
	"VoyaGo/pkg/metrics"
)

// ItineraryService mock 行程生成。真实产品里这里会接 AI 服务，
// 现在按目的地关键词返回手工编排的行程脚本。
type ItineraryService struct {
	now func() time.Time
}

var (
	itineraryService *ItineraryService
	itineraryOnce    sync.Once
)

func Itinerary() *ItineraryService {
	itineraryOnce.Do(func() {
		itineraryService = &ItineraryService{now: time.Now}
	})

	return itineraryService
}

// dayPhrases 兜底行程的天数解析表，按声明顺序匹配。
var dayPhrases = []struct {
	phrases []string
	days    int
}{
	{[]string{"2 day", "2-day"}, 2},
	{[]string{"3 day", "3-day"}, 3},
	{[]string{"4 day", "4-day"}, 4},
	{[]string{"5 day", "5-day"}, 5},
	{[]string{"week"}, 7},
}

// Generate 根据 prompt 生成行程。
// 鉴权在中间件与 handler 层完成，这里只校验 prompt 本身。
func (s *ItineraryService) Generate(ctx context.Context, prompt string) ([]model.ScheduledActivity, error) {
	normalized := strings.ToLower(strings.TrimSpace(prompt))
	if len(normalized) < 5 {
		return nil, errors.PromptTooShort
	}

	logger.Logger.Info("Generating itinerary",
		zap.String("prompt", normalized),
	)

	base := s.baseDate()

	var (
		itinerary   []model.ScheduledActivity
		destination string
	)

	if route, ok := catalog.MatchDestination(normalized); ok {
		destination = route.Name
		itinerary = buildRouteItinerary(base, route)
	} else {
		destination = "generic"
		itinerary = buildGenericItinerary(base, normalized)
	}

	logger.Logger.Info("Generated itinerary items",
		zap.String("destination", destination),
		zap.Int("count", len(itinerary)),
	)
	metrics.RecordItinerary(ctx, destination, len(itinerary))

	return itinerary, nil
}

// baseDate 行程基准时刻：次日 09:00:00 本地时间。
func (s *ItineraryService) baseDate() time.Time {
	now := s.now()
	tomorrow := now.AddDate(0, 0, 1)
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 9, 0, 0, 0, now.Location())
}

func buildRouteItinerary(base time.Time, route catalog.DestinationRoute) []model.ScheduledActivity {
	itinerary := make([]model.ScheduledActivity, 0, len(route.Plan))
	for _, tpl := range route.Plan {
		itinerary = append(itinerary, model.ScheduledActivity{
			Title:       tpl.Title,
			Type:        tpl.Type,
			Location:    tpl.Location,
			StartTime:   base.Add(tpl.StartOffset),
			EndTime:     base.Add(tpl.EndOffset),
			Description: tpl.Description,
			Notes:       tpl.Notes,
		})
	}
	return itinerary
}

func buildGenericItinerary(base time.Time, prompt string) []model.ScheduledActivity {
	numDays := parseNumDays(prompt)

	perDay := len(catalog.GenericActivities)
	if perDay > 3 {
		perDay = 3
	}

	itinerary := make([]model.ScheduledActivity, 0, numDays*perDay)
	for dayIdx := 0; dayIdx < numDays; dayIdx++ {
		for i := 0; i < perDay; i++ {
			tpl := catalog.GenericActivities[i]
			start := base.Add(time.Duration(dayIdx)*24*time.Hour + time.Duration(i)*3*time.Hour)
			end := start.Add(2 * time.Hour)

			itinerary = append(itinerary, model.ScheduledActivity{
				Title:       fmt.Sprintf("Day %d: %s", dayIdx+1, tpl.Title),
				Type:        tpl.Type,
				Location:    tpl.Location,
				StartTime:   start,
				EndTime:     end,
				Description: tpl.Description,
				Notes:       tpl.Notes,
			})
		}
	}

	return itinerary
}

func parseNumDays(prompt string) int {
	for _, entry := range dayPhrases {
		for _, phrase := range entry.phrases {
			if strings.Contains(prompt, phrase) {
				return entry.days
			}
		}
	}
	return 1
}
