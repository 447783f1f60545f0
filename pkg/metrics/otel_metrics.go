package metrics

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// OTelMetrics OpenTelemetry 指标集合
type OTelMetrics struct {
	// 行程生成指标
	ItinerariesGeneratedTotal metric.Int64Counter
	ItineraryActivities       metric.Int64Histogram

	// 预订搜索指标
	BookingSearchesTotal metric.Int64Counter

	// 翻译指标
	TranslationRequestsTotal metric.Int64Counter
	TranslationFailuresTotal metric.Int64Counter
	TranslationDuration      metric.Float64Histogram
}

var (
	metrics *OTelMetrics
	meter   = otel.Meter("voyago")
)

// InitMetrics 初始化 OpenTelemetry 指标
func InitMetrics() error {
	var err error

	m := &OTelMetrics{}

	m.ItinerariesGeneratedTotal, err = meter.Int64Counter(
		"itineraries_generated_total",
		metric.WithDescription("Total number of itineraries generated"),
		metric.WithUnit("{itinerary}"),
	)
	if err != nil {
		return err
	}

	m.ItineraryActivities, err = meter.Int64Histogram(
		"itinerary_activities",
		metric.WithDescription("Number of activities per generated itinerary"),
		metric.WithUnit("{activity}"),
	)
	if err != nil {
		return err
	}

	m.BookingSearchesTotal, err = meter.Int64Counter(
		"booking_searches_total",
		metric.WithDescription("Total number of booking searches"),
		metric.WithUnit("{search}"),
	)
	if err != nil {
		return err
	}

	m.TranslationRequestsTotal, err = meter.Int64Counter(
		"translation_requests_total",
		metric.WithDescription("Total number of translation requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return err
	}

	m.TranslationFailuresTotal, err = meter.Int64Counter(
		"translation_failures_total",
		metric.WithDescription("Total number of failed translation calls"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return err
	}

	m.TranslationDuration, err = meter.Float64Histogram(
		"translation_duration_seconds",
		metric.WithDescription("Time spent calling the translation service"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return err
	}

	metrics = m
	return nil
}

// RecordItinerary 记录一次行程生成
func RecordItinerary(ctx context.Context, destination string, activities int) {
	if metrics == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("destination", destination))
	metrics.ItinerariesGeneratedTotal.Add(ctx, 1, attrs)
	metrics.ItineraryActivities.Record(ctx, int64(activities), attrs)
}

// RecordSearch 记录一次预订搜索
func RecordSearch(ctx context.Context, bookingType string) {
	if metrics == nil {
		return
	}
	metrics.BookingSearchesTotal.Add(ctx, 1,
		metric.WithAttributes(attribute.String("type", bookingType)),
	)
}

// RecordTranslation 记录一次翻译调用及其结果
func RecordTranslation(ctx context.Context, targetCode string, seconds float64, failed bool) {
	if metrics == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("target", targetCode))
	metrics.TranslationRequestsTotal.Add(ctx, 1, attrs)
	metrics.TranslationDuration.Record(ctx, seconds, attrs)
	if failed {
		metrics.TranslationFailuresTotal.Add(ctx, 1, attrs)
	}
}
