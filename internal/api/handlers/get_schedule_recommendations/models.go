package get_schedule_recommendations

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/service/availability"
	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

// RecommendationResponse одна рекомендация
type RecommendationResponse struct {
	Date     string                  `json:"date"`
	Slot     domain.EnhancedTimeSlot `json:"slot"`
	Priority float64                 `json:"priority"`
	Reasons  []string                `json:"reasons"`
}

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	Recommendations []RecommendationResponse `json:"recommendations"`
}

// parseQuery разбирает параметры запроса в опции подбора
func parseQuery(query url.Values) (time.Time, availability.ScheduleOptions, error) {
	var opts availability.ScheduleOptions

	startDate, err := time.Parse(domain.DateFormat, query.Get("startDate"))
	if err != nil {
		return time.Time{}, opts, fmt.Errorf("startDate: %w", err)
	}

	opts.Flexibility = domain.FlexibilityMode(query.Get("flexibility"))
	opts.PreferredTime = types.TimeString(query.Get("preferredTime"))

	if opts.ExcludeWeekends, err = parseBool(query.Get("excludeWeekends")); err != nil {
		return time.Time{}, opts, fmt.Errorf("excludeWeekends: %w", err)
	}
	if opts.WeekendsRequested, err = parseBool(query.Get("weekendsRequested")); err != nil {
		return time.Time{}, opts, fmt.Errorf("weekendsRequested: %w", err)
	}

	if v := query.Get("limit"); v != "" {
		if opts.Limit, err = strconv.Atoi(v); err != nil {
			return time.Time{}, opts, fmt.Errorf("limit: %w", err)
		}
	}

	if v := query.Get("travelTime"); v != "" {
		if opts.TravelTimeMinutes, err = strconv.Atoi(v); err != nil {
			return time.Time{}, opts, fmt.Errorf("travelTime: %w", err)
		}
	}

	return startDate, opts, nil
}

func parseBool(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	return strconv.ParseBool(v)
}

// FromRecommendations конвертирует рекомендации в HTTP response
func FromRecommendations(recs []domain.ScheduleRecommendation) *ScheduleResponse {
	result := make([]RecommendationResponse, 0, len(recs))
	for _, rec := range recs {
		result = append(result, RecommendationResponse{
			Date:     rec.Date.Format(domain.DateFormat),
			Slot:     rec.Slot,
			Priority: rec.Priority,
			Reasons:  rec.Reasons,
		})
	}
	return &ScheduleResponse{Recommendations: result}
}
