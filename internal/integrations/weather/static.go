package weather

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

// Static прогноз из заранее заданной таблицы, для остальных дат - ясно
type Static struct {
	mu        sync.RWMutex
	forecasts map[string]domain.WeatherForecast
}

// NewStatic создает пустую таблицу прогнозов
func NewStatic() *Static {
	return &Static{forecasts: make(map[string]domain.WeatherForecast)}
}

// Set задает прогноз на дату
func (s *Static) Set(date time.Time, forecast domain.WeatherForecast) {
	s.mu.Lock()
	s.forecasts[date.Format(domain.DateFormat)] = forecast
	s.mu.Unlock()
}

// Forecast возвращает прогноз на дату
func (s *Static) Forecast(ctx context.Context, date time.Time) (domain.WeatherForecast, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if f, ok := s.forecasts[date.Format(domain.DateFormat)]; ok {
		return f, nil
	}
	return domain.WeatherForecast{Condition: domain.WeatherClear}, nil
}
