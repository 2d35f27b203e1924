package weather

import (
	"context"
	"hash/fnv"
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

// Simulated детерминированный прогноз: погода зависит только от даты,
// поэтому повторные запросы на один день всегда дают одинаковый результат.
type Simulated struct {
	seed string
}

// NewSimulated создает провайдер. Разные seed дают разные, но стабильные прогнозы.
func NewSimulated(seed string) *Simulated {
	return &Simulated{seed: seed}
}

// Forecast возвращает прогноз на дату
func (s *Simulated) Forecast(ctx context.Context, date time.Time) (domain.WeatherForecast, error) {
	h := fnv.New32a()
	_, _ = h.Write([]byte(s.seed))
	_, _ = h.Write([]byte(date.Format(domain.DateFormat)))
	roll := h.Sum32() % 100

	return forecastForRoll(roll, date.Month()), nil
}

// forecastForRoll раскладывает значение 0..99 по условиям.
// Снег возможен только с ноября по март, в остальные месяцы вместо него дождь.
func forecastForRoll(roll uint32, month time.Month) domain.WeatherForecast {
	switch {
	case roll < 55:
		return domain.WeatherForecast{Condition: domain.WeatherClear}
	case roll < 75:
		return domain.WeatherForecast{Condition: domain.WeatherCloudy}
	case roll < 88:
		return domain.WeatherForecast{Condition: domain.WeatherRain, Description: "Rain expected"}
	case roll < 95:
		return domain.WeatherForecast{Condition: domain.WeatherHeavyRain, Description: "Heavy rain expected"}
	case roll < 98:
		if isWinter(month) {
			return domain.WeatherForecast{Condition: domain.WeatherSnow, Description: "Snow expected"}
		}
		return domain.WeatherForecast{Condition: domain.WeatherRain, Description: "Rain expected"}
	default:
		return domain.WeatherForecast{
			Condition:   domain.WeatherStorm,
			Unavailable: true,
			Description: "Severe weather warning",
		}
	}
}

func isWinter(month time.Month) bool {
	return month >= time.November || month <= time.March
}
