package pricing

import (
	"context"
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/service/availability"
)

// CatalogRepository интерфейс реестра тарифов и промокодов
type CatalogRepository interface {
	GetServiceType(ctx context.Context, id string) (*domain.ServiceType, error)
	ListServiceTypes(ctx context.Context) ([]domain.ServiceType, error)
	GetPromoCode(ctx context.Context, code string) (*domain.PromoCode, error)
}

// QuoteCache интерфейс кэша расчетов
type QuoteCache interface {
	Get(key string) (*domain.PricingBreakdown, bool)
	Set(key string, value *domain.PricingBreakdown)
}

// ServiceRecommender интерфейс слоя рекомендаций тарифов
type ServiceRecommender interface {
	GetServiceRecommendations(ctx context.Context, items []domain.BookingItem, distance float64, req *domain.ServiceRequirements) ([]domain.ServiceRecommendation, error)
}

// SlotSource интерфейс источника слотов на дату
type SlotSource interface {
	GetAvailableTimeSlots(ctx context.Context, date time.Time, opts availability.SlotOptions) ([]domain.EnhancedTimeSlot, error)
}

// Metrics интерфейс метрик расчетов
type Metrics interface {
	CacheHit()
	CacheMiss()
	QuoteCalculated(serviceType string, totalPounds float64)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

type noopMetrics struct{}

func (noopMetrics) CacheHit()                       {}
func (noopMetrics) CacheMiss()                      {}
func (noopMetrics) QuoteCalculated(string, float64) {}
