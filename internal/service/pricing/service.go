package pricing

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/infra/storage/catalog"
)

// Service движок расчета стоимости переезда
type Service struct {
	cfg          Config
	catalog      CatalogRepository
	cache        QuoteCache
	recommender  ServiceRecommender
	slots        SlotSource
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр движка расчета
func NewService(cfg Config, catalogRepo CatalogRepository, cache QuoteCache, logger Logger) *Service {
	return &Service{
		cfg:          cfg,
		catalog:      catalogRepo,
		cache:        cache,
		metrics:      noopMetrics{},
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithRecommender подключает слой рекомендаций тарифов для блока рекомендаций расчета
func (s *Service) WithRecommender(r ServiceRecommender) *Service {
	s.recommender = r
	return s
}

// WithSlotSource подключает источник слотов для подсказок по более дешевому времени
func (s *Service) WithSlotSource(src SlotSource) *Service {
	s.slots = src
	return s
}

// WithMetrics подключает метрики
func (s *Service) WithMetrics(m Metrics) *Service {
	s.metrics = m
	return s
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// CalculatePricing рассчитывает детализированную стоимость.
// Повторный вызов с тем же ключом в пределах TTL возвращает сохраненный расчет.
func (s *Service) CalculatePricing(ctx context.Context, in *domain.PricingInput) (*domain.PricingBreakdown, error) {
	// 1. Проверяем кэш
	key := cacheKey(in)
	if cached, ok := s.cache.Get(key); ok && s.promoUnchanged(ctx, in, cached) {
		s.metrics.CacheHit()
		return cached.Clone(), nil
	}
	s.metrics.CacheMiss()

	s.logger.Info("CalculatePricing: service=%s, items=%d, distance=%.1f, duration=%.2f, date=%s, slot=%s",
		in.ServiceType, len(in.Items), in.Distance, in.EstimatedDuration, in.Date.Format(domain.DateFormat), in.SlotID())

	// 2. Считаем
	breakdown, err := s.compute(ctx, in)
	if err != nil {
		return nil, err
	}

	// 3. Блок рекомендаций
	breakdown.Recommendations = s.buildRecommendations(ctx, in, breakdown)

	// 4. Сохраняем в кэш
	s.cache.Set(key, breakdown)
	s.metrics.QuoteCalculated(breakdown.ServiceType, breakdown.Total.Pounds())

	s.logger.Info("CalculatePricing: service=%s, subtotal=%s, vat=%s, total=%s",
		breakdown.ServiceType, breakdown.Subtotal, breakdown.VAT, breakdown.Total)

	return breakdown.Clone(), nil
}

// promoUnchanged перепроверяет промокод кэшированного расчета.
// Счетчик использований и срок действия меняются независимо от ключа кэша.
func (s *Service) promoUnchanged(ctx context.Context, in *domain.PricingInput, cached *domain.PricingBreakdown) bool {
	if in.PromoCode == "" || cached.Promo == nil {
		return true
	}

	validation, err := s.ValidatePromoCode(ctx, in.PromoCode, cached.AdjustedPrice+cached.SurchargesTotal, domain.PromoContext{
		ServiceType:         cached.ServiceType,
		Distance:            in.Distance,
		IsFirstTimeCustomer: in.IsFirstTimeCustomer,
	})
	if err != nil || validation != *cached.Promo {
		s.logger.Info("CalculatePricing: promo code %s changed since the cached quote, recalculating", in.PromoCode)
		return false
	}

	return true
}

// compute выполняет расчет без кэша и блока рекомендаций
func (s *Service) compute(ctx context.Context, in *domain.PricingInput) (*domain.PricingBreakdown, error) {
	// 1. Валидация входных данных
	if err := validateInput(in); err != nil {
		s.logger.Warn("CalculatePricing: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем тариф
	st, err := s.catalog.GetServiceType(ctx, in.ServiceType)
	if err != nil {
		if errors.Is(err, catalog.ErrServiceTypeNotFound) {
			s.logger.Warn("CalculatePricing: service type %q not found", in.ServiceType)
			return nil, fmt.Errorf("%w: %q", ErrInvalidServiceType, in.ServiceType)
		}
		s.logger.Error("CalculatePricing: failed to get service type %q: %v", in.ServiceType, err)
		return nil, fmt.Errorf("%w: failed to get service type: %v", ErrInternal, err)
	}

	b := &domain.PricingBreakdown{
		ServiceType:  st.ID,
		BasePrice:    domain.MoneyFromPounds(st.BasePrice),
		ServicePrice: domain.MoneyFromPounds(st.ServiceCharge),
		VATRate:      s.cfg.VATRate,
		CalculatedAt: s.timeProvider.Now(),
	}

	// 3. Объем
	summary := domain.SummarizeItems(in.Items)
	b.TotalVolume = summary.TotalVolume
	b.ItemsPrice, b.VolumeDiscount = s.itemsPrice(summary.TotalVolume)

	// 4. Расстояние
	b.DistancePrice = s.distancePrice(st, in.Distance)

	// 5. Время работы бригады
	b.TimePrice, b.BillableHours = s.timePrice(st, in.EstimatedDuration)

	// 6. Множители
	b.Multipliers = foldMultipliers(s.cfg, multiplierContext{service: st, slot: in.Slot, date: in.Date})
	b.AdjustedPrice = b.ChargesBeforeMultipliers().MulRound(b.Multipliers.Combined)

	// 7. Надбавки
	b.Surcharges = itemSurcharges(s.cfg, in.Items)
	b.Surcharges = append(b.Surcharges, accessSurcharges(s.cfg, "Pickup", in.Pickup)...)
	b.Surcharges = append(b.Surcharges, accessSurcharges(s.cfg, "Dropoff", in.Dropoff)...)
	b.SurchargesTotal = sumLines(b.Surcharges)

	orderValue := b.AdjustedPrice + b.SurchargesTotal

	// 8. Промокод
	b.Discounts = make([]domain.PriceLine, 0)
	if in.PromoCode != "" {
		validation, err := s.ValidatePromoCode(ctx, in.PromoCode, orderValue, domain.PromoContext{
			ServiceType:         st.ID,
			Distance:            in.Distance,
			IsFirstTimeCustomer: in.IsFirstTimeCustomer,
		})
		if err != nil {
			return nil, err
		}

		b.Promo = &validation
		if validation.Valid {
			b.Discounts = append(b.Discounts, domain.PriceLine{
				Name:   fmt.Sprintf("Promo code %s", validation.Code),
				Amount: validation.Discount,
				Reason: "promotional discount",
			})
		}
	}
	b.DiscountTotal = s.clampDiscount(sumLines(b.Discounts), orderValue)

	// 9. НДС
	b.Subtotal = (orderValue - b.DiscountTotal).NonNegative()
	b.VAT = b.Subtotal.MulRound(s.cfg.VATRate)
	b.Total = b.Subtotal + b.VAT

	return b, nil
}

// itemsPrice стоимость объема и скидка за объем сверх порога
func (s *Service) itemsPrice(volume float64) (price, discount domain.Money) {
	gross := volume * s.cfg.PricePerCubicMetre

	discounted := 0.0
	if volume > s.cfg.VolumeDiscountThreshold {
		discounted = (volume - s.cfg.VolumeDiscountThreshold) * s.cfg.PricePerCubicMetre * s.cfg.VolumeDiscountRate
	}

	price = domain.MoneyFromPounds(gross - discounted)
	discount = domain.MoneyFromPounds(gross) - price
	return price, discount
}

// distancePrice первые FreeDistanceKm бесплатно, дальше по тарифу,
// сверх порога дальнего переезда - доплата за км
func (s *Service) distancePrice(st *domain.ServiceType, distance float64) domain.Money {
	billable := math.Max(0, distance-s.cfg.FreeDistanceKm)
	longHaul := math.Max(0, distance-s.cfg.LongDistanceThresholdKm)

	return domain.MoneyFromPounds(billable*st.PricePerKm + longHaul*s.cfg.LongDistanceSurchargePerKm)
}

// timePrice почасовая оплата с минимальной продолжительностью.
// Для тарифов без почасовой ставки (аренда без бригады) время не оплачивается.
func (s *Service) timePrice(st *domain.ServiceType, duration float64) (domain.Money, float64) {
	if !st.HasHourlyRate() {
		return 0, 0
	}

	hours := math.Max(duration, s.cfg.MinimumHours)
	return domain.MoneyFromPounds(hours * st.HourlyRate()), hours
}
