package config

import (
	"strings"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/service/availability"
	"github.com/m04kA/SMC-QuoteService/internal/service/pricing"
)

// Default конфигурация по умолчанию; значения движков совпадают с их DefaultConfig
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8083,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			ServiceName: "quote-service",
			Path:        "/metrics",
		},
		Cache: CacheConfig{
			TTLMinutes: domain.DefaultQuoteCacheTTLMinutes,
		},
		Weather: WeatherConfig{
			Seed: "quote-service",
		},
		Pricing:      defaultPricing(pricing.DefaultConfig()),
		Availability: defaultAvailability(availability.DefaultConfig()),
	}
}

func defaultPricing(p pricing.Config) PricingConfig {
	seasonal := make(map[string]float64, len(p.SeasonalMultipliers))
	for month, f := range p.SeasonalMultipliers {
		seasonal[strings.ToLower(month.String())] = f
	}

	demand := make(map[string]float64, len(p.DemandMultipliers))
	for level, f := range p.DemandMultipliers {
		demand[string(level)] = f
	}

	return PricingConfig{
		VATRate:                    p.VATRate,
		PricePerCubicMetre:         p.PricePerCubicMetre,
		VolumeDiscountThreshold:    p.VolumeDiscountThreshold,
		VolumeDiscountRate:         p.VolumeDiscountRate,
		FreeDistanceKm:             p.FreeDistanceKm,
		LongDistanceThresholdKm:    p.LongDistanceThresholdKm,
		LongDistanceSurchargePerKm: p.LongDistanceSurchargePerKm,
		MinimumHours:               p.MinimumHours,
		PianoSurcharge:             p.PianoSurcharge,
		FragileSurcharge:           p.FragileSurcharge,
		ValuableSurcharge:          p.ValuableSurcharge,
		HeavyItemSurcharge:         p.HeavyItemSurcharge,
		HeavyItemThresholdKg:       p.HeavyItemThresholdKg,
		NoLiftSurchargePerFloor:    p.NoLiftSurchargePerFloor,
		NarrowAccessSurcharge:      p.NarrowAccessSurcharge,
		LongCarrySurcharge:         p.LongCarrySurcharge,
		MaxDiscountAmount:          p.MaxDiscountAmount,
		MaxDiscountPercent:         p.MaxDiscountPercent,
		WeekendDemandMultiplier:    p.WeekendDemandMultiplier,
		MaxOffPeakSuggestions:      p.MaxOffPeakSuggestions,
		SeasonalMultipliers:        seasonal,
		DemandMultipliers:          demand,
	}
}

func defaultAvailability(a availability.Config) AvailabilityConfig {
	popular := make([]string, 0, len(a.PopularTimes))
	for _, ts := range a.PopularTimes {
		popular = append(popular, ts.String())
	}

	weather := make(map[string]float64, len(a.WeatherFactors))
	for condition, f := range a.WeatherFactors {
		weather[string(condition)] = f
	}

	return AvailabilityConfig{
		WeekdayOpen:           a.WeekdayOpen.String(),
		WeekdayClose:          a.WeekdayClose.String(),
		WeekendOpen:           a.WeekendOpen.String(),
		WeekendClose:          a.WeekendClose.String(),
		SlotDurationMinutes:   a.SlotDurationMinutes,
		SlotBufferMinutes:     a.SlotBufferMinutes,
		MinAdvanceNoticeHours: a.MinAdvanceNoticeHours,
		MaxAdvanceBookingDays: a.MaxAdvanceBookingDays,
		AlternativeSearchDays: a.AlternativeSearchDays,
		AlternativeDatesCount: a.AlternativeDatesCount,
		PopularTimes:          popular,
		WeekendFactor:         a.WeekendFactor,
		PeakFactor:            a.PeakFactor,
		PopularFactor:         a.PopularFactor,
		EarlyFactor:           a.EarlyFactor,
		LateFactor:            a.LateFactor,
		EveningFactor:         a.EveningFactor,
		WeatherFactors:        weather,
	}
}
