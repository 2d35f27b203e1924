package pricing

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

// Config тарифные константы движка расчета.
// Денежные значения в фунтах, расстояния в км, объем в м³.
type Config struct {
	VATRate float64

	PricePerCubicMetre      float64
	VolumeDiscountThreshold float64 // скидка применяется к объему сверх порога
	VolumeDiscountRate      float64

	FreeDistanceKm             float64
	LongDistanceThresholdKm    float64
	LongDistanceSurchargePerKm float64

	MinimumHours float64

	PianoSurcharge       float64
	FragileSurcharge     float64
	ValuableSurcharge    float64
	HeavyItemSurcharge   float64
	HeavyItemThresholdKg float64 // вес одной единицы

	NoLiftSurchargePerFloor float64
	NarrowAccessSurcharge   float64
	LongCarrySurcharge      float64

	MaxDiscountAmount  float64
	MaxDiscountPercent float64 // доля от суммы заказа, 0.30 = 30%

	SeasonalMultipliers     map[time.Month]float64
	WeekendDemandMultiplier float64
	DemandMultipliers       map[domain.DemandLevel]float64

	MaxOffPeakSuggestions int
}

// DefaultConfig конфигурация по умолчанию
func DefaultConfig() Config {
	return Config{
		VATRate: domain.DefaultVATRate,

		PricePerCubicMetre:      25,
		VolumeDiscountThreshold: 20,
		VolumeDiscountRate:      0.10,

		FreeDistanceKm:             5,
		LongDistanceThresholdKm:    50,
		LongDistanceSurchargePerKm: 0.50,

		MinimumHours: domain.DefaultMinimumHours,

		PianoSurcharge:       150,
		FragileSurcharge:     15,
		ValuableSurcharge:    25,
		HeavyItemSurcharge:   20,
		HeavyItemThresholdKg: 50,

		NoLiftSurchargePerFloor: 15,
		NarrowAccessSurcharge:   25,
		LongCarrySurcharge:      30,

		MaxDiscountAmount:  200,
		MaxDiscountPercent: 0.30,

		SeasonalMultipliers: map[time.Month]float64{
			time.January:   0.90,
			time.February:  0.90,
			time.May:       1.10,
			time.June:      1.20,
			time.July:      1.20,
			time.August:    1.20,
			time.September: 1.10,
			time.December:  1.10,
		},
		WeekendDemandMultiplier: 1.10,
		DemandMultipliers: map[domain.DemandLevel]float64{
			domain.DemandLow:    0.95,
			domain.DemandMedium: 1.00,
			domain.DemandHigh:   1.15,
		},

		MaxOffPeakSuggestions: 3,
	}
}

// Validate проверяет конфигурацию
func (c Config) Validate() error {
	if c.VATRate < 0 || c.VATRate >= 1 {
		return fmt.Errorf("%w: vat rate must be in [0, 1)", ErrInvalidInput)
	}
	if c.VolumeDiscountRate < 0 || c.VolumeDiscountRate >= 1 {
		return fmt.Errorf("%w: volume discount rate must be in [0, 1)", ErrInvalidInput)
	}
	if c.MaxDiscountPercent < 0 || c.MaxDiscountPercent > 1 {
		return fmt.Errorf("%w: max discount percent must be in [0, 1]", ErrInvalidInput)
	}

	for name, v := range map[string]float64{
		"price per m3":            c.PricePerCubicMetre,
		"volume threshold":        c.VolumeDiscountThreshold,
		"free distance":           c.FreeDistanceKm,
		"long distance threshold": c.LongDistanceThresholdKm,
		"long distance surcharge": c.LongDistanceSurchargePerKm,
		"minimum hours":           c.MinimumHours,
		"max discount amount":     c.MaxDiscountAmount,
	} {
		if v < 0 {
			return fmt.Errorf("%w: %s must be non-negative", ErrInvalidInput, name)
		}
	}

	return nil
}

func (c Config) seasonal(month time.Month) float64 {
	if f, ok := c.SeasonalMultipliers[month]; ok {
		return f
	}
	return 1
}

func (c Config) demand(level domain.DemandLevel) float64 {
	if f, ok := c.DemandMultipliers[level]; ok {
		return f
	}
	return 1
}
