package pricing

import (
	"math"
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

// multiplierContext данные, от которых зависят множители цены
type multiplierContext struct {
	service *domain.ServiceType
	slot    *domain.EnhancedTimeSlot
	date    time.Time
}

// priceMultiplier именованный множитель
type priceMultiplier struct {
	name  string
	value func(cfg Config, mc multiplierContext) float64
}

// priceMultipliers применяются вместе одним произведением
var priceMultipliers = []priceMultiplier{
	{name: "service", value: serviceMultiplier},
	{name: "slot", value: slotMultiplier},
	{name: "seasonal", value: seasonalMultiplier},
	{name: "demand", value: demandMultiplier},
}

func serviceMultiplier(_ Config, mc multiplierContext) float64 {
	return mc.service.Multiplier
}

func slotMultiplier(_ Config, mc multiplierContext) float64 {
	if mc.slot == nil {
		return 1
	}
	return mc.slot.Multiplier
}

// seasonalMultiplier зависит только от месяца
func seasonalMultiplier(cfg Config, mc multiplierContext) float64 {
	return cfg.seasonal(mc.date.Month())
}

// demandMultiplier берет более строгий из двух сигналов: выходной день и класс спроса слота
func demandMultiplier(cfg Config, mc multiplierContext) float64 {
	weekend := 1.0
	if domain.IsWeekend(mc.date) {
		weekend = cfg.WeekendDemandMultiplier
	}

	level := domain.DemandMedium
	if mc.slot != nil && mc.slot.Demand != "" {
		level = mc.slot.Demand
	}

	return math.Max(weekend, cfg.demand(level))
}

// foldMultipliers вычисляет все множители и их произведение
func foldMultipliers(cfg Config, mc multiplierContext) domain.PriceMultipliers {
	result := domain.PriceMultipliers{Combined: 1}

	for _, m := range priceMultipliers {
		v := m.value(cfg, mc)
		result.Combined *= v

		switch m.name {
		case "service":
			result.Service = v
		case "slot":
			result.Slot = v
		case "seasonal":
			result.Seasonal = v
		case "demand":
			result.Demand = v
		}
	}

	result.Combined = math.Round(result.Combined*10000) / 10000
	return result
}
