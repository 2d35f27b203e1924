package availability

import (
	"math"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

// slotContext данные, от которых зависит множитель одного слота
type slotContext struct {
	start   types.TimeString
	slot    domain.SlotType
	weekend bool
	popular bool
	weather domain.WeatherCondition
}

// slotFactor именованный множитель слота. ok=false означает, что фактор не применяется.
type slotFactor struct {
	name  string
	value func(cfg Config, sc slotContext) (float64, bool)
}

// slotFactors упорядоченный список факторов. Итоговый множитель - их произведение.
var slotFactors = []slotFactor{
	{name: "weekend", value: weekendFactor},
	{name: "peak", value: peakFactor},
	{name: "popular", value: popularFactor},
	{name: "early", value: earlyFactor},
	{name: "late", value: lateFactor},
	{name: "evening", value: eveningFactor},
	{name: "weather", value: weatherFactor},
}

func weekendFactor(cfg Config, sc slotContext) (float64, bool) {
	return cfg.WeekendFactor, sc.weekend
}

func peakFactor(cfg Config, sc slotContext) (float64, bool) {
	inPeak := !sc.start.IsBefore(cfg.PeakStart) && sc.start.IsBefore(cfg.PeakEnd)
	return cfg.PeakFactor, inPeak
}

func popularFactor(cfg Config, sc slotContext) (float64, bool) {
	return cfg.PopularFactor, sc.popular
}

func earlyFactor(cfg Config, sc slotContext) (float64, bool) {
	return cfg.EarlyFactor, sc.slot == domain.SlotEarly
}

func lateFactor(cfg Config, sc slotContext) (float64, bool) {
	return cfg.LateFactor, sc.slot == domain.SlotLate
}

func eveningFactor(cfg Config, sc slotContext) (float64, bool) {
	return cfg.EveningFactor, sc.slot == domain.SlotEvening
}

func weatherFactor(cfg Config, sc slotContext) (float64, bool) {
	f := cfg.weatherFactor(sc.weather)
	return f, f != 1
}

// foldFactors перемножает применимые факторы и возвращает их список
func foldFactors(cfg Config, sc slotContext) (float64, []domain.SlotFactor) {
	multiplier := 1.0
	applied := make([]domain.SlotFactor, 0, len(slotFactors))

	for _, f := range slotFactors {
		v, ok := f.value(cfg, sc)
		if !ok {
			continue
		}
		multiplier *= v
		applied = append(applied, domain.SlotFactor{Name: f.name, Value: v})
	}

	return roundFactor(multiplier), applied
}

// roundFactor округляет множитель до 4 знаков, чтобы убрать шум умножения float
func roundFactor(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// classifySlot определяет тип слота по времени начала
func classifySlot(cfg Config, start types.TimeString) domain.SlotType {
	switch {
	case start.IsBefore(cfg.EarlyBefore):
		return domain.SlotEarly
	case start.IsBefore(cfg.MorningBefore):
		return domain.SlotMorning
	case start.IsBefore(cfg.AfternoonBefore):
		return domain.SlotAfternoon
	case start.IsBefore(cfg.EveningBefore):
		return domain.SlotEvening
	default:
		return domain.SlotLate
	}
}

// demandFor класс спроса: популярное время - высокий, ранние и поздние - низкий
func demandFor(slotType domain.SlotType, popular bool) domain.DemandLevel {
	switch {
	case popular:
		return domain.DemandHigh
	case slotType.IsOffPeak():
		return domain.DemandLow
	default:
		return domain.DemandMedium
	}
}

// savingsFor процент, на который множитель ниже 1.0
func savingsFor(multiplier float64) *int {
	if multiplier >= 1 {
		return nil
	}
	pct := int(math.Round((1 - multiplier) * 100))
	if pct <= 0 {
		return nil
	}
	return &pct
}

// operatingHours рабочее окно дня
func operatingHours(cfg Config, weekend bool) (openAt, closeAt types.TimeString) {
	if weekend {
		return cfg.WeekendOpen, cfg.WeekendClose
	}
	return cfg.WeekdayOpen, cfg.WeekdayClose
}

// candidateStarts генерирует времена начала слотов с шагом длительность+буфер.
// Слот включается, только если он целиком помещается в рабочее окно.
func candidateStarts(cfg Config, weekend bool) []types.TimeString {
	open, closeAt := operatingHours(cfg, weekend)

	starts := make([]types.TimeString, 0)
	current := open
	for current.IsBefore(closeAt) {
		end, err := current.AddMinutes(cfg.SlotDurationMinutes)
		if err != nil || end.IsAfter(closeAt) {
			break
		}

		starts = append(starts, current)

		current, err = current.AddMinutes(cfg.stepMinutes())
		if err != nil {
			break
		}
	}

	return starts
}

func (c Config) isPopular(start types.TimeString) bool {
	for _, p := range c.PopularTimes {
		if p == start {
			return true
		}
	}
	return false
}
