package pricing

import (
	"fmt"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

// itemSurcharges надбавки за вещи: пианино, хрупкое, ценное, тяжелое.
// Каждая надбавка умножается на количество единиц.
func itemSurcharges(cfg Config, items []domain.BookingItem) []domain.PriceLine {
	lines := make([]domain.PriceLine, 0)

	add := func(item domain.BookingItem, name string, unit float64, reason string) {
		if unit <= 0 {
			return
		}
		amount := domain.MoneyFromPounds(unit).MulRound(float64(item.Quantity))
		lines = append(lines, domain.PriceLine{
			Name:   fmt.Sprintf("%s: %s", name, item.DisplayName()),
			Amount: amount,
			Reason: fmt.Sprintf("%d × %s %s", item.Quantity, domain.MoneyFromPounds(unit), reason),
		})
	}

	for _, item := range items {
		if item.Category == domain.CategoryPiano {
			add(item, "Piano handling", cfg.PianoSurcharge, "specialist piano handling")
		}
		if item.Fragile {
			add(item, "Fragile item", cfg.FragileSurcharge, "extra protective packing")
		}
		if item.Valuable {
			add(item, "Valuable item", cfg.ValuableSurcharge, "additional care and cover")
		}
		if item.Weight > cfg.HeavyItemThresholdKg {
			add(item, "Heavy item", cfg.HeavyItemSurcharge,
				fmt.Sprintf("over %.0f kg per unit", cfg.HeavyItemThresholdKg))
		}
	}

	return lines
}

// accessSurcharges надбавки за условия доступа на одной точке (погрузка или выгрузка)
func accessSurcharges(cfg Config, endpoint string, access domain.PropertyAccessDetails) []domain.PriceLine {
	lines := make([]domain.PriceLine, 0)

	if access.NeedsStairs() && cfg.NoLiftSurchargePerFloor > 0 {
		perFloor := domain.MoneyFromPounds(cfg.NoLiftSurchargePerFloor)
		lines = append(lines, domain.PriceLine{
			Name:   fmt.Sprintf("%s: no lift", endpoint),
			Amount: perFloor.MulRound(float64(access.Floor)),
			Reason: fmt.Sprintf("%d floor(s) by stairs × %s", access.Floor, perFloor),
		})
	}

	if access.NarrowAccess && cfg.NarrowAccessSurcharge > 0 {
		lines = append(lines, domain.PriceLine{
			Name:   fmt.Sprintf("%s: narrow access", endpoint),
			Amount: domain.MoneyFromPounds(cfg.NarrowAccessSurcharge),
			Reason: "narrow stairs, doors or hallways",
		})
	}

	if access.LongCarry && cfg.LongCarrySurcharge > 0 {
		lines = append(lines, domain.PriceLine{
			Name:   fmt.Sprintf("%s: long carry", endpoint),
			Amount: domain.MoneyFromPounds(cfg.LongCarrySurcharge),
			Reason: "long walk between the van and the door",
		})
	}

	return lines
}

func sumLines(lines []domain.PriceLine) domain.Money {
	var total domain.Money
	for _, l := range lines {
		total += l.Amount
	}
	return total
}
