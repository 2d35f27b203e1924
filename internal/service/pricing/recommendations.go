package pricing

import (
	"context"
	"sort"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/service/availability"
)

// buildRecommendations собирает рекомендательный блок расчета.
// Блок справочный: сбои источников логируются и не влияют на сам расчет.
func (s *Service) buildRecommendations(ctx context.Context, in *domain.PricingInput, b *domain.PricingBreakdown) *domain.QuoteRecommendations {
	rec := &domain.QuoteRecommendations{
		SuggestedService: s.suggestService(ctx, in),
		OffPeakSavings:   s.offPeakSavings(ctx, in, b),
		Upgrade:          s.upgradeOption(ctx, in, b),
	}

	if rec.SuggestedService == nil && len(rec.OffPeakSavings) == 0 && rec.Upgrade == nil {
		return nil
	}
	return rec
}

// suggestService предлагает другой тариф, если его оценка строго выше оценки выбранного
func (s *Service) suggestService(ctx context.Context, in *domain.PricingInput) *domain.ServiceSuggestion {
	if s.recommender == nil {
		return nil
	}

	ranked, err := s.recommender.GetServiceRecommendations(ctx, in.Items, in.Distance, nil)
	if err != nil {
		s.logger.Warn("CalculatePricing: service recommendations unavailable: %v", err)
		return nil
	}
	if len(ranked) == 0 {
		return nil
	}

	requestedScore, found := 0, false
	for _, r := range ranked {
		if r.ServiceType.ID == in.ServiceType {
			requestedScore, found = r.Score, true
			break
		}
	}

	top := ranked[0]
	if !found || top.ServiceType.ID == in.ServiceType || top.Score <= requestedScore {
		return nil
	}

	return &domain.ServiceSuggestion{
		ServiceType:    top.ServiceType.ID,
		Score:          top.Score,
		RequestedScore: requestedScore,
		Reasons:        top.Reasons,
	}
}

// offPeakSavings слоты той же даты с меньшим множителем и экономия при переходе на них
func (s *Service) offPeakSavings(ctx context.Context, in *domain.PricingInput, b *domain.PricingBreakdown) []domain.OffPeakSaving {
	if s.slots == nil {
		return nil
	}

	slots, err := s.slots.GetAvailableTimeSlots(ctx, in.Date, availability.SlotOptions{})
	if err != nil {
		s.logger.Warn("CalculatePricing: slots unavailable for off-peak savings: %v", err)
		return nil
	}

	st, err := s.catalog.GetServiceType(ctx, b.ServiceType)
	if err != nil {
		return nil
	}

	currentMultiplier := b.Multipliers.Slot
	charges := b.ChargesBeforeMultipliers()

	savings := make([]domain.OffPeakSaving, 0)
	for i := range slots {
		alt := &slots[i]
		if alt.ID == in.SlotID() || alt.Multiplier >= currentMultiplier {
			continue
		}

		m := foldMultipliers(s.cfg, multiplierContext{service: st, slot: alt, date: in.Date})
		saving := b.AdjustedPrice - charges.MulRound(m.Combined)
		if saving <= 0 {
			continue
		}

		savings = append(savings, domain.OffPeakSaving{
			SlotID:     alt.ID,
			StartTime:  alt.StartTime.String(),
			Type:       alt.Type,
			Multiplier: alt.Multiplier,
			Saving:     saving,
		})
	}

	sort.SliceStable(savings, func(i, j int) bool {
		return savings[i].Saving > savings[j].Saving
	})

	if len(savings) > s.cfg.MaxOffPeakSuggestions {
		savings = savings[:s.cfg.MaxOffPeakSuggestions]
	}
	return savings
}

// upgradeOption стоимость перехода на премиальный тариф с теми же параметрами
func (s *Service) upgradeOption(ctx context.Context, in *domain.PricingInput, b *domain.PricingBreakdown) *domain.UpgradeOption {
	premium := s.premiumTier(ctx)
	if premium == nil || premium.ID == b.ServiceType {
		return nil
	}

	upgraded := *in
	upgraded.ServiceType = premium.ID

	pb, err := s.compute(ctx, &upgraded)
	if err != nil {
		s.logger.Warn("CalculatePricing: failed to price upgrade to %s: %v", premium.ID, err)
		return nil
	}

	return &domain.UpgradeOption{
		ServiceType:      premium.ID,
		AdditionalCost:   (pb.Total - b.Total).NonNegative(),
		Total:            pb.Total,
		IncludedServices: premium.IncludedServices,
	}
}

func (s *Service) premiumTier(ctx context.Context) *domain.ServiceType {
	tiers, err := s.catalog.ListServiceTypes(ctx)
	if err != nil {
		s.logger.Warn("CalculatePricing: failed to list service types: %v", err)
		return nil
	}

	for i := range tiers {
		if tiers[i].Premium {
			return &tiers[i]
		}
	}
	return nil
}
