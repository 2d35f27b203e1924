package recommendation

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/service/pricing"
)

// Service слой рекомендаций тарифов
type Service struct {
	cfg        Config
	pricingCfg pricing.Config
	catalog    CatalogRepository
	logger     Logger
}

// NewService создает сервис рекомендаций.
// pricingCfg используется для быстрой оценки цены без полного расчета.
func NewService(cfg Config, pricingCfg pricing.Config, catalog CatalogRepository, logger Logger) *Service {
	return &Service{
		cfg:        cfg,
		pricingCfg: pricingCfg,
		catalog:    catalog,
		logger:     logger,
	}
}

// GetServiceRecommendations оценивает каждый тариф и возвращает их по убыванию оценки.
// При равной оценке сохраняется порядок реестра.
func (s *Service) GetServiceRecommendations(
	ctx context.Context,
	items []domain.BookingItem,
	distance float64,
	req *domain.ServiceRequirements,
) ([]domain.ServiceRecommendation, error) {
	// 1. Валидация входных данных
	if err := validateRequest(items, distance, req); err != nil {
		s.logger.Warn("GetServiceRecommendations: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем тарифы
	tiers, err := s.catalog.ListServiceTypes(ctx)
	if err != nil {
		s.logger.Error("GetServiceRecommendations: failed to list service types: %v", err)
		return nil, fmt.Errorf("%w: failed to list service types: %v", ErrInternal, err)
	}

	summary := domain.SummarizeItems(items)
	if req == nil {
		req = &domain.ServiceRequirements{}
	}

	// 3. Оцениваем каждый тариф
	result := make([]domain.ServiceRecommendation, 0, len(tiers))
	for i := range tiers {
		st := tiers[i]
		price := s.estimatePrice(&st, summary.TotalVolume, distance)
		score, reasons := s.score(&st, summary, distance, price, req)

		result = append(result, domain.ServiceRecommendation{
			ServiceType:    st,
			Score:          score,
			Reasons:        reasons,
			EstimatedPrice: price,
		})
	}

	// 4. Сортируем
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Score > result[j].Score
	})

	if len(result) > 0 {
		s.logger.Info("GetServiceRecommendations: volume=%.2f, weight=%.1f, distance=%.1f, top=%s (%d)",
			summary.TotalVolume, summary.TotalWeight, distance, result[0].ServiceType.ID, result[0].Score)
	}

	return result, nil
}

// score оценка тарифа и причины
func (s *Service) score(
	st *domain.ServiceType,
	summary domain.ItemsSummary,
	distance float64,
	price domain.Money,
	req *domain.ServiceRequirements,
) (int, []string) {
	score := 0
	reasons := make([]string, 0)
	add := func(points int, reason string) {
		score += points
		reasons = append(reasons, reason)
	}

	// Вместимость
	if st.FitsVolume(summary.TotalVolume) {
		add(s.cfg.VolumeFits, fmt.Sprintf("Fits your %.1f m³ of items", summary.TotalVolume))
	} else {
		add(s.cfg.VolumeExceeds, fmt.Sprintf("Too small for %.1f m³ (max %.0f m³)", summary.TotalVolume, st.MaxVolume))
	}

	if st.FitsWeight(summary.TotalWeight) {
		add(s.cfg.WeightFits, fmt.Sprintf("Handles %.0f kg", summary.TotalWeight))
	} else {
		add(s.cfg.WeightExceeds, fmt.Sprintf("Over the %.0f kg weight limit", st.MaxWeight))
	}

	// Характер переезда
	if distance >= s.cfg.LongDistanceKm && st.Premium {
		add(s.cfg.LongDistancePremium, "Recommended for long-distance moves")
	}

	if summary.HasFragile && (st.CrewSize >= 2 || st.Premium) {
		add(s.cfg.FragileCrew, "Experienced crew for fragile items")
	}

	if summary.HasValuable && st.Premium {
		add(s.cfg.ValuablePremium, "Extra cover for valuable items")
	}

	// Бюджет
	if req.Budget != nil {
		if price <= domain.MoneyFromPounds(*req.Budget) {
			add(s.cfg.WithinBudget, "Within your budget")
		} else {
			add(s.cfg.OverBudget, "Above your budget")
		}
	}

	// Предпочтения
	switch req.TimePreference {
	case domain.PreferenceFast:
		if st.CrewSize >= 2 {
			add(s.cfg.TimePreferenceBonus, "Larger crew gets the job done faster")
		}
	case domain.PreferenceEconomical:
		if st.IsSelfDrive() {
			add(s.cfg.TimePreferenceBonus, "Lowest cost option")
		}
	case domain.PreferencePremium:
		if st.Premium {
			add(s.cfg.TimePreferenceBonus, "Full white-glove service")
		}
	}

	switch req.HelpLevel {
	case domain.HelpNone:
		if st.IsSelfDrive() {
			add(s.cfg.HelpNoneSelfDrive, "You drive and load yourself")
		}
	case domain.HelpLoading:
		if st.CrewSize >= 1 {
			add(s.cfg.HelpLoadingCrew, "Crew helps with loading")
		}
	case domain.HelpFull:
		if st.CrewSize >= 2 {
			add(s.cfg.HelpFullCrew, "Crew handles the whole move")
		}
	}

	return score, reasons
}

// estimatePrice быстрая оценка без надбавок, скидок и НДС:
// (база + объем + платное расстояние + минимальное время) × множитель тарифа
func (s *Service) estimatePrice(st *domain.ServiceType, volume, distance float64) domain.Money {
	pounds := st.BasePrice +
		volume*s.pricingCfg.PricePerCubicMetre +
		math.Max(0, distance-s.pricingCfg.FreeDistanceKm)*st.PricePerKm +
		s.pricingCfg.MinimumHours*st.HourlyRate()

	return domain.MoneyFromPounds(pounds * st.Multiplier)
}

func validateRequest(items []domain.BookingItem, distance float64, req *domain.ServiceRequirements) error {
	if len(items) == 0 {
		return ErrNoItems
	}

	for _, item := range items {
		if item.Quantity < 1 || item.Volume < 0 || item.Weight < 0 {
			return fmt.Errorf("%w: item %s has invalid quantity, volume or weight", ErrInvalidInput, item.ID)
		}
	}

	if distance < 0 || distance > domain.MaxDistanceKm {
		return fmt.Errorf("%w: distance must be between 0 and %d km", ErrInvalidInput, domain.MaxDistanceKm)
	}

	if req == nil {
		return nil
	}

	if req.Budget != nil && *req.Budget < 0 {
		return fmt.Errorf("%w: budget must be non-negative", ErrInvalidInput)
	}

	switch req.TimePreference {
	case "", domain.PreferenceFast, domain.PreferenceEconomical, domain.PreferencePremium:
	default:
		return fmt.Errorf("%w: unknown time preference %q", ErrInvalidInput, req.TimePreference)
	}

	switch req.HelpLevel {
	case "", domain.HelpNone, domain.HelpLoading, domain.HelpFull:
	default:
		return fmt.Errorf("%w: unknown help level %q", ErrInvalidInput, req.HelpLevel)
	}

	return nil
}
