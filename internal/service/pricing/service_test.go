package pricing

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/infra/cache"
	"github.com/m04kA/SMC-QuoteService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-QuoteService/internal/service/availability"
	"github.com/m04kA/SMC-QuoteService/pkg/logger"
	"github.com/m04kA/SMC-QuoteService/pkg/ptr"
	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

type countingMetrics struct {
	hits, misses, quotes int
}

func (m *countingMetrics) CacheHit()                       { m.hits++ }
func (m *countingMetrics) CacheMiss()                      { m.misses++ }
func (m *countingMetrics) QuoteCalculated(string, float64) { m.quotes++ }

type mockRecommender struct {
	mock.Mock
}

func (m *mockRecommender) GetServiceRecommendations(ctx context.Context, items []domain.BookingItem, distance float64, req *domain.ServiceRequirements) ([]domain.ServiceRecommendation, error) {
	args := m.Called(ctx, items, distance, req)
	if recs := args.Get(0); recs != nil {
		return recs.([]domain.ServiceRecommendation), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSlotSource struct {
	mock.Mock
}

func (m *mockSlotSource) GetAvailableTimeSlots(ctx context.Context, date time.Time, opts availability.SlotOptions) ([]domain.EnhancedTimeSlot, error) {
	args := m.Called(ctx, date, opts)
	if slots := args.Get(0); slots != nil {
		return slots.([]domain.EnhancedTimeSlot), args.Error(1)
	}
	return nil, args.Error(1)
}

var testNow = time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

// Вторник, октябрь: сезонный множитель 1.0, не выходной
var tuesday = time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *testClock, *countingMetrics) {
	t.Helper()

	clock := &testClock{now: testNow}
	metrics := &countingMetrics{}
	svc := NewService(
		DefaultConfig(),
		catalog.NewDefaultRepository(),
		cache.New[string, *domain.PricingBreakdown](5*time.Minute, clock),
		logger.NewNop(),
	).WithTimeProvider(clock).WithMetrics(metrics)

	return svc, clock, metrics
}

func plainSlot(start string, multiplier float64, demand domain.DemandLevel) *domain.EnhancedTimeSlot {
	return &domain.EnhancedTimeSlot{
		TimeSlot:   domain.TimeSlot{ID: "2026-10-20_" + start, Date: tuesday, StartTime: types.TimeString(start)},
		Multiplier: multiplier,
		Demand:     demand,
	}
}

func basicInput() *domain.PricingInput {
	return &domain.PricingInput{
		Items: []domain.BookingItem{
			{ID: "sofa-3", Name: "Three-seat sofa", Category: domain.CategoryFurniture, Volume: 2.5, Weight: 60, Quantity: 1},
			{ID: "box-m", Name: "Medium box", Category: domain.CategoryBoxes, Volume: 0.1, Weight: 15, Quantity: 20},
			{ID: "tv-55", Name: "55in TV", Category: domain.CategoryElectronics, Volume: 0.3, Weight: 20, Quantity: 1, Fragile: true, Valuable: true},
		},
		ServiceType:       domain.ServiceManAndVan,
		Distance:          15,
		EstimatedDuration: 3,
		Date:              tuesday,
		Slot:              plainSlot("14:30", 1.0, domain.DemandMedium),
	}
}

func TestCalculatePricing_FullBreakdown(t *testing.T) {
	svc, _, _ := newTestService(t)

	in := basicInput()
	in.Pickup = domain.PropertyAccessDetails{Floor: 2}
	in.Dropoff = domain.PropertyAccessDetails{Floor: 4, HasLift: true, NarrowAccess: true}
	in.PromoCode = "save20"

	b, err := svc.CalculatePricing(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, domain.MoneyFromPounds(45), b.BasePrice)
	assert.Equal(t, domain.Money(0), b.ServicePrice)
	assert.InDelta(t, 4.8, b.TotalVolume, 1e-9)
	assert.Equal(t, domain.MoneyFromPounds(120), b.ItemsPrice)
	assert.Equal(t, domain.Money(0), b.VolumeDiscount)
	assert.Equal(t, domain.MoneyFromPounds(12), b.DistancePrice)
	assert.Equal(t, domain.MoneyFromPounds(105), b.TimePrice)
	assert.Equal(t, 3.0, b.BillableHours)

	assert.Equal(t, 1.0, b.Multipliers.Combined)
	assert.Equal(t, domain.MoneyFromPounds(282), b.AdjustedPrice)

	// тяжелый диван 20, ТВ хрупкий 15 + ценный 25, 2 этажа без лифта 30, узкий проход 25
	assert.Len(t, b.Surcharges, 5)
	assert.Equal(t, domain.MoneyFromPounds(115), b.SurchargesTotal)

	require.NotNil(t, b.Promo)
	assert.True(t, b.Promo.Valid)
	assert.Equal(t, "SAVE20", b.Promo.Code)
	assert.Equal(t, domain.MoneyFromPounds(20), b.DiscountTotal)

	assert.Equal(t, domain.MoneyFromPounds(377), b.Subtotal)
	assert.Equal(t, domain.MoneyFromPounds(75.40), b.VAT)
	assert.Equal(t, domain.MoneyFromPounds(452.40), b.Total)
	assert.Equal(t, testNow, b.CalculatedAt)
}

func TestCalculatePricing_InputErrors(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	empty := basicInput()
	empty.Items = nil
	_, err := svc.CalculatePricing(ctx, empty)
	assert.ErrorIs(t, err, ErrNoItems)
	assert.Contains(t, err.Error(), "no items provided")

	unknown := basicInput()
	unknown.ServiceType = "not-real"
	_, err = svc.CalculatePricing(ctx, unknown)
	assert.ErrorIs(t, err, ErrInvalidServiceType)
	assert.Contains(t, err.Error(), "invalid service type")

	tests := []struct {
		name   string
		mutate func(in *domain.PricingInput)
	}{
		{"zero quantity", func(in *domain.PricingInput) { in.Items[0].Quantity = 0 }},
		{"negative volume", func(in *domain.PricingInput) { in.Items[0].Volume = -1 }},
		{"negative distance", func(in *domain.PricingInput) { in.Distance = -1 }},
		{"negative duration", func(in *domain.PricingInput) { in.EstimatedDuration = -0.5 }},
		{"missing date", func(in *domain.PricingInput) { in.Date = time.Time{} }},
		{"negative floor", func(in *domain.PricingInput) { in.Pickup.Floor = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := basicInput()
			tt.mutate(in)
			_, err := svc.CalculatePricing(ctx, in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCalculatePricing_MinimumDuration(t *testing.T) {
	svc, _, _ := newTestService(t)

	in := basicInput()
	in.EstimatedDuration = 0.5

	b, err := svc.CalculatePricing(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, domain.MoneyFromPounds(70), b.TimePrice)
	assert.Equal(t, 2.0, b.BillableHours)
}

func TestCalculatePricing_SelfDriveHasNoTimeCharge(t *testing.T) {
	svc, _, _ := newTestService(t)

	in := basicInput()
	in.ServiceType = domain.ServiceSelfDrive

	b, err := svc.CalculatePricing(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, domain.Money(0), b.TimePrice)
	assert.Equal(t, 0.9, b.Multipliers.Service)
}

func TestCalculatePricing_Distance(t *testing.T) {
	svc, _, _ := newTestService(t)

	tests := []struct {
		name     string
		distance float64
		want     domain.Money
	}{
		{"zero", 0, 0},
		{"inside free distance", 5, 0},
		{"regular", 15, domain.MoneyFromPounds(12)},
		// 55 км × 1.20 + 10 км × 0.50
		{"long distance", 60, domain.MoneyFromPounds(71)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := basicInput()
			in.Distance = tt.distance

			b, err := svc.CalculatePricing(context.Background(), in)
			require.NoError(t, err)

			assert.Equal(t, tt.want, b.DistancePrice)
			assert.Greater(t, b.Total, domain.Money(0))
		})
	}
}

func TestCalculatePricing_VolumeMonotonic(t *testing.T) {
	svc, _, _ := newTestService(t)

	prev := domain.Money(-1)
	for volume := 0.5; volume <= 40; volume += 0.5 {
		in := basicInput()
		in.Items = []domain.BookingItem{{ID: "crate", Volume: volume, Weight: 10, Quantity: 1}}

		b, err := svc.CalculatePricing(context.Background(), in)
		require.NoError(t, err)

		assert.Greater(t, b.ItemsPrice, prev, "volume %.1f", volume)
		prev = b.ItemsPrice
	}
}

func TestCalculatePricing_VolumeDiscountAboveThreshold(t *testing.T) {
	svc, _, _ := newTestService(t)

	in := basicInput()
	in.Items = []domain.BookingItem{{ID: "crate", Volume: 10, Quantity: 3}}

	b, err := svc.CalculatePricing(context.Background(), in)
	require.NoError(t, err)

	// 30 м³ × £25 = £750, скидка 10% на 10 м³ сверх порога = £25
	assert.Equal(t, domain.MoneyFromPounds(725), b.ItemsPrice)
	assert.Equal(t, domain.MoneyFromPounds(25), b.VolumeDiscount)
}

func TestCalculatePricing_VATInvariant(t *testing.T) {
	svc, _, _ := newTestService(t)

	tests := []struct {
		name   string
		mutate func(in *domain.PricingInput)
	}{
		{"basic", func(in *domain.PricingInput) {}},
		{"odd distance", func(in *domain.PricingInput) { in.Distance = 17.37 }},
		{"odd duration", func(in *domain.PricingInput) { in.EstimatedDuration = 3.33 }},
		{"premium weekend", func(in *domain.PricingInput) {
			in.ServiceType = domain.ServicePremium
			in.Date = time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
			in.Slot = plainSlot("10:30", 1.3283, domain.DemandHigh)
		}},
		{"summer with promo", func(in *domain.PricingInput) {
			in.Date = time.Date(2026, 7, 7, 0, 0, 0, 0, time.UTC)
			in.PromoCode = "WELCOME10"
			in.IsFirstTimeCustomer = true
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := basicInput()
			tt.mutate(in)

			b, err := svc.CalculatePricing(context.Background(), in)
			require.NoError(t, err)

			assert.Equal(t, b.Subtotal+b.VAT, b.Total)
			assert.InDelta(t, math.Round(b.Subtotal.Pounds()*0.20*100)/100, b.VAT.Pounds(), 1e-9)
			assert.GreaterOrEqual(t, b.Subtotal, domain.Money(0))
		})
	}
}

func TestCalculatePricing_Multipliers(t *testing.T) {
	svc, _, _ := newTestService(t)

	in := basicInput()
	in.ServiceType = domain.ServicePremium
	in.Date = time.Date(2026, 7, 18, 0, 0, 0, 0, time.UTC) // суббота, июль
	in.Slot = plainSlot("10:30", 1.3283, domain.DemandHigh)

	b, err := svc.CalculatePricing(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 1.25, b.Multipliers.Service)
	assert.Equal(t, 1.3283, b.Multipliers.Slot)
	assert.Equal(t, 1.20, b.Multipliers.Seasonal)
	// выходной 1.10 против высокого спроса 1.15 - берется больший
	assert.Equal(t, 1.15, b.Multipliers.Demand)
	assert.InDelta(t, 1.25*1.3283*1.20*1.15, b.Multipliers.Combined, 1e-4)
	assert.Equal(t, b.ChargesBeforeMultipliers().MulRound(b.Multipliers.Combined), b.AdjustedPrice)

	// без слота: выходной дает 1.10, класс спроса по умолчанию средний
	in.Slot = nil
	b, err = svc.CalculatePricing(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 1.0, b.Multipliers.Slot)
	assert.Equal(t, 1.10, b.Multipliers.Demand)
}

func TestCalculatePricing_CacheAndDeterminism(t *testing.T) {
	svc, clock, metrics := newTestService(t)
	ctx := context.Background()

	first, err := svc.CalculatePricing(ctx, basicInput())
	require.NoError(t, err)

	// порядок вещей не влияет на ключ
	reordered := basicInput()
	reordered.Items[0], reordered.Items[2] = reordered.Items[2], reordered.Items[0]

	second, err := svc.CalculatePricing(ctx, reordered)
	require.NoError(t, err)

	assert.Equal(t, 1, metrics.misses)
	assert.Equal(t, 1, metrics.hits)
	assert.Equal(t, first, second)

	// после истечения TTL расчет выполняется заново и совпадает с кэшированным
	clock.Advance(5*time.Minute + time.Second)

	third, err := svc.CalculatePricing(ctx, basicInput())
	require.NoError(t, err)

	assert.Equal(t, 2, metrics.misses)
	assert.Equal(t, first.Total, third.Total)
	assert.Equal(t, first.Subtotal, third.Subtotal)
	assert.Equal(t, first.VAT, third.VAT)
}

func TestCalculatePricing_CachedQuoteIsolatedFromCaller(t *testing.T) {
	svc, _, metrics := newTestService(t)
	ctx := context.Background()

	recommender := &mockRecommender{}
	recommender.On("GetServiceRecommendations", mock.Anything, mock.Anything, 15.0, (*domain.ServiceRequirements)(nil)).
		Return([]domain.ServiceRecommendation{
			{ServiceType: domain.ServiceType{ID: domain.ServiceTwoMenVan}, Score: 50, Reasons: []string{"Fits your items"}},
			{ServiceType: domain.ServiceType{ID: domain.ServiceManAndVan}, Score: 20},
		}, nil)
	svc.WithRecommender(recommender)

	in := basicInput()
	in.PromoCode = "SAVE20"

	first, err := svc.CalculatePricing(ctx, in)
	require.NoError(t, err)
	require.NotEmpty(t, first.Surcharges)
	require.NotEmpty(t, first.Discounts)
	require.NotNil(t, first.Promo)
	require.NotNil(t, first.Recommendations)
	require.NotNil(t, first.Recommendations.SuggestedService)

	want := first.Clone()

	// изменения у вызывающего не должны попадать в кэш
	first.Surcharges[0].Amount = 999999
	first.Discounts[0].Amount = 1
	first.Promo.Discount = 1
	first.Recommendations.SuggestedService.Reasons[0] = "edited"
	first.Recommendations.Upgrade = nil

	second, err := svc.CalculatePricing(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 1, metrics.hits)
	assert.Equal(t, want, second)

	// и изменения результата попадания тоже
	second.Surcharges[0].Amount = 1

	third, err := svc.CalculatePricing(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, want, third)
}

func TestCalculatePricing_CachedPromoRecheckedAfterExhaustion(t *testing.T) {
	clock := &testClock{now: testNow}
	metrics := &countingMetrics{}
	registry := catalog.NewRepository(catalog.Catalog{
		ServiceTypes: catalog.DefaultServiceTypes(),
		PromoCodes: []domain.PromoCode{
			{Code: "ONCE", Type: domain.DiscountFixed, Value: 30, UsageLimit: ptr.Ptr(1)},
		},
	})
	svc := NewService(
		DefaultConfig(),
		registry,
		cache.New[string, *domain.PricingBreakdown](5*time.Minute, clock),
		logger.NewNop(),
	).WithTimeProvider(clock).WithMetrics(metrics)
	ctx := context.Background()

	in := basicInput()
	in.PromoCode = "ONCE"

	first, err := svc.CalculatePricing(ctx, in)
	require.NoError(t, err)
	require.True(t, first.Promo.Valid)
	assert.Equal(t, domain.MoneyFromPounds(30), first.DiscountTotal)

	require.NoError(t, registry.IncrementPromoUsage(ctx, "ONCE"))

	second, err := svc.CalculatePricing(ctx, in)
	require.NoError(t, err)

	assert.Equal(t, 2, metrics.misses)
	assert.Equal(t, 0, metrics.hits)
	require.NotNil(t, second.Promo)
	assert.False(t, second.Promo.Valid)
	assert.Equal(t, domain.Money(0), second.DiscountTotal)
	assert.Empty(t, second.Discounts)
	assert.Equal(t, first.Subtotal+domain.MoneyFromPounds(30), second.Subtotal)

	// пересчитанный расчет снова кэшируется
	third, err := svc.CalculatePricing(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 1, metrics.hits)
	assert.Equal(t, second, third)
}

func TestCalculatePricing_CachedPromoExpiresWithClock(t *testing.T) {
	clock := &testClock{now: testNow}
	metrics := &countingMetrics{}
	registry := catalog.NewRepository(catalog.Catalog{
		ServiceTypes: catalog.DefaultServiceTypes(),
		PromoCodes: []domain.PromoCode{
			{Code: "LASTCALL", Type: domain.DiscountFixed, Value: 10, ExpiresAt: ptr.Ptr(testNow.Add(time.Minute))},
		},
	})
	svc := NewService(
		DefaultConfig(),
		registry,
		cache.New[string, *domain.PricingBreakdown](5*time.Minute, clock),
		logger.NewNop(),
	).WithTimeProvider(clock).WithMetrics(metrics)
	ctx := context.Background()

	in := basicInput()
	in.PromoCode = "LASTCALL"

	first, err := svc.CalculatePricing(ctx, in)
	require.NoError(t, err)
	require.True(t, first.Promo.Valid)

	// TTL кэша еще не истек, а код уже просрочен
	clock.Advance(2 * time.Minute)

	second, err := svc.CalculatePricing(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, 0, metrics.hits)
	assert.False(t, second.Promo.Valid)
	assert.Equal(t, domain.Money(0), second.DiscountTotal)
}

func TestCalculatePricing_CacheKeyIncludesAccessAndCustomer(t *testing.T) {
	svc, _, metrics := newTestService(t)
	ctx := context.Background()

	base, err := svc.CalculatePricing(ctx, basicInput())
	require.NoError(t, err)

	withStairs := basicInput()
	withStairs.Dropoff = domain.PropertyAccessDetails{Floor: 3}

	stairs, err := svc.CalculatePricing(ctx, withStairs)
	require.NoError(t, err)

	assert.Equal(t, 0, metrics.hits)
	assert.Equal(t, base.Total+domain.MoneyFromPounds(45).MulRound(1.2), stairs.Total)
}

func TestCalculatePricing_RejectedPromoIsNotFatal(t *testing.T) {
	svc, _, _ := newTestService(t)

	in := basicInput()
	in.PromoCode = "WELCOME10"
	in.IsFirstTimeCustomer = false

	b, err := svc.CalculatePricing(context.Background(), in)
	require.NoError(t, err)

	require.NotNil(t, b.Promo)
	assert.False(t, b.Promo.Valid)
	assert.Contains(t, b.Promo.Error, "eligible")
	assert.Equal(t, domain.Money(0), b.DiscountTotal)
	assert.Empty(t, b.Discounts)
	assert.Equal(t, b.AdjustedPrice+b.SurchargesTotal, b.Subtotal)
}

func TestCalculatePricing_Recommendations(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	recommender := &mockRecommender{}
	recommender.On("GetServiceRecommendations", mock.Anything, mock.Anything, 15.0, (*domain.ServiceRequirements)(nil)).
		Return([]domain.ServiceRecommendation{
			{ServiceType: domain.ServiceType{ID: domain.ServiceTwoMenVan}, Score: 50, Reasons: []string{"Fits your items"}},
			{ServiceType: domain.ServiceType{ID: domain.ServiceManAndVan}, Score: 20},
		}, nil)

	slots := &mockSlotSource{}
	slots.On("GetAvailableTimeSlots", mock.Anything, tuesday, availability.SlotOptions{}).
		Return([]domain.EnhancedTimeSlot{
			*slotAt("07:00", 0.85, domain.SlotEarly),
			*slotAt("14:30", 1.0, domain.SlotAfternoon),
			*slotAt("19:30", 0.90, domain.SlotLate),
		}, nil)

	svc.WithRecommender(recommender).WithSlotSource(slots)

	b, err := svc.CalculatePricing(ctx, basicInput())
	require.NoError(t, err)
	require.NotNil(t, b.Recommendations)

	suggestion := b.Recommendations.SuggestedService
	require.NotNil(t, suggestion)
	assert.Equal(t, domain.ServiceTwoMenVan, suggestion.ServiceType)
	assert.Equal(t, 20, suggestion.RequestedScore)

	savings := b.Recommendations.OffPeakSavings
	require.Len(t, savings, 2)
	assert.Equal(t, "2026-10-20_07:00", savings[0].SlotID)
	assert.Equal(t, b.AdjustedPrice-b.AdjustedPrice.MulRound(0.85), savings[0].Saving)
	assert.Equal(t, "2026-10-20_19:30", savings[1].SlotID)

	upgrade := b.Recommendations.Upgrade
	require.NotNil(t, upgrade)
	assert.Equal(t, domain.ServicePremium, upgrade.ServiceType)
	assert.Greater(t, upgrade.AdditionalCost, domain.Money(0))
	assert.Equal(t, b.Total+upgrade.AdditionalCost, upgrade.Total)

	recommender.AssertExpectations(t)
	slots.AssertExpectations(t)
}

func TestCalculatePricing_NoUpgradeForPremium(t *testing.T) {
	svc, _, _ := newTestService(t)

	in := basicInput()
	in.ServiceType = domain.ServicePremium

	b, err := svc.CalculatePricing(context.Background(), in)
	require.NoError(t, err)

	if b.Recommendations != nil {
		assert.Nil(t, b.Recommendations.Upgrade)
	}
}

func slotAt(start string, multiplier float64, slotType domain.SlotType) *domain.EnhancedTimeSlot {
	demand := domain.DemandMedium
	if slotType.IsOffPeak() {
		demand = domain.DemandLow
	}
	return &domain.EnhancedTimeSlot{
		TimeSlot:   domain.TimeSlot{ID: "2026-10-20_" + start, Date: tuesday, StartTime: types.TimeString(start), Type: slotType},
		Multiplier: multiplier,
		Demand:     demand,
	}
}
