package pricing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/infra/cache"
	"github.com/m04kA/SMC-QuoteService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-QuoteService/pkg/logger"
	"github.com/m04kA/SMC-QuoteService/pkg/ptr"
)

func TestValidatePromoCode(t *testing.T) {
	svc, _, _ := newTestService(t)

	tests := []struct {
		name         string
		code         string
		orderValue   float64
		pctx         domain.PromoContext
		wantValid    bool
		wantDiscount float64
		wantErrPart  string
	}{
		{
			name:        "unknown code",
			code:        "NOPE",
			orderValue:  300,
			wantErrPart: "not found",
		},
		{
			name:        "first-time code for a returning customer",
			code:        "WELCOME10",
			orderValue:  300,
			pctx:        domain.PromoContext{ServiceType: domain.ServiceManAndVan},
			wantErrPart: "eligible",
		},
		{
			name:         "first-time code for a new customer",
			code:         "welcome10",
			orderValue:   300,
			pctx:         domain.PromoContext{ServiceType: domain.ServiceManAndVan, IsFirstTimeCustomer: true},
			wantValid:    true,
			wantDiscount: 30,
		},
		{
			name:         "percentage capped by the code maximum",
			code:         "WELCOME10",
			orderValue:   1000,
			pctx:         domain.PromoContext{IsFirstTimeCustomer: true},
			wantValid:    true,
			wantDiscount: 50,
		},
		{
			name:        "below minimum order value",
			code:        "SAVE20",
			orderValue:  100,
			wantErrPart: "Minimum order value of £150.00",
		},
		{
			name:         "fixed amount",
			code:         "SAVE20",
			orderValue:   150,
			wantValid:    true,
			wantDiscount: 20,
		},
		{
			name:        "service type not allowed",
			code:        "FREEPACK",
			orderValue:  300,
			pctx:        domain.PromoContext{ServiceType: domain.ServiceManAndVan},
			wantErrPart: "selected service",
		},
		{
			name:         "free service credit",
			code:         "FREEPACK",
			orderValue:   300,
			pctx:         domain.PromoContext{ServiceType: domain.ServiceTwoMenVan},
			wantValid:    true,
			wantDiscount: 45,
		},
		{
			name:        "distance too short",
			code:        "LONGHAUL15",
			orderValue:  300,
			pctx:        domain.PromoContext{Distance: 20},
			wantErrPart: "at least 50 km",
		},
		{
			name:         "long distance capped by the code maximum",
			code:         "LONGHAUL15",
			orderValue:   1000,
			pctx:         domain.PromoContext{Distance: 80},
			wantValid:    true,
			wantDiscount: 100,
		},
		{
			name:        "expired",
			code:        "SUMMER2024",
			orderValue:  300,
			wantErrPart: "expired",
		},
		{
			name:        "usage exhausted",
			code:        "FLASH50",
			orderValue:  300,
			wantErrPart: "usage limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := svc.ValidatePromoCode(context.Background(), tt.code, domain.MoneyFromPounds(tt.orderValue), tt.pctx)
			require.NoError(t, err)

			assert.Equal(t, tt.wantValid, v.Valid)
			assert.Equal(t, domain.NormalizePromoCode(tt.code), v.Code)
			if tt.wantValid {
				assert.Equal(t, domain.MoneyFromPounds(tt.wantDiscount), v.Discount)
				assert.Empty(t, v.Error)
			} else {
				assert.Equal(t, domain.Money(0), v.Discount)
				assert.Contains(t, v.Error, tt.wantErrPart)
			}
		})
	}
}

func TestValidatePromoCode_GlobalCaps(t *testing.T) {
	repo := catalog.NewRepository(catalog.Catalog{
		ServiceTypes: catalog.DefaultServiceTypes(),
		PromoCodes: []domain.PromoCode{
			{Code: "HALF", Type: domain.DiscountPercentage, Value: 50},
			{Code: "HUNDRED", Type: domain.DiscountFixed, Value: 100},
		},
	})
	svc := NewService(DefaultConfig(), repo, cache.New[string, *domain.PricingBreakdown](time.Minute, nil), logger.NewNop())

	tests := []struct {
		name       string
		code       string
		orderValue float64
		want       float64
	}{
		// 50% от £1000 = £500, глобальный потолок £200
		{"absolute cap", "HALF", 1000, 200},
		// 50% от £300 = £150, потолок 30% = £90
		{"percentage cap", "HALF", 300, 90},
		// £100 при заказе £200, потолок 30% = £60
		{"fixed above percentage cap", "HUNDRED", 200, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := svc.ValidatePromoCode(context.Background(), tt.code, domain.MoneyFromPounds(tt.orderValue), domain.PromoContext{})
			require.NoError(t, err)
			require.True(t, v.Valid)
			assert.Equal(t, domain.MoneyFromPounds(tt.want), v.Discount)
		})
	}

	v, err := svc.ValidatePromoCode(context.Background(), "HUNDRED", 0, domain.PromoContext{})
	require.NoError(t, err)
	assert.False(t, v.Valid)
}

func TestValidatePromoCode_ExpiryUsesClock(t *testing.T) {
	repo := catalog.NewRepository(catalog.Catalog{
		ServiceTypes: catalog.DefaultServiceTypes(),
		PromoCodes: []domain.PromoCode{
			{
				Code:      "AUTUMN",
				Type:      domain.DiscountFixed,
				Value:     10,
				ExpiresAt: ptr.Ptr(time.Date(2026, 10, 31, 23, 59, 0, 0, time.UTC)),
			},
		},
	})
	clock := &testClock{now: testNow}
	svc := NewService(DefaultConfig(), repo, cache.New[string, *domain.PricingBreakdown](time.Minute, clock), logger.NewNop()).
		WithTimeProvider(clock)

	v, err := svc.ValidatePromoCode(context.Background(), "AUTUMN", domain.MoneyFromPounds(200), domain.PromoContext{})
	require.NoError(t, err)
	assert.True(t, v.Valid)

	clock.Advance(30 * 24 * time.Hour)

	v, err = svc.ValidatePromoCode(context.Background(), "AUTUMN", domain.MoneyFromPounds(200), domain.PromoContext{})
	require.NoError(t, err)
	assert.False(t, v.Valid)
	assert.Contains(t, v.Error, "expired")
}
