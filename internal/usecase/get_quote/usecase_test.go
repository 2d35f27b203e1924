package get_quote

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/service/availability"
	"github.com/m04kA/SMC-QuoteService/internal/service/pricing"
	"github.com/m04kA/SMC-QuoteService/pkg/logger"
	"github.com/m04kA/SMC-QuoteService/pkg/types"
)

type mockSlotService struct {
	mock.Mock
}

func (m *mockSlotService) GetAvailableTimeSlots(ctx context.Context, date time.Time, opts availability.SlotOptions) ([]domain.EnhancedTimeSlot, error) {
	args := m.Called(ctx, date, opts)
	if slots := args.Get(0); slots != nil {
		return slots.([]domain.EnhancedTimeSlot), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPricingService struct {
	mock.Mock
}

func (m *mockPricingService) CalculatePricing(ctx context.Context, in *domain.PricingInput) (*domain.PricingBreakdown, error) {
	args := m.Called(ctx, in)
	if b := args.Get(0); b != nil {
		return b.(*domain.PricingBreakdown), args.Error(1)
	}
	return nil, args.Error(1)
}

var quoteDate = time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

func slotAt(start string, multiplier float64) domain.EnhancedTimeSlot {
	return domain.EnhancedTimeSlot{
		TimeSlot: domain.TimeSlot{
			ID:        "2026-10-20_" + start,
			Date:      quoteDate,
			StartTime: types.TimeString(start),
		},
		Multiplier: multiplier,
		Demand:     domain.DemandMedium,
	}
}

func baseRequest() *Request {
	return &Request{
		Items: []domain.BookingItem{
			{ID: "sofa", Volume: 2.5, Weight: 60, Quantity: 1},
		},
		ServiceType:       domain.ServiceManAndVan,
		Distance:          15,
		EstimatedDuration: 3,
		Date:              quoteDate,
	}
}

func TestUseCase_Execute_WithSlot(t *testing.T) {
	slots := new(mockSlotService)
	engine := new(mockPricingService)
	uc := NewUseCase(slots, engine, logger.NewNop())

	req := baseRequest()
	req.StartTime = "07:00"
	req.TravelTimeMinutes = 30

	slots.On("GetAvailableTimeSlots", mock.Anything, quoteDate, availability.SlotOptions{TravelTimeMinutes: 30}).
		Return([]domain.EnhancedTimeSlot{slotAt("07:00", 0.85), slotAt("09:30", 1.155)}, nil)

	quote := &domain.PricingBreakdown{ServiceType: domain.ServiceManAndVan, Total: domain.MoneyFromPounds(300)}
	engine.On("CalculatePricing", mock.Anything, mock.MatchedBy(func(in *domain.PricingInput) bool {
		return in.Slot != nil && in.Slot.Multiplier == 0.85 && in.ServiceType == domain.ServiceManAndVan
	})).Return(quote, nil)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Same(t, quote, resp.Quote)
	require.NotNil(t, resp.Slot)
	assert.Equal(t, "2026-10-20_07:00", resp.Slot.ID)

	slots.AssertExpectations(t)
	engine.AssertExpectations(t)
}

func TestUseCase_Execute_WithoutSlot(t *testing.T) {
	slots := new(mockSlotService)
	engine := new(mockPricingService)
	uc := NewUseCase(slots, engine, logger.NewNop())

	quote := &domain.PricingBreakdown{ServiceType: domain.ServiceManAndVan}
	engine.On("CalculatePricing", mock.Anything, mock.MatchedBy(func(in *domain.PricingInput) bool {
		return in.Slot == nil
	})).Return(quote, nil)

	resp, err := uc.Execute(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Nil(t, resp.Slot)
	slots.AssertNotCalled(t, "GetAvailableTimeSlots", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_Execute_SlotNotAvailable(t *testing.T) {
	slots := new(mockSlotService)
	engine := new(mockPricingService)
	uc := NewUseCase(slots, engine, logger.NewNop())

	req := baseRequest()
	req.StartTime = "12:00"

	slots.On("GetAvailableTimeSlots", mock.Anything, quoteDate, mock.Anything).
		Return([]domain.EnhancedTimeSlot{slotAt("07:00", 0.85)}, nil)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	engine.AssertNotCalled(t, "CalculatePricing", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name       string
		modify     func(r *Request)
		slotsErr   error
		pricingErr error
		wantErr    error
	}{
		{
			name:    "missing date",
			modify:  func(r *Request) { r.Date = time.Time{} },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing service type",
			modify:  func(r *Request) { r.ServiceType = "" },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad start time",
			modify:  func(r *Request) { r.StartTime = "25:99" },
			wantErr: ErrInvalidInput,
		},
		{
			name:     "invalid travel time",
			modify:   func(r *Request) { r.StartTime = "07:00" },
			slotsErr: availability.ErrInvalidInput,
			wantErr:  ErrInvalidInput,
		},
		{
			name:     "slot source failure",
			modify:   func(r *Request) { r.StartTime = "07:00" },
			slotsErr: errors.New("boom"),
			wantErr:  ErrInternal,
		},
		{
			name:       "no items",
			pricingErr: pricing.ErrNoItems,
			wantErr:    ErrNoItems,
		},
		{
			name:       "unknown service type",
			pricingErr: pricing.ErrInvalidServiceType,
			wantErr:    ErrServiceTypeNotFound,
		},
		{
			name:       "invalid pricing input",
			pricingErr: pricing.ErrInvalidInput,
			wantErr:    ErrInvalidInput,
		},
		{
			name:       "pricing failure",
			pricingErr: pricing.ErrInternal,
			wantErr:    ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := new(mockSlotService)
			engine := new(mockPricingService)
			uc := NewUseCase(slots, engine, logger.NewNop())

			req := baseRequest()
			if tt.modify != nil {
				tt.modify(req)
			}

			if tt.slotsErr != nil {
				slots.On("GetAvailableTimeSlots", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.slotsErr)
			}
			if tt.pricingErr != nil {
				engine.On("CalculatePricing", mock.Anything, mock.Anything).Return(nil, tt.pricingErr)
			}

			resp, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, resp)
		})
	}
}
