package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/service/availability"
	"github.com/m04kA/SMC-QuoteService/pkg/logger"
)

type stubService struct {
	slots   []domain.EnhancedTimeSlot
	err     error
	gotDate time.Time
	gotOpts availability.SlotOptions
}

func (s *stubService) GetAvailableTimeSlots(_ context.Context, date time.Time, opts availability.SlotOptions) ([]domain.EnhancedTimeSlot, error) {
	s.gotDate = date
	s.gotOpts = opts
	return s.slots, s.err
}

func TestHandler_Handle_Success(t *testing.T) {
	date := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	svc := &stubService{slots: []domain.EnhancedTimeSlot{{
		TimeSlot: domain.TimeSlot{
			ID:        domain.SlotID(date, "07:00"),
			StartTime: "07:00",
			EndTime:   "09:00",
			Type:      domain.SlotEarly,
		},
		Multiplier: 0.85,
		Demand:     domain.DemandLow,
	}}}
	h := NewHandler(svc, logger.NewNop())

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?date=2026-10-20&travelTime=45", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.gotDate.Equal(date))
	assert.Equal(t, 45, svc.gotOpts.TravelTimeMinutes)

	var body SlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2026-10-20", body.Date)
	require.Len(t, body.Slots, 1)
	assert.Equal(t, "2026-10-20_07:00", body.Slots[0].ID)
	assert.Equal(t, domain.SlotEarly, body.Slots[0].Type)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		err        error
		wantStatus int
	}{
		{
			name:       "missing date",
			url:        "/api/v1/available-slots",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed date",
			url:        "/api/v1/available-slots?date=20-10-2026",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed travel time",
			url:        "/api/v1/available-slots?date=2026-10-20&travelTime=soon",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "travel time out of range",
			url:        "/api/v1/available-slots?date=2026-10-20&travelTime=500",
			err:        fmt.Errorf("%w: travel time", availability.ErrInvalidInput),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "service failure",
			url:        "/api/v1/available-slots?date=2026-10-20",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubService{err: tt.err}, logger.NewNop())

			w := httptest.NewRecorder()
			h.Handle(w, httptest.NewRequest(http.MethodGet, tt.url, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
