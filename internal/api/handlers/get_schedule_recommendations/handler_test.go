package get_schedule_recommendations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-QuoteService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-QuoteService/internal/integrations/weather"
	"github.com/m04kA/SMC-QuoteService/internal/service/availability"
	"github.com/m04kA/SMC-QuoteService/pkg/logger"
)

type stubService struct {
	recs    []domain.ScheduleRecommendation
	err     error
	gotDate time.Time
	gotOpts availability.ScheduleOptions
}

func (s *stubService) GetScheduleRecommendations(_ context.Context, startDate time.Time, opts availability.ScheduleOptions) ([]domain.ScheduleRecommendation, error) {
	s.gotDate = startDate
	s.gotOpts = opts
	return s.recs, s.err
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func get(h *Handler, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, url, nil))
	return w
}

func TestHandler_Handle_Success(t *testing.T) {
	date := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)
	svc := &stubService{recs: []domain.ScheduleRecommendation{{
		Date: date,
		Slot: domain.EnhancedTimeSlot{
			TimeSlot:   domain.TimeSlot{ID: domain.SlotID(date, "09:30"), StartTime: "09:30", Type: domain.SlotMorning},
			Multiplier: 1.155,
			Demand:     domain.DemandHigh,
			Popular:    true,
		},
		Priority: 3,
		Reasons:  []string{"Matches your preferred time", "Popular time slot"},
	}}}
	h := NewHandler(svc, logger.NewNop())

	w := get(h, "/api/v1/schedule-recommendations?startDate=2026-10-20&flexibility=asap&preferredTime=09:30&limit=5")

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.gotDate.Equal(date))
	assert.Equal(t, domain.FlexibilityASAP, svc.gotOpts.Flexibility)
	assert.Equal(t, 5, svc.gotOpts.Limit)

	var body ScheduleResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Recommendations, 1)
	assert.Equal(t, "2026-10-20", body.Recommendations[0].Date)
	assert.Equal(t, "2026-10-20_09:30", body.Recommendations[0].Slot.ID)
	assert.Equal(t, 3.0, body.Recommendations[0].Priority)
	assert.Len(t, body.Recommendations[0].Reasons, 2)
}

func TestHandler_Handle_EmptyResultIsList(t *testing.T) {
	h := NewHandler(&stubService{}, logger.NewNop())

	w := get(h, "/api/v1/schedule-recommendations?startDate=2026-10-20")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"recommendations": []}`, w.Body.String())
}

func TestHandler_Handle_UnknownFlexibility(t *testing.T) {
	svc := availability.NewService(
		availability.DefaultConfig(),
		reservation.NewRepository(),
		catalog.NewDefaultRepository(),
		weather.NewStatic(),
		logger.NewNop(),
	).WithTimeProvider(fixedClock{now: time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)})
	h := NewHandler(svc, logger.NewNop())

	w := get(h, "/api/v1/schedule-recommendations?startDate=2026-10-20&flexibility=sometime")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = get(h, "/api/v1/schedule-recommendations?startDate=2026-10-20&flexibility=flexible")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		err        error
		wantStatus int
	}{
		{
			name:       "missing start date",
			url:        "/api/v1/schedule-recommendations",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed limit",
			url:        "/api/v1/schedule-recommendations?startDate=2026-10-20&limit=all",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid input from service",
			url:        "/api/v1/schedule-recommendations?startDate=2026-10-20&travelTime=999",
			err:        availability.ErrInvalidInput,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "service failure",
			url:        "/api/v1/schedule-recommendations?startDate=2026-10-20",
			err:        errors.New("store unavailable"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubService{err: tt.err}, logger.NewNop())

			w := get(h, tt.url)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
