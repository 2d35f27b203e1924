package check_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
	"github.com/m04kA/SMC-QuoteService/pkg/logger"
)

type stubService struct {
	check domain.AvailabilityCheck
}

func (s stubService) CheckDateAvailability(context.Context, time.Time) domain.AvailabilityCheck {
	return s.check
}

func TestHandler_Handle_Unavailable(t *testing.T) {
	h := NewHandler(stubService{check: domain.AvailabilityCheck{
		Available:  false,
		ReasonCode: domain.ReasonHoliday,
		Reason:     "Christmas Day",
		AlternativeDates: []time.Time{
			time.Date(2026, 12, 28, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 12, 29, 0, 0, 0, 0, time.UTC),
		},
	}}, logger.NewNop())

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/availability?date=2026-12-25", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Available)
	assert.Equal(t, "holiday", body.ReasonCode)
	assert.Equal(t, []string{"2026-12-28", "2026-12-29"}, body.AlternativeDates)
}

func TestHandler_Handle_BadRequest(t *testing.T) {
	h := NewHandler(stubService{}, logger.NewNop())

	for _, url := range []string{"/api/v1/availability", "/api/v1/availability?date=25.12.2026"} {
		w := httptest.NewRecorder()
		h.Handle(w, httptest.NewRequest(http.MethodGet, url, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, url)
	}
}
