package check_availability

import (
	"time"

	"github.com/m04kA/SMC-QuoteService/internal/domain"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date             string   `json:"date"`
	Available        bool     `json:"available"`
	ReasonCode       string   `json:"reasonCode,omitempty"`
	Reason           string   `json:"reason,omitempty"`
	AlternativeDates []string `json:"alternativeDates,omitempty"`
}

// FromAvailabilityCheck конвертирует результат проверки в HTTP response
func FromAvailabilityCheck(date time.Time, check domain.AvailabilityCheck) *AvailabilityResponse {
	alternatives := make([]string, 0, len(check.AlternativeDates))
	for _, d := range check.AlternativeDates {
		alternatives = append(alternatives, d.Format(domain.DateFormat))
	}

	return &AvailabilityResponse{
		Date:             date.Format(domain.DateFormat),
		Available:        check.Available,
		ReasonCode:       string(check.ReasonCode),
		Reason:           check.Reason,
		AlternativeDates: alternatives,
	}
}
