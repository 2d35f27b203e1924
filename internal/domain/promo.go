package domain

import (
	"strings"
	"time"
)

// DiscountType promo code discount type
type DiscountType string

const (
	DiscountPercentage  DiscountType = "percentage"
	DiscountFixed       DiscountType = "fixed"
	DiscountFreeService DiscountType = "free-service"
)

// PromoConditions eligibility conditions of a promo code
type PromoConditions struct {
	FirstTimeCustomerOnly bool     `json:"firstTimeCustomerOnly" yaml:"first_time_customer_only"`
	ServiceTypes          []string `json:"serviceTypes,omitempty" yaml:"service_types"`
	MinDistanceKm         float64  `json:"minDistanceKm,omitempty" yaml:"min_distance_km"`
}

// AllowsServiceType returns true if the service type is allowed (an empty list allows all)
func (c PromoConditions) AllowsServiceType(serviceType string) bool {
	if len(c.ServiceTypes) == 0 {
		return true
	}
	for _, id := range c.ServiceTypes {
		if id == serviceType {
			return true
		}
	}
	return false
}

// PromoCode promotional code from the registry.
// Value is a percentage (10 = 10%) for DiscountPercentage and pounds otherwise.
type PromoCode struct {
	Code          string          `json:"code" yaml:"code" validate:"required"`
	Description   string          `json:"description" yaml:"description"`
	Type          DiscountType    `json:"type" yaml:"type" validate:"oneof=percentage fixed free-service"`
	Value         float64         `json:"value" yaml:"value" validate:"gt=0"`
	MinOrderValue *float64        `json:"minOrderValue,omitempty" yaml:"min_order_value"`
	MaxDiscount   *float64        `json:"maxDiscount,omitempty" yaml:"max_discount"`
	ExpiresAt     *time.Time      `json:"expiresAt,omitempty" yaml:"expires_at"`
	UsageLimit    *int            `json:"usageLimit,omitempty" yaml:"usage_limit"`
	UsedCount     int             `json:"usedCount" yaml:"used_count"`
	Conditions    PromoConditions `json:"conditions" yaml:"conditions"`
}

// NormalizePromoCode promo codes are case-insensitive
func NormalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsExpired returns true if the code expired before the given moment
func (p *PromoCode) IsExpired(now time.Time) bool {
	return p.ExpiresAt != nil && now.After(*p.ExpiresAt)
}

// IsExhausted returns true if the usage limit is reached
func (p *PromoCode) IsExhausted() bool {
	return p.UsageLimit != nil && p.UsedCount >= *p.UsageLimit
}

// PromoValidation result of promo code validation.
// A rejected code is a value, not an error: the caller shows the reason and continues without discount.
type PromoValidation struct {
	Valid    bool   `json:"valid"`
	Code     string `json:"code,omitempty"`
	Discount Money  `json:"discount"`
	Error    string `json:"error,omitempty"`
}

// PromoContext booking attributes the eligibility conditions are checked against
type PromoContext struct {
	ServiceType         string
	Distance            float64
	IsFirstTimeCustomer bool
}
