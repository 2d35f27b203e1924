package domain

import "time"

// PricingInput booking parameters of a quote.
// Distance (km) and EstimatedDuration (hours) come from the routing provider;
// Slot comes from the availability model (nil = no slot chosen yet).
type PricingInput struct {
	Items               []BookingItem
	ServiceType         string
	Distance            float64
	EstimatedDuration   float64
	Date                time.Time
	Slot                *EnhancedTimeSlot
	Pickup              PropertyAccessDetails
	Dropoff             PropertyAccessDetails
	PromoCode           string
	IsFirstTimeCustomer bool
}

// SlotID returns the chosen slot id or an empty string
func (in *PricingInput) SlotID() string {
	if in.Slot == nil {
		return ""
	}
	return in.Slot.ID
}

// PriceLine named surcharge or discount line
type PriceLine struct {
	Name   string `json:"name"`
	Amount Money  `json:"amount"`
	Reason string `json:"reason"`
}

// PriceMultipliers the factors applied to the pre-surcharge charges
type PriceMultipliers struct {
	Service  float64 `json:"service"`
	Slot     float64 `json:"slot"`
	Seasonal float64 `json:"seasonal"`
	Demand   float64 `json:"demand"`
	Combined float64 `json:"combined"`
}

// PricingBreakdown itemized output of a pricing calculation.
// Invariants: Total == Subtotal + VAT, VAT == round(Subtotal × VATRate), Subtotal >= 0.
type PricingBreakdown struct {
	ServiceType string `json:"serviceType"`

	// Charges before multipliers
	BasePrice      Money   `json:"basePrice"`
	ItemsPrice     Money   `json:"itemsPrice"`
	TotalVolume    float64 `json:"totalVolume"`
	VolumeDiscount Money   `json:"volumeDiscount"`
	DistancePrice  Money   `json:"distancePrice"`
	TimePrice      Money   `json:"timePrice"`
	BillableHours  float64 `json:"billableHours"`
	ServicePrice   Money   `json:"servicePrice"`

	Multipliers   PriceMultipliers `json:"multipliers"`
	AdjustedPrice Money            `json:"adjustedPrice"` // charges × combined multiplier

	Surcharges      []PriceLine `json:"surcharges"`
	SurchargesTotal Money       `json:"surchargesTotal"`

	Discounts     []PriceLine      `json:"discounts"`
	DiscountTotal Money            `json:"discountTotal"`
	Promo         *PromoValidation `json:"promo,omitempty"`

	Subtotal Money   `json:"subtotal"`
	VATRate  float64 `json:"vatRate"`
	VAT      Money   `json:"vat"`
	Total    Money   `json:"total"`

	Recommendations *QuoteRecommendations `json:"recommendations,omitempty"`
	CalculatedAt    time.Time             `json:"calculatedAt"`
}

// ChargesBeforeMultipliers sum of base, service, items, distance and time charges
func (b *PricingBreakdown) ChargesBeforeMultipliers() Money {
	return b.BasePrice + b.ServicePrice + b.ItemsPrice + b.DistancePrice + b.TimePrice
}

// Clone returns a deep copy: slices and pointed-to structs are not shared with b
func (b *PricingBreakdown) Clone() *PricingBreakdown {
	if b == nil {
		return nil
	}

	c := *b
	c.Surcharges = cloneLines(b.Surcharges)
	c.Discounts = cloneLines(b.Discounts)
	if b.Promo != nil {
		promo := *b.Promo
		c.Promo = &promo
	}
	c.Recommendations = b.Recommendations.Clone()
	return &c
}

func cloneLines(lines []PriceLine) []PriceLine {
	if lines == nil {
		return nil
	}
	return append(make([]PriceLine, 0, len(lines)), lines...)
}

// QuoteRecommendations advisory block attached to a quote
type QuoteRecommendations struct {
	SuggestedService *ServiceSuggestion `json:"suggestedService,omitempty"`
	OffPeakSavings   []OffPeakSaving    `json:"offPeakSavings,omitempty"`
	Upgrade          *UpgradeOption     `json:"upgrade,omitempty"`
}

// Clone returns a deep copy of the block
func (r *QuoteRecommendations) Clone() *QuoteRecommendations {
	if r == nil {
		return nil
	}

	c := &QuoteRecommendations{}
	if r.SuggestedService != nil {
		suggestion := *r.SuggestedService
		suggestion.Reasons = cloneStrings(r.SuggestedService.Reasons)
		c.SuggestedService = &suggestion
	}
	if r.OffPeakSavings != nil {
		c.OffPeakSavings = append(make([]OffPeakSaving, 0, len(r.OffPeakSavings)), r.OffPeakSavings...)
	}
	if r.Upgrade != nil {
		upgrade := *r.Upgrade
		upgrade.IncludedServices = cloneStrings(r.Upgrade.IncludedServices)
		c.Upgrade = &upgrade
	}
	return c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}

// ServiceSuggestion a better-scoring service tier than the requested one
type ServiceSuggestion struct {
	ServiceType    string   `json:"serviceType"`
	Score          int      `json:"score"`
	RequestedScore int      `json:"requestedScore"`
	Reasons        []string `json:"reasons"`
}

// OffPeakSaving saving available by moving to a cheaper slot on the same date
type OffPeakSaving struct {
	SlotID     string   `json:"slotId"`
	StartTime  string   `json:"startTime"`
	Type       SlotType `json:"type"`
	Multiplier float64  `json:"multiplier"`
	Saving     Money    `json:"saving"`
}

// UpgradeOption upgrade path to the premium tier
type UpgradeOption struct {
	ServiceType      string   `json:"serviceType"`
	AdditionalCost   Money    `json:"additionalCost"`
	Total            Money    `json:"total"`
	IncludedServices []string `json:"includedServices"`
}
