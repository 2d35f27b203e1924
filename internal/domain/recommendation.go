package domain

// TimePreference customer priority when choosing a tier
type TimePreference string

const (
	PreferenceFast       TimePreference = "fast"
	PreferenceEconomical TimePreference = "economical"
	PreferencePremium    TimePreference = "premium"
)

// HelpLevel how much loading help the customer needs
type HelpLevel string

const (
	HelpNone    HelpLevel = "none"
	HelpLoading HelpLevel = "loading"
	HelpFull    HelpLevel = "full"
)

// ServiceRequirements optional customer requirements for tier recommendation
type ServiceRequirements struct {
	Budget         *float64       `json:"budget,omitempty"`
	TimePreference TimePreference `json:"timePreference,omitempty"`
	HelpLevel      HelpLevel      `json:"helpLevel,omitempty"`
}

// ServiceRecommendation scored service tier
type ServiceRecommendation struct {
	ServiceType    ServiceType `json:"serviceType"`
	Score          int         `json:"score"`
	Reasons        []string    `json:"reasons"`
	EstimatedPrice Money       `json:"estimatedPrice"`
}
