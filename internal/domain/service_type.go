package domain

// VehicleClass vehicle used by a service tier
type VehicleClass string

const (
	VehicleSmallVan  VehicleClass = "small_van"
	VehicleLargeVan  VehicleClass = "large_van"
	VehicleLuton     VehicleClass = "luton"
	VehicleSelfDrive VehicleClass = "self_drive_van"
)

// Well-known service tier ids
const (
	ServiceManAndVan = "man-and-van"
	ServiceTwoMenVan = "two-men-van"
	ServicePremium   = "premium"
	ServiceSelfDrive = "self-drive"
)

// ServiceType static catalog entry for a service tier
type ServiceType struct {
	ID               string       `json:"id" yaml:"id" validate:"required"`
	Name             string       `json:"name" yaml:"name"`
	BasePrice        float64      `json:"basePrice" yaml:"base_price" validate:"gte=0"`
	PricePerKm       float64      `json:"pricePerKm" yaml:"price_per_km" validate:"gte=0"`
	PricePerHour     *float64     `json:"pricePerHour,omitempty" yaml:"price_per_hour"`
	ServiceCharge    float64      `json:"serviceCharge" yaml:"service_charge" validate:"gte=0"`
	Multiplier       float64      `json:"multiplier" yaml:"multiplier" validate:"gt=0"`
	IncludedServices []string     `json:"includedServices" yaml:"included_services"`
	MaxVolume        float64      `json:"maxVolume" yaml:"max_volume" validate:"gt=0"` // m³
	MaxWeight        float64      `json:"maxWeight" yaml:"max_weight" validate:"gt=0"` // kg
	CrewSize         int          `json:"crewSize" yaml:"crew_size" validate:"gte=0"`
	VehicleClass     VehicleClass `json:"vehicleClass" yaml:"vehicle_class"`
	Premium          bool         `json:"premium" yaml:"premium"`
}

// HasHourlyRate returns true if labour time is charged
func (s *ServiceType) HasHourlyRate() bool {
	return s.PricePerHour != nil && *s.PricePerHour > 0
}

// HourlyRate returns the per-hour rate or 0
func (s *ServiceType) HourlyRate() float64 {
	if s.PricePerHour == nil {
		return 0
	}
	return *s.PricePerHour
}

// IsSelfDrive returns true if the customer drives and loads the van themselves
func (s *ServiceType) IsSelfDrive() bool {
	return s.CrewSize == 0
}

// FitsVolume returns true if the volume fits within capacity
func (s *ServiceType) FitsVolume(volume float64) bool {
	return volume <= s.MaxVolume
}

// FitsWeight returns true if the weight fits within capacity
func (s *ServiceType) FitsWeight(weight float64) bool {
	return weight <= s.MaxWeight
}
