package domain

// ItemCategory item category tag from the catalog
type ItemCategory string

const (
	CategoryFurniture   ItemCategory = "furniture"
	CategoryAppliance   ItemCategory = "appliance"
	CategoryElectronics ItemCategory = "electronics"
	CategoryBoxes       ItemCategory = "boxes"
	CategoryPiano       ItemCategory = "piano"
	CategoryArt         ItemCategory = "art"
	CategoryOther       ItemCategory = "other"
)

// BookingItem one line item to move.
// Volume and weight are per unit; the caller resolves them from the item catalog.
type BookingItem struct {
	ID       string       `json:"id" yaml:"id" validate:"required"`
	Name     string       `json:"name" yaml:"name"`
	Category ItemCategory `json:"category" yaml:"category"`
	Volume   float64      `json:"volume" yaml:"volume" validate:"gte=0"` // m³ per unit
	Weight   float64      `json:"weight" yaml:"weight" validate:"gte=0"` // kg per unit
	Quantity int          `json:"quantity" yaml:"quantity" validate:"gte=1"`
	Fragile  bool         `json:"fragile" yaml:"fragile"`
	Valuable bool         `json:"valuable" yaml:"valuable"`
}

// TotalVolume returns volume × quantity
func (i BookingItem) TotalVolume() float64 {
	return i.Volume * float64(i.Quantity)
}

// TotalWeight returns weight × quantity
func (i BookingItem) TotalWeight() float64 {
	return i.Weight * float64(i.Quantity)
}

// DisplayName returns the name, falling back to the id
func (i BookingItem) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.ID
}

// ItemsSummary aggregated figures over a set of items
type ItemsSummary struct {
	TotalVolume float64
	TotalWeight float64
	TotalUnits  int
	HasFragile  bool
	HasValuable bool
}

// SummarizeItems aggregates volume, weight and flags
func SummarizeItems(items []BookingItem) ItemsSummary {
	var s ItemsSummary
	for _, item := range items {
		s.TotalVolume += item.TotalVolume()
		s.TotalWeight += item.TotalWeight()
		s.TotalUnits += item.Quantity
		s.HasFragile = s.HasFragile || item.Fragile
		s.HasValuable = s.HasValuable || item.Valuable
	}
	return s
}

// PropertyAccessDetails access conditions at one endpoint (pickup or dropoff)
type PropertyAccessDetails struct {
	Floor        int  `json:"floor" validate:"gte=0,lte=100"` // 0 = ground
	HasLift      bool `json:"hasLift"`
	NarrowAccess bool `json:"narrowAccess"`
	LongCarry    bool `json:"longCarry"`
}

// NeedsStairs returns true if items must be carried up or down stairs
func (p PropertyAccessDetails) NeedsStairs() bool {
	return p.Floor > 0 && !p.HasLift
}
