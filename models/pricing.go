package models

// PlanTier indexes into a vehicle's price/duration lists.
type PlanTier int

const (
	TierBasic PlanTier = iota
	TierFull
	TierGeneral
)

// VehiclePricing holds the three plan prices for a vehicle type and the
// parallel expected service durations (index 0 = Basic, 1 = Full, 2 = General).
type VehiclePricing struct {
	Prices []int    `json:"prices"`
	Times  []string `json:"times"`
}

// PricingCatalog maps a vehicle type name to its plan tiers.
type PricingCatalog map[string]VehiclePricing

// ExtraFeatureOptions lists the optional add-on features a customer may pick.
var ExtraFeatureOptions = []string{
	"Tire Shine",
	"Express Interior",
	"Interior Vacuum",
	"Dashboard Polish & Clean",
	"Engine Wash",
}

// DefaultPricingCatalog returns the wash menu offered by the shop.
func DefaultPricingCatalog() PricingCatalog {
	return PricingCatalog{
		"Sedan Car": {
			Prices: []int{500, 1000, 2000},
			Times:  []string{"20 Minutes", "40 Minutes", "1h 20 Minutes"},
		},
		"Minivan Car": {
			Prices: []int{700, 1200, 2500},
			Times:  []string{"30 Minutes", "50 Minutes", "1h 30 Minutes"},
		},
		"Microbus": {
			Prices: []int{1000, 1500, 2800},
			Times:  []string{"40 Minutes", "1h", "1h 40 Minutes"},
		},
		"SUV Car": {
			Prices: []int{700, 1200, 2500},
			Times:  []string{"30 Minutes", "50 Minutes", "1h 30 Minutes"},
		},
		"Mid Size SUV": {
			Prices: []int{800, 1300, 2400},
			Times:  []string{"40 Minutes", "1h", "1h 30 Minutes"},
		},
		"Full Size SUV": {
			Prices: []int{1000, 1500, 2800},
			Times:  []string{"50 Minutes", "1h 20 Minutes", "2h"},
		},
	}
}
