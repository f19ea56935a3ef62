package schedule

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"servismart/models"
	"servismart/utils"
)

// FallbackDurationMinutes is assumed for appointments whose vehicle or plan
// cannot be resolved against the pricing catalog.
const FallbackDurationMinutes = 30

var (
	hourPattern   = regexp.MustCompile(`(\d+)\s*h`)
	minutePattern = regexp.MustCompile(`(\d+)\s*(m|minute|minutes)`)
	digitsOnly    = regexp.MustCompile(`^\d+$`)
)

// ParseDuration converts a human-readable duration like "1h 20 Minutes" into
// total minutes. An optional "<N>h" part contributes N*60 and an optional
// "<N> minute(s)"/"<N>m" part contributes N. A purely numeric string is read
// as a minute count. Anything else yields 0.
func ParseDuration(s string) int {
	if s == "" {
		return 0
	}
	total := 0
	lower := strings.ToLower(s)
	if m := hourPattern.FindStringSubmatch(lower); m != nil {
		h, _ := strconv.Atoi(m[1])
		total += h * 60
	}
	if m := minutePattern.FindStringSubmatch(lower); m != nil {
		n, _ := strconv.Atoi(m[1])
		total += n
	}
	if total == 0 && digitsOnly.MatchString(strings.TrimSpace(s)) {
		total, _ = strconv.Atoi(strings.TrimSpace(s))
	}
	return total
}

// PlanDuration resolves the expected service duration in minutes for a
// (vehicle type, plan price) pair. The plan price is matched by decimal
// string equality against the vehicle's price list. Unknown vehicles or
// prices fall back to FallbackDurationMinutes with a diagnostic.
func PlanDuration(catalog models.PricingCatalog, vehicleType, planPrice string) int {
	pricing, ok := catalog[vehicleType]
	if !ok || planPrice == "" {
		utils.GetLogger().Warn("Vehicle type not found in pricing catalog, using fallback duration",
			zap.String("vehicleType", vehicleType),
			zap.String("planPrice", planPrice))
		return FallbackDurationMinutes
	}
	for i, price := range pricing.Prices {
		if strconv.Itoa(price) == planPrice {
			return ParseDuration(pricing.Times[i])
		}
	}
	utils.GetLogger().Warn("Plan price not found for vehicle, using fallback duration",
		zap.String("vehicleType", vehicleType),
		zap.String("planPrice", planPrice))
	return FallbackDurationMinutes
}
