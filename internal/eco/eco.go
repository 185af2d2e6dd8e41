package eco

import "github.com/zamtimber/shop/internal/models"

// ImpactFactor holds the per-wood environmental coefficients, per cubic
// meter of timber. Renewability runs 0-10 with higher better; biodiversity
// runs 0-10 with higher meaning more impact.
type ImpactFactor struct {
	CO2PerUnit         float64 `json:"co2PerUnit"`         // kg CO2 equivalent
	WaterUsage         float64 `json:"waterUsage"`         // liters
	LandUse            float64 `json:"landUse"`            // square meters
	Renewability       float64 `json:"renewability"`
	Biodiversity       float64 `json:"biodiversity"`
	TransportEmissions float64 `json:"transportEmissions"` // kg CO2 per km
}

// ImpactReport is the scaled component breakdown plus the weighted total.
type ImpactReport struct {
	CO2Impact          float64 `json:"co2Impact"`
	WaterImpact        float64 `json:"waterImpact"`
	LandImpact         float64 `json:"landImpact"`
	RenewabilityScore  float64 `json:"renewabilityScore"`
	BiodiversityImpact float64 `json:"biodiversityImpact"`
	TransportImpact    float64 `json:"transportImpact"`
	TotalScore         float64 `json:"totalScore"`
}

const defaultFactorKey = "default"

// impactFactors is keyed by exact product name; unknown names fall back to
// the default entry. Values are approximations from industry research.
var impactFactors = map[string]ImpactFactor{
	"Zambezi Teak": {
		CO2PerUnit:         180,
		WaterUsage:         1200,
		LandUse:            12,
		Renewability:       3,
		Biodiversity:       5,
		TransportEmissions: 0.08,
	},
	"African Blackwood": {
		CO2PerUnit:         230,
		WaterUsage:         1500,
		LandUse:            18,
		Renewability:       2,
		Biodiversity:       7,
		TransportEmissions: 0.08,
	},
	"Mukwa": {
		CO2PerUnit:         170,
		WaterUsage:         1100,
		LandUse:            14,
		Renewability:       4,
		Biodiversity:       5,
		TransportEmissions: 0.08,
	},
	"African Mahogany": {
		CO2PerUnit:         190,
		WaterUsage:         1300,
		LandUse:            16,
		Renewability:       3,
		Biodiversity:       6,
		TransportEmissions: 0.08,
	},
	"African Pine": {
		CO2PerUnit:         120,
		WaterUsage:         800,
		LandUse:            9,
		Renewability:       7,
		Biodiversity:       4,
		TransportEmissions: 0.08,
	},
	"Zambian Cedar": {
		CO2PerUnit:         135,
		WaterUsage:         850,
		LandUse:            10,
		Renewability:       6,
		Biodiversity:       4,
		TransportEmissions: 0.08,
	},
	defaultFactorKey: {
		CO2PerUnit:         160,
		WaterUsage:         1000,
		LandUse:            12,
		Renewability:       5,
		Biodiversity:       5,
		TransportEmissions: 0.08,
	},
}

// FactorFor returns the impact coefficients for a product name, or the
// default entry when the name has no specific one. Matching is exact and
// case-sensitive.
func FactorFor(name string) ImpactFactor {
	if f, ok := impactFactors[name]; ok {
		return f
	}
	return impactFactors[defaultFactorKey]
}

// Weights of the total-score linear combination. Lower is better for every
// term; renewability is inverted before weighting so that faster-growing
// woods score lower.
const (
	weightCO2          = 0.30
	weightWater        = 0.05
	weightLand         = 0.10
	weightRenewability = 0.25
	weightBiodiversity = 0.20
	weightTransport    = 0.10
)

// CalculateImpactScore maps a product, a quantity in cubic meters and a
// shipping distance in km to an impact report. It has no error path:
// whatever numeric inputs the caller supplies produce a numeric result.
func CalculateImpactScore(product models.Product, quantity, distance float64) ImpactReport {
	f := FactorFor(product.Name)

	r := ImpactReport{
		CO2Impact:          f.CO2PerUnit * quantity,
		WaterImpact:        f.WaterUsage * quantity,
		LandImpact:         f.LandUse * quantity,
		RenewabilityScore:  f.Renewability,
		BiodiversityImpact: f.Biodiversity,
		TransportImpact:    f.TransportEmissions * distance * quantity,
	}

	r.TotalScore = r.CO2Impact*weightCO2 +
		r.WaterImpact*weightWater +
		r.LandImpact*weightLand +
		(10-r.RenewabilityScore)*10*weightRenewability +
		r.BiodiversityImpact*10*weightBiodiversity +
		r.TransportImpact*weightTransport

	return r
}

// Rating discretizes a score into a label. Bands are half-open on the lower
// side, so a score sitting exactly on a threshold falls into the band above
// it: 80 is "Good", not "Excellent".
func Rating(score float64) string {
	switch {
	case score < 80:
		return "Excellent"
	case score < 120:
		return "Good"
	case score < 160:
		return "Moderate"
	case score < 200:
		return "Fair"
	default:
		return "Poor"
	}
}

// RatingColor maps a score to a display color token using the same
// thresholds as Rating.
func RatingColor(score float64) string {
	switch {
	case score < 80:
		return "#4CAF50"
	case score < 120:
		return "#8BC34A"
	case score < 160:
		return "#FFC107"
	case score < 200:
		return "#FF9800"
	default:
		return "#F44336"
	}
}
