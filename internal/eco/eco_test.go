package eco

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zamtimber/shop/internal/models"
)

func TestCalculateImpactScore_AfricanPine(t *testing.T) {
	t.Parallel()

	product := models.Product{ID: 5, Name: "African Pine"}
	r := CalculateImpactScore(product, 2, 100)

	assert.InDelta(t, 240, r.CO2Impact, 1e-9)
	assert.InDelta(t, 1600, r.WaterImpact, 1e-9)
	assert.InDelta(t, 18, r.LandImpact, 1e-9)
	assert.InDelta(t, 7, r.RenewabilityScore, 1e-9)
	assert.InDelta(t, 4, r.BiodiversityImpact, 1e-9)
	assert.InDelta(t, 16, r.TransportImpact, 1e-9)

	want := 240*0.30 + 1600*0.05 + 18*0.10 + (10-7)*10*0.25 + 4*10*0.20 + 16*0.10
	assert.InDelta(t, want, r.TotalScore, 1e-9)
}

func TestCalculateImpactScore_UnknownNameUsesDefault(t *testing.T) {
	t.Parallel()

	r := CalculateImpactScore(models.Product{Name: "Baltic Spruce"}, 1, 100)
	d := FactorFor("default")

	assert.InDelta(t, d.CO2PerUnit, r.CO2Impact, 1e-9)
	assert.InDelta(t, d.WaterUsage, r.WaterImpact, 1e-9)
	assert.InDelta(t, d.TransportEmissions*100, r.TransportImpact, 1e-9)
}

func TestFactorFor_ExactMatchIsCaseSensitive(t *testing.T) {
	t.Parallel()

	require.NotEqual(t, FactorFor("default").CO2PerUnit, FactorFor("African Pine").CO2PerUnit)
	// Lowercase misses the entry and falls back.
	assert.Equal(t, FactorFor("default"), FactorFor("african pine"))
}

func TestCalculateImpactScore_ZeroQuantity(t *testing.T) {
	t.Parallel()

	r := CalculateImpactScore(models.Product{Name: "Mukwa"}, 0, 100)

	assert.Zero(t, r.CO2Impact)
	assert.Zero(t, r.WaterImpact)
	assert.Zero(t, r.TransportImpact)
	// Pass-through scores and their weights survive a zero quantity.
	want := (10-4.0)*10*0.25 + 5.0*10*0.20
	assert.InDelta(t, want, r.TotalScore, 1e-9)
}

func TestRating_Boundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  string
	}{
		{0, "Excellent"},
		{79.9, "Excellent"},
		{80, "Good"},
		{119.9, "Good"},
		{120, "Moderate"},
		{159.9, "Moderate"},
		{160, "Fair"},
		{199.9, "Fair"},
		{200, "Poor"},
		{350, "Poor"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Rating(tt.score), "score %v", tt.score)
	}
}

func TestRatingColor_SameThresholdsAsRating(t *testing.T) {
	t.Parallel()

	tests := []struct {
		score float64
		want  string
	}{
		{79.9, "#4CAF50"},
		{80, "#8BC34A"},
		{120, "#FFC107"},
		{160, "#FF9800"},
		{200, "#F44336"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RatingColor(tt.score), "score %v", tt.score)
	}
}
