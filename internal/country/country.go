// Package country provides the selectable country seed records: starting
// pillar scores, composite score, and the per-cycle budget envelope.
package country

import "github.com/ohindex/sovereign-health/internal/catalog"

// Seed is the immutable starting record for a playable country.
type Seed struct {
	ISO          string                             `json:"iso"`
	Name         string                             `json:"name"`
	Region       string                             `json:"region"`
	Pillars      [catalog.PillarCount]float64       `json:"pillars"`
	Composite    float64                            `json:"composite"`
	BudgetPoints int                                `json:"budget_points"` // points available per cycle
}

// seeds lists the playable countries. Scores are calibrated so that every
// start sits mid-table against the rival set.
var seeds = []Seed{
	{ISO: "BRA", Name: "Brazil", Region: "americas", Pillars: [4]float64{58, 52, 55, 49}, Composite: 53.7, BudgetPoints: 60},
	{ISO: "IDN", Name: "Indonesia", Region: "asia-pacific", Pillars: [4]float64{48, 45, 42, 40}, Composite: 44.0, BudgetPoints: 52},
	{ISO: "NGA", Name: "Nigeria", Region: "africa", Pillars: [4]float64{38, 35, 33, 30}, Composite: 34.3, BudgetPoints: 44},
	{ISO: "POL", Name: "Poland", Region: "europe", Pillars: [4]float64{66, 62, 64, 60}, Composite: 63.1, BudgetPoints: 68},
	{ISO: "VNM", Name: "Vietnam", Region: "asia-pacific", Pillars: [4]float64{50, 47, 45, 43}, Composite: 46.5, BudgetPoints: 54},
	{ISO: "ZAF", Name: "South Africa", Region: "africa", Pillars: [4]float64{55, 48, 50, 46}, Composite: 49.9, BudgetPoints: 56},
	{ISO: "MEX", Name: "Mexico", Region: "americas", Pillars: [4]float64{54, 50, 51, 47}, Composite: 50.7, BudgetPoints: 56},
	{ISO: "TUR", Name: "Turkey", Region: "europe", Pillars: [4]float64{57, 53, 52, 50}, Composite: 53.2, BudgetPoints: 58},
}

// All returns every playable country seed.
func All() []Seed {
	out := make([]Seed, len(seeds))
	copy(out, seeds)
	return out
}

// ByISO looks up a seed by its ISO code.
func ByISO(iso string) (Seed, bool) {
	for _, s := range seeds {
		if s.ISO == iso {
			return s, true
		}
	}
	return Seed{}, false
}
