// Package rivals provides the fixed competitor country set and the
// noise-driven score drift applied to competitors each cycle.
package rivals

import (
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Country is one fixed leaderboard competitor.
type Country struct {
	ISO       string  `json:"iso"`
	Name      string  `json:"name"`
	BaseScore float64 `json:"base_score"`
}

// table is the competitor set every session ranks against. Base scores span
// the leaderboard so any playable country starts mid-table.
var table = []Country{
	{ISO: "DEU", Name: "Germany", BaseScore: 82.4},
	{ISO: "SWE", Name: "Sweden", BaseScore: 80.1},
	{ISO: "JPN", Name: "Japan", BaseScore: 77.6},
	{ISO: "CAN", Name: "Canada", BaseScore: 75.2},
	{ISO: "KOR", Name: "South Korea", BaseScore: 71.8},
	{ISO: "ESP", Name: "Spain", BaseScore: 68.3},
	{ISO: "CHL", Name: "Chile", BaseScore: 61.7},
	{ISO: "MYS", Name: "Malaysia", BaseScore: 57.9},
	{ISO: "THA", Name: "Thailand", BaseScore: 52.4},
	{ISO: "IND", Name: "India", BaseScore: 45.6},
	{ISO: "KEN", Name: "Kenya", BaseScore: 39.2},
	{ISO: "BGD", Name: "Bangladesh", BaseScore: 33.8},
}

// All returns the competitor table in base-score order.
func All() []Country {
	out := make([]Country, len(table))
	copy(out, table)
	return out
}

// Drift produces smooth, deterministic per-cycle score movement for each
// competitor. Simplex noise gives trajectories that wander believably
// instead of jittering like a random walk.
type Drift struct {
	noise     opensimplex.Noise
	amplitude float64
}

// NewDrift creates a drift model seeded for one session.
func NewDrift(seed int64) *Drift {
	return &Drift{
		noise:     opensimplex.New(seed),
		amplitude: 1.6,
	}
}

// Step returns the competitor's score for the next cycle. The competitor
// index and cycle number address a fixed point in the noise field, so the
// same seed always replays the same trajectories.
func (d *Drift) Step(competitor, cycle int, current float64) float64 {
	delta := d.noise.Eval2(float64(competitor)*7.31, float64(cycle)*0.47) * d.amplitude
	next := current + delta
	if next < 0 {
		next = 0
	}
	if next > 100 {
		next = 100
	}
	return next
}
