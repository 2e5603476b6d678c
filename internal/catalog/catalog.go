// Package catalog provides the static policy intervention table and its
// lookup surface: per-pillar queries, availability gating, and cost curves.
package catalog

import "math"

// Pillar is one of the four occupational-health scoring dimensions.
type Pillar uint8

const (
	PillarGovernance Pillar = iota
	PillarHazardControl
	PillarHealthVigilance
	PillarRestoration

	// PillarCount sizes fixed-length vectors indexed by Pillar.
	PillarCount = 4
)

// String returns the canonical pillar name.
func (p Pillar) String() string {
	switch p {
	case PillarGovernance:
		return "governance"
	case PillarHazardControl:
		return "hazard_control"
	case PillarHealthVigilance:
		return "health_vigilance"
	case PillarRestoration:
		return "restoration"
	default:
		return "unknown"
	}
}

// PillarFromString maps a pillar name to its Pillar value.
func PillarFromString(name string) (Pillar, bool) {
	switch name {
	case "governance":
		return PillarGovernance, true
	case "hazard_control":
		return PillarHazardControl, true
	case "health_vigilance":
		return PillarHealthVigilance, true
	case "restoration":
		return PillarRestoration, true
	}
	return 0, false
}

// Pillars lists all pillars in index order.
func Pillars() [PillarCount]Pillar {
	return [PillarCount]Pillar{
		PillarGovernance,
		PillarHazardControl,
		PillarHealthVigilance,
		PillarRestoration,
	}
}

// Impact is a per-level score contribution vector, indexed by Pillar.
type Impact [PillarCount]float64

// PolicyDefinition describes one investable intervention. Definitions are
// loaded once at process start and never mutated.
type PolicyDefinition struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Pillar     Pillar   `json:"pillar"`
	Tier       int      `json:"tier"`      // 1–3
	BaseCost   int      `json:"base_cost"` // cost of the first level, in budget points
	MaxLevel   int      `json:"max_level"`
	Impact     Impact   `json:"impact"` // per-level contribution to each pillar
	Prereqs    []string `json:"prereqs,omitempty"`
	UnlockYear int      `json:"unlock_year"`
	Tags       []string `json:"tags,omitempty"`
}

// index is built once from the policies table.
var index = func() map[string]PolicyDefinition {
	m := make(map[string]PolicyDefinition, len(policies))
	for _, def := range policies {
		m[def.ID] = def
	}
	return m
}()

// All returns every policy definition in catalog order.
func All() []PolicyDefinition {
	out := make([]PolicyDefinition, len(policies))
	copy(out, policies)
	return out
}

// Count returns the number of policies in the catalog.
func Count() int { return len(policies) }

// ByID looks up a single policy definition.
func ByID(id string) (PolicyDefinition, bool) {
	def, ok := index[id]
	return def, ok
}

// ByPillar returns all policies belonging to one pillar, in catalog order.
func ByPillar(p Pillar) []PolicyDefinition {
	var out []PolicyDefinition
	for _, def := range policies {
		if def.Pillar == p {
			out = append(out, def)
		}
	}
	return out
}

// Available returns the policies investable at the given year: the unlock
// year must have been reached AND every prerequisite id must be present in
// the active set. Prerequisites combine with AND.
func Available(year int, active map[string]bool) []PolicyDefinition {
	var out []PolicyDefinition
	for _, def := range policies {
		if IsAvailable(def, year, active) {
			out = append(out, def)
		}
	}
	return out
}

// IsAvailable reports whether a single definition passes the availability
// gate at the given year.
func IsAvailable(def PolicyDefinition, year int, active map[string]bool) bool {
	if def.UnlockYear > year {
		return false
	}
	for _, req := range def.Prereqs {
		if !active[req] {
			return false
		}
	}
	return true
}

// CostAtLevel returns the cost of investing into level L (1-indexed):
// round(baseCost × (1 + (L−1) × 0.10)).
func CostAtLevel(def PolicyDefinition, level int) int {
	if level < 1 {
		return 0
	}
	return int(math.Round(float64(def.BaseCost) * (1 + float64(level-1)*0.10)))
}

// CumulativeCost returns the total cost of all levels up to and including
// the given level, rounded once at the end.
func CumulativeCost(def PolicyDefinition, level int) int {
	total := 0.0
	for l := 1; l <= level; l++ {
		total += float64(def.BaseCost) * (1 + float64(l-1)*0.10)
	}
	return int(math.Round(total))
}
