// Package game implements the policy-investment simulation engine: one
// owned state value, a closed set of named transitions, and the cycle
// state-transition function. The engine is in-memory and synchronous; it
// never starts timers and has no knowledge of HTTP or rendering.
package game

import (
	"math"

	"github.com/ohindex/sovereign-health/internal/catalog"
)

// Phase is the lifecycle state of a session.
type Phase string

const (
	PhaseSetup   Phase = "setup"
	PhasePlaying Phase = "playing"
	PhasePaused  Phase = "paused"
	PhaseEvent   Phase = "event"
	PhaseEnded   Phase = "ended"
)

// Speed is the auto-advance pacing setting. The engine stores it; the host
// scheduler translates it into a delay.
type Speed string

const (
	SpeedSlow   Speed = "slow"
	SpeedNormal Speed = "normal"
	SpeedFast   Speed = "fast"
)

// Simulation timeline constants. One cycle spans CycleYears simulated years.
const (
	CycleYears       = 2
	DefaultStartYear = 2025
	DefaultEndYear   = 2045
)

// impactRate scales catalog impact vectors into per-cycle score gains:
// each cycle a policy contributes impact × level × impactRate per pillar.
const impactRate = 0.25

// compositeWeights weight the four pillars into the OHI composite score.
var compositeWeights = [catalog.PillarCount]float64{
	catalog.PillarGovernance:      0.25,
	catalog.PillarHazardControl:   0.30,
	catalog.PillarHealthVigilance: 0.25,
	catalog.PillarRestoration:     0.20,
}

// PillarScores holds the four pillar values, each clamped to [0, 100].
type PillarScores [catalog.PillarCount]float64

// Clamped returns the scores with every pillar bounded to [0, 100].
func (p PillarScores) Clamped() PillarScores {
	for i := range p {
		if p[i] < 0 {
			p[i] = 0
		}
		if p[i] > 100 {
			p[i] = 100
		}
	}
	return p
}

// CompositeScore derives the OHI composite from a pillar vector, rounded to
// one decimal place.
func CompositeScore(p PillarScores) float64 {
	total := 0.0
	for i, w := range compositeWeights {
		total += p[i] * w
	}
	return math.Round(total*10) / 10
}

// BudgetAllocation is the per-pillar bookkeeping for the current cycle.
// Invariant: Spent[p] ≤ Allocated[p] for every pillar.
//
// CarryOver is part of the persisted shape but no transition reads or
// writes it; unspent points do not roll between cycles.
type BudgetAllocation struct {
	Allocated [catalog.PillarCount]int `json:"allocated"`
	Spent     [catalog.PillarCount]int `json:"spent"`
	CarryOver int                      `json:"carry_over"`
}

// Available returns the unspent points for one pillar.
func (b BudgetAllocation) Available(p catalog.Pillar) int {
	return b.Allocated[p] - b.Spent[p]
}

// PolicyStatus is the lifecycle of one policy within a session.
type PolicyStatus string

const (
	StatusLocked    PolicyStatus = "locked"
	StatusAvailable PolicyStatus = "available"
	StatusActive    PolicyStatus = "active"
	StatusMaxed     PolicyStatus = "maxed"
)

// PolicyState is the per-session mutable state layered over one catalog
// definition. One entry exists per catalog policy for the whole session.
type PolicyState struct {
	PolicyID      string       `json:"policy_id"`
	Level         int          `json:"level"`
	InvestedCycle int          `json:"invested_cycle"` // points this cycle, reset on advance
	InvestedTotal int          `json:"invested_total"`
	Status        PolicyStatus `json:"status"`
	ActiveSince   int          `json:"active_since,omitempty"` // year of first investment, 0 = never
}

// ActiveEffect is a time-bounded score modifier registered by a resolved
// event. It contributes DeltaPerCycle to its pillar each cycle until
// RemainingCycles reaches zero, at which point it is pruned.
type ActiveEffect struct {
	ID              string         `json:"id"`
	EventID         string         `json:"event_id"`
	Pillar          catalog.Pillar `json:"pillar"`
	DeltaPerCycle   float64        `json:"delta_per_cycle"`
	RemainingCycles int            `json:"remaining_cycles"`
	Description     string         `json:"description"`
	Positive        bool           `json:"positive"`
}

// EffectTemplate describes a long-term effect attached to an event choice.
type EffectTemplate struct {
	Pillar      catalog.Pillar `json:"pillar"`
	Delta       float64        `json:"delta"`
	Duration    int            `json:"duration"` // cycles
	Description string         `json:"description"`
}

// EventChoice is one option on a decision event.
type EventChoice struct {
	ID      string                           `json:"id"`
	Label   string                           `json:"label"`
	Impact  [catalog.PillarCount]float64     `json:"impact"` // immediate pillar deltas
	Cost    int                              `json:"cost"`     // budget points
	Effects []EffectTemplate                 `json:"effects,omitempty"`
}

// GameEvent is a decision event presented to the player. Resolution is
// one-shot: once a choice is selected the event is marked resolved and
// cleared from current.
type GameEvent struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Type      string        `json:"type"`
	Severity  string        `json:"severity"` // minor / moderate / critical
	Narrative string        `json:"narrative"`
	Choices   []EventChoice `json:"choices"`
	Resolved  bool          `json:"resolved"`
	ChoiceID  string        `json:"choice_id,omitempty"`
}

// SeverityCritical marks events that count toward the critical-handled stat.
const SeverityCritical = "critical"

// RankingEntry is one row of the competitive leaderboard.
// Across all entries, current ranks form a contiguous permutation 1..N.
type RankingEntry struct {
	ISO       string  `json:"iso"`
	Name      string  `json:"name"`
	Score     float64 `json:"score"`
	PrevScore float64 `json:"prev_score"`
	Rank      int     `json:"rank"`
	PrevRank  int     `json:"prev_rank"`
	Delta     int     `json:"delta"` // previous rank − new rank; positive = improved
	Player    bool    `json:"player"`
}

// CycleRecord is one append-only history entry per advanced cycle.
type CycleRecord struct {
	Cycle     int          `json:"cycle"`
	Year      int          `json:"year"`
	Pillars   PillarScores `json:"pillars"`
	Composite float64      `json:"composite"`
	Rank      int          `json:"rank"`
	Spent     int          `json:"spent"` // total points spent during the cycle
}

// Statistics are derived aggregates, recomputed on every cycle advance.
type Statistics struct {
	CyclesPlayed          int      `json:"cycles_played"`
	PeakScore             float64  `json:"peak_score"`
	LowestScore           float64  `json:"lowest_score"`
	BestRank              int      `json:"best_rank"`
	TotalSpent            int      `json:"total_spent"`
	MaxedPolicies         int      `json:"maxed_policies"`
	Achievements          []string `json:"achievements,omitempty"`
	EventsHandled         int      `json:"events_handled"`
	CriticalEventsHandled int      `json:"critical_events_handled"`
}

// State is the full session state. It is owned by a Session; callers only
// ever see deep copies.
type State struct {
	Phase       Phase `json:"phase"`
	Speed       Speed `json:"speed"`
	AutoAdvance bool  `json:"auto_advance"`

	StartYear int `json:"start_year"`
	EndYear   int `json:"end_year"`
	Year      int `json:"year"`
	Cycle     int `json:"cycle"`

	Country   string           `json:"country,omitempty"` // ISO code, empty until selected
	Pillars   PillarScores     `json:"pillars"`
	Composite float64          `json:"composite"`
	Budget    BudgetAllocation `json:"budget"`
	Policies  []PolicyState    `json:"policies"`
	Event     *GameEvent       `json:"event,omitempty"`
	Effects   []ActiveEffect   `json:"effects,omitempty"`
	Rankings  []RankingEntry   `json:"rankings"`
	History   []CycleRecord    `json:"history"`
	EventLog  []GameEvent      `json:"event_log,omitempty"`
	Stats     Statistics       `json:"stats"`

	// UI scratch fields, carried in state so the whole view derives from it.
	SelectedPillar *catalog.Pillar `json:"selected_pillar,omitempty"`
	ShowWorldMap   bool            `json:"show_world_map"`
}

// activeSet returns the ids of policies at level ≥ 1.
func (s *State) activeSet() map[string]bool {
	set := make(map[string]bool)
	for _, ps := range s.Policies {
		if ps.Level > 0 {
			set[ps.PolicyID] = true
		}
	}
	return set
}

// refreshPolicyStatuses recomputes locked/available statuses from the
// catalog gates at the current year. Active and maxed statuses follow the
// level and are never downgraded by the gate.
func (s *State) refreshPolicyStatuses() {
	active := s.activeSet()
	for i := range s.Policies {
		ps := &s.Policies[i]
		def, ok := catalog.ByID(ps.PolicyID)
		if !ok {
			continue
		}
		switch {
		case ps.Level >= def.MaxLevel:
			ps.Status = StatusMaxed
		case ps.Level > 0:
			ps.Status = StatusActive
		case catalog.IsAvailable(def, s.Year, active):
			ps.Status = StatusAvailable
		default:
			ps.Status = StatusLocked
		}
	}
}

// clone returns a deep copy of the state with no shared references.
func (s *State) clone() State {
	out := *s
	out.Policies = append([]PolicyState(nil), s.Policies...)
	out.Effects = append([]ActiveEffect(nil), s.Effects...)
	out.Rankings = append([]RankingEntry(nil), s.Rankings...)
	out.History = append([]CycleRecord(nil), s.History...)
	out.Stats.Achievements = append([]string(nil), s.Stats.Achievements...)

	if s.Event != nil {
		ev := cloneEvent(*s.Event)
		out.Event = &ev
	}
	if len(s.EventLog) > 0 {
		out.EventLog = make([]GameEvent, len(s.EventLog))
		for i, ev := range s.EventLog {
			out.EventLog[i] = cloneEvent(ev)
		}
	}
	if s.SelectedPillar != nil {
		p := *s.SelectedPillar
		out.SelectedPillar = &p
	}
	return out
}

func cloneEvent(ev GameEvent) GameEvent {
	choices := make([]EventChoice, len(ev.Choices))
	for i, c := range ev.Choices {
		c.Effects = append([]EffectTemplate(nil), c.Effects...)
		choices[i] = c
	}
	ev.Choices = choices
	return ev
}
