package game

import (
	"log/slog"
	"sort"

	"github.com/ohindex/sovereign-health/internal/catalog"
	"github.com/ohindex/sovereign-health/internal/country"
	"github.com/ohindex/sovereign-health/internal/rivals"
)

// advanceCycle is the core state-transition function: apply policy and
// effect impacts to the pillar scores, recompute the composite and the
// leaderboard, append the history record, update statistics, decay effects,
// and reset the per-cycle counters.
func (s *Session) advanceCycle() Result {
	st := &s.state
	if st.Phase == PhaseEnded {
		return rejected(ReasonGameEnded)
	}
	if st.Phase != PhasePlaying {
		return rejected(ReasonWrongPhase)
	}
	if st.Country == "" {
		return rejected(ReasonNoCountry)
	}

	// Reaching the end year terminates the run with no further score
	// mutation.
	if st.Year >= st.EndYear {
		st.Phase = PhaseEnded
		slog.Info("simulation reached end year",
			"session", s.ID, "year", st.Year, "cycle", st.Cycle, "composite", st.Composite)
		return applied()
	}

	// Capture the per-cycle spend total before counters reset.
	cycleSpent := 0
	for _, v := range st.Budget.Spent {
		cycleSpent += v
	}

	// Policy contributions, weighted by the catalog impact vectors.
	next := st.Pillars
	for _, ps := range st.Policies {
		if ps.Level == 0 {
			continue
		}
		def, ok := catalog.ByID(ps.PolicyID)
		if !ok {
			continue
		}
		for p := 0; p < catalog.PillarCount; p++ {
			next[p] += def.Impact[p] * float64(ps.Level) * impactRate
		}
	}

	// Active effects contribute for as long as cycles remain.
	for _, ef := range st.Effects {
		if ef.RemainingCycles > 0 {
			next[ef.Pillar] += ef.DeltaPerCycle
		}
	}

	st.Pillars = next.Clamped()
	st.Composite = CompositeScore(st.Pillars)

	// Leaderboard: the player's entry tracks the composite; competitors
	// drift along their noise trajectories.
	for i := range st.Rankings {
		e := &st.Rankings[i]
		e.PrevScore = e.Score
		e.PrevRank = e.Rank
		if e.Player {
			e.Score = st.Composite
		} else {
			e.Score = s.drift.Step(i, st.Cycle+1, e.Score)
		}
	}
	resortRankings(st.Rankings)

	// Advance the timeline.
	st.Year += CycleYears
	st.Cycle++

	st.History = append(st.History, CycleRecord{
		Cycle:     st.Cycle,
		Year:      st.Year,
		Pillars:   st.Pillars,
		Composite: st.Composite,
		Rank:      playerRank(st.Rankings),
		Spent:     cycleSpent,
	})

	// Effect decay and pruning.
	kept := st.Effects[:0]
	for _, ef := range st.Effects {
		ef.RemainingCycles--
		if ef.RemainingCycles > 0 {
			kept = append(kept, ef)
		}
	}
	st.Effects = kept

	// Per-cycle counters reset; levels and cumulative totals persist.
	st.Budget.Spent = [catalog.PillarCount]int{}
	for i := range st.Policies {
		st.Policies[i].InvestedCycle = 0
	}

	st.refreshPolicyStatuses()
	s.updateStats(cycleSpent)

	slog.Info("cycle advanced",
		"session", s.ID,
		"cycle", st.Cycle,
		"year", st.Year,
		"composite", st.Composite,
		"rank", playerRank(st.Rankings),
		"spent", cycleSpent,
		"effects", len(st.Effects),
	)
	return applied()
}

// resortRankings sorts entries strictly descending by score and re-assigns
// contiguous ranks 1..N. The sort is stable, so tied entries keep their
// relative order. Deltas are previous rank − new rank (positive = improved).
func resortRankings(entries []RankingEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	for i := range entries {
		entries[i].Rank = i + 1
		if entries[i].PrevRank > 0 {
			entries[i].Delta = entries[i].PrevRank - entries[i].Rank
		}
	}
}

// playerRank returns the player's current rank, or 0 before setup.
func playerRank(entries []RankingEntry) int {
	for _, e := range entries {
		if e.Player {
			return e.Rank
		}
	}
	return 0
}

// initialRankings builds the leaderboard from the competitor table plus the
// player's entry, ranked once so the session starts with contiguous ranks.
func initialRankings(seed country.Seed, composite float64) []RankingEntry {
	rivalSet := rivals.All()
	entries := make([]RankingEntry, 0, len(rivalSet)+1)
	for _, c := range rivalSet {
		entries = append(entries, RankingEntry{
			ISO:   c.ISO,
			Name:  c.Name,
			Score: c.BaseScore,
		})
	}
	entries = append(entries, RankingEntry{
		ISO:    seed.ISO,
		Name:   seed.Name,
		Score:  composite,
		Player: true,
	})
	resortRankings(entries)
	for i := range entries {
		entries[i].PrevRank = entries[i].Rank
		entries[i].PrevScore = entries[i].Score
		entries[i].Delta = 0
	}
	return entries
}

// updateStats recomputes the derived aggregates after a cycle advance.
// Peak and lowest widen monotonically; best rank tightens monotonically.
func (s *Session) updateStats(cycleSpent int) {
	st := &s.state
	stats := &st.Stats

	stats.CyclesPlayed = st.Cycle
	if stats.PeakScore == 0 || st.Composite > stats.PeakScore {
		stats.PeakScore = st.Composite
	}
	if stats.LowestScore == 0 || st.Composite < stats.LowestScore {
		stats.LowestScore = st.Composite
	}
	rank := playerRank(st.Rankings)
	if stats.BestRank == 0 || (rank > 0 && rank < stats.BestRank) {
		stats.BestRank = rank
	}
	stats.TotalSpent += cycleSpent

	maxed := 0
	for _, ps := range st.Policies {
		if ps.Status == StatusMaxed {
			maxed++
		}
	}
	stats.MaxedPolicies = maxed

	s.checkAchievements()
}

// achievement thresholds, checked after every cycle.
func (s *Session) checkAchievements() {
	st := &s.state
	rank := playerRank(st.Rankings)

	award := func(name string) {
		for _, a := range st.Stats.Achievements {
			if a == name {
				return
			}
		}
		st.Stats.Achievements = append(st.Stats.Achievements, name)
		slog.Info("achievement unlocked", "session", s.ID, "achievement", name)
	}

	if len(st.activeSet()) > 0 {
		award("first_reform")
	}
	if st.Stats.MaxedPolicies > 0 {
		award("master_planner")
	}
	if st.Composite >= 75 {
		award("health_pioneer")
	}
	if rank > 0 && rank <= 10 {
		award("top_ten")
	}
	if rank > 0 && rank <= 3 {
		award("podium")
	}
	if rank == 1 {
		award("world_leader")
	}
	if st.Stats.CriticalEventsHandled >= 3 {
		award("crisis_manager")
	}
}
