package game

import (
	"reflect"
	"testing"

	"github.com/ohindex/sovereign-health/internal/catalog"
)

func TestAdvanceCycleTimeline(t *testing.T) {
	s := newPlayingSession(t)

	for i := 1; i <= 3; i++ {
		if res := s.Dispatch(AdvanceCycle{}); !res.Applied {
			t.Fatalf("advance %d rejected: %s", i, res.Reason)
		}
		st := s.Snapshot()
		if st.Cycle != i {
			t.Errorf("cycle = %d, want %d", st.Cycle, i)
		}
		if st.Year != DefaultStartYear+i*CycleYears {
			t.Errorf("year = %d, want %d", st.Year, DefaultStartYear+i*CycleYears)
		}
		if len(st.History) != st.Cycle {
			t.Errorf("history length %d != cycle %d", len(st.History), st.Cycle)
		}
		assertRankPermutation(t, st.Rankings)
	}
}

func TestAdvanceCycleRequiresPlaying(t *testing.T) {
	s := NewSession(1)
	if res := s.Dispatch(AdvanceCycle{}); res.Applied {
		t.Error("advance in setup accepted")
	}

	s = newPlayingSession(t)
	s.Dispatch(Pause{})
	if res := s.Dispatch(AdvanceCycle{}); res.Applied || res.Reason != ReasonWrongPhase {
		t.Errorf("advance while paused: got %+v", res)
	}
}

func TestAdvanceCycleResetsPerCycleCounters(t *testing.T) {
	s := newPlayingSession(t)
	s.Dispatch(AllocateBudget{Allocated: [4]int{100, 0, 0, 0}})
	s.Dispatch(InvestInPolicy{PolicyID: "gov_osh_framework_law", Cost: 15})

	before := policyState(t, s.Snapshot(), "gov_osh_framework_law")
	if before.InvestedCycle != 15 || before.InvestedTotal != 15 {
		t.Fatalf("pre-advance counters: %+v", before)
	}

	s.Dispatch(AdvanceCycle{})
	st := s.Snapshot()

	if st.Budget.Spent != [4]int{} {
		t.Errorf("spent not reset: %v", st.Budget.Spent)
	}
	after := policyState(t, st, "gov_osh_framework_law")
	if after.InvestedCycle != 0 {
		t.Errorf("invested-this-cycle = %d, want 0", after.InvestedCycle)
	}
	if after.InvestedTotal != 15 {
		t.Errorf("invested total = %d, want 15 (must persist)", after.InvestedTotal)
	}
	if after.Level != 1 {
		t.Errorf("level = %d, want 1 (must persist)", after.Level)
	}

	// The pre-reset spend landed in both the history record and the stats.
	if st.History[0].Spent != 15 {
		t.Errorf("history spent = %d, want 15", st.History[0].Spent)
	}
	if st.Stats.TotalSpent != 15 {
		t.Errorf("stats total spent = %d, want 15", st.Stats.TotalSpent)
	}
}

func TestPolicyImpactRaisesPillars(t *testing.T) {
	s := newPlayingSession(t)
	base := s.Snapshot().Pillars

	s.Dispatch(AllocateBudget{Allocated: [4]int{100, 0, 0, 0}})
	s.Dispatch(InvestInPolicy{PolicyID: "gov_osh_framework_law", Cost: 15})
	s.Dispatch(AdvanceCycle{})

	st := s.Snapshot()
	def, _ := catalog.ByID("gov_osh_framework_law")
	want := base[catalog.PillarGovernance] + def.Impact[catalog.PillarGovernance]*impactRate
	if got := st.Pillars[catalog.PillarGovernance]; got != want {
		t.Errorf("governance = %v, want %v", got, want)
	}
	if st.Composite != CompositeScore(st.Pillars) {
		t.Errorf("composite %v not derived from pillars", st.Composite)
	}
}

func TestPillarsStayClamped(t *testing.T) {
	s := newPlayingSession(t)

	// A massive negative effect cannot push a pillar below zero.
	ev := GameEvent{
		ID: "crash", Title: "Crash", Type: "test", Severity: "critical",
		Choices: []EventChoice{{
			ID:     "hit",
			Impact: [4]float64{-500, -500, -500, -500},
		}},
	}
	s.Dispatch(TriggerEvent{Event: ev})
	s.Dispatch(ResolveEvent{ChoiceID: "hit"})

	for p, v := range s.Snapshot().Pillars {
		if v < 0 || v > 100 {
			t.Errorf("pillar %d = %v, outside [0,100]", p, v)
		}
	}

	s.Dispatch(AdvanceCycle{})
	for p, v := range s.Snapshot().Pillars {
		if v < 0 || v > 100 {
			t.Errorf("pillar %d = %v after advance, outside [0,100]", p, v)
		}
	}
}

func TestEffectsDecayAndPrune(t *testing.T) {
	s := newPlayingSession(t)

	ev := GameEvent{
		ID: "boost", Title: "Boost", Type: "test", Severity: "minor",
		Choices: []EventChoice{{
			ID: "take",
			Effects: []EffectTemplate{{
				Pillar:      catalog.PillarRestoration,
				Delta:       1.5,
				Duration:    2,
				Description: "temporary program",
			}},
		}},
	}
	s.Dispatch(TriggerEvent{Event: ev})
	s.Dispatch(ResolveEvent{ChoiceID: "take"})

	base := s.Snapshot().Pillars[catalog.PillarRestoration]

	s.Dispatch(AdvanceCycle{})
	st := s.Snapshot()
	if got := st.Pillars[catalog.PillarRestoration]; got != base+1.5 {
		t.Errorf("restoration = %v, want %v", got, base+1.5)
	}
	if len(st.Effects) != 1 || st.Effects[0].RemainingCycles != 1 {
		t.Fatalf("effects after first advance: %+v", st.Effects)
	}

	s.Dispatch(AdvanceCycle{})
	st = s.Snapshot()
	if got := st.Pillars[catalog.PillarRestoration]; got != base+3.0 {
		t.Errorf("restoration = %v, want %v", got, base+3.0)
	}
	if len(st.Effects) != 0 {
		t.Errorf("expired effect not pruned: %+v", st.Effects)
	}
}

func TestEndedIsTerminalAndIdempotent(t *testing.T) {
	s := newPlayingSession(t)

	for i := 0; i < 30; i++ {
		if s.Snapshot().Phase == PhaseEnded {
			break
		}
		s.Dispatch(AdvanceCycle{})
	}
	ended := s.Snapshot()
	if ended.Phase != PhaseEnded {
		t.Fatalf("session never ended, year %d", ended.Year)
	}
	if ended.Year < ended.EndYear {
		t.Errorf("ended before end year: %d < %d", ended.Year, ended.EndYear)
	}

	res := s.Dispatch(AdvanceCycle{})
	if res.Applied || res.Reason != ReasonGameEnded {
		t.Errorf("advance after end: got %+v", res)
	}
	if !reflect.DeepEqual(ended, s.Snapshot()) {
		t.Error("advance after end mutated state")
	}
}

func TestStatisticsWidenMonotonically(t *testing.T) {
	s := newPlayingSession(t)

	var prevPeak, prevLow float64
	var prevBest int
	for i := 0; i < 5; i++ {
		s.Dispatch(AdvanceCycle{})
		stats := s.Snapshot().Stats

		if prevPeak != 0 && stats.PeakScore < prevPeak {
			t.Errorf("peak shrank: %v -> %v", prevPeak, stats.PeakScore)
		}
		if prevLow != 0 && stats.LowestScore > prevLow {
			t.Errorf("lowest rose: %v -> %v", prevLow, stats.LowestScore)
		}
		if prevBest != 0 && stats.BestRank < 1 {
			t.Errorf("best rank invalid: %d", stats.BestRank)
		}
		if prevBest != 0 && stats.BestRank > prevBest {
			t.Errorf("best rank loosened: %d -> %d", prevBest, stats.BestRank)
		}
		prevPeak, prevLow, prevBest = stats.PeakScore, stats.LowestScore, stats.BestRank

		if stats.CyclesPlayed != s.Snapshot().Cycle {
			t.Errorf("cycles played %d != cycle %d", stats.CyclesPlayed, s.Snapshot().Cycle)
		}
	}
}

func TestResortRankingsStableOnTies(t *testing.T) {
	entries := []RankingEntry{
		{ISO: "AAA", Score: 50, PrevRank: 1},
		{ISO: "BBB", Score: 50, PrevRank: 2},
		{ISO: "CCC", Score: 70, PrevRank: 3},
	}
	resortRankings(entries)

	if entries[0].ISO != "CCC" || entries[0].Rank != 1 {
		t.Errorf("highest score not first: %+v", entries[0])
	}
	// Stable sort: AAA keeps its position ahead of the tied BBB.
	if entries[1].ISO != "AAA" || entries[2].ISO != "BBB" {
		t.Errorf("tie order not preserved: %s, %s", entries[1].ISO, entries[2].ISO)
	}
	if entries[0].Delta != 2 {
		t.Errorf("CCC delta = %d, want 2 (rank 3 -> 1)", entries[0].Delta)
	}
	if entries[1].Delta != -1 {
		t.Errorf("AAA delta = %d, want -1 (rank 1 -> 2)", entries[1].Delta)
	}
}

func TestRivalDriftIsDeterministic(t *testing.T) {
	a := newPlayingSession(t)
	b := NewSession(1)
	b.Dispatch(SelectCountry{ISO: "BRA"})
	b.Dispatch(Start{})

	for i := 0; i < 4; i++ {
		a.Dispatch(AdvanceCycle{})
		b.Dispatch(AdvanceCycle{})
	}
	if !reflect.DeepEqual(a.Snapshot().Rankings, b.Snapshot().Rankings) {
		t.Error("same seed produced different rival trajectories")
	}
}
