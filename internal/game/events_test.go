package game

import (
	"reflect"
	"testing"

	"github.com/ohindex/sovereign-health/internal/catalog"
)

func testEvent(severity string) GameEvent {
	return GameEvent{
		ID:       "evt_test",
		Title:    "Test Event",
		Type:     "industrial_accident",
		Severity: severity,
		Choices: []EventChoice{
			{
				ID:     "act",
				Label:  "Act decisively",
				Impact: [4]float64{1.0, 2.0, 0, 0},
				Cost:   10,
				Effects: []EffectTemplate{{
					Pillar:      catalog.PillarHazardControl,
					Delta:       0.5,
					Duration:    3,
					Description: "inspection blitz",
				}},
			},
			{ID: "ignore", Label: "Do nothing", Cost: 0},
		},
	}
}

func TestTriggerEventEntersEventPhase(t *testing.T) {
	s := newPlayingSession(t)

	if res := s.Dispatch(TriggerEvent{Event: testEvent("minor")}); !res.Applied {
		t.Fatalf("trigger rejected: %s", res.Reason)
	}
	st := s.Snapshot()
	if st.Phase != PhaseEvent {
		t.Errorf("phase = %s, want event", st.Phase)
	}
	if st.Event == nil || st.Event.ID != "evt_test" {
		t.Error("event not attached as current")
	}

	// No second event while one is pending.
	if res := s.Dispatch(TriggerEvent{Event: testEvent("minor")}); res.Applied {
		t.Error("trigger accepted while in event phase")
	}
	// And no advancing mid-event.
	if res := s.Dispatch(AdvanceCycle{}); res.Applied {
		t.Error("advance accepted while in event phase")
	}
}

func TestTriggerEventValidation(t *testing.T) {
	s := newPlayingSession(t)
	if res := s.Dispatch(TriggerEvent{Event: GameEvent{ID: "empty"}}); res.Applied {
		t.Error("event without choices accepted")
	}
}

func TestResolveEventAppliesChoice(t *testing.T) {
	s := newPlayingSession(t)
	base := s.Snapshot()

	s.Dispatch(TriggerEvent{Event: testEvent("minor")})
	if res := s.Dispatch(ResolveEvent{ChoiceID: "act"}); !res.Applied {
		t.Fatalf("resolve rejected: %s", res.Reason)
	}

	st := s.Snapshot()
	if st.Phase != PhasePlaying {
		t.Errorf("phase = %s, want playing", st.Phase)
	}
	if st.Event != nil {
		t.Error("event not cleared from current")
	}

	wantGov := base.Pillars[catalog.PillarGovernance] + 1.0
	wantHaz := base.Pillars[catalog.PillarHazardControl] + 2.0
	if st.Pillars[catalog.PillarGovernance] != wantGov {
		t.Errorf("governance = %v, want %v", st.Pillars[catalog.PillarGovernance], wantGov)
	}
	if st.Pillars[catalog.PillarHazardControl] != wantHaz {
		t.Errorf("hazard control = %v, want %v", st.Pillars[catalog.PillarHazardControl], wantHaz)
	}
	if st.Composite != CompositeScore(st.Pillars) {
		t.Error("composite not recomputed")
	}

	if len(st.Effects) != 1 {
		t.Fatalf("effects = %d, want 1", len(st.Effects))
	}
	ef := st.Effects[0]
	if ef.EventID != "evt_test" || ef.Pillar != catalog.PillarHazardControl ||
		ef.DeltaPerCycle != 0.5 || ef.RemainingCycles != 3 || !ef.Positive || ef.ID == "" {
		t.Errorf("registered effect: %+v", ef)
	}

	if st.Stats.EventsHandled != 1 {
		t.Errorf("events handled = %d, want 1", st.Stats.EventsHandled)
	}
	if st.Stats.CriticalEventsHandled != 0 {
		t.Errorf("critical handled = %d, want 0", st.Stats.CriticalEventsHandled)
	}

	if len(st.EventLog) != 1 || !st.EventLog[0].Resolved || st.EventLog[0].ChoiceID != "act" {
		t.Errorf("event log: %+v", st.EventLog)
	}
}

func TestResolveEventCostHitsGovernanceSpent(t *testing.T) {
	// The point cost always comes out of the governance spent bucket, no
	// matter the event type.
	for _, eventType := range []string{"industrial_accident", "environmental", "economic"} {
		s := newPlayingSession(t)
		ev := testEvent("minor")
		ev.Type = eventType

		before := s.Snapshot().Budget.Spent[catalog.PillarGovernance]
		s.Dispatch(TriggerEvent{Event: ev})
		s.Dispatch(ResolveEvent{ChoiceID: "act"})
		after := s.Snapshot().Budget.Spent[catalog.PillarGovernance]

		if after != before-10 {
			t.Errorf("type %s: governance spent %d -> %d, want decrease by 10", eventType, before, after)
		}
	}
}

func TestResolveEventCountsCritical(t *testing.T) {
	s := newPlayingSession(t)
	s.Dispatch(TriggerEvent{Event: testEvent(SeverityCritical)})
	s.Dispatch(ResolveEvent{ChoiceID: "ignore"})

	stats := s.Snapshot().Stats
	if stats.EventsHandled != 1 || stats.CriticalEventsHandled != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestResolveEventUnknownChoiceIsNoOp(t *testing.T) {
	s := newPlayingSession(t)
	s.Dispatch(TriggerEvent{Event: testEvent("minor")})
	before := s.Snapshot()

	res := s.Dispatch(ResolveEvent{ChoiceID: "nope"})
	if res.Applied || res.Reason != ReasonUnknownChoice {
		t.Errorf("unknown choice: got %+v", res)
	}
	if !reflect.DeepEqual(before, s.Snapshot()) {
		t.Error("unknown choice changed state")
	}
}

func TestResolveWithoutEvent(t *testing.T) {
	s := newPlayingSession(t)
	if res := s.Dispatch(ResolveEvent{ChoiceID: "act"}); res.Applied || res.Reason != ReasonNoEvent {
		t.Errorf("resolve without event: got %+v", res)
	}
}

func TestDismissEventHasNoConsequence(t *testing.T) {
	s := newPlayingSession(t)
	before := s.Snapshot()

	s.Dispatch(TriggerEvent{Event: testEvent("minor")})
	if res := s.Dispatch(DismissEvent{}); !res.Applied {
		t.Fatalf("dismiss rejected: %s", res.Reason)
	}

	st := s.Snapshot()
	if st.Phase != PhasePlaying || st.Event != nil {
		t.Error("dismiss did not return to playing")
	}
	if st.Pillars != before.Pillars || st.Budget != before.Budget {
		t.Error("dismiss changed scores or budget")
	}
	if len(st.Effects) != 0 {
		t.Error("dismiss registered effects")
	}
	if st.Stats.EventsHandled != 0 {
		t.Error("dismiss counted as handled")
	}
}
