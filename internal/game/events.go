package game

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/ohindex/sovereign-health/internal/catalog"
)

// triggerEvent attaches a decision event and moves playing → event.
func (s *Session) triggerEvent(ev GameEvent) Result {
	if s.state.Phase != PhasePlaying {
		return rejected(ReasonWrongPhase)
	}
	if ev.ID == "" || len(ev.Choices) == 0 {
		return rejected(ReasonNoEvent)
	}
	attached := cloneEvent(ev)
	attached.Resolved = false
	attached.ChoiceID = ""
	s.state.Event = &attached
	s.state.Phase = PhaseEvent

	slog.Info("event triggered",
		"session", s.ID, "event", ev.ID, "severity", ev.Severity, "choices", len(ev.Choices))
	return applied()
}

// resolveEvent applies one choice of the current event: immediate pillar
// impact, long-term effect registration, and the point cost deducted from
// the governance pillar's spent bucket regardless of event type. Resolution
// is one-shot; the event is recorded in the log and cleared from current.
func (s *Session) resolveEvent(choiceID string) Result {
	st := &s.state
	if st.Phase != PhaseEvent || st.Event == nil {
		return rejected(ReasonNoEvent)
	}

	var choice *EventChoice
	for i := range st.Event.Choices {
		if st.Event.Choices[i].ID == choiceID {
			choice = &st.Event.Choices[i]
			break
		}
	}
	if choice == nil {
		return rejected(ReasonUnknownChoice)
	}

	next := st.Pillars
	for p := 0; p < catalog.PillarCount; p++ {
		next[p] += choice.Impact[p]
	}
	st.Pillars = next.Clamped()
	st.Composite = CompositeScore(st.Pillars)

	for _, tmpl := range choice.Effects {
		st.Effects = append(st.Effects, ActiveEffect{
			ID:              uuid.NewString(),
			EventID:         st.Event.ID,
			Pillar:          tmpl.Pillar,
			DeltaPerCycle:   tmpl.Delta,
			RemainingCycles: tmpl.Duration,
			Description:     tmpl.Description,
			Positive:        tmpl.Delta >= 0,
		})
	}

	// All event costs come out of the governance spent bucket, whatever the
	// event type.
	st.Budget.Spent[catalog.PillarGovernance] -= choice.Cost

	st.Event.Resolved = true
	st.Event.ChoiceID = choiceID
	st.Stats.EventsHandled++
	if st.Event.Severity == SeverityCritical {
		st.Stats.CriticalEventsHandled++
	}

	st.EventLog = append(st.EventLog, cloneEvent(*st.Event))
	st.Event = nil
	st.Phase = PhasePlaying

	slog.Info("event resolved",
		"session", s.ID,
		"choice", choiceID,
		"cost", choice.Cost,
		"new_effects", len(choice.Effects),
		"composite", st.Composite,
	)
	return applied()
}

// dismissEvent discards the current event without consequence.
func (s *Session) dismissEvent() Result {
	st := &s.state
	if st.Phase != PhaseEvent || st.Event == nil {
		return rejected(ReasonNoEvent)
	}
	st.EventLog = append(st.EventLog, cloneEvent(*st.Event))
	st.Event = nil
	st.Phase = PhasePlaying
	return applied()
}
