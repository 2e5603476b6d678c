package game

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/ohindex/sovereign-health/internal/catalog"
	"github.com/ohindex/sovereign-health/internal/country"
	"github.com/ohindex/sovereign-health/internal/rivals"
)

// Session owns one game state and serializes transitions over it. The host
// is expected to dispatch one transition at a time; there is no internal
// locking. Callers never see the owned state directly — Snapshot returns a
// deep copy.
type Session struct {
	ID    string
	seed  int64
	state State
	drift *rivals.Drift
}

// NewSession creates a fresh session in the setup phase. The seed fixes the
// competitor drift trajectories for the whole session.
func NewSession(seed int64) *Session {
	return &Session{
		ID:    uuid.NewString(),
		seed:  seed,
		state: freshState(),
		drift: rivals.NewDrift(seed),
	}
}

func freshState() State {
	return State{
		Phase:     PhaseSetup,
		Speed:     SpeedNormal,
		StartYear: DefaultStartYear,
		EndYear:   DefaultEndYear,
		Year:      DefaultStartYear,
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Session) Snapshot() State {
	return s.state.clone()
}

// Dispatch applies one named transition. Invalid transitions leave the
// state unchanged and report a rejection reason.
func (s *Session) Dispatch(action Action) Result {
	switch a := action.(type) {
	case SelectCountry:
		return s.selectCountry(a.ISO)
	case Start:
		return s.start()
	case Pause:
		return s.pause()
	case Resume:
		return s.resume()
	case SetSpeed:
		return s.setSpeed(a.Speed)
	case ToggleAutoAdvance:
		s.state.AutoAdvance = !s.state.AutoAdvance
		return applied()
	case AllocateBudget:
		return s.allocateBudget(a.Allocated)
	case InvestInPolicy:
		return s.investInPolicy(a.PolicyID, a.Cost)
	case AdvanceCycle:
		return s.advanceCycle()
	case TriggerEvent:
		return s.triggerEvent(a.Event)
	case ResolveEvent:
		return s.resolveEvent(a.ChoiceID)
	case DismissEvent:
		return s.dismissEvent()
	case SelectPillar:
		p := a.Pillar
		s.state.SelectedPillar = &p
		return applied()
	case ToggleWorldMap:
		s.state.ShowWorldMap = !s.state.ShowWorldMap
		return applied()
	case EndGame:
		return s.endGame()
	case ResetGame:
		s.state = freshState()
		return applied()
	default:
		// New action variants must be wired here before they do anything.
		return rejected(ReasonUnknownAction)
	}
}

// selectCountry builds the per-country state: one PolicyState per catalog
// entry at level 0, the seed's pillar scores, the initial allocation split,
// and the leaderboard seeded with the competitor table.
func (s *Session) selectCountry(iso string) Result {
	if s.state.Phase != PhaseSetup {
		return rejected(ReasonWrongPhase)
	}
	seed, ok := country.ByISO(iso)
	if !ok {
		return rejected(ReasonUnknownCountry)
	}

	st := &s.state
	st.Country = seed.ISO
	st.Pillars = PillarScores(seed.Pillars).Clamped()
	st.Composite = CompositeScore(st.Pillars)
	st.Budget = initialAllocation(seed.BudgetPoints)

	st.Policies = make([]PolicyState, 0, catalog.Count())
	for _, def := range catalog.All() {
		st.Policies = append(st.Policies, PolicyState{
			PolicyID: def.ID,
			Status:   StatusLocked,
		})
	}
	st.refreshPolicyStatuses()

	st.Rankings = initialRankings(seed, st.Composite)

	slog.Info("country selected",
		"session", s.ID,
		"country", seed.ISO,
		"composite", st.Composite,
		"budget_points", seed.BudgetPoints,
	)
	return applied()
}

// initialAllocation splits the seed budget evenly across pillars, with the
// remainder landing on governance.
func initialAllocation(total int) BudgetAllocation {
	var b BudgetAllocation
	share := total / catalog.PillarCount
	for i := range b.Allocated {
		b.Allocated[i] = share
	}
	b.Allocated[catalog.PillarGovernance] += total % catalog.PillarCount
	return b
}

func (s *Session) start() Result {
	if s.state.Phase != PhaseSetup {
		return rejected(ReasonWrongPhase)
	}
	if s.state.Country == "" {
		return rejected(ReasonNoCountry)
	}
	s.state.Phase = PhasePlaying
	slog.Info("game started", "session", s.ID, "country", s.state.Country, "year", s.state.Year)
	return applied()
}

func (s *Session) pause() Result {
	if s.state.Phase != PhasePlaying {
		return rejected(ReasonWrongPhase)
	}
	s.state.Phase = PhasePaused
	return applied()
}

func (s *Session) resume() Result {
	if s.state.Phase != PhasePaused {
		return rejected(ReasonWrongPhase)
	}
	s.state.Phase = PhasePlaying
	return applied()
}

func (s *Session) setSpeed(speed Speed) Result {
	switch speed {
	case SpeedSlow, SpeedNormal, SpeedFast:
		s.state.Speed = speed
		return applied()
	}
	return rejected(ReasonUnknownAction)
}

func (s *Session) endGame() Result {
	if s.state.Phase == PhaseEnded {
		return rejected(ReasonGameEnded)
	}
	s.state.Phase = PhaseEnded
	slog.Info("game ended by player", "session", s.ID, "cycle", s.state.Cycle, "composite", s.state.Composite)
	return applied()
}
