package game

import (
	"log/slog"

	"github.com/ohindex/sovereign-health/internal/catalog"
)

// allocateBudget replaces the allocated figures wholesale. Spent figures
// are untouched; an allocation that would drop below what is already spent
// this cycle is rejected to keep spent ≤ allocated.
func (s *Session) allocateBudget(allocated [catalog.PillarCount]int) Result {
	if s.state.Phase != PhasePlaying && s.state.Phase != PhasePaused {
		return rejected(ReasonWrongPhase)
	}
	for i, v := range allocated {
		if v < 0 || v < s.state.Budget.Spent[i] {
			return rejected(ReasonBadAllocation)
		}
	}
	s.state.Budget.Allocated = allocated
	return applied()
}

// investInPolicy is the only transition that raises policy levels outside
// of cycle resets: it charges the policy's pillar budget, increments the
// level capped at maxLevel, and stamps the first-active year once.
func (s *Session) investInPolicy(policyID string, cost int) Result {
	if s.state.Phase != PhasePlaying {
		return rejected(ReasonWrongPhase)
	}
	def, ok := catalog.ByID(policyID)
	if !ok {
		return rejected(ReasonUnknownPolicy)
	}

	var ps *PolicyState
	for i := range s.state.Policies {
		if s.state.Policies[i].PolicyID == policyID {
			ps = &s.state.Policies[i]
			break
		}
	}
	if ps == nil {
		return rejected(ReasonUnknownPolicy)
	}
	if ps.Level >= def.MaxLevel {
		return rejected(ReasonPolicyMaxed)
	}
	if cost > s.state.Budget.Available(def.Pillar) {
		return rejected(ReasonOverBudget)
	}

	ps.Level++
	ps.InvestedCycle += cost
	ps.InvestedTotal += cost
	if ps.ActiveSince == 0 {
		ps.ActiveSince = s.state.Year
	}
	if ps.Level >= def.MaxLevel {
		ps.Status = StatusMaxed
	} else {
		ps.Status = StatusActive
	}
	s.state.Budget.Spent[def.Pillar] += cost

	// A newly active policy may satisfy another policy's prerequisites.
	s.state.refreshPolicyStatuses()

	slog.Debug("policy investment",
		"session", s.ID,
		"policy", policyID,
		"level", ps.Level,
		"cost", cost,
		"pillar", def.Pillar.String(),
		"remaining", s.state.Budget.Available(def.Pillar),
	)
	return applied()
}
