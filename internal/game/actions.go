package game

import "github.com/ohindex/sovereign-health/internal/catalog"

// Action is the closed transition surface. Every mutation of a Session goes
// through exactly one of the variants below; no other mutation path exists.
type Action interface{ isAction() }

// SelectCountry initializes the session for one playable country.
// Valid in setup only.
type SelectCountry struct {
	ISO string
}

// Start moves setup → playing. Requires a selected country.
type Start struct{}

// Pause moves playing → paused.
type Pause struct{}

// Resume moves paused → playing.
type Resume struct{}

// SetSpeed changes the auto-advance pacing setting.
type SetSpeed struct {
	Speed Speed
}

// ToggleAutoAdvance flips the auto-advance flag.
type ToggleAutoAdvance struct{}

// AllocateBudget replaces the per-pillar allocated figures wholesale.
// Spent figures are untouched.
type AllocateBudget struct {
	Allocated [catalog.PillarCount]int
}

// InvestInPolicy spends points from the policy's pillar budget to raise its
// level by one.
type InvestInPolicy struct {
	PolicyID string
	Cost     int
}

// AdvanceCycle runs the core state-transition function for one cycle.
type AdvanceCycle struct{}

// TriggerEvent attaches a decision event and moves playing → event.
type TriggerEvent struct {
	Event GameEvent
}

// ResolveEvent applies one choice of the current event.
type ResolveEvent struct {
	ChoiceID string
}

// DismissEvent discards the current event without consequence.
type DismissEvent struct{}

// SelectPillar sets the UI pillar selection scratch field.
type SelectPillar struct {
	Pillar catalog.Pillar
}

// ToggleWorldMap flips the UI world-map scratch flag.
type ToggleWorldMap struct{}

// EndGame forces the session into the terminal ended phase.
type EndGame struct{}

// ResetGame discards the session state and returns to a fresh setup.
type ResetGame struct{}

func (SelectCountry) isAction()     {}
func (Start) isAction()             {}
func (Pause) isAction()             {}
func (Resume) isAction()            {}
func (SetSpeed) isAction()          {}
func (ToggleAutoAdvance) isAction() {}
func (AllocateBudget) isAction()    {}
func (InvestInPolicy) isAction()    {}
func (AdvanceCycle) isAction()      {}
func (TriggerEvent) isAction()      {}
func (ResolveEvent) isAction()      {}
func (DismissEvent) isAction()      {}
func (SelectPillar) isAction()      {}
func (ToggleWorldMap) isAction()    {}
func (EndGame) isAction()           {}
func (ResetGame) isAction()         {}

// Reason explains why a dispatch was rejected. Rejected dispatches leave
// the state unchanged, preserving the silent no-op contract; the reason is
// additive information for hosts and tests.
type Reason string

const (
	ReasonNone           Reason = ""
	ReasonWrongPhase     Reason = "wrong_phase"
	ReasonNoCountry      Reason = "no_country"
	ReasonUnknownCountry Reason = "unknown_country"
	ReasonUnknownPolicy  Reason = "unknown_policy"
	ReasonPolicyMaxed    Reason = "policy_maxed"
	ReasonOverBudget     Reason = "over_budget"
	ReasonBadAllocation  Reason = "bad_allocation"
	ReasonNoEvent        Reason = "no_event"
	ReasonUnknownChoice  Reason = "unknown_choice"
	ReasonGameEnded      Reason = "game_ended"
	ReasonUnknownAction  Reason = "unknown_action"
)

// Result is the discriminated outcome of one dispatch.
type Result struct {
	Applied bool   `json:"applied"`
	Reason  Reason `json:"reason,omitempty"`
}

func applied() Result          { return Result{Applied: true} }
func rejected(r Reason) Result { return Result{Applied: false, Reason: r} }
