// Package workflow implements the PPBE budget lifecycle: eighteen states
// across the Planning, Programming, Budgeting and Execution phases, with
// gated transitions, required-field checks and an append-only history.
//
// The transition table below is the authoritative ordering. There is no
// implicit phase adjacency rule: a transition is legal exactly when the
// table says it is.
package workflow

import "fmt"

// Phase groups states into the four PPBE phases. Terminal rejection and
// cancellation states sit outside the phases.
type Phase int

const (
	PhasePlanning Phase = iota
	PhaseProgramming
	PhaseBudgeting
	PhaseExecution
	PhaseTerminal
)

func (p Phase) String() string {
	switch p {
	case PhasePlanning:
		return "Planning"
	case PhaseProgramming:
		return "Programming"
	case PhaseBudgeting:
		return "Budgeting"
	case PhaseExecution:
		return "Execution"
	case PhaseTerminal:
		return "Terminal"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// State is one of the eighteen workflow states. The set is closed.
type State int

const (
	Draft State = iota
	PlanningReview
	PlanningApproved
	Programming
	POMReview
	POMApproved
	BudgetFormulation
	BudgetReview
	OMBReview
	CongressionalSubmission
	CongressionalMarkup
	Appropriated
	Execution
	Suspended
	Closeout
	Closed
	Rejected
	Cancelled
)

// States returns every state in canonical phase order, terminals last.
func States() []State {
	return []State{
		Draft, PlanningReview, PlanningApproved,
		Programming, POMReview, POMApproved,
		BudgetFormulation, BudgetReview, OMBReview,
		CongressionalSubmission, CongressionalMarkup, Appropriated,
		Execution, Suspended, Closeout, Closed,
		Rejected, Cancelled,
	}
}

func (s State) String() string {
	switch s {
	case Draft:
		return "DRAFT"
	case PlanningReview:
		return "PLANNING_REVIEW"
	case PlanningApproved:
		return "PLANNING_APPROVED"
	case Programming:
		return "PROGRAMMING"
	case POMReview:
		return "POM_REVIEW"
	case POMApproved:
		return "POM_APPROVED"
	case BudgetFormulation:
		return "BUDGET_FORMULATION"
	case BudgetReview:
		return "BUDGET_REVIEW"
	case OMBReview:
		return "OMB_REVIEW"
	case CongressionalSubmission:
		return "CONGRESSIONAL_SUBMISSION"
	case CongressionalMarkup:
		return "CONGRESSIONAL_MARKUP"
	case Appropriated:
		return "APPROPRIATED"
	case Execution:
		return "EXECUTION"
	case Suspended:
		return "SUSPENDED"
	case Closeout:
		return "CLOSEOUT"
	case Closed:
		return "CLOSED"
	case Rejected:
		return "REJECTED"
	case Cancelled:
		return "CANCELLED"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ParseState resolves a state name as rendered by String.
func ParseState(name string) (State, bool) {
	for _, s := range States() {
		if s.String() == name {
			return s, true
		}
	}
	return 0, false
}

// ApprovalLevel names the authority whose sign-off a state requires on
// entry. The empty level means no approval gate.
type ApprovalLevel string

const (
	ApprovePlanningManager ApprovalLevel = "planning manager"
	ApproveProgramLead     ApprovalLevel = "program lead"
	ApproveComptroller     ApprovalLevel = "comptroller"
	ApproveCongressional   ApprovalLevel = "congressional action officer"
)

// stateSpec declares one state's position in the lifecycle: its phase,
// the states it may move to, the request fields entry requires, and the
// approval level entry requires.
type stateSpec struct {
	phase          Phase
	next           []State
	requiredFields []string
	approval       ApprovalLevel
}

// transitions is the explicit state transition table. AllowedNext,
// Terminal and the Instance transition algorithm all read from it; tests
// validate its reachability and terminality.
var transitions = map[State]stateSpec{
	Draft: {
		phase: PhasePlanning,
		next:  []State{PlanningReview, Cancelled},
	},
	PlanningReview: {
		phase:          PhasePlanning,
		next:           []State{PlanningApproved, Draft, Rejected},
		requiredFields: []string{"title", "fiscalYear", "amount", "justification"},
	},
	PlanningApproved: {
		phase:    PhasePlanning,
		next:     []State{Programming},
		approval: ApprovePlanningManager,
	},
	Programming: {
		phase: PhaseProgramming,
		next:  []State{POMReview, Cancelled},
	},
	POMReview: {
		phase:          PhaseProgramming,
		next:           []State{POMApproved, Programming, Rejected},
		requiredFields: []string{"programObjectives"},
	},
	POMApproved: {
		phase:    PhaseProgramming,
		next:     []State{BudgetFormulation},
		approval: ApproveProgramLead,
	},
	BudgetFormulation: {
		phase: PhaseBudgeting,
		next:  []State{BudgetReview, Cancelled},
	},
	BudgetReview: {
		phase:          PhaseBudgeting,
		next:           []State{OMBReview, BudgetFormulation, Rejected},
		requiredFields: []string{"budgetEstimate"},
	},
	OMBReview: {
		phase: PhaseBudgeting,
		next:  []State{CongressionalSubmission, BudgetReview, Rejected},
	},
	CongressionalSubmission: {
		phase:          PhaseBudgeting,
		next:           []State{CongressionalMarkup},
		requiredFields: []string{"exhibits"},
	},
	CongressionalMarkup: {
		phase: PhaseBudgeting,
		next:  []State{Appropriated, Rejected},
	},
	Appropriated: {
		phase:    PhaseBudgeting,
		next:     []State{Execution},
		approval: ApproveCongressional,
	},
	Execution: {
		phase: PhaseExecution,
		next:  []State{Suspended, Closeout},
	},
	Suspended: {
		phase: PhaseExecution,
		next:  []State{Execution, Cancelled},
	},
	Closeout: {
		phase: PhaseExecution,
		next:  []State{Closed},
	},
	Closed: {
		phase:    PhaseExecution,
		approval: ApproveComptroller,
	},
	Rejected:  {phase: PhaseTerminal},
	Cancelled: {phase: PhaseTerminal},
}

// Phase returns the PPBE phase the state belongs to.
func (s State) Phase() Phase {
	return transitions[s].phase
}

// AllowedNext returns the states this state may transition to.
func (s State) AllowedNext() []State {
	spec := transitions[s]
	out := make([]State, len(spec.next))
	copy(out, spec.next)
	return out
}

// Terminal reports whether the state accepts no further transitions.
func (s State) Terminal() bool {
	return len(transitions[s].next) == 0
}

// RequiredFields returns the request fields that must be populated to
// enter this state.
func (s State) RequiredFields() []string {
	spec := transitions[s]
	out := make([]string, len(spec.requiredFields))
	copy(out, spec.requiredFields)
	return out
}

// Approval returns the approval level entering this state requires, or
// the empty level.
func (s State) Approval() ApprovalLevel {
	return transitions[s].approval
}

// ordinals maps each state to its position in the canonical happy-path
// sequence. Suspended shares Execution's position; the rejection and
// cancellation terminals have none.
var ordinals = map[State]int{
	Draft:                   1,
	PlanningReview:          2,
	PlanningApproved:        3,
	Programming:             4,
	POMReview:               5,
	POMApproved:             6,
	BudgetFormulation:       7,
	BudgetReview:            8,
	OMBReview:               9,
	CongressionalSubmission: 10,
	CongressionalMarkup:     11,
	Appropriated:            12,
	Execution:               13,
	Suspended:               13,
	Closeout:                14,
	Closed:                  15,
}

// progressTotal is the ordinal of the final lifecycle state.
const progressTotal = 15
