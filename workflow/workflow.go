package workflow

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// TransitionNotAllowedError reports a transition the table does not
// permit, carrying the full allowed set for the caller to surface.
type TransitionNotAllowedError struct {
	From    State
	To      State
	Allowed []State
}

func (e *TransitionNotAllowedError) Error() string {
	names := make([]string, len(e.Allowed))
	for i, s := range e.Allowed {
		names[i] = s.String()
	}
	allowed := "none"
	if len(names) > 0 {
		allowed = strings.Join(names, ", ")
	}
	return fmt.Sprintf("cannot transition from %s to %s; allowed: %s", e.From, e.To, allowed)
}

// NewTransitionNotAllowedError returns an error for a transition the
// table rejects.
func NewTransitionNotAllowedError(from, to State) *TransitionNotAllowedError {
	return &TransitionNotAllowedError{From: from, To: to, Allowed: from.AllowedNext()}
}

// MissingFieldsError reports required request fields absent on entry to
// a state.
type MissingFieldsError struct {
	State   State
	Missing []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("entering %s requires fields: %s", e.State, strings.Join(e.Missing, ", "))
}

// ApprovalRequiredError reports a transition into an approval-gated
// state without an approver identity.
type ApprovalRequiredError struct {
	State State
	Level ApprovalLevel
}

func (e *ApprovalRequiredError) Error() string {
	return fmt.Sprintf("entering %s requires %s approval", e.State, e.Level)
}

// Request carries one transition attempt.
type Request struct {
	To State
	// Actor is the identity making the request.
	Actor string
	// Approver is the identity signing off when the target state is
	// approval-gated.
	Approver string
	Reason   string
	// Fields holds the budget request's populated fields, checked
	// against the target state's required set. Whitespace-only values
	// count as absent.
	Fields    map[string]string
	Timestamp time.Time
}

// HistoryEntry is one recorded transition. History is append-only.
type HistoryEntry struct {
	ID        string
	From      State
	To        State
	Actor     string
	Approver  string
	Reason    string
	Timestamp time.Time
}

// Instance is a single budget request moving through the lifecycle.
type Instance struct {
	id      string
	state   State
	history []HistoryEntry
}

// New returns an instance in Draft with a fresh identifier.
func New() *Instance {
	return &Instance{id: uuid.NewString(), state: Draft}
}

// ID returns the instance identifier.
func (i *Instance) ID() string { return i.id }

// State returns the current state.
func (i *Instance) State() State { return i.state }

// History returns a copy of the recorded transitions in order.
func (i *Instance) History() []HistoryEntry {
	out := make([]HistoryEntry, len(i.history))
	copy(out, i.history)
	return out
}

// Transition applies a request against the transition table. On any
// rejection the instance is left untouched; on success the state moves
// and exactly one history entry is appended.
func (i *Instance) Transition(req Request) error {
	if !slices.Contains(i.state.AllowedNext(), req.To) {
		return NewTransitionNotAllowedError(i.state, req.To)
	}

	var missing []string
	for _, f := range req.To.RequiredFields() {
		if strings.TrimSpace(req.Fields[f]) == "" {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldsError{State: req.To, Missing: missing}
	}

	if level := req.To.Approval(); level != "" && strings.TrimSpace(req.Approver) == "" {
		return &ApprovalRequiredError{State: req.To, Level: level}
	}

	i.history = append(i.history, HistoryEntry{
		ID:        uuid.NewString(),
		From:      i.state,
		To:        req.To,
		Actor:     req.Actor,
		Approver:  req.Approver,
		Reason:    req.Reason,
		Timestamp: req.Timestamp,
	})
	i.state = req.To
	return nil
}

// Progress reports how far along the happy path the instance is, as an
// ordinal out of the lifecycle total. Rejected and cancelled instances
// have no defined progress and report ok false.
func (i *Instance) Progress() (ordinal, total int, ok bool) {
	ord, ok := ordinals[i.state]
	if !ok {
		return 0, progressTotal, false
	}
	return ord, progressTotal, true
}
