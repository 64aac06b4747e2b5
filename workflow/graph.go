package workflow

import "fmt"

// ValidateGraph checks the transition table's structural invariants:
// every state is reachable from Draft, every non-terminal state can
// reach a terminal state, and every transition target exists in the
// table. Tests run it so a table edit cannot silently strand a state.
func ValidateGraph() error {
	for from, spec := range transitions {
		for _, to := range spec.next {
			if _, ok := transitions[to]; !ok {
				return fmt.Errorf("state %s transitions to unknown state %s", from, to)
			}
		}
	}

	reachable := map[State]bool{}
	stack := []State{Draft}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if reachable[s] {
			continue
		}
		reachable[s] = true
		stack = append(stack, s.AllowedNext()...)
	}
	for _, s := range States() {
		if !reachable[s] {
			return fmt.Errorf("state %s is unreachable from %s", s, Draft)
		}
	}

	for _, s := range States() {
		if s.Terminal() {
			continue
		}
		if !reachesTerminal(s, map[State]bool{}) {
			return fmt.Errorf("state %s cannot reach a terminal state", s)
		}
	}
	return nil
}

func reachesTerminal(s State, seen map[State]bool) bool {
	if s.Terminal() {
		return true
	}
	seen[s] = true
	for _, next := range s.AllowedNext() {
		if seen[next] {
			continue
		}
		if reachesTerminal(next, seen) {
			return true
		}
	}
	return false
}
