package engine

// State is the lifecycle position of a run.
type State string

const (
	StateValidating          State = "validating"
	StateResolvingBenchmarks State = "resolving_benchmarks"
	StateComputing           State = "computing"
	StateAggregating         State = "aggregating"
	StateCompleted           State = "completed"
	StateFailed              State = "failed"
	StateCancelled           State = "cancelled"
)

// Terminal reports whether no transition leaves s.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed || s == StateCancelled
}

var transitions = map[State][]State{
	StateValidating:          {StateResolvingBenchmarks, StateFailed, StateCancelled},
	StateResolvingBenchmarks: {StateComputing, StateFailed, StateCancelled},
	StateComputing:           {StateAggregating, StateCancelled},
	StateAggregating:         {StateCompleted},
}

// CanTransition reports whether a run may move from s to next. Failed is
// reachable only before computation starts.
func (s State) CanTransition(next State) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}
