package pipeline

// State identifies where a run currently is, or how it ended.
type State int

const (
	StateIdle State = iota
	StateScanning
	StateReporting
	StateAwaitingConfirmation
	StateNotifying
	StateDone
	StateAborted
)

var stateNames = map[State]string{
	StateIdle:                 "idle",
	StateScanning:             "scanning",
	StateReporting:            "reporting",
	StateAwaitingConfirmation: "awaiting_confirmation",
	StateNotifying:            "notifying",
	StateDone:                 "done",
	StateAborted:              "aborted",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// Terminal reports whether the state ends a run.
func (s State) Terminal() bool {
	return s == StateDone || s == StateAborted
}
