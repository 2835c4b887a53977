package session

import "fmt"

// GateState models the lifecycle of one authorization attempt. A session
// instance always terminates in Unauthenticated; a fresh login starts a new
// instance.
type GateState string

const (
	Unauthenticated GateState = "unauthenticated"
	Authenticating  GateState = "authenticating"
	Authorized      GateState = "authorized"
	Expired         GateState = "expired"
	LoggedOut       GateState = "logged_out"
)

var gateTransitions = map[GateState][]GateState{
	Unauthenticated: {Authenticating},
	Authenticating:  {Authorized, Unauthenticated},
	Authorized:      {Authorized, Expired, LoggedOut},
	Expired:         {Unauthenticated},
	LoggedOut:       {Unauthenticated},
}

// Transition validates a state change against the gate's lifecycle. Handlers
// use it to guard against programming errors rather than user input; an
// invalid transition is a bug.
func Transition(from, to GateState) (GateState, error) {
	for _, allowed := range gateTransitions[from] {
		if to == allowed {
			return to, nil
		}
	}
	return from, fmt.Errorf("invalid gate transition %s -> %s", from, to)
}
