package download

type State int

const (
	Pending State = iota
	WaitingForDestination
	DestinationDecided
	Active
	Finished
	Canceled
)

var stateNames = [...]string{
	Pending:               "Pending",
	WaitingForDestination: "WaitingForDestination",
	DestinationDecided:    "DestinationDecided",
	Active:                "Active",
	Finished:              "Finished",
	Canceled:              "Canceled",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "Unknown"
}

// MarshalText lets states render by name in API responses.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// keyedByTask reports whether a record in this state is tracked by its data
// task rather than by download id.
func (s State) keyedByTask() bool {
	return s == WaitingForDestination || s == DestinationDecided
}
