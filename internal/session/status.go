package session

// Status is the closed set of container states the controller acts on.
// Everything the engine reports outside running/exited maps to StatusOther,
// which the controller treats as fatal.
type Status uint8

const (
	StatusRunning Status = iota
	StatusExited
	StatusOther
)

// ParseStatus maps an engine-reported state string onto the closed set.
func ParseStatus(raw string) Status {
	switch raw {
	case "running":
		return StatusRunning
	case "exited":
		return StatusExited
	default:
		return StatusOther
	}
}

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusExited:
		return "exited"
	default:
		return "other"
	}
}
