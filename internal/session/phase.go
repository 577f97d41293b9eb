package session

// Phase describes where the controller stands while resolving a target
// container.
type Phase uint8

const (
	PhaseUnresolved Phase = iota
	PhaseFoundRunning
	PhaseFoundExited
	PhaseNotFound
)

func (p Phase) String() string {
	switch p {
	case PhaseUnresolved:
		return "unresolved"
	case PhaseFoundRunning:
		return "found-running"
	case PhaseFoundExited:
		return "found-exited"
	case PhaseNotFound:
		return "not-found"
	default:
		return "unknown"
	}
}
