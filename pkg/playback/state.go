package playback

type State int

const (
	Idle State = iota
	Playing
	MenuOpen
	Closed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case MenuOpen:
		return "menu"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}
