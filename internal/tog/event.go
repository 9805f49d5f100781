package tog

// EventKind enumerates the transitions a Tog reports.
type EventKind int

const (
	EventRest       EventKind = iota // Value = frames to rest
	EventChaseStart                  // pointer came within range
	EventChaseEnd                    // pointer left range
	EventTeleport                    // hover moved the Tog
	EventSoarStart                   // Value = time in flight
	EventSoarEnd                     // arc landed
)

func (k EventKind) String() string {
	switch k {
	case EventRest:
		return "rest"
	case EventChaseStart:
		return "chase_start"
	case EventChaseEnd:
		return "chase_end"
	case EventTeleport:
		return "teleport"
	case EventSoarStart:
		return "soar_start"
	case EventSoarEnd:
		return "soar_end"
	default:
		return "unknown"
	}
}

// Event is one behavioural transition.
type Event struct {
	Kind  EventKind
	TogID int
	Pos   Vec
	Value int
}

// Observer receives events synchronously from Step and Hover.
type Observer func(Event)
