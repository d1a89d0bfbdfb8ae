package panel

// EventType identifies a kind of panel event.
type EventType uint8

const (
	EventToggle     EventType = iota // a category was opened or closed
	EventDelete                      // a category removed itself from its parent
	EventAddRequest                  // the add handler was asked for a new child
	EventDrop                        // a reorder list drop mutated (or was offered to) a sequence
	EventSelect                      // a reorder list row was clicked
)

// EventSink receives panel events. Set one on a Tree or ReorderList to
// forward interaction to game systems (see the ecs submodule for a donburi
// bridge).
type EventSink interface {
	EmitEvent(event Event)
}

// Event carries panel interaction data.
type Event struct {
	Type EventType
	// Label is the category label (formatted with %v) for tree events.
	Label string
	// Open is the new state for EventToggle.
	Open bool
	// From and To are sequence indices for EventDrop/EventSelect. To is -1
	// for EventSelect.
	From, To  int
	Placement Placement
}

func emit(sink EventSink, e Event) {
	if sink != nil {
		sink.EmitEvent(e)
	}
}
