package ecs

import (
	"github.com/phanxgames/panel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// PanelEventType is the Donburi event type for panel widget events.
var PanelEventType = events.NewEventType[panel.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// published to PanelEventType and can be consumed with events.Subscribe and
// ProcessEvents.
func NewDonburiSink(world donburi.World) panel.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event panel.Event) {
	PanelEventType.Publish(s.world, event)
}
