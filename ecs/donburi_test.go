package ecs

import (
	"testing"

	"github.com/phanxgames/panel"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []panel.Event
	PanelEventType.Subscribe(world, func(w donburi.World, e panel.Event) {
		received = append(received, e)
	})

	sink.EmitEvent(panel.Event{Type: panel.EventToggle, Label: "weapons", Open: false})
	sink.EmitEvent(panel.Event{
		Type:      panel.EventDrop,
		From:      0,
		To:        2,
		Placement: panel.PlacementSwap,
	})

	// Events are queued until processed.
	if len(received) != 0 {
		t.Fatalf("received %d events before ProcessEvents", len(received))
	}
	PanelEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != panel.EventToggle || e.Label != "weapons" || e.Open {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != panel.EventDrop || e.To != 2 || e.Placement != panel.PlacementSwap {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiSink_FromTree(t *testing.T) {
	world := donburi.NewWorld()

	tree, err := panel.BuildTree([]panel.PathEntry[int]{
		{Path: "weapons/sword", Value: 1},
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	tree.Events = NewDonburiSink(world)

	var adds int
	PanelEventType.Subscribe(world, func(w donburi.World, e panel.Event) {
		if e.Type == panel.EventAddRequest {
			adds++
		}
	})

	tree.OnAddRequest = func(*panel.Tree[int, string], panel.Parent[int, string]) {}
	tree.NotifyAddRequest(tree)
	events.ProcessAllEvents(world)

	if adds != 1 {
		t.Errorf("add requests = %d, want 1", adds)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	PanelEventType.Subscribe(world, func(w donburi.World, e panel.Event) {
		count1++
	})
	PanelEventType.Subscribe(world, func(w donburi.World, e panel.Event) {
		count2++
	})

	sink.EmitEvent(panel.Event{Type: panel.EventSelect, From: 1, To: -1})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
