package panel

import "testing"

func TestInjectClick(t *testing.T) {
	p := NewPointer()
	r := Rect{0, 0, 100, 100}

	p.InjectClick(50, 50)
	if p.Pending() != 2 {
		t.Fatalf("expected 2 queued events, got %d", p.Pending())
	}

	// Frame 1: press
	if !p.processInjectedInput() {
		t.Fatal("expected an event to be consumed")
	}
	if p.Pending() != 1 {
		t.Fatalf("expected 1 remaining event after frame 1, got %d", p.Pending())
	}
	if _, ok := p.Clicked(r); ok {
		t.Error("click should not fire on press frame")
	}

	// Frame 2: release, click fires
	p.processInjectedInput()
	if p.Pending() != 0 {
		t.Fatalf("expected 0 remaining events after frame 2, got %d", p.Pending())
	}
	if _, ok := p.Clicked(r); !ok {
		t.Error("click should fire on release frame")
	}
}

func TestInjectRightClick(t *testing.T) {
	p := NewPointer()
	p.InjectRightClick(5, 5)
	p.Update()
	p.Update()
	if btn, ok := p.Clicked(Rect{0, 0, 10, 10}); !ok || btn != MouseButtonRight {
		t.Errorf("Clicked = %v, %v, want right, true", btn, ok)
	}
}

func TestInjectDrag(t *testing.T) {
	p := NewPointer()
	g := NewDragGroup()
	handle := Rect{0, 0, 20, 20}
	target := Rect{0, 180, 400, 40}

	// Drag from (10,10) to (10,200) over 5 frames:
	// frame 0: press at (10,10)
	// frames 1-3: moves
	// frame 4: release at (10,200)
	p.InjectDrag(10, 10, 10, 200, 5)
	if p.Pending() != 5 {
		t.Fatalf("expected 5 queued events, got %d", p.Pending())
	}

	var started, dropped bool
	for i := 0; i < 5; i++ {
		p.Update()
		p.Draggable(g, handle, "row")
		if _, ok := p.Dragging(g); ok {
			started = true
		}
		if _, ok := p.Drop(g, target); ok {
			dropped = true
		}
	}
	if !started {
		t.Error("drag never started")
	}
	if !dropped {
		t.Error("drag was never dropped on the target")
	}
}

func TestInjectDrag_MinFrames(t *testing.T) {
	p := NewPointer()
	p.InjectDrag(0, 0, 100, 100, 1) // should clamp to 2
	if p.Pending() != 2 {
		t.Fatalf("expected 2 queued events (clamped), got %d", p.Pending())
	}
}

func TestInjectQueueOrder(t *testing.T) {
	p := NewPointer()

	p.InjectPress(10, 20)
	p.InjectMove(30, 40)
	p.InjectRelease(50, 60)

	want := []syntheticPointerEvent{
		{x: 10, y: 20, pressed: true},
		{x: 30, y: 40, pressed: true},
		{x: 50, y: 60, pressed: false},
	}
	if len(p.injectQueue) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(p.injectQueue))
	}
	for i, w := range want {
		if p.injectQueue[i] != w {
			t.Errorf("event %d = %+v, want %+v", i, p.injectQueue[i], w)
		}
	}
}

func TestInjectWheel(t *testing.T) {
	p := NewPointer()
	p.InjectWheel(10, 10, -3)
	p.Update()
	if p.Wheel() != -3 {
		t.Errorf("Wheel() = %v, want -3", p.Wheel())
	}
	if p.Pointer() != (Vec2{10, 10}) {
		t.Errorf("Pointer() = %v, want (10,10)", p.Pointer())
	}
}

func TestProcessInjectedInput_EmptyQueue(t *testing.T) {
	p := NewPointer()
	if p.processInjectedInput() {
		t.Error("expected false for empty queue")
	}
}
