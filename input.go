package panel

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultDragDeadZone = 4.0 // pixels

// Input is the per-frame pointer state widgets query while rendering.
// Pointer is the ebiten-backed implementation.
type Input interface {
	// Pointer returns the current pointer position.
	Pointer() Vec2
	// Over reports whether the pointer is inside r this frame.
	Over(r Rect) bool
	// Clicked reports a press-and-release inside r that completed this
	// frame without turning into a drag.
	Clicked(r Rect) (MouseButton, bool)
	// Draggable registers r as the drag handle of payload for group. A drag
	// starts once the pointer was pressed inside r and moved past the dead
	// zone.
	Draggable(group DragGroup, r Rect, payload any)
	// Dragging returns the payload of the active drag for group.
	Dragging(group DragGroup) (payload any, ok bool)
	// Drop claims the drag of group when it is released over r this frame.
	// At most one Drop call per release succeeds.
	Drop(group DragGroup, r Rect) (payload any, ok bool)
	// Wheel returns the vertical scroll delta for this frame.
	Wheel() float64
}

// DragGroup scopes drags so a payload dragged out of one list can only be
// dropped on regions of the same group.
type DragGroup uint32

// dragGroupCounter is a plain counter (no atomic, single-threaded).
var dragGroupCounter uint32

// NewDragGroup returns a fresh group id.
func NewDragGroup() DragGroup {
	dragGroupCounter++
	return DragGroup(dragGroupCounter)
}

// Pointer tracks mouse state across frames and implements Input. Call Update
// once per tick before rendering widgets.
type Pointer struct {
	// DeadZone is the minimum movement in pixels before a press becomes a drag.
	DeadZone float64

	pos      Vec2
	start    Vec2
	down     bool
	button   MouseButton
	mods     KeyModifiers
	pressed  bool // went down this frame
	released bool // went up this frame
	moved    bool // exceeded the dead zone since press
	wheel    float64

	dragging  bool
	dragGroup DragGroup
	payload   any
	dropFrame bool
	claimed   bool

	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner
}

// NewPointer creates a pointer with the default drag dead zone.
func NewPointer() *Pointer {
	return &Pointer{DeadZone: defaultDragDeadZone}
}

// Update advances one frame. Queued injected events take priority over the
// real mouse, one event per frame.
func (p *Pointer) Update() {
	if p.testRunner != nil {
		p.testRunner.step(p)
	}
	if p.processInjectedInput() {
		return
	}
	if p.testRunner != nil {
		// Scripted pointers hold the last injected state instead of
		// reading the real mouse.
		p.Step(p.pos.X, p.pos.Y, p.down, p.button, 0, 0)
		return
	}
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}
	p.Step(float64(mx), float64(my), pressed, button, readModifiers(), wy)
}

// Step runs the pointer state machine for one frame with explicit state.
// Update calls it with polled ebiten input; headless callers may call it
// directly.
func (p *Pointer) Step(x, y float64, pressed bool, button MouseButton, mods KeyModifiers, wheel float64) {
	// A drag released last frame had its chance to be dropped.
	if p.dropFrame {
		if globalDebug && !p.claimed {
			debugf("drag of group %d released outside any drop region", p.dragGroup)
		}
		p.dragging = false
		p.payload = nil
		p.dragGroup = 0
		p.dropFrame = false
		p.claimed = false
	}

	p.pos = Vec2{x, y}
	p.mods = mods
	p.wheel = wheel
	p.pressed = false
	p.released = false

	switch {
	case pressed && !p.down:
		p.down = true
		p.pressed = true
		p.button = button
		p.start = p.pos
		p.moved = false
	case !pressed && p.down:
		p.down = false
		p.released = true
		if p.dragging {
			p.dropFrame = true
		}
	case pressed && p.down:
		if !p.moved {
			dx := x - p.start.X
			dy := y - p.start.Y
			if math.Sqrt(dx*dx+dy*dy) > p.deadZone() {
				p.moved = true
			}
		}
	}
}

func (p *Pointer) deadZone() float64 {
	if p.DeadZone < 0 {
		return 0
	}
	return p.DeadZone
}

// Pointer returns the current pointer position.
func (p *Pointer) Pointer() Vec2 { return p.pos }

// Modifiers returns the modifier keys held this frame.
func (p *Pointer) Modifiers() KeyModifiers { return p.mods }

// Down reports whether a button is held.
func (p *Pointer) Down() bool { return p.down }

// Over reports whether the pointer is inside r.
func (p *Pointer) Over(r Rect) bool { return r.ContainsVec(p.pos) }

// Clicked reports a completed click inside r. Both the press and the release
// must fall inside r and the press must not have moved past the dead zone.
func (p *Pointer) Clicked(r Rect) (MouseButton, bool) {
	if !p.released || p.moved || p.dragging {
		return 0, false
	}
	if !r.ContainsVec(p.start) || !r.ContainsVec(p.pos) {
		return 0, false
	}
	return p.button, true
}

// Draggable starts a drag of payload when the current press began inside r
// with the left button and has moved past the dead zone.
func (p *Pointer) Draggable(group DragGroup, r Rect, payload any) {
	if p.dragging || !p.down || !p.moved || p.button != MouseButtonLeft {
		return
	}
	if !r.ContainsVec(p.start) {
		return
	}
	p.dragging = true
	p.dragGroup = group
	p.payload = payload
	if globalDebug {
		debugf("started dragging %v (group %d)", payload, group)
	}
}

// Dragging returns the active payload for group. It stays reported on the
// release frame so drop regions can see it.
func (p *Pointer) Dragging(group DragGroup) (any, bool) {
	if !p.dragging || p.dragGroup != group {
		return nil, false
	}
	return p.payload, true
}

// Drop returns the payload when a drag of group is released over r this
// frame and no other region has claimed it yet.
func (p *Pointer) Drop(group DragGroup, r Rect) (any, bool) {
	if !p.dropFrame || p.claimed || p.dragGroup != group || !r.ContainsVec(p.pos) {
		return nil, false
	}
	p.claimed = true
	return p.payload, true
}

// Wheel returns this frame's vertical scroll delta.
func (p *Pointer) Wheel() float64 { return p.wheel }

// CancelDrag abandons the active drag without a drop.
func (p *Pointer) CancelDrag() {
	p.dragging = false
	p.payload = nil
	p.dragGroup = 0
	p.dropFrame = false
	p.claimed = false
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}
