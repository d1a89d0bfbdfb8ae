package panel

// syntheticPointerEvent represents a single injected pointer frame.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
	wheel   float64
}

// InjectPress queues a left-button press at (x, y). The event is consumed on
// the next Update.
func (p *Pointer) InjectPress(x, y float64) {
	p.InjectButton(x, y, true, MouseButtonLeft)
}

// InjectMove queues a pointer move at (x, y) with the button held down. Use
// this between InjectPress and InjectRelease to simulate a drag.
func (p *Pointer) InjectMove(x, y float64) {
	p.InjectButton(x, y, true, MouseButtonLeft)
}

// InjectHover queues a pointer move at (x, y) with no button held.
func (p *Pointer) InjectHover(x, y float64) {
	p.InjectButton(x, y, false, MouseButtonLeft)
}

// InjectRelease queues a pointer release at (x, y).
func (p *Pointer) InjectRelease(x, y float64) {
	p.InjectButton(x, y, false, MouseButtonLeft)
}

// InjectButton queues one frame of explicit button state.
func (p *Pointer) InjectButton(x, y float64, pressed bool, button MouseButton) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: pressed,
		button:  button,
	})
}

// InjectWheel queues a scroll of dy at (x, y).
func (p *Pointer) InjectWheel(x, y, dy float64) {
	p.injectQueue = append(p.injectQueue, syntheticPointerEvent{x: x, y: y, wheel: dy})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same coordinates. Consumes two frames.
func (p *Pointer) InjectClick(x, y float64) {
	p.InjectPress(x, y)
	p.InjectRelease(x, y)
}

// InjectRightClick is InjectClick with the right button.
func (p *Pointer) InjectRightClick(x, y float64) {
	p.InjectButton(x, y, true, MouseButtonRight)
	p.InjectButton(x, y, false, MouseButtonRight)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (p *Pointer) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		p.InjectMove(x, y)
	}
	p.InjectRelease(toX, toY)
}

// Pending returns the number of queued injected frames.
func (p *Pointer) Pending() int { return len(p.injectQueue) }

// processInjectedInput pops one event from the inject queue and feeds it
// through Step. Returns true if an event was consumed (real mouse input
// should be skipped).
func (p *Pointer) processInjectedInput() bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	evt := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]

	p.Step(evt.x, evt.y, evt.pressed, evt.button, 0, evt.wheel)
	return true
}
