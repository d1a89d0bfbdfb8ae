package panel

import (
	"slices"
	"testing"
)

func TestReorder(t *testing.T) {
	tests := []struct {
		name      string
		dragged   string
		target    string
		placement Placement
		want      []string
		changed   bool
	}{
		{"swap forward", "a", "c", PlacementSwap, []string{"c", "b", "a", "d"}, true},
		{"swap backward", "d", "b", PlacementSwap, []string{"a", "d", "c", "b"}, true},
		{"before, moving down", "a", "c", PlacementBefore, []string{"b", "a", "c", "d"}, true},
		{"before, moving up", "d", "b", PlacementBefore, []string{"a", "d", "b", "c"}, true},
		{"before the next element is a no-op", "a", "b", PlacementBefore, []string{"a", "b", "c", "d"}, false},
		{"after last", "a", "d", PlacementAfter, []string{"b", "c", "d", "a"}, true},
		{"after last from the middle", "b", "d", PlacementAfter, []string{"a", "c", "d", "b"}, true},
		{"after an earlier element", "c", "a", PlacementAfter, []string{"a", "c", "b", "d"}, true},
		{"onto itself", "b", "b", PlacementSwap, []string{"a", "b", "c", "d"}, false},
		{"missing dragged", "x", "b", PlacementBefore, []string{"a", "b", "c", "d"}, false},
		{"missing target", "a", "x", PlacementSwap, []string{"a", "b", "c", "d"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := []string{"a", "b", "c", "d"}
			changed := Reorder(values, tt.dragged, tt.target, tt.placement)
			if changed != tt.changed {
				t.Errorf("Reorder(%s %s %s) = %v, want %v", tt.dragged, tt.placement, tt.target, changed, tt.changed)
			}
			if !slices.Equal(values, tt.want) {
				t.Errorf("values = %q, want %q", values, tt.want)
			}
		})
	}
}

func TestReorder_SwapMovesNothingElse(t *testing.T) {
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if i == j {
				continue
			}
			values := []int{0, 1, 2, 3, 4}
			Reorder(values, i, j, PlacementSwap)
			for k, v := range values {
				want := k
				switch k {
				case i:
					want = j
				case j:
					want = i
				}
				if v != want {
					t.Errorf("swap %d,%d: values = %v", i, j, values)
					break
				}
			}
		}
	}
}

func TestReorder_BeforeLandsAtTargetMinusOne(t *testing.T) {
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			values := []int{0, 1, 2, 3, 4}
			Reorder(values, i, j, PlacementBefore)
			if got := slices.Index(values, i); got != j-1 {
				t.Errorf("move %d before %d: landed at %d, want %d (%v)", i, j, got, j-1, values)
			}
		}
	}
}

func TestHitTestRows(t *testing.T) {
	rows := []Rect{{0, 0, 200, 30}, {0, 32, 200, 30}, {0, 64, 200, 30}}
	tests := []struct {
		name      string
		p         Vec2
		index     int
		placement Placement
		ok        bool
	}{
		{"top strip of first row", Vec2{50, 2}, 0, PlacementBefore, true},
		{"first row body", Vec2{50, 15}, 0, PlacementSwap, true},
		{"bottom of first row yields to next strip", Vec2{50, 28}, 1, PlacementBefore, true},
		{"gap between rows", Vec2{50, 31}, 1, PlacementBefore, true},
		{"last row body", Vec2{50, 80}, 2, PlacementSwap, true},
		{"after last row", Vec2{50, 92}, 2, PlacementAfter, true},
		{"far below", Vec2{50, 200}, -1, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, pl, ok := HitTestRows(rows, 2, 8, tt.p)
			if i != tt.index || ok != tt.ok || (ok && pl != tt.placement) {
				t.Errorf("HitTestRows(%v) = %d, %v, %v, want %d, %v, %v", tt.p, i, pl, ok, tt.index, tt.placement, tt.ok)
			}
		})
	}
}

func TestRegionsFor(t *testing.T) {
	rr := RegionsFor(Rect{0, 100, 50, 30}, 2, 8)
	if want := (Rect{0, 92, 50, 16}); rr.Before != want {
		t.Errorf("Before = %v, want %v", rr.Before, want)
	}
	if want := (Rect{0, 122, 50, 16}); rr.After != want {
		t.Errorf("After = %v, want %v", rr.After, want)
	}
	if want := (Rect{0, 124, 50, 16}); rr.NextBefore != want {
		t.Errorf("NextBefore = %v, want %v", rr.NextBefore, want)
	}
	if _, ok := rr.Hit(Vec2{10, 130}, false); ok {
		t.Error("After strip should only accept drops on the last row")
	}
}

// dragList drains the pointer's injected frames, rendering the list once per
// frame, and reports whether any frame reordered values.
func dragList[T comparable](l *ReorderList[T], p *Pointer, s *recordingSurface, values []T) bool {
	changed := false
	for p.Pending() > 0 {
		p.Update()
		s.frame()
		if l.Render(s, p, values) {
			changed = true
		}
	}
	return changed
}

// Rows are 30px with a 2px gap, so row i starts at y = 32*i. Drag handles
// occupy x in [0, 30].
func TestReorderList_DragOntoRowSwaps(t *testing.T) {
	values := []string{"a", "b", "c", "d"}
	l := NewReorderList[string](nil)
	var sink recordingSink
	var cues []FeedbackKind
	l.Events = &sink
	l.Feedback = FeedbackFunc(func(k FeedbackKind) { cues = append(cues, k) })

	p := NewPointer()
	s := newRecordingSurface(200, 400)
	p.InjectDrag(15, 15, 100, 79, 6)

	if !dragList(l, p, s, values) {
		t.Error("drop should report a change")
	}
	if want := []string{"c", "b", "a", "d"}; !slices.Equal(values, want) {
		t.Errorf("values = %q, want %q", values, want)
	}
	if len(sink.events) != 1 {
		t.Fatalf("events = %+v", sink.events)
	}
	if e := sink.events[0]; e.Type != EventDrop || e.From != 0 || e.To != 2 || e.Placement != PlacementSwap {
		t.Errorf("drop event = %+v", e)
	}
	if !slices.Equal(cues, []FeedbackKind{FeedbackDrop}) {
		t.Errorf("feedback = %v, want [drop]", cues)
	}
}

func TestReorderList_DragBetweenRowsInserts(t *testing.T) {
	values := []string{"a", "b", "c", "d"}
	l := NewReorderList[string](nil)
	p := NewPointer()
	s := newRecordingSurface(200, 400)

	p.InjectDrag(15, 111, 100, 32, 6)
	if !dragList(l, p, s, values) {
		t.Error("drop should report a change")
	}
	if want := []string{"a", "d", "b", "c"}; !slices.Equal(values, want) {
		t.Errorf("values = %q, want %q", values, want)
	}
}

func TestReorderList_DragAfterLast(t *testing.T) {
	values := []string{"a", "b", "c", "d"}
	l := NewReorderList[string](nil)
	p := NewPointer()
	s := newRecordingSurface(200, 400)

	p.InjectDrag(15, 15, 100, 130, 6)
	if !dragList(l, p, s, values) {
		t.Error("drop should report a change")
	}
	if want := []string{"b", "c", "d", "a"}; !slices.Equal(values, want) {
		t.Errorf("values = %q, want %q", values, want)
	}
}

func TestReorderList_DropOutsideIsNoop(t *testing.T) {
	values := []string{"a", "b", "c"}
	l := NewReorderList[string](nil)
	p := NewPointer()
	s := newRecordingSurface(200, 400)

	p.InjectDrag(15, 15, 100, 350, 6)
	if dragList(l, p, s, values) {
		t.Error("drop outside the list should not report a change")
	}
	if want := []string{"a", "b", "c"}; !slices.Equal(values, want) {
		t.Errorf("values = %q, want %q", values, want)
	}
}

func TestReorderList_NoMutationWhileDragging(t *testing.T) {
	values := []string{"a", "b", "c"}
	l := NewReorderList[string](nil)
	p := NewPointer()
	s := newRecordingSurface(200, 400)

	p.InjectPress(15, 15)
	p.InjectMove(100, 50)
	p.InjectMove(100, 79)
	dragList(l, p, s, values)

	if _, ok := p.Dragging(l.Group()); !ok {
		t.Fatal("drag should be active")
	}
	if want := []string{"a", "b", "c"}; !slices.Equal(values, want) {
		t.Errorf("values changed mid-drag: %q", values)
	}
	if s.count("outline") == 0 {
		t.Error("hovered swap target should be outlined")
	}
}

func TestReorderList_IndicatorOnStrip(t *testing.T) {
	values := []string{"a", "b", "c"}
	l := NewReorderList[string](nil)
	p := NewPointer()
	s := newRecordingSurface(200, 400)

	p.InjectPress(15, 15)
	p.InjectMove(100, 32)
	p.InjectMove(100, 32)
	dragList(l, p, s, values)

	found := false
	for _, c := range s.calls {
		if c.kind == "box" && c.color == reorderIndicatorColor && c.r.Height == 2 {
			found = true
		}
	}
	if !found {
		t.Error("insertion indicator not drawn over the strip")
	}
}

func TestReorderList_Click(t *testing.T) {
	values := []string{"a", "b", "c"}
	l := NewReorderList[string](nil)
	l.ButtonSize = 0.5
	var clicked []string
	l.OnClick = func(v string, i int) { clicked = append(clicked, v) }
	var sink recordingSink
	l.Events = &sink

	p := NewPointer()
	s := newRecordingSurface(200, 400)

	p.InjectClick(60, 45)
	dragList(l, p, s, values)
	if !slices.Equal(clicked, []string{"b"}) {
		t.Errorf("clicked = %q, want [b]", clicked)
	}
	if len(sink.events) != 1 || sink.events[0].Type != EventSelect || sink.events[0].From != 1 || sink.events[0].To != -1 {
		t.Errorf("events = %+v", sink.events)
	}

	// Right half of the body is reserved for Draw's buttons.
	p.InjectClick(180, 45)
	dragList(l, p, s, values)
	if len(clicked) != 1 {
		t.Errorf("click in the button area reached OnClick: %q", clicked)
	}

	// The handle is not part of the click area.
	p.InjectClick(10, 45)
	dragList(l, p, s, values)
	if len(clicked) != 1 {
		t.Errorf("click on the handle reached OnClick: %q", clicked)
	}
}

func TestReorderList_NoDrag(t *testing.T) {
	values := []string{"a", "b", "c"}
	l := NewReorderList[string](nil)
	l.NoDrag = true
	var clicked []string
	l.OnClick = func(v string, i int) { clicked = append(clicked, v) }

	p := NewPointer()
	s := newRecordingSurface(200, 400)
	p.InjectDrag(15, 15, 100, 79, 6)
	if dragList(l, p, s, values) {
		t.Error("NoDrag list should not reorder")
	}
	for _, c := range s.calls {
		if c.kind == "icon" && c.icon == IconDragHandle {
			t.Fatal("NoDrag list should not draw handles")
		}
	}

	p.InjectClick(10, 45)
	dragList(l, p, s, values)
	if !slices.Equal(clicked, []string{"b"}) {
		t.Errorf("without handles the whole row is clickable, clicked = %q", clicked)
	}
}

func TestReorderList_OnDropOverride(t *testing.T) {
	values := []string{"a", "b", "c"}
	l := NewReorderList[string](nil)
	var got struct {
		dragged, target string
		p               Placement
	}
	l.OnDrop = func(vs []string, dragged, target string, p Placement) bool {
		got.dragged, got.target, got.p = dragged, target, p
		return false
	}
	var sink recordingSink
	l.Events = &sink

	p := NewPointer()
	s := newRecordingSurface(200, 400)
	p.InjectDrag(15, 15, 100, 79, 6)
	if dragList(l, p, s, values) {
		t.Error("override reported no change")
	}
	if got.dragged != "a" || got.target != "c" || got.p != PlacementSwap {
		t.Errorf("OnDrop got %+v", got)
	}
	if want := []string{"a", "b", "c"}; !slices.Equal(values, want) {
		t.Errorf("values = %q, want unchanged", values)
	}
	if len(sink.events) != 0 {
		t.Errorf("no event expected for a rejected drop, got %+v", sink.events)
	}
}

func TestReorderList_DrawAndMeasure(t *testing.T) {
	values := []int{10, 20, 30, 40}
	var drawn []int
	l := NewReorderList(func(v int, i int, r Rect, s Surface) {
		drawn = append(drawn, v)
	})
	s := newRecordingSurface(200, 400)
	l.Render(s, NewPointer(), values)
	if !slices.Equal(drawn, values) {
		t.Errorf("drawn = %v, want %v", drawn, values)
	}
	if s.CurHeight() != l.Measure(len(values)) {
		t.Errorf("Render allocated %v, Measure = %v", s.CurHeight(), l.Measure(len(values)))
	}
	if l.Measure(0) != 0 {
		t.Error("Measure(0) should be 0")
	}
}

func TestReorderList_Colors(t *testing.T) {
	values := []string{"red", "plain"}
	l := NewReorderList[string](nil)
	red := Color{1, 0, 0, 1}
	l.ColorOf = func(v string) (Color, bool) { return red, v == "red" }
	l.IsActive = func(v string) bool { return v == "plain" }

	s := newRecordingSurface(200, 400)
	l.Render(s, NewPointer(), values)

	var bgs []Color
	for _, c := range s.calls {
		if c.kind == "box" && c.r.Height == l.RowHeight {
			bgs = append(bgs, c.color)
		}
	}
	if len(bgs) != 2 || bgs[0] != red || bgs[1] != reorderRowActiveColor {
		t.Errorf("backgrounds = %v", bgs)
	}
}

func TestReorderList_FlashFades(t *testing.T) {
	values := []string{"a", "b", "c"}
	l := NewReorderList[string](nil)
	p := NewPointer()
	s := newRecordingSurface(200, 400)
	p.InjectDrag(15, 15, 100, 79, 6)
	dragList(l, p, s, values)
	if l.flash == nil {
		t.Fatal("a drop should start the highlight")
	}
	for i := 0; i < 10; i++ {
		s.frame()
		l.Render(s, p, values)
	}
	if l.flashAlpha != 1 {
		t.Errorf("Render advanced the highlight: alpha = %v, want 1", l.flashAlpha)
	}

	// 0.2s of 0.4s.
	for i := 0; i < 12; i++ {
		l.Update(1.0 / 60)
	}
	if l.flash == nil || l.flashAlpha <= 0 || l.flashAlpha >= 1 {
		t.Errorf("halfway alpha = %v, want in (0, 1)", l.flashAlpha)
	}
	for i := 0; i < 600 && l.flash != nil; i++ {
		l.Update(1.0 / 60)
	}
	if l.flash != nil || l.flashAlpha != 0 {
		t.Error("highlight should finish")
	}
}

func TestReorderList_NoClickWithoutOnClick(t *testing.T) {
	values := []string{"a", "b", "c"}
	l := NewReorderList[string](nil)
	var sink recordingSink
	var cues []FeedbackKind
	l.Events = &sink
	l.Feedback = FeedbackFunc(func(k FeedbackKind) { cues = append(cues, k) })

	p := NewPointer()
	s := newRecordingSurface(200, 400)
	p.InjectHover(60, 45)
	dragList(l, p, s, values)
	if s.count("outline") != 0 {
		t.Error("rows without OnClick should not show a hover outline")
	}
	p.InjectClick(60, 45)
	dragList(l, p, s, values)
	if len(sink.events) != 0 || len(cues) != 0 {
		t.Errorf("click without OnClick: events = %+v, cues = %v", sink.events, cues)
	}
}

func TestPlacementString(t *testing.T) {
	if PlacementBefore.String() != "before" || PlacementAfter.String() != "after" || PlacementSwap.String() != "onto" {
		t.Error("unexpected Placement names")
	}
}
