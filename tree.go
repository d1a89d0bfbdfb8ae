package panel

import (
	"fmt"
	"slices"
)

const (
	defaultTreeRowHeight = 20
	defaultAddRowHeight  = 30
	headerIconGap        = 3
)

// Node is a tree node: either a *Category or an *Item. The set is closed;
// code that handles nodes switches on the concrete type.
type Node[I, C any] interface {
	// Tree returns the tree whose configuration the node renders with.
	Tree() *Tree[I, C]
	isNode()
}

// Parent is anything that holds child nodes: the Tree itself (its roots) or
// a Category.
type Parent[I, C any] interface {
	Children() []Node[I, C]
	childList() *[]Node[I, C]
}

// Category is a container node that can be opened and closed. Children are
// drawn in slice order.
type Category[I, C any] struct {
	Label C
	// Open reports whether children are shown. New categories start open.
	Open bool

	tree     *Tree[I, C]
	children []Node[I, C]
}

func (c *Category[I, C]) Tree() *Tree[I, C]        { return c.tree }
func (c *Category[I, C]) Children() []Node[I, C]   { return c.children }
func (c *Category[I, C]) childList() *[]Node[I, C] { return &c.children }
func (*Category[I, C]) isNode()                    {}

// Measure returns the category's rendered extent.
func (c *Category[I, C]) Measure() float64 { return c.tree.MeasureNode(c) }

func (c *Category[I, C]) String() string { return fmt.Sprint(c.Label) }

// Item is a leaf node wrapping a caller value. The tree never copies or
// mutates the value.
type Item[I, C any] struct {
	Value I

	tree *Tree[I, C]
}

func (it *Item[I, C]) Tree() *Tree[I, C] { return it.tree }
func (*Item[I, C]) isNode()              {}

// Measure returns the tree's item height.
func (it *Item[I, C]) Measure() float64 { return it.tree.MeasureNode(it) }

// ContextAction is a structural action offered on a category header.
type ContextAction uint8

const (
	ContextDelete ContextAction = iota // remove the category from its parent
	ContextCreate                      // ask the add handler for a new child
)

func (a ContextAction) String() string {
	switch a {
	case ContextDelete:
		return "Delete"
	case ContextCreate:
		return "Create"
	default:
		return fmt.Sprintf("ContextAction(%d)", a)
	}
}

// ContextOption is one entry of a ContextRequest.
type ContextOption struct {
	Action  ContextAction
	Enabled bool
}

// ContextRequest is passed to Tree.OnContext when a category header is
// right-clicked. The handler shows Options however it likes and calls Apply
// with the chosen action, either immediately or on a later frame.
type ContextRequest[I, C any] struct {
	Category *Category[I, C]
	Parent   Parent[I, C]
	Options  []ContextOption
	// Position is the pointer position at the click, for placing a menu.
	Position Vec2
}

// Apply performs action. It returns false when the action is disabled or
// unknown.
func (r *ContextRequest[I, C]) Apply(action ContextAction) bool {
	enabled := false
	for _, o := range r.Options {
		if o.Action == action {
			enabled = o.Enabled
		}
	}
	if !enabled {
		return false
	}
	t := r.Category.tree
	switch action {
	case ContextDelete:
		if !t.RemoveChild(r.Parent, r.Category) {
			return false
		}
		emit(t.Events, Event{Type: EventDelete, Label: fmt.Sprint(r.Category.Label)})
		return true
	case ContextCreate:
		t.NotifyAddRequest(r.Category)
		return true
	}
	return false
}

// Tree holds the root nodes and the configuration shared by every node.
type Tree[I, C any] struct {
	ItemHeight     float64
	CategoryHeight float64
	// AddRowHeight is the height of the trailing add row drawn when
	// OnAddRequest is set and the tree is editable.
	AddRowHeight float64
	// Editable enables context actions and the add row.
	Editable bool

	// DrawCategory draws a category header into r and reports whether it
	// changed anything. Nil draws a chevron and the label.
	DrawCategory func(c *Category[I, C], r Rect, s Surface) bool
	// DrawItem draws an item row into r and reports whether it changed the
	// item. Nil draws the value with %v.
	DrawItem func(it *Item[I, C], r Rect, s Surface) bool
	// OnAddRequest is asked to create a child under requester.
	OnAddRequest func(t *Tree[I, C], requester Parent[I, C])
	// OnContext receives right-click requests on category headers.
	OnContext func(req *ContextRequest[I, C])

	Feedback Feedback
	Events   EventSink

	roots  []Node[I, C]
	ledger *Ledger[Parent[I, C]]
}

// NewTree creates an empty, editable tree with default row heights.
func NewTree[I, C any]() *Tree[I, C] {
	return &Tree[I, C]{
		ItemHeight:     defaultTreeRowHeight,
		CategoryHeight: defaultTreeRowHeight,
		AddRowHeight:   defaultAddRowHeight,
		Editable:       true,
		ledger:         NewLedger[Parent[I, C]](),
	}
}

// NewCategory creates an open category owned by t with the given children.
// It is not attached anywhere; use AddChild.
func (t *Tree[I, C]) NewCategory(label C, children ...Node[I, C]) *Category[I, C] {
	return &Category[I, C]{Label: label, Open: true, tree: t, children: slices.Clone(children)}
}

// NewItem creates an unattached item owned by t.
func (t *Tree[I, C]) NewItem(value I) *Item[I, C] {
	return &Item[I, C]{Value: value, tree: t}
}

// Children returns the root nodes.
func (t *Tree[I, C]) Children() []Node[I, C]   { return t.roots }
func (t *Tree[I, C]) childList() *[]Node[I, C] { return &t.roots }

// Ledger exposes the change ledger the render pass consumes. Mutations made
// through AddChild and RemoveChild are recorded here.
func (t *Tree[I, C]) Ledger() *Ledger[Parent[I, C]] { return t.ledger }

// AddChild appends node to parent and records the change for the next
// render. Adding a node that is already a child of parent is a no-op.
func (t *Tree[I, C]) AddChild(parent Parent[I, C], node Node[I, C]) {
	list := parent.childList()
	if slices.Contains(*list, node) {
		return
	}
	*list = append(*list, node)
	t.ledger.Notify(parent)
	if globalDebug {
		debugCheckChildCount(parentLabel(parent), len(*list))
	}
}

// RemoveChild removes node from parent. It reports whether a removal
// happened; only then is the change recorded. Pending changes of the removed
// subtree are dropped, since no render pass visits it again.
func (t *Tree[I, C]) RemoveChild(parent Parent[I, C], node Node[I, C]) bool {
	list := parent.childList()
	i := slices.Index(*list, node)
	if i < 0 {
		return false
	}
	*list = slices.Delete(*list, i, i+1)
	t.forgetSubtree(node)
	t.ledger.Notify(parent)
	return true
}

func (t *Tree[I, C]) forgetSubtree(n Node[I, C]) {
	c, ok := n.(*Category[I, C])
	if !ok {
		return
	}
	t.ledger.Forget(c)
	for _, child := range c.children {
		t.forgetSubtree(child)
	}
}

// AddCategory creates an open category labelled label and appends it to
// parent. Add handlers typically call this.
func (t *Tree[I, C]) AddCategory(parent Parent[I, C], label C) *Category[I, C] {
	c := t.NewCategory(label)
	t.AddChild(parent, c)
	return c
}

// NotifyAddRequest forwards an add request for requester to OnAddRequest.
func (t *Tree[I, C]) NotifyAddRequest(requester Parent[I, C]) {
	if t.OnAddRequest == nil {
		return
	}
	emit(t.Events, Event{Type: EventAddRequest, Label: parentLabel(requester)})
	t.OnAddRequest(t, requester)
}

func parentLabel[I, C any](p Parent[I, C]) string {
	if c, ok := p.(*Category[I, C]); ok {
		return fmt.Sprint(c.Label)
	}
	return "root"
}

func (t *Tree[I, C]) showAddRow() bool {
	return t.Editable && t.OnAddRequest != nil
}

// Measure returns the total height Render will allocate: every root's
// extent plus the add row when shown.
func (t *Tree[I, C]) Measure() float64 {
	var h float64
	for _, n := range t.roots {
		h += t.MeasureNode(n)
	}
	if t.showAddRow() {
		h += t.AddRowHeight
	}
	return h
}

// MeasureNode returns the rendered extent of n. A closed category
// contributes only its header.
func (t *Tree[I, C]) MeasureNode(n Node[I, C]) float64 {
	switch n := n.(type) {
	case *Category[I, C]:
		h := t.CategoryHeight
		if n.Open {
			for _, child := range n.children {
				h += t.MeasureNode(child)
			}
		}
		return h
	case *Item[I, C]:
		return t.ItemHeight
	default:
		return 0
	}
}

// Walk visits every node depth-first in display order, including children of
// closed categories. Returning false from fn skips the node's children.
func (t *Tree[I, C]) Walk(fn func(n Node[I, C], depth int) bool) {
	var walk func(nodes []Node[I, C], depth int)
	walk = func(nodes []Node[I, C], depth int) {
		for _, n := range nodes {
			if !fn(n, depth) {
				continue
			}
			if c, ok := n.(*Category[I, C]); ok {
				walk(c.children, depth+1)
			}
		}
	}
	walk(t.roots, 0)
}

// Render draws the tree into s and reports whether its structure or any item
// changed this frame: a category toggled, a draw callback reported a change,
// or a pending AddChild/RemoveChild was consumed.
func (t *Tree[I, C]) Render(s Surface, in Input) bool {
	changed := false
	for _, n := range slices.Clone(t.roots) {
		if t.render(n, t, s, in) {
			changed = true
		}
	}
	if t.showAddRow() {
		r := s.Rect(t.AddRowHeight)
		icon := r.Square().ContractedBy(4, 4)
		s.DrawIcon(icon, IconAdd, ColorWhite)
		if _, ok := in.Clicked(icon); ok {
			play(t.Feedback, FeedbackClick)
			t.NotifyAddRequest(t)
		}
	}
	if t.ledger.TryConsume(t) {
		changed = true
	}
	return changed
}

func (t *Tree[I, C]) render(n Node[I, C], parent Parent[I, C], s Surface, in Input) bool {
	switch n := n.(type) {
	case *Category[I, C]:
		return t.renderCategory(n, parent, s, in)
	case *Item[I, C]:
		r := s.Rect(t.ItemHeight)
		if t.DrawItem == nil {
			s.DrawLabel(r, fmt.Sprint(n.Value), TextAlignLeft)
			return false
		}
		return t.DrawItem(n, r, s)
	default:
		return false
	}
}

func (t *Tree[I, C]) renderCategory(c *Category[I, C], parent Parent[I, C], s Surface, in Input) bool {
	r := s.Rect(t.CategoryHeight)
	changed := false

	if button, ok := in.Clicked(r); ok {
		if button == MouseButtonRight {
			if t.Editable && t.OnContext != nil {
				t.OnContext(&ContextRequest[I, C]{
					Category: c,
					Parent:   parent,
					Options: []ContextOption{
						{Action: ContextDelete, Enabled: true},
						{Action: ContextCreate, Enabled: t.OnAddRequest != nil},
					},
					Position: in.Pointer(),
				})
			}
		} else {
			play(t.Feedback, FeedbackClick)
			c.Open = !c.Open
			changed = true
			emit(t.Events, Event{Type: EventToggle, Label: fmt.Sprint(c.Label), Open: c.Open})
		}
	}

	draw := t.DrawCategory
	if draw == nil {
		draw = DefaultCategoryHeader[I, C]
	}
	if draw(c, r, s) {
		changed = true
	}

	if c.Open {
		s.Indent()
		for _, child := range slices.Clone(c.children) {
			if t.render(child, c, s, in) {
				changed = true
			}
		}
		s.Outdent()
	}

	if t.ledger.TryConsume(c) {
		changed = true
	}
	return changed
}

// DefaultCategoryHeader draws an open/closed chevron in the left square of r
// followed by the label.
func DefaultCategoryHeader[I, C any](c *Category[I, C], r Rect, s Surface) bool {
	drawCategoryHeader(c.Open, fmt.Sprint(c.Label), r, s)
	return false
}

func drawCategoryHeader(open bool, label string, r Rect, s Surface) {
	icon := IconReveal
	if open {
		icon = IconCollapse
	}
	s.DrawIcon(r.Square(), icon, ColorWhite)
	s.DrawLabel(r.ShrinkLeft(r.Height+headerIconGap), label, TextAlignLeft)
}
