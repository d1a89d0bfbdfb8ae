package panel

import (
	"cmp"
	"fmt"
	"slices"
)

// PathEntry pairs a slash-delimited path with the value to place there.
type PathEntry[I any] struct {
	Path  string
	Value I
}

type builderEntry[I any] struct {
	key   PathKey
	value I
}

// TreeBuilder turns flat path -> value entries into a Tree whose categories
// are the shared path prefixes. Entries keep their insertion order, which
// becomes the display order of siblings and roots.
//
// When more than one value lands on the same path, or a path holding a value
// also has deeper paths below it, that path becomes a category and its
// values are placed inside it as items ahead of any sub-paths.
type TreeBuilder[I any] struct {
	// DrawItem is installed on built trees.
	DrawItem func(it *Item[I, string], r Rect, s Surface) bool

	entries []builderEntry[I]
	index   map[PathKey]Node[I, string]
}

// NewTreeBuilder creates an empty builder.
func NewTreeBuilder[I any](drawItem func(it *Item[I, string], r Rect, s Surface) bool) *TreeBuilder[I] {
	return &TreeBuilder[I]{DrawItem: drawItem}
}

// Add records value at path. It fails only when path has no segments.
func (b *TreeBuilder[I]) Add(path string, value I) error {
	key, err := ParsePath(path)
	if err != nil {
		return fmt.Errorf("tree builder: add %q: %w", path, err)
	}
	b.entries = append(b.entries, builderEntry[I]{key: key, value: value})
	return nil
}

// Len returns the number of recorded entries.
func (b *TreeBuilder[I]) Len() int { return len(b.entries) }

// Lookup returns the node built for path by the last Build. Paths holding
// colliding values map to their category.
func (b *TreeBuilder[I]) Lookup(path string) (Node[I, string], bool) {
	key, err := ParsePath(path)
	if err != nil {
		return nil, false
	}
	n, ok := b.index[key]
	return n, ok
}

type treeEdge struct {
	child, parent PathKey
}

// Build constructs a fresh tree from the recorded entries. Category labels
// are canonical paths; headers show the last segment. Calling Build twice
// yields trees of identical shape.
func (b *TreeBuilder[I]) Build() *Tree[I, string] {
	t := NewTree[I, string]()
	t.DrawCategory = PathCategoryHeader[I]
	t.DrawItem = b.DrawItem
	b.index = make(map[PathKey]Node[I, string])

	// Values per path, and paths in first-seen order.
	itemsAt := make(map[PathKey][]I)
	var order []PathKey
	for _, e := range b.entries {
		if _, seen := itemsAt[e.key]; !seen {
			order = append(order, e.key)
		}
		itemsAt[e.key] = append(itemsAt[e.key], e.value)
	}

	// Every (child, parent) hop on the way from each path to its root.
	hasDescendant := make(map[PathKey]bool)
	seenEdge := make(map[treeEdge]bool)
	var edges []treeEdge
	for _, key := range order {
		if globalDebug {
			debugCheckTreeDepth(key)
		}
		child := key
		for {
			parent, ok := child.Parent()
			if !ok {
				break
			}
			hasDescendant[parent] = true
			e := treeEdge{child: child, parent: parent}
			if !seenEdge[e] {
				seenEdge[e] = true
				edges = append(edges, e)
			}
			child = parent
		}
	}

	// Shallow parents first. Stable, so siblings keep insertion order.
	slices.SortStableFunc(edges, func(a, b treeEdge) int {
		return cmp.Compare(len(a.parent.RawPath()), len(b.parent.RawPath()))
	})

	cats := make(map[PathKey]*Category[I, string])
	ensureCategory := func(key PathKey) *Category[I, string] {
		if c, ok := cats[key]; ok {
			return c
		}
		c := t.NewCategory(key.String())
		vals := itemsAt[key]
		if len(vals) > 1 {
			debugf("tree builder: %d values share path %q, grouping them in a category", len(vals), key)
		}
		for _, v := range vals {
			c.children = append(c.children, t.NewItem(v))
		}
		cats[key] = c
		b.index[key] = c
		return c
	}
	nodeAt := func(key PathKey) Node[I, string] {
		if vals := itemsAt[key]; len(vals) == 1 && !hasDescendant[key] {
			it := t.NewItem(vals[0])
			b.index[key] = it
			return it
		}
		return ensureCategory(key)
	}

	for _, e := range edges {
		parent := ensureCategory(e.parent)
		child := nodeAt(e.child)
		if !slices.Contains(parent.children, child) {
			parent.children = append(parent.children, child)
		}
	}

	for _, key := range order {
		root := PathKey{canon: key.Root()}
		var n Node[I, string]
		if c, ok := cats[root]; ok {
			n = c
		} else {
			n = nodeAt(root)
		}
		if !slices.Contains(t.roots, n) {
			t.roots = append(t.roots, n)
		}
	}
	return t
}

// BuildTree builds a tree from entries in order.
func BuildTree[I any](entries []PathEntry[I], drawItem func(it *Item[I, string], r Rect, s Surface) bool) (*Tree[I, string], error) {
	b := NewTreeBuilder(drawItem)
	for _, e := range entries {
		if err := b.Add(e.Path, e.Value); err != nil {
			return nil, err
		}
	}
	return b.Build(), nil
}

// BuildTreeFromMap builds a tree from a map. Go maps are unordered, so keys
// are taken in sorted order to keep the result deterministic: roots and
// siblings come out alphabetically, not in the order the map was written.
// Use BuildTree with a []PathEntry when display order should follow input
// order.
func BuildTreeFromMap[I any](m map[string]I, drawItem func(it *Item[I, string], r Rect, s Surface) bool) (*Tree[I, string], error) {
	entries := make([]PathEntry[I], 0, len(m))
	for path, v := range m {
		entries = append(entries, PathEntry[I]{Path: path, Value: v})
	}
	slices.SortFunc(entries, func(a, b PathEntry[I]) int { return cmp.Compare(a.Path, b.Path) })
	return BuildTree(entries, drawItem)
}

// PathCategoryHeader is the header BuildTree installs: a chevron and the last
// segment of the category's path label.
func PathCategoryHeader[I any](c *Category[I, string], r Rect, s Surface) bool {
	name := c.Label
	if p, err := ParsePath(c.Label); err == nil {
		name = p.Name()
	}
	drawCategoryHeader(c.Open, name, r, s)
	return false
}
