// Package panel is a toolkit for interactive immediate-mode panels drawn with
// [Ebitengine].
//
// A panel is redrawn every frame. Widgets ask a [Surface] for the next row of
// a vertical flow, draw into it, and query an [Input] for what the pointer
// did to that row this frame. [Canvas] is the Surface that draws into an
// *ebiten.Image; [Pointer] is the Input that polls the mouse.
//
// # Quick start
//
// The simplest way to get a window is [Run]:
//
//	app := panel.NewApp(panel.RunConfig{Title: "Inventory", Width: 320, Height: 480},
//		func(c *panel.Canvas, in panel.Input) { tree.Render(c, in) })
//	log.Fatal(panel.Run(app))
//
// For full control, implement [ebiten.Game] yourself and drive a [Canvas]
// and a [Pointer] directly:
//
//	type Game struct {
//		canvas  *panel.Canvas
//		pointer *panel.Pointer
//		tree    *panel.Tree[Item, string]
//		bounds  panel.Rect
//	}
//
//	func (g *Game) Update() error {
//		g.pointer.Update()
//		g.canvas.Begin(nil, g.bounds)
//		g.tree.Render(g.canvas, g.pointer)
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		g.canvas.Begin(screen, g.bounds)
//		g.tree.Render(g.canvas, g.pointer.Passive())
//	}
//
// Interaction happens in Update so each pointer frame is handled once, however
// many times ebiten calls Draw per tick.
//
// # Trees
//
// [BuildTree] turns flat "category/sub/item" paths into a [Tree] whose
// categories are the shared prefixes. Paths may use '/' or '\' and empty
// segments are ignored. Several values at one path are grouped into a
// category named after it. Categories toggle open and closed on click; a
// right click offers delete and create through [Tree.OnContext].
//
//	tree, err := panel.BuildTree([]panel.PathEntry[*Weapon]{
//		{Path: "weapons/sword", Value: sword},
//		{Path: "weapons/bow", Value: bow},
//	}, drawWeapon)
//
// Structural changes made through [Tree.AddChild] and [Tree.RemoveChild] are
// recorded in the tree's [Ledger] and reported by the next Render.
//
// # Reorder lists
//
// [ReorderList] draws a caller-owned slice as rows with drag handles.
// Dropping a row on another swaps them; dropping on the thin strip between
// rows inserts it there. [Reorder] is the same mutation without any UI.
//
// # Persistence
//
// [Scribe] saves and loads named fields with one code path for both
// directions. [LookAccurate] uses per-type converters registered with
// [RegisterConverter]; [LookTreeState] remembers which categories were
// closed.
//
// # Testing
//
// Pointer input can be injected ([Pointer.InjectClick], [Pointer.InjectDrag])
// or scripted from JSON with [LoadTestScript], so widgets can be driven
// headlessly. [SetDebugMode] prints drags, drops and tree builder
// collisions to stderr.
//
// # Events
//
// Set [Tree.Events] or [ReorderList.Events] to an [EventSink] to forward
// interaction to game systems. The panel/ecs module bridges them into a
// [Donburi] world. Scroll animation and the drop highlight use [gween].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package panel
