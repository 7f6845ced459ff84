// Package pando is the core of a retained-mode UI toolkit: a tree of
// persistent elements driven through an update, a layout and a draw pass
// each frame, plus a gesture engine that resolves pointer input against the
// regions registered during the previous draw.
//
// # Quick start
//
// Headless, for tests and tools:
//
//	root := pando.NewColumn(8,
//		pando.NewBox(pando.Size{W: 100, H: 40}, gg.RGB(0.3, 0.7, 1)),
//		pando.NewBox(pando.Size{W: 100, H: 40}, gg.RGB(1, 0.5, 0.2)),
//	)
//	app := pando.NewApp(root)
//	app.Resize(pando.Size{W: 640, H: 480})
//	app.Frame()
//
// In a window, with the desktop package:
//
//	desktop.Run(root, desktop.RunConfig{Title: "Pando", Width: 640, Height: 480})
//
// # Elements and tokens
//
// A [Node] implements the three passes. Wrapping it with [NewElement] gives
// it a [Token], the identity every per-frame table is keyed by. Parents see
// children as [Widget]s and must descend through them: the element narrows
// the context to the child, clamps layout results and culls off-screen
// subtrees.
//
// # State
//
// State that must outlive a node value lives in the [Store], keyed by
// Token and typed on first use. Reading it under another type panics.
//
//	type counter struct{ n int }
//	st := pando.StateOf[counter](cx)
//	st.n++
//
// Entries are dropped by [Element.Dispose] or, once the element is
// garbage collected, at the next frame boundary.
//
// # Layout
//
// Layout takes a min and max [Size] and returns a [LayoutResult] the parent
// must place exactly once with [LayoutResult.Position]. The placement is the
// child's [Region] for this frame.
//
// # Input
//
// During draw a node registers mouse regions with [DrawContext.MouseRegion].
// On the next frame the [MouseRegionManager] dispatches hover, leave, down,
// up, click, drag and scroll callbacks to the topmost region under the
// pointer, per button. A press only becomes a drag after
// [DefaultDragThreshold] units of travel; a drag never also clicks.
//
// # Frames
//
// [App.Frame] runs the gesture engine and the update pass every frame, and
// layout and draw only when a callback fired, a node asked for a redraw or
// the window changed. The finished [scene.Scene] goes to the [Presenter].
//
// # Testing
//
// [App.InjectClick], [App.InjectDrag] and the other Inject methods queue
// synthetic input consumed one event per frame. [LoadScript] reads a YAML
// list of such steps.
//
// Logging goes through [SetLogger] and is silent by default.
package pando
