package pando

import (
	"time"

	"github.com/gogpu/gg/scene"
)

// Option configures an App.
type Option func(*App)

// WithWindow sets the windowing collaborator. Defaults to a window that
// ignores every request.
func WithWindow(w Window) Option {
	return func(a *App) { a.fs.window = w }
}

// WithPresenter sets where each freshly drawn scene is sent.
func WithPresenter(p Presenter) Option {
	return func(a *App) { a.presenter = p }
}

// WithDragThreshold overrides DefaultDragThreshold.
func WithDragThreshold(d float64) Option {
	return func(a *App) { a.mouse.SetDragThreshold(d) }
}

// WithEventSink forwards every dispatched gesture to sink.
func WithEventSink(sink EventSink) Option {
	return func(a *App) { a.mouse.sink = sink }
}

// WithStore shares an existing state store.
func WithStore(s *Store) Option {
	return func(a *App) { a.fs.store = s }
}

// WithDebug enables per-frame statistics logging.
func WithDebug(enabled bool) Option {
	return func(a *App) { a.debug = enabled }
}

// FrameStats describes what one call to Frame did.
type FrameStats struct {
	// Callbacks is true when the gesture engine dispatched any callback.
	Callbacks bool
	// Redrawn is true when layout and draw ran.
	Redrawn bool
	// Input is true when pointer, button, scroll or key input changed
	// since the previous frame.
	Input   bool
	Regions int
	Mouse   int
	Evicted int

	Update time.Duration
	Layout time.Duration
	Draw   time.Duration
}

// App drives a root widget through the per-frame sequence: gesture
// dispatch, update, and, when anything asked for it, layout and draw.
type App struct {
	root Widget

	fs        *frameState
	input     *Input
	regions   *RegionTable
	mouse     *MouseRegionManager
	scene     *scene.Scene
	presenter Presenter

	forceRedraw bool
	debug       bool

	injectQueue []syntheticEvent
	script      *Script
}

// NewApp creates an App around root. The first Frame always lays out and
// draws.
func NewApp(root Widget, opts ...Option) *App {
	in := &Input{Delta: 1.0 / 60}
	a := &App{
		root:        root,
		input:       in,
		regions:     newRegionTable(),
		mouse:       newMouseRegionManager(),
		scene:       scene.NewScene(),
		forceRedraw: true,
	}
	a.fs = &frameState{
		input:   in,
		store:   NewStore(),
		regions: a.regions,
		mouse:   a.mouse,
		window:  nopWindow{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Frame runs one frame and decays the frame input afterwards.
func (a *App) Frame() (FrameStats, error) {
	var stats FrameStats

	if a.script != nil {
		a.script.step(a)
	}
	a.applyInjected()

	fs := a.fs
	fs.redraw = false
	stats.Input = a.input.changed()
	stats.Callbacks = a.mouse.process(fs)

	t0 := time.Now()
	a.mouse.clearUpdate()
	a.root.Update(a.rootUpdate())
	stats.Update = time.Since(t0)

	var err error
	if stats.Callbacks || fs.redraw || a.forceRedraw {
		stats.Redrawn = true
		a.mouse.Clear()
		a.regions.begin()

		t0 = time.Now()
		lcx := &LayoutContext{Context: Context{fs: fs, transform: Identity, tracked: true}}
		res := a.root.Layout(Size{}, a.input.WindowSize, lcx)
		res.Position(Identity, lcx)
		stats.Layout = time.Since(t0)

		t0 = time.Now()
		a.scene.Reset()
		a.root.Draw(newDrawContext(fs, a.scene))
		stats.Draw = time.Since(t0)

		if a.presenter != nil {
			err = a.presenter.Present(a.scene)
		}
		a.forceRedraw = false
	}

	a.input.advance()
	stats.Evicted = fs.store.drainEvictions()
	stats.Regions = a.regions.Len()
	stats.Mouse = a.mouse.Len()

	if a.debug {
		a.debugLog(stats)
	}
	return stats, err
}

func (a *App) rootUpdate() *UpdateContext {
	return &UpdateContext{Context: Context{fs: a.fs, transform: Identity, tracked: true}}
}

// Resize records a new window size and forces the next frame to redraw.
func (a *App) Resize(s Size) {
	if s == a.input.WindowSize {
		return
	}
	a.input.SetWindowSize(s)
	a.forceRedraw = true
}

// ForceRedraw makes the next frame lay out and draw.
func (a *App) ForceRedraw() {
	a.forceRedraw = true
}

// SetScript attaches an input script, replacing any previous one.
func (a *App) SetScript(s *Script) {
	a.script = s
}

// SetEventSink forwards every dispatched gesture to sink. nil disables.
func (a *App) SetEventSink(sink EventSink) {
	a.mouse.sink = sink
}

// SetDebugMode toggles per-frame statistics logging.
func (a *App) SetDebugMode(enabled bool) {
	a.debug = enabled
}

// Input returns the frame input the windowing adapter feeds.
func (a *App) Input() *Input { return a.input }

// Store returns the state store.
func (a *App) Store() *Store { return a.fs.store }

// Regions returns the region table of the most recent layout.
func (a *App) Regions() *RegionTable { return a.regions }

// Mouse returns the gesture engine.
func (a *App) Mouse() *MouseRegionManager { return a.mouse }

// Scene returns the most recently drawn display list.
func (a *App) Scene() *scene.Scene { return a.scene }

// Window returns the windowing collaborator.
func (a *App) Window() Window { return a.fs.window }

// Focused returns the token holding keyboard focus, or NoToken.
func (a *App) Focused() Token { return a.fs.focus }
