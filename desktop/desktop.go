// Package desktop runs a pando widget tree in a native window using ebiten.
package desktop

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/pando"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Resizable lets the user resize the window.
	Resizable bool
	// Undecorated hides the OS title bar; use DragWindow and
	// DragResizeWindow from mouse regions instead.
	Undecorated bool
	// ShowFPS overlays the measured frame and tick rates.
	ShowFPS bool
}

// Run opens a window and drives root until the window closes or a node
// calls Window.Exit. It blocks on the calling goroutine.
func Run(root pando.Widget, cfg RunConfig, opts ...pando.Option) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = 800, 600
	}
	g := &ebitenGame{cfg: cfg}
	g.window = &ebitenWindow{game: g}
	g.presenter = pando.NewPixmapPresenter(cfg.Width, cfg.Height)
	opts = append([]pando.Option{pando.WithWindow(g.window), pando.WithPresenter(g.presenter)}, opts...)
	g.app = pando.NewApp(root, opts...)
	g.app.Resize(pando.Size{W: float64(cfg.Width), H: float64(cfg.Height)})

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowDecorated(!cfg.Undecorated)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetScreenClearedEveryFrame(false)

	pando.Logger().Info("window opening", slog.String("title", cfg.Title), slog.Int("width", cfg.Width), slog.Int("height", cfg.Height))
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	pando.Logger().Info("window closed")
	return err
}

// ebitenGame adapts a pando App to ebiten's game loop.
type ebitenGame struct {
	cfg       RunConfig
	app       *pando.App
	window    *ebitenWindow
	presenter *pando.PixmapPresenter

	fresh bool
	exit  bool

	keys  []ebiten.Key
	chars []rune
}

func (g *ebitenGame) Update() error {
	if g.exit {
		return ebiten.Termination
	}
	g.window.tick()
	g.readInput()
	g.app.Input().Delta = 1 / float64(ebiten.TPS())

	stats, err := g.app.Frame()
	if err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	if stats.Redrawn {
		g.fresh = true
	}
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	if !g.fresh && !g.cfg.ShowFPS {
		return
	}
	if pm := g.presenter.Pixmap(); pm != nil {
		screen.WritePixels(pm.Data())
	}
	g.fresh = false
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := pando.Size{W: float64(outsideWidth), H: float64(outsideHeight)}
	if size != g.app.Input().WindowSize {
		g.presenter.Resize(outsideWidth, outsideHeight)
		g.app.Resize(size)
	}
	return outsideWidth, outsideHeight
}

// readInput copies this tick's ebiten input state into the frame input.
// Injected events, if any, are applied on top by the App.
func (g *ebitenGame) readInput() {
	in := g.app.Input()
	x, y := ebiten.CursorPosition()
	ws := in.WindowSize
	if ebiten.IsFocused() && x >= 0 && y >= 0 && float64(x) < ws.W && float64(y) < ws.H {
		in.SetPointer(pando.Vec2{X: float64(x), Y: float64(y)})
	} else {
		in.PointerLeft()
	}
	in.SetButton(pando.MouseButtonLeft, ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))
	in.SetButton(pando.MouseButtonRight, ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight))
	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		in.AddScroll(pando.Vec2{X: dx, Y: dy})
	}
	mods := readModifiers()
	in.SetModifiers(mods)

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		in.PushKey(pando.KeyEvent{Key: k.String(), Pressed: true, Modifiers: mods})
	}
	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		in.PushKey(pando.KeyEvent{Key: k.String(), Pressed: false, Modifiers: mods})
	}
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	if len(g.chars) > 0 {
		in.PushKey(pando.KeyEvent{Text: string(g.chars), Pressed: true, Modifiers: mods})
	}
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() pando.KeyModifiers {
	var mods pando.KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= pando.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= pando.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= pando.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= pando.ModMeta
	}
	return mods
}

// ebitenWindow implements Window on top of ebiten's window functions.
// ebiten has no OS-level move/resize drag, so both are emulated by
// following the pointer in screen space until the left button is released.
type ebitenWindow struct {
	game *ebitenGame
	drag *windowDrag
}

type windowDrag struct {
	resize bool
	dir    pando.ResizeDirection
	// start is the pointer in screen space when the drag began.
	startX, startY int
	posX, posY     int
	w, h           int
}

func (w *ebitenWindow) SetMaximized(maximized bool) {
	if maximized {
		ebiten.MaximizeWindow()
	} else {
		ebiten.RestoreWindow()
	}
}

func (w *ebitenWindow) IsMaximized() bool {
	return ebiten.IsWindowMaximized()
}

func (w *ebitenWindow) SetMinimized(minimized bool) {
	if minimized {
		ebiten.MinimizeWindow()
	} else {
		ebiten.RestoreWindow()
	}
}

func (w *ebitenWindow) DragWindow() {
	w.begin(false, 0)
}

func (w *ebitenWindow) DragResizeWindow(dir pando.ResizeDirection) {
	w.begin(true, dir)
}

func (w *ebitenWindow) begin(resize bool, dir pando.ResizeDirection) {
	px, py := ebiten.WindowPosition()
	cx, cy := ebiten.CursorPosition()
	ww, wh := ebiten.WindowSize()
	w.drag = &windowDrag{
		resize: resize, dir: dir,
		startX: px + cx, startY: py + cy,
		posX: px, posY: py,
		w: ww, h: wh,
	}
}

// tick follows an active window drag.
func (w *ebitenWindow) tick() {
	d := w.drag
	if d == nil {
		return
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		w.drag = nil
		return
	}
	px, py := ebiten.WindowPosition()
	cx, cy := ebiten.CursorPosition()
	dx, dy := px+cx-d.startX, py+cy-d.startY
	if !d.resize {
		ebiten.SetWindowPosition(d.posX+dx, d.posY+dy)
		return
	}
	x, y, width, height := resizeRect(d.dir, d.posX, d.posY, d.w, d.h, dx, dy)
	ebiten.SetWindowPosition(x, y)
	ebiten.SetWindowSize(width, height)
}

// minWindowSide bounds emulated resizes.
const minWindowSide = 64

// resizeRect applies a pointer delta to the window rectangle from the given
// edge or corner.
func resizeRect(dir pando.ResizeDirection, x, y, w, h, dx, dy int) (int, int, int, int) {
	left := dir == pando.ResizeWest || dir == pando.ResizeNorthWest || dir == pando.ResizeSouthWest
	right := dir == pando.ResizeEast || dir == pando.ResizeNorthEast || dir == pando.ResizeSouthEast
	top := dir == pando.ResizeNorth || dir == pando.ResizeNorthEast || dir == pando.ResizeNorthWest
	bottom := dir == pando.ResizeSouth || dir == pando.ResizeSouthEast || dir == pando.ResizeSouthWest

	switch {
	case right:
		w = max(minWindowSide, w+dx)
	case left:
		nw := max(minWindowSide, w-dx)
		x += w - nw
		w = nw
	}
	switch {
	case bottom:
		h = max(minWindowSide, h+dy)
	case top:
		nh := max(minWindowSide, h-dy)
		y += h - nh
		h = nh
	}
	return x, y, w, h
}

func (w *ebitenWindow) SetCursor(icon pando.CursorIcon) {
	ebiten.SetCursorShape(ebitenCursor(icon))
}

func ebitenCursor(icon pando.CursorIcon) ebiten.CursorShapeType {
	switch icon {
	case pando.CursorPointer:
		return ebiten.CursorShapePointer
	case pando.CursorText:
		return ebiten.CursorShapeText
	case pando.CursorCrosshair:
		return ebiten.CursorShapeCrosshair
	case pando.CursorMove, pando.CursorGrab, pando.CursorGrabbing:
		return ebiten.CursorShapeMove
	case pando.CursorNotAllowed:
		return ebiten.CursorShapeNotAllowed
	case pando.CursorEWResize:
		return ebiten.CursorShapeEWResize
	case pando.CursorNSResize:
		return ebiten.CursorShapeNSResize
	case pando.CursorNESWResize:
		return ebiten.CursorShapeNESWResize
	case pando.CursorNWSEResize:
		return ebiten.CursorShapeNWSEResize
	default:
		return ebiten.CursorShapeDefault
	}
}

func (w *ebitenWindow) RequestRedraw() {
	w.game.app.ForceRedraw()
}

func (w *ebitenWindow) Exit() {
	w.game.exit = true
}
