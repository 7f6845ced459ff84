package pando

import "github.com/gogpu/gg/scene"

// Window is the windowing collaborator. Node logic reaches it through
// Context.Window; the frame driver calls SetCursor after hit testing.
// Implementations must be safe to call from the frame goroutine only.
type Window interface {
	SetMaximized(maximized bool)
	IsMaximized() bool
	SetMinimized(minimized bool)
	// DragWindow starts an OS-level window move that follows the pointer
	// until the primary button is released.
	DragWindow()
	// DragResizeWindow starts an OS-level resize from the given edge.
	DragResizeWindow(dir ResizeDirection)
	SetCursor(icon CursorIcon)
	// RequestRedraw asks the event loop for another frame even if no input
	// arrives.
	RequestRedraw()
	Exit()
}

// Presenter is the rendering collaborator. It receives the finished display
// list after every frame that ran layout and draw.
type Presenter interface {
	Present(s *scene.Scene) error
}

// CursorIcon is the pointer cursor hint carried by a mouse region.
type CursorIcon uint8

const (
	CursorDefault    CursorIcon = iota // standard arrow
	CursorPointer                      // hand, for clickable things
	CursorText                         // I-beam
	CursorCrosshair                    // precise selection
	CursorMove                         // four-way move
	CursorGrab                         // open hand
	CursorGrabbing                     // closed hand
	CursorNotAllowed                   // action unavailable
	CursorEWResize                     // horizontal resize
	CursorNSResize                     // vertical resize
	CursorNESWResize                   // diagonal resize (/)
	CursorNWSEResize                   // diagonal resize (\)
)

var cursorNames = [...]string{
	"default", "pointer", "text", "crosshair", "move", "grab", "grabbing",
	"not-allowed", "ew-resize", "ns-resize", "nesw-resize", "nwse-resize",
}

func (c CursorIcon) String() string {
	if int(c) < len(cursorNames) {
		return cursorNames[c]
	}
	return "unknown"
}

// ResizeDirection names the window edge or corner a resize drag starts from.
type ResizeDirection uint8

const (
	ResizeNorth ResizeDirection = iota
	ResizeSouth
	ResizeEast
	ResizeWest
	ResizeNorthEast
	ResizeNorthWest
	ResizeSouthEast
	ResizeSouthWest
)

// Cursor returns the resize cursor matching the direction.
func (d ResizeDirection) Cursor() CursorIcon {
	switch d {
	case ResizeNorth, ResizeSouth:
		return CursorNSResize
	case ResizeEast, ResizeWest:
		return CursorEWResize
	case ResizeNorthEast, ResizeSouthWest:
		return CursorNESWResize
	default:
		return CursorNWSEResize
	}
}

// nopWindow is used when an App is created without a window (headless).
type nopWindow struct{}

func (nopWindow) SetMaximized(bool)                {}
func (nopWindow) IsMaximized() bool                { return false }
func (nopWindow) SetMinimized(bool)                {}
func (nopWindow) DragWindow()                      {}
func (nopWindow) DragResizeWindow(ResizeDirection) {}
func (nopWindow) SetCursor(CursorIcon)             {}
func (nopWindow) RequestRedraw()                   {}
func (nopWindow) Exit()                            {}
