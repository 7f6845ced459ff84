package pando

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Screenshotter is implemented by presenters that can save what they
// present.
type Screenshotter interface {
	// Screenshot queues a capture of the next presented frame.
	Screenshot(label string)
}

// Screenshot asks the presenter to capture the next frame under label and
// forces that frame to draw. It is a no-op when the presenter cannot take
// screenshots.
func (a *App) Screenshot(label string) {
	s, ok := a.presenter.(Screenshotter)
	if !ok {
		return
	}
	s.Screenshot(label)
	a.forceRedraw = true
}

// Screenshot queues a labeled capture, written as PNG to ScreenshotDir
// after the next Present.
func (p *PixmapPresenter) Screenshot(label string) {
	p.shots = append(p.shots, label)
}

// flushScreenshots writes every queued capture of the current pixmap.
func (p *PixmapPresenter) flushScreenshots() {
	if len(p.shots) == 0 || p.pixmap == nil {
		return
	}
	defer func() { p.shots = p.shots[:0] }()

	dir := p.ScreenshotDir
	if dir == "" {
		dir = "screenshots"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger().Warn("screenshot dir", slog.String("dir", dir), slog.Any("error", err))
		return
	}
	stamp := time.Now().Format("20060102_150405")
	for _, label := range p.shots {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.png", stamp, sanitizeLabel(label)))
		if err := p.pixmap.SavePNG(path); err != nil {
			logger().Warn("screenshot", slog.String("path", path), slog.Any("error", err))
			continue
		}
		p.saved = append(p.saved, path)
	}
}

// Saved returns the paths of every screenshot written so far.
func (p *PixmapPresenter) Saved() []string {
	return p.saved
}

// sanitizeLabel keeps letters, digits, '-' and '.' and replaces everything
// else with '_'. Empty labels become "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
