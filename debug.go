package pando

import "log/slog"

// debugLog writes one frame's statistics at debug level.
func (a *App) debugLog(stats FrameStats) {
	l := logger()
	if !stats.Redrawn {
		l.Debug("frame",
			slog.Bool("input", stats.Input),
			slog.Bool("callbacks", stats.Callbacks),
			slog.Duration("update", stats.Update))
		return
	}
	l.Debug("frame",
		slog.Bool("input", stats.Input),
		slog.Bool("callbacks", stats.Callbacks),
		slog.Duration("update", stats.Update),
		slog.Duration("layout", stats.Layout),
		slog.Duration("draw", stats.Draw),
		slog.Int("regions", stats.Regions),
		slog.Int("mouse_regions", stats.Mouse),
		slog.Int("evicted", stats.Evicted))
	debugCheckDepth(a.regions, NoToken, 0)
}

// debugMaxTreeDepth is the layout depth above which a warning is logged.
const debugMaxTreeDepth = 64

func debugCheckDepth(t *RegionTable, tok Token, depth int) {
	if depth > debugMaxTreeDepth {
		logger().Warn("layout tree too deep", slog.Int("depth", depth), slog.String("token", tok.String()))
		return
	}
	for _, c := range t.Children(tok) {
		debugCheckDepth(t, c, depth+1)
	}
}
