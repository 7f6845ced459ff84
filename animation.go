package pando

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates one float64 from a start to an end value. Advance it from
// an update pass with UpdateContext.Step, which also keeps frames coming
// while it runs. Keep tweens in node state so they survive rebuilds.
type Tween struct {
	tw    *gween.Tween
	value float64
	done  bool
}

// NewTween returns a tween from -> to over duration seconds.
func NewTween(from, to float64, duration float32, fn ease.TweenFunc) *Tween {
	if fn == nil {
		fn = ease.Linear
	}
	return &Tween{
		tw:    gween.New(float32(from), float32(to), duration, fn),
		value: from,
	}
}

// Value returns the current value.
func (t *Tween) Value() float64 {
	if t == nil {
		return 0
	}
	return t.value
}

// Running reports whether the tween has not reached its end yet.
func (t *Tween) Running() bool {
	return t != nil && !t.done
}

// advance moves the tween forward by dt seconds.
func (t *Tween) advance(dt float64) {
	if t.done {
		return
	}
	v, finished := t.tw.Update(float32(dt))
	t.value = float64(v)
	t.done = finished
}
