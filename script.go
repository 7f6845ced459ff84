package pando

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrNoSteps is returned by LoadScript for a script without steps.
var ErrNoSteps = errors.New("script has no steps")

// ScriptStep is a single action in an input script.
type ScriptStep struct {
	Action string  `yaml:"action"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	DX     float64 `yaml:"dx,omitempty"`
	DY     float64 `yaml:"dy,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	Key    string  `yaml:"key,omitempty"`
	Text   string  `yaml:"text,omitempty"`
	Label  string  `yaml:"label,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

type script struct {
	Steps []ScriptStep `yaml:"steps"`
}

// Script sequences injected input across frames. Attach one to an App with
// SetScript; the App steps it at the start of every frame.
type Script struct {
	steps     []ScriptStep
	cursor    int
	waitCount int
	done      bool
}

var scriptActions = map[string]bool{
	"click": true, "rightClick": true, "drag": true, "rightDrag": true,
	"move": true, "leave": true, "scroll": true, "key": true,
	"wait": true, "resize": true, "screenshot": true,
}

// LoadScript parses a YAML input script:
//
//	steps:
//	  - action: click
//	    x: 100
//	    y: 200
//	  - action: wait
//	    frames: 3
func LoadScript(data []byte) (*Script, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", ErrNoSteps)
	}
	for i, st := range s.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: s.Steps}, nil
}

// Steps returns the parsed steps.
func (r *Script) Steps() []ScriptStep {
	return r.steps
}

// Done reports whether every step has been executed and its input applied.
func (r *Script) Done() bool {
	return r.done
}

// step advances the script by one frame.
func (r *Script) step(a *App) {
	if r.done {
		return
	}
	// Let queued input drain before the next step.
	if a.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "click":
		a.InjectClick(MouseButtonLeft, st.X, st.Y)
	case "rightClick":
		a.InjectClick(MouseButtonRight, st.X, st.Y)
	case "drag":
		a.InjectDrag(MouseButtonLeft, Vec2{st.FromX, st.FromY}, Vec2{st.ToX, st.ToY}, st.Frames)
	case "rightDrag":
		a.InjectDrag(MouseButtonRight, Vec2{st.FromX, st.FromY}, Vec2{st.ToX, st.ToY}, st.Frames)
	case "move":
		a.InjectMove(st.X, st.Y)
	case "leave":
		a.InjectLeave()
	case "scroll":
		a.InjectScroll(st.X, st.Y, st.DX, st.DY)
	case "key":
		a.InjectKey(KeyEvent{Key: st.Key, Text: st.Text, Pressed: true})
		a.InjectKey(KeyEvent{Key: st.Key, Pressed: false})
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1
		}
	case "resize":
		a.Resize(Size{st.Width, st.Height})
	case "screenshot":
		a.Screenshot(st.Label)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && a.Pending() == 0 {
		r.done = true
	}
}
