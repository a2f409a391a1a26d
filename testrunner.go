package trellis

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/phanxgames/trellis/flex"
)

// scriptTolerance is the allowed difference between expected and actual
// geometry in "expect" steps.
const scriptTolerance = 1e-3

// scriptStep represents a single action in a layout script.
type scriptStep struct {
	Action string   `json:"action"`
	Node   string   `json:"node,omitempty"`
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
	Width  *float64 `json:"width,omitempty"`
	Height *float64 `json:"height,omitempty"`
	Value  float64  `json:"value,omitempty"`
	Mode   string   `json:"mode,omitempty"`
	Flag   bool     `json:"flag,omitempty"`
	Styles []string `json:"styles,omitempty"`
	Frames int      `json:"frames,omitempty"`
}

// layoutScript is the top-level JSON structure for a layout script.
type layoutScript struct {
	Steps []scriptStep `json:"steps"`
}

// LayoutRunner plays a scripted sequence of tree mutations and layout
// expectations across frames. Attach it to a Scene via SetLayoutRunner, or
// play it to completion with RunAll.
//
// Actions: "size", "position", "grow", "shrink" (mode "auto" or value),
// "direction", "justify", "align_items", "align_content", "align_self",
// "wrap", "padding", "margin", "visible", "flex", "style", "layout",
// "expect" and "wait".
type LayoutRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
	styles    *StyleSheet
	failures  []error
}

// LoadLayoutScript parses a JSON layout script and returns a LayoutRunner.
func LoadLayoutScript(jsonData []byte) (*LayoutRunner, error) {
	var script layoutScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse layout script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse layout script: no steps")
	}
	for i, st := range script.Steps {
		if err := validateStep(st); err != nil {
			return nil, fmt.Errorf("parse layout script: step %d: %w", i, err)
		}
	}
	return &LayoutRunner{steps: script.Steps}, nil
}

func validateStep(st scriptStep) error {
	switch st.Action {
	case "layout", "wait":
		return nil
	case "style":
		if len(st.Styles) == 0 {
			return errors.New("style step without styles")
		}
	case "direction":
		if _, ok := flex.ParseDirection(st.Mode); !ok {
			return fmt.Errorf("unknown direction %q", st.Mode)
		}
	case "justify", "align_content":
		if _, ok := flex.ParseSpacingMode(st.Mode); !ok {
			return fmt.Errorf("unknown spacing mode %q", st.Mode)
		}
	case "align_items", "align_self":
		if _, ok := flex.ParseAlign(st.Mode); !ok {
			return fmt.Errorf("unknown alignment %q", st.Mode)
		}
	case "size", "position", "grow", "shrink", "wrap", "padding", "margin", "visible", "flex", "expect":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	if st.Node == "" {
		return fmt.Errorf("%s step without node", st.Action)
	}
	return nil
}

// SetLayoutRunner attaches a LayoutRunner to the scene. The runner advances
// one step per Scene.Update.
func (s *Scene) SetLayoutRunner(runner *LayoutRunner) {
	s.testRunner = runner
}

// SetStyleSheet sets the style sheet used by "style" steps.
func (r *LayoutRunner) SetStyleSheet(ss *StyleSheet) {
	r.styles = ss
}

// Done reports whether all steps in the script have been executed.
func (r *LayoutRunner) Done() bool {
	return r.done
}

// Err returns the failed expectations and step errors so far, or nil.
func (r *LayoutRunner) Err() error {
	return errors.Join(r.failures...)
}

// RunAll plays the remaining steps against s without an ebiten loop, running
// a layout pass for every frame, and returns Err.
func (r *LayoutRunner) RunAll(s *Scene) error {
	for !r.done {
		r.step(s)
		s.UpdateLayout()
	}
	return r.Err()
}

// step advances the runner by one frame.
func (r *LayoutRunner) step(s *Scene) {
	if r.done {
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

	i := r.cursor
	st := r.steps[i]
	r.cursor++
	if err := r.exec(s, st); err != nil {
		r.failures = append(r.failures, fmt.Errorf("step %d (%s): %w", i, st.Action, err))
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

func (r *LayoutRunner) exec(s *Scene, st scriptStep) error {
	switch st.Action {
	case "layout":
		s.UpdateLayout()
		return nil
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
		return nil
	}

	n := s.root.FindByName(st.Node)
	if n == nil {
		return fmt.Errorf("no node named %q", st.Node)
	}
	switch st.Action {
	case "size":
		w, h := n.Size()
		n.SetSize(orDefault(st.Width, w), orDefault(st.Height, h))
	case "position":
		x, y := n.Position()
		n.SetPosition(orDefault(st.X, x), orDefault(st.Y, y))
	case "grow":
		n.FlexItem().SetGrow(st.Value)
	case "shrink":
		if st.Mode == "auto" {
			n.FlexItem().SetShrink(flex.ShrinkAuto)
		} else {
			n.FlexItem().SetShrink(flex.Shrink(st.Value))
		}
	case "align_self":
		a, _ := flex.ParseAlign(st.Mode)
		n.FlexItem().SetAlignSelf(a)
	case "margin":
		n.FlexItem().SetMargin(st.Value)
	case "visible":
		n.SetVisible(st.Flag)
	case "flex":
		n.SetFlexEnabled(st.Flag)
	case "style":
		if r.styles == nil {
			return errors.New("no style sheet set")
		}
		return r.styles.Apply(n, st.Styles...)
	case "expect":
		s.UpdateLayout()
		return expectBounds(n, st)
	default:
		c := n.Flex()
		if c == nil {
			return fmt.Errorf("node %q is not a flex container", st.Node)
		}
		execContainer(c, st)
	}
	return nil
}

func execContainer(c *flex.Container, st scriptStep) {
	switch st.Action {
	case "direction":
		d, _ := flex.ParseDirection(st.Mode)
		c.SetDirection(d)
	case "justify":
		m, _ := flex.ParseSpacingMode(st.Mode)
		c.SetJustifyContent(m)
	case "align_content":
		m, _ := flex.ParseSpacingMode(st.Mode)
		c.SetAlignContent(m)
	case "align_items":
		a, _ := flex.ParseAlign(st.Mode)
		c.SetAlignItems(a)
	case "wrap":
		c.SetWrap(st.Flag)
	case "padding":
		c.SetPadding(st.Value)
	}
}

func expectBounds(n *Node, st scriptStep) error {
	b := n.Bounds()
	var errs []error
	check := func(name string, want *float64, got float64) {
		if want != nil && math.Abs(*want-got) > scriptTolerance {
			errs = append(errs, fmt.Errorf("%s.%s = %g, want %g", n.Name, name, got, *want))
		}
	}
	check("x", st.X, b.X)
	check("y", st.Y, b.Y)
	check("width", st.Width, b.Width)
	check("height", st.Height, b.Height)
	return errors.Join(errs...)
}

func orDefault(v *float64, def float64) float64 {
	if v != nil {
		return *v
	}
	return def
}
