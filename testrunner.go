package panel

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	DY     float64 `json:"dy,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected pointer input across frames for scripted
// widget tests and demos. Attach to a Pointer via SetTestRunner.
//
// Supported actions: "click", "rightclick", "drag", "hover", "wheel", "wait"
// and "screenshot". Screenshots are taken by an App running the pointer.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	shots     []string
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Pointer via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "click", "rightclick", "drag", "hover", "wheel", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the pointer. The runner's step
// method is called from Pointer.Update before input is processed. While a
// runner is attached the real mouse is ignored; pass nil to detach.
func (p *Pointer) SetTestRunner(runner *TestRunner) {
	p.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Pointer.Update.
func (r *TestRunner) step(p *Pointer) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(p.injectQueue) > 0 {
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
		p.InjectClick(st.X, st.Y)
	case "rightclick":
		p.InjectRightClick(st.X, st.Y)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		p.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "hover":
		p.InjectHover(st.X, st.Y)
	case "wheel":
		p.InjectWheel(st.X, st.Y, st.DY)
	case "screenshot":
		r.shots = append(r.shots, st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(p.injectQueue) == 0 {
		r.done = true
	}
}

// takeScreenshots returns and clears the labels queued by screenshot steps.
func (r *TestRunner) takeScreenshots() []string {
	shots := r.shots
	r.shots = nil
	return shots
}
