package motion

import (
	"encoding/json"
	"fmt"
	"time"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Ms     int     `json:"ms,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Y      float64 `json:"y,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// ScriptEnv is what a TestRunner drives. Scroll and Trigger may be nil when
// the script never uses them.
type ScriptEnv struct {
	Clock   *VirtualClock
	Scroll  func(y float64)
	Trigger *VisibilityTrigger
}

// TestRunner replays a scripted sequence of clock advances, scrolls and
// visibility scans against a VirtualClock, for deterministic scenario tests.
//
//	{"steps": [
//	  {"action": "scroll", "y": 600},
//	  {"action": "scan"},
//	  {"action": "advance", "ms": 250},
//	  {"action": "frames", "frames": 3}
//	]}
type TestRunner struct {
	steps  []testStep
	cursor int
	done   bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner.
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
		case "advance", "frames", "scroll", "scan":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Step executes the next step.
func (r *TestRunner) Step(env ScriptEnv) error {
	if r.done {
		return nil
	}
	st := r.steps[r.cursor]
	r.cursor++
	if r.cursor >= len(r.steps) {
		r.done = true
	}

	switch st.Action {
	case "advance":
		if env.Clock == nil {
			return fmt.Errorf("step %d: advance needs a clock", r.cursor-1)
		}
		env.Clock.Advance(time.Duration(st.Ms) * time.Millisecond)
	case "frames":
		if env.Clock == nil {
			return fmt.Errorf("step %d: frames needs a clock", r.cursor-1)
		}
		env.Clock.RunFrames(max(st.Frames, 1))
	case "scroll":
		if env.Scroll == nil {
			return fmt.Errorf("step %d: scroll needs a scroll func", r.cursor-1)
		}
		env.Scroll(st.Y)
	case "scan":
		if env.Trigger == nil {
			return fmt.Errorf("step %d: scan needs a trigger", r.cursor-1)
		}
		env.Trigger.Scan()
	}
	return nil
}

// Run executes every remaining step and stops at the first error.
func (r *TestRunner) Run(env ScriptEnv) error {
	for !r.done {
		if err := r.Step(env); err != nil {
			return err
		}
	}
	return nil
}
