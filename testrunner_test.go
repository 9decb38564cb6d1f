package bubble

import "testing"

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "tap"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[2].X != 100 || runner.steps[2].Y != 200 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].Frames != 3 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"empty", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "swipe"}]}`},
		{"bad state", `{"steps": [{"action": "expect", "state": "liked"}]}`},
		{"missing state", `{"steps": [{"action": "expect"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadTestScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

// runScript advances s until the runner finishes or maxFrames pass.
func runScript(t *testing.T, s *Stage, runner *TestRunner, maxFrames int) {
	t.Helper()
	s.SetTestRunner(runner)
	for i := 0; i < maxFrames && !runner.Done(); i++ {
		s.advance(testDT)
	}
	if !runner.Done() {
		t.Fatalf("script not done after %d frames", maxFrames)
	}
}

func TestRunnerTapsThroughCycle(t *testing.T) {
	s := newTestStage()
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "tap"},
		{"action": "wait", "frames": 5},
		{"action": "tap"},
		{"action": "tap"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, s, runner, 100)
	if s.Button().State() != StateInactive {
		t.Errorf("State = %v, want inactive after three taps", s.Button().State())
	}
}

func TestRunnerWaitCountsFrames(t *testing.T) {
	s := newTestStage()
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "wait", "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)
	for i := 0; i < 2; i++ {
		s.advance(testDT)
		if runner.Done() {
			t.Fatalf("done after %d frames", i+1)
		}
	}
	s.advance(testDT)
	s.advance(testDT)
	if !runner.Done() {
		t.Error("expected done after the wait")
	}
}

func TestRunnerQueuesScreenshots(t *testing.T) {
	s := newTestStage()
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "screenshot", "label": "before"},
		{"action": "click", "x": 240, "y": 240},
		{"action": "screenshot", "label": "after"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, s, runner, 20)
	if len(s.screenshotQueue) != 2 {
		t.Errorf("queued %v, want 2 screenshots", s.screenshotQueue)
	}
	if s.Button().State() != StateProcessing {
		t.Errorf("State = %v, want processing", s.Button().State())
	}
}

func TestRunnerExpect(t *testing.T) {
	s := newTestStage()
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "expect", "state": "inactive"},
		{"action": "tap"},
		{"action": "expect", "state": "processing"},
		{"action": "expect", "state": "active"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, s, runner, 20)
	f := runner.Failures()
	if len(f) != 1 {
		t.Fatalf("failures = %v, want exactly one", f)
	}
	if f[0] != "step 3: state is processing, want active" {
		t.Errorf("failure = %q", f[0])
	}
}
