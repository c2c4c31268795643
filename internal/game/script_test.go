package game

import (
	"errors"
	"sort"
	"strings"
	"testing"
)

func TestScriptNames(t *testing.T) {
	names := ScriptNames()
	if len(names) != 6 {
		t.Errorf("len(ScriptNames()) = %d, want 6", len(names))
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("ScriptNames() = %v, want sorted", names)
	}
	for _, name := range names {
		if s, err := LookupScript(name); err != nil || s == nil {
			t.Errorf("LookupScript(%q) = nil script %v, error %v", name, s == nil, err)
		}
	}
}

func TestLookupScriptUnknown(t *testing.T) {
	_, err := LookupScript("runright")
	if !errors.Is(err, ErrUnknownScript) {
		t.Fatalf("LookupScript(runright) error = %v, want ErrUnknownScript", err)
	}
	if !strings.Contains(err.Error(), "did you mean run-right") {
		t.Errorf("LookupScript(runright) error = %q, want a run-right suggestion", err)
	}

	_, err = LookupScript("xyz")
	if !errors.Is(err, ErrUnknownScript) {
		t.Fatalf("LookupScript(xyz) error = %v, want ErrUnknownScript", err)
	}
	if strings.Contains(err.Error(), "did you mean") {
		t.Errorf("LookupScript(xyz) error = %q, want no suggestion", err)
	}
}

func TestHopRightScript(t *testing.T) {
	hop, err := LookupScript("hop-right")
	if err != nil {
		t.Fatalf("LookupScript() error = %v", err)
	}

	tests := []struct {
		tick          int
		pressed, held bool
	}{
		{0, true, true},
		{1, false, true},
		{19, false, true},
		{20, false, false},
		{59, false, false},
		{60, true, true},
	}

	for _, tt := range tests {
		in := hop(tt.tick)
		if !in.Right || in.JumpJustPressed != tt.pressed || in.JumpHeld != tt.held {
			t.Errorf("hop-right(%d) = %+v, want Right, pressed=%v held=%v", tt.tick, in, tt.pressed, tt.held)
		}
	}
}

func TestDebugTourToggles(t *testing.T) {
	tour, err := LookupScript("debug-tour")
	if err != nil {
		t.Fatalf("LookupScript() error = %v", err)
	}

	var toggles []int
	for tick := 0; tick < 400; tick++ {
		if tour(tick).DebugToggle {
			toggles = append(toggles, tick)
		}
	}
	if len(toggles) != 2 || toggles[0] != 0 || toggles[1] != 240 {
		t.Errorf("debug-tour toggles at %v, want [0 240]", toggles)
	}
}
