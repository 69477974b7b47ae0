package scenarios

import (
	"testing"

	"github.com/zhubert/wowint/internal/demo"
)

func TestAll(t *testing.T) {
	scenarios := All()

	if len(scenarios) != 4 {
		t.Errorf("All() should return 4 scenarios, got %d", len(scenarios))
	}

	seen := make(map[string]bool)
	for _, s := range scenarios {
		if err := s.Validate(); err != nil {
			t.Errorf("Scenario %q validation failed: %v", s.Name, err)
		}
		if seen[s.Name] {
			t.Errorf("duplicate scenario name %q", s.Name)
		}
		seen[s.Name] = true
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		wantFound bool
	}{
		{"hello", true},
		{"letters", true},
		{"arrows", true},
		{"gamepad", true},
		{"nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenario := Get(tt.name)
			found := scenario != nil

			if found != tt.wantFound {
				t.Errorf("Get(%q) found = %v, want %v", tt.name, found, tt.wantFound)
			}
		})
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	s := Get("hello")
	s.Steps[0] = demo.Send(7)
	s.Name = "changed"

	if Hello.Name != "hello" || Hello.Steps[0].Code != 42 {
		t.Error("Get should not hand out the shared scenario")
	}
}

func TestLettersScenario(t *testing.T) {
	s := Letters
	if len(s.Steps) != 2 {
		t.Fatalf("Letters has %d steps, want 2", len(s.Steps))
	}
	if s.Steps[0].Type != demo.StepRandomTap || s.Steps[0].Min != 1048 || s.Steps[0].Max != 1090 {
		t.Errorf("first step = %+v, want random tap in [1048, 1090)", s.Steps[0])
	}
	if s.Steps[1].Type != demo.StepRandomTapFrom || len(s.Steps[1].Codes) != 4 {
		t.Errorf("second step = %+v, want random arrow tap", s.Steps[1])
	}
}
