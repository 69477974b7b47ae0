package registry

import (
	"strings"
	"testing"

	"github.com/zhubert/wowint/internal/errors"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		token string
		want  Code
	}{
		{"42", 42},
		{"-75", -75},
		{"0", 0},
		{"2147483647", 2147483647},
		{"LeftArrow", 1037},
		{"Left", 1037},
		{"Left:press", 1037},
		{"Left:down", 1037},
		{"Left:release", 2037},
		{"Left:up", 2037},
		{"Enter", 1013},
		{"PressA", 1300},
		{"SetRightStickVerticalMinus75", 1377},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := Resolve(tt.token)
			if err != nil {
				t.Fatalf("Resolve(%q) error: %v", tt.token, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%q) = %d, want %d", tt.token, got, tt.want)
			}
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		token string
		kind  errors.Kind
	}{
		{"LeftArow", errors.KindNotFound},
		{"Left:sideways", errors.KindInvalid},
		{"PressA:up", errors.KindInvalid},
		{":up", errors.KindInvalid},
		{"99999999999", errors.KindNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			_, err := Resolve(tt.token)
			if err == nil {
				t.Fatalf("Resolve(%q) should fail", tt.token)
			}
			if !errors.Is(err, tt.kind) {
				t.Errorf("Resolve(%q) kind = %v, want %v", tt.token, errors.GetKind(err), tt.kind)
			}
		})
	}
}

func TestResolve_SuggestsCloseNames(t *testing.T) {
	_, err := Resolve("LeftArow")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "LeftArrow") {
		t.Errorf("error %q should suggest LeftArrow", err)
	}
}

func TestSuggest(t *testing.T) {
	got := Suggest("Entr", 2)
	if len(got) == 0 || got[0] != "Enter" {
		t.Errorf("Suggest(Entr) = %v, want Enter first", got)
	}
	if len(got) > 2 {
		t.Errorf("Suggest returned %d names, limit 2", len(got))
	}
	if got := Suggest("completely-unrelated-name", 3); len(got) != 0 {
		t.Errorf("Suggest for distant name = %v, want none", got)
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{1037, "LeftArrow (press)"},
		{2037, "LeftArrow (release)"},
		{1300, "PressA"},
		{1340, ""},
		{42, ""},
	}

	for _, tt := range tests {
		if got := Describe(tt.code); got != tt.want {
			t.Errorf("Describe(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
