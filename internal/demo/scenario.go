// Package demo runs scripted driving loops against a sender. A scenario is an
// ordered list of steps (sends, key taps, random taps, waits) that the Executor
// plays back, optionally looping until its context is cancelled.
package demo

import (
	"time"

	"github.com/zhubert/wowint/internal/gamepad"
	"github.com/zhubert/wowint/internal/registry"
)

// StepType represents the type of action in a scenario step.
type StepType int

const (
	// StepWait pauses for a duration.
	StepWait StepType = iota
	// StepSend sends a raw code to the default target.
	StepSend
	// StepSendAt sends a raw code to an explicit target index.
	StepSendAt
	// StepTap presses a named key, holds it, then releases it.
	StepTap
	// StepRandomTap taps a random press code drawn from [Min, Max).
	StepRandomTap
	// StepRandomTapFrom taps a random press code drawn from Codes.
	StepRandomTapFrom
	// StepPad sends a gamepad action.
	StepPad
	// StepAnnotate writes a note to the run log.
	StepAnnotate
)

func (t StepType) String() string {
	switch t {
	case StepWait:
		return "wait"
	case StepSend:
		return "send"
	case StepSendAt:
		return "send-at"
	case StepTap:
		return "tap"
	case StepRandomTap:
		return "random-tap"
	case StepRandomTapFrom:
		return "random-tap-from"
	case StepPad:
		return "pad"
	case StepAnnotate:
		return "annotate"
	default:
		return "unknown"
	}
}

// Step represents a single action in a scenario.
type Step struct {
	Type        StepType
	Description string

	// For StepSend, StepSendAt
	Code int32
	// For StepSendAt
	Index int32

	// For StepTap
	Key string

	// For StepRandomTap
	Min, Max int32

	// For StepRandomTapFrom
	Codes []int32

	// For StepPad
	Action gamepad.Action

	// For StepWait
	Duration time.Duration

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete driving loop.
type Scenario struct {
	Name        string
	Description string
	Steps       []Step
}

// Validate checks that the scenario can be played.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if len(s.Steps) == 0 {
		return &ValidationError{Field: "Steps", Message: "scenario has no steps"}
	}
	paced := false
	for _, step := range s.Steps {
		switch step.Type {
		case StepSend, StepSendAt, StepTap, StepRandomTap, StepRandomTapFrom, StepPad:
			paced = true
		case StepWait:
			paced = paced || step.Duration > 0
		}
		switch step.Type {
		case StepTap:
			if _, ok := registry.LookupByName(step.Key); !ok {
				return &ValidationError{Field: "Steps", Message: "unknown key " + step.Key}
			}
		case StepRandomTap:
			if step.Max <= step.Min {
				return &ValidationError{Field: "Steps", Message: "random tap range is empty"}
			}
		case StepRandomTapFrom:
			if len(step.Codes) == 0 {
				return &ValidationError{Field: "Steps", Message: "random tap list is empty"}
			}
		case StepWait:
			if step.Duration < 0 {
				return &ValidationError{Field: "Steps", Message: "negative wait"}
			}
		}
	}
	// A loop that neither sends nor waits would spin when repeated forever.
	if !paced {
		return &ValidationError{Field: "Steps", Message: "scenario never sends or waits"}
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{Type: StepWait, Duration: d}
}

// Send creates a step sending code to the default target.
func Send(code int32) Step {
	return Step{Type: StepSend, Code: code}
}

// SendAt creates a step sending code to index.
func SendAt(index, code int32) Step {
	return Step{Type: StepSendAt, Index: index, Code: code}
}

// Tap creates a press/hold/release step for a named key.
func Tap(key string) Step {
	return Step{Type: StepTap, Key: key}
}

// RandomTap creates a tap of a random press code in [min, max).
func RandomTap(min, max int32) Step {
	return Step{Type: StepRandomTap, Min: min, Max: max}
}

// RandomTapFrom creates a tap of a press code chosen from codes.
func RandomTapFrom(codes ...int32) Step {
	return Step{Type: StepRandomTapFrom, Codes: codes}
}

// Pad creates a gamepad action step.
func Pad(action gamepad.Action) Step {
	return Step{Type: StepPad, Action: action}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{Type: StepAnnotate, Annotation: text}
}

// WithDesc returns a copy of the step with a description.
func (s Step) WithDesc(description string) Step {
	s.Description = description
	return s
}
