package demo

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/zhubert/wowint/internal/logger"
	"github.com/zhubert/wowint/internal/random"
	"github.com/zhubert/wowint/internal/registry"
	"github.com/zhubert/wowint/internal/sender"
)

// SleepFunc pauses for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// ExecutorConfig configures the executor.
type ExecutorConfig struct {
	// Hold is how long a tapped key stays down (default: 1s)
	Hold time.Duration

	// Gap is the pause after every sent code (default: 1s)
	Gap time.Duration

	// Loops is how many times the scenario repeats. 0 repeats until the
	// context is cancelled.
	Loops int

	// Sleep paces the run. Tests replace it to avoid real delays.
	Sleep SleepFunc

	// Source supplies random codes. Nil uses an unseeded source.
	Source *random.Source

	// OnSend is called after every successful send.
	OnSend func(code int32)
}

// DefaultExecutorConfig returns one loop with one second holds and gaps.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		Hold:  time.Second,
		Gap:   time.Second,
		Loops: 1,
		Sleep: SleepContext,
	}
}

// SleepContext waits for d, returning early with ctx.Err() if ctx is done.
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Result summarizes a run.
type Result struct {
	RunID string
	Sent  int
	Loops int
}

// Executor plays scenarios against a sender.
type Executor struct {
	config ExecutorConfig
	sender sender.Sender
	source *random.Source
	log    *slog.Logger
	result Result
}

// NewExecutor creates a new executor sending through s.
func NewExecutor(s sender.Sender, cfg ExecutorConfig) *Executor {
	if cfg.Sleep == nil {
		cfg.Sleep = SleepContext
	}
	source := cfg.Source
	if source == nil {
		source = random.NewUnseeded()
	}
	return &Executor{
		config: cfg,
		sender: s,
		source: source,
	}
}

// Run plays the scenario. It stops at the first send error, or when ctx is
// cancelled, returning what was sent so far together with the error.
func (e *Executor) Run(ctx context.Context, scenario *Scenario) (Result, error) {
	if err := scenario.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid scenario: %w", err)
	}

	e.result = Result{RunID: uuid.New().String()}
	e.log = logger.WithRun(e.result.RunID).With("scenario", scenario.Name)
	e.log.Info("scenario started", "steps", len(scenario.Steps), "loops", e.config.Loops)

	for e.config.Loops == 0 || e.result.Loops < e.config.Loops {
		for i, step := range scenario.Steps {
			if err := e.executeStep(ctx, step); err != nil {
				e.log.Warn("scenario stopped", "step", i, "type", step.Type.String(), "error", err)
				return e.result, fmt.Errorf("step %d (%s) failed: %w", i, step.Type, err)
			}
		}
		e.result.Loops++
	}

	e.log.Info("scenario finished", "sent", e.result.Sent, "loops", e.result.Loops)
	return e.result, nil
}

func (e *Executor) executeStep(ctx context.Context, step Step) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch step.Type {
	case StepWait:
		return e.config.Sleep(ctx, step.Duration)

	case StepSend:
		return e.send(ctx, nil, step.Code)

	case StepSendAt:
		index := step.Index
		return e.send(ctx, &index, step.Code)

	case StepTap:
		key, ok := registry.LookupByName(step.Key)
		if !ok {
			return fmt.Errorf("unknown key %s", step.Key)
		}
		return e.tap(ctx, int32(key.PressCode))

	case StepRandomTap:
		return e.tap(ctx, e.source.IntBetween(step.Min, step.Max))

	case StepRandomTapFrom:
		return e.tap(ctx, e.source.FromList(step.Codes))

	case StepPad:
		return e.send(ctx, nil, step.Action.Code())

	case StepAnnotate:
		e.log.Info(step.Annotation)
		return nil
	}

	return fmt.Errorf("unknown step type %d", step.Type)
}

// releaseOffset separates a press code from its release code.
const releaseOffset = registry.KeyReleaseMin - registry.KeyPressMin

// tap sends press, holds, then sends press+1000 as the release, whatever the
// press code is.
func (e *Executor) tap(ctx context.Context, press int32) error {
	if err := e.transmit(nil, press); err != nil {
		return err
	}
	if err := e.config.Sleep(ctx, e.config.Hold); err != nil {
		return err
	}
	return e.send(ctx, nil, press+int32(releaseOffset))
}

// send transmits code and then waits for the configured gap.
func (e *Executor) send(ctx context.Context, index *int32, code int32) error {
	if err := e.transmit(index, code); err != nil {
		return err
	}
	return e.config.Sleep(ctx, e.config.Gap)
}

func (e *Executor) transmit(index *int32, code int32) error {
	var err error
	if index != nil {
		err = e.sender.SendToTargetAtIndex(*index, code)
	} else {
		err = e.sender.SendToDefaultTarget(code)
	}
	if err != nil {
		return err
	}

	e.result.Sent++
	e.log.Debug("code sent", "code", code, "key", registry.Describe(registry.Code(code)))
	if e.config.OnSend != nil {
		e.config.OnSend(code)
	}
	return nil
}
