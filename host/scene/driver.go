package scene

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// TimeStep is how far the time accumulator advances per tick.
const TimeStep = 0.01

const statsInterval = 100

// Scheduler yields until the next display refresh. Next returns an error
// once the host environment is torn down.
type Scheduler interface {
	Next(ctx context.Context) error
}

// Driver runs the per-frame update of an assembled scene.
type Driver struct {
	logger   *slog.Logger
	state    *RenderState
	animator *Animator
	controls Controls
	renderer Renderer

	failures uint64
}

func NewDriver(scene *Scene, animator *Animator, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{
		logger:   logger,
		state:    scene.State,
		animator: animator,
		controls: scene.Controls,
		renderer: scene.Renderer,
	}
}

func (d *Driver) State() *RenderState {
	return d.state
}

// Failures returns how many external calls failed so far.
func (d *Driver) Failures() uint64 {
	return d.failures
}

// Tick advances time, animates fireflies, updates the camera controls and
// renders one frame. Failures of the graphics library are logged and
// swallowed so the next tick still happens.
func (d *Driver) Tick() {
	d.state.Time += TimeStep
	d.state.Frame++

	d.guard("animate", func() error {
		d.animator.Animate(d.state)
		return nil
	})
	if d.controls != nil {
		d.guard("controls", func() error {
			d.controls.Update()
			return nil
		})
	}
	if d.renderer != nil {
		d.guard("render", d.renderer.Render)
	}

	if d.state.Frame%statsInterval == 0 {
		d.logger.Debug("Frame",
			slog.Uint64("frame", d.state.Frame),
			slog.Float64("time", d.state.Time),
			slog.Int("fireflies", len(d.state.Fireflies)),
			slog.Uint64("failures", d.failures),
		)
	}
}

// Run ticks once per scheduled frame until the scheduler stops yielding.
// Cancellation of ctx is the host tearing the scene down and is not an
// error.
func (d *Driver) Run(ctx context.Context, scheduler Scheduler) error {
	if ctx.Err() != nil {
		return nil
	}
	d.logger.Debug("Render loop started")
	defer d.logger.Debug("Render loop stopped", slog.Uint64("frame", d.state.Frame))
	for {
		d.Tick()
		if err := scheduler.Next(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return fmt.Errorf("failed to schedule frame: %w", err)
		}
	}
}

func (d *Driver) guard(stage string, fn func() error) {
	defer func() {
		if r := recover(); r != nil {
			d.fail(stage, fmt.Errorf("panic: %v", r))
		}
	}()
	if err := fn(); err != nil {
		d.fail(stage, err)
	}
}

func (d *Driver) fail(stage string, err error) {
	d.failures++
	if d.failures == 1 || d.failures%statsInterval == 0 {
		d.logger.Warn("Frame stage failed",
			slog.String("stage", stage),
			slog.Uint64("frame", d.state.Frame),
			slog.Uint64("failures", d.failures),
			slog.String("error", err.Error()),
		)
	}
}
