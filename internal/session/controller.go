package session

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const (
	// Start confirmation poll. The budget is deliberately small and fixed:
	// it masks the benign gap between "start issued" and "status running",
	// it does not recover from real failure.
	startPollAttempts = 3
	startPollDelay    = time.Second

	attachShell = "/bin/bash"
)

// Controller resolves a target container from the active selector and drives
// it to the attached state, creating one when necessary. Single-threaded:
// one invocation runs to completion or abort.
type Controller struct {
	engine Engine
	runner Runner
	sleep  func(time.Duration)
}

// ControllerOption configures a Controller.
type ControllerOption func(*Controller)

// WithSleep replaces the inter-poll delay, so tests can simulate a container
// that never reaches running without wall-clock waits.
func WithSleep(fn func(time.Duration)) ControllerOption {
	return func(c *Controller) { c.sleep = fn }
}

// NewController wires a controller over an engine query surface and a
// command runner.
func NewController(engine Engine, runner Runner, opts ...ControllerOption) *Controller {
	c := &Controller{
		engine: engine,
		runner: runner,
		sleep:  time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Attachment reports how an invocation ended up attached.
type Attachment struct {
	ContainerID   string
	ContainerName string
	Image         string // resolved image reference, for prompt/window labeling
	Created       bool   // true when a fresh container was run
}

// ResolveAndAttach is the whole lifecycle: probe the engine, resolve the
// selector to a container (reusing existing work over creating new), and
// leave the user attached to a shell inside it.
func (c *Controller) ResolveAndAttach(ctx context.Context, opts Options) (Attachment, error) {
	if err := c.engine.Ping(ctx); err != nil {
		return Attachment{}, fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}

	if opts.Container != "" {
		return c.attachExplicit(ctx, opts)
	}

	img, err := EstimateImage(ctx, c.engine, opts.Repository, opts.TagGlob())
	if err != nil {
		return Attachment{}, err
	}

	if opts.ForceNew {
		return c.create(ctx, img, opts)
	}

	target, phase, err := c.findByAncestor(ctx, img)
	if err != nil {
		return Attachment{}, err
	}
	if phase == PhaseNotFound {
		return c.create(ctx, img, opts)
	}
	return c.resume(ctx, target, img.Ref(), phase, opts.DryRun)
}

// attachExplicit handles the --container selector: the container must exist,
// and its own ancestor image becomes the resolved image unless the caller
// pinned one.
func (c *Controller) attachExplicit(ctx context.Context, opts Options) (Attachment, error) {
	target, ok, err := c.engine.Inspect(ctx, opts.Container)
	if err != nil {
		return Attachment{}, fmt.Errorf("inspect container %q: %w", opts.Container, err)
	}
	if !ok {
		return Attachment{}, fmt.Errorf("%w: %q", ErrNoSuchContainer, opts.Container)
	}

	image := target.Image
	if opts.ImageTag != "" {
		image = opts.Repository + ":" + opts.ImageTag
	}

	phase := PhaseFoundExited
	if target.Status == StatusRunning {
		phase = PhaseFoundRunning
	}
	return c.resume(ctx, target, image, phase, opts.DryRun)
}

// findByAncestor locates the most recent container (any state) created from
// the resolved image.
func (c *Controller) findByAncestor(ctx context.Context, img Image) (Container, Phase, error) {
	containers, err := c.engine.Containers(ctx, img.Ref())
	if err != nil {
		return Container{}, PhaseUnresolved, fmt.Errorf("list containers of %s: %w", img.Ref(), err)
	}
	if len(containers) == 0 {
		return Container{}, PhaseNotFound, nil
	}

	target := containers[0]
	if target.Status == StatusRunning {
		return target, PhaseFoundRunning, nil
	}
	return target, PhaseFoundExited, nil
}

// create runs a fresh interactive container from the image, applying the
// mount policy and passthrough args. A nonzero exit from the underlying run
// is fatal, no retry.
func (c *Controller) create(ctx context.Context, img Image, opts Options) (Attachment, error) {
	spec := RunSpec{
		Image:       img.Ref(),
		MountTarget: PluginMountTarget,
		Publish:     opts.Publish,
		Args:        opts.PassthroughArgs,
	}
	if opts.Mount.Enabled {
		spec.MountSource = opts.Mount.Source
	}

	slog.Debug("creating container", "image", spec.Image, "mount", opts.Mount.Enabled)
	if err := c.runner.Run(ctx, spec); err != nil {
		return Attachment{}, fmt.Errorf("run new container from %s: %w", spec.Image, err)
	}
	return Attachment{Image: img.Ref(), Created: true}, nil
}

// resume drives an existing container to attached: exited containers get one
// start request confirmed by a bounded status poll, then a shell is exec'd.
func (c *Controller) resume(ctx context.Context, target Container, image string, phase Phase, dryRun bool) (Attachment, error) {
	switch phase {
	case PhaseFoundExited:
		if target.Status == StatusOther {
			return Attachment{}, fmt.Errorf("%w: %s (container %s)", ErrUnhandledStatus, target.RawState, target.Name)
		}
		if err := c.start(ctx, target, dryRun); err != nil {
			return Attachment{}, err
		}
	case PhaseFoundRunning:
		// attach directly
	default:
		return Attachment{}, fmt.Errorf("%w: phase %s", ErrUnhandledStatus, phase)
	}

	slog.Debug("attaching", "container", target.Name, "image", image)
	if err := c.runner.Exec(ctx, ref(target), attachShell); err != nil {
		return Attachment{}, fmt.Errorf("exec into container %s: %w", target.Name, err)
	}
	return Attachment{ContainerID: target.ID, ContainerName: target.Name, Image: image}, nil
}

// start issues one start request and polls until the engine reports running.
// The start-then-poll sequence is the single tolerated race window in the
// whole tool.
func (c *Controller) start(ctx context.Context, target Container, dryRun bool) error {
	if err := c.runner.Start(ctx, ref(target)); err != nil {
		return fmt.Errorf("start container %s: %w", target.Name, err)
	}
	if dryRun {
		// Nothing was issued, so the status can never transition. Assume it
		// would have and keep printing the rest of the decision path.
		return nil
	}

	for attempt := 1; attempt <= startPollAttempts; attempt++ {
		cur, ok, err := c.engine.Inspect(ctx, ref(target))
		if err != nil {
			return fmt.Errorf("confirm start of %s: %w", target.Name, err)
		}
		if !ok {
			// Disappeared between start and poll: fatal, not a retry target.
			return fmt.Errorf("%w: %q", ErrNoSuchContainer, ref(target))
		}
		if cur.Status == StatusRunning {
			return nil
		}
		slog.Debug("container not yet running", "container", target.Name, "state", cur.RawState, "attempt", attempt)
		if attempt < startPollAttempts {
			c.sleep(startPollDelay)
		}
	}
	return fmt.Errorf("%w: %s", ErrStartTimeout, target.Name)
}

// ref picks the stable engine reference of a container: its name when
// assigned, the id otherwise.
func ref(c Container) string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}
