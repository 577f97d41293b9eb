package session

import (
	"context"
	"time"
)

// Image is a locally available image, expanded per repo:tag reference.
type Image struct {
	Repository string
	Tag        string
	ID         string
	Created    time.Time
}

// Ref returns the fully qualified repository:tag reference.
func (i Image) Ref() string {
	if i.Tag == "" {
		return i.Repository
	}
	return i.Repository + ":" + i.Tag
}

// Container is a listed container, any state.
type Container struct {
	ID       string
	Name     string
	Image    string // ancestor image reference as reported by the engine
	Status   Status
	RawState string
	Created  time.Time
}

// Engine is the read-only query surface of the container engine.
// In production this is the Docker Engine API; in tests a recording fake.
type Engine interface {
	// Ping probes daemon liveness. One shot, no retry.
	Ping(ctx context.Context) error

	// Images lists local images of a repository, most recent first.
	Images(ctx context.Context, repository string) ([]Image, error)

	// Containers lists containers of any state whose ancestor matches the
	// given image reference (a bare repository matches every tag of it),
	// most recent first.
	Containers(ctx context.Context, ancestor string) ([]Container, error)

	// Inspect looks up one container by name or id. The bool reports
	// whether it exists.
	Inspect(ctx context.Context, ref string) (Container, bool, error)
}

// RunSpec describes a new interactive container to create.
type RunSpec struct {
	Image       string
	MountSource string // host path; empty disables the plugin bind mount
	MountTarget string
	Publish     []string // host:container port specs, already validated
	Args        []string // passthrough to the container entry command
}

// Runner executes the mutating engine operations. Implementations honor
// dry-run by printing the command instead of executing it.
type Runner interface {
	Start(ctx context.Context, container string) error
	Run(ctx context.Context, spec RunSpec) error
	Exec(ctx context.Context, container, shell string) error
}
