// Package docker adapts the Docker Engine API and CLI to the session ports.
package docker

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"cnoiddev/internal/session"

	"github.com/containerd/errdefs"
	"github.com/docker/docker/api/types/container"
	dockerfilters "github.com/docker/docker/api/types/filters"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
)

var _ session.Engine = (*Client)(nil)

// Client implements session.Engine over the Docker Engine API.
type Client struct {
	api client.APIClient
}

// NewClient creates a Client from the environment (DOCKER_HOST etc.).
func NewClient() (*Client, error) {
	api, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("create docker client: %w", err)
	}
	return &Client{api: api}, nil
}

// NewClientFromAPI wraps an existing API client.
func NewClientFromAPI(api client.APIClient) *Client {
	return &Client{api: api}
}

// Ping probes daemon liveness once. No retry: an unreachable daemon is a
// dependency failure, not a lifecycle state.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.api.Ping(ctx); err != nil {
		return fmt.Errorf("ping docker daemon: %w", err)
	}
	return nil
}

// Images lists local images of a repository, one entry per repo:tag
// reference, newest first.
func (c *Client) Images(ctx context.Context, repository string) ([]session.Image, error) {
	filters := dockerfilters.NewArgs()
	filters.Add("reference", repository)

	summaries, err := c.api.ImageList(ctx, image.ListOptions{Filters: filters})
	if err != nil {
		return nil, fmt.Errorf("list images: %w", err)
	}

	out := make([]session.Image, 0, len(summaries))
	for _, s := range summaries {
		for _, ref := range s.RepoTags {
			repo, tag, ok := splitRef(ref)
			if !ok || repo != repository {
				continue
			}
			out = append(out, session.Image{
				Repository: repo,
				Tag:        tag,
				ID:         s.ID,
				Created:    time.Unix(s.Created, 0),
			})
		}
	}

	// The engine already lists by recency, but the contract is "most recent
	// first" so make the ordering explicit and stable.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Created.After(out[j].Created) })
	return out, nil
}

// Containers lists containers of any state created from the ancestor image
// reference, newest first.
func (c *Client) Containers(ctx context.Context, ancestor string) ([]session.Container, error) {
	filters := dockerfilters.NewArgs()
	filters.Add("ancestor", ancestor)

	containers, err := c.api.ContainerList(ctx, container.ListOptions{All: true, Filters: filters})
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}

	out := make([]session.Container, 0, len(containers))
	for _, ctr := range containers {
		name := ""
		if len(ctr.Names) > 0 {
			name = strings.TrimPrefix(ctr.Names[0], "/")
		}
		out = append(out, session.Container{
			ID:       ctr.ID,
			Name:     name,
			Image:    ctr.Image,
			Status:   session.ParseStatus(ctr.State),
			RawState: ctr.State,
			Created:  time.Unix(ctr.Created, 0),
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Created.After(out[j].Created) })
	return out, nil
}

// Inspect looks up one container by name or id. The API accepts either, so
// the name-then-id fallback collapses into a single call.
func (c *Client) Inspect(ctx context.Context, ref string) (session.Container, bool, error) {
	info, err := c.api.ContainerInspect(ctx, ref)
	if err != nil {
		if errdefs.IsNotFound(err) {
			return session.Container{}, false, nil
		}
		return session.Container{}, false, fmt.Errorf("inspect container %q: %w", ref, err)
	}

	status := "unknown"
	if info.State != nil {
		status = info.State.Status
	}
	img := ""
	if info.Config != nil {
		img = info.Config.Image
	}
	return session.Container{
		ID:       info.ID,
		Name:     strings.TrimPrefix(info.Name, "/"),
		Image:    img,
		Status:   session.ParseStatus(status),
		RawState: status,
	}, true, nil
}

func (c *Client) Close() error {
	return c.api.Close()
}

// splitRef splits "repo:tag" on the last colon that is not part of a
// registry port.
func splitRef(ref string) (repo, tag string, ok bool) {
	i := strings.LastIndex(ref, ":")
	if i < 0 || strings.Contains(ref[i+1:], "/") {
		return ref, "", false
	}
	return ref[:i], ref[i+1:], true
}
