package session

import (
	"context"
	"fmt"
)

// Listing is the read-only inspection result: matching containers first,
// then matching images.
type Listing struct {
	Containers []Container
	Images     []Image
}

// List bypasses the lifecycle state machine and reports every container
// whose ancestor image matches the resolution filter, plus the matching
// images themselves. A filter that resolves to nothing concrete degrades
// to "everything of the repository".
func (c *Controller) List(ctx context.Context, opts Options) (Listing, error) {
	if err := c.engine.Ping(ctx); err != nil {
		return Listing{}, fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}

	glob := opts.TagGlob()
	if glob == "" {
		glob = "*"
	}

	images, err := c.engine.Images(ctx, opts.Repository)
	if err != nil {
		return Listing{}, fmt.Errorf("list images of %s: %w", opts.Repository, err)
	}

	var out Listing
	for _, img := range images {
		if matchRef(img.Ref(), opts.Repository, glob) {
			out.Images = append(out.Images, img)
		}
	}

	// A bare repository ancestor filter matches containers of every tag;
	// the glob narrows them afterwards.
	containers, err := c.engine.Containers(ctx, opts.Repository)
	if err != nil {
		return Listing{}, fmt.Errorf("list containers of %s: %w", opts.Repository, err)
	}
	for _, ctr := range containers {
		if matchRef(ctr.Image, opts.Repository, glob) {
			out.Containers = append(out.Containers, ctr)
		}
	}
	return out, nil
}
