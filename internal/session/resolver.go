package session

import (
	"context"
	"fmt"
	"log/slog"
	"path"
)

// EstimateImage picks the best local image for a repository and tag glob:
// the most recently created one whose tag matches. The engine hands images
// back newest first, so the first match wins.
//
// Read-only; returns ErrNoImage when nothing matches.
func EstimateImage(ctx context.Context, eng Engine, repository, tagGlob string) (Image, error) {
	if repository == "" {
		return Image{}, fmt.Errorf("%w: repository must not be empty", ErrInvalidOptions)
	}
	if tagGlob == "" {
		tagGlob = "*"
	}

	images, err := eng.Images(ctx, repository)
	if err != nil {
		return Image{}, fmt.Errorf("list images of %s: %w", repository, err)
	}

	for _, img := range images {
		ok, err := path.Match(tagGlob, img.Tag)
		if err != nil {
			// Malformed glob: degrade to repository-only matching rather
			// than silently returning nothing.
			slog.Debug("bad tag glob, matching repository only", "glob", tagGlob, "err", err)
			ok = true
		}
		if ok {
			slog.Debug("estimated image", "image", img.Ref(), "glob", tagGlob)
			return img, nil
		}
	}
	return Image{}, fmt.Errorf("%w for %s:%s", ErrNoImage, repository, tagGlob)
}

// matchRef reports whether a container's ancestor image reference belongs to
// repository and satisfies the tag glob. Untagged references match only a
// bare "*" glob.
func matchRef(ref, repository, tagGlob string) bool {
	if ref == repository {
		return tagGlob == "*" || tagGlob == ""
	}
	prefix := repository + ":"
	if len(ref) <= len(prefix) || ref[:len(prefix)] != prefix {
		return false
	}
	ok, err := path.Match(tagGlob, ref[len(prefix):])
	if err != nil {
		return true // degraded repository-only match, same as EstimateImage
	}
	return ok
}
