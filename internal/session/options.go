package session

import (
	"fmt"
	"slices"
	"strings"

	"github.com/distribution/reference"
	"github.com/docker/go-connections/nat"
)

// PluginMountTarget is where the graspPlugin source tree lands inside the
// container. The Choreonoid build in the image expects exactly this path.
const PluginMountTarget = "/opt/choreonoid/ext/graspPlugin"

// Distros images are built for. The positional distro selector must be one
// of these.
var Distros = []string{"trusty", "xenial", "bionic", "focal"}

// TagPattern is a partial tag specifier. Image tags follow the
// <version>-<distro> scheme (e.g. v1.5.0-xenial); a missing part matches
// anything.
type TagPattern struct {
	Version string
	Distro  string
}

// Glob renders the pattern as a shell-style glob over tags.
func (p TagPattern) Glob() string {
	switch {
	case p.Version == "" && p.Distro == "":
		return "*"
	case p.Distro == "":
		return p.Version + "-*"
	case p.Version == "":
		return "*-" + p.Distro
	default:
		return p.Version + "-" + p.Distro
	}
}

// MountPolicy controls the plugin source bind mount of newly created
// containers.
type MountPolicy struct {
	Enabled bool
	Source  string // host directory holding the graspPlugin checkout
}

// Options is the full, immutable input of one invocation. Built once by
// argument parsing, validated, then only read.
type Options struct {
	Repository string // image repository to resolve against

	// Selector, in precedence order. Exactly one strategy is active:
	// explicit container > explicit image name/tag > distro/version pair >
	// any image of Repository.
	Container string
	ImageName string // repo[:tag]
	ImageTag  string // tag or glob, overrides the distro/version pattern
	Distro    string
	Version   string

	ForceNew        bool
	Mount           MountPolicy
	Publish         []string
	PassthroughArgs []string

	List   bool
	DryRun bool
}

// Validate checks flag combinations and normalizes the explicit image name.
// Configuration errors here are fatal and never retried.
func (o *Options) Validate() error {
	if strings.TrimSpace(o.Repository) == "" {
		return fmt.Errorf("%w: image repository must not be empty", ErrInvalidOptions)
	}
	if o.Distro != "" && !slices.Contains(Distros, o.Distro) {
		return fmt.Errorf("%w %q (known: %s)", ErrUnknownDistro, o.Distro, strings.Join(Distros, ", "))
	}
	if o.Container != "" && o.ForceNew {
		return fmt.Errorf("%w: --container and --new are mutually exclusive", ErrInvalidOptions)
	}

	if o.ImageName != "" {
		named, err := reference.ParseNormalizedNamed(o.ImageName)
		if err != nil {
			return fmt.Errorf("%w: parse image name %q: %v", ErrInvalidOptions, o.ImageName, err)
		}
		o.Repository = reference.FamiliarName(named)
		if tagged, ok := named.(reference.Tagged); ok {
			if o.ImageTag != "" && o.ImageTag != tagged.Tag() {
				return fmt.Errorf("%w: --image-name carries tag %q but --image-tag is %q", ErrInvalidOptions, tagged.Tag(), o.ImageTag)
			}
			o.ImageTag = tagged.Tag()
		}
	}

	if _, _, err := nat.ParsePortSpecs(o.Publish); err != nil {
		return fmt.Errorf("%w: parse publish spec: %v", ErrInvalidOptions, err)
	}
	return nil
}

// TagGlob derives the tag-matching glob for image resolution. An explicit
// --image-tag is used verbatim (it may itself carry a wildcard, e.g.
// "1.7-*"); otherwise the glob comes from the distro/version pair.
func (o *Options) TagGlob() string {
	if o.ImageTag != "" {
		return o.ImageTag
	}
	return TagPattern{Version: o.Version, Distro: o.Distro}.Glob()
}
