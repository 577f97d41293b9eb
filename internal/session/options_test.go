package session

import (
	"errors"
	"testing"
)

func TestTagGlob(t *testing.T) {
	cases := []struct {
		name string
		opts Options
		want string
	}{
		{"both", Options{Distro: "xenial", Version: "v1.5.0"}, "v1.5.0-xenial"},
		{"version only", Options{Version: "v1.5.0"}, "v1.5.0-*"},
		{"distro only", Options{Distro: "xenial"}, "*-xenial"},
		{"nothing", Options{}, "*"},
		{"explicit tag wins", Options{Distro: "xenial", Version: "v1.5.0", ImageTag: "1.7-*"}, "1.7-*"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.opts.TagGlob(); got != tc.want {
				t.Fatalf("TagGlob() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestValidate_UnknownDistro(t *testing.T) {
	opts := Options{Repository: "choreonoid-grasp", Distro: "slackware"}
	if err := opts.Validate(); !errors.Is(err, ErrUnknownDistro) {
		t.Fatalf("err = %v, want ErrUnknownDistro", err)
	}
}

func TestValidate_ContainerAndNewConflict(t *testing.T) {
	opts := Options{Repository: "choreonoid-grasp", Container: "dev1", ForceNew: true}
	if err := opts.Validate(); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("err = %v, want ErrInvalidOptions", err)
	}
}

func TestValidate_ImageNameWithTag(t *testing.T) {
	opts := Options{Repository: "choreonoid-grasp", ImageName: "custom-grasp:v1.5.0-xenial"}
	if err := opts.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if opts.Repository != "custom-grasp" {
		t.Fatalf("repository = %q", opts.Repository)
	}
	if opts.ImageTag != "v1.5.0-xenial" {
		t.Fatalf("image tag = %q", opts.ImageTag)
	}
}

func TestValidate_ImageNameTagConflict(t *testing.T) {
	opts := Options{
		Repository: "choreonoid-grasp",
		ImageName:  "custom-grasp:v1.5.0-xenial",
		ImageTag:   "v1.6.0-bionic",
	}
	if err := opts.Validate(); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("err = %v, want ErrInvalidOptions", err)
	}
}

func TestValidate_EmptyRepository(t *testing.T) {
	opts := Options{}
	if err := opts.Validate(); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("err = %v, want ErrInvalidOptions", err)
	}
}

func TestValidate_BadPublishSpec(t *testing.T) {
	opts := Options{Repository: "choreonoid-grasp", Publish: []string{"not-a-port"}}
	if err := opts.Validate(); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("err = %v, want ErrInvalidOptions", err)
	}
}

func TestValidate_GoodPublishSpec(t *testing.T) {
	opts := Options{Repository: "choreonoid-grasp", Publish: []string{"8080:80", "127.0.0.1:2222:22"}}
	if err := opts.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestParseStatus(t *testing.T) {
	cases := map[string]Status{
		"running":    StatusRunning,
		"exited":     StatusExited,
		"paused":     StatusOther,
		"restarting": StatusOther,
		"dead":       StatusOther,
		"":           StatusOther,
	}
	for raw, want := range cases {
		if got := ParseStatus(raw); got != want {
			t.Errorf("ParseStatus(%q) = %v, want %v", raw, got, want)
		}
	}
}
