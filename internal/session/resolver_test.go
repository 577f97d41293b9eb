package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

func imagesFixture() []Image {
	// Engine contract: most recent first.
	return []Image{
		{Repository: "choreonoid-grasp", Tag: "v1.7.0-bionic", ID: "sha256:ccc", Created: time.Unix(3000, 0)},
		{Repository: "choreonoid-grasp", Tag: "v1.6.0-xenial", ID: "sha256:bbb", Created: time.Unix(2000, 0)},
		{Repository: "choreonoid-grasp", Tag: "v1.5.0-xenial", ID: "sha256:aaa", Created: time.Unix(1000, 0)},
	}
}

func TestEstimateImage_PicksMostRecentMatch(t *testing.T) {
	eng := &fakeEngine{images: imagesFixture()}

	img, err := EstimateImage(context.Background(), eng, "choreonoid-grasp", "*-xenial")
	if err != nil {
		t.Fatalf("EstimateImage: %v", err)
	}
	if img.Tag != "v1.6.0-xenial" {
		t.Fatalf("tag = %q, want the newer xenial image", img.Tag)
	}
}

func TestEstimateImage_LiteralTag(t *testing.T) {
	eng := &fakeEngine{images: imagesFixture()}

	img, err := EstimateImage(context.Background(), eng, "choreonoid-grasp", "v1.5.0-xenial")
	if err != nil {
		t.Fatalf("EstimateImage: %v", err)
	}
	if img.Ref() != "choreonoid-grasp:v1.5.0-xenial" {
		t.Fatalf("ref = %q", img.Ref())
	}
}

func TestEstimateImage_EmptyGlobMatchesAnything(t *testing.T) {
	eng := &fakeEngine{images: imagesFixture()}

	img, err := EstimateImage(context.Background(), eng, "choreonoid-grasp", "")
	if err != nil {
		t.Fatalf("EstimateImage: %v", err)
	}
	if img.Tag != "v1.7.0-bionic" {
		t.Fatalf("tag = %q, want the most recent image overall", img.Tag)
	}
}

func TestEstimateImage_NoMatch(t *testing.T) {
	eng := &fakeEngine{images: imagesFixture()}

	_, err := EstimateImage(context.Background(), eng, "choreonoid-grasp", "*-focal")
	if !errors.Is(err, ErrNoImage) {
		t.Fatalf("err = %v, want ErrNoImage", err)
	}
}

func TestEstimateImage_EmptyRepositoryRejected(t *testing.T) {
	_, err := EstimateImage(context.Background(), &fakeEngine{}, "", "*")
	if !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("err = %v, want ErrInvalidOptions", err)
	}
}

func TestEstimateImage_MalformedGlobDegradesToRepositoryMatch(t *testing.T) {
	eng := &fakeEngine{images: imagesFixture()}

	img, err := EstimateImage(context.Background(), eng, "choreonoid-grasp", "[broken")
	if err != nil {
		t.Fatalf("EstimateImage: %v", err)
	}
	if img.Tag != "v1.7.0-bionic" {
		t.Fatalf("tag = %q, want the most recent image of the repository", img.Tag)
	}
}

func TestMatchRef(t *testing.T) {
	cases := []struct {
		ref  string
		glob string
		want bool
	}{
		{"choreonoid-grasp:v1.5.0-xenial", "v1.5.0-xenial", true},
		{"choreonoid-grasp:v1.5.0-xenial", "*-xenial", true},
		{"choreonoid-grasp:v1.5.0-xenial", "*-bionic", false},
		{"choreonoid-grasp:v1.5.0-xenial", "*", true},
		{"choreonoid-grasp", "*", true},
		{"choreonoid-grasp", "v1.5.0-*", false},
		{"otherrepo:v1.5.0-xenial", "*", false},
	}
	for _, tc := range cases {
		if got := matchRef(tc.ref, "choreonoid-grasp", tc.glob); got != tc.want {
			t.Errorf("matchRef(%q, %q) = %v, want %v", tc.ref, tc.glob, got, tc.want)
		}
	}
}
