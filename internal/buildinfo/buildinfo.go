// Package buildinfo carries version metadata stamped at link time.
package buildinfo

var (
	// Version is set via -ldflags "-X cnoiddev/internal/buildinfo.Version=...".
	Version = "dev"
	// Commit is the short git revision of the build.
	Commit = ""
)

// String renders "version (commit)" for --version output.
func String() string {
	if Commit == "" {
		return Version
	}
	return Version + " (" + Commit + ")"
}
