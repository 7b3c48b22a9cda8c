// Package version exposes build information set at link time.
package version

// Set via -ldflags "-X github.com/rshade/factsview/pkg/version.version=...".
//
//nolint:gochecknoglobals // Link-time variables.
var (
	version = "dev"
	commit  = "none"
)

// GetVersion returns the build version.
func GetVersion() string {
	return version
}

// GetCommit returns the build commit.
func GetCommit() string {
	return commit
}
