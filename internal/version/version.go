// Package version exposes build-time version information.
// The variables are overridden at build time via -ldflags.
package version

// Build information. Populated at build time via -ldflags:
//
//	-X github.com/zerocreations/tunegrab/internal/version.Version=v1.0.0
//	-X github.com/zerocreations/tunegrab/internal/version.Commit=abc1234
//	-X github.com/zerocreations/tunegrab/internal/version.BuildTime=2025-01-01T00:00:00Z
//
//nolint:gochecknoglobals // Build-time variables must be package-level to be settable via ldflags.
var (
	// Version is the semantic version of the application.
	Version = "0.1.0"
	// Commit is the git commit hash the binary was built from.
	Commit = "none"
	// BuildTime is the timestamp of the build.
	BuildTime = "unknown"
)

// Short returns the bare semantic version.
func Short() string {
	return Version
}

// Full returns the version, commit, and build time as a single string.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
