package version

// These values are injected at build time via -ldflags.
var (
	// Version is the semantic version of the build
	Version = "dev"
	// CommitSHA is the git commit the binary was built from
	CommitSHA = "unknown"
	// BuildDate is the UTC build timestamp
	BuildDate = "unknown"
)
