// Package buildinfo exposes build-time version metadata.
package buildinfo

// Version information injected via ldflags at build time.
var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"
	// Commit is the git commit SHA.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
