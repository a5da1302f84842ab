// Package version provides build version information for inbox.
package version

// Version is overridden at build time using ldflags.
var Version = "development"

// Commit is the git commit hash, set at build time.
var Commit = "unknown"

// String returns the version, with the commit appended when known.
func String() string {
	if Commit != "unknown" && Commit != "" {
		return Version + "+" + Commit
	}
	return Version
}
