// Package version exposes the build metadata shown by --version.
package version

import "fmt"

// Commit and BuildTime are injected at link time, e.g.
//
//	go build -ldflags "-X .../internal/version.Commit=$(git rev-parse HEAD)"
var (
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String renders the one-line version banner. Commits are shown
// abbreviated; there is no semver, releases are commit-based.
func String() string {
	commit := Commit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("asreorder dev (commit: %s, built: %s)", commit, BuildTime)
}
