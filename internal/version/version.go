// Package version carries build metadata injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/alexiusacademia/goflex/internal/version.GitCommit=$(git rev-parse --short HEAD)"
package version

import "fmt"

var (
	Version   = "0.2.0"
	BuildTime = "unknown"
	GitCommit = "unknown"

	Author = "Alexius Academia"
	Year   = "2026"
)

// String formats the version line printed by the CLI
func String() string {
	return fmt.Sprintf("goflex v%s", Version)
}

// Build describes where the binary came from
func Build() string {
	return fmt.Sprintf("Built: %s  Commit: %s", BuildTime, GitCommit)
}
