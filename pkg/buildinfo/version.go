// Package buildinfo carries the version stamped into the gitdiagram binary.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/gitdiagram/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/gitdiagram/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/gitdiagram/pkg/buildinfo.Date=$(date -u +%Y-%m-%d)" ./cmd/gitdiagram
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the build information on three lines.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return "{{.Name}} " + Short() + "\n"
}

// Short returns a one-line summary such as "v0.3.0 (abc1234, 2026-10-01)".
func Short() string {
	if Commit == "none" && Date == "unknown" {
		return Version
	}
	return fmt.Sprintf("%s (%s, %s)", Version, Commit, Date)
}
