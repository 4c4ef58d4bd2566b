package internal

import (
	"fmt"
	"runtime"
)

// go build -ldflags "-X 'github.com/ZanzyTHEbar/lunchmoney-go/internal.GitCommit=$(git rev-parse HEAD)'"

// Will be set at build time using -ldflags
var (
	Version = "v0.1.0"

	GitCommit = "unknown"
)

// UserAgent is sent with every API request
func UserAgent() string {
	return fmt.Sprintf("lunchmoney-go/%s (%s; %s/%s)", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// VersionInfo returns a formatted string with version information
func VersionInfo() string {
	return fmt.Sprintf(
		"Version: %s\nGit Commit: %s\nGo Version: %s\nOS/Arch: %s/%s",
		Version,
		GitCommit,
		runtime.Version(),
		runtime.GOOS,
		runtime.GOARCH,
	)
}
