// Package version holds the build version, overridden at link time via
// -ldflags "-X github.com/wvwvw5/neuro-store/internal/version.Version=...".
package version

var Version = "dev"
