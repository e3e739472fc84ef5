// Package version holds the build version reported by the server.
package version

// Current is overridden at build time:
//
//	go build -ldflags "-X github.com/orris-inc/statsboard/internal/shared/version.Current=v1.2.0"
var Current = "dev"
