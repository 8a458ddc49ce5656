// internal/version/version.go
package version

// Version is the release version string.
const Version = "0.1.0"
