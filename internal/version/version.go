// internal/version/version.go
package version

// Version is the semantic version stamped into --version output.
var Version = "1.0.0"
