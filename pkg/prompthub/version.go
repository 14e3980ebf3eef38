// Package prompthub exposes build metadata for the prompthub CLI.
package prompthub

// Version is the released version string, overridable at build time with
// -ldflags "-X github.com/mesh-intelligence/prompthub/pkg/prompthub.Version=...".
var Version = "0.1.0"
