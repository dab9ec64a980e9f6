// Package buildinfo reports the version of the stencil binary.
//
// Version, Commit and Date are stamped by the release build with
// -ldflags "-X github.com/AbdelazizMoustafa10m/Stencil/internal/buildinfo.Version=...".
// A binary installed with `go install` has no stamp, so GetInfo falls back
// to the module version recorded by the Go toolchain.
package buildinfo

// These variables are set at build time via -ldflags -X.
var (
	// Version is the semantic version or git describe output.
	Version = "dev"

	// Commit is the short git commit SHA.
	Commit = "unknown"

	// Date is the UTC build timestamp in RFC3339 format.
	Date = "unknown"
)
