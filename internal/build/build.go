// Package build holds build-time information of the fingerprint binary.
package build

// Version is reported by `fingerprint version` and `--version`.
// It defaults to "dev" and is set with -ldflags "-X go.trai.ch/fingerprint/internal/build.Version=...".
var Version = "dev"
