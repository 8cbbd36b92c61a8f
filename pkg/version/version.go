package version

// Version is the application version, overridden at build time via
// -ldflags "-X rawdago/pkg/version.Version=...".
var Version = "0.1.0-dev"
