package version

// AppVersion is the release version reported by the version command.
// Overridden at build time via -ldflags "-X ciftify/internal/version.AppVersion=...".
var AppVersion = "0.1.0"
