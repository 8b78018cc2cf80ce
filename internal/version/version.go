package version

// Version is the gitrefs version, overridable at build time with
// -ldflags "-X .../internal/version.Version=...".
var Version = "0.1.0"
