package safeenv

// Version is the release version, overridden at build time with
// -ldflags "-X github.com/nicocarlier/safe-env-lite.Version=...".
var Version = "0.1.0"
