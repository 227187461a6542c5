package build

// Values are set in release builds via ldflags.
var (
	BuildVersion = "dev" // nolint gochecknoglobals
	BuildDate    = "-"   // nolint gochecknoglobals
	GitCommit    = "-"   // nolint gochecknoglobals
)
