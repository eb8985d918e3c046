package app

import "fmt"

// Build metadata, stamped with
// -ldflags "-X github.com/heartmarshall/wordlookup/internal/app.Version=1.0.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the version line shown by `wordlookup version` and /health.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}

// UserAgent identifies this build to the lexicon service when the config
// does not name one.
func UserAgent() string {
	return "wordlookup/" + Version
}
